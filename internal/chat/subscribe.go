package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/matheus3301/parley/internal/bus"
	"github.com/matheus3301/parley/internal/directory"
	"github.com/matheus3301/parley/internal/message"
)

// Subscribe registers handler on topic for userID. Message topics require
// participation in the conversation, conversation topics belong to their
// owner only, and presence topics are public. The handler first receives a
// snapshot event carrying the topic's current state.
func (s *Service) Subscribe(ctx context.Context, userID, topic string, handler bus.Handler) (*bus.Subscription, error) {
	family, id, err := bus.ParseTopic(topic)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTopic, err)
	}

	var snapshot bus.SnapshotFunc
	switch family {
	case bus.TopicMessages:
		if err := s.authorize(ctx, id, userID); err != nil {
			return nil, err
		}
		snapshot = func() ([]bus.Event, error) {
			msgs := s.messages.Recent(ctx, id, s.cfg.SnapshotLimit)
			if msgs == nil {
				msgs = []message.Message{}
			}
			return []bus.Event{{Topic: topic, Kind: bus.KindSnapshot, Timestamp: time.Now(), Payload: msgs}}, nil
		}
	case bus.TopicConversations:
		if id != userID {
			return nil, fmt.Errorf("%w: conversations of %s", ErrForbidden, id)
		}
		snapshot = func() ([]bus.Event, error) {
			convs := s.directory.ListFor(ctx, id)
			if convs == nil {
				convs = []directory.Conversation{}
			}
			return []bus.Event{{Topic: topic, Kind: bus.KindSnapshot, Timestamp: time.Now(), Payload: convs}}, nil
		}
	case bus.TopicPresence:
		snapshot = func() ([]bus.Event, error) {
			return s.presence.Snapshot(ctx, id), nil
		}
	}
	return s.sub.Subscribe(topic, handler, snapshot)
}

// DecodeMessage extracts a message from a message.created event payload,
// whether it was published locally or relayed from another instance.
func DecodeMessage(payload any) (message.Message, bool) {
	switch p := payload.(type) {
	case message.Message:
		return p, true
	case *message.Message:
		if p == nil {
			return message.Message{}, false
		}
		return *p, true
	case json.RawMessage:
		var m message.Message
		if err := json.Unmarshal(p, &m); err != nil || m.ID == "" {
			return message.Message{}, false
		}
		return m, true
	}
	return message.Message{}, false
}
