package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"go.uber.org/zap"
	"google.golang.org/protobuf/types/known/timestamppb"

	parleyv1 "github.com/matheus3301/parley/gen/parley/v1"
	"github.com/matheus3301/parley/internal/bus"
	"github.com/matheus3301/parley/internal/chat"
	"github.com/matheus3301/parley/internal/message"
	"github.com/matheus3301/parley/internal/status"
)

const (
	maxSessionTopics = 256
	presenceTimeout  = 5 * time.Second
)

// Session serves one bidirectional event stream. The caller is online while
// at least one of its streams is open. Client frames subscribe to and
// unsubscribe from topics; every subscription starts with a snapshot frame
// followed by live events. Messages a recipient receives, in a snapshot or
// as a message.created frame, are marked delivered.
func (s *MessagingService) Session(stream parleyv1.Messaging_SessionServer) error {
	ctx := stream.Context()
	me, err := caller(ctx)
	if err != nil {
		return err
	}

	s.metrics.SessionOpened()
	defer s.metrics.SessionClosed()
	s.sessionStarted(ctx, me.UserID)
	defer s.sessionEnded(me.UserID)

	sess := &session{
		svc:    s,
		ctx:    ctx,
		stream: stream,
		user:   me.UserID,
		subs:   make(map[string]*bus.Subscription),
	}
	defer sess.close()

	s.logger.Info("session opened", zap.String("user_id", me.UserID))
	defer s.logger.Info("session closed", zap.String("user_id", me.UserID))

	for {
		req, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		if err := sess.handle(req); err != nil {
			return err
		}
	}
}

func (s *MessagingService) sessionStarted(ctx context.Context, userID string) {
	s.mu.Lock()
	s.sessions[userID]++
	s.mu.Unlock()

	if _, err := s.chat.SetPresence(ctx, userID, true); err != nil {
		s.logger.Warn("failed to mark user online", zap.String("user_id", userID), zap.Error(err))
	}
}

func (s *MessagingService) sessionEnded(userID string) {
	s.mu.Lock()
	s.sessions[userID]--
	last := s.sessions[userID] <= 0
	if last {
		delete(s.sessions, userID)
	}
	s.mu.Unlock()
	if !last {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), presenceTimeout)
	defer cancel()
	if _, err := s.chat.SetPresence(ctx, userID, false); err != nil {
		s.logger.Warn("failed to mark user offline", zap.String("user_id", userID), zap.Error(err))
	}
}

// session is the per-stream state. subs is only touched by the goroutine
// reading client frames; sendMu serializes writes to the stream, which
// subscription handlers perform from their own goroutines.
type session struct {
	svc    *MessagingService
	ctx    context.Context
	stream parleyv1.Messaging_SessionServer
	user   string
	subs   map[string]*bus.Subscription
	sendMu sync.Mutex
}

func (ss *session) handle(req *parleyv1.SessionRequest) error {
	switch req.Action {
	case parleyv1.SessionAction_SESSION_ACTION_SUBSCRIBE:
		return ss.subscribe(req.Topic)
	case parleyv1.SessionAction_SESSION_ACTION_UNSUBSCRIBE:
		return ss.unsubscribe(req.Topic)
	default:
		return ss.send(ss.reply(req.Topic, false, fmt.Sprintf("unknown action %s", req.Action)))
	}
}

func (ss *session) subscribe(topic string) error {
	// Holding sendMu while subscribing keeps the acknowledgement ahead of
	// the snapshot frame.
	ss.sendMu.Lock()
	defer ss.sendMu.Unlock()

	if _, ok := ss.subs[topic]; ok {
		return ss.sendLocked(ss.reply(topic, true, ""))
	}
	if len(ss.subs) >= maxSessionTopics {
		return ss.sendLocked(ss.reply(topic, false, fmt.Sprintf("too many subscriptions (max %d)", maxSessionTopics)))
	}
	sub, err := ss.svc.chat.Subscribe(ss.ctx, ss.user, topic, ss.forward)
	if err != nil {
		ss.svc.logger.Debug("subscribe rejected",
			zap.String("user_id", ss.user), zap.String("topic", topic), zap.Error(err))
		return ss.sendLocked(ss.reply(topic, false, err.Error()))
	}
	ss.subs[topic] = sub
	return ss.sendLocked(ss.reply(topic, true, ""))
}

func (ss *session) unsubscribe(topic string) error {
	if sub, ok := ss.subs[topic]; ok {
		delete(ss.subs, topic)
		sub.Cancel()
	}
	return ss.send(ss.reply(topic, false, ""))
}

// forward is the bus handler of every subscription in the session.
func (ss *session) forward(evt bus.Event) error {
	payload, err := json.Marshal(evt.Payload)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", evt.Kind, err)
	}
	frame := &parleyv1.SessionEvent{
		Topic:      evt.Topic,
		Kind:       evt.Kind,
		Payload:    payload,
		OccurredAt: timestamppb.New(evt.Timestamp),
	}
	if err := ss.send(frame); err != nil {
		return err
	}

	switch evt.Kind {
	case bus.KindMessageCreated:
		if m, ok := chat.DecodeMessage(evt.Payload); ok {
			ss.delivered(m)
		}
	case bus.KindSnapshot:
		if msgs, ok := evt.Payload.([]message.Message); ok {
			for _, m := range msgs {
				ss.delivered(m)
			}
		}
	}
	return nil
}

// delivered acknowledges a peer message the session has just shown.
func (ss *session) delivered(m message.Message) {
	if m.SenderID == ss.user || m.DeliveryStatus != status.Sent {
		return
	}
	if err := ss.svc.chat.MarkDelivered(ss.ctx, m.ID, ss.user); err != nil && ss.ctx.Err() == nil {
		ss.svc.logger.Warn("failed to mark message delivered",
			zap.String("message_id", m.ID), zap.String("user_id", ss.user), zap.Error(err))
	}
}

func (ss *session) reply(topic string, subscribed bool, errMsg string) *parleyv1.SessionEvent {
	return &parleyv1.SessionEvent{
		Topic:      topic,
		Subscribed: subscribed,
		Error:      errMsg,
		OccurredAt: timestamppb.Now(),
	}
}

func (ss *session) send(frame *parleyv1.SessionEvent) error {
	ss.sendMu.Lock()
	defer ss.sendMu.Unlock()
	return ss.sendLocked(frame)
}

func (ss *session) sendLocked(frame *parleyv1.SessionEvent) error {
	return ss.stream.Send(frame)
}

func (ss *session) close() {
	for topic, sub := range ss.subs {
		sub.Cancel()
		delete(ss.subs, topic)
	}
}
