package chat

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/matheus3301/parley/internal/bus"
	"github.com/matheus3301/parley/internal/directory"
	"github.com/matheus3301/parley/internal/message"
	"github.com/matheus3301/parley/internal/outbox"
	"github.com/matheus3301/parley/internal/status"
	"github.com/matheus3301/parley/internal/store"
)

// CreateOrGetConversation returns the conversation between a and b, creating
// it on first contact. Both participants are notified of a new conversation.
func (s *Service) CreateOrGetConversation(ctx context.Context, a, b string, names map[string]string) (string, bool, error) {
	var (
		id      string
		created bool
		conv    directory.Conversation
	)
	err := s.db.InTx(ctx, func(tx *store.Tx) error {
		var err error
		id, created, err = s.directory.FindOrCreateTx(ctx, tx, a, b, names)
		if err != nil || !created {
			return err
		}
		if conv, err = s.directory.GetTx(ctx, tx, id); err != nil {
			return err
		}
		return outbox.Enqueue(ctx, tx, outbox.KindConversationCreated, id, conv)
	})
	if err != nil {
		return "", false, err
	}
	if created {
		s.logger.Info("conversation created", zap.String("conversation_id", id))
		s.publishConversation(conv, conv.Participants...)
	}
	return id, created, nil
}

// MarkConversationRead clears userID's unread counter and moves every
// message the peer sent to read. Both participants receive the updated
// conversation so badges and read receipts refresh. Marking an already read
// conversation is a no-op apart from the notification.
func (s *Service) MarkConversationRead(ctx context.Context, conversationID, userID string) error {
	unlock := s.lockConversation(conversationID)
	defer unlock()

	var (
		conv    directory.Conversation
		updates []message.Update
	)
	err := s.db.InTx(ctx, func(tx *store.Tx) error {
		var err error
		if conv, err = s.directory.GetTx(ctx, tx, conversationID); err != nil {
			return err
		}
		if !conv.HasParticipant(userID) {
			return fmt.Errorf("%w: %s in %s", ErrNotParticipant, userID, conversationID)
		}
		if err := s.directory.MarkReadTx(ctx, tx, conversationID, userID); err != nil {
			return err
		}
		if updates, err = s.messages.AdvanceAllTx(ctx, tx, conversationID, userID, status.Read); err != nil {
			return err
		}
		if err := s.enqueueChanges(ctx, tx, updates); err != nil {
			return err
		}
		conv, err = s.directory.GetTx(ctx, tx, conversationID)
		return err
	})
	if err != nil {
		return err
	}

	s.publishChanges(updates)
	s.publishConversation(conv, userID, conv.Peer(userID))
	return nil
}

// MarkDelivered records that userID's client observed a message. Only the
// recipient can mark delivery; repeats and messages already read are
// no-ops.
func (s *Service) MarkDelivered(ctx context.Context, messageID, userID string) error {
	m, err := s.messages.Get(ctx, messageID)
	if err != nil {
		return err
	}
	if m.SenderID == userID || m.DeliveryStatus.AtLeast(status.Delivered) {
		return nil
	}

	unlock := s.lockConversation(m.ConversationID)
	defer unlock()

	var u message.Update
	err = s.db.InTx(ctx, func(tx *store.Tx) error {
		conv, err := s.directory.GetTx(ctx, tx, m.ConversationID)
		if err != nil {
			return err
		}
		if !conv.HasParticipant(userID) {
			return fmt.Errorf("%w: %s in %s", ErrNotParticipant, userID, m.ConversationID)
		}
		u, err = s.messages.UpdateStatusTx(ctx, tx, messageID, status.Delivered)
		if errors.Is(err, status.ErrInvalidTransition) {
			// Read between the unlocked check and the transaction.
			u, err = message.Update{}, nil
		}
		if err != nil {
			return err
		}
		return s.enqueueChanges(ctx, tx, []message.Update{u})
	})
	if err != nil {
		return err
	}
	s.publishChanges([]message.Update{u})
	return nil
}

// Recent returns the latest messages of a conversation the caller is part of.
func (s *Service) Recent(ctx context.Context, userID, conversationID string, limit int) ([]message.Message, error) {
	if err := s.authorize(ctx, conversationID, userID); err != nil {
		return nil, err
	}
	return s.messages.Recent(ctx, conversationID, limit), nil
}

// History pages backwards from beforeSeq. A beforeSeq of zero reads the
// latest page.
func (s *Service) History(ctx context.Context, userID, conversationID string, beforeSeq int64, limit int) ([]message.Message, error) {
	if beforeSeq <= 0 {
		return s.Recent(ctx, userID, conversationID, limit)
	}
	if err := s.authorize(ctx, conversationID, userID); err != nil {
		return nil, err
	}
	return s.messages.Before(ctx, conversationID, beforeSeq, limit), nil
}

// Search finds messages containing term, ignoring case, newest first.
func (s *Service) Search(ctx context.Context, userID, conversationID, term string) ([]message.Message, error) {
	if err := s.authorize(ctx, conversationID, userID); err != nil {
		return nil, err
	}
	return s.messages.Search(ctx, conversationID, term), nil
}

// ListConversations returns the caller's conversations, most recent first.
func (s *Service) ListConversations(ctx context.Context, userID string) []directory.Conversation {
	return s.directory.ListFor(ctx, userID)
}

// Conversation returns one conversation the caller is part of.
func (s *Service) Conversation(ctx context.Context, userID, conversationID string) (directory.Conversation, error) {
	conv, err := s.directory.Get(ctx, conversationID)
	if err != nil {
		return directory.Conversation{}, err
	}
	if !conv.HasParticipant(userID) {
		return directory.Conversation{}, fmt.Errorf("%w: %s in %s", ErrNotParticipant, userID, conversationID)
	}
	return conv, nil
}

func (s *Service) authorize(ctx context.Context, conversationID, userID string) error {
	_, err := s.Conversation(ctx, userID, conversationID)
	return err
}

func (s *Service) enqueueChanges(ctx context.Context, tx *store.Tx, updates []message.Update) error {
	for _, u := range updates {
		for _, c := range u.Changes() {
			if err := outbox.Enqueue(ctx, tx, outbox.KindMessageStatus, c.ConversationID, c); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Service) publishChanges(updates []message.Update) {
	now := time.Now()
	for _, u := range updates {
		for _, c := range u.Changes() {
			s.metrics.StatusChanged(string(c.To))
			s.publish(bus.MessagesTopic(c.ConversationID), bus.KindMessageStatus, now, c)
		}
	}
}
