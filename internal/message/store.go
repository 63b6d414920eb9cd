package message

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/matheus3301/parley/internal/status"
	"github.com/matheus3301/parley/internal/store"
)

const (
	// MaxRecent is the upper bound of a Recent or Before read.
	MaxRecent = 100
)

// Store appends and reads conversation messages.
type Store struct {
	db          *store.DB
	logger      *zap.Logger
	recentLimit int
	now         func() time.Time
}

// New creates a message store. recentLimit is the default window returned by
// Recent when the caller passes no limit.
func New(db *store.DB, logger *zap.Logger, recentLimit int) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	if recentLimit <= 0 || recentLimit > MaxRecent {
		recentLimit = MaxRecent
	}
	return &Store{db: db, logger: logger, recentLimit: recentLimit, now: time.Now}
}

// Update is the result of a status change: the message after the change, the
// status it had before, and every status it passed through.
type Update struct {
	Message Message
	From    status.State
	Steps   []status.State
}

// Changed reports whether the update moved the message.
func (u Update) Changed() bool {
	return len(u.Steps) > 0
}

// Changes expands the update into one status change per step.
func (u Update) Changes() []status.Change {
	changes := make([]status.Change, 0, len(u.Steps))
	from := u.From
	for _, to := range u.Steps {
		changes = append(changes, status.Change{
			MessageID:      u.Message.ID,
			ConversationID: u.Message.ConversationID,
			From:           from,
			To:             to,
		})
		from = to
	}
	return changes
}

// Append assigns m an id and a server timestamp and writes it to the
// conversation's log in its own transaction.
func (s *Store) Append(ctx context.Context, conversationID string, m Message) (Message, error) {
	var out Message
	err := s.db.InTx(ctx, func(tx *store.Tx) error {
		var err error
		out, err = s.AppendTx(ctx, tx, conversationID, m)
		return err
	})
	return out, err
}

// AppendTx is Append inside a caller-owned transaction.
func (s *Store) AppendTx(ctx context.Context, tx *store.Tx, conversationID string, m Message) (Message, error) {
	m.ConversationID = conversationID
	m.DeliveryStatus = status.Sent
	m.Timestamp = s.now()
	if m.Type == "" {
		m.Type = TypeText
	}
	if err := m.validate(); err != nil {
		return Message{}, err
	}
	id, err := uuid.NewV7()
	if err != nil {
		return Message{}, fmt.Errorf("message id: %w", err)
	}
	m.ID = id.String()

	row := toRow(&m)
	if err := tx.AppendMessage(ctx, row); err != nil {
		var sqlErr sqlite3.Error
		if errors.As(err, &sqlErr) && sqlErr.ExtendedCode == sqlite3.ErrConstraintForeignKey {
			return Message{}, fmt.Errorf("%w: %s", ErrUnknownConversation, conversationID)
		}
		return Message{}, store.Unavailable(fmt.Errorf("append message: %w", err))
	}
	return fromRow(row), nil
}

// Recent returns the newest limit messages of a conversation in ascending
// (timestamp, id) order. limit is clamped to [1, MaxRecent]; zero or less
// selects the configured default. Read failures yield an empty result.
func (s *Store) Recent(ctx context.Context, conversationID string, limit int) []Message {
	rows, err := s.db.RecentMessages(ctx, conversationID, s.clamp(limit))
	if err != nil {
		s.logger.Warn("recent messages unavailable", zap.String("conversation_id", conversationID), zap.Error(err))
		return nil
	}
	return fromRows(rows)
}

// Before pages backwards through history, returning up to limit messages
// older than beforeSeq in ascending order. Read failures yield an empty result.
func (s *Store) Before(ctx context.Context, conversationID string, beforeSeq int64, limit int) []Message {
	rows, err := s.db.MessagesBefore(ctx, conversationID, beforeSeq, s.clamp(limit))
	if err != nil {
		s.logger.Warn("message history unavailable", zap.String("conversation_id", conversationID), zap.Error(err))
		return nil
	}
	return fromRows(rows)
}

// Search returns the messages whose content contains term, ignoring case,
// newest first. A blank term matches nothing.
func (s *Store) Search(ctx context.Context, conversationID, term string) []Message {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return nil
	}
	rows, err := s.db.ScanMessages(ctx, conversationID, func(m *store.Message) bool {
		return strings.Contains(strings.ToLower(m.Content), needle)
	})
	if err != nil {
		s.logger.Warn("message search unavailable", zap.String("conversation_id", conversationID), zap.Error(err))
		return nil
	}
	return fromRows(rows)
}

// Get returns one message by id.
func (s *Store) Get(ctx context.Context, id string) (Message, error) {
	row, err := s.db.GetMessage(ctx, id)
	if err != nil {
		return Message{}, store.Unavailable(fmt.Errorf("get message: %w", err))
	}
	if row == nil {
		return Message{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return fromRow(row), nil
}

// UpdateStatus moves a message forward to the given status in its own
// transaction.
func (s *Store) UpdateStatus(ctx context.Context, id string, to status.State) (Update, error) {
	var out Update
	err := s.db.InTx(ctx, func(tx *store.Tx) error {
		var err error
		out, err = s.UpdateStatusTx(ctx, tx, id, to)
		return err
	})
	return out, err
}

// UpdateStatusTx moves a message forward to the given status. Moving to the
// current status is a no-op; a jump passes through the intermediate states;
// a regression fails with status.ErrInvalidTransition.
func (s *Store) UpdateStatusTx(ctx context.Context, tx *store.Tx, id string, to status.State) (Update, error) {
	row, err := tx.GetMessage(ctx, id)
	if err != nil {
		return Update{}, store.Unavailable(fmt.Errorf("get message: %w", err))
	}
	if row == nil {
		return Update{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return s.advance(ctx, tx, fromRow(row), to)
}

// AdvanceAllTx moves every message of a conversation not sent by readerID
// forward to the given status, in log order. Messages already at or past it
// are left alone.
func (s *Store) AdvanceAllTx(ctx context.Context, tx *store.Tx, conversationID, readerID string, to status.State) ([]Update, error) {
	var behind []string
	for _, st := range []status.State{status.Sent, status.Delivered, status.Read} {
		if !st.AtLeast(to) {
			behind = append(behind, string(st))
		}
	}
	rows, err := tx.MessagesAwaiting(ctx, conversationID, readerID, behind...)
	if err != nil {
		return nil, store.Unavailable(fmt.Errorf("pending messages: %w", err))
	}

	updates := make([]Update, 0, len(rows))
	for i := range rows {
		u, err := s.advance(ctx, tx, fromRow(&rows[i]), to)
		if err != nil {
			return nil, err
		}
		updates = append(updates, u)
	}
	return updates, nil
}

func (s *Store) advance(ctx context.Context, tx *store.Tx, m Message, to status.State) (Update, error) {
	from := m.DeliveryStatus
	steps, err := status.Steps(from, to)
	if err != nil {
		return Update{}, fmt.Errorf("message %s: %w", m.ID, err)
	}
	if len(steps) == 0 {
		return Update{Message: m, From: from}, nil
	}
	if _, err := tx.SetMessageStatus(ctx, m.ID, string(to)); err != nil {
		return Update{}, store.Unavailable(fmt.Errorf("set status: %w", err))
	}
	m.DeliveryStatus = to
	return Update{Message: m, From: from, Steps: steps}, nil
}

func (s *Store) clamp(limit int) int {
	if limit <= 0 {
		return s.recentLimit
	}
	return min(limit, MaxRecent)
}
