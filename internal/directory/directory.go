// Package directory maps pairs of participants to conversations and keeps
// each conversation's last-message summary and unread counters.
package directory

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/matheus3301/parley/internal/store"
)

// PreviewRunes bounds the last-message summary stored on a conversation.
const PreviewRunes = 100

var (
	// ErrInvalidParticipants is returned when a pair is empty or not distinct.
	ErrInvalidParticipants = errors.New("invalid participants")
	// ErrNotParticipant is returned when a user is not part of a conversation.
	ErrNotParticipant = errors.New("not a participant")
	// ErrNotFound is returned for an unknown conversation id.
	ErrNotFound = errors.New("conversation not found")
)

// Conversation is a 1:1 channel between two participants.
type Conversation struct {
	ID                string            `json:"id"`
	Participants      []string          `json:"participants"`
	ParticipantNames  map[string]string `json:"participantNames"`
	LastMessage       string            `json:"lastMessage"`
	LastMessageTime   time.Time         `json:"lastMessageTime"`
	LastMessageSender string            `json:"lastMessageSender"`
	UnreadCount       map[string]int    `json:"unreadCount"`
	CreatedAt         time.Time         `json:"createdAt"`
}

// HasParticipant reports whether userID is part of the conversation.
func (c *Conversation) HasParticipant(userID string) bool {
	return slices.Contains(c.Participants, userID)
}

// Peer returns the other participant, or "" when userID is not a participant.
func (c *Conversation) Peer(userID string) string {
	if !c.HasParticipant(userID) {
		return ""
	}
	for _, p := range c.Participants {
		if p != userID {
			return p
		}
	}
	return ""
}

// Directory is the conversation registry.
type Directory struct {
	db     *store.DB
	logger *zap.Logger
	now    func() time.Time
}

// New creates a conversation directory.
func New(db *store.DB, logger *zap.Logger) *Directory {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Directory{db: db, logger: logger, now: time.Now}
}

// FindOrCreate returns the conversation between a and b, creating it when the
// pair has none. Concurrent callers for the same pair converge on a single
// conversation. names maps participant ids to display names; non-empty names
// refresh the snapshot of an existing conversation.
func (d *Directory) FindOrCreate(ctx context.Context, a, b string, names map[string]string) (id string, created bool, err error) {
	err = d.db.InTx(ctx, func(tx *store.Tx) error {
		id, created, err = d.FindOrCreateTx(ctx, tx, a, b, names)
		return err
	})
	return id, created, err
}

// FindOrCreateTx is FindOrCreate inside a caller-owned transaction.
func (d *Directory) FindOrCreateTx(ctx context.Context, tx *store.Tx, a, b string, names map[string]string) (string, bool, error) {
	if a == "" || b == "" || a == b {
		return "", false, fmt.Errorf("%w: %q and %q", ErrInvalidParticipants, a, b)
	}

	key := store.PairKey(a, b)
	created, err := tx.InsertConversation(ctx, &store.Conversation{
		ID:        uuid.NewString(),
		PairKey:   key,
		CreatedAt: d.now().UnixMilli(),
		Members: []store.Member{
			{UserID: a, DisplayName: names[a]},
			{UserID: b, DisplayName: names[b]},
		},
	})
	if err != nil {
		return "", false, store.Unavailable(err)
	}

	id, err := tx.ConversationIDByPair(ctx, key)
	if err != nil {
		return "", false, store.Unavailable(fmt.Errorf("lookup pair: %w", err))
	}
	if id == "" {
		return "", false, store.Unavailable(errors.New("conversation for pair vanished"))
	}
	if created {
		return id, true, nil
	}

	for _, user := range []string{a, b} {
		if err := tx.RenameMember(ctx, id, user, names[user]); err != nil {
			return "", false, store.Unavailable(fmt.Errorf("rename member: %w", err))
		}
	}
	return id, false, nil
}

// RecordNewMessage updates the last-message summary of a conversation and
// increments the unread counter of every participant except the sender.
func (d *Directory) RecordNewMessage(ctx context.Context, conversationID, senderID, summary string, sentAt time.Time) error {
	return d.db.InTx(ctx, func(tx *store.Tx) error {
		return d.RecordNewMessageTx(ctx, tx, conversationID, senderID, summary, sentAt)
	})
}

// RecordNewMessageTx is RecordNewMessage inside a caller-owned transaction.
func (d *Directory) RecordNewMessageTx(ctx context.Context, tx *store.Tx, conversationID, senderID, summary string, sentAt time.Time) error {
	found, err := tx.RecordLastMessage(ctx, conversationID, senderID, Preview(summary), sentAt.UnixMilli())
	if err != nil {
		return store.Unavailable(err)
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrNotFound, conversationID)
	}
	return nil
}

// MarkRead resets userID's unread counter. It is a no-op when the counter is
// already zero.
func (d *Directory) MarkRead(ctx context.Context, conversationID, userID string) error {
	return d.db.InTx(ctx, func(tx *store.Tx) error {
		return d.MarkReadTx(ctx, tx, conversationID, userID)
	})
}

// MarkReadTx is MarkRead inside a caller-owned transaction.
func (d *Directory) MarkReadTx(ctx context.Context, tx *store.Tx, conversationID, userID string) error {
	ok, err := tx.ResetUnread(ctx, conversationID, userID)
	if err != nil {
		return store.Unavailable(fmt.Errorf("reset unread: %w", err))
	}
	if !ok {
		return fmt.Errorf("%w: %s in %s", ErrNotParticipant, userID, conversationID)
	}
	return nil
}

// ListFor returns every conversation of userID, most recently active first.
// Read failures yield an empty result.
func (d *Directory) ListFor(ctx context.Context, userID string) []Conversation {
	rows, err := d.db.ListConversationsFor(ctx, userID)
	if err != nil {
		d.logger.Warn("conversation list unavailable", zap.String("user_id", userID), zap.Error(err))
		return nil
	}
	out := make([]Conversation, len(rows))
	for i := range rows {
		out[i] = fromRow(&rows[i])
	}
	return out
}

// Get returns a conversation by id.
func (d *Directory) Get(ctx context.Context, id string) (Conversation, error) {
	return get(ctx, &d.db.Queries, id)
}

// GetTx is Get inside a caller-owned transaction.
func (d *Directory) GetTx(ctx context.Context, tx *store.Tx, id string) (Conversation, error) {
	return get(ctx, &tx.Queries, id)
}

// Preview truncates a message summary to PreviewRunes runes.
func Preview(s string) string {
	if utf8.RuneCountInString(s) <= PreviewRunes {
		return s
	}
	runes := []rune(s)
	return string(runes[:PreviewRunes])
}

func get(ctx context.Context, q *store.Queries, id string) (Conversation, error) {
	row, err := q.GetConversation(ctx, id)
	if err != nil {
		return Conversation{}, store.Unavailable(fmt.Errorf("get conversation: %w", err))
	}
	if row == nil {
		return Conversation{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return fromRow(row), nil
}

func fromRow(row *store.Conversation) Conversation {
	c := Conversation{
		ID:                row.ID,
		Participants:      make([]string, 0, len(row.Members)),
		ParticipantNames:  make(map[string]string, len(row.Members)),
		LastMessage:       row.LastMessage,
		LastMessageSender: row.LastMessageSender,
		UnreadCount:       make(map[string]int, len(row.Members)),
		CreatedAt:         time.UnixMilli(row.CreatedAt).UTC(),
	}
	if row.LastMessageAt > 0 {
		c.LastMessageTime = time.UnixMilli(row.LastMessageAt).UTC()
	}
	for _, m := range row.Members {
		c.Participants = append(c.Participants, m.UserID)
		c.ParticipantNames[m.UserID] = m.DisplayName
		c.UnreadCount[m.UserID] = m.UnreadCount
	}
	return c
}
