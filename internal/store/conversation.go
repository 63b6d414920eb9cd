package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
)

const conversationColumns = `c.id, c.pair_key, c.last_message, c.last_message_at, c.last_message_sender, c.created_at`

// InsertConversation creates a conversation and its members unless a
// conversation with the same pair key already exists. It reports whether a
// row was inserted. Call it inside InTx.
func (q *Queries) InsertConversation(ctx context.Context, c *Conversation) (bool, error) {
	res, err := q.q.ExecContext(ctx, `
		INSERT INTO conversations (id, pair_key, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT(pair_key) DO NOTHING`,
		c.ID, c.PairKey, c.CreatedAt)
	if err != nil {
		return false, fmt.Errorf("insert conversation: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if n == 0 {
		return false, nil
	}
	for _, m := range c.Members {
		if _, err := q.q.ExecContext(ctx, `
			INSERT INTO conversation_members (conversation_id, user_id, display_name, unread_count)
			VALUES (?, ?, ?, 0)`,
			c.ID, m.UserID, m.DisplayName); err != nil {
			return false, fmt.Errorf("insert member %q: %w", m.UserID, err)
		}
	}
	return true, nil
}

// ConversationIDByPair returns the id of the conversation with the given pair
// key, or "" when there is none.
func (q *Queries) ConversationIDByPair(ctx context.Context, pairKey string) (string, error) {
	var id string
	err := q.q.QueryRowContext(ctx, `SELECT id FROM conversations WHERE pair_key = ?`, pairKey).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return id, err
}

// RenameMember updates a participant's display name snapshot. Empty names
// are ignored so a caller that does not know a name cannot erase it.
func (q *Queries) RenameMember(ctx context.Context, conversationID, userID, name string) error {
	if name == "" {
		return nil
	}
	_, err := q.q.ExecContext(ctx, `
		UPDATE conversation_members SET display_name = ?
		WHERE conversation_id = ? AND user_id = ?`, name, conversationID, userID)
	return err
}

// GetConversation returns a conversation with its members, or nil when it
// does not exist.
func (q *Queries) GetConversation(ctx context.Context, id string) (*Conversation, error) {
	var c Conversation
	err := q.q.QueryRowContext(ctx, `SELECT `+conversationColumns+` FROM conversations c WHERE c.id = ?`, id).
		Scan(&c.ID, &c.PairKey, &c.LastMessage, &c.LastMessageAt, &c.LastMessageSender, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	rows, err := q.q.QueryContext(ctx, `
		SELECT user_id, display_name, unread_count
		FROM conversation_members WHERE conversation_id = ?
		ORDER BY user_id`, id)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var m Member
		if err := rows.Scan(&m.UserID, &m.DisplayName, &m.UnreadCount); err != nil {
			return nil, err
		}
		c.Members = append(c.Members, m)
	}
	return &c, rows.Err()
}

// ListConversationsFor returns every conversation userID participates in,
// most recently active first. Conversations without messages rank by their
// creation time.
func (q *Queries) ListConversationsFor(ctx context.Context, userID string) ([]Conversation, error) {
	rows, err := q.q.QueryContext(ctx, `
		SELECT `+conversationColumns+`
		FROM conversations c
		JOIN conversation_members m ON m.conversation_id = c.id
		WHERE m.user_id = ?
		ORDER BY CASE WHEN c.last_message_at = 0 THEN c.created_at ELSE c.last_message_at END DESC, c.id`, userID)
	if err != nil {
		return nil, err
	}

	var convs []Conversation
	index := make(map[string]int)
	func() {
		defer func() { _ = rows.Close() }()
		for rows.Next() {
			var c Conversation
			if err = rows.Scan(&c.ID, &c.PairKey, &c.LastMessage, &c.LastMessageAt, &c.LastMessageSender, &c.CreatedAt); err != nil {
				return
			}
			index[c.ID] = len(convs)
			convs = append(convs, c)
		}
		err = rows.Err()
	}()
	if err != nil || len(convs) == 0 {
		return convs, err
	}

	members, err := q.q.QueryContext(ctx, `
		SELECT conversation_id, user_id, display_name, unread_count
		FROM conversation_members
		WHERE conversation_id IN (SELECT conversation_id FROM conversation_members WHERE user_id = ?)
		ORDER BY conversation_id, user_id`, userID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = members.Close() }()
	for members.Next() {
		var convID string
		var m Member
		if err := members.Scan(&convID, &m.UserID, &m.DisplayName, &m.UnreadCount); err != nil {
			return nil, err
		}
		if i, ok := index[convID]; ok {
			convs[i].Members = append(convs[i].Members, m)
		}
	}
	return convs, members.Err()
}

// RecordLastMessage updates the last-message cache of a conversation and
// increments the unread counter of every member other than senderID. It
// reports false when the conversation does not exist.
func (q *Queries) RecordLastMessage(ctx context.Context, conversationID, senderID, summary string, sentAt int64) (bool, error) {
	res, err := q.q.ExecContext(ctx, `
		UPDATE conversations SET
			last_message = ?,
			last_message_at = ?,
			last_message_sender = ?
		WHERE id = ?`, summary, sentAt, senderID, conversationID)
	if err != nil {
		return false, fmt.Errorf("update last message: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil || n == 0 {
		return false, err
	}
	if _, err := q.q.ExecContext(ctx, `
		UPDATE conversation_members SET unread_count = unread_count + 1
		WHERE conversation_id = ? AND user_id != ?`, conversationID, senderID); err != nil {
		return false, fmt.Errorf("increment unread: %w", err)
	}
	return true, nil
}

// ResetUnread sets a member's unread counter to zero. It reports false when
// userID is not a member of the conversation.
func (q *Queries) ResetUnread(ctx context.Context, conversationID, userID string) (bool, error) {
	res, err := q.q.ExecContext(ctx, `
		UPDATE conversation_members SET unread_count = 0
		WHERE conversation_id = ? AND user_id = ?`, conversationID, userID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// PairKey is the canonical key of an unordered pair of user ids. The
// smaller id is length-prefixed, so distinct pairs never share a key
// whatever bytes the ids contain.
func PairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return strconv.Itoa(len(a)) + ":" + a + b
}
