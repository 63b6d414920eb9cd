package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"strings"
)

const messageColumns = `id, conversation_id, seq, sender_id, sender_name, content, message_type,
	attachment_url, attachment_name, attachment_size, attachment_mime, status, sent_at`

// AppendMessage assigns the next sequence number of the conversation to m and
// inserts it. SentAt is raised to one millisecond past the newest message when
// the clock has not advanced, keeping timestamps strictly increasing per
// conversation. Call it inside InTx so the read and the insert are atomic.
func (q *Queries) AppendMessage(ctx context.Context, m *Message) error {
	var maxSeq, maxSent int64
	if err := q.q.QueryRowContext(ctx, `
		SELECT COALESCE(MAX(seq), 0), COALESCE(MAX(sent_at), 0)
		FROM messages WHERE conversation_id = ?`, m.ConversationID).Scan(&maxSeq, &maxSent); err != nil {
		return fmt.Errorf("read conversation head: %w", err)
	}
	m.Seq = maxSeq + 1
	if m.SentAt <= maxSent {
		m.SentAt = maxSent + 1
	}

	_, err := q.q.ExecContext(ctx, `
		INSERT INTO messages (`+messageColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.ConversationID, m.Seq, m.SenderID, m.SenderName, m.Content, m.MessageType,
		m.AttachmentURL, m.AttachmentName, m.AttachmentSize, m.AttachmentMime, m.Status, m.SentAt)
	if err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	return nil
}

// GetMessage returns a message by id, or nil when it does not exist.
func (q *Queries) GetMessage(ctx context.Context, id string) (*Message, error) {
	row := q.q.QueryRowContext(ctx, `SELECT `+messageColumns+` FROM messages WHERE id = ?`, id)
	m, err := scanMessage(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

// RecentMessages returns the newest limit messages of a conversation in
// ascending (sent_at, id) order.
func (q *Queries) RecentMessages(ctx context.Context, conversationID string, limit int) ([]Message, error) {
	rows, err := q.q.QueryContext(ctx, `
		SELECT `+messageColumns+`
		FROM messages
		WHERE conversation_id = ?
		ORDER BY sent_at DESC, id DESC
		LIMIT ?`, conversationID, limit)
	if err != nil {
		return nil, err
	}
	msgs, err := collectMessages(rows)
	if err != nil {
		return nil, err
	}
	slices.Reverse(msgs)
	return msgs, nil
}

// MessagesBefore pages backwards through history: the newest limit messages
// with seq < beforeSeq, returned in ascending order.
func (q *Queries) MessagesBefore(ctx context.Context, conversationID string, beforeSeq int64, limit int) ([]Message, error) {
	rows, err := q.q.QueryContext(ctx, `
		SELECT `+messageColumns+`
		FROM messages
		WHERE conversation_id = ? AND seq < ?
		ORDER BY seq DESC
		LIMIT ?`, conversationID, beforeSeq, limit)
	if err != nil {
		return nil, err
	}
	msgs, err := collectMessages(rows)
	if err != nil {
		return nil, err
	}
	slices.Reverse(msgs)
	return msgs, nil
}

// ScanMessages walks every message of a conversation, newest first, and
// keeps those for which keep returns true.
func (q *Queries) ScanMessages(ctx context.Context, conversationID string, keep func(*Message) bool) ([]Message, error) {
	rows, err := q.q.QueryContext(ctx, `
		SELECT `+messageColumns+`
		FROM messages
		WHERE conversation_id = ?
		ORDER BY sent_at DESC, id DESC`, conversationID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		if keep(m) {
			out = append(out, *m)
		}
	}
	return out, rows.Err()
}

// MessagesAwaiting returns messages of a conversation not sent by userID whose
// status is one of statuses, in ascending order.
func (q *Queries) MessagesAwaiting(ctx context.Context, conversationID, userID string, statuses ...string) ([]Message, error) {
	if len(statuses) == 0 {
		return nil, nil
	}
	query := `SELECT ` + messageColumns + ` FROM messages
		WHERE conversation_id = ? AND sender_id != ? AND status IN (` + strings.Repeat("?, ", len(statuses)-1) + `?)
		ORDER BY seq ASC`
	args := []any{conversationID, userID}
	for _, s := range statuses {
		args = append(args, s)
	}
	rows, err := q.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collectMessages(rows)
}

// SetMessageStatus overwrites the delivery status of a message. It reports
// false when no message has that id.
func (q *Queries) SetMessageStatus(ctx context.Context, id, status string) (bool, error) {
	res, err := q.q.ExecContext(ctx, `UPDATE messages SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMessage(r rowScanner) (*Message, error) {
	var m Message
	if err := r.Scan(&m.ID, &m.ConversationID, &m.Seq, &m.SenderID, &m.SenderName, &m.Content, &m.MessageType,
		&m.AttachmentURL, &m.AttachmentName, &m.AttachmentSize, &m.AttachmentMime, &m.Status, &m.SentAt); err != nil {
		return nil, err
	}
	return &m, nil
}

func collectMessages(rows *sql.Rows) ([]Message, error) {
	defer func() { _ = rows.Close() }()
	var msgs []Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, *m)
	}
	return msgs, rows.Err()
}
