package store

import (
	"context"
	"time"
)

// QueueOutbox adds a domain event to the export outbox. Call it inside the
// transaction that produced the event.
func (q *Queries) QueueOutbox(ctx context.Context, eventID, kind, key string, payload []byte) error {
	now := time.Now().UnixMilli()
	_, err := q.q.ExecContext(ctx, `
		INSERT INTO outbox (event_id, kind, event_key, payload, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, 'queued', ?, ?)`,
		eventID, kind, key, payload, now, now)
	return err
}

// PendingOutbox returns up to limit entries still awaiting export, oldest
// first. Failed entries are retried until they reach maxAttempts.
func (q *Queries) PendingOutbox(ctx context.Context, limit, maxAttempts int) ([]OutboxEntry, error) {
	rows, err := q.q.QueryContext(ctx, `
		SELECT id, event_id, kind, event_key, payload, status, attempts, error_message, created_at
		FROM outbox
		WHERE status = 'queued' OR (status = 'failed' AND attempts < ?)
		ORDER BY id ASC
		LIMIT ?`, maxAttempts, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entries []OutboxEntry
	for rows.Next() {
		var e OutboxEntry
		if err := rows.Scan(&e.ID, &e.EventID, &e.Kind, &e.Key, &e.Payload, &e.Status, &e.Attempts, &e.ErrorMessage, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// MarkOutboxSent records a successful export.
func (q *Queries) MarkOutboxSent(ctx context.Context, id int64) error {
	now := time.Now().UnixMilli()
	_, err := q.q.ExecContext(ctx, `
		UPDATE outbox SET status = 'sent', attempts = attempts + 1, error_message = '', updated_at = ?
		WHERE id = ?`, now, id)
	return err
}

// MarkOutboxFailed records a failed export attempt.
func (q *Queries) MarkOutboxFailed(ctx context.Context, id int64, errMsg string) error {
	now := time.Now().UnixMilli()
	_, err := q.q.ExecContext(ctx, `
		UPDATE outbox SET status = 'failed', attempts = attempts + 1, error_message = ?, updated_at = ?
		WHERE id = ?`, errMsg, now, id)
	return err
}

// OutboxCount returns the number of entries with the given status.
func (q *Queries) OutboxCount(ctx context.Context, status string) (int64, error) {
	var count int64
	err := q.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM outbox WHERE status = ?`, status).Scan(&count)
	return count, err
}
