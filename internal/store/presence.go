package store

import (
	"context"
	"database/sql"
	"errors"
)

// UpsertPresence writes a user's online flag. last_seen becomes now, or one
// millisecond past the stored value when the clock has not advanced, so it
// strictly increases with every write.
func (q *Queries) UpsertPresence(ctx context.Context, userID string, online bool, now int64) (Presence, error) {
	p := Presence{UserID: userID}
	err := q.q.QueryRowContext(ctx, `
		INSERT INTO presence (user_id, is_online, last_seen)
		VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			is_online = excluded.is_online,
			last_seen = MAX(excluded.last_seen, presence.last_seen + 1)
		RETURNING is_online, last_seen`, userID, online, now).Scan(&p.IsOnline, &p.LastSeen)
	return p, err
}

// GetPresence returns the stored presence of a user, or nil when the user
// never reported a status.
func (q *Queries) GetPresence(ctx context.Context, userID string) (*Presence, error) {
	p := Presence{UserID: userID}
	err := q.q.QueryRowContext(ctx, `SELECT is_online, last_seen FROM presence WHERE user_id = ?`, userID).
		Scan(&p.IsOnline, &p.LastSeen)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// OnlinePresence lists every user currently flagged online.
func (q *Queries) OnlinePresence(ctx context.Context) ([]Presence, error) {
	rows, err := q.q.QueryContext(ctx, `
		SELECT user_id, is_online, last_seen FROM presence
		WHERE is_online = 1 ORDER BY user_id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []Presence
	for rows.Next() {
		var p Presence
		if err := rows.Scan(&p.UserID, &p.IsOnline, &p.LastSeen); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// ResetPresence flags every online user offline and returns how many rows
// changed.
func (q *Queries) ResetPresence(ctx context.Context, now int64) (int64, error) {
	res, err := q.q.ExecContext(ctx, `
		UPDATE presence SET is_online = 0, last_seen = MAX(?, last_seen + 1)
		WHERE is_online = 1`, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
