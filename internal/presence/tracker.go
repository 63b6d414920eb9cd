// Package presence tracks each user's online flag and last-seen time.
package presence

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/matheus3301/parley/internal/bus"
	"github.com/matheus3301/parley/internal/store"
)

// Record is the presence of one user.
type Record struct {
	UserID   string    `json:"userId"`
	IsOnline bool      `json:"isOnline"`
	LastSeen time.Time `json:"lastSeen"`
}

// Tracker stores presence records and publishes every change to the user's
// presence topic.
type Tracker struct {
	db     *store.DB
	bus    bus.Publisher
	logger *zap.Logger
	now    func() time.Time

	// mu keeps presence events in write order.
	mu sync.Mutex
}

// New creates a presence tracker.
func New(db *store.DB, pub bus.Publisher, logger *zap.Logger) *Tracker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tracker{db: db, bus: pub, logger: logger, now: time.Now}
}

// SetStatus records userID as online or offline at the current time and
// publishes the new record.
func (t *Tracker) SetStatus(ctx context.Context, userID string, online bool) (Record, error) {
	if userID == "" {
		return Record{}, errors.New("set presence: empty user id")
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	row, err := t.db.UpsertPresence(ctx, userID, online, t.now().UnixMilli())
	if err != nil {
		return Record{}, store.Unavailable(fmt.Errorf("set presence: %w", err))
	}
	rec := fromRow(row)

	t.logger.Debug("presence changed", zap.String("user_id", userID), zap.Bool("online", online))
	if t.bus != nil {
		t.bus.Publish(bus.Event{
			Topic:     bus.PresenceTopic(userID),
			Kind:      bus.KindPresenceChanged,
			Timestamp: rec.LastSeen,
			Payload:   rec,
		})
	}
	return rec, nil
}

// GetStatus returns the last known record of userID. A user who never
// reported, or whose record cannot be read, is offline since the Unix epoch.
func (t *Tracker) GetStatus(ctx context.Context, userID string) Record {
	row, err := t.db.GetPresence(ctx, userID)
	if err != nil {
		t.logger.Warn("presence unavailable", zap.String("user_id", userID), zap.Error(err))
	}
	if row == nil {
		return Record{UserID: userID, LastSeen: time.Unix(0, 0).UTC()}
	}
	return fromRow(*row)
}

// Online lists every user currently flagged online.
func (t *Tracker) Online(ctx context.Context) ([]Record, error) {
	rows, err := t.db.OnlinePresence(ctx)
	if err != nil {
		return nil, store.Unavailable(fmt.Errorf("online presence: %w", err))
	}
	out := make([]Record, len(rows))
	for i, row := range rows {
		out[i] = fromRow(row)
	}
	return out, nil
}

// ResetAll flags every user offline. The daemon calls it on start since
// records left online by a previous process are stale.
func (t *Tracker) ResetAll(ctx context.Context) (int64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	n, err := t.db.ResetPresence(ctx, t.now().UnixMilli())
	if err != nil {
		return 0, store.Unavailable(fmt.Errorf("reset presence: %w", err))
	}
	return n, nil
}

// Snapshot returns the current record of userID as a presence topic event.
func (t *Tracker) Snapshot(ctx context.Context, userID string) []bus.Event {
	rec := t.GetStatus(ctx, userID)
	return []bus.Event{{
		Topic:     bus.PresenceTopic(userID),
		Kind:      bus.KindSnapshot,
		Timestamp: rec.LastSeen,
		Payload:   rec,
	}}
}

func fromRow(row store.Presence) Record {
	return Record{
		UserID:   row.UserID,
		IsOnline: row.IsOnline,
		LastSeen: time.UnixMilli(row.LastSeen).UTC(),
	}
}
