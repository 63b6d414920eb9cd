package outbox

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/matheus3301/parley/internal/store"
)

// Observer receives export statistics. *metrics.Metrics implements it.
type Observer interface {
	Exported(n int)
	ExportFailed(n int)
}

// Config tunes the relay loop.
type Config struct {
	Interval    time.Duration
	BatchSize   int
	MaxAttempts int
}

// Relay drains the outbox and hands queued records to an Exporter.
type Relay struct {
	db       *store.DB
	exporter Exporter
	observer Observer
	logger   *zap.Logger
	cfg      Config

	cancel context.CancelFunc
	done   chan struct{}
	// mu serializes passes so Flush and the loop never export a row twice
	// concurrently.
	mu sync.Mutex
}

// NewRelay creates a new outbox relay.
func NewRelay(db *store.DB, exporter Exporter, obs Observer, logger *zap.Logger, cfg Config) *Relay {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Interval <= 0 {
		cfg.Interval = 500 * time.Millisecond
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 5
	}
	return &Relay{db: db, exporter: exporter, observer: obs, logger: logger, cfg: cfg}
}

// Start begins polling the outbox for queued records.
func (r *Relay) Start(ctx context.Context) {
	ctx, r.cancel = context.WithCancel(ctx)
	r.done = make(chan struct{})
	go r.loop(ctx)
}

// Stop stops the relay loop and waits for the current pass to finish.
func (r *Relay) Stop() {
	if r.cancel != nil {
		r.cancel()
		<-r.done
	}
}

func (r *Relay) loop(ctx context.Context) {
	defer close(r.done)
	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if _, err := r.Flush(ctx); err != nil && ctx.Err() == nil {
				r.logger.Error("outbox pass failed", zap.Error(err))
			}
		case <-ctx.Done():
			return
		}
	}
}

// Flush exports one batch of pending records and reports how many were
// exported.
func (r *Relay) Flush(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pending, err := r.db.PendingOutbox(ctx, r.cfg.BatchSize, r.cfg.MaxAttempts)
	if err != nil {
		return 0, store.Unavailable(err)
	}
	if len(pending) == 0 {
		return 0, nil
	}

	batch := make([]Record, len(pending))
	for i, e := range pending {
		batch[i] = recordFromEntry(e)
	}

	if err := r.exporter.Export(ctx, batch); err != nil {
		r.logger.Warn("outbox export failed", zap.Int("records", len(batch)), zap.Error(err))
		for _, e := range pending {
			if markErr := r.db.MarkOutboxFailed(ctx, e.ID, err.Error()); markErr != nil {
				r.logger.Error("failed to mark outbox entry failed", zap.Int64("id", e.ID), zap.Error(markErr))
			}
		}
		if r.observer != nil {
			r.observer.ExportFailed(len(batch))
		}
		return 0, err
	}

	for _, e := range pending {
		if err := r.db.MarkOutboxSent(ctx, e.ID); err != nil {
			r.logger.Error("failed to mark outbox entry sent", zap.Int64("id", e.ID), zap.Error(err))
		}
	}
	if r.observer != nil {
		r.observer.Exported(len(batch))
	}
	r.logger.Debug("outbox exported", zap.Int("records", len(batch)))
	return len(batch), nil
}
