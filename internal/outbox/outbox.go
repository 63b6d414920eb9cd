// Package outbox exports committed domain events to downstream consumers.
// Events are queued in the same transaction that produced them and drained
// by a Relay, so an export never runs ahead of the data it describes.
package outbox

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/matheus3301/parley/internal/store"
)

// Event kinds written to the outbox.
const (
	KindMessageCreated      = "message.created"
	KindMessageStatus       = "message.status"
	KindConversationCreated = "conversation.created"
)

// Record is one exported event.
type Record struct {
	EventID   string
	Kind      string
	Key       string
	Payload   []byte
	CreatedAt time.Time
}

// Enqueue serializes payload and queues it inside tx. key groups related
// events for ordered consumption, typically the conversation id.
func Enqueue(ctx context.Context, tx *store.Tx, kind, key string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", kind, err)
	}
	if err := tx.QueueOutbox(ctx, uuid.NewString(), kind, key, data); err != nil {
		return store.Unavailable(fmt.Errorf("queue %s event: %w", kind, err))
	}
	return nil
}

func recordFromEntry(e store.OutboxEntry) Record {
	return Record{
		EventID:   e.EventID,
		Kind:      e.Kind,
		Key:       e.Key,
		Payload:   e.Payload,
		CreatedAt: time.UnixMilli(e.CreatedAt).UTC(),
	}
}
