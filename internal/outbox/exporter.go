package outbox

import (
	"context"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Exporter delivers a batch of outbox records downstream. A returned error
// fails the whole batch, which is retried on a later pass.
type Exporter interface {
	Export(ctx context.Context, batch []Record) error
	Close() error
}

// KafkaExporter writes records to a Kafka topic keyed by Record.Key.
type KafkaExporter struct {
	w *kafka.Writer
}

// NewKafkaExporter creates an exporter for topic on the given brokers.
func NewKafkaExporter(brokers []string, topic string) (*KafkaExporter, error) {
	if len(brokers) == 0 || topic == "" {
		return nil, fmt.Errorf("kafka exporter: brokers and topic are required")
	}
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}
	return &KafkaExporter{w: w}, nil
}

// Export writes batch synchronously.
func (k *KafkaExporter) Export(ctx context.Context, batch []Record) error {
	msgs := make([]kafka.Message, len(batch))
	for i, r := range batch {
		msgs[i] = kafka.Message{
			Key:   []byte(r.Key),
			Value: r.Payload,
			Time:  r.CreatedAt,
			Headers: []kafka.Header{
				{Key: "event_id", Value: []byte(r.EventID)},
				{Key: "kind", Value: []byte(r.Kind)},
			},
		}
	}
	if err := k.w.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("kafka write: %w", err)
	}
	return nil
}

// Close flushes pending writes and closes the connection.
func (k *KafkaExporter) Close() error {
	return k.w.Close()
}

// LogExporter writes records to the log. It is used when no broker is
// configured.
type LogExporter struct {
	logger *zap.Logger
}

// NewLogExporter creates a log exporter.
func NewLogExporter(logger *zap.Logger) *LogExporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogExporter{logger: logger}
}

// Export logs each record.
func (l *LogExporter) Export(_ context.Context, batch []Record) error {
	for _, r := range batch {
		l.logger.Info("domain event",
			zap.String("event_id", r.EventID),
			zap.String("kind", r.Kind),
			zap.String("key", r.Key),
			zap.ByteString("payload", r.Payload),
		)
	}
	return nil
}

// Close is a no-op.
func (l *LogExporter) Close() error { return nil }
