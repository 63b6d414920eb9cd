// Package relay carries fan-out events between daemon instances over Redis
// pub/sub. A Bridge is a bus.Publisher: local subscribers see the presence
// and conversation-list events published on any instance. Message topics stay
// local because each instance owns its own conversation store.
package relay

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/matheus3301/parley/internal/bus"
)

// QueueSize bounds the events waiting to be sent to Redis.
const QueueSize = 1024

// relayedFamilies are the topic families shared between instances.
var relayedFamilies = []string{bus.TopicPresence, bus.TopicConversations}

// Observer receives relay statistics. *metrics.Metrics implements it.
type Observer interface {
	RelaySent()
	RelayReceived()
	RelayDropped()
}

// Relayed reports whether events on topic cross instances.
func Relayed(topic string) bool {
	family, _, err := bus.ParseTopic(topic)
	return err == nil && slices.Contains(relayedFamilies, family)
}

type outgoing struct {
	topic string
	data  []byte
}

// envelope is the wire form of a relayed event.
type envelope struct {
	Origin    string          `json:"origin"`
	Topic     string          `json:"topic"`
	Kind      string          `json:"kind"`
	Timestamp time.Time       `json:"ts"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

// Bridge publishes locally and to Redis, and republishes events from other
// instances on the local bus.
type Bridge struct {
	local    bus.Publisher
	rdb      redis.UniversalClient
	prefix   string
	origin   string
	timeout  time.Duration
	observer Observer
	logger   *zap.Logger
	queue    chan outgoing

	mu     sync.Mutex
	pubsub *redis.PubSub
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewBridge creates a bridge publishing to channels named prefix+topic.
func NewBridge(local bus.Publisher, rdb redis.UniversalClient, prefix string, obs Observer, logger *zap.Logger) *Bridge {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bridge{
		local:    local,
		rdb:      rdb,
		prefix:   prefix,
		origin:   uuid.NewString(),
		timeout:  2 * time.Second,
		observer: obs,
		logger:   logger,
		queue:    make(chan outgoing, QueueSize),
	}
}

// Origin identifies this instance on the wire.
func (b *Bridge) Origin() string {
	return b.origin
}

// Publish delivers evt to local subscribers and queues relayed topics for
// the other instances. It never waits on Redis: when the queue is full the
// event is dropped for remote instances and local delivery is unaffected.
func (b *Bridge) Publish(evt bus.Event) {
	b.local.Publish(evt)
	if !Relayed(evt.Topic) {
		return
	}

	data, err := b.encode(evt)
	if err != nil {
		b.logger.Warn("relay encode failed", zap.String("topic", evt.Topic), zap.Error(err))
		return
	}
	select {
	case b.queue <- outgoing{topic: evt.Topic, data: data}:
	default:
		b.logger.Warn("relay queue full, event not relayed", zap.String("topic", evt.Topic), zap.String("kind", evt.Kind))
		if b.observer != nil {
			b.observer.RelayDropped()
		}
	}
}

// Start subscribes to the relayed topic families, begins republishing remote
// events locally and starts draining the outgoing queue. It returns once the
// subscription is confirmed.
func (b *Bridge) Start(ctx context.Context) error {
	patterns := make([]string, 0, len(relayedFamilies))
	for _, family := range relayedFamilies {
		patterns = append(patterns, b.prefix+family+":*")
	}
	ps := b.rdb.PSubscribe(ctx, patterns...)
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return fmt.Errorf("relay subscribe: %w", err)
	}

	loopCtx, cancel := context.WithCancel(context.Background())
	b.mu.Lock()
	b.pubsub = ps
	b.cancel = cancel
	b.mu.Unlock()

	b.wg.Add(2)
	go b.loop(loopCtx, ps.Channel())
	go b.drain(loopCtx)
	b.logger.Info("relay started", zap.String("origin", b.origin), zap.Strings("patterns", patterns))
	return nil
}

// Stop ends the subscription loop and the sender. Events still queued are
// not sent.
func (b *Bridge) Stop() error {
	b.mu.Lock()
	ps, cancel := b.pubsub, b.cancel
	b.pubsub, b.cancel = nil, nil
	b.mu.Unlock()
	if ps == nil {
		return nil
	}
	cancel()
	err := ps.Close()
	b.wg.Wait()
	return err
}

// drain sends queued events to Redis one at a time until ctx is done.
func (b *Bridge) drain(ctx context.Context) {
	defer b.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case out := <-b.queue:
			b.send(ctx, out)
		}
	}
}

func (b *Bridge) send(ctx context.Context, out outgoing) {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()
	if err := b.rdb.Publish(ctx, b.prefix+out.topic, out.data).Err(); err != nil {
		b.logger.Warn("relay publish failed", zap.String("topic", out.topic), zap.Error(err))
		return
	}
	if b.observer != nil {
		b.observer.RelaySent()
	}
}

func (b *Bridge) loop(ctx context.Context, ch <-chan *redis.Message) {
	defer b.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			b.receive(msg.Payload)
		}
	}
}

// receive republishes a remote event locally, skipping our own echoes.
func (b *Bridge) receive(payload string) bool {
	evt, origin, err := b.decode(payload)
	if err != nil {
		b.logger.Warn("relay decode failed", zap.Error(err))
		return false
	}
	if origin == b.origin || !Relayed(evt.Topic) {
		return false
	}
	b.local.Publish(evt)
	if b.observer != nil {
		b.observer.RelayReceived()
	}
	return true
}

func (b *Bridge) encode(evt bus.Event) ([]byte, error) {
	env := envelope{Origin: b.origin, Topic: evt.Topic, Kind: evt.Kind, Timestamp: evt.Timestamp}
	if evt.Payload != nil {
		raw, err := json.Marshal(evt.Payload)
		if err != nil {
			return nil, err
		}
		env.Payload = raw
	}
	return json.Marshal(env)
}

func (b *Bridge) decode(payload string) (bus.Event, string, error) {
	var env envelope
	if err := json.NewDecoder(strings.NewReader(payload)).Decode(&env); err != nil {
		return bus.Event{}, "", err
	}
	if _, _, err := bus.ParseTopic(env.Topic); err != nil {
		return bus.Event{}, "", err
	}
	evt := bus.Event{Topic: env.Topic, Kind: env.Kind, Timestamp: env.Timestamp}
	if len(env.Payload) > 0 {
		evt.Payload = env.Payload
	}
	return evt, env.Origin, nil
}
