package bus

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Handler receives the events of one subscription, one at a time and in
// publish order. A returned error is logged and does not stop delivery.
type Handler func(Event) error

// SnapshotFunc produces the current state of a topic. Its events are
// delivered to a new subscriber before any live event.
type SnapshotFunc func() ([]Event, error)

// Publisher is implemented by anything that can fan an event out.
type Publisher interface {
	Publish(evt Event)
}

// Observer receives delivery statistics. *metrics.Metrics implements it.
type Observer interface {
	Delivered(family string)
	HandlerFailed(family string)
	SubscriptionsChanged(delta int)
}

// Bus is an in-process, topic-keyed publish/subscribe registry.
//
// Publishes to one topic are serialized and appended to every subscriber's
// unbounded mailbox, so handlers observe events in publish order and a slow
// handler never blocks a publisher or loses events.
type Bus struct {
	mu     sync.Mutex
	topics map[string]*topic
	next   uint64
	closed bool

	logger   *zap.Logger
	observer Observer
}

type topic struct {
	name string
	// mu serializes publishes and registrations on this topic.
	mu   sync.Mutex
	subs map[uint64]*Subscription
	dead bool
}

// Option configures a Bus.
type Option func(*Bus)

// WithLogger sets the logger used for handler failures.
func WithLogger(l *zap.Logger) Option {
	return func(b *Bus) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithObserver sets the delivery statistics sink.
func WithObserver(o Observer) Option {
	return func(b *Bus) { b.observer = o }
}

// New creates a new event bus.
func New(opts ...Option) *Bus {
	b := &Bus{
		topics: make(map[string]*topic),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Publish delivers evt to every handler subscribed to evt.Topic when the
// publish starts. It never blocks on handlers.
func (b *Bus) Publish(evt Event) {
	b.mu.Lock()
	t := b.topics[evt.Topic]
	b.mu.Unlock()
	if t == nil {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	for _, sub := range t.subs {
		sub.enqueue(evt)
	}
}

// Subscribe registers handler for every future publish to topicName. When
// snapshot is non-nil its events are queued first; the snapshot is taken
// while publishes to the topic are held back, so there is no gap between
// the initial state and live events (an event may be seen twice).
// A snapshot error is logged and the subscription proceeds without it.
func (b *Bus) Subscribe(topicName string, handler Handler, snapshot SnapshotFunc) (*Subscription, error) {
	if handler == nil {
		return nil, fmt.Errorf("subscribe %q: nil handler", topicName)
	}
	family, _, err := ParseTopic(topicName)
	if err != nil {
		return nil, err
	}

	for {
		b.mu.Lock()
		if b.closed {
			b.mu.Unlock()
			return nil, fmt.Errorf("subscribe %q: bus closed", topicName)
		}
		t := b.topics[topicName]
		if t == nil {
			t = &topic{name: topicName, subs: make(map[uint64]*Subscription)}
			b.topics[topicName] = t
		}
		b.next++
		id := b.next
		b.mu.Unlock()

		t.mu.Lock()
		if t.dead {
			// Removed between lookup and lock; look it up again.
			t.mu.Unlock()
			continue
		}
		sub := newSubscription(id, b, t, family, handler)
		if snapshot != nil {
			events, err := snapshot()
			if err != nil {
				b.logger.Warn("topic snapshot failed", zap.String("topic", topicName), zap.Error(err))
			}
			for _, evt := range events {
				sub.enqueue(evt)
			}
		}
		t.subs[id] = sub
		t.mu.Unlock()

		if b.observer != nil {
			b.observer.SubscriptionsChanged(1)
		}
		go sub.run()
		return sub, nil
	}
}

// Unsubscribe cancels sub. It is idempotent.
func (b *Bus) Unsubscribe(sub *Subscription) {
	if sub != nil {
		sub.Cancel()
	}
}

// Close cancels every subscription and rejects new ones.
func (b *Bus) Close() {
	b.mu.Lock()
	b.closed = true
	var subs []*Subscription
	for _, t := range b.topics {
		t.mu.Lock()
		for _, s := range t.subs {
			subs = append(subs, s)
		}
		t.mu.Unlock()
	}
	b.mu.Unlock()

	for _, s := range subs {
		s.Cancel()
	}
}

// remove detaches sub from its topic, dropping the topic once it is empty.
func (b *Bus) remove(sub *Subscription) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	t := sub.topic
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.subs[sub.id]; !ok {
		return false
	}
	delete(t.subs, sub.id)
	if len(t.subs) == 0 {
		t.dead = true
		if b.topics[t.name] == t {
			delete(b.topics, t.name)
		}
	}
	return true
}

func (b *Bus) deliver(sub *Subscription, evt Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("subscription handler panicked",
				zap.String("topic", evt.Topic), zap.String("kind", evt.Kind), zap.Any("panic", r))
			if b.observer != nil {
				b.observer.HandlerFailed(sub.family)
			}
		}
	}()

	if err := sub.handler(evt); err != nil {
		b.logger.Warn("subscription handler failed",
			zap.String("topic", evt.Topic), zap.String("kind", evt.Kind), zap.Error(err))
		if b.observer != nil {
			b.observer.HandlerFailed(sub.family)
		}
		return
	}
	if b.observer != nil {
		b.observer.Delivered(sub.family)
	}
}
