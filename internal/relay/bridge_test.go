package relay

import (
	"context"
	"encoding/json"
	"net"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/matheus3301/parley/internal/bus"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []bus.Event
}

func (p *recordingPublisher) Publish(evt bus.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
}

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.events)
}

type countingObserver struct {
	sent, received, dropped atomic.Int64
}

func (o *countingObserver) RelaySent()     { o.sent.Add(1) }
func (o *countingObserver) RelayReceived() { o.received.Add(1) }
func (o *countingObserver) RelayDropped()  { o.dropped.Add(1) }

// silentRedis accepts connections and never answers.
func silentRedis(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	var (
		mu    sync.Mutex
		conns []net.Conn
	)
	go func() {
		for {
			c, err := ln.Accept()
			if err != nil {
				return
			}
			mu.Lock()
			conns = append(conns, c)
			mu.Unlock()
		}
	}()
	t.Cleanup(func() {
		_ = ln.Close()
		mu.Lock()
		defer mu.Unlock()
		for _, c := range conns {
			_ = c.Close()
		}
	})
	return ln.Addr().String()
}

func newTestBridge(local bus.Publisher) *Bridge {
	// The client is never dialled by these tests.
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	return NewBridge(local, rdb, "parley:", nil, nil)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	b := newTestBridge(&recordingPublisher{})
	ts := time.UnixMilli(1_700_000_000_000).UTC()
	evt := bus.Event{
		Topic:     bus.MessagesTopic("c1"),
		Kind:      bus.KindMessageCreated,
		Timestamp: ts,
		Payload:   map[string]string{"id": "m1"},
	}

	data, err := b.encode(evt)
	if err != nil {
		t.Fatal(err)
	}
	got, origin, err := b.decode(string(data))
	if err != nil {
		t.Fatal(err)
	}
	if origin != b.Origin() {
		t.Errorf("origin = %q", origin)
	}
	if got.Topic != evt.Topic || got.Kind != evt.Kind || !got.Timestamp.Equal(ts) {
		t.Errorf("event = %+v", got)
	}
	raw, ok := got.Payload.(json.RawMessage)
	if !ok || string(raw) != `{"id":"m1"}` {
		t.Errorf("payload = %#v", got.Payload)
	}
}

func TestReceiveSkipsOwnOrigin(t *testing.T) {
	local := &recordingPublisher{}
	b := newTestBridge(local)
	other := newTestBridge(&recordingPublisher{})

	evt := bus.Event{Topic: bus.PresenceTopic("u1"), Kind: bus.KindPresenceChanged}
	own, _ := b.encode(evt)
	remote, _ := other.encode(evt)

	if b.receive(string(own)) {
		t.Error("own event republished")
	}
	if !b.receive(string(remote)) {
		t.Error("remote event not republished")
	}
	if len(local.events) != 1 {
		t.Errorf("local received %d events, want 1", len(local.events))
	}
}

func TestReceiveRejectsMalformed(t *testing.T) {
	local := &recordingPublisher{}
	b := newTestBridge(local)
	for _, payload := range []string{"not json", `{"origin":"x","topic":"bogus"}`} {
		if b.receive(payload) {
			t.Errorf("receive(%q) accepted", payload)
		}
	}
	if len(local.events) != 0 {
		t.Errorf("local received %d events", len(local.events))
	}
}

func TestStopWithoutStart(t *testing.T) {
	b := newTestBridge(&recordingPublisher{})
	if err := b.Stop(); err != nil {
		t.Errorf("Stop: %v", err)
	}
}

func TestRelayedTopics(t *testing.T) {
	tests := []struct {
		topic string
		want  bool
	}{
		{bus.PresenceTopic("u1"), true},
		{bus.ConversationsTopic("u1"), true},
		{bus.MessagesTopic("c1"), false},
		{"bogus", false},
	}
	for _, tt := range tests {
		if got := Relayed(tt.topic); got != tt.want {
			t.Errorf("Relayed(%q) = %v, want %v", tt.topic, got, tt.want)
		}
	}
}

func TestPublishKeepsMessageTopicsLocal(t *testing.T) {
	local := &recordingPublisher{}
	b := newTestBridge(local)

	b.Publish(bus.Event{Topic: bus.MessagesTopic("c1"), Kind: bus.KindMessageCreated})
	if n := len(b.queue); n != 0 {
		t.Errorf("queued %d message events, want 0", n)
	}
	b.Publish(bus.Event{Topic: bus.PresenceTopic("u1"), Kind: bus.KindPresenceChanged})
	if n := len(b.queue); n != 1 {
		t.Errorf("queued %d presence events, want 1", n)
	}
	if n := local.count(); n != 2 {
		t.Errorf("local received %d events, want 2", n)
	}
}

func TestReceiveIgnoresMessageTopics(t *testing.T) {
	local := &recordingPublisher{}
	b := newTestBridge(local)
	other := newTestBridge(&recordingPublisher{})

	remote, _ := other.encode(bus.Event{Topic: bus.MessagesTopic("c1"), Kind: bus.KindMessageCreated})
	if b.receive(string(remote)) {
		t.Error("remote message event republished")
	}
	if n := local.count(); n != 0 {
		t.Errorf("local received %d events", n)
	}
}

func TestPublishDoesNotWaitForRedis(t *testing.T) {
	local := &recordingPublisher{}
	obs := &countingObserver{}
	rdb := redis.NewClient(&redis.Options{Addr: silentRedis(t), MaxRetries: -1})
	t.Cleanup(func() { _ = rdb.Close() })
	b := NewBridge(local, rdb, "parley:", obs, nil)
	b.timeout = 200 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	b.wg.Add(1)
	go b.drain(ctx)
	t.Cleanup(func() {
		cancel()
		b.wg.Wait()
	})

	total := QueueSize + 100
	start := time.Now()
	for i := 0; i < total; i++ {
		b.Publish(bus.Event{Topic: bus.PresenceTopic("u1"), Kind: bus.KindPresenceChanged, Payload: i})
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("publishing %d events took %v", total, elapsed)
	}
	if n := local.count(); n != total {
		t.Errorf("local received %d events, want %d", n, total)
	}
	if obs.dropped.Load() == 0 {
		t.Error("expected events dropped once the queue filled")
	}
	if obs.sent.Load() != 0 {
		t.Errorf("sent = %d against a silent server", obs.sent.Load())
	}
}
