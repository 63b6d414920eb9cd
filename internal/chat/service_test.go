package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/matheus3301/parley/internal/attachment"
	"github.com/matheus3301/parley/internal/bus"
	"github.com/matheus3301/parley/internal/directory"
	"github.com/matheus3301/parley/internal/message"
	"github.com/matheus3301/parley/internal/presence"
	"github.com/matheus3301/parley/internal/status"
	"github.com/matheus3301/parley/internal/store"
)

// blockingGateway waits for the context before failing, like a stalled upload.
type blockingGateway struct{}

func (blockingGateway) Upload(ctx context.Context, _ []byte, _, _ string) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

// countingGateway accepts every upload and counts calls.
type countingGateway struct {
	mu    sync.Mutex
	calls int
	mimes []string
}

func (g *countingGateway) Upload(_ context.Context, _ []byte, name, mime string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls++
	g.mimes = append(g.mimes, mime)
	return "https://files.example.com/" + name, nil
}

type harness struct {
	svc *Service
	db  *store.DB
	bus *bus.Bus
	gw  *countingGateway
}

func newHarness(t *testing.T, gw attachment.Gateway) *harness {
	t.Helper()
	db, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Migrate(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })

	b := bus.New()
	t.Cleanup(b.Close)

	h := &harness{db: db, bus: b}
	if gw == nil {
		h.gw = &countingGateway{}
		gw = h.gw
	}
	h.svc = New(Deps{
		DB:          db,
		Messages:    message.New(db, nil, 0),
		Directory:   directory.New(db, nil),
		Presence:    presence.New(db, b, nil),
		Attachments: gw,
		Publisher:   b,
		Subscriber:  b,
	}, Config{UploadTimeout: time.Second})
	return h
}

func (h *harness) conversation(t *testing.T) string {
	t.Helper()
	id, _, err := h.svc.CreateOrGetConversation(context.Background(), "u1", "u2",
		map[string]string{"u1": "Alice", "u2": "Bob"})
	if err != nil {
		t.Fatal(err)
	}
	return id
}

func (h *harness) get(t *testing.T, userID, convID string) directory.Conversation {
	t.Helper()
	c, err := h.svc.Conversation(context.Background(), userID, convID)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

// inbox collects events from one subscription.
type inbox struct {
	mu     sync.Mutex
	events []bus.Event
	signal chan struct{}
}

func newInbox() *inbox { return &inbox{signal: make(chan struct{}, 256)} }

func (in *inbox) handle(evt bus.Event) error {
	in.mu.Lock()
	in.events = append(in.events, evt)
	in.mu.Unlock()
	in.signal <- struct{}{}
	return nil
}

func (in *inbox) wait(t *testing.T, n int) []bus.Event {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		in.mu.Lock()
		if len(in.events) >= n {
			out := append([]bus.Event(nil), in.events...)
			in.mu.Unlock()
			return out
		}
		got := len(in.events)
		in.mu.Unlock()
		select {
		case <-in.signal:
		case <-deadline:
			t.Fatalf("timeout waiting for %d events, got %d", n, got)
		}
	}
}

func TestFirstContactScenario(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()

	id, created, err := h.svc.CreateOrGetConversation(ctx, "u1", "u2", map[string]string{"u1": "Alice", "u2": "Bob"})
	if err != nil || !created {
		t.Fatalf("CreateOrGetConversation = %q, %v, %v", id, created, err)
	}
	if _, err := h.svc.SendText(ctx, id, "u1", "Alice", "hi"); err != nil {
		t.Fatalf("SendText: %v", err)
	}

	c := h.get(t, "u1", id)
	if c.UnreadCount["u2"] != 1 || c.UnreadCount["u1"] != 0 {
		t.Errorf("unread = %v", c.UnreadCount)
	}
	if c.LastMessage != "hi" || c.LastMessageSender != "u1" {
		t.Errorf("last message = %q by %q", c.LastMessage, c.LastMessageSender)
	}
}

func TestCreateOrGetConcurrentYieldsOneID(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()

	const n = 20
	ids := make([]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			a, b := "u1", "u2"
			if i%2 == 0 {
				a, b = b, a
			}
			id, _, err := h.svc.CreateOrGetConversation(ctx, a, b, nil)
			if err != nil {
				t.Errorf("call %d: %v", i, err)
			}
			ids[i] = id
		}(i)
	}
	wg.Wait()

	distinct := map[string]bool{}
	for _, id := range ids {
		distinct[id] = true
	}
	if len(distinct) != 1 {
		t.Errorf("got %d distinct ids: %v", len(distinct), distinct)
	}
}

func TestSendTextRoundTrip(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()
	id := h.conversation(t)

	sent, err := h.svc.SendText(ctx, id, "u1", "Alice", "  hello there  ")
	if err != nil {
		t.Fatal(err)
	}
	msgs, err := h.svc.Recent(ctx, "u2", id, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(msgs) != 1 {
		t.Fatalf("got %d messages", len(msgs))
	}
	got := msgs[0]
	if got.ID != sent.ID || got.Content != "hello there" || got.SenderID != "u1" || got.Type != message.TypeText {
		t.Errorf("round trip = %+v", got)
	}
}

func TestSendTextValidation(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()
	id := h.conversation(t)

	if _, err := h.svc.SendText(ctx, id, "u1", "Alice", "   \n\t"); !errors.Is(err, ErrEmptyMessage) {
		t.Errorf("blank text err = %v, want ErrEmptyMessage", err)
	}
	if _, err := h.svc.SendText(ctx, id, "u3", "Eve", "hi"); !errors.Is(err, ErrNotParticipant) {
		t.Errorf("outsider err = %v, want ErrNotParticipant", err)
	}
	if _, err := h.svc.SendText(ctx, "missing", "u1", "Alice", "hi"); !errors.Is(err, directory.ErrNotFound) {
		t.Errorf("unknown conversation err = %v, want ErrNotFound", err)
	}

	c := h.get(t, "u1", id)
	if c.UnreadCount["u2"] != 0 || c.LastMessage != "" {
		t.Errorf("rejected sends changed the conversation: %+v", c)
	}
}

func TestRecentIsOrdered(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()
	id := h.conversation(t)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sender := "u1"
			if i%2 == 1 {
				sender = "u2"
			}
			if _, err := h.svc.SendText(ctx, id, sender, sender, "m"); err != nil {
				t.Errorf("SendText: %v", err)
			}
		}(i)
	}
	wg.Wait()

	msgs, _ := h.svc.Recent(ctx, "u1", id, 100)
	if len(msgs) != 10 {
		t.Fatalf("got %d messages", len(msgs))
	}
	for i := 1; i < len(msgs); i++ {
		prev, cur := msgs[i-1], msgs[i]
		if cur.Timestamp.Before(prev.Timestamp) ||
			(cur.Timestamp.Equal(prev.Timestamp) && cur.ID < prev.ID) {
			t.Errorf("message %d out of order", i)
		}
	}
}

func TestSendFileTooLarge(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()
	id := h.conversation(t)

	big := bytes.Repeat([]byte{'x'}, 11<<20)
	_, err := h.svc.SendFile(ctx, id, "u1", "Alice", File{Name: "big.bin", Data: big}, 0)
	if !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("err = %v, want ErrFileTooLarge", err)
	}
	if h.gw.calls != 0 {
		t.Error("oversize file was uploaded")
	}
	if msgs, _ := h.svc.Recent(ctx, "u1", id, 10); len(msgs) != 0 {
		t.Errorf("got %d messages, want none", len(msgs))
	}
	if c := h.get(t, "u1", id); c.UnreadCount["u2"] != 0 {
		t.Errorf("unread changed to %d", c.UnreadCount["u2"])
	}
}

func TestSendFileEmpty(t *testing.T) {
	h := newHarness(t, nil)
	id := h.conversation(t)
	if _, err := h.svc.SendFile(context.Background(), id, "u1", "Alice", File{Name: "a"}, 0); !errors.Is(err, ErrEmptyFile) {
		t.Errorf("err = %v, want ErrEmptyFile", err)
	}
}

func TestSendFileImageAndSniffing(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()
	id := h.conversation(t)

	png := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 16)...)
	m, err := h.svc.SendFile(ctx, id, "u1", "Alice", File{Name: "photo.png", Data: png}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if m.Type != message.TypeImage {
		t.Errorf("type = %q, want image", m.Type)
	}
	if m.Content != "photo.png" {
		t.Errorf("caption = %q, want file name", m.Content)
	}
	if m.Attachment == nil || m.Attachment.URL != "https://files.example.com/photo.png" || m.Attachment.SizeBytes != int64(len(png)) {
		t.Errorf("attachment = %+v", m.Attachment)
	}

	doc, err := h.svc.SendFile(ctx, id, "u1", "Alice", File{Name: "a.pdf", MimeType: "application/pdf", Data: []byte("%PDF"), Caption: "contract"}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Type != message.TypeFile || doc.Content != "contract" {
		t.Errorf("doc = %q %q", doc.Type, doc.Content)
	}
	if h.gw.mimes[0] != "image/png" {
		t.Errorf("sniffed mime = %q", h.gw.mimes[0])
	}
}

func TestSendFileUploadTimeout(t *testing.T) {
	h := newHarness(t, blockingGateway{})
	ctx := context.Background()
	id := h.conversation(t)

	_, err := h.svc.SendFile(ctx, id, "u1", "Alice", File{Name: "a.txt", Data: []byte("x")}, 20*time.Millisecond)
	if !errors.Is(err, ErrUploadTimeout) {
		t.Fatalf("err = %v, want ErrUploadTimeout", err)
	}
	if msgs, _ := h.svc.Recent(ctx, "u1", id, 10); len(msgs) != 0 {
		t.Errorf("timed out upload appended %d messages", len(msgs))
	}
}

func TestSendFileRejectedByGateway(t *testing.T) {
	dir, err := attachment.NewDir(t.TempDir(), attachment.Policy{DeniedTypes: []string{"application/x-msdownload"}}, nil)
	if err != nil {
		t.Fatal(err)
	}
	h := newHarness(t, dir)
	id := h.conversation(t)

	_, err = h.svc.SendFile(context.Background(), id, "u1", "Alice",
		File{Name: "setup.exe", MimeType: "application/x-msdownload", Data: []byte("MZ")}, 0)
	if !errors.Is(err, attachment.ErrUploadRejected) {
		t.Errorf("err = %v, want ErrUploadRejected", err)
	}
}

func TestMarkConversationReadIsIdempotent(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()
	id := h.conversation(t)
	_, _ = h.svc.SendText(ctx, id, "u1", "Alice", "one")
	_, _ = h.svc.SendText(ctx, id, "u1", "Alice", "two")

	for i := 0; i < 2; i++ {
		if err := h.svc.MarkConversationRead(ctx, id, "u2"); err != nil {
			t.Fatalf("MarkConversationRead #%d: %v", i+1, err)
		}
		if c := h.get(t, "u2", id); c.UnreadCount["u2"] != 0 {
			t.Errorf("#%d unread = %d", i+1, c.UnreadCount["u2"])
		}
	}

	msgs, _ := h.svc.Recent(ctx, "u2", id, 10)
	for _, m := range msgs {
		if m.DeliveryStatus != status.Read {
			t.Errorf("message %q status = %q, want read", m.Content, m.DeliveryStatus)
		}
	}
	if err := h.svc.MarkConversationRead(ctx, id, "u3"); !errors.Is(err, ErrNotParticipant) {
		t.Errorf("outsider err = %v, want ErrNotParticipant", err)
	}
}

func TestMarkReadPublishesConversationToReader(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()
	id := h.conversation(t)
	_, _ = h.svc.SendText(ctx, id, "u1", "Alice", "hi")

	in := newInbox()
	sub, err := h.svc.Subscribe(ctx, "u2", bus.ConversationsTopic("u2"), in.handle)
	if err != nil {
		t.Fatal(err)
	}
	defer sub.Cancel()
	in.wait(t, 1)

	if err := h.svc.MarkConversationRead(ctx, id, "u2"); err != nil {
		t.Fatal(err)
	}
	events := in.wait(t, 2)
	conv := events[1].Payload.(directory.Conversation)
	if events[1].Kind != bus.KindConversationUpdated || conv.UnreadCount["u2"] != 0 {
		t.Errorf("event = %s unread=%v", events[1].Kind, conv.UnreadCount)
	}
}

func TestDeliveryStatusLifecycle(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()
	id := h.conversation(t)
	m, _ := h.svc.SendText(ctx, id, "u1", "Alice", "hi")

	if err := h.svc.MarkDelivered(ctx, m.ID, "u1"); err != nil {
		t.Fatal(err)
	}
	if got, _ := h.svc.Recent(ctx, "u1", id, 1); got[0].DeliveryStatus != status.Sent {
		t.Errorf("sender's own ack moved status to %q", got[0].DeliveryStatus)
	}

	if err := h.svc.MarkDelivered(ctx, m.ID, "u2"); err != nil {
		t.Fatal(err)
	}
	if err := h.svc.MarkDelivered(ctx, m.ID, "u2"); err != nil {
		t.Fatalf("repeat MarkDelivered: %v", err)
	}
	if got, _ := h.svc.Recent(ctx, "u1", id, 1); got[0].DeliveryStatus != status.Delivered {
		t.Errorf("status = %q, want delivered", got[0].DeliveryStatus)
	}

	_ = h.svc.MarkConversationRead(ctx, id, "u2")
	if err := h.svc.MarkDelivered(ctx, m.ID, "u2"); err != nil {
		t.Errorf("MarkDelivered after read: %v", err)
	}
	if _, err := h.svc.messages.UpdateStatus(ctx, m.ID, status.Sent); !errors.Is(err, status.ErrInvalidTransition) {
		t.Errorf("read -> sent err = %v, want ErrInvalidTransition", err)
	}
	if err := h.svc.MarkDelivered(ctx, "missing", "u2"); !errors.Is(err, message.ErrNotFound) {
		t.Errorf("unknown message err = %v, want ErrNotFound", err)
	}
}

func TestSearchScenario(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()
	id := h.conversation(t)
	for _, body := range []string{"hello world", "goodbye", "Hello again"} {
		if _, err := h.svc.SendText(ctx, id, "u1", "Alice", body); err != nil {
			t.Fatal(err)
		}
	}

	got, err := h.svc.Search(ctx, "u2", id, "hello")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].Content != "Hello again" || got[1].Content != "hello world" {
		t.Errorf("search = %+v", got)
	}
	if _, err := h.svc.Search(ctx, "u3", id, "hello"); !errors.Is(err, ErrNotParticipant) {
		t.Errorf("outsider search err = %v", err)
	}
}

func TestPresenceScenario(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()

	before := time.Now().Truncate(time.Millisecond)
	on, err := h.svc.SetPresence(ctx, "u1", true)
	if err != nil {
		t.Fatal(err)
	}
	got := h.svc.Presence(ctx, "u1")
	if !got.IsOnline || got.LastSeen.Before(before) {
		t.Errorf("presence = %+v", got)
	}
	off, _ := h.svc.SetPresence(ctx, "u1", false)
	if !off.LastSeen.After(on.LastSeen) {
		t.Errorf("lastSeen did not increase: %v -> %v", on.LastSeen, off.LastSeen)
	}
}

func TestSubscribeSnapshotThenLive(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()
	id := h.conversation(t)
	_, _ = h.svc.SendText(ctx, id, "u1", "Alice", "before")

	in := newInbox()
	sub, err := h.svc.Subscribe(ctx, "u2", bus.MessagesTopic(id), in.handle)
	if err != nil {
		t.Fatal(err)
	}
	defer sub.Cancel()

	_, _ = h.svc.SendText(ctx, id, "u1", "Alice", "after")

	events := in.wait(t, 2)
	if events[0].Kind != bus.KindSnapshot {
		t.Fatalf("first event = %s, want snapshot", events[0].Kind)
	}
	snap := events[0].Payload.([]message.Message)
	if len(snap) != 1 || snap[0].Content != "before" {
		t.Errorf("snapshot = %+v", snap)
	}
	live, ok := DecodeMessage(events[1].Payload)
	if events[1].Kind != bus.KindMessageCreated || !ok || live.Content != "after" {
		t.Errorf("live event = %s %+v", events[1].Kind, events[1].Payload)
	}
}

func TestSubscribeAuthorization(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()
	id := h.conversation(t)
	noop := func(bus.Event) error { return nil }

	if _, err := h.svc.Subscribe(ctx, "u3", bus.MessagesTopic(id), noop); !errors.Is(err, ErrNotParticipant) {
		t.Errorf("outsider messages err = %v", err)
	}
	if _, err := h.svc.Subscribe(ctx, "u1", bus.ConversationsTopic("u2"), noop); !errors.Is(err, ErrForbidden) {
		t.Errorf("foreign conversations err = %v", err)
	}
	if _, err := h.svc.Subscribe(ctx, "u1", "typing:"+id, noop); !errors.Is(err, ErrInvalidTopic) {
		t.Errorf("bad topic err = %v", err)
	}
	sub, err := h.svc.Subscribe(ctx, "u3", bus.PresenceTopic("u1"), noop)
	if err != nil {
		t.Errorf("presence subscribe: %v", err)
	} else {
		sub.Cancel()
	}
}

func TestSendPublishesToBothConversationLists(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()
	id := h.conversation(t)

	in1, in2 := newInbox(), newInbox()
	s1, _ := h.svc.Subscribe(ctx, "u1", bus.ConversationsTopic("u1"), in1.handle)
	defer s1.Cancel()
	s2, _ := h.svc.Subscribe(ctx, "u2", bus.ConversationsTopic("u2"), in2.handle)
	defer s2.Cancel()

	_, _ = h.svc.SendText(ctx, id, "u1", "Alice", "ping")

	for _, in := range []*inbox{in1, in2} {
		events := in.wait(t, 2)
		conv := events[1].Payload.(directory.Conversation)
		if conv.LastMessage != "ping" || conv.UnreadCount["u2"] != 1 {
			t.Errorf("conversation event = %+v", conv)
		}
	}
}

func TestSendQueuesOutboxEvent(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()
	id := h.conversation(t)
	_, _ = h.svc.SendText(ctx, id, "u1", "Alice", "hi")

	queued, err := h.db.OutboxCount(ctx, "queued")
	if err != nil {
		t.Fatal(err)
	}
	// conversation.created + message.created
	if queued != 2 {
		t.Errorf("queued = %d, want 2", queued)
	}
}

func TestDecodeMessage(t *testing.T) {
	m := message.Message{ID: "m1", Content: "x"}
	raw, _ := json.Marshal(m)

	for _, payload := range []any{m, &m, json.RawMessage(raw)} {
		got, ok := DecodeMessage(payload)
		if !ok || got.ID != "m1" {
			t.Errorf("DecodeMessage(%T) = %+v, %v", payload, got, ok)
		}
	}
	if _, ok := DecodeMessage("nope"); ok {
		t.Error("string payload decoded")
	}
}
