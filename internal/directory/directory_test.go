package directory

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/matheus3301/parley/internal/store"
)

func testDirectory(t *testing.T) (*Directory, *store.DB) {
	t.Helper()
	db, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Migrate(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return New(db, nil), db
}

func TestFindOrCreateIsIdempotentAndSymmetric(t *testing.T) {
	d, _ := testDirectory(t)
	ctx := context.Background()

	id, created, err := d.FindOrCreate(ctx, "u1", "u2", map[string]string{"u1": "Alice", "u2": "Bob"})
	if err != nil {
		t.Fatalf("FindOrCreate: %v", err)
	}
	if !created {
		t.Error("first call should create")
	}

	again, created, err := d.FindOrCreate(ctx, "u2", "u1", nil)
	if err != nil {
		t.Fatal(err)
	}
	if created || again != id {
		t.Errorf("second call = %q created=%v, want %q existing", again, created, id)
	}

	c, err := d.Get(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if c.ParticipantNames["u1"] != "Alice" || c.ParticipantNames["u2"] != "Bob" {
		t.Errorf("names = %v, empty names must not erase snapshots", c.ParticipantNames)
	}
}

func TestFindOrCreateRefreshesNames(t *testing.T) {
	d, _ := testDirectory(t)
	ctx := context.Background()

	id, _, _ := d.FindOrCreate(ctx, "u1", "u2", map[string]string{"u1": "Alice", "u2": "Bob"})
	if _, _, err := d.FindOrCreate(ctx, "u1", "u2", map[string]string{"u2": "Robert"}); err != nil {
		t.Fatal(err)
	}
	c, _ := d.Get(ctx, id)
	if c.ParticipantNames["u2"] != "Robert" || c.ParticipantNames["u1"] != "Alice" {
		t.Errorf("names = %v", c.ParticipantNames)
	}
}

func TestFindOrCreateConcurrentConverges(t *testing.T) {
	d, db := testDirectory(t)
	ctx := context.Background()

	const n = 16
	ids := make([]string, n)
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			a, b := "u1", "u2"
			if i%2 == 1 {
				a, b = b, a
			}
			ids[i], _, errs[i] = d.FindOrCreate(ctx, a, b, nil)
		}(i)
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		if errs[i] != nil {
			t.Fatalf("call %d: %v", i, errs[i])
		}
		if ids[i] != ids[0] {
			t.Errorf("call %d returned %q, want %q", i, ids[i], ids[0])
		}
	}
	if convs, _ := db.ListConversationsFor(ctx, "u1"); len(convs) != 1 {
		t.Errorf("u1 has %d conversations, want 1", len(convs))
	}
}

func TestFindOrCreateValidation(t *testing.T) {
	d, _ := testDirectory(t)
	tests := []struct{ a, b string }{
		{"", "u2"},
		{"u1", ""},
		{"u1", "u1"},
	}
	for _, tt := range tests {
		if _, _, err := d.FindOrCreate(context.Background(), tt.a, tt.b, nil); !errors.Is(err, ErrInvalidParticipants) {
			t.Errorf("FindOrCreate(%q, %q) err = %v, want ErrInvalidParticipants", tt.a, tt.b, err)
		}
	}
}

func TestFindOrCreateKeepsSeparatorPairsApart(t *testing.T) {
	d, _ := testDirectory(t)
	ctx := context.Background()

	first, _, err := d.FindOrCreate(ctx, "a\x1fb", "c", nil)
	if err != nil {
		t.Fatal(err)
	}
	second, created, err := d.FindOrCreate(ctx, "a", "b\x1fc", nil)
	if err != nil {
		t.Fatal(err)
	}
	if !created || second == first {
		t.Fatalf("second pair resolved to %q (created=%v), first is %q", second, created, first)
	}
	c, err := d.Get(ctx, second)
	if err != nil {
		t.Fatal(err)
	}
	if !c.HasParticipant("a") || !c.HasParticipant("b\x1fc") {
		t.Errorf("participants = %v", c.Participants)
	}
}

func TestRecordNewMessageAndMarkRead(t *testing.T) {
	d, _ := testDirectory(t)
	ctx := context.Background()
	id, _, _ := d.FindOrCreate(ctx, "u1", "u2", nil)

	sentAt := time.UnixMilli(1_700_000_000_000)
	if err := d.RecordNewMessage(ctx, id, "u1", "hi", sentAt); err != nil {
		t.Fatal(err)
	}
	c, _ := d.Get(ctx, id)
	if c.UnreadCount["u2"] != 1 || c.UnreadCount["u1"] != 0 {
		t.Errorf("unread = %v", c.UnreadCount)
	}
	if c.LastMessage != "hi" || c.LastMessageSender != "u1" || !c.LastMessageTime.Equal(sentAt) {
		t.Errorf("last message = %q by %q at %v", c.LastMessage, c.LastMessageSender, c.LastMessageTime)
	}

	for i := 0; i < 2; i++ {
		if err := d.MarkRead(ctx, id, "u2"); err != nil {
			t.Fatalf("MarkRead #%d: %v", i+1, err)
		}
		c, _ = d.Get(ctx, id)
		if c.UnreadCount["u2"] != 0 {
			t.Errorf("MarkRead #%d: unread = %d", i+1, c.UnreadCount["u2"])
		}
	}

	if err := d.MarkRead(ctx, id, "u3"); !errors.Is(err, ErrNotParticipant) {
		t.Errorf("MarkRead by outsider err = %v, want ErrNotParticipant", err)
	}
	if err := d.RecordNewMessage(ctx, "missing", "u1", "x", sentAt); !errors.Is(err, ErrNotFound) {
		t.Errorf("RecordNewMessage unknown err = %v, want ErrNotFound", err)
	}
}

func TestListForOrdering(t *testing.T) {
	d, _ := testDirectory(t)
	ctx := context.Background()
	base := time.UnixMilli(1_700_000_000_000)
	d.now = func() time.Time { return base }

	older, _, _ := d.FindOrCreate(ctx, "u1", "u2", nil)
	newer, _, _ := d.FindOrCreate(ctx, "u1", "u3", nil)
	if _, _, err := d.FindOrCreate(ctx, "u4", "u5", nil); err != nil {
		t.Fatal(err)
	}

	_ = d.RecordNewMessage(ctx, newer, "u3", "first", base.Add(time.Second))
	_ = d.RecordNewMessage(ctx, older, "u2", "second", base.Add(2*time.Second))

	list := d.ListFor(ctx, "u1")
	if len(list) != 2 {
		t.Fatalf("got %d conversations, want 2", len(list))
	}
	if list[0].ID != older || list[1].ID != newer {
		t.Errorf("order = %s, %s", list[0].ID, list[1].ID)
	}
	if list[0].Peer("u1") != "u2" {
		t.Errorf("Peer = %q", list[0].Peer("u1"))
	}
}

func TestListForDegrades(t *testing.T) {
	d, db := testDirectory(t)
	_ = db.Close()
	if list := d.ListFor(context.Background(), "u1"); list != nil {
		t.Errorf("expected empty result, got %v", list)
	}
}

func TestPreview(t *testing.T) {
	long := strings.Repeat("é", PreviewRunes+5)
	if got := Preview(long); len([]rune(got)) != PreviewRunes {
		t.Errorf("preview has %d runes", len([]rune(got)))
	}
	if got := Preview("short"); got != "short" {
		t.Errorf("Preview(short) = %q", got)
	}
}

func TestPeer(t *testing.T) {
	c := Conversation{Participants: []string{"u1", "u2"}}
	if c.Peer("u2") != "u1" || c.Peer("u9") != "" {
		t.Errorf("Peer mismatch")
	}
}
