package message

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/matheus3301/parley/internal/status"
	"github.com/matheus3301/parley/internal/store"
)

func testStore(t *testing.T) (*Store, *store.DB) {
	t.Helper()
	db, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Migrate(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })

	err = db.InTx(context.Background(), func(tx *store.Tx) error {
		_, err := tx.InsertConversation(context.Background(), &store.Conversation{
			ID: "c1", PairKey: store.PairKey("u1", "u2"), CreatedAt: 1,
			Members: []store.Member{{UserID: "u1", DisplayName: "Alice"}, {UserID: "u2", DisplayName: "Bob"}},
		})
		return err
	})
	if err != nil {
		t.Fatal(err)
	}
	return New(db, nil, 0), db
}

func text(sender, body string) Message {
	return Message{SenderID: sender, SenderName: sender, Content: body, Type: TypeText}
}

func TestAppendAssignsIDTimestampAndStatus(t *testing.T) {
	s, _ := testStore(t)
	ctx := context.Background()

	m, err := s.Append(ctx, "c1", text("u1", "hi"))
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if m.ID == "" {
		t.Error("expected an id")
	}
	if m.ConversationID != "c1" {
		t.Errorf("ConversationID = %q", m.ConversationID)
	}
	if m.DeliveryStatus != status.Sent {
		t.Errorf("DeliveryStatus = %q, want sent", m.DeliveryStatus)
	}
	if m.Timestamp.IsZero() {
		t.Error("expected a timestamp")
	}
}

func TestRecentIsOrderedUnderFrozenClock(t *testing.T) {
	s, _ := testStore(t)
	ctx := context.Background()
	frozen := time.UnixMilli(1_700_000_000_000)
	s.now = func() time.Time { return frozen }

	for _, body := range []string{"a", "b", "c", "d", "e"} {
		if _, err := s.Append(ctx, "c1", text("u1", body)); err != nil {
			t.Fatalf("Append(%s): %v", body, err)
		}
	}

	msgs := s.Recent(ctx, "c1", 10)
	if len(msgs) != 5 {
		t.Fatalf("got %d messages, want 5", len(msgs))
	}
	for i := 1; i < len(msgs); i++ {
		prev, cur := msgs[i-1], msgs[i]
		if !cur.Timestamp.After(prev.Timestamp) {
			t.Errorf("timestamp %d not after %d", cur.Timestamp.UnixMilli(), prev.Timestamp.UnixMilli())
		}
		if cur.Seq != prev.Seq+1 {
			t.Errorf("seq %d follows %d", cur.Seq, prev.Seq)
		}
	}
	if msgs[0].Content != "a" || msgs[4].Content != "e" {
		t.Errorf("unexpected order: %q .. %q", msgs[0].Content, msgs[4].Content)
	}
}

func TestRecentLimit(t *testing.T) {
	s, _ := testStore(t)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		if _, err := s.Append(ctx, "c1", text("u1", "m")); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		limit int
		want  int
	}{
		{limit: 2, want: 2},
		{limit: 0, want: 5},
		{limit: -1, want: 5},
		{limit: 1000, want: 5},
	}
	for _, tt := range tests {
		if got := len(s.Recent(ctx, "c1", tt.limit)); got != tt.want {
			t.Errorf("Recent(limit=%d) returned %d, want %d", tt.limit, got, tt.want)
		}
	}
	if got := s.clamp(1000); got != MaxRecent {
		t.Errorf("clamp(1000) = %d, want %d", got, MaxRecent)
	}
}

func TestRecentDegradesOnClosedDB(t *testing.T) {
	s, db := testStore(t)
	_ = db.Close()
	if msgs := s.Recent(context.Background(), "c1", 10); msgs != nil {
		t.Errorf("expected empty result, got %d messages", len(msgs))
	}
}

func TestAppendRoundTrip(t *testing.T) {
	s, _ := testStore(t)
	ctx := context.Background()

	sent, err := s.Append(ctx, "c1", text("u1", "round trip"))
	if err != nil {
		t.Fatal(err)
	}
	msgs := s.Recent(ctx, "c1", 1)
	if len(msgs) != 1 {
		t.Fatalf("got %d messages", len(msgs))
	}
	got := msgs[0]
	if got.ID != sent.ID || got.Content != "round trip" || got.SenderID != "u1" || got.Type != TypeText {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.Attachment != nil {
		t.Errorf("text message has attachment %+v", got.Attachment)
	}
}

func TestAppendFileMessage(t *testing.T) {
	s, _ := testStore(t)
	ctx := context.Background()

	m := Message{
		SenderID: "u1", Content: "photo.png", Type: TypeImage,
		Attachment: &Attachment{URL: "file:///tmp/photo.png", FileName: "photo.png", SizeBytes: 42, MimeType: "image/png"},
	}
	sent, err := s.Append(ctx, "c1", m)
	if err != nil {
		t.Fatal(err)
	}
	got, err := s.Get(ctx, sent.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Attachment == nil || got.Attachment.SizeBytes != 42 || got.Attachment.MimeType != "image/png" {
		t.Errorf("attachment = %+v", got.Attachment)
	}
}

func TestAppendValidation(t *testing.T) {
	s, _ := testStore(t)
	ctx := context.Background()

	tests := []struct {
		name string
		msg  Message
	}{
		{"missing sender", Message{Content: "x", Type: TypeText}},
		{"text with attachment", Message{SenderID: "u1", Type: TypeText, Attachment: &Attachment{URL: "u"}}},
		{"file without attachment", Message{SenderID: "u1", Type: TypeFile}},
		{"unknown type", Message{SenderID: "u1", Type: "video"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.Append(ctx, "c1", tt.msg); !errors.Is(err, ErrInvalidMessage) {
				t.Errorf("err = %v, want ErrInvalidMessage", err)
			}
		})
	}
}

func TestAppendUnknownConversation(t *testing.T) {
	s, db := testStore(t)
	_, err := s.Append(context.Background(), "nope", text("u1", "hi"))
	if !errors.Is(err, ErrUnknownConversation) {
		t.Errorf("err = %v, want ErrUnknownConversation", err)
	}
	if rows, _ := db.RecentMessages(context.Background(), "nope", 10); len(rows) != 0 {
		t.Errorf("stored %d messages for an unknown conversation", len(rows))
	}
}

func TestAppendOnClosedDBIsUnavailable(t *testing.T) {
	s, db := testStore(t)
	_ = db.Close()
	_, err := s.Append(context.Background(), "c1", text("u1", "hi"))
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("err = %v, want ErrStoreUnavailable", err)
	}
}

func TestSearch(t *testing.T) {
	s, _ := testStore(t)
	ctx := context.Background()
	for _, body := range []string{"hello world", "goodbye", "Hello again"} {
		if _, err := s.Append(ctx, "c1", text("u1", body)); err != nil {
			t.Fatal(err)
		}
	}

	got := s.Search(ctx, "c1", "hello")
	if len(got) != 2 {
		t.Fatalf("got %d results, want 2", len(got))
	}
	if got[0].Content != "Hello again" || got[1].Content != "hello world" {
		t.Errorf("results = %q, %q", got[0].Content, got[1].Content)
	}

	if got := s.Search(ctx, "c1", "   "); len(got) != 0 {
		t.Errorf("blank term returned %d results", len(got))
	}
	if got := s.Search(ctx, "c1", "ÉCOLE"); len(got) != 0 {
		t.Errorf("unexpected match: %v", got)
	}
}

func TestSearchUnicodeCaseFolding(t *testing.T) {
	s, _ := testStore(t)
	ctx := context.Background()
	if _, err := s.Append(ctx, "c1", text("u1", "Rendez-vous à l'École")); err != nil {
		t.Fatal(err)
	}
	if got := s.Search(ctx, "c1", "école"); len(got) != 1 {
		t.Errorf("got %d results, want 1", len(got))
	}
}

func TestUpdateStatus(t *testing.T) {
	s, _ := testStore(t)
	ctx := context.Background()
	m, err := s.Append(ctx, "c1", text("u1", "hi"))
	if err != nil {
		t.Fatal(err)
	}

	u, err := s.UpdateStatus(ctx, m.ID, status.Read)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if len(u.Steps) != 2 || u.Steps[0] != status.Delivered || u.Steps[1] != status.Read {
		t.Errorf("Steps = %v, want [delivered read]", u.Steps)
	}
	changes := u.Changes()
	if changes[0].From != status.Sent || changes[1].From != status.Delivered {
		t.Errorf("changes = %+v", changes)
	}

	u, err = s.UpdateStatus(ctx, m.ID, status.Read)
	if err != nil || u.Changed() {
		t.Errorf("same status: changed=%v err=%v", u.Changed(), err)
	}

	if _, err := s.UpdateStatus(ctx, m.ID, status.Sent); !errors.Is(err, status.ErrInvalidTransition) {
		t.Errorf("regression err = %v, want ErrInvalidTransition", err)
	}

	got, _ := s.Get(ctx, m.ID)
	if got.DeliveryStatus != status.Read {
		t.Errorf("DeliveryStatus = %q, want read", got.DeliveryStatus)
	}
}

func TestUpdateStatusUnknownMessage(t *testing.T) {
	s, _ := testStore(t)
	if _, err := s.UpdateStatus(context.Background(), "missing", status.Delivered); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestAdvanceAllTx(t *testing.T) {
	s, db := testStore(t)
	ctx := context.Background()
	mine, _ := s.Append(ctx, "c1", text("u1", "from u1"))
	theirs, _ := s.Append(ctx, "c1", text("u2", "from u2"))
	delivered, _ := s.Append(ctx, "c1", text("u2", "delivered already"))
	if _, err := s.UpdateStatus(ctx, delivered.ID, status.Delivered); err != nil {
		t.Fatal(err)
	}

	var updates []Update
	err := db.InTx(ctx, func(tx *store.Tx) error {
		var err error
		updates, err = s.AdvanceAllTx(ctx, tx, "c1", "u1", status.Read)
		return err
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(updates) != 2 {
		t.Fatalf("got %d updates, want 2", len(updates))
	}
	if updates[0].Message.ID != theirs.ID || len(updates[0].Steps) != 2 {
		t.Errorf("first update = %+v", updates[0])
	}
	if updates[1].Message.ID != delivered.ID || len(updates[1].Steps) != 1 {
		t.Errorf("second update = %+v", updates[1])
	}

	got, _ := s.Get(ctx, mine.ID)
	if got.DeliveryStatus != status.Sent {
		t.Errorf("reader's own message moved to %q", got.DeliveryStatus)
	}
}

func TestTypeForMIME(t *testing.T) {
	tests := map[string]Type{
		"image/png":       TypeImage,
		"IMAGE/JPEG":      TypeImage,
		"application/pdf": TypeFile,
		"":                TypeFile,
	}
	for mime, want := range tests {
		if got := TypeForMIME(mime); got != want {
			t.Errorf("TypeForMIME(%q) = %q, want %q", mime, got, want)
		}
	}
}
