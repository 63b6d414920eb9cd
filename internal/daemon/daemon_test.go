package daemon

import (
	"context"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	parleyv1 "github.com/matheus3301/parley/gen/parley/v1"
	"github.com/matheus3301/parley/internal/client"
	"github.com/matheus3301/parley/internal/config"
	"github.com/matheus3301/parley/internal/identity"
	"github.com/matheus3301/parley/internal/lock"
	"github.com/matheus3301/parley/internal/store"
)

const testSecret = "daemon-test-secret"

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	// Use /tmp for short socket paths (104-char Unix socket limit on macOS).
	dataDir, err := os.MkdirTemp("/tmp", "parley-test-*")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(dataDir) })

	cfg := config.Default()
	cfg.DataDir = dataDir
	cfg.Instance = "test"
	cfg.LogLevel = "warn"
	cfg.Identity.JWTSecret = testSecret
	cfg.Export.Interval = config.Duration{Duration: 20 * time.Millisecond}
	return cfg
}

func token(t *testing.T, cfg *config.Config, userID, name string) string {
	t.Helper()
	j, err := identity.NewJWT(cfg.Identity.JWTSecret, cfg.Identity.Issuer, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	tok, err := j.Issue(identity.Identity{UserID: userID, Name: name})
	if err != nil {
		t.Fatal(err)
	}
	return tok
}

// TestFxModuleWiring verifies the fx dependency graph resolves without errors.
func TestFxModuleWiring(t *testing.T) {
	if err := fx.ValidateApp(Module(testConfig(t))); err != nil {
		t.Fatalf("fx.ValidateApp() error = %v", err)
	}
}

func TestDaemonLifecycle(t *testing.T) {
	cfg := testConfig(t)
	cfg.Metrics.ListenAddr = "127.0.0.1:0"

	var (
		db      *store.DB
		metrics *MetricsServer
	)
	app := fxtest.New(t, Module(cfg), fx.Populate(&db, &metrics))
	app.RequireStart()

	c, err := client.New(cfg.SocketPath(), token(t, cfg, "alice", "Alice"))
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = c.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conv, err := c.Messaging.CreateOrGetConversation(ctx, &parleyv1.CreateOrGetConversationRequest{PeerId: "bob", PeerName: "Bob"})
	if err != nil {
		t.Fatalf("CreateOrGetConversation error = %v", err)
	}
	if !conv.Created {
		t.Error("expected a new conversation")
	}
	if _, err := c.Messaging.SendText(ctx, &parleyv1.SendTextRequest{ConversationId: conv.Conversation.Id, Text: "hello"}); err != nil {
		t.Fatalf("SendText error = %v", err)
	}
	list, err := c.Messaging.ListMessages(ctx, &parleyv1.ListMessagesRequest{ConversationId: conv.Conversation.Id})
	if err != nil {
		t.Fatalf("ListMessages error = %v", err)
	}
	if len(list.Messages) != 1 || list.Messages[0].Content != "hello" {
		t.Errorf("messages = %+v", list.Messages)
	}

	// Files above gRPC's default 4 MiB message size fit the daemon's limit.
	file, err := c.Messaging.SendFile(ctx, &parleyv1.SendFileRequest{
		ConversationId: conv.Conversation.Id,
		FileName:       "scan.bin",
		Data:           make([]byte, 5<<20),
	})
	if err != nil {
		t.Fatalf("SendFile error = %v", err)
	}
	if _, err := os.Stat(strings.TrimPrefix(file.Message.Attachment.Url, "file://")); err != nil {
		t.Errorf("attachment not stored: %v", err)
	}

	// conversation.created and message.created reach the log exporter.
	deadline := time.Now().Add(2 * time.Second)
	for {
		sent, err := db.OutboxCount(ctx, "sent")
		if err != nil {
			t.Fatal(err)
		}
		if sent >= 2 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("outbox sent = %d, want 2", sent)
		}
		time.Sleep(10 * time.Millisecond)
	}

	resp, err := http.Get("http://" + metrics.Addr().String() + "/metrics")
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if !strings.Contains(string(body), "parley_messages_sent_total") {
		t.Error("metrics endpoint does not expose parley_messages_sent_total")
	}

	app.RequireStop()

	if _, err := os.Stat(cfg.SocketPath()); !os.IsNotExist(err) {
		t.Errorf("socket still present after stop: %v", err)
	}
	lk, err := lock.Acquire(cfg.LockPath())
	if err != nil {
		t.Fatalf("lock not released after stop: %v", err)
	}
	_ = lk.Release()
}

func TestRejectsUnauthenticatedClient(t *testing.T) {
	cfg := testConfig(t)
	app := fxtest.New(t, Module(cfg))
	app.RequireStart()
	defer app.RequireStop()

	c, err := client.New(cfg.SocketPath(), "")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = c.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := c.Messaging.ListConversations(ctx, &parleyv1.ListConversationsRequest{}); err == nil {
		t.Fatal("expected an error without a token")
	}
}

func TestSecondDaemonFailsOnLock(t *testing.T) {
	cfg := testConfig(t)
	app := fxtest.New(t, Module(cfg))
	app.RequireStart()
	defer app.RequireStop()

	second := fx.New(Module(cfg), fx.NopLogger)
	err := second.Err()
	if err == nil {
		t.Fatal("second daemon on the same instance should fail")
	}
	if !strings.Contains(err.Error(), "instance lock held") {
		t.Errorf("error = %v, want lock held", err)
	}
	if _, err := os.Stat(cfg.SocketPath()); err != nil {
		t.Errorf("first daemon's socket disturbed: %v", err)
	}
}

func TestMissingSecretFails(t *testing.T) {
	cfg := testConfig(t)
	cfg.Identity.JWTSecret = ""

	app := fx.New(Module(cfg), fx.NopLogger)
	if err := app.Err(); err == nil || !strings.Contains(err.Error(), "jwt_secret") {
		t.Fatalf("error = %v, want jwt_secret required", err)
	}
}
