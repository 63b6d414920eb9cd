// Package chat is the messaging façade: it creates conversations, sends
// text and file messages, keeps unread counters and delivery status in step
// with the message log, and fans every change out to subscribers.
package chat

import (
	"context"
	"errors"
	"hash/fnv"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/matheus3301/parley/internal/attachment"
	"github.com/matheus3301/parley/internal/bus"
	"github.com/matheus3301/parley/internal/directory"
	"github.com/matheus3301/parley/internal/message"
	"github.com/matheus3301/parley/internal/metrics"
	"github.com/matheus3301/parley/internal/presence"
	"github.com/matheus3301/parley/internal/store"
)

var (
	ErrEmptyMessage  = errors.New("message is empty")
	ErrEmptyFile     = errors.New("file is empty")
	ErrFileTooLarge  = errors.New("file too large")
	ErrUploadTimeout = errors.New("upload timed out")
	ErrForbidden     = errors.New("forbidden")
	ErrInvalidTopic  = errors.New("invalid topic")

	ErrNotParticipant = directory.ErrNotParticipant
)

// Defaults applied by New to a zero Config.
const (
	DefaultMaxFileBytes  = 10 << 20
	DefaultUploadTimeout = 30 * time.Second
	DefaultSnapshotLimit = 100
)

// Config holds the service limits.
type Config struct {
	MaxFileBytes  int64
	UploadTimeout time.Duration
	SnapshotLimit int
}

// Subscriber registers fan-out handlers. *bus.Bus implements it.
type Subscriber interface {
	Subscribe(topic string, handler bus.Handler, snapshot bus.SnapshotFunc) (*bus.Subscription, error)
}

// Deps are the collaborators of a Service.
type Deps struct {
	DB          *store.DB
	Messages    *message.Store
	Directory   *directory.Directory
	Presence    *presence.Tracker
	Attachments attachment.Gateway
	Publisher   bus.Publisher
	Subscriber  Subscriber
	Metrics     *metrics.Metrics
	Logger      *zap.Logger
}

// Service is the messaging façade.
type Service struct {
	db          *store.DB
	messages    *message.Store
	directory   *directory.Directory
	presence    *presence.Tracker
	attachments attachment.Gateway
	pub         bus.Publisher
	sub         Subscriber
	metrics     *metrics.Metrics
	logger      *zap.Logger
	cfg         Config

	// convLocks serialize writes per conversation so events are published
	// in commit order.
	convLocks [64]sync.Mutex
}

// New creates a messaging service.
func New(deps Deps, cfg Config) *Service {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if cfg.MaxFileBytes <= 0 {
		cfg.MaxFileBytes = DefaultMaxFileBytes
	}
	if cfg.UploadTimeout <= 0 {
		cfg.UploadTimeout = DefaultUploadTimeout
	}
	if cfg.SnapshotLimit <= 0 {
		cfg.SnapshotLimit = DefaultSnapshotLimit
	}
	return &Service{
		db:          deps.DB,
		messages:    deps.Messages,
		directory:   deps.Directory,
		presence:    deps.Presence,
		attachments: deps.Attachments,
		pub:         deps.Publisher,
		sub:         deps.Subscriber,
		metrics:     deps.Metrics,
		logger:      deps.Logger,
		cfg:         cfg,
	}
}

// SetPresence records the caller's online flag. Presence is best effort:
// callers usually log the error and move on.
func (s *Service) SetPresence(ctx context.Context, userID string, online bool) (presence.Record, error) {
	return s.presence.SetStatus(ctx, userID, online)
}

// Presence returns the last known presence of userID.
func (s *Service) Presence(ctx context.Context, userID string) presence.Record {
	return s.presence.GetStatus(ctx, userID)
}

// OnlineUsers lists everyone currently online.
func (s *Service) OnlineUsers(ctx context.Context) ([]presence.Record, error) {
	return s.presence.Online(ctx)
}

func (s *Service) lockConversation(id string) func() {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	mu := &s.convLocks[h.Sum32()%uint32(len(s.convLocks))]
	mu.Lock()
	return mu.Unlock
}

func (s *Service) publish(topic, kind string, at time.Time, payload any) {
	if s.pub == nil {
		return
	}
	s.pub.Publish(bus.Event{Topic: topic, Kind: kind, Timestamp: at, Payload: payload})
}

func (s *Service) publishConversation(conv directory.Conversation, users ...string) {
	now := time.Now()
	for _, u := range users {
		if u != "" {
			s.publish(bus.ConversationsTopic(u), bus.KindConversationUpdated, now, conv)
		}
	}
}
