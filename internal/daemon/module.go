package daemon

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/matheus3301/parley/internal/api"
	"github.com/matheus3301/parley/internal/attachment"
	"github.com/matheus3301/parley/internal/bus"
	"github.com/matheus3301/parley/internal/chat"
	"github.com/matheus3301/parley/internal/config"
	"github.com/matheus3301/parley/internal/directory"
	"github.com/matheus3301/parley/internal/identity"
	"github.com/matheus3301/parley/internal/lock"
	"github.com/matheus3301/parley/internal/logging"
	"github.com/matheus3301/parley/internal/message"
	"github.com/matheus3301/parley/internal/metrics"
	"github.com/matheus3301/parley/internal/outbox"
	"github.com/matheus3301/parley/internal/presence"
	"github.com/matheus3301/parley/internal/relay"
	"github.com/matheus3301/parley/internal/store"
)

const bucketCheckTimeout = 10 * time.Second

// Module returns the fx module for the daemon, composing all providers and
// lifecycle hooks.
func Module(cfg *config.Config) fx.Option {
	return fx.Module("daemon",
		fx.Supply(cfg),
		fx.Provide(
			provideLogger,
			provideLock,
			metrics.New,
			provideBus,
			provideRedis,
			provideBridge,
			providePublisher,
			provideStore,
			provideMessages,
			provideDirectory,
			providePresence,
			provideGateway,
			provideIdentity,
			provideResolver,
			provideChat,
			provideExporter,
			provideOutboxRelay,
			api.NewMessagingService,
			NewServer,
			NewMetricsServer,
		),
		fx.Invoke(registerLifecycle),
	)
}

// Logger routes fx's own events through the daemon logger.
func Logger() fx.Option {
	return fx.WithLogger(func(l *zap.Logger) fxevent.Logger {
		return &fxevent.ZapLogger{Logger: l.Named("fx")}
	})
}

func provideLogger(cfg *config.Config) (*zap.Logger, error) {
	return logging.New(cfg.LogPath(), cfg.Instance, cfg.LogLevel)
}

func provideLock(cfg *config.Config, logger *zap.Logger) (*lock.Lock, error) {
	if err := cfg.EnsureDirs(); err != nil {
		return nil, err
	}
	logger.Info("acquiring instance lock", zap.String("instance", cfg.Instance))
	l, err := lock.Acquire(cfg.LockPath())
	if err != nil {
		return nil, err
	}
	logger.Info("instance lock acquired")
	return l, nil
}

func provideBus(logger *zap.Logger, m *metrics.Metrics) *bus.Bus {
	return bus.New(bus.WithLogger(logger.Named("bus")), bus.WithObserver(m))
}

// provideRedis returns nil when cross-instance fan-out is not configured.
func provideRedis(cfg *config.Config) *redis.Client {
	if cfg.Fanout.RedisAddr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Fanout.RedisAddr,
		Password: cfg.Fanout.RedisPassword,
		DB:       cfg.Fanout.RedisDB,
	})
}

func provideBridge(cfg *config.Config, rdb *redis.Client, b *bus.Bus, m *metrics.Metrics, logger *zap.Logger) *relay.Bridge {
	if rdb == nil {
		return nil
	}
	return relay.NewBridge(b, rdb, cfg.Fanout.Prefix, m, logger.Named("relay"))
}

// providePublisher routes writes through the Redis bridge when it exists so
// other instances see them too.
func providePublisher(b *bus.Bus, br *relay.Bridge) bus.Publisher {
	if br != nil {
		return br
	}
	return b
}

// provideStore depends on the lock so the database is only opened by its
// owner.
func provideStore(cfg *config.Config, logger *zap.Logger, _ *lock.Lock) (*store.DB, error) {
	dbPath := cfg.DBPath()
	db, err := store.Open(dbPath)
	if err != nil {
		return nil, err
	}
	result, err := db.Migrate()
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if result.Changed {
		logger.Info("migrations applied", zap.Uint("version", result.Version))
	} else {
		logger.Info("migrations up to date", zap.Uint("version", result.Version))
	}
	logger.Info("store initialized", zap.String("path", dbPath))
	return db, nil
}

func provideMessages(cfg *config.Config, db *store.DB, logger *zap.Logger) *message.Store {
	return message.New(db, logger.Named("message"), cfg.Messages.RecentLimit)
}

func provideDirectory(db *store.DB, logger *zap.Logger) *directory.Directory {
	return directory.New(db, logger.Named("directory"))
}

func providePresence(db *store.DB, pub bus.Publisher, logger *zap.Logger) *presence.Tracker {
	return presence.New(db, pub, logger.Named("presence"))
}

func provideGateway(cfg *config.Config, logger *zap.Logger) (attachment.Gateway, error) {
	policy := attachment.Policy{
		MaxBytes:    cfg.Messages.MaxFileBytes,
		DeniedTypes: cfg.Attachments.DeniedTypes,
	}
	logger = logger.Named("attachment")

	if cfg.Attachments.Backend != config.BackendS3 {
		return attachment.NewDir(cfg.AttachmentDir(), policy, logger)
	}

	s3cfg := cfg.Attachments.S3
	gw, err := attachment.NewS3(attachment.S3Config{
		Endpoint:      s3cfg.Endpoint,
		AccessKey:     s3cfg.AccessKey,
		SecretKey:     s3cfg.SecretKey,
		UseSSL:        s3cfg.UseSSL,
		Bucket:        s3cfg.Bucket,
		PublicBaseURL: s3cfg.PublicBaseURL,
		PresignTTL:    s3cfg.PresignTTL.Duration,
	}, policy, logger)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), bucketCheckTimeout)
	defer cancel()
	if err := gw.EnsureBucket(ctx); err != nil {
		return nil, err
	}
	return gw, nil
}

func provideIdentity(cfg *config.Config) (*identity.JWT, error) {
	if cfg.Identity.JWTSecret == "" {
		return nil, errors.New("identity.jwt_secret is required")
	}
	return identity.NewJWT(cfg.Identity.JWTSecret, cfg.Identity.Issuer, cfg.Identity.TokenTTL.Duration)
}

func provideResolver(j *identity.JWT) identity.Resolver {
	return j
}

func provideChat(
	cfg *config.Config,
	db *store.DB,
	messages *message.Store,
	dir *directory.Directory,
	tracker *presence.Tracker,
	gw attachment.Gateway,
	pub bus.Publisher,
	b *bus.Bus,
	m *metrics.Metrics,
	logger *zap.Logger,
) *chat.Service {
	return chat.New(chat.Deps{
		DB:          db,
		Messages:    messages,
		Directory:   dir,
		Presence:    tracker,
		Attachments: gw,
		Publisher:   pub,
		Subscriber:  b,
		Metrics:     m,
		Logger:      logger.Named("chat"),
	}, chat.Config{
		MaxFileBytes:  cfg.Messages.MaxFileBytes,
		UploadTimeout: cfg.Messages.UploadTimeout.Duration,
		SnapshotLimit: cfg.Messages.RecentLimit,
	})
}

func provideExporter(cfg *config.Config, logger *zap.Logger) (outbox.Exporter, error) {
	if len(cfg.Export.KafkaBrokers) == 0 {
		return outbox.NewLogExporter(logger.Named("export")), nil
	}
	return outbox.NewKafkaExporter(cfg.Export.KafkaBrokers, cfg.Export.Topic)
}

func provideOutboxRelay(cfg *config.Config, db *store.DB, exp outbox.Exporter, m *metrics.Metrics, logger *zap.Logger) *outbox.Relay {
	return outbox.NewRelay(db, exp, m, logger.Named("outbox"), outbox.Config{
		Interval:    cfg.Export.Interval.Duration,
		BatchSize:   cfg.Export.BatchSize,
		MaxAttempts: cfg.Export.MaxAttempts,
	})
}

type lifecycleParams struct {
	fx.In

	Lifecycle     fx.Lifecycle
	Server        *Server
	MetricsServer *MetricsServer
	Lock          *lock.Lock
	DB            *store.DB
	Bus           *bus.Bus
	Redis         *redis.Client
	Bridge        *relay.Bridge
	Presence      *presence.Tracker
	Outbox        *outbox.Relay
	Exporter      outbox.Exporter
	Logger        *zap.Logger
}

func registerLifecycle(p lifecycleParams) {
	logger := p.Logger
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// Nobody holds a session stream yet.
			if n, err := p.Presence.ResetAll(ctx); err != nil {
				logger.Warn("presence reset failed", zap.Error(err))
			} else if n > 0 {
				logger.Info("presence reset", zap.Int64("users", n))
			}

			if p.Bridge != nil {
				if err := p.Bridge.Start(ctx); err != nil {
					return err
				}
			}

			p.Outbox.Start(context.Background())
			p.Server.Start()
			p.MetricsServer.Start()
			logger.Info("daemon started")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			p.Server.Stop(ctx)
			if err := p.MetricsServer.Stop(ctx); err != nil {
				logger.Warn("error stopping metrics server", zap.Error(err))
			}
			p.Outbox.Stop()
			if err := p.Exporter.Close(); err != nil {
				logger.Warn("error closing exporter", zap.Error(err))
			}
			if p.Bridge != nil {
				if err := p.Bridge.Stop(); err != nil {
					logger.Warn("error stopping relay", zap.Error(err))
				}
			}
			if p.Redis != nil {
				_ = p.Redis.Close()
			}
			p.Bus.Close()
			if err := p.DB.Close(); err != nil {
				logger.Warn("error closing store", zap.Error(err))
			}
			if err := p.Lock.Release(); err != nil {
				logger.Warn("error releasing lock", zap.Error(err))
			}
			logger.Info("daemon stopped")
			_ = logger.Sync()
			return nil
		},
	})
}
