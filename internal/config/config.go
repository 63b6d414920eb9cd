// Package config loads the daemon configuration from TOML and derives the
// per-instance filesystem layout.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap/zapcore"
)

const DefaultInstance = "main"

// Attachment backends.
const (
	BackendDir = "dir"
	BackendS3  = "s3"
)

var instanceRegexp = regexp.MustCompile(`^[a-z0-9_-]{1,64}$`)

// Duration is a time.Duration written as a string ("30s", "24h") in TOML.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Config represents ~/.parley/config.toml.
type Config struct {
	Instance string `toml:"instance"`
	DataDir  string `toml:"data_dir"`
	LogLevel string `toml:"log_level"`

	Server      Server      `toml:"server"`
	Messages    Messages    `toml:"messages"`
	Identity    Identity    `toml:"identity"`
	Attachments Attachments `toml:"attachments"`
	Fanout      Fanout      `toml:"fanout"`
	Export      Export      `toml:"export"`
	Metrics     Metrics     `toml:"metrics"`
}

type Server struct {
	// Socket overrides the instance socket path.
	Socket string `toml:"socket"`
	// ListenAddr additionally serves gRPC on TCP when set.
	ListenAddr string `toml:"listen_addr"`
}

type Messages struct {
	RecentLimit   int      `toml:"recent_limit"`
	MaxFileBytes  int64    `toml:"max_file_bytes"`
	UploadTimeout Duration `toml:"upload_timeout"`
}

type Identity struct {
	JWTSecret string   `toml:"jwt_secret"`
	Issuer    string   `toml:"issuer"`
	TokenTTL  Duration `toml:"token_ttl"`
}

type Attachments struct {
	Backend     string   `toml:"backend"`
	Dir         string   `toml:"dir"`
	DeniedTypes []string `toml:"denied_types"`
	S3          S3       `toml:"s3"`
}

type S3 struct {
	Endpoint      string   `toml:"endpoint"`
	AccessKey     string   `toml:"access_key"`
	SecretKey     string   `toml:"secret_key"`
	UseSSL        bool     `toml:"use_ssl"`
	Bucket        string   `toml:"bucket"`
	PublicBaseURL string   `toml:"public_base_url"`
	PresignTTL    Duration `toml:"presign_ttl"`
}

// Fanout configures the Redis relay between daemon instances. Empty
// RedisAddr keeps fan-out local.
type Fanout struct {
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
	Prefix        string `toml:"prefix"`
}

// Export configures the event outbox. Without brokers, events are logged.
type Export struct {
	KafkaBrokers []string `toml:"kafka_brokers"`
	Topic        string   `toml:"topic"`
	Interval     Duration `toml:"interval"`
	BatchSize    int      `toml:"batch_size"`
	MaxAttempts  int      `toml:"max_attempts"`
}

type Metrics struct {
	ListenAddr string `toml:"listen_addr"`
}

// DefaultMaxFileBytes is the default upload size limit.
const DefaultMaxFileBytes = 10 << 20

const messageOverhead = 1 << 20

// MessageLimit is the largest gRPC message exchanged with a daemon that
// accepts files of up to maxFileBytes. Files up to twice the limit still
// reach the daemon, which refuses them with a typed error instead of a
// transport one.
func MessageLimit(maxFileBytes int64) int {
	if maxFileBytes <= 0 {
		maxFileBytes = DefaultMaxFileBytes
	}
	return int(2*maxFileBytes) + messageOverhead
}

// MessageLimit is MessageLimit for the configured file size limit.
func (c *Config) MessageLimit() int {
	return MessageLimit(c.Messages.MaxFileBytes)
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Instance: DefaultInstance,
		DataDir:  BaseDir(),
		LogLevel: "info",
		Messages: Messages{
			RecentLimit:   100,
			MaxFileBytes:  DefaultMaxFileBytes,
			UploadTimeout: Duration{30 * time.Second},
		},
		Identity: Identity{
			Issuer:   "parley",
			TokenTTL: Duration{24 * time.Hour},
		},
		Attachments: Attachments{
			Backend: BackendDir,
			S3:      S3{PresignTTL: Duration{24 * time.Hour}},
		},
		Fanout: Fanout{Prefix: "parley:"},
		Export: Export{
			Topic:       "parley.events",
			Interval:    Duration{time.Second},
			BatchSize:   100,
			MaxAttempts: 5,
		},
	}
}

// Load reads config from the given path over the defaults. Returns an error
// if the file is missing or invalid.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields Default().
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes config to the given path, creating parent dirs as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	encErr := toml.NewEncoder(f).Encode(cfg)
	if closeErr := f.Close(); closeErr != nil && encErr == nil {
		return closeErr
	}
	return encErr
}

// ValidateInstance checks that name conforms to instance naming rules.
func ValidateInstance(name string) error {
	if !instanceRegexp.MatchString(name) {
		return fmt.Errorf("invalid instance name %q: must match %s", name, instanceRegexp.String())
	}
	return nil
}

// Validate checks the configuration for values the daemon cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if err := ValidateInstance(c.Instance); err != nil {
		errs = append(errs, err)
	}
	if c.DataDir == "" {
		errs = append(errs, errors.New("data_dir is empty"))
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}
	if c.Messages.RecentLimit < 1 || c.Messages.RecentLimit > 100 {
		errs = append(errs, fmt.Errorf("messages.recent_limit %d outside [1, 100]", c.Messages.RecentLimit))
	}
	if c.Messages.MaxFileBytes <= 0 {
		errs = append(errs, errors.New("messages.max_file_bytes must be positive"))
	}
	switch c.Attachments.Backend {
	case BackendDir:
	case BackendS3:
		if c.Attachments.S3.Endpoint == "" || c.Attachments.S3.Bucket == "" {
			errs = append(errs, errors.New("attachments.s3 needs endpoint and bucket"))
		}
	default:
		errs = append(errs, fmt.Errorf("attachments.backend %q: want %q or %q", c.Attachments.Backend, BackendDir, BackendS3))
	}
	if len(c.Export.KafkaBrokers) > 0 && c.Export.Topic == "" {
		errs = append(errs, errors.New("export.topic is required with kafka_brokers"))
	}
	if c.Export.MaxAttempts < 1 {
		errs = append(errs, errors.New("export.max_attempts must be at least 1"))
	}
	return errors.Join(errs...)
}
