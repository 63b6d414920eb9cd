package attachment

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// S3Config configures an S3-compatible attachment bucket.
type S3Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
	// PublicBaseURL, when set, is joined with the object key instead of
	// presigning a GET URL.
	PublicBaseURL string
	PresignTTL    time.Duration
}

// S3 stores attachments in an S3-compatible bucket through minio-go.
type S3 struct {
	cfg    S3Config
	client *minio.Client
	policy Policy
	logger *zap.Logger
	now    func() time.Time
}

// NewS3 creates an S3 gateway. It does not contact the endpoint; call
// EnsureBucket for that.
func NewS3(cfg S3Config, policy Policy, logger *zap.Logger) (*S3, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 attachments: bucket is required")
	}
	if cfg.PresignTTL <= 0 {
		cfg.PresignTTL = 7 * 24 * time.Hour
	}
	endpoint := strings.TrimPrefix(strings.TrimPrefix(cfg.Endpoint, "https://"), "http://")
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("s3 client: %w", err)
	}
	return &S3{cfg: cfg, client: client, policy: policy, logger: logger, now: time.Now}, nil
}

// EnsureBucket creates the bucket when it does not exist yet.
func (s *S3) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.cfg.Bucket)
	if err != nil {
		return failed("bucket exists", err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
		return failed("make bucket", err)
	}
	s.logger.Info("attachment bucket created", zap.String("bucket", s.cfg.Bucket))
	return nil
}

// Upload puts data under a fresh key and returns a URL for it.
func (s *S3) Upload(ctx context.Context, data []byte, name, mimeType string) (string, error) {
	if err := s.policy.Check(int64(len(data)), mimeType); err != nil {
		return "", err
	}

	key := objectKey(name, s.now())
	_, err := s.client.PutObject(ctx, s.cfg.Bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: mimeType})
	if err != nil {
		return "", failed("put object", err)
	}
	return s.objectURL(ctx, key)
}

func (s *S3) objectURL(ctx context.Context, key string) (string, error) {
	if s.cfg.PublicBaseURL != "" {
		return publicURL(s.cfg.PublicBaseURL, key)
	}
	u, err := s.client.PresignedGetObject(ctx, s.cfg.Bucket, key, s.cfg.PresignTTL, url.Values{})
	if err != nil {
		return "", failed("presign", err)
	}
	return u.String(), nil
}

func publicURL(base, key string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("public base url: %w", err)
	}
	return u.JoinPath(key).String(), nil
}
