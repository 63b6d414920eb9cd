package attachment

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Dir stores attachments in a local directory and returns file:// URLs.
type Dir struct {
	root   string
	policy Policy
	logger *zap.Logger
	now    func() time.Time
}

// NewDir creates a directory-backed gateway rooted at root.
func NewDir(root string, policy Policy, logger *zap.Logger) (*Dir, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("attachment dir: %w", err)
	}
	if err := os.MkdirAll(abs, 0700); err != nil {
		return nil, fmt.Errorf("create attachment dir: %w", err)
	}
	return &Dir{root: abs, policy: policy, logger: logger, now: time.Now}, nil
}

// Upload writes data under a fresh key and returns its file:// URL.
func (d *Dir) Upload(ctx context.Context, data []byte, name, mimeType string) (string, error) {
	if err := d.policy.Check(int64(len(data)), mimeType); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	key := objectKey(name, d.now())
	dst := filepath.Join(d.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dst), 0700); err != nil {
		return "", failed("mkdir", err)
	}
	tmp := dst + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return "", failed("write", err)
	}
	if err := os.Rename(tmp, dst); err != nil {
		_ = os.Remove(tmp)
		return "", failed("rename", err)
	}

	d.logger.Debug("attachment stored", zap.String("key", key), zap.Int("bytes", len(data)))
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(dst)}).String(), nil
}
