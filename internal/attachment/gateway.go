// Package attachment uploads message attachments to blob storage and returns
// a durable URL for them.
package attachment

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrUploadRejected is returned when the blob is refused outright, such
	// as an oversize file or a disallowed type. Retrying will not help.
	ErrUploadRejected = errors.New("upload rejected")
	// ErrUploadFailed is returned for transient storage failures.
	ErrUploadFailed = errors.New("upload failed")
)

// Gateway stores a blob and returns a URL from which it can be fetched.
type Gateway interface {
	Upload(ctx context.Context, data []byte, name, mimeType string) (string, error)
}

// Policy is the set of checks applied before any upload.
type Policy struct {
	MaxBytes    int64
	DeniedTypes []string
}

// Check rejects blobs that exceed MaxBytes or whose MIME type matches a
// denied entry. An entry ending in "/*" denies the whole family.
func (p Policy) Check(size int64, mimeType string) error {
	if p.MaxBytes > 0 && size > p.MaxBytes {
		return fmt.Errorf("%w: %d bytes exceeds %d", ErrUploadRejected, size, p.MaxBytes)
	}
	mt := strings.ToLower(strings.TrimSpace(mimeType))
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}
	for _, denied := range p.DeniedTypes {
		denied = strings.ToLower(denied)
		if family, ok := strings.CutSuffix(denied, "/*"); ok {
			if strings.HasPrefix(mt, family+"/") {
				return fmt.Errorf("%w: type %s not allowed", ErrUploadRejected, mimeType)
			}
			continue
		}
		if mt == denied {
			return fmt.Errorf("%w: type %s not allowed", ErrUploadRejected, mimeType)
		}
	}
	return nil
}

// objectKey builds a unique, date-partitioned key that keeps the original
// file extension.
func objectKey(name string, now time.Time) string {
	ext := strings.ToLower(path.Ext(path.Base(strings.ReplaceAll(name, "\\", "/"))))
	if len(ext) > 16 {
		ext = ""
	}
	return now.UTC().Format("2006/01/02") + "/" + uuid.NewString() + ext
}

// failed classifies a storage error, keeping context cancellation visible.
func failed(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrUploadFailed, op, err)
}
