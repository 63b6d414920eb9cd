package attachment

import (
	"context"
	"errors"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"
)

func TestPolicyCheck(t *testing.T) {
	p := Policy{MaxBytes: 10, DeniedTypes: []string{"application/x-msdownload", "video/*"}}
	tests := []struct {
		name    string
		size    int64
		mime    string
		wantErr bool
	}{
		{"ok", 5, "image/png", false},
		{"at limit", 10, "text/plain", false},
		{"too big", 11, "text/plain", true},
		{"denied exact", 1, "application/x-msdownload", true},
		{"denied family", 1, "video/mp4", true},
		{"denied with params", 1, "Video/MP4; codecs=avc1", true},
		{"empty mime", 1, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := p.Check(tt.size, tt.mime)
			if tt.wantErr && !errors.Is(err, ErrUploadRejected) {
				t.Errorf("err = %v, want ErrUploadRejected", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected err: %v", err)
			}
		})
	}
}

func TestObjectKeyKeepsExtension(t *testing.T) {
	now := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	key := objectKey("My Photo.PNG", now)
	if !strings.HasPrefix(key, "2024/03/05/") || !strings.HasSuffix(key, ".png") {
		t.Errorf("key = %q", key)
	}
	if objectKey("a.png", now) == objectKey("a.png", now) {
		t.Error("keys must be unique")
	}
	if k := objectKey(`..\..\evil`, now); strings.Contains(k, "..") {
		t.Errorf("key %q escapes its prefix", k)
	}
}

func TestDirUpload(t *testing.T) {
	d, err := NewDir(t.TempDir(), Policy{MaxBytes: 1 << 20}, nil)
	if err != nil {
		t.Fatal(err)
	}

	raw, err := d.Upload(context.Background(), []byte("hello"), "note.txt", "text/plain")
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "file" {
		t.Fatalf("url = %q, err = %v", raw, err)
	}
	data, err := os.ReadFile(u.Path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "hello" {
		t.Errorf("stored %q", data)
	}
}

func TestDirUploadRejected(t *testing.T) {
	d, _ := NewDir(t.TempDir(), Policy{MaxBytes: 2}, nil)
	if _, err := d.Upload(context.Background(), []byte("hello"), "a", "text/plain"); !errors.Is(err, ErrUploadRejected) {
		t.Errorf("err = %v, want ErrUploadRejected", err)
	}
}

func TestDirUploadCancelled(t *testing.T) {
	d, _ := NewDir(t.TempDir(), Policy{}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := d.Upload(ctx, []byte("x"), "a", ""); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestPublicURL(t *testing.T) {
	got, err := publicURL("https://cdn.example.com/media/", "2024/01/01/x.png")
	if err != nil {
		t.Fatal(err)
	}
	if got != "https://cdn.example.com/media/2024/01/01/x.png" {
		t.Errorf("publicURL = %q", got)
	}
}

func TestNewS3RequiresBucket(t *testing.T) {
	if _, err := NewS3(S3Config{Endpoint: "localhost:9000"}, Policy{}, nil); err == nil {
		t.Error("expected error without bucket")
	}
	s, err := NewS3(S3Config{Endpoint: "http://localhost:9000", Bucket: "att"}, Policy{}, nil)
	if err != nil {
		t.Fatalf("NewS3: %v", err)
	}
	if s.cfg.PresignTTL <= 0 {
		t.Error("presign TTL default not applied")
	}
}
