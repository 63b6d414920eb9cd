package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.toml")

	cfg := Default()
	cfg.Instance = "work"
	cfg.DataDir = tmpDir
	cfg.Messages.UploadTimeout = Duration{5 * time.Second}
	cfg.Export.KafkaBrokers = []string{"localhost:9092"}
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Instance != "work" {
		t.Errorf("Instance = %q, want %q", loaded.Instance, "work")
	}
	if loaded.Messages.UploadTimeout.Duration != 5*time.Second {
		t.Errorf("UploadTimeout = %v, want 5s", loaded.Messages.UploadTimeout)
	}
	if len(loaded.Export.KafkaBrokers) != 1 || loaded.Export.KafkaBrokers[0] != "localhost:9092" {
		t.Errorf("KafkaBrokers = %v", loaded.Export.KafkaBrokers)
	}
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
instance = "edge"

[messages]
upload_timeout = "45s"

[attachments]
backend = "s3"

[attachments.s3]
endpoint = "localhost:9000"
bucket = "parley"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Instance != "edge" || cfg.Attachments.Backend != BackendS3 {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Messages.UploadTimeout.Duration != 45*time.Second {
		t.Errorf("UploadTimeout = %v", cfg.Messages.UploadTimeout)
	}
	if cfg.Messages.RecentLimit != 100 || cfg.Export.MaxAttempts != 5 {
		t.Errorf("defaults lost: recent=%d attempts=%d", cfg.Messages.RecentLimit, cfg.Export.MaxAttempts)
	}
	if cfg.Attachments.S3.PresignTTL.Duration != 24*time.Hour {
		t.Errorf("PresignTTL = %v", cfg.Attachments.S3.PresignTTL)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load("/nonexistent/config.toml")
	if err == nil {
		t.Error("Load() expected error for missing file")
	}

	cfg, err := LoadOrDefault("/nonexistent/config.toml")
	if err != nil {
		t.Fatalf("LoadOrDefault() error = %v", err)
	}
	if cfg.Instance != DefaultInstance {
		t.Errorf("Instance = %q, want %q", cfg.Instance, DefaultInstance)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad instance", `instance = "Has Spaces"`, "invalid instance name"},
		{"bad backend", "[attachments]\nbackend = \"ftp\"", "attachments.backend"},
		{"s3 without bucket", "[attachments]\nbackend = \"s3\"", "endpoint and bucket"},
		{"bad level", `log_level = "chatty"`, "log_level"},
		{"recent limit", "[messages]\nrecent_limit = 500", "recent_limit"},
		{"bad duration", "[messages]\nupload_timeout = \"soon\"", "soon"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0600); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestSavePermissions(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.toml")

	if err := Save(path, Default()); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	perm := info.Mode().Perm()
	if perm != 0600 {
		t.Errorf("file permission = %o, want 0600", perm)
	}
}

func TestValidateInstance(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"main", false},
		{"work-2", false},
		{"edge_eu", false},
		{"", true},
		{"UPPER", true},
		{"has space", true},
		{"../escape", true},
		{strings.Repeat("a", 65), true},
	}
	for _, tt := range tests {
		err := ValidateInstance(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateInstance(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestMessageLimit(t *testing.T) {
	tests := []struct {
		maxFile int64
		want    int
	}{
		{maxFile: 0, want: 21 << 20},
		{maxFile: -1, want: 21 << 20},
		{maxFile: 1 << 10, want: 2<<10 + 1<<20},
		{maxFile: 64 << 20, want: 129 << 20},
	}
	for _, tt := range tests {
		if got := MessageLimit(tt.maxFile); got != tt.want {
			t.Errorf("MessageLimit(%d) = %d, want %d", tt.maxFile, got, tt.want)
		}
	}
	if got := Default().MessageLimit(); got != 21<<20 {
		t.Errorf("Default().MessageLimit() = %d, want %d", got, 21<<20)
	}
}
