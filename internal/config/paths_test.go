package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBaseDir(t *testing.T) {
	home, _ := os.UserHomeDir()
	if got, want := BaseDir(), filepath.Join(home, ".parley"); got != want {
		t.Errorf("BaseDir() = %q, want %q", got, want)
	}
}

func TestInstancePaths(t *testing.T) {
	cfg := Default()
	cfg.DataDir = "/data"
	cfg.Instance = "test"

	tests := []struct {
		got, want string
	}{
		{cfg.Dir(), "/data/instances/test"},
		{cfg.SocketPath(), "/data/instances/test/parleyd.sock"},
		{cfg.DBPath(), "/data/instances/test/parley.db"},
		{cfg.LockPath(), "/data/instances/test/LOCK"},
		{cfg.LogPath(), "/data/instances/test/logs/parleyd.log"},
		{cfg.AttachmentDir(), "/data/instances/test/attachments"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("path = %q, want %q", tt.got, tt.want)
		}
	}

	cfg.Server.Socket = "/run/parley.sock"
	if got := cfg.SocketPath(); got != "/run/parley.sock" {
		t.Errorf("SocketPath() override = %q", got)
	}
}

func TestEnsureDirs(t *testing.T) {
	cfg := Default()
	cfg.DataDir = t.TempDir()
	cfg.Instance = "test"

	if err := cfg.EnsureDirs(); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(cfg.LogDir())
	if err != nil {
		t.Fatalf("log dir not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("log dir is not a directory")
	}
	if perm := info.Mode().Perm(); perm != 0700 {
		t.Errorf("log dir permission = %o, want 0700", perm)
	}
	if !strings.HasPrefix(cfg.LogDir(), cfg.DataDir) {
		t.Errorf("LogDir() = %q outside data dir", cfg.LogDir())
	}
}
