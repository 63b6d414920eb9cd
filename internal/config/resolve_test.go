package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parley.toml")
	if err := os.WriteFile(path, []byte(`instance = "work"`), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Resolve(path, "")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Instance != "work" {
		t.Errorf("Instance = %q, want work", cfg.Instance)
	}

	cfg, err = Resolve(path, "override")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Instance != "override" {
		t.Errorf("Instance = %q, want override", cfg.Instance)
	}
}

func TestResolveRejectsBadOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parley.toml")
	if err := os.WriteFile(path, nil, 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Resolve(path, "Bad Name"); err == nil {
		t.Error("Resolve() expected error for invalid instance override")
	}
}

func TestResolveMissingExplicitPath(t *testing.T) {
	if _, err := Resolve("/nonexistent/parley.toml", ""); err == nil {
		t.Error("Resolve() expected error for a missing --config file")
	}
}
