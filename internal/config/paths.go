package config

import (
	"os"
	"path/filepath"
)

// BaseDir returns ~/.parley.
func BaseDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".parley")
}

// ConfigPath returns the default config file path.
func ConfigPath() string {
	return filepath.Join(BaseDir(), "config.toml")
}

// Dir returns the instance directory.
func (c *Config) Dir() string {
	return filepath.Join(c.DataDir, "instances", c.Instance)
}

// SocketPath returns the UDS socket path of the instance.
func (c *Config) SocketPath() string {
	if c.Server.Socket != "" {
		return c.Server.Socket
	}
	return filepath.Join(c.Dir(), "parleyd.sock")
}

// DBPath returns the SQLite database path.
func (c *Config) DBPath() string {
	return filepath.Join(c.Dir(), "parley.db")
}

// LockPath returns the lock file path.
func (c *Config) LockPath() string {
	return filepath.Join(c.Dir(), "LOCK")
}

// LogDir returns the log directory.
func (c *Config) LogDir() string {
	return filepath.Join(c.Dir(), "logs")
}

// LogPath returns the daemon log file path.
func (c *Config) LogPath() string {
	return filepath.Join(c.LogDir(), "parleyd.log")
}

// AttachmentDir returns where the dir backend stores uploads.
func (c *Config) AttachmentDir() string {
	if c.Attachments.Dir != "" {
		return c.Attachments.Dir
	}
	return filepath.Join(c.Dir(), "attachments")
}

// EnsureDirs creates the instance directory tree with proper permissions.
func (c *Config) EnsureDirs() error {
	for _, d := range []string{c.Dir(), c.LogDir()} {
		if err := os.MkdirAll(d, 0700); err != nil {
			return err
		}
	}
	return nil
}
