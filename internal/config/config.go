// Package config loads the client configuration file.
package config

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the shramba client configuration.
type Config struct {
	Storage Storage `toml:"storage"`
	Sync    Sync    `toml:"sync"`
}

// Storage configures local snapshot persistence.
type Storage struct {
	// Path is the JSON snapshot file.
	Path string `toml:"path"`
}

// Sync configures the optional cloud mode. When enabled, the remote table
// is authoritative and every mutation is mirrored to the server.
type Sync struct {
	Enabled  bool   `toml:"enabled"`
	Server   string `toml:"server"`
	OwnerKey string `toml:"owner-key"`
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("finding config directory: %w", err)
	}
	return filepath.Join(dir, "shramba", "config.toml"), nil
}

// Load reads the configuration from the given path. A missing file yields
// the defaults (local mode, snapshot next to the config file).
func Load(path string) (*Config, error) {
	cfg := defaults(path)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Storage.Path == "" {
		cfg.Storage.Path = defaultSnapshotPath(path)
	}
	if cfg.Sync.Enabled {
		if cfg.Sync.Server == "" {
			return nil, fmt.Errorf("sync enabled but no server configured")
		}
		if cfg.Sync.OwnerKey == "" {
			return nil, fmt.Errorf("sync enabled but no owner-key configured")
		}
	}

	return cfg, nil
}

// Write saves the configuration to the given path, creating the directory
// if needed.
func Write(path string, cfg *Config) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// NewOwnerKey generates a random owner key. The key is an opaque partition
// identifier, not a credential.
func NewOwnerKey() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating owner key: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func defaults(configPath string) *Config {
	return &Config{
		Storage: Storage{Path: defaultSnapshotPath(configPath)},
	}
}

func defaultSnapshotPath(configPath string) string {
	return filepath.Join(filepath.Dir(configPath), "items.json")
}
