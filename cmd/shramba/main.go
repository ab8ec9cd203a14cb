// Package main implements the shramba CLI: a kitchen inventory tracker
// with local snapshot persistence and optional cloud sync.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/erazemk/shramba/internal/client"
	"github.com/erazemk/shramba/internal/config"
	"github.com/erazemk/shramba/internal/pantry"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "shramba",
	Short:         "Track kitchen items and their expiry dates",
	SilenceUsage:  true,
	SilenceErrors: false,
}

var configPath string

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: ~/.config/shramba/config.toml)")
}

// resolveConfigPath returns the --config flag value or the default location.
func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.DefaultPath()
}

// openStore loads the configuration and builds the item store over the
// configured mirror: the local snapshot file, or the sync server when
// cloud mode is enabled.
func openStore(ctx context.Context) (*pantry.Store, error) {
	path, err := resolveConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	var mirror pantry.Mirror
	if cfg.Sync.Enabled {
		mirror = client.New(cfg.Sync.Server, cfg.Sync.OwnerKey)
	} else {
		mirror = pantry.NewFileMirror(cfg.Storage.Path)
	}

	store, err := pantry.NewStore(ctx, mirror)
	if err != nil {
		return nil, fmt.Errorf("loading items: %w", err)
	}
	return store, nil
}
