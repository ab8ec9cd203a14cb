package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/erazemk/shramba/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter configuration",
	Long: `Create a starter configuration file with a freshly generated owner key.

The owner key scopes your records on a sync server. Use the same key on
every device that should see the same pantry.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

var initSyncServer string

func init() {
	initCmd.Flags().StringVar(&initSyncServer, "sync-server", "", "enable cloud mode against this server URL")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file %s already exists", path)
	}

	key, err := config.NewOwnerKey()
	if err != nil {
		return err
	}

	cfg := &config.Config{
		Sync: config.Sync{
			Enabled:  initSyncServer != "",
			Server:   initSyncServer,
			OwnerKey: key,
		},
	}
	if err := config.Write(path, cfg); err != nil {
		return err
	}

	fmt.Printf("Config created: %s\n", path)
	fmt.Printf("Owner key: %s\n", key)
	if initSyncServer != "" {
		fmt.Printf("Cloud mode enabled against %s\n", initSyncServer)
		fmt.Println("Reuse the owner key on other devices to share this pantry.")
	}
	return nil
}
