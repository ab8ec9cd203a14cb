package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/erazemk/shramba/internal/pantry"
)

var removeCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove an item",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd.Context())
	if err != nil {
		return err
	}

	if err := store.Remove(cmd.Context(), args[0]); err != nil {
		var perr *pantry.PersistenceError
		if errors.As(err, &perr) {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", perr)
		} else {
			return err
		}
	}

	fmt.Printf("Removed %s\n", args[0])
	return nil
}
