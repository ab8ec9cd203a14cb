package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/erazemk/shramba/internal/model"
	"github.com/erazemk/shramba/internal/pantry"
)

var addCmd = &cobra.Command{
	Use:   "add <name> <expiry-date> [quantity] [category]",
	Short: "Add an item",
	Long: `Add an item to the pantry.

The expiry date is a YYYY-MM-DD calendar date. Quantity is free-form text
("2", "500g") and defaults to "1". Category defaults to "other"; the
recognized categories are beverages, dairy, vegetables, fruits, meat, and
other.`,
	Args: cobra.RangeArgs(2, 4),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	expiry, err := model.ParseDate(args[1])
	if err != nil {
		return fmt.Errorf("expiry date must be YYYY-MM-DD: %w", err)
	}

	req := pantry.AddRequest{Name: args[0], ExpiryDate: expiry}
	if len(args) > 2 {
		req.Quantity = args[2]
	}
	if len(args) > 3 {
		req.Category = args[3]
	}

	store, err := openStore(cmd.Context())
	if err != nil {
		return err
	}

	item, err := store.Add(cmd.Context(), req)
	if err != nil {
		var perr *pantry.PersistenceError
		if errors.As(err, &perr) {
			// Offline-first: the item exists locally even though the
			// mirror write failed.
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", perr)
		} else {
			return err
		}
	}

	fmt.Printf("Added %s (%s, expires %s)\n", item.Name, item.ID, item.ExpiryDate)
	return nil
}
