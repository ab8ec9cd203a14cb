package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/erazemk/shramba/internal/model"
	"github.com/erazemk/shramba/internal/pantry"
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an item",
	Long: `Update an item's fields. Only the flags you pass are changed; the id
and creation time never change.`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

var (
	updateName     string
	updateExpiry   string
	updateQuantity string
	updateCategory string
)

func init() {
	updateCmd.Flags().StringVar(&updateName, "name", "", "new name")
	updateCmd.Flags().StringVar(&updateExpiry, "expiry", "", "new expiry date (YYYY-MM-DD)")
	updateCmd.Flags().StringVar(&updateQuantity, "quantity", "", "new quantity")
	updateCmd.Flags().StringVar(&updateCategory, "category", "", "new category")
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	var upd pantry.Update
	if cmd.Flags().Changed("name") {
		upd.Name = &updateName
	}
	if cmd.Flags().Changed("expiry") {
		expiry, err := model.ParseDate(updateExpiry)
		if err != nil {
			return fmt.Errorf("expiry date must be YYYY-MM-DD: %w", err)
		}
		upd.ExpiryDate = &expiry
	}
	if cmd.Flags().Changed("quantity") {
		upd.Quantity = &updateQuantity
	}
	if cmd.Flags().Changed("category") {
		upd.Category = &updateCategory
	}

	if upd == (pantry.Update{}) {
		return fmt.Errorf("nothing to update: pass at least one of --name, --expiry, --quantity, --category")
	}

	store, err := openStore(cmd.Context())
	if err != nil {
		return err
	}

	item, err := store.Update(cmd.Context(), args[0], upd)
	if err != nil {
		var perr *pantry.PersistenceError
		if errors.As(err, &perr) {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", perr)
		} else {
			return err
		}
	}

	fmt.Printf("Updated %s (%s)\n", item.Name, item.ID)
	return nil
}
