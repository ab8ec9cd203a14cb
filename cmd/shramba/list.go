package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/erazemk/shramba/internal/model"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List items with their freshness status",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var (
	listStatus   string
	listCategory string
)

func init() {
	listCmd.Flags().StringVar(&listStatus, "status", "", "only show items with this status (safe, expiring-soon, expired)")
	listCmd.Flags().StringVar(&listCategory, "category", "", "only show items in this category")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd.Context())
	if err != nil {
		return err
	}

	today := time.Now()
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tQTY\tCATEGORY\tEXPIRES\tSTATUS")

	for _, item := range store.List() {
		status := item.Status(today)
		if listStatus != "" && string(status) != listStatus {
			continue
		}
		// Category filters match on the effective category, so unknown
		// values show up under "other".
		if listCategory != "" && model.EffectiveCategory(item.Category) != listCategory {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			item.ID, item.Name, item.Quantity, item.Category, item.ExpiryDate, status)
	}

	return w.Flush()
}
