package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/erazemk/shramba/internal/pantry"
	"github.com/erazemk/shramba/internal/qr"
)

var scanCmd = &cobra.Command{
	Use:   "scan [payload]",
	Short: "Add an item from a scanned QR payload",
	Long: `Add an item from the text content of a scanned QR code.

The payload is a JSON object like
  {"name":"Milk","expiryDate":"2025-12-10","qty":"2","category":"dairy"}
with qty and category optional. Pass it as an argument or pipe it on
standard input.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	var raw string
	if len(args) > 0 {
		raw = args[0]
	} else {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading payload: %w", err)
		}
		raw = strings.TrimSpace(string(data))
	}

	req, err := qr.Parse(raw)
	if err != nil {
		return fmt.Errorf("cannot read this code: %w", err)
	}

	store, err := openStore(cmd.Context())
	if err != nil {
		return err
	}

	item, err := store.Add(cmd.Context(), req)
	if err != nil {
		var perr *pantry.PersistenceError
		if errors.As(err, &perr) {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", perr)
		} else {
			return err
		}
	}

	fmt.Printf("Added %s (%s, expires %s)\n", item.Name, item.ID, item.ExpiryDate)
	return nil
}
