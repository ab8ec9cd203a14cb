package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/erazemk/shramba/internal/model"
	"github.com/erazemk/shramba/internal/qr"
)

var qrCmd = &cobra.Command{
	Use:   "qr [id]",
	Short: "Print an item's QR payload, or render it as a PNG",
	Long: `Print the QR payload for an item so it can be put on a label.

With an id the payload is built from the stored item. Without one, pass
--name and --expiry (and optionally --quantity and --category) to build a
payload ad hoc, for labelling products that are not in the pantry yet.

Without --out the payload JSON is printed to stdout. With --out the
payload is rendered as a QR code PNG; scanning it feeds "shramba scan".`,
	Args: cobra.MaximumNArgs(1),
	RunE: runQR,
}

var (
	qrOut      string
	qrSize     int
	qrName     string
	qrExpiry   string
	qrQuantity string
	qrCategory string
)

func init() {
	qrCmd.Flags().StringVar(&qrOut, "out", "", "write a QR code PNG to this file")
	qrCmd.Flags().IntVar(&qrSize, "size", 256, "PNG size in pixels")
	qrCmd.Flags().StringVar(&qrName, "name", "", "item name (ad-hoc payload, without a stored item)")
	qrCmd.Flags().StringVar(&qrExpiry, "expiry", "", "expiry date YYYY-MM-DD (ad-hoc payload)")
	qrCmd.Flags().StringVar(&qrQuantity, "quantity", "", "quantity (ad-hoc payload, default \"1\")")
	qrCmd.Flags().StringVar(&qrCategory, "category", "", "category (ad-hoc payload, default \"other\")")
	rootCmd.AddCommand(qrCmd)
}

func runQR(cmd *cobra.Command, args []string) error {
	item, err := qrItem(cmd, args)
	if err != nil {
		return err
	}

	if qrOut == "" {
		payload, err := qr.Encode(item)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(payload))
		return nil
	}

	png, err := qr.EncodePNG(item, qrSize)
	if err != nil {
		return err
	}
	if err := os.WriteFile(qrOut, png, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", qrOut, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "QR code written to %s\n", qrOut)
	return nil
}

// qrItem resolves the item to encode: a stored item when an id is given,
// otherwise an ad-hoc item built from the flags.
func qrItem(cmd *cobra.Command, args []string) (model.Item, error) {
	if len(args) == 1 {
		store, err := openStore(cmd.Context())
		if err != nil {
			return model.Item{}, err
		}
		return store.Get(args[0])
	}

	if qrName == "" || qrExpiry == "" {
		return model.Item{}, fmt.Errorf("pass an item id, or --name and --expiry for an ad-hoc payload")
	}
	expiry, err := model.ParseDate(qrExpiry)
	if err != nil {
		return model.Item{}, fmt.Errorf("expiry date must be YYYY-MM-DD: %w", err)
	}

	item := model.Item{
		Name:       qrName,
		ExpiryDate: expiry,
		Quantity:   qrQuantity,
		Category:   qrCategory,
	}
	if item.Quantity == "" {
		item.Quantity = model.DefaultQuantity
	}
	if item.Category == "" {
		item.Category = model.DefaultCategory
	}
	return item, nil
}
