package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/erazemk/shramba/internal/model"
	"github.com/erazemk/shramba/internal/qr"
)

// runQRCommand executes "shramba qr" with the given arguments and returns
// the combined output.
func runQRCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Flag variables persist across executions.
	qrOut, qrSize = "", 256
	qrName, qrExpiry, qrQuantity, qrCategory = "", "", "", ""

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(append([]string{"qr"}, args...))
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestQRAdHocPayload(t *testing.T) {
	out, err := runQRCommand(t, "--name", "Milk", "--expiry", "2025-12-10")
	if err != nil {
		t.Fatalf("qr --name --expiry: %v", err)
	}

	req, err := qr.Parse(strings.TrimSpace(out))
	if err != nil {
		t.Fatalf("output is not a valid payload: %v\noutput: %s", err, out)
	}
	if req.Name != "Milk" || req.ExpiryDate.String() != "2025-12-10" {
		t.Errorf("payload = %+v", req)
	}
	if req.Quantity != model.DefaultQuantity || req.Category != model.DefaultCategory {
		t.Errorf("defaults not applied: %+v", req)
	}
}

func TestQRAdHocPayloadWithAllFields(t *testing.T) {
	out, err := runQRCommand(t, "--name", "Coca Cola", "--expiry", "2025-12-31",
		"--quantity", "2", "--category", "beverages")
	if err != nil {
		t.Fatalf("qr with all flags: %v", err)
	}

	req, err := qr.Parse(strings.TrimSpace(out))
	if err != nil {
		t.Fatalf("output is not a valid payload: %v", err)
	}
	if req.Quantity != "2" || req.Category != model.CategoryBeverages {
		t.Errorf("payload = %+v", req)
	}
}

func TestQRAdHocPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "label.png")

	_, err := runQRCommand(t, "--name", "Milk", "--expiry", "2025-12-10", "--out", path)
	if err != nil {
		t.Fatalf("qr --out: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading PNG: %v", err)
	}
	if len(data) < 8 || string(data[1:4]) != "PNG" {
		t.Error("output file does not look like a PNG")
	}
}

func TestQRRequiresIDOrFlags(t *testing.T) {
	if _, err := runQRCommand(t); err == nil {
		t.Error("qr without id or flags must fail")
	}
	if _, err := runQRCommand(t, "--name", "Milk"); err == nil {
		t.Error("qr with --name but no --expiry must fail")
	}
	if _, err := runQRCommand(t, "--name", "Milk", "--expiry", "someday"); err == nil {
		t.Error("qr with malformed --expiry must fail")
	}
}
