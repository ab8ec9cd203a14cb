// Package qr implements the QR payload convention: a small JSON object that
// a scan turns into an item-creation request, and the matching encoder for
// printing labels.
package qr

import (
	"encoding/json"
	"errors"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/erazemk/shramba/internal/model"
	"github.com/erazemk/shramba/internal/pantry"
)

// ErrInvalidFormat is returned when a scanned payload is not a JSON object.
var ErrInvalidFormat = errors.New("payload is not a JSON object")

// MissingFieldError reports a required payload field that is absent or
// empty.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("payload missing required field %q", e.Field)
}

// Payload is the wire form of a scanned code. Unknown keys are ignored by
// the decoder.
type Payload struct {
	Name       string `json:"name"`
	ExpiryDate string `json:"expiryDate"`
	Quantity   string `json:"qty,omitempty"`
	Category   string `json:"category,omitempty"`
}

// Parse validates a scanned payload and returns a fully populated
// item-creation request. Validation and defaulting are separate stages:
// decode and field checks first, then defaults for qty ("1") and category
// ("other"). Category values are deliberately not checked against the
// known set, so a scan with a future category still succeeds.
func Parse(rawText string) (pantry.AddRequest, error) {
	// Decode to a map first: unmarshaling "null" into a struct succeeds
	// and would misreport a non-object as a missing field.
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(rawText), &fields); err != nil || fields == nil {
		return pantry.AddRequest{}, ErrInvalidFormat
	}

	var payload Payload
	if err := json.Unmarshal([]byte(rawText), &payload); err != nil {
		return pantry.AddRequest{}, ErrInvalidFormat
	}

	if payload.Name == "" {
		return pantry.AddRequest{}, &MissingFieldError{Field: "name"}
	}
	if payload.ExpiryDate == "" {
		return pantry.AddRequest{}, &MissingFieldError{Field: "expiryDate"}
	}

	expiry, err := model.ParseDate(payload.ExpiryDate)
	if err != nil {
		return pantry.AddRequest{}, &pantry.ValidationError{Field: "expiryDate", Reason: "must be a valid YYYY-MM-DD date"}
	}

	return applyDefaults(pantry.AddRequest{
		Name:       payload.Name,
		ExpiryDate: expiry,
		Quantity:   payload.Quantity,
		Category:   payload.Category,
	}), nil
}

// applyDefaults fills absent optional fields.
func applyDefaults(req pantry.AddRequest) pantry.AddRequest {
	if req.Quantity == "" {
		req.Quantity = model.DefaultQuantity
	}
	if req.Category == "" {
		req.Category = model.DefaultCategory
	}
	return req
}

// Encode returns the canonical payload JSON for an item, suitable for
// rendering as a QR code that round-trips through Parse.
func Encode(item model.Item) ([]byte, error) {
	payload := Payload{
		Name:       item.Name,
		ExpiryDate: item.ExpiryDate.String(),
		Quantity:   item.Quantity,
		Category:   item.Category,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding payload: %w", err)
	}
	return data, nil
}

// EncodePNG renders the item's payload as a QR code PNG of the given pixel
// size.
func EncodePNG(item model.Item, size int) ([]byte, error) {
	payload, err := Encode(item)
	if err != nil {
		return nil, err
	}
	png, err := qrcode.Encode(string(payload), qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("rendering QR code: %w", err)
	}
	return png, nil
}
