// Package client implements the sync gateway: a thin REST client for the
// three-endpoint remote API. Each call is one request/response round-trip;
// there is no batching, no retry policy, and no offline queue.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/erazemk/shramba/internal/model"
)

// Client talks to a shrambad sync server on behalf of one owner key.
type Client struct {
	baseURL    string
	ownerKey   string
	httpClient *http.Client
}

// New creates a client for the given server base URL and owner key.
func New(baseURL, ownerKey string) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		ownerKey: ownerKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type createItemRequest struct {
	Owner      string `json:"owner"`
	ID         string `json:"id,omitempty"`
	Name       string `json:"name"`
	ExpiryDate string `json:"expiryDate"`
	Quantity   string `json:"quantity,omitempty"`
	Category   string `json:"category,omitempty"`
	CreatedAt  string `json:"createdAt,omitempty"`
}

// CreateItem mirrors an item to the remote table and returns the stored
// record. The server honors a provided id, so a repeated create for the
// same item acts as an update (last write wins).
func (c *Client) CreateItem(ctx context.Context, item model.Item) (model.Item, error) {
	req := createItemRequest{
		Owner:      c.ownerKey,
		ID:         item.ID,
		Name:       item.Name,
		ExpiryDate: item.ExpiryDate.String(),
		Quantity:   item.Quantity,
		Category:   item.Category,
	}
	if !item.CreatedAt.IsZero() {
		req.CreatedAt = item.CreatedAt.UTC().Format(time.RFC3339)
	}

	body, err := json.Marshal(req)
	if err != nil {
		return model.Item{}, fmt.Errorf("encoding request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/items", bytes.NewReader(body))
	if err != nil {
		return model.Item{}, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return model.Item{}, fmt.Errorf("create request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return model.Item{}, responseError("create", resp)
	}

	var created model.Item
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return model.Item{}, fmt.Errorf("decoding response: %w", err)
	}
	return created, nil
}

// ListItems returns the owner's items from the remote table, in creation
// order.
func (c *Client) ListItems(ctx context.Context) ([]model.Item, error) {
	listURL := c.baseURL + "/items?owner=" + url.QueryEscape(c.ownerKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, listURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("list request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, responseError("list", resp)
	}

	var items []model.Item
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return items, nil
}

// DeleteItem removes an item from the remote table. Deleting an absent id
// succeeds.
func (c *Client) DeleteItem(ctx context.Context, id string) error {
	deleteURL := c.baseURL + "/items/" + url.PathEscape(id) + "?owner=" + url.QueryEscape(c.ownerKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodDelete, deleteURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("delete request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return responseError("delete", resp)
	}
	return nil
}

// Load implements pantry.Mirror: in cloud mode the remote table is
// authoritative, so loading the store means listing the owner's records.
func (c *Client) Load(ctx context.Context) ([]model.Item, error) {
	return c.ListItems(ctx)
}

// Put implements pantry.Mirror with one create call per mutation.
func (c *Client) Put(ctx context.Context, item model.Item, _ []model.Item) error {
	_, err := c.CreateItem(ctx, item)
	return err
}

// Delete implements pantry.Mirror with one delete call.
func (c *Client) Delete(ctx context.Context, id string, _ []model.Item) error {
	return c.DeleteItem(ctx, id)
}

// responseError turns a non-2xx response into an error, preferring the
// server's JSON error message when present.
func responseError(op string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return fmt.Errorf("%s failed with status %d: %s", op, resp.StatusCode, payload.Error)
	}
	return fmt.Errorf("%s failed with status %d", op, resp.StatusCode)
}
