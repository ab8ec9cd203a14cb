package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/erazemk/shramba/internal/db"
	"github.com/erazemk/shramba/internal/model"
)

func setupTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	database := db.NewTestDB(t)
	server := httptest.NewServer(NewRouter(database))
	t.Cleanup(server.Close)
	return server
}

func postItem(t *testing.T, server *httptest.Server, body map[string]string) *http.Response {
	t.Helper()
	data, _ := json.Marshal(body)
	resp, err := http.Post(server.URL+"/items", "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("POST /items: %v", err)
	}
	return resp
}

func TestCreateItem(t *testing.T) {
	server := setupTestServer(t)

	resp := postItem(t, server, map[string]string{
		"owner":      "device-1",
		"name":       "Milk",
		"expiryDate": "2025-12-10",
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var item model.Item
	json.NewDecoder(resp.Body).Decode(&item)
	if item.ID == "" {
		t.Error("expected assigned id in response")
	}
	if item.Quantity != "1" || item.Category != model.CategoryOther {
		t.Errorf("defaults not applied: %+v", item)
	}
	if item.CreatedAt.IsZero() {
		t.Error("expected assigned creation time")
	}
}

func TestCreateItemValidation(t *testing.T) {
	server := setupTestServer(t)

	tests := []map[string]string{
		{"name": "Milk", "expiryDate": "2025-12-10"},                        // no owner
		{"owner": "device-1", "expiryDate": "2025-12-10"},                   // no name
		{"owner": "device-1", "name": "Milk"},                               // no expiry
		{"owner": "device-1", "name": "Milk", "expiryDate": "12/10/2025"},   // bad date
		{"owner": "device-1", "name": "Milk", "expiryDate": "2025-12-10", "createdAt": "yesterday"},
	}

	for _, body := range tests {
		resp := postItem(t, server, body)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("body %v: expected 400, got %d", body, resp.StatusCode)
		}
		resp.Body.Close()
	}
}

func TestCreateItemResponseMatchesStoredRecord(t *testing.T) {
	server := setupTestServer(t)

	resp := postItem(t, server, map[string]string{
		"owner":      "device-1",
		"name":       "Milk",
		"expiryDate": "2025-12-10",
		"createdAt":  "2025-11-20T10:00:00Z",
	})
	defer resp.Body.Close()

	var created model.Item
	json.NewDecoder(resp.Body).Decode(&created)

	// The response is the stored row read back, so a subsequent list
	// returns the identical record.
	listResp, err := http.Get(server.URL + "/items?owner=device-1")
	if err != nil {
		t.Fatalf("GET /items: %v", err)
	}
	defer listResp.Body.Close()
	var items []model.Item
	json.NewDecoder(listResp.Body).Decode(&items)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].ID != created.ID || items[0].Name != created.Name ||
		items[0].ExpiryDate != created.ExpiryDate || !items[0].CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("listed item %+v does not match create response %+v", items[0], created)
	}
}

func TestCreateItemNormalizesTimezone(t *testing.T) {
	server := setupTestServer(t)

	// The +05:00 item is the earlier instant (06:00 UTC) even though its
	// textual timestamp sorts after the UTC one.
	postItem(t, server, map[string]string{
		"owner": "device-1", "name": "Earlier", "expiryDate": "2025-12-10",
		"createdAt": "2025-11-20T11:00:00+05:00",
	}).Body.Close()
	postItem(t, server, map[string]string{
		"owner": "device-1", "name": "Later", "expiryDate": "2025-12-10",
		"createdAt": "2025-11-20T07:00:00Z",
	}).Body.Close()

	resp, err := http.Get(server.URL + "/items?owner=device-1")
	if err != nil {
		t.Fatalf("GET /items: %v", err)
	}
	defer resp.Body.Close()
	var items []model.Item
	json.NewDecoder(resp.Body).Decode(&items)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Name != "Earlier" || items[1].Name != "Later" {
		t.Errorf("order = [%s %s], want [Earlier Later]", items[0].Name, items[1].Name)
	}
	for _, item := range items {
		if zone, offset := item.CreatedAt.Zone(); offset != 0 {
			t.Errorf("%s stored in zone %s (offset %d), want UTC", item.Name, zone, offset)
		}
	}
}

func TestListItemsByOwner(t *testing.T) {
	server := setupTestServer(t)

	postItem(t, server, map[string]string{"owner": "device-1", "name": "Milk", "expiryDate": "2025-12-10"}).Body.Close()
	postItem(t, server, map[string]string{"owner": "device-1", "name": "Eggs", "expiryDate": "2025-12-05"}).Body.Close()
	postItem(t, server, map[string]string{"owner": "device-2", "name": "Juice", "expiryDate": "2025-12-31"}).Body.Close()

	resp, err := http.Get(server.URL + "/items?owner=device-1")
	if err != nil {
		t.Fatalf("GET /items: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var items []model.Item
	json.NewDecoder(resp.Body).Decode(&items)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Name != "Milk" || items[1].Name != "Eggs" {
		t.Errorf("creation order not preserved: %+v", items)
	}
}

func TestListItemsRequiresOwner(t *testing.T) {
	server := setupTestServer(t)

	resp, err := http.Get(server.URL + "/items")
	if err != nil {
		t.Fatalf("GET /items: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 without owner, got %d", resp.StatusCode)
	}
}

func TestCreateItemPutSemantics(t *testing.T) {
	server := setupTestServer(t)

	resp := postItem(t, server, map[string]string{"owner": "device-1", "name": "Milk", "expiryDate": "2025-12-10"})
	var created model.Item
	json.NewDecoder(resp.Body).Decode(&created)
	resp.Body.Close()

	// Same id again: replaces, does not duplicate.
	resp = postItem(t, server, map[string]string{
		"owner":      "device-1",
		"id":         created.ID,
		"name":       "Oat Milk",
		"expiryDate": "2025-12-15",
	})
	resp.Body.Close()

	listResp, err := http.Get(server.URL + "/items?owner=device-1")
	if err != nil {
		t.Fatalf("GET /items: %v", err)
	}
	defer listResp.Body.Close()
	var items []model.Item
	json.NewDecoder(listResp.Body).Decode(&items)
	if len(items) != 1 {
		t.Fatalf("expected 1 item after put of same id, got %d", len(items))
	}
	if items[0].Name != "Oat Milk" {
		t.Errorf("last write must win, got %+v", items[0])
	}
}

func TestDeleteItem(t *testing.T) {
	server := setupTestServer(t)

	resp := postItem(t, server, map[string]string{"owner": "device-1", "name": "Milk", "expiryDate": "2025-12-10"})
	var created model.Item
	json.NewDecoder(resp.Body).Decode(&created)
	resp.Body.Close()

	req, _ := http.NewRequest(http.MethodDelete, server.URL+"/items/"+created.ID+"?owner=device-1", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE /items: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	listResp, err := http.Get(server.URL + "/items?owner=device-1")
	if err != nil {
		t.Fatalf("GET /items: %v", err)
	}
	defer listResp.Body.Close()
	var items []model.Item
	json.NewDecoder(listResp.Body).Decode(&items)
	if len(items) != 0 {
		t.Errorf("expected 0 items after delete, got %d", len(items))
	}

	// Idempotent: deleting again still succeeds.
	req, _ = http.NewRequest(http.MethodDelete, server.URL+"/items/"+created.ID+"?owner=device-1", nil)
	resp, _ = http.DefaultClient.Do(req)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200 for repeated delete, got %d", resp.StatusCode)
	}
}

func TestDeleteItemRequiresOwner(t *testing.T) {
	server := setupTestServer(t)

	req, _ := http.NewRequest(http.MethodDelete, server.URL+"/items/some-id", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE /items: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 without owner, got %d", resp.StatusCode)
	}
}

func TestCORSHeaders(t *testing.T) {
	server := setupTestServer(t)

	resp, _ := http.Get(server.URL + "/items?owner=device-1")
	resp.Body.Close()
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}

	// Preflight.
	req, _ := http.NewRequest(http.MethodOptions, server.URL+"/items", nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("OPTIONS /items: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("expected 204 for preflight, got %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Methods"); got == "" {
		t.Error("expected Access-Control-Allow-Methods on preflight")
	}
}
