// Package api implements the sync server's REST surface: three stateless
// handlers, one table operation each, over the owner-keyed items table.
package api

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/erazemk/shramba/internal/model"
	"github.com/erazemk/shramba/internal/store"
)

// ItemsHandler handles the item sync endpoints.
type ItemsHandler struct {
	DB *sql.DB
}

type createItemRequest struct {
	Owner      string `json:"owner"`
	ID         string `json:"id"`
	Name       string `json:"name"`
	ExpiryDate string `json:"expiryDate"`
	Quantity   string `json:"quantity"`
	Category   string `json:"category"`
	CreatedAt  string `json:"createdAt"`
}

// Create handles POST /items. Put semantics: a request with an existing
// (owner, id) key replaces that record, which is how client-side edits
// reach the table. Last write wins.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Owner == "" {
		jsonError(w, http.StatusBadRequest, "owner required")
		return
	}
	if req.Name == "" {
		jsonError(w, http.StatusBadRequest, "name required")
		return
	}

	expiry, err := model.ParseDate(req.ExpiryDate)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "expiryDate must be a valid YYYY-MM-DD date")
		return
	}

	item := model.Item{
		ID:         req.ID,
		Name:       req.Name,
		ExpiryDate: expiry,
		Quantity:   req.Quantity,
		Category:   req.Category,
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.Quantity == "" {
		item.Quantity = model.DefaultQuantity
	}
	if item.Category == "" {
		item.Category = model.DefaultCategory
	}
	if req.CreatedAt != "" {
		created, err := time.Parse(time.RFC3339, req.CreatedAt)
		if err != nil {
			jsonError(w, http.StatusBadRequest, "createdAt must be an RFC 3339 timestamp")
			return
		}
		// Stored timestamps are compared textually for ordering, so
		// every row has to be in the same zone.
		item.CreatedAt = created.UTC()
	} else {
		item.CreatedAt = time.Now().UTC()
	}

	if err := store.PutItem(r.Context(), h.DB, req.Owner, item); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to store item")
		return
	}

	stored, err := store.GetItem(r.Context(), h.DB, req.Owner, item.ID)
	if err != nil || stored == nil {
		jsonError(w, http.StatusInternalServerError, "failed to read back item")
		return
	}

	jsonResponse(w, http.StatusCreated, stored)
}

// List handles GET /items?owner=<key>.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	owner := r.URL.Query().Get("owner")
	if owner == "" {
		jsonError(w, http.StatusBadRequest, "owner required")
		return
	}

	items, err := store.ListItems(r.Context(), h.DB, owner)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list items")
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	jsonResponse(w, http.StatusOK, items)
}

// Delete handles DELETE /items/{id}?owner=<key>. Deleting an absent id is
// not an error.
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	owner := r.URL.Query().Get("owner")
	if owner == "" {
		jsonError(w, http.StatusBadRequest, "owner required")
		return
	}

	id := r.PathValue("id")
	if id == "" {
		jsonError(w, http.StatusBadRequest, "item id required")
		return
	}

	if err := store.DeleteItem(r.Context(), h.DB, owner, id); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to delete item")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "item deleted"})
}
