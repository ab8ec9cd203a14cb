// Package store implements the remote table: per-owner item records in
// SQLite. Each function is one table operation; the handlers above compose
// nothing, so there are no multi-item transactions.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/erazemk/shramba/internal/model"
)

// PutItem inserts or replaces an item for the given owner. Put semantics
// double as update: the last write for a (owner, id) key wins.
func PutItem(ctx context.Context, db *sql.DB, ownerKey string, item model.Item) error {
	_, err := db.ExecContext(ctx,
		`INSERT OR REPLACE INTO items (owner_key, id, name, expiry_date, quantity, category, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		ownerKey, item.ID, item.Name, item.ExpiryDate, item.Quantity, item.Category, item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("putting item: %w", err)
	}
	return nil
}

// GetItem returns an owner's item by ID, or nil if absent.
func GetItem(ctx context.Context, db *sql.DB, ownerKey, id string) (*model.Item, error) {
	item := &model.Item{}
	err := db.QueryRowContext(ctx,
		`SELECT id, name, expiry_date, quantity, category, created_at
		 FROM items WHERE owner_key = ? AND id = ?`, ownerKey, id,
	).Scan(&item.ID, &item.Name, &item.ExpiryDate, &item.Quantity, &item.Category, &item.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	return item, nil
}

// ListItems returns all of an owner's items in creation order.
func ListItems(ctx context.Context, db *sql.DB, ownerKey string) ([]model.Item, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, name, expiry_date, quantity, category, created_at
		 FROM items WHERE owner_key = ? ORDER BY created_at, id`, ownerKey,
	)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		var item model.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.ExpiryDate, &item.Quantity, &item.Category, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// DeleteItem removes an owner's item. Deleting an absent id is not an
// error, so the operation is idempotent.
func DeleteItem(ctx context.Context, db *sql.DB, ownerKey, id string) error {
	_, err := db.ExecContext(ctx,
		`DELETE FROM items WHERE owner_key = ? AND id = ?`,
		ownerKey, id,
	)
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	return nil
}
