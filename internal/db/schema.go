package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema. One table, keyed by (owner_key, id):
// the owner key partitions records per user or device, the id is assigned
// at creation and never changes.
const schema = `
CREATE TABLE IF NOT EXISTS items (
    owner_key   TEXT NOT NULL,
    id          TEXT NOT NULL,
    name        TEXT NOT NULL,
    expiry_date TEXT NOT NULL,
    quantity    TEXT NOT NULL DEFAULT '1',
    category    TEXT NOT NULL DEFAULT 'other',
    created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    PRIMARY KEY (owner_key, id)
);

CREATE INDEX IF NOT EXISTS idx_items_owner_created
    ON items(owner_key, created_at);
`

// EnsureSchema creates all tables and indexes if they don't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
