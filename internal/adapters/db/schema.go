package db

import (
	"context"
	"fmt"
)

// schema is the full database schema for the service.
const schema = `
CREATE TABLE IF NOT EXISTS items (
    id             UUID PRIMARY KEY,
    name           TEXT NOT NULL DEFAULT '',
    title          TEXT NOT NULL,
    description    TEXT NOT NULL DEFAULT '',
    category       TEXT NOT NULL DEFAULT '',
    location       TEXT NOT NULL DEFAULT '',
    type           TEXT NOT NULL DEFAULT 'lost' CHECK (type IN ('lost', 'found')),
    contact        TEXT NOT NULL DEFAULT '',
    image_data_url TEXT NOT NULL DEFAULT '',
    date           TIMESTAMPTZ NOT NULL DEFAULT now(),
    claimed        BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE INDEX IF NOT EXISTS idx_items_date ON items (date DESC);
CREATE INDEX IF NOT EXISTS idx_items_type ON items (type);
`

// EnsureSchema creates the items table and indexes if they do not exist yet.
func (client *Connection) EnsureSchema(ctx context.Context) error {
	if _, err := client.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}
