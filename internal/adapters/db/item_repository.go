package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"cc-lostfound-service/internal/config"
	"cc-lostfound-service/internal/domain/item"
	"cc-lostfound-service/internal/domain/shared"
	"cc-lostfound-service/internal/ports/outbound"

	"github.com/google/uuid"
)

const itemColumns = "id, name, title, description, category, location, type, contact, image_data_url, date, claimed"

// ItemRepository implements the item repository interface
type ItemRepository struct {
	conn *Connection
}

// NewItemRepository creates a new item repository
func NewItemRepository(conn *Connection) *ItemRepository {
	return &ItemRepository{conn: conn}
}

// Create persists a new item, assigning its ID
func (r *ItemRepository) Create(ctx context.Context, it *item.Item) error {
	if it.ID == uuid.Nil {
		it.ID = uuid.New()
	}

	query := `
		INSERT INTO items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.conn.GetDB().ExecContext(ctx, query,
		it.ID,
		it.Name,
		it.Title,
		it.Description,
		it.Category,
		it.Location,
		string(it.Type),
		it.Contact,
		it.ImageDataURL,
		it.Date,
		it.Claimed,
	)

	if err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}

	return nil
}

// Search retrieves items matching the filter, ordered by date descending
func (r *ItemRepository) Search(ctx context.Context, filter outbound.ItemFilter) ([]*item.Item, error) {
	query := "SELECT " + itemColumns + " FROM items"

	var conds []string
	var args []interface{}

	if filter.Type != nil {
		args = append(args, string(*filter.Type))
		conds = append(conds, fmt.Sprintf("type = $%d", len(args)))
	}

	if filter.Query != "" {
		args = append(args, "%"+escapeLikePattern(filter.Query)+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(title ILIKE $%d OR description ILIKE $%d OR location ILIKE $%d OR name ILIKE $%d)",
			n, n, n, n,
		))
	}

	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	limit := filter.Limit
	if limit <= 0 || limit > config.SearchResultLimit {
		limit = config.SearchResultLimit
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY date DESC LIMIT $%d", len(args))

	rows, err := r.conn.GetDB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search items: %w", err)
	}
	defer rows.Close()

	items := make([]*item.Item, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read item rows: %w", err)
	}

	return items, nil
}

// Claim marks the item with the given ID as claimed and returns the updated
// record. The lookup and the write are a single statement, so the update is
// atomic and idempotent for an already-claimed item.
func (r *ItemRepository) Claim(ctx context.Context, id uuid.UUID) (*item.Item, error) {
	query := `
		UPDATE items
		SET claimed = TRUE
		WHERE id = $1
		RETURNING ` + itemColumns

	it, err := scanItem(r.conn.GetDB().QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, shared.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to claim item: %w", err)
	}

	return it, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanItem(row rowScanner) (*item.Item, error) {
	var it item.Item
	var typ string

	err := row.Scan(
		&it.ID,
		&it.Name,
		&it.Title,
		&it.Description,
		&it.Category,
		&it.Location,
		&typ,
		&it.Contact,
		&it.ImageDataURL,
		&it.Date,
		&it.Claimed,
	)
	if err != nil {
		return nil, err
	}

	it.Type = item.Type(typ)
	return &it, nil
}

// escapeLikePattern escapes the LIKE metacharacters so the query text matches
// as a literal substring.
func escapeLikePattern(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
