package outbound

import (
	"context"

	"cc-lostfound-service/internal/domain/item"

	"github.com/google/uuid"
)

// ItemFilter narrows a search. Query matches case-insensitively as a literal
// substring against the item's title, description, location and name; Type
// restricts to one item type. Both apply together when both are set.
type ItemFilter struct {
	Query string
	Type  *item.Type
	Limit int
}

// ItemRepository defines the interface for item data operations
type ItemRepository interface {
	// Create persists a new item, assigning its ID
	Create(ctx context.Context, it *item.Item) error

	// Search retrieves items matching the filter, ordered by date descending
	Search(ctx context.Context, filter ItemFilter) ([]*item.Item, error)

	// Claim marks the item with the given ID as claimed and returns the
	// updated record; implementations must report ErrItemNotFound for an
	// unknown ID and succeed unchanged for an already-claimed item
	Claim(ctx context.Context, id uuid.UUID) (*item.Item, error)
}
