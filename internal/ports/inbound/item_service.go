package inbound

import (
	"context"

	"cc-lostfound-service/internal/domain/item"

	"github.com/google/uuid"
)

// ItemService defines the interface for lost-and-found item operations
type ItemService interface {
	// CreateItem validates and persists a new item report
	CreateItem(ctx context.Context, req CreateItemRequest) (*item.Item, error)

	// SearchItems retrieves items matching the given filters, newest first
	SearchItems(ctx context.Context, req SearchItemsRequest) ([]*item.Item, error)

	// ClaimItem marks an item as claimed and returns the updated record
	ClaimItem(ctx context.Context, itemID uuid.UUID) (*item.Item, error)
}

// request to create an item
type CreateItemRequest struct {
	Name         string `json:"name"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	Location     string `json:"location"`
	Type         string `json:"type"`
	Contact      string `json:"contact"`
	ImageDataURL string `json:"imageDataUrl"`
}

// request to search items
type SearchItemsRequest struct {
	Query string `json:"q,omitempty"`
	Type  string `json:"type,omitempty"`
}
