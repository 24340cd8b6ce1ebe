package app

import (
	"context"

	"cc-lostfound-service/internal/config"
	"cc-lostfound-service/internal/domain/item"
	"cc-lostfound-service/internal/domain/shared"
	"cc-lostfound-service/internal/ports/inbound"
	"cc-lostfound-service/internal/ports/outbound"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ItemService implements the lost-and-found item use cases
type ItemService struct {
	itemRepo outbound.ItemRepository
	logger   zerolog.Logger
}

type ItemServiceParams struct {
	ItemRepo outbound.ItemRepository
	Logger   zerolog.Logger
}

// NewItemService creates a new item service
func NewItemService(params ItemServiceParams) *ItemService {
	return &ItemService{
		itemRepo: params.ItemRepo,
		logger:   params.Logger.With().Str("component", "item_service").Logger(),
	}
}

// CreateItem validates and persists a new item report
func (service *ItemService) CreateItem(ctx context.Context, req inbound.CreateItemRequest) (*item.Item, error) {
	service.logger.Info().
		Str("title", req.Title).
		Str("type", req.Type).
		Msg("Attempting to create item")

	// The endpoint requires both title and type even though the model layer
	// would default an absent type to lost.
	if req.Title == "" {
		service.logger.Warn().Str("type", req.Type).Msg("Missing required title")
		return nil, shared.ErrTitleRequired
	}
	if req.Type == "" {
		service.logger.Warn().Str("title", req.Title).Msg("Missing required type")
		return nil, shared.ErrTypeRequired
	}

	it, err := item.New(item.Fields{
		Name:         req.Name,
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Location:     req.Location,
		Type:         item.Type(req.Type),
		Contact:      req.Contact,
		ImageDataURL: req.ImageDataURL,
	})
	if err != nil {
		service.logger.Warn().Err(err).Str("type", req.Type).Msg("Item validation failed")
		return nil, err
	}

	if err := service.itemRepo.Create(ctx, it); err != nil {
		service.logger.Error().Err(err).Str("title", it.Title).Msg("Failed to persist item")
		return nil, err
	}

	service.logger.Info().
		Str("item_id", it.ID.String()).
		Str("type", string(it.Type)).
		Msg("Item created")

	return it, nil
}

// SearchItems retrieves items matching the filters, newest first, capped at
// the configured result limit
func (service *ItemService) SearchItems(ctx context.Context, req inbound.SearchItemsRequest) ([]*item.Item, error) {
	filter := outbound.ItemFilter{
		Query: req.Query,
		Limit: config.SearchResultLimit,
	}

	// Any non-empty type goes straight into the filter; a value outside the
	// enum cannot exist in the store, so it simply matches nothing.
	if req.Type != "" {
		typ := item.Type(req.Type)
		filter.Type = &typ
	}

	items, err := service.itemRepo.Search(ctx, filter)
	if err != nil {
		service.logger.Error().Err(err).Str("query", req.Query).Msg("Failed to search items")
		return nil, err
	}

	service.logger.Debug().
		Str("query", req.Query).
		Str("type", req.Type).
		Int("count", len(items)).
		Msg("Search completed")

	return items, nil
}

// ClaimItem marks an item as claimed and returns the updated record. Claiming
// an already-claimed item succeeds and returns the record unchanged.
func (service *ItemService) ClaimItem(ctx context.Context, itemID uuid.UUID) (*item.Item, error) {
	it, err := service.itemRepo.Claim(ctx, itemID)
	if err != nil {
		if err == shared.ErrItemNotFound {
			service.logger.Warn().Str("item_id", itemID.String()).Msg("Claim for unknown item")
		} else {
			service.logger.Error().Err(err).Str("item_id", itemID.String()).Msg("Failed to claim item")
		}
		return nil, err
	}

	service.logger.Info().Str("item_id", it.ID.String()).Msg("Item claimed")

	return it, nil
}
