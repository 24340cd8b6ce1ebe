package rest

import (
	"errors"
	"net/http"

	"cc-lostfound-service/internal/domain/shared"
	"cc-lostfound-service/internal/ports/inbound"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ItemHandler translates HTTP requests into item service calls
type ItemHandler struct {
	itemService  inbound.ItemService
	maxBodyBytes int64
	logger       zerolog.Logger
}

type ItemHandlerParams struct {
	ItemService  inbound.ItemService
	MaxBodyBytes int64
	Logger       zerolog.Logger
}

// NewItemHandler creates a new item handler
func NewItemHandler(params ItemHandlerParams) *ItemHandler {
	return &ItemHandler{
		itemService:  params.ItemService,
		maxBodyBytes: params.MaxBodyBytes,
		logger:       params.Logger.With().Str("component", "item_handler").Logger(),
	}
}

// Root handles GET / with a fixed confirmation string
func (h *ItemHandler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Lost & Found API is running"))
}

// Create handles POST /items
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req inbound.CreateItemRequest
	if err := decodeJSON(w, r, &req, h.maxBodyBytes); err != nil {
		h.writeError(w, err)
		return
	}

	it, err := h.itemService.CreateItem(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	jsonResponse(w, http.StatusCreated, it)
}

// Search handles GET /items
func (h *ItemHandler) Search(w http.ResponseWriter, r *http.Request) {
	req := inbound.SearchItemsRequest{
		Query: r.URL.Query().Get("q"),
		Type:  r.URL.Query().Get("type"),
	}

	items, err := h.itemService.SearchItems(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	jsonResponse(w, http.StatusOK, items)
}

// Claim handles POST /items/{id}/claim
func (h *ItemHandler) Claim(w http.ResponseWriter, r *http.Request) {
	// A malformed id cannot name a stored item, so it reads as not found
	// rather than as a distinct error shape.
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, shared.ErrItemNotFound)
		return
	}

	it, err := h.itemService.ClaimItem(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}

	jsonResponse(w, http.StatusOK, it)
}

// writeError maps domain errors onto HTTP statuses. Anything unrecognized is
// a store failure and surfaces verbatim with a server-error status.
func (h *ItemHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, shared.ErrTitleRequired),
		errors.Is(err, shared.ErrTypeRequired),
		errors.Is(err, shared.ErrInvalidItemType),
		errors.Is(err, shared.ErrInvalidRequest),
		errors.Is(err, shared.ErrRequestTooLarge):
		jsonError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, shared.ErrItemNotFound):
		jsonError(w, http.StatusNotFound, err.Error())
	default:
		h.logger.Error().Err(err).Msg("Request failed with store error")
		jsonError(w, http.StatusInternalServerError, err.Error())
	}
}
