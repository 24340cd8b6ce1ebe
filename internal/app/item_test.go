package app_test

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"

	"cc-lostfound-service/internal/app"
	"cc-lostfound-service/internal/domain/item"
	"cc-lostfound-service/internal/domain/shared"
	"cc-lostfound-service/internal/ports/inbound"
	"cc-lostfound-service/internal/ports/outbound"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeItemRepo is an in-memory ItemRepository with the same observable
// semantics as the Postgres adapter.
type fakeItemRepo struct {
	items []*item.Item
	err   error
}

func (f *fakeItemRepo) Create(_ context.Context, it *item.Item) error {
	if f.err != nil {
		return f.err
	}
	if it.ID == uuid.Nil {
		it.ID = uuid.New()
	}
	stored := *it
	f.items = append(f.items, &stored)
	return nil
}

func (f *fakeItemRepo) Search(_ context.Context, filter outbound.ItemFilter) ([]*item.Item, error) {
	if f.err != nil {
		return nil, f.err
	}

	matched := make([]*item.Item, 0)
	for _, it := range f.items {
		if filter.Type != nil && it.Type != *filter.Type {
			continue
		}
		if filter.Query != "" && !matchesQuery(it, filter.Query) {
			continue
		}
		cp := *it
		matched = append(matched, &cp)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Date.After(matched[j].Date)
	})
	if filter.Limit > 0 && len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

func (f *fakeItemRepo) Claim(_ context.Context, id uuid.UUID) (*item.Item, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, it := range f.items {
		if it.ID == id {
			it.Claimed = true
			cp := *it
			return &cp, nil
		}
	}
	return nil, shared.ErrItemNotFound
}

func matchesQuery(it *item.Item, q string) bool {
	q = strings.ToLower(q)
	for _, field := range []string{it.Title, it.Description, it.Location, it.Name} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

func newService(repo outbound.ItemRepository) *app.ItemService {
	return app.NewItemService(app.ItemServiceParams{
		ItemRepo: repo,
		Logger:   zerolog.Nop(),
	})
}

func TestCreateItem(t *testing.T) {
	t.Run("persists a valid item", func(t *testing.T) {
		repo := &fakeItemRepo{}
		service := newService(repo)

		it, err := service.CreateItem(context.Background(), inbound.CreateItemRequest{
			Title:    "Blue Wallet",
			Type:     "lost",
			Location: "Cafeteria",
		})
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, it.ID)
		assert.False(t, it.Date.IsZero())
		assert.False(t, it.Claimed)
		require.Len(t, repo.items, 1)
		assert.Equal(t, it.ID, repo.items[0].ID)
	})

	t.Run("rejects missing title without side effect", func(t *testing.T) {
		repo := &fakeItemRepo{}
		service := newService(repo)

		_, err := service.CreateItem(context.Background(), inbound.CreateItemRequest{Type: "lost"})
		assert.ErrorIs(t, err, shared.ErrTitleRequired)
		assert.Empty(t, repo.items)
	})

	t.Run("rejects missing type even though the model has a default", func(t *testing.T) {
		repo := &fakeItemRepo{}
		service := newService(repo)

		_, err := service.CreateItem(context.Background(), inbound.CreateItemRequest{Title: "Blue Wallet"})
		assert.ErrorIs(t, err, shared.ErrTypeRequired)
		assert.Empty(t, repo.items)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		repo := &fakeItemRepo{}
		service := newService(repo)

		_, err := service.CreateItem(context.Background(), inbound.CreateItemRequest{Title: "Blue Wallet", Type: "stolen"})
		assert.ErrorIs(t, err, shared.ErrInvalidItemType)
		assert.Empty(t, repo.items)
	})

	t.Run("surfaces store failures", func(t *testing.T) {
		repo := &fakeItemRepo{err: errors.New("connection refused")}
		service := newService(repo)

		_, err := service.CreateItem(context.Background(), inbound.CreateItemRequest{Title: "Blue Wallet", Type: "lost"})
		assert.EqualError(t, err, "connection refused")
	})
}

func TestSearchItems(t *testing.T) {
	seed := func(t *testing.T, repo *fakeItemRepo, title string, typ item.Type, location string) *item.Item {
		t.Helper()
		it, err := item.New(item.Fields{Title: title, Type: typ, Location: location})
		require.NoError(t, err)
		require.NoError(t, repo.Create(context.Background(), it))
		return it
	}

	t.Run("combines type and query filters", func(t *testing.T) {
		repo := &fakeItemRepo{}
		service := newService(repo)

		want := seed(t, repo, "Black Phone", item.TypeFound, "Gym")
		seed(t, repo, "Phone Charger", item.TypeLost, "Gym")
		seed(t, repo, "Umbrella", item.TypeFound, "Gym")

		items, err := service.SearchItems(context.Background(), inbound.SearchItemsRequest{
			Query: "phone",
			Type:  "found",
		})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, want.ID, items[0].ID)
	})

	t.Run("unknown type filter matches nothing", func(t *testing.T) {
		repo := &fakeItemRepo{}
		service := newService(repo)

		seed(t, repo, "Blue Wallet", item.TypeLost, "Cafeteria")

		items, err := service.SearchItems(context.Background(), inbound.SearchItemsRequest{Type: "stolen"})
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("returns empty slice when nothing matches", func(t *testing.T) {
		service := newService(&fakeItemRepo{})

		items, err := service.SearchItems(context.Background(), inbound.SearchItemsRequest{Query: "phone"})
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})
}

func TestClaimItem(t *testing.T) {
	t.Run("claims and stays claimed", func(t *testing.T) {
		repo := &fakeItemRepo{}
		service := newService(repo)

		created, err := service.CreateItem(context.Background(), inbound.CreateItemRequest{Title: "Blue Wallet", Type: "lost"})
		require.NoError(t, err)

		first, err := service.ClaimItem(context.Background(), created.ID)
		require.NoError(t, err)
		assert.True(t, first.Claimed)

		second, err := service.ClaimItem(context.Background(), created.ID)
		require.NoError(t, err)
		assert.True(t, second.Claimed)
	})

	t.Run("reports unknown ids", func(t *testing.T) {
		service := newService(&fakeItemRepo{})

		_, err := service.ClaimItem(context.Background(), uuid.New())
		assert.ErrorIs(t, err, shared.ErrItemNotFound)
	})
}
