package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftdex/companion/internal/domain"
)

// fakeCatalog is an in-memory item lookup for inventory tests.
type fakeCatalog struct {
	items map[string]domain.Item
}

func newFakeCatalog(items ...domain.Item) *fakeCatalog {
	f := &fakeCatalog{items: make(map[string]domain.Item)}
	for _, item := range items {
		f.items[item.ID] = item
	}
	return f
}

func (f *fakeCatalog) Item(id string) (domain.Item, bool) {
	item, ok := f.items[id]
	return item, ok
}

func newTestService() Service {
	return NewService(newFakeCatalog(
		domain.Item{ID: "rough_log", Name: "Rough Log", Tier: 1},
		domain.Item{ID: "tree_sap", Name: "Tree Sap", Tier: 1},
	))
}

func TestAddInsertsAndMerges(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	require.NoError(t, svc.Add(ctx, "rough_log", 3))
	require.NoError(t, svc.Add(ctx, "rough_log", 2))
	require.NoError(t, svc.Add(ctx, "tree_sap", 1))

	entries := svc.Entries(ctx)
	require.Len(t, entries, 2)
	assert.Equal(t, 5, entries[0].Quantity)
	assert.Equal(t, "tree_sap", entries[1].Item.ID)
}

func TestAddUnknownItem(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	err := svc.Add(ctx, "nonexistent", 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
	assert.Empty(t, svc.Entries(ctx))
}

func TestSetQuantity(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	require.NoError(t, svc.Add(ctx, "rough_log", 3))

	require.NoError(t, svc.SetQuantity(ctx, "rough_log", 12))
	assert.Equal(t, 12, svc.Quantity(ctx, "rough_log"))

	// Stored unclamped; only the reconciliation view reads it back.
	require.NoError(t, svc.SetQuantity(ctx, "rough_log", -4))
	assert.Equal(t, -4, svc.Quantity(ctx, "rough_log"))
}

func TestSetQuantityUntrackedItem(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	err := svc.SetQuantity(ctx, "rough_log", 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEntryNotFound)
}

func TestRemoveIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	require.NoError(t, svc.Add(ctx, "rough_log", 3))

	svc.Remove(ctx, "rough_log")
	assert.Empty(t, svc.Entries(ctx))

	// Removing a non-existent entry leaves the ledger unchanged.
	svc.Remove(ctx, "rough_log")
	svc.Remove(ctx, "never_added")
	assert.Empty(t, svc.Entries(ctx))
}

func TestQuantityDefaultsToZero(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	assert.Equal(t, 0, svc.Quantity(ctx, "rough_log"))
}

func TestEntriesReturnsCopy(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	require.NoError(t, svc.Add(ctx, "rough_log", 3))

	entries := svc.Entries(ctx)
	entries[0].Quantity = 999

	assert.Equal(t, 3, svc.Quantity(ctx, "rough_log"))
}
