package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ainsleyw/drobe/internal/model"
)

func TestAppendItemsGrowsCollection(t *testing.T) {
	store, cleanup := createTestStore(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, store.AppendItems(ctx, []model.ClothingItem{
		testItem("item_1", "top"),
		testItem("item_2", "bottom"),
	}))
	require.NoError(t, store.AppendItems(ctx, []model.ClothingItem{
		testItem("item_3", "dress"),
	}))

	items, err := store.LoadItems(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 3)

	seen := make(map[string]int)
	for _, item := range items {
		seen[item.ID]++
	}
	for _, id := range []string{"item_1", "item_2", "item_3"} {
		assert.Equal(t, 1, seen[id], "id %s should appear exactly once", id)
	}
}

func TestAppendItemsRejectsInvalid(t *testing.T) {
	store, cleanup := createTestStore(t)
	defer cleanup()
	ctx := context.Background()

	t.Run("empty slice", func(t *testing.T) {
		assert.ErrorIs(t, store.AppendItems(ctx, nil), ErrEmptySlice)
	})

	t.Run("invalid item leaves collection unchanged", func(t *testing.T) {
		bad := testItem("item_bad", "")
		err := store.AppendItems(ctx, []model.ClothingItem{bad})
		assert.ErrorIs(t, err, model.ErrInvalidItem)

		items, err := store.LoadItems(ctx)
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestUpdateItemTags(t *testing.T) {
	store, cleanup := createTestStore(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, store.AppendItems(ctx, []model.ClothingItem{
		testItem("item_1", "top", "Short Sleeve Top"),
	}))

	t.Run("replaces tags", func(t *testing.T) {
		require.NoError(t, store.UpdateItemTags(ctx, "item_1", []string{"linen", "summer"}))

		items, err := store.LoadItems(ctx)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, []string{"linen", "summer"}, items[0].Tags)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		require.NoError(t, store.UpdateItemTags(ctx, "item_missing", []string{"x"}))

		items, err := store.LoadItems(ctx)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, []string{"linen", "summer"}, items[0].Tags)
	})

	t.Run("empty id rejected", func(t *testing.T) {
		assert.ErrorIs(t, store.UpdateItemTags(ctx, " ", nil), ErrEmptyString)
	})
}

func TestDeleteItemDoesNotCascade(t *testing.T) {
	store, cleanup := createTestStore(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, store.AppendItems(ctx, []model.ClothingItem{
		testItem("item_1", "top"),
		testItem("item_2", "bottom"),
	}))

	outfit, err := store.CreateOutfit(ctx, "Casual", []string{"item_1", "item_2"})
	require.NoError(t, err)

	require.NoError(t, store.DeleteItem(ctx, "item_1"))

	items, err := store.LoadItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "item_2", items[0].ID)

	// The outfit keeps both references; only resolution shrinks.
	outfits, err := store.LoadOutfits(ctx)
	require.NoError(t, err)
	require.Len(t, outfits, 1)
	assert.Equal(t, outfit.ID, outfits[0].ID)
	assert.Len(t, outfits[0].ClothingItemIDs, 2)
	assert.Len(t, outfits[0].ResolveItems(items), 1)
}

func TestDeleteItemUnknownIDKeepsCollection(t *testing.T) {
	store, cleanup := createTestStore(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, store.AppendItems(ctx, []model.ClothingItem{
		testItem("item_1", "top"),
	}))

	require.NoError(t, store.DeleteItem(ctx, "item_other"))

	items, err := store.LoadItems(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}
