package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ainsleyw/drobe/internal/model"
)

func createTestStore(t *testing.T) (*SQLiteStore, func()) {
	t.Helper()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		t.Fatalf("Failed to migrate: %v", err)
	}

	return store, func() { _ = store.Close() }
}

func testItem(id, clothingType string, tags ...string) model.ClothingItem {
	if tags == nil {
		tags = []string{}
	}
	return model.ClothingItem{
		ID:         id,
		ImageURI:   "file:///images/" + id + ".png",
		Type:       clothingType,
		Tags:       tags,
		Confidence: 0.9,
		CreatedAt:  time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestLoadItemsEmptyStore(t *testing.T) {
	store, cleanup := createTestStore(t)
	defer cleanup()

	items, err := store.LoadItems(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestCollectionRoundTrip(t *testing.T) {
	store, cleanup := createTestStore(t)
	defer cleanup()
	ctx := context.Background()

	lastWorn := time.Date(2024, 4, 20, 9, 30, 0, 0, time.UTC)
	item := testItem("item_1", "dress", "Sling Dress", "party")
	item.Name = "Blue Sling Dress"
	item.Color = "blue"
	item.Season = "summer"
	item.Occasion = "party"
	item.Brand = "Acme"
	item.Material = "silk"
	item.Favorite = true
	item.WearCount = 3
	item.LastWorn = &lastWorn
	item.OriginalMask = []byte(`{"class_id":10,"confidence":0.87}`)
	item.OriginalImageURI = "file:///photos/outfit.jpg"

	plain := testItem("item_2", "top", "Short Sleeve Top")

	require.NoError(t, store.AppendItems(ctx, []model.ClothingItem{item, plain}))

	loaded, err := store.LoadItems(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, item, loaded[0])
	assert.Equal(t, plain, loaded[1])
}

func TestCorruptCollectionDegradesToEmpty(t *testing.T) {
	store, cleanup := createTestStore(t)
	defer cleanup()
	ctx := context.Background()

	_, err := store.db.ExecContext(ctx,
		"INSERT INTO collections (key, value) VALUES (?, ?)",
		KeyClothingItems, "{not json")
	require.NoError(t, err)

	items, err := store.LoadItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestMigrateIsIdempotent(t *testing.T) {
	store, cleanup := createTestStore(t)
	defer cleanup()

	require.NoError(t, store.Migrate(context.Background()))
	require.NoError(t, store.Migrate(context.Background()))
}
