package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ainsleyw/drobe/internal/model"
)

func createTestOutfit(t *testing.T, store *SQLiteStore, name string) *model.Outfit {
	t.Helper()
	ctx := context.Background()

	item := testItem("item_for_"+name, "top")
	require.NoError(t, store.AppendItems(ctx, []model.ClothingItem{item}))

	outfit, err := store.CreateOutfit(ctx, name, []string{item.ID})
	require.NoError(t, err)
	return outfit
}

func TestUpsertCalendarEvent(t *testing.T) {
	store, cleanup := createTestStore(t)
	defer cleanup()
	ctx := context.Background()

	first := createTestOutfit(t, store, "Brunch")
	second := createTestOutfit(t, store, "Gallery")

	t.Run("creates event for new date", func(t *testing.T) {
		event, err := store.UpsertCalendarEvent(ctx, "2024-05-01", first.ID)
		require.NoError(t, err)
		require.NotNil(t, event)

		assert.Equal(t, "2024-05-01", event.Date)
		assert.Equal(t, first.ID, event.OutfitID)
		assert.NotEmpty(t, event.ID)
	})

	t.Run("second assignment replaces the first", func(t *testing.T) {
		event, err := store.UpsertCalendarEvent(ctx, "2024-05-01", second.ID)
		require.NoError(t, err)
		assert.Equal(t, second.ID, event.OutfitID)

		events, err := store.LoadEvents(ctx)
		require.NoError(t, err)
		require.Len(t, events, 1, "one event per date")
		assert.Equal(t, second.ID, events[0].OutfitID)
	})

	t.Run("distinct dates coexist", func(t *testing.T) {
		_, err := store.UpsertCalendarEvent(ctx, "2024-05-02", first.ID)
		require.NoError(t, err)

		events, err := store.LoadEvents(ctx)
		require.NoError(t, err)
		assert.Len(t, events, 2)
	})
}

func TestUpsertCalendarEventValidation(t *testing.T) {
	store, cleanup := createTestStore(t)
	defer cleanup()
	ctx := context.Background()

	tests := []struct {
		name     string
		date     string
		outfitID string
		wantErr  error
	}{
		{name: "malformed date", date: "05/01/2024", outfitID: "outfit_1", wantErr: ErrInvalidDate},
		{name: "impossible date", date: "2024-13-40", outfitID: "outfit_1", wantErr: ErrInvalidDate},
		{name: "empty outfit id", date: "2024-05-01", outfitID: "  ", wantErr: ErrEmptyString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, err := store.UpsertCalendarEvent(ctx, tt.date, tt.outfitID)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, event)
		})
	}

	events, err := store.LoadEvents(ctx)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestRemoveCalendarEvent(t *testing.T) {
	store, cleanup := createTestStore(t)
	defer cleanup()
	ctx := context.Background()

	outfit := createTestOutfit(t, store, "Picnic")
	_, err := store.UpsertCalendarEvent(ctx, "2024-05-01", outfit.ID)
	require.NoError(t, err)

	t.Run("removes the dated event", func(t *testing.T) {
		require.NoError(t, store.RemoveCalendarEvent(ctx, "2024-05-01"))

		events, err := store.LoadEvents(ctx)
		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("absent date is a no-op", func(t *testing.T) {
		require.NoError(t, store.RemoveCalendarEvent(ctx, "2024-05-01"))
	})
}
