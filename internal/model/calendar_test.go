package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateKey(t *testing.T) {
	ts := time.Date(2024, 5, 1, 23, 45, 0, 0, time.UTC)
	assert.Equal(t, "2024-05-01", DateKey(ts))

	// Non-UTC timestamps are truncated in UTC so the key is stable.
	loc := time.FixedZone("UTC+9", 9*3600)
	assert.Equal(t, "2024-05-02", DateKey(time.Date(2024, 5, 2, 1, 0, 0, 0, loc).UTC()))
}

func TestValidDateKey(t *testing.T) {
	tests := []struct {
		key   string
		valid bool
	}{
		{"2024-05-01", true},
		{"2024-12-31", true},
		{"2024-13-01", false},
		{"2024-02-30", false},
		{"05-01-2024", false},
		{"2024-5-1", false},
		{"", false},
		{"today", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidDateKey(tt.key))
		})
	}
}

func TestResolveOutfit(t *testing.T) {
	outfits := []Outfit{
		{ID: "outfit_1", Name: "Weekend"},
		{ID: "outfit_2", Name: "Office"},
	}

	event := CalendarEvent{Date: "2024-05-01", OutfitID: "outfit_2"}
	resolved := event.ResolveOutfit(outfits)
	assert.NotNil(t, resolved)
	assert.Equal(t, "Office", resolved.Name)

	dangling := CalendarEvent{Date: "2024-05-02", OutfitID: "outfit_gone"}
	assert.Nil(t, dangling.ResolveOutfit(outfits))
}

func TestResolveItemsFiltersDangling(t *testing.T) {
	closet := []ClothingItem{
		{ID: "item_1", Type: "top"},
		{ID: "item_3", Type: "bottom"},
	}

	outfit := Outfit{
		ID:              "outfit_1",
		Name:            "Casual",
		ClothingItemIDs: []string{"item_1", "item_2", "item_3"},
	}

	resolved := outfit.ResolveItems(closet)
	assert.Len(t, resolved, 2)
	assert.Equal(t, "item_1", resolved[0].ID)
	assert.Equal(t, "item_3", resolved[1].ID)
	// References dangle but are never repaired.
	assert.Len(t, outfit.ClothingItemIDs, 3)
}
