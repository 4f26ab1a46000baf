package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Outfit is a named, ordered selection of clothing item references.
// Item IDs are soft references: they may point at deleted items, and
// consumers filter unresolved IDs at read time.
type Outfit struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	ClothingItemIDs []string  `json:"clothingItemIds"`
	CreatedAt       time.Time `json:"createdAt"`
}

// NewOutfitID generates a unique outfit identifier.
func NewOutfitID() string {
	return fmt.Sprintf("outfit_%d_%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

// ResolveItems maps the outfit's item references onto the given closet,
// silently dropping IDs that no longer resolve.
func (o *Outfit) ResolveItems(closet []ClothingItem) []ClothingItem {
	byID := make(map[string]ClothingItem, len(closet))
	for _, item := range closet {
		byID[item.ID] = item
	}

	resolved := make([]ClothingItem, 0, len(o.ClothingItemIDs))
	for _, id := range o.ClothingItemIDs {
		if item, ok := byID[id]; ok {
			resolved = append(resolved, item)
		}
	}
	return resolved
}
