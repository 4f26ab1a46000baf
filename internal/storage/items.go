package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ainsleyw/drobe/internal/model"
)

// LoadItems returns every clothing item in the closet, empty when nothing
// has been stored yet.
func (s *SQLiteStore) LoadItems(ctx context.Context) ([]model.ClothingItem, error) {
	items := []model.ClothingItem{}
	if err := s.loadCollection(ctx, KeyClothingItems, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AppendItems concatenates the new items onto the stored collection and
// writes the whole collection back.
func (s *SQLiteStore) AppendItems(ctx context.Context, newItems []model.ClothingItem) error {
	if len(newItems) == 0 {
		return fmt.Errorf("%w: newItems", ErrEmptySlice)
	}
	for i := range newItems {
		if err := newItems[i].Validate(); err != nil {
			return fmt.Errorf("item at index %d: %w", i, err)
		}
	}

	items, err := s.LoadItems(ctx)
	if err != nil {
		return err
	}

	items = append(items, newItems...)
	if err := s.saveCollection(ctx, KeyClothingItems, items); err != nil {
		return err
	}

	slog.Debug("appended clothing items", "added", len(newItems), "total", len(items))
	return nil
}

// UpdateItemTags replaces the tags of the item with the given ID. Unknown
// IDs are a no-op.
func (s *SQLiteStore) UpdateItemTags(ctx context.Context, itemID string, tags []string) error {
	if err := validateString(itemID, "itemID"); err != nil {
		return err
	}
	if tags == nil {
		tags = []string{}
	}

	items, err := s.LoadItems(ctx)
	if err != nil {
		return err
	}

	updated := false
	for i := range items {
		if items[i].ID == itemID {
			items[i].Tags = tags
			updated = true
			break
		}
	}
	if !updated {
		slog.Debug("update tags: item not found", "id", itemID)
		return nil
	}

	return s.saveCollection(ctx, KeyClothingItems, items)
}

// DeleteItem removes the item with the given ID. Outfits referencing it are
// left alone; their references dangle and are filtered at read time.
func (s *SQLiteStore) DeleteItem(ctx context.Context, itemID string) error {
	if err := validateString(itemID, "itemID"); err != nil {
		return err
	}

	items, err := s.LoadItems(ctx)
	if err != nil {
		return err
	}

	kept := items[:0]
	for _, item := range items {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}

	return s.saveCollection(ctx, KeyClothingItems, kept)
}
