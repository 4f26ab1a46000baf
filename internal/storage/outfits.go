package storage

import (
	"context"
	"strings"
	"time"

	"github.com/ainsleyw/drobe/internal/common"
	"github.com/ainsleyw/drobe/internal/model"
)

// LoadOutfits returns every saved outfit, empty when nothing has been
// stored yet.
func (s *SQLiteStore) LoadOutfits(ctx context.Context) ([]model.Outfit, error) {
	outfits := []model.Outfit{}
	if err := s.loadCollection(ctx, KeyOutfits, &outfits); err != nil {
		return nil, err
	}
	return outfits, nil
}

// CreateOutfit builds a new outfit from a name and a non-empty item
// selection and appends it to the collection.
func (s *SQLiteStore) CreateOutfit(ctx context.Context, name string, itemIDs []string) (*model.Outfit, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, common.NewValidationError("name", "outfit name is required")
	}
	if len(itemIDs) == 0 {
		return nil, common.NewValidationError("items", "select at least one clothing item")
	}

	outfits, err := s.LoadOutfits(ctx)
	if err != nil {
		return nil, err
	}

	outfit := model.Outfit{
		ID:              model.NewOutfitID(),
		Name:            name,
		ClothingItemIDs: itemIDs,
		CreatedAt:       time.Now().UTC(),
	}

	outfits = append(outfits, outfit)
	if err := s.saveCollection(ctx, KeyOutfits, outfits); err != nil {
		return nil, err
	}

	return &outfit, nil
}

// DeleteOutfit removes the outfit with the given ID. Calendar events
// referencing it are left to dangle.
func (s *SQLiteStore) DeleteOutfit(ctx context.Context, outfitID string) error {
	if err := validateString(outfitID, "outfitID"); err != nil {
		return err
	}

	outfits, err := s.LoadOutfits(ctx)
	if err != nil {
		return err
	}

	kept := outfits[:0]
	for _, outfit := range outfits {
		if outfit.ID != outfitID {
			kept = append(kept, outfit)
		}
	}

	return s.saveCollection(ctx, KeyOutfits, kept)
}
