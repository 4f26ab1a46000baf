// Package storage provides the data persistence layer for the drobe closet.
//
// The three collections (clothing items, outfits, calendar events) are
// persisted as whole JSON arrays under fixed keys. Every operation is a
// single load-mutate-store cycle; the last writer wins. That is acceptable
// for the single-user, serialized CLI model and would be the first thing to
// harden if concurrent writers were ever introduced.
package storage

import (
	"context"

	"github.com/ainsleyw/drobe/internal/model"
)

// Collection keys in the key-value table.
const (
	KeyClothingItems  = "clothingItems"
	KeyOutfits        = "outfits"
	KeyCalendarEvents = "calendarEvents"
)

// Store is the single source of truth for closet state. Commands and the
// HTTP API receive it by injection so tests can substitute their own.
type Store interface {
	LoadItems(ctx context.Context) ([]model.ClothingItem, error)
	AppendItems(ctx context.Context, items []model.ClothingItem) error
	UpdateItemTags(ctx context.Context, itemID string, tags []string) error
	DeleteItem(ctx context.Context, itemID string) error

	LoadOutfits(ctx context.Context) ([]model.Outfit, error)
	CreateOutfit(ctx context.Context, name string, itemIDs []string) (*model.Outfit, error)
	DeleteOutfit(ctx context.Context, outfitID string) error

	LoadEvents(ctx context.Context) ([]model.CalendarEvent, error)
	UpsertCalendarEvent(ctx context.Context, date, outfitID string) (*model.CalendarEvent, error)
	RemoveCalendarEvent(ctx context.Context, date string) error

	Close() error
}
