// Package model defines the core domain types for the drobe closet.
package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidItem indicates a clothing item failed validation.
var ErrInvalidItem = errors.New("invalid clothing item")

// ClothingType is the canonical garment category used throughout the app.
// The storage layer does not enforce this set; user edits may introduce
// free-form values, which are preserved as-is.
type ClothingType string

// Canonical clothing types.
const (
	TypeTop       ClothingType = "top"
	TypeBottom    ClothingType = "bottom"
	TypeDress     ClothingType = "dress"
	TypeJacket    ClothingType = "jacket"
	TypeOutwear   ClothingType = "outwear"
	TypeSkirt     ClothingType = "skirt"
	TypeShoes     ClothingType = "shoes"
	TypeAccessory ClothingType = "accessory"
	TypeOther     ClothingType = "other"
)

// ClothingItem is a single garment in the user's closet. Optional fields use
// omitempty so the persisted JSON round-trips without inventing values.
type ClothingItem struct {
	ID               string          `json:"id"`
	ImageURI         string          `json:"imageUri"`
	Type             string          `json:"type"`
	Tags             []string        `json:"tags"`
	Confidence       float64         `json:"confidence"`
	OriginalImageURI string          `json:"originalImageUri,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	Name             string          `json:"name,omitempty"`
	Color            string          `json:"color,omitempty"`
	Season           string          `json:"season,omitempty"`
	Occasion         string          `json:"occasion,omitempty"`
	Brand            string          `json:"brand,omitempty"`
	Material         string          `json:"material,omitempty"`
	Favorite         bool            `json:"favorite,omitempty"`
	WearCount        int             `json:"wearCount,omitempty"`
	LastWorn         *time.Time      `json:"lastWorn,omitempty"`
	OriginalMask     json.RawMessage `json:"originalMask,omitempty"`
}

// DefaultConfidence is used when the detection service omits a score.
const DefaultConfidence = 0.8

// NewItemID generates a unique clothing item identifier.
func NewItemID() string {
	return fmt.Sprintf("item_%d_%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

// NewClothingItem builds an item with generated ID, timestamp and defaults
// applied. Validate separately before persisting.
func NewClothingItem(imageURI, clothingType string, tags []string, confidence float64) ClothingItem {
	if confidence <= 0 {
		confidence = DefaultConfidence
	}
	if tags == nil {
		tags = []string{}
	}
	return ClothingItem{
		ID:         NewItemID(),
		ImageURI:   imageURI,
		Type:       clothingType,
		Tags:       tags,
		Confidence: confidence,
		CreatedAt:  time.Now().UTC(),
	}
}

// Validate checks the creation-time requirements for a clothing item.
func (c *ClothingItem) Validate() error {
	if strings.TrimSpace(c.ImageURI) == "" {
		return fmt.Errorf("%w: missing imageUri", ErrInvalidItem)
	}
	if strings.TrimSpace(c.Type) == "" {
		return fmt.Errorf("%w: missing type", ErrInvalidItem)
	}
	if c.Confidence < 0 || c.Confidence > 1 {
		return fmt.Errorf("%w: confidence must be between 0 and 1", ErrInvalidItem)
	}
	return nil
}

// DisplayName returns the name shown for an item: the custom name, the first
// tag, or a placeholder.
func (c *ClothingItem) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	if len(c.Tags) > 0 {
		return c.Tags[0]
	}
	return "Unnamed Item"
}
