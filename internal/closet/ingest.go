package closet

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ainsleyw/drobe/internal/common"
	"github.com/ainsleyw/drobe/internal/detect"
	"github.com/ainsleyw/drobe/internal/model"
)

// minMaskedImageLen guards against truncated crops; anything at or below it
// falls back to the original photo.
const minMaskedImageLen = 100

// Detection is one detected garment, pending user review before it is saved
// to the closet. Label and Type may be edited; Drop excludes it.
type Detection struct {
	Index       int
	ImageURI    string
	Type        model.ClothingType
	Label       string
	Confidence  float64
	Drop        bool
	MaskedImage string
	Raw         json.RawMessage
}

// FromResult converts a detection response into reviewable detections.
// Masks without a usable cropped image fall back to the original photo URI.
func FromResult(result *detect.Result, originalURI string) []Detection {
	detections := make([]Detection, 0, len(result.Masks))
	for i, mask := range result.Masks {
		imageURI := originalURI
		if len(mask.MaskedImage) > minMaskedImageLen {
			imageURI = "data:image/png;base64," + mask.MaskedImage
		}

		label := mask.ClassName
		if label == "" {
			label = LabelForClass(mask.ClassID)
		}

		confidence := mask.Confidence
		if confidence == 0 {
			confidence = model.DefaultConfidence
		}

		raw, err := json.Marshal(mask)
		if err != nil {
			raw = nil
		}

		detections = append(detections, Detection{
			Index:       i,
			ImageURI:    imageURI,
			Type:        TypeForClass(mask.ClassID),
			Label:       label,
			Confidence:  confidence,
			MaskedImage: mask.MaskedImage,
			Raw:         raw,
		})
	}
	return detections
}

// Relabel applies a user edit to a detection. Empty labels are rejected, as
// in the original review flow.
func (d *Detection) Relabel(label string, clothingType model.ClothingType) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return common.NewValidationError("label", "please enter a valid label")
	}
	d.Label = label
	if clothingType != "" {
		d.Type = clothingType
	}
	return nil
}

// BuildItems converts the accepted (non-dropped) detections into clothing
// items ready for AppendItems. originalURI is recorded on every item so the
// source photo can always be recovered.
func BuildItems(detections []Detection, originalURI string) ([]model.ClothingItem, error) {
	items := make([]model.ClothingItem, 0, len(detections))
	for _, d := range detections {
		if d.Drop {
			continue
		}

		item := model.ClothingItem{
			ID:               fmt.Sprintf("item_%d_%d", time.Now().UnixMilli(), d.Index),
			ImageURI:         d.ImageURI,
			Type:             strings.ToLower(string(d.Type)),
			Tags:             []string{d.Label},
			Confidence:       d.Confidence,
			OriginalImageURI: originalURI,
			CreatedAt:        time.Now().UTC(),
			OriginalMask:     d.Raw,
		}
		if err := item.Validate(); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
