package closet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ainsleyw/drobe/internal/common"
	"github.com/ainsleyw/drobe/internal/detect"
	"github.com/ainsleyw/drobe/internal/model"
)

func TestFromResult(t *testing.T) {
	original := "file:///photos/outfit.jpg"

	t.Run("mask without crop falls back to original photo", func(t *testing.T) {
		result := &detect.Result{
			Success: true,
			Masks: []detect.Mask{
				{ClassID: 6, Confidence: 0.91},
			},
		}

		detections := FromResult(result, original)
		require.Len(t, detections, 1)

		d := detections[0]
		assert.Equal(t, model.TypeTop, d.Type)
		assert.Equal(t, "Short Sleeve Top", d.Label)
		assert.InDelta(t, 0.91, d.Confidence, 1e-9)
		assert.Equal(t, original, d.ImageURI)
		assert.False(t, d.Drop)
	})

	t.Run("usable crop becomes a data URI", func(t *testing.T) {
		crop := strings.Repeat("A", 200)
		result := &detect.Result{
			Success: true,
			Masks: []detect.Mask{
				{ClassID: 8, ClassName: "Skirt", Confidence: 0.75, MaskedImage: crop},
			},
		}

		detections := FromResult(result, original)
		require.Len(t, detections, 1)
		assert.Equal(t, "data:image/png;base64,"+crop, detections[0].ImageURI)
	})

	t.Run("short crop is discarded", func(t *testing.T) {
		result := &detect.Result{
			Success: true,
			Masks: []detect.Mask{
				{ClassID: 8, MaskedImage: strings.Repeat("A", 99)},
			},
		}

		detections := FromResult(result, original)
		require.Len(t, detections, 1)
		assert.Equal(t, original, detections[0].ImageURI)
	})

	t.Run("crop at the threshold is still discarded", func(t *testing.T) {
		result := &detect.Result{
			Success: true,
			Masks: []detect.Mask{
				{ClassID: 8, MaskedImage: strings.Repeat("A", 100)},
			},
		}

		detections := FromResult(result, original)
		require.Len(t, detections, 1)
		assert.Equal(t, original, detections[0].ImageURI)
	})

	t.Run("missing confidence defaults", func(t *testing.T) {
		result := &detect.Result{
			Success: true,
			Masks:   []detect.Mask{{ClassID: 11}},
		}

		detections := FromResult(result, original)
		require.Len(t, detections, 1)
		assert.InDelta(t, model.DefaultConfidence, detections[0].Confidence, 1e-9)
	})

	t.Run("service label wins over the class table", func(t *testing.T) {
		result := &detect.Result{
			Success: true,
			Masks:   []detect.Mask{{ClassID: 6, ClassName: "Cropped Tee"}},
		}

		detections := FromResult(result, original)
		require.Len(t, detections, 1)
		assert.Equal(t, "Cropped Tee", detections[0].Label)
	})
}

func TestRelabel(t *testing.T) {
	d := Detection{Label: "Short Sleeve Top", Type: model.TypeTop}

	t.Run("edits label and type", func(t *testing.T) {
		require.NoError(t, d.Relabel("Band Tee", model.TypeTop))
		assert.Equal(t, "Band Tee", d.Label)
	})

	t.Run("keeps type when not re-specified", func(t *testing.T) {
		require.NoError(t, d.Relabel("Vintage Tee", ""))
		assert.Equal(t, model.TypeTop, d.Type)
	})

	t.Run("rejects blank label", func(t *testing.T) {
		err := d.Relabel("   ", model.TypeTop)
		require.Error(t, err)
		assert.True(t, common.IsValidationError(err))
		assert.Equal(t, "Vintage Tee", d.Label, "failed edit must not change the detection")
	})
}

func TestBuildItems(t *testing.T) {
	original := "file:///photos/outfit.jpg"
	result := &detect.Result{
		Success: true,
		Masks: []detect.Mask{
			{ClassID: 6, Confidence: 0.91},
			{ClassID: 11, Confidence: 0.84},
			{ClassID: 8, Confidence: 0.66},
		},
	}
	detections := FromResult(result, original)
	detections[2].Drop = true

	items, err := BuildItems(detections, original)
	require.NoError(t, err)
	require.Len(t, items, 2, "dropped detections must not become items")

	top := items[0]
	assert.Equal(t, "top", top.Type)
	assert.Equal(t, []string{"Short Sleeve Top"}, top.Tags)
	assert.InDelta(t, 0.91, top.Confidence, 1e-9)
	assert.Equal(t, original, top.ImageURI)
	assert.Equal(t, original, top.OriginalImageURI)
	assert.NotEmpty(t, top.ID)
	assert.False(t, top.CreatedAt.IsZero())

	assert.Equal(t, "bottom", items[1].Type)
	assert.NotEqual(t, items[0].ID, items[1].ID)
	for _, item := range items {
		require.NoError(t, item.Validate())
	}
}
