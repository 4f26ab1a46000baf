package closet

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ainsleyw/drobe/internal/model"
)

func TestTypeForClass(t *testing.T) {
	tests := []struct {
		classID int
		want    model.ClothingType
	}{
		{1, model.TypeDress},
		{4, model.TypeDress},
		{10, model.TypeDress},
		{13, model.TypeDress},
		{2, model.TypeJacket},
		{5, model.TypeJacket},
		{12, model.TypeJacket},
		{3, model.TypeTop},
		{6, model.TypeTop},
		{7, model.TypeBottom},
		{11, model.TypeBottom},
		{8, model.TypeSkirt},
		{9, model.TypeSkirt},
		{0, model.TypeOther},
		{99, model.TypeOther},
		{-1, model.TypeOther},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TypeForClass(tt.classID), "class %d", tt.classID)
	}
}

func TestLabelForClass(t *testing.T) {
	assert.Equal(t, "Short Sleeve Top", LabelForClass(6))
	assert.Equal(t, "Vest Dress", LabelForClass(13))
	assert.Equal(t, "Background", LabelForClass(0))
	assert.Equal(t, "Class 42", LabelForClass(42))
}
