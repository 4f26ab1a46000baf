// Package closet turns detection service results into closet records.
//
// The detection model's class vocabulary is mapped here, and only here, to
// the canonical clothing types; display labels are derived from the same
// table rather than duplicated per screen.
package closet

import (
	"fmt"

	"github.com/ainsleyw/drobe/internal/model"
)

// classNames is the detection model's classification vocabulary.
var classNames = map[int]string{
	0:  "Background",
	1:  "Long Sleeve Dress",
	2:  "Long Sleeve Outwear",
	3:  "Long Sleeve Top",
	4:  "Short Sleeve Dress",
	5:  "Short Sleeve Outwear",
	6:  "Short Sleeve Top",
	7:  "Shorts",
	8:  "Skirt",
	9:  "Sling",
	10: "Sling Dress",
	11: "Trousers",
	12: "Vest",
	13: "Vest Dress",
}

// classTypes maps detection class IDs to canonical clothing types.
var classTypes = map[int]model.ClothingType{
	1: model.TypeDress, 4: model.TypeDress, 10: model.TypeDress, 13: model.TypeDress,
	2: model.TypeJacket, 5: model.TypeJacket, 12: model.TypeJacket,
	3: model.TypeTop, 6: model.TypeTop,
	7: model.TypeBottom, 11: model.TypeBottom,
	8: model.TypeSkirt, 9: model.TypeSkirt,
}

// TypeForClass returns the canonical clothing type for a detection class ID.
// Unmapped IDs fall back to "other".
func TypeForClass(classID int) model.ClothingType {
	if t, ok := classTypes[classID]; ok {
		return t
	}
	return model.TypeOther
}

// LabelForClass returns the human-readable label for a detection class ID.
func LabelForClass(classID int) string {
	if name, ok := classNames[classID]; ok {
		return name
	}
	return fmt.Sprintf("Class %d", classID)
}
