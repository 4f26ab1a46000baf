package model

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// DateKeyLayout is the calendar date key format, one event per key.
const DateKeyLayout = "2006-01-02"

var dateKeyPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// CalendarEvent binds exactly one outfit to a calendar date. The outfit
// reference is soft; dangling references are filtered when rendering.
type CalendarEvent struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	OutfitID  string    `json:"outfitId"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewEventID generates a unique calendar event identifier.
func NewEventID() string {
	return fmt.Sprintf("event_%d_%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

// DateKey truncates a timestamp to its calendar date key.
func DateKey(t time.Time) string {
	return t.UTC().Format(DateKeyLayout)
}

// ValidDateKey reports whether s is a well-formed YYYY-MM-DD date key.
func ValidDateKey(s string) bool {
	if !dateKeyPattern.MatchString(s) {
		return false
	}
	_, err := time.Parse(DateKeyLayout, s)
	return err == nil
}

// ResolveOutfit looks up the event's outfit, returning nil when the
// reference dangles.
func (e *CalendarEvent) ResolveOutfit(outfits []Outfit) *Outfit {
	for i := range outfits {
		if outfits[i].ID == e.OutfitID {
			return &outfits[i]
		}
	}
	return nil
}
