package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/ainsleyw/drobe/internal/model"
)

// LoadEvents returns every calendar assignment, empty when nothing has been
// stored yet.
func (s *SQLiteStore) LoadEvents(ctx context.Context) ([]model.CalendarEvent, error) {
	events := []model.CalendarEvent{}
	if err := s.loadCollection(ctx, KeyCalendarEvents, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// UpsertCalendarEvent assigns an outfit to a date key. A date that already
// has an event gets its event replaced in place, never duplicated.
func (s *SQLiteStore) UpsertCalendarEvent(ctx context.Context, date, outfitID string) (*model.CalendarEvent, error) {
	if err := validateString(outfitID, "outfitID"); err != nil {
		return nil, err
	}
	if !model.ValidDateKey(date) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	events, err := s.LoadEvents(ctx)
	if err != nil {
		return nil, err
	}

	event := model.CalendarEvent{
		ID:        model.NewEventID(),
		Date:      date,
		OutfitID:  outfitID,
		CreatedAt: time.Now().UTC(),
	}

	replaced := false
	for i := range events {
		if events[i].Date == date {
			events[i] = event
			replaced = true
			break
		}
	}
	if !replaced {
		events = append(events, event)
	}

	if err := s.saveCollection(ctx, KeyCalendarEvents, events); err != nil {
		return nil, err
	}
	return &event, nil
}

// RemoveCalendarEvent clears the assignment for a date key, a no-op when
// nothing is assigned.
func (s *SQLiteStore) RemoveCalendarEvent(ctx context.Context, date string) error {
	if !model.ValidDateKey(date) {
		return fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	events, err := s.LoadEvents(ctx)
	if err != nil {
		return err
	}

	kept := events[:0]
	for _, event := range events {
		if event.Date != date {
			kept = append(kept, event)
		}
	}

	return s.saveCollection(ctx, KeyCalendarEvents, kept)
}
