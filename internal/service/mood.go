package service

import (
	"context"

	"github.com/campuswell/cw-ui-api/internal/domain/model"
	"github.com/campuswell/cw-ui-api/internal/ports"
)

// maxMoodWindowDays caps how far back an entries query may reach.
const maxMoodWindowDays = 90

// MoodServiceOptions groups dependencies for MoodService.
type MoodServiceOptions struct {
	Store ports.MoodStore
}

// MoodService orchestrates mood tracking reads and writes.
type MoodService struct {
	store ports.MoodStore
}

// NewMoodService constructs a new MoodService.
func NewMoodService(opts MoodServiceOptions) *MoodService {
	return &MoodService{store: opts.Store}
}

// Entries returns the user's mood entries for the trailing window of days.
// Out-of-range windows are clamped rather than rejected.
func (s *MoodService) Entries(ctx context.Context, userID int64, days int) ([]model.MoodEntry, error) {
	if days <= 0 {
		days = 7
	}
	if days > maxMoodWindowDays {
		days = maxMoodWindowDays
	}

	return s.store.Entries(ctx, userID, days)
}

// SaveEntry validates and persists a new mood entry.
func (s *MoodService) SaveEntry(ctx context.Context, userID int64, req model.SaveMoodEntryRequest) (model.MoodEntry, error) {
	if err := req.Validate(); err != nil {
		return model.MoodEntry{}, err
	}

	return s.store.SaveEntry(ctx, userID, req)
}
