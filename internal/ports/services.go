package ports

import (
	"context"

	"github.com/campuswell/cw-ui-api/internal/domain/model"
)

// Responder produces an assistant reply for a user message.
type Responder interface {
	Respond(ctx context.Context, message string) (model.ChatMessage, error)
}

// MoodStore retrieves and persists mood entries for a user.
type MoodStore interface {
	// Entries returns the user's mood entries for the trailing window of days,
	// ordered oldest first.
	Entries(ctx context.Context, userID int64, days int) ([]model.MoodEntry, error)

	// SaveEntry persists a new mood entry and returns it with id and creation time set.
	SaveEntry(ctx context.Context, userID int64, req model.SaveMoodEntryRequest) (model.MoodEntry, error)
}
