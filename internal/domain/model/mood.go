package model

import "time"

// Mood scale bounds. Mood, energy, and stress are rated 1-5.
const (
	MoodScaleMin = 1
	MoodScaleMax = 5
)

// MoodEntry is a single daily mood check-in.
// Date is a calendar day in YYYY-MM-DD form; Sleep is hours slept.
type MoodEntry struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"user_id,omitempty"`
	Date   string `json:"date"`
	Mood   int    `json:"mood"`
	Notes  string `json:"notes"`
	Energy int    `json:"energy"`
	Sleep  int    `json:"sleep"`
	Stress int    `json:"stress"`

	CreatedAt time.Time `json:"createdAt,omitzero"`
}

// SaveMoodEntryRequest carries a new mood check-in from the client.
type SaveMoodEntryRequest struct {
	Date   string `json:"date"`
	Mood   int    `json:"mood"`
	Notes  string `json:"notes"`
	Energy int    `json:"energy"`
	Sleep  int    `json:"sleep"`
	Stress int    `json:"stress"`
}

// Validate checks scale bounds on a mood entry submission.
func (r SaveMoodEntryRequest) Validate() error {
	if r.Mood < MoodScaleMin || r.Mood > MoodScaleMax {
		return validationError("mood", "mood must be between 1 and 5")
	}
	if r.Energy < MoodScaleMin || r.Energy > MoodScaleMax {
		return validationError("energy", "energy must be between 1 and 5")
	}
	if r.Stress < MoodScaleMin || r.Stress > MoodScaleMax {
		return validationError("stress", "stress must be between 1 and 5")
	}
	if r.Sleep < 0 || r.Sleep > 24 {
		return validationError("sleep", "sleep must be between 0 and 24 hours")
	}
	return nil
}
