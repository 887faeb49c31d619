package httpx

import (
	"net/http"
	"strconv"

	"github.com/campuswell/cw-ui-api/internal/domain/model"
	"github.com/campuswell/cw-ui-api/internal/service"
)

// MoodHandlers provides HTTP handlers for mood tracking.
type MoodHandlers struct {
	Svc *service.MoodService
}

// Entries returns the user's recent mood entries.
// GET /api/mood/entries?days=7.
func (h *MoodHandlers) Entries(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	days := 0
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			WriteError(w, ErrorParams{
				Code:    http.StatusBadRequest,
				ErrCode: "validation",
				Err:     err,
				Field:   "days",
			})
			return
		}
		days = parsed
	}

	entries, err := h.Svc.Entries(r.Context(), session.UserID, days)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"entries": entries})
}

// SaveEntry records a new mood check-in.
// POST /api/mood/entries.
func (h *MoodHandlers) SaveEntry(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	var req model.SaveMoodEntryRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	entry, err := h.Svc.SaveEntry(r.Context(), session.UserID, req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, entry)
}
