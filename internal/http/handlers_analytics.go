package httpx

import (
	"net/http"

	"github.com/campuswell/cw-ui-api/internal/service"
)

// AnalyticsHandlers provides HTTP handlers for the dashboard aggregates.
type AnalyticsHandlers struct {
	Svc *service.AnalyticsService
}

// MoodAnalytics returns the aggregate mood view.
// GET /api/mood/analytics?timeframe=week.
func (h *AnalyticsHandlers) MoodAnalytics(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.Svc.MoodAnalytics(r.Context(), r.URL.Query().Get("timeframe"))
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, analytics)
}

// Platform returns the admin dashboard aggregates. An optional JMESPath
// query extracts a sub-document so widgets can fetch just what they render.
// GET /api/analytics/platform?query=<jmespath>.
func (h *AnalyticsHandlers) Platform(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query != "" {
		result, err := h.Svc.PlatformQuery(r.Context(), query)
		if err != nil {
			WriteAppError(w, err)
			return
		}
		WriteJSON(w, http.StatusOK, map[string]any{"result": result})
		return
	}

	analytics, err := h.Svc.Platform(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, analytics)
}

// Counselor returns the counselor dashboard snapshot.
// GET /api/analytics/counselor.
func (h *AnalyticsHandlers) Counselor(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.Svc.Counselor(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, snapshot)
}
