package httpx

import (
	"net/http"
)

// RouteHandlers exposes route authorization decisions to the SPA.
type RouteHandlers struct{}

// Decision evaluates whether the current session may open an app route.
// Runs behind OptionalAuth so unauthenticated clients get a login redirect
// decision rather than a 401.
// GET /api/routes/decision?path=/users.
func (h *RouteHandlers) Decision(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	path := r.URL.Query().Get("path")

	WriteJSON(w, http.StatusOK, EvaluateRoute(session, path))
}
