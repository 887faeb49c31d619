package httpx

import (
	"net/http"

	"github.com/campuswell/cw-ui-api/internal/service"
)

// SurveyHandlers provides HTTP handlers for the wellness survey.
type SurveyHandlers struct {
	Svc *service.SurveyService
}

// Questions returns the survey questions.
// GET /api/survey/questions.
func (h *SurveyHandlers) Questions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.Svc.Questions(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"questions": questions})
}

type surveySubmission struct {
	Responses map[string]any `json:"responses"`
}

// Submit records a survey submission and returns a receipt.
// POST /api/survey/responses.
func (h *SurveyHandlers) Submit(w http.ResponseWriter, r *http.Request) {
	var req surveySubmission
	if !DecodeJSON(w, r, &req) {
		return
	}

	receipt, err := h.Svc.Submit(r.Context(), req.Responses)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, receipt)
}
