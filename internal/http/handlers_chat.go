package httpx

import (
	"net/http"

	"github.com/campuswell/cw-ui-api/internal/domain/model"
	"github.com/campuswell/cw-ui-api/internal/service"
)

// ChatHandlers provides HTTP handlers for the assistant chat.
type ChatHandlers struct {
	Svc *service.ChatService
}

// SendMessage submits a user message and returns the assistant reply.
// POST /api/chat/messages.
func (h *ChatHandlers) SendMessage(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	var req model.SendMessageRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	// The session is the conversation: one assistant thread per login.
	reply, err := h.Svc.Send(r.Context(), session.ID, req.Message)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, reply)
}

// History returns the stored conversation history.
// GET /api/chat/history.
func (h *ChatHandlers) History(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	WriteJSON(w, http.StatusOK, map[string]any{
		"messages": h.Svc.History(r.Context(), session.ID),
	})
}

// Starters returns the suggested conversation openers.
// GET /api/chat/starters.
func (h *ChatHandlers) Starters(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]any{
		"starters": h.Svc.Starters(),
	})
}
