package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/campuswell/cw-ui-api/internal/adapters/assistant"
	"github.com/campuswell/cw-ui-api/internal/domain/model"
	apperrors "github.com/campuswell/cw-ui-api/internal/errors"
	"github.com/campuswell/cw-ui-api/internal/ports"
)

// fallbackReply is returned when the responder fails; a chat turn degrades
// to an apologetic assistant message instead of an error.
const fallbackReply = "I'm sorry, I'm having trouble responding right now. Please try again in a moment."

// ChatServiceOptions groups dependencies for ChatService.
type ChatServiceOptions struct {
	Responder ports.Responder
	Logger    *slog.Logger
}

// ChatService orchestrates assistant conversations. Sends within one
// conversation are serialized so replies come back in submission order;
// different conversations proceed independently.
type ChatService struct {
	responder ports.Responder
	logger    *slog.Logger

	mu    sync.Mutex
	convs map[string]*convLock
}

// convLock serializes sends within one conversation. refs counts holders
// and waiters so the entry can be evicted once the conversation is idle;
// sessions come and go, and the map must not grow with every login.
type convLock struct {
	mu   sync.Mutex
	refs int
}

// NewChatService constructs a new ChatService.
func NewChatService(opts ChatServiceOptions) *ChatService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &ChatService{
		responder: opts.Responder,
		logger:    logger,
		convs:     make(map[string]*convLock),
	}
}

// Send submits a user message and returns the assistant reply.
// Responder failures other than cancellation degrade to the fallback reply.
func (s *ChatService) Send(ctx context.Context, conversationID, message string) (model.ChatMessage, error) {
	if message == "" {
		return model.ChatMessage{}, apperrors.ValidationField("message", "message is required")
	}

	lock := s.acquireConversation(conversationID)
	defer s.releaseConversation(conversationID, lock)

	reply, err := s.responder.Respond(ctx, message)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return model.ChatMessage{}, ctxErr
		}
		s.logger.WarnContext(ctx, "responder failed, degrading to fallback reply",
			"conversation_id", conversationID, "error", err)
		return model.ChatMessage{
			ID:        time.Now().UnixMilli(),
			Message:   fallbackReply,
			Timestamp: time.Now(),
			Sender:    model.SenderAI,
		}, nil
	}

	return reply, nil
}

// History returns the stored conversation history. Conversations are not
// persisted, so every session starts empty.
func (s *ChatService) History(_ context.Context, _ string) []model.ChatMessage {
	return []model.ChatMessage{}
}

// Starters returns the suggested conversation openers.
func (s *ChatService) Starters() []string {
	return assistant.SuggestedStarters()
}

// acquireConversation takes the send lock for a conversation, registering
// the caller so the entry survives until the last holder releases it.
func (s *ChatService) acquireConversation(conversationID string) *convLock {
	s.mu.Lock()
	lock, ok := s.convs[conversationID]
	if !ok {
		lock = &convLock{}
		s.convs[conversationID] = lock
	}
	lock.refs++
	s.mu.Unlock()

	lock.mu.Lock()
	return lock
}

// releaseConversation unlocks the send lock and drops the map entry when no
// other send holds or awaits it.
func (s *ChatService) releaseConversation(conversationID string, lock *convLock) {
	lock.mu.Unlock()

	s.mu.Lock()
	lock.refs--
	if lock.refs == 0 {
		delete(s.convs, conversationID)
	}
	s.mu.Unlock()
}
