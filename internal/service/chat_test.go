package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/campuswell/cw-ui-api/internal/domain/model"
	apperrors "github.com/campuswell/cw-ui-api/internal/errors"
	"github.com/campuswell/cw-ui-api/internal/mocks"
)

func TestChatService_Send_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	responder := mocks.NewMockResponder(ctrl)
	want := model.ChatMessage{
		ID:        42,
		Message:   "That sounds really difficult.",
		Timestamp: time.Now(),
		Sender:    model.SenderAI,
	}
	responder.EXPECT().Respond(gomock.Any(), "I feel anxious").Return(want, nil)

	svc := NewChatService(ChatServiceOptions{Responder: responder})

	got, err := svc.Send(context.Background(), "conv-1", "I feel anxious")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestChatService_Send_EmptyMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewChatService(ChatServiceOptions{Responder: mocks.NewMockResponder(ctrl)})

	_, err := svc.Send(context.Background(), "conv-1", "")

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "message", apperrors.GetField(err))
}

func TestChatService_Send_ResponderFailureDegrades(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	responder := mocks.NewMockResponder(ctrl)
	responder.EXPECT().Respond(gomock.Any(), gomock.Any()).
		Return(model.ChatMessage{}, errors.New("model backend down"))

	svc := NewChatService(ChatServiceOptions{Responder: responder})

	got, err := svc.Send(context.Background(), "conv-1", "hello")

	require.NoError(t, err)
	assert.Equal(t, fallbackReply, got.Message)
	assert.Equal(t, model.SenderAI, got.Sender)
	assert.NotZero(t, got.ID)
}

func TestChatService_Send_CanceledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	responder := mocks.NewMockResponder(ctrl)
	responder.EXPECT().Respond(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string) (model.ChatMessage, error) {
			return model.ChatMessage{}, ctx.Err()
		})

	svc := NewChatService(ChatServiceOptions{Responder: responder})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Send(ctx, "conv-1", "hello")

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestChatService_Send_SerializesWithinConversation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var mu sync.Mutex
	inFlight := 0
	maxInFlight := 0

	responder := mocks.NewMockResponder(ctrl)
	responder.EXPECT().Respond(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg string) (model.ChatMessage, error) {
			mu.Lock()
			inFlight++
			if inFlight > maxInFlight {
				maxInFlight = inFlight
			}
			mu.Unlock()

			time.Sleep(5 * time.Millisecond)

			mu.Lock()
			inFlight--
			mu.Unlock()
			return model.ChatMessage{Message: msg, Sender: model.SenderAI}, nil
		}).Times(4)

	svc := NewChatService(ChatServiceOptions{Responder: responder})

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Send(context.Background(), "conv-shared", "hi")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxInFlight, "sends within one conversation must not overlap")
}

func TestChatService_Send_EvictsIdleConversationLocks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	responder := mocks.NewMockResponder(ctrl)
	responder.EXPECT().Respond(gomock.Any(), gomock.Any()).
		Return(model.ChatMessage{Message: "ok", Sender: model.SenderAI}, nil).
		Times(3)

	svc := NewChatService(ChatServiceOptions{Responder: responder})

	// Sends for distinct conversations must not grow the lock table: every
	// session ever seen would otherwise leave a mutex behind.
	for _, conv := range []string{"conv-a", "conv-b", "conv-c"} {
		_, err := svc.Send(context.Background(), conv, "hi")
		require.NoError(t, err)
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()
	assert.Empty(t, svc.convs, "idle conversation locks must be evicted")
}

func TestChatService_History_AlwaysEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewChatService(ChatServiceOptions{Responder: mocks.NewMockResponder(ctrl)})

	history := svc.History(context.Background(), "conv-1")

	require.NotNil(t, history)
	assert.Empty(t, history)
}

func TestChatService_Starters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewChatService(ChatServiceOptions{Responder: mocks.NewMockResponder(ctrl)})

	starters := svc.Starters()

	assert.Len(t, starters, 6)
	assert.Contains(t, starters, "I'm feeling anxious about upcoming exams")
}
