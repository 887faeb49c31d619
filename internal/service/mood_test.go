package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/campuswell/cw-ui-api/internal/domain/model"
	apperrors "github.com/campuswell/cw-ui-api/internal/errors"
	"github.com/campuswell/cw-ui-api/internal/mocks"
)

func TestMoodService_Entries_DefaultsWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockMoodStore(ctrl)
	want := []model.MoodEntry{{ID: 1, Mood: 4, Date: "2026-08-30"}}
	store.EXPECT().Entries(gomock.Any(), int64(7), 7).Return(want, nil)

	svc := NewMoodService(MoodServiceOptions{Store: store})

	got, err := svc.Entries(context.Background(), 7, 0)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMoodService_Entries_ClampsWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockMoodStore(ctrl)
	store.EXPECT().Entries(gomock.Any(), int64(7), maxMoodWindowDays).Return(nil, nil)

	svc := NewMoodService(MoodServiceOptions{Store: store})

	_, err := svc.Entries(context.Background(), 7, 365)

	require.NoError(t, err)
}

func TestMoodService_Entries_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockMoodStore(ctrl)
	store.EXPECT().Entries(gomock.Any(), int64(7), 7).Return(nil, errors.New("db down"))

	svc := NewMoodService(MoodServiceOptions{Store: store})

	_, err := svc.Entries(context.Background(), 7, 7)

	require.Error(t, err)
}

func TestMoodService_SaveEntry_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := model.SaveMoodEntryRequest{
		Mood:   4,
		Energy: 3,
		Sleep:  7,
		Stress: 2,
		Notes:  "good day",
	}
	want := model.MoodEntry{ID: 99, Mood: 4, Energy: 3, Sleep: 7, Stress: 2, Notes: "good day"}

	store := mocks.NewMockMoodStore(ctrl)
	store.EXPECT().SaveEntry(gomock.Any(), int64(7), req).Return(want, nil)

	svc := NewMoodService(MoodServiceOptions{Store: store})

	got, err := svc.SaveEntry(context.Background(), 7, req)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMoodService_SaveEntry_InvalidSkipsStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No EXPECT calls: the store must not be touched for invalid input.
	store := mocks.NewMockMoodStore(ctrl)
	svc := NewMoodService(MoodServiceOptions{Store: store})

	_, err := svc.SaveEntry(context.Background(), 7, model.SaveMoodEntryRequest{
		Mood:   9,
		Energy: 3,
		Sleep:  7,
		Stress: 2,
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}
