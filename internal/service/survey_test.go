package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuswell/cw-ui-api/internal/domain/model"
	apperrors "github.com/campuswell/cw-ui-api/internal/errors"
	"github.com/campuswell/cw-ui-api/internal/simnet"
)

func newSurveyServiceForTest() *SurveyService {
	return NewSurveyService(SurveyServiceOptions{Delay: simnet.None})
}

func TestSurveyService_Questions(t *testing.T) {
	svc := newSurveyServiceForTest()

	got, err := svc.Questions(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 4)

	assert.Equal(t, model.SurveyTypeScale, got[0].Type)
	require.NotNil(t, got[0].Scale)
	assert.Equal(t, 1, got[0].Scale.Min)
	assert.Equal(t, 5, got[0].Scale.Max)
	assert.Len(t, got[0].Scale.Labels, 5)

	assert.Equal(t, model.SurveyTypeMultiSelect, got[1].Type)
	assert.Len(t, got[1].Options, 6)

	assert.Equal(t, model.SurveyTypeRadio, got[2].Type)
	assert.Equal(t, []string{"Never", "Rarely", "Sometimes", "Often", "Daily"}, got[2].Options)
}

func TestSurveyService_Submit(t *testing.T) {
	svc := newSurveyServiceForTest()

	got, err := svc.Submit(context.Background(), map[string]any{
		"1": 4,
		"2": []string{"Academic work"},
	})

	require.NoError(t, err)
	assert.True(t, got.Submitted)
	assert.NotZero(t, got.ID)
	assert.Equal(t, surveyThanks, got.Message)
}

func TestSurveyService_Submit_EmptyResponses(t *testing.T) {
	svc := newSurveyServiceForTest()

	_, err := svc.Submit(context.Background(), nil)

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestSurveyService_Submit_CanceledContext(t *testing.T) {
	svc := NewSurveyService(SurveyServiceOptions{Delay: simnet.Delay{}})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Submit(ctx, map[string]any{"1": 3})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
