package service

import (
	"context"
	"time"

	"github.com/campuswell/cw-ui-api/internal/domain/model"
	apperrors "github.com/campuswell/cw-ui-api/internal/errors"
	"github.com/campuswell/cw-ui-api/internal/simnet"
)

// Simulated backend round-trip times.
const (
	surveyQuestionsLatency = 500 * time.Millisecond
	surveySubmitLatency    = 1000 * time.Millisecond
)

const surveyThanks = "Thank you for your feedback! Your responses help us improve our services."

// SurveyServiceOptions groups dependencies for SurveyService.
type SurveyServiceOptions struct {
	Delay simnet.Delay
}

// SurveyService serves the wellness survey. Questions are a fixed set;
// submissions are acknowledged but not stored.
type SurveyService struct {
	delay simnet.Delay
}

// NewSurveyService constructs a new SurveyService.
func NewSurveyService(opts SurveyServiceOptions) *SurveyService {
	return &SurveyService{delay: opts.Delay}
}

// Questions returns the wellness survey questions.
func (s *SurveyService) Questions(ctx context.Context) ([]model.SurveyQuestion, error) {
	if err := s.delay.Wait(ctx, surveyQuestionsLatency); err != nil {
		return nil, err
	}
	return surveyQuestionsSnapshot(), nil
}

// Submit acknowledges a survey submission.
func (s *SurveyService) Submit(ctx context.Context, responses map[string]any) (model.SurveyReceipt, error) {
	if len(responses) == 0 {
		return model.SurveyReceipt{}, apperrors.Validation("survey responses are required")
	}

	if err := s.delay.Wait(ctx, surveySubmitLatency); err != nil {
		return model.SurveyReceipt{}, err
	}

	return model.SurveyReceipt{
		ID:        time.Now().UnixMilli(),
		Submitted: true,
		Message:   surveyThanks,
	}, nil
}
