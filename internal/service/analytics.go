package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	jmespath "github.com/jmespath-community/go-jmespath"
	"golang.org/x/sync/errgroup"

	"github.com/campuswell/cw-ui-api/internal/domain/model"
	apperrors "github.com/campuswell/cw-ui-api/internal/errors"
	"github.com/campuswell/cw-ui-api/internal/simnet"
)

// Simulated backend round-trip times.
const (
	analyticsLatency = 1200 * time.Millisecond
	counselorLatency = 800 * time.Millisecond
)

// AnalyticsServiceOptions groups dependencies for AnalyticsService.
type AnalyticsServiceOptions struct {
	Delay simnet.Delay
}

// AnalyticsService serves the dashboard aggregates. The demo deployment has
// no reporting pipeline behind it, so payloads are curated snapshots; the
// shapes are the contract a future pipeline must fill.
type AnalyticsService struct {
	delay simnet.Delay
}

// NewAnalyticsService constructs a new AnalyticsService.
func NewAnalyticsService(opts AnalyticsServiceOptions) *AnalyticsService {
	return &AnalyticsService{delay: opts.Delay}
}

// MoodAnalytics returns the aggregate mood view for counselors and admins.
// Timeframe is validated but does not change the snapshot.
func (s *AnalyticsService) MoodAnalytics(ctx context.Context, timeframe string) (model.MoodAnalytics, error) {
	switch timeframe {
	case "", "week", "month", "quarter":
	default:
		return model.MoodAnalytics{}, apperrors.ValidationField("timeframe", "timeframe must be week, month, or quarter")
	}

	if err := s.delay.Wait(ctx, analyticsLatency); err != nil {
		return model.MoodAnalytics{}, err
	}

	return moodAnalyticsSnapshot(), nil
}

// Platform returns the admin dashboard aggregates.
func (s *AnalyticsService) Platform(ctx context.Context) (model.PlatformAnalytics, error) {
	if err := s.delay.Wait(ctx, analyticsLatency); err != nil {
		return model.PlatformAnalytics{}, err
	}

	return platformSnapshot(), nil
}

// PlatformQuery evaluates a JMESPath expression against the platform
// analytics payload, letting dashboard widgets fetch just the slice they
// render.
func (s *AnalyticsService) PlatformQuery(ctx context.Context, query string) (any, error) {
	full, err := s.Platform(ctx)
	if err != nil {
		return nil, err
	}

	// Round-trip through JSON so the expression sees the wire shape
	raw, err := json.Marshal(full)
	if err != nil {
		return nil, fmt.Errorf("marshal analytics: %w", err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal analytics: %w", err)
	}

	result, err := jmespath.Search(query, doc)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid query expression")
	}
	return result, nil
}

// Counselor assembles the counselor dashboard. The three sections are
// fetched concurrently; the slowest one bounds the response time.
func (s *AnalyticsService) Counselor(ctx context.Context) (model.CounselorSnapshot, error) {
	var snapshot model.CounselorSnapshot

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.delay.Wait(gctx, counselorLatency); err != nil {
			return err
		}
		snapshot.AssignedStudents = assignedStudentsSnapshot()
		return nil
	})
	g.Go(func() error {
		if err := s.delay.Wait(gctx, counselorLatency); err != nil {
			return err
		}
		snapshot.RecentAlerts = recentAlertsSnapshot()
		return nil
	})
	g.Go(func() error {
		if err := s.delay.Wait(gctx, counselorLatency); err != nil {
			return err
		}
		snapshot.WeeklyStats = counselorWeeklyStatsSnapshot()
		return nil
	})

	if err := g.Wait(); err != nil {
		return model.CounselorSnapshot{}, err
	}
	return snapshot, nil
}
