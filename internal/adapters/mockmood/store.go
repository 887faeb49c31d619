package mockmood

// Package mockmood generates demo mood history on the fly. Nothing is
// persisted; each read fabricates a fresh window of entries ending today.

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/campuswell/cw-ui-api/internal/data"
	"github.com/campuswell/cw-ui-api/internal/domain/model"
	"github.com/campuswell/cw-ui-api/internal/ports"
	"github.com/campuswell/cw-ui-api/internal/simnet"
)

// Simulated backend round-trip times.
const (
	entriesLatency = 800 * time.Millisecond
	saveLatency    = 1000 * time.Millisecond
)

const latestEntryNote = "Feeling optimistic today!"

// Store implements ports.MoodStore with generated data.
type Store struct {
	delay simnet.Delay
	clock data.TimeProvider

	// randMu guards rand; one Store serves all requests and rand.Rand is
	// not safe for concurrent use.
	randMu sync.Mutex
	rand   *rand.Rand
}

var _ ports.MoodStore = (*Store)(nil)

// Options configures a Store. Zero values give production behavior.
type Options struct {
	Delay simnet.Delay
	// Clock is the date source; nil uses real time.
	Clock data.TimeProvider
	// Rand is the rating source; nil uses a time-seeded source.
	Rand *rand.Rand
}

// New constructs a mock mood store.
func New(opts Options) *Store {
	clock := opts.Clock
	if clock == nil {
		clock = &data.RealTimeProvider{}
	}
	r := opts.Rand
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Store{delay: opts.Delay, clock: clock, rand: r}
}

// Entries fabricates one entry per day for the trailing window, oldest
// first and ending today. Mood, energy, and stress are random 1-5 ratings;
// sleep is 4-13 hours. Only the most recent entry carries a note.
func (s *Store) Entries(ctx context.Context, _ int64, days int) ([]model.MoodEntry, error) {
	if err := s.delay.Wait(ctx, entriesLatency); err != nil {
		return nil, err
	}
	if days <= 0 {
		days = 7
	}

	now := s.clock.Now()
	entries := make([]model.MoodEntry, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		notes := ""
		if i == 0 {
			notes = latestEntryNote
		}
		entries = append(entries, model.MoodEntry{
			ID:     now.UnixMilli() + int64(i),
			Date:   day.Format(time.DateOnly),
			Mood:   s.rating(),
			Notes:  notes,
			Energy: s.rating(),
			Sleep:  s.sleepHours(),
			Stress: s.rating(),
		})
	}

	return entries, nil
}

// SaveEntry echoes the submitted entry with a generated id and timestamp.
// Valid input never fails.
func (s *Store) SaveEntry(ctx context.Context, _ int64, req model.SaveMoodEntryRequest) (model.MoodEntry, error) {
	if err := s.delay.Wait(ctx, saveLatency); err != nil {
		return model.MoodEntry{}, err
	}

	now := s.clock.Now()
	return model.MoodEntry{
		ID:        now.UnixMilli(),
		Date:      req.Date,
		Mood:      req.Mood,
		Notes:     req.Notes,
		Energy:    req.Energy,
		Sleep:     req.Sleep,
		Stress:    req.Stress,
		CreatedAt: now,
	}, nil
}

func (s *Store) rating() int {
	s.randMu.Lock()
	defer s.randMu.Unlock()
	return s.rand.Intn(model.MoodScaleMax) + model.MoodScaleMin
}

func (s *Store) sleepHours() int {
	s.randMu.Lock()
	defer s.randMu.Unlock()
	return s.rand.Intn(10) + 4
}
