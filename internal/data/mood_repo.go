package data

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/campuswell/cw-ui-api/internal/data/pgxutil"
	"github.com/campuswell/cw-ui-api/internal/domain/model"
	apperrors "github.com/campuswell/cw-ui-api/internal/errors"
	"github.com/campuswell/cw-ui-api/internal/ports"
)

// MoodRepo implements ports.MoodStore using PostgreSQL. It is the durable
// alternative to the generated demo data, selected via STORAGE_MODE.
type MoodRepo struct {
	DB    *sql.DB
	Clock TimeProvider
}

var _ ports.MoodStore = (*MoodRepo)(nil)

// NewMoodRepo creates a new MoodRepo instance.
func NewMoodRepo(db *sql.DB) *MoodRepo {
	return &MoodRepo{DB: db, Clock: &RealTimeProvider{}}
}

// moodEntryRow mirrors the mood_entries table for pgx row collection.
type moodEntryRow struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	Date      time.Time `db:"entry_date"`
	Mood      int       `db:"mood"`
	Notes     string    `db:"notes"`
	Energy    int       `db:"energy"`
	Sleep     int       `db:"sleep_hours"`
	Stress    int       `db:"stress"`
	CreatedAt time.Time `db:"created_at"`
}

func (r moodEntryRow) toModel() model.MoodEntry {
	return model.MoodEntry{
		ID:        r.ID,
		UserID:    r.UserID,
		Date:      r.Date.Format(time.DateOnly),
		Mood:      r.Mood,
		Notes:     r.Notes,
		Energy:    r.Energy,
		Sleep:     r.Sleep,
		Stress:    r.Stress,
		CreatedAt: r.CreatedAt,
	}
}

const moodColumns = "id, user_id, entry_date, mood, notes, energy, sleep_hours, stress, created_at"

// Entries returns the user's mood entries for the trailing window of days,
// oldest first.
func (r *MoodRepo) Entries(ctx context.Context, userID int64, days int) ([]model.MoodEntry, error) {
	if days <= 0 {
		days = 7
	}
	since := r.Clock.Now().AddDate(0, 0, -(days - 1)).Format(time.DateOnly)

	var rowsOut []moodEntryRow
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		query := `SELECT ` + moodColumns + `
			FROM mood_entries
			WHERE user_id = $1 AND entry_date >= $2
			ORDER BY entry_date ASC, id ASC`

		rows, err := conn.Query(ctx, query, userID, since)
		if err != nil {
			return err
		}
		defer rows.Close()

		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[moodEntryRow])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(fmt.Errorf("list mood entries: %w", err))
	}

	entries := make([]model.MoodEntry, len(rowsOut))
	for i, row := range rowsOut {
		entries[i] = row.toModel()
	}
	return entries, nil
}

// SaveEntry persists a new mood entry and returns it with id and creation
// time set.
func (r *MoodRepo) SaveEntry(ctx context.Context, userID int64, req model.SaveMoodEntryRequest) (model.MoodEntry, error) {
	if err := req.Validate(); err != nil {
		return model.MoodEntry{}, err
	}

	date := req.Date
	if date == "" {
		date = r.Clock.Now().Format(time.DateOnly)
	}

	var row moodEntryRow
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		query := `INSERT INTO mood_entries (user_id, entry_date, mood, notes, energy, sleep_hours, stress)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING ` + moodColumns

		rows, err := conn.Query(ctx, query, userID, date, req.Mood, req.Notes, req.Energy, req.Sleep, req.Stress)
		if err != nil {
			return err
		}
		defer rows.Close()

		row, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[moodEntryRow])
		return err
	})
	if err != nil {
		return model.MoodEntry{}, apperrors.MapDBError(fmt.Errorf("save mood entry: %w", err))
	}

	return row.toModel(), nil
}
