package data

import (
	"context"
	"database/sql"
	"fmt"
)

// schema holds the idempotent DDL applied at startup. The surface is small
// enough that versioned migration tooling would be overkill.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS mood_entries (
		id          BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		user_id     BIGINT NOT NULL,
		entry_date  DATE NOT NULL,
		mood        INT NOT NULL CHECK (mood BETWEEN 1 AND 5),
		notes       TEXT NOT NULL DEFAULT '',
		energy      INT NOT NULL CHECK (energy BETWEEN 1 AND 5),
		sleep_hours INT NOT NULL CHECK (sleep_hours BETWEEN 0 AND 24),
		stress      INT NOT NULL CHECK (stress BETWEEN 1 AND 5),
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS mood_entries_user_date_idx
		ON mood_entries (user_id, entry_date)`,
}

// RunMigrations applies the schema statements in order.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i, err)
		}
	}
	return nil
}
