package store

import (
	"context"
	"database/sql"
	"fmt"
)

// schema statements are idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS simulations (
		id                  TEXT PRIMARY KEY,
		process_count       INTEGER NOT NULL,
		avg_waiting_time    REAL NOT NULL,
		avg_turnaround_time REAL NOT NULL,
		cpu_utilization     REAL NOT NULL,
		processes           TEXT NOT NULL,
		result              TEXT NOT NULL,
		created_at          TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_simulations_created_at ON simulations(created_at)`,
}

func migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
