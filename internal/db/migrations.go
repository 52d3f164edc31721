package db

import (
	"fmt"

	"gorm.io/gorm"
)

// Only the run history table is managed here. The table being validated
// belongs to whoever owns the data and is never created or altered.
var migrationStatements = []string{
	`CREATE TABLE IF NOT EXISTS import_runs (
		id UUID PRIMARY KEY,
		source TEXT NOT NULL,
		valid_count INTEGER NOT NULL DEFAULT 0,
		invalid_count INTEGER NOT NULL DEFAULT 0,
		started_at TIMESTAMPTZ NOT NULL,
		finished_at TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_import_runs_source ON import_runs (source, started_at DESC);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
