package schema

import (
	"context"
	"fmt"

	"dream-insight/internal/database"
)

// Ensure brings up the two-table layout the service needs. Statements are
// idempotent so startup is safe against an already-initialized database.
func Ensure(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			phone TEXT NOT NULL UNIQUE,
			birthdate TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS dreams (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users (id),
			dream TEXT NOT NULL,
			interpretation TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_dreams_user_created
			ON dreams (user_id, created_at DESC)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
