package submissionrepository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const schema = `
CREATE TABLE IF NOT EXISTS submissions (
    id UUID PRIMARY KEY,
    session_date DATE NOT NULL,
    deity_key TEXT NOT NULL,
    deity TEXT NOT NULL,
    singer_name TEXT NOT NULL CHECK (singer_name <> ''),
    gender TEXT NOT NULL DEFAULT '',
    partner_name TEXT,
    title TEXT NOT NULL CHECK (title <> ''),
    scale TEXT NOT NULL,
    speed TEXT NOT NULL CHECK (speed IN ('slow', 'medium', 'fast')),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    CONSTRAINT submissions_session_deity_key UNIQUE (session_date, deity_key)
);

CREATE INDEX IF NOT EXISTS idx_submissions_session_date ON submissions(session_date);
`

// CreateSchema creates the submissions table. Safe to call multiple times.
func CreateSchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
