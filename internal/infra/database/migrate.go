package database

import (
	"context"
	"database/sql"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS sales_agents (
		id         UUID PRIMARY KEY,
		name       TEXT NOT NULL,
		email      TEXT NOT NULL UNIQUE,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS leads (
		id             UUID PRIMARY KEY,
		name           TEXT NOT NULL,
		source         TEXT NOT NULL,
		sales_agent_id UUID NOT NULL REFERENCES sales_agents (id),
		status         TEXT NOT NULL,
		tags           TEXT[] NOT NULL DEFAULT '{}',
		time_to_close  INTEGER NOT NULL CHECK (time_to_close >= 1),
		priority       TEXT NOT NULL,
		closed_at      TIMESTAMPTZ,
		created_at     TIMESTAMPTZ NOT NULL,
		updated_at     TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS comments (
		id           UUID PRIMARY KEY,
		lead_id      UUID NOT NULL REFERENCES leads (id) ON DELETE CASCADE,
		author_id    UUID NOT NULL REFERENCES sales_agents (id),
		comment_text TEXT NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS tags (
		id         UUID PRIMARY KEY,
		name       TEXT NOT NULL UNIQUE,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_leads_status ON leads (status)`,
	`CREATE INDEX IF NOT EXISTS idx_leads_sales_agent ON leads (sales_agent_id)`,
	`CREATE INDEX IF NOT EXISTS idx_comments_lead ON comments (lead_id)`,
}

// Migrate provisions the schema idempotently at startup.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
