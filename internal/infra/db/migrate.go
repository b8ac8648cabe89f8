package db

import (
	"context"
	"database/sql"
	"fmt"
)

// MigratePostgres creates the tables used by the postgres adapter.
// Ids are 24-character hex strings generated by the application so that both
// backends expose the same identifier format.
func MigratePostgres(ctx context.Context, db *sql.DB) error {
	tables := []string{
		`
CREATE TABLE IF NOT EXISTS articles (
    id             CHAR(24) PRIMARY KEY,
    title          TEXT NOT NULL,
    image          TEXT NOT NULL DEFAULT '',
    publisher      TEXT NOT NULL DEFAULT '',
    description    TEXT NOT NULL DEFAULT '',
    tags           TEXT[] NOT NULL DEFAULT '{}',
    author_email   TEXT NOT NULL DEFAULT '',
    author_name    TEXT NOT NULL DEFAULT '',
    author_photo   TEXT NOT NULL DEFAULT '',
    posted_date    TIMESTAMPTZ,
    status         VARCHAR(16) NOT NULL DEFAULT 'pending',
    decline_reason TEXT NOT NULL DEFAULT '',
    is_premium     BOOLEAN NOT NULL DEFAULT FALSE,
    times_visited  BIGINT NOT NULL DEFAULT 0 CHECK (times_visited >= 0),
    created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
		`
CREATE TABLE IF NOT EXISTS users (
    id                CHAR(24) PRIMARY KEY,
    email             TEXT NOT NULL UNIQUE,
    name              TEXT NOT NULL DEFAULT '',
    photo_url         TEXT NOT NULL DEFAULT '',
    role              VARCHAR(16),
    membership_status VARCHAR(16),
    membership_taken  TIMESTAMPTZ,
    created_at        TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
		`
CREATE TABLE IF NOT EXISTS publishers (
    id         CHAR(24) PRIMARY KEY,
    name       TEXT NOT NULL,
    logo       TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
		`
CREATE TABLE IF NOT EXISTS testimonials (
    id         CHAR(24) PRIMARY KEY,
    name       TEXT NOT NULL DEFAULT '',
    text       TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
	}
	for _, stmt := range tables {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	indexes := []string{
		// trending
		`CREATE INDEX IF NOT EXISTS idx_articles_times_visited ON articles(times_visited DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_author_email ON articles(author_email)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_status ON articles(status)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_tags ON articles USING gin(tags)`,
	}
	for _, idx := range indexes {
		if _, err := db.ExecContext(ctx, idx); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	// ILIKE title search; needs pg_trgm which may be unavailable without superuser rights
	_, _ = db.ExecContext(ctx, `CREATE EXTENSION IF NOT EXISTS pg_trgm`)
	_, _ = db.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS idx_articles_title_gin ON articles USING gin(title gin_trgm_ops)`)

	return nil
}
