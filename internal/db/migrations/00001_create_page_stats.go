package migrations

// This is a Go migration because the column types differ by database driver
// (AUTOINCREMENT vs SERIAL vs AUTO_INCREMENT) and because Postgres installs an
// updated_at trigger the other dialects cannot express. The stores also
// refresh updated_at explicitly, so behavior is uniform across drivers; on
// Postgres the trigger additionally covers updates made outside the stores.

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreatePageStats, downCreatePageStats)
}

func upCreatePageStats(ctx context.Context, tx *sql.Tx) error {
	var stats, likes string
	switch dialect {
	case "postgres":
		stats = `CREATE TABLE IF NOT EXISTS page_stats (
    page_id    VARCHAR(255) PRIMARY KEY,
    like_count INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`
		likes = `CREATE TABLE IF NOT EXISTS page_likes (
    id         SERIAL PRIMARY KEY,
    page_id    VARCHAR(255) NOT NULL REFERENCES page_stats(page_id) ON DELETE CASCADE,
    user_hash  VARCHAR(255) NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (page_id, user_hash)
)`
	case "mysql":
		stats = `CREATE TABLE IF NOT EXISTS page_stats (
    page_id    VARCHAR(255) PRIMARY KEY,
    like_count INT NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`
		likes = `CREATE TABLE IF NOT EXISTS page_likes (
    id         BIGINT AUTO_INCREMENT PRIMARY KEY,
    page_id    VARCHAR(255) NOT NULL,
    user_hash  VARCHAR(255) NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (page_id, user_hash),
    FOREIGN KEY (page_id) REFERENCES page_stats(page_id) ON DELETE CASCADE
)`
	default: // sqlite3
		stats = `CREATE TABLE IF NOT EXISTS page_stats (
    page_id    TEXT PRIMARY KEY,
    like_count INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`
		likes = `CREATE TABLE IF NOT EXISTS page_likes (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    page_id    TEXT NOT NULL REFERENCES page_stats(page_id) ON DELETE CASCADE,
    user_hash  TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (page_id, user_hash)
)`
	}

	if _, err := tx.ExecContext(ctx, stats); err != nil {
		return fmt.Errorf("create page_stats table: %w", err)
	}
	if _, err := tx.ExecContext(ctx, likes); err != nil {
		return fmt.Errorf("create page_likes table: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `CREATE INDEX idx_page_likes_page_id ON page_likes (page_id)`); err != nil {
		return fmt.Errorf("create page_id index: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `CREATE INDEX idx_page_likes_user_hash ON page_likes (user_hash)`); err != nil {
		return fmt.Errorf("create user_hash index: %w", err)
	}

	if dialect == "postgres" {
		if _, err := tx.ExecContext(ctx, `
CREATE OR REPLACE FUNCTION update_updated_at_column()
RETURNS TRIGGER AS $$
BEGIN
    NEW.updated_at = NOW();
    RETURN NEW;
END;
$$ LANGUAGE plpgsql`); err != nil {
			return fmt.Errorf("create updated_at function: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `
CREATE TRIGGER trg_update_page_stats
BEFORE UPDATE ON page_stats
FOR EACH ROW
EXECUTE PROCEDURE update_updated_at_column()`); err != nil {
			return fmt.Errorf("create updated_at trigger: %w", err)
		}
	}

	return nil
}

func downCreatePageStats(ctx context.Context, tx *sql.Tx) error {
	if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS page_likes`); err != nil {
		return err
	}
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS page_stats`)
	return err
}
