package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// PageStat is the denormalized aggregate row for one page.
type PageStat struct {
	PageID    string    `db:"page_id" json:"page_id"`
	LikeCount int64     `db:"like_count" json:"like_count"`
	CreatedAt time.Time `db:"created_at" json:"-"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// LikeStore is the sqlx-backed store for page like state. like_count is kept
// an exact mirror of the distinct page_likes rows for a page: the counter only
// moves when a membership row is actually inserted or deleted, inside the same
// transaction.
type LikeStore struct {
	db     *sqlx.DB
	driver string
}

// NewLikeStore creates a new LikeStore. driver is the configured DB driver
// name (sqlite3, mysql, postgres), needed because conflict-ignoring inserts
// have no cross-database spelling.
func NewLikeStore(db *sqlx.DB, driver string) *LikeStore {
	return &LikeStore{db: db, driver: driver}
}

// q rebinds ? placeholders to the driver's native format.
func (s *LikeStore) q(query string) string { return s.db.Rebind(query) }

// insertStatSQL inserts a zero-count page_stats row unless one already exists.
func (s *LikeStore) insertStatSQL() string {
	if s.driver == "mysql" {
		return `INSERT IGNORE INTO page_stats (page_id, like_count, created_at, updated_at) VALUES (?, 0, ?, ?)`
	}
	return `INSERT INTO page_stats (page_id, like_count, created_at, updated_at) VALUES (?, 0, ?, ?)
		ON CONFLICT (page_id) DO NOTHING`
}

// insertLikeSQL inserts a membership row unless the visitor already liked the
// page. RowsAffected tells the caller which case occurred; a duplicate is
// detected by the unique constraint, never by a racy pre-check.
func (s *LikeStore) insertLikeSQL() string {
	if s.driver == "mysql" {
		return `INSERT IGNORE INTO page_likes (page_id, user_hash, created_at) VALUES (?, ?, ?)`
	}
	return `INSERT INTO page_likes (page_id, user_hash, created_at) VALUES (?, ?, ?)
		ON CONFLICT (page_id, user_hash) DO NOTHING`
}

// Get returns the aggregate for a page and whether this visitor has liked it.
// Unseen pages get a zero-count row created on demand, matching the write
// path's create-on-demand behavior.
func (s *LikeStore) Get(ctx context.Context, pageID, visitor string) (*PageStat, bool, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, false, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := s.ensureStat(ctx, tx, pageID); err != nil {
		return nil, false, err
	}

	stat, err := s.getStat(ctx, tx, pageID)
	if err != nil {
		return nil, false, err
	}

	liked, err := s.hasLiked(ctx, tx, pageID, visitor)
	if err != nil {
		return nil, false, err
	}

	if err := tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("commit: %w", err)
	}
	return stat, liked, nil
}

// Add records a like for (pageID, visitor). Repeated calls from the same
// visitor are no-ops: the counter is incremented only when the membership
// insert actually created a row, so like_count can never exceed the distinct
// visitor count.
func (s *LikeStore) Add(ctx context.Context, pageID, visitor string) (*PageStat, error) {
	now := time.Now().UTC()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// The stat row must exist before the membership insert (FK), and inserting
	// it conflict-ignore first means two visitors racing on an unseen page
	// both proceed to the serialized counter update below.
	if _, err := tx.ExecContext(ctx, s.q(s.insertStatSQL()), pageID, now, now); err != nil {
		return nil, fmt.Errorf("ensure page_stats row: %w", err)
	}

	res, err := tx.ExecContext(ctx, s.q(s.insertLikeSQL()), pageID, visitor, now)
	if err != nil {
		return nil, fmt.Errorf("insert page_likes row: %w", err)
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected: %w", err)
	}

	if inserted > 0 {
		if _, err := tx.ExecContext(ctx, s.q(`
			UPDATE page_stats SET like_count = like_count + 1, updated_at = ? WHERE page_id = ?
		`), now, pageID); err != nil {
			return nil, fmt.Errorf("increment like_count: %w", err)
		}
	}

	stat, err := s.getStat(ctx, tx, pageID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return stat, nil
}

// Remove deletes the visitor's like and decrements the counter, floored at
// zero. Returns ErrNotLiked (and changes nothing) when no membership row
// existed for this visitor.
func (s *LikeStore) Remove(ctx context.Context, pageID, visitor string) (*PageStat, error) {
	now := time.Now().UTC()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, s.q(`
		DELETE FROM page_likes WHERE page_id = ? AND user_hash = ?
	`), pageID, visitor)
	if err != nil {
		return nil, fmt.Errorf("delete page_likes row: %w", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected: %w", err)
	}
	if deleted == 0 {
		return nil, ErrNotLiked
	}

	if _, err := tx.ExecContext(ctx, s.q(`
		UPDATE page_stats SET like_count = like_count - 1, updated_at = ? WHERE page_id = ? AND like_count > 0
	`), now, pageID); err != nil {
		return nil, fmt.Errorf("decrement like_count: %w", err)
	}

	stat, err := s.getStat(ctx, tx, pageID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return stat, nil
}

// Top returns up to limit pages ordered by like_count descending. Ties break
// arbitrarily.
func (s *LikeStore) Top(ctx context.Context, limit int) ([]*PageStat, error) {
	var stats []*PageStat
	err := s.db.SelectContext(ctx, &stats, s.q(`
		SELECT page_id, like_count, created_at, updated_at
		FROM page_stats
		ORDER BY like_count DESC
		LIMIT ?
	`), limit)
	if err != nil {
		return nil, fmt.Errorf("select top pages: %w", err)
	}
	return stats, nil
}

func (s *LikeStore) ensureStat(ctx context.Context, tx *sqlx.Tx, pageID string) error {
	now := time.Now().UTC()
	if _, err := tx.ExecContext(ctx, s.q(s.insertStatSQL()), pageID, now, now); err != nil {
		return fmt.Errorf("ensure page_stats row: %w", err)
	}
	return nil
}

func (s *LikeStore) getStat(ctx context.Context, tx *sqlx.Tx, pageID string) (*PageStat, error) {
	var stat PageStat
	err := tx.GetContext(ctx, &stat, s.q(`
		SELECT page_id, like_count, created_at, updated_at FROM page_stats WHERE page_id = ?
	`), pageID)
	if err != nil {
		return nil, fmt.Errorf("select page_stats row: %w", err)
	}
	return &stat, nil
}

func (s *LikeStore) hasLiked(ctx context.Context, tx *sqlx.Tx, pageID, visitor string) (bool, error) {
	var n int
	err := tx.GetContext(ctx, &n, s.q(`
		SELECT COUNT(1) FROM page_likes WHERE page_id = ? AND user_hash = ?
	`), pageID, visitor)
	if err != nil {
		return false, fmt.Errorf("check page_likes row: %w", err)
	}
	return n > 0, nil
}
