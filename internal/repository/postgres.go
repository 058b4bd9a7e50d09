package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SignalCacheRepository stores provider answers in PostgreSQL with an expiry
type SignalCacheRepository struct {
	db *pgxpool.Pool
}

// NewSignalCacheRepository creates a new PostgreSQL signal cache repository
func NewSignalCacheRepository(db *pgxpool.Pool) *SignalCacheRepository {
	return &SignalCacheRepository{db: db}
}

// EnsureSchema creates the cache table if it does not exist
func (r *SignalCacheRepository) EnsureSchema(ctx context.Context) error {
	sql := `
		CREATE TABLE IF NOT EXISTS signal_cache (
			key        TEXT PRIMARY KEY,
			value      JSONB NOT NULL,
			expires_at TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS signal_cache_expires_at_idx ON signal_cache (expires_at);
	`
	if _, err := r.db.Exec(ctx, sql); err != nil {
		return fmt.Errorf("repository: failed to create signal cache table: %w", err)
	}
	return nil
}

// Get returns the cached value for key unless it is missing or expired
func (r *SignalCacheRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	sql := `
		SELECT value::text
		FROM signal_cache
		WHERE key = $1 AND expires_at > now()
	`

	var value string
	err := r.db.QueryRow(ctx, sql, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("repository: failed to read cache entry: %w", err)
	}

	return []byte(value), true, nil
}

// Put stores value under key for ttl, replacing any previous entry
func (r *SignalCacheRepository) Put(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	sql := `
		INSERT INTO signal_cache (key, value, expires_at)
		VALUES ($1, $2::jsonb, $3)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, expires_at = EXCLUDED.expires_at
	`

	if _, err := r.db.Exec(ctx, sql, key, string(value), time.Now().Add(ttl)); err != nil {
		return fmt.Errorf("repository: failed to write cache entry: %w", err)
	}
	return nil
}

// PurgeExpired deletes expired entries and returns how many were removed
func (r *SignalCacheRepository) PurgeExpired(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM signal_cache WHERE expires_at <= now()`)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to purge expired entries: %w", err)
	}
	return tag.RowsAffected(), nil
}
