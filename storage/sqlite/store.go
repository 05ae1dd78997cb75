// Package sqlite provides a SQLite-backed storage namespace for cache entries.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/krisalay/simple-nav/storage"
	"github.com/krisalay/simple-nav/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// DefaultTimeout bounds each call made through the storage.Storage methods.
const DefaultTimeout = 2 * time.Second

// Store persists raw cache entries in SQLite.
type Store struct {
	sqlDB   *sql.DB
	timeout time.Duration
}

/*
Open opens the database at path and applies the embedded migrations.

timeout bounds each storage.Storage call; <= 0 uses DefaultTimeout.
The context-aware methods (Load, Put, Delete, List, Purge) use the caller's context instead.
*/
func Open(path string, timeout time.Duration) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// One connection keeps writes serialized.
	sqlDB.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(ctx, sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, timeout: timeout}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) ready() error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("sqlite store is not configured: %w", storage.ErrUnavailable)
	}
	return nil
}

// Load returns the raw entry stored under key.
func (s *Store) Load(ctx context.Context, key string) (string, bool, error) {
	if err := s.ready(); err != nil {
		return "", false, err
	}
	var value string
	err := s.sqlDB.QueryRowContext(ctx, `SELECT value FROM cache_items WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("load cache item: %w", err)
	}
	return value, true, nil
}

// Put inserts or replaces the raw entry under key.
func (s *Store) Put(ctx context.Context, key, value string) error {
	if err := s.ready(); err != nil {
		return err
	}
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO cache_items (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("put cache item: %w", err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.ready(); err != nil {
		return err
	}
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM cache_items WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete cache item: %w", err)
	}
	return nil
}

// List returns every stored key in ascending order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT key FROM cache_items ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list cache items: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scan cache item key: %w", err)
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cache items: %w", err)
	}
	return keys, nil
}

// Purge deletes every stored entry.
func (s *Store) Purge(ctx context.Context) error {
	if err := s.ready(); err != nil {
		return err
	}
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM cache_items`); err != nil {
		return fmt.Errorf("purge cache items: %w", err)
	}
	return nil
}

func (s *Store) opCtx() (context.Context, context.CancelFunc) {
	timeout := DefaultTimeout
	if s != nil && s.timeout > 0 {
		timeout = s.timeout
	}
	return context.WithTimeout(context.Background(), timeout)
}

func (s *Store) GetItem(key string) (string, bool, error) {
	ctx, cancel := s.opCtx()
	defer cancel()
	return s.Load(ctx, key)
}

func (s *Store) SetItem(key, value string) error {
	ctx, cancel := s.opCtx()
	defer cancel()
	return s.Put(ctx, key, value)
}

func (s *Store) RemoveItem(key string) error {
	ctx, cancel := s.opCtx()
	defer cancel()
	return s.Delete(ctx, key)
}

func (s *Store) Keys() ([]string, error) {
	ctx, cancel := s.opCtx()
	defer cancel()
	return s.List(ctx)
}

func (s *Store) Clear() error {
	ctx, cancel := s.opCtx()
	defer cancel()
	return s.Purge(ctx)
}
