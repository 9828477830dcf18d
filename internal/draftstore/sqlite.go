package draftstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"sourcehub/internal/config"
)

// SQLiteKV is a KV backed by a single SQLite table.
type SQLiteKV struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

const (
	sqliteBusyCode          = 5
	busyRetryAttempts       = 5
	busyRetryInitialBackoff = 10 * time.Millisecond
	busyRetryMaxBackoff     = 200 * time.Millisecond
	writeLockRetryDelay     = 25 * time.Millisecond
	writeLockTimeout        = 5 * time.Second
)

// ErrLocked is returned when another process holds the write lock for longer
// than the lock timeout.
var ErrLocked = errors.New("draft store is locked by another process")

func ensureContext(ctx context.Context) context.Context {
	if ctx != nil {
		return ctx
	}
	return context.Background()
}

func isSQLiteBusy(err error) bool {
	if err == nil {
		return false
	}
	var coder interface{ Code() int }
	if errors.As(err, &coder) && coder.Code() == sqliteBusyCode {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked")
}

func retryOnBusy(ctx context.Context, op func() error) error {
	delay := busyRetryInitialBackoff
	var lastErr error
	for attempt := 0; attempt < busyRetryAttempts; attempt++ {
		lastErr = op()
		if lastErr == nil {
			return nil
		}
		if !isSQLiteBusy(lastErr) || attempt == busyRetryAttempts-1 {
			break
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
		if next := delay * 2; next <= busyRetryMaxBackoff {
			delay = next
		}
	}
	return lastErr
}

// Open connects to the draft database named by cfg, creating directories and
// schema as needed.
func Open(cfg *config.Config) (*SQLiteKV, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}
	return OpenPath(cfg.DraftDBPath())
}

// OpenPath connects to the draft database at dbPath. The write lock file sits
// next to it with a .lock extension.
func OpenPath(dbPath string) (*SQLiteKV, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	lockPath := strings.TrimSuffix(dbPath, filepath.Ext(dbPath)) + ".lock"
	store := &SQLiteKV{db: db, path: dbPath, lock: flock.New(lockPath)}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Path returns the database file location.
func (s *SQLiteKV) Path() string {
	return s.path
}

// Close closes the underlying database connection.
func (s *SQLiteKV) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Get implements KV.
func (s *SQLiteKV) Get(ctx context.Context, key string) (string, bool, error) {
	ctx = ensureContext(ctx)
	var value string
	err := retryOnBusy(ctx, func() error {
		return s.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read key %q: %w", key, err)
	}
	return value, true, nil
}

// Put implements KV.
func (s *SQLiteKV) Put(ctx context.Context, key, value string) error {
	return s.withWriteLock(ctx, func(ctx context.Context) error {
		now := time.Now().UTC().Format(time.RFC3339Nano)
		return retryOnBusy(ctx, func() error {
			_, err := s.db.ExecContext(ctx,
				`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
				 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
				key, value, now)
			return err
		})
	})
}

// Delete implements KV. Deleting an absent key is not an error.
func (s *SQLiteKV) Delete(ctx context.Context, key string) error {
	return s.withWriteLock(ctx, func(ctx context.Context) error {
		return retryOnBusy(ctx, func() error {
			_, err := s.db.ExecContext(ctx, "DELETE FROM kv WHERE key = ?", key)
			return err
		})
	})
}

// UpdatedAt reports when key was last written.
func (s *SQLiteKV) UpdatedAt(ctx context.Context, key string) (time.Time, bool, error) {
	ctx = ensureContext(ctx)
	var raw string
	err := s.db.QueryRowContext(ctx, "SELECT updated_at FROM kv WHERE key = ?", key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("read key %q: %w", key, err)
	}
	ts, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("parse updated_at for %q: %w", key, err)
	}
	return ts, true, nil
}

func (s *SQLiteKV) withWriteLock(ctx context.Context, op func(context.Context) error) error {
	ctx = ensureContext(ctx)
	lockCtx, cancel := context.WithTimeout(ctx, writeLockTimeout)
	defer cancel()

	ok, err := s.lock.TryLockContext(lockCtx, writeLockRetryDelay)
	if err != nil && ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("acquire write lock: %w", err)
	}
	if !ok {
		return ErrLocked
	}
	defer func() { _ = s.lock.Unlock() }()
	return op(ctx)
}
