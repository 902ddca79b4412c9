// Package preferences persists small per-visitor settings in SQLite.
package preferences

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/ziadkadry99/react-guide/internal/db"
	"github.com/ziadkadry99/react-guide/internal/theme"
)

// Store manages persistence of visitor preferences.
type Store struct {
	db *db.DB
}

// NewStore creates a new preferences store.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Get returns the value stored for key within scope. ok is false when no
// value has been stored.
func (s *Store) Get(ctx context.Context, scope, key string) (value string, ok bool, err error) {
	err = s.db.QueryRowContext(ctx,
		`SELECT value FROM preferences WHERE scope = ? AND key = ?`, scope, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("getting preference %s/%s: %w", scope, key, err)
	}
	return value, true, nil
}

// Set stores value for key within scope, replacing any previous value.
func (s *Store) Set(ctx context.Context, scope, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO preferences (scope, key, value, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(scope, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		scope, key, value, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("setting preference %s/%s: %w", scope, key, err)
	}
	return nil
}

// Delete removes key within scope.
func (s *Store) Delete(ctx context.Context, scope, key string) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM preferences WHERE scope = ? AND key = ?`, scope, key,
	); err != nil {
		return fmt.Errorf("deleting preference %s/%s: %w", scope, key, err)
	}
	return nil
}

// Count returns the number of stored preferences across all scopes.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM preferences`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting preferences: %w", err)
	}
	return n, nil
}

// Scoped binds the store to one visitor. The result never reports errors:
// failures are logged and read as "no preference".
func (s *Store) Scoped(scope string, logger zerolog.Logger) theme.Store {
	return &scoped{store: s, scope: scope, logger: logger, timeout: 2 * time.Second}
}

type scoped struct {
	store   *Store
	scope   string
	logger  zerolog.Logger
	timeout time.Duration
}

func (s *scoped) Get(key string) (string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	v, ok, err := s.store.Get(ctx, s.scope, key)
	if err != nil {
		s.logger.Warn().Err(err).Str("visitor", s.scope).Str("key", key).Msg("preference store unavailable")
		return "", false
	}
	return v, ok
}

func (s *scoped) Set(key, value string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.store.Set(ctx, s.scope, key, value); err != nil {
		s.logger.Warn().Err(err).Str("visitor", s.scope).Str("key", key).Msg("preference not saved")
	}
}
