package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/sterling-client/internal/logger"
)

type sqliteStorage struct {
	db     *DB
	now    func() time.Time
	logger *logger.Logger
}

// NewSQLiteStorage returns a [StorageService] backed by the kv_store table of
// db. The schema must have been migrated.
func NewSQLiteStorage(db *DB, log *logger.Logger) StorageService {
	return &sqliteStorage{db: db, now: time.Now, logger: log}
}

func (s *sqliteStorage) Get(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, ErrEmptyKey
	}

	query, args, err := selectValueQuery(key)
	if err != nil {
		s.logger.Err(err).Str("func", "*sqliteStorage.Get").Msg("error building query")
		return "", false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		s.logger.Err(err).Str("func", "*sqliteStorage.Get").Str("key", key).Msg("error reading value")
		return "", false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, true, nil
}

func (s *sqliteStorage) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}

	query, args, err := upsertValueQuery(key, value, s.now().UnixMilli())
	if err != nil {
		s.logger.Err(err).Str("func", "*sqliteStorage.Set").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "*sqliteStorage.Set").Str("key", key).Msg("error writing value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteStorage) Remove(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	query, args, err := deleteValueQuery(key)
	if err != nil {
		s.logger.Err(err).Str("func", "*sqliteStorage.Remove").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "*sqliteStorage.Remove").Str("key", key).Msg("error deleting value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
