package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/sterling-client/internal/config"
	"github.com/MKhiriev/sterling-client/internal/logger"
)

// MemoryDSN selects the in-memory [StorageService].
const MemoryDSN = "memory"

// ClientStorages groups the client's local stores so that they can be passed
// to the service layer as one value.
type ClientStorages struct {
	// KV is the underlying key/value storage.
	KV StorageService
	// Credentials holds the session token.
	Credentials *CredentialStore
	// Preferences holds the draft and tutorial flags.
	Preferences *Preferences

	db *DB
}

// NewClientStorages initialises the client storage layer. With cfg.DB.DSN set
// to [MemoryDSN] nothing touches the disk; otherwise it:
//  1. Opens an SQLite connection to cfg.DB.DSN, creating the file if needed.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires the typed stores to the resulting [StorageService].
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Str("dsn", cfg.DB.DSN).Msg("creating new storages...")

	if strings.EqualFold(strings.TrimSpace(cfg.DB.DSN), MemoryDSN) {
		return newClientStorages(NewMemoryStorage(), nil, log), nil
	}

	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newClientStorages(NewSQLiteStorage(db, log), db, log), nil
}

func newClientStorages(kv StorageService, db *DB, log *logger.Logger) *ClientStorages {
	return &ClientStorages{
		KV:          kv,
		Credentials: NewCredentialStore(kv, log),
		Preferences: NewPreferences(kv),
		db:          db,
	}
}

// Close releases the database connection, if any.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
