package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/veepo/internal/config"
	"github.com/MKhiriev/veepo/internal/logger"
)

// ClientStorages groups the client-side repositories.
type ClientStorages struct {
	// Snapshots caches the last dashboard stats and feedback list.
	Snapshots SnapshotRepository
	// Sessions keeps the signed-in session between runs.
	Sessions SessionRepository

	db *DB
}

// NewClientStorages opens (creating if needed) the SQLite cache file named
// by cfg.DB.DSN and creates its tables.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating client storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.MigrateSQLite(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	repo := newLocalCacheRepository(db, logger)
	return &ClientStorages{Snapshots: repo, Sessions: repo, db: db}, nil
}

// Close releases the SQLite connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
