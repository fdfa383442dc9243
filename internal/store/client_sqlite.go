package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/veepo/internal/logger"
)

const (
	upsertSnapshot = `INSERT INTO snapshots (user_id, key, payload, updated_at)
    VALUES (?, ?, ?, ?)
    ON CONFLICT (user_id, key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`

	selectSnapshot = `SELECT key, payload, updated_at FROM snapshots WHERE user_id = ? AND key = ?`

	deleteUserSnapshots = `DELETE FROM snapshots WHERE user_id = ?`

	upsertSession = `INSERT INTO session (id, user_json, access_token, updated_at)
    VALUES (1, ?, ?, ?)
    ON CONFLICT (id) DO UPDATE SET user_json = excluded.user_json, access_token = excluded.access_token, updated_at = excluded.updated_at`

	selectSession = `SELECT user_json, access_token, updated_at FROM session WHERE id = 1`

	deleteSession = `DELETE FROM session`
)

// localCacheRepository is the SQLite-backed client cache. It implements both
// [SnapshotRepository] and [SessionRepository].
type localCacheRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

func newLocalCacheRepository(db *DB, log *logger.Logger) *localCacheRepository {
	return &localCacheRepository{db: db, logger: log, now: time.Now}
}

func (r *localCacheRepository) SaveSnapshot(ctx context.Context, userID, key string, payload []byte) error {
	if _, err := r.db.ExecContext(ctx, upsertSnapshot, userID, key, payload, r.now().UTC()); err != nil {
		r.logger.Err(err).Str("func", "localCacheRepository.SaveSnapshot").Str("key", key).Msg("failed to save snapshot")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *localCacheRepository) LoadSnapshot(ctx context.Context, userID, key string) (Snapshot, error) {
	var s Snapshot
	err := r.db.QueryRowContext(ctx, selectSnapshot, userID, key).Scan(&s.Key, &s.Payload, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Snapshot{}, ErrSnapshotNotFound
		}
		r.logger.Err(err).Str("func", "localCacheRepository.LoadSnapshot").Str("key", key).Msg("failed to load snapshot")
		return Snapshot{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return s, nil
}

func (r *localCacheRepository) DeleteSnapshots(ctx context.Context, userID string) error {
	if _, err := r.db.ExecContext(ctx, deleteUserSnapshots, userID); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *localCacheRepository) SaveSession(ctx context.Context, session StoredSession) error {
	if _, err := r.db.ExecContext(ctx, upsertSession, session.UserJSON, session.AccessToken, r.now().UTC()); err != nil {
		r.logger.Err(err).Str("func", "localCacheRepository.SaveSession").Msg("failed to save session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *localCacheRepository) LoadSession(ctx context.Context) (StoredSession, error) {
	var s StoredSession
	err := r.db.QueryRowContext(ctx, selectSession).Scan(&s.UserJSON, &s.AccessToken, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return StoredSession{}, ErrSnapshotNotFound
		}
		return StoredSession{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return s, nil
}

func (r *localCacheRepository) ClearSession(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, deleteSession); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
