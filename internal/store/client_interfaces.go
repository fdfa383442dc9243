package store

import (
	"context"
	"time"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SnapshotRepository keeps the last known payload of client views so they
// can be painted before the first fetch completes.
type SnapshotRepository interface {
	SaveSnapshot(ctx context.Context, userID, key string, payload []byte) error
	// LoadSnapshot returns [ErrSnapshotNotFound] when nothing was saved under key.
	LoadSnapshot(ctx context.Context, userID, key string) (Snapshot, error)
	DeleteSnapshots(ctx context.Context, userID string) error
}

// SessionRepository persists the signed-in session between client runs.
type SessionRepository interface {
	SaveSession(ctx context.Context, session StoredSession) error
	// LoadSession returns [ErrSnapshotNotFound] when nobody is signed in.
	LoadSession(ctx context.Context) (StoredSession, error)
	ClearSession(ctx context.Context) error
}

// Snapshot is a cached view payload.
type Snapshot struct {
	Key       string
	Payload   []byte
	UpdatedAt time.Time
}

// StoredSession is the persisted form of the client session.
type StoredSession struct {
	UserJSON    []byte
	AccessToken string
	UpdatedAt   time.Time
}
