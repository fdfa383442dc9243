package store

import (
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/veepo/internal/logger"
)

func newTestLocalCache(t *testing.T) (*localCacheRepository, sqlmock.Sqlmock, time.Time) {
	t.Helper()
	db, mock := newTestDB(t)
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := newLocalCacheRepository(&DB{DB: db}, logger.Nop())
	repo.now = func() time.Time { return now }
	return repo, mock, now
}

func TestLocalCache_Snapshots(t *testing.T) {
	repo, mock, now := newTestLocalCache(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO snapshots")).
		WithArgs("u-1", "dashboard.stats", []byte(`{"totalFeedbacks":3}`), now).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(regexp.QuoteMeta(selectSnapshot)).
		WithArgs("u-1", "dashboard.stats").
		WillReturnRows(sqlmock.NewRows([]string{"key", "payload", "updated_at"}).
			AddRow("dashboard.stats", []byte(`{"totalFeedbacks":3}`), now))
	mock.ExpectQuery(regexp.QuoteMeta(selectSnapshot)).
		WithArgs("u-1", "feedbacks.active").
		WillReturnRows(sqlmock.NewRows([]string{"key", "payload", "updated_at"}))

	require.NoError(t, repo.SaveSnapshot(testContext(), "u-1", "dashboard.stats", []byte(`{"totalFeedbacks":3}`)))

	snap, err := repo.LoadSnapshot(testContext(), "u-1", "dashboard.stats")
	require.NoError(t, err)
	assert.Equal(t, `{"totalFeedbacks":3}`, string(snap.Payload))
	assert.Equal(t, now, snap.UpdatedAt)

	_, err = repo.LoadSnapshot(testContext(), "u-1", "feedbacks.active")
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalCache_Session(t *testing.T) {
	repo, mock, now := newTestLocalCache(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO session")).
		WithArgs([]byte(`{"id":"u-1"}`), "jwt", now).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(regexp.QuoteMeta(selectSession)).
		WillReturnRows(sqlmock.NewRows([]string{"user_json", "access_token", "updated_at"}).AddRow([]byte(`{"id":"u-1"}`), "jwt", now))
	mock.ExpectExec(regexp.QuoteMeta(deleteSession)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(selectSession)).
		WillReturnRows(sqlmock.NewRows([]string{"user_json", "access_token", "updated_at"}))

	require.NoError(t, repo.SaveSession(testContext(), StoredSession{UserJSON: []byte(`{"id":"u-1"}`), AccessToken: "jwt"}))

	s, err := repo.LoadSession(testContext())
	require.NoError(t, err)
	assert.Equal(t, "jwt", s.AccessToken)

	require.NoError(t, repo.ClearSession(testContext()))
	_, err = repo.LoadSession(testContext())
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}
