package store

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/models"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func userRows(now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows(userColumns).
		AddRow("u-1", "ana@example.com", "hash", "Ana", "", now)
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	now := time.Now()
	user := models.User{
		ID:           "u-1",
		Email:        "ana@example.com",
		PasswordHash: "hash",
		Metadata:     models.UserMetadata{DisplayName: "Ana"},
	}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("u-1", "ana@example.com", "hash", "Ana", "").
		WillReturnRows(userRows(now))

	created, err := repo.CreateUser(testContext(), user)
	require.NoError(t, err)
	assert.Equal(t, "u-1", created.ID)
	assert.Equal(t, "Ana", created.Metadata.DisplayName)
	assert.Equal(t, "hash", created.PasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(testContext(), models.User{Email: "ana@example.com"})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(testContext(), models.User{Email: "ana@example.com"})
	require.ErrorIs(t, err, ErrExecutingQuery)
	assert.Contains(t, err.Error(), "db network error")
}

func TestCreateUser_ScanError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"id"}). // intentionally wrong shape → scan error
		AddRow("u-1")

	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(rows)

	_, err := repo.CreateUser(testContext(), models.User{})
	require.Error(t, err)
}

func TestFindUserByEmail(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE lower(email) = lower($1)")).
					WithArgs("ANA@example.com").
					WillReturnRows(userRows(now))
			},
		},
		{
			name: "no rows",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT id").
					WithArgs("ANA@example.com").
					WillReturnRows(sqlmock.NewRows(userColumns))
			},
			wantErr: ErrUserNotFound,
		},
		{
			name: "no data found code",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT id").
					WithArgs("ANA@example.com").
					WillReturnError(pgError(pgerrcode.NoDataFound))
			},
			wantErr: ErrUserNotFound,
		},
		{
			name: "unexpected error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT id").
					WithArgs("ANA@example.com").
					WillReturnError(errors.New("db failure"))
			},
			wantErr: ErrExecutingQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newTestUserRepo(t)
			defer db.Close()
			tt.setup(mock)

			found, err := repo.FindUserByEmail(testContext(), "ANA@example.com")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "ana@example.com", found.Email)
		})
	}
}

func TestFindUserByID_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := repo.FindUserByID(testContext(), "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateUserMetadata(t *testing.T) {
	t.Run("updates avatar only", func(t *testing.T) {
		repo, mock, db := newTestUserRepo(t)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta("UPDATE users SET avatar_url = $1 WHERE id = $2 RETURNING")).
			WithArgs("https://cdn/a.png", "u-1").
			WillReturnRows(sqlmock.NewRows(userColumns).
				AddRow("u-1", "ana@example.com", "hash", "Ana", "https://cdn/a.png", time.Now()))

		updated, err := repo.UpdateUserMetadata(testContext(), "u-1", models.UserMetadataUpdate{
			AvatarURL: strPtr("https://cdn/a.png"),
		})
		require.NoError(t, err)
		assert.Equal(t, "https://cdn/a.png", updated.Metadata.AvatarURL)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty update reads the row", func(t *testing.T) {
		repo, mock, db := newTestUserRepo(t)
		defer db.Close()

		mock.ExpectQuery("SELECT id").
			WithArgs("u-1").
			WillReturnRows(userRows(time.Now()))

		_, err := repo.UpdateUserMetadata(testContext(), "u-1", models.UserMetadataUpdate{})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdatePassword(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, mock, db := newTestUserRepo(t)
		defer db.Close()

		mock.ExpectExec("UPDATE users SET password_hash").
			WithArgs("new-hash", "u-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.UpdatePassword(testContext(), "u-1", "new-hash"))
	})

	t.Run("unknown user", func(t *testing.T) {
		repo, mock, db := newTestUserRepo(t)
		defer db.Close()

		mock.ExpectExec("UPDATE users SET password_hash").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.UpdatePassword(testContext(), "u-1", "new-hash"), ErrUserNotFound)
	})

	t.Run("exec error", func(t *testing.T) {
		repo, mock, db := newTestUserRepo(t)
		defer db.Close()

		mock.ExpectExec("UPDATE users SET password_hash").
			WillReturnError(errors.New("boom"))

		assert.ErrorIs(t, repo.UpdatePassword(testContext(), "u-1", "new-hash"), ErrExecutingStatement)
	})
}
