// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/veepo/internal/config"
	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/internal/store"
	"github.com/MKhiriev/veepo/internal/utils"
	"github.com/MKhiriev/veepo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService(users *fakeUserRepository) AuthService {
	return NewAuthService(users, config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "veepo-test",
		TokenDuration: time.Hour,
		BcryptCost:    bcrypt.MinCost,
	}, logger.Nop())
}

func TestAuthService_SignUp_NormalizesAndHashes(t *testing.T) {
	var stored models.User
	users := &fakeUserRepository{
		createFn: func(_ context.Context, user models.User) (models.User, error) {
			stored = user
			return user, nil
		},
	}
	svc := newTestAuthService(users)

	user, err := svc.SignUp(context.Background(), models.Credentials{
		Email:       "  Owner@Example.COM ",
		Password:    "secret1",
		DisplayName: " Padaria Sol ",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "owner@example.com", stored.Email)
	assert.Equal(t, "Padaria Sol", stored.Metadata.DisplayName)
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	assert.NoError(t, utils.ComparePassword(stored.PasswordHash, "secret1"))
}

func TestAuthService_SignUp_DuplicateEmail(t *testing.T) {
	users := &fakeUserRepository{
		createFn: func(context.Context, models.User) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}

	_, err := newTestAuthService(users).SignUp(context.Background(), models.Credentials{Email: "a@b.co", Password: "secret1"})

	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestAuthService_Login(t *testing.T) {
	hash, err := utils.HashPassword("secret1", bcrypt.MinCost)
	require.NoError(t, err)

	users := &fakeUserRepository{
		findByEmailFn: func(_ context.Context, email string) (models.User, error) {
			if email != "owner@example.com" {
				return models.User{}, store.ErrUserNotFound
			}
			return models.User{ID: "u1", Email: email, PasswordHash: hash}, nil
		},
	}
	svc := newTestAuthService(users)

	tests := []struct {
		name    string
		creds   models.Credentials
		wantErr error
	}{
		{name: "valid", creds: models.Credentials{Email: "Owner@example.com", Password: "secret1"}},
		{name: "wrong password", creds: models.Credentials{Email: "owner@example.com", Password: "secret2"}, wantErr: ErrInvalidCredentials},
		{name: "unknown email", creds: models.Credentials{Email: "nobody@example.com", Password: "secret1"}, wantErr: ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := svc.Login(context.Background(), tt.creds)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "u1", user.ID)
		})
	}
}

func TestAuthService_Login_StorageError(t *testing.T) {
	errDB := errors.New("connection refused")
	users := &fakeUserRepository{
		findByEmailFn: func(context.Context, string) (models.User, error) {
			return models.User{}, errDB
		},
	}

	_, err := newTestAuthService(users).Login(context.Background(), models.Credentials{Email: "a@b.co", Password: "secret1"})

	assert.ErrorIs(t, err, errDB)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	svc := newTestAuthService(&fakeUserRepository{})

	token, err := svc.CreateToken(context.Background(), models.User{ID: "u1"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "u1", parsed.UserID)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	svc := newTestAuthService(&fakeUserRepository{})
	other := NewAuthService(&fakeUserRepository{}, config.App{
		TokenSignKey:  "another-key",
		TokenIssuer:   "veepo-test",
		TokenDuration: time.Hour,
	}, logger.Nop())

	foreign, err := other.CreateToken(context.Background(), models.User{ID: "u1"})
	require.NoError(t, err)

	for _, raw := range []string{"", "not-a-jwt", foreign.SignedString} {
		_, err = svc.ParseToken(context.Background(), raw)
		assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
	}
}

func TestAuthService_UpdateUser_TrimsDisplayName(t *testing.T) {
	var got models.UserMetadataUpdate
	users := &fakeUserRepository{
		updateMetadataFn: func(_ context.Context, userID string, update models.UserMetadataUpdate) (models.User, error) {
			got = update
			return models.User{ID: userID}, nil
		},
	}
	name := "  Ana  "

	_, err := newTestAuthService(users).UpdateUser(context.Background(), "u1", models.UserMetadataUpdate{DisplayName: &name})

	require.NoError(t, err)
	require.NotNil(t, got.DisplayName)
	assert.Equal(t, "Ana", *got.DisplayName)
}

func TestAuthService_ChangePassword(t *testing.T) {
	var gotHash string
	users := &fakeUserRepository{
		updatePasswordFn: func(_ context.Context, userID, passwordHash string) error {
			assert.Equal(t, "u1", userID)
			gotHash = passwordHash
			return nil
		},
	}

	err := newTestAuthService(users).ChangePassword(context.Background(), "u1", models.PasswordChange{Password: "newsecret"})

	require.NoError(t, err)
	assert.NoError(t, utils.ComparePassword(gotHash, "newsecret"))
}
