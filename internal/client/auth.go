package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/veepo/internal/adapter"
	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/internal/session"
	"github.com/MKhiriev/veepo/internal/store"
	"github.com/MKhiriev/veepo/models"
)

// Auth moves the session between the API, the session store and the local
// cache.
type Auth struct {
	api       adapter.APIClient
	session   *session.Store
	sessions  store.SessionRepository
	snapshots store.SnapshotRepository
	logger    *logger.Logger
}

func NewAuth(api adapter.APIClient, s *session.Store, sessions store.SessionRepository, snapshots store.SnapshotRepository, log *logger.Logger) *Auth {
	return &Auth{api: api, session: s, sessions: sessions, snapshots: snapshots, logger: log}
}

// Restore signs back in with the session saved by a previous run. It returns
// false when there is none or the server no longer accepts its token.
func (a *Auth) Restore(ctx context.Context) (bool, error) {
	stored, err := a.sessions.LoadSession(ctx)
	if errors.Is(err, store.ErrSnapshotNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load session: %w", err)
	}

	a.api.SetToken(stored.AccessToken)
	user, err := a.api.CurrentUser(ctx)
	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		a.api.SetToken("")
		a.logger.Info().Msg("saved session expired")
		if clearErr := a.sessions.ClearSession(ctx); clearErr != nil {
			a.logger.Err(clearErr).Str("func", "Auth.Restore").Msg("failed to clear expired session")
		}
		return false, nil
	case err != nil:
		// server unreachable: keep the saved user so cached views can render
		if jsonErr := json.Unmarshal(stored.UserJSON, &user); jsonErr != nil {
			a.api.SetToken("")
			return false, fmt.Errorf("validate session: %w", err)
		}
		a.logger.Warn().Err(err).Msg("restoring saved session offline")
		a.session.Set(user, stored.AccessToken)
		return true, nil
	}

	a.session.Set(user, stored.AccessToken)
	a.persist(ctx, user, stored.AccessToken)
	return true, nil
}

func (a *Auth) Login(ctx context.Context, credentials models.Credentials) error {
	return a.start(ctx, a.api.Login, credentials)
}

func (a *Auth) SignUp(ctx context.Context, credentials models.Credentials) error {
	return a.start(ctx, a.api.SignUp, credentials)
}

func (a *Auth) start(ctx context.Context, call func(context.Context, models.Credentials) (models.Session, error), credentials models.Credentials) error {
	s, err := call(ctx, credentials)
	if err != nil {
		return err
	}

	a.session.Set(s.User, s.AccessToken)
	a.persist(ctx, s.User, s.AccessToken)
	return nil
}

// Logout drops the session and every cached snapshot of its user.
func (a *Auth) Logout(ctx context.Context) {
	current, ok := a.session.Current()
	a.session.Clear()
	a.api.SetToken("")

	if err := a.sessions.ClearSession(ctx); err != nil {
		a.logger.Err(err).Str("func", "Auth.Logout").Msg("failed to clear saved session")
	}
	if ok {
		if err := a.snapshots.DeleteSnapshots(ctx, current.User.ID); err != nil {
			a.logger.Err(err).Str("func", "Auth.Logout").Msg("failed to clear cached snapshots")
		}
	}
}

// UpdateDisplayName changes the display name and publishes the new user.
func (a *Auth) UpdateDisplayName(ctx context.Context, name string) error {
	current, ok := a.session.Current()
	if !ok {
		return ErrNotSignedIn
	}

	user, err := a.api.UpdateUser(ctx, models.UserMetadataUpdate{DisplayName: &name})
	if err != nil {
		return err
	}

	a.session.UpdateUser(user)
	a.persist(ctx, user, current.Token)
	return nil
}

// persist saves the session for the next run. A failure costs only the
// restore, so it is logged and not returned.
func (a *Auth) persist(ctx context.Context, user models.User, token string) {
	userJSON, err := json.Marshal(user)
	if err == nil {
		err = a.sessions.SaveSession(ctx, store.StoredSession{UserJSON: userJSON, AccessToken: token})
	}
	if err != nil {
		a.logger.Err(err).Str("func", "Auth.persist").Msg("failed to save session")
	}
}
