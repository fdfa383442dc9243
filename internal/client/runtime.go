package client

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/veepo/internal/adapter"
	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/internal/realtime"
	"github.com/MKhiriev/veepo/internal/resource"
	"github.com/MKhiriev/veepo/internal/session"
	"github.com/MKhiriev/veepo/internal/store"
)

// Runtime is everything the UI talks to. Views load when a session starts
// and reset when it ends.
type Runtime struct {
	Session       *session.Store
	Auth          *Auth
	Dashboard     *Dashboard
	Feedbacks     *Feedbacks
	Notifications *Notifications
	QRCodes       *QRCodes
	Campaigns     *Campaigns
	Directory     *Directory
	Profile       *Profile
	Billing       *Billing
	ServerVersion *resource.Resource[string]
	API           adapter.APIClient

	hub *realtime.Hub

	mu     sync.Mutex
	cancel context.CancelFunc

	logger *logger.Logger
}

// NewRuntime builds the views. ctx bounds every fetch the runtime starts.
func NewRuntime(ctx context.Context, api adapter.APIClient, hub *realtime.Hub, s *session.Store, storages *store.ClientStorages, log *logger.Logger) *Runtime {
	return &Runtime{
		Session:       s,
		Auth:          NewAuth(api, s, storages.Sessions, storages.Snapshots, log),
		Dashboard:     NewDashboard(ctx, api, hub, s, storages.Snapshots, time.Now, log),
		Feedbacks:     NewFeedbacks(ctx, api, hub, s, storages.Snapshots, log),
		Notifications: NewNotifications(ctx, api, hub, s, log),
		QRCodes:       NewQRCodes(ctx, api, hub, s, log),
		Campaigns:     NewCampaigns(ctx, api, s, log),
		Directory:     NewDirectory(ctx, api, s, log),
		Profile:       NewProfile(ctx, api, s, log),
		Billing:       NewBilling(ctx, api, s, log),
		ServerVersion: resource.New(ctx, "server_version", s, func(ctx context.Context, _ session.Snapshot) (string, error) {
			return api.Version(ctx)
		}, log),
		API:           api,
		hub:           hub,
		logger:        log,
	}
}

// Start loads every view for the signed-in user and follows realtime
// changes until Stop. A failed realtime subscription leaves the view on
// fetched data and is reported in the returned error.
func (r *Runtime) Start(ctx context.Context) error {
	if _, ok := r.Session.Current(); !ok {
		return ErrNotSignedIn
	}

	r.Stop()

	r.mu.Lock()
	sessionCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.mu.Unlock()

	err := errors.Join(
		r.Dashboard.Load(sessionCtx),
		r.Feedbacks.Load(sessionCtx),
		r.Notifications.Load(sessionCtx),
		r.QRCodes.Load(sessionCtx),
	)
	r.Campaigns.Refresh()
	r.Directory.Refresh()
	r.Profile.Load()
	r.Billing.Refresh()
	r.ServerVersion.Refetch()
	if err != nil {
		r.logger.Warn().Err(err).Msg("realtime updates are unavailable")
	}
	return err
}

// Stop ends the realtime subscriptions of the current session.
func (r *Runtime) Stop() {
	r.mu.Lock()
	cancel := r.cancel
	r.cancel = nil
	r.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// Logout ends the session and clears every view.
func (r *Runtime) Logout(ctx context.Context) {
	r.Stop()
	r.Auth.Logout(ctx)

	r.Dashboard.Refresh()
	r.Feedbacks.Refresh()
	r.Notifications.Refresh()
	r.QRCodes.Refresh()
	r.Campaigns.Refresh()
	r.Directory.Refresh()
	r.Profile.Load()
	r.Billing.Refresh()
	r.ServerVersion.Refetch()
}

// Close stops the session and waits for fetches in flight.
func (r *Runtime) Close() {
	r.Stop()
	r.hub.Close()
	r.Dashboard.Close()
	r.Feedbacks.Close()
	r.Notifications.Close()
	r.QRCodes.Close()
	r.Campaigns.Close()
	r.Directory.Close()
	r.Profile.Close()
	r.Billing.Close()
	r.ServerVersion.Close()
}
