package client

import (
	"testing"
	"time"

	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/internal/mock"
	"github.com/MKhiriev/veepo/internal/realtime"
	"github.com/MKhiriev/veepo/internal/session"
	"github.com/MKhiriev/veepo/models"
	"go.uber.org/mock/gomock"
)

const (
	waitFor = time.Second
	tick    = 5 * time.Millisecond
)

type testEnv struct {
	api       *mock.MockAPIClient
	snapshots *mock.MockSnapshotRepository
	sessions  *mock.MockSessionRepository
	broker    *realtime.MemoryBroker
	hub       *realtime.Hub
	session   *session.Store
	user      models.User
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	broker := realtime.NewMemoryBroker(logger.Nop())
	hub := realtime.NewHub(broker, logger.Nop())
	t.Cleanup(hub.Close)

	return &testEnv{
		api:       mock.NewMockAPIClient(ctrl),
		snapshots: mock.NewMockSnapshotRepository(ctrl),
		sessions:  mock.NewMockSessionRepository(ctrl),
		broker:    broker,
		hub:       hub,
		session:   session.NewStore(),
		user:      models.User{ID: "user-1", Email: "owner@veepo.app"},
	}
}

func (e *testEnv) signIn() {
	e.session.Set(e.user, "access-token")
}
