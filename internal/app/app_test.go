package app

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/veepo/internal/client"
	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/internal/mock"
	"github.com/MKhiriev/veepo/internal/realtime"
	"github.com/MKhiriev/veepo/internal/session"
	"github.com/MKhiriev/veepo/internal/store"
	"github.com/MKhiriev/veepo/internal/tui"
	"github.com/MKhiriev/veepo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeUI struct {
	loginFn func(ctx context.Context) error
	mainFn  func(ctx context.Context) (bool, error)

	logins int
	mains  int
}

func (f *fakeUI) LoginFlow(ctx context.Context) error {
	f.logins++
	return f.loginFn(ctx)
}

func (f *fakeUI) MainLoop(ctx context.Context) (bool, error) {
	f.mains++
	return f.mainFn(ctx)
}

type testDeps struct {
	api       *mock.MockAPIClient
	sessions  *mock.MockSessionRepository
	snapshots *mock.MockSnapshotRepository
	session   *session.Store
	rt        *client.Runtime
}

func newTestDeps(t *testing.T) *testDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	d := &testDeps{
		api:       mock.NewMockAPIClient(ctrl),
		sessions:  mock.NewMockSessionRepository(ctrl),
		snapshots: mock.NewMockSnapshotRepository(ctrl),
		session:   session.NewStore(),
	}
	hub := realtime.NewHub(realtime.NewMemoryBroker(logger.Nop()), logger.Nop())
	storages := &store.ClientStorages{Snapshots: d.snapshots, Sessions: d.sessions}
	d.rt = client.NewRuntime(context.Background(), d.api, hub, d.session, storages, logger.Nop())
	return d
}

func TestApp_Run_QuitOnLoginScreen(t *testing.T) {
	d := newTestDeps(t)
	ui := &fakeUI{
		loginFn: func(context.Context) error { return tui.ErrUserQuit },
		mainFn: func(context.Context) (bool, error) {
			t.Fatal("main loop must not run")
			return false, nil
		},
	}

	d.sessions.EXPECT().LoadSession(gomock.Any()).Return(store.StoredSession{}, store.ErrSnapshotNotFound)

	closed := false
	a := newApp(d.rt, ui, logger.Nop(), func() error { closed = true; return nil })
	require.NoError(t, a.Run())
	assert.Equal(t, 1, ui.logins)
	assert.True(t, closed)
}

func TestApp_Run_LoginThenQuit(t *testing.T) {
	d := newTestDeps(t)
	user := models.User{ID: "user-1", Email: "owner@veepo.app"}
	ui := &fakeUI{
		loginFn: func(context.Context) error {
			d.session.Set(user, "token")
			return nil
		},
		mainFn: func(context.Context) (bool, error) { return false, nil },
	}

	d.sessions.EXPECT().LoadSession(gomock.Any()).Return(store.StoredSession{}, store.ErrSnapshotNotFound)

	a := newApp(d.rt, ui, logger.Nop())
	require.NoError(t, a.run(context.Background()))
	assert.Equal(t, 1, ui.logins)
	assert.Equal(t, 1, ui.mains)
	d.rt.Close()
}

func TestApp_Run_LogoutStartsOver(t *testing.T) {
	d := newTestDeps(t)
	user := models.User{ID: "user-1", Email: "owner@veepo.app"}
	ui := &fakeUI{
		loginFn: func(context.Context) error { return tui.ErrUserQuit },
	}
	ui.mainFn = func(context.Context) (bool, error) {
		return ui.mains == 1, nil
	}

	gomock.InOrder(
		d.sessions.EXPECT().LoadSession(gomock.Any()).Return(store.StoredSession{UserJSON: []byte(`{"id":"user-1"}`), AccessToken: "saved"}, nil),
		d.api.EXPECT().SetToken("saved"),
		d.api.EXPECT().CurrentUser(gomock.Any()).Return(user, nil),
		d.sessions.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil),
		// logout
		d.api.EXPECT().SetToken(""),
		d.sessions.EXPECT().ClearSession(gomock.Any()).Return(nil),
		d.snapshots.EXPECT().DeleteSnapshots(gomock.Any(), "user-1").Return(nil),
		// second round
		d.sessions.EXPECT().LoadSession(gomock.Any()).Return(store.StoredSession{}, store.ErrSnapshotNotFound),
	)

	a := newApp(d.rt, ui, logger.Nop())
	require.NoError(t, a.run(context.Background()))
	assert.Equal(t, 1, ui.mains)
	assert.Equal(t, 1, ui.logins)

	_, signedIn := d.session.Current()
	assert.False(t, signedIn)
	d.rt.Close()
}

func TestApp_Run_MainLoopError(t *testing.T) {
	d := newTestDeps(t)
	boom := errors.New("terminal gone")
	ui := &fakeUI{
		loginFn: func(context.Context) error {
			d.session.Set(models.User{ID: "user-1"}, "token")
			return nil
		},
		mainFn: func(context.Context) (bool, error) { return false, boom },
	}

	d.sessions.EXPECT().LoadSession(gomock.Any()).Return(store.StoredSession{}, store.ErrSnapshotNotFound)

	a := newApp(d.rt, ui, logger.Nop())
	require.ErrorIs(t, a.run(context.Background()), boom)
	d.rt.Close()
}
