package client

import (
	"context"
	"testing"

	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/internal/store"
	"github.com/MKhiriev/veepo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRuntime(t *testing.T, e *testEnv) *Runtime {
	t.Helper()
	storages := &store.ClientStorages{Snapshots: e.snapshots, Sessions: e.sessions}
	rt := NewRuntime(context.Background(), e.api, e.hub, e.session, storages, logger.Nop())
	t.Cleanup(rt.Close)
	return rt
}

func TestRuntime_StartRequiresSession(t *testing.T) {
	rt := newTestRuntime(t, newTestEnv(t))
	require.ErrorIs(t, rt.Start(context.Background()), ErrNotSignedIn)
}

func TestRuntime_StartAndLogout(t *testing.T) {
	e := newTestEnv(t)
	e.signIn()
	rt := newTestRuntime(t, e)

	e.snapshots.EXPECT().LoadSnapshot(gomock.Any(), e.user.ID, gomock.Any()).Return(store.Snapshot{}, store.ErrSnapshotNotFound).Times(2)
	e.snapshots.EXPECT().SaveSnapshot(gomock.Any(), e.user.ID, gomock.Any(), gomock.Any()).Return(nil).Times(2)
	e.api.EXPECT().DashboardStats(gomock.Any(), gomock.Any()).Return(models.DashboardStats{TotalFeedbacks: 3}, nil)
	e.api.EXPECT().NPSTrend(gomock.Any(), gomock.Any()).Return([]models.NPSPoint{{Day: "2026-06-25", NPSScore: 10}}, nil)
	e.api.EXPECT().BenchmarkComparison(gomock.Any(), gomock.Any()).Return(models.BenchmarkComparison{}, nil)
	e.api.EXPECT().RecentFeedbacks(gomock.Any(), recentFeedbacksLimit).Return([]models.Feedback{{ID: "f1"}}, nil)
	e.api.EXPECT().ListFeedbacks(gomock.Any(), gomock.Any()).Return(models.FeedbackList{Feedbacks: []models.Feedback{{ID: "f1", Status: models.FeedbackPending}}}, nil)
	e.api.EXPECT().Notifications(gomock.Any()).Return(models.NotificationList{Notifications: []models.Notification{{ID: "n1"}}}, nil)
	e.api.EXPECT().ListQRCodes(gomock.Any()).Return([]models.QRCode{{ID: "q1"}}, nil)
	e.api.EXPECT().FeedbackMap(gomock.Any()).Return([]models.FeedbackMapPoint{{ID: "f1", Lat: -30.03, Lng: -51.22}}, nil)
	e.api.EXPECT().ListCampaigns(gomock.Any()).Return([]models.Campaign{{ID: "c1", Name: "Verão"}}, nil)
	e.api.EXPECT().ListProviders(gomock.Any(), models.ProviderFilter{}).Return([]models.Provider{{ID: "p1"}, {ID: "p2"}}, nil)
	e.api.EXPECT().Profile(gomock.Any()).Return(models.Provider{ID: "p1", UserID: e.user.ID}, nil)
	e.api.EXPECT().States(gomock.Any()).Return([]models.State{{ID: 43, Sigla: "RS", Nome: "Rio Grande do Sul"}})
	e.api.EXPECT().CNAEClasses(gomock.Any()).Return([]models.CNAEClass{{ID: "56112", Descricao: "Restaurantes"}})
	e.api.EXPECT().BillingPlans(gomock.Any()).Return([]models.BillingPlan{{Name: "basic"}}, nil)
	e.api.EXPECT().Version(gomock.Any()).Return("1.4.0", nil)

	require.NoError(t, rt.Start(context.Background()))
	waitRuntime(rt)

	assert.Equal(t, 3, rt.Dashboard.Stats.State().Data.TotalFeedbacks)
	assert.Equal(t, 1, rt.Feedbacks.List.Len())
	assert.Equal(t, 1, rt.Notifications.UnreadCount())
	assert.Equal(t, 1, rt.QRCodes.List.Len())
	assert.Equal(t, 1, rt.Campaigns.List.Len())
	assert.Len(t, rt.Directory.State().Data, 2)
	assert.True(t, rt.Profile.Exists())
	assert.Equal(t, "Rio Grande do Sul", rt.Profile.StateName("rs"))
	assert.Len(t, rt.Billing.Plans.State().Data, 1)
	assert.Equal(t, "1.4.0", rt.ServerVersion.State().Data)
	// feedbacks are shared by the dashboard and the feedback list
	assert.Equal(t, 3, e.hub.TopicCount())

	e.api.EXPECT().SetToken("")
	e.sessions.EXPECT().ClearSession(gomock.Any()).Return(nil)
	e.snapshots.EXPECT().DeleteSnapshots(gomock.Any(), e.user.ID).Return(nil)

	rt.Logout(context.Background())
	waitRuntime(rt)

	assert.Zero(t, rt.Dashboard.Stats.State().Data)
	assert.Zero(t, rt.Feedbacks.List.Len())
	assert.Zero(t, rt.Notifications.List.Len())
	assert.Zero(t, rt.QRCodes.List.Len())
	assert.Zero(t, rt.Campaigns.List.Len())
	assert.Empty(t, rt.Directory.State().Data)
	assert.False(t, rt.Profile.Exists())
	assert.Empty(t, rt.Billing.Plans.State().Data)
	require.Eventually(t, func() bool { return e.hub.TopicCount() == 0 }, waitFor, tick)
}

func waitRuntime(rt *Runtime) {
	waitDashboard(rt.Dashboard)
	rt.Feedbacks.res.Wait()
	rt.Notifications.res.Wait()
	rt.QRCodes.res.Wait()
	rt.Campaigns.res.Wait()
	rt.Directory.res.Wait()
	rt.Profile.Provider.Wait()
	rt.Profile.States.Wait()
	rt.Profile.CNAEClasses.Wait()
	rt.Billing.Plans.Wait()
	rt.ServerVersion.Wait()
}
