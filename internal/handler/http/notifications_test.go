package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/veepo/internal/store"
	"github.com/MKhiriev/veepo/models"
)

func TestListNotifications(t *testing.T) {
	f := newHandlerFixture(t)
	f.notifications.EXPECT().ListNotifications(gomock.Any(), testUserID).Return(models.NotificationList{
		Notifications: []models.Notification{{ID: "n1", Message: models.NewFeedbackNotificationMessage}},
		UnreadCount:   1,
	}, nil)

	rr := f.do(http.MethodGet, "/api/notifications", "", true)

	require.Equal(t, http.StatusOK, rr.Code)
	var got models.NotificationList
	decodeBody(t, rr, &got)
	assert.Equal(t, 1, got.UnreadCount)
	assert.Equal(t, "n1", got.Notifications[0].ID)
}

func TestMarkNotificationRead(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "marked", wantStatus: http.StatusNoContent},
		{name: "not owned", err: store.ErrNotificationNotFound, wantStatus: http.StatusNotFound},
		{name: "storage failure", err: store.ErrExecutingQuery, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			f.notifications.EXPECT().MarkRead(gomock.Any(), "n1", testUserID).Return(tt.err)

			rr := f.do(http.MethodPost, "/api/notifications/n1/read", "", true)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestMarkAllNotificationsRead(t *testing.T) {
	f := newHandlerFixture(t)
	f.notifications.EXPECT().MarkAllRead(gomock.Any(), testUserID).Return(nil)

	rr := f.do(http.MethodPost, "/api/notifications/read-all", "", true)

	assert.Equal(t, http.StatusNoContent, rr.Code)
}
