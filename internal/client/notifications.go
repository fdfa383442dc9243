package client

import (
	"context"

	"github.com/MKhiriev/veepo/internal/adapter"
	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/internal/realtime"
	"github.com/MKhiriev/veepo/internal/resource"
	"github.com/MKhiriev/veepo/internal/session"
	"github.com/MKhiriev/veepo/models"
)

// Notifications is the notification panel. New notifications arrive through
// the realtime stream; reads are applied locally before the server confirms.
type Notifications struct {
	List *resource.LiveList[models.Notification]

	res      *resource.Resource[models.NotificationList]
	api      adapter.APIClient
	hub      *realtime.Hub
	sessions resource.SessionSource
	logger   *logger.Logger
}

func NewNotifications(ctx context.Context, api adapter.APIClient, hub *realtime.Hub, sessions resource.SessionSource, log *logger.Logger) *Notifications {
	n := &Notifications{
		List:     resource.NewLiveList[models.Notification](log),
		api:      api,
		hub:      hub,
		sessions: sessions,
		logger:   log,
	}
	n.res = resource.New(ctx, "notifications", sessions, func(ctx context.Context, _ session.Snapshot) (models.NotificationList, error) {
		return api.Notifications(ctx)
	}, log)
	feedList(n.res, n.List, func(l models.NotificationList) []models.Notification { return l.Notifications })

	return n
}

func (n *Notifications) Load(ctx context.Context) error {
	n.res.Refetch()
	return watch(ctx, n.hub, n.sessions, models.EntityNotifications, n.List)
}

func (n *Notifications) State() resource.State[models.NotificationList] {
	return n.res.State()
}

func (n *Notifications) Subscribe(fn func(resource.State[models.NotificationList])) func() {
	return n.res.Subscribe(fn)
}

func (n *Notifications) Refresh() {
	n.res.Refetch()
}

// UnreadCount counts the unread notifications held locally.
func (n *Notifications) UnreadCount() int {
	count := 0
	for _, item := range n.List.Items() {
		if !item.IsRead {
			count++
		}
	}
	return count
}

// MarkAsRead flips the read flag at once and restores it when the server
// rejects the change.
func (n *Notifications) MarkAsRead(ctx context.Context, id string) error {
	previous, ok := n.List.Update(id, func(item models.Notification) models.Notification {
		item.IsRead = true
		return item
	})
	if !ok {
		return ErrUnknownItem
	}
	if previous.IsRead {
		return nil
	}

	if err := n.api.MarkNotificationRead(ctx, id); err != nil {
		n.List.Update(id, func(item models.Notification) models.Notification {
			item.IsRead = previous.IsRead
			return item
		})
		return err
	}
	return nil
}

// MarkAllAsRead marks every loaded notification read, restoring the unread
// ones on failure.
func (n *Notifications) MarkAllAsRead(ctx context.Context) error {
	var unread []string
	for _, item := range n.List.Items() {
		if item.IsRead {
			continue
		}
		unread = append(unread, item.ID)
		n.List.Update(item.ID, func(item models.Notification) models.Notification {
			item.IsRead = true
			return item
		})
	}
	if len(unread) == 0 {
		return nil
	}

	if err := n.api.MarkAllNotificationsRead(ctx); err != nil {
		for _, id := range unread {
			n.List.Update(id, func(item models.Notification) models.Notification {
				item.IsRead = false
				return item
			})
		}
		return err
	}
	return nil
}

func (n *Notifications) Close() {
	n.res.Close()
}
