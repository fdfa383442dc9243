package service

import (
	"context"

	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/internal/store"
	"github.com/MKhiriev/veepo/models"
)

// NotificationListLimit is how many notifications the panel shows.
const NotificationListLimit = 50

type notificationService struct {
	notifications store.NotificationRepository
	publisher     ChangePublisher
	logger        *logger.Logger
}

func NewNotificationService(notifications store.NotificationRepository, publisher ChangePublisher, log *logger.Logger) NotificationService {
	return &notificationService{notifications: notifications, publisher: publisher, logger: log}
}

func (s *notificationService) ListNotifications(ctx context.Context, userID string) (models.NotificationList, error) {
	return s.notifications.ListNotifications(ctx, userID, NotificationListLimit)
}

func (s *notificationService) MarkRead(ctx context.Context, id, userID string) error {
	n, err := s.notifications.MarkNotificationRead(ctx, id, userID)
	if err != nil {
		return err
	}

	s.publisher.PublishChange(ctx, models.EntityNotifications, models.ChangeUpdate, userID, n)
	return nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID string) error {
	n, err := s.notifications.MarkAllNotificationsRead(ctx, userID)
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Debug().Int64("count", n).Msg("notifications marked as read")
	return nil
}
