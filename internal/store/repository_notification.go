package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/models"
)

type notificationRepository struct {
	*DB
	logger *logger.Logger
}

// NewNotificationRepository constructs a [NotificationRepository] backed by db.
func NewNotificationRepository(db *DB, logger *logger.Logger) NotificationRepository {
	return &notificationRepository{DB: db, logger: logger}
}

func (r *notificationRepository) CreateNotification(ctx context.Context, notification models.Notification) (models.Notification, error) {
	n, err := scanNotification(r.DB.QueryRowContext(ctx, createNotification,
		notification.ID,
		notification.UserID,
		notification.Message,
		notification.Link,
	))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "notificationRepository.CreateNotification").Str("user_id", notification.UserID).Msg("failed to insert notification")
		return models.Notification{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return n, nil
}

// ListNotifications returns the newest limit notifications and the number
// of unread notifications overall.
func (r *notificationRepository) ListNotifications(ctx context.Context, userID string, limit uint64) (models.NotificationList, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, listNotifications, userID, limit)
	if err != nil {
		log.Err(err).Str("func", "notificationRepository.ListNotifications").Str("user_id", userID).Msg("failed to list notifications")
		return models.NotificationList{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	list := models.NotificationList{Notifications: make([]models.Notification, 0)}
	for rows.Next() {
		n, scanErr := scanNotification(rows)
		if scanErr != nil {
			return models.NotificationList{}, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		list.Notifications = append(list.Notifications, n)
	}
	if err = rows.Err(); err != nil {
		return models.NotificationList{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if err = r.DB.QueryRowContext(ctx, countUnreadNotifications, userID).Scan(&list.UnreadCount); err != nil {
		log.Err(err).Str("func", "notificationRepository.ListNotifications").Str("user_id", userID).Msg("failed to count unread notifications")
		return models.NotificationList{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return list, nil
}

func (r *notificationRepository) MarkNotificationRead(ctx context.Context, id, userID string) (models.Notification, error) {
	n, err := scanNotification(r.DB.QueryRowContext(ctx, markNotificationRead, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Notification{}, ErrNotificationNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "notificationRepository.MarkNotificationRead").Str("id", id).Msg("failed to mark notification read")
		return models.Notification{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return n, nil
}

// MarkAllNotificationsRead returns the number of notifications that changed.
func (r *notificationRepository) MarkAllNotificationsRead(ctx context.Context, userID string) (int64, error) {
	result, err := r.DB.ExecContext(ctx, markAllNotificationsRead, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "notificationRepository.MarkAllNotificationsRead").Str("user_id", userID).Msg("failed to mark notifications read")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return affected, nil
}
