package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/internal/store"
	"github.com/MKhiriev/veepo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedbackService_ListFeedbacks_DefaultsToActive(t *testing.T) {
	var got models.FeedbackFilter
	repo := &fakeFeedbackRepository{
		listFn: func(_ context.Context, filter models.FeedbackFilter) (models.FeedbackList, error) {
			got = filter
			return models.FeedbackList{}, nil
		},
	}
	svc := NewFeedbackService(repo, &recordingPublisher{}, logger.Nop())

	_, err := svc.ListFeedbacks(context.Background(), models.FeedbackFilter{UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, models.ActiveFeedbackStatuses, got.Statuses)

	_, err = svc.ListFeedbacks(context.Background(), models.FeedbackFilter{UserID: "u1", Statuses: models.ArchivedFeedbackStatuses})
	require.NoError(t, err)
	assert.Equal(t, models.ArchivedFeedbackStatuses, got.Statuses)
}

func TestFeedbackService_RecentFeedbacks_DefaultLimit(t *testing.T) {
	var gotLimit uint64
	repo := &fakeFeedbackRepository{
		recentFn: func(_ context.Context, _ string, limit uint64) ([]models.Feedback, error) {
			gotLimit = limit
			return nil, nil
		},
	}
	svc := NewFeedbackService(repo, &recordingPublisher{}, logger.Nop())

	_, err := svc.RecentFeedbacks(context.Background(), "u1", 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(DefaultRecentFeedbacks), gotLimit)
}

func TestFeedbackService_ArchiveAndUnarchive(t *testing.T) {
	var statuses []models.FeedbackStatus
	repo := &fakeFeedbackRepository{
		updateStatusFn: func(_ context.Context, id, userID string, status models.FeedbackStatus) (models.Feedback, error) {
			statuses = append(statuses, status)
			return models.Feedback{ID: id, UserID: userID, Status: status}, nil
		},
	}
	publisher := &recordingPublisher{}
	svc := NewFeedbackService(repo, publisher, logger.Nop())

	archived, err := svc.Archive(context.Background(), "f1", "u1")
	require.NoError(t, err)
	assert.Equal(t, models.FeedbackArchived, archived.Status)

	restored, err := svc.Unarchive(context.Background(), "f1", "u1")
	require.NoError(t, err)
	assert.Equal(t, models.FeedbackPending, restored.Status)

	assert.Equal(t, []models.FeedbackStatus{models.FeedbackArchived, models.FeedbackPending}, statuses)
	require.Len(t, publisher.changes, 2)
	for _, change := range publisher.changes {
		assert.Equal(t, models.EntityFeedbacks, change.Entity)
		assert.Equal(t, models.ChangeUpdate, change.Type)
		assert.Equal(t, "u1", change.UserID)
	}
}

func TestFeedbackService_UpdateStatus_NotOwned(t *testing.T) {
	repo := &fakeFeedbackRepository{
		updateStatusFn: func(context.Context, string, string, models.FeedbackStatus) (models.Feedback, error) {
			return models.Feedback{}, store.ErrFeedbackNotFound
		},
	}
	publisher := &recordingPublisher{}
	svc := NewFeedbackService(repo, publisher, logger.Nop())

	_, err := svc.UpdateStatus(context.Background(), "f1", "intruder", models.FeedbackResponded)

	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Empty(t, publisher.changes)
}

func TestNotificationService_MarkRead(t *testing.T) {
	publisher := &recordingPublisher{}
	svc := NewNotificationService(&fakeNotificationRepository{}, publisher, logger.Nop())

	require.NoError(t, svc.MarkRead(context.Background(), "n1", "u1"))

	require.Len(t, publisher.changes, 1)
	assert.Equal(t, models.EntityNotifications, publisher.changes[0].Entity)
	assert.Equal(t, models.ChangeUpdate, publisher.changes[0].Type)
	assert.Equal(t, models.Notification{ID: "n1", UserID: "u1", IsRead: true}, publisher.changes[0].Record)
}

func TestNotificationService_MarkRead_NotFound(t *testing.T) {
	repo := &fakeNotificationRepository{
		markReadFn: func(context.Context, string, string) (models.Notification, error) {
			return models.Notification{}, store.ErrNotificationNotFound
		},
	}
	publisher := &recordingPublisher{}
	svc := NewNotificationService(repo, publisher, logger.Nop())

	assert.ErrorIs(t, svc.MarkRead(context.Background(), "n1", "u1"), store.ErrNotFound)
	assert.Empty(t, publisher.changes)
}
