package service

import (
	"context"

	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/internal/store"
	"github.com/MKhiriev/veepo/models"
)

type feedbackService struct {
	feedbacks store.FeedbackRepository
	publisher ChangePublisher
	logger    *logger.Logger
}

// NewFeedbackService returns the owner-side feedback service. Feedbacks are
// never deleted; archiving is a status change.
func NewFeedbackService(feedbacks store.FeedbackRepository, publisher ChangePublisher, log *logger.Logger) FeedbackService {
	return &feedbackService{feedbacks: feedbacks, publisher: publisher, logger: log}
}

// ListFeedbacks defaults to the active view (pending and responded) when no
// status is requested.
func (s *feedbackService) ListFeedbacks(ctx context.Context, filter models.FeedbackFilter) (models.FeedbackList, error) {
	if len(filter.Statuses) == 0 {
		filter.Statuses = models.ActiveFeedbackStatuses
	}
	return s.feedbacks.ListFeedbacks(ctx, filter)
}

func (s *feedbackService) RecentFeedbacks(ctx context.Context, userID string, limit uint64) ([]models.Feedback, error) {
	if limit == 0 {
		limit = DefaultRecentFeedbacks
	}
	return s.feedbacks.RecentFeedbacks(ctx, userID, limit)
}

func (s *feedbackService) MapPoints(ctx context.Context, userID string) ([]models.FeedbackMapPoint, error) {
	return s.feedbacks.MapPoints(ctx, userID)
}

// UpdateStatus changes the status of an owned feedback and publishes the
// updated row.
func (s *feedbackService) UpdateStatus(ctx context.Context, id, userID string, status models.FeedbackStatus) (models.Feedback, error) {
	updated, err := s.feedbacks.UpdateFeedbackStatus(ctx, id, userID, status)
	if err != nil {
		return models.Feedback{}, err
	}

	s.publisher.PublishChange(ctx, models.EntityFeedbacks, models.ChangeUpdate, updated.UserID, updated)
	return updated, nil
}

func (s *feedbackService) Archive(ctx context.Context, id, userID string) (models.Feedback, error) {
	return s.UpdateStatus(ctx, id, userID, models.FeedbackArchived)
}

// Unarchive moves a feedback back to pending.
func (s *feedbackService) Unarchive(ctx context.Context, id, userID string) (models.Feedback, error) {
	return s.UpdateStatus(ctx, id, userID, models.FeedbackPending)
}

// DefaultRecentFeedbacks is the size of the dashboard's recent list.
const DefaultRecentFeedbacks = 5
