package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/internal/ratelimit"
	"github.com/MKhiriev/veepo/internal/store"
	"github.com/MKhiriev/veepo/internal/utils"
	"github.com/MKhiriev/veepo/models"
)

// NewFeedbackNotificationLink is where the owner notification points to.
const NewFeedbackNotificationLink = "/feedbacks"

type publicFeedbackService struct {
	qrCodes       store.QRCodeRepository
	feedbacks     store.FeedbackRepository
	notifications store.NotificationRepository

	limiter   ratelimit.Limiter
	hasher    *utils.Hasher
	publisher ChangePublisher
	sentiment SentimentQueue
	ids       *utils.UUIDGenerator

	logger *logger.Logger
}

// NewPublicFeedbackService returns the customer-facing submission flow.
// Client keys are hashed with hasher before they reach the limiter so raw
// addresses are never stored.
func NewPublicFeedbackService(
	storages *store.Storages,
	limiter ratelimit.Limiter,
	hasher *utils.Hasher,
	publisher ChangePublisher,
	sentiment SentimentQueue,
	log *logger.Logger,
) PublicFeedbackService {
	return &publicFeedbackService{
		qrCodes:       storages.QRCodeRepository,
		feedbacks:     storages.FeedbackRepository,
		notifications: storages.NotificationRepository,
		limiter:       limiter,
		hasher:        hasher,
		publisher:     publisher,
		sentiment:     sentiment,
		ids:           utils.NewUUIDGenerator(),
		logger:        log,
	}
}

// ScanQRCode returns the public view of an active QR code and counts the scan.
func (s *publicFeedbackService) ScanQRCode(ctx context.Context, id string) (models.PublicQRCode, error) {
	return s.qrCodes.ScanQRCode(ctx, id)
}

// Submit stores a customer feedback under the QR code owner.
//
// After the insert the owner is notified, both rows are published to realtime
// subscribers and the feedback is queued for sentiment analysis. Only the
// insert can fail the submission.
func (s *publicFeedbackService) Submit(ctx context.Context, qrCodeID, clientKey string, input models.PublicFeedback) (models.Feedback, error) {
	log := logger.FromContext(ctx)

	result, err := s.limiter.Allow(ctx, s.hasher.HashParts(clientKey, qrCodeID))
	if err != nil {
		log.Err(err).Str("func", "publicFeedbackService.Submit").Msg("rate limiter failed, allowing submission")
	} else if !result.Allowed {
		return models.Feedback{}, ErrRateLimited
	}

	inserted, err := s.feedbacks.InsertPublicFeedback(ctx, models.Feedback{
		ID:            s.ids.Generate(),
		QRCodeID:      &qrCodeID,
		Rating:        input.Rating,
		Comment:       strings.TrimSpace(input.Comment),
		CustomerName:  strings.TrimSpace(input.CustomerName),
		CustomerEmail: strings.TrimSpace(input.CustomerEmail),
		Location:      strings.TrimSpace(input.Location),
		Latitude:      input.Latitude,
		Longitude:     input.Longitude,
		Status:        models.FeedbackPending,
		Source:        models.FeedbackSourceQRCode,
	})
	if err != nil {
		return models.Feedback{}, fmt.Errorf("insert feedback: %w", err)
	}

	s.publisher.PublishChange(ctx, models.EntityFeedbacks, models.ChangeInsert, inserted.UserID, inserted)

	notification, err := s.notifications.CreateNotification(ctx, models.Notification{
		ID:      s.ids.Generate(),
		UserID:  inserted.UserID,
		Message: models.NewFeedbackNotificationMessage,
		Link:    NewFeedbackNotificationLink,
	})
	if err != nil {
		log.Err(err).Str("func", "publicFeedbackService.Submit").Str("feedback_id", inserted.ID).Msg("failed to notify owner")
	} else {
		s.publisher.PublishChange(ctx, models.EntityNotifications, models.ChangeInsert, notification.UserID, notification)
	}

	s.sentiment.Enqueue(ctx, inserted)

	return inserted, nil
}
