package store

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/veepo/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ErrorClassificator decides whether a database error is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// UserRepository persists accounts. Emails are matched case-insensitively.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
	UpdateUserMetadata(ctx context.Context, userID string, update models.UserMetadataUpdate) (models.User, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
}

// QRCodeRepository persists QR codes. Every owner-side method is scoped by user id.
type QRCodeRepository interface {
	CreateQRCode(ctx context.Context, qrCode models.QRCode) (models.QRCode, error)
	ListQRCodes(ctx context.Context, userID string) ([]models.QRCode, error)
	UpdateQRCode(ctx context.Context, update models.QRCodeUpdate) (models.QRCode, error)
	DeleteQRCode(ctx context.Context, id, userID string) error

	// ScanQRCode returns the public view of an active QR code and counts the
	// scan in the same statement.
	ScanQRCode(ctx context.Context, id string) (models.PublicQRCode, error)
}

// FeedbackRepository persists feedbacks. Feedbacks are never deleted.
type FeedbackRepository interface {
	ListFeedbacks(ctx context.Context, filter models.FeedbackFilter) (models.FeedbackList, error)
	RecentFeedbacks(ctx context.Context, userID string, limit uint64) ([]models.Feedback, error)
	MapPoints(ctx context.Context, userID string) ([]models.FeedbackMapPoint, error)
	UpdateFeedbackStatus(ctx context.Context, id, userID string, status models.FeedbackStatus) (models.Feedback, error)

	// InsertPublicFeedback stores a customer feedback, increments the QR code
	// feedback counter and recomputes the owner's provider aggregates in one
	// transaction.
	InsertPublicFeedback(ctx context.Context, feedback models.Feedback) (models.Feedback, error)

	GetFeedback(ctx context.Context, id string) (models.Feedback, error)
	ListUnanalyzed(ctx context.Context, limit uint64) ([]models.Feedback, error)
	SaveSentiment(ctx context.Context, id string, result models.SentimentResult, analyzedAt time.Time) (models.Feedback, error)
}

// CampaignRepository persists campaigns joined with the name of their QR code.
type CampaignRepository interface {
	ListCampaigns(ctx context.Context, userID string) ([]models.Campaign, error)
	GetCampaign(ctx context.Context, id, userID string) (models.Campaign, error)
	CreateCampaign(ctx context.Context, campaign models.Campaign) (models.Campaign, error)
	UpdateCampaign(ctx context.Context, input models.CampaignInput) (models.Campaign, error)
	DeleteCampaign(ctx context.Context, id, userID string) error
}

// ProviderRepository persists the public business profiles.
type ProviderRepository interface {
	ListProviders(ctx context.Context, filter models.ProviderFilter) ([]models.Provider, error)
	GetProviderByUser(ctx context.Context, userID string) (models.Provider, error)

	// UpsertProvider creates the profile on first save with the given id and
	// name, otherwise applies update to the existing row.
	UpsertProvider(ctx context.Context, id, name string, update models.ProviderUpdate) (models.Provider, error)
}

// NotificationRepository persists owner notifications.
type NotificationRepository interface {
	CreateNotification(ctx context.Context, notification models.Notification) (models.Notification, error)
	ListNotifications(ctx context.Context, userID string, limit uint64) (models.NotificationList, error)
	MarkNotificationRead(ctx context.Context, id, userID string) (models.Notification, error)
	MarkAllNotificationsRead(ctx context.Context, userID string) (int64, error)
}

// DashboardRepository computes the dashboard aggregates.
type DashboardRepository interface {
	Stats(ctx context.Context, userID string, dateRange models.DateRange) (models.DashboardStats, error)
	NPSTrend(ctx context.Context, userID string, dateRange models.DateRange) ([]models.NPSPoint, error)
	RatingSummary(ctx context.Context, userID string, dateRange models.DateRange) (models.RatingSummary, error)
	Benchmark(ctx context.Context, cnae string) (models.Benchmark, error)
}

// ObjectStorage stores uploaded images and returns their public URL.
type ObjectStorage interface {
	Put(ctx context.Context, object Object) (models.UploadedFile, error)
}

// Object is an upload addressed by bucket and key.
type Object struct {
	Bucket      string
	Key         string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Cache is a byte cache with per-entry TTL.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Pinger reports database liveness.
type Pinger interface {
	PingContext(ctx context.Context) error
}
