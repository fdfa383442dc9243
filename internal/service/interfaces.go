package service

import (
	"context"
	"io"

	"github.com/MKhiriev/veepo/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	SignUp(ctx context.Context, credentials models.Credentials) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	CurrentUser(ctx context.Context, userID string) (models.User, error)
	UpdateUser(ctx context.Context, userID string, update models.UserMetadataUpdate) (models.User, error)
	ChangePassword(ctx context.Context, userID string, change models.PasswordChange) error
}

type QRCodeService interface {
	CreateQRCode(ctx context.Context, qrCode models.QRCodeCreate) (models.QRCode, error)
	ListQRCodes(ctx context.Context, userID string) ([]models.QRCode, error)
	UpdateQRCode(ctx context.Context, update models.QRCodeUpdate) (models.QRCode, error)
	DeleteQRCode(ctx context.Context, id, userID string) error
	UploadLogo(ctx context.Context, id, userID string, file FileUpload) (models.UploadedFile, error)
}

type FeedbackService interface {
	ListFeedbacks(ctx context.Context, filter models.FeedbackFilter) (models.FeedbackList, error)
	RecentFeedbacks(ctx context.Context, userID string, limit uint64) ([]models.Feedback, error)
	MapPoints(ctx context.Context, userID string) ([]models.FeedbackMapPoint, error)
	UpdateStatus(ctx context.Context, id, userID string, status models.FeedbackStatus) (models.Feedback, error)
	Archive(ctx context.Context, id, userID string) (models.Feedback, error)
	Unarchive(ctx context.Context, id, userID string) (models.Feedback, error)
}

// PublicFeedbackService serves the unauthenticated customer flow.
type PublicFeedbackService interface {
	ScanQRCode(ctx context.Context, id string) (models.PublicQRCode, error)

	// Submit stores a customer feedback for qrCodeID. clientKey identifies
	// the submitter for rate limiting.
	Submit(ctx context.Context, qrCodeID, clientKey string, feedback models.PublicFeedback) (models.Feedback, error)
}

type CampaignService interface {
	ListCampaigns(ctx context.Context, userID string) ([]models.Campaign, error)
	GetCampaign(ctx context.Context, id, userID string) (models.Campaign, error)
	CreateCampaign(ctx context.Context, input models.CampaignInput) (models.Campaign, error)
	UpdateCampaign(ctx context.Context, input models.CampaignInput) (models.Campaign, error)
	DeleteCampaign(ctx context.Context, id, userID string) error
}

type ProviderService interface {
	ListProviders(ctx context.Context, filter models.ProviderFilter) ([]models.Provider, error)
	GetProfile(ctx context.Context, userID string) (models.Provider, error)
	SaveProfile(ctx context.Context, update models.ProviderUpdate) (models.Provider, error)
	UploadImage(ctx context.Context, userID string, kind models.ImageKind, file FileUpload) (models.UploadedFile, error)
}

type NotificationService interface {
	ListNotifications(ctx context.Context, userID string) (models.NotificationList, error)
	MarkRead(ctx context.Context, id, userID string) error
	MarkAllRead(ctx context.Context, userID string) error
}

type DashboardService interface {
	Stats(ctx context.Context, userID string, dateRange models.DateRange) (models.DashboardStats, error)
	NPSTrend(ctx context.Context, userID string, dateRange models.DateRange) ([]models.NPSPoint, error)
	Benchmark(ctx context.Context, userID string) (models.Benchmark, error)
	Comparison(ctx context.Context, userID string, dateRange models.DateRange) (models.BenchmarkComparison, error)
}

type BillingService interface {
	Plans(ctx context.Context) []models.BillingPlan
	Checkout(ctx context.Context, req models.CheckoutRequest) (models.CheckoutSession, error)
}

type GeoService interface {
	States(ctx context.Context) ([]models.State, error)
	Cities(ctx context.Context, uf string) ([]models.City, error)
	CNAEClasses(ctx context.Context) ([]models.CNAEClass, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Health(ctx context.Context) error
}

// SentimentQueue accepts feedbacks for asynchronous sentiment analysis.
type SentimentQueue interface {
	Enqueue(ctx context.Context, feedback models.Feedback)
}

// FileUpload is an uploaded file as received from the client.
type FileUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}
