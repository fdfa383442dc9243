package adapter

import (
	"context"

	"github.com/MKhiriev/veepo/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// SentimentAnalyzer classifies the free-text comment of a feedback.
type SentimentAnalyzer interface {
	Analyze(ctx context.Context, comment string) (models.SentimentResult, error)
}

// CheckoutProvider opens a hosted checkout session with the payment provider.
type CheckoutProvider interface {
	CreateSession(ctx context.Context, req models.CheckoutRequest) (models.CheckoutSession, error)
}

// GeoProvider reads Brazilian geographic reference data.
type GeoProvider interface {
	States(ctx context.Context) ([]models.State, error)
	Cities(ctx context.Context, uf string) ([]models.City, error)
	CNAEClasses(ctx context.Context) ([]models.CNAEClass, error)
}

// APIClient is the client SDK of the Veepo API. Authenticated calls carry the
// bearer token set by SignUp, Login or SetToken.
type APIClient interface {
	SetToken(token string)

	SignUp(ctx context.Context, credentials models.Credentials) (models.Session, error)
	Login(ctx context.Context, credentials models.Credentials) (models.Session, error)
	CurrentUser(ctx context.Context) (models.User, error)
	UpdateUser(ctx context.Context, update models.UserMetadataUpdate) (models.User, error)
	ChangePassword(ctx context.Context, change models.PasswordChange) error

	ListQRCodes(ctx context.Context) ([]models.QRCode, error)
	CreateQRCode(ctx context.Context, qrCode models.QRCodeCreate) (models.QRCode, error)
	UpdateQRCode(ctx context.Context, update models.QRCodeUpdate) (models.QRCode, error)
	DeleteQRCode(ctx context.Context, id string) error

	ListFeedbacks(ctx context.Context, filter models.FeedbackFilter) (models.FeedbackList, error)
	RecentFeedbacks(ctx context.Context, limit int) ([]models.Feedback, error)
	FeedbackMap(ctx context.Context) ([]models.FeedbackMapPoint, error)
	UpdateFeedbackStatus(ctx context.Context, id string, status models.FeedbackStatus) (models.Feedback, error)
	ArchiveFeedback(ctx context.Context, id string) (models.Feedback, error)
	UnarchiveFeedback(ctx context.Context, id string) (models.Feedback, error)

	ListCampaigns(ctx context.Context) ([]models.Campaign, error)
	UpdateCampaign(ctx context.Context, input models.CampaignInput) (models.Campaign, error)
	DeleteCampaign(ctx context.Context, id string) error

	Notifications(ctx context.Context) (models.NotificationList, error)
	MarkNotificationRead(ctx context.Context, id string) error
	MarkAllNotificationsRead(ctx context.Context) error

	DashboardStats(ctx context.Context, dateRange models.DateRange) (models.DashboardStats, error)
	NPSTrend(ctx context.Context, dateRange models.DateRange) ([]models.NPSPoint, error)
	BenchmarkComparison(ctx context.Context, dateRange models.DateRange) (models.BenchmarkComparison, error)

	ListProviders(ctx context.Context, filter models.ProviderFilter) ([]models.Provider, error)
	Profile(ctx context.Context) (models.Provider, error)
	SaveProfile(ctx context.Context, update models.ProviderUpdate) (models.Provider, error)

	BillingPlans(ctx context.Context) ([]models.BillingPlan, error)
	Checkout(ctx context.Context, priceID string) (models.CheckoutSession, error)

	// States, Cities and CNAEClasses never fail: an unreachable upstream
	// yields an empty list.
	States(ctx context.Context) []models.State
	Cities(ctx context.Context, uf string) []models.City
	CNAEClasses(ctx context.Context) []models.CNAEClass

	Version(ctx context.Context) (string, error)
}
