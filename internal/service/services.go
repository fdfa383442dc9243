package service

import (
	"github.com/MKhiriev/veepo/internal/adapter"
	"github.com/MKhiriev/veepo/internal/config"
	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/internal/ratelimit"
	"github.com/MKhiriev/veepo/internal/store"
	"github.com/MKhiriev/veepo/internal/utils"
	"github.com/MKhiriev/veepo/internal/validators"
)

type Services struct {
	AuthService           AuthService
	QRCodeService         QRCodeService
	FeedbackService       FeedbackService
	PublicFeedbackService PublicFeedbackService
	CampaignService       CampaignService
	ProviderService       ProviderService
	NotificationService   NotificationService
	DashboardService      DashboardService
	BillingService        BillingService
	GeoService            GeoService
	AppInfoService        AppInfoService
}

// Dependencies are the collaborators services share beyond storage.
type Dependencies struct {
	Publisher ChangePublisher
	Limiter   ratelimit.Limiter
	Sentiment SentimentQueue

	// Checkout is nil when no payment provider is configured.
	Checkout adapter.CheckoutProvider
	Geo      adapter.GeoProvider
}

func NewServices(storages *store.Storages, deps Dependencies, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	validator := validators.NewDomainValidator()

	appInfo, err := NewAppInfoService(cfg.App, storages.DB, logger)
	if err != nil {
		return nil, err
	}

	publicFeedback := NewPublicFeedbackService(storages, deps.Limiter, utils.NewHasher(cfg.App.TokenSignKey), deps.Publisher, deps.Sentiment, logger)

	return &Services{
		AuthService:           NewAuthValidationService(NewAuthService(storages.UserRepository, cfg.App, logger), validator),
		QRCodeService:         NewQRCodeValidationService(NewQRCodeService(storages.QRCodeRepository, storages.ObjectStorage, deps.Publisher, cfg.App.PublicURL, logger), validator),
		FeedbackService:       NewFeedbackValidationService(NewFeedbackService(storages.FeedbackRepository, deps.Publisher, logger), validator),
		PublicFeedbackService: NewPublicFeedbackValidationService(publicFeedback, validator),
		CampaignService:       NewCampaignValidationService(NewCampaignService(storages.CampaignRepository, logger), validator),
		ProviderService:       NewProviderValidationService(NewProviderService(storages.ProviderRepository, storages.UserRepository, storages.ObjectStorage, logger), validator),
		NotificationService:   NewNotificationService(storages.NotificationRepository, deps.Publisher, logger),
		DashboardService:      NewDashboardValidationService(NewDashboardService(storages.DashboardRepository, storages.ProviderRepository, cfg.Dashboard.BenchmarkThreshold, logger), validator),
		BillingService:        NewBillingValidationService(NewBillingService(deps.Checkout, logger), validator),
		GeoService:            NewGeoService(deps.Geo, storages.GeoCache, cfg.Adapter.Geo.CacheTTL, logger),
		AppInfoService:        appInfo,
	}, nil
}
