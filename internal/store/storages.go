package store

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/veepo/internal/config"
	"github.com/MKhiriev/veepo/internal/logger"
)

// Storages groups every server-side repository together with the shared
// infrastructure clients built from configuration.
type Storages struct {
	UserRepository         UserRepository
	QRCodeRepository       QRCodeRepository
	FeedbackRepository     FeedbackRepository
	CampaignRepository     CampaignRepository
	ProviderRepository     ProviderRepository
	NotificationRepository NotificationRepository
	DashboardRepository    DashboardRepository

	ObjectStorage ObjectStorage
	GeoCache      Cache

	// Redis is nil when no Redis URL is configured.
	Redis *redis.Client

	DB *DB
}

// NewStorages connects to Postgres, applies migrations and builds the
// repositories. Object storage is S3 when a bucket is configured, local
// files otherwise. The geo cache lives in Redis when available.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	storages := &Storages{
		UserRepository:         NewUserRepository(db, log),
		QRCodeRepository:       NewQRCodeRepository(db, log),
		FeedbackRepository:     NewFeedbackRepository(db, log),
		CampaignRepository:     NewCampaignRepository(db, log),
		ProviderRepository:     NewProviderRepository(db, log),
		NotificationRepository: NewNotificationRepository(db, log),
		DashboardRepository:    NewDashboardRepository(db, log),
		GeoCache:               NewMemoryCache(),
		DB:                     db,
	}

	if cfg.S3.Bucket != "" {
		storages.ObjectStorage, err = NewS3Storage(ctx, cfg.S3, log)
	} else {
		storages.ObjectStorage, err = NewFileStorage(cfg.Files, log)
	}
	if err != nil {
		return nil, fmt.Errorf("object storage: %w", err)
	}

	if cfg.Redis.URL != "" {
		storages.Redis, err = NewRedisClient(ctx, cfg.Redis.URL)
		if err != nil {
			return nil, err
		}
		storages.GeoCache = NewRedisCache(storages.Redis, "veepo:geo:")
		log.Info().Msg("connected to redis")
	}

	return storages, nil
}

// Close releases the database and Redis connections.
func (s *Storages) Close() error {
	if s.Redis != nil {
		_ = s.Redis.Close()
	}
	if s.DB != nil {
		return s.DB.Close()
	}
	return nil
}
