package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/veepo/internal/adapter"
	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/internal/store"
	"github.com/MKhiriev/veepo/models"
)

type geoService struct {
	provider adapter.GeoProvider
	cache    store.Cache
	ttl      time.Duration
	logger   *logger.Logger
}

// NewGeoService proxies geographic reference data through cache for ttl.
func NewGeoService(provider adapter.GeoProvider, cache store.Cache, ttl time.Duration, log *logger.Logger) GeoService {
	return &geoService{provider: provider, cache: cache, ttl: ttl, logger: log}
}

func (s *geoService) States(ctx context.Context) ([]models.State, error) {
	return cached(ctx, s, "states", s.provider.States)
}

func (s *geoService) Cities(ctx context.Context, uf string) ([]models.City, error) {
	uf = strings.ToUpper(strings.TrimSpace(uf))
	return cached(ctx, s, "cities:"+uf, func(ctx context.Context) ([]models.City, error) {
		return s.provider.Cities(ctx, uf)
	})
}

func (s *geoService) CNAEClasses(ctx context.Context) ([]models.CNAEClass, error) {
	return cached(ctx, s, "cnae-classes", s.provider.CNAEClasses)
}

// cached serves key from the cache or loads it. Cache failures are logged
// and fall through to the provider.
func cached[T any](ctx context.Context, s *geoService, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	log := logger.FromContext(ctx)

	raw, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		log.Err(err).Str("func", "geoService.cached").Str("key", key).Msg("geo cache read failed")
	}
	if ok {
		var items []T
		if err = json.Unmarshal(raw, &items); err == nil {
			return items, nil
		}
		log.Err(err).Str("func", "geoService.cached").Str("key", key).Msg("dropping malformed geo cache entry")
	}

	items, err := load(ctx)
	if err != nil {
		log.Err(err).Str("func", "geoService.cached").Str("key", key).Msg("geo provider failed")
		return nil, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}
	if items == nil {
		items = []T{}
	}

	if raw, err = json.Marshal(items); err == nil {
		if err = s.cache.Set(ctx, key, raw, s.ttl); err != nil {
			log.Err(err).Str("func", "geoService.cached").Str("key", key).Msg("geo cache write failed")
		}
	}

	return items, nil
}
