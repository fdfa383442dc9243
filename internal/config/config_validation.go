// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		errs = append(errs, fmt.Errorf("%w: token sign key, issuer and duration are required", ErrInvalidAppConfigs))
	}
	if cfg.App.PublicURL == "" {
		errs = append(errs, fmt.Errorf("%w: public url is required", ErrInvalidAppConfigs))
	}

	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, fmt.Errorf("%w: database dsn is required", ErrInvalidStorageConfigs))
	}
	if cfg.Storage.S3.Bucket == "" && cfg.Storage.Files.Dir == "" {
		errs = append(errs, fmt.Errorf("%w: either s3 bucket or files dir is required", ErrInvalidStorageConfigs))
	}

	if cfg.Server.HTTPAddress == "" {
		errs = append(errs, fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs))
	}

	switch cfg.Realtime.Broker {
	case BrokerMemory:
	case BrokerRedis:
		if cfg.Storage.Redis.URL == "" {
			errs = append(errs, fmt.Errorf("%w: redis broker requires redis url", ErrInvalidRealtimeConfigs))
		}
	default:
		errs = append(errs, fmt.Errorf("%w: unknown broker %q", ErrInvalidRealtimeConfigs, cfg.Realtime.Broker))
	}

	if cfg.Workers.SentimentWorkers < 1 || cfg.Workers.QueueSize < 1 {
		errs = append(errs, fmt.Errorf("%w: at least one worker and a non-empty queue are required", ErrInvalidWorkerConfigs))
	}

	if cfg.RateLimit.Requests > 0 && cfg.RateLimit.Window <= 0 {
		errs = append(errs, fmt.Errorf("%w: rate limit window must be positive", ErrInvalidRateLimitConfigs))
	}

	if cfg.Dashboard.BenchmarkThreshold <= 0 {
		errs = append(errs, fmt.Errorf("%w: benchmark threshold must be positive", ErrInvalidDashboardConfigs))
	}

	return errors.Join(errs...)
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
