// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container of the Veepo
// server. It is populated by merging values from environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix is the prefix applied to all nested env tag lookups (caarlos0/env).
//   - env is the direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters, password hashing cost, the public
	// application URL and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database, object storage and Redis settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds endpoints and credentials of outbound integrations.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds settings of the sentiment analysis job.
	Workers Workers `envPrefix:"WORKERS_"`

	// Realtime selects the change-notification broker.
	Realtime Realtime `envPrefix:"REALTIME_"`

	// RateLimit bounds anonymous feedback submissions.
	RateLimit RateLimit `envPrefix:"RATE_LIMIT_"`

	// Dashboard holds presentation policy of dashboard aggregates.
	Dashboard Dashboard `envPrefix:"DASHBOARD_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid (e.g. "24h").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// BcryptCost is the bcrypt work factor for password hashes.
	// Env: APP_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`

	// PublicURL is the base URL of the customer-facing web app. QR code
	// targets and checkout redirects are built from it.
	// Env: APP_PUBLIC_URL
	PublicURL string `env:"PUBLIC_URL"`

	// Version is exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Files holds local object storage settings, used when S3 is not configured.
	Files Files `envPrefix:"FILES_"`

	// S3 holds S3-compatible object storage settings.
	S3 S3 `envPrefix:"S3_"`

	// Redis holds the Redis connection used by the realtime broker,
	// the rate limiter and the geo cache.
	Redis Redis `envPrefix:"REDIS_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the PostgreSQL connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds local file-system object storage settings.
type Files struct {
	// Dir is the root directory uploaded images are written to.
	// Env: STORAGE_FILES_DIR
	Dir string `env:"DIR"`

	// PublicBaseURL prefixes object keys to form public URLs.
	// Env: STORAGE_FILES_PUBLIC_BASE_URL
	PublicBaseURL string `env:"PUBLIC_BASE_URL"`
}

// S3 holds S3-compatible object storage settings.
type S3 struct {
	// Bucket is the bucket name. Empty disables S3.
	// Env: STORAGE_S3_BUCKET
	Bucket string `env:"BUCKET"`

	// Region is the AWS region.
	// Env: STORAGE_S3_REGION
	Region string `env:"REGION"`

	// Endpoint overrides the S3 endpoint (MinIO, R2, ...).
	// Env: STORAGE_S3_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// AccessKeyID and SecretAccessKey are static credentials. When empty the
	// default AWS credential chain is used.
	// Env: STORAGE_S3_ACCESS_KEY_ID, STORAGE_S3_SECRET_ACCESS_KEY
	AccessKeyID     string `env:"ACCESS_KEY_ID"`
	SecretAccessKey string `env:"SECRET_ACCESS_KEY"`

	// PublicBaseURL prefixes object keys to form public URLs.
	// Env: STORAGE_S3_PUBLIC_BASE_URL
	PublicBaseURL string `env:"PUBLIC_BASE_URL"`
}

// Redis holds the Redis connection settings.
type Redis struct {
	// URL is a redis:// connection URL. Empty disables Redis-backed components.
	// Env: STORAGE_REDIS_URL
	URL string `env:"URL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address of the API server ("host:port").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// PrototypeAddress is the TCP address of the prototype mock service.
	// Env: SERVER_PROTOTYPE_ADDRESS
	PrototypeAddress string `env:"PROTOTYPE_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request. Realtime streams are exempt.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds configuration of outbound integrations.
type Adapter struct {
	// Sentiment is the OpenAI-compatible chat completions endpoint.
	Sentiment SentimentAdapter `envPrefix:"SENTIMENT_"`

	// Checkout is the payment provider checkout API.
	Checkout CheckoutAdapter `envPrefix:"CHECKOUT_"`

	// Geo is the IBGE geographic reference API.
	Geo GeoAdapter `envPrefix:"GEO_"`
}

// SentimentAdapter configures the sentiment analyzer.
type SentimentAdapter struct {
	// Env: ADAPTER_SENTIMENT_URL
	URL string `env:"URL"`
	// Env: ADAPTER_SENTIMENT_API_KEY
	APIKey string `env:"API_KEY"`
	// Env: ADAPTER_SENTIMENT_MODEL
	Model string `env:"MODEL"`
	// Env: ADAPTER_SENTIMENT_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// CheckoutAdapter configures the payment provider.
type CheckoutAdapter struct {
	// Env: ADAPTER_CHECKOUT_URL
	URL string `env:"URL"`
	// Env: ADAPTER_CHECKOUT_SECRET_KEY
	SecretKey string `env:"SECRET_KEY"`
	// Env: ADAPTER_CHECKOUT_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// GeoAdapter configures the geographic reference API.
type GeoAdapter struct {
	// Env: ADAPTER_GEO_URL
	URL string `env:"URL"`
	// Env: ADAPTER_GEO_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
	// CacheTTL is how long lookups are cached.
	// Env: ADAPTER_GEO_CACHE_TTL
	CacheTTL time.Duration `env:"CACHE_TTL"`
}

// Workers holds configuration for the sentiment analysis job.
type Workers struct {
	// SentimentWorkers is the number of goroutines consuming the queue.
	// Env: WORKERS_SENTIMENT_WORKERS
	SentimentWorkers int `env:"SENTIMENT_WORKERS"`

	// QueueSize is the capacity of the in-process analysis queue.
	// Env: WORKERS_QUEUE_SIZE
	QueueSize int `env:"QUEUE_SIZE"`

	// SweepInterval is how often unanalyzed feedbacks are picked up.
	// Env: WORKERS_SWEEP_INTERVAL
	SweepInterval time.Duration `env:"SWEEP_INTERVAL"`

	// MaxRetries bounds retries of transient analysis failures.
	// Env: WORKERS_MAX_RETRIES
	MaxRetries int `env:"MAX_RETRIES"`
}

// Realtime selects the change-notification broker.
type Realtime struct {
	// Broker is "memory" or "redis".
	// Env: REALTIME_BROKER
	Broker string `env:"BROKER"`
}

// RateLimit bounds anonymous feedback submissions per client and QR code.
type RateLimit struct {
	// Requests is the number of submissions allowed per window. Zero disables limiting.
	// Env: RATE_LIMIT_REQUESTS
	Requests int `env:"REQUESTS"`

	// Window is the fixed window length.
	// Env: RATE_LIMIT_WINDOW
	Window time.Duration `env:"WINDOW"`
}

// Dashboard holds presentation policy of dashboard aggregates.
type Dashboard struct {
	// BenchmarkThreshold is the absolute difference within which a metric
	// is reported as equal to its benchmark. Must be positive.
	// Env: DASHBOARD_BENCHMARK_THRESHOLD
	BenchmarkThreshold float64 `env:"BENCHMARK_THRESHOLD"`
}

// Broker names.
const (
	BrokerMemory = "memory"
	BrokerRedis  = "redis"
)

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
