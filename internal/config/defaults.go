package config

import "time"

// Defaults applied before any other source.
const (
	DefaultHTTPAddress        = "localhost:8080"
	DefaultPrototypeAddress   = "localhost:4000"
	DefaultRequestTimeout     = 30 * time.Second
	DefaultTokenIssuer        = "veepo"
	DefaultTokenDuration      = 24 * time.Hour
	DefaultBcryptCost         = 10
	DefaultPublicURL          = "http://localhost:5173"
	DefaultSentimentURL       = "https://api.openai.com/v1"
	DefaultSentimentModel     = "gpt-3.5-turbo"
	DefaultCheckoutURL        = "https://api.stripe.com"
	DefaultGeoURL             = "https://servicodados.ibge.gov.br"
	DefaultGeoCacheTTL        = 24 * time.Hour
	DefaultAdapterTimeout     = 15 * time.Second
	DefaultSentimentWorkers   = 2
	DefaultQueueSize          = 256
	DefaultSweepInterval      = 5 * time.Minute
	DefaultMaxRetries         = 3
	DefaultRateLimitRequests  = 10
	DefaultRateLimitWindow    = time.Minute
	DefaultBenchmarkThreshold = 0.05
	DefaultFilesDir           = "uploads"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			BcryptCost:    DefaultBcryptCost,
			PublicURL:     DefaultPublicURL,
			Version:       "dev",
		},
		Storage: Storage{
			Files: Files{Dir: DefaultFilesDir},
		},
		Server: Server{
			HTTPAddress:      DefaultHTTPAddress,
			PrototypeAddress: DefaultPrototypeAddress,
			RequestTimeout:   DefaultRequestTimeout,
		},
		Adapter: Adapter{
			Sentiment: SentimentAdapter{URL: DefaultSentimentURL, Model: DefaultSentimentModel, Timeout: DefaultAdapterTimeout},
			Checkout:  CheckoutAdapter{URL: DefaultCheckoutURL, Timeout: DefaultAdapterTimeout},
			Geo:       GeoAdapter{URL: DefaultGeoURL, Timeout: DefaultAdapterTimeout, CacheTTL: DefaultGeoCacheTTL},
		},
		Workers: Workers{
			SentimentWorkers: DefaultSentimentWorkers,
			QueueSize:        DefaultQueueSize,
			SweepInterval:    DefaultSweepInterval,
			MaxRetries:       DefaultMaxRetries,
		},
		Realtime:  Realtime{Broker: BrokerMemory},
		RateLimit: RateLimit{Requests: DefaultRateLimitRequests, Window: DefaultRateLimitWindow},
		Dashboard: Dashboard{BenchmarkThreshold: DefaultBenchmarkThreshold},
	}
}
