package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON files. Durations
// are accepted either as strings ("30s", "1h") or as nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		BcryptCost    int      `json:"bcrypt_cost"`
		PublicURL     string   `json:"public_url"`
		Version       string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			Dir           string `json:"dir"`
			PublicBaseURL string `json:"public_base_url"`
		} `json:"files,omitempty"`

		S3 struct {
			Bucket          string `json:"bucket"`
			Region          string `json:"region"`
			Endpoint        string `json:"endpoint"`
			AccessKeyID     string `json:"access_key_id"`
			SecretAccessKey string `json:"secret_access_key"`
			PublicBaseURL   string `json:"public_base_url"`
		} `json:"s3,omitempty"`

		Redis struct {
			URL string `json:"url"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress      string   `json:"http_address"`
		PrototypeAddress string   `json:"prototype_address"`
		RequestTimeout   Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		Sentiment struct {
			URL     string   `json:"url"`
			APIKey  string   `json:"api_key"`
			Model   string   `json:"model"`
			Timeout Duration `json:"timeout"`
		} `json:"sentiment,omitempty"`
		Checkout struct {
			URL       string   `json:"url"`
			SecretKey string   `json:"secret_key"`
			Timeout   Duration `json:"timeout"`
		} `json:"checkout,omitempty"`
		Geo struct {
			URL      string   `json:"url"`
			Timeout  Duration `json:"timeout"`
			CacheTTL Duration `json:"cache_ttl"`
		} `json:"geo,omitempty"`
	} `json:"adapter,omitempty"`

	Workers struct {
		SentimentWorkers int      `json:"sentiment_workers"`
		QueueSize        int      `json:"queue_size"`
		SweepInterval    Duration `json:"sweep_interval"`
		MaxRetries       int      `json:"max_retries"`
	} `json:"workers,omitempty"`

	Realtime struct {
		Broker string `json:"broker"`
	} `json:"realtime,omitempty"`

	RateLimit struct {
		Requests int      `json:"requests"`
		Window   Duration `json:"window"`
	} `json:"rate_limit,omitempty"`

	Dashboard struct {
		BenchmarkThreshold float64 `json:"benchmark_threshold"`
	} `json:"dashboard,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			BcryptCost:    jsonCfg.App.BcryptCost,
			PublicURL:     jsonCfg.App.PublicURL,
			Version:       jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
			Files: Files{
				Dir:           jsonCfg.Storage.Files.Dir,
				PublicBaseURL: jsonCfg.Storage.Files.PublicBaseURL,
			},
			S3: S3{
				Bucket:          jsonCfg.Storage.S3.Bucket,
				Region:          jsonCfg.Storage.S3.Region,
				Endpoint:        jsonCfg.Storage.S3.Endpoint,
				AccessKeyID:     jsonCfg.Storage.S3.AccessKeyID,
				SecretAccessKey: jsonCfg.Storage.S3.SecretAccessKey,
				PublicBaseURL:   jsonCfg.Storage.S3.PublicBaseURL,
			},
			Redis: Redis{URL: jsonCfg.Storage.Redis.URL},
		},
		Server: Server{
			HTTPAddress:      jsonCfg.Server.HTTPAddress,
			PrototypeAddress: jsonCfg.Server.PrototypeAddress,
			RequestTimeout:   time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			Sentiment: SentimentAdapter{
				URL:     jsonCfg.Adapter.Sentiment.URL,
				APIKey:  jsonCfg.Adapter.Sentiment.APIKey,
				Model:   jsonCfg.Adapter.Sentiment.Model,
				Timeout: time.Duration(jsonCfg.Adapter.Sentiment.Timeout),
			},
			Checkout: CheckoutAdapter{
				URL:       jsonCfg.Adapter.Checkout.URL,
				SecretKey: jsonCfg.Adapter.Checkout.SecretKey,
				Timeout:   time.Duration(jsonCfg.Adapter.Checkout.Timeout),
			},
			Geo: GeoAdapter{
				URL:      jsonCfg.Adapter.Geo.URL,
				Timeout:  time.Duration(jsonCfg.Adapter.Geo.Timeout),
				CacheTTL: time.Duration(jsonCfg.Adapter.Geo.CacheTTL),
			},
		},
		Workers: Workers{
			SentimentWorkers: jsonCfg.Workers.SentimentWorkers,
			QueueSize:        jsonCfg.Workers.QueueSize,
			SweepInterval:    time.Duration(jsonCfg.Workers.SweepInterval),
			MaxRetries:       jsonCfg.Workers.MaxRetries,
		},
		Realtime: Realtime{Broker: jsonCfg.Realtime.Broker},
		RateLimit: RateLimit{
			Requests: jsonCfg.RateLimit.Requests,
			Window:   time.Duration(jsonCfg.RateLimit.Window),
		},
		Dashboard: Dashboard{BenchmarkThreshold: jsonCfg.Dashboard.BenchmarkThreshold},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}
