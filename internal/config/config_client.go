package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"dario.cat/mergo"
)

// Client defaults.
const (
	DefaultClientServerURL = "http://localhost:8080"
	DefaultClientCacheDSN  = "veepo-cache.db"
	DefaultClientLogFile   = "veepo-client.log"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the Veepo API.
	// Env: VEEPO_SERVER_URL
	HTTPAddress string `env:"SERVER_URL"`
	// RequestTimeout is the default timeout for outbound client requests.
	// Env: VEEPO_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file that caches list snapshots and the session.
	// Env: VEEPO_CACHE_DSN
	DSN string `env:"CACHE_DSN"`
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientConfig is the top-level client configuration.
type ClientConfig struct {
	// Adapter contains the API address and request timeout.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// LogFile is where the terminal client writes its logs.
	// Env: VEEPO_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

const clientEnvPrefix = "VEEPO_"

// GetClientConfig builds and validates the terminal client configuration
// from defaults, VEEPO_* environment variables and command-line flags.
func GetClientConfig() (*ClientConfig, error) {
	envCfg := &ClientConfig{}
	if err := parseEnv(envCfg, clientEnvPrefix); err != nil {
		return nil, err
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{HTTPAddress: DefaultClientServerURL, RequestTimeout: DefaultRequestTimeout},
		Storage: ClientStorage{DB: ClientDB{DSN: DefaultClientCacheDSN}},
		LogFile: DefaultClientLogFile,
	}
	for _, cfg := range []*ClientConfig{envCfg, parseClientFlags(commandLineArgs())} {
		if err := mergo.Merge(clientCfg, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return clientCfg, clientCfg.validate()
}

// parseClientFlags parses the client configuration flags.
//
// Flags:
//
//	-s API base URL
//	-cache SQLite cache file
//	-log log file
//	-request-timeout request timeout (e.g., "30s")
func parseClientFlags(args []string) *ClientConfig {
	fs := flag.NewFlagSet("veepo-client", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	cfg := &ClientConfig{}
	fs.StringVar(&cfg.Adapter.HTTPAddress, "s", "", "API base URL")
	fs.StringVar(&cfg.Storage.DB.DSN, "cache", "", "SQLite cache file")
	fs.StringVar(&cfg.LogFile, "log", "", "Log file")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	_ = fs.Parse(args)
	return cfg
}

// commandLineArgs is replaced in tests.
var commandLineArgs = func() []string {
	return os.Args[1:]
}
