package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func validConfig() *StructuredConfig {
	cfg := defaultConfig()
	cfg.App.TokenSignKey = "secret"
	cfg.Storage.DB.DSN = "postgres://localhost/veepo"
	return cfg
}

// TestBuild_EmptyBuilder verifies that building with no configs fails
// validation.
func TestBuild_EmptyBuilder(t *testing.T) {
	_, err := newConfigBuilder().build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		validConfig(),
		&StructuredConfig{App: App{Version: "1.0.0"}},
		&StructuredConfig{App: App{TokenIssuer: "issuer"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
}

// TestBuild_LaterSourceWins verifies that non-zero fields of later configs
// override earlier ones while zero fields leave them untouched.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		validConfig(),
		&StructuredConfig{Server: Server{HTTPAddress: "env:1"}},
		&StructuredConfig{Server: Server{HTTPAddress: "json:2"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "json:2", cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
}

// TestBuild_ValidatesBroker verifies that the redis broker requires a URL.
func TestBuild_ValidatesBroker(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, validConfig(), &StructuredConfig{Realtime: Realtime{Broker: BrokerRedis}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidRealtimeConfigs)

	b.configs = append(b.configs, &StructuredConfig{Storage: Storage{Redis: Redis{URL: "redis://localhost:6379"}}})
	_, err = b.build()
	assert.NoError(t, err)
}

// TestBuild_ValidatesBenchmarkThreshold verifies that only a positive
// threshold is accepted.
func TestBuild_ValidatesBenchmarkThreshold(t *testing.T) {
	tests := []struct {
		name      string
		threshold float64
		wantErr   bool
	}{
		{name: "zero", threshold: 0, wantErr: true},
		{name: "negative", threshold: -0.05, wantErr: true},
		{name: "default", threshold: DefaultBenchmarkThreshold},
		{name: "wide nps tolerance", threshold: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Dashboard.BenchmarkThreshold = tt.threshold
			b := newConfigBuilder()
			b.configs = append(b.configs, cfg)

			built, err := b.build()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDashboardConfigs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.threshold, built.Dashboard.BenchmarkThreshold)
		})
	}
}

// TestWithDefaults_AppendsDefaults verifies the default values.
func TestWithDefaults_AppendsDefaults(t *testing.T) {
	b := newConfigBuilder().withDefaults()

	require.Len(t, b.configs, 1)
	assert.Equal(t, BrokerMemory, b.configs[0].Realtime.Broker)
	assert.Equal(t, DefaultBenchmarkThreshold, b.configs[0].Dashboard.BenchmarkThreshold)
	assert.Equal(t, DefaultRateLimitRequests, b.configs[0].RateLimit.Requests)
}

func TestWithEnv(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("REALTIME_BROKER", "redis")

	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, BrokerRedis, b.configs[0].Realtime.Broker)
}

func TestWithEnv_CollectsParseError(t *testing.T) {
	t.Setenv("WORKERS_QUEUE_SIZE", "lots")

	b := newConfigBuilder().withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithJSON(t *testing.T) {
	fromFile := StructuredJSONConfig{}
	fromFile.App.Version = "json-version"
	fromFile.Realtime.Broker = BrokerRedis
	path := writeTempJSONConfig(t, fromFile)

	malformed := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(malformed, []byte("{not json"), 0o600))

	tests := []struct {
		name      string
		sources   []*StructuredConfig
		wantLen   int
		wantErr   bool
		checkLast func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name:    "no path is a no-op",
			sources: []*StructuredConfig{{}},
			wantLen: 1,
		},
		{
			name:    "last non-empty path wins",
			sources: []*StructuredConfig{{JSONFilePath: "/nonexistent.json"}, {JSONFilePath: path}, {}},
			wantLen: 4,
			checkLast: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "json-version", cfg.App.Version)
				assert.Equal(t, BrokerRedis, cfg.Realtime.Broker)
			},
		},
		{
			name:    "missing file",
			sources: []*StructuredConfig{{JSONFilePath: "/nonexistent/config.json"}},
			wantLen: 1,
			wantErr: true,
		},
		{
			name:    "malformed file",
			sources: []*StructuredConfig{{JSONFilePath: malformed}},
			wantLen: 1,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			b.configs = append(b.configs, tt.sources...)

			assert.Same(t, b, b.withJSON())

			assert.Equal(t, tt.wantErr, b.err != nil, "err: %v", b.err)
			require.Len(t, b.configs, tt.wantLen)
			if tt.checkLast != nil {
				tt.checkLast(t, b.configs[len(b.configs)-1])
			}
		})
	}
}

func TestBuilder_FullPipeline(t *testing.T) {
	fromFile := StructuredJSONConfig{}
	fromFile.App.TokenSignKey = "file-secret"
	fromFile.Storage.DB.DSN = "postgres://file/veepo"
	fromFile.Server.HTTPAddress = "0.0.0.0:9000"
	path := writeTempJSONConfig(t, fromFile)

	t.Setenv("CONFIG", path)
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:8000")
	withArgs(t, "-token-issuer", "veepo-flags")

	cfg, err := newConfigBuilder().withDefaults().withEnv().withFlags().withJSON().build()

	require.NoError(t, err)
	assert.Equal(t, "file-secret", cfg.App.TokenSignKey)
	assert.Equal(t, "veepo-flags", cfg.App.TokenIssuer)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.HTTPAddress, "json is applied last")
	assert.Equal(t, DefaultTokenDuration, cfg.App.TokenDuration)
}
