package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "quote-studio", cfg.App.Name)
	assert.Equal(t, "local", cfg.App.Environment)
	assert.Equal(t, DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, DefaultClientRetryMaxAttempts, cfg.Client.Retry.MaxAttempts)
	assert.Equal(t, 1, cfg.Client.Retry.MaxAttempts, "provider calls are single-shot by default")
	assert.Equal(t, "https://zenquotes.io", cfg.Services.Quotes.BaseURL)
	assert.Equal(t, 5*time.Minute, cfg.Services.Quotes.CacheTTL)
	assert.Equal(t, DefaultQuoteCacheSize, cfg.Services.Quotes.CacheSize)
	assert.Equal(t, DefaultQuoteDedupWindow, cfg.Services.Quotes.DedupWindow)
	assert.False(t, cfg.Services.Weather.Enabled())
	assert.False(t, cfg.Services.Translate.Enabled())
	assert.Equal(t, "data/history.jsonl", cfg.Storage.HistoryPath)
	assert.Equal(t, "minimal", cfg.Render.DefaultStyle)
	assert.True(t, cfg.Features["translation"])

	require.NoError(t, cfg.Validate())
}

func TestLoad_EnvVarOverrides(t *testing.T) {
	t.Setenv("APP_SERVER_PORT", "9090")
	t.Setenv("APP_LOG_LEVEL", "trace")
	t.Setenv("APP_SERVICES_WEATHER_API_KEY", "secret")
	t.Setenv("APP_CLIENT_RETRY_MAX_ATTEMPTS", "2")
	t.Setenv("APP_FEATURES_SENTIMENT", "false")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "trace", cfg.Log.Level)
	assert.Equal(t, "secret", cfg.Services.Weather.APIKey)
	assert.True(t, cfg.Services.Weather.Enabled())
	assert.Equal(t, 2, cfg.Client.Retry.MaxAttempts)
	assert.False(t, cfg.Features["sentiment"])
}

func TestLoad_ProfileAndDotEnv(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "base.yaml"), []byte(`
app:
  environment: dev
render:
  default_style: modern
`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(`
app:
  environment: test
storage:
  history_path: /tmp/h.jsonl
`), 0o600))

	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("APP_SERVICES_TRANSLATE_BASE_URL=http://localhost:5000\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("APP_SERVICES_TRANSLATE_BASE_URL") })

	cfg, err := LoadWithOptions(Options{Profile: "test", Dir: dir, EnvFile: envFile})
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.App.Environment)
	assert.Equal(t, "modern", cfg.Render.DefaultStyle)
	assert.Equal(t, "/tmp/h.jsonl", cfg.Storage.HistoryPath)
	assert.Equal(t, "http://localhost:5000", cfg.Services.Translate.BaseURL)
	assert.True(t, cfg.Services.Translate.Enabled())
}

func TestLoad_NonExistentProfile(t *testing.T) {
	cfg, err := Load("nonexistent")
	require.NoError(t, err)

	assert.Equal(t, "quote-studio", cfg.App.Name)
}

func TestLoad_DurationParsing(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 100*time.Millisecond, cfg.Client.Retry.InitialInterval)
	assert.Equal(t, 5*time.Second, cfg.Client.Timeout)
	assert.Equal(t, 30*time.Minute, cfg.Services.Translate.CacheTTL)
	assert.Equal(t, 3*time.Second, cfg.Services.Weather.Timeout)
}

func TestEnvKeyMapper(t *testing.T) {
	mapper := envKeyMapper(defaults())

	assert.Equal(t, "services.weather.api_key", mapper("APP_SERVICES_WEATHER_API_KEY"))
	assert.Equal(t, "client.circuit_breaker.half_open_limit", mapper("APP_CLIENT_CIRCUIT_BREAKER_HALF_OPEN_LIMIT"))
	assert.Equal(t, "some.unknown.key", mapper("APP_SOME_UNKNOWN_KEY"))
}

func TestRenderConfig_Location(t *testing.T) {
	assert.Equal(t, time.UTC, RenderConfig{Timezone: "Not/AZone"}.Location())

	loc := RenderConfig{Timezone: "Europe/Paris"}.Location()
	assert.Equal(t, "Europe/Paris", loc.String())
}
