// Package config loads the quote studio configuration using koanf.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Default configuration values.
const (
	// DefaultServerPort is the default HTTP server port.
	DefaultServerPort = 8080

	// DefaultMaxRequestSize is the default maximum request body size (1MB).
	DefaultMaxRequestSize = 1 << 20

	// DefaultClientRetryMaxAttempts keeps provider calls single-shot.
	// The pipeline degrades to local data instead of retrying.
	DefaultClientRetryMaxAttempts = 1

	// DefaultClientRetryMultiplier is the exponential backoff multiplier.
	DefaultClientRetryMultiplier = 2.0

	// DefaultClientRetryJitterFactor is the default jitter percentage (±25%).
	DefaultClientRetryJitterFactor = 0.25

	// DefaultClientCircuitMaxFailures is the default failures before circuit opens.
	DefaultClientCircuitMaxFailures = 5

	// DefaultClientCircuitHalfOpenLimit is the default successes to close circuit.
	DefaultClientCircuitHalfOpenLimit = 3

	// DefaultTransportMaxIdleConns is the default max idle connections.
	DefaultTransportMaxIdleConns = 100

	// DefaultTransportMaxIdleConnsPerHost is the default max idle connections per host.
	DefaultTransportMaxIdleConnsPerHost = 10

	// DefaultLogFileMaxSizeMB is the default max log file size in megabytes.
	DefaultLogFileMaxSizeMB = 100

	// DefaultLogFileMaxBackups is the default number of old log files to retain.
	DefaultLogFileMaxBackups = 3

	// DefaultLogFileMaxAgeDays is the default max days to retain old log files.
	DefaultLogFileMaxAgeDays = 28

	// DefaultQuoteCacheSize bounds the remote batch cache.
	DefaultQuoteCacheSize = 50

	// DefaultQuoteDedupWindow is how many recently served quotes are skipped.
	DefaultQuoteDedupWindow = 30

	// DefaultQuoteMaxAttempts bounds the unique-quote search.
	DefaultQuoteMaxAttempts = 10
)

// Config is the root configuration structure.
type Config struct {
	App       AppConfig       `koanf:"app"       validate:"required"`
	Server    ServerConfig    `koanf:"server"    validate:"required"`
	Log       LogConfig       `koanf:"log"       validate:"required"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Auth      AuthConfig      `koanf:"auth"`
	Client    ClientConfig    `koanf:"client"    validate:"required"`
	Services  ServicesConfig  `koanf:"services"  validate:"required"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Storage   StorageConfig   `koanf:"storage"   validate:"required"`
	Render    RenderConfig    `koanf:"render"    validate:"required"`
	Theme     ThemeConfig     `koanf:"theme"`
	Features  map[string]bool `koanf:"features"`
}

// AppConfig contains application-level settings.
type AppConfig struct {
	Name        string `koanf:"name"        validate:"required"`
	Version     string `koanf:"version"     validate:"required"`
	Environment string `koanf:"environment" validate:"required,oneof=local dev qa prod test"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"             validate:"required,min=1,max=65535"`
	Host            string        `koanf:"host"             validate:"required"`
	ReadTimeout     time.Duration `koanf:"read_timeout"     validate:"required,min=1s"`
	WriteTimeout    time.Duration `koanf:"write_timeout"    validate:"required,min=1s"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"     validate:"required,min=1s"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"required,min=1s"`
	MaxRequestSize  int64         `koanf:"max_request_size" validate:"required,min=1"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string        `koanf:"level"  validate:"required,oneof=trace debug info warn error"`
	Format string        `koanf:"format" validate:"required,oneof=json text pretty"`
	File   LogFileConfig `koanf:"file"`
}

// LogFileConfig contains rolling log file settings.
type LogFileConfig struct {
	Enabled    bool   `koanf:"enabled"`
	Path       string `koanf:"path"        validate:"required_if=Enabled true"`
	MaxSizeMB  int    `koanf:"max_size"    validate:"omitempty,min=1,max=1024"`
	MaxBackups int    `koanf:"max_backups" validate:"omitempty,min=0,max=100"`
	MaxAgeDays int    `koanf:"max_age"     validate:"omitempty,min=0,max=365"`
	Compress   bool   `koanf:"compress"`
}

// TelemetryConfig contains OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled      bool    `koanf:"enabled"`
	Endpoint     string  `koanf:"endpoint"      validate:"required_if=Enabled true,omitempty,url"`
	ServiceName  string  `koanf:"service_name"  validate:"required_if=Enabled true"`
	SamplingRate float64 `koanf:"sampling_rate" validate:"min=0,max=1"`
}

// AuthConfig names the headers a fronting gateway uses to pass identity.
type AuthConfig struct {
	Enabled       bool   `koanf:"enabled"`
	RolesHeader   string `koanf:"roles_header"`
	SubjectHeader string `koanf:"subject_header"`
	AdminRole     string `koanf:"admin_role"     validate:"required_if=Enabled true"`
}

// ClientConfig contains HTTP client settings for remote providers.
type ClientConfig struct {
	Timeout        time.Duration        `koanf:"timeout"         validate:"required,min=100ms"`
	Retry          RetryConfig          `koanf:"retry"           validate:"required"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker" validate:"required"`
	Transport      TransportConfig      `koanf:"transport"       validate:"required"`
}

// RetryConfig contains retry settings for HTTP clients.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"     validate:"required,min=1,max=10"`
	InitialInterval time.Duration `koanf:"initial_interval" validate:"required,min=10ms"`
	MaxInterval     time.Duration `koanf:"max_interval"     validate:"required,min=100ms"`
	Multiplier      float64       `koanf:"multiplier"       validate:"required,min=1.1,max=10"`
	JitterFactor    float64       `koanf:"jitter_factor"    validate:"min=0,max=1"`
}

// CircuitBreakerConfig contains circuit breaker settings for HTTP clients.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"    validate:"required,min=1"`
	Timeout       time.Duration `koanf:"timeout"         validate:"required,min=1s"`
	HalfOpenLimit int           `koanf:"half_open_limit" validate:"required,min=1"`
}

// TransportConfig contains HTTP transport pool settings.
type TransportConfig struct {
	MaxIdleConns        int           `koanf:"max_idle_conns"          validate:"required,min=1"`
	MaxIdleConnsPerHost int           `koanf:"max_idle_conns_per_host" validate:"required,min=1"`
	IdleConnTimeout     time.Duration `koanf:"idle_conn_timeout"       validate:"required,min=1s"`
}

// ServicesConfig contains the remote providers.
type ServicesConfig struct {
	Quotes    QuotesServiceConfig    `koanf:"quotes"    validate:"required"`
	Weather   WeatherServiceConfig   `koanf:"weather"`
	Translate TranslateServiceConfig `koanf:"translate"`
}

// QuotesServiceConfig configures the remote quote provider and its cache.
type QuotesServiceConfig struct {
	BaseURL     string        `koanf:"base_url"     validate:"required,url"`
	Name        string        `koanf:"name"         validate:"required"`
	CacheTTL    time.Duration `koanf:"cache_ttl"    validate:"required,min=1s"`
	CacheSize   int           `koanf:"cache_size"   validate:"required,min=1,max=1000"`
	DedupWindow int           `koanf:"dedup_window" validate:"min=0,max=1000"`
	MaxAttempts int           `koanf:"max_attempts" validate:"required,min=1,max=100"`
	Disabled    bool          `koanf:"disabled"`
}

// WeatherServiceConfig configures the weather provider.
// An empty APIKey disables weather context.
type WeatherServiceConfig struct {
	BaseURL  string        `koanf:"base_url" validate:"required_with=APIKey,omitempty,url"`
	Name     string        `koanf:"name"`
	APIKey   string        `koanf:"api_key"`
	Location string        `koanf:"location" validate:"required_with=APIKey"`
	Timeout  time.Duration `koanf:"timeout"  validate:"omitempty,min=100ms"`
}

// Enabled reports whether a weather provider should be built.
func (w WeatherServiceConfig) Enabled() bool { return w.APIKey != "" }

// TranslateServiceConfig configures the translation provider.
// An empty BaseURL disables remote translation.
type TranslateServiceConfig struct {
	BaseURL  string        `koanf:"base_url"  validate:"omitempty,url"`
	Name     string        `koanf:"name"`
	APIKey   string        `koanf:"api_key"`
	CacheTTL time.Duration `koanf:"cache_ttl" validate:"omitempty,min=1s"`
}

// Enabled reports whether a translation provider should be built.
func (t TranslateServiceConfig) Enabled() bool { return t.BaseURL != "" }

// CatalogConfig configures the local fallback catalog overlay.
type CatalogConfig struct {
	OverlayPath string `koanf:"overlay_path"`
	Watch       bool   `koanf:"watch"`
}

// StorageConfig locates the history and favorites files.
type StorageConfig struct {
	HistoryPath   string `koanf:"history_path"   validate:"required"`
	FavoritesPath string `koanf:"favorites_path" validate:"required"`
}

// RenderConfig holds image defaults.
type RenderConfig struct {
	DefaultStyle  string `koanf:"default_style"  validate:"required,oneof=minimal modern elegant"`
	DefaultFormat string `koanf:"default_format" validate:"required,oneof=png jpeg webp"`
	DefaultPreset string `koanf:"default_preset" validate:"required"`
	Timezone      string `koanf:"timezone"       validate:"required"`
	PreferDark    bool   `koanf:"prefer_dark"`
}

// Location resolves Timezone, falling back to UTC.
func (r RenderConfig) Location() *time.Location {
	loc, err := time.LoadLocation(r.Timezone)
	if err != nil {
		return time.UTC
	}

	return loc
}

// ThemeConfig tunes auto theme selection.
type ThemeConfig struct {
	// MinScore below which auto selection picks pseudo-randomly. Zero disables it.
	MinScore int `koanf:"min_score" validate:"min=0,max=15"`
}

// defaults returns the default configuration values.
func defaults() map[string]any {
	return map[string]any{
		"app.name":        "quote-studio",
		"app.version":     "dev",
		"app.environment": "local",

		"server.port":             DefaultServerPort,
		"server.host":             "0.0.0.0",
		"server.read_timeout":     "30s",
		"server.write_timeout":    "30s",
		"server.idle_timeout":     "120s",
		"server.shutdown_timeout": "10s",
		"server.max_request_size": DefaultMaxRequestSize,

		"log.level":            "info",
		"log.format":           "json",
		"log.file.enabled":     false,
		"log.file.path":        "./logs/quote-studio.log",
		"log.file.max_size":    DefaultLogFileMaxSizeMB,
		"log.file.max_backups": DefaultLogFileMaxBackups,
		"log.file.max_age":     DefaultLogFileMaxAgeDays,
		"log.file.compress":    true,

		"telemetry.enabled":       false,
		"telemetry.endpoint":      "",
		"telemetry.service_name":  "quote-studio",
		"telemetry.sampling_rate": 1.0,

		"auth.enabled":        false,
		"auth.roles_header":   "X-User-Roles",
		"auth.subject_header": "X-User-ID",
		"auth.admin_role":     "admin",

		"client.timeout":                           "5s",
		"client.retry.max_attempts":                DefaultClientRetryMaxAttempts,
		"client.retry.initial_interval":            "100ms",
		"client.retry.max_interval":                "2s",
		"client.retry.multiplier":                  DefaultClientRetryMultiplier,
		"client.retry.jitter_factor":               DefaultClientRetryJitterFactor,
		"client.circuit_breaker.max_failures":      DefaultClientCircuitMaxFailures,
		"client.circuit_breaker.timeout":           "30s",
		"client.circuit_breaker.half_open_limit":   DefaultClientCircuitHalfOpenLimit,
		"client.transport.max_idle_conns":          DefaultTransportMaxIdleConns,
		"client.transport.max_idle_conns_per_host": DefaultTransportMaxIdleConnsPerHost,
		"client.transport.idle_conn_timeout":       "90s",

		"services.quotes.base_url":     "https://zenquotes.io",
		"services.quotes.name":         "zenquotes",
		"services.quotes.cache_ttl":    "5m",
		"services.quotes.cache_size":   DefaultQuoteCacheSize,
		"services.quotes.dedup_window": DefaultQuoteDedupWindow,
		"services.quotes.max_attempts": DefaultQuoteMaxAttempts,
		"services.quotes.disabled":     false,

		"services.weather.base_url": "https://api.openweathermap.org",
		"services.weather.name":     "openweathermap",
		"services.weather.api_key":  "",
		"services.weather.location": "Paris",
		"services.weather.timeout":  "3s",

		"services.translate.base_url":  "",
		"services.translate.name":      "libretranslate",
		"services.translate.api_key":   "",
		"services.translate.cache_ttl": "30m",

		"catalog.overlay_path": "",
		"catalog.watch":        false,

		"storage.history_path":   "data/history.jsonl",
		"storage.favorites_path": "data/favorites.json",

		"render.default_style":  "minimal",
		"render.default_format": "png",
		"render.default_preset": "square",
		"render.timezone":       "Local",
		"render.prefer_dark":    false,

		"theme.min_score": 0,

		"features.weather":     true,
		"features.translation": true,
		"features.sentiment":   true,
		"features.history":     true,
	}
}

// Options control where Load looks for files.
type Options struct {
	// Profile selects configs/<profile>.yaml.
	Profile string
	// Dir holds base.yaml and profile files. Defaults to "configs".
	Dir string
	// EnvFile is a dotenv file loaded into the process environment before
	// APP_ variables are read. Missing files are ignored. Defaults to ".env".
	EnvFile string
}

// Load loads configuration with the following precedence (highest to lowest):
//  1. Environment variables (APP_ prefix), including those from .env
//  2. Profile config file (configs/{profile}.yaml)
//  3. Base config file (configs/base.yaml)
//  4. Default values
func Load(profile string) (*Config, error) {
	return LoadWithOptions(Options{Profile: profile})
}

// LoadWithOptions is Load with explicit file locations.
func LoadWithOptions(opts Options) (*Config, error) {
	if opts.Dir == "" {
		opts.Dir = "configs"
	}

	if opts.EnvFile == "" {
		opts.EnvFile = ".env"
	}

	k := koanf.New(".")
	defs := defaults()

	err := k.Load(confmap.Provider(defs, "."), nil)
	if err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	err = loadFileIfExists(k, filepath.Join(opts.Dir, "base.yaml"))
	if err != nil {
		return nil, fmt.Errorf("loading base config: %w", err)
	}

	if opts.Profile != "" {
		err := loadFileIfExists(k, filepath.Join(opts.Dir, opts.Profile+".yaml"))
		if err != nil {
			return nil, fmt.Errorf("loading profile config %q: %w", opts.Profile, err)
		}
	}

	err = loadDotEnv(opts.EnvFile)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", opts.EnvFile, err)
	}

	err = k.Load(env.Provider("APP_", ".", envKeyMapper(defs)), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config

	err = k.Unmarshal("", &cfg)
	if err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}

// envKeyMapper turns APP_SERVICES_WEATHER_API_KEY into services.weather.api_key.
// Known keys are matched against the defaults so underscores inside a
// segment survive; unknown keys split on every underscore.
func envKeyMapper(defs map[string]any) func(string) string {
	known := make(map[string]string, len(defs))
	for key := range defs {
		known[strings.ReplaceAll(key, ".", "_")] = key
	}

	return func(s string) string {
		flat := strings.ToLower(strings.TrimPrefix(s, "APP_"))
		if key, ok := known[flat]; ok {
			return key
		}

		return strings.ReplaceAll(flat, "_", ".")
	}
}

// loadFileIfExists loads a YAML config file if it exists.
func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return k.Load(file.Provider(path), yaml.Parser())
}

// loadDotEnv loads a dotenv file without overriding variables already set.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return godotenv.Load(path)
}
