package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jsamuelsen/quote-studio/internal/adapters/catalog"
	"github.com/jsamuelsen/quote-studio/internal/adapters/clients"
	"github.com/jsamuelsen/quote-studio/internal/adapters/clients/acl"
	"github.com/jsamuelsen/quote-studio/internal/adapters/flags"
	"github.com/jsamuelsen/quote-studio/internal/adapters/sentiment"
	"github.com/jsamuelsen/quote-studio/internal/adapters/storage"
	"github.com/jsamuelsen/quote-studio/internal/app"
	"github.com/jsamuelsen/quote-studio/internal/domain"
	"github.com/jsamuelsen/quote-studio/internal/platform/config"
	"github.com/jsamuelsen/quote-studio/internal/platform/logging"
	"github.com/jsamuelsen/quote-studio/internal/platform/telemetry"
	"github.com/jsamuelsen/quote-studio/internal/ports"
	"github.com/jsamuelsen/quote-studio/internal/render"
)

// studioOptions select the configuration and where logs go.
type studioOptions struct {
	Profile   string
	ConfigDir string
	Verbose   bool
	// LogOutput receives log records. The server logs to stdout, commands
	// to stderr.
	LogOutput io.Writer
}

// Studio bundles the long-lived services built at startup.
type Studio struct {
	Config *config.Config
	Logger *slog.Logger

	Catalog   *catalog.Catalog
	Health    ports.HealthRegistry
	Resolver  *app.ContextResolver
	Selector  *app.ThemeSelector
	Quotes    *app.QuoteService
	History   *app.HistoryService
	Favorites *app.FavoritesService
	Generator *app.Generator

	telemetry *telemetry.Provider
}

// openStudio loads the configuration and wires every pipeline stage. Remote
// providers are only built when configured; without them the pipeline runs
// on local data.
func openStudio(ctx context.Context, opts studioOptions) (*Studio, error) {
	cfg, err := config.LoadWithOptions(config.Options{Profile: opts.Profile, Dir: opts.ConfigDir})
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logCfg := logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	}
	if opts.Verbose {
		logCfg.Level = "debug"
	}

	logger := logging.NewWithWriter(&logCfg, opts.LogOutput)
	slog.SetDefault(logger)

	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing telemetry: %w", err)
	}

	s := &Studio{Config: cfg, Logger: logger, telemetry: telProvider}

	if err := s.wire(); err != nil {
		_ = telProvider.Shutdown(ctx)
		return nil, err
	}

	return s, nil
}

func (s *Studio) wire() error {
	cfg, logger := s.Config, s.Logger

	metrics, err := telemetry.NewPipelineMetrics()
	if err != nil {
		return fmt.Errorf("creating pipeline metrics: %w", err)
	}

	// An empty theme in the fallback table is the one fatal configuration error.
	s.Catalog, err = catalog.New(catalog.Options{OverlayPath: cfg.Catalog.OverlayPath, Logger: logger})
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	analyzer, err := sentiment.New()
	if err != nil {
		return fmt.Errorf("loading sentiment lexicon: %w", err)
	}

	historyStore, err := storage.NewHistory(cfg.Storage.HistoryPath, logger)
	if err != nil {
		return fmt.Errorf("opening history: %w", err)
	}

	favoritesStore, err := storage.NewFavorites(cfg.Storage.FavoritesPath, logger)
	if err != nil {
		return fmt.Errorf("opening favorites: %w", err)
	}

	s.Health = ports.NewHealthRegistry()
	checkers := []ports.HealthChecker{s.Catalog, historyStore, favoritesStore}

	providers, err := newProviders(cfg, logger)
	if err != nil {
		return err
	}

	checkers = append(checkers, providers.checkers...)

	for _, c := range checkers {
		if err := s.Health.Register(c); err != nil {
			return fmt.Errorf("registering %s health check: %w", c.Name(), err)
		}
	}

	style, err := domain.ParseStyle(cfg.Render.DefaultStyle)
	if err != nil {
		return fmt.Errorf("render.default_style: %w", err)
	}

	format, err := domain.ParseExportFormat(cfg.Render.DefaultFormat)
	if err != nil {
		return fmt.Errorf("render.default_format: %w", err)
	}

	if _, err := domain.LookupPreset(cfg.Render.DefaultPreset); err != nil {
		return fmt.Errorf("render.default_preset: %w", err)
	}

	composer, err := render.New(render.Options{Metrics: metrics, Logger: logger})
	if err != nil {
		return fmt.Errorf("loading fonts: %w", err)
	}

	featureFlags := flags.New(cfg.Features)
	exporter := storage.NewExporter()
	loc := cfg.Render.Location()

	s.Resolver = app.NewContextResolver(app.ContextResolverConfig{
		Weather:  providers.weather,
		Flags:    featureFlags,
		Location: loc,
		Timeout:  cfg.Services.Weather.Timeout,
		Logger:   logger,
	})
	s.Selector = app.NewThemeSelector(cfg.Theme.MinScore, nil)
	s.Quotes = app.NewQuoteService(app.QuoteServiceConfig{
		Provider:    providers.quotes,
		Catalog:     s.Catalog,
		Metrics:     metrics,
		CacheSize:   cfg.Services.Quotes.CacheSize,
		CacheTTL:    cfg.Services.Quotes.CacheTTL,
		DedupWindow: cfg.Services.Quotes.DedupWindow,
		MaxAttempts: cfg.Services.Quotes.MaxAttempts,
		Logger:      logger,
	})
	s.History = app.NewHistoryService(app.HistoryServiceConfig{
		Store:    historyStore,
		Exporter: exporter,
		Location: loc,
		Logger:   logger,
	})
	s.Favorites = app.NewFavoritesService(app.FavoritesServiceConfig{
		Store:    favoritesStore,
		Exporter: exporter,
		Logger:   logger,
	})
	s.Generator = app.NewGenerator(app.GeneratorConfig{
		Resolver:  s.Resolver,
		Selector:  s.Selector,
		Quotes:    s.Quotes,
		Sentiment: analyzer,
		Translator: app.NewTranslationService(app.TranslationServiceConfig{
			Provider: providers.translate,
			Flags:    featureFlags,
			Metrics:  metrics,
			CacheTTL: cfg.Services.Translate.CacheTTL,
			Logger:   logger,
		}),
		Renderer:  composer,
		History:   s.History,
		Favorites: s.Favorites,
		Flags:     featureFlags,
		Metrics:   metrics,
		Defaults: app.GenerateDefaults{
			Style:      style,
			Format:     format,
			Preset:     cfg.Render.DefaultPreset,
			PreferDark: cfg.Render.PreferDark,
		},
		Logger: logger,
	})

	return nil
}

// Close flushes telemetry.
func (s *Studio) Close(ctx context.Context) error {
	if s.telemetry == nil {
		return nil
	}

	return s.telemetry.Shutdown(ctx)
}

// remoteProviders holds the configured providers. Interface fields stay nil,
// never typed-nil, when a provider is disabled.
type remoteProviders struct {
	quotes    ports.QuoteProvider
	weather   ports.WeatherProvider
	translate ports.TranslationProvider
	checkers  []ports.HealthChecker
}

func newProviders(cfg *config.Config, logger *slog.Logger) (remoteProviders, error) {
	var p remoteProviders

	newClient := func(baseURL, name string) (*clients.Client, error) {
		c, err := clients.New(&clients.Config{
			BaseURL:     baseURL,
			ServiceName: name,
			Timeout:     cfg.Client.Timeout,
			Retry:       cfg.Client.Retry,
			Circuit:     cfg.Client.CircuitBreaker,
			Transport:   cfg.Client.Transport,
			Logger:      logger,
		})
		if err != nil {
			return nil, fmt.Errorf("creating %s client: %w", name, err)
		}

		return c, nil
	}

	if q := cfg.Services.Quotes; !q.Disabled {
		c, err := newClient(q.BaseURL, q.Name)
		if err != nil {
			return p, err
		}

		zen := acl.NewZenQuotes(c, logger)
		p.quotes = zen
		p.checkers = append(p.checkers, zen)
	}

	if w := cfg.Services.Weather; w.Enabled() {
		c, err := newClient(w.BaseURL, orName(w.Name, "weather"))
		if err != nil {
			return p, err
		}

		owm := acl.NewOpenWeather(c, w.APIKey, w.Location, logger)
		p.weather = owm
		p.checkers = append(p.checkers, owm)
	}

	if t := cfg.Services.Translate; t.Enabled() {
		c, err := newClient(t.BaseURL, orName(t.Name, "translate"))
		if err != nil {
			return p, err
		}

		lt := acl.NewLibreTranslate(c, t.APIKey, logger)
		p.translate = lt
		p.checkers = append(p.checkers, lt)
	}

	return p, nil
}

func orName(name, fallback string) string {
	if name == "" {
		return fallback
	}

	return name
}
