//go:build integration

package integration

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quote-studio/internal/adapters/catalog"
	"github.com/jsamuelsen/quote-studio/internal/adapters/clients"
	"github.com/jsamuelsen/quote-studio/internal/adapters/clients/acl"
	"github.com/jsamuelsen/quote-studio/internal/adapters/flags"
	"github.com/jsamuelsen/quote-studio/internal/adapters/sentiment"
	"github.com/jsamuelsen/quote-studio/internal/adapters/storage"
	"github.com/jsamuelsen/quote-studio/internal/app"
	"github.com/jsamuelsen/quote-studio/internal/domain"
	"github.com/jsamuelsen/quote-studio/internal/platform/config"
	"github.com/jsamuelsen/quote-studio/internal/platform/telemetry"
	"github.com/jsamuelsen/quote-studio/internal/render"
)

const (
	zenBatch = `[
		{"q":"Love all, trust a few, do wrong to none.","a":"William Shakespeare","h":""},
		{"q":"Where there is love there is life.","a":"Mahatma Gandhi","h":""},
		{"q":"Love is composed of a single soul inhabiting two bodies.","a":"Aristotle","h":""}
	]`
	weatherClear = `{"weather":[{"main":"Clear","description":"clear sky"}],"main":{"temp":21.5},"name":"Paris","dt":1760000000}`
	translated   = `{"translatedText":"Aimez tout le monde, fiez-vous à peu, ne faites de tort à personne."}`
)

// upstream fakes one remote provider. It can be switched down at runtime
// and counts the requests it receives.
type upstream struct {
	server *httptest.Server
	calls  atomic.Int32
	down   atomic.Bool
	delay  time.Duration
}

func newUpstream(t *testing.T, body string) *upstream {
	t.Helper()

	u := &upstream{}
	u.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.calls.Add(1)

		if u.delay > 0 {
			select {
			case <-time.After(u.delay):
			case <-r.Context().Done():
				return
			}
		}

		w.Header().Set("Content-Type", "application/json")

		if u.down.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = io.WriteString(w, `{"error":"maintenance"}`)

			return
		}

		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(u.server.Close)

	return u
}

// pipeline is the generation pipeline wired to fake providers and
// temp-dir stores.
type pipeline struct {
	quotes    *upstream
	weather   *upstream
	translate *upstream

	generator *app.Generator
	history   *app.HistoryService
	favorites *app.FavoritesService
}

type pipelineOptions struct {
	weatherTimeout time.Duration
	weatherDelay   time.Duration
}

func newPipeline(t *testing.T, opts pipelineOptions) *pipeline {
	t.Helper()

	p := &pipeline{
		quotes:    newUpstream(t, zenBatch),
		weather:   newUpstream(t, weatherClear),
		translate: newUpstream(t, translated),
	}
	p.weather.delay = opts.weatherDelay

	dir := t.TempDir()

	metrics, err := telemetry.NewPipelineMetrics()
	require.NoError(t, err)

	cat, err := catalog.New(catalog.Options{})
	require.NoError(t, err)

	analyzer, err := sentiment.New()
	require.NoError(t, err)

	historyStore, err := storage.NewHistory(filepath.Join(dir, "history.jsonl"), nil)
	require.NoError(t, err)

	favoritesStore, err := storage.NewFavorites(filepath.Join(dir, "favorites.json"), nil)
	require.NoError(t, err)

	composer, err := render.New(render.Options{Metrics: metrics})
	require.NoError(t, err)

	featureFlags := flags.New(nil)
	exporter := storage.NewExporter()

	p.history = app.NewHistoryService(app.HistoryServiceConfig{Store: historyStore, Exporter: exporter})
	p.favorites = app.NewFavoritesService(app.FavoritesServiceConfig{Store: favoritesStore, Exporter: exporter})

	p.generator = app.NewGenerator(app.GeneratorConfig{
		Resolver: app.NewContextResolver(app.ContextResolverConfig{
			Weather: acl.NewOpenWeather(newClient(t, "openweathermap", p.weather.server.URL), "key", "Paris", nil),
			Flags:   featureFlags,
			Timeout: opts.weatherTimeout,
		}),
		Selector: app.NewThemeSelector(0, nil),
		Quotes: app.NewQuoteService(app.QuoteServiceConfig{
			Provider: acl.NewZenQuotes(newClient(t, "zenquotes", p.quotes.server.URL), nil),
			Catalog:  cat,
			Metrics:  metrics,
			CacheTTL: time.Nanosecond,
		}),
		Sentiment: analyzer,
		Translator: app.NewTranslationService(app.TranslationServiceConfig{
			Provider: acl.NewLibreTranslate(newClient(t, "libretranslate", p.translate.server.URL), "", nil),
			Flags:    featureFlags,
			Metrics:  metrics,
		}),
		Renderer:  composer,
		History:   p.history,
		Favorites: p.favorites,
		Flags:     featureFlags,
		Metrics:   metrics,
	})

	return p
}

// allDown makes every provider answer 503.
func (p *pipeline) allDown() {
	p.quotes.down.Store(true)
	p.weather.down.Store(true)
	p.translate.down.Store(true)
}

func newClient(t *testing.T, name, baseURL string) *clients.Client {
	t.Helper()

	c, err := clients.New(&clients.Config{
		ServiceName: name,
		BaseURL:     baseURL,
		Timeout:     2 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     2,
			InitialInterval: 5 * time.Millisecond,
			MaxInterval:     20 * time.Millisecond,
			Multiplier:      2.0,
		},
		Circuit: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       time.Second,
			HalfOpenLimit: 1,
		},
	})
	require.NoError(t, err)

	return c
}

func TestPipeline_RemoteProviders(t *testing.T) {
	p := newPipeline(t, pipelineOptions{})

	result, err := p.generator.Generate(context.Background(), app.GenerateRequest{
		Theme:    "love",
		Language: "fr",
		Format:   "jpeg",
		Preset:   "instagram_story",
	})
	require.NoError(t, err)

	styled := result.Styled
	assert.Equal(t, domain.ThemeLove, styled.Quote.Theme)
	assert.Equal(t, domain.SourceRemote, styled.Quote.Source)
	assert.Equal(t, domain.LanguageEnglish, styled.Quote.Language)

	assert.Equal(t, domain.WeatherClear, styled.Context.Weather)
	assert.Equal(t, "Paris", styled.Context.Location)
	assert.Equal(t, int32(1), p.weather.calls.Load(), "weather is read once per generation")

	require.NotNil(t, styled.Translation)
	assert.Equal(t, domain.LanguageFrench, styled.DisplayLanguage())
	assert.Contains(t, styled.DisplayText(), "Aimez tout le monde")

	require.NotNil(t, styled.Sentiment)
	assert.Empty(t, result.Notices)

	assert.Equal(t, "image/jpeg", result.ContentType)
	assert.Equal(t, "instagram_story", result.Image.Preset)
	assert.NotEmpty(t, result.Image.Data)
	assert.NotEmpty(t, result.HistoryID)
}

func TestPipeline_ProvidersDown(t *testing.T) {
	p := newPipeline(t, pipelineOptions{})
	p.allDown()

	result, err := p.generator.Generate(context.Background(), app.GenerateRequest{
		Theme:    "courage",
		Favorite: true,
	})
	require.NoError(t, err, "provider outages never fail a generation")

	styled := result.Styled
	assert.Equal(t, domain.ThemeCourage, styled.Quote.Theme)
	assert.Equal(t, domain.SourceLocal, styled.Quote.Source)
	assert.Equal(t, domain.WeatherUnknown, styled.Context.Weather)

	assert.NotEmpty(t, result.Image.Data)
	assert.NotEmpty(t, result.HistoryID)
	assert.Equal(t, 1, result.FavoriteID)

	assert.Positive(t, p.quotes.calls.Load())
	assert.Positive(t, p.weather.calls.Load())
}

func TestPipeline_TranslationDown(t *testing.T) {
	p := newPipeline(t, pipelineOptions{})
	p.translate.down.Store(true)

	result, err := p.generator.Generate(context.Background(), app.GenerateRequest{Theme: "love", Language: "fr"})
	require.NoError(t, err)

	styled := result.Styled
	assert.Equal(t, domain.SourceRemote, styled.Quote.Source)
	assert.Contains(t, result.Notices, app.NoticeTranslationUnavailable)
	assert.Equal(t, styled.Quote.Text, styled.DisplayText())
	assert.Equal(t, domain.LanguageEnglish, styled.DisplayLanguage())
	assert.Positive(t, p.translate.calls.Load())
}

func TestPipeline_Recovery(t *testing.T) {
	p := newPipeline(t, pipelineOptions{})
	p.allDown()

	first, err := p.generator.Generate(context.Background(), app.GenerateRequest{Theme: "love"})
	require.NoError(t, err)
	assert.Equal(t, domain.SourceLocal, first.Styled.Quote.Source)

	p.quotes.down.Store(false)

	second, err := p.generator.Generate(context.Background(), app.GenerateRequest{Theme: "love"})
	require.NoError(t, err)
	assert.Equal(t, domain.SourceRemote, second.Styled.Quote.Source)
}

func TestPipeline_SlowWeatherIsSkipped(t *testing.T) {
	p := newPipeline(t, pipelineOptions{
		weatherTimeout: 50 * time.Millisecond,
		weatherDelay:   time.Second,
	})

	start := time.Now()

	result, err := p.generator.Generate(context.Background(), app.GenerateRequest{Theme: "auto"})
	require.NoError(t, err)

	assert.Less(t, time.Since(start), time.Second, "generation does not wait for the weather")
	assert.Equal(t, domain.WeatherUnknown, result.Styled.Context.Weather)
	assert.True(t, result.Styled.Quote.Theme.Concrete())
}

func TestPipeline_ConcurrentGenerations(t *testing.T) {
	p := newPipeline(t, pipelineOptions{})

	const workers = 8

	var (
		wg     sync.WaitGroup
		failed atomic.Int32
	)

	for i := range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			theme := "love"
			if i%2 == 1 {
				theme = "wisdom"
			}

			if _, err := p.generator.Generate(context.Background(), app.GenerateRequest{Theme: theme, Favorite: true}); err != nil {
				failed.Add(1)
			}
		}()
	}

	wg.Wait()

	require.Zero(t, failed.Load())

	stats, err := p.history.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, workers, stats.Total)
	assert.Equal(t, workers/2, stats.ByTheme["love"])
	assert.Equal(t, workers/2, stats.ByTheme["wisdom"])

	favorites, err := p.favorites.List(context.Background())
	require.NoError(t, err)

	ids := make(map[int]bool, len(favorites))
	for _, f := range favorites {
		assert.False(t, ids[f.ID], "favorite IDs are unique")
		ids[f.ID] = true
	}
}
