package handlers

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quote-studio/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quote-studio/internal/adapters/sentiment"
	"github.com/jsamuelsen/quote-studio/internal/adapters/storage"
	"github.com/jsamuelsen/quote-studio/internal/app"
	"github.com/jsamuelsen/quote-studio/internal/domain"
	"github.com/jsamuelsen/quote-studio/internal/mocks"
	"github.com/jsamuelsen/quote-studio/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// monday9am is the fixed clock of every studio: no weather means auto
// resolves to motivation.
var monday9am = time.Date(2024, time.March, 4, 9, 0, 0, 0, time.UTC)

var testPalette = domain.Palette{Name: "Dawn", Background: "#FFF3E0", Text: "#3E2723", Accent: "#FF7043"}

// studio is a fully wired API with file-backed stores in a temp dir and a
// mocked catalog, renderer and weather provider.
type studio struct {
	catalog  *mocks.MockQuoteCatalog
	renderer *mocks.MockImageRenderer
	weather  *mocks.MockWeatherProvider

	history   *app.HistoryService
	favorites *app.FavoritesService
	generator *app.Generator
	engine    *gin.Engine
}

type studioOption func(*studioConfig)

type studioConfig struct {
	withWeather bool
	renderErr   error
}

func withWeather() studioOption { return func(c *studioConfig) { c.withWeather = true } }

func withRenderError(err error) studioOption { return func(c *studioConfig) { c.renderErr = err } }

func newStudio(t *testing.T, opts ...studioOption) *studio {
	t.Helper()

	var cfg studioConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clock := func() time.Time { return monday9am }
	dir := t.TempDir()

	historyStore, err := storage.NewHistory(filepath.Join(dir, "history.jsonl"), logger)
	require.NoError(t, err)

	favoritesStore, err := storage.NewFavorites(filepath.Join(dir, "favorites.json"), logger)
	require.NoError(t, err)

	analyzer, err := sentiment.New()
	require.NoError(t, err)

	s := &studio{
		catalog:  mocks.NewMockQuoteCatalog(t),
		renderer: mocks.NewMockImageRenderer(t),
		weather:  mocks.NewMockWeatherProvider(t),
	}

	s.catalog.EXPECT().ByTheme(mock.Anything).RunAndReturn(func(theme domain.Theme) []domain.Quote {
		return []domain.Quote{themeQuote(t, theme)}
	}).Maybe()

	s.renderer.EXPECT().PickPalette(mock.Anything, mock.Anything).Return(testPalette).Maybe()
	s.renderer.EXPECT().Render(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, req ports.RenderRequest) (ports.RenderedImage, error) {
			if cfg.renderErr != nil {
				return ports.RenderedImage{}, cfg.renderErr
			}

			return ports.RenderedImage{
				Data:        []byte("image:" + req.Preset.Name),
				ContentType: req.Format.ContentType(),
				Format:      req.Format,
				Preset:      req.Preset.Name,
				Width:       req.Preset.Width,
				Height:      req.Preset.Height,
			}, nil
		}).Maybe()

	var weather ports.WeatherProvider
	if cfg.withWeather {
		weather = s.weather
	}

	resolver := app.NewContextResolver(app.ContextResolverConfig{Weather: weather, Clock: clock, Logger: logger})
	selector := app.NewThemeSelector(0, func(int) int { return 0 })

	s.history = app.NewHistoryService(app.HistoryServiceConfig{
		Store:    historyStore,
		Exporter: storage.NewExporter(),
		Clock:    clock,
		Logger:   logger,
	})
	s.favorites = app.NewFavoritesService(app.FavoritesServiceConfig{
		Store:    favoritesStore,
		Exporter: storage.NewExporter(),
		Logger:   logger,
	})
	s.generator = app.NewGenerator(app.GeneratorConfig{
		Resolver: resolver,
		Selector: selector,
		Quotes: app.NewQuoteService(app.QuoteServiceConfig{
			Catalog: s.catalog,
			Clock:   clock,
			Pick:    func(int) int { return 0 },
			Logger:  logger,
		}),
		Sentiment: analyzer,
		Renderer:  s.renderer,
		History:   s.history,
		Favorites: s.favorites,
		Logger:    logger,
	})

	s.engine = gin.New()
	api := s.engine.Group("/api/v1", middleware.Session())

	NewQuoteHandler(s.generator).RegisterQuoteRoutes(api)
	NewContextHandler(resolver, selector).RegisterContextRoutes(api)

	historyHandler := NewHistoryHandler(s.history, time.UTC)
	historyHandler.RegisterHistoryRoutes(api)
	api.DELETE("/history", historyHandler.Clear)

	NewFavoritesHandler(s.favorites).RegisterFavoritesRoutes(api)
	api.GET("/stats", NewStatsHandler(s.history, s.favorites).Overview)

	return s
}

// themeQuote is the single catalog quote served for theme.
func themeQuote(t *testing.T, theme domain.Theme) domain.Quote {
	t.Helper()

	q, err := domain.NewQuote(domain.QuoteParams{
		Text:     fmt.Sprintf("Every %s story starts with one small step.", theme),
		Author:   "Test Author",
		Theme:    theme,
		Language: domain.LanguageEnglish,
	})
	require.NoError(t, err)

	return q
}

func (s *studio) do(method, target, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	return w
}

// generate runs one pipeline pass through the API and fails the test on a
// non-200 answer.
func (s *studio) generate(t *testing.T, body string) {
	t.Helper()

	w := s.do(http.MethodPost, "/api/v1/quotes/generate", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}
