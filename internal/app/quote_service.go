package app

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/jsamuelsen/quote-studio/internal/app/session"
	"github.com/jsamuelsen/quote-studio/internal/domain"
	"github.com/jsamuelsen/quote-studio/internal/platform/logging"
	"github.com/jsamuelsen/quote-studio/internal/platform/telemetry"
	"github.com/jsamuelsen/quote-studio/internal/ports"
)

// Quote cache defaults.
const (
	DefaultQuoteCacheSize   = 50
	DefaultQuoteCacheTTL    = 5 * time.Minute
	DefaultDedupWindow      = 30
	DefaultQuoteMaxAttempts = 10
)

const quoteBatchSessionKey = "quotes:batch"

// QuoteServiceConfig configures a QuoteService.
type QuoteServiceConfig struct {
	// Provider is the remote source. Nil runs offline on the catalog.
	Provider ports.QuoteProvider
	Catalog  ports.QuoteCatalog
	Metrics  *telemetry.PipelineMetrics

	CacheSize   int
	CacheTTL    time.Duration
	DedupWindow int
	MaxAttempts int

	Clock  func() time.Time
	Pick   func(n int) int
	Logger *slog.Logger
}

// QuoteCacheStats describes the remote batch cache.
type QuoteCacheStats struct {
	Size int           `json:"size"`
	Age  time.Duration `json:"age"`
}

// QuoteService returns one quote for a theme. It prefers the remote provider
// through a short-lived batch cache and falls back to the local catalog, so
// it never comes back empty-handed.
type QuoteService struct {
	provider ports.QuoteProvider
	catalog  ports.QuoteCatalog
	metrics  *telemetry.PipelineMetrics

	cacheSize   int
	cacheTTL    time.Duration
	dedupWindow int
	maxAttempts int

	clock  func() time.Time
	pick   func(n int) int
	logger *slog.Logger

	mu        sync.Mutex
	cache     []domain.Quote
	fetchedAt time.Time
	recent    []string
}

// NewQuoteService creates a quote service. It panics without a catalog,
// since the catalog is what makes the service total.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.Catalog == nil {
		panic("app: QuoteService requires a catalog")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}

	pick := cfg.Pick
	if pick == nil {
		pick = rand.IntN
	}

	return &QuoteService{
		provider:    cfg.Provider,
		catalog:     cfg.Catalog,
		metrics:     cfg.Metrics,
		cacheSize:   orDefault(cfg.CacheSize, DefaultQuoteCacheSize),
		cacheTTL:    orDefault(cfg.CacheTTL, DefaultQuoteCacheTTL),
		dedupWindow: max(0, cfg.DedupWindow),
		maxAttempts: orDefault(cfg.MaxAttempts, DefaultQuoteMaxAttempts),
		clock:       clock,
		pick:        pick,
		logger:      logger.With(slog.String("component", "app.QuoteService")),
	}
}

// Quote returns a quote for theme, preferring lang when the local catalog
// has to answer. The only possible error is a fatal empty catalog theme.
func (s *QuoteService) Quote(ctx context.Context, theme domain.Theme, lang domain.Language) (domain.Quote, error) {
	logger := logging.FromContext(ctx)
	if logger == nil {
		logger = s.logger
	}

	logger = logger.With(slog.String("theme", string(theme)))

	if !theme.Concrete() {
		return domain.Quote{}, domain.NewValidationErrorWithValue("theme", "must be concrete", theme)
	}

	if q, ok := s.fromCache(theme, true); ok {
		logger.DebugContext(ctx, "quote served from cache")
		return q, nil
	}

	reason := s.refresh(ctx, logger)
	if reason == "" {
		if q, ok := s.fromCache(theme, false); ok {
			return q.WithSource(domain.SourceRemote), nil
		}

		reason = "no themed match"
	}

	if q, ok := s.fromCache(theme, false); ok {
		logger.InfoContext(ctx, "remote unavailable, serving stale cache", slog.String("reason", reason))
		return q, nil
	}

	s.metrics.Fallback(ctx, "quote")
	logger.InfoContext(ctx, "falling back to local catalog", slog.String("reason", reason))

	return s.fromCatalog(theme, lang)
}

// CacheStats reports the cache size and the age of the last batch.
func (s *QuoteService) CacheStats() QuoteCacheStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := QuoteCacheStats{Size: len(s.cache)}
	if !s.fetchedAt.IsZero() {
		stats.Age = s.clock().Sub(s.fetchedAt)
	}

	return stats
}

// refresh fetches a batch into the cache. It returns the reason the remote
// path failed, or "" on success.
func (s *QuoteService) refresh(ctx context.Context, logger *slog.Logger) string {
	if s.provider == nil {
		return "offline"
	}

	batch, err := session.FetchCtx(ctx, quoteBatchSessionKey, s.provider.FetchBatch)
	if err != nil {
		logger.WarnContext(ctx, "quote provider failed", slog.Any("error", err))

		if errors.Is(err, domain.ErrUnavailable) {
			return "unavailable"
		}

		return "error"
	}

	if len(batch) == 0 {
		return "empty batch"
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	known := make(map[string]bool, len(s.cache))
	for _, q := range s.cache {
		known[q.ID] = true
	}

	for _, q := range batch {
		if !known[q.ID] {
			s.cache = append(s.cache, q)
			known[q.ID] = true
		}
	}

	if over := len(s.cache) - s.cacheSize; over > 0 {
		s.cache = append([]domain.Quote(nil), s.cache[over:]...)
	}

	s.fetchedAt = s.clock()

	return ""
}

// fromCache draws a themed, not recently served quote from the cache.
// With freshOnly set, an expired cache yields nothing.
func (s *QuoteService) fromCache(theme domain.Theme, freshOnly bool) (domain.Quote, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.cache) == 0 {
		return domain.Quote{}, false
	}

	if freshOnly && s.clock().Sub(s.fetchedAt) >= s.cacheTTL {
		return domain.Quote{}, false
	}

	var pool []domain.Quote

	for _, q := range s.cache {
		if q.Theme == theme || q.HasTag(string(theme)) {
			pool = append(pool, q)
		}
	}

	q, ok := s.draw(pool, false)
	if !ok {
		return domain.Quote{}, false
	}

	return q.WithTheme(theme).WithSource(domain.SourceCache), true
}

func (s *QuoteService) fromCatalog(theme domain.Theme, lang domain.Language) (domain.Quote, error) {
	pool := s.catalog.ByTheme(theme)
	if len(pool) == 0 {
		return domain.Quote{}, domain.NewConfigurationError(theme, "catalog")
	}

	var preferred []domain.Quote

	for _, q := range pool {
		if q.Language == lang {
			preferred = append(preferred, q)
		}
	}

	if len(preferred) > 0 {
		pool = preferred
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	q, _ := s.draw(pool, true)

	return q.WithTheme(theme).WithSource(domain.SourceLocal), nil
}

// draw picks up to maxAttempts random quotes from pool until one is outside
// the dedup window. With accept set, the last draw is returned even when it
// was served recently. The caller holds s.mu.
func (s *QuoteService) draw(pool []domain.Quote, accept bool) (domain.Quote, bool) {
	if len(pool) == 0 {
		return domain.Quote{}, false
	}

	var q domain.Quote

	for range s.maxAttempts {
		q = pool[s.index(len(pool))]
		if !s.servedRecently(q.ID) {
			s.remember(q.ID)
			return q, true
		}
	}

	if accept {
		s.remember(q.ID)
		return q, true
	}

	return domain.Quote{}, false
}

func (s *QuoteService) index(n int) int {
	i := s.pick(n)
	if i < 0 || i >= n {
		return 0
	}

	return i
}

func (s *QuoteService) servedRecently(id string) bool {
	for _, r := range s.recent {
		if r == id {
			return true
		}
	}

	return false
}

func (s *QuoteService) remember(id string) {
	if s.dedupWindow == 0 {
		return
	}

	s.recent = append(s.recent, id)
	if over := len(s.recent) - s.dedupWindow; over > 0 {
		s.recent = s.recent[over:]
	}
}

func orDefault[T int | time.Duration](v, def T) T {
	if v <= 0 {
		return def
	}

	return v
}
