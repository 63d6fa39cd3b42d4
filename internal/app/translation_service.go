package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/jsamuelsen/quote-studio/internal/domain"
	"github.com/jsamuelsen/quote-studio/internal/platform/logging"
	"github.com/jsamuelsen/quote-studio/internal/platform/telemetry"
	"github.com/jsamuelsen/quote-studio/internal/ports"
)

// Translation cache defaults.
const (
	DefaultTranslationCacheTTL = 30 * time.Minute
	maxTranslationCacheEntries = 512
)

// NoticeTranslationUnavailable is reported when a requested translation
// could not be produced.
const NoticeTranslationUnavailable = "translation unavailable"

// frenchMarkers are common French function words. Two distinct markers make
// a text French.
var frenchMarkers = map[string]bool{
	"le": true, "la": true, "les": true, "de": true, "des": true, "un": true, "une": true,
	"et": true, "est": true, "dans": true, "que": true, "pour": true, "pas": true,
}

// DetectLanguage reports fr when at least two distinct French markers occur
// as words in text, and en otherwise.
func DetectLanguage(text string) domain.Language {
	seen := make(map[string]bool)

	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})

	for _, w := range words {
		if frenchMarkers[w] {
			seen[w] = true
			if len(seen) >= 2 {
				return domain.LanguageFrench
			}
		}
	}

	return domain.LanguageEnglish
}

// TranslationServiceConfig configures a TranslationService.
type TranslationServiceConfig struct {
	// Provider may be nil when no translation endpoint is configured.
	Provider ports.TranslationProvider
	Flags    ports.FeatureFlags
	Metrics  *telemetry.PipelineMetrics
	CacheTTL time.Duration
	Clock    func() time.Time
	Logger   *slog.Logger
}

type cachedTranslation struct {
	text    string
	expires time.Time
}

// TranslationService translates quote text between English and French with
// a memo cache in front of the remote provider.
type TranslationService struct {
	provider ports.TranslationProvider
	flags    ports.FeatureFlags
	metrics  *telemetry.PipelineMetrics
	ttl      time.Duration
	clock    func() time.Time
	logger   *slog.Logger

	mu    sync.Mutex
	cache map[string]cachedTranslation
}

// NewTranslationService creates a translation service.
func NewTranslationService(cfg TranslationServiceConfig) *TranslationService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}

	return &TranslationService{
		provider: cfg.Provider,
		flags:    cfg.Flags,
		metrics:  cfg.Metrics,
		ttl:      orDefault(cfg.CacheTTL, DefaultTranslationCacheTTL),
		clock:    clock,
		logger:   logger.With(slog.String("component", "app.TranslationService")),
		cache:    make(map[string]cachedTranslation),
	}
}

// Available reports whether remote translation can be attempted.
func (s *TranslationService) Available(ctx context.Context) bool {
	if s.provider == nil {
		return false
	}

	return s.flags == nil || s.flags.IsEnabled(ctx, ports.FlagTranslation, true)
}

// Translate renders text in target. Identical languages, and French text
// headed for French, come back unchanged without a remote call. Any failure
// is reported as domain.ErrTranslationUnavailable so the caller can carry on
// with the original text.
func (s *TranslationService) Translate(
	ctx context.Context,
	text string,
	source, target domain.Language,
) (domain.Translation, error) {
	unchanged := domain.Translation{Text: text, Source: source, Target: target}

	if source == target {
		return unchanged, nil
	}

	if target == domain.LanguageFrench && DetectLanguage(text) == domain.LanguageFrench {
		return unchanged, nil
	}

	logger := logging.FromContext(ctx)
	if logger == nil {
		logger = s.logger
	}

	if !s.Available(ctx) {
		logger.DebugContext(ctx, "translation not available")
		return domain.Translation{}, domain.ErrTranslationUnavailable
	}

	key := cacheKey(text, source, target)

	if cached, ok := s.lookup(key); ok {
		return domain.Translation{Text: cached, Source: source, Target: target}, nil
	}

	translated, err := s.provider.Translate(ctx, text, source, target)
	if err != nil {
		s.metrics.Fallback(ctx, "translation")
		logger.WarnContext(ctx, "translation failed, keeping original text",
			slog.String("source", source.String()),
			slog.String("target", target.String()),
			slog.Any("error", err),
		)

		return domain.Translation{}, fmt.Errorf("%w: %w", domain.ErrTranslationUnavailable, err)
	}

	s.store(key, translated)

	return domain.Translation{Text: translated, Source: source, Target: target}, nil
}

func cacheKey(text string, source, target domain.Language) string {
	return source.String() + ">" + target.String() + ":" + text
}

func (s *TranslationService) lookup(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.cache[key]
	if !ok {
		return "", false
	}

	if !s.clock().Before(entry.expires) {
		delete(s.cache, key)
		return "", false
	}

	return entry.text, true
}

func (s *TranslationService) store(key, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock()

	if len(s.cache) >= maxTranslationCacheEntries {
		for k, e := range s.cache {
			if !now.Before(e.expires) {
				delete(s.cache, k)
			}
		}
	}

	if len(s.cache) >= maxTranslationCacheEntries {
		for k := range s.cache {
			delete(s.cache, k)
			break
		}
	}

	s.cache[key] = cachedTranslation{text: text, expires: now.Add(s.ttl)}
}
