// Package app runs the quote pipeline: context, theme, quote, sentiment,
// translation, image and history. Services depend on ports only; adapters
// are injected by cmd/quotestudio.
//
// Every stage except the local catalog may degrade. A degraded stage logs,
// records a fallback metric and, where the caller would notice, adds a
// notice to the result. The only fatal error is an empty catalog theme.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel/attribute"

	"github.com/jsamuelsen/quote-studio/internal/app/session"
	"github.com/jsamuelsen/quote-studio/internal/domain"
	"github.com/jsamuelsen/quote-studio/internal/platform/logging"
	"github.com/jsamuelsen/quote-studio/internal/platform/telemetry"
	"github.com/jsamuelsen/quote-studio/internal/ports"
)

// Notices attached to a GenerateResult.
const (
	NoticeHistoryUnavailable = "history unavailable"
	NoticeAlreadyFavorite    = "already a favorite"
	NoticeFavoriteNotSaved   = "favorite not saved"
)

// GenerateRequest asks for one quote image. Empty fields take the
// configured defaults; an empty Language keeps the quote's own language.
type GenerateRequest struct {
	Theme      string `json:"theme"       validate:"omitempty,max=32"`
	Style      string `json:"style"       validate:"omitempty,max=32"`
	Format     string `json:"format"      validate:"omitempty,max=8"`
	Preset     string `json:"preset"      validate:"omitempty,max=32"`
	Language   string `json:"lang"        validate:"omitempty,bcp47_language_tag"`
	Favorite   bool   `json:"favorite"`
	PreferDark *bool  `json:"prefer_dark"`
}

// GenerateResult is the outcome of one pipeline pass.
type GenerateResult struct {
	Styled      domain.StyledQuote
	Image       ports.RenderedImage
	ContentType string
	// HistoryID is empty when the entry was not recorded.
	HistoryID string
	// FavoriteID is zero unless a favorite was saved.
	FavoriteID int
	Notices    []string
}

// GenerateDefaults fill unset request fields.
type GenerateDefaults struct {
	Style      domain.Style
	Format     domain.ExportFormat
	Preset     string
	PreferDark bool
}

// GeneratorConfig wires the pipeline stages.
type GeneratorConfig struct {
	Resolver   *ContextResolver
	Selector   *ThemeSelector
	Quotes     *QuoteService
	Sentiment  ports.SentimentAnalyzer
	Translator *TranslationService
	Renderer   ports.ImageRenderer
	History    *HistoryService
	Favorites  *FavoritesService
	Flags      ports.FeatureFlags
	Metrics    *telemetry.PipelineMetrics
	Defaults   GenerateDefaults
	Logger     *slog.Logger
}

// Generator runs the pipeline as a transactional operation.
type Generator struct {
	cfg      GeneratorConfig
	exec     *Executor
	validate *validator.Validate
	logger   *slog.Logger
}

// NewGenerator creates a generator. Resolver, Selector, Quotes and Renderer
// are required; the other stages are skipped when nil.
func NewGenerator(cfg GeneratorConfig) *Generator {
	if cfg.Resolver == nil || cfg.Selector == nil || cfg.Quotes == nil || cfg.Renderer == nil {
		panic("app: Generator requires a resolver, selector, quote service and renderer")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if cfg.Defaults.Style == "" {
		cfg.Defaults.Style = domain.StyleMinimal
	}

	if cfg.Defaults.Format == "" {
		cfg.Defaults.Format = domain.FormatPNG
	}

	if cfg.Defaults.Preset == "" {
		cfg.Defaults.Preset = domain.DefaultPreset
	}

	return &Generator{
		cfg:      cfg,
		exec:     NewExecutor(logger),
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger.With(slog.String("component", "app.Generator")),
	}
}

// generation is the state of one Generate call.
type generation struct {
	req        GenerateRequest
	theme      domain.Theme
	style      domain.Style
	format     domain.ExportFormat
	preset     domain.Preset
	target     domain.Language
	preferDark bool
	notices    []string

	historyID      string
	favoriteID     int
	alreadyFavored bool
}

func (g *generation) notice(n string) {
	for _, existing := range g.notices {
		if existing == n {
			return
		}
	}

	g.notices = append(g.notices, n)
}

type rendered struct {
	styled domain.StyledQuote
	image  ports.RenderedImage
}

// Generate runs the whole pipeline for req.
func (gen *Generator) Generate(ctx context.Context, req GenerateRequest) (GenerateResult, error) {
	ctx, span := telemetry.StartSpan(ctx, "app.Generate",
		attribute.String("quote.theme", req.Theme),
		attribute.String("quote.style", req.Style),
	)
	defer span.End()

	if session.FromContext(ctx) == nil {
		ctx = session.WithContext(ctx, session.New(ctx))
	}

	result, err := Execute(ctx, gen.exec, gen.operation(), &generation{req: req})
	if err != nil {
		span.RecordError(err)
		return GenerateResult{}, err
	}

	span.SetAttributes(
		attribute.String("quote.resolved_theme", string(result.Styled.Quote.Theme)),
		attribute.String("quote.source", string(result.Styled.Quote.Source)),
	)

	return result, nil
}

// Styled runs the pipeline up to the StyledQuote, without rendering or
// recording anything.
func (gen *Generator) Styled(ctx context.Context, req GenerateRequest) (domain.StyledQuote, []string, error) {
	g := &generation{req: req}

	if err := gen.validateRequest(ctx, g); err != nil {
		return domain.StyledQuote{}, nil, err
	}

	styled, err := gen.perform(ctx, g)
	if err != nil {
		return domain.StyledQuote{}, nil, err
	}

	styled.Palette = gen.cfg.Renderer.PickPalette(styled, g.preferDark)

	return styled, g.notices, nil
}

func (gen *Generator) operation() Operation[*generation, domain.StyledQuote, rendered, GenerateResult] {
	return Operation[*generation, domain.StyledQuote, rendered, GenerateResult]{
		Name:     "generate_quote",
		Validate: gen.validateRequest,
		Perform:  gen.perform,
		Verify:   gen.verify,
		Archive:  gen.archive,
		Respond: func(_ context.Context, g *generation, r rendered) (GenerateResult, error) {
			return GenerateResult{
				Styled:      r.styled,
				Image:       r.image,
				ContentType: r.image.ContentType,
				HistoryID:   g.historyID,
				FavoriteID:  g.favoriteID,
				Notices:     append([]string{}, g.notices...),
			}, nil
		},
	}
}

func (gen *Generator) validateRequest(_ context.Context, g *generation) error {
	if err := gen.validate.Struct(g.req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return domain.NewValidationErrorWithValue(strings.ToLower(fe.Field()), "failed "+fe.Tag()+" check", fe.Value())
		}

		return domain.NewValidationError("", err.Error())
	}

	var errs []error

	theme, err := domain.ParseTheme(g.req.Theme)
	errs = append(errs, err)
	g.theme = theme

	g.style = gen.cfg.Defaults.Style
	if g.req.Style != "" {
		g.style, err = domain.ParseStyle(g.req.Style)
		errs = append(errs, err)
	}

	g.format = gen.cfg.Defaults.Format
	if g.req.Format != "" {
		g.format, err = domain.ParseExportFormat(g.req.Format)
		errs = append(errs, err)
	}

	presetName := g.req.Preset
	if presetName == "" {
		presetName = gen.cfg.Defaults.Preset
	}

	g.preset, err = domain.LookupPreset(presetName)
	errs = append(errs, err)

	if g.req.Language != "" {
		g.target, err = domain.ParseLanguage(g.req.Language)
		errs = append(errs, err)
	}

	g.preferDark = gen.cfg.Defaults.PreferDark
	if g.req.PreferDark != nil {
		g.preferDark = *g.req.PreferDark
	}

	for _, e := range errs {
		if e != nil {
			return e
		}
	}

	return nil
}

func (gen *Generator) perform(ctx context.Context, g *generation) (domain.StyledQuote, error) {
	logger := logging.FromContext(ctx)
	if logger == nil {
		logger = gen.logger
	}

	c := gen.cfg.Resolver.Resolve(ctx)
	theme := gen.cfg.Selector.Select(g.theme, c)

	if g.theme == domain.ThemeAuto {
		logger.DebugContext(ctx, "auto theme resolved",
			slog.String("theme", string(theme)),
			slog.String("period", string(c.Period)),
			slog.String("weather", string(c.Weather)),
		)
	}

	preferred := domain.LanguageEnglish
	if g.target != "" {
		preferred = g.target
	}

	quote, err := gen.cfg.Quotes.Quote(ctx, theme, preferred)
	if err != nil {
		return domain.StyledQuote{}, fmt.Errorf("selecting quote: %w", err)
	}

	styled := domain.StyledQuote{
		Quote:   quote,
		Style:   g.style,
		Context: c,
	}

	if gen.cfg.Sentiment != nil && gen.enabled(ctx, ports.FlagSentiment) {
		s := gen.cfg.Sentiment.Analyze(quote.Text, quote.Language)
		styled.Sentiment = &s
	}

	if g.target != "" && g.target != quote.Language {
		styled.Translation = gen.translate(ctx, g, quote)
	}

	return styled, nil
}

func (gen *Generator) translate(ctx context.Context, g *generation, quote domain.Quote) *domain.Translation {
	if gen.cfg.Translator == nil {
		g.notice(NoticeTranslationUnavailable)
		return nil
	}

	tr, err := gen.cfg.Translator.Translate(ctx, quote.Text, quote.Language, g.target)
	if err != nil {
		g.notice(NoticeTranslationUnavailable)
		return nil
	}

	if tr.Text == "" || tr.Text == quote.Text {
		return nil
	}

	return &tr
}

func (gen *Generator) verify(ctx context.Context, g *generation, styled domain.StyledQuote) (rendered, error) {
	if err := styled.Validate(); err != nil {
		return rendered{}, err
	}

	styled.Palette = gen.cfg.Renderer.PickPalette(styled, g.preferDark)

	img, err := gen.cfg.Renderer.Render(ctx, ports.RenderRequest{
		Styled: styled,
		Preset: g.preset,
		Format: g.format,
	})
	if err != nil {
		return rendered{}, fmt.Errorf("rendering image: %w", err)
	}

	if len(img.Data) == 0 {
		return rendered{}, errors.New("renderer returned no image data")
	}

	gen.cfg.Metrics.Generated(ctx, string(styled.Quote.Theme), string(styled.Quote.Source))

	return rendered{styled: styled, image: img}, nil
}

// archive stages the favorite add and then the history append. Failures
// degrade to notices; the image is returned regardless.
func (gen *Generator) archive(ctx context.Context, g *generation, r rendered) error {
	logger := logging.FromContext(ctx)
	if logger == nil {
		logger = gen.logger
	}

	// A request session that already archived an earlier generation cannot
	// stage more actions.
	sess := session.FromContext(ctx)
	if sess == nil || sess.Committed() {
		sess = session.New(ctx)
	}

	var staged []error

	if g.req.Favorite && gen.cfg.Favorites != nil {
		staged = append(staged, sess.AddAction(session.NewAction("add favorite",
			func(ctx context.Context) error {
				fav, err := gen.cfg.Favorites.AddStyled(ctx, r.styled)
				if domain.IsConflict(err) {
					g.alreadyFavored = true
					g.notice(NoticeAlreadyFavorite)

					return nil
				}

				if err != nil {
					return err
				}

				g.favoriteID = fav.ID

				return nil
			},
			func(ctx context.Context) error {
				if g.favoriteID == 0 {
					return nil
				}

				err := gen.cfg.Favorites.Remove(ctx, g.favoriteID)
				g.favoriteID = 0

				return err
			},
		)))
	}

	var entry domain.HistoryEntry

	if gen.cfg.History != nil && gen.enabled(ctx, ports.FlagHistory) {
		entry = gen.cfg.History.NewEntry(r.styled, g.format, g.preset.Name)

		staged = append(staged, sess.AddAction(session.NewAction("append history",
			func(ctx context.Context) error { return gen.cfg.History.Append(ctx, entry) },
			nil,
		)))
	}

	err := errors.Join(staged...)
	if err == nil {
		err = sess.Commit(ctx)
	}

	if err != nil {
		gen.cfg.Metrics.HistoryError(ctx)
		logger.WarnContext(ctx, "archiving generated quote failed", slog.Any("error", err))

		if g.req.Favorite && !g.alreadyFavored {
			g.notice(NoticeFavoriteNotSaved)
		}

		if entry.ID != "" {
			g.notice(NoticeHistoryUnavailable)
		}

		return nil
	}

	g.historyID = entry.ID

	return nil
}

func (gen *Generator) enabled(ctx context.Context, flag string) bool {
	return gen.cfg.Flags == nil || gen.cfg.Flags.IsEnabled(ctx, flag, true)
}

// RenderPresets renders styled once per preset with at most limit renders in
// flight. Results keep the order of presets.
func (gen *Generator) RenderPresets(
	ctx context.Context,
	styled domain.StyledQuote,
	presets []domain.Preset,
	format domain.ExportFormat,
	limit int,
) ([]ports.RenderedImage, error) {
	if styled.Palette.Background == "" {
		styled.Palette = gen.cfg.Renderer.PickPalette(styled, gen.cfg.Defaults.PreferDark)
	}

	return ParallelMap(ctx, limit, presets, func(ctx context.Context, p domain.Preset) (ports.RenderedImage, error) {
		img, err := gen.cfg.Renderer.Render(ctx, ports.RenderRequest{Styled: styled, Preset: p, Format: format})
		if err != nil {
			return ports.RenderedImage{}, fmt.Errorf("rendering %s: %w", p.Name, err)
		}

		return img, nil
	})
}
