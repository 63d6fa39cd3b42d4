package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/jsamuelsen/quote-studio/internal/domain"
	"github.com/jsamuelsen/quote-studio/internal/ports"
)

// FavoriteFilter narrows a favorites listing. Zero fields do not restrict.
type FavoriteFilter struct {
	Theme   domain.Theme
	Emotion domain.Emotion
	// Query matches text or author, ignoring case and accents.
	Query string
}

// Matches reports whether f passes every set criterion.
func (ff FavoriteFilter) Matches(f domain.Favorite) bool {
	if ff.Theme != "" && ff.Theme != domain.ThemeAuto && f.Theme != ff.Theme {
		return false
	}

	if ff.Emotion != "" && f.Emotion != ff.Emotion {
		return false
	}

	if q := domain.FoldKey(ff.Query); q != "" {
		if !strings.Contains(domain.FoldKey(f.Text), q) && !strings.Contains(domain.FoldKey(f.Author), q) {
			return false
		}
	}

	return true
}

// FavoritesServiceConfig configures a FavoritesService.
type FavoritesServiceConfig struct {
	Store    ports.FavoritesStore
	Exporter ports.FavoritesExporter
	Logger   *slog.Logger
}

// FavoritesService manages the favorites list.
type FavoritesService struct {
	store    ports.FavoritesStore
	exporter ports.FavoritesExporter
	logger   *slog.Logger
}

// NewFavoritesService creates a favorites service. It panics without a store.
func NewFavoritesService(cfg FavoritesServiceConfig) *FavoritesService {
	if cfg.Store == nil {
		panic("app: FavoritesService requires a store")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &FavoritesService{
		store:    cfg.Store,
		exporter: cfg.Exporter,
		logger:   logger.With(slog.String("component", "app.FavoritesService")),
	}
}

// Add saves f. Text that is already a favorite is a domain.ErrConflict.
func (s *FavoritesService) Add(ctx context.Context, f domain.Favorite) (domain.Favorite, error) {
	f.Text = strings.Join(strings.Fields(f.Text), " ")
	if f.Text == "" {
		return domain.Favorite{}, domain.NewValidationError("text", "must not be empty")
	}

	if strings.TrimSpace(f.Author) == "" {
		f.Author = domain.UnknownAuthor
	}

	if f.QuoteID == "" {
		f.QuoteID = domain.QuoteID(f.Text)
	}

	saved, err := s.store.Add(ctx, f)
	if err != nil {
		return domain.Favorite{}, fmt.Errorf("adding favorite: %w", err)
	}

	s.logger.InfoContext(ctx, "favorite added", slog.Int("favorite_id", saved.ID))

	return saved, nil
}

// AddStyled saves the displayed text of a generated quote.
func (s *FavoritesService) AddStyled(ctx context.Context, styled domain.StyledQuote) (domain.Favorite, error) {
	return s.Add(ctx, domain.FavoriteFromStyled(styled))
}

// Remove deletes the favorite with id.
func (s *FavoritesService) Remove(ctx context.Context, id int) error {
	if err := s.store.Remove(ctx, id); err != nil {
		return fmt.Errorf("removing favorite: %w", err)
	}

	s.logger.InfoContext(ctx, "favorite removed", slog.Int("favorite_id", id))

	return nil
}

// List returns every favorite in ID order.
func (s *FavoritesService) List(ctx context.Context) ([]domain.Favorite, error) {
	favorites, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing favorites: %w", err)
	}

	return favorites, nil
}

// Filter returns the favorites matching ff.
func (s *FavoritesService) Filter(ctx context.Context, ff FavoriteFilter) ([]domain.Favorite, error) {
	favorites, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Favorite, 0, len(favorites))

	for _, f := range favorites {
		if ff.Matches(f) {
			out = append(out, f)
		}
	}

	return out, nil
}

// ByTheme returns the favorites of theme.
func (s *FavoritesService) ByTheme(ctx context.Context, theme domain.Theme) ([]domain.Favorite, error) {
	return s.Filter(ctx, FavoriteFilter{Theme: theme})
}

// ByEmotion returns the favorites annotated with emotion.
func (s *FavoritesService) ByEmotion(ctx context.Context, emotion domain.Emotion) ([]domain.Favorite, error) {
	return s.Filter(ctx, FavoriteFilter{Emotion: emotion})
}

// Search returns the favorites whose text or author contains query.
func (s *FavoritesService) Search(ctx context.Context, query string) ([]domain.Favorite, error) {
	return s.Filter(ctx, FavoriteFilter{Query: query})
}

// IsFavorite reports whether text is already saved.
func (s *FavoritesService) IsFavorite(ctx context.Context, text string) (bool, error) {
	favorites, err := s.List(ctx)
	if err != nil {
		return false, err
	}

	key := domain.FoldKey(strings.Join(strings.Fields(text), " "))

	for _, f := range favorites {
		if domain.FoldKey(f.Text) == key {
			return true, nil
		}
	}

	return false, nil
}

// AddTag attaches tag to the favorite with id. Adding a tag twice is a no-op.
func (s *FavoritesService) AddTag(ctx context.Context, id int, tag string) (domain.Favorite, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return domain.Favorite{}, domain.NewValidationError("tag", "must not be empty")
	}

	favorites, err := s.List(ctx)
	if err != nil {
		return domain.Favorite{}, err
	}

	for _, f := range favorites {
		if f.ID != id {
			continue
		}

		for _, existing := range f.Tags {
			if domain.FoldKey(existing) == domain.FoldKey(tag) {
				return f, nil
			}
		}

		f.Tags = append(append([]string(nil), f.Tags...), tag)

		if err := s.store.Update(ctx, f); err != nil {
			return domain.Favorite{}, fmt.Errorf("tagging favorite: %w", err)
		}

		return f, nil
	}

	return domain.Favorite{}, domain.NewNotFoundError("favorite", strconv.Itoa(id))
}

// Stats summarizes the favorites.
func (s *FavoritesService) Stats(ctx context.Context) (domain.FavoriteStats, error) {
	favorites, err := s.List(ctx)
	if err != nil {
		return domain.FavoriteStats{}, err
	}

	return ComputeFavoriteStats(favorites), nil
}

// Export writes every favorite to w.
func (s *FavoritesService) Export(ctx context.Context, w io.Writer, format domain.DataFormat) error {
	if s.exporter == nil {
		return domain.NewUnavailableError("favorites export", "no exporter configured")
	}

	favorites, err := s.List(ctx)
	if err != nil {
		return err
	}

	if err := s.exporter.ExportFavorites(w, favorites, format); err != nil {
		return fmt.Errorf("exporting favorites: %w", err)
	}

	return nil
}

// ComputeFavoriteStats counts favorites by theme and emotion and lists the
// five most saved authors.
func ComputeFavoriteStats(favorites []domain.Favorite) domain.FavoriteStats {
	stats := domain.FavoriteStats{
		Total:      len(favorites),
		ByTheme:    map[string]int{},
		ByEmotion:  map[string]int{},
		TopAuthors: []domain.Count{},
	}

	authors := map[string]int{}

	for _, f := range favorites {
		stats.ByTheme[string(f.Theme)]++
		stats.ByEmotion[string(f.Emotion)]++
		authors[f.Author]++
	}

	stats.TopAuthors = topCounts(authors, topN)

	return stats
}
