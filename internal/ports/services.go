// Package ports defines the capability interfaces the application layer
// depends on. Remote providers, the local catalog and the stores sit behind
// these contracts so the pipeline can run against in-memory fakes.
//
// Every method takes a context first and returns domain types. Remote
// implementations report outages as domain.ErrUnavailable; the application
// layer decides whether to degrade.
package ports

import (
	"context"
	"io"
	"time"

	"github.com/jsamuelsen/quote-studio/internal/domain"
)

// QuoteProvider fetches quotes from a remote service.
type QuoteProvider interface {
	// FetchBatch returns a batch of quotes tagged with the themes their text
	// matches. Returns domain.ErrUnavailable when the provider cannot be reached.
	FetchBatch(ctx context.Context) ([]domain.Quote, error)

	// Name identifies the provider in logs and metrics.
	Name() string
}

// QuoteCatalog is the local fallback table.
type QuoteCatalog interface {
	// ByTheme returns every local quote for theme. The result is never empty
	// for a concrete theme once the catalog has loaded.
	ByTheme(theme domain.Theme) []domain.Quote

	// Themes reports the number of quotes per theme.
	Themes() map[domain.Theme]int
}

// WeatherReading is the current condition at a location.
type WeatherReading struct {
	Condition   domain.Weather
	Description string
	Location    string
	TempC       float64
	ObservedAt  time.Time
}

// WeatherProvider reports current weather for the configured location.
type WeatherProvider interface {
	Current(ctx context.Context) (WeatherReading, error)
}

// TranslationProvider translates text through a remote service.
type TranslationProvider interface {
	Translate(ctx context.Context, text string, source, target domain.Language) (string, error)
}

// SentimentAnalyzer scores text locally. It never fails.
type SentimentAnalyzer interface {
	Analyze(text string, lang domain.Language) domain.Sentiment
}

// HistoryStore persists generated quotes. It is append-only apart from Clear.
type HistoryStore interface {
	Append(ctx context.Context, entry domain.HistoryEntry) error

	// List returns matching entries in insertion order.
	List(ctx context.Context, filter domain.HistoryFilter) ([]domain.HistoryEntry, error)

	Count(ctx context.Context) (int, error)
	Clear(ctx context.Context) error
}

// FavoritesStore persists the favorites list.
type FavoritesStore interface {
	// Add assigns the next ID and saves f. Duplicate text is a domain.ErrConflict.
	Add(ctx context.Context, f domain.Favorite) (domain.Favorite, error)

	// Remove deletes the favorite with id. Missing ids are domain.ErrNotFound.
	Remove(ctx context.Context, id int) error

	// Update replaces the stored favorite with the same ID.
	Update(ctx context.Context, f domain.Favorite) error

	List(ctx context.Context) ([]domain.Favorite, error)
}

// HistoryExporter encodes history entries for download.
type HistoryExporter interface {
	ExportHistory(w io.Writer, entries []domain.HistoryEntry, format domain.DataFormat) error
}

// FavoritesExporter encodes favorites for download.
type FavoritesExporter interface {
	ExportFavorites(w io.Writer, favorites []domain.Favorite, format domain.DataFormat) error
}

// RenderRequest describes one image to compose.
type RenderRequest struct {
	Styled domain.StyledQuote
	Preset domain.Preset
	Format domain.ExportFormat
}

// RenderedImage is an encoded image.
type RenderedImage struct {
	Data        []byte
	ContentType string
	Format      domain.ExportFormat
	Preset      string
	Width       int
	Height      int
}

// ImageRenderer composes quote images. Long text is wrapped, shrunk or
// truncated; rendering only fails on encoder errors or cancellation.
type ImageRenderer interface {
	// PickPalette chooses the colors for styled: dark preference first, then
	// the night period, then the emotion, then the time of day.
	PickPalette(styled domain.StyledQuote, preferDark bool) domain.Palette

	Render(ctx context.Context, req RenderRequest) (RenderedImage, error)
}
