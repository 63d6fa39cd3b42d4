package app

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen/quote-studio/internal/domain"
	"github.com/jsamuelsen/quote-studio/internal/ports"
)

// topN is the length of the "top" lists in statistics.
const topN = 5

// HistoryServiceConfig configures a HistoryService.
type HistoryServiceConfig struct {
	Store    ports.HistoryStore
	Exporter ports.HistoryExporter
	// Location buckets entries into days for statistics.
	Location *time.Location
	Clock    func() time.Time
	Logger   *slog.Logger
}

// HistoryService records generated quotes and reports on them.
type HistoryService struct {
	store    ports.HistoryStore
	exporter ports.HistoryExporter
	location *time.Location
	clock    func() time.Time
	logger   *slog.Logger
}

// NewHistoryService creates a history service. It panics without a store.
func NewHistoryService(cfg HistoryServiceConfig) *HistoryService {
	if cfg.Store == nil {
		panic("app: HistoryService requires a store")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}

	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}

	return &HistoryService{
		store:    cfg.Store,
		exporter: cfg.Exporter,
		location: loc,
		clock:    clock,
		logger:   logger.With(slog.String("component", "app.HistoryService")),
	}
}

// NewEntry builds an unsaved history entry stamped with a new ID and the
// current time.
func (s *HistoryService) NewEntry(styled domain.StyledQuote, format domain.ExportFormat, preset string) domain.HistoryEntry {
	return domain.HistoryEntry{
		ID:        uuid.NewString(),
		CreatedAt: s.clock().UTC(),
		Format:    format,
		Preset:    preset,
		Styled:    styled,
	}
}

// Append saves entry.
func (s *HistoryService) Append(ctx context.Context, entry domain.HistoryEntry) error {
	if err := s.store.Append(ctx, entry); err != nil {
		return fmt.Errorf("appending history: %w", err)
	}

	return nil
}

// List returns matching entries in insertion order.
func (s *HistoryService) List(ctx context.Context, filter domain.HistoryFilter) ([]domain.HistoryEntry, error) {
	entries, err := s.store.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}

	return entries, nil
}

// Recent returns up to n entries, newest first.
func (s *HistoryService) Recent(ctx context.Context, n int) ([]domain.HistoryEntry, error) {
	entries, err := s.List(ctx, domain.HistoryFilter{})
	if err != nil {
		return nil, err
	}

	slices.Reverse(entries)

	if n >= 0 && len(entries) > n {
		entries = entries[:n]
	}

	return entries, nil
}

// Seen reports whether quoteID was generated within the last window.
func (s *HistoryService) Seen(ctx context.Context, quoteID string, window time.Duration) (bool, error) {
	entries, err := s.List(ctx, domain.HistoryFilter{From: s.clock().Add(-window)})
	if err != nil {
		return false, err
	}

	for _, e := range entries {
		if e.Styled.Quote.ID == quoteID {
			return true, nil
		}
	}

	return false, nil
}

// Stats summarizes the whole history.
func (s *HistoryService) Stats(ctx context.Context) (domain.HistoryStats, error) {
	entries, err := s.List(ctx, domain.HistoryFilter{})
	if err != nil {
		return domain.HistoryStats{}, err
	}

	return ComputeHistoryStats(entries, s.clock(), s.location), nil
}

// Export writes the matching entries to w.
func (s *HistoryService) Export(
	ctx context.Context,
	w io.Writer,
	format domain.DataFormat,
	filter domain.HistoryFilter,
) error {
	if s.exporter == nil {
		return domain.NewUnavailableError("history export", "no exporter configured")
	}

	entries, err := s.List(ctx, filter)
	if err != nil {
		return err
	}

	if err := s.exporter.ExportHistory(w, entries, format); err != nil {
		return fmt.Errorf("exporting history: %w", err)
	}

	return nil
}

// Clear removes every entry.
func (s *HistoryService) Clear(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}

	s.logger.InfoContext(ctx, "history cleared")

	return nil
}

// ComputeHistoryStats summarizes entries as of now. Days are bucketed in loc.
func ComputeHistoryStats(entries []domain.HistoryEntry, now time.Time, loc *time.Location) domain.HistoryStats {
	if loc == nil {
		loc = time.UTC
	}

	stats := domain.HistoryStats{
		Total:       len(entries),
		ByTheme:     map[string]int{},
		ByDay:       map[string]int{},
		TopEmotions: []domain.Count{},
		TopAuthors:  []domain.Count{},
	}

	if len(entries) == 0 {
		return stats
	}

	emotions := map[string]int{}
	authors := map[string]int{}
	weekAgo := now.AddDate(0, 0, -7)
	monthAgo := now.AddDate(0, 0, -30)

	first, last := entries[0].CreatedAt, entries[0].CreatedAt

	for _, e := range entries {
		stats.ByTheme[string(e.Styled.Quote.Theme)]++
		stats.ByDay[e.CreatedAt.In(loc).Format(time.DateOnly)]++
		authors[e.Styled.Quote.Author]++

		if emotion := e.Styled.Emotion(); emotion != "" {
			emotions[string(emotion)]++
		}

		if e.CreatedAt.Before(first) {
			first = e.CreatedAt
		}

		if e.CreatedAt.After(last) {
			last = e.CreatedAt
		}

		if !e.CreatedAt.Before(weekAgo) {
			stats.LastWeek++
		}

		if !e.CreatedAt.Before(monthAgo) {
			stats.LastMonth++
		}
	}

	stats.TopEmotions = topCounts(emotions, topN)
	stats.TopAuthors = topCounts(authors, topN)
	stats.FavoriteTheme = topKey(stats.ByTheme)
	stats.FavoriteEmotion = topKey(emotions)
	stats.FavoriteAuthor = topKey(authors)
	stats.First = &first
	stats.Last = &last

	return stats
}

// topCounts returns the n largest counts, ties broken by key.
func topCounts(counts map[string]int, n int) []domain.Count {
	out := make([]domain.Count, 0, len(counts))
	for k, v := range counts {
		out = append(out, domain.Count{Key: k, Count: v})
	}

	slices.SortFunc(out, func(a, b domain.Count) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}

		return cmp.Compare(a.Key, b.Key)
	})

	if len(out) > n {
		out = out[:n]
	}

	return out
}

func topKey(counts map[string]int) string {
	top := topCounts(counts, 1)
	if len(top) == 0 {
		return ""
	}

	return top[0].Key
}
