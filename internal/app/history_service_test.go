package app

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quote-studio/internal/domain"
	"github.com/jsamuelsen/quote-studio/internal/mocks"
)

func historyEntry(t *testing.T, id string, created time.Time, theme domain.Theme, author string, emotion domain.Emotion) domain.HistoryEntry {
	t.Helper()

	styled := domain.StyledQuote{
		Quote: newQuote(t, "Quote "+id, author, theme, domain.LanguageEnglish),
		Style: domain.StyleMinimal,
	}

	if emotion != "" {
		s := domain.NewSentiment(0.5, 0.5, emotion, nil)
		styled.Sentiment = &s
	}

	return domain.HistoryEntry{
		ID:        id,
		CreatedAt: created,
		Format:    domain.FormatPNG,
		Preset:    domain.DefaultPreset,
		Styled:    styled,
	}
}

func TestHistoryService_NewEntry(t *testing.T) {
	cet := time.FixedZone("CET", 3600)
	now := time.Date(2024, time.March, 4, 10, 0, 0, 0, cet)

	svc := NewHistoryService(HistoryServiceConfig{
		Store:  mocks.NewMockHistoryStore(t),
		Clock:  func() time.Time { return now },
		Logger: discardLogger(),
	})

	styled := domain.StyledQuote{Quote: newQuote(t, "Carpe diem.", "Horace", domain.ThemeWisdom, domain.LanguageEnglish)}

	a := svc.NewEntry(styled, domain.FormatJPEG, "twitter_post")
	b := svc.NewEntry(styled, domain.FormatJPEG, "twitter_post")

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, now.UTC(), a.CreatedAt)
	assert.Equal(t, time.UTC, a.CreatedAt.Location())
	assert.Equal(t, domain.FormatJPEG, a.Format)
	assert.Equal(t, "twitter_post", a.Preset)
	assert.Equal(t, styled, a.Styled)
}

func TestHistoryService_AppendWrapsStoreErrors(t *testing.T) {
	store := mocks.NewMockHistoryStore(t)
	store.EXPECT().Append(mock.Anything, mock.Anything).Return(errors.New("disk full"))

	svc := NewHistoryService(HistoryServiceConfig{Store: store, Logger: discardLogger()})

	err := svc.Append(context.Background(), domain.HistoryEntry{ID: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "appending history")
	assert.Contains(t, err.Error(), "disk full")
}

func TestHistoryService_Recent(t *testing.T) {
	base := at(time.Monday, 9)
	entries := []domain.HistoryEntry{
		historyEntry(t, "1", base, domain.ThemeLove, "A", ""),
		historyEntry(t, "2", base.Add(time.Hour), domain.ThemeLove, "A", ""),
		historyEntry(t, "3", base.Add(2*time.Hour), domain.ThemeLove, "A", ""),
	}

	tests := []struct {
		name    string
		n       int
		wantIDs []string
	}{
		{name: "newest first", n: 2, wantIDs: []string{"3", "2"}},
		{name: "more than stored", n: 10, wantIDs: []string{"3", "2", "1"}},
		{name: "negative means all", n: -1, wantIDs: []string{"3", "2", "1"}},
		{name: "zero", n: 0, wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mocks.NewMockHistoryStore(t)
			store.EXPECT().List(mock.Anything, domain.HistoryFilter{}).
				Return(append([]domain.HistoryEntry(nil), entries...), nil)

			svc := NewHistoryService(HistoryServiceConfig{Store: store, Logger: discardLogger()})

			got, err := svc.Recent(context.Background(), tt.n)
			require.NoError(t, err)

			ids := make([]string, 0, len(got))
			for _, e := range got {
				ids = append(ids, e.ID)
			}

			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestHistoryService_Seen(t *testing.T) {
	now := at(time.Friday, 12)
	window := 30 * 24 * time.Hour
	recent := historyEntry(t, "1", now.Add(-time.Hour), domain.ThemeLove, "A", "")

	store := mocks.NewMockHistoryStore(t)
	store.EXPECT().
		List(mock.Anything, mock.MatchedBy(func(f domain.HistoryFilter) bool {
			return f.From.Equal(now.Add(-window))
		})).
		Return([]domain.HistoryEntry{recent}, nil)

	svc := NewHistoryService(HistoryServiceConfig{
		Store:  store,
		Clock:  func() time.Time { return now },
		Logger: discardLogger(),
	})

	seen, err := svc.Seen(context.Background(), recent.Styled.Quote.ID, window)
	require.NoError(t, err)
	assert.True(t, seen)

	seen, err = svc.Seen(context.Background(), domain.QuoteID("never generated"), window)
	require.NoError(t, err)
	assert.False(t, seen)
}

func TestHistoryService_Export(t *testing.T) {
	entries := []domain.HistoryEntry{historyEntry(t, "1", at(time.Monday, 9), domain.ThemeLove, "A", "")}
	filter := domain.HistoryFilter{Theme: domain.ThemeLove}

	t.Run("no exporter", func(t *testing.T) {
		svc := NewHistoryService(HistoryServiceConfig{Store: mocks.NewMockHistoryStore(t), Logger: discardLogger()})

		err := svc.Export(context.Background(), &bytes.Buffer{}, domain.DataCSV, filter)
		assert.True(t, domain.IsUnavailable(err))
	})

	t.Run("exports the filtered entries", func(t *testing.T) {
		var buf bytes.Buffer

		store := mocks.NewMockHistoryStore(t)
		store.EXPECT().List(mock.Anything, filter).Return(entries, nil)

		exporter := mocks.NewMockHistoryExporter(t)
		exporter.EXPECT().ExportHistory(&buf, entries, domain.DataCSV).Return(nil)

		svc := NewHistoryService(HistoryServiceConfig{Store: store, Exporter: exporter, Logger: discardLogger()})

		require.NoError(t, svc.Export(context.Background(), &buf, domain.DataCSV, filter))
	})
}

func TestHistoryService_Clear(t *testing.T) {
	store := mocks.NewMockHistoryStore(t)
	store.EXPECT().Clear(mock.Anything).Return(nil)

	svc := NewHistoryService(HistoryServiceConfig{Store: store, Logger: discardLogger()})

	require.NoError(t, svc.Clear(context.Background()))
}

func TestComputeHistoryStats(t *testing.T) {
	cet := time.FixedZone("CET", 3600)
	now := time.Date(2024, time.March, 31, 12, 0, 0, 0, time.UTC)

	entries := []domain.HistoryEntry{
		historyEntry(t, "1", time.Date(2024, time.February, 20, 9, 0, 0, 0, time.UTC), domain.ThemeLove, "A", domain.EmotionLove),
		historyEntry(t, "2", time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC), domain.ThemeLove, "B", domain.EmotionJoy),
		historyEntry(t, "3", time.Date(2024, time.March, 28, 23, 30, 0, 0, time.UTC), domain.ThemeWisdom, "A", domain.EmotionJoy),
		historyEntry(t, "4", time.Date(2024, time.March, 31, 11, 0, 0, 0, time.UTC), domain.ThemeCourage, "A", ""),
	}

	stats := ComputeHistoryStats(entries, now, cet)

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, map[string]int{"love": 2, "wisdom": 1, "courage": 1}, stats.ByTheme)
	assert.Equal(t, map[string]int{
		"2024-02-20": 1,
		"2024-03-10": 1,
		"2024-03-29": 1,
		"2024-03-31": 1,
	}, stats.ByDay)
	assert.Equal(t, []domain.Count{{Key: "A", Count: 3}, {Key: "B", Count: 1}}, stats.TopAuthors)
	assert.Equal(t, []domain.Count{{Key: "joy", Count: 2}, {Key: "love", Count: 1}}, stats.TopEmotions)
	assert.Equal(t, "love", stats.FavoriteTheme)
	assert.Equal(t, "joy", stats.FavoriteEmotion)
	assert.Equal(t, "A", stats.FavoriteAuthor)
	assert.Equal(t, 2, stats.LastWeek)
	assert.Equal(t, 3, stats.LastMonth)
	require.NotNil(t, stats.First)
	require.NotNil(t, stats.Last)
	assert.Equal(t, entries[0].CreatedAt, *stats.First)
	assert.Equal(t, entries[3].CreatedAt, *stats.Last)
}

func TestComputeHistoryStats_Empty(t *testing.T) {
	stats := ComputeHistoryStats(nil, time.Now(), nil)

	assert.Zero(t, stats.Total)
	assert.NotNil(t, stats.ByTheme)
	assert.NotNil(t, stats.ByDay)
	assert.Empty(t, stats.TopAuthors)
	assert.Nil(t, stats.First)
	assert.Nil(t, stats.Last)
}

func TestTopCounts_TiesBrokenByKey(t *testing.T) {
	counts := map[string]int{"f": 1, "e": 2, "d": 2, "c": 3, "b": 1, "a": 1}

	assert.Equal(t, []domain.Count{
		{Key: "c", Count: 3},
		{Key: "d", Count: 2},
		{Key: "e", Count: 2},
		{Key: "a", Count: 1},
		{Key: "b", Count: 1},
	}, topCounts(counts, topN))
}
