package app

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quote-studio/internal/domain"
	"github.com/jsamuelsen/quote-studio/internal/mocks"
)

func sampleFavorites() []domain.Favorite {
	return []domain.Favorite{
		{ID: 1, Text: "Le succès n'est pas final.", Author: "Winston Churchill", Theme: domain.ThemeSuccess,
			Emotion: domain.EmotionMotivation, Tags: []string{"Work"}},
		{ID: 2, Text: "Love all, trust a few.", Author: "William Shakespeare", Theme: domain.ThemeLove,
			Emotion: domain.EmotionLove, Tags: []string{}},
		{ID: 3, Text: "Brevity is the soul of wit.", Author: "William Shakespeare", Theme: domain.ThemeWisdom,
			Emotion: domain.EmotionWisdom, Tags: []string{}},
	}
}

func TestFavoritesService_Add(t *testing.T) {
	t.Run("normalizes before saving", func(t *testing.T) {
		store := mocks.NewMockFavoritesStore(t)
		store.EXPECT().
			Add(mock.Anything, mock.MatchedBy(func(f domain.Favorite) bool {
				return f.Text == "Stay hungry, stay foolish." &&
					f.Author == domain.UnknownAuthor &&
					f.QuoteID == domain.QuoteID("Stay hungry, stay foolish.")
			})).
			RunAndReturn(func(_ context.Context, f domain.Favorite) (domain.Favorite, error) {
				f.ID = 7
				return f, nil
			})

		svc := NewFavoritesService(FavoritesServiceConfig{Store: store, Logger: discardLogger()})

		got, err := svc.Add(context.Background(), domain.Favorite{Text: "  Stay hungry,\n stay foolish.  ", Author: " "})
		require.NoError(t, err)
		assert.Equal(t, 7, got.ID)
	})

	t.Run("empty text", func(t *testing.T) {
		svc := NewFavoritesService(FavoritesServiceConfig{Store: mocks.NewMockFavoritesStore(t), Logger: discardLogger()})

		_, err := svc.Add(context.Background(), domain.Favorite{Text: " \t "})
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("duplicate", func(t *testing.T) {
		store := mocks.NewMockFavoritesStore(t)
		store.EXPECT().Add(mock.Anything, mock.Anything).
			Return(domain.Favorite{}, domain.NewConflictError("favorite", "already saved"))

		svc := NewFavoritesService(FavoritesServiceConfig{Store: store, Logger: discardLogger()})

		_, err := svc.Add(context.Background(), domain.Favorite{Text: "Carpe diem.", Author: "Horace"})
		assert.True(t, domain.IsConflict(err))
	})
}

func TestFavoritesService_AddStyled(t *testing.T) {
	quote := newQuote(t, "Stay hungry.", "Steve Jobs", domain.ThemeMotivation, domain.LanguageEnglish)
	sentiment := domain.NewSentiment(0.6, 0.4, domain.EmotionMotivation, nil)
	styled := domain.StyledQuote{
		Quote:       quote,
		Translation: &domain.Translation{Text: "Restez affamés.", Source: domain.LanguageEnglish, Target: domain.LanguageFrench},
		Sentiment:   &sentiment,
	}

	store := mocks.NewMockFavoritesStore(t)
	store.EXPECT().
		Add(mock.Anything, mock.MatchedBy(func(f domain.Favorite) bool {
			return f.Text == "Restez affamés." && f.QuoteID == quote.ID &&
				f.Theme == domain.ThemeMotivation && f.Emotion == domain.EmotionMotivation
		})).
		Return(domain.Favorite{ID: 1}, nil)

	svc := NewFavoritesService(FavoritesServiceConfig{Store: store, Logger: discardLogger()})

	got, err := svc.AddStyled(context.Background(), styled)
	require.NoError(t, err)
	assert.Equal(t, 1, got.ID)
}

func TestFavoritesService_Filter(t *testing.T) {
	tests := []struct {
		name    string
		filter  FavoriteFilter
		wantIDs []int
	}{
		{name: "no criteria", filter: FavoriteFilter{}, wantIDs: []int{1, 2, 3}},
		{name: "auto theme does not restrict", filter: FavoriteFilter{Theme: domain.ThemeAuto}, wantIDs: []int{1, 2, 3}},
		{name: "by theme", filter: FavoriteFilter{Theme: domain.ThemeLove}, wantIDs: []int{2}},
		{name: "by emotion", filter: FavoriteFilter{Emotion: domain.EmotionWisdom}, wantIDs: []int{3}},
		{name: "query matches author", filter: FavoriteFilter{Query: "shakespeare"}, wantIDs: []int{2, 3}},
		{name: "query ignores accents", filter: FavoriteFilter{Query: "SUCCES"}, wantIDs: []int{1}},
		{name: "combined", filter: FavoriteFilter{Theme: domain.ThemeWisdom, Query: "shakespeare"}, wantIDs: []int{3}},
		{name: "no match", filter: FavoriteFilter{Query: "nietzsche"}, wantIDs: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mocks.NewMockFavoritesStore(t)
			store.EXPECT().List(mock.Anything).Return(sampleFavorites(), nil)

			svc := NewFavoritesService(FavoritesServiceConfig{Store: store, Logger: discardLogger()})

			got, err := svc.Filter(context.Background(), tt.filter)
			require.NoError(t, err)

			ids := make([]int, 0, len(got))
			for _, f := range got {
				ids = append(ids, f.ID)
			}

			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFavoritesService_Shortcuts(t *testing.T) {
	store := mocks.NewMockFavoritesStore(t)
	store.EXPECT().List(mock.Anything).Return(sampleFavorites(), nil)

	svc := NewFavoritesService(FavoritesServiceConfig{Store: store, Logger: discardLogger()})
	ctx := context.Background()

	byTheme, err := svc.ByTheme(ctx, domain.ThemeSuccess)
	require.NoError(t, err)
	assert.Len(t, byTheme, 1)

	byEmotion, err := svc.ByEmotion(ctx, domain.EmotionLove)
	require.NoError(t, err)
	assert.Len(t, byEmotion, 1)

	found, err := svc.Search(ctx, "wit")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, 3, found[0].ID)

	ok, err := svc.IsFavorite(ctx, "  love ALL,  trust a few. ")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.IsFavorite(ctx, "Love nobody.")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFavoritesService_AddTag(t *testing.T) {
	t.Run("appends a new tag", func(t *testing.T) {
		store := mocks.NewMockFavoritesStore(t)
		store.EXPECT().List(mock.Anything).Return(sampleFavorites(), nil)
		store.EXPECT().
			Update(mock.Anything, mock.MatchedBy(func(f domain.Favorite) bool {
				return f.ID == 1 && assert.ObjectsAreEqual([]string{"Work", "monday"}, f.Tags)
			})).
			Return(nil)

		svc := NewFavoritesService(FavoritesServiceConfig{Store: store, Logger: discardLogger()})

		got, err := svc.AddTag(context.Background(), 1, " monday ")
		require.NoError(t, err)
		assert.Equal(t, []string{"Work", "monday"}, got.Tags)
	})

	t.Run("existing tag is a no-op", func(t *testing.T) {
		store := mocks.NewMockFavoritesStore(t)
		store.EXPECT().List(mock.Anything).Return(sampleFavorites(), nil)

		svc := NewFavoritesService(FavoritesServiceConfig{Store: store, Logger: discardLogger()})

		got, err := svc.AddTag(context.Background(), 1, "work")
		require.NoError(t, err)
		assert.Equal(t, []string{"Work"}, got.Tags)
	})

	t.Run("unknown favorite", func(t *testing.T) {
		store := mocks.NewMockFavoritesStore(t)
		store.EXPECT().List(mock.Anything).Return(sampleFavorites(), nil)

		svc := NewFavoritesService(FavoritesServiceConfig{Store: store, Logger: discardLogger()})

		_, err := svc.AddTag(context.Background(), 42, "x")
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("empty tag", func(t *testing.T) {
		svc := NewFavoritesService(FavoritesServiceConfig{Store: mocks.NewMockFavoritesStore(t), Logger: discardLogger()})

		_, err := svc.AddTag(context.Background(), 1, "  ")
		assert.True(t, domain.IsValidation(err))
	})
}

func TestFavoritesService_Remove(t *testing.T) {
	store := mocks.NewMockFavoritesStore(t)
	store.EXPECT().Remove(mock.Anything, 9).Return(domain.NewNotFoundError("favorite", "9"))

	svc := NewFavoritesService(FavoritesServiceConfig{Store: store, Logger: discardLogger()})

	err := svc.Remove(context.Background(), 9)
	assert.True(t, domain.IsNotFound(err))
}

func TestFavoritesService_Export(t *testing.T) {
	t.Run("no exporter", func(t *testing.T) {
		svc := NewFavoritesService(FavoritesServiceConfig{Store: mocks.NewMockFavoritesStore(t), Logger: discardLogger()})

		err := svc.Export(context.Background(), &bytes.Buffer{}, domain.DataMarkdown)
		assert.True(t, domain.IsUnavailable(err))
	})

	t.Run("exports every favorite", func(t *testing.T) {
		var buf bytes.Buffer

		favorites := sampleFavorites()

		store := mocks.NewMockFavoritesStore(t)
		store.EXPECT().List(mock.Anything).Return(favorites, nil)

		exporter := mocks.NewMockFavoritesExporter(t)
		exporter.EXPECT().ExportFavorites(&buf, favorites, domain.DataText).Return(nil)

		svc := NewFavoritesService(FavoritesServiceConfig{Store: store, Exporter: exporter, Logger: discardLogger()})

		require.NoError(t, svc.Export(context.Background(), &buf, domain.DataText))
	})
}

func TestComputeFavoriteStats(t *testing.T) {
	stats := ComputeFavoriteStats(sampleFavorites())

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, map[string]int{"success": 1, "love": 1, "wisdom": 1}, stats.ByTheme)
	assert.Equal(t, map[string]int{"motivation": 1, "love": 1, "wisdom": 1}, stats.ByEmotion)
	assert.Equal(t, []domain.Count{
		{Key: "William Shakespeare", Count: 2},
		{Key: "Winston Churchill", Count: 1},
	}, stats.TopAuthors)
}

func TestNewFavoritesService_RequiresStore(t *testing.T) {
	assert.Panics(t, func() {
		NewFavoritesService(FavoritesServiceConfig{})
	})
}
