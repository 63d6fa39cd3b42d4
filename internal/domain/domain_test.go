package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTheme(t *testing.T) {
	tests := []struct {
		in      string
		want    Theme
		wantErr bool
	}{
		{in: "motivation", want: ThemeMotivation},
		{in: "  Love ", want: ThemeLove},
		{in: "sagesse", want: ThemeWisdom},
		{in: "Succès", want: ThemeSuccess},
		{in: "bonheur", want: ThemeHappiness},
		{in: "", want: ThemeAuto},
		{in: "auto", want: ThemeAuto},
		{in: "boredom", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTheme(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrValidation)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAllThemes_AreConcreteAndOrdered(t *testing.T) {
	themes := AllThemes()
	require.Len(t, themes, 7)

	for i, th := range themes {
		assert.True(t, th.Concrete())
		assert.Equal(t, i, th.Index())
	}

	assert.False(t, ThemeAuto.Concrete())

	// The returned slice is a copy.
	themes[0] = ThemeAuto
	assert.Equal(t, ThemeMotivation, AllThemes()[0])
}

func TestNewQuote(t *testing.T) {
	t.Run("defaults author", func(t *testing.T) {
		q, err := NewQuote(QuoteParams{Text: "  Stay   hungry. ", Theme: ThemeMotivation})
		require.NoError(t, err)

		assert.Equal(t, "Stay hungry.", q.Text)
		assert.Equal(t, UnknownAuthor, q.Author)
		assert.Equal(t, LanguageEnglish, q.Language)
		assert.NotEmpty(t, q.ID)
	})

	t.Run("rejects empty text", func(t *testing.T) {
		_, err := NewQuote(QuoteParams{Text: " \n\t", Author: "Nobody"})
		require.ErrorIs(t, err, ErrEmptyQuoteText)
	})

	t.Run("id is stable across whitespace and case", func(t *testing.T) {
		a, err := NewQuote(QuoteParams{Text: "Be yourself."})
		require.NoError(t, err)
		b, err := NewQuote(QuoteParams{Text: "be   YOURSELF."})
		require.NoError(t, err)

		assert.Equal(t, a.ID, b.ID)
	})

	t.Run("copies do not share tags", func(t *testing.T) {
		q, err := NewQuote(QuoteParams{Text: "x", Tags: []string{"a", " ", "b"}})
		require.NoError(t, err)
		require.Equal(t, []string{"a", "b"}, q.Tags)

		c := q.WithTheme(ThemeLove)
		c.Tags[0] = "changed"

		assert.Equal(t, "a", q.Tags[0])
		assert.Equal(t, ThemeLove, c.Theme)
		assert.True(t, q.HasTag("B"))
	})
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		in      string
		want    Language
		wantErr bool
	}{
		{in: "", want: LanguageEnglish},
		{in: "en", want: LanguageEnglish},
		{in: "en-GB", want: LanguageEnglish},
		{in: "fr", want: LanguageFrench},
		{in: "fr-CA", want: LanguageFrench},
		{in: "not a tag!", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLanguage(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPeriodForHour(t *testing.T) {
	cases := map[int]Period{
		0: PeriodNight, 4: PeriodNight, 5: PeriodMorning, 11: PeriodMorning,
		12: PeriodAfternoon, 16: PeriodAfternoon, 17: PeriodEvening,
		20: PeriodEvening, 21: PeriodNight, 23: PeriodNight,
	}

	for hour, want := range cases {
		assert.Equal(t, want, PeriodForHour(hour), "hour %d", hour)
	}
}

func TestNewContext(t *testing.T) {
	at := time.Date(2024, 6, 8, 18, 30, 0, 0, time.UTC) // Saturday

	c := NewContext(at)

	assert.Equal(t, 18, c.Hour)
	assert.Equal(t, PeriodEvening, c.Period)
	assert.Equal(t, WeatherUnknown, c.Weather)
	assert.True(t, c.Weekend())
}

func TestParseWeather(t *testing.T) {
	assert.Equal(t, WeatherClear, ParseWeather("Clear"))
	assert.Equal(t, WeatherMist, ParseWeather("Haze"))
	assert.Equal(t, WeatherThunderstorm, ParseWeather("Thunderstorm"))
	assert.Equal(t, WeatherUnknown, ParseWeather("Tornado"))
}

func TestNewSentiment(t *testing.T) {
	s := NewSentiment(1.7, -0.2, EmotionJoy, nil)

	assert.InDelta(t, 1.0, s.Polarity, 1e-9)
	assert.InDelta(t, 0.0, s.Subjectivity, 1e-9)
	assert.Equal(t, LabelPositive, s.Label)
	assert.InDelta(t, 1.0, s.Intensity, 1e-9)

	assert.Equal(t, LabelNeutral, LabelFor(0.3))
	assert.Equal(t, LabelNegative, LabelFor(-0.31))
}

func TestEmotionForPolarity(t *testing.T) {
	assert.Equal(t, EmotionJoy, EmotionForPolarity(0.6))
	assert.Equal(t, EmotionMotivation, EmotionForPolarity(0.2))
	assert.Equal(t, EmotionWisdom, EmotionForPolarity(0))
	assert.Equal(t, EmotionSadness, EmotionForPolarity(-0.3))
	assert.Equal(t, EmotionAnger, EmotionForPolarity(-0.9))
}

func TestLookupPreset(t *testing.T) {
	p, err := LookupPreset("")
	require.NoError(t, err)
	assert.Equal(t, 1080, p.Width)

	p, err = LookupPreset("instagram_story")
	require.NoError(t, err)
	assert.Equal(t, 1920, p.Height)

	_, err = LookupPreset("tiktok")
	require.ErrorIs(t, err, ErrValidation)
}

func TestParseExportFormat(t *testing.T) {
	f, err := ParseExportFormat("JPG")
	require.NoError(t, err)
	assert.Equal(t, FormatJPEG, f)
	assert.Equal(t, "image/jpeg", f.ContentType())
	assert.Equal(t, "jpg", f.Extension())

	_, err = ParseExportFormat("gif")
	require.Error(t, err)
}

func TestStyledQuote_Validate(t *testing.T) {
	q, err := NewQuote(QuoteParams{Text: "Love all.", Theme: ThemeLove})
	require.NoError(t, err)

	sq := StyledQuote{Quote: q, Style: StyleMinimal}
	require.NoError(t, sq.Validate())
	assert.Equal(t, "Love all.", sq.DisplayText())

	sq.Translation = &Translation{Text: "Aimez tout le monde.", Source: LanguageEnglish, Target: LanguageFrench}
	require.NoError(t, sq.Validate())
	assert.Equal(t, "Aimez tout le monde.", sq.DisplayText())
	assert.Equal(t, LanguageFrench, sq.DisplayLanguage())

	sq.Translation.Source = LanguageFrench
	require.ErrorIs(t, sq.Validate(), ErrValidation)

	unresolved := StyledQuote{Quote: q.WithTheme(ThemeAuto)}
	require.ErrorIs(t, unresolved.Validate(), ErrValidation)
}

func TestHistoryFilter_Matches(t *testing.T) {
	q, err := NewQuote(QuoteParams{Text: "Courage is grace under pressure.", Author: "Ernest Hemingway", Theme: ThemeCourage})
	require.NoError(t, err)

	sent := NewSentiment(0.4, 0.5, EmotionMotivation, nil)
	entry := HistoryEntry{
		CreatedAt: time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC),
		Styled:    StyledQuote{Quote: q, Sentiment: &sent},
	}

	tests := []struct {
		name   string
		filter HistoryFilter
		want   bool
	}{
		{name: "empty", filter: HistoryFilter{}, want: true},
		{name: "theme match", filter: HistoryFilter{Theme: ThemeCourage}, want: true},
		{name: "theme miss", filter: HistoryFilter{Theme: ThemeLove}, want: false},
		{name: "auto does not filter", filter: HistoryFilter{Theme: ThemeAuto}, want: true},
		{name: "emotion", filter: HistoryFilter{Emotion: EmotionMotivation}, want: true},
		{name: "label miss", filter: HistoryFilter{Label: LabelNegative}, want: false},
		{name: "keyword on author", filter: HistoryFilter{Keyword: "hemingway"}, want: true},
		{name: "keyword miss", filter: HistoryFilter{Keyword: "banana"}, want: false},
		{name: "from after", filter: HistoryFilter{From: entry.CreatedAt.Add(time.Hour)}, want: false},
		{name: "to is exclusive", filter: HistoryFilter{To: entry.CreatedAt}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(entry))
		})
	}
}

func TestParseDataFormat(t *testing.T) {
	f, err := ParseDataFormat("", HistoryExportFormats())
	require.NoError(t, err)
	assert.Equal(t, DataJSON, f)

	f, err = ParseDataFormat(" XLSX ", HistoryExportFormats())
	require.NoError(t, err)
	assert.Equal(t, DataXLSX, f)

	f, err = ParseDataFormat("markdown", FavoriteExportFormats())
	require.NoError(t, err)
	assert.Equal(t, DataMarkdown, f)

	_, err = ParseDataFormat("md", HistoryExportFormats())
	require.ErrorIs(t, err, ErrValidation)

	_, err = ParseDataFormat("xlsx", FavoriteExportFormats())
	require.ErrorIs(t, err, ErrValidation)

	assert.Equal(t, "text/csv; charset=utf-8", DataCSV.ContentType())
	assert.Equal(t, "application/json", DataJSON.ContentType())
}
