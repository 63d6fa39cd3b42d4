package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quote-studio/internal/domain"
)

func contextAt(weekday time.Weekday, hour int, weather domain.Weather) domain.Context {
	c := domain.NewContext(at(weekday, hour))
	c.Weather = weather

	return c
}

func TestSelectTheme(t *testing.T) {
	tests := []struct {
		name      string
		requested domain.Theme
		ctx       domain.Context
		want      domain.Theme
	}{
		{
			name:      "concrete request wins over every signal",
			requested: domain.ThemeLove,
			ctx:       contextAt(time.Monday, 9, domain.WeatherRain),
			want:      domain.ThemeLove,
		},
		{
			name:      "weather outweighs weekday and period",
			requested: domain.ThemeAuto,
			ctx:       contextAt(time.Monday, 9, domain.WeatherClear),
			want:      domain.ThemeHappiness,
		},
		{
			name:      "monday morning without weather",
			requested: domain.ThemeAuto,
			ctx:       contextAt(time.Monday, 9, domain.WeatherUnknown),
			want:      domain.ThemeMotivation,
		},
		{
			name:      "thursday afternoon",
			requested: domain.ThemeAuto,
			ctx:       contextAt(time.Thursday, 13, domain.WeatherUnknown),
			want:      domain.ThemeSuccess,
		},
		{
			name:      "weekend afternoon",
			requested: domain.ThemeAuto,
			ctx:       contextAt(time.Saturday, 14, domain.WeatherUnknown),
			want:      domain.ThemeHappiness,
		},
		{
			name:      "weekend morning",
			requested: domain.ThemeAuto,
			ctx:       contextAt(time.Saturday, 9, domain.WeatherUnknown),
			want:      domain.ThemeLove,
		},
		{
			name:      "weekend outweighs sunday evening wisdom",
			requested: domain.ThemeAuto,
			ctx:       contextAt(time.Sunday, 19, domain.WeatherUnknown),
			want:      domain.ThemeHappiness,
		},
		{
			name:      "weather outweighs weekend",
			requested: domain.ThemeAuto,
			ctx:       contextAt(time.Sunday, 14, domain.WeatherSnow),
			want:      domain.ThemeLove,
		},
		{
			name:      "night rain",
			requested: domain.ThemeAuto,
			ctx:       contextAt(time.Wednesday, 23, domain.WeatherRain),
			want:      domain.ThemeCourage,
		},
		{
			name:      "empty request counts as auto",
			requested: "",
			ctx:       contextAt(time.Tuesday, 10, domain.WeatherMist),
			want:      domain.ThemeWisdom,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectTheme(tt.requested, tt.ctx, first)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.Concrete())
		})
	}
}

func TestSelectTheme_NoSignalPicksAtRandom(t *testing.T) {
	tests := []struct {
		name string
		pick func(int) int
		want domain.Theme
	}{
		{name: "first", pick: first, want: domain.ThemeMotivation},
		{name: "fourth", pick: func(int) int { return 3 }, want: domain.ThemeSuccess},
		{name: "out of range falls back to first", pick: func(n int) int { return n }, want: domain.ThemeMotivation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectTheme(domain.ThemeAuto, domain.Context{}, tt.pick))
		})
	}
}

func TestSelectTheme_ZeroContextHasNoWeekdayVote(t *testing.T) {
	scores := scoreThemes(domain.Context{})

	for _, s := range scores {
		assert.Zero(t, s.Score, s.Theme)
	}
}

func TestThemeSelector_MinScore(t *testing.T) {
	var calls int

	pick := func(n int) int {
		calls++
		assert.Equal(t, len(domain.AllThemes()), n)

		return 6
	}

	s := NewThemeSelector(5, pick)

	// Monday morning scores motivation 3, below the minimum.
	got := s.Select(domain.ThemeAuto, contextAt(time.Monday, 9, domain.WeatherUnknown))
	assert.Equal(t, domain.ThemeInspiration, got)
	assert.Equal(t, 1, calls)

	// Weather alone scores 8.
	got = s.Select(domain.ThemeAuto, contextAt(time.Monday, 9, domain.WeatherClouds))
	assert.Equal(t, domain.ThemeWisdom, got)
	assert.Equal(t, 1, calls)
}

func TestThemeSelector_Explain(t *testing.T) {
	s := NewThemeSelector(0, nil)

	scores := s.Explain(contextAt(time.Saturday, 15, domain.WeatherClear))
	require.Len(t, scores, len(domain.AllThemes()))

	for i, theme := range domain.AllThemes() {
		assert.Equal(t, theme, scores[i].Theme)
	}

	byTheme := make(map[domain.Theme]ThemeScore, len(scores))
	for _, sc := range scores {
		byTheme[sc.Theme] = sc
	}

	happiness := byTheme[domain.ThemeHappiness]
	assert.Equal(t, weatherWeight+weekendWeight, happiness.Score)
	assert.Equal(t, []string{"weather clear", "weekend afternoon"}, happiness.Reasons)

	love := byTheme[domain.ThemeLove]
	assert.Equal(t, weekdayWeight, love.Score)
	assert.Equal(t, []string{"Saturday"}, love.Reasons)

	inspiration := byTheme[domain.ThemeInspiration]
	assert.Equal(t, periodWeight, inspiration.Score)
	assert.Equal(t, []string{"afternoon"}, inspiration.Reasons)

	assert.Zero(t, byTheme[domain.ThemeSuccess].Score)
	assert.Empty(t, byTheme[domain.ThemeSuccess].Reasons)
}

func TestSelectTheme_StrongestSignalDecides(t *testing.T) {
	for weather, want := range weatherVotes {
		for day := time.Sunday; day <= time.Saturday; day++ {
			for hour := 0; hour < 24; hour++ {
				got := SelectTheme(domain.ThemeAuto, contextAt(day, hour, weather), first)
				require.Equal(t, want, got, "%s %s %dh", weather, day, hour)
			}
		}
	}
}
