package app

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/jsamuelsen/quote-studio/internal/domain"
)

// Vote weights. Each signal outweighs every weaker signal combined, so the
// strongest available signal decides: weather, then weekend, then weekday.
const (
	weatherWeight = 8
	weekendWeight = 4
	weekdayWeight = 2
	periodWeight  = 1
)

var weatherVotes = map[domain.Weather]domain.Theme{
	domain.WeatherClear:        domain.ThemeHappiness,
	domain.WeatherClouds:       domain.ThemeWisdom,
	domain.WeatherRain:         domain.ThemeCourage,
	domain.WeatherDrizzle:      domain.ThemeInspiration,
	domain.WeatherThunderstorm: domain.ThemeCourage,
	domain.WeatherSnow:         domain.ThemeLove,
	domain.WeatherMist:         domain.ThemeWisdom,
}

var weekdayVotes = map[time.Weekday]domain.Theme{
	time.Monday:    domain.ThemeMotivation,
	time.Tuesday:   domain.ThemeCourage,
	time.Wednesday: domain.ThemeInspiration,
	time.Thursday:  domain.ThemeSuccess,
	time.Friday:    domain.ThemeHappiness,
	time.Saturday:  domain.ThemeLove,
	time.Sunday:    domain.ThemeWisdom,
}

var periodVotes = map[domain.Period]domain.Theme{
	domain.PeriodMorning:   domain.ThemeMotivation,
	domain.PeriodAfternoon: domain.ThemeInspiration,
	domain.PeriodEvening:   domain.ThemeWisdom,
	domain.PeriodNight:     domain.ThemeHappiness,
}

// ThemeScore is one row of the auto-selection table.
type ThemeScore struct {
	Theme   domain.Theme `json:"theme"`
	Score   int          `json:"score"`
	Reasons []string     `json:"reasons,omitempty"`
}

// ThemeSelector resolves the auto theme from the request context.
type ThemeSelector struct {
	minScore int
	pick     func(n int) int
}

// NewThemeSelector creates a selector. A winning score below minScore is
// treated as no signal and a theme is picked at random; pick defaults to
// math/rand/v2.
func NewThemeSelector(minScore int, pick func(n int) int) *ThemeSelector {
	if pick == nil {
		pick = rand.IntN
	}

	return &ThemeSelector{minScore: minScore, pick: pick}
}

// Select returns requested when it is concrete, otherwise the vote winner.
func (s *ThemeSelector) Select(requested domain.Theme, c domain.Context) domain.Theme {
	return selectTheme(requested, c, s.minScore, s.pick)
}

// Explain returns the vote table in canonical theme order.
func (s *ThemeSelector) Explain(c domain.Context) []ThemeScore {
	return scoreThemes(c)
}

// SelectTheme resolves requested against c with no minimum score.
// The result is always a concrete theme.
func SelectTheme(requested domain.Theme, c domain.Context, pick func(n int) int) domain.Theme {
	return selectTheme(requested, c, 0, pick)
}

func selectTheme(requested domain.Theme, c domain.Context, minScore int, pick func(n int) int) domain.Theme {
	if requested.Concrete() {
		return requested
	}

	scores := scoreThemes(c)

	best := scores[0]
	for _, s := range scores[1:] {
		if s.Score > best.Score {
			best = s
		}
	}

	if best.Score == 0 || best.Score < minScore {
		themes := domain.AllThemes()
		if pick == nil {
			pick = rand.IntN
		}

		i := pick(len(themes))
		if i < 0 || i >= len(themes) {
			i = 0
		}

		return themes[i]
	}

	return best.Theme
}

func scoreThemes(c domain.Context) []ThemeScore {
	themes := domain.AllThemes()
	scores := make([]ThemeScore, len(themes))

	for i, t := range themes {
		scores[i] = ThemeScore{Theme: t}
	}

	vote := func(t domain.Theme, weight int, reason string) {
		if i := t.Index(); i >= 0 {
			scores[i].Score += weight
			scores[i].Reasons = append(scores[i].Reasons, reason)
		}
	}

	if t, ok := weatherVotes[c.Weather]; ok {
		vote(t, weatherWeight, fmt.Sprintf("weather %s", c.Weather))
	}

	// A zero context has no day; its Weekday would read as Sunday.
	dated := !c.At.IsZero()

	if dated && c.Weekend() {
		if c.Period == domain.PeriodAfternoon || c.Period == domain.PeriodEvening {
			vote(domain.ThemeHappiness, weekendWeight, "weekend "+string(c.Period))
		} else {
			vote(domain.ThemeLove, weekendWeight, "weekend "+string(c.Period))
		}
	}

	if t, ok := weekdayVotes[c.Weekday]; ok && dated {
		vote(t, weekdayWeight, c.Weekday.String())
	}

	if t, ok := periodVotes[c.Period]; ok {
		vote(t, periodWeight, string(c.Period))
	}

	return scores
}
