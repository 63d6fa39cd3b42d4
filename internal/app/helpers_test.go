package app

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quote-studio/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeClock is a settable clock for services that take a Clock func.
type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// at returns hour o'clock UTC on weekday of the week starting Monday 2024-03-04.
func at(weekday time.Weekday, hour int) time.Time {
	monday := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)
	offset := (int(weekday) + 6) % 7

	return monday.AddDate(0, 0, offset).Add(time.Duration(hour) * time.Hour)
}

func newQuote(t *testing.T, text, author string, theme domain.Theme, lang domain.Language, tags ...string) domain.Quote {
	t.Helper()

	q, err := domain.NewQuote(domain.QuoteParams{
		Text:     text,
		Author:   author,
		Theme:    theme,
		Tags:     tags,
		Language: lang,
	})
	require.NoError(t, err)

	return q
}

func first(int) int { return 0 }
