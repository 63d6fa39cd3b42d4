package domain

import (
	"strings"
	"time"
)

// HistoryEntry is one generated quote as stored in the history.
type HistoryEntry struct {
	ID        string       `json:"id"`
	CreatedAt time.Time    `json:"created_at"`
	Format    ExportFormat `json:"format"`
	Preset    string       `json:"preset"`
	Styled    StyledQuote  `json:"styled"`
}

// HistoryFilter narrows a history listing. Zero fields do not restrict.
type HistoryFilter struct {
	Theme   Theme
	Emotion Emotion
	Label   Label
	Keyword string
	From    time.Time
	To      time.Time
	Offset  int
	Limit   int
}

// Matches reports whether e passes every set criterion.
func (f HistoryFilter) Matches(e HistoryEntry) bool {
	if f.Theme != "" && f.Theme != ThemeAuto && e.Styled.Quote.Theme != f.Theme {
		return false
	}

	if f.Emotion != "" && e.Styled.Emotion() != f.Emotion {
		return false
	}

	if f.Label != "" && (e.Styled.Sentiment == nil || e.Styled.Sentiment.Label != f.Label) {
		return false
	}

	if !f.From.IsZero() && e.CreatedAt.Before(f.From) {
		return false
	}

	if !f.To.IsZero() && !e.CreatedAt.Before(f.To) {
		return false
	}

	if f.Keyword != "" && !containsFold(e.Styled.Quote.Text, f.Keyword) &&
		!containsFold(e.Styled.Quote.Author, f.Keyword) &&
		!containsFold(e.Styled.DisplayText(), f.Keyword) {
		return false
	}

	return true
}

// HistoryStats summarizes the history.
type HistoryStats struct {
	Total           int            `json:"total"`
	ByTheme         map[string]int `json:"by_theme"`
	ByDay           map[string]int `json:"by_day"`
	TopEmotions     []Count        `json:"top_emotions"`
	TopAuthors      []Count        `json:"top_authors"`
	FavoriteTheme   string         `json:"favorite_theme,omitempty"`
	FavoriteEmotion string         `json:"favorite_emotion,omitempty"`
	FavoriteAuthor  string         `json:"favorite_author,omitempty"`
	First           *time.Time     `json:"first,omitempty"`
	Last            *time.Time     `json:"last,omitempty"`
	LastWeek        int            `json:"last_week"`
	LastMonth       int            `json:"last_month"`
}

// Count is a key with its number of occurrences.
type Count struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Favorite is a quote the user chose to keep.
type Favorite struct {
	ID        int       `json:"id"`
	QuoteID   string    `json:"quote_id"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	Theme     Theme     `json:"theme"`
	Emotion   Emotion   `json:"emotion"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
}

// FavoriteFromStyled builds an unsaved favorite from a generated quote.
func FavoriteFromStyled(s StyledQuote) Favorite {
	return Favorite{
		QuoteID: s.Quote.ID,
		Text:    s.DisplayText(),
		Author:  s.Quote.Author,
		Theme:   s.Quote.Theme,
		Emotion: s.Emotion(),
		Tags:    []string{},
	}
}

// FavoriteStats summarizes the favorites.
type FavoriteStats struct {
	Total      int            `json:"total"`
	ByTheme    map[string]int `json:"by_theme"`
	ByEmotion  map[string]int `json:"by_emotion"`
	TopAuthors []Count        `json:"top_authors"`
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(FoldKey(haystack), FoldKey(needle))
}
