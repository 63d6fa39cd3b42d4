package domain

import (
	"strings"

	"github.com/google/uuid"
)

// UnknownAuthor is used when a provider omits the author.
const UnknownAuthor = "Unknown"

// QuoteSource records where a quote came from.
type QuoteSource string

// Quote sources.
const (
	SourceRemote QuoteSource = "remote"
	SourceCache  QuoteSource = "cache"
	SourceLocal  QuoteSource = "local"
)

var quoteNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("quote-studio/quotes"))

// Quote is an immutable quotation. Build it with NewQuote.
type Quote struct {
	// ID is derived from the normalized text, so the same quote from two
	// providers shares an ID.
	ID       string
	Text     string
	Author   string
	Theme    Theme
	Tags     []string
	Language Language
	Source   QuoteSource
}

// QuoteParams carries the raw fields a provider returned.
type QuoteParams struct {
	Text     string
	Author   string
	Theme    Theme
	Tags     []string
	Language Language
	Source   QuoteSource
}

// NewQuote normalizes provider data into a Quote.
// Empty text is rejected; an empty author becomes UnknownAuthor.
func NewQuote(p QuoteParams) (Quote, error) {
	text := strings.Join(strings.Fields(p.Text), " ")
	if text == "" {
		return Quote{}, ErrEmptyQuoteText
	}

	author := strings.TrimSpace(p.Author)
	if author == "" {
		author = UnknownAuthor
	}

	lang := p.Language
	if lang == "" {
		lang = LanguageEnglish
	}

	tags := make([]string, 0, len(p.Tags))
	for _, tag := range p.Tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}

	return Quote{
		ID:       QuoteID(text),
		Text:     text,
		Author:   author,
		Theme:    p.Theme,
		Tags:     tags,
		Language: lang,
		Source:   p.Source,
	}, nil
}

// QuoteID returns the stable identifier for a quote text.
func QuoteID(text string) string {
	key := FoldKey(strings.Join(strings.Fields(text), " "))

	return uuid.NewSHA1(quoteNamespace, []byte(key)).String()
}

// WithTheme returns a copy of q assigned to theme t.
func (q Quote) WithTheme(t Theme) Quote {
	q.Tags = append([]string(nil), q.Tags...)
	q.Theme = t

	return q
}

// WithSource returns a copy of q marked as coming from s.
func (q Quote) WithSource(s QuoteSource) Quote {
	q.Tags = append([]string(nil), q.Tags...)
	q.Source = s

	return q
}

// HasTag reports whether q carries tag, ignoring case and accents.
func (q Quote) HasTag(tag string) bool {
	want := FoldKey(tag)
	for _, t := range q.Tags {
		if FoldKey(t) == want {
			return true
		}
	}

	return false
}
