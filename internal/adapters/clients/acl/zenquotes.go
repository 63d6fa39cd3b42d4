package acl

import (
	"context"
	"log/slog"
	"strings"
	"unicode"

	"github.com/jsamuelsen/quote-studio/internal/adapters/clients"
	"github.com/jsamuelsen/quote-studio/internal/domain"
)

// zenQuotesNotice is the author ZenQuotes uses for its rate-limit message,
// which it serves as if it were a quote.
const zenQuotesNotice = "zenquotes.io"

// minPrefixLen is the shortest keyword matched as a prefix; shorter ones
// ("win", "joy") must match a whole word.
const minPrefixLen = 4

// themeKeywords tags remote quotes with themes by word prefix.
var themeKeywords = map[domain.Theme][]string{
	domain.ThemeMotivation:  {"motivat", "inspire", "success", "achieve", "goal", "dream", "action"},
	domain.ThemeWisdom:      {"wisdom", "wise", "knowledge", "learn", "understand", "philosoph", "truth"},
	domain.ThemeLove:        {"love", "heart", "compassion", "kindness", "care", "affection"},
	domain.ThemeCourage:     {"courage", "brave", "fear", "strength", "persever", "resilien"},
	domain.ThemeSuccess:     {"success", "achievement", "win", "wins", "winning", "victor", "accomplish", "excel"},
	domain.ThemeHappiness:   {"happiness", "happy", "joy", "joyful", "smile", "grateful", "positive", "delight"},
	domain.ThemeInspiration: {"inspir", "creativ", "imagin", "dream", "vision", "passion"},
}

// zenQuote is one item of GET /api/quotes.
type zenQuote struct {
	Q string `json:"q"`
	A string `json:"a"`
	H string `json:"h"`
}

// ZenQuotes is the remote quote provider.
type ZenQuotes struct {
	BaseAdapter
}

// NewZenQuotes builds the adapter on client.
func NewZenQuotes(client *clients.Client, logger *slog.Logger) *ZenQuotes {
	return &ZenQuotes{BaseAdapter: NewBaseAdapter(client, client.ServiceName(), logger)}
}

// FetchBatch returns the provider's current batch, tagged with themes.
// Items without text and the rate-limit notice are dropped.
func (z *ZenQuotes) FetchBatch(ctx context.Context) ([]domain.Quote, error) {
	body, err := z.Get(ctx, "/api/quotes", nil, "fetch quotes")
	if err != nil {
		return nil, err
	}

	items, err := DecodeResponse[[]zenQuote](body)
	if err != nil {
		return nil, domain.NewUnavailableError(z.Name(), err.Error())
	}

	quotes, rejected := TranslateSlice(items, toDomainQuote)

	z.logger.DebugContext(ctx, "fetched quote batch",
		slog.Int("received", len(items)),
		slog.Int("kept", len(quotes)),
		slog.Int("rejected", rejected),
	)

	return quotes, nil
}

func toDomainQuote(ext *zenQuote) (domain.Quote, error) {
	if strings.EqualFold(strings.TrimSpace(ext.A), zenQuotesNotice) {
		return domain.Quote{}, domain.NewValidationError("a", "provider notice")
	}

	themes := TagThemes(ext.Q)
	tags := make([]string, len(themes))

	var primary domain.Theme

	for i, t := range themes {
		tags[i] = string(t)
	}

	if len(themes) > 0 {
		primary = themes[0]
	}

	return domain.NewQuote(domain.QuoteParams{
		Text:     ext.Q,
		Author:   ext.A,
		Theme:    primary,
		Tags:     tags,
		Language: domain.LanguageEnglish,
		Source:   domain.SourceRemote,
	})
}

// TagThemes returns the themes whose keywords match a word of text, in
// canonical theme order.
func TagThemes(text string) []domain.Theme {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})

	var out []domain.Theme

	for _, theme := range domain.AllThemes() {
		if matchesAny(words, themeKeywords[theme]) {
			out = append(out, theme)
		}
	}

	return out
}

func matchesAny(words, keywords []string) bool {
	for _, w := range words {
		for _, k := range keywords {
			if w == k || (len(k) >= minPrefixLen && strings.HasPrefix(w, k)) {
				return true
			}
		}
	}

	return false
}
