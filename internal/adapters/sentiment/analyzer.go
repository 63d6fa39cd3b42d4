// Package sentiment scores quote text.
//
// English text goes through govader. French text is scored the same way
// over an embedded French lexicon: word valences are summed with negation,
// booster and exclamation adjustments, then normalized into [-1, 1]. The
// dominant emotion comes from keyword buckets checked in a fixed order,
// falling back to a polarity band when nothing matches.
package sentiment

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"unicode"

	"github.com/jonreiter/govader"
	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen/quote-studio/internal/domain"
)

//go:embed lexicon.yaml
var embeddedLexicon []byte

const (
	// normalizationAlpha approximates the maximum expected sum of valences.
	normalizationAlpha = 15.0

	negationScalar = -0.74
	negationWindow = 3

	exclamationBoost = 0.292
	maxExclamations  = 4

	// boosterReach is how many tokens a booster waits for a valence word.
	boosterReach = 2

	maxKeywords = 3

	// minPrefixLen is the shortest keyword that also matches inflected forms.
	minPrefixLen = 4
)

type lexiconFile struct {
	Languages map[string]languageFile `yaml:"languages"`
	Emotions  []emotionFile           `yaml:"emotions"`
}

type languageFile struct {
	Negators []string           `yaml:"negators"`
	Boosters map[string]float64 `yaml:"boosters"`
	Valence  map[string]float64 `yaml:"valence"`
}

type emotionFile struct {
	Emotion  string   `yaml:"emotion"`
	Keywords []string `yaml:"keywords"`
}

type table struct {
	negators map[string]bool
	boosters map[string]float64
	valence  map[string]float64
}

type keyword struct {
	display string
	folded  string
}

type bucket struct {
	emotion  domain.Emotion
	keywords []keyword
}

// Analyzer is immutable after construction and safe for concurrent use.
type Analyzer struct {
	vader   *govader.SentimentIntensityAnalyzer
	french  table
	buckets []bucket
}

// New loads the embedded lexicon.
func New() (*Analyzer, error) {
	return Load(bytes.NewReader(embeddedLexicon))
}

// Load builds an Analyzer from a lexicon document.
func Load(r io.Reader) (*Analyzer, error) {
	var f lexiconFile

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parsing lexicon: %w", err)
	}

	a := &Analyzer{vader: govader.NewSentimentIntensityAnalyzer()}

	var haveFrench bool

	for code, lf := range f.Languages {
		lang, err := domain.ParseLanguage(code)
		if err != nil {
			return nil, fmt.Errorf("lexicon: %w", err)
		}

		if lang != domain.LanguageFrench {
			return nil, fmt.Errorf("lexicon: language %q is scored by vader", lang)
		}

		a.french = newTable(lf)
		haveFrench = true
	}

	if !haveFrench {
		return nil, fmt.Errorf("lexicon: missing language %q", domain.LanguageFrench)
	}

	seen := make(map[domain.Emotion]bool, len(f.Emotions))

	for _, ef := range f.Emotions {
		emotion := domain.Emotion(strings.ToLower(strings.TrimSpace(ef.Emotion)))
		if !knownEmotion(emotion) {
			return nil, fmt.Errorf("lexicon: unknown emotion %q", ef.Emotion)
		}

		if seen[emotion] {
			return nil, fmt.Errorf("lexicon: emotion %q listed twice", emotion)
		}

		seen[emotion] = true

		b := bucket{emotion: emotion}
		for _, kw := range ef.Keywords {
			b.keywords = append(b.keywords, keyword{display: kw, folded: domain.FoldKey(kw)})
		}

		a.buckets = append(a.buckets, b)
	}

	if len(a.buckets) == 0 {
		return nil, errors.New("lexicon: no emotion buckets")
	}

	return a, nil
}

func newTable(lf languageFile) table {
	t := table{
		negators: make(map[string]bool, len(lf.Negators)),
		boosters: make(map[string]float64, len(lf.Boosters)),
		valence:  make(map[string]float64, len(lf.Valence)),
	}

	for _, w := range lf.Negators {
		t.negators[domain.FoldKey(w)] = true
	}

	for w, v := range lf.Boosters {
		t.boosters[domain.FoldKey(w)] = v
	}

	for w, v := range lf.Valence {
		t.valence[domain.FoldKey(w)] = v
	}

	return t
}

func knownEmotion(e domain.Emotion) bool {
	for _, known := range domain.AllEmotions() {
		if e == known {
			return true
		}
	}

	return false
}

// Analyze scores text. English uses VADER polarity, with subjectivity as
// the share of positive and negative mass. Anything else is scored with the
// French lexicon.
func (a *Analyzer) Analyze(text string, lang domain.Language) domain.Sentiment {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return domain.NewSentiment(0, 0, domain.EmotionForPolarity(0), nil)
	}

	var compound, subjectivity float64

	if lang == domain.LanguageEnglish {
		scores := a.vader.PolarityScores(text)
		compound = scores.Compound
		subjectivity = math.Min(1, scores.Positive+scores.Negative)
	} else {
		compound, subjectivity = a.french.score(text, tokens)
	}

	emotion, keywords := a.emotionFor(tokens)
	if emotion == "" {
		emotion = domain.EmotionForPolarity(compound)
	}

	return domain.NewSentiment(round(compound), round(subjectivity), emotion, keywords)
}

// score returns the normalized compound polarity and the share of tokens
// that carried valence or emphasis.
func (t table) score(text string, tokens []string) (float64, float64) {
	var (
		sum        float64
		weighted   int
		negated    int
		boost      float64
		boostReach int
	)

	for _, tok := range tokens {
		if t.negators[tok] {
			negated = negationWindow
			continue
		}

		if b, ok := t.boosters[tok]; ok {
			boost += b
			boostReach = boosterReach
			weighted++

			decay(&negated)

			continue
		}

		if v, ok := t.valence[tok]; ok {
			weighted++

			if boostReach > 0 {
				v += math.Copysign(boost, v)
			}

			if negated > 0 {
				v *= negationScalar
			}

			sum += v
			boost, boostReach = 0, 0
		}

		decay(&negated)
		decay(&boostReach)
	}

	if sum != 0 {
		bangs := min(strings.Count(text, "!"), maxExclamations)
		sum += math.Copysign(float64(bangs)*exclamationBoost, sum)
	}

	compound := sum / math.Sqrt(sum*sum+normalizationAlpha)

	return compound, math.Min(1, float64(weighted)/float64(len(tokens)))
}

// emotionFor returns the first bucket with a keyword present in tokens, and
// up to maxKeywords of the keywords it matched.
func (a *Analyzer) emotionFor(tokens []string) (domain.Emotion, []string) {
	for _, b := range a.buckets {
		var matched []string

		for _, kw := range b.keywords {
			if containsKeyword(tokens, kw.folded) {
				matched = append(matched, kw.display)
				if len(matched) == maxKeywords {
					break
				}
			}
		}

		if len(matched) > 0 {
			return b.emotion, matched
		}
	}

	return "", nil
}

func containsKeyword(tokens []string, kw string) bool {
	for _, tok := range tokens {
		if tok == kw || (len(kw) >= minPrefixLen && strings.HasPrefix(tok, kw)) {
			return true
		}
	}

	return false
}

// tokenize folds text and splits it on anything that is not a letter.
// Elisions split too: "n'est" yields "n" and "est".
func tokenize(text string) []string {
	return strings.FieldsFunc(domain.FoldKey(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}

func decay(n *int) {
	if *n > 0 {
		*n--
	}
}

func round(v float64) float64 {
	return math.Round(v*10000) / 10000
}
