package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Theme is the topical category a quote is selected for.
type Theme string

// Concrete themes, plus the request-only ThemeAuto.
const (
	ThemeMotivation  Theme = "motivation"
	ThemeLove        Theme = "love"
	ThemeWisdom      Theme = "wisdom"
	ThemeSuccess     Theme = "success"
	ThemeHappiness   Theme = "happiness"
	ThemeCourage     Theme = "courage"
	ThemeInspiration Theme = "inspiration"
	ThemeAuto        Theme = "auto"
)

// canonicalThemes fixes the order used for ties and listings.
var canonicalThemes = []Theme{
	ThemeMotivation,
	ThemeLove,
	ThemeWisdom,
	ThemeSuccess,
	ThemeHappiness,
	ThemeCourage,
	ThemeInspiration,
}

// themeAliases maps accent-folded names, including the French catalog labels.
var themeAliases = map[string]Theme{
	"motivation":  ThemeMotivation,
	"love":        ThemeLove,
	"amour":       ThemeLove,
	"wisdom":      ThemeWisdom,
	"sagesse":     ThemeWisdom,
	"success":     ThemeSuccess,
	"succes":      ThemeSuccess,
	"happiness":   ThemeHappiness,
	"bonheur":     ThemeHappiness,
	"courage":     ThemeCourage,
	"inspiration": ThemeInspiration,
	"auto":        ThemeAuto,
	"":            ThemeAuto,
}

// AllThemes returns the concrete themes in canonical order.
func AllThemes() []Theme {
	out := make([]Theme, len(canonicalThemes))
	copy(out, canonicalThemes)

	return out
}

// ParseTheme resolves a theme name or alias. Unknown names are a validation error.
func ParseTheme(s string) (Theme, error) {
	if t, ok := themeAliases[FoldKey(s)]; ok {
		return t, nil
	}

	return "", NewValidationErrorWithValue("theme", "unknown theme", s)
}

// Concrete reports whether t is one of the seven selectable themes.
func (t Theme) Concrete() bool {
	return t.Index() >= 0
}

// Index returns the canonical position of t, or -1 for auto and unknown values.
func (t Theme) Index() int {
	for i, c := range canonicalThemes {
		if c == t {
			return i
		}
	}

	return -1
}

func (t Theme) String() string { return string(t) }

// FoldKey lowercases s and strips diacritics so "Succès" and "succes" compare equal.
func FoldKey(s string) string {
	folder := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	folded, _, err := transform.String(folder, strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return strings.ToLower(strings.TrimSpace(s))
	}

	return folded
}
