package domain

import (
	"golang.org/x/text/language"
)

// Language is a supported quote language.
type Language string

// Supported languages.
const (
	LanguageEnglish Language = "en"
	LanguageFrench  Language = "fr"
)

var languageMatcher = language.NewMatcher([]language.Tag{language.English, language.French})

// ParseLanguage accepts any BCP 47 tag and maps it onto en or fr.
// "fr-CA" becomes fr. Empty input is English.
func ParseLanguage(s string) (Language, error) {
	if s == "" {
		return LanguageEnglish, nil
	}

	tag, err := language.Parse(s)
	if err != nil {
		return "", NewValidationErrorWithValue("language", "invalid language tag", s)
	}

	_, idx, conf := languageMatcher.Match(tag)
	if conf == language.No {
		return "", NewValidationErrorWithValue("language", "unsupported language", s)
	}

	if idx == 1 {
		return LanguageFrench, nil
	}

	return LanguageEnglish, nil
}

// Tag returns the x/text tag for l.
func (l Language) Tag() language.Tag {
	if l == LanguageFrench {
		return language.French
	}

	return language.English
}

func (l Language) String() string { return string(l) }
