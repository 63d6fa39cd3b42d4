package domain

// Translation is a rendering of Quote.Text in another language.
// It is only ever produced from the quote it is attached to.
type Translation struct {
	Text   string   `json:"text"`
	Source Language `json:"source"`
	Target Language `json:"target"`
}

// StyledQuote is a quote decorated for display.
type StyledQuote struct {
	Quote       Quote        `json:"quote"`
	Style       Style        `json:"style"`
	Palette     Palette      `json:"palette"`
	Context     Context      `json:"context"`
	Translation *Translation `json:"translation,omitempty"`
	Sentiment   *Sentiment   `json:"sentiment,omitempty"`
}

// DisplayText is the text drawn on the image.
func (s StyledQuote) DisplayText() string {
	if s.Translation != nil && s.Translation.Text != "" {
		return s.Translation.Text
	}

	return s.Quote.Text
}

// DisplayLanguage is the language of DisplayText.
func (s StyledQuote) DisplayLanguage() Language {
	if s.Translation != nil && s.Translation.Text != "" {
		return s.Translation.Target
	}

	return s.Quote.Language
}

// Emotion returns the annotated emotion, or an empty value when unscored.
func (s StyledQuote) Emotion() Emotion {
	if s.Sentiment == nil {
		return ""
	}

	return s.Sentiment.Emotion
}

// Validate checks the invariants required before rendering.
func (s StyledQuote) Validate() error {
	if s.Quote.Text == "" {
		return ErrEmptyQuoteText
	}

	if s.Quote.Author == "" {
		return NewValidationError("author", "must not be empty")
	}

	if !s.Quote.Theme.Concrete() {
		return NewValidationErrorWithValue("theme", "must be resolved before rendering", s.Quote.Theme)
	}

	if s.Translation != nil && s.Translation.Source != s.Quote.Language {
		return NewValidationErrorWithValue("translation", "source language does not match quote", s.Translation.Source)
	}

	return nil
}
