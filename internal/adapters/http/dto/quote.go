package dto

import (
	"encoding/base64"
	"time"

	"github.com/jsamuelsen/quote-studio/internal/app"
	"github.com/jsamuelsen/quote-studio/internal/domain"
	"github.com/jsamuelsen/quote-studio/internal/ports"
)

// GenerateRequest is the body of POST /api/v1/quotes/generate and the query
// of GET /api/v1/quotes/image. Empty fields take the configured defaults.
type GenerateRequest struct {
	Theme      string `json:"theme"      form:"theme"    validate:"omitempty,theme"`
	Style      string `json:"style"      form:"style"    validate:"omitempty,style"`
	Format     string `json:"format"     form:"format"   validate:"omitempty,image_format"`
	Preset     string `json:"preset"     form:"preset"   validate:"omitempty,preset"`
	Language   string `json:"lang"       form:"lang"     validate:"omitempty,bcp47_language_tag"`
	Favorite   bool   `json:"favorite"   form:"favorite"`
	PreferDark *bool  `json:"preferDark" form:"dark"`
}

// ToApp converts the request for the generator.
func (r GenerateRequest) ToApp() app.GenerateRequest {
	return app.GenerateRequest{
		Theme:      r.Theme,
		Style:      r.Style,
		Format:     r.Format,
		Preset:     r.Preset,
		Language:   r.Language,
		Favorite:   r.Favorite,
		PreferDark: r.PreferDark,
	}
}

// SentimentResponse is the sentiment annotation of a quote.
type SentimentResponse struct {
	Polarity     float64  `json:"polarity"`
	Subjectivity float64  `json:"subjectivity"`
	Label        string   `json:"label"`
	Emotion      string   `json:"emotion"`
	Intensity    float64  `json:"intensity"`
	Keywords     []string `json:"keywords,omitempty"`
}

// TranslationResponse is the translated display text.
type TranslationResponse struct {
	Text   string `json:"text"`
	Source string `json:"source"`
	Target string `json:"target"`
}

// QuoteResponse is a styled quote.
type QuoteResponse struct {
	ID          string               `json:"id"`
	Text        string               `json:"text"`
	Author      string               `json:"author"`
	Theme       string               `json:"theme"`
	Language    string               `json:"language"`
	Source      string               `json:"source"`
	Tags        []string             `json:"tags,omitempty"`
	DisplayText string               `json:"displayText"`
	Style       string               `json:"style,omitempty"`
	Palette     *domain.Palette      `json:"palette,omitempty"`
	Translation *TranslationResponse `json:"translation,omitempty"`
	Sentiment   *SentimentResponse   `json:"sentiment,omitempty"`
}

// NewQuoteResponse converts a styled quote.
func NewQuoteResponse(s domain.StyledQuote) QuoteResponse {
	resp := QuoteResponse{
		ID:          s.Quote.ID,
		Text:        s.Quote.Text,
		Author:      s.Quote.Author,
		Theme:       string(s.Quote.Theme),
		Language:    string(s.Quote.Language),
		Source:      string(s.Quote.Source),
		Tags:        s.Quote.Tags,
		DisplayText: s.DisplayText(),
		Style:       string(s.Style),
	}

	if s.Palette.Background != "" {
		palette := s.Palette
		resp.Palette = &palette
	}

	if s.Translation != nil {
		resp.Translation = &TranslationResponse{
			Text:   s.Translation.Text,
			Source: string(s.Translation.Source),
			Target: string(s.Translation.Target),
		}
	}

	if s.Sentiment != nil {
		resp.Sentiment = &SentimentResponse{
			Polarity:     s.Sentiment.Polarity,
			Subjectivity: s.Sentiment.Subjectivity,
			Label:        string(s.Sentiment.Label),
			Emotion:      string(s.Sentiment.Emotion),
			Intensity:    s.Sentiment.Intensity,
			Keywords:     s.Sentiment.Keywords,
		}
	}

	return resp
}

// ImageResponse carries an encoded image inline.
type ImageResponse struct {
	ContentType string `json:"contentType"`
	Format      string `json:"format"`
	Preset      string `json:"preset"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	// Data is standard base64.
	Data string `json:"data"`
}

// NewImageResponse base64-encodes img.
func NewImageResponse(img ports.RenderedImage) ImageResponse {
	return ImageResponse{
		ContentType: img.ContentType,
		Format:      string(img.Format),
		Preset:      img.Preset,
		Width:       img.Width,
		Height:      img.Height,
		Data:        base64.StdEncoding.EncodeToString(img.Data),
	}
}

// GenerateResponse is the result of one pipeline pass.
type GenerateResponse struct {
	Quote      QuoteResponse   `json:"quote"`
	Context    ContextResponse `json:"context"`
	Image      ImageResponse   `json:"image"`
	HistoryID  string          `json:"historyId,omitempty"`
	FavoriteID int             `json:"favoriteId,omitempty"`
	Notices    []string        `json:"notices"`
}

// NewGenerateResponse converts a generator result.
func NewGenerateResponse(r app.GenerateResult) GenerateResponse {
	notices := r.Notices
	if notices == nil {
		notices = []string{}
	}

	return GenerateResponse{
		Quote:      NewQuoteResponse(r.Styled),
		Context:    NewContextResponse(r.Styled.Context),
		Image:      NewImageResponse(r.Image),
		HistoryID:  r.HistoryID,
		FavoriteID: r.FavoriteID,
		Notices:    notices,
	}
}

// ContextResponse is the situational context of a request.
type ContextResponse struct {
	At       time.Time `json:"at"`
	Hour     int       `json:"hour"`
	Weekday  string    `json:"weekday"`
	Period   string    `json:"period"`
	Weather  string    `json:"weather"`
	Location string    `json:"location,omitempty"`
}

// NewContextResponse converts a domain context.
func NewContextResponse(c domain.Context) ContextResponse {
	return ContextResponse{
		At:       c.At,
		Hour:     c.Hour,
		Weekday:  c.Weekday.String(),
		Period:   string(c.Period),
		Weather:  string(c.Weather),
		Location: c.Location,
	}
}

// ContextDetailResponse is GET /api/v1/context: the context, a greeting and
// the auto theme vote table.
type ContextDetailResponse struct {
	ContextResponse

	Message      string           `json:"message"`
	TemperatureC *float64         `json:"temperatureC,omitempty"`
	AutoTheme    string           `json:"autoTheme"`
	Scores       []app.ThemeScore `json:"scores"`
}

// ThemeResponse lists the accepted themes.
type ThemeResponse struct {
	Themes []string `json:"themes"`
	Styles []string `json:"styles"`
}

// NewThemeResponse lists every concrete theme followed by auto, and the styles.
func NewThemeResponse() ThemeResponse {
	resp := ThemeResponse{}

	for _, t := range domain.AllThemes() {
		resp.Themes = append(resp.Themes, string(t))
	}

	resp.Themes = append(resp.Themes, string(domain.ThemeAuto))

	for _, s := range domain.AllStyles() {
		resp.Styles = append(resp.Styles, string(s))
	}

	return resp
}

// PresetResponse lists the canvas presets and image formats.
type PresetResponse struct {
	Presets []domain.Preset `json:"presets"`
	Formats []string        `json:"formats"`
}

// NewPresetResponse lists every preset and format.
func NewPresetResponse() PresetResponse {
	return PresetResponse{
		Presets: domain.Presets(),
		Formats: []string{string(domain.FormatPNG), string(domain.FormatJPEG), string(domain.FormatWebP)},
	}
}
