package domain

import "strings"

// Style is the visual template of a rendered quote.
type Style string

// Visual styles.
const (
	StyleMinimal Style = "minimal"
	StyleModern  Style = "modern"
	StyleElegant Style = "elegant"
)

// AllStyles returns the styles in display order.
func AllStyles() []Style {
	return []Style{StyleMinimal, StyleModern, StyleElegant}
}

// ParseStyle accepts the style names plus the French "moderne" and "élégant".
func ParseStyle(s string) (Style, error) {
	switch FoldKey(s) {
	case "", "minimal":
		return StyleMinimal, nil
	case "modern", "moderne":
		return StyleModern, nil
	case "elegant":
		return StyleElegant, nil
	default:
		return "", NewValidationErrorWithValue("style", "unknown style", s)
	}
}

// ExportFormat is an image encoding.
type ExportFormat string

// Image formats.
const (
	FormatPNG  ExportFormat = "png"
	FormatJPEG ExportFormat = "jpeg"
	FormatWebP ExportFormat = "webp"
)

// ParseExportFormat accepts png, jpeg, jpg and webp.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "png":
		return FormatPNG, nil
	case "jpeg", "jpg":
		return FormatJPEG, nil
	case "webp":
		return FormatWebP, nil
	default:
		return "", NewValidationErrorWithValue("format", "unsupported image format", s)
	}
}

// ContentType returns the MIME type for f.
func (f ExportFormat) ContentType() string {
	switch f {
	case FormatJPEG:
		return "image/jpeg"
	case FormatWebP:
		return "image/webp"
	default:
		return "image/png"
	}
}

// Extension returns the file extension for f, without the dot.
func (f ExportFormat) Extension() string {
	if f == FormatJPEG {
		return "jpg"
	}

	return string(f)
}

// Preset is a named canvas size.
type Preset struct {
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// DefaultPreset is the square canvas used when none is requested.
const DefaultPreset = "square"

var presets = []Preset{
	{Name: DefaultPreset, Width: 1080, Height: 1080},
	{Name: "instagram_post", Width: 1080, Height: 1080},
	{Name: "instagram_story", Width: 1080, Height: 1920},
	{Name: "facebook_post", Width: 1200, Height: 630},
	{Name: "twitter_post", Width: 1200, Height: 675},
	{Name: "linkedin_post", Width: 1200, Height: 627},
}

// Presets returns every known preset.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)

	return out
}

// LookupPreset finds a preset by name. An empty name selects DefaultPreset.
func LookupPreset(name string) (Preset, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = DefaultPreset
	}

	for _, p := range presets {
		if p.Name == key {
			return p, nil
		}
	}

	return Preset{}, NewValidationErrorWithValue("preset", "unknown preset", name)
}

// Palette is a background, text and accent color triple in #RRGGBB form.
type Palette struct {
	Name       string `json:"name"`
	Background string `json:"background"`
	Text       string `json:"text"`
	Accent     string `json:"accent"`
}
