package render

import (
	"fmt"
	"hash/fnv"
	"image/color"
	"strconv"
	"strings"

	"github.com/jsamuelsen/quote-studio/internal/domain"
)

// Text colors forced by the contrast rule.
const (
	darkText  = "#1A1A1A"
	lightText = "#FAFAFA"

	// brightnessThreshold splits light from dark backgrounds on the 0-255 scale.
	brightnessThreshold = 128
)

var emotionSchemes = map[domain.Emotion][]domain.Palette{
	domain.EmotionJoy: {
		{Name: "Sunshine", Background: "#FFD93D", Text: "#2C2C2C", Accent: "#FF6B6B"},
		{Name: "Golden Hour", Background: "#F9A825", Text: "#FFFFFF", Accent: "#EF5350"},
		{Name: "Radiant", Background: "#FFC107", Text: "#1A1A1A", Accent: "#FF7043"},
	},
	domain.EmotionMotivation: {
		{Name: "Power", Background: "#E63946", Text: "#FFFFFF", Accent: "#457B9D"},
		{Name: "Drive", Background: "#D62828", Text: "#F8F9FA", Accent: "#023E8A"},
		{Name: "Ambition", Background: "#C9184A", Text: "#FFFFFF", Accent: "#0077B6"},
	},
	domain.EmotionWisdom: {
		{Name: "Sage", Background: "#2C3E50", Text: "#ECF0F1", Accent: "#95A5A6"},
		{Name: "Philosopher", Background: "#34495E", Text: "#FDFEFE", Accent: "#7F8C8D"},
		{Name: "Scholar", Background: "#283747", Text: "#EAECEE", Accent: "#85929E"},
	},
	domain.EmotionLove: {
		{Name: "Passion", Background: "#E91E63", Text: "#FFFFFF", Accent: "#F06292"},
		{Name: "Romance", Background: "#AD1457", Text: "#FAFAFA", Accent: "#EC407A"},
		{Name: "Affection", Background: "#C2185B", Text: "#FFFFFF", Accent: "#F48FB1"},
	},
	domain.EmotionSadness: {
		{Name: "Melancholy", Background: "#546E7A", Text: "#ECEFF1", Accent: "#90A4AE"},
		{Name: "Contemplation", Background: "#455A64", Text: "#F5F5F5", Accent: "#78909C"},
		{Name: "Reflection", Background: "#37474F", Text: "#FAFAFA", Accent: "#607D8B"},
	},
	domain.EmotionAnger: {
		{Name: "Fury", Background: "#B71C1C", Text: "#FFFFFF", Accent: "#E53935"},
		{Name: "Rage", Background: "#C62828", Text: "#FAFAFA", Accent: "#EF5350"},
		{Name: "Intensity", Background: "#D32F2F", Text: "#F5F5F5", Accent: "#F44336"},
	},
	domain.EmotionFear: {
		{Name: "Shadow", Background: "#263238", Text: "#ECEFF1", Accent: "#546E7A"},
		{Name: "Unease", Background: "#37474F", Text: "#E0E0E0", Accent: "#607D8B"},
		{Name: "Anxiety", Background: "#455A64", Text: "#CFD8DC", Accent: "#78909C"},
	},
}

var timeSchemes = map[domain.Period][]domain.Palette{
	domain.PeriodMorning: {
		{Name: "Sunrise", Background: "#FFB74D", Text: "#FFFFFF", Accent: "#FF9800"},
		{Name: "Dawn", Background: "#FFA726", Text: "#FAFAFA", Accent: "#FB8C00"},
		{Name: "Morning Light", Background: "#FF9800", Text: "#F5F5F5", Accent: "#F57C00"},
	},
	domain.PeriodAfternoon: {
		{Name: "Blue Sky", Background: "#42A5F5", Text: "#FFFFFF", Accent: "#1E88E5"},
		{Name: "Clear Day", Background: "#2196F3", Text: "#FAFAFA", Accent: "#1976D2"},
		{Name: "Daylight", Background: "#1E88E5", Text: "#F5F5F5", Accent: "#1565C0"},
	},
	domain.PeriodEvening: {
		{Name: "Dusk", Background: "#7E57C2", Text: "#FFFFFF", Accent: "#5E35B1"},
		{Name: "Twilight", Background: "#673AB7", Text: "#FAFAFA", Accent: "#512DA8"},
		{Name: "Sunset", Background: "#5E35B1", Text: "#F5F5F5", Accent: "#4527A0"},
	},
	domain.PeriodNight: {
		{Name: "Midnight", Background: "#1A237E", Text: "#E8EAF6", Accent: "#283593"},
		{Name: "Deep Night", Background: "#0D47A1", Text: "#E3F2FD", Accent: "#1565C0"},
		{Name: "Starry", Background: "#01579B", Text: "#E1F5FE", Accent: "#0277BD"},
	},
}

var darkSchemes = []domain.Palette{
	{Name: "Slate", Background: "#0F172A", Text: "#F1F5F9", Accent: "#06B6D4"},
	{Name: "Navy", Background: "#1E293B", Text: "#E2E8F0", Accent: "#8B5CF6"},
	{Name: "Zinc", Background: "#18181B", Text: "#FAFAFA", Accent: "#A855F7"},
	{Name: "Black", Background: "#0A0A0A", Text: "#F5F5F5", Accent: "#EC4899"},
}

// PickPalette chooses colors for styled. The order is: dark preference,
// night period, annotated emotion, time of day. The variant within a family
// is derived from the quote ID so a quote always renders the same way.
// The text color is then forced for contrast.
func PickPalette(styled domain.StyledQuote, preferDark bool) domain.Palette {
	var family []domain.Palette

	switch {
	case preferDark:
		family = darkSchemes
	case styled.Context.Period == domain.PeriodNight:
		family = timeSchemes[domain.PeriodNight]
	case len(emotionSchemes[styled.Emotion()]) > 0:
		family = emotionSchemes[styled.Emotion()]
	case len(timeSchemes[styled.Context.Period]) > 0:
		family = timeSchemes[styled.Context.Period]
	default:
		family = emotionSchemes[domain.EmotionWisdom]
	}

	p := family[variant(styled.Quote.ID, len(family))]
	p.Text = ContrastText(p.Background)

	return p
}

// EmotionSchemes returns the variants for an emotion.
func EmotionSchemes(e domain.Emotion) []domain.Palette {
	return append([]domain.Palette(nil), emotionSchemes[e]...)
}

// ContrastText returns #1A1A1A on light backgrounds and #FAFAFA on dark ones.
func ContrastText(background string) string {
	if Brightness(background) > brightnessThreshold {
		return darkText
	}

	return lightText
}

// Brightness is the perceived brightness 0.299R + 0.587G + 0.114B.
// Unparseable colors count as black.
func Brightness(hex string) float64 {
	c, err := ParseHex(hex)
	if err != nil {
		return 0
	}

	return 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
}

// ParseHex parses #RRGGBB.
func ParseHex(hex string) (color.RGBA, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", hex)
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}

	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, nil
}

// darken scales each channel toward black by factor.
func darken(c color.RGBA, factor float64) color.RGBA {
	k := 1 - factor

	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: c.A,
	}
}

func variant(key string, n int) int {
	if n <= 1 {
		return 0
	}

	h := fnv.New32a()
	_, _ = h.Write([]byte(key))

	return int(h.Sum32() % uint32(n))
}
