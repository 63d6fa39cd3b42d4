package render

import (
	"math"
	"strings"
	"unicode/utf8"
)

const (
	// referenceSide is the canvas side the base font sizes are tuned for.
	referenceSide = 1080.0

	minFontSize    = 16.0
	shrinkStep     = 2.0
	lineSpacing    = 1.5
	authorScale    = 0.6
	ellipsis       = "…"
	averageSample  = "abcdefghijklmnopqrstuvwxyz ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	authorGapRatio = 0.8
)

// Measurer reports the advance width in pixels of s at a font size.
type Measurer interface {
	Advance(s string, size float64) float64
}

// Canvas is the drawable area. Padding applies on every side.
type Canvas struct {
	Width   int
	Height  int
	Padding int
}

// UsableWidth is the width inside the padding.
func (c Canvas) UsableWidth() float64 { return float64(c.Width - 2*c.Padding) }

// UsableHeight is the height inside the padding.
func (c Canvas) UsableHeight() float64 { return float64(c.Height - 2*c.Padding) }

// Scale relates the canvas to the 1080px reference.
func (c Canvas) Scale() float64 {
	return float64(min(c.Width, c.Height)) / referenceSide
}

// Block is a laid out quote.
type Block struct {
	Lines      []string
	Size       float64
	LineHeight float64
	// AuthorSize is the font size of the author line.
	AuthorSize float64
	// AuthorBlock is the vertical space reserved below the text for the author.
	AuthorBlock float64
	// MaxChars is the estimated characters per line at Size.
	MaxChars  int
	Truncated bool
}

// Height is the total vertical extent of the text and author.
func (b Block) Height() float64 {
	return float64(len(b.Lines))*b.LineHeight + b.AuthorBlock
}

// BaseSize is the starting font size for a text of n characters on the
// reference canvas.
func BaseSize(n int) float64 {
	switch {
	case n < 60:
		return 48
	case n < 120:
		return 42
	case n < 180:
		return 36
	default:
		return 32
	}
}

// Layout wraps text to fit c. It starts at the size for the text length,
// shrinks by two points until the block and author fit the usable height,
// and at the minimum size truncates with an ellipsis. The result never
// exceeds the usable area.
func Layout(text string, m Measurer, c Canvas) Block {
	text = strings.Join(strings.Fields(text), " ")

	scale := c.Scale()
	size := BaseSize(utf8.RuneCountInString(text)) * scale
	floor := minFontSize * scale
	width := c.UsableWidth()
	height := c.UsableHeight()

	for {
		b := blockAt(text, m, size, width)
		if b.Height() <= height {
			return b
		}

		if size-shrinkStep < floor {
			return truncate(b, m, width, height)
		}

		size -= shrinkStep
	}
}

func blockAt(text string, m Measurer, size, width float64) Block {
	avg := m.Advance(averageSample, size) / float64(utf8.RuneCountInString(averageSample))

	maxChars := 1
	if avg > 0 {
		maxChars = max(1, int(math.Floor(width/avg)))
	}

	authorSize := size * authorScale

	return Block{
		Lines:       wrap(text, m, size, width, maxChars),
		Size:        size,
		LineHeight:  size * lineSpacing,
		AuthorSize:  authorSize,
		AuthorBlock: size*authorGapRatio + authorSize*lineSpacing,
		MaxChars:    maxChars,
	}
}

// wrap fills lines greedily word by word. Words wider than a line are split
// into chunks of at most maxChars runes, then narrowed until they fit.
func wrap(text string, m Measurer, size, width float64, maxChars int) []string {
	var (
		lines   []string
		current string
	)

	for _, word := range strings.Fields(text) {
		for _, piece := range splitWord(word, m, size, width, maxChars) {
			candidate := piece
			if current != "" {
				candidate = current + " " + piece
			}

			if m.Advance(candidate, size) <= width {
				current = candidate
				continue
			}

			if current != "" {
				lines = append(lines, current)
			}

			current = piece
		}
	}

	if current != "" {
		lines = append(lines, current)
	}

	return lines
}

func splitWord(word string, m Measurer, size, width float64, maxChars int) []string {
	if m.Advance(word, size) <= width {
		return []string{word}
	}

	var pieces []string

	runes := []rune(word)
	for len(runes) > 0 {
		n := min(maxChars, len(runes))
		for n > 1 && m.Advance(string(runes[:n]), size) > width {
			n--
		}

		pieces = append(pieces, string(runes[:n]))
		runes = runes[n:]
	}

	return pieces
}

// truncate keeps the lines that fit and ends the last one with an ellipsis.
func truncate(b Block, m Measurer, width, height float64) Block {
	fit := int(math.Floor((height - b.AuthorBlock) / b.LineHeight))
	fit = max(0, fit)

	if fit >= len(b.Lines) {
		return b
	}

	b.Lines = b.Lines[:fit]
	b.Truncated = true

	if fit > 0 {
		b.Lines[fit-1] = Ellipsize(b.Lines[fit-1]+" ", m, b.Size, width, true)
	}

	return b
}

// Ellipsize shortens s until s plus "…" fits width. With force set the
// ellipsis is appended even when s already fits.
func Ellipsize(s string, m Measurer, size, width float64, force bool) string {
	if !force && m.Advance(s, size) <= width {
		return s
	}

	runes := []rune(strings.TrimRight(s, " "))
	for len(runes) > 0 {
		candidate := strings.TrimRight(string(runes), " ") + ellipsis
		if m.Advance(candidate, size) <= width {
			return candidate
		}

		runes = runes[:len(runes)-1]
	}

	return ellipsis
}
