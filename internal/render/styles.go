package render

import "github.com/jsamuelsen/quote-studio/internal/domain"

// styleSpec is the fixed decoration table for one visual style. Sizes are
// for the 1080px reference canvas and scale with it.
type styleSpec struct {
	padding  int
	font     string
	gradient bool

	// accentBar draws a bar of barWidth x barHeight above the author.
	accentBar bool
	// border draws an accent frame borderMargin in from the edge.
	border bool
	// diamonds draws three accent diamonds above the author.
	diamonds bool
	// quoteMarks draws oversized quotation marks around the text.
	quoteMarks bool

	authorInAccent bool
	authorLine     func(author string) string
}

const (
	barWidth     = 140
	barHeight    = 3
	borderMargin = 45
	borderWidth  = 2
	diamondSize  = 6
	diamondGap   = 20

	// gradientDarken is how much darker the bottom of a gradient is.
	gradientDarken = 0.15
)

var styleTable = map[domain.Style]styleSpec{
	domain.StyleMinimal: {
		padding:        80,
		font:           "regular",
		authorInAccent: true,
		authorLine:     func(a string) string { return "— " + a },
	},
	domain.StyleModern: {
		padding:    100,
		font:       "bold",
		gradient:   true,
		accentBar:  true,
		quoteMarks: true,
		authorLine: func(a string) string { return "— " + a },
	},
	domain.StyleElegant: {
		padding:    120,
		font:       "italic",
		gradient:   true,
		border:     true,
		diamonds:   true,
		quoteMarks: true,
		authorLine: func(a string) string { return "— " + a + " —" },
	},
}

func specFor(style domain.Style) styleSpec {
	if spec, ok := styleTable[style]; ok {
		return spec
	}

	return styleTable[domain.StyleMinimal]
}
