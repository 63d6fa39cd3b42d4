// Package render composes quote images.
//
// A render is a fixed lookup by style (padding, font, background and
// decoration) plus one piece of real logic, Layout, which wraps, shrinks
// and finally truncates the text so it always fits the canvas.
package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"math"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/jsamuelsen/quote-studio/internal/domain"
	"github.com/jsamuelsen/quote-studio/internal/platform/telemetry"
	"github.com/jsamuelsen/quote-studio/internal/ports"
)

// Options configure a Composer.
type Options struct {
	// JPEGQuality defaults to DefaultJPEGQuality.
	JPEGQuality int
	Metrics     *telemetry.PipelineMetrics
	Logger      *slog.Logger
}

// Composer renders styled quotes. It is safe for concurrent use.
type Composer struct {
	fonts       map[string]*Typeface
	jpegQuality int
	metrics     *telemetry.PipelineMetrics
	logger      *slog.Logger
}

var _ ports.ImageRenderer = (*Composer)(nil)

// New parses the embedded Go fonts.
func New(opts Options) (*Composer, error) {
	fonts := make(map[string]*Typeface, len(goFonts))

	for name, data := range goFonts {
		tf, err := NewTypeface(data)
		if err != nil {
			return nil, fmt.Errorf("loading %s font: %w", name, err)
		}

		fonts[name] = tf
	}

	quality := opts.JPEGQuality
	if quality <= 0 || quality > 100 {
		quality = DefaultJPEGQuality
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Composer{
		fonts:       fonts,
		jpegQuality: quality,
		metrics:     opts.Metrics,
		logger:      logger.With(slog.String("component", "render")),
	}, nil
}

// PickPalette implements ports.ImageRenderer.
func (c *Composer) PickPalette(styled domain.StyledQuote, preferDark bool) domain.Palette {
	return PickPalette(styled, preferDark)
}

// Render composes and encodes one image.
func (c *Composer) Render(ctx context.Context, req ports.RenderRequest) (ports.RenderedImage, error) {
	ctx, span := telemetry.StartSpan(ctx, "render.Render",
		attribute.String("render.style", string(req.Styled.Style)),
		attribute.String("render.format", string(req.Format)),
		attribute.String("render.preset", req.Preset.Name),
	)
	defer span.End()

	if err := ctx.Err(); err != nil {
		return ports.RenderedImage{}, err
	}

	start := time.Now()

	img, block := c.Compose(req.Styled, req.Preset)

	var buf bytes.Buffer
	if err := Encode(&buf, img, req.Format, c.jpegQuality); err != nil {
		span.RecordError(err)
		return ports.RenderedImage{}, err
	}

	c.metrics.Rendered(ctx, string(req.Format), req.Preset.Name, time.Since(start))

	if block.Truncated {
		c.logger.DebugContext(ctx, "quote truncated to fit canvas",
			slog.String("preset", req.Preset.Name),
			slog.Int("lines", len(block.Lines)),
		)
	}

	return ports.RenderedImage{
		Data:        buf.Bytes(),
		ContentType: req.Format.ContentType(),
		Format:      req.Format,
		Preset:      req.Preset.Name,
		Width:       req.Preset.Width,
		Height:      req.Preset.Height,
	}, nil
}

// Compose draws styled onto a preset-sized canvas and returns the layout
// used for the text.
func (c *Composer) Compose(styled domain.StyledQuote, preset domain.Preset) (*image.RGBA, Block) {
	spec := specFor(styled.Style)

	palette := styled.Palette
	if palette.Background == "" {
		palette = PickPalette(styled, false)
	}

	bg := mustColor(palette.Background, color.RGBA{A: 0xFF})
	fg := mustColor(ContrastText(palette.Background), color.RGBA{R: 0xFA, G: 0xFA, B: 0xFA, A: 0xFF})
	accent := mustColor(palette.Accent, fg)

	canvas := Canvas{Width: preset.Width, Height: preset.Height}
	scale := canvas.Scale()
	canvas.Padding = scaled(spec.padding, scale)

	textFaces := c.fonts[spec.font].Faces()
	defer textFaces.Close()

	authorFaces := c.fonts["regular"].Faces()
	if spec.font == "italic" {
		authorFaces = c.fonts["italic"].Faces()
	}
	defer authorFaces.Close()

	block := Layout(styled.DisplayText(), textFaces, canvas)

	img := image.NewRGBA(image.Rect(0, 0, canvas.Width, canvas.Height))

	if spec.gradient {
		fillGradient(img, bg, darken(bg, gradientDarken))
	} else {
		draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	}

	if spec.border {
		drawFrame(img, scaled(borderMargin, scale), max(1, scaled(borderWidth, scale)), accent)
	}

	top := float64(canvas.Padding) + (canvas.UsableHeight()-block.Height())/2

	if face, err := textFaces.Face(block.Size); err == nil {
		for i, line := range block.Lines {
			baseline := top + float64(i)*block.LineHeight + centerOffset(face, block.LineHeight)
			drawCentered(img, face, line, baseline, textFaces.Advance(line, block.Size), fg)
		}

		if spec.quoteMarks && len(block.Lines) > 0 {
			c.drawQuoteMarks(img, spec, block, top, canvas, accent)
		}
	}

	gapTop := top + float64(len(block.Lines))*block.LineHeight
	gap := block.AuthorBlock - block.AuthorSize*lineSpacing
	gapMid := int(math.Round(gapTop + gap/2))
	cx := canvas.Width / 2

	if spec.accentBar {
		w, h := scaled(barWidth, scale), max(1, scaled(barHeight, scale))
		fillRect(img, image.Rect(cx-w/2, gapMid-h/2, cx-w/2+w, gapMid-h/2+h), accent)
	}

	if spec.diamonds {
		r := max(2, scaled(diamondSize, scale))
		step := scaled(diamondGap, scale)

		for _, dx := range []int{-step, 0, step} {
			fillDiamond(img, cx+dx, gapMid, r, accent)
		}
	}

	if face, err := authorFaces.Face(block.AuthorSize); err == nil {
		authorColor := fg
		if spec.authorInAccent {
			authorColor = accent
		}

		line := Ellipsize(spec.authorLine(styled.Quote.Author), authorFaces, block.AuthorSize, canvas.UsableWidth(), false)
		authorLH := block.AuthorSize * lineSpacing
		baseline := gapTop + gap + centerOffset(face, authorLH)

		drawCentered(img, face, line, baseline, authorFaces.Advance(line, block.AuthorSize), authorColor)
	}

	return img, block
}

func (c *Composer) drawQuoteMarks(img *image.RGBA, spec styleSpec, block Block, top float64, canvas Canvas, accent color.RGBA) {
	faces := c.fonts[spec.font].Faces()
	defer faces.Close()

	size := block.Size * 1.5

	face, err := faces.Face(size)
	if err != nil {
		return
	}

	ascent := fixedToFloat(face.Metrics().Ascent)
	left := float64(canvas.Padding) / 2
	open := math.Max(ascent, top+ascent/2)

	drawText(img, face, "“", left, open, accent)

	closing := "”"
	right := float64(canvas.Width) - float64(canvas.Padding)/2 - faces.Advance(closing, size)
	bottom := math.Min(float64(canvas.Height)-1, top+float64(len(block.Lines))*block.LineHeight+ascent/2)

	drawText(img, face, closing, right, bottom, accent)
}

// centerOffset is the baseline offset that centers a line of face in lineHeight.
func centerOffset(face font.Face, lineHeight float64) float64 {
	m := face.Metrics()
	ascent := fixedToFloat(m.Ascent)
	descent := fixedToFloat(m.Descent)

	return (lineHeight + ascent - descent) / 2
}

func drawCentered(img *image.RGBA, face font.Face, s string, baseline, width float64, col color.RGBA) {
	x := (float64(img.Bounds().Dx()) - width) / 2
	drawText(img, face, s, x, baseline, col)
}

func drawText(img *image.RGBA, face font.Face, s string, x, baseline float64, col color.RGBA) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: floatToFixed(x), Y: floatToFixed(baseline)},
	}
	d.DrawString(s)
}

// fillGradient paints a vertical gradient from top to bottom.
func fillGradient(img *image.RGBA, from, to color.RGBA) {
	b := img.Bounds()
	h := b.Dy()

	for y := 0; y < h; y++ {
		t := 0.0
		if h > 1 {
			t = float64(y) / float64(h-1)
		}

		row := color.RGBA{
			R: lerp(from.R, to.R, t),
			G: lerp(from.G, to.G, t),
			B: lerp(from.B, to.B, t),
			A: 0xFF,
		}

		fillRect(img, image.Rect(b.Min.X, b.Min.Y+y, b.Max.X, b.Min.Y+y+1), row)
	}
}

func drawFrame(img *image.RGBA, margin, width int, col color.RGBA) {
	b := img.Bounds().Inset(margin)
	if b.Empty() {
		return
	}

	fillRect(img, image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Min.Y+width), col)
	fillRect(img, image.Rect(b.Min.X, b.Max.Y-width, b.Max.X, b.Max.Y), col)
	fillRect(img, image.Rect(b.Min.X, b.Min.Y, b.Min.X+width, b.Max.Y), col)
	fillRect(img, image.Rect(b.Max.X-width, b.Min.Y, b.Max.X, b.Max.Y), col)
}

func fillDiamond(img *image.RGBA, cx, cy, r int, col color.RGBA) {
	for dy := -r; dy <= r; dy++ {
		half := r - abs(dy)
		fillRect(img, image.Rect(cx-half, cy+dy, cx+half+1, cy+dy+1), col)
	}
}

func fillRect(img *image.RGBA, r image.Rectangle, col color.RGBA) {
	draw.Draw(img, r.Intersect(img.Bounds()), image.NewUniform(col), image.Point{}, draw.Src)
}

func mustColor(hex string, fallback color.RGBA) color.RGBA {
	c, err := ParseHex(hex)
	if err != nil {
		return fallback
	}

	return c
}

func scaled(v int, scale float64) int {
	return int(math.Round(float64(v) * scale))
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

func fixedToFloat(v fixed.Int26_6) float64 { return float64(v) / 64 }

func floatToFixed(v float64) fixed.Int26_6 { return fixed.Int26_6(math.Round(v * 64)) }
