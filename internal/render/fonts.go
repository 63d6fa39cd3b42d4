package render

import (
	"fmt"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// goFonts are the embedded Go fonts by name.
var goFonts = map[string][]byte{
	"regular": goregular.TTF,
	"bold":    gobold.TTF,
	"italic":  goitalic.TTF,
}

// Typeface is a parsed font, shared by all renders.
type Typeface struct {
	font *opentype.Font
}

// NewTypeface parses a TrueType or OpenType font.
func NewTypeface(data []byte) (*Typeface, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}

	return &Typeface{font: f}, nil
}

// Faces returns a per-render face cache. font.Face values keep scratch
// buffers, so a Faces must not be shared between goroutines.
func (t *Typeface) Faces() *Faces {
	return &Faces{font: t.font, bySize: make(map[int]font.Face)}
}

// Faces caches faces of one font by size and implements Measurer.
type Faces struct {
	font   *opentype.Font
	bySize map[int]font.Face
}

// Face returns the face at size, creating it on first use.
func (f *Faces) Face(size float64) (font.Face, error) {
	key := sizeKey(size)

	if face, ok := f.bySize[key]; ok {
		return face, nil
	}

	face, err := opentype.NewFace(f.font, &opentype.FaceOptions{
		Size:    float64(key) / 100,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("creating face: %w", err)
	}

	f.bySize[key] = face

	return face, nil
}

// Advance measures s at size. A face that cannot be built measures as
// infinitely wide so layout never places text with it.
func (f *Faces) Advance(s string, size float64) float64 {
	face, err := f.Face(size)
	if err != nil {
		return math.Inf(1)
	}

	return float64(font.MeasureString(face, s)) / 64
}

// Close releases every cached face.
func (f *Faces) Close() {
	for key, face := range f.bySize {
		_ = face.Close()
		delete(f.bySize, key)
	}
}

// sizeKey rounds size to hundredths of a point.
func sizeKey(size float64) int {
	return int(math.Round(size * 100))
}
