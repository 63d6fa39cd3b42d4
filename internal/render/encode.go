package render

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/HugoSmits86/nativewebp"

	"github.com/jsamuelsen/quote-studio/internal/domain"
)

// DefaultJPEGQuality is used when Options.JPEGQuality is unset.
const DefaultJPEGQuality = 95

// Encode writes img in format. WebP output is lossless.
func Encode(w io.Writer, img image.Image, format domain.ExportFormat, jpegQuality int) error {
	var err error

	switch format {
	case domain.FormatPNG:
		err = png.Encode(w, img)
	case domain.FormatJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
	case domain.FormatWebP:
		err = nativewebp.Encode(w, img, nil)
	default:
		return domain.NewValidationError("format", fmt.Sprintf("unsupported image format %q", format))
	}

	if err != nil {
		return fmt.Errorf("encoding %s: %w", format, err)
	}

	return nil
}
