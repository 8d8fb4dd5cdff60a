package effects

import (
	"errors"
	"fmt"
	"image"
	"io"
	"path"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/joshuarp/image-derivative-api/internal/domain"

	// source-only formats
	_ "golang.org/x/image/webp"
)

var ErrUnsupportedFormat = errors.New("effects: unsupported output format")

// EncodableExtensions lists the derivative formats Encode can write.
func EncodableExtensions() []string {
	return domain.DerivativeExtensions()
}

// Decode reads any registered format and applies EXIF orientation.
func Decode(r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("effects: decode: %w", err)
	}
	return img, nil
}

// Encode writes img in the format implied by the extension of uri.
func Encode(w io.Writer, img image.Image, uri string, jpegQuality int) error {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(uri), "."))
	format, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	opts := []imaging.EncodeOption{}
	if format == imaging.JPEG && jpegQuality > 0 {
		opts = append(opts, imaging.JPEGQuality(jpegQuality))
	}
	if err := imaging.Encode(w, img, format, opts...); err != nil {
		return fmt.Errorf("effects: encode %s: %w", format, err)
	}
	return nil
}
