// Package render encodes sprites for files and terminals.
package render

import (
	"fmt"
	"io"

	spriteerrors "github.com/alexisbeaulieu97/spritegen/pkg/errors"
	"github.com/alexisbeaulieu97/spritegen/pkg/sprite"
)

// Supported formats.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
)

// Options selects the encoding.
type Options struct {
	Format string
	// Scale is the output size of one sprite pixel, in Unit for SVG and in
	// device pixels for PNG.
	Scale int
	Unit  string
}

// Encode writes s to w in the requested format.
func Encode(w io.Writer, s *sprite.Sprite, opts Options) error {
	if s == nil {
		return spriteerrors.NewValidationError("sprite", "sprite is nil", nil)
	}
	if opts.Scale <= 0 {
		return spriteerrors.NewValidationError("scale", fmt.Sprintf("expected positive non-zero value but found %d", opts.Scale), nil)
	}

	switch opts.Format {
	case FormatSVG, "":
		_, err := io.WriteString(w, SVG(s, opts.Scale, opts.Unit))
		return err
	case FormatPNG:
		return EncodePNG(w, s, opts.Scale)
	default:
		return spriteerrors.NewValidationError("format", fmt.Sprintf("unsupported output format %q", opts.Format), nil)
	}
}

// SVG renders s with every sprite pixel scale units wide.
func SVG(s *sprite.Sprite, scale int, unit string) string {
	return s.SVGScale(float64(scale), unit)
}

// Extension returns the file extension, dot included, for format.
func Extension(format string) string {
	if format == FormatPNG {
		return ".png"
	}
	return ".svg"
}
