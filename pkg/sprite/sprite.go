// Package sprite implements the raster produced by the builder: a fixed-size,
// row-major grid of colors with bounds-checked access and SVG, packed-int and
// byte serialization. Pixel (x, y) lives at index y*width + x.
package sprite

import (
	"fmt"
	"image"
	imgcolor "image/color"

	"github.com/alexisbeaulieu97/spritegen/pkg/color"
	spriteerrors "github.com/alexisbeaulieu97/spritegen/pkg/errors"
	"github.com/alexisbeaulieu97/spritegen/pkg/validate"
)

// Dimensions is a raster size in pixels.
type Dimensions struct {
	Width  int
	Height int
}

// Sprite is a width x height raster of colors plus descriptive metadata.
type Sprite struct {
	dim                Dimensions
	pixels             []color.Color
	palette            []color.Color
	horizontalSymmetry bool
}

type options struct {
	fill               color.Color
	pixels             []color.Color
	palette            []color.Color
	horizontalSymmetry bool
}

// Option configures New.
type Option func(*options)

// WithFill sets the color of every pixel of a blank sprite. Defaults to black.
func WithFill(c color.Color) Option {
	return func(o *options) { o.fill = c }
}

// WithPixels seeds the raster from an existing row-major sequence.
func WithPixels(pixels []color.Color) Option {
	return func(o *options) { o.pixels = pixels }
}

// WithPalette records the colors used to generate the sprite.
func WithPalette(palette []color.Color) Option {
	return func(o *options) { o.palette = palette }
}

// WithHorizontalSymmetry flags the sprite as generated with horizontal symmetry.
func WithHorizontalSymmetry(enabled bool) Option {
	return func(o *options) { o.horizontalSymmetry = enabled }
}

// New allocates a sprite. The pixel slice, when given, must hold exactly
// width*height colors; it is copied.
func New(width, height int, opts ...Option) (*Sprite, error) {
	if err := validate.Dimensions(width, height, "dim"); err != nil {
		return nil, err
	}

	o := options{fill: color.Black}
	for _, opt := range opts {
		opt(&o)
	}

	size := width * height
	pixels := make([]color.Color, size)
	if o.pixels != nil {
		if len(o.pixels) != size {
			return nil, spriteerrors.NewValidationError("pixels",
				fmt.Sprintf("invalid array dimensions [%d, %d] for array of length %d", width, height, len(o.pixels)), nil)
		}
		copy(pixels, o.pixels)
	} else {
		for i := range pixels {
			pixels[i] = o.fill
		}
	}

	return &Sprite{
		dim:                Dimensions{Width: width, Height: height},
		pixels:             pixels,
		palette:            trimPalette(o.palette),
		horizontalSymmetry: o.horizontalSymmetry,
	}, nil
}

// Width returns the raster width.
func (s *Sprite) Width() int { return s.dim.Width }

// Height returns the raster height.
func (s *Sprite) Height() int { return s.dim.Height }

// Dim returns the raster size.
func (s *Sprite) Dim() Dimensions { return s.dim }

// HorizontalSymmetry reports the metadata flag set at creation.
func (s *Sprite) HorizontalSymmetry() bool { return s.horizontalSymmetry }

// Pixels returns a copy of the row-major raster.
func (s *Sprite) Pixels() []color.Color {
	return append([]color.Color(nil), s.pixels...)
}

// Palette returns a copy of the palette metadata.
func (s *Sprite) Palette() []color.Color {
	return append([]color.Color(nil), s.palette...)
}

// Clone deep-copies raster and metadata.
func (s *Sprite) Clone() *Sprite {
	return &Sprite{
		dim:                s.dim,
		pixels:             s.Pixels(),
		palette:            s.Palette(),
		horizontalSymmetry: s.horizontalSymmetry,
	}
}

// PixelAt returns the color at (x, y).
func (s *Sprite) PixelAt(x, y int) (color.Color, error) {
	if err := s.checkIndex(x, y); err != nil {
		return color.Color{}, err
	}
	return s.pixels[y*s.dim.Width+x], nil
}

// SetPixelAt stores c at (x, y).
func (s *Sprite) SetPixelAt(x, y int, c color.Color) error {
	if err := s.checkIndex(x, y); err != nil {
		return err
	}
	s.pixels[y*s.dim.Width+x] = c
	return nil
}

// SetPixelAtChecked stores c at (x, y) if the coordinate is inside the raster
// and reports whether the write happened.
func (s *Sprite) SetPixelAtChecked(x, y int, c color.Color) bool {
	if !s.inBounds(x, y) {
		return false
	}
	s.pixels[y*s.dim.Width+x] = c
	return true
}

// ArrayValues returns every pixel as RGBA fractions in raster order.
func (s *Sprite) ArrayValues() [][4]float64 {
	values := make([][4]float64, len(s.pixels))
	for i, c := range s.pixels {
		values[i] = c.ToArray()
	}
	return values
}

// Matrix returns channel arrays indexed as [x][y].
func (s *Sprite) Matrix() [][][4]float64 {
	m := make([][][4]float64, s.dim.Width)
	for x := range m {
		m[x] = make([][4]float64, s.dim.Height)
		for y := range m[x] {
			m[x][y] = s.pixels[y*s.dim.Width+x].ToArray()
		}
	}
	return m
}

// Data packs every pixel as 0xAARRGGBB.
func (s *Sprite) Data() []uint32 {
	data := make([]uint32, len(s.pixels))
	for i, c := range s.pixels {
		data[i] = c.ToInt()
	}
	return data
}

// Bytes returns three bytes (R, G, B) per pixel in raster order.
func (s *Sprite) Bytes() []byte {
	out := make([]byte, 0, len(s.pixels)*3)
	for _, c := range s.pixels {
		n := c.NRGBA()
		out = append(out, n.R, n.G, n.B)
	}
	return out
}

// ColorModel implements image.Image.
func (s *Sprite) ColorModel() imgcolor.Model {
	return imgcolor.NRGBAModel
}

// Bounds implements image.Image.
func (s *Sprite) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.dim.Width, s.dim.Height)
}

// At implements image.Image. Coordinates outside the raster are transparent.
func (s *Sprite) At(x, y int) imgcolor.Color {
	if !s.inBounds(x, y) {
		return imgcolor.NRGBA{}
	}
	return s.pixels[y*s.dim.Width+x].NRGBA()
}

// RGBA64At implements image.RGBA64Image so x/image scalers take their
// generic path instead of skipping the source.
func (s *Sprite) RGBA64At(x, y int) imgcolor.RGBA64 {
	r, g, b, a := s.At(x, y).RGBA()
	return imgcolor.RGBA64{R: uint16(r), G: uint16(g), B: uint16(b), A: uint16(a)}
}

func (s *Sprite) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.dim.Width && y < s.dim.Height
}

func (s *Sprite) checkIndex(x, y int) error {
	if !s.inBounds(x, y) {
		return spriteerrors.NewBoundsError(x, y, s.dim.Width, s.dim.Height)
	}
	return nil
}

func trimPalette(palette []color.Color) []color.Color {
	trimmed := make([]color.Color, 0, len(palette))
	for _, c := range palette {
		if c.Equal(color.Black) {
			continue
		}
		trimmed = append(trimmed, c)
	}
	return trimmed
}
