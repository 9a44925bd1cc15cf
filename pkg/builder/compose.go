package builder

import (
	"fmt"

	"github.com/alexisbeaulieu97/spritegen/pkg/color"
	spriteerrors "github.com/alexisbeaulieu97/spritegen/pkg/errors"
	"github.com/alexisbeaulieu97/spritegen/pkg/sprite"
	"github.com/alexisbeaulieu97/spritegen/pkg/validate"
)

// DefaultEdgeWeight is the outline blend weight used by WithDefaultEdges.
const DefaultEdgeWeight = 0.7

// TransformFunc maps a pixel to its replacement. dim is the size of the
// sprite being transformed.
type TransformFunc func(dim sprite.Dimensions, x, y int, pixel color.Color) color.Color

// WithBorder surrounds the sprite with blank-colored borders. With no
// arguments the configured border is used; one argument applies to every
// side; four are read as up, right, down, left.
func (b *Builder) WithBorder(borders ...int) *Builder {
	return b.WithBorderColor(b.cfg.blankColor, borders...)
}

// WithBorderColor is WithBorder with an explicit border color.
func (b *Builder) WithBorderColor(c color.Color, borders ...int) *Builder {
	if !b.require("withBorder") {
		return b
	}

	sides, err := b.resolveBorder(borders)
	if err != nil {
		return b.fail(err)
	}

	next, err := bordered(b.current, sides, c)
	if err != nil {
		return b.fail(err)
	}

	b.log.Debug().Ints("border", sides[:]).Msg("border applied")
	return b.swap(next)
}

func (b *Builder) resolveBorder(borders []int) ([4]int, error) {
	var sides [4]int
	switch len(borders) {
	case 0:
		return b.cfg.border, nil
	case 1:
		sides = [4]int{borders[0], borders[0], borders[0], borders[0]}
	case 4:
		copy(sides[:], borders)
	default:
		return sides, spriteerrors.NewValidationError("border", fmt.Sprintf("expected 0, 1 or 4 widths but found %d", len(borders)), nil)
	}

	for i, width := range sides {
		if err := validate.NonNegative(float64(width), fmt.Sprintf("border[%d]", i)); err != nil {
			return sides, err
		}
	}
	return sides, nil
}

// bordered copies src into a larger canvas filled with fill, offset by (left, up).
func bordered(src *sprite.Sprite, sides [4]int, fill color.Color) (*sprite.Sprite, error) {
	width := src.Width() + sides[Left] + sides[Right]
	height := src.Height() + sides[Up] + sides[Down]
	return paste(src, width, height, sides[Left], sides[Up], fill)
}

func paste(src *sprite.Sprite, width, height, offsetX, offsetY int, fill color.Color) (*sprite.Sprite, error) {
	dst, err := sprite.New(width, height,
		sprite.WithFill(fill),
		sprite.WithPalette(src.Palette()),
		sprite.WithHorizontalSymmetry(src.HorizontalSymmetry()),
	)
	if err != nil {
		return nil, err
	}

	for y := 0; y < src.Height(); y++ {
		for x := 0; x < src.Width(); x++ {
			pixel, err := src.PixelAt(x, y)
			if err != nil {
				return nil, err
			}
			if err := dst.SetPixelAt(x+offsetX, y+offsetY, pixel); err != nil {
				return nil, err
			}
		}
	}

	return dst, nil
}

// WithDefaultEdges outlines the sprite in black at weight 0.7, adding a
// one-pixel border first.
func (b *Builder) WithDefaultEdges() *Builder {
	return b.WithEdges(color.Black, DefaultEdgeWeight, true)
}

// WithEdges paints a soft outline one pixel outside the silhouette. Columns
// are scanned from the top and from the bottom, rows from the left; the
// first non-blank pixel found gets its outer neighbour set to the pixel mixed
// with edgeColor at edgeWeight. A scan that meets edgeColor first stops
// without painting. Row hits are mirrored to the right side. Writes that fall
// outside the raster are dropped.
func (b *Builder) WithEdges(edgeColor color.Color, edgeWeight float64, addExtraBorder bool) *Builder {
	if !b.require("withEdges") {
		return b
	}
	if err := validate.Percentage(edgeWeight, "edgeWeight"); err != nil {
		return b.fail(err)
	}

	work := b.current.Clone()
	if addExtraBorder {
		var err error
		if work, err = bordered(work, [4]int{1, 1, 1, 1}, b.cfg.blankColor); err != nil {
			return b.fail(err)
		}
	}

	scan := edgeScan{sprite: work, edge: edgeColor, weight: edgeWeight, blank: b.cfg.blankColor}
	width, height := work.Width(), work.Height()

	for x := 0; x < width; x++ {
		if err := scan.run(x, 0, 0, 1, func(px, py int) [][2]int { return [][2]int{{px, py - 1}} }); err != nil {
			return b.fail(err)
		}
	}

	for y := 0; y < height; y++ {
		if err := scan.run(0, y, 1, 0, func(px, py int) [][2]int { return [][2]int{{px - 1, py}, {width - px, py}} }); err != nil {
			return b.fail(err)
		}
	}

	for x := 0; x < width; x++ {
		if err := scan.run(x, height-1, 0, -1, func(px, py int) [][2]int { return [][2]int{{px, py + 1}} }); err != nil {
			return b.fail(err)
		}
	}

	b.log.Debug().Str("edge", edgeColor.String()).Float64("weight", edgeWeight).Bool("extraBorder", addExtraBorder).Msg("edges applied")
	return b.swap(work)
}

type edgeScan struct {
	sprite *sprite.Sprite
	edge   color.Color
	weight float64
	blank  color.Color
}

// run walks from (x, y) by (dx, dy) until the first non-blank pixel and paints
// the coordinates returned by targets.
func (e edgeScan) run(x, y, dx, dy int, targets func(x, y int) [][2]int) error {
	for ; x >= 0 && y >= 0 && x < e.sprite.Width() && y < e.sprite.Height(); x, y = x+dx, y+dy {
		pixel, err := e.sprite.PixelAt(x, y)
		if err != nil {
			return err
		}
		if pixel.Equal(e.edge) {
			return nil
		}
		if pixel.Equal(e.blank) {
			continue
		}

		outline, err := pixel.MixWeighed(e.edge, e.weight)
		if err != nil {
			return err
		}
		for _, target := range targets(x, y) {
			e.sprite.SetPixelAtChecked(target[0], target[1], outline)
		}
		return nil
	}
	return nil
}

// Transform replaces every pixel with fn(dim, x, y, pixel).
func (b *Builder) Transform(fn TransformFunc) *Builder {
	if !b.require("transform") {
		return b
	}
	if fn == nil {
		return b.fail(spriteerrors.NewValidationError("transform", "transform function is nil", nil))
	}

	dim := b.current.Dim()
	pixels := b.current.Pixels()
	for y := 0; y < dim.Height; y++ {
		for x := 0; x < dim.Width; x++ {
			i := y*dim.Width + x
			pixels[i] = fn(dim, x, y, pixels[i])
		}
	}

	next, err := sprite.New(dim.Width, dim.Height,
		sprite.WithPixels(pixels),
		sprite.WithPalette(b.current.Palette()),
		sprite.WithHorizontalSymmetry(b.current.HorizontalSymmetry()),
	)
	if err != nil {
		return b.fail(err)
	}

	b.log.Debug().Msg("transform applied")
	return b.swap(next)
}

// WithPadding centers the sprite on a blank canvas of width x height.
func (b *Builder) WithPadding(width, height int) *Builder {
	return b.WithPaddingColor(width, height, b.cfg.blankColor)
}

// WithPaddingColor is WithPadding with an explicit padding color. The canvas
// may not be smaller than the sprite in either dimension.
func (b *Builder) WithPaddingColor(width, height int, c color.Color) *Builder {
	if !b.require("withPadding") {
		return b
	}

	current := b.current.Dim()
	if width < current.Width {
		return b.fail(spriteerrors.NewValidationError("padding[0]",
			fmt.Sprintf("cannot set padding because %d is less than the existing width of %d", width, current.Width), nil))
	}
	if height < current.Height {
		return b.fail(spriteerrors.NewValidationError("padding[1]",
			fmt.Sprintf("cannot set padding because %d is less than the existing height of %d", height, current.Height), nil))
	}

	left := (width - current.Width) / 2
	top := (height - current.Height) / 2
	next, err := paste(b.current, width, height, left, top, c)
	if err != nil {
		return b.fail(err)
	}

	b.log.Debug().Int("width", width).Int("height", height).Msg("padding applied")
	return b.swap(next)
}
