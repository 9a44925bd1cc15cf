package builder

import (
	"math"

	"github.com/alexisbeaulieu97/spritegen/pkg/color"
	spriteerrors "github.com/alexisbeaulieu97/spritegen/pkg/errors"
	"github.com/alexisbeaulieu97/spritegen/pkg/sprite"
	"github.com/alexisbeaulieu97/spritegen/pkg/validate"
)

// RandomPalette samples count colors from rng.
func RandomPalette(rng color.Rand, count int, randomAlpha bool) ([]color.Color, error) {
	if err := validate.Positive(float64(count), "colorCount"); err != nil {
		return nil, err
	}

	palette := make([]color.Color, count)
	for i := range palette {
		palette[i] = color.Random(rng, randomAlpha)
	}
	return palette, nil
}

// Palette returns the fixed palette, or a freshly sampled one when the
// builder was configured with WithRandomPalette.
func (b *Builder) Palette() ([]color.Color, error) {
	if b.cfg.useRandomPalette {
		return RandomPalette(b.rng, b.cfg.randomColorCount, b.cfg.randomAlpha)
	}
	return append([]color.Color(nil), b.cfg.palette...), nil
}

// AddBlanks appends round(len*p/(1-p)) copies of the blank color so that a
// uniform draw from the result is blank with probability close to p.
// A blank percentage of 1 yields a pool holding only the blank color.
func (b *Builder) AddBlanks(palette []color.Color) []color.Color {
	p := b.cfg.blankPercentage
	if p >= 1 {
		return []color.Color{b.cfg.blankColor}
	}

	blanks := int(math.Round(float64(len(palette)) * p / (1 - p)))
	pool := make([]color.Color, 0, len(palette)+blanks)
	pool = append(pool, palette...)
	for range blanks {
		pool = append(pool, b.cfg.blankColor)
	}
	return pool
}

// SelectColor draws uniformly from pool. An empty pool yields the blank color.
func (b *Builder) SelectColor(pool []color.Color) color.Color {
	if len(pool) == 0 {
		return b.cfg.blankColor
	}
	return pool[b.rng.IntN(len(pool))]
}

// Single generates a new base sprite whose rows mirror around the center
// column. It replaces any sprite already in progress.
func (b *Builder) Single() *Builder {
	if b.err != nil {
		return b
	}

	palette, err := b.Palette()
	if err != nil {
		return b.fail(err)
	}
	pool := b.AddBlanks(palette)

	result, err := sprite.New(b.cfg.width, b.cfg.height,
		sprite.WithFill(b.cfg.blankColor),
		sprite.WithPalette(palette),
		sprite.WithHorizontalSymmetry(b.cfg.horizontalSymmetry),
	)
	if err != nil {
		return b.fail(err)
	}

	rows := b.cfg.height
	if b.cfg.horizontalSymmetry {
		// TODO: mirror the generated rows into the bottom half; they stay blank for now.
		rows = (b.cfg.height + 1) / 2
	}

	for y := 0; y < rows; y++ {
		if err := b.fillRow(result, y, pool); err != nil {
			return b.fail(err)
		}
	}

	b.log.Debug().
		Int("width", b.cfg.width).
		Int("height", b.cfg.height).
		Int("palette", len(palette)).
		Int("pool", len(pool)).
		Int("rows", rows).
		Msg("sprite generated")

	return b.swap(result)
}

// fillRow walks the row as a zig-zag over logical positions: out from 0 to the
// center, then back down to 0. Colors pushed on the way out are popped on the
// way back, so columns equidistant from the center match.
func (b *Builder) fillRow(s *sprite.Sprite, y int, pool []color.Color) error {
	width := s.Width()
	center := width / 2
	stack := make([]color.Color, 0, center+1)

	direction := -1
	element := 0
	for x := 0; x < width; x++ {
		candidate := b.SelectColor(pool)

		var pixel color.Color
		switch {
		case element == center:
			pixel = candidate
		case len(stack) == element+1:
			if len(stack) == 0 {
				return spriteerrors.NewInvariantError("expected a color on the mirror stack but found none")
			}
			pixel = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
		default:
			stack = append(stack, candidate)
			pixel = candidate
		}

		if err := s.SetPixelAt(x, y, pixel); err != nil {
			return err
		}

		if element == 0 || element == center {
			direction = -direction
		}
		element += direction
	}

	return nil
}
