// Package builder generates symmetric pixel sprites and composites borders,
// outlines, padding and per-pixel transforms onto them.
//
// A Builder is configured once, filled with Single, optionally decorated, and
// emptied by Build:
//
//	b, err := builder.New(builder.WithDimensions(7, 9), builder.WithBlankPercentage(0.4))
//	if err != nil {
//		return err
//	}
//	ship, err := b.Single().WithDefaultEdges().WithPadding(16, 16).Build()
//
// Operations chain; the first failure sticks and is returned by Build (or Err).
// A Builder is not safe for concurrent use.
package builder

import (
	"fmt"
	"math/rand/v2"

	"github.com/rs/zerolog"

	"github.com/alexisbeaulieu97/spritegen/pkg/color"
	spriteerrors "github.com/alexisbeaulieu97/spritegen/pkg/errors"
	"github.com/alexisbeaulieu97/spritegen/pkg/sprite"
	"github.com/alexisbeaulieu97/spritegen/pkg/validate"
)

const (
	defaultWidth            = 7
	defaultHeight           = 7
	defaultBlankPercentage  = 0.5
	defaultRandomColorCount = 3
	defaultBorder           = 1
)

// Border sides, in the order accepted by WithBorder.
const (
	Up = iota
	Right
	Down
	Left
)

// Rand is the random source a Builder draws from.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// stage is the builder's state machine: a fill moves it to stageHasResult,
// Build moves it back to stageEmpty.
type stage uint8

const (
	stageEmpty stage = iota
	stageHasResult
)

type settings struct {
	width              int
	height             int
	blankPercentage    float64
	palette            []color.Color
	useRandomPalette   bool
	randomColorCount   int
	randomAlpha        bool
	border             [4]int
	horizontalSymmetry bool
	blankColor         color.Color
}

// Option configures New.
type Option func(*Builder)

// WithDimensions sets the generated sprite size. Defaults to 7x7.
func WithDimensions(width, height int) Option {
	return func(b *Builder) {
		b.cfg.width = width
		b.cfg.height = height
	}
}

// WithBlankPercentage sets the target fraction of blank pixels. Defaults to 0.5.
func WithBlankPercentage(p float64) Option {
	return func(b *Builder) { b.cfg.blankPercentage = p }
}

// WithPalette fixes the colors drawn during generation.
func WithPalette(colors ...color.Color) Option {
	return func(b *Builder) {
		b.cfg.palette = make([]color.Color, len(colors))
		copy(b.cfg.palette, colors)
	}
}

// WithRandomPalette samples count fresh colors for every sprite.
func WithRandomPalette(count int, randomAlpha bool) Option {
	return func(b *Builder) {
		b.cfg.useRandomPalette = true
		b.cfg.randomColorCount = count
		b.cfg.randomAlpha = randomAlpha
	}
}

// WithBorder sets the default border widths used by Builder.WithBorder.
func WithBorder(up, right, down, left int) Option {
	return func(b *Builder) { b.cfg.border = [4]int{up, right, down, left} }
}

// WithUniformBorder sets the same default border width on every side.
func WithUniformBorder(width int) Option {
	return WithBorder(width, width, width, width)
}

// WithHorizontalSymmetry limits generation to the top ceil(height/2) rows.
// The remaining rows keep the blank color.
func WithHorizontalSymmetry(enabled bool) Option {
	return func(b *Builder) { b.cfg.horizontalSymmetry = enabled }
}

// WithBlankColor sets the background used for blanks, borders and padding. Defaults to white.
func WithBlankColor(c color.Color) Option {
	return func(b *Builder) { b.cfg.blankColor = c }
}

// WithRand injects the random source. Defaults to a PCG source seeded from the runtime.
func WithRand(r Rand) Option {
	return func(b *Builder) { b.rng = r }
}

// WithLogger attaches a logger for debug events. Defaults to a no-op logger.
func WithLogger(log zerolog.Logger) Option {
	return func(b *Builder) { b.log = log }
}

// Builder holds the generation settings and the sprite in progress.
type Builder struct {
	cfg settings
	rng Rand
	log zerolog.Logger

	stage   stage
	current *sprite.Sprite
	err     error
}

// New returns a validated Builder. Without WithPalette or WithRandomPalette
// the palette is three random opaque colors drawn once here.
func New(opts ...Option) (*Builder, error) {
	b := &Builder{
		cfg: settings{
			width:            defaultWidth,
			height:           defaultHeight,
			blankPercentage:  defaultBlankPercentage,
			randomColorCount: defaultRandomColorCount,
			border:           [4]int{defaultBorder, defaultBorder, defaultBorder, defaultBorder},
			blankColor:       color.White,
		},
		log: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.rng == nil {
		b.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	if b.cfg.palette == nil && !b.cfg.useRandomPalette {
		palette, err := RandomPalette(b.rng, defaultRandomColorCount, false)
		if err != nil {
			return nil, err
		}
		b.cfg.palette = palette
	}

	if err := b.cfg.validate(); err != nil {
		return nil, err
	}

	return b, nil
}

func (s settings) validate() error {
	if err := validate.Dimensions(s.width, s.height, "spriteDimensions"); err != nil {
		return err
	}

	if err := validate.Percentage(s.blankPercentage, "blankPercentage"); err != nil {
		return err
	}

	for i, width := range s.border {
		if err := validate.NonNegative(float64(width), fmt.Sprintf("border[%d]", i)); err != nil {
			return err
		}
	}

	if s.useRandomPalette {
		return validate.Positive(float64(s.randomColorCount), "randomColorCount")
	}
	if len(s.palette) == 0 {
		return spriteerrors.NewValidationError("colorPallet", "palette must contain at least one color", nil)
	}

	return nil
}

// Dimensions returns the configured sprite size.
func (b *Builder) Dimensions() sprite.Dimensions {
	return sprite.Dimensions{Width: b.cfg.width, Height: b.cfg.height}
}

// BlankColor returns the configured background color.
func (b *Builder) BlankColor() color.Color {
	return b.cfg.blankColor
}

// HasResult reports whether a sprite is in progress.
func (b *Builder) HasResult() bool {
	return b.stage == stageHasResult
}

// Err returns the first error recorded since the last Build.
func (b *Builder) Err() error {
	return b.err
}

// WithDim changes the sprite size. Only legal while no sprite is in progress.
func (b *Builder) WithDim(width, height int) *Builder {
	if b.err != nil {
		return b
	}
	if b.stage == stageHasResult {
		return b.fail(spriteerrors.NewStateError("withDim", spriteerrors.ErrSpriteInProgress))
	}

	next := b.cfg
	next.width, next.height = width, height
	if err := next.validate(); err != nil {
		return b.fail(err)
	}
	b.cfg = next

	return b
}

// Build hands over the sprite in progress and empties the builder. A recorded
// error is returned instead, and cleared.
func (b *Builder) Build() (*sprite.Sprite, error) {
	if b.err != nil {
		err := b.err
		b.reset()
		return nil, err
	}
	if b.stage != stageHasResult {
		return nil, spriteerrors.NewStateError("build", spriteerrors.ErrNoSprite)
	}

	result := b.current
	b.reset()
	return result, nil
}

func (b *Builder) reset() {
	b.stage = stageEmpty
	b.current = nil
	b.err = nil
}

func (b *Builder) fail(err error) *Builder {
	if b.err == nil {
		b.err = err
	}
	return b
}

// require reports whether op may run, recording a state error when no sprite is in progress.
func (b *Builder) require(op string) bool {
	if b.err != nil {
		return false
	}
	if b.stage != stageHasResult {
		b.fail(spriteerrors.NewStateError(op, spriteerrors.ErrNoSprite))
		return false
	}
	return true
}

func (b *Builder) swap(next *sprite.Sprite) *Builder {
	b.current = next
	b.stage = stageHasResult
	return b
}
