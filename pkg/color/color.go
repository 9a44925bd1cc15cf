// Package color provides the RGBA value model used by sprites: four channels
// normalized to [0, 1], with blending and packed-integer/hex codecs.
package color

import (
	"fmt"
	imgcolor "image/color"
	"math"
	"strconv"
	"strings"

	spriteerrors "github.com/alexisbeaulieu97/spritegen/pkg/errors"
	"github.com/alexisbeaulieu97/spritegen/pkg/validate"
)

var (
	// Black is opaque black. Sprites drop it from their palette metadata.
	Black = MustNew(0, 0, 0, 1)
	// White is opaque white, the default blank color.
	White = MustNew(1, 1, 1, 1)
	// Transparent is fully transparent black.
	Transparent = MustNew(0, 0, 0, 0)
)

// Rand is the random source used by Random.
type Rand interface {
	Float64() float64
}

// Color is an RGBA color with every channel in [0.0, 1.0].
// The zero value is transparent black.
type Color struct {
	r, g, b, a float64
}

// New builds a color. Each channel is either a fraction in [0, 1] or a
// magnitude in [0, 255], the latter being divided by 255.
func New(r, g, b, a float64) (Color, error) {
	var c Color
	var err error
	if c.r, err = toPct(r, "red"); err != nil {
		return Color{}, err
	}
	if c.g, err = toPct(g, "green"); err != nil {
		return Color{}, err
	}
	if c.b, err = toPct(b, "blue"); err != nil {
		return Color{}, err
	}
	if c.a, err = toPct(a, "alpha"); err != nil {
		return Color{}, err
	}
	return c, nil
}

// NewRGB builds an opaque color.
func NewRGB(r, g, b float64) (Color, error) {
	return New(r, g, b, 1)
}

// MustNew is like New but panics on invalid channels.
func MustNew(r, g, b, a float64) Color {
	c, err := New(r, g, b, a)
	if err != nil {
		panic(err)
	}
	return c
}

// Random samples every channel uniformly. Alpha stays at 1 unless randomAlpha is set.
func Random(rng Rand, randomAlpha bool) Color {
	c := Color{r: rng.Float64(), g: rng.Float64(), b: rng.Float64(), a: 1}
	if randomAlpha {
		c.a = rng.Float64()
	}
	return c
}

// FromInt decodes a packed 0xAARRGGBB value.
func FromInt(value uint32) Color {
	return Color{
		r: float64((value>>16)&0xFF) / 255,
		g: float64((value>>8)&0xFF) / 255,
		b: float64(value&0xFF) / 255,
		a: float64((value>>24)&0xFF) / 255,
	}
}

// FromHexa decodes AARRGGBB (or opaque RRGGBB) prefixed by '#', '0x' or nothing.
func FromHexa(value string) (Color, error) {
	digits := strings.TrimSpace(value)
	digits = strings.TrimPrefix(digits, "#")
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		digits = digits[2:]
	}

	if len(digits) != 6 && len(digits) != 8 {
		return Color{}, spriteerrors.NewParseError(value, 0, fmt.Errorf("expected 6 or 8 hex digits, got %d", len(digits)))
	}

	packed, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Color{}, spriteerrors.NewParseError(value, 0, err)
	}
	if len(digits) == 6 {
		packed |= 0xFF000000
	}

	return FromInt(uint32(packed)), nil
}

// FromStd converts any image/color value.
func FromStd(c imgcolor.Color) Color {
	n := imgcolor.NRGBAModel.Convert(c).(imgcolor.NRGBA)
	return FromInt(uint32(n.A)<<24 | uint32(n.R)<<16 | uint32(n.G)<<8 | uint32(n.B))
}

// Red, Green, Blue and Alpha return channels as fractions.
func (c Color) Red() float64   { return c.r }
func (c Color) Green() float64 { return c.g }
func (c Color) Blue() float64  { return c.b }
func (c Color) Alpha() float64 { return c.a }

// RedByte and friends scale channels to [0, 255] without rounding.
func (c Color) RedByte() float64   { return c.r * 255 }
func (c Color) GreenByte() float64 { return c.g * 255 }
func (c Color) BlueByte() float64  { return c.b * 255 }
func (c Color) AlphaByte() float64 { return c.a * 255 }

// SetRed re-validates and normalizes the red channel.
func (c *Color) SetRed(value float64) error {
	return set(&c.r, value, "red")
}

// SetGreen re-validates and normalizes the green channel.
func (c *Color) SetGreen(value float64) error {
	return set(&c.g, value, "green")
}

// SetBlue re-validates and normalizes the blue channel.
func (c *Color) SetBlue(value float64) error {
	return set(&c.b, value, "blue")
}

// SetAlpha re-validates and normalizes the alpha channel.
func (c *Color) SetAlpha(value float64) error {
	return set(&c.a, value, "alpha")
}

// Copy returns an independent duplicate.
func (c Color) Copy() Color {
	return c
}

// Equal reports an exact match on all four channels.
func (c Color) Equal(other Color) bool {
	return c.r == other.r && c.g == other.g && c.b == other.b && c.a == other.a
}

// Mix returns the per-channel arithmetic mean of c and other.
func (c Color) Mix(other Color) Color {
	return Color{
		r: (c.r + other.r) / 2,
		g: (c.g + other.g) / 2,
		b: (c.b + other.b) / 2,
		a: (c.a + other.a) / 2,
	}
}

// MixWeighed blends towards other: channel*(1-weight) + other.channel*weight.
func (c Color) MixWeighed(other Color, weight float64) (Color, error) {
	if err := validate.Percentage(weight, "weight"); err != nil {
		return Color{}, err
	}
	inv := 1 - weight
	return Color{
		r: clampUnit(c.r*inv + other.r*weight),
		g: clampUnit(c.g*inv + other.g*weight),
		b: clampUnit(c.b*inv + other.b*weight),
		a: clampUnit(c.a*inv + other.a*weight),
	}, nil
}

// ToArray returns the channels as fractions in RGBA order.
func (c Color) ToArray() [4]float64 {
	return [4]float64{c.r, c.g, c.b, c.a}
}

// ToByteArray returns the channels scaled to [0, 255], unrounded, in RGBA order.
func (c Color) ToByteArray() [4]float64 {
	return [4]float64{c.RedByte(), c.GreenByte(), c.BlueByte(), c.AlphaByte()}
}

// ToInt packs the color as 0xAARRGGBB.
func (c Color) ToInt() uint32 {
	return uint32(toByte(c.a))<<24 | uint32(toByte(c.r))<<16 | uint32(toByte(c.g))<<8 | uint32(toByte(c.b))
}

// ToHexa renders AARRGGBB in upper case.
func (c Color) ToHexa() string {
	return fmt.Sprintf("%08X", c.ToInt())
}

// ToRgb renders a CSS rgb() string.
func (c Color) ToRgb() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", toByte(c.r), toByte(c.g), toByte(c.b))
}

// ToRgba renders a CSS rgba() string; alpha stays a fraction.
func (c Color) ToRgba() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", toByte(c.r), toByte(c.g), toByte(c.b), strconv.FormatFloat(c.a, 'f', -1, 64))
}

// NRGBA converts to the non-premultiplied 8-bit standard library color.
func (c Color) NRGBA() imgcolor.NRGBA {
	return imgcolor.NRGBA{R: toByte(c.r), G: toByte(c.g), B: toByte(c.b), A: toByte(c.a)}
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return "#" + c.ToHexa()
}

func set(channel *float64, value float64, name string) error {
	pct, err := toPct(value, name)
	if err != nil {
		return err
	}
	*channel = pct
	return nil
}

func toPct(value float64, name string) (float64, error) {
	switch {
	case value >= 0 && value <= 1:
		return value, nil
	case value >= 0 && value <= 255:
		return value / 255, nil
	default:
		return 0, spriteerrors.NewValidationError(name,
			fmt.Sprintf("invalid value %s when converting color, expected 0 <= N <= 1.0 or 0 <= N <= 255",
				strconv.FormatFloat(value, 'g', -1, 64)), nil)
	}
}

func toByte(channel float64) uint8 {
	return uint8(math.Round(clampUnit(channel) * 255))
}

func clampUnit(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}
