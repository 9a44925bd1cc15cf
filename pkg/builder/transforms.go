package builder

import (
	"math"

	"github.com/alexisbeaulieu97/spritegen/pkg/color"
	"github.com/alexisbeaulieu97/spritegen/pkg/sprite"
)

// Clamp limits value to [min, max].
func Clamp(value, min, max float64) float64 {
	return math.Min(math.Max(value, min), max)
}

// Fade darkens rows towards the bottom of the sprite.
func Fade(dim sprite.Dimensions, x, y int, pixel color.Color) color.Color {
	return FadeTo(color.Black)(dim, x, y, pixel)
}

// FadeTo blends each row towards target with weight y/height.
func FadeTo(target color.Color) TransformFunc {
	return func(dim sprite.Dimensions, _, y int, pixel color.Color) color.Color {
		return blend(pixel, target, float64(y)/float64(dim.Height))
	}
}

// Vignette darkens pixels with their distance from the center.
func Vignette(dim sprite.Dimensions, x, y int, pixel color.Color) color.Color {
	return VignetteTo(color.Black)(dim, x, y, pixel)
}

// VignetteTo blends towards target by twice the distance from the pixel
// center to the sprite center, relative to the larger dimension.
func VignetteTo(target color.Color) TransformFunc {
	return func(dim sprite.Dimensions, x, y int, pixel color.Color) color.Color {
		cx := float64(dim.Width) / 2
		cy := float64(dim.Height) / 2
		dist := math.Hypot(cx-(float64(x)+0.5), cy-(float64(y)+0.5))
		weight := dist / math.Max(float64(dim.Width), float64(dim.Height)) * 2
		return blend(pixel, target, weight)
	}
}

func blend(pixel, target color.Color, weight float64) color.Color {
	mixed, err := pixel.MixWeighed(target, Clamp(weight, 0, 1))
	if err != nil {
		return pixel
	}
	return mixed
}
