package sprite

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const defaultUnit = "px"

// SVGExact renders one 1x1 rect per pixel inside a viewBox equal to the
// raster size, scaled to exactly width x height output units.
func (s *Sprite) SVGExact(width, height float64, unit string) string {
	if unit == "" {
		unit = defaultUnit
	}

	var b strings.Builder
	b.Grow(len(s.pixels)*80 + 160)
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%s%s" height="%s%s" viewBox="0 0 %d %d">`,
		formatSize(width), unit, formatSize(height), unit, s.dim.Width, s.dim.Height)
	b.WriteByte('\n')

	for x := 0; x < s.dim.Width; x++ {
		for y := 0; y < s.dim.Height; y++ {
			fmt.Fprintf(&b, `<rect width="1" height="1" x="%d" y="%d" style="fill:%s;" />`, x, y, s.pixels[y*s.dim.Width+x].ToRgba())
			b.WriteByte('\n')
		}
	}

	b.WriteString("</svg>\n")
	return b.String()
}

// SVGWidth renders at the smallest multiple of the raster width not below
// width; the height follows the aspect ratio.
func (s *Sprite) SVGWidth(width float64, unit string) string {
	w := roundUpToMultiple(width, s.dim.Width)
	h := w / float64(s.dim.Width) * float64(s.dim.Height)
	return s.SVGExact(w, h, unit)
}

// SVGHeight renders at the smallest multiple of the raster height not below
// height; the width follows the aspect ratio.
func (s *Sprite) SVGHeight(height float64, unit string) string {
	h := roundUpToMultiple(height, s.dim.Height)
	w := h / float64(s.dim.Height) * float64(s.dim.Width)
	return s.SVGExact(w, h, unit)
}

// SVG rounds both sides up to multiples of the raster dimensions.
func (s *Sprite) SVG(width, height float64, unit string) string {
	return s.SVGExact(roundUpToMultiple(width, s.dim.Width), roundUpToMultiple(height, s.dim.Height), unit)
}

// SVGScale renders every raster pixel as a pixelSize x pixelSize square.
func (s *Sprite) SVGScale(pixelSize float64, unit string) string {
	return s.SVGExact(float64(s.dim.Width)*pixelSize, float64(s.dim.Height)*pixelSize, unit)
}

func roundUpToMultiple(value float64, step int) float64 {
	if value <= 0 {
		return float64(step)
	}
	return math.Ceil(value/float64(step)) * float64(step)
}

func formatSize(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
