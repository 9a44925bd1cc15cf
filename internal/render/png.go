package render

import (
	"bytes"
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"github.com/alexisbeaulieu97/spritegen/pkg/sprite"
)

// Upscale returns s enlarged by scale with nearest-neighbour sampling so
// pixel edges stay hard.
func Upscale(s *sprite.Sprite, scale int) *image.NRGBA {
	if scale < 1 {
		scale = 1
	}
	dst := image.NewNRGBA(image.Rect(0, 0, s.Width()*scale, s.Height()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), s, s.Bounds(), draw.Src, nil)
	return dst
}

// EncodePNG writes s as a PNG upscaled by scale.
func EncodePNG(w io.Writer, s *sprite.Sprite, scale int) error {
	return png.Encode(w, Upscale(s, scale))
}

// PNG returns the encoded bytes of EncodePNG.
func PNG(s *sprite.Sprite, scale int) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, s, scale); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
