package render

import (
	"bytes"
	"image"
	imgcolor "image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/spritegen/pkg/color"
	spriteerrors "github.com/alexisbeaulieu97/spritegen/pkg/errors"
	"github.com/alexisbeaulieu97/spritegen/pkg/sprite"
)

func checker(t *testing.T) *sprite.Sprite {
	t.Helper()

	red := color.MustNew(1, 0, 0, 1)
	s, err := sprite.New(3, 3, sprite.WithFill(color.White))
	require.NoError(t, err)
	require.NoError(t, s.SetPixelAt(0, 0, red))
	require.NoError(t, s.SetPixelAt(2, 2, red))
	return s
}

func TestEncodePNGScales(t *testing.T) {
	t.Parallel()

	data, err := PNG(checker(t), 4)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, 12, img.Bounds().Dx())
	require.Equal(t, 12, img.Bounds().Dy())

	r, g, b, a := img.At(3, 3).RGBA()
	require.Equal(t, [4]uint32{0xFFFF, 0, 0, 0xFFFF}, [4]uint32{r, g, b, a})
	r, g, b, _ = img.At(4, 4).RGBA()
	require.Equal(t, [3]uint32{0xFFFF, 0xFFFF, 0xFFFF}, [3]uint32{r, g, b})
	r, _, _, _ = img.At(11, 11).RGBA()
	require.Equal(t, uint32(0xFFFF), r)
}

func TestUpscaleCopiesEveryPixel(t *testing.T) {
	t.Parallel()

	solid, err := sprite.New(3, 3, sprite.WithFill(color.MustNew(1, 0, 0, 1)))
	require.NoError(t, err)

	img := Upscale(solid, 4)
	for _, pt := range []image.Point{{0, 0}, {3, 3}, {4, 4}, {11, 11}} {
		require.Equal(t, imgcolor.NRGBA{R: 255, A: 255}, img.NRGBAAt(pt.X, pt.Y), "pixel %v", pt)
	}
}

func TestUpscaleClampsScale(t *testing.T) {
	t.Parallel()

	img := Upscale(checker(t), 0)
	require.Equal(t, 3, img.Bounds().Dx())
}

func TestEncodeDispatch(t *testing.T) {
	t.Parallel()

	s := checker(t)

	var svg bytes.Buffer
	require.NoError(t, Encode(&svg, s, Options{Format: FormatSVG, Scale: 2, Unit: "px"}))
	require.True(t, strings.HasPrefix(svg.String(), "<svg "))
	require.Contains(t, svg.String(), `width="6px"`)

	var raster bytes.Buffer
	require.NoError(t, Encode(&raster, s, Options{Format: FormatPNG, Scale: 1}))
	_, err := png.Decode(&raster)
	require.NoError(t, err)

	var validationErr *spriteerrors.ValidationError
	require.ErrorAs(t, Encode(&raster, s, Options{Format: "gif", Scale: 1}), &validationErr)
	require.Equal(t, "format", validationErr.Field)
	require.ErrorAs(t, Encode(&raster, s, Options{Format: FormatPNG}), &validationErr)
	require.Equal(t, "scale", validationErr.Field)
	require.ErrorAs(t, Encode(&raster, nil, Options{Scale: 1}), &validationErr)
}

func TestExtension(t *testing.T) {
	t.Parallel()

	require.Equal(t, ".png", Extension(FormatPNG))
	require.Equal(t, ".svg", Extension(FormatSVG))
	require.Equal(t, ".svg", Extension(""))
}

func TestTerminalLayout(t *testing.T) {
	t.Parallel()

	s := checker(t)
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	out := Terminal(s, r)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		require.Equal(t, 3, lipgloss.Width(line))
	}
	require.Contains(t, lines[0], upperHalf)
}

func TestTerminalTransparentPixels(t *testing.T) {
	t.Parallel()

	s, err := sprite.New(2, 2, sprite.WithFill(color.Transparent))
	require.NoError(t, err)
	require.NoError(t, s.SetPixelAt(1, 1, color.White))

	out := Terminal(s, lipgloss.NewRenderer(&bytes.Buffer{}))
	require.Equal(t, " "+lowerHalf, out)
}
