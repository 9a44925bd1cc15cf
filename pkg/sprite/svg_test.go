package sprite

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/spritegen/pkg/color"
)

func newTestSprite(t *testing.T, width, height int) *Sprite {
	t.Helper()

	s, err := New(width, height, WithFill(color.White))
	require.NoError(t, err)
	return s
}

func TestSVGExactEmitsOneRectPerPixel(t *testing.T) {
	t.Parallel()

	s := newTestSprite(t, 2, 3)
	require.NoError(t, s.SetPixelAt(1, 2, color.MustNew(255, 0, 0, 0.5)))

	out := s.SVGExact(20, 30, "")
	require.True(t, strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" width="20px" height="30px" viewBox="0 0 2 3">`))
	require.True(t, strings.HasSuffix(out, "</svg>\n"))
	require.Equal(t, 6, strings.Count(out, "<rect "))
	require.Contains(t, out, `<rect width="1" height="1" x="1" y="2" style="fill:rgba(255, 0, 0, 0.5);" />`)
	require.Contains(t, out, `<rect width="1" height="1" x="0" y="0" style="fill:rgba(255, 255, 255, 1);" />`)
}

func TestSVGSizingStrategies(t *testing.T) {
	t.Parallel()

	s := newTestSprite(t, 7, 9)

	cases := []struct {
		name   string
		render func() string
		width  string
		height string
	}{
		{name: "width rounds up and keeps aspect", render: func() string { return s.SVGWidth(100, "px") }, width: `width="105px"`, height: `height="135px"`},
		{name: "exact multiple is kept", render: func() string { return s.SVGWidth(70, "px") }, width: `width="70px"`, height: `height="90px"`},
		{name: "height rounds up and keeps aspect", render: func() string { return s.SVGHeight(100, "pt") }, width: `width="84pt"`, height: `height="108pt"`},
		{name: "both sides round independently", render: func() string { return s.SVG(100, 100, "px") }, width: `width="105px"`, height: `height="108px"`},
		{name: "scale multiplies native size", render: func() string { return s.SVGScale(4, "px") }, width: `width="28px"`, height: `height="36px"`},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			out := tc.render()
			require.Contains(t, out, tc.width)
			require.Contains(t, out, tc.height)
			require.Contains(t, out, `viewBox="0 0 7 9"`)
		})
	}
}
