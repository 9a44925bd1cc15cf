package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/spritegen/pkg/color"
	"github.com/alexisbeaulieu97/spritegen/pkg/sprite"
)

const (
	upperHalf = "▀"
	lowerHalf = "▄"
	emptyCell = " "
)

// Terminal draws s with half-block characters, two sprite rows per line.
// Fully transparent pixels are left uncolored. A nil renderer uses the
// lipgloss default.
func Terminal(s *sprite.Sprite, r *lipgloss.Renderer) string {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	var b strings.Builder
	for y := 0; y < s.Height(); y += 2 {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < s.Width(); x++ {
			top, _ := s.PixelAt(x, y)
			bottom := color.Transparent
			if y+1 < s.Height() {
				bottom, _ = s.PixelAt(x, y+1)
			}
			b.WriteString(cell(r, top, bottom))
		}
	}
	return b.String()
}

func cell(r *lipgloss.Renderer, top, bottom color.Color) string {
	topVisible := top.Alpha() > 0
	bottomVisible := bottom.Alpha() > 0

	switch {
	case topVisible && bottomVisible:
		return r.NewStyle().Foreground(hex(top)).Background(hex(bottom)).Render(upperHalf)
	case topVisible:
		return r.NewStyle().Foreground(hex(top)).Render(upperHalf)
	case bottomVisible:
		return r.NewStyle().Foreground(hex(bottom)).Render(lowerHalf)
	default:
		return emptyCell
	}
}

// hex drops alpha: terminals have no translucency.
func hex(c color.Color) lipgloss.Color {
	n := c.NRGBA()
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", n.R, n.G, n.B))
}
