package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

const progressWidth = 24

var positionStyle = lipgloss.NewStyle().Bold(true)

// Progress shows which sprite of a batch is on screen.
type Progress struct {
	bar   progress.Model
	total int
}

// NewProgress creates a progress component for a batch of total sprites.
func NewProgress(total int) Progress {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = progressWidth
	return Progress{bar: bar, total: total}
}

// View renders the 1-based position. Single-sprite batches get no bar.
func (p Progress) View(position int) string {
	label := positionStyle.Render(fmt.Sprintf("%d/%d", position, p.total))
	if p.total <= 1 {
		return label
	}
	ratio := float64(position) / float64(p.total)
	if ratio > 1 {
		ratio = 1
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, label, " ", p.bar.ViewAs(ratio))
}
