package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/spritegen/internal/model"
	"github.com/alexisbeaulieu97/spritegen/internal/render"
	"github.com/alexisbeaulieu97/spritegen/internal/tui/components"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{titleStyle.Render(fmt.Sprintf("spritegen • %s", m.title))}

	if m.generating {
		sections = append(sections, fmt.Sprintf("%s generating…", m.spinner.View()))
		sections = append(sections, m.help.View(m.keys))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	if current, ok := m.Current(); ok {
		sections = append(sections, components.NewProgress(len(m.summary.Results)).View(m.index+1))
		if current.Sprite != nil {
			sections = append(sections, spriteStyle.Render(render.Terminal(current.Sprite, m.renderer)))
		} else {
			sections = append(sections, failureStyle.Render("sprite could not be generated"))
		}

		if entries := components.NewStepList(current.Steps).Entries(); len(entries) > 0 {
			sections = append(sections, sectionStyle.Render("Steps"), renderStepEntries(entries))
		}

		summary := components.NewSummary(components.SummaryData{
			Seed:      m.summary.Seed,
			Total:     m.summary.Total,
			Succeeded: m.summary.Succeeded,
			Failed:    m.summary.Failed,
			Saved:     m.saved,
		}).View()
		if strings.TrimSpace(summary) != "" {
			sections = append(sections, sectionStyle.Render("Summary"), summaryStyle.Render(summary))
		}
	}

	if m.err != nil {
		sections = append(sections, failureStyle.Render(m.err.Error()))
	}

	sections = append(sections, helpStyle.Render(m.help.View(m.keys)))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderStepEntries(entries []components.StepEntry) string {
	var lines []string
	for _, entry := range entries {
		res := entry.Result
		line := fmt.Sprintf(" %s %s", StatusIcon(res.Status), entry.ID)
		if res.Status == model.StatusFailed && strings.TrimSpace(res.Message) != "" {
			line = fmt.Sprintf("%s: %s", line, res.Message)
		}
		if res.Duration > 0 {
			line = fmt.Sprintf("%s (%s)", line, res.Duration.Truncate(time.Microsecond))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// StatusIcon returns the glyph representing a step status.
func StatusIcon(status string) string {
	switch status {
	case model.StatusSuccess:
		return successStyle.Render("✓")
	case model.StatusRunning:
		return runningStyle.Render("⏳")
	case model.StatusFailed:
		return failureStyle.Render("✗")
	case model.StatusSkipped:
		return skippedStyle.Render("⊘")
	default:
		return pendingStyle.Render("…")
	}
}
