package components

import (
	"fmt"
	"strings"
)

// SummaryData aggregates counts for rendering summaries.
type SummaryData struct {
	Seed      uint64
	Total     int
	Succeeded int
	Failed    int
	// Saved lists the files written during this session.
	Saved []string
}

// Summary renders a textual batch summary.
type Summary struct {
	data SummaryData
}

// NewSummary creates a new Summary component.
func NewSummary(data SummaryData) Summary {
	return Summary{data: data}
}

// View renders the summary.
func (s Summary) View() string {
	if s.data.Total == 0 {
		return ""
	}

	lines := []string{
		fmt.Sprintf("Seed: %d", s.data.Seed),
		fmt.Sprintf("Sprites: %d/%d generated", s.data.Succeeded, s.data.Total),
	}
	if s.data.Failed > 0 {
		lines = append(lines, fmt.Sprintf("Failures: %d", s.data.Failed))
	}

	if len(s.data.Saved) > 0 {
		lines = append(lines, "Saved:")
		for _, path := range s.data.Saved {
			lines = append(lines, fmt.Sprintf("  ✓ %s", path))
		}
	}

	return strings.Join(lines, "\n")
}
