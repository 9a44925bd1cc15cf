package components

import (
	"github.com/alexisbeaulieu97/spritegen/internal/model"
)

// StepEntry represents a single step for rendering.
type StepEntry struct {
	ID     string
	Result model.StepResult
}

// StepList holds the steps that produced one sprite, in execution order.
type StepList struct {
	entries []StepEntry
}

// NewStepList constructs a step list component.
func NewStepList(results []model.StepResult) StepList {
	entries := make([]StepEntry, 0, len(results))
	for _, res := range results {
		entries = append(entries, StepEntry{ID: res.StepID, Result: res})
	}
	return StepList{entries: entries}
}

// Entries returns the ordered step entries.
func (s StepList) Entries() []StepEntry {
	clone := make([]StepEntry, len(s.entries))
	copy(clone, s.entries)
	return clone
}
