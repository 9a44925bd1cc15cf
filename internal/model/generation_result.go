package model

import (
	"time"

	"github.com/alexisbeaulieu97/spritegen/pkg/sprite"
)

// GenerationResult is the outcome of producing one sprite: the fill followed
// by every compositing step.
type GenerationResult struct {
	// Index is the position of the sprite within the batch.
	Index int

	// Sprite is nil when any step failed.
	Sprite *sprite.Sprite

	Steps    []StepResult
	Error    error
	Duration time.Duration
}

// Failed reports whether the sprite could not be produced.
func (r GenerationResult) Failed() bool {
	return r.Error != nil
}

// GenerationSummary aggregates the results of a batch.
type GenerationSummary struct {
	// Seed is the value every sprite in the batch was derived from.
	Seed      uint64
	Total     int
	Succeeded int
	Failed    int
	Results   []GenerationResult
}

// Add appends a result and updates counters.
func (s *GenerationSummary) Add(result GenerationResult) {
	s.Results = append(s.Results, result)
	s.Total++
	if result.Failed() {
		s.Failed++
		return
	}
	s.Succeeded++
}

// Sprites returns the successfully generated sprites in batch order.
func (s *GenerationSummary) Sprites() []*sprite.Sprite {
	out := make([]*sprite.Sprite, 0, s.Succeeded)
	for _, r := range s.Results {
		if r.Sprite != nil {
			out = append(out, r.Sprite)
		}
	}
	return out
}

// ExitCode returns 0 when every sprite was generated, 1 otherwise.
func (s *GenerationSummary) ExitCode() int {
	if s.Failed > 0 {
		return 1
	}
	return 0
}
