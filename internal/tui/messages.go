package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/spritegen/internal/model"
	"github.com/alexisbeaulieu97/spritegen/internal/pipeline"
	"github.com/alexisbeaulieu97/spritegen/pkg/sprite"
)

// GeneratedMsg carries a finished batch. Summary is kept even when Err is set
// so successful sprites stay browsable.
type GeneratedMsg struct {
	Summary *model.GenerationSummary
	Err     error
}

// SavedMsg reports the outcome of saving the displayed sprite.
type SavedMsg struct {
	Path string
	Err  error
}

// generateCmd runs the batch off the UI loop.
func generateCmd(ctx context.Context, gen *pipeline.Generator) tea.Cmd {
	return func() tea.Msg {
		summary, err := gen.Generate(ctx)
		return GeneratedMsg{Summary: summary, Err: err}
	}
}

func saveCmd(save Saver, s *sprite.Sprite, seed uint64, index int) tea.Cmd {
	return func() tea.Msg {
		path, err := save(s, seed, index)
		return SavedMsg{Path: path, Err: err}
	}
}
