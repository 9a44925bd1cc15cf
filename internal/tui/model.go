// Package tui implements the interactive sprite previewer.
package tui

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alexisbeaulieu97/spritegen/internal/model"
	"github.com/alexisbeaulieu97/spritegen/internal/pipeline"
	"github.com/alexisbeaulieu97/spritegen/pkg/sprite"
)

// Saver persists a sprite and returns where it went.
type Saver func(s *sprite.Sprite, seed uint64, index int) (string, error)

// Options configures NewModel.
type Options struct {
	Generator *pipeline.Generator
	// Name is the configuration name, shown title-cased.
	Name string
	// Saver is required for the save key; without it saving reports an error.
	Saver Saver
	// Renderer decides the color profile used for sprites. Defaults to lipgloss' default.
	Renderer *lipgloss.Renderer
	// Seeds supplies the seed for each regeneration. Defaults to math/rand.
	Seeds func() uint64
}

// Model contains the Bubbletea state for the previewer.
type Model struct {
	ctx      context.Context
	gen      *pipeline.Generator
	title    string
	save     Saver
	renderer *lipgloss.Renderer
	seeds    func() uint64

	keys    keyMap
	help    help.Model
	spinner spinner.Model

	summary    *model.GenerationSummary
	index      int
	generating bool
	saved      []string
	err        error
	quitting   bool
}

var errNoSaver = errors.New("saving is not available")

// NewModel constructs the previewer. Generation starts with Init.
func NewModel(ctx context.Context, opts Options) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}
	seeds := opts.Seeds
	if seeds == nil {
		seeds = rand.Uint64
	}
	save := opts.Saver
	if save == nil {
		save = func(*sprite.Sprite, uint64, int) (string, error) { return "", errNoSaver }
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = runningStyle

	return Model{
		ctx:        ctx,
		gen:        opts.Generator,
		title:      displayTitle(opts.Name),
		save:       save,
		renderer:   renderer,
		seeds:      seeds,
		keys:       defaultKeyMap(),
		help:       help.New(),
		spinner:    sp,
		generating: true,
	}
}

// Init starts the first generation.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, generateCmd(m.ctx, m.gen))
}

// Current returns the displayed result, if any.
func (m Model) Current() (model.GenerationResult, bool) {
	if m.summary == nil || len(m.summary.Results) == 0 {
		return model.GenerationResult{}, false
	}
	return m.summary.Results[m.index], true
}

// Index returns the position of the displayed sprite in the batch.
func (m Model) Index() int {
	return m.index
}

// Generating reports whether a batch is being produced.
func (m Model) Generating() bool {
	return m.generating
}

// Saved lists files written in this session.
func (m Model) Saved() []string {
	return append([]string(nil), m.saved...)
}

// Err returns the last generation or save error.
func (m Model) Err() error {
	return m.err
}

func displayTitle(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Sprites"
	}
	words := strings.NewReplacer("-", " ", "_", " ").Replace(name)
	return cases.Title(language.English).String(words)
}
