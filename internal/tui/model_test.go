package tui

import (
	"bytes"
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/spritegen/internal/config"
	"github.com/alexisbeaulieu97/spritegen/internal/pipeline"
	"github.com/alexisbeaulieu97/spritegen/pkg/sprite"
)

const previewDoc = `version: "1.0"
name: tiny-ships
seed: 11
count: 3
sprite:
  dimensions: [5, 5]
steps:
  - type: edges
`

func newTestModel(t *testing.T, saver Saver) Model {
	t.Helper()

	cfg, err := config.Parse("preview.yaml", []byte(previewDoc))
	require.NoError(t, err)
	gen, err := pipeline.New(cfg)
	require.NoError(t, err)

	seeds := uint64(100)
	return NewModel(context.Background(), Options{
		Generator: gen,
		Name:      cfg.Name,
		Saver:     saver,
		Renderer:  lipgloss.NewRenderer(&bytes.Buffer{}),
		Seeds: func() uint64 {
			seeds++
			return seeds
		},
	})
}

// loaded runs the first generation synchronously.
func loaded(t *testing.T, m Model) Model {
	t.Helper()

	msg := generateCmd(m.ctx, m.gen)()
	next, _ := m.Update(msg)
	return next.(Model)
}

func press(t *testing.T, m Model, keys string) (Model, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keys)})
	return next.(Model), cmd
}

func TestNewModelStartsGenerating(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, nil)
	require.True(t, m.Generating())
	require.NotNil(t, m.Init())
	require.Contains(t, m.View(), "generating")
	require.Contains(t, m.View(), "Tiny Ships")

	_, ok := m.Current()
	require.False(t, ok)
}

func TestGeneratedBatchIsBrowsable(t *testing.T) {
	t.Parallel()

	m := loaded(t, newTestModel(t, nil))
	require.False(t, m.Generating())
	require.NoError(t, m.Err())

	current, ok := m.Current()
	require.True(t, ok)
	require.NotNil(t, current.Sprite)
	require.Equal(t, 7, current.Sprite.Width())

	m, _ = press(t, m, "n")
	require.Equal(t, 1, m.Index())
	m, _ = press(t, m, "n")
	m, _ = press(t, m, "n")
	require.Equal(t, 0, m.Index(), "next wraps to the first sprite")
	m, _ = press(t, m, "p")
	require.Equal(t, 2, m.Index(), "previous wraps to the last sprite")

	view := m.View()
	require.Contains(t, view, "3/3")
	require.Contains(t, view, "edges#0")
	require.Contains(t, view, "Seed: 11")
}

func TestRegenerateUsesFreshSeed(t *testing.T) {
	t.Parallel()

	m := loaded(t, newTestModel(t, nil))
	before, _ := m.Current()

	m, cmd := press(t, m, "r")
	require.True(t, m.Generating())
	require.NotNil(t, cmd)
	require.Equal(t, uint64(101), m.gen.Seed())

	m, _ = press(t, m, "n")
	require.Equal(t, 0, m.Index(), "browsing is ignored while generating")

	m = loaded(t, m)
	after, _ := m.Current()
	require.NotEqual(t, before.Sprite.Data(), after.Sprite.Data())
	require.Contains(t, m.View(), "Seed: 101")
}

func TestSaveCurrentSprite(t *testing.T) {
	t.Parallel()

	var gotSeed uint64
	var gotIndex int
	saver := func(s *sprite.Sprite, seed uint64, index int) (string, error) {
		gotSeed, gotIndex = seed, index
		return "tiny-ships-11-1.png", nil
	}

	m := loaded(t, newTestModel(t, saver))
	m, _ = press(t, m, "n")
	m, cmd := press(t, m, "s")
	require.NotNil(t, cmd)

	next, _ := m.Update(cmd())
	m = next.(Model)
	require.Equal(t, uint64(11), gotSeed)
	require.Equal(t, 1, gotIndex)
	require.Equal(t, []string{"tiny-ships-11-1.png"}, m.Saved())
	require.Contains(t, m.View(), "✓ tiny-ships-11-1.png")
}

func TestSaveWithoutSaverReportsError(t *testing.T) {
	t.Parallel()

	m := loaded(t, newTestModel(t, nil))
	m, cmd := press(t, m, "s")
	next, _ := m.Update(cmd())
	m = next.(Model)

	require.ErrorIs(t, m.Err(), errNoSaver)
	require.Empty(t, m.Saved())
}

func TestGenerationErrorIsShown(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, nil)
	next, _ := m.Update(GeneratedMsg{Err: errors.New("boom")})
	m = next.(Model)

	require.False(t, m.Generating())
	require.Contains(t, m.View(), "boom")
}

func TestQuitAndHelpKeys(t *testing.T) {
	t.Parallel()

	m := loaded(t, newTestModel(t, nil))

	m, _ = press(t, m, "?")
	require.True(t, m.help.ShowAll)

	m, cmd := press(t, m, "q")
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
	require.Empty(t, m.View())
}

func TestDisplayTitle(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Tiny Ships", displayTitle("tiny-ships"))
	require.Equal(t, "Space Invaders", displayTitle("space_invaders"))
	require.Equal(t, "Sprites", displayTitle("  "))
}
