package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if !m.generating {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case GeneratedMsg:
		m.generating = false
		m.summary = msg.Summary
		m.index = 0
		m.err = msg.Err
		return m, nil

	case SavedMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.saved = append(m.saved, msg.Path)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case m.generating:
		return m, nil

	case key.Matches(msg, m.keys.Regenerate):
		m.gen = m.gen.Reseed(m.seeds())
		m.generating = true
		m.err = nil
		return m, tea.Batch(m.spinner.Tick, generateCmd(m.ctx, m.gen))

	case key.Matches(msg, m.keys.Next):
		m.step(1)
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		m.step(-1)
		return m, nil

	case key.Matches(msg, m.keys.Save):
		current, ok := m.Current()
		if !ok || current.Sprite == nil {
			return m, nil
		}
		return m, saveCmd(m.save, current.Sprite, m.summary.Seed, current.Index)
	}

	return m, nil
}

// step moves through the batch, wrapping at both ends.
func (m *Model) step(delta int) {
	if m.summary == nil || len(m.summary.Results) == 0 {
		return
	}
	n := len(m.summary.Results)
	m.index = ((m.index+delta)%n + n) % n
}
