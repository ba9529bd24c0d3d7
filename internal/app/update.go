package app

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/stepviz/internal/app/handler"
	"github.com/llehouerou/stepviz/internal/keymap"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case StepChangedMsg:
		return m, m.WatchPlayback()

	case StateChangedMsg:
		return m, m.WatchPlayback()

	case CompletedMsg:
		m.log.Debug("playback completed", slog.Int("steps", msg.Total))
		return m, m.WatchPlayback()

	case PlaybackClosedMsg:
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Cursor blink and other component messages.
	if m.querying {
		var cmd tea.Cmd
		m.query, cmd = m.query.Update(msg)
		return m, cmd
	}
	if m.screen == screenInput {
		return m, m.form.update(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	var r handler.Result
	switch {
	case m.showHelp:
		r = handler.Chain(key, m.handleQuitKeys, m.handleHelpKeys)
	case m.querying:
		r = handler.Chain(key, m.handleQuitKeys, m.handleQueryKeys)
	case m.screen == screenInput:
		r = handler.Chain(key, m.handleQuitKeys, m.handleGlobalKeys, m.handleFormKeys)
		if !r.Handled {
			m.status = ""
			return *m, m.form.update(msg)
		}
	default:
		r = handler.Chain(key, m.handleQuitKeys, m.handleGlobalKeys, m.handleTransportKeys, m.handlePlayerKeys)
	}
	if r.Handled {
		return *m, r.Cmd
	}
	if m.querying {
		var cmd tea.Cmd
		m.query, cmd = m.query.Update(msg)
		return *m, cmd
	}
	return *m, nil
}

// keys returns the resolver of the current screen.
func (m *Model) keys() *keymap.Resolver {
	if m.screen == screenInput {
		return m.inputKeys
	}
	return m.playerKeys
}
