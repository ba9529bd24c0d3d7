package app

import (
	tea "github.com/charmbracelet/bubbletea"
)

// WatchPlayback returns a command that waits for the next controller event.
// Each handled event re-arms the watch, so exactly one is pending.
func (m Model) WatchPlayback() tea.Cmd {
	sub := m.sub
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case e := <-sub.StepChanged:
			return StepChangedMsg(e)
		case e := <-sub.StateChanged:
			return StateChangedMsg(e)
		case e := <-sub.Completed:
			return CompletedMsg(e)
		case <-sub.Done:
			return PlaybackClosedMsg{}
		}
	}
}
