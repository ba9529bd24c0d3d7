package cli

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/stepviz/internal/app"
	"github.com/llehouerou/stepviz/internal/errmsg"
	"github.com/llehouerou/stepviz/internal/logging"
)

// runTerminal runs the visualizer full screen. Logs move to the log file
// while the terminal belongs to the UI.
func runTerminal(o *RootOptions, ao app.Options) error {
	logCfg := o.Config.GetLogConfig()
	f, err := logging.OpenFile(logCfg.File)
	if err != nil {
		return WrapExitError(ExitFailure, errmsg.Format(errmsg.OpOpenLog, err), nil)
	}
	defer f.Close()
	if err := logging.Configure(o.logLevel(o.Config), f); err != nil {
		return WrapExitError(ExitCommandError, "configure logging", err)
	}

	ao.Config = o.Config
	ao.Logger = slog.Default()
	ao.Rand = o.Rand

	m := app.New(ao)
	defer func() {
		if err := m.Close(); err != nil {
			slog.Warn("close playback", "error", err)
		}
	}()

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return WrapExitError(ExitFailure, errmsg.Format(errmsg.OpRunTerminal, err), nil)
	}
	return nil
}
