package app

import (
	"log/slog"
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/stepviz/internal/app/handler"
	"github.com/llehouerou/stepviz/internal/config"
	"github.com/llehouerou/stepviz/internal/errmsg"
	"github.com/llehouerou/stepviz/internal/i18n"
	"github.com/llehouerou/stepviz/internal/input"
	"github.com/llehouerou/stepviz/internal/keymap"
	"github.com/llehouerou/stepviz/internal/lesson"
)

// speedSteps are the intervals the faster and slower keys move between.
var speedSteps = []time.Duration{
	50 * time.Millisecond,
	100 * time.Millisecond,
	200 * time.Millisecond,
	300 * time.Millisecond,
	500 * time.Millisecond,
	800 * time.Millisecond,
	time.Second,
	1500 * time.Millisecond,
	2 * time.Second,
	3 * time.Second,
	5 * time.Second,
	10 * time.Second,
}

func (m *Model) handleQuitKeys(key string) handler.Result {
	if !m.keys().Is(key, keymap.ActionQuit) {
		return handler.NotHandled
	}
	// In the query box and help overlay esc closes them instead.
	if (m.querying || m.showHelp) && key != "ctrl+c" {
		return handler.NotHandled
	}
	m.controller.Pause()
	return handler.Handled(tea.Quit)
}

func (m *Model) handleGlobalKeys(key string) handler.Result {
	switch m.keys().Resolve(key) {
	case keymap.ActionToggleLanguage:
		m.toggleLanguage()
		return handler.HandledNoCmd
	case keymap.ActionHelp:
		m.showHelp = true
		return handler.HandledNoCmd
	}
	return handler.NotHandled
}

func (m *Model) handleHelpKeys(key string) handler.Result {
	switch key {
	case "?", "esc", "q":
		m.showHelp = false
	}
	return handler.HandledNoCmd
}

func (m *Model) handleFormKeys(key string) handler.Result {
	switch m.inputKeys.Resolve(key) {
	case keymap.ActionNextField:
		return handler.Handled(m.form.next())
	case keymap.ActionPrevField:
		return handler.Handled(m.form.prev())
	case keymap.ActionNextScreen:
		m.form = newForm(m.cfg, lesson.FromConfig(m.cfg, m.form.kind.Next()))
		m.status = ""
		return handler.HandledNoCmd
	case keymap.ActionRandomize:
		m.form.randomize(m.rng)
		return handler.HandledNoCmd
	case keymap.ActionSort:
		m.form.sortLists()
		return handler.HandledNoCmd
	case keymap.ActionStart:
		m.start()
		return handler.HandledNoCmd
	}
	return handler.NotHandled
}

// start builds the trace from the form and plays it. Invalid input keeps
// the form open with a message.
func (m *Model) start() {
	req, err := m.form.request()
	if err != nil {
		m.status = m.printer.Sprintf("input.fix")
		return
	}
	s, err := lesson.Build(m.printer, req)
	if err != nil {
		m.status = lesson.Message(m.printer, err)
		m.log.Warn(errmsg.FormatWith(errmsg.OpBuildTrace, string(req.Kind), err))
		return
	}
	m.open(s, true)
}

func (m *Model) handleTransportKeys(key string) handler.Result {
	c := m.controller
	switch m.playerKeys.Resolve(key) {
	case keymap.ActionPlayPause:
		c.Toggle()
	case keymap.ActionStepForward:
		c.StepForward(true)
	case keymap.ActionStepBack:
		c.StepBackward()
	case keymap.ActionSeekStart:
		c.SeekToStart()
	case keymap.ActionSeekEnd:
		c.SeekToEnd()
	case keymap.ActionFaster:
		c.SetInterval(nextSpeed(c.Interval(), -1))
	case keymap.ActionSlower:
		c.SetInterval(nextSpeed(c.Interval(), +1))
	default:
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}

func (m *Model) handlePlayerKeys(key string) handler.Result {
	switch m.playerKeys.Resolve(key) {
	case keymap.ActionBack:
		m.controller.Pause()
		m.screen = screenInput
		m.querying = false
		return handler.Handled(m.form.setFocus(m.form.focus))
	case keymap.ActionQuery:
		if m.session == nil || m.session.Prefix == nil {
			return handler.HandledNoCmd
		}
		m.querying = true
		m.query.Reset()
		return handler.Handled(m.query.Focus())
	}
	return handler.NotHandled
}

func (m *Model) handleQueryKeys(key string) handler.Result {
	switch key {
	case "esc":
		m.querying = false
		m.query.Blur()
		return handler.HandledNoCmd
	case "enter":
		m.runQuery()
		return handler.HandledNoCmd
	}
	return handler.NotHandled
}

// runQuery answers "left right" against the prefix sums of the session.
func (m *Model) runQuery() {
	p := m.printer
	res := m.session.Prefix
	values, err := input.Parse("query", m.query.Value())
	if err != nil || len(values) != 2 {
		m.queryOut = p.Sprintf("prefix.query.invalid", res.Len())
		m.queryBad = true
		return
	}
	l, r := int(values[0]), int(values[1])
	q := res.QueryWith(p, l, r)
	if !q.Valid {
		m.queryOut = q.Message
		m.queryBad = true
		return
	}
	m.queryOut = p.Sprintf("query.result", l, r, i18n.Num(q.RangeSum)) + "   " + q.Formula
	m.queryBad = false
}

// toggleLanguage switches to the next locale and re-records the open trace
// so its explanations follow, keeping position and play state.
func (m *Model) toggleLanguage() {
	langs := i18n.Default().Languages()
	i := slices.IndexFunc(langs, func(l i18n.Language) bool { return l.Code == m.printer.Lang() })
	next := langs[(i+1)%len(langs)].Code
	m.printer = i18n.NewPrinter(next)
	m.query.Placeholder = m.printer.Sprintf("query.prompt")
	m.log.Debug("language changed", slog.String("lang", next))

	if m.session == nil {
		return
	}
	s, err := lesson.Build(m.printer, m.session.Request)
	if err != nil {
		return
	}
	c := m.controller
	pos, playing := c.Position(), c.IsPlaying()
	m.session = s
	c.Load(s.Trace)
	c.SeekTo(pos)
	if playing {
		c.Play()
	}
	m.queryOut = ""
}

// nextSpeed moves one preset faster (dir < 0) or slower (dir > 0) from d.
func nextSpeed(d time.Duration, dir int) time.Duration {
	if dir < 0 {
		for i := len(speedSteps) - 1; i >= 0; i-- {
			if speedSteps[i] < d {
				return speedSteps[i]
			}
		}
		return config.MinInterval
	}
	for _, s := range speedSteps {
		if s > d {
			return s
		}
	}
	return config.MaxInterval
}
