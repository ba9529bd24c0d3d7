package app

import (
	"strings"

	"github.com/llehouerou/stepviz/internal/icons"
	"github.com/llehouerou/stepviz/internal/keymap"
	"github.com/llehouerou/stepviz/internal/lesson"
	"github.com/llehouerou/stepviz/internal/ui/helpbindings"
	"github.com/llehouerou/stepviz/internal/ui/overlay"
	"github.com/llehouerou/stepviz/internal/ui/render"
	"github.com/llehouerou/stepviz/internal/ui/stepview"
	"github.com/llehouerou/stepviz/internal/ui/styles"
	"github.com/llehouerou/stepviz/internal/ui/transportbar"
)

const defaultWidth = 80

// View implements tea.Model.
func (m Model) View() string {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}

	sections := []string{m.renderHeader(width)}
	if m.screen == screenInput {
		sections = append(sections, m.renderForm(width)...)
	} else {
		sections = append(sections, m.renderPlayer(width)...)
	}
	view := strings.Join(sections, "\n\n")

	if m.showHelp {
		boxWidth := min(width, 76)
		box := styles.T().Panel(true).Render(helpbindings.View(m.helpContexts(), boxWidth-4))
		view = overlay.Center(view, box, width)
	}
	return view
}

func (m Model) helpContexts() []string {
	if m.screen == screenInput {
		return []string{keymap.ContextGlobal, keymap.ContextInput}
	}
	return []string{keymap.ContextGlobal, keymap.ContextPlayer}
}

func (m Model) renderHeader(width int) string {
	t := styles.T()
	title := m.printer.Sprintf("screen.title")
	if m.screen == screenPlayer && m.session != nil {
		title = m.printer.Sprintf(m.session.Request.Kind.TitleKey())
	}
	right := t.S().Muted.Render(m.printer.Sprintf("screen.language") + ": " + strings.ToUpper(m.printer.Lang()))
	return render.Row(t.GradientTitle(title), right, width)
}

func (m Model) renderTabs() string {
	st := styles.T().S()
	tabs := make([]string, len(lesson.Kinds))
	for i, k := range lesson.Kinds {
		name := m.printer.Sprintf(k.TitleKey())
		if k == m.form.kind {
			tabs[i] = st.Pointer.Render("[" + name + "]")
		} else {
			tabs[i] = st.Muted.Render(" " + name + " ")
		}
	}
	return strings.Join(tabs, " ")
}

func (m Model) renderForm(width int) []string {
	t := styles.T()
	st := t.S()
	p := m.printer
	inner := max(width-4, 10)

	var rows []string
	if len(m.form.fields) == 0 {
		rows = append(rows, st.Base.Render(p.Sprintf("form.deck")))
	}
	for i, f := range m.form.fields {
		label := st.Label
		if i == m.form.focus {
			label = st.Pointer
		}
		f.input.Width = inner - 3
		rows = append(rows, label.Render(p.Sprintf(f.label)), f.input.View())
	}
	panel := t.Panel(true).Width(max(width-2, 0)).Render(strings.Join(rows, "\n"))

	var validation string
	if _, err := m.form.request(); err != nil {
		validation = st.Error.Render(icons.Current().Invalid + " " + render.Truncate(lesson.Message(p, err), width-2))
	} else {
		validation = st.Success.Render(p.Sprintf("input.valid"))
	}

	out := []string{m.renderTabs(), panel, validation}
	if m.status != "" {
		out = append(out, st.Warning.Render(m.status))
	}
	hints := helpbindings.Only(keymap.ContextInput,
		keymap.ActionStart, keymap.ActionNextField, keymap.ActionNextScreen,
		keymap.ActionRandomize, keymap.ActionSort, keymap.ActionToggleLanguage, keymap.ActionQuit)
	return append(out, helpbindings.Short(hints, width))
}

func (m Model) renderPlayer(width int) []string {
	t := styles.T()
	st := t.S()
	p := m.printer
	c := m.controller

	step, ok := c.Current()
	if !ok {
		return []string{st.Muted.Render(p.Sprintf("screen.empty"))}
	}
	inner := max(width-4, 10)
	view := stepview.Render(p, c.Trace(), c.Position(), inner)

	out := []string{
		t.Panel(false).Width(max(width-2, 0)).Render(view),
		stepview.Explanation(step, width),
	}
	if q := m.renderQuery(width); q != "" {
		out = append(out, q)
	}
	out = append(out, transportbar.Render(p, transportbar.NewState(c), width))

	actions := []keymap.Action{
		keymap.ActionPlayPause, keymap.ActionStepForward, keymap.ActionStepBack,
		keymap.ActionSeekStart, keymap.ActionSeekEnd, keymap.ActionFaster, keymap.ActionSlower,
	}
	if m.session != nil && m.session.Prefix != nil {
		actions = append(actions, keymap.ActionQuery)
	}
	actions = append(actions, keymap.ActionHelp, keymap.ActionBack, keymap.ActionQuit)
	return append(out, helpbindings.Short(helpbindings.Only(keymap.ContextPlayer, actions...), width))
}

func (m Model) renderQuery(width int) string {
	st := styles.T().S()
	var lines []string
	if m.querying {
		lines = append(lines, st.Label.Render(m.printer.Sprintf("screen.query"))+" "+m.query.View())
	}
	if m.queryOut != "" {
		style := st.Accent
		if m.queryBad {
			style = st.Error
		}
		lines = append(lines, style.Render(render.Truncate(m.queryOut, width)))
	}
	return strings.Join(lines, "\n")
}
