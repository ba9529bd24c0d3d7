// Package transportbar renders the playback controls under the step view.
package transportbar

import (
	"strings"
	"time"

	"github.com/llehouerou/stepviz/internal/deck"
	"github.com/llehouerou/stepviz/internal/i18n"
	"github.com/llehouerou/stepviz/internal/icons"
	"github.com/llehouerou/stepviz/internal/playback"
	"github.com/llehouerou/stepviz/internal/ui/render"
	"github.com/llehouerou/stepviz/internal/ui/styles"
)

// State holds everything needed to render the transport bar.
type State struct {
	Playing   bool
	Position  int
	Total     int
	Transport playback.Transport
	Interval  time.Duration

	// Clock is "mm:ss / mm:ss" for timed slide decks, empty otherwise.
	Clock string
}

// Height is the rendered height: border, progress row, buttons row, border.
const Height = 4

// NewState snapshots the controller for rendering.
func NewState(c *playback.Controller) State {
	pos, total := c.Progress()
	s := State{
		Playing:   c.IsPlaying(),
		Position:  pos,
		Total:     total,
		Transport: c.Transport(),
		Interval:  c.Interval(),
	}
	if t := c.Trace(); t != nil && t.Kind() == deck.Kind {
		s.Clock = deck.FormatClock(deck.Elapsed(t, pos)) + " / " + deck.FormatClock(deck.Total(t))
	}
	return s
}

// Render returns the bordered transport bar for the given width. An empty
// controller renders nothing.
func Render(p *i18n.Printer, s State, width int) string {
	if s.Total == 0 {
		return ""
	}
	inner := max(width-4, 0)

	ratio := playback.Fraction(s.Position, s.Total)
	label := playback.ProgressText(p, s.Position, s.Total)
	if s.Clock != "" {
		label += "  " + s.Clock
	}
	progress := RenderProgressBar(ratio, label, inner, s.Playing)

	speed := styles.T().S().Muted.Render(p.Sprintf("transport.speed") + " " + FormatInterval(s.Interval))
	controls := render.Row(Buttons(p, s), speed, inner)

	content := render.TruncateAndPad(progress, inner) + "\n" + render.TruncateAndPad(controls, inner)
	return styles.T().Panel(false).Width(max(width-2, 0)).Render(content)
}

// Buttons renders the transport buttons, striking through the ones the
// controller would ignore.
func Buttons(p *i18n.Printer, s State) string {
	ic := icons.Current()
	t := s.Transport

	play := button(ic.Play+" "+p.Sprintf(playLabel(s)), t.CanPlay)
	if s.Playing {
		play = button(ic.Pause+" "+p.Sprintf("transport.pause"), t.CanPause)
	}

	parts := []string{
		button(ic.Start+" "+p.Sprintf("transport.start"), t.CanSeekStart),
		button(ic.Back+" "+p.Sprintf("transport.back"), t.CanStepBackward),
		play,
		button(p.Sprintf("transport.next")+" "+ic.Next, t.CanStepForward),
		button(p.Sprintf("transport.finish")+" "+ic.End, t.CanSeekEnd),
	}
	return strings.Join(parts, " ")
}

func playLabel(s State) string {
	if s.Position > 0 && s.Position < s.Total-1 {
		return "transport.resume"
	}
	return "transport.play"
}

func button(label string, enabled bool) string {
	st := styles.T().S()
	if enabled {
		return st.Key.Render("[") + st.Base.Render(label) + st.Key.Render("]")
	}
	return st.Disabled.Render("[" + label + "]")
}

// FormatInterval renders an interval as "800ms" or "1.5s".
func FormatInterval(d time.Duration) string {
	if d < time.Second {
		return d.Round(time.Millisecond).String()
	}
	return d.Round(10 * time.Millisecond).String()
}
