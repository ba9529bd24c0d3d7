package app

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/stepviz/internal/clock"
	"github.com/llehouerou/stepviz/internal/config"
	"github.com/llehouerou/stepviz/internal/input"
	"github.com/llehouerou/stepviz/internal/lesson"
	"github.com/llehouerou/stepviz/internal/playback"
	"github.com/llehouerou/stepviz/internal/ui/testutil"
)

var specialKeys = map[string]tea.KeyType{
	" ":      tea.KeySpace,
	"enter":  tea.KeyEnter,
	"esc":    tea.KeyEsc,
	"tab":    tea.KeyTab,
	"right":  tea.KeyRight,
	"left":   tea.KeyLeft,
	"home":   tea.KeyHome,
	"end":    tea.KeyEnd,
	"ctrl+c": tea.KeyCtrlC,
	"ctrl+l": tea.KeyCtrlL,
	"ctrl+n": tea.KeyCtrlN,
	"ctrl+r": tea.KeyCtrlR,
	"ctrl+s": tea.KeyCtrlS,
}

func keyMsg(k string) tea.KeyMsg {
	if t, ok := specialKeys[k]; ok {
		if t == tea.KeySpace {
			return tea.KeyMsg{Type: t, Runes: []rune{' '}}
		}
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func newTestModel(t *testing.T, opts Options) (Model, *clock.Manual) {
	t.Helper()
	sched := clock.NewManual()
	opts.Scheduler = sched
	if opts.Config == nil {
		opts.Config = &config.Config{}
	}
	opts.Rand = rand.New(rand.NewPCG(1, 2))
	m := New(opts)
	t.Cleanup(func() { _ = m.Close() })
	return m, sched
}

func press(t *testing.T, m Model, keys ...string) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(keyMsg(k))
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m, cmd
}

func TestNew_StartsOnPrefixForm(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	if m.screen != screenInput {
		t.Errorf("screen = %v, want input", m.screen)
	}
	if m.form.kind != lesson.KindPrefix || len(m.form.fields) != 1 {
		t.Fatalf("form = %v with %d fields", m.form.kind, len(m.form.fields))
	}
	if got := m.form.value(0); got != "1, 2, 3, 4" {
		t.Errorf("values = %q", got)
	}
	if m.controller.State() != playback.StateEmpty {
		t.Errorf("controller state = %v, want Empty", m.controller.State())
	}
}

func TestStart_LoadsAndPlays(t *testing.T) {
	m, sched := newTestModel(t, Options{})

	m, _ = press(t, m, "enter")

	if m.screen != screenPlayer {
		t.Fatal("enter should open the player")
	}
	c := m.controller
	if c.Len() != 5 || !c.IsPlaying() || c.Position() != 0 {
		t.Fatalf("controller len=%d playing=%v pos=%d", c.Len(), c.IsPlaying(), c.Position())
	}

	sched.Advance(time.Second)
	if c.Position() != 1 {
		t.Errorf("position after one interval = %d, want 1", c.Position())
	}
}

func TestStart_InvalidInputBlocked(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m.form.fields[0].input.SetValue("1, x")

	m, _ = press(t, m, "enter")

	if m.screen != screenInput {
		t.Error("invalid input should keep the form open")
	}
	if m.status != "Please fix validation errors before starting" {
		t.Errorf("status = %q", m.status)
	}
	if !testutil.ContainsLine(m.View(), "Element 2 in List A is not a valid integer") {
		t.Errorf("view misses the validation message:\n%s", testutil.StripANSI(m.View()))
	}
}

func TestFormKeys_CycleRandomizeSort(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m, _ = press(t, m, "ctrl+n")
	if m.form.kind != lesson.KindMerge || len(m.form.fields) != 2 {
		t.Fatalf("ctrl+n should switch to merge, got %v", m.form.kind)
	}

	m, _ = press(t, m, "ctrl+r")
	for i := range m.form.fields {
		values, err := input.Parse("X", m.form.value(i))
		if err != nil {
			t.Fatalf("random list %d does not parse: %v", i, err)
		}
		if len(values) != 5 {
			t.Errorf("random list %d has %d values, want 5", i, len(values))
		}
		for j := 1; j < len(values); j++ {
			if values[j] < values[j-1] {
				t.Errorf("random merge list %d is not sorted: %v", i, values)
			}
		}
	}

	m.form.fields[0].input.SetValue("3 1 2")
	m, _ = press(t, m, "ctrl+s")
	if got := m.form.value(0); got != "1, 2, 3" {
		t.Errorf("sorted = %q", got)
	}

	m, _ = press(t, m, "ctrl+n", "ctrl+n", "ctrl+n")
	if m.form.kind != lesson.KindPrefix {
		t.Errorf("four ctrl+n should wrap to prefix, got %v", m.form.kind)
	}
}

func TestFormKeys_TypingAndFocus(t *testing.T) {
	m, _ := newTestModel(t, Options{Kind: lesson.KindMerge})

	m, _ = press(t, m, "tab")
	if m.form.focus != 1 {
		t.Fatalf("focus = %d, want 1", m.form.focus)
	}
	m, _ = press(t, m, ",", "9")
	if got := m.form.value(1); got != "2, 4,9" {
		t.Errorf("B = %q", got)
	}
	m, _ = press(t, m, "tab")
	if m.form.focus != 0 {
		t.Errorf("focus should wrap to 0, got %d", m.form.focus)
	}
}

func TestPlayerKeys_Transport(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m, _ = press(t, m, "enter", " ")
	c := m.controller

	if c.IsPlaying() {
		t.Fatal("space should pause")
	}
	m, _ = press(t, m, "right", "l")
	if c.Position() != 2 {
		t.Errorf("position = %d, want 2", c.Position())
	}
	m, _ = press(t, m, "left")
	if c.Position() != 1 {
		t.Errorf("position = %d, want 1", c.Position())
	}
	m, _ = press(t, m, "G")
	if c.Position() != 4 {
		t.Errorf("G should seek to end, got %d", c.Position())
	}
	m, _ = press(t, m, "home")
	if c.Position() != 0 {
		t.Errorf("home should seek to start, got %d", c.Position())
	}

	m, _ = press(t, m, "+")
	if c.Interval() != 800*time.Millisecond {
		t.Errorf("faster interval = %v, want 800ms", c.Interval())
	}
	_, _ = press(t, m, "-", "-")
	if c.Interval() != 1500*time.Millisecond {
		t.Errorf("slower interval = %v, want 1.5s", c.Interval())
	}
}

func TestPlayerKeys_BackPausesAndKeepsForm(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m.form.fields[0].input.SetValue("5, 6")

	m, _ = press(t, m, "enter", "esc")

	if m.screen != screenInput {
		t.Error("esc should return to the form")
	}
	if m.controller.IsPlaying() {
		t.Error("esc should pause playback")
	}
	if got := m.form.value(0); got != "5, 6" {
		t.Errorf("form lost its values: %q", got)
	}
}

func TestQuit(t *testing.T) {
	tests := []struct {
		name string
		keys []string
	}{
		{"ctrl+c on form", []string{"ctrl+c"}},
		{"esc on form", []string{"esc"}},
		{"q on player", []string{"enter", "q"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestModel(t, Options{})
			_, cmd := press(t, m, tt.keys...)
			if cmd == nil {
				t.Fatal("expected quit command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Error("expected tea.QuitMsg")
			}
		})
	}
}

func TestQ_TypesIntoForm(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m.form.fields[0].input.SetValue("")

	m, cmd := press(t, m, "q")
	if cmd != nil {
		if _, ok := cmd().(tea.QuitMsg); ok {
			t.Fatal("q on the form should not quit")
		}
	}
	if m.form.value(0) != "q" {
		t.Errorf("value = %q, want q", m.form.value(0))
	}
}

func TestRangeQuery(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m, _ = press(t, m, "enter", "r")
	if !m.querying {
		t.Fatal("r should open the query box")
	}

	m, _ = press(t, m, "2 3", "enter")
	if m.queryBad {
		t.Fatalf("query failed: %q", m.queryOut)
	}
	want := "Sum of A[2..3] = 5   S[3] - S[1] = 6 - 1 = 5"
	if m.queryOut != want {
		t.Errorf("queryOut = %q, want %q", m.queryOut, want)
	}
	if !testutil.ContainsLine(m.View(), "Sum of A[2..3] = 5") {
		t.Error("view should show the query result")
	}

	m.query.SetValue("0 9")
	m, _ = press(t, m, "enter")
	if !m.queryBad || !strings.Contains(m.queryOut, "1 ≤ left ≤ right ≤ 4") {
		t.Errorf("invalid query = %q (bad=%v)", m.queryOut, m.queryBad)
	}

	m, _ = press(t, m, "esc")
	if m.querying || m.screen != screenPlayer {
		t.Error("esc should close only the query box")
	}
}

func TestRangeQuery_OnlyForPrefix(t *testing.T) {
	m, _ := newTestModel(t, Options{Kind: lesson.KindMerge})
	m, _ = press(t, m, "enter", "r")
	if m.querying {
		t.Error("merge has no range query")
	}
}

func TestToggleLanguage_RetracesAtSamePosition(t *testing.T) {
	m, _ := newTestModel(t, Options{Kind: lesson.KindMerge})
	m, _ = press(t, m, "enter", " ", "right", "right")
	before, _ := m.controller.Current()

	m, _ = press(t, m, "L")

	if m.printer.Lang() != "vi" {
		t.Fatalf("lang = %q, want vi", m.printer.Lang())
	}
	after, _ := m.controller.Current()
	if m.controller.Position() != 2 {
		t.Errorf("position = %d, want 2", m.controller.Position())
	}
	if after.Explanation[0] == before.Explanation[0] {
		t.Error("explanation was not re-recorded in the new language")
	}
	if m.controller.IsPlaying() {
		t.Error("language switch should not start playback")
	}

	m, _ = press(t, m, "ctrl+l")
	if m.printer.Lang() != "en" {
		t.Errorf("lang = %q, want en", m.printer.Lang())
	}
}

func TestHelpOverlay(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m, _ = press(t, m, "enter", "?")

	if !m.showHelp {
		t.Fatal("? should open help")
	}
	if !testutil.ContainsLine(m.View(), "Play/pause") {
		t.Error("help should list player bindings")
	}
	m, _ = press(t, m, "right")
	if m.controller.Position() != 0 {
		t.Error("keys other than close should be ignored while help is open")
	}
	m, _ = press(t, m, "esc")
	if m.showHelp || m.screen != screenPlayer {
		t.Error("esc should close help and stay on the player")
	}
}

func TestPreloadedSession(t *testing.T) {
	s, err := lesson.Build(nil, lesson.Request{Kind: lesson.KindDivisors, N: 12, Multiples: 2})
	if err != nil {
		t.Fatal(err)
	}
	m, _ := newTestModel(t, Options{Session: s})

	if m.screen != screenPlayer {
		t.Error("a session should open the player")
	}
	if m.controller.IsPlaying() {
		t.Error("without Autoplay the controller stays paused")
	}
	if m.form.kind != lesson.KindDivisors || m.form.value(0) != "12" {
		t.Errorf("form should mirror the session, got %v %q", m.form.kind, m.form.value(0))
	}
}

func TestWatchPlayback(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m, _ = press(t, m, "enter")

	// Load renders step 0 and leaves Empty for Paused, then Play starts.
	seen := map[string]int{}
	for range 3 {
		switch m.WatchPlayback()().(type) {
		case StepChangedMsg:
			seen["step"]++
		case StateChangedMsg:
			seen["state"]++
		}
	}
	if seen["step"] != 1 || seen["state"] != 2 {
		t.Errorf("events = %v, want one step change and two state changes", seen)
	}
}

func TestWatchPlayback_Closed(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	_ = m.Close()

	if _, ok := m.WatchPlayback()().(PlaybackClosedMsg); !ok {
		t.Error("expected PlaybackClosedMsg after Close")
	}
}

func TestView_Player(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(Model)
	m, _ = press(t, m, "enter", " ")

	out := m.View()
	for _, want := range []string{"Prefix sum", "Step 1 of 5", "S[0] = 0 (initial value)"} {
		if !testutil.ContainsLine(out, want) {
			t.Errorf("player view missing %q:\n%s", want, testutil.StripANSI(out))
		}
	}
	if w := testutil.MeasureWidth(out); w > 100 {
		t.Errorf("view width = %d, exceeds 100", w)
	}
}

func TestView_Form(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	out := m.View()
	for _, want := range []string{"Algorithm Visualizer", "[Prefix sum]", "Values", "✓ Input is valid"} {
		if !testutil.ContainsLine(out, want) {
			t.Errorf("form view missing %q:\n%s", want, testutil.StripANSI(out))
		}
	}
}

func TestNextSpeed(t *testing.T) {
	tests := []struct {
		in   time.Duration
		dir  int
		want time.Duration
	}{
		{time.Second, -1, 800 * time.Millisecond},
		{time.Second, +1, 1500 * time.Millisecond},
		{900 * time.Millisecond, -1, 800 * time.Millisecond},
		{900 * time.Millisecond, +1, time.Second},
		{50 * time.Millisecond, -1, config.MinInterval},
		{10 * time.Second, +1, config.MaxInterval},
	}
	for _, tt := range tests {
		if got := nextSpeed(tt.in, tt.dir); got != tt.want {
			t.Errorf("nextSpeed(%v, %d) = %v, want %v", tt.in, tt.dir, got, tt.want)
		}
	}
}
