package app

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/stepviz/internal/config"
	"github.com/llehouerou/stepviz/internal/divisors"
	"github.com/llehouerou/stepviz/internal/input"
	"github.com/llehouerou/stepviz/internal/lesson"
	"github.com/llehouerou/stepviz/internal/ui/styles"
)

// field is one labelled text input of the form.
type field struct {
	label string // catalog key
	list  string // name used in validation messages
	input textinput.Model
}

// form edits the inputs of one visualization.
type form struct {
	kind   lesson.Kind
	fields []field
	focus  int
	strict bool
	cfg    *config.Config
}

func newField(label, list, value string) field {
	st := styles.T().S()
	ti := textinput.New()
	ti.Prompt = "> "
	ti.PromptStyle = st.Key
	ti.TextStyle = st.Base
	ti.CharLimit = 4096
	ti.SetValue(value)
	return field{label: label, list: list, input: ti}
}

// newForm fills the fields of kind with req's values.
func newForm(cfg *config.Config, req lesson.Request) form {
	f := form{kind: req.Kind, strict: req.Strict, cfg: cfg}
	switch req.Kind {
	case lesson.KindPrefix:
		f.fields = []field{newField("form.values", "A", input.Format(req.Values))}
	case lesson.KindMerge:
		f.fields = []field{
			newField("form.a", "A", input.Format(req.A)),
			newField("form.b", "B", input.Format(req.B)),
		}
	case lesson.KindDivisors:
		f.fields = []field{
			newField("form.n", "n", strconv.FormatInt(req.N, 10)),
			newField("form.multiples", "multiples", strconv.Itoa(req.Multiples)),
		}
	case lesson.KindDeck:
	}
	f.setFocus(0)
	return f
}

func (f *form) setFocus(i int) tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	f.focus = (i%len(f.fields) + len(f.fields)) % len(f.fields)
	for j := range f.fields {
		f.fields[j].input.Blur()
	}
	return f.fields[f.focus].input.Focus()
}

func (f *form) next() tea.Cmd { return f.setFocus(f.focus + 1) }
func (f *form) prev() tea.Cmd { return f.setFocus(f.focus - 1) }

// update forwards msg to the focused input.
func (f *form) update(msg tea.Msg) tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return cmd
}

func (f *form) value(i int) string {
	return f.fields[i].input.Value()
}

// request parses the fields. The error is the first invalid field.
func (f *form) request() (lesson.Request, error) {
	req := lesson.Request{Kind: f.kind, Strict: f.strict}
	var err error
	switch f.kind {
	case lesson.KindPrefix:
		req.Values, err = input.Parse(f.fields[0].list, f.value(0))
	case lesson.KindMerge:
		if req.A, err = input.Parse(f.fields[0].list, f.value(0)); err != nil {
			return req, err
		}
		req.B, err = input.Parse(f.fields[1].list, f.value(1))
	case lesson.KindDivisors:
		req.N, err = strconv.ParseInt(strings.TrimSpace(f.value(0)), 10, 64)
		if err != nil {
			return req, fmt.Errorf("n %q: %w", f.value(0), divisors.ErrNotPositive)
		}
		req.Multiples, err = strconv.Atoi(strings.TrimSpace(f.value(1)))
		if err != nil {
			return req, fmt.Errorf("multiples %q: %w", f.value(1), lesson.ErrMultiples)
		}
	case lesson.KindDeck:
		req.Durations = f.cfg.GetDeckDurations()
	}
	if err != nil {
		return req, err
	}
	return req, lesson.Validate(req)
}

// randomize replaces the list fields with random values. Merge lists are
// sorted so the merge stays meaningful.
func (f *form) randomize(r *rand.Rand) {
	switch f.kind {
	case lesson.KindPrefix:
		p := f.cfg.GetPrefixConfig()
		f.fields[0].input.SetValue(input.Format(input.Random(r, p.RandomSize, p.RandomMin, p.RandomMax)))
	case lesson.KindMerge:
		m := f.cfg.GetMergeConfig()
		for i := range f.fields {
			values := input.Sorted(input.Random(r, m.RandomSize, m.RandomMin, m.RandomMax))
			f.fields[i].input.SetValue(input.Format(values))
		}
	case lesson.KindDivisors:
		f.fields[0].input.SetValue(strconv.FormatInt(1+r.Int64N(100), 10))
	case lesson.KindDeck:
	}
}

// sortLists sorts every list field that currently parses.
func (f *form) sortLists() {
	if f.kind != lesson.KindPrefix && f.kind != lesson.KindMerge {
		return
	}
	for i := range f.fields {
		values, err := input.Parse(f.fields[i].list, f.value(i))
		if err != nil {
			continue
		}
		f.fields[i].input.SetValue(input.Format(input.Sorted(values)))
	}
}
