// Package twopointer traces the two-pointer merge of two sequences.
package twopointer

import (
	"errors"
	"fmt"

	"github.com/llehouerou/stepviz/internal/i18n"
	"github.com/llehouerou/stepviz/internal/trace"
)

// Kind is the snapshot kind of merge traces.
const Kind = "merge"

// Source identifies one of the two input lists.
type Source string

const (
	SourceNone Source = ""
	SourceA    Source = "A"
	SourceB    Source = "B"
)

// ErrUnsorted is returned by a strict tracer when an input is not in
// ascending order.
var ErrUnsorted = errors.New("input not sorted")

// UnsortedError names the list and the first position that breaks the
// ascending order.
type UnsortedError struct {
	List     Source
	Position int
}

func (e *UnsortedError) Error() string {
	return fmt.Sprintf("list %s is not sorted at position %d", e.List, e.Position)
}

func (e *UnsortedError) Unwrap() error {
	return ErrUnsorted
}

// Snapshot is the merge state after one step.
type Snapshot struct {
	// A and B are shared by every step of a trace and must not be modified.
	A, B   []int64
	Output []int64

	// PointerA and PointerB index the next unconsumed element of each list.
	PointerA int
	PointerB int

	// From is the list that supplied the latest output (select, remaining).
	From Source
	// PrevIndex is the index in From before the pointer moved, -1 if none.
	PrevIndex int
	// Selected is the value appended by a select step.
	Selected int64
	// RemainingIndices are the output positions filled by a bulk append.
	RemainingIndices []int
}

// Kind implements trace.Snapshot.
func (Snapshot) Kind() string { return Kind }

// Current returns the values under the pointers, with ok false for an
// exhausted list.
func (s Snapshot) Current() (a int64, okA bool, b int64, okB bool) {
	if s.PointerA < len(s.A) {
		a, okA = s.A[s.PointerA], true
	}
	if s.PointerB < len(s.B) {
		b, okB = s.B[s.PointerB], true
	}
	return a, okA, b, okB
}

// Tracer records merge steps.
type Tracer struct {
	Printer *i18n.Printer

	// RequireSorted rejects inputs that are not ascending. When false the
	// merge runs anyway and the output order is only locally correct.
	RequireSorted bool
}

// Trace is shorthand for a zero Tracer.
func Trace(a, b []int64) (*trace.Trace, error) {
	return Tracer{}.Trace(a, b)
}

// Trace merges a and b with two pointers. Ties select from B.
func (tr Tracer) Trace(a, b []int64) (*trace.Trace, error) {
	if len(a) == 0 {
		return nil, fmt.Errorf("list %s: %w", SourceA, trace.ErrEmptyInput)
	}
	if len(b) == 0 {
		return nil, fmt.Errorf("list %s: %w", SourceB, trace.ErrEmptyInput)
	}
	if tr.RequireSorted {
		if pos := UnsortedAt(a); pos >= 0 {
			return nil, &UnsortedError{List: SourceA, Position: pos}
		}
		if pos := UnsortedAt(b); pos >= 0 {
			return nil, &UnsortedError{List: SourceB, Position: pos}
		}
	}

	m := merger{
		p:   tr.Printer,
		a:   clone(a),
		b:   clone(b),
		out: make([]int64, 0, len(a)+len(b)),
		rec: trace.NewRecorder(2*(len(a)+len(b)) + 3),
	}
	m.run()
	return m.rec.Finish()
}

type merger struct {
	p    *i18n.Printer
	a, b []int64
	i, j int
	out  []int64
	rec  *trace.Recorder
}

func (m *merger) snap() Snapshot {
	return Snapshot{
		A:         m.a,
		B:         m.b,
		Output:    clone(m.out),
		PointerA:  m.i,
		PointerB:  m.j,
		PrevIndex: -1,
	}
}

func (m *merger) run() {
	p := m.p
	m.rec.Record(trace.ActionInitialize, m.snap(),
		p.Sprintf("merge.start"),
		p.Sprintf("merge.pointers"),
		p.Sprintf("merge.empty"),
	)

	for m.i < len(m.a) && m.j < len(m.b) {
		va, vb := m.a[m.i], m.b[m.j]
		pick := p.Sprintf("merge.pick.b", i18n.Num(vb), i18n.Num(va))
		if va < vb {
			pick = p.Sprintf("merge.pick.a", i18n.Num(va), i18n.Num(vb))
		}
		m.rec.Record(trace.ActionCompare, m.snap(),
			p.Sprintf("merge.comparing", m.i, m.j),
			p.Sprintf("merge.values", m.i, i18n.Num(va), m.j, i18n.Num(vb)),
			pick,
		)

		if va < vb {
			m.selectFrom(SourceA, &m.i, m.a)
		} else {
			m.selectFrom(SourceB, &m.j, m.b)
		}
	}

	if m.i < len(m.a) {
		m.appendRest(SourceA, SourceB, &m.i, m.a)
	}
	if m.j < len(m.b) {
		m.appendRest(SourceB, SourceA, &m.j, m.b)
	}
}

func (m *merger) selectFrom(src Source, ptr *int, list []int64) {
	prev := *ptr
	v := list[prev]
	m.out = append(m.out, v)
	*ptr = prev + 1

	s := m.snap()
	s.From = src
	s.PrevIndex = prev
	s.Selected = v
	m.rec.Record(trace.ActionSelect, s,
		m.p.Sprintf("merge.selected", string(src), prev, i18n.Num(v)),
		m.p.Sprintf("merge.appended", i18n.Num(v)),
		m.p.Sprintf("merge.advanced", string(src), prev, *ptr),
	)
}

func (m *merger) appendRest(src, exhausted Source, ptr *int, list []int64) {
	p := m.p
	start := *ptr
	rest := list[start:]

	s := m.snap()
	s.From = src
	s.PrevIndex = start
	m.rec.Record(trace.ActionRemainingStart, s,
		p.Sprintf("merge.exhausted", string(exhausted)),
		p.Sprintf("merge.remaining", len(rest), string(src)),
		p.Sprintf("merge.append.rest", string(src)),
	)

	base := len(m.out)
	m.out = append(m.out, rest...)
	*ptr = len(list)
	indices := make([]int, len(rest))
	for k := range indices {
		indices[k] = base + k
	}

	s = m.snap()
	s.From = src
	s.PrevIndex = start
	s.RemainingIndices = indices
	m.rec.Record(trace.ActionRemainingEnd, s,
		p.Sprintf("merge.added", len(rest), string(src), i18n.List(rest)),
		p.Sprintf("merge.merged"),
		p.Sprintf("merge.complete"),
	)
}

// Output returns the merged sequence held by the final step of t.
func Output(t *trace.Trace) []int64 {
	if t.Len() == 0 {
		return nil
	}
	s, ok := t.Last().Snapshot.(Snapshot)
	if !ok {
		return nil
	}
	return clone(s.Output)
}

// UnsortedAt returns the first index i with values[i] < values[i-1], or -1
// when values is ascending.
func UnsortedAt(values []int64) int {
	for i := 1; i < len(values); i++ {
		if values[i] < values[i-1] {
			return i
		}
	}
	return -1
}

func clone(s []int64) []int64 {
	out := make([]int64, len(s))
	copy(out, s)
	return out
}
