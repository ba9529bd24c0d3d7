// Package divisors traces the search for the divisors of a number and
// lists its first multiples.
package divisors

import (
	"errors"
	"fmt"
	"slices"

	"github.com/llehouerou/stepviz/internal/i18n"
	"github.com/llehouerou/stepviz/internal/trace"
)

// Kind is the snapshot kind of divisor traces.
const Kind = "divisors"

// ErrNotPositive is returned for n < 1.
var ErrNotPositive = errors.New("number must be positive")

// MaxN bounds the traced number so the candidate scan stays short.
const MaxN = 1_000_000

// Snapshot is the search state after one step.
type Snapshot struct {
	N int64
	// Candidate is the number being tested, 0 outside the scan.
	Candidate int64
	// Divides reports whether Candidate divides N on check steps.
	Divides bool
	// Divisors found so far, ascending.
	Divisors []int64
	// Multiples listed so far.
	Multiples []int64
}

// Kind implements trace.Snapshot.
func (Snapshot) Kind() string { return Kind }

// Tracer records divisor search steps.
type Tracer struct {
	Printer *i18n.Printer
}

// Trace is shorthand for a zero Tracer.
func Trace(n int64, multiples int) (*trace.Trace, error) {
	return Tracer{}.Trace(n, multiples)
}

// Trace checks every candidate d in 1..floor(sqrt(n)), recording a check
// step per candidate and a divisor step for each hit, then lists up to
// multiples multiples of n.
func (tr Tracer) Trace(n int64, multiples int) (*trace.Trace, error) {
	if n < 1 {
		return nil, fmt.Errorf("divisors of %d: %w", n, ErrNotPositive)
	}
	if n > MaxN {
		return nil, fmt.Errorf("divisors of %d: exceeds %d", n, MaxN)
	}
	multiples = max(multiples, 0)
	p := tr.Printer
	root := Root(n)

	rec := trace.NewRecorder(int(root)*2 + multiples + 1)
	rec.Record(trace.ActionInitialize, Snapshot{N: n},
		p.Sprintf("divisors.start", i18n.Num(n)),
		p.Sprintf("divisors.range", i18n.Num(root)),
	)

	var found []int64
	for d := int64(1); d <= root; d++ {
		rem := n % d
		rec.Record(trace.ActionCheck,
			Snapshot{N: n, Candidate: d, Divides: rem == 0, Divisors: slices.Clone(found)},
			p.Sprintf("divisors.check", i18n.Num(d), i18n.Num(n), i18n.Num(rem)),
		)
		if rem != 0 {
			continue
		}
		q := n / d
		found = insertSorted(found, d)
		line := p.Sprintf("divisors.found.square", i18n.Num(d), i18n.Num(n))
		if q != d {
			found = insertSorted(found, q)
			line = p.Sprintf("divisors.found", i18n.Num(d), i18n.Num(q), i18n.Num(n))
		}
		rec.Record(trace.ActionDivisor,
			Snapshot{N: n, Candidate: d, Divides: true, Divisors: slices.Clone(found)},
			line,
		)
	}
	rec.Explain(p.Sprintf("divisors.result", i18n.Num(n), i18n.List(found)))

	var listed []int64
	for k := 1; k <= multiples; k++ {
		m := n * int64(k)
		listed = append(listed, m)
		rec.Record(trace.ActionMultiple,
			Snapshot{N: n, Divisors: slices.Clone(found), Multiples: slices.Clone(listed)},
			p.Sprintf("divisors.multiple", i18n.Num(n), k, i18n.Num(m)),
		)
	}
	return rec.Finish()
}

// Divisors returns the divisors of n in ascending order, or nil for n < 1.
func Divisors(n int64) []int64 {
	if n < 1 {
		return nil
	}
	var out []int64
	for d := int64(1); d*d <= n; d++ {
		if n%d != 0 {
			continue
		}
		out = insertSorted(out, d)
		if q := n / d; q != d {
			out = insertSorted(out, q)
		}
	}
	return out
}

// Multiples returns n, 2n, ..., kn.
func Multiples(n int64, k int) []int64 {
	out := make([]int64, 0, max(k, 0))
	for i := 1; i <= k; i++ {
		out = append(out, n*int64(i))
	}
	return out
}

func insertSorted(s []int64, v int64) []int64 {
	i, found := slices.BinarySearch(s, v)
	if found {
		return s
	}
	return slices.Insert(s, i, v)
}

// Root returns floor(sqrt(n)), the last candidate the tracer checks.
func Root(n int64) int64 {
	r := int64(0)
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}
