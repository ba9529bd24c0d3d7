// Package prefixsum traces the computation of a prefix-sum array and
// answers range-sum queries over it.
package prefixsum

import (
	"errors"
	"fmt"

	"github.com/llehouerou/stepviz/internal/i18n"
	"github.com/llehouerou/stepviz/internal/trace"
)

// Kind is the snapshot kind of prefix-sum traces.
const Kind = "prefix-sum"

// ErrInvalidRange is returned for queries outside 1 ≤ left ≤ right ≤ n.
var ErrInvalidRange = errors.New("invalid range")

// RangeError describes a rejected range query.
type RangeError struct {
	Left, Right, N int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid range [%d, %d]: need 1 <= left <= right <= %d", e.Left, e.Right, e.N)
}

func (e *RangeError) Unwrap() error {
	return ErrInvalidRange
}

// Snapshot is the state after one accumulation.
type Snapshot struct {
	// PrefixSum holds S[0..CurrentIndex].
	PrefixSum []int64
	// CurrentIndex is the prefix-sum index just written, 0 on initialize.
	CurrentIndex int
	// SourceIndex is the 0-based input index consumed, -1 on initialize.
	SourceIndex int
	Value       int64
	Previous    int64
}

// Kind implements trace.Snapshot.
func (Snapshot) Kind() string { return Kind }

// Tracer records prefix-sum steps. The zero value explains in English.
type Tracer struct {
	Printer *i18n.Printer
}

// Trace is shorthand for a zero Tracer.
func Trace(values []int64) (*trace.Trace, *Result, error) {
	return Tracer{}.Trace(values)
}

// Trace computes S with S[0] = 0 and S[i] = S[i-1] + values[i-1], emitting
// an initialize step then one accumulate step per value.
func (tr Tracer) Trace(values []int64) (*trace.Trace, *Result, error) {
	if len(values) == 0 {
		return nil, nil, fmt.Errorf("prefix sum: %w", trace.ErrEmptyInput)
	}
	p := tr.Printer
	res := Compute(values)

	rec := trace.NewRecorder(len(values) + 1)
	rec.Record(trace.ActionInitialize,
		Snapshot{PrefixSum: []int64{0}, SourceIndex: -1},
		p.Sprintf("prefix.start"),
		p.Sprintf("prefix.init"),
	)
	for i := 1; i <= len(values); i++ {
		prev, value, curr := res.sums[i-1], res.values[i-1], res.sums[i]
		sums := make([]int64, i+1)
		copy(sums, res.sums[:i+1])
		rec.Record(trace.ActionAccumulate,
			Snapshot{
				PrefixSum:    sums,
				CurrentIndex: i,
				SourceIndex:  i - 1,
				Value:        value,
				Previous:     prev,
			},
			p.Sprintf("prefix.add", i, i18n.Num(value)),
			p.Sprintf("prefix.formula", i, i-1, i18n.Num(prev), i18n.Num(value), i18n.Num(curr)),
		)
	}
	t, err := rec.Finish()
	if err != nil {
		return nil, nil, err
	}
	return t, res, nil
}

// Result is a computed prefix-sum array shared by the tracer and the
// range query view.
type Result struct {
	values []int64
	sums   []int64
}

// Compute builds the prefix sums of values without recording a trace.
func Compute(values []int64) *Result {
	vals := make([]int64, len(values))
	copy(vals, values)
	sums := make([]int64, len(values)+1)
	for i, v := range vals {
		sums[i+1] = sums[i] + v
	}
	return &Result{values: vals, sums: sums}
}

// Values returns a copy of the input array.
func (r *Result) Values() []int64 {
	out := make([]int64, len(r.values))
	copy(out, r.values)
	return out
}

// Sums returns a copy of S, of length Len()+1.
func (r *Result) Sums() []int64 {
	out := make([]int64, len(r.sums))
	copy(out, r.sums)
	return out
}

// Len returns n, the number of input values.
func (r *Result) Len() int {
	return len(r.values)
}

// RangeSum returns the sum of A[left..right], 1-indexed and inclusive,
// computed as S[right] - S[left-1].
func (r *Result) RangeSum(left, right int) (int64, error) {
	if err := r.checkRange(left, right); err != nil {
		return 0, err
	}
	return r.sums[right] - r.sums[left-1], nil
}

func (r *Result) checkRange(left, right int) error {
	n := len(r.values)
	if left < 1 || right < left || right > n {
		return &RangeError{Left: left, Right: right, N: n}
	}
	return nil
}
