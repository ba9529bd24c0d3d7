package twopointer

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/stepviz/internal/i18n"
	"github.com/llehouerou/stepviz/internal/trace"
)

func actions(t *trace.Trace) []trace.Action {
	out := make([]trace.Action, 0, t.Len())
	for _, s := range t.Steps() {
		out = append(out, s.Action)
	}
	return out
}

func TestTrace_EmptyInput(t *testing.T) {
	tests := []struct {
		name string
		a, b []int64
		list string
	}{
		{"empty A", nil, []int64{1}, "list A"},
		{"empty B", []int64{1}, []int64{}, "list B"},
		{"both empty", nil, nil, "list A"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := Trace(tt.a, tt.b)
			require.ErrorIs(t, err, trace.ErrEmptyInput)
			assert.Contains(t, err.Error(), tt.list)
			assert.Nil(t, tr)
		})
	}
}

func TestTrace_Scenario(t *testing.T) {
	tr, err := Trace([]int64{1, 2, 3}, []int64{2, 4})
	require.NoError(t, err)

	assert.Equal(t, []int64{1, 2, 2, 3, 4}, Output(tr))
	assert.Equal(t, Kind, tr.Kind())
	assert.Equal(t, []trace.Action{
		trace.ActionInitialize,
		trace.ActionCompare, trace.ActionSelect, // 1 from A
		trace.ActionCompare, trace.ActionSelect, // tie 2 vs 2 goes to B
		trace.ActionCompare, trace.ActionSelect, // 2 from A
		trace.ActionCompare, trace.ActionSelect, // 3 from A
		trace.ActionRemainingStart, trace.ActionRemainingEnd,
	}, actions(tr))
}

func TestTrace_TieSelectsB(t *testing.T) {
	tr, err := Trace([]int64{5}, []int64{5})
	require.NoError(t, err)

	cmp, _ := tr.Step(1)
	assert.Equal(t, "Since 5 <= 5, we'll select from B", cmp.Explanation[2])

	sel, _ := tr.Step(2)
	s := sel.Snapshot.(Snapshot)
	assert.Equal(t, SourceB, s.From)
	assert.Equal(t, 0, s.PrevIndex)
	assert.Equal(t, 1, s.PointerB)
	assert.Equal(t, 0, s.PointerA)
	assert.Equal(t, int64(5), s.Selected)
	assert.Equal(t, []string{"Selected B[0] = 5", "Appended 5 to C", "Advanced B pointer from 0 to 1"}, sel.Explanation)
}

func TestTrace_InitializeStep(t *testing.T) {
	tr, err := Trace([]int64{1}, []int64{2})
	require.NoError(t, err)

	first := tr.First()
	s := first.Snapshot.(Snapshot)
	assert.Empty(t, s.Output)
	assert.Equal(t, 0, s.PointerA)
	assert.Equal(t, 0, s.PointerB)
	assert.Equal(t, SourceNone, s.From)
	assert.Len(t, first.Explanation, 3)

	a, okA, b, okB := s.Current()
	assert.True(t, okA)
	assert.True(t, okB)
	assert.Equal(t, int64(1), a)
	assert.Equal(t, int64(2), b)
}

func TestTrace_RemainingSteps(t *testing.T) {
	tr, err := Trace([]int64{1}, []int64{2, 3, 4})
	require.NoError(t, err)

	start, _ := tr.Step(tr.Len() - 2)
	assert.Equal(t, trace.ActionRemainingStart, start.Action)
	assert.Equal(t, []string{
		"Array A is exhausted",
		"3 elements remaining in B",
		"We'll append all remaining elements from B to C",
	}, start.Explanation)

	end := tr.Last()
	s := end.Snapshot.(Snapshot)
	assert.Equal(t, trace.ActionRemainingEnd, end.Action)
	assert.Equal(t, SourceB, s.From)
	assert.Equal(t, []int{1, 2, 3}, s.RemainingIndices)
	assert.Equal(t, 3, s.PointerB)
	assert.Equal(t, "Added 3 elements from B: 2, 3, 4", end.Explanation[0])
	assert.Equal(t, "Merge complete", end.Explanation[2])

	_, okA, _, okB := s.Current()
	assert.False(t, okA)
	assert.False(t, okB)
}

func TestTrace_MergesSortedInputs(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 8))
	for range 100 {
		a := randomSorted(r, 1+r.IntN(15))
		b := randomSorted(r, 1+r.IntN(15))

		tr, err := Tracer{RequireSorted: true}.Trace(a, b)
		require.NoError(t, err)

		got := Output(tr)
		want := slices.Concat(a, b)
		slices.Sort(want)
		assert.Equal(t, want, got)
		assert.True(t, slices.IsSorted(got))

		var compares, selects, tail int
		for _, act := range actions(tr) {
			switch act {
			case trace.ActionCompare:
				compares++
			case trace.ActionSelect:
				selects++
			case trace.ActionRemainingStart, trace.ActionRemainingEnd:
				tail++
			}
		}
		assert.Equal(t, compares, selects)
		assert.Equal(t, 2, tail)
		assert.Equal(t, 1+compares+selects+tail, tr.Len())
	}
}

func TestTrace_UnsortedLenient(t *testing.T) {
	tr, err := Trace([]int64{3, 1}, []int64{2})
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3, 1}, Output(tr))
}

func TestTrace_UnsortedStrict(t *testing.T) {
	_, err := Tracer{RequireSorted: true}.Trace([]int64{1, 2}, []int64{4, 3, 5})
	require.ErrorIs(t, err, ErrUnsorted)

	var uerr *UnsortedError
	require.True(t, errors.As(err, &uerr))
	assert.Equal(t, SourceB, uerr.List)
	assert.Equal(t, 1, uerr.Position)
}

func TestTrace_InputsNotAliased(t *testing.T) {
	a := []int64{1, 3}
	b := []int64{2}
	tr, err := Trace(a, b)
	require.NoError(t, err)

	a[0] = 100
	s := tr.First().Snapshot.(Snapshot)
	assert.Equal(t, int64(1), s.A[0])
}

func TestTrace_Vietnamese(t *testing.T) {
	tr, err := Tracer{Printer: i18n.NewPrinter("vi")}.Trace([]int64{1}, []int64{2})
	require.NoError(t, err)
	assert.NotEqual(t, "Starting the merge process", tr.First().Explanation[0])
}

func TestUnsortedAt(t *testing.T) {
	assert.Equal(t, -1, UnsortedAt(nil))
	assert.Equal(t, -1, UnsortedAt([]int64{1, 1, 2}))
	assert.Equal(t, 2, UnsortedAt([]int64{1, 5, 4}))
}

func randomSorted(r *rand.Rand, n int) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = r.Int64N(41) - 20
	}
	slices.Sort(out)
	return out
}
