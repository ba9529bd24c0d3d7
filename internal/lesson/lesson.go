// Package lesson builds the trace for one visualization from its inputs.
// Both the terminal UI and the CLI go through Build so they share
// validation and defaults.
package lesson

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/llehouerou/stepviz/internal/config"
	"github.com/llehouerou/stepviz/internal/deck"
	"github.com/llehouerou/stepviz/internal/divisors"
	"github.com/llehouerou/stepviz/internal/i18n"
	"github.com/llehouerou/stepviz/internal/input"
	"github.com/llehouerou/stepviz/internal/prefixsum"
	"github.com/llehouerou/stepviz/internal/trace"
	"github.com/llehouerou/stepviz/internal/twopointer"
)

// Kind names a visualization.
type Kind string

const (
	KindPrefix   Kind = "prefix"
	KindMerge    Kind = "merge"
	KindDivisors Kind = "divisors"
	KindDeck     Kind = "deck"
)

// MaxMultiples bounds Request.Multiples.
const MaxMultiples = 20

// Kinds lists the visualizations in menu order.
var Kinds = []Kind{KindPrefix, KindMerge, KindDivisors, KindDeck}

// ErrUnknownKind is returned by ParseKind.
var ErrUnknownKind = errors.New("unknown visualization")

// Errors for divisor inputs outside the supported range.
var (
	ErrTooLarge  = fmt.Errorf("exceeds %d", divisors.MaxN)
	ErrMultiples = fmt.Errorf("must be between 0 and %d", MaxMultiples)
)

// ParseKind accepts a kind name, case-insensitively.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownKind, s)
}

// TitleKey returns the catalog key of the visualization name.
func (k Kind) TitleKey() string {
	switch k {
	case KindPrefix:
		return "screen.prefix"
	case KindMerge:
		return "screen.merge"
	case KindDivisors:
		return "screen.divisors"
	case KindDeck:
		return "screen.deck"
	default:
		return "screen.title"
	}
}

// Next returns the following kind in menu order, wrapping around.
func (k Kind) Next() Kind {
	for i, known := range Kinds {
		if k == known {
			return Kinds[(i+1)%len(Kinds)]
		}
	}
	return Kinds[0]
}

// Request holds the inputs of one visualization. Only the fields of Kind
// are read.
type Request struct {
	Kind Kind

	Values []int64 // prefix

	A, B   []int64 // merge
	Strict bool

	N         int64 // divisors
	Multiples int

	Durations []time.Duration // deck
}

// FromConfig returns the configured default inputs for kind.
func FromConfig(cfg *config.Config, kind Kind) Request {
	req := Request{Kind: kind}
	switch kind {
	case KindPrefix:
		req.Values = cfg.GetPrefixConfig().Values
	case KindMerge:
		m := cfg.GetMergeConfig()
		req.A, req.B, req.Strict = m.A, m.B, m.Strict
	case KindDivisors:
		d := cfg.GetDivisorsConfig()
		req.N, req.Multiples = d.N, d.Multiples
	case KindDeck:
		req.Durations = cfg.GetDeckDurations()
	}
	return req
}

// Session is a built visualization.
type Session struct {
	Request Request
	Trace   *trace.Trace

	// Prefix is set for prefix-sum sessions and answers range queries.
	Prefix *prefixsum.Result
}

// Validate checks the inputs of req without tracing.
func Validate(req Request) error {
	switch req.Kind {
	case KindPrefix:
		return input.Validate("A", req.Values)
	case KindMerge:
		if err := input.Validate("A", req.A); err != nil {
			return err
		}
		if err := input.Validate("B", req.B); err != nil {
			return err
		}
		if req.Strict {
			if pos := twopointer.UnsortedAt(req.A); pos >= 0 {
				return &twopointer.UnsortedError{List: twopointer.SourceA, Position: pos}
			}
			if pos := twopointer.UnsortedAt(req.B); pos >= 0 {
				return &twopointer.UnsortedError{List: twopointer.SourceB, Position: pos}
			}
		}
		return nil
	case KindDivisors:
		if req.N < 1 {
			return fmt.Errorf("n = %d: %w", req.N, divisors.ErrNotPositive)
		}
		if req.N > divisors.MaxN {
			return fmt.Errorf("n = %d: %w", req.N, ErrTooLarge)
		}
		if req.Multiples < 0 || req.Multiples > MaxMultiples {
			return fmt.Errorf("multiples = %d: %w", req.Multiples, ErrMultiples)
		}
		return nil
	case KindDeck:
		return nil
	default:
		return fmt.Errorf("%w %q", ErrUnknownKind, req.Kind)
	}
}

// Build validates req and records its trace with explanations from p.
func Build(p *i18n.Printer, req Request) (*Session, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}
	s := &Session{Request: req}
	var err error
	switch req.Kind {
	case KindPrefix:
		s.Trace, s.Prefix, err = prefixsum.Tracer{Printer: p}.Trace(req.Values)
	case KindMerge:
		s.Trace, err = twopointer.Tracer{Printer: p, RequireSorted: req.Strict}.Trace(req.A, req.B)
	case KindDivisors:
		s.Trace, err = divisors.Tracer{Printer: p}.Trace(req.N, req.Multiples)
	case KindDeck:
		s.Trace, err = deck.BuildWith(p, req.Durations)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Message localizes a Build or Validate error for display.
func Message(p *i18n.Printer, err error) string {
	var unsorted *twopointer.UnsortedError
	switch {
	case errors.As(err, &unsorted):
		return p.Sprintf("input.unsorted", string(unsorted.List), unsorted.Position+1)
	case errors.Is(err, divisors.ErrNotPositive), errors.Is(err, ErrTooLarge):
		return p.Sprintf("form.n.range", i18n.Num(divisors.MaxN))
	case errors.Is(err, ErrMultiples):
		return p.Sprintf("form.multiples.range", MaxMultiples)
	default:
		return input.Message(p, err)
	}
}
