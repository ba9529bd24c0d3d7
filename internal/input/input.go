// Package input parses and validates the integer lists typed by users.
package input

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"

	"github.com/llehouerou/stepviz/internal/i18n"
	"github.com/llehouerou/stepviz/internal/trace"
)

// Bounds accepted for list values and lengths.
const (
	MinValue      int64 = -1_000_000_000
	MaxValue      int64 = 1_000_000_000
	MaxLen              = 200
	MaxRandomSize       = 20
)

// ErrInvalid matches every validation error.
var ErrInvalid = errors.New("invalid input")

// Kind classifies a validation failure.
type Kind int

const (
	KindEmptyList Kind = iota
	KindEmptyElement
	KindNotInteger
	KindOutOfRange
	KindTooLong
)

// Error describes why a list was rejected. Position is 1-based and zero
// for errors about the whole list.
type Error struct {
	List     string
	Position int
	Value    string
	Kind     Kind
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindEmptyList:
		return fmt.Sprintf("list %s is empty", e.List)
	case KindEmptyElement:
		return fmt.Sprintf("list %s: element %d is empty", e.List, e.Position)
	case KindNotInteger:
		return fmt.Sprintf("list %s: element %d (%q) is not an integer", e.List, e.Position, e.Value)
	case KindOutOfRange:
		return fmt.Sprintf("list %s: element %d (%s) is outside [%d, %d]", e.List, e.Position, e.Value, MinValue, MaxValue)
	case KindTooLong:
		return fmt.Sprintf("list %s has more than %d elements", e.List, MaxLen)
	default:
		return fmt.Sprintf("list %s is invalid", e.List)
	}
}

// Is matches ErrInvalid, and trace.ErrEmptyInput for empty lists.
func (e *Error) Is(target error) bool {
	if target == ErrInvalid {
		return true
	}
	return e.Kind == KindEmptyList && target == trace.ErrEmptyInput
}

// Localize renders the error for display.
func (e *Error) Localize(p *i18n.Printer) string {
	switch e.Kind {
	case KindEmptyList:
		return p.Sprintf("input.empty.list", e.List)
	case KindEmptyElement:
		return p.Sprintf("input.empty.element", e.Position, e.List)
	case KindNotInteger:
		return p.Sprintf("input.not.integer", e.Position, e.List)
	case KindOutOfRange:
		return p.Sprintf("input.out.of.range", e.Position, e.Value, e.List, i18n.Num(MinValue), i18n.Num(MaxValue))
	case KindTooLong:
		return p.Sprintf("input.too.long", e.List, MaxLen)
	default:
		return e.Error()
	}
}

// Message returns a localized message for err, falling back to its text.
func Message(p *i18n.Printer, err error) string {
	var ierr *Error
	if errors.As(err, &ierr) {
		return ierr.Localize(p)
	}
	return err.Error()
}

// Parse reads a list of integers separated by commas or whitespace.
// A trailing comma is accepted; an empty element between commas is not.
func Parse(list, s string) ([]int64, error) {
	parts := strings.Split(s, ",")
	if n := len(parts); n > 1 && strings.TrimSpace(parts[n-1]) == "" {
		parts = parts[:n-1]
	}

	var values []int64
	position := 0
	for _, part := range parts {
		fields := strings.Fields(part)
		if len(fields) == 0 {
			if len(parts) == 1 {
				break
			}
			return nil, &Error{List: list, Position: position + 1, Kind: KindEmptyElement}
		}
		for _, field := range fields {
			position++
			v, err := parseValue(list, position, field)
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
	}
	if err := Validate(list, values); err != nil {
		return nil, err
	}
	return values, nil
}

func parseValue(list string, position int, field string) (int64, error) {
	digits := strings.TrimPrefix(field, "-")
	if digits == "" || strings.TrimLeft(digits, "0123456789") != "" {
		return 0, &Error{List: list, Position: position, Value: field, Kind: KindNotInteger}
	}
	v, err := strconv.ParseInt(field, 10, 64)
	if err != nil || v < MinValue || v > MaxValue {
		return 0, &Error{List: list, Position: position, Value: field, Kind: KindOutOfRange}
	}
	return v, nil
}

// Validate checks the length and range of an already parsed list.
func Validate(list string, values []int64) error {
	if len(values) == 0 {
		return &Error{List: list, Kind: KindEmptyList}
	}
	if len(values) > MaxLen {
		return &Error{List: list, Kind: KindTooLong}
	}
	for i, v := range values {
		if v < MinValue || v > MaxValue {
			return &Error{List: list, Position: i + 1, Value: strconv.FormatInt(v, 10), Kind: KindOutOfRange}
		}
	}
	return nil
}

// Random returns size values drawn uniformly from [lo, hi]. size is
// clamped to 1..MaxRandomSize and the bounds to the accepted range.
func Random(r *rand.Rand, size int, lo, hi int64) []int64 {
	size = min(max(size, 1), MaxRandomSize)
	lo = min(max(lo, MinValue), MaxValue)
	hi = min(max(hi, MinValue), MaxValue)
	if hi < lo {
		lo, hi = hi, lo
	}
	out := make([]int64, size)
	for i := range out {
		out[i] = lo + r.Int64N(hi-lo+1)
	}
	return out
}

// Sorted returns an ascending copy of values.
func Sorted(values []int64) []int64 {
	out := slices.Clone(values)
	slices.Sort(out)
	return out
}

// Format renders values as "1, 2, 3", the form Parse reads back.
func Format(values []int64) string {
	return i18n.List(values)
}
