package prefixsum

import (
	"fmt"

	"github.com/llehouerou/stepviz/internal/i18n"
)

// QueryDetails breaks a range query into the terms of S[r] - S[l-1].
// Invalid queries are reported through Valid and Message, never an error.
type QueryDetails struct {
	Valid           bool
	Left            int
	Right           int
	RightSum        int64
	LeftMinusOneSum int64
	RangeSum        int64
	Formula         string
	Message         string
}

// Query returns the details of a range query with English messages.
func (r *Result) Query(left, right int) QueryDetails {
	return r.QueryWith(nil, left, right)
}

// QueryWith returns the details of a range query, localized by p.
func (r *Result) QueryWith(p *i18n.Printer, left, right int) QueryDetails {
	q := QueryDetails{Left: left, Right: right}
	if err := r.checkRange(left, right); err != nil {
		q.Message = p.Sprintf("prefix.query.invalid", r.Len())
		return q
	}
	q.Valid = true
	q.RightSum = r.sums[right]
	q.LeftMinusOneSum = r.sums[left-1]
	q.RangeSum = q.RightSum - q.LeftMinusOneSum
	q.Formula = FormatFormula(left, right, q.RightSum, q.LeftMinusOneSum)
	return q
}

// FormatFormula renders "S[r] - S[l-1] = a - b = c".
func FormatFormula(left, right int, rightSum, leftMinusOne int64) string {
	return fmt.Sprintf("S[%d] - S[%d] = %d - %d = %d",
		right, left-1, rightSum, leftMinusOne, rightSum-leftMinusOne)
}
