package i18n

import (
	"strconv"
	"strings"

	"golang.org/x/text/message"
)

// Printer formats catalog messages for one locale. A nil Printer formats
// with the base locale, so tracers can leave it unset.
type Printer struct {
	code string
	p    *message.Printer
}

// NewPrinter returns a printer from the default bundle.
func NewPrinter(lang string) *Printer {
	return Default().Printer(lang)
}

// Sprintf formats the message registered under key.
func (p *Printer) Sprintf(key string, args ...any) string {
	if p == nil {
		return Default().Printer(BaseLocale).Sprintf(key, args...)
	}
	return p.p.Sprintf(key, args...)
}

// Lang returns the locale code of the printer.
func (p *Printer) Lang() string {
	if p == nil {
		return BaseLocale
	}
	return p.code
}

// Num formats an integer without locale grouping so explanations keep the
// exact values of the trace.
func Num(v int64) string {
	return strconv.FormatInt(v, 10)
}

// List formats integers as "1, 2, 3".
func List(values []int64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = Num(v)
	}
	return strings.Join(parts, ", ")
}
