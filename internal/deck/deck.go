// Package deck builds the number theory slideshow as a trace of slides
// whose dwell time is carried by each step.
package deck

import (
	"fmt"
	"time"

	"github.com/llehouerou/stepviz/internal/i18n"
	"github.com/llehouerou/stepviz/internal/trace"
)

// Kind is the snapshot kind of slide decks.
const Kind = "deck"

// Slide names one slide of the deck.
type Slide string

const (
	SlideIntro      Slide = "intro"
	SlideDefinition Slide = "definition"
	SlideNumberLine Slide = "numberline"
	SlideDivisors   Slide = "divisors"
	SlideDuality    Slide = "duality"
)

// Slides lists the deck in presentation order.
var Slides = []Slide{SlideIntro, SlideDefinition, SlideNumberLine, SlideDivisors, SlideDuality}

// DefaultDurations are the per-slide dwell times.
var DefaultDurations = []time.Duration{
	8 * time.Second,
	10 * time.Second,
	10 * time.Second,
	12 * time.Second,
	12 * time.Second,
}

// Snapshot is one slide on screen.
type Snapshot struct {
	Slide    Slide
	Number   int
	Total    int
	Title    string
	Body     string
	Duration time.Duration
}

// Kind implements trace.Snapshot.
func (Snapshot) Kind() string { return Kind }

// Build returns the deck with English text. Missing or non-positive
// durations fall back to DefaultDurations.
func Build(durations []time.Duration) (*trace.Trace, error) {
	return BuildWith(nil, durations)
}

// BuildWith returns the deck localized by p.
func BuildWith(p *i18n.Printer, durations []time.Duration) (*trace.Trace, error) {
	if len(durations) > len(Slides) {
		return nil, fmt.Errorf("deck has %d slides, got %d durations", len(Slides), len(durations))
	}
	rec := trace.NewRecorder(len(Slides))
	for i, slide := range Slides {
		d := DefaultDurations[i]
		if i < len(durations) && durations[i] > 0 {
			d = durations[i]
		}
		title := p.Sprintf("deck." + string(slide) + ".title")
		body := p.Sprintf("deck." + string(slide) + ".body")
		action := trace.ActionSlide
		if i == 0 {
			action = trace.ActionInitialize
		}
		rec.RecordHold(action, Snapshot{
			Slide:    slide,
			Number:   i + 1,
			Total:    len(Slides),
			Title:    title,
			Body:     body,
			Duration: d,
		}, d, title, body)
	}
	return rec.Finish()
}

// Elapsed returns the time spent on the slides before position.
func Elapsed(t *trace.Trace, position int) time.Duration {
	return t.TotalHold(position, 0)
}

// Total returns the running time of the whole deck.
func Total(t *trace.Trace) time.Duration {
	return t.TotalHold(t.Len(), 0)
}

// Progress returns Elapsed over Total, in [0, 1].
func Progress(t *trace.Trace, position int) float64 {
	total := Total(t)
	if total <= 0 {
		return 0
	}
	return float64(Elapsed(t, position)) / float64(total)
}

// FormatClock renders d as mm:ss.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
