// Package observ collects per-phase wall-clock timings for a compile.
package observ

import (
	"fmt"
	"strings"
	"time"
)

type phase struct {
	name string
	dur  time.Duration
	note string
}

// Timer tracks named compilation phases. Phases close in the order the
// caller stops them; the timer itself does no goroutine coordination.
type Timer struct {
	phases []phase
}

func NewTimer() *Timer { return &Timer{} }

// Phase starts a named phase and returns the function that stops it.
// The note is attached to the finished phase for display.
func (t *Timer) Phase(name string) func(note string) {
	start := time.Now()
	return func(note string) {
		t.phases = append(t.phases, phase{name: name, dur: time.Since(start), note: note})
	}
}

// Summary renders every finished phase plus a total, one line each.
func (t *Timer) Summary() string {
	rep := t.Report()
	var sb strings.Builder
	sb.WriteString("timings:\n")
	for _, p := range rep.Phases {
		fmt.Fprintf(&sb, "  %-20s %7.2f ms", p.Name, p.DurationMS)
		if p.Note != "" {
			sb.WriteString("  // " + p.Note)
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "  %-20s %7.2f ms\n", "total", rep.TotalMS)
	return sb.String()
}

// PhaseReport is one finished phase in serializable form.
type PhaseReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Note       string  `json:"note,omitempty"`
}

// Report lists every finished phase plus the summed duration.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseReport `json:"phases"`
}

func (t *Timer) Report() Report {
	if len(t.phases) == 0 {
		return Report{}
	}
	rep := Report{Phases: make([]PhaseReport, len(t.phases))}
	var total time.Duration
	for i, p := range t.phases {
		total += p.dur
		rep.Phases[i] = PhaseReport{
			Name:       p.name,
			DurationMS: millis(p.dur),
			Note:       p.note,
		}
	}
	rep.TotalMS = millis(total)
	return rep
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
