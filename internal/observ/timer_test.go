package observ

import (
	"strings"
	"testing"
)

func TestTimerPhases(t *testing.T) {
	tm := NewTimer()
	stop := tm.Phase("parse")
	stop("3 statements")
	stop = tm.Phase("emit")
	stop("")

	rep := tm.Report()
	if len(rep.Phases) != 2 {
		t.Fatalf("got %d phases, want 2", len(rep.Phases))
	}
	if rep.Phases[0].Name != "parse" || rep.Phases[0].Note != "3 statements" {
		t.Errorf("first phase = %+v", rep.Phases[0])
	}
	if rep.Phases[1].Note != "" {
		t.Errorf("empty note should stay empty, got %q", rep.Phases[1].Note)
	}

	sum := tm.Summary()
	if !strings.Contains(sum, "parse") || !strings.Contains(sum, "total") {
		t.Errorf("summary missing lines:\n%s", sum)
	}
	if !strings.Contains(sum, "// 3 statements") {
		t.Errorf("summary missing note:\n%s", sum)
	}
}

func TestTimerEmptyReport(t *testing.T) {
	rep := NewTimer().Report()
	if len(rep.Phases) != 0 || rep.TotalMS != 0 {
		t.Errorf("empty timer should report nothing: %+v", rep)
	}
}
