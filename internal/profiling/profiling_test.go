package profiling

import (
	"strings"
	"testing"
	"time"
)

func TestTrackAccumulates(t *testing.T) {
	Reset()
	for i := 0; i < 3; i++ {
		Track("a")()
	}
	stop := Track("b")
	time.Sleep(2 * time.Millisecond)
	stop()

	ss := Snapshot()
	if ss["a"].Calls != 3 {
		t.Fatalf("a calls: got %d, want 3", ss["a"].Calls)
	}
	if ss["b"].Total < 2*time.Millisecond {
		t.Fatalf("b total: got %v, want >= 2ms", ss["b"].Total)
	}

	top := TopN(1)
	if !strings.HasPrefix(top, "b:") || !strings.HasSuffix(top, "(1)") {
		t.Fatalf("TopN(1): got %q", top)
	}
	if got := strings.Count(TopN(10), ","); got != 1 {
		t.Fatalf("TopN(10) entries: got %d separators, want 1", got)
	}

	Reset()
	if len(Snapshot()) != 0 {
		t.Fatal("Reset left entries behind")
	}
}
