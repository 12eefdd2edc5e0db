package profiling

import (
	"testing"
	"time"
)

func TestTotalsAndReset(t *testing.T) {
	ResetFrame()
	Add("hud.Stacks", 2*time.Millisecond)
	Add("hud.Stacks", 1*time.Millisecond)
	Add("hud.Amounts", 500*time.Microsecond)
	Add("renderer.Clear", 4*time.Millisecond)

	if got := Snapshot()["hud.Stacks"]; got != 3*time.Millisecond {
		t.Errorf("accumulated total: got %v", got)
	}
	if got := SumWithPrefix("hud."); got != 3500*time.Microsecond {
		t.Errorf("prefix sum: got %v", got)
	}
	if got, want := TopN(2), "renderer.Clear:4ms, hud.Stacks:3ms"; got != want {
		t.Errorf("TopN: got %q want %q", got, want)
	}
	if got, want := TopN(10), "renderer.Clear:4ms, hud.Stacks:3ms, hud.Amounts:0.5ms"; got != want {
		t.Errorf("TopN past length: got %q want %q", got, want)
	}

	ResetFrame()
	if len(Snapshot()) != 0 {
		t.Errorf("reset should clear totals")
	}
	if TopN(3) != "" {
		t.Errorf("empty frame should format as empty string")
	}
}

func TestTrack(t *testing.T) {
	ResetFrame()
	stop := Track("hud.Draw")
	stop()
	if _, ok := Snapshot()["hud.Draw"]; !ok {
		t.Errorf("Track should record an entry")
	}
}
