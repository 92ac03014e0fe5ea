package game

import (
	"strings"
	"testing"
)

func TestReporter_RecordsEveryFrame(t *testing.T) {
	tr := NewTestRun(WithSeed(1))
	tr.RunTicks(250)
	if got := len(tr.Reporter.Frames()); got != 250 {
		t.Fatalf("one snapshot per tick expected, got %d", got)
	}
	if tr.Reporter.Frames()[0].Tick != 1 {
		t.Fatalf("first snapshot lands on tick 1, got %d", tr.Reporter.Frames()[0].Tick)
	}
}

func TestReporter_WindowSlicing(t *testing.T) {
	r := NewReporter(100)
	s, err := NewSession(func() Config { c := DefaultConfig(); c.Seed = 1; return c }())
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	r.Attach(s)
	for i := 0; i < 250; i++ {
		s.AdvanceFrame(fixedDelta)
	}

	windows := r.Windows()
	if len(windows) != 3 {
		t.Fatalf("250 frames over 100-tick windows give 3 windows, got %d", len(windows))
	}
	if windows[0].FromTick != 1 || windows[0].ToTick != 100 {
		t.Fatalf("first window spans ticks 1-100, got %d-%d", windows[0].FromTick, windows[0].ToTick)
	}
	if windows[2].ToTick != 250 {
		t.Fatalf("last partial window ends at tick 250, got %d", windows[2].ToTick)
	}
}

func TestReporter_WindowDistanceIsForwardTravel(t *testing.T) {
	tr := NewTestRun(WithSeed(1), WithEmptyCorridor())
	tr.RunTicks(600)
	w := tr.Reporter.Windows()[0]
	// 10s at 7 u/s of steer travel; the flock trails a little.
	if w.Distance < 40 || w.Distance > 75 {
		t.Fatalf("window distance %.1f out of the plausible travel range", w.Distance)
	}
}

func TestReporter_DefeatFlagged(t *testing.T) {
	tr := NewTestRun(WithSeed(42), slowFire(), WithEmptyCorridor(), WithGate(-6, -10))
	tr.RunTicks(300)
	if !tr.Session.GameOver() {
		t.Fatal("setup should defeat the squad")
	}
	windows := tr.Reporter.Windows()
	if len(windows) == 0 || !windows[len(windows)-1].Defeated {
		t.Fatal("the window covering the defeat must carry the flag")
	}
}

func TestReporter_SummaryRenders(t *testing.T) {
	tr := NewTestRun(WithSeed(2))
	tr.RunTicks(700)
	summary := tr.Reporter.Summary()
	if !strings.Contains(summary, "ticks") || !strings.Contains(summary, "size") {
		t.Fatalf("summary header missing:\n%s", summary)
	}
	if strings.Count(summary, "\n") < 2 {
		t.Fatalf("700 ticks should render at least header plus two windows:\n%s", summary)
	}
}

func TestReporter_ZeroWindowUsesDefault(t *testing.T) {
	r := NewReporter(0)
	if r.windowTicks != reportWindowTicks {
		t.Fatalf("window <= 0 should fall back to %d, got %d", reportWindowTicks, r.windowTicks)
	}
}
