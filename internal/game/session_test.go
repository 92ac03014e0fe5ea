package game

import (
	"math"
	"strings"
	"testing"
)

func TestSession_ConfigValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero start size", func(c *Config) { c.StartSize = 0 }},
		{"capacity below start", func(c *Config) { c.Capacity = 2; c.StartSize = 5 }},
		{"margin swallows corridor", func(c *Config) { c.SteerMargin = c.CorridorHalfWidth }},
		{"no advance", func(c *Config) { c.AdvanceRate = 0 }},
		{"gate range all positive", func(c *Config) { c.GateValueMin = 1 }},
		{"gate range all negative", func(c *Config) { c.GateValueMax = 0 }},
		{"zero fire interval", func(c *Config) { c.FireInterval = 0 }},
		{"zero fire range", func(c *Config) { c.FireRange = 0 }},
		{"dead projectile", func(c *Config) { c.ProjectileLife = 0 }},
		{"empty pool", func(c *Config) { c.PoolCapacity = 0 }},
	}
	for _, c := range cases {
		cfg := DefaultConfig()
		c.mutate(&cfg)
		if _, err := NewSession(cfg); err == nil {
			t.Fatalf("%s: expected a construction error", c.name)
		}
	}
	if _, err := NewSession(DefaultConfig()); err != nil {
		t.Fatalf("default config should construct: %v", err)
	}
}

func TestSession_FreshState(t *testing.T) {
	tr := NewTestRun()
	s := tr.Session
	if s.Size() != 5 || s.Score() != 0 || s.GameOver() || s.Tick() != 0 {
		t.Fatalf("fresh session: size=%d score=%d over=%v tick=%d",
			s.Size(), s.Score(), s.GameOver(), s.Tick())
	}
	if s.Level() != 1 {
		t.Fatalf("fresh session starts at level 1, got %d", s.Level())
	}
	if len(s.GateList()) != gateRunCount {
		t.Fatalf("fresh corridor carries one gate run, got %d gates", len(s.GateList()))
	}
}

func TestSession_FrameDeltaClamped(t *testing.T) {
	tr := NewTestRun(WithEmptyCorridor())
	s := tr.Session

	_, before := s.Center()
	s.AdvanceFrame(10) // stalled frame
	_, after := s.Center()
	if before-after > 2 {
		t.Fatalf("a 10s frame must clamp to %.1fs of travel, centroid jumped %.2f", maxFrameDelta, before-after)
	}
	if s.Tick() != 1 {
		t.Fatalf("clamped frame still counts as one tick, got %d", s.Tick())
	}

	s.AdvanceFrame(0)
	s.AdvanceFrame(-1)
	if s.Tick() != 1 {
		t.Fatalf("zero and negative dt are no-ops, tick=%d", s.Tick())
	}
}

func TestSession_SeedDeterminism(t *testing.T) {
	run := func() (int, int, float64, float64) {
		tr := NewTestRun(WithSeed(9))
		tr.RunTicks(600)
		cx, cz := tr.Session.Center()
		return tr.Session.Score(), tr.Session.Size(), cx, cz
	}
	s1, n1, x1, z1 := run()
	s2, n2, x2, z2 := run()
	if s1 != s2 || n1 != n2 || x1 != x2 || z1 != z2 {
		t.Fatalf("same seed must replay identically: (%d,%d,%.4f,%.4f) vs (%d,%d,%.4f,%.4f)",
			s1, n1, x1, z1, s2, n2, x2, z2)
	}
}

func TestSession_FrontierStaysAheadOfSquad(t *testing.T) {
	tr := NewTestRun(WithSeed(3))
	for i := 0; i < 1800; i++ {
		tr.RunTicks(1)
		if tr.Session.GameOver() {
			break
		}
		_, cz := tr.Session.Center()
		if tr.Session.Frontier() > cz-lookaheadWindow {
			t.Fatalf("tick %d: frontier %.1f inside the lookahead window of cz=%.1f",
				tr.Session.Tick(), tr.Session.Frontier(), cz)
		}
	}
}

func TestSession_ScoreNeverDecreases(t *testing.T) {
	tr := NewTestRun(WithSeed(5))
	prev := 0
	for i := 0; i < 1200; i++ {
		tr.RunTicks(1)
		if s := tr.Session.Score(); s < prev {
			t.Fatalf("score went backward: %d -> %d at tick %d", prev, s, tr.Session.Tick())
		} else {
			prev = s
		}
	}
}

func TestSession_LevelAdvancesWithDistance(t *testing.T) {
	tr := NewTestRun(WithSeed(4), WithEmptyCorridor())
	tr.RunSeconds(20) // ~140 forward units at the default advance rate
	if tr.Session.Level() < 2 {
		_, cz := tr.Session.Center()
		t.Fatalf("after 20s (cz=%.1f) the level should have stepped, got %d", cz, tr.Session.Level())
	}
}

func TestSession_ScoreDeltaEventsMatchScore(t *testing.T) {
	tr := NewTestRun(WithSeed(6))
	total := 0
	tr.Session.Bus.Subscribe(EventScoreDelta, func(e Event) { total += e.Amount })
	tr.RunTicks(1200)
	if total != tr.Session.Score() {
		t.Fatalf("summed score events %d should equal the score %d", total, tr.Session.Score())
	}
}

func TestSession_DebugReportSnapshot(t *testing.T) {
	tr := NewTestRun(WithSeed(2))
	tr.RunTicks(300)
	report := tr.Session.DebugReport(10)
	for _, want := range []string{"tick=", "squad:", "pool:", "corridor:", "gates ahead:"} {
		if !strings.Contains(report, want) {
			t.Fatalf("debug report missing %q:\n%s", want, report)
		}
	}
}

func TestSession_PoolBoundedUnderLoad(t *testing.T) {
	tr := NewTestRun(WithSeed(8), WithPoolCapacity(5), WithStartSize(12))
	for i := 0; i < 240; i++ {
		tr.RunTicks(1)
		if n := tr.Session.Pool().ActiveCount(); n > 5 {
			t.Fatalf("tick %d: %d live shots exceed the 5-slot pool", tr.Session.Tick(), n)
		}
	}
}

func TestSession_CenterFiniteThroughout(t *testing.T) {
	tr := NewTestRun(WithSeed(10))
	for i := 0; i < 600; i++ {
		tr.RunTicks(1)
		cx, cz := tr.Session.Center()
		if math.IsNaN(cx) || math.IsNaN(cz) || math.IsInf(cx, 0) || math.IsInf(cz, 0) {
			t.Fatalf("tick %d: centroid degenerated to (%.2f, %.2f)", tr.Session.Tick(), cx, cz)
		}
	}
}
