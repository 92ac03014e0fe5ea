package game

import "testing"

func TestHarness_ConfigOptionsApplyBeforeContent(t *testing.T) {
	// Content options listed first must still see the final config.
	tr := NewTestRun(
		WithGate(-6, 2),
		WithEmptyCorridor(),
		WithStartSize(9),
	)
	if tr.Session.Size() != 9 {
		t.Fatalf("start size option should apply, got %d", tr.Session.Size())
	}
	if len(tr.Session.GateList()) != 0 {
		t.Fatal("content options run in listed order: the empty-corridor option cleared the gate")
	}
}

func TestHarness_StartSizeBumpsCapacity(t *testing.T) {
	tr := NewTestRun(WithStartSize(80))
	if tr.Session.Squad().Capacity() < 80 {
		t.Fatalf("capacity should follow an oversized start, got %d", tr.Session.Squad().Capacity())
	}
}

func TestHarness_EmptyCorridorStaysEmpty(t *testing.T) {
	tr := NewTestRun(WithEmptyCorridor())
	tr.RunSeconds(5)
	if len(tr.Session.GateList()) != 0 || len(tr.Session.ObstacleList()) != 0 {
		t.Fatalf("generation must stay quiet: %d gates, %d obstacles",
			len(tr.Session.GateList()), len(tr.Session.ObstacleList()))
	}
}

func TestHarness_PlacedContent(t *testing.T) {
	tr := NewTestRun(
		WithEmptyCorridor(),
		WithGate(-15, 4),
		WithObstacle(2, -10, 8),
		WithPickup(-1, -12),
	)
	if len(tr.Session.GateList()) != 1 || tr.Session.GateList()[0].Displayed() != 4 {
		t.Fatal("placed gate missing")
	}
	if len(tr.Session.ObstacleList()) != 1 || tr.Session.ObstacleList()[0].MaxHP != 8 {
		t.Fatal("placed obstacle missing")
	}
	if len(tr.Session.PickupList()) != 1 {
		t.Fatal("placed pickup missing")
	}
}

func TestHarness_TalliesTrackEvents(t *testing.T) {
	tr := NewTestRun(WithSeed(42), slowFire(), WithEmptyCorridor(), WithGate(-6, 2))
	tr.RunTicks(300)
	if tr.GatesCrossed != 1 || tr.ScoreEvents == 0 {
		t.Fatalf("tallies should mirror the bus: crossed=%d scoreEvents=%d",
			tr.GatesCrossed, tr.ScoreEvents)
	}
}
