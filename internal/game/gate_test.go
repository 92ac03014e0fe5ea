package game

import "testing"

func TestGate_DisplayedStartsAtOriginal(t *testing.T) {
	g := NewGate(-10, 3, true)
	if g.Displayed() != 3 {
		t.Fatalf("unshot gate displays its original value, got %d", g.Displayed())
	}
}

func TestGate_ShootingAmplifiesPositive(t *testing.T) {
	g := NewGate(-10, 2, true)
	for i := 0; i < 30; i++ {
		g.HitByProjectile(1)
	}
	if g.Displayed() != 5 {
		t.Fatalf("30 damage on a +2 gate steps it to +5, got %+d", g.Displayed())
	}
}

func TestGate_ShootingPushesNegativeFurtherNegative(t *testing.T) {
	g := NewGate(-10, -2, true)
	for i := 0; i < 30; i++ {
		g.HitByProjectile(1)
	}
	if g.Displayed() != -5 {
		t.Fatalf("30 damage on a -2 gate steps it to -5, got %+d", g.Displayed())
	}
}

func TestGate_DamageBelowDivisorChangesNothing(t *testing.T) {
	g := NewGate(-10, 4, true)
	for i := 0; i < shootBonusDivisor-1; i++ {
		g.HitByProjectile(1)
	}
	if g.Displayed() != 4 {
		t.Fatalf("%d damage is below one step, displayed should stay 4, got %d", shootBonusDivisor-1, g.Displayed())
	}
}

func TestGate_SignNeverFlips(t *testing.T) {
	for _, original := range []int{-7, -1, 1, 7} {
		g := NewGate(-10, original, true)
		for i := 0; i < 100; i++ {
			if g.HitByProjectile(1) {
				t.Fatalf("gate %+d reported a sign flip after %d damage", original, i+1)
			}
		}
		before := g.Displayed() < 0
		after := original < 0
		if before != after {
			t.Fatalf("gate %+d changed sign to %+d", original, g.Displayed())
		}
	}
}

func TestGate_MagnitudeNeverShrinks(t *testing.T) {
	g := NewGate(-10, -3, true)
	prev := 3
	for i := 0; i < 50; i++ {
		g.HitByProjectile(1)
		mag := g.Displayed()
		if mag < 0 {
			mag = -mag
		}
		if mag < prev {
			t.Fatalf("displayed magnitude shrank from %d to %d at hit %d", prev, mag, i+1)
		}
		prev = mag
	}
}

func TestGate_UnshootableIgnoresHits(t *testing.T) {
	g := NewGate(-10, 3, false)
	g.HitByProjectile(100)
	if g.Displayed() != 3 {
		t.Fatalf("unshootable gate must ignore damage, got %d", g.Displayed())
	}
}

func TestGate_CrossingGrowsSquad(t *testing.T) {
	sq := makeSquad(5)
	g := NewGate(0, 3, true)
	res := g.ResolveCrossing(sq)
	if !res.Resolved || res.Defeat {
		t.Fatalf("crossing a +3 gate from size 5 should resolve cleanly: %+v", res)
	}
	if res.Delta != 3 || res.NewSize != 8 || sq.Size() != 8 {
		t.Fatalf("5 + 3 = 8: delta=%d newSize=%d actual=%d", res.Delta, res.NewSize, sq.Size())
	}
}

func TestGate_CrossingShrinksSquad(t *testing.T) {
	sq := makeSquad(5)
	g := NewGate(0, -3, true)
	res := g.ResolveCrossing(sq)
	if res.Defeat || res.Delta != -3 || res.NewSize != 2 || sq.Size() != 2 {
		t.Fatalf("5 - 3 = 2: %+v, actual size %d", res, sq.Size())
	}
}

func TestGate_CrossingBelowOneIsDefeat(t *testing.T) {
	sq := makeSquad(5)
	g := NewGate(0, -5, true)
	res := g.ResolveCrossing(sq)
	if !res.Resolved || !res.Defeat {
		t.Fatalf("5 - 5 < 1 should defeat: %+v", res)
	}
	if res.Delta != 0 || sq.Size() != 0 {
		t.Fatalf("defeat credits no delta and empties the squad: delta=%d size=%d", res.Delta, sq.Size())
	}
}

func TestGate_CrossingExactlyOneSurvives(t *testing.T) {
	sq := makeSquad(5)
	g := NewGate(0, -4, true)
	res := g.ResolveCrossing(sq)
	if res.Defeat || res.NewSize != 1 {
		t.Fatalf("5 - 4 = 1 survives on the boundary: %+v", res)
	}
}

func TestGate_CrossingIsIdempotent(t *testing.T) {
	sq := makeSquad(5)
	g := NewGate(0, 3, true)
	g.ResolveCrossing(sq)
	res := g.ResolveCrossing(sq)
	if res.Resolved {
		t.Fatalf("second crossing of a collected gate must be a no-op: %+v", res)
	}
	if sq.Size() != 8 {
		t.Fatalf("size should be applied once, got %d", sq.Size())
	}
}

func TestGate_CollectedGateIgnoresHits(t *testing.T) {
	sq := makeSquad(5)
	g := NewGate(0, 3, true)
	g.ResolveCrossing(sq)
	g.HitByProjectile(100)
	if g.Displayed() != 3 {
		t.Fatalf("collected gate must ignore damage, got %d", g.Displayed())
	}
}

func TestGate_ExitTimerAndRemoval(t *testing.T) {
	sq := makeSquad(5)
	g := NewGate(0, 2, true)

	g.Tick(10)
	if g.ExitProgress() != 0 {
		t.Fatal("exit timer must not run before collection")
	}

	g.ResolveCrossing(sq)
	g.Tick(gateExitDuration / 2)
	if p := g.ExitProgress(); p < 0.49 || p > 0.51 {
		t.Fatalf("half the exit duration should give progress ~0.5, got %.2f", p)
	}
	if g.RemovalReady() {
		t.Fatal("gate mid-animation must not be removal ready")
	}
	g.Tick(gateExitDuration)
	if !g.RemovalReady() || g.ExitProgress() != 1 {
		t.Fatalf("animation complete: removalReady=%v progress=%.2f", g.RemovalReady(), g.ExitProgress())
	}
}
