package game

// Gate is a single arithmetic checkpoint on the corridor. Its state
// machine is active → collected → removed: active gates take
// projectile hits and can be crossed; collecting starts the exit
// animation timer; once the timer completes the manager evicts it.
type Gate struct {
	Z         float64 // longitudinal position; gates span the full corridor width
	Shootable bool

	original    int // scripted value, never zero
	shootDamage int // accumulated projectile damage
	collected   bool
	exitTimer   float64
}

// NewGate creates an active gate. value must be nonzero — the
// generator resamples zeros before a gate is ever exposed.
func NewGate(z float64, value int, shootable bool) *Gate {
	return &Gate{Z: z, original: value, Shootable: shootable}
}

// Displayed is the value shown on the gate and applied on crossing:
// the original moved away from zero by one step per shootBonusDivisor
// of accumulated damage. Shooting never reduces the magnitude — and,
// deliberately matching the original game, it moves negative gates
// further negative too.
func (g *Gate) Displayed() int {
	bonus := g.shootDamage / shootBonusDivisor
	if g.original < 0 {
		return g.original - bonus
	}
	return g.original + bonus
}

// HitByProjectile accumulates shoot damage. No-op when the gate is not
// shootable or already collected. The return value reports whether the
// displayed value changed sign, for presentation recolouring; under
// the away-from-zero rule this stays false for any nonzero original.
func (g *Gate) HitByProjectile(damage int) bool {
	if !g.Shootable || g.collected {
		return false
	}
	before := g.Displayed()
	g.shootDamage += damage
	after := g.Displayed()
	return (before < 0) != (after < 0)
}

// CrossingResult is the outcome of a squad crossing a gate.
// Resolved=false means the call was a no-op (already collected).
type CrossingResult struct {
	Resolved bool
	Defeat   bool
	Delta    int // signed size change applied (0 on defeat)
	NewSize  int
}

// ResolveCrossing marks the gate collected and applies its displayed
// value to the squad size. A result below 1 is a defeat: the size is
// forced to 0 and no delta is credited. Idempotent — the second call
// on a collected gate does nothing.
func (g *Gate) ResolveCrossing(sq *Squad) CrossingResult {
	if g.collected {
		return CrossingResult{}
	}
	g.collected = true

	delta := g.Displayed()
	newSize := sq.Size() + delta
	if newSize < 1 {
		sq.SetSize(0)
		return CrossingResult{Resolved: true, Defeat: true}
	}
	sq.SetSize(newSize)
	return CrossingResult{Resolved: true, Delta: delta, NewSize: newSize}
}

// Collected reports whether the squad has crossed this gate.
func (g *Gate) Collected() bool {
	return g.collected
}

// Tick advances the post-collection exit timer. The fade-and-rise
// itself is the presentation layer's job; the core only times it.
func (g *Gate) Tick(dt float64) {
	if g.collected {
		g.exitTimer += dt
	}
}

// ExitProgress is the exit animation progress in [0,1] once collected.
func (g *Gate) ExitProgress() float64 {
	return clamp01(g.exitTimer / gateExitDuration)
}

// RemovalReady reports that the exit animation has completed and the
// manager should stop tracking this gate.
func (g *Gate) RemovalReady() bool {
	return g.collected && g.exitTimer >= gateExitDuration
}
