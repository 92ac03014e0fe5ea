package game

import "math/rand"

// GateHit pairs a projectile with the gate it struck this tick. The
// caller turns these into deactivation plus effects.
type GateHit struct {
	Gate       *Gate
	Projectile *Projectile
}

// GateManager owns every live gate: creation along the corridor,
// collision sweeps against the squad and against projectiles, and
// eviction once the exit animation completes.
type GateManager struct {
	gates   []*Gate
	rng     *rand.Rand
	spawned int // gates created so far, drives the negative-value ramp
	hits    []GateHit
}

// NewGateManager creates an empty manager sharing the session RNG.
func NewGateManager(rng *rand.Rand) *GateManager {
	return &GateManager{rng: rng}
}

// Gates returns the live gate list for rendering and collision. Order
// is creation order, front of the corridor first.
func (gm *GateManager) Gates() []*Gate {
	return gm.gates
}

// SpawnGates creates a run of count gates starting at start and spaced
// spacing apart down the corridor. Early gates are biased positive so
// a fresh squad builds up before the corridor turns hostile: the first
// few are forced positive, after which the chance of a negative value
// grows linearly with the gate's global index, capped at 50%. Zero
// draws are resampled — a zero gate would be a no-op crossing and is
// an authoring bug.
func (gm *GateManager) SpawnGates(start float64, count int, spacing float64, minVal, maxVal int) {
	for i := 0; i < count; i++ {
		z := start - float64(i)*spacing
		gm.gates = append(gm.gates, NewGate(z, gm.rollValue(minVal, maxVal), true))
		gm.spawned++
	}
}

// rollValue draws a nonzero gate value under the current ramp.
func (gm *GateManager) rollValue(minVal, maxVal int) int {
	negProb := 0.0
	if gm.spawned >= gateForcedPositive {
		negProb = float64(gm.spawned-gateForcedPositive+1) * gateNegProbStep
		if negProb > gateNegProbCap {
			negProb = gateNegProbCap
		}
	}
	if gm.rng.Float64() < negProb {
		// minVal..-1
		return minVal + gm.rng.Intn(-minVal)
	}
	// 1..maxVal
	return 1 + gm.rng.Intn(maxVal)
}

// CollideWithSquad tests every active, uncollected gate against the
// squad centre and resolves at most the first match. One crossing per
// tick is all that can legitimately happen — the generator's spacing
// keeps gates further apart than the squad can travel in a frame.
func (gm *GateManager) CollideWithSquad(sq *Squad) (*Gate, CrossingResult) {
	_, cz := sq.Center()
	for _, g := range gm.gates {
		if g.Collected() {
			continue
		}
		d := g.Z - cz
		if d < 0 {
			d = -d
		}
		if d < gateCrossThreshold {
			return g, g.ResolveCrossing(sq)
		}
	}
	return nil, CrossingResult{}
}

// CollideWithProjectiles sweeps the active projectile list against
// every uncollected shootable gate and returns all hits. Each
// projectile hits at most one gate (first match); deactivation is the
// caller's responsibility so effects can be sequenced.
func (gm *GateManager) CollideWithProjectiles(active []*Projectile) []GateHit {
	gm.hits = gm.hits[:0]
	for _, p := range active {
		if !p.Active() {
			continue
		}
		for _, g := range gm.gates {
			if g.Collected() || !g.Shootable {
				continue
			}
			d := g.Z - p.Z
			if d < 0 {
				d = -d
			}
			if d < gateCrossThreshold {
				gm.hits = append(gm.hits, GateHit{Gate: g, Projectile: p})
				break
			}
		}
	}
	return gm.hits
}

// Tick advances gate exit timers and evicts gates whose exit animation
// has finished, in place.
func (gm *GateManager) Tick(dt float64) {
	kept := gm.gates[:0]
	for _, g := range gm.gates {
		g.Tick(dt)
		if !g.RemovalReady() {
			kept = append(kept, g)
		}
	}
	gm.gates = kept
}
