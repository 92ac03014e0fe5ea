package game

import (
	"fmt"
	"math/rand"
	"time"
)

// projectileDamage is the damage one projectile deals to gates and
// obstacles. Gate arithmetic steps once per shootBonusDivisor of it.
const projectileDamage = 1

// Session is one run of the game: it owns every subsystem and is the
// single object a host drives. There is no reset — restarting means
// constructing a new Session, which discards all pooled state.
type Session struct {
	cfg Config
	rng *rand.Rand

	Bus *EventBus
	Log *SimLog

	squad     *Squad
	pool      *ProjectilePool
	targeter  *AutoTargeter
	gates     *GateManager
	obstacles *ObstacleField
	corridor  *Corridor

	tick       int
	score      int
	over       bool
	boostTimer float64 // remaining s of weapon-pickup fire boost
	candidates []TargetPoint

	reporter *Reporter // optional, set by the harness and report CLI
}

// NewSession validates the config and builds a fresh session. A zero
// Seed is replaced with the wall clock so casual construction still
// varies run to run; tests pass explicit seeds.
func NewSession(cfg Config) (*Session, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- game only

	pool, err := NewProjectilePool(cfg.PoolCapacity, cfg.ProjectileSpeed, cfg.ProjectileLife)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}

	s := &Session{
		cfg:       cfg,
		rng:       rng,
		Bus:       NewEventBus(),
		squad:     NewSquad(cfg.StartSize, cfg.Capacity, cfg.CorridorHalfWidth, cfg.SteerMargin, cfg.AdvanceRate, rng),
		pool:      pool,
		targeter:  NewAutoTargeter(cfg.FireInterval, cfg.FireRange),
		gates:     NewGateManager(rng),
		obstacles: NewObstacleField(),
	}
	s.corridor = NewCorridor(s.gates, s.obstacles, cfg.CorridorHalfWidth, cfg.GateValueMin, cfg.GateValueMax, rng)
	return s, nil
}

// SetSteerTarget forwards the host's lateral steering input.
func (s *Session) SetSteerTarget(x float64) {
	s.squad.SetSteerTarget(x)
}

// AdvanceFrame runs one simulation tick. The order is fixed: steering
// and advance, firing, projectile motion, obstacle hits, gate hits,
// gate crossing, animation/eviction sweeps, corridor extension, then
// derived values. After a defeat the session is latched and every
// further frame is a no-op until the host builds a new session.
func (s *Session) AdvanceFrame(dt float64) {
	if s.over {
		return
	}
	// A stalled frame must not teleport the squad through gates.
	dt = clamp(dt, 0, maxFrameDelta)
	if dt == 0 {
		return
	}
	s.tick++

	// (2) steering input was applied via SetSteerTarget; advance and flock.
	s.squad.Advance(dt)
	s.squad.Tick(dt)

	// (3) auto-fire against the current obstacle and gate target lists.
	shots := s.targeter.Tick(dt, s.squad, s.buildCandidates(), s.pool)
	if shots > 0 && s.Log.Verbose() {
		s.Log.Add(s.tick, "fire", "volley", fmt.Sprintf("%d shots", shots), float64(shots))
	}

	// (4) advance pooled projectiles.
	s.pool.Tick(dt)

	// (5) projectile–obstacle hits: damage, destruction events, score.
	active := s.pool.Active()
	for _, hit := range s.obstacles.CollideWithProjectiles(active) {
		hit.Projectile.Deactivate()
		if s.obstacles.Damage(hit.Obstacle, projectileDamage) {
			s.addScore(obstacleScore)
			s.Bus.Emit(Event{Type: EventObstacleDestroyed, X: hit.Obstacle.X, Z: hit.Obstacle.Z, Amount: obstacleScore})
			s.Log.Add(s.tick, "obstacle", "destroyed", fmt.Sprintf("at (%.1f, %.1f)", hit.Obstacle.X, hit.Obstacle.Z), 0)
		}
	}

	// (6) projectile–gate hits: shoot-bonus. Projectiles deactivated in
	// step 5 are skipped by the Active() recheck inside the sweep.
	for _, hit := range s.gates.CollideWithProjectiles(active) {
		hit.Projectile.Deactivate()
		hit.Gate.HitByProjectile(projectileDamage)
	}

	// (7) squad–gate crossing: arithmetic, defeat or size change.
	if gate, res := s.gates.CollideWithSquad(s.squad); res.Resolved {
		if res.Defeat {
			s.over = true
			s.Bus.Emit(Event{Type: EventDefeat, Z: gate.Z})
			s.Log.Add(s.tick, "gate", "defeat", fmt.Sprintf("value %d wiped the squad", gate.Displayed()), 0)
			if s.reporter != nil {
				s.reporter.Record(s) // final snapshot carries the defeat
			}
			return
		}
		bonus := res.Delta * gateScorePerUnit
		if bonus < 0 {
			bonus = -bonus
		}
		s.addScore(bonus)
		s.Bus.Emit(Event{Type: EventGateCrossed, Z: gate.Z, Amount: res.Delta})
		s.Bus.Emit(Event{Type: EventSquadSize, Amount: res.NewSize, Grew: res.Delta > 0})
		s.Log.Add(s.tick, "gate", "crossed", fmt.Sprintf("%+d -> size %d", res.Delta, res.NewSize), float64(res.Delta))
	}

	// (7b) weapon pickups under the squad centre.
	cx, cz := s.squad.Center()
	for _, p := range s.obstacles.CollectPickups(cx, cz) {
		s.boostTimer = pickupBoostDuration
		s.Bus.Emit(Event{Type: EventWeaponPickup, X: p.X, Z: p.Z})
		s.Log.Add(s.tick, "pickup", "collected", fmt.Sprintf("at (%.1f, %.1f)", p.X, p.Z), 0)
	}

	// (8) animation and eviction sweeps.
	s.gates.Tick(dt)
	s.obstacles.Tick(dt, cz)

	// (9) extend the corridor while the frontier is near.
	s.corridor.Extend(cz)

	// (10) derived values.
	if s.boostTimer > 0 {
		s.boostTimer -= dt
		if s.boostTimer <= 0 {
			s.boostTimer = 0
			s.targeter.SetBoost(1.0)
		} else {
			s.targeter.SetBoost(pickupBoostScale)
		}
	}
	if s.reporter != nil {
		s.reporter.Record(s)
	}
	if s.Log.Verbose() {
		s.Log.Add(s.tick, "session", "state",
			fmt.Sprintf("size=%d center=(%.1f, %.1f) score=%d", s.squad.Size(), cx, cz, s.score), float64(s.squad.Size()))
	}
}

// buildCandidates rebuilds the auto-targeter's aim list from live
// obstacles and uncollected shootable gates. Gates are aimed at the
// corridor centreline — they span the full width, so lateral position
// is meaningless.
func (s *Session) buildCandidates() []TargetPoint {
	s.candidates = s.candidates[:0]
	for _, o := range s.obstacles.Obstacles() {
		if o.Destroyed() {
			continue
		}
		s.candidates = append(s.candidates, TargetPoint{X: o.X, Z: o.Z})
	}
	for _, g := range s.gates.Gates() {
		if g.Collected() || !g.Shootable {
			continue
		}
		s.candidates = append(s.candidates, TargetPoint{X: 0, Z: g.Z})
	}
	return s.candidates
}

func (s *Session) addScore(amount int) {
	if amount == 0 {
		return
	}
	s.score += amount
	s.Bus.Emit(Event{Type: EventScoreDelta, Amount: amount})
}

// --- Queries for the presentation layer and the host ---

// Score returns the accumulated score.
func (s *Session) Score() int { return s.score }

// Size returns the current squad size.
func (s *Session) Size() int { return s.squad.Size() }

// Center returns the squad centroid (steer target when empty).
func (s *Session) Center() (float64, float64) { return s.squad.Center() }

// GameOver reports whether the defeat latch has tripped.
func (s *Session) GameOver() bool { return s.over }

// Tick returns the frame counter.
func (s *Session) Tick() int { return s.tick }

// Level is the progress tier, one step per levelStride of forward travel.
func (s *Session) Level() int {
	_, cz := s.squad.Center()
	if cz > 0 {
		cz = 0
	}
	return 1 + int(-cz/levelStride)
}

// BoostActive reports whether a weapon pickup boost is running.
func (s *Session) BoostActive() bool { return s.boostTimer > 0 }

// Squad exposes the squad for same-package rendering and tests.
func (s *Session) Squad() *Squad { return s.squad }

// Pool exposes the projectile pool.
func (s *Session) Pool() *ProjectilePool { return s.pool }

// GateList returns the live gates.
func (s *Session) GateList() []*Gate { return s.gates.Gates() }

// ObstacleList returns the live obstacles.
func (s *Session) ObstacleList() []*Obstacle { return s.obstacles.Obstacles() }

// PickupList returns the uncollected pickups.
func (s *Session) PickupList() []*Pickup { return s.obstacles.Pickups() }

// Frontier returns the corridor generation frontier.
func (s *Session) Frontier() float64 { return s.corridor.Frontier() }
