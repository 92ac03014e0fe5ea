package game

import "math/rand"

// Obstacle is an HP-bearing destructible on the corridor. It shares
// the gate collision contract: swept against the active projectile
// list each tick, damage applied by the session.
type Obstacle struct {
	X, Z   float64
	Radius float64
	HP     float64
	MaxHP  float64

	destroyed bool
	flash     float64 // s since destruction, drives the hit flash
}

// HPFraction is the remaining health in [0,1], for render tinting.
func (o *Obstacle) HPFraction() float64 {
	if o.MaxHP <= 0 {
		return 0
	}
	return clamp01(o.HP / o.MaxHP)
}

// Destroyed reports whether the obstacle has been reduced to 0 HP.
func (o *Obstacle) Destroyed() bool {
	return o.destroyed
}

// Pickup is a weapon pickup lying on the corridor; collecting it
// temporarily boosts the squad's fire rate.
type Pickup struct {
	X, Z      float64
	collected bool
}

// ObstacleHit pairs a projectile with the obstacle it struck.
type ObstacleHit struct {
	Obstacle   *Obstacle
	Projectile *Projectile
}

// ObstacleField owns obstacles and weapon pickups along the corridor.
type ObstacleField struct {
	obstacles []*Obstacle
	pickups   []*Pickup
	hits      []ObstacleHit
	collects  []*Pickup
}

// NewObstacleField creates an empty field.
func NewObstacleField() *ObstacleField {
	return &ObstacleField{}
}

// Obstacles returns the live obstacles (including flashing just-destroyed
// ones) for rendering.
func (f *ObstacleField) Obstacles() []*Obstacle {
	return f.obstacles
}

// Pickups returns the uncollected pickups for rendering.
func (f *ObstacleField) Pickups() []*Pickup {
	return f.pickups
}

// Add registers a single obstacle. Used by the test harness for
// controlled placement.
func (f *ObstacleField) Add(o *Obstacle) {
	f.obstacles = append(f.obstacles, o)
}

// AddPickup registers a weapon pickup.
func (f *ObstacleField) AddPickup(x, z float64) {
	f.pickups = append(f.pickups, &Pickup{X: x, Z: z})
}

// SpawnCluster places count obstacles scattered around z across the
// corridor width, HP scaled so later clusters take more shots.
func (f *ObstacleField) SpawnCluster(z float64, count int, halfWidth float64, hp float64, rng *rand.Rand) {
	for i := 0; i < count; i++ {
		f.Add(&Obstacle{
			X:      (rng.Float64()*2 - 1) * (halfWidth - 1.0),
			Z:      z - rng.Float64()*3.0,
			Radius: obstacleHitRadius,
			HP:     hp,
			MaxHP:  hp,
		})
	}
}

// CollideWithProjectiles sweeps active projectiles against live
// obstacles. Each projectile registers at most one hit — the first
// obstacle in list order inside the hit radius wins, so two
// overlapping obstacles can never both be credited from one shot.
func (f *ObstacleField) CollideWithProjectiles(active []*Projectile) []ObstacleHit {
	f.hits = f.hits[:0]
	for _, p := range active {
		if !p.Active() {
			continue
		}
		for _, o := range f.obstacles {
			if o.destroyed {
				continue
			}
			if dist2(p.X, p.Z, o.X, o.Z) < o.Radius*o.Radius {
				f.hits = append(f.hits, ObstacleHit{Obstacle: o, Projectile: p})
				break
			}
		}
	}
	return f.hits
}

// Damage applies projectile damage to an obstacle and reports whether
// this hit destroyed it.
func (f *ObstacleField) Damage(o *Obstacle, amount float64) bool {
	if o.destroyed {
		return false
	}
	o.HP -= amount
	if o.HP <= 0 {
		o.HP = 0
		o.destroyed = true
		return true
	}
	return false
}

// CollectPickups returns pickups within collection range of the squad
// centre, marking them collected.
func (f *ObstacleField) CollectPickups(cx, cz float64) []*Pickup {
	f.collects = f.collects[:0]
	for _, p := range f.pickups {
		if p.collected {
			continue
		}
		if dist2(cx, cz, p.X, p.Z) < pickupCollectRadius*pickupCollectRadius {
			p.collected = true
			f.collects = append(f.collects, p)
		}
	}
	return f.collects
}

// Tick ages destruction flashes and evicts obstacles whose flash has
// played out, collected pickups, and anything left far behind the
// squad.
func (f *ObstacleField) Tick(dt float64, squadZ float64) {
	kept := f.obstacles[:0]
	for _, o := range f.obstacles {
		if o.destroyed {
			o.flash += dt
			if o.flash >= obstacleFlashTime {
				continue
			}
		}
		if o.Z > squadZ+behindEvictSlack {
			continue // passed and left behind
		}
		kept = append(kept, o)
	}
	f.obstacles = kept

	keptP := f.pickups[:0]
	for _, p := range f.pickups {
		if p.collected || p.Z > squadZ+behindEvictSlack {
			continue
		}
		keptP = append(keptP, p)
	}
	f.pickups = keptP
}
