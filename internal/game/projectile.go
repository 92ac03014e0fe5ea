package game

import "fmt"

// Projectile is one pooled shot. Slots are reused in place: a full
// lifecycle is inert → Spawn → ticked each frame → deactivated by
// expiry, by a hit, or explicitly. Nothing outside the pool may hold a
// *Projectile across a tick.
type Projectile struct {
	X, Z   float64
	VX, VZ float64
	Age    float64 // s since spawn
	Band   int     // colour band assigned at spawn
	active bool
	slot   int
}

// Active reports whether the slot currently represents a live shot.
func (p *Projectile) Active() bool {
	return p.active
}

// Deactivate returns the slot to the pool. Safe to call twice; the
// second call is a no-op, which is what makes same-tick double hits
// harmless.
func (p *Projectile) Deactivate() {
	p.active = false
}

// Alpha is the render opacity: 1.0 for the first 80% of the lifetime,
// fading linearly to 0 over the final 20%.
func (p *Projectile) Alpha(lifetime float64) float64 {
	fadeStart := lifetime * 0.8
	if p.Age <= fadeStart {
		return 1.0
	}
	return clamp01(1.0 - (p.Age-fadeStart)/(lifetime-fadeStart))
}

// ProjectilePool is a fixed-capacity, no-allocation pool. Spawn scans
// for the first inactive slot (linear scan, fine at a few hundred
// slots); a full pool silently drops the shot — degraded fire density
// is accepted policy, not an error.
type ProjectilePool struct {
	slots    []Projectile
	speed    float64
	lifetime float64
	scratch  []*Projectile // reused backing array for Active()
}

// NewProjectilePool creates a pool with the given capacity.
// Capacity < 1 is a programmer error and fails fast.
func NewProjectilePool(capacity int, speed, lifetime float64) (*ProjectilePool, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("projectile pool: capacity %d, must be >= 1", capacity)
	}
	p := &ProjectilePool{
		slots:    make([]Projectile, capacity),
		speed:    speed,
		lifetime: lifetime,
		scratch:  make([]*Projectile, 0, capacity),
	}
	for i := range p.slots {
		p.slots[i].slot = i
	}
	return p, nil
}

// Spawn activates the first inactive slot with the normalized
// direction scaled to the pool's fixed speed. Returns nil when the
// pool is exhausted.
func (p *ProjectilePool) Spawn(x, z, dx, dz float64, band int) *Projectile {
	for i := range p.slots {
		s := &p.slots[i]
		if s.active {
			continue
		}
		nx, nz := normalize2(dx, dz)
		s.X, s.Z = x, z
		s.VX, s.VZ = nx*p.speed, nz*p.speed
		s.Age = 0
		s.Band = band
		s.active = true
		return s
	}
	return nil
}

// Tick advances every active projectile and expires those past the
// fixed lifetime.
func (p *ProjectilePool) Tick(dt float64) {
	for i := range p.slots {
		s := &p.slots[i]
		if !s.active {
			continue
		}
		s.X += s.VX * dt
		s.Z += s.VZ * dt
		s.Age += dt
		if s.Age >= p.lifetime {
			s.active = false
		}
	}
}

// Active returns the live projectiles. The slice is recomputed into a
// reused scratch buffer on every call — a fresh snapshot, not a
// stateful iterator — so callers may deactivate entries mid-walk.
func (p *ProjectilePool) Active() []*Projectile {
	p.scratch = p.scratch[:0]
	for i := range p.slots {
		if p.slots[i].active {
			p.scratch = append(p.scratch, &p.slots[i])
		}
	}
	return p.scratch
}

// ActiveCount reports the number of live slots.
func (p *ProjectilePool) ActiveCount() int {
	n := 0
	for i := range p.slots {
		if p.slots[i].active {
			n++
		}
	}
	return n
}

// Capacity returns the fixed slot count.
func (p *ProjectilePool) Capacity() int {
	return len(p.slots)
}

// Lifetime returns the configured projectile lifetime, for fade math
// in the presentation layer.
func (p *ProjectilePool) Lifetime() float64 {
	return p.lifetime
}
