package game

import (
	"math"
	"math/rand"
)

// member is one unit in the squad. x is lateral position across the
// corridor, z is longitudinal; the squad advances toward negative z.
// Members live on the ground plane, so there is no vertical component
// to simulate.
type member struct {
	x, z   float64
	vx, vz float64
	facing float64 // radians, for billboarded sprites
	phase  float64 // per-member animation phase offset
}

// Squad is the player-controlled group. It owns its members
// exclusively: growth appends, shrink truncates, and nothing outside
// the squad holds member references across ticks.
type Squad struct {
	members  []member
	capacity int

	steerX      float64 // lateral steer target, clamped to the corridor
	steerZ      float64 // forward steer target, advanced by the scroll rate
	advanceRate float64
	halfWidth   float64
	margin      float64

	rng *rand.Rand
}

// NewSquad creates a squad of size n centred on the corridor at z=0.
func NewSquad(n, capacity int, halfWidth, margin, advanceRate float64, rng *rand.Rand) *Squad {
	sq := &Squad{
		capacity:    capacity,
		advanceRate: advanceRate,
		halfWidth:   halfWidth,
		margin:      margin,
		rng:         rng,
	}
	sq.SetSize(n)
	return sq
}

// SetSteerTarget stores the lateral steering input, clamped to the
// playable half-width minus the margin.
func (sq *Squad) SetSteerTarget(x float64) {
	limit := sq.halfWidth - sq.margin
	sq.steerX = clamp(x, -limit, limit)
}

// Advance scrolls the steer target forward (negative z) by the fixed
// advance rate. The corridor content is static; the squad moves into it.
func (sq *Squad) Advance(dt float64) {
	sq.steerZ -= sq.advanceRate * dt
}

// Tick recomputes every member's velocity from three weighted forces —
// pairwise separation, cohesion toward the centroid, and seek toward
// the steer target — then integrates with damping and a speed cap.
// The centroid is snapshotted once so later members don't chase a
// target that earlier members already moved.
func (sq *Squad) Tick(dt float64) {
	if len(sq.members) == 0 {
		return
	}
	cx, cz := sq.Center()

	for i := range sq.members {
		m := &sq.members[i]

		fx, fz := sq.separationForce(i)
		fx += (cx - m.x) * cohesionWeight
		fz += (cz - m.z) * cohesionWeight
		fx += (sq.steerX - m.x) * seekWeight
		fz += (sq.steerZ - m.z) * seekWeight

		m.vx = (m.vx + fx*dt) * velocityDamping
		m.vz = (m.vz + fz*dt) * velocityDamping

		speed := math.Hypot(m.vx, m.vz)
		if speed > memberMaxSpeed {
			m.vx = m.vx / speed * memberMaxSpeed
			m.vz = m.vz / speed * memberMaxSpeed
		}

		m.x += m.vx * dt
		m.z += m.vz * dt
		if speed > 0.5 {
			m.facing = math.Atan2(m.vx, -m.vz)
		}
	}
}

// separationForce sums inverse-distance repulsion from every other
// member closer than the separation radius. O(n²) over the squad, fine
// at capacity ≤ 50; isolated here so a spatial grid could replace the
// scan without touching Tick.
func (sq *Squad) separationForce(i int) (float64, float64) {
	m := &sq.members[i]
	var fx, fz float64
	for j := range sq.members {
		if j == i {
			continue
		}
		o := &sq.members[j]
		dx := m.x - o.x
		dz := m.z - o.z
		d := math.Hypot(dx, dz)
		if d >= separationRadius {
			continue
		}
		if d < 1e-6 {
			// Coincident members: pick a stable arbitrary direction so the
			// pair still separates instead of dividing by zero.
			ang := float64(i) * 2.39996
			dx, dz = math.Cos(ang), math.Sin(ang)
			d = 1e-3
		}
		w := separationWeight / d
		fx += dx / d * w
		fz += dz / d * w
	}
	return fx, fz
}

// Size returns the authoritative squad size. Member count always equals it.
func (sq *Squad) Size() int {
	return len(sq.members)
}

// Capacity returns the configured maximum size.
func (sq *Squad) Capacity() int {
	return sq.capacity
}

// Grow adds one member near the centroid. No-op at capacity.
func (sq *Squad) Grow() {
	sq.SetSize(len(sq.members) + 1)
}

// Shrink removes one member from the end. No-op at zero.
func (sq *Squad) Shrink() {
	sq.SetSize(len(sq.members) - 1)
}

// SetSize grows or shrinks the squad to n, clamped to [0, capacity].
// New members spawn at a small random offset from the centroid so a
// big gate bonus doesn't stack units on one point; removal just
// truncates — member order carries no meaning.
func (sq *Squad) SetSize(n int) {
	if n < 0 {
		n = 0
	}
	if n > sq.capacity {
		n = sq.capacity
	}
	if n <= len(sq.members) {
		sq.members = sq.members[:n]
		return
	}
	cx, cz := sq.Center()
	for len(sq.members) < n {
		ang := sq.rng.Float64() * 2 * math.Pi
		r := sq.rng.Float64() * growScatter
		sq.members = append(sq.members, member{
			x:     clamp(cx+math.Cos(ang)*r, -sq.halfWidth, sq.halfWidth),
			z:     cz + math.Sin(ang)*r,
			phase: sq.rng.Float64() * 2 * math.Pi,
		})
	}
}

// Center returns the members' centroid. With no members it returns the
// steer target — a well-defined point the camera and corridor logic
// can keep using through the defeat animation.
func (sq *Squad) Center() (float64, float64) {
	if len(sq.members) == 0 {
		return sq.steerX, sq.steerZ
	}
	var sx, sz float64
	for i := range sq.members {
		sx += sq.members[i].x
		sz += sq.members[i].z
	}
	n := float64(len(sq.members))
	return sx / n, sz / n
}

// Members exposes the member slice for same-package iteration (firing,
// rendering). Callers must not retain it across a tick.
func (sq *Squad) Members() []member {
	return sq.members
}

// spread is the max distance between any member and the centroid.
func (sq *Squad) spread() float64 {
	cx, cz := sq.Center()
	worst := 0.0
	for i := range sq.members {
		if d := dist(sq.members[i].x, sq.members[i].z, cx, cz); d > worst {
			worst = d
		}
	}
	return worst
}
