package game

// TargetPoint is an aim candidate supplied to the auto-targeter —
// obstacle centres and shootable gate midlines, rebuilt each tick.
type TargetPoint struct {
	X, Z float64
}

// AutoTargeter fires a volley from every squad member on a fixed
// cadence. Selection is stateless: each trigger pull picks the nearest
// candidate strictly ahead of the shooter and within range, with no
// memory between volleys.
type AutoTargeter struct {
	interval  float64 // base s between volleys
	fireRange float64
	cooldown  float64
	boost     float64 // interval multiplier, 1.0 normally, <1 while a pickup is active
}

// NewAutoTargeter creates a targeter with the configured cadence and range.
func NewAutoTargeter(interval, fireRange float64) *AutoTargeter {
	return &AutoTargeter{
		interval:  interval,
		fireRange: fireRange,
		boost:     1.0,
	}
}

// SetBoost scales the fire interval; pass 1.0 to clear.
func (at *AutoTargeter) SetBoost(scale float64) {
	if scale <= 0 {
		scale = 1.0
	}
	at.boost = scale
}

// Tick counts down the cadence and, on expiry, fires one shot per
// member: at the nearest candidate strictly ahead (candidate z below
// the shooter's) inside the fire range, or straight down the corridor
// when none qualifies. Returns the number of shots actually spawned —
// pool exhaustion silently drops the rest.
func (at *AutoTargeter) Tick(dt float64, sq *Squad, candidates []TargetPoint, pool *ProjectilePool) int {
	at.cooldown -= dt
	if at.cooldown > 0 {
		return 0
	}
	at.cooldown = at.interval * at.boost

	band := sizeColorBand(sq.Size())
	fired := 0
	for i := range sq.Members() {
		m := &sq.Members()[i]
		dx, dz := at.aimFrom(m.x, m.z, candidates)
		if pool.Spawn(m.x, m.z, dx, dz, band) != nil {
			fired++
		}
	}
	return fired
}

// aimFrom returns the fire direction for a shooter at (x, z): toward
// the nearest valid candidate, else straight ahead.
func (at *AutoTargeter) aimFrom(x, z float64, candidates []TargetPoint) (float64, float64) {
	bestD2 := at.fireRange * at.fireRange
	bestX, bestZ := 0.0, 0.0
	found := false
	for _, c := range candidates {
		if c.Z >= z {
			continue // behind or level with the shooter
		}
		d2 := dist2(x, z, c.X, c.Z)
		if d2 < bestD2 {
			bestD2 = d2
			bestX, bestZ = c.X-x, c.Z-z
			found = true
		}
	}
	if !found {
		return 0, -1
	}
	return bestX, bestZ
}
