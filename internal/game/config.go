package game

import "fmt"

// Fixed tuning constants. Values a host never needs to vary live here;
// anything worth varying per run sits in Config instead.
const (
	maxFrameDelta = 0.1 // s, cap on one frame's dt
	tickRate      = 60  // fixed ticks per second
	fixedDelta    = 1.0 / tickRate

	// Flocking.
	separationRadius = 1.65 // world units
	separationWeight = 2.4
	cohesionWeight   = 1.6
	seekWeight       = 3.2
	velocityDamping  = 0.9
	memberMaxSpeed   = 14.0 // world units/s
	growScatter      = 0.8  // max spawn offset for new members

	// Gates.
	gateCrossThreshold = 0.9 // world units, centre-to-gate crossing distance
	gateExitDuration   = 1.0 // s of post-collection exit animation
	gateScorePerUnit   = 50  // score per unit of |gate delta|
	shootBonusDivisor  = 10  // projectile damage per +1 displayed step
	gateForcedPositive = 3   // first gates that are always positive
	gateNegProbStep    = 0.06
	gateNegProbCap     = 0.5

	// Obstacles and pickups.
	obstacleHitRadius   = 1.0
	obstacleScore       = 10
	obstacleFlashTime   = 0.25 // s of destruction flash before eviction
	pickupCollectRadius = 1.4
	pickupBoostDuration = 6.0 // s of rapid fire per pickup
	pickupBoostScale    = 0.5 // fire interval multiplier while boosted

	// Corridor generation.
	gateRunCount     = 4
	gateSpacing      = 22.0 // world units between gates in a run
	obstacleSpacing  = 11.0 // gate-to-cluster offset
	clusterSizeMin   = 2
	clusterSizeMax   = 4
	lookaheadWindow  = 60.0  // generate while frontier is this close
	levelStride      = 100.0 // forward units per level step
	behindEvictSlack = 12.0  // units behind the squad before eviction
)

// Config is the per-session tuning surface. Zero value is not usable;
// start from DefaultConfig and override.
type Config struct {
	StartSize int
	Capacity  int

	CorridorHalfWidth float64
	SteerMargin       float64
	AdvanceRate       float64 // forward world units/s

	GateValueMin int // most negative gate value, < 0
	GateValueMax int // most positive gate value, > 0

	FireInterval    float64 // s between volleys
	FireRange       float64
	ProjectileSpeed float64
	ProjectileLife  float64
	PoolCapacity    int

	Seed int64 // 0 = seed from the clock
}

// DefaultConfig returns the shipped tuning.
func DefaultConfig() Config {
	return Config{
		StartSize:         5,
		Capacity:          50,
		CorridorHalfWidth: 8,
		SteerMargin:       0.5,
		AdvanceRate:       7,
		GateValueMin:      -10,
		GateValueMax:      8,
		FireInterval:      0.33,
		FireRange:         26,
		ProjectileSpeed:   34,
		ProjectileLife:    1.2,
		PoolCapacity:      256,
	}
}

// validate fails fast on configs that would produce a nonsensical
// session rather than letting subsystems misbehave later.
func (c Config) validate() error {
	if c.StartSize < 1 {
		return fmt.Errorf("config: start size %d, must be >= 1", c.StartSize)
	}
	if c.Capacity < c.StartSize {
		return fmt.Errorf("config: capacity %d below start size %d", c.Capacity, c.StartSize)
	}
	if c.CorridorHalfWidth <= c.SteerMargin {
		return fmt.Errorf("config: half width %.1f must exceed steer margin %.1f", c.CorridorHalfWidth, c.SteerMargin)
	}
	if c.AdvanceRate <= 0 {
		return fmt.Errorf("config: advance rate %.1f, must be > 0", c.AdvanceRate)
	}
	if c.GateValueMin >= 0 || c.GateValueMax <= 0 {
		return fmt.Errorf("config: gate range [%d, %d] must straddle zero", c.GateValueMin, c.GateValueMax)
	}
	if c.FireInterval <= 0 {
		return fmt.Errorf("config: fire interval %.2f, must be > 0", c.FireInterval)
	}
	if c.FireRange <= 0 {
		return fmt.Errorf("config: fire range %.1f, must be > 0", c.FireRange)
	}
	if c.ProjectileSpeed <= 0 || c.ProjectileLife <= 0 {
		return fmt.Errorf("config: projectile speed %.1f / life %.2f must be > 0", c.ProjectileSpeed, c.ProjectileLife)
	}
	if c.PoolCapacity < 1 {
		return fmt.Errorf("config: pool capacity %d, must be >= 1", c.PoolCapacity)
	}
	return nil
}
