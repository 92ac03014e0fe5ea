package game

// TestRun is a headless session harness used by tests and the report
// CLI. It mirrors how cmd/game drives a Session but is deterministic,
// has no ebiten dependency, and supports controlled content placement.
type TestRun struct {
	Session  *Session
	Log      *SimLog
	Reporter *Reporter

	// Event tallies, filled by bus subscriptions.
	GatesCrossed  int
	ObstaclesDown int
	Pickups       int
	Defeats       int
	ScoreEvents   int
}

// runOptionKind controls the pass in which an option is applied.
type runOptionKind int

const (
	runOptConfig  runOptionKind = iota // mutate Config before construction
	runOptContent                      // place gates/obstacles after construction
)

// RunOption is a builder function applied to a TestRun during construction.
type RunOption struct {
	kind runOptionKind
	cfg  func(*Config)
	post func(*TestRun)
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) RunOption {
	return RunOption{kind: runOptConfig, cfg: func(c *Config) { c.Seed = seed }}
}

// WithStartSize sets the initial squad size.
func WithStartSize(n int) RunOption {
	return RunOption{kind: runOptConfig, cfg: func(c *Config) {
		c.StartSize = n
		if c.Capacity < n {
			c.Capacity = n
		}
	}}
}

// WithCapacity sets the squad capacity.
func WithCapacity(n int) RunOption {
	return RunOption{kind: runOptConfig, cfg: func(c *Config) { c.Capacity = n }}
}

// WithPoolCapacity sets the projectile pool size.
func WithPoolCapacity(n int) RunOption {
	return RunOption{kind: runOptConfig, cfg: func(c *Config) { c.PoolCapacity = n }}
}

// WithConfig applies an arbitrary config mutation.
func WithConfig(fn func(*Config)) RunOption {
	return RunOption{kind: runOptConfig, cfg: fn}
}

// WithEmptyCorridor clears all generated gates and obstacles so a test
// can place content explicitly. The generator's frontier is pushed far
// ahead so Extend stays quiet for the duration of a short run.
func WithEmptyCorridor() RunOption {
	return RunOption{kind: runOptContent, post: func(tr *TestRun) {
		s := tr.Session
		s.gates.gates = s.gates.gates[:0]
		s.obstacles.obstacles = s.obstacles.obstacles[:0]
		s.obstacles.pickups = s.obstacles.pickups[:0]
		s.corridor.frontier = -1e9
	}}
}

// WithGate places a gate at z with the given value.
func WithGate(z float64, value int) RunOption {
	return RunOption{kind: runOptContent, post: func(tr *TestRun) {
		tr.Session.gates.gates = append(tr.Session.gates.gates, NewGate(z, value, true))
	}}
}

// WithObstacle places an obstacle at (x, z) with the given HP.
func WithObstacle(x, z, hp float64) RunOption {
	return RunOption{kind: runOptContent, post: func(tr *TestRun) {
		tr.Session.obstacles.Add(&Obstacle{X: x, Z: z, Radius: obstacleHitRadius, HP: hp, MaxHP: hp})
	}}
}

// WithPickup places a weapon pickup at (x, z).
func WithPickup(x, z float64) RunOption {
	return RunOption{kind: runOptContent, post: func(tr *TestRun) {
		tr.Session.obstacles.AddPickup(x, z)
	}}
}

// WithVerbose enables per-tick log entries.
func WithVerbose() RunOption {
	return RunOption{kind: runOptContent, post: func(tr *TestRun) {
		tr.Log = NewSimLog(true)
		tr.Session.Log = tr.Log
	}}
}

// NewTestRun constructs a harnessed session in two ordered passes:
//
//  1. Config options over DefaultConfig (seed 1 unless overridden)
//  2. Session construction + content options
//
// Construction panics on a config error — in tests that is always a
// bug in the test itself.
func NewTestRun(opts ...RunOption) *TestRun {
	cfg := DefaultConfig()
	cfg.Seed = 1
	for _, o := range opts {
		if o.kind == runOptConfig {
			o.cfg(&cfg)
		}
	}

	s, err := NewSession(cfg)
	if err != nil {
		panic(err)
	}
	tr := &TestRun{
		Session:  s,
		Log:      NewSimLog(false),
		Reporter: NewReporter(reportWindowTicks),
	}
	s.Log = tr.Log
	tr.Reporter.Attach(s)

	s.Bus.Subscribe(EventGateCrossed, func(Event) { tr.GatesCrossed++ })
	s.Bus.Subscribe(EventObstacleDestroyed, func(Event) { tr.ObstaclesDown++ })
	s.Bus.Subscribe(EventWeaponPickup, func(Event) { tr.Pickups++ })
	s.Bus.Subscribe(EventDefeat, func(Event) { tr.Defeats++ })
	s.Bus.Subscribe(EventScoreDelta, func(Event) { tr.ScoreEvents++ })

	for _, o := range opts {
		if o.kind == runOptContent {
			o.post(tr)
		}
	}
	return tr
}

// RunTicks advances the session n fixed-rate frames.
func (tr *TestRun) RunTicks(n int) {
	for i := 0; i < n; i++ {
		tr.Session.AdvanceFrame(fixedDelta)
	}
}

// RunSeconds advances the session by whole frames covering d seconds.
func (tr *TestRun) RunSeconds(d float64) {
	tr.RunTicks(int(d * tickRate))
}
