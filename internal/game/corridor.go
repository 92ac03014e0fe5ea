package game

import "math/rand"

// Corridor lays gate runs and obstacle clusters down the forward axis
// and extends them ahead of the squad. The frontier is the
// most-negative gate coordinate generated so far; generation happens
// whenever the squad closes within the lookahead window, which a
// bounded advance rate can never outrun in one frame.
type Corridor struct {
	gates     *GateManager
	obstacles *ObstacleField
	rng       *rand.Rand

	halfWidth float64
	minVal    int
	maxVal    int

	frontier float64 // most-negative generated gate z
	batches  int     // batches generated, scales obstacle HP and pickups
}

// NewCorridor creates a generator over the given managers and lays
// down the first batch so a fresh session starts with content ahead.
func NewCorridor(gates *GateManager, obstacles *ObstacleField, halfWidth float64, minVal, maxVal int, rng *rand.Rand) *Corridor {
	c := &Corridor{
		gates:     gates,
		obstacles: obstacles,
		rng:       rng,
		halfWidth: halfWidth,
		minVal:    minVal,
		maxVal:    maxVal,
		frontier:  -gateSpacing, // first gate lands one spacing ahead of the start line
	}
	c.generateBatch()
	return c
}

// Frontier returns the most-negative generated gate coordinate.
func (c *Corridor) Frontier() float64 {
	return c.frontier
}

// Extend generates further batches while the squad's forward
// coordinate is within the lookahead window of the frontier.
// Postcondition: the frontier is at least a full lookahead window
// ahead of playerZ.
func (c *Corridor) Extend(playerZ float64) {
	for c.frontier > playerZ-lookaheadWindow {
		c.generateBatch()
	}
}

// generateBatch alternates gate placement and obstacle clusters down
// from the current frontier: each gate in the run is followed by a
// cluster halfway to the next gate. Obstacle HP ramps with batch count
// so the corridor hardens as the squad (presumably) grows; every other
// batch drops one weapon pickup.
func (c *Corridor) generateBatch() {
	start := c.frontier
	if c.batches > 0 {
		start = c.frontier - gateSpacing
	}
	c.gates.SpawnGates(start, gateRunCount, gateSpacing, c.minVal, c.maxVal)

	hp := 20.0 + float64(c.batches)*8.0
	for i := 0; i < gateRunCount; i++ {
		z := start - float64(i)*gateSpacing - obstacleSpacing
		count := clusterSizeMin + c.rng.Intn(clusterSizeMax-clusterSizeMin+1)
		c.obstacles.SpawnCluster(z, count, c.halfWidth, hp, c.rng)
	}
	if c.batches%2 == 1 {
		z := start - float64(c.rng.Intn(gateRunCount))*gateSpacing - obstacleSpacing*0.5
		c.obstacles.AddPickup((c.rng.Float64()*2-1)*(c.halfWidth-1.5), z)
	}

	c.frontier = start - float64(gateRunCount-1)*gateSpacing
	c.batches++
}
