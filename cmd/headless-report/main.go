package main

import (
	"flag"
	"fmt"
	"math"

	"squad-rush/internal/game"
)

type runStats struct {
	runIndex int
	seed     int64

	ticksRun      int
	defeatTick    int // 0 = survived
	finalScore    int
	finalSize     int
	gatesCrossed  int
	obstaclesDown int
	pickups       int
	distance      float64
	shotPeak      int
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var verbose bool

	flag.IntVar(&runs, "runs", 5, "number of headless simulation runs")
	flag.IntVar(&ticks, "ticks", 7200, "ticks per run (60 = 1s)")
	flag.Int64Var(&seedBase, "seed-base", 42, "RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.BoolVar(&verbose, "verbose", false, "print per-window tables for each run")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}

	fmt.Printf("=== Squad Rush Headless Report ===\n")
	fmt.Printf("runs=%d ticks=%d seed_base=%d seed_step=%d\n\n", runs, ticks, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runOnce(i+1, seed, ticks, verbose)
		all = append(all, stats)
		printRun(stats)
	}
	printAggregate(all)
}

// runOnce drives one session until defeat or the tick limit with a
// weaving steering input so gates and obstacles across the full
// corridor width get exercised.
func runOnce(index int, seed int64, ticks int, verbose bool) runStats {
	tr := game.NewTestRun(game.WithSeed(seed))
	s := tr.Session

	defeatTick := 0
	s.Bus.Subscribe(game.EventDefeat, func(game.Event) {
		if defeatTick == 0 {
			defeatTick = s.Tick()
		}
	})

	_, startZ := s.Center()
	for t := 0; t < ticks && !s.GameOver(); t++ {
		// Slow sinusoidal weave across most of the corridor.
		x := math.Sin(float64(t)/180.0) * 6.0
		s.SetSteerTarget(x)
		tr.RunTicks(1)
	}
	_, endZ := s.Center()

	shotPeak := 0
	for _, w := range tr.Reporter.Windows() {
		if w.ShotPeak > shotPeak {
			shotPeak = w.ShotPeak
		}
	}
	if verbose {
		fmt.Printf("--- run %d windows ---\n%s\n", index, tr.Reporter.Summary())
	}

	return runStats{
		runIndex:      index,
		seed:          seed,
		ticksRun:      s.Tick(),
		defeatTick:    defeatTick,
		finalScore:    s.Score(),
		finalSize:     s.Size(),
		gatesCrossed:  tr.GatesCrossed,
		obstaclesDown: tr.ObstaclesDown,
		pickups:       tr.Pickups,
		distance:      startZ - endZ,
		shotPeak:      shotPeak,
	}
}

func printRun(st runStats) {
	outcome := "survived"
	if st.defeatTick > 0 {
		outcome = fmt.Sprintf("defeat@%d", st.defeatTick)
	}
	fmt.Printf("run %d (seed %d): %s  score=%d size=%d gates=%d obstacles=%d pickups=%d dist=%.0f shot_peak=%d\n",
		st.runIndex, st.seed, outcome, st.finalScore, st.finalSize,
		st.gatesCrossed, st.obstaclesDown, st.pickups, st.distance, st.shotPeak)
}

func printAggregate(all []runStats) {
	if len(all) == 0 {
		return
	}
	fmt.Printf("\n=== aggregate over %d runs ===\n", len(all))
	fmt.Printf("%-12s %8s %8s %8s\n", "metric", "min", "avg", "max")
	printMetric("score", all, func(s runStats) float64 { return float64(s.finalScore) })
	printMetric("final_size", all, func(s runStats) float64 { return float64(s.finalSize) })
	printMetric("gates", all, func(s runStats) float64 { return float64(s.gatesCrossed) })
	printMetric("obstacles", all, func(s runStats) float64 { return float64(s.obstaclesDown) })
	printMetric("distance", all, func(s runStats) float64 { return s.distance })
	printMetric("shot_peak", all, func(s runStats) float64 { return float64(s.shotPeak) })

	defeats := 0
	for _, s := range all {
		if s.defeatTick > 0 {
			defeats++
		}
	}
	fmt.Printf("defeats: %d/%d\n", defeats, len(all))
}

func printMetric(name string, all []runStats, get func(runStats) float64) {
	mn := math.MaxFloat64
	mx := -math.MaxFloat64
	sum := 0.0
	for _, s := range all {
		v := get(s)
		if v < mn {
			mn = v
		}
		if v > mx {
			mx = v
		}
		sum += v
	}
	fmt.Printf("%-12s %8.0f %8.1f %8.0f\n", name, mn, sum/float64(len(all)), mx)
}
