package game

import (
	"fmt"
	"strings"
)

// reportWindowTicks is the default aggregation window (~10s at 60TPS).
const reportWindowTicks = 600

// FrameReport is a per-tick snapshot of the gameplay state.
type FrameReport struct {
	Tick       int
	Size       int
	Score      int
	CenterX    float64
	CenterZ    float64
	Spread     float64
	ActiveShot int
	LiveGates  int
	LiveObst   int
	Boost      bool
	Over       bool
}

// WindowReport aggregates a span of frames.
type WindowReport struct {
	FromTick, ToTick int

	SizeMin, SizeMax int
	SizeEnd          int
	ScoreDelta       int
	Distance         float64 // forward units travelled in the window
	SpreadMax        float64
	ShotPeak         int // pool high-water mark
	Defeated         bool
}

// Reporter records one FrameReport per tick and summarizes them over
// fixed windows. The headless report CLI prints the summaries; the
// harness uses them for behaviour assertions.
type Reporter struct {
	history     []FrameReport
	windowTicks int
}

// NewReporter creates a reporter with the given window (<=0 uses the
// default).
func NewReporter(windowTicks int) *Reporter {
	if windowTicks <= 0 {
		windowTicks = reportWindowTicks
	}
	return &Reporter{windowTicks: windowTicks}
}

// Attach wires the reporter into a session so every AdvanceFrame
// records a snapshot.
func (r *Reporter) Attach(s *Session) {
	s.reporter = r
}

// Record captures the session's current state.
func (r *Reporter) Record(s *Session) {
	cx, cz := s.Center()
	r.history = append(r.history, FrameReport{
		Tick:       s.Tick(),
		Size:       s.Size(),
		Score:      s.Score(),
		CenterX:    cx,
		CenterZ:    cz,
		Spread:     s.Squad().spread(),
		ActiveShot: s.Pool().ActiveCount(),
		LiveGates:  len(s.GateList()),
		LiveObst:   len(s.ObstacleList()),
		Boost:      s.BoostActive(),
		Over:       s.GameOver(),
	})
}

// Frames returns the recorded history.
func (r *Reporter) Frames() []FrameReport {
	return r.history
}

// Windows slices the history into consecutive window summaries.
func (r *Reporter) Windows() []WindowReport {
	var out []WindowReport
	for start := 0; start < len(r.history); start += r.windowTicks {
		end := start + r.windowTicks
		if end > len(r.history) {
			end = len(r.history)
		}
		out = append(out, r.summarize(r.history[start:end]))
	}
	return out
}

func (r *Reporter) summarize(frames []FrameReport) WindowReport {
	w := WindowReport{}
	if len(frames) == 0 {
		return w
	}
	first, last := frames[0], frames[len(frames)-1]
	w.FromTick, w.ToTick = first.Tick, last.Tick
	w.SizeMin, w.SizeMax = first.Size, first.Size
	w.SizeEnd = last.Size
	w.ScoreDelta = last.Score - first.Score
	w.Distance = first.CenterZ - last.CenterZ
	for _, f := range frames {
		if f.Size < w.SizeMin {
			w.SizeMin = f.Size
		}
		if f.Size > w.SizeMax {
			w.SizeMax = f.Size
		}
		if f.Spread > w.SpreadMax {
			w.SpreadMax = f.Spread
		}
		if f.ActiveShot > w.ShotPeak {
			w.ShotPeak = f.ActiveShot
		}
		if f.Over {
			w.Defeated = true
		}
	}
	return w
}

// Summary renders the window table as text.
func (r *Reporter) Summary() string {
	var b strings.Builder
	b.WriteString("ticks        size[min..max]  end  score+  dist    spread  shots\n")
	for _, w := range r.Windows() {
		fmt.Fprintf(&b, "%5d-%-5d  %3d..%-3d        %3d  %6d  %6.1f  %5.2f   %4d",
			w.FromTick, w.ToTick, w.SizeMin, w.SizeMax, w.SizeEnd, w.ScoreDelta, w.Distance, w.SpreadMax, w.ShotPeak)
		if w.Defeated {
			b.WriteString("  DEFEAT")
		}
		b.WriteByte('\n')
	}
	return b.String()
}
