package game

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// DebugReport renders a plain-text snapshot of the session: squad,
// score, live content, frontier, and the tail of the sim log. Bound to
// a hotkey in the game build so a bug can be captured mid-run and
// pasted into an issue.
func (s *Session) DebugReport(lastEntries int) string {
	if lastEntries <= 0 {
		lastEntries = 40
	}
	cx, cz := s.Center()

	var b strings.Builder
	b.WriteString("--- squad-rush debug report ---\n")
	fmt.Fprintf(&b, "tick=%d score=%d level=%d over=%v\n", s.tick, s.score, s.Level(), s.over)
	fmt.Fprintf(&b, "squad: size=%d/%d center=(%.2f, %.2f) spread=%.2f steer=(%.2f, %.2f)\n",
		s.squad.Size(), s.squad.Capacity(), cx, cz, s.squad.spread(), s.squad.steerX, s.squad.steerZ)
	fmt.Fprintf(&b, "pool: active=%d/%d  boost=%v\n", s.pool.ActiveCount(), s.pool.Capacity(), s.BoostActive())
	fmt.Fprintf(&b, "corridor: frontier=%.1f gates=%d obstacles=%d pickups=%d\n\n",
		s.corridor.Frontier(), len(s.gates.Gates()), len(s.obstacles.Obstacles()), len(s.obstacles.Pickups()))

	b.WriteString("gates ahead:\n")
	for _, g := range s.gates.Gates() {
		state := "active"
		if g.Collected() {
			state = fmt.Sprintf("collected %.0f%%", g.ExitProgress()*100)
		}
		fmt.Fprintf(&b, "  z=%8.1f  value=%+d  %s\n", g.Z, g.Displayed(), state)
	}

	entries := s.Log.Entries()
	if len(entries) > 0 {
		from := len(entries) - lastEntries
		if from < 0 {
			from = 0
		}
		fmt.Fprintf(&b, "\nlog tail (%d entries):\n", len(entries)-from)
		for _, e := range entries[from:] {
			b.WriteString("  ")
			b.WriteString(e.String())
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// CopyDebugReport puts the debug report on the system clipboard.
func (s *Session) CopyDebugReport() error {
	return clipboard.WriteAll(s.DebugReport(40))
}
