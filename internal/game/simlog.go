package game

import (
	"fmt"
	"strings"
)

// SimLogEntry is one recorded event during a headless run.
type SimLogEntry struct {
	Tick     int
	Category string  // gate, squad, fire, obstacle, pickup, session
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=0420] gate     crossed          +3 -> size 8
func (e SimLogEntry) String() string {
	return fmt.Sprintf("[T=%04d] %-9s %-16s %s", e.Tick, e.Category, e.Key, e.Value)
}

// SimLog collects structured events during a headless run. It is
// unbounded and machine-readable, meant for the harness and the report
// CLI rather than the in-game HUD.
type SimLog struct {
	entries []SimLogEntry
	verbose bool
}

// NewSimLog creates a SimLog. Verbose mode additionally records
// per-tick position/size entries, useful when bisecting a failure.
func NewSimLog(verbose bool) *SimLog {
	return &SimLog{verbose: verbose}
}

// Add records a new entry.
func (sl *SimLog) Add(tick int, category, key, value string, numVal float64) {
	if sl == nil {
		return
	}
	sl.entries = append(sl.entries, SimLogEntry{
		Tick:     tick,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// Verbose reports whether per-tick detail entries should be recorded.
func (sl *SimLog) Verbose() bool {
	return sl != nil && sl.verbose
}

// Entries returns all recorded entries in order.
func (sl *SimLog) Entries() []SimLogEntry {
	if sl == nil {
		return nil
	}
	return sl.entries
}

// Filter returns the entries matching category (and key, when key is
// non-empty).
func (sl *SimLog) Filter(category, key string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.Entries() {
		if e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Count returns how many entries match category/key.
func (sl *SimLog) Count(category, key string) int {
	return len(sl.Filter(category, key))
}

// Dump renders every entry as one line per event.
func (sl *SimLog) Dump() string {
	var b strings.Builder
	for _, e := range sl.Entries() {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}
