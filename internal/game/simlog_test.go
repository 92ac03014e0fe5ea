package game

import (
	"strings"
	"testing"
)

func TestSimLog_FilterAndCount(t *testing.T) {
	sl := NewSimLog(false)
	sl.Add(1, "gate", "crossed", "+3 -> size 8", 3)
	sl.Add(2, "gate", "defeat", "value -9 wiped the squad", 0)
	sl.Add(3, "obstacle", "destroyed", "at (1.0, -20.0)", 0)

	if n := sl.Count("gate", ""); n != 2 {
		t.Fatalf("2 gate entries expected, got %d", n)
	}
	if n := sl.Count("gate", "crossed"); n != 1 {
		t.Fatalf("1 crossed entry expected, got %d", n)
	}
	if n := sl.Count("pickup", ""); n != 0 {
		t.Fatalf("no pickup entries expected, got %d", n)
	}
	if got := sl.Filter("gate", "crossed")[0].NumVal; got != 3 {
		t.Fatalf("numeric value should survive, got %.0f", got)
	}
}

func TestSimLog_EntryFormat(t *testing.T) {
	e := SimLogEntry{Tick: 42, Category: "gate", Key: "crossed", Value: "+3 -> size 8"}
	line := e.String()
	if !strings.HasPrefix(line, "[T=0042] gate") {
		t.Fatalf("tick should be zero-padded to four digits: %q", line)
	}
	if !strings.HasSuffix(line, "+3 -> size 8") {
		t.Fatalf("detail should close the line: %q", line)
	}
}

func TestSimLog_NilSafe(t *testing.T) {
	var sl *SimLog
	sl.Add(1, "gate", "crossed", "ok", 0) // must not panic
	if sl.Verbose() {
		t.Fatal("nil log is never verbose")
	}
	if sl.Entries() != nil {
		t.Fatal("nil log has no entries")
	}
}

func TestSimLog_DumpOneLinePerEntry(t *testing.T) {
	sl := NewSimLog(false)
	sl.Add(1, "fire", "volley", "5 shots", 5)
	sl.Add(2, "fire", "volley", "5 shots", 5)
	if got := strings.Count(sl.Dump(), "\n"); got != 2 {
		t.Fatalf("2 lines expected, got %d", got)
	}
}

func TestSimLog_VerboseSessionEntries(t *testing.T) {
	tr := NewTestRun(WithSeed(1), WithVerbose(), WithEmptyCorridor())
	tr.RunTicks(30)
	if tr.Log.Count("session", "state") != 30 {
		t.Fatalf("verbose mode records one state line per tick, got %d",
			tr.Log.Count("session", "state"))
	}
}
