package sat

import "fmt"

// CheckWatchInvariant verifies, for every non-deleted clause of length >= 2,
// that both of its watched literals (positions 0 and 1) appear in their
// respective watch lists, and that either one of them is currently True or
// both are Unassigned (spec §8, "Watch invariant"). It is meant to be called
// from property tests after a successful propagate(), never from the search
// loop itself.
func (e *engine) CheckWatchInvariant() error {
	for id := ClauseID(0); int(id) < e.clauses.Len(); id++ {
		if e.clauses.Deleted(id) {
			continue
		}
		lits := e.clauses.Lits(id)
		if len(lits) < 2 {
			continue
		}
		if !e.watches.watching(lits[0], id) {
			return fmt.Errorf("clause %d: literal %v does not watch it", id, lits[0])
		}
		if !e.watches.watching(lits[1], id) {
			return fmt.Errorf("clause %d: literal %v does not watch it", id, lits[1])
		}
		v0, v1 := e.LitValue(lits[0]), e.LitValue(lits[1])
		if v0 != True && v1 != True && !(v0 == Unassigned && v1 == Unassigned) {
			return fmt.Errorf("clause %d: watched literals %v=%s %v=%s violate the watch invariant",
				id, lits[0], v0, lits[1], v1)
		}
	}
	return nil
}

// CheckTrailMonotone verifies that assignment levels are non-decreasing
// along the trail (spec §8, "Trail-level monotonicity").
func (e *engine) CheckTrailMonotone() error {
	last := -1
	for _, l := range e.trail {
		lvl := e.level[l.VarID()]
		if lvl < last {
			return fmt.Errorf("trail level decreased: saw %d after %d", lvl, last)
		}
		last = lvl
	}
	return nil
}

// watching reports whether clause id appears in literal l's watch list.
func (w *watchIndex) watching(l Literal, c ClauseID) bool {
	for _, e := range w.lists[l] {
		if e.clause == c {
			return true
		}
	}
	return false
}
