package sat

// watcher is one entry in a literal's watch list: the clause to wake up when
// the watched literal becomes false, plus a blocker literal used to skip
// clauses that are already satisfied without touching the clause body.
type watcher struct {
	clause  ClauseID
	blocker Literal
}

// watchIndex holds, for every literal, the list of clauses currently
// watching it. A clause of length >= 2 appears exactly once in each of the
// watch lists of its first two literals (spec invariant, §4.1).
type watchIndex struct {
	lists [][]watcher
}

// expand grows the index by one variable's worth of literal slots (two: the
// positive and negative literal).
func (w *watchIndex) expand() {
	w.lists = append(w.lists, nil, nil)
}

func (w *watchIndex) watch(l Literal, c ClauseID, blocker Literal) {
	w.lists[l] = append(w.lists[l], watcher{clause: c, blocker: blocker})
}

// unwatch removes clause c from l's watch list. Used when a clause is
// deleted; propagation itself never needs this since it compacts watch
// lists in place as it scans them.
func (w *watchIndex) unwatch(l Literal, c ClauseID) {
	list := w.lists[l]
	j := 0
	for i := range list {
		if list[i].clause != c {
			list[j] = list[i]
			j++
		}
	}
	w.lists[l] = list[:j]
}
