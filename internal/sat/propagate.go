package sat

// propagate drains trail[qhead:], deriving every literal forced by a clause
// with at most one remaining unassigned literal under the current partial
// assignment. It returns the id of the first clause found falsified by the
// assignment, or NoClause if propagation completes without conflict.
//
// Watch lists are keyed by the watched literal itself: a clause watching
// literal w is woken up when w is falsified, i.e. when trail literal p =
// ¬w is pushed. Each watch list is compacted in place with a read index i
// and a write index j as it is scanned (spec §4.2); j never runs ahead of
// i, so the rewrite is safe without a temporary copy.
func (e *engine) propagate() ClauseID {
	for e.qhead < len(e.trail) {
		p := e.trail[e.qhead]
		e.qhead++

		w := p.Opposite() // the literal whose watchers must be re-examined
		list := e.watches.lists[w]
		n := len(list)

		conflict := NoClause
		i, j := 0, 0
		for ; i < n; i++ {
			wch := list[i]

			if e.clauses.Deleted(wch.clause) {
				continue // drop the stale entry, do not copy it forward
			}

			if e.LitValue(wch.blocker) == True {
				list[j] = wch
				j++
				continue
			}

			lits := e.clauses.Lits(wch.clause)
			if lits[0] == w {
				lits[0], lits[1] = lits[1], lits[0]
			}

			if e.LitValue(lits[0]) == True {
				list[j] = watcher{clause: wch.clause, blocker: lits[0]}
				j++
				continue
			}

			moved := false
			for k := 2; k < len(lits); k++ {
				if e.LitValue(lits[k]) != False {
					lits[1], lits[k] = lits[k], lits[1]
					e.watches.watch(lits[1], wch.clause, lits[0])
					moved = true
					break
				}
			}
			if moved {
				continue // filed under the new watched literal, not this list
			}

			// Clause is unit or conflicting: keep the watcher under this key.
			list[j] = wch
			j++
			if e.LitValue(lits[0]) == False {
				conflict = wch.clause
				i++
				for ; i < n; i++ {
					list[j] = list[i]
					j++
				}
				break
			}
			e.enqueue(lits[0], wch.clause)
		}

		e.watches.lists[w] = list[:j]

		if conflict != NoClause {
			return conflict
		}
	}
	return NoClause
}
