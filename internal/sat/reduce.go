package sat

import "sort"

// bumpClauseActivity increases c's activity by the current increment and
// rescales the whole learned database if any clause's activity overflows
// the threshold, preserving relative ordering between clauses (spec §4.5).
func (s *Solver) bumpClauseActivity(id ClauseID) {
	s.clauses.BumpActivity(id, s.clauseInc)
	if s.clauses.Activity(id) > 1e20 {
		s.clauses.RescaleActivities(1e-20)
		s.clauseInc *= 1e-20
	}
}

// decayClauseActivity grows the increment used by future bumps, called
// once per conflict (spec §4.5: "clause_inc grows with a separate decay").
func (s *Solver) decayClauseActivity() {
	s.clauseInc /= s.clauseDecay
}

// reduceDBDue reports whether the conflict count has reached the next
// scheduled learned-clause database reduction (spec §4.5: first trigger at
// K=2000 conflicts, constant interval thereafter).
func (s *Solver) reduceDBDue() bool {
	return s.conflicts >= s.nextReduce
}

// reduceInterval is both the first trigger point and the constant spacing
// between later ones (spec §4.5).
const reduceInterval = 2000

func (s *Solver) scheduleNextReduce() {
	s.nextReduce += reduceInterval
}

// reduceDB deletes the lower (by activity) half of non-locked learned
// clauses of length > 2, as scheduled by scheduleNextReduce. A clause is
// locked if it is still the reason of an assigned variable and must never
// be deleted while it could be needed to justify that assignment (spec
// §4.5, §8 "reason-lock safety").
func (s *Solver) reduceDB() {
	candidates := make([]ClauseID, 0, len(s.learned))
	for _, id := range s.learned {
		if s.clauses.Deleted(id) {
			continue
		}
		if len(s.clauses.Lits(id)) <= 2 {
			continue
		}
		if s.locked(id) {
			continue
		}
		candidates = append(candidates, id)
	}

	sort.Slice(candidates, func(i, j int) bool {
		return s.clauses.Activity(candidates[i]) < s.clauses.Activity(candidates[j])
	})

	cut := len(candidates) / 2
	toDelete := make(map[ClauseID]bool, cut)
	for _, id := range candidates[:cut] {
		s.deleteClause(id)
		toDelete[id] = true
	}

	kept := s.learned[:0]
	for _, id := range s.learned {
		if !toDelete[id] && !s.clauses.Deleted(id) {
			kept = append(kept, id)
		}
	}
	s.learned = kept

	s.scheduleNextReduce()
}

// locked reports whether clause id is currently the reason of its first
// literal's variable and that variable is assigned, i.e. deleting it would
// leave a trail entry without a valid antecedent.
func (s *Solver) locked(id ClauseID) bool {
	lits := s.clauses.Lits(id)
	v := lits[0].VarID()
	return s.VarValue(v) != Unassigned && s.reason[v] == id
}

func (s *Solver) deleteClause(id ClauseID) {
	lits := s.clauses.Lits(id)
	s.watches.unwatch(lits[0], id)
	s.watches.unwatch(lits[1], id)
	s.clauses.MarkDeleted(id)
}
