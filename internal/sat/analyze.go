package sat

// analyze performs first unique-implication-point conflict analysis
// (spec §4.4): starting from the conflicting clause it walks the trail
// backward, resolving away literals assigned at the current decision level
// (literals from lower levels go straight into the learned clause), until
// exactly one literal of the current level — the 1-UIP — remains. It returns the resulting asserting learned clause
// (position 0 holds the asserting literal) and the level to backjump to.
func (s *Solver) analyze(conflict ClauseID) ([]Literal, int) {
	s.seen.Clear()
	s.learnBuf = append(s.learnBuf[:0], 0) // slot 0 reserved for the UIP

	pending := 0 // literals of the current level still to resolve
	cursor := len(s.trail) - 1
	reasonID := conflict
	fromConflict := true

	var pivotVar int
	var pivot Literal

	for {
		for _, lit := range s.reasonLiterals(reasonID, fromConflict) {
			v := lit.VarID()
			if s.seen.Contains(v) {
				continue
			}
			s.seen.Mark(v)
			s.bumpVarActivity(v)

			if s.level[v] == s.decisionLevel() {
				pending++
				continue
			}
			s.learnBuf = append(s.learnBuf, lit)
		}
		if reasonID != NoClause {
			s.bumpClauseActivity(reasonID)
		}
		fromConflict = false

		// Walk the trail backward to the next literal already marked seen;
		// that is the next pivot to resolve on (or the 1-UIP itself).
		for {
			pivot = s.trail[cursor]
			cursor--
			pivotVar = pivot.VarID()
			if s.seen.Contains(pivotVar) {
				break
			}
		}

		pending--
		if pending == 0 {
			break
		}
		reasonID = s.reason[pivotVar]
	}

	s.learnBuf[0] = pivot.Opposite()

	backjump := 0
	if len(s.learnBuf) >= 2 {
		moveMaxLevelToSecond(s.engine, s.learnBuf)
		backjump = s.level[s.learnBuf[1].VarID()]
	}

	learned := make([]Literal, len(s.learnBuf))
	copy(learned, s.learnBuf)
	return learned, backjump
}

// reasonLiterals returns the literals of clause id that participate in
// resolution. The conflicting clause contributes every literal; any other
// reason clause contributes everything but position 0, which holds the
// literal this clause forced (already marked seen by the time its reason is
// visited, since it was selected as the current pivot).
func (s *Solver) reasonLiterals(id ClauseID, conflictClause bool) []Literal {
	lits := s.clauses.Lits(id)
	if conflictClause {
		return lits
	}
	return lits[1:]
}
