package sat

import "fmt"

// engine holds the BCP, trail, and clause/watch machinery shared by the
// CDCL search driver and the chronological DPLL variant (spec: "DPLL ...
// shares BCP, watches, and enqueue/backtrack semantics").
type engine struct {
	clauses clauseStore
	watches watchIndex

	value  []LBool    // indexed by Literal
	level  []int      // indexed by variable id, valid only while assigned
	reason []ClauseID // indexed by variable id
	phase  []bool     // indexed by variable id, last-assigned polarity

	trail    []Literal
	trailLim []int
	qhead    int
}

func newEngine() *engine {
	return &engine{}
}

// AddVariable allocates one more boolean variable and returns its id.
func (e *engine) AddVariable() int {
	v := e.NumVariables()
	e.value = append(e.value, Unassigned, Unassigned)
	e.level = append(e.level, -1)
	e.reason = append(e.reason, NoClause)
	e.phase = append(e.phase, true) // default initial phase: True
	e.watches.expand()
	return v
}

func (e *engine) NumVariables() int { return len(e.phase) }

func (e *engine) NumAssigned() int { return len(e.trail) }

func (e *engine) decisionLevel() int { return len(e.trailLim) }

func (e *engine) LitValue(l Literal) LBool { return e.value[l] }

func (e *engine) VarValue(v int) LBool { return e.value[PositiveLiteral(v)] }

func (e *engine) VarLevel(v int) int { return e.level[v] }

func (e *engine) VarReason(v int) ClauseID { return e.reason[v] }

// savedPhase returns the literal of variable v matching its last-assigned
// (or default) polarity.
func (e *engine) savedPhase(v int) Literal {
	if e.phase[v] {
		return PositiveLiteral(v)
	}
	return NegativeLiteral(v)
}

// enqueue records l as assigned True with the given antecedent, or reports a
// conflict if l is already falsified. Enqueuing an already-true literal is a
// no-op success, matching the BCP description in spec §4.2 step 6.
func (e *engine) enqueue(l Literal, reason ClauseID) bool {
	switch e.LitValue(l) {
	case False:
		return false
	case True:
		return true
	default:
		v := l.VarID()
		e.value[l] = True
		e.value[l.Opposite()] = False
		e.level[v] = e.decisionLevel()
		e.reason[v] = reason
		e.trail = append(e.trail, l)
		return true
	}
}

// beginDecisionLevel opens a new decision level on top of the current trail.
func (e *engine) beginDecisionLevel() {
	e.trailLim = append(e.trailLim, len(e.trail))
}

// unassignHook is invoked for every variable undone by backtrack, in trail
// (most-recent-first) order, so that callers can fold in bookkeeping such as
// VSIDS heap reinsertion without the engine depending on the heap type.
type unassignHook func(varID int)

// backtrack undoes every assignment made at a decision level above target,
// restoring the saved phase of each undone variable (spec §4.6).
func (e *engine) backtrack(target int, onUnassign unassignHook) {
	for e.decisionLevel() > target {
		start := e.trailLim[len(e.trailLim)-1]
		for i := len(e.trail) - 1; i >= start; i-- {
			l := e.trail[i]
			v := l.VarID()
			e.phase[v] = l.IsPositive()
			e.value[l] = Unassigned
			e.value[l.Opposite()] = Unassigned
			e.reason[v] = NoClause
			e.level[v] = -1
			if onUnassign != nil {
				onUnassign(v)
			}
		}
		e.trail = e.trail[:start]
		e.trailLim = e.trailLim[:len(e.trailLim)-1]
	}
	e.qhead = len(e.trail)
}

// AddClause normalizes and stores a clause: duplicate literals are dropped,
// tautologies and root-level-satisfied clauses are discarded, and literals
// already falsified at the root are stripped (spec §9 open questions a-c).
// Original clauses must only be added at decision level 0; learned clauses
// are stored as given, at the current level. It returns false if the
// clause (after simplification) is empty or immediately conflicting, which
// means the formula is unsatisfiable.
func (e *engine) AddClause(literals []Literal, origin Origin) (ClauseID, bool) {
	lits := literals
	if origin == Original {
		if e.decisionLevel() != 0 {
			panic("sat: original clauses can only be added at the root level")
		}
		var trivial bool
		lits, trivial = simplifyRootClause(e, literals)
		if trivial {
			return NoClause, true
		}
	}

	switch len(lits) {
	case 0:
		return NoClause, false
	case 1:
		return NoClause, e.enqueue(lits[0], NoClause)
	default:
		id := e.clauses.Add(lits, origin)
		body := e.clauses.Lits(id)
		// Learned clauses already arrive with the max-level literal at
		// position 1: analyze() (analyze.go) places it there itself, since
		// it needs that literal's level to compute the backjump target.
		e.watches.watch(body[0], id, body[1])
		e.watches.watch(body[1], id, body[0])
		return id, true
	}
}

// simplifyRootClause implements spec §9's open-question decisions: drop
// duplicate literals, discard tautological clauses, and strip/short-circuit
// on literals already assigned at the root.
func simplifyRootClause(e *engine, literals []Literal) ([]Literal, bool) {
	seen := make(map[Literal]struct{}, len(literals))
	out := make([]Literal, 0, len(literals))
	for _, l := range literals {
		if _, dup := seen[l]; dup {
			continue
		}
		if _, opp := seen[l.Opposite()]; opp {
			return nil, true // tautology: always satisfied
		}
		seen[l] = struct{}{}

		switch e.LitValue(l) {
		case True:
			return nil, true // clause already satisfied at the root
		case False:
			continue // drop: can never be satisfied by this literal
		}
		out = append(out, l)
	}
	return out, false
}

// moveMaxLevelToSecond swaps the literal assigned at the highest decision
// level into position 1 of a freshly learned clause, so that position 1 (and
// not necessarily the original resolution order) names the backjump target.
func moveMaxLevelToSecond(e *engine, lits []Literal) {
	maxLevel, at := -1, 1
	for i := 1; i < len(lits); i++ {
		if lvl := e.level[lits[i].VarID()]; lvl > maxLevel {
			maxLevel, at = lvl, i
		}
	}
	lits[1], lits[at] = lits[at], lits[1]
}

// snapshotModel returns one boolean per variable in declaration order.
// Both search drivers decide every variable before reporting Satisfiable,
// so variables that never occur in any clause are decided with their
// default True phase; any variable still Unassigned is reported as true.
func (e *engine) snapshotModel() []bool {
	model := make([]bool, e.NumVariables())
	for v := range model {
		model[v] = e.VarValue(v) != False
	}
	return model
}

func (e *engine) invariantf(format string, args ...any) {
	panic(fmt.Sprintf("sat: internal invariant violation: "+format, args...))
}
