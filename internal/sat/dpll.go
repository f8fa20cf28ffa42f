package sat

// DPLLSolver is the secondary solver described in spec §4.9: chronological
// backtracking with no conflict-driven learning, no restarts, and no VSIDS,
// sharing the same BCP/trail/watch machinery as Solver. On a conflict it
// first tries the opposite phase of the most recent decision; only once
// both phases of a level have failed does it give up that level and retry
// the one below.
type DPLLSolver struct {
	*engine

	// decisionLit and tried are parallel to trailLim: decisionLit[i] is the
	// literal decided when level i+1 was opened, tried[i] records whether
	// the opposite phase at that level has already been attempted.
	decisionLit []Literal
	tried       []bool

	unsat bool
}

// NewDPLLSolver returns an empty DPLL solver.
func NewDPLLSolver() *DPLLSolver {
	return &DPLLSolver{engine: newEngine()}
}

// AddVariable allocates a new boolean variable and returns its id.
func (d *DPLLSolver) AddVariable() int {
	return d.engine.AddVariable()
}

// AddClause adds an original clause, reporting false if the formula is
// thereby rendered trivially unsatisfiable, in which case every subsequent
// Solve call returns Unsatisfiable without search.
func (d *DPLLSolver) AddClause(literals []Literal) bool {
	_, ok := d.engine.AddClause(literals, Original)
	if !ok {
		d.unsat = true
	}
	return ok
}

// pickVar returns the first unassigned variable in declaration order (spec
// §4.9: "simple first-unassigned ... heuristic").
func (d *DPLLSolver) pickVar() (int, bool) {
	for v := 0; v < d.NumVariables(); v++ {
		if d.VarValue(v) == Unassigned {
			return v, true
		}
	}
	return 0, false
}

// decide opens a new decision level with lit as the chosen literal.
func (d *DPLLSolver) decide(lit Literal) {
	d.beginDecisionLevel()
	d.decisionLit = append(d.decisionLit, lit)
	d.tried = append(d.tried, false)
	d.enqueue(lit, NoClause)
}

// backtrackTo undoes every assignment back to decision level target,
// truncating the chronological decision/tried bookkeeping alongside the
// engine's own trail and trail_lim.
func (d *DPLLSolver) backtrackTo(target int) {
	d.backtrack(target, nil)
	d.decisionLit = d.decisionLit[:target]
	d.tried = d.tried[:target]
}

// resolveConflict implements the chronological recovery of spec §4.9. It
// reports false once there is no level left to backtrack to, meaning the
// formula is unsatisfiable.
func (d *DPLLSolver) resolveConflict() bool {
	for d.decisionLevel() > 0 {
		top := d.decisionLevel() - 1
		if !d.tried[top] {
			lit := d.decisionLit[top]
			d.backtrackTo(top)
			d.decide(lit.Opposite())
			d.tried[top] = true
			return true
		}
		d.backtrackTo(top)
	}
	return false
}

// Solve runs chronological DPLL to completion.
func (d *DPLLSolver) Solve() Result {
	if d.unsat {
		return Unsatisfiable
	}
	if conflict := d.propagate(); conflict != NoClause {
		return Unsatisfiable
	}

	for {
		v, ok := d.pickVar()
		if !ok {
			return Satisfiable
		}
		d.decide(PositiveLiteral(v))

		for {
			conflict := d.propagate()
			if conflict == NoClause {
				break
			}
			if !d.resolveConflict() {
				return Unsatisfiable
			}
		}
	}
}

// Model returns the last complete assignment found by a Satisfiable Solve
// call.
func (d *DPLLSolver) Model() []bool {
	return d.snapshotModel()
}

// Reset undoes every decision made by the last Solve call, returning the
// solver to decision level 0 so a further Original AddClause is legal
// again.
func (d *DPLLSolver) Reset() {
	d.backtrackTo(0)
}
