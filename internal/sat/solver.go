package sat

import (
	"fmt"
	"time"

	"github.com/wrenfield/satcore/internal/heap"
)

// Result is the outcome of a solve attempt.
type Result int8

const (
	Unknown Result = iota
	Satisfiable
	Unsatisfiable
)

func (r Result) String() string {
	switch r {
	case Satisfiable:
		return "SAT"
	case Unsatisfiable:
		return "UNSAT"
	default:
		return "UNKNOWN"
	}
}

// Options configures one CDCL solve. The three CDCL configurations named in
// spec §6 (cdcl_basic, cdcl_vsids, cdcl_vsids_luby) are obtained by
// toggling VSIDS and Restarts; dpll uses the separate DPLLSolver instead.
// See the facade in the root satcore package.
type Options struct {
	VSIDS    bool
	Restarts bool

	VarDecay    float64
	ClauseDecay float64

	MaxConflicts int64         // <0 disables the limit
	Timeout      time.Duration // <=0 disables the limit
}

// DefaultOptions is the fully-featured configuration (cdcl_vsids_luby).
var DefaultOptions = Options{
	VSIDS:        true,
	Restarts:     true,
	VarDecay:     0.95,
	ClauseDecay:  0.999,
	MaxConflicts: -1,
	Timeout:      -1,
}

// Stats reports search progress, mirroring the counters the teacher's
// driver prints during a solve.
type Stats struct {
	Conflicts  int64
	Restarts   int64
	Decisions  int64
	Iterations int64

	// LearnedSizeAvg is the exponential moving average of learned-clause
	// size, a progress signal: shrinking values mean recent conflicts are
	// producing short (good) clauses, growing values mean long ones.
	LearnedSizeAvg float64
}

// Solver is a Conflict-Driven Clause-Learning SAT solver built on
// two-watched-literal BCP (internal/sat/propagate.go), 1-UIP conflict
// analysis with non-chronological backjumping (analyze.go), VSIDS
// branching with phase saving, and Luby-scheduled restarts with
// learned-clause database reduction. VSIDS and restarts can be disabled via
// Options, which is how cdcl_basic/cdcl_vsids/cdcl_vsids_luby share this
// one implementation; conflict analysis, clause learning and database
// reduction run in every configuration.
type Solver struct {
	*engine

	useVSIDS bool
	heapV    *heap.VSIDS
	activity []float64
	varInc   float64
	varDecay float64

	clauseInc   float64
	clauseDecay float64
	learned     []ClauseID

	restart restartPolicy

	seen     seenSet
	learnBuf []Literal

	conflicts      int64
	nextReduce     int64
	learnedSizeEMA ema

	unsat bool

	maxConflicts int64
	timeout      time.Duration
	startTime    time.Time

	Stats Stats
}

// NewSolver returns an empty solver (no variables, no clauses) configured
// by ops. Call AddVariable and AddClause to build the instance, then Solve.
func NewSolver(ops Options) *Solver {
	s := &Solver{
		engine:         newEngine(),
		useVSIDS:       ops.VSIDS,
		varInc:         1,
		varDecay:       ops.VarDecay,
		clauseInc:      1,
		clauseDecay:    ops.ClauseDecay,
		restart:        newRestartPolicy(ops.Restarts),
		maxConflicts:   ops.MaxConflicts,
		timeout:        ops.Timeout,
		learnedSizeEMA: newEMA(0.999),
		nextReduce:     reduceInterval,
	}
	if s.useVSIDS {
		s.heapV = heap.New(0)
	}
	return s
}

// NewDefaultSolver returns a solver using DefaultOptions.
func NewDefaultSolver() *Solver {
	return NewSolver(DefaultOptions)
}

// AddVariable allocates a new boolean variable and returns its id.
func (s *Solver) AddVariable() int {
	v := s.engine.AddVariable()
	s.activity = append(s.activity, 0)
	s.seen.expand()
	if s.useVSIDS {
		s.heapV.Grow()
		s.heapV.Insert(v, 0)
	}
	return v
}

// AddClause adds an original clause. It returns false if the clause (after
// simplification) renders the formula trivially unsatisfiable, in which
// case every subsequent Solve call returns Unsatisfiable without search.
func (s *Solver) AddClause(literals []Literal) bool {
	_, ok := s.engine.AddClause(literals, Original)
	if !ok {
		s.unsat = true
	}
	return ok
}

func (s *Solver) bumpVarActivity(v int) {
	s.activity[v] += s.varInc
	if s.activity[v] > 1e100 {
		for i := range s.activity {
			s.activity[i] *= 1e-100
		}
		s.varInc *= 1e-100
	}
	if s.useVSIDS {
		s.heapV.Update(v, s.activity[v])
	}
}

func (s *Solver) decayVarActivity() {
	s.varInc /= s.varDecay
}

func (s *Solver) onUnassign(v int) {
	if s.useVSIDS {
		s.heapV.Insert(v, s.activity[v])
	}
}

// pickBranchingVar implements spec §4.3's picker: pop the heap's max
// repeatedly, skipping already-assigned variables (lazy deletion), when
// VSIDS is enabled; otherwise fall back to the first unassigned variable in
// declaration order.
func (s *Solver) pickBranchingVar() (int, bool) {
	if s.useVSIDS {
		for {
			v, ok := s.heapV.RemoveMax()
			if !ok {
				return 0, false
			}
			if s.VarValue(v) == Unassigned {
				return v, true
			}
		}
	}
	for v := 0; v < s.NumVariables(); v++ {
		if s.VarValue(v) == Unassigned {
			return v, true
		}
	}
	return 0, false
}

func (s *Solver) pastDeadline() bool {
	if s.maxConflicts >= 0 && s.conflicts >= s.maxConflicts {
		return true
	}
	if s.timeout > 0 && time.Since(s.startTime) >= s.timeout {
		return true
	}
	return false
}

// Solve runs the CDCL search loop (spec §4.8) to completion, to the
// configured conflict/timeout limit, or to Unknown if the limit is hit
// first. Level-0 conflicts, including ones detected while adding clauses,
// are reported as Unsatisfiable without entering the loop.
func (s *Solver) Solve() Result {
	if s.unsat {
		return Unsatisfiable
	}

	s.startTime = time.Now()

	if conflict := s.propagate(); conflict != NoClause {
		s.unsat = true
		return Unsatisfiable
	}

	for {
		s.Stats.Iterations++

		if conflict := s.propagate(); conflict != NoClause {
			s.conflicts++
			s.Stats.Conflicts++

			if s.decisionLevel() == 0 {
				s.unsat = true
				return Unsatisfiable
			}

			learned, backjumpLevel := s.analyze(conflict)
			s.backtrack(backjumpLevel, s.onUnassign)

			if len(learned) == 1 {
				s.enqueue(learned[0], NoClause)
			} else {
				id, ok := s.engine.AddClause(learned, Learned)
				if !ok {
					s.invariantf("learned clause simplified to empty/conflicting")
				}
				s.learned = append(s.learned, id)
				s.enqueue(learned[0], id)
			}
			s.learnedSizeEMA.add(float64(len(learned)))
			s.Stats.LearnedSizeAvg = s.learnedSizeEMA.get()

			s.decayClauseActivity()
			s.decayVarActivity()

			if s.restart.afterConflict() {
				s.Stats.Restarts++
				s.backtrack(0, s.onUnassign)
			}

			if s.reduceDBDue() {
				s.reduceDB()
			}

			continue
		}

		if s.pastDeadline() {
			return Unknown
		}

		v, ok := s.pickBranchingVar()
		if !ok {
			return Satisfiable
		}
		s.Stats.Decisions++
		s.beginDecisionLevel()
		s.enqueue(s.savedPhase(v), NoClause)
	}
}

// Model returns the last complete assignment found by a Satisfiable Solve
// call, one entry per variable in declaration order. Variables that never
// appear in any clause are reported as true (spec §9 open question a).
func (s *Solver) Model() []bool {
	return s.snapshotModel()
}

// Reset undoes every decision made by the last Solve call, returning the
// solver to decision level 0 so a further Original AddClause (e.g. a model-
// blocking clause, as SolveAll's enumeration loop needs) is legal again.
func (s *Solver) Reset() {
	s.backtrack(0, s.onUnassign)
}

func (s *Solver) String() string {
	return fmt.Sprintf("Solver{vars=%d clauses=%d learned=%d conflicts=%d learnedSizeAvg=%.2f}",
		s.NumVariables(), s.clauses.Len(), len(s.learned), s.conflicts, s.learnedSizeEMA.get())
}
