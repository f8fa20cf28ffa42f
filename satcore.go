// Package satcore is the public facade over the SAT engine: parsing DIMACS
// instances and dispatching to one of the named solver configurations.
package satcore

import (
	"fmt"

	"github.com/wrenfield/satcore/internal/dimacsio"
	"github.com/wrenfield/satcore/internal/sat"
)

// Instance is a parsed CNF formula.
type Instance = dimacsio.Instance

// Parse reads a DIMACS CNF file (gzip-decompressed transparently when the
// path ends in .gz) into an Instance.
func Parse(path string) (*Instance, error) {
	return dimacsio.Parse(path)
}

// Configuration names one of the four solver setups this package ships.
type Configuration string

const (
	DPLL          Configuration = "dpll"
	CDCLBasic     Configuration = "cdcl_basic"
	CDCLVSIDS     Configuration = "cdcl_vsids"
	CDCLVSIDSLuby Configuration = "cdcl_vsids_luby"
)

// Configurations lists every named configuration.
var Configurations = []Configuration{DPLL, CDCLBasic, CDCLVSIDS, CDCLVSIDSLuby}

func (c Configuration) options() (sat.Options, bool) {
	switch c {
	case CDCLBasic:
		opts := sat.DefaultOptions
		opts.VSIDS, opts.Restarts = false, false
		return opts, true
	case CDCLVSIDS:
		opts := sat.DefaultOptions
		opts.VSIDS, opts.Restarts = true, false
		return opts, true
	case CDCLVSIDSLuby:
		return sat.DefaultOptions, true
	default:
		return sat.Options{}, false
	}
}

// Result is the outcome of a Solve call.
type Result = sat.Result

const (
	Unknown       = sat.Unknown
	Satisfiable   = sat.Satisfiable
	Unsatisfiable = sat.Unsatisfiable
)

// solver is the common surface both search drivers expose to this package.
type solver interface {
	AddVariable() int
	AddClause([]sat.Literal) bool
	Solve() sat.Result
	Model() []bool
	Reset()
}

// NewSolver builds an empty, unloaded solver for the named configuration.
func NewSolver(cfg Configuration) (solver, error) {
	if cfg == DPLL {
		return sat.NewDPLLSolver(), nil
	}
	opts, ok := cfg.options()
	if !ok {
		return nil, fmt.Errorf("satcore: unknown configuration %q", cfg)
	}
	return sat.NewSolver(opts), nil
}

// Solve parses nothing itself: it loads inst into a fresh solver of the
// given configuration and runs it to completion (or to whatever limit opts
// carries, for the CDCL configurations). It returns the outcome and, when
// Satisfiable, the satisfying assignment.
func Solve(inst *Instance, cfg Configuration) (Result, []bool, error) {
	s, err := NewSolver(cfg)
	if err != nil {
		return Unknown, nil, err
	}
	dimacsio.Instantiate(s, inst)

	result := s.Solve()
	if result != Satisfiable {
		return result, nil, nil
	}
	return result, s.Model(), nil
}

// SolveFile is the one-call convenience wrapping Parse and Solve.
func SolveFile(path string, cfg Configuration) (Result, []bool, error) {
	inst, err := Parse(path)
	if err != nil {
		return Unknown, nil, err
	}
	return Solve(inst, cfg)
}

// SolveAll enumerates every satisfying model of inst, in the order the
// configured solver finds them, by solving repeatedly and adding a
// blocking clause ruling out the previous model until the search reports
// Unsatisfiable. It is a facade convenience, not part of the core
// single-call contract: callers who only need one model should use Solve.
func SolveAll(inst *Instance, cfg Configuration) ([][]bool, error) {
	s, err := NewSolver(cfg)
	if err != nil {
		return nil, err
	}
	dimacsio.Instantiate(s, inst)

	var models [][]bool
	for {
		result := s.Solve()
		if result != Satisfiable {
			return models, nil
		}
		model := s.Model()
		models = append(models, model)

		s.Reset()
		block := make([]sat.Literal, len(model))
		for v, val := range model {
			if val {
				block[v] = sat.NegativeLiteral(v)
			} else {
				block[v] = sat.PositiveLiteral(v)
			}
		}
		if !s.AddClause(block) {
			return models, nil
		}
	}
}
