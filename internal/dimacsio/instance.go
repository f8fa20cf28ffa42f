// Package dimacsio reads DIMACS CNF files (and their companion model files)
// and loads them into a solver, following the builder pattern the wider
// example ecosystem uses around github.com/rhartert/dimacs.
package dimacsio

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rhartert/dimacs"

	"github.com/wrenfield/satcore/internal/sat"
)

// Instance is a fully parsed CNF formula, kept around after loading so a
// caller can report variable/clause counts without re-reading the file.
type Instance struct {
	Variables int
	Clauses   [][]sat.Literal
}

// Solver is the subset of the solver API needed to load an Instance.
type Solver interface {
	AddVariable() int
	AddClause(literals []sat.Literal) bool
}

func open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return readCloser{Reader: gz, under: f}, nil
	}
	return f, nil
}

// readCloser closes both the gzip stream and the underlying file.
type readCloser struct {
	io.Reader
	under io.Closer
}

func (r readCloser) Close() error { return r.under.Close() }

// Parse reads a DIMACS CNF file (transparently gzip-decompressed when the
// path ends in .gz) into an in-memory Instance.
func Parse(path string) (*Instance, error) {
	r, err := open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open instance %q: %w", path, err)
	}
	defer r.Close()

	inst := &Instance{}
	if err := dimacs.ReadBuilder(r, (*instanceBuilder)(inst)); err != nil {
		return nil, fmt.Errorf("could not parse instance %q: %w", path, err)
	}
	return inst, nil
}

type instanceBuilder Instance

func (b *instanceBuilder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("unsupported problem type %q", problem)
	}
	b.Variables = nVars
	b.Clauses = make([][]sat.Literal, 0, nClauses)
	return nil
}

func (b *instanceBuilder) Clause(tmp []int) error {
	clause := make([]sat.Literal, len(tmp))
	for i, l := range tmp {
		if l < 0 {
			clause[i] = sat.NegativeLiteral(-l - 1)
		} else {
			clause[i] = sat.PositiveLiteral(l - 1)
		}
	}
	b.Clauses = append(b.Clauses, clause)
	return nil
}

func (b *instanceBuilder) Comment(string) error { return nil }

// Instantiate loads every variable and clause of inst into s. It reports
// false if the formula is rendered trivially unsatisfiable while loading,
// mirroring Solver.AddClause's own return value.
func Instantiate(s Solver, inst *Instance) bool {
	for i := 0; i < inst.Variables; i++ {
		s.AddVariable()
	}
	ok := true
	for _, clause := range inst.Clauses {
		if !s.AddClause(clause) {
			ok = false
		}
	}
	return ok
}

// ParseModels reads a model file: one satisfying assignment per line, each a
// whitespace-separated list of signed 1-based literals terminated by 0,
// listed in variable order (only each literal's sign is used).
func ParseModels(path string) ([][]bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	mb := &modelBuilder{}
	if err := dimacs.ReadBuilder(f, mb); err != nil {
		return nil, fmt.Errorf("could not parse model file %q: %w", path, err)
	}
	return mb.models, nil
}

type modelBuilder struct {
	models [][]bool
}

func (b *modelBuilder) Problem(string, int, int) error {
	return fmt.Errorf("model files must not contain a problem line")
}

func (b *modelBuilder) Comment(string) error { return nil }

func (b *modelBuilder) Clause(tmp []int) error {
	model := make([]bool, len(tmp))
	for i, l := range tmp {
		model[i] = l > 0
	}
	b.models = append(b.models, model)
	return nil
}
