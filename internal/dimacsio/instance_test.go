package dimacsio

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wrenfield/satcore/internal/sat"
)

var wantSmall = Instance{
	Variables: 3,
	Clauses: [][]sat.Literal{
		{sat.PositiveLiteral(0), sat.NegativeLiteral(1)},
		{sat.PositiveLiteral(1), sat.PositiveLiteral(2)},
	},
}

func TestParse_plain(t *testing.T) {
	got, err := Parse("testdata/small.cnf")
	if err != nil {
		t.Fatalf("Parse(): unexpected error: %s", err)
	}
	if diff := cmp.Diff(&wantSmall, got); diff != "" {
		t.Errorf("Parse(): mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_gzip(t *testing.T) {
	got, err := Parse("testdata/small.cnf.gz")
	if err != nil {
		t.Fatalf("Parse(): unexpected error: %s", err)
	}
	if diff := cmp.Diff(&wantSmall, got); diff != "" {
		t.Errorf("Parse(): mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_missingFile(t *testing.T) {
	if _, err := Parse("testdata/does-not-exist.cnf"); err == nil {
		t.Errorf("Parse(): want error, got none")
	}
}

type fakeSolver struct {
	vars    int
	clauses [][]sat.Literal
	fail    bool
}

func (f *fakeSolver) AddVariable() int {
	f.vars++
	return f.vars - 1
}

func (f *fakeSolver) AddClause(lits []sat.Literal) bool {
	f.clauses = append(f.clauses, lits)
	return !f.fail
}

func TestInstantiate(t *testing.T) {
	inst, err := Parse("testdata/small.cnf")
	if err != nil {
		t.Fatalf("Parse(): unexpected error: %s", err)
	}

	s := &fakeSolver{}
	ok := Instantiate(s, inst)

	if !ok {
		t.Errorf("Instantiate(): want true, got false")
	}
	if s.vars != inst.Variables {
		t.Errorf("Instantiate(): loaded %d variables, want %d", s.vars, inst.Variables)
	}
	if diff := cmp.Diff(inst.Clauses, s.clauses); diff != "" {
		t.Errorf("Instantiate(): clause mismatch (-want +got):\n%s", diff)
	}
}

func TestInstantiate_propagatesFailure(t *testing.T) {
	inst, err := Parse("testdata/small.cnf")
	if err != nil {
		t.Fatalf("Parse(): unexpected error: %s", err)
	}

	s := &fakeSolver{fail: true}
	if ok := Instantiate(s, inst); ok {
		t.Errorf("Instantiate(): want false when AddClause fails, got true")
	}
}

func TestParseModels(t *testing.T) {
	got, err := ParseModels("testdata/small.models")
	if err != nil {
		t.Fatalf("ParseModels(): unexpected error: %s", err)
	}
	want := [][]bool{
		{true, false, true},
		{false, true, true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseModels(): mismatch (-want +got):\n%s", diff)
	}
}
