package sat

import "fmt"

// Literal is a dense, signed index over a boolean variable: the positive and
// negative literal of a given variable occupy two adjacent slots so that
// arrays indexed by Literal (the value/watch arrays) never need a sign check.
type Literal int

// PositiveLiteral returns the literal asserting that variable v is true.
func PositiveLiteral(v int) Literal {
	return Literal(v << 1)
}

// NegativeLiteral returns the literal asserting that variable v is false.
func NegativeLiteral(v int) Literal {
	return Literal(v<<1 + 1)
}

// VarID returns the id of the variable this literal refers to.
func (l Literal) VarID() int {
	return int(l) >> 1
}

// IsPositive reports whether l asserts its variable (as opposed to its
// negation).
func (l Literal) IsPositive() bool {
	return l&1 == 0
}

// Opposite returns ¬l.
func (l Literal) Opposite() Literal {
	return l ^ 1
}

func (l Literal) String() string {
	if l.IsPositive() {
		return fmt.Sprintf("%d", l.VarID()+1)
	}
	return fmt.Sprintf("-%d", l.VarID()+1)
}
