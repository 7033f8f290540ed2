package core

import "fmt"

// Kind tags a LiteralSet as an implicit conjunction (Cube) or an
// implicit disjunction (Clause). There is deliberately one LiteralSet
// type rather than two (Cube/Clause) subclasses: Invert swaps Kind in
// place, which is exactly De Morgan duality and would otherwise require
// crossing a class boundary.
type Kind int

const (
	// Cube denotes an implicit conjunction (∧) of its member literals.
	Cube Kind = iota
	// Clause denotes an implicit disjunction (∨) of its member literals.
	Clause
)

// String renders the Kind for diagnostics.
func (k Kind) String() string {
	if k == Cube {
		return "cube"
	}
	return "clause"
}

// Literal is a triple (variable, value, polarity). A positive literal
// (v, d, true) asserts v = d; a negative literal (v, d, false) asserts
// v ≠ d. Name is an optional display string used only for diagnostics —
// it never participates in equality, ordering, or hashing.
type Literal struct {
	Var      int
	Val      int
	Positive bool
	Name     string
}

// literalKey is the equality/ordering/hash projection of a Literal: the
// (variable, value, polarity) triple, explicitly excluding Name.
type literalKey struct {
	variable int
	value    int
	positive bool
}

func (l Literal) key() literalKey {
	return literalKey{variable: l.Var, value: l.Val, positive: l.Positive}
}

// NewLiteral constructs a Literal directly from its (variable, value,
// polarity) triple, with an optional display name for diagnostics.
func NewLiteral(variable, value int, positive bool, name string) Literal {
	return Literal{Var: variable, Val: value, Positive: positive, Name: name}
}

// Equal reports whether two literals denote the same (variable, value,
// polarity) triple, ignoring Name.
func (l Literal) Equal(o Literal) bool {
	return l.key() == o.key()
}

// Less orders literals by (Var, Val, Positive), matching the reference
// implementation's std::set<Literal> ordering.
func (l Literal) Less(o Literal) bool {
	if l.Var != o.Var {
		return l.Var < o.Var
	}
	if l.Val != o.Val {
		return l.Val < o.Val
	}
	// false < true, so the negative literal sorts before the positive one.
	return !l.Positive && o.Positive
}

// Invert flips polarity, returning (v, d, ¬polarity).
func (l Literal) Invert() Literal {
	return Literal{Var: l.Var, Val: l.Val, Positive: !l.Positive, Name: l.Name}
}

// Pos forces positive polarity.
func (l Literal) Pos() Literal {
	return Literal{Var: l.Var, Val: l.Val, Positive: true, Name: l.Name}
}

// Neg forces negative polarity.
func (l Literal) Neg() Literal {
	return Literal{Var: l.Var, Val: l.Val, Positive: false, Name: l.Name}
}

// String renders the literal for diagnostics using its display name when
// one was supplied, falling back to "var<v>=<d>", e.g. "(var0=2)" or
// "¬(var0=2)".
func (l Literal) String() string {
	body := l.Name
	if body == "" {
		body = fmt.Sprintf("var%d=%d", l.Var, l.Val)
	}
	if l.Positive {
		return "(" + body + ")"
	}
	return "¬(" + body + ")"
}
