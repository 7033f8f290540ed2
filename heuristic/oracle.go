package heuristic

import "github.com/katalvlaran/pdrplan/layer"

// Oracle seeds a newly created layer with initial blocking clauses.
// Seed is called exactly once per layer, immediately after the layer is
// created and before the driver inserts any clause derived from
// extend — seeded clauses are therefore always weaker than or equal to
// what search would eventually derive on its own.
type Oracle interface {
	Seed(index int, l *layer.Layer)
}

// Null is the no-op Oracle: it never blocks anything, leaving every
// layer to be populated purely by search. Use it when no admissible
// distance estimate is available.
type Null struct{}

// Seed implements Oracle by doing nothing.
func (Null) Seed(int, *layer.Layer) {}

var _ Oracle = Null{}
