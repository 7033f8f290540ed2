package layer

import (
	"fmt"

	"github.com/katalvlaran/pdrplan/core"
)

// Stack owns the indexed sequence of layers L₀, L₁, …. Layers are
// created lazily and only ever appended; once created a layer is never
// removed.
type Stack struct {
	layers []*Layer
}

// NewStack returns an empty layer stack.
func NewStack() *Stack {
	return &Stack{}
}

// Len returns the number of layers created so far.
func (s *Stack) Len() int { return len(s.layers) }

// Layer returns the layer at index i, or false if it has not been
// created yet.
func (s *Stack) Layer(i int) (*Layer, bool) {
	if i < 0 || i >= len(s.layers) {
		return nil, false
	}
	return s.layers[i], true
}

// EnsureLayer creates every layer up to and including index i that does
// not already exist, linking each new layer's parent to i-1, and
// returns the layer at i. Newly created layers start with an empty
// delta; seeding them is the caller's responsibility (see the
// heuristic package).
func (s *Stack) EnsureLayer(i int) *Layer {
	if i < 0 {
		panic(fmt.Errorf("%w: %d", ErrLayerIndexOutOfRange, i))
	}
	for len(s.layers) <= i {
		idx := len(s.layers)
		parentIdx := idx - 1
		l := &Layer{
			index:     idx,
			delta:     core.NewLiteralSetSet(core.Clause),
			parentIdx: parentIdx,
			childIdx:  -1,
			stack:     s,
		}
		if parentIdx >= 0 {
			s.layers[parentIdx].childIdx = idx
		}
		s.layers = append(s.layers, l)
	}
	return s.layers[i]
}

// checkInvariants re-derives I1 (L_{i+1} ⊆ L_i) and I3 (every stored set
// is a clause) from scratch across the whole stack. O(n²·m); gated
// behind debugAsserts and meant for tests and debug-mode runs only.
func (s *Stack) checkInvariants() error {
	for i, l := range s.layers {
		for _, c := range l.delta.Sets() {
			if !c.IsClause() {
				return fmt.Errorf("%w: layer %d delta holds a %s", ErrInvariantViolation, i, c.Kind())
			}
		}
		if i+1 < len(s.layers) {
			if !s.layers[i+1].IsSubsetEq(l) {
				return fmt.Errorf("%w: layer %d is not a subset of layer %d", ErrInvariantViolation, i+1, i)
			}
		}
	}
	return nil
}

// CheckInvariants exposes checkInvariants for tests and for callers
// running with debug assertions enabled outside of AddSet's automatic
// check.
func (s *Stack) CheckInvariants() error {
	return s.checkInvariants()
}
