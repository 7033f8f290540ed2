package layer

import (
	"fmt"

	"github.com/katalvlaran/pdrplan/core"
)

// Layer is a single over-approximation layer L_i in the stack. Its own
// directly-inserted clauses live in delta; Sets reports the effective
// clause set, which also includes every deeper layer's delta (see the
// package doc for why).
type Layer struct {
	index     int
	delta     core.LiteralSetSet
	parentIdx int // shallower layer (i-1), -1 if this is L0
	childIdx  int // deeper layer (i+1), -1 if not yet created
	stack     *Stack
}

// Index returns this layer's position i in the stack.
func (l *Layer) Index() int { return l.index }

// Delta returns the clauses inserted directly at this layer, excluding
// those inherited from deeper layers. Mostly useful for diagnostics and
// the fixpoint check in the clause-propagation phase.
func (l *Layer) Delta() []core.LiteralSet { return l.delta.Sets() }

func (l *Layer) parent() *Layer {
	if l.parentIdx < 0 {
		return nil
	}
	return l.stack.layers[l.parentIdx]
}

func (l *Layer) child() *Layer {
	if l.childIdx < 0 {
		return nil
	}
	return l.stack.layers[l.childIdx]
}

// AddSet inserts clause c into this layer, implementing I1/I4: it skips
// the insert if c is already present at this layer or deeper (where it
// would already be inherited), and always removes c from every
// shallower ancestor's own delta — a clause's presence at i already
// implies its presence at every j < i via Sets, so keeping a second
// copy at a shallower layer would only be dead weight.
func (l *Layer) AddSet(c core.LiteralSet) {
	if !c.IsClause() {
		panic(fmt.Errorf("%w: got %s", ErrNotClause, c.Kind()))
	}

	alreadyPresent := false
	for cur := l; cur != nil; cur = cur.child() {
		if cur.delta.Contains(c) {
			alreadyPresent = true
			break
		}
	}
	if !alreadyPresent {
		l.delta.Add(c)
	}
	for p := l.parent(); p != nil; p = p.parent() {
		p.delta.Remove(c)
	}

	if debugAsserts {
		if err := l.stack.checkInvariants(); err != nil {
			panic(err)
		}
	}
}

// ContainsSet reports whether c is a member of this layer's effective
// clause set (its own delta, or that of any deeper layer).
func (l *Layer) ContainsSet(c core.LiteralSet) bool {
	for cur := l; cur != nil; cur = cur.child() {
		if cur.delta.Contains(c) {
			return true
		}
	}
	return false
}

// Sets returns this layer's effective clause set: its own delta union
// every deeper layer's delta, deduplicated. Order is unspecified.
func (l *Layer) Sets() []core.LiteralSet {
	acc := core.NewLiteralSetSet(core.Clause)
	for cur := l; cur != nil; cur = cur.child() {
		for _, s := range cur.delta.Sets() {
			acc.Add(s)
		}
	}
	return acc.Sets()
}

// Size returns |Sets()|.
func (l *Layer) Size() int { return len(l.Sets()) }

// IsSubsetEq reports whether this layer's effective clause set is a
// subset of other's — the per-step check of invariant I1.
func (l *Layer) IsSubsetEq(other *Layer) bool {
	mine := l.Sets()
	if len(mine) > other.Size() {
		return false
	}
	for _, c := range mine {
		if !other.ContainsSet(c) {
			return false
		}
	}
	return true
}

// Models reports whether state cube s satisfies every clause of this
// layer's effective clause set — i.e. s is not blocked by L_i. s must
// be a cube.
func (l *Layer) Models(s core.LiteralSet) bool {
	if !s.IsCube() {
		panic(core.ErrNotCube)
	}
	for _, c := range l.Sets() {
		if !s.Models(c) {
			return false
		}
	}
	return true
}

// String renders the layer's effective clause set for diagnostics.
func (l *Layer) String() string {
	sets := l.Sets()
	out := fmt.Sprintf("Layer[%d]{", l.index)
	for i, s := range sets {
		if i > 0 {
			out += ", "
		}
		out += s.String()
	}
	return out + "}"
}
