package core

import (
	"fmt"
	"sort"
	"strings"
)

// LiteralSet is a set of literals interpreted according to Kind: as a
// cube (conjunction) or a clause (disjunction). The zero value is not
// useful; construct with NewLiteralSet or NewLiteralSetFrom.
//
// Value semantics: every mutator (Insert, Remove, ApplyLiteral,
// ApplyCube) returns an independent copy rather than mutating the
// receiver's backing map, so a LiteralSet already handed to a
// LiteralSetSet or stored as a Layer's delta member is never disturbed
// by a later call on the variable the caller got it from. Callers
// still follow the `s = s.Insert(l)` reassignment idiom; Clone only
// needs to be called explicitly when branching into two divergent
// copies from one starting set.
type LiteralSet struct {
	kind    Kind
	members map[literalKey]Literal
}

// NewLiteralSet returns an empty LiteralSet of the given Kind.
func NewLiteralSet(kind Kind) LiteralSet {
	return LiteralSet{kind: kind, members: make(map[literalKey]Literal)}
}

// NewLiteralSetFrom returns a LiteralSet of the given Kind containing
// the given literals. For a Cube, inserting a literal whose inverse is
// already present panics (see Insert).
func NewLiteralSetFrom(kind Kind, lits ...Literal) LiteralSet {
	s := NewLiteralSet(kind)
	for _, l := range lits {
		s = s.Insert(l)
	}
	return s
}

// Kind reports whether this set is a Cube or a Clause.
func (s LiteralSet) Kind() Kind { return s.kind }

// IsCube reports s.Kind() == Cube.
func (s LiteralSet) IsCube() bool { return s.kind == Cube }

// IsClause reports s.Kind() == Clause.
func (s LiteralSet) IsClause() bool { return s.kind == Clause }

// Size returns the number of member literals.
func (s LiteralSet) Size() int { return len(s.members) }

// IsUnit reports whether the set has exactly one member.
func (s LiteralSet) IsUnit() bool { return len(s.members) == 1 }

// Contains reports whether l (matched on variable/value/polarity, not
// Name) is a member of s.
func (s LiteralSet) Contains(l Literal) bool {
	_, ok := s.members[l.key()]
	return ok
}

// Literals returns the member literals in deterministic (Var, Val,
// Positive) order. The returned slice is a fresh copy; mutating it does
// not affect s.
func (s LiteralSet) Literals() []Literal {
	out := make([]Literal, 0, len(s.members))
	for _, l := range s.members {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Insert adds l to s. For a Cube, inserting a literal whose inverse is
// already a member is a core invariant violation and panics — a cube
// must never be allowed to silently become contradictory. For a Clause,
// no such check is made (a tautological clause is merely a weak one, not
// an ill-formed one).
func (s LiteralSet) Insert(l Literal) LiteralSet {
	if s.kind == Cube {
		if _, ok := s.members[l.Invert().key()]; ok {
			contradiction(s, l)
		}
	}
	out := s.Clone()
	out.members[l.key()] = l
	return out
}

// Remove deletes l from s if present; a no-op otherwise.
func (s LiteralSet) Remove(l Literal) LiteralSet {
	out := s.Clone()
	delete(out.members, l.key())
	return out
}

// ApplyLiteral removes ¬l if present, then inserts l. After the call,
// l ∈ s and invert(l) ∉ s. This is the primitive that turns a state cube
// into the successor state reached by asserting l.
func (s LiteralSet) ApplyLiteral(l Literal) LiteralSet {
	out := s.Clone()
	delete(out.members, l.Invert().key())
	out.members[l.key()] = l
	return out
}

// ApplyCube applies every literal of c (which must be a cube) to s via
// ApplyLiteral. Used to apply an operator's effect cube to a state.
func (s LiteralSet) ApplyCube(c LiteralSet) LiteralSet {
	if !c.IsCube() {
		panic(fmt.Sprintf("core: ApplyCube requires a cube: %v", ErrNotCube))
	}
	for _, l := range c.Literals() {
		s = s.ApplyLiteral(l)
	}
	return s
}

// Clone returns an independent copy of s.
func (s LiteralSet) Clone() LiteralSet {
	out := NewLiteralSet(s.kind)
	for k, l := range s.members {
		out.members[k] = l
	}
	return out
}

// IsSubsetEq reports whether every literal of s occurs in other.
// O(|s|) average.
func (s LiteralSet) IsSubsetEq(other LiteralSet) bool {
	if len(s.members) > len(other.members) {
		return false
	}
	for k := range s.members {
		if _, ok := other.members[k]; !ok {
			return false
		}
	}
	return true
}

// Union returns a new set containing every literal of s and other; both
// must have the same Kind. Panics with ErrKindMismatch otherwise.
func (s LiteralSet) Union(other LiteralSet) LiteralSet {
	if s.kind != other.kind {
		panic(ErrKindMismatch)
	}
	out := s.Clone()
	for k, l := range other.members {
		out.members[k] = l
	}
	return out
}

// Diff returns the set of literals in s but not in other (s ∖ other);
// both must have the same Kind.
func (s LiteralSet) Diff(other LiteralSet) LiteralSet {
	if s.kind != other.kind {
		panic(ErrKindMismatch)
	}
	out := NewLiteralSet(s.kind)
	for k, l := range s.members {
		if _, ok := other.members[k]; !ok {
			out.members[k] = l
		}
	}
	return out
}

// IntersectSize returns |s ∩ other| without materialising the
// intersection — the hot path in extend's subset checks.
func (s LiteralSet) IntersectSize(other LiteralSet) int {
	small, big := s.members, other.members
	if len(small) > len(big) {
		small, big = big, small
	}
	n := 0
	for k := range small {
		if _, ok := big[k]; ok {
			n++
		}
	}
	return n
}

// Invert reinterprets s under De Morgan duality: Kind flips (Cube ↔
// Clause) and every member literal is inverted. invert(invert(c)) == c.
func (s LiteralSet) Invert() LiteralSet {
	outKind := Clause
	if s.kind == Clause {
		outKind = Cube
	}
	out := NewLiteralSet(outKind)
	for _, l := range s.members {
		inv := l.Invert()
		out.members[inv.key()] = inv
	}
	return out
}

// Pos returns the set of positive forms of every member literal,
// preserving Kind. Used to project "all variables mentioned by c".
func (s LiteralSet) Pos() LiteralSet {
	out := NewLiteralSet(s.kind)
	for _, l := range s.members {
		p := l.Pos()
		out.members[p.key()] = p
	}
	return out
}

// Models reports s ⊧ c: for a clause c, whether s contains some literal
// of c; for a cube c, whether c ⊆ s. The receiver s must be a cube.
func (s LiteralSet) Models(c LiteralSet) bool {
	if !s.IsCube() {
		panic(ErrNotCube)
	}
	if c.IsClause() {
		for k := range c.members {
			if _, ok := s.members[k]; ok {
				return true
			}
		}
		return false
	}
	return c.IsSubsetEq(s)
}

// Equal reports whether s and other have the same Kind and the same
// member literals (Name ignored).
func (s LiteralSet) Equal(other LiteralSet) bool {
	if s.kind != other.kind || len(s.members) != len(other.members) {
		return false
	}
	for k := range s.members {
		if _, ok := other.members[k]; !ok {
			return false
		}
	}
	return true
}

// key returns a canonical, order-independent string identifying s by
// its Kind and member literals. Used by LiteralSetSet for exact-equality
// set membership — a canonical sorted key sidesteps the collision risk
// of a pure xor-hash while remaining O(n log n) to compute, which is
// cheap relative to the O(n) set operations above. Hash (below) is
// kept for diagnostics and for callers that want a fixed-width digest.
func (s LiteralSet) key() string {
	lits := s.Literals()
	var b strings.Builder
	fmt.Fprintf(&b, "%d|%d|", s.kind, len(lits))
	for _, l := range lits {
		fmt.Fprintf(&b, "%d,%d,%t;", l.Var, l.Val, l.Positive)
	}
	return b.String()
}

// Hash returns an order-independent hash of s: the xor of per-member
// hashes (each seeded by its (Var, Val, Positive) triple, to avoid
// trivial collisions between complementary literals) mixed with Kind
// and cardinality.
func (s LiteralSet) Hash() uint64 {
	var h uint64 = 1469598103934665603 // FNV offset basis
	for k := range s.members {
		h ^= literalKeyHash(k)
	}
	h ^= uint64(s.kind)*1099511628211 + uint64(len(s.members))
	return h
}

func literalKeyHash(k literalKey) uint64 {
	const prime = 1099511628211
	h := uint64(1469598103934665603)
	h = (h ^ uint64(k.variable+1)) * prime
	h = (h ^ uint64(k.value+1)) * prime
	pos := uint64(0)
	if k.positive {
		pos = 1
	}
	h = (h ^ (pos + 1)) * prime
	return h
}

// String renders s for diagnostics, e.g. "{(v=0) ∧ ¬(v=1)}".
func (s LiteralSet) String() string {
	sep := " ∧ "
	if s.kind == Clause {
		sep = " ∨ "
	}
	lits := s.Literals()
	parts := make([]string, len(lits))
	for i, l := range lits {
		parts[i] = l.String()
	}
	return "{" + strings.Join(parts, sep) + "}"
}
