package core

import "sort"

// LiteralSetSet is a set of LiteralSet values of a single Kind, deduped
// by exact member equality (see LiteralSet.key). It backs both a
// layer's delta (the clauses inserted directly at that layer) and the
// per-operator candidate-reason bookkeeping in the extend procedure.
type LiteralSetSet struct {
	kind    Kind
	entries map[string]LiteralSet
}

// NewLiteralSetSet returns an empty LiteralSetSet restricted to sets of
// the given Kind.
func NewLiteralSetSet(kind Kind) LiteralSetSet {
	return LiteralSetSet{kind: kind, entries: make(map[string]LiteralSet)}
}

// Kind reports the Kind every member of this set shares.
func (ss LiteralSetSet) Kind() Kind { return ss.kind }

// Size returns the number of distinct member sets.
func (ss LiteralSetSet) Size() int { return len(ss.entries) }

// Add inserts s, which must share ss's Kind, and reports whether s was
// a new member (false if an equal set was already present).
func (ss LiteralSetSet) Add(s LiteralSet) bool {
	if s.kind != ss.kind {
		panic(ErrKindMismatch)
	}
	k := s.key()
	if _, ok := ss.entries[k]; ok {
		return false
	}
	ss.entries[k] = s
	return true
}

// Remove deletes a member equal to s, reporting whether it was present.
func (ss LiteralSetSet) Remove(s LiteralSet) bool {
	k := s.key()
	if _, ok := ss.entries[k]; !ok {
		return false
	}
	delete(ss.entries, k)
	return true
}

// Contains reports whether a set equal to s is a member.
func (ss LiteralSetSet) Contains(s LiteralSet) bool {
	_, ok := ss.entries[s.key()]
	return ok
}

// Sets returns the member sets ordered by their canonical keys, so
// every walk over a set-of-sets (reason-candidate selection, clause
// propagation) visits members in the same order run to run. The
// returned slice is a fresh copy; mutating it does not affect ss.
func (ss LiteralSetSet) Sets() []LiteralSet {
	keys := make([]string, 0, len(ss.entries))
	for k := range ss.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]LiteralSet, 0, len(keys))
	for _, k := range keys {
		out = append(out, ss.entries[k])
	}
	return out
}

// Clone returns an independent copy of ss.
func (ss LiteralSetSet) Clone() LiteralSetSet {
	out := NewLiteralSetSet(ss.kind)
	for k, s := range ss.entries {
		out.entries[k] = s
	}
	return out
}

// IsSubsetEq reports whether every member of ss is also a member of
// other; both must share the same Kind.
func (ss LiteralSetSet) IsSubsetEq(other LiteralSetSet) bool {
	if ss.kind != other.kind {
		panic(ErrKindMismatch)
	}
	if len(ss.entries) > len(other.entries) {
		return false
	}
	for k := range ss.entries {
		if _, ok := other.entries[k]; !ok {
			return false
		}
	}
	return true
}

// Any models a cube against every member clause/cube of ss: it reports
// whether s.Models(m) holds for some member m (at least one, not all).
func (ss LiteralSetSet) Any(s LiteralSet) bool {
	for _, m := range ss.entries {
		if s.Models(m) {
			return true
		}
	}
	return false
}
