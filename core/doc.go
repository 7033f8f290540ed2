// Package core implements the symbolic state algebra the PDR planner is
// built on: literals over finite-domain (variable, value) facts, and
// literal sets interpreted either as a cube (implicit conjunction ∧) or
// a clause (implicit disjunction ∨).
//
// A positive literal (v, d, +) asserts variable v = d; a negative literal
// (v, d, −) asserts v ≠ d. A cube is well-formed only if it never holds
// both (v, d, +) and (v, d, −) — inserting a direct contradiction into a
// cube panics rather than silently producing an inconsistent state.
//
// LiteralSet is the single representation for both cubes and clauses
// (a Kind tag, not two distinct types), so invert (De Morgan duality)
// just flips the tag and every member literal in place of walking a
// class hierarchy.
//
// This package has no dependency beyond the standard library: it sits at
// the bottom of the planner's dependency order (see the root doc.go) and
// is consumed by every other package.
package core
