// Package heuristic provides oracles that seed a freshly created layer
// with initial blocking clauses before the PDR driver starts reasoning
// over it. Seeding is purely an optimization: Null never blocks
// anything and the driver still terminates correctly, just more slowly.
//
// Oracle does not construct a pattern database itself — that is an
// external collaborator's job (see the root doc.go's scope note). PDB
// instead wraps a caller-supplied admissible distance function over a
// fixed pattern of variables and enumerates every abstract state of
// that pattern, blocking any whose distance exceeds the layer index.
package heuristic
