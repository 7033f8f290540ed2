// Package pdr implements the outer Property-Directed Reachability
// driver: the extend procedure (one-step symbolic successor/reason
// computation), the path-construction phase driven by a priority
// queue of obligations, and the clause-propagation phase that lifts
// clauses between layers until either a plan is found or the layers
// reach a fixpoint, certifying the task unsolvable.
package pdr
