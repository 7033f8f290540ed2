// Package pdrplan is a Property-Directed Reachability (PDR) planner for
// deterministic, fully-observable classical planning tasks given in a
// multi-valued (SAS⁺-style) encoding, in the style of Suda.
//
// PDR decides solvability of a planning task and, when solvable, emits a
// plan. It maintains an inductive sequence of over-approximating layers
// L₀ ⊇ L₁ ⊇ … and refines them by propagating reasons of unreachability
// backward from the goal, interleaved with forward-search attempts that
// try to connect the initial state to the goal through those layers.
//
// Packages, in dependency order (leaves first):
//
//	core/      — literal, cube (∧) and clause (∨) algebra
//	task/      — the external task-proxy contract: variables, facts,
//	             operators, initial state, goal
//	layer/     — the delta-encoded layer stack L₀ ⊇ L₁ ⊇ …
//	heuristic/ — oracles that seed a layer with initial blocking clauses
//	pdr/       — the extend procedure and the outer PDR driver
//
// The core reasoning engine only: no task loader, no plugin registration
// surface, no pattern-database construction, and no plan printer — those
// are external collaborators a surrounding planner supplies.
package pdrplan
