package pdr

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/pdrplan/core"
	"github.com/katalvlaran/pdrplan/layer"
	"github.com/katalvlaran/pdrplan/task"
)

// extendResult is extend's output: exactly one of successor (a state
// one operator application away from s that satisfies L) or reason (a
// minimal cube ⊆ s explaining why no such successor exists) is set.
type extendResult struct {
	successor    core.LiteralSet
	reason       core.LiteralSet
	hasSuccessor bool
}

// extend performs one step of symbolic forward reasoning: given a
// state cube s that does not yet model layer L (the caller guarantees
// this), it either finds an operator whose application from s reaches
// a state modelling L, or builds a minimal cube reason ⊆ s blocking
// every such attempt.
//
// Four steps:
//  1. Ls is the set of L's clauses s violates; Rnoop (= invert(Ls)) is
//     always a valid reason on its own (s already fails to model L).
//  2. For every operator a, compute the successor t = apply(s, eff_a)
//     and the sub-clause-set Lt that t violates. If a has no unsatisfied
//     preconditions and t violates nothing, t is a genuine successor.
//     If Ls ⊆ Lt, a cannot help (whatever blocked s still blocks t) and
//     is skipped. Otherwise a contributes a reason option: either the
//     negation of one of a's missing precondition literals, or (for each
//     clause in Lt sharing no literal with a's missing preconditions)
//     the negation of that clause's literals, leaving out every negated
//     literal that a's effect cube itself contains.
//  3. If no successor was found, greedily pick one candidate cube from
//     each reason option, in ascending option-size order, minimising
//     the running union's size at each step, and union them into r.
//  4. Tighten r by trying to drop each of its literals in turn, keeping
//     the drop whenever every reason option still has some candidate
//     contained in the smaller cube.
//
// effects is the driver's precomputed per-operator effect-cube table
// (A_effect), indexed in parallel with ops — extend never recomputes
// an effect cube itself.
func extend(s core.LiteralSet, L *layer.Layer, ops []task.Operator, effects []core.LiteralSet) extendResult {
	violated := core.NewLiteralSetSet(core.Clause)
	rNoop := core.NewLiteralSetSet(core.Cube)
	for _, c := range L.Sets() {
		if !s.Models(c) {
			violated.Add(c)
			rNoop.Add(c.Invert())
		}
	}

	reasons := []core.LiteralSetSet{rNoop}

	for i, op := range ops {
		pre := preconditionCube(op)
		preSA := core.NewLiteralSet(core.Clause)
		for _, p := range pre.Literals() {
			if !s.Models(core.NewLiteralSetFrom(core.Clause, p)) {
				preSA = preSA.Insert(p)
			}
		}

		effA := effects[i]
		t := s.Clone().ApplyCube(effA)

		violatedByT := core.NewLiteralSetSet(core.Clause)
		for _, c := range L.Sets() {
			if !t.Models(c) {
				violatedByT.Add(c)
			}
		}

		if preSA.Size() == 0 && violatedByT.Size() == 0 {
			return extendResult{successor: t, hasSuccessor: true}
		}
		if violated.IsSubsetEq(violatedByT) {
			continue
		}

		unaffected := core.NewLiteralSetSet(core.Clause)
		for _, c := range violatedByT.Sets() {
			if c.IntersectSize(preSA) == 0 {
				unaffected.Add(c)
			}
		}

		option := core.NewLiteralSetSet(core.Cube)
		for _, l := range preSA.Literals() {
			option.Add(core.NewLiteralSetFrom(core.Cube, l.Invert()))
		}
		for _, c := range unaffected.Sets() {
			cand := core.NewLiteralSet(core.Cube)
			for _, l := range c.Literals() {
				if !effA.Contains(l.Invert()) {
					cand = cand.Insert(l.Invert())
				}
			}
			option.Add(cand)
		}
		reasons = append(reasons, option)
	}

	r := minimalCover(reasons)
	r = minimizeReason(r, reasons)
	if r.Size() == 0 {
		panic(fmt.Sprintf("pdr: extend derived an empty reason for state %v", s))
	}
	if !r.IsSubsetEq(s) {
		panic(fmt.Sprintf("pdr: extend reason %v is not a sub-cube of state %v", r, s))
	}
	return extendResult{reason: r}
}

// minimalCover picks, from each reason option in ascending size order,
// the candidate cube minimising the running union's size, and returns
// the union of all chosen candidates — a greedy approximation of the
// smallest cube that intersects every option.
func minimalCover(reasons []core.LiteralSetSet) core.LiteralSet {
	sorted := append([]core.LiteralSetSet(nil), reasons...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Size() < sorted[j].Size() })

	r := core.NewLiteralSet(core.Cube)
	for _, option := range sorted {
		var best core.LiteralSet
		bestSize := -1
		for _, cand := range option.Sets() {
			size := r.Union(cand).Size()
			if bestSize == -1 || size < bestSize {
				bestSize = size
				best = cand
			}
		}
		r = r.Union(best)
	}
	return r
}

// minimizeReason implements extend's step 4 (literal-removal
// minimisation): for each literal of r in turn, try dropping it, and
// keep the drop whenever every reason option still has some candidate
// contained in the smaller cube. This tightens r while preserving the
// property that r blocks every operator and the no-op option.
func minimizeReason(r core.LiteralSet, reasons []core.LiteralSetSet) core.LiteralSet {
	for _, l := range r.Literals() {
		smaller := r.Remove(l)
		if coversEveryOption(smaller, reasons) {
			r = smaller
		}
	}
	return r
}

// coversEveryOption reports whether every reason option still has some
// candidate cube that is a sub-cube of r.
func coversEveryOption(r core.LiteralSet, reasons []core.LiteralSetSet) bool {
	for _, option := range reasons {
		ok := false
		for _, cand := range option.Sets() {
			if cand.IsSubsetEq(r) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}
