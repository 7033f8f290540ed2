package pdr

import (
	"testing"

	"github.com/katalvlaran/pdrplan/core"
	"github.com/katalvlaran/pdrplan/layer"
	"github.com/katalvlaran/pdrplan/task"
	"github.com/stretchr/testify/require"
)

func singleVarClauseLayer(lit core.Literal) *layer.Layer {
	s := layer.NewStack()
	l0 := s.EnsureLayer(0)
	l0.AddSet(core.NewLiteralSetFrom(core.Clause, lit))
	return l0
}

func TestExtend_FindsSuccessorWhenOperatorSatisfiesLayer(t *testing.T) {
	vars := []task.Variable{{Index: 0, DomainSize: 2, Name: "v"}}
	sizes := domainSizes(vars)
	op := task.Operator{Name: "a", Pre: []task.Fact{{Var: 0, Val: 0}}, Eff: []task.Fact{{Var: 0, Val: 1}}}
	ops := []task.Operator{op}
	effects := []core.LiteralSet{effectCube(op, sizes)}

	s := fullStateCube(vars, []task.Fact{{Var: 0, Val: 0}})
	L := singleVarClauseLayer(core.NewLiteral(0, 1, true, ""))
	require.False(t, L.Models(s), "precondition: s must not model L")

	res := extend(s, L, ops, effects)
	require.True(t, res.hasSuccessor)
	require.True(t, L.Models(res.successor))
}

func TestExtend_ReturnsReasonBlockingAllOperators(t *testing.T) {
	vars := []task.Variable{{Index: 0, DomainSize: 2}, {Index: 1, DomainSize: 2}}
	sizes := domainSizes(vars)
	opA := task.Operator{Name: "a", Pre: []task.Fact{{Var: 1, Val: 1}}, Eff: []task.Fact{{Var: 0, Val: 1}}}
	ops := []task.Operator{opA}
	effects := []core.LiteralSet{effectCube(opA, sizes)}

	s := fullStateCube(vars, []task.Fact{{Var: 0, Val: 0}, {Var: 1, Val: 0}})
	L := singleVarClauseLayer(core.NewLiteral(0, 1, true, ""))
	require.False(t, L.Models(s))

	res := extend(s, L, ops, effects)
	require.False(t, res.hasSuccessor)
	require.True(t, res.reason.Size() > 0)
	require.True(t, res.reason.IsSubsetEq(s))
}

// TestExtend_MinimalReasonSharedLiteral covers the case where two
// operators share a single blocking literal: extend must reduce the
// combined reason down to that one literal instead of reporting both
// operators' candidates separately.
func TestExtend_MinimalReasonSharedLiteral(t *testing.T) {
	vars := []task.Variable{{Index: 0, DomainSize: 2, Name: "v"}}
	sizes := domainSizes(vars)
	// Both operators require v=1 as a precondition (unmet, since s has v=0)
	// and also assert v=1 as their effect — the same (v,1) pair is both the
	// layer's sole blocking literal and each operator's missing precondition.
	opA := task.Operator{Name: "a", Pre: []task.Fact{{Var: 0, Val: 1}}, Eff: []task.Fact{{Var: 0, Val: 1}}}
	opB := task.Operator{Name: "b", Pre: []task.Fact{{Var: 0, Val: 1}}, Eff: []task.Fact{{Var: 0, Val: 1}}}
	ops := []task.Operator{opA, opB}
	effects := []core.LiteralSet{effectCube(opA, sizes), effectCube(opB, sizes)}

	s := fullStateCube(vars, []task.Fact{{Var: 0, Val: 0}})
	L := singleVarClauseLayer(core.NewLiteral(0, 1, true, ""))
	require.False(t, L.Models(s))

	res := extend(s, L, ops, effects)
	require.False(t, res.hasSuccessor)
	require.Equal(t, 1, res.reason.Size())
	require.True(t, res.reason.IsSubsetEq(s))
}

func TestMinimizeReason_DropsRedundantLiteral(t *testing.T) {
	a := core.NewLiteral(0, 0, true, "")
	b := core.NewLiteral(1, 0, true, "")
	r := core.NewLiteralSetFrom(core.Cube, a, b)

	// A single reason option whose only candidate is {a}: the {b} half of
	// r is not needed by any option and must be dropped.
	option := core.NewLiteralSetSet(core.Cube)
	option.Add(core.NewLiteralSetFrom(core.Cube, a))
	reasons := []core.LiteralSetSet{option}

	got := minimizeReason(r, reasons)
	require.Equal(t, 1, got.Size())
	require.True(t, got.Contains(a))
}
