package layer_test

import (
	"testing"

	"github.com/katalvlaran/pdrplan/core"
	"github.com/katalvlaran/pdrplan/layer"
	"github.com/stretchr/testify/require"
)

func lit(v, d int, pos bool) core.Literal { return core.NewLiteral(v, d, pos, "") }

func clause(lits ...core.Literal) core.LiteralSet {
	return core.NewLiteralSetFrom(core.Clause, lits...)
}

func TestStack_EnsureLayerCreatesLowerLayers(t *testing.T) {
	s := layer.NewStack()
	l2 := s.EnsureLayer(2)
	require.Equal(t, 3, s.Len())
	require.Equal(t, 2, l2.Index())

	l0, ok := s.Layer(0)
	require.True(t, ok)
	require.Equal(t, 0, l0.Size())
}

func TestLayer_AddSetRejectsCube(t *testing.T) {
	s := layer.NewStack()
	l0 := s.EnsureLayer(0)
	cube := core.NewLiteralSetFrom(core.Cube, lit(0, 0, true))
	require.Panics(t, func() { l0.AddSet(cube) })
}

func TestLayer_AddSetInheritedByShallowerLayers(t *testing.T) {
	s := layer.NewStack()
	s.EnsureLayer(1)
	l0, _ := s.Layer(0)
	l1, _ := s.Layer(1)

	c := clause(lit(0, 0, false))
	l1.AddSet(c)

	require.True(t, l1.ContainsSet(c))
	require.True(t, l0.ContainsSet(c), "L0's effective set must inherit L1's delta")
	require.Empty(t, l0.Delta(), "c must not be duplicated into L0's own delta")
}

func TestLayer_AddSetRemovesFromShallowerAncestorDelta(t *testing.T) {
	s := layer.NewStack()
	s.EnsureLayer(1)
	l0, _ := s.Layer(0)
	l1, _ := s.Layer(1)

	c := clause(lit(0, 0, false))
	l0.AddSet(c)
	require.Len(t, l0.Delta(), 1)

	l1.AddSet(c)
	require.Empty(t, l0.Delta(), "inserting c at the deeper layer must evict it from L0's own delta")
	require.True(t, l0.ContainsSet(c), "but L0's effective set must still contain it via inheritance")
}

func TestLayer_IsSubsetEqHoldsAcrossStack(t *testing.T) {
	s := layer.NewStack()
	s.EnsureLayer(2)
	l0, _ := s.Layer(0)
	l1, _ := s.Layer(1)
	l2, _ := s.Layer(2)

	l1.AddSet(clause(lit(0, 0, false)))
	l2.AddSet(clause(lit(1, 1, false)))

	require.True(t, l2.IsSubsetEq(l1))
	require.True(t, l1.IsSubsetEq(l0))
	require.True(t, l2.IsSubsetEq(l0))
	require.NoError(t, s.CheckInvariants())
}

func TestLayer_Models(t *testing.T) {
	s := layer.NewStack()
	l0 := s.EnsureLayer(0)
	l0.AddSet(clause(lit(0, 0, false)))

	blocked := core.NewLiteralSetFrom(core.Cube, lit(0, 0, true))
	require.False(t, l0.Models(blocked))

	clear := core.NewLiteralSetFrom(core.Cube, lit(0, 1, true), lit(0, 0, false))
	require.True(t, l0.Models(clear))
}
