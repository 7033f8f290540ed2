package core_test

import (
	"testing"

	"github.com/katalvlaran/pdrplan/core"
	"github.com/stretchr/testify/require"
)

func TestLiteralSetSet_AddDedupesByMemberEquality(t *testing.T) {
	ss := core.NewLiteralSetSet(core.Clause)
	a := core.NewLiteralSetFrom(core.Clause, l(0, 0, false))
	b := core.NewLiteralSetFrom(core.Clause, l(0, 0, false))

	require.True(t, ss.Add(a))
	require.False(t, ss.Add(b))
	require.Equal(t, 1, ss.Size())
}

func TestLiteralSetSet_RemoveContains(t *testing.T) {
	ss := core.NewLiteralSetSet(core.Clause)
	c := core.NewLiteralSetFrom(core.Clause, l(1, 0, false))
	ss.Add(c)
	require.True(t, ss.Contains(c))
	require.True(t, ss.Remove(c))
	require.False(t, ss.Contains(c))
	require.False(t, ss.Remove(c))
}

func TestLiteralSetSet_KindMismatchPanics(t *testing.T) {
	ss := core.NewLiteralSetSet(core.Cube)
	require.Panics(t, func() { ss.Add(core.NewLiteralSet(core.Clause)) })
}

func TestLiteralSetSet_Any(t *testing.T) {
	ss := core.NewLiteralSetSet(core.Clause)
	ss.Add(core.NewLiteralSetFrom(core.Clause, l(0, 1, true)))
	ss.Add(core.NewLiteralSetFrom(core.Clause, l(1, 0, true)))

	state := core.NewLiteralSetFrom(core.Cube, l(0, 1, true))
	require.True(t, ss.Any(state))

	other := core.NewLiteralSetFrom(core.Cube, l(0, 0, true), l(1, 1, true))
	require.False(t, ss.Any(other))
}
