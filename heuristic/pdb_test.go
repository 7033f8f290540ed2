package heuristic_test

import (
	"testing"

	"github.com/katalvlaran/pdrplan/heuristic"
	"github.com/katalvlaran/pdrplan/layer"
	"github.com/katalvlaran/pdrplan/task"
	"github.com/stretchr/testify/require"
)

func TestPDB_SeedBlocksStatesAboveIndex(t *testing.T) {
	vars := []task.Variable{
		{Index: 0, DomainSize: 2, Name: "loc"},
	}
	// distance(state) == state[0]: value 0 is distance 0 (the goal),
	// value 1 is distance 1.
	dist := func(s []int) int { return s[0] }

	oracle := heuristic.NewPDB([]int{0}, vars, dist)

	s := layer.NewStack()
	l0 := s.EnsureLayer(0)
	oracle.Seed(0, l0)

	// At index 0, the state with distance 1 (loc=1) must be blocked,
	// since 1 > 0; the state with distance 0 (loc=0) must not be.
	require.Equal(t, 1, l0.Size())
}

func TestPDB_SeedBlocksNothingWhenDistanceNeverExceedsIndex(t *testing.T) {
	vars := []task.Variable{{Index: 0, DomainSize: 2, Name: "loc"}}
	dist := func(s []int) int { return 0 }

	oracle := heuristic.NewPDB([]int{0}, vars, dist)
	s := layer.NewStack()
	l0 := s.EnsureLayer(0)
	oracle.Seed(0, l0)

	require.Equal(t, 0, l0.Size())
}

func TestPDB_PanicsOnEmptyPatternOrNilDistance(t *testing.T) {
	vars := []task.Variable{{Index: 0, DomainSize: 2}}
	require.Panics(t, func() { heuristic.NewPDB(nil, vars, func([]int) int { return 0 }) })
	require.Panics(t, func() { heuristic.NewPDB([]int{0}, vars, nil) })
}

func TestNull_SeedIsNoOp(t *testing.T) {
	s := layer.NewStack()
	l0 := s.EnsureLayer(0)
	heuristic.Null{}.Seed(0, l0)
	require.Equal(t, 0, l0.Size())
}
