package heuristic_test

import (
	"fmt"

	"github.com/katalvlaran/pdrplan/heuristic"
	"github.com/katalvlaran/pdrplan/layer"
	"github.com/katalvlaran/pdrplan/task"
)

// ExamplePDB seeds layer 0 with every abstract state whose admissible
// distance estimate is already known to exceed 0 steps.
func ExamplePDB() {
	vars := []task.Variable{{Index: 0, DomainSize: 3, Name: "loc"}}
	dist := func(s []int) int { return s[0] } // loc value doubles as its own distance

	oracle := heuristic.NewPDB([]int{0}, vars, dist)

	s := layer.NewStack()
	l0 := s.EnsureLayer(0)
	oracle.Seed(0, l0)

	fmt.Println(l0.Size())
	// Output:
	// 2
}
