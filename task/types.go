package task

import "github.com/katalvlaran/pdrplan/core"

// Variable is a finite-domain state variable: its index into a task's
// variable list and the size of its domain, {0, ..., DomainSize-1}.
type Variable struct {
	Index      int
	DomainSize int
	Name       string
}

// Fact is a concrete (variable, value) assignment, e.g. at(robot, depot).
type Fact struct {
	Var  int
	Val  int
	Name string
}

// Literal projects f to a positive core.Literal.
func (f Fact) Literal() core.Literal {
	return core.NewLiteral(f.Var, f.Val, true, f.Name)
}

// Operator is a grounded planning action: a precondition cube (every
// fact must hold before application) and an effect cube (every fact
// holds after application; unmentioned variables are unaffected).
type Operator struct {
	Name string
	Pre  []Fact
	Eff  []Fact
}

// PreCube returns the operator's precondition as a core.Cube.
func (o Operator) PreCube() core.LiteralSet {
	return cubeFromFacts(o.Pre)
}

// EffCube returns the operator's effect as a core.Cube.
func (o Operator) EffCube() core.LiteralSet {
	return cubeFromFacts(o.Eff)
}

func cubeFromFacts(facts []Fact) core.LiteralSet {
	c := core.NewLiteralSet(core.Cube)
	for _, f := range facts {
		c = c.Insert(f.Literal())
	}
	return c
}

// Task is the external task-proxy contract the PDR planner drives: the
// set of state variables, the grounded operators, the initial state and
// the goal condition. A surrounding planner's task loader is expected
// to implement this directly against its own in-memory representation;
// StaticTask (static_task.go) is a minimal concrete implementation for
// tests, examples, and small hand-built problems.
type Task interface {
	// Variables returns every declared variable, ordered by Index.
	Variables() []Variable
	// Operators returns every grounded operator.
	Operators() []Operator
	// Initial returns the facts true in the initial state — one per
	// variable, since SAS⁺ initial states are fully specified.
	Initial() []Fact
	// Goal returns the facts required to hold at a goal state. An
	// unmentioned variable is unconstrained.
	Goal() []Fact
}

// GoalCube returns t's goal condition as a core.Cube, a convenience
// wrapper used by the pdr driver.
func GoalCube(t Task) core.LiteralSet {
	return cubeFromFacts(t.Goal())
}

// InitialCube returns t's initial state as a core.Cube.
func InitialCube(t Task) core.LiteralSet {
	return cubeFromFacts(t.Initial())
}
