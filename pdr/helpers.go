package pdr

import (
	"github.com/katalvlaran/pdrplan/core"
	"github.com/katalvlaran/pdrplan/task"
)

// domainSizes indexes each variable's domain size by its Var index, for
// the O(1) lookups effectCube needs when the driver builds its
// per-operator effect table.
func domainSizes(vars []task.Variable) map[int]int {
	sizes := make(map[int]int, len(vars))
	for _, v := range vars {
		sizes[v.Index] = v.DomainSize
	}
	return sizes
}

// allVariablesCube returns the cube asserting every (variable, value)
// pair across every declared variable — the universal carrier X that
// the clause-propagation phase starts from before negating a
// candidate clause's literals onto it. It is not a valid state (most
// variables hold every value "simultaneously"); it exists purely so
// ApplyLiteral's "remove the inverse, insert this" rule can be used to
// stamp a clause's negated literals onto an otherwise-unconstrained
// carrier.
func allVariablesCube(vars []task.Variable) core.LiteralSet {
	c := core.NewLiteralSet(core.Cube)
	for _, v := range vars {
		for val := 0; val < v.DomainSize; val++ {
			c = c.Insert(core.NewLiteral(v.Index, val, true, v.Name))
		}
	}
	return c
}

// preconditionCube returns op's precondition as a cube: one positive
// literal per precondition fact, with no domain expansion (unlike
// effectCube) since a precondition is only ever tested with Models,
// which needs no exclusivity information about unmentioned values.
func preconditionCube(op task.Operator) core.LiteralSet {
	c := core.NewLiteralSet(core.Cube)
	for _, f := range op.Pre {
		c = c.Insert(f.Literal())
	}
	return c
}

// effectCube returns op's effect as a cube, expanded with an explicit
// negative literal for every value an affected variable does NOT take
// on. Without this expansion, applying the cube via ApplyCube would
// only remove the exact inverse of each inserted literal and leave a
// stale positive literal for the variable's old value sitting in the
// successor state — since (var, old) and (var, new) are not each
// other's Invert, only same-literal polarity flips are. Expanding the
// effect cube to cover every other value of each affected variable
// makes the ensuing ApplyLiteral calls clean out the old value too.
func effectCube(op task.Operator, sizes map[int]int) core.LiteralSet {
	c := core.NewLiteralSet(core.Cube)
	for _, f := range op.Eff {
		lit := f.Literal()
		c = c.Insert(lit)
		for val := 0; val < sizes[f.Var]; val++ {
			if val == f.Val {
				continue
			}
			other := core.NewLiteral(f.Var, val, true, "")
			if !c.Contains(other) {
				c = c.Insert(other.Invert())
			}
		}
	}
	return c
}

// fullStateCube builds the fully-specified state cube for the given
// per-variable assignment: for every declared variable v, a
// positive literal for its held value plus a negative literal for
// every other value in its domain. facts need only give one value per
// variable (task.Task.Initial's contract); variables it omits default
// to value 0, since a well-formed task's initial state always assigns
// every variable.
func fullStateCube(vars []task.Variable, facts []task.Fact) core.LiteralSet {
	held := make(map[int]int, len(vars))
	for _, f := range facts {
		held[f.Var] = f.Val
	}

	c := core.NewLiteralSet(core.Cube)
	for _, v := range vars {
		d := held[v.Index]
		for val := 0; val < v.DomainSize; val++ {
			c = c.Insert(core.NewLiteral(v.Index, val, val == d, v.Name))
		}
	}
	return c
}
