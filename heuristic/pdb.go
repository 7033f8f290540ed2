package heuristic

import (
	"fmt"

	"github.com/katalvlaran/pdrplan/core"
	"github.com/katalvlaran/pdrplan/layer"
	"github.com/katalvlaran/pdrplan/task"
)

// DistanceFunc returns an admissible estimate of the number of steps
// needed to reach the goal from the given full-length state vector
// (one entry per task variable; only the entries named by a PDB's
// pattern are meaningful to it). Supplied by the surrounding planner's
// pattern database — this package never builds one itself.
type DistanceFunc func(state []int) int

// PDB is an Oracle that blocks every abstract state of a fixed pattern
// of variables whose admissible distance estimate exceeds the layer
// index: such a state cannot reach the goal within that many steps, so
// it is safe to exclude it from L_i up front.
type PDB struct {
	pattern   []int
	variables []task.Variable
	distance  DistanceFunc
	started   bool
}

// NewPDB constructs a PDB oracle over the given pattern (a set of
// variable indices) and the task's variable declarations (for domain
// sizes and display names), using dist to estimate admissible distance.
// Panics if pattern is empty or dist is nil — a pattern-less or
// distance-less oracle is a construction mistake, not a valid no-op
// (use Null for that).
func NewPDB(pattern []int, variables []task.Variable, dist DistanceFunc) *PDB {
	if len(pattern) == 0 {
		panic("heuristic: NewPDB requires a non-empty pattern")
	}
	if dist == nil {
		panic("heuristic: NewPDB(dist=nil)")
	}
	return &PDB{pattern: append([]int(nil), pattern...), variables: variables, distance: dist}
}

// Seed enumerates every abstract state over p's pattern via multi-radix
// counting with carry propagation (the pattern's first index is the
// fastest-changing digit), and blocks any whose distance exceeds index.
func (p *PDB) Seed(index int, l *layer.Layer) {
	domainSize := make([]int, len(p.variables))
	for _, v := range p.variables {
		domainSize[v.Index] = v.DomainSize
	}

	state := make([]int, len(p.variables))
	p.started = false

	for done := false; !done; {
		done = p.advance(state, domainSize)
		if done {
			break
		}
		if dist := p.distance(state); dist > index {
			l.AddSet(p.blockingClause(state))
		}
	}
}

// advance increments the enumeration counter in place (first pattern
// index fastest-changing, with carry into later pattern indices) and
// reports whether enumeration is exhausted. The zero state itself is a
// valid abstract state and is visited on the first call: advance is
// called before any state is inspected, mirroring the reference
// implementation's "-1 then increment" seed so that state begins at the
// all-zero assignment rather than skipping it.
func (p *PDB) advance(state, domainSize []int) (done bool) {
	if !p.started {
		p.started = true
		for _, v := range p.pattern {
			state[v] = 0
		}
		return false
	}
	for i, v := range p.pattern {
		state[v]++
		if state[v] < domainSize[v] {
			return false
		}
		state[v] = 0
		if i == len(p.pattern)-1 {
			return true
		}
	}
	return true
}

// blockingClause builds the clause excluding exactly the abstract state
// named by state over p's pattern: the De Morgan invert of the cube
// asserting state[v] for every pattern variable v. Inverting the
// single assigned-value literal per variable is equivalent to a
// disjunction over every non-assigned value (a finite-domain variable
// takes exactly one value) while avoiding materialising O(domain size)
// literals per variable.
func (p *PDB) blockingClause(state []int) core.LiteralSet {
	assigned := core.NewLiteralSet(core.Cube)
	for _, v := range p.pattern {
		name := ""
		if v < len(p.variables) {
			name = fmt.Sprintf("%s=%d", p.variables[v].Name, state[v])
		}
		assigned = assigned.Insert(core.NewLiteral(v, state[v], true, name))
	}
	return assigned.Invert()
}
