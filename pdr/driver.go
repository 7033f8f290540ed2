package pdr

import (
	"container/heap"
	"fmt"
	"time"

	"github.com/katalvlaran/pdrplan/core"
	"github.com/katalvlaran/pdrplan/layer"
	"github.com/katalvlaran/pdrplan/task"
)

// Status is the outcome of a single Driver.Step call.
type Status int

const (
	// StatusInProgress means neither a plan nor a fixpoint was found
	// yet; Step should be called again.
	StatusInProgress Status = iota
	// StatusSolved means Step found a plan; call Plan to retrieve it.
	StatusSolved
	// StatusFailed means the layer stack reached a fixpoint: the task
	// is unsolvable.
	StatusFailed
)

// String renders the Status for diagnostics.
func (st Status) String() string {
	switch st {
	case StatusSolved:
		return "solved"
	case StatusFailed:
		return "failed"
	default:
		return "in-progress"
	}
}

// DriverStats holds the diagnostic counters a surrounding planner's
// statistics formatter would report (that formatter itself is an
// out-of-scope external collaborator; this is the raw counters it
// would consume): seeding time, per-layer seeded sizes, and the
// obligation-expansion count.
type DriverStats struct {
	// SeedingDuration is the cumulative time spent inside the
	// heuristic oracle's Seed calls across every layer created so far.
	SeedingDuration time.Duration
	// SeededLayerSizes is, per layer index in creation order, the
	// number of clauses the oracle seeded into that layer — captured
	// before the goal's unit clauses (layer 0 only) are added, so it
	// reflects the oracle's own contribution rather than I2's.
	SeededLayerSizes []int
	// ObligationExpansions counts every obligation popped from the
	// priority queue across every Step call so far.
	ObligationExpansions int
	// LayerSizes is, per layer index, that layer's current effective
	// clause count (layer.Layer.Size), refreshed at the end of every
	// Step call.
	LayerSizes []int
}

// String renders the counters as a single-line diagnostic dump.
func (st DriverStats) String() string {
	return fmt.Sprintf(
		"pdr stats: obligations=%d seeding=%s seeded_sizes=%v layer_sizes=%v",
		st.ObligationExpansions, st.SeedingDuration, st.SeededLayerSizes, st.LayerSizes,
	)
}

// Driver is the outer PDR loop: it owns the layer stack and advances it
// one outer iteration per Step call, alternating path construction
// (the obligation queue) with clause propagation between adjacent
// layers, until it proves the task solved or unsolvable.
//
// A Driver is not safe for concurrent use: the only cooperative
// suspension point is the boundary between Step calls.
type Driver struct {
	t       task.Task
	vars    []task.Variable
	ops     []task.Operator
	effects []core.LiteralSet // A_effect, indexed in parallel with ops
	carrier core.LiteralSet   // allVariablesCube(vars), built once

	goal    core.LiteralSet
	initial core.LiteralSet

	stack *layer.Stack
	cfg   driverConfig

	k      int
	status Status
	plan   []task.Operator
	stats  DriverStats
}

// NewDriver constructs a Driver over t, applying opts left to right.
// Returns ErrNoTask if t is nil.
func NewDriver(t task.Task, opts ...Option) (*Driver, error) {
	if t == nil {
		return nil, ErrNoTask
	}
	cfg := defaultDriverConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	vars := t.Variables()
	ops := t.Operators()
	sizes := domainSizes(vars)

	effects := make([]core.LiteralSet, len(ops))
	for i, op := range ops {
		effects[i] = effectCube(op, sizes)
	}

	d := &Driver{
		t:       t,
		vars:    vars,
		ops:     ops,
		effects: effects,
		carrier: allVariablesCube(vars),
		goal:    task.GoalCube(t),
		initial: fullStateCube(vars, t.Initial()),
		stack:   layer.NewStack(),
		cfg:     cfg,
		k:       1,
		status:  StatusInProgress,
	}
	return d, nil
}

// Status reports the driver's current terminal/non-terminal state.
func (d *Driver) Status() Status { return d.status }

// Iteration reports the outer-loop counter k: the bound the next Step
// call will search with (the priority the initial obligation enters
// the queue at). It starts at 1 — searching with bound 0 could only
// ever certify a zero-length plan, which Step handles up front by
// checking the initial state against the goal cube directly.
func (d *Driver) Iteration() int { return d.k }

// Stats returns a snapshot of the driver's diagnostic counters.
func (d *Driver) Stats() DriverStats { return d.stats }

// Layer exposes the stack's layer at index i for introspection (tests,
// diagnostics); it does not create the layer if absent.
func (d *Driver) Layer(i int) (*layer.Layer, bool) { return d.stack.Layer(i) }

// Plan returns the operator sequence found once Status() == StatusSolved.
// Returns ErrNoPlan otherwise.
func (d *Driver) Plan() ([]task.Operator, error) {
	if d.status != StatusSolved {
		return nil, ErrNoPlan
	}
	return append([]task.Operator(nil), d.plan...), nil
}

// ensureLayer creates layer i if it does not exist yet, seeding it:
// the heuristic oracle first (its contribution alone is recorded in
// DriverStats.SeededLayerSizes), then — layer 0 only — a unit clause
// per goal literal (I2: L0 always blocks every non-goal state at the
// finest granularity). Layers beyond 0 inherit the rest of their
// effective clause set from deeper layers automatically via
// Layer.Sets; nothing else needs seeding here.
func (d *Driver) ensureLayer(i int) *layer.Layer {
	for d.stack.Len() <= i {
		idx := d.stack.Len()
		l := d.stack.EnsureLayer(idx)

		start := time.Now()
		d.cfg.oracle.Seed(idx, l)
		d.stats.SeedingDuration += time.Since(start)
		d.stats.SeededLayerSizes = append(d.stats.SeededLayerSizes, l.Size())

		if idx == 0 {
			for _, lit := range d.goal.Literals() {
				l.AddSet(core.NewLiteralSetFrom(core.Clause, lit))
			}
		}
	}
	l, _ := d.stack.Layer(i)
	return l
}

// Step performs one outer PDR iteration: a path-construction phase
// (obligation queue + extend) that either finds a plan or exhausts
// itself strengthening the layer stack, followed by a clause-
// propagation phase that either detects a fixpoint (unsolvable) or
// advances the iteration counter k.
func (d *Driver) Step() (Status, error) {
	if d.status != StatusInProgress {
		return d.status, ErrStepAfterTerminal
	}

	// A zero-length plan needs no layer reasoning at all: if the
	// initial state already models the goal cube, the task is solved
	// before the first obligation is built.
	if d.initial.Models(d.goal) {
		d.status = StatusSolved
		d.plan = nil
		return d.status, nil
	}

	k := d.k
	Lk := d.ensureLayer(k)

	if Lk.Models(d.initial) {
		if status, done := d.runPathConstruction(k); done {
			d.recordLayerSizes()
			return status, nil
		}
	}

	if d.propagate(k) {
		d.status = StatusFailed
		d.recordLayerSizes()
		return d.status, nil
	}

	d.k++
	d.recordLayerSizes()
	return StatusInProgress, nil
}

// runPathConstruction drives the obligation priority queue from the
// initial state at priority k down toward priority 0. It reports
// (status, true) if it settled the driver's terminal status (a plan
// was found), or (_, false) if the queue drained without doing so, in
// which case the caller proceeds to clause propagation.
func (d *Driver) runPathConstruction(k int) (Status, bool) {
	pq := &obligationPQ{{state: d.initial, priority: k, parent: nil}}
	heap.Init(pq)

	for pq.Len() > 0 {
		ob := heap.Pop(pq).(*obligation)
		d.stats.ObligationExpansions++

		if ob.priority == 0 {
			d.plan = d.extractPlan(ob)
			d.status = StatusSolved
			return d.status, true
		}

		Lprev := d.ensureLayer(ob.priority - 1)
		if Lprev.Models(ob.state) {
			// extend requires s ⊭ L. A state already modelling the
			// next layer simply qualifies there as-is: re-enter it at
			// the lower priority with its chain untouched.
			heap.Push(pq, &obligation{state: ob.state, priority: ob.priority - 1, parent: ob.parent})
			continue
		}
		res := extend(ob.state, Lprev, d.ops, d.effects)
		if res.hasSuccessor {
			heap.Push(pq, ob)
			heap.Push(pq, &obligation{state: res.successor, priority: ob.priority - 1, parent: ob})
			continue
		}

		Li, ok := d.stack.Layer(ob.priority)
		if !ok {
			panic(fmt.Sprintf("pdr: obligation references uncreated layer %d", ob.priority))
		}
		Li.AddSet(res.reason.Invert())
		if d.cfg.obligationRescheduling && ob.priority < k {
			heap.Push(pq, &obligation{state: ob.state, priority: ob.priority + 1, parent: ob.parent})
		}
	}
	return StatusInProgress, false
}

// propagate runs the clause-propagation phase for the current
// iteration: for i = 1..k+1, it lifts every clause of L_{i-1}'s delta
// that propagates into L_i, and reports true the moment some
// L_{i-1}'s delta is fully relocated (the fixpoint that certifies
// unsolvability).
func (d *Driver) propagate(k int) (fixpoint bool) {
	for i := 1; i <= k+1; i++ {
		prev, ok := d.stack.Layer(i - 1)
		if !ok {
			panic(fmt.Sprintf("pdr: propagation reached uncreated layer %d", i-1))
		}
		cur := d.ensureLayer(i)

		snapshot := prev.Delta()
		for _, c := range snapshot {
			if d.propagates(c, prev) {
				cur.AddSet(c)
			}
		}
		if len(prev.Delta()) == 0 {
			return true
		}
	}
	return false
}

// propagates implements the per-clause propagation test: c propagates
// iff for every operator a, either the witness cube s_c fails a's
// precondition or applying a's effect to s_c fails to model L_{i-1}.
func (d *Driver) propagates(c core.LiteralSet, Lprev *layer.Layer) bool {
	sc := d.carrier.Clone()
	for _, l := range c.Literals() {
		sc = sc.ApplyLiteral(l.Invert())
	}

	for i, op := range d.ops {
		pre := preconditionCube(op)
		if !sc.Models(pre) {
			continue
		}
		applied := sc.Clone().ApplyCube(d.effects[i])
		if Lprev.Models(applied) {
			return false
		}
	}
	return true
}

// extractPlan walks terminal's parent chain back to the initial state,
// reverses it into forward order, and finds one operator matching each
// consecutive pair of states. Panics with ErrNoMatchingOperator if some
// pair has no matching operator — an implementation-bug class, since
// extend only ever produces successors reachable by some operator's
// application.
func (d *Driver) extractPlan(terminal *obligation) []task.Operator {
	var states []core.LiteralSet
	for ob := terminal; ob != nil; ob = ob.parent {
		states = append(states, ob.state)
	}
	for i, j := 0, len(states)-1; i < j; i, j = i+1, j-1 {
		states[i], states[j] = states[j], states[i]
	}

	plan := make([]task.Operator, 0, len(states)-1)
	for i := 1; i < len(states); i++ {
		op, ok := d.matchOperator(states[i-1], states[i])
		if !ok {
			panic(fmt.Errorf("%w: between plan step %d and %d", ErrNoMatchingOperator, i-1, i))
		}
		plan = append(plan, op)
	}
	return plan
}

// matchOperator returns the first operator (input order) whose
// precondition holds in prev and whose effect, applied to prev,
// reaches cur exactly.
func (d *Driver) matchOperator(prev, cur core.LiteralSet) (task.Operator, bool) {
	for i, op := range d.ops {
		pre := preconditionCube(op)
		if !pre.IsSubsetEq(prev) {
			continue
		}
		applied := prev.Clone().ApplyCube(d.effects[i])
		if applied.Equal(cur) {
			return op, true
		}
	}
	return task.Operator{}, false
}

// recordLayerSizes refreshes DriverStats.LayerSizes from the current
// stack state.
func (d *Driver) recordLayerSizes() {
	sizes := make([]int, d.stack.Len())
	for i := range sizes {
		l, _ := d.stack.Layer(i)
		sizes[i] = l.Size()
	}
	d.stats.LayerSizes = sizes
}
