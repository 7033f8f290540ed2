package pdr_test

import (
	"testing"

	"github.com/katalvlaran/pdrplan/pdr"
	"github.com/katalvlaran/pdrplan/task"
	"github.com/stretchr/testify/require"
)

func mustTask(t *testing.T, opts ...task.Option) *task.StaticTask {
	t.Helper()
	tk, err := task.NewStaticTask(opts...)
	require.NoError(t, err)
	return tk
}

func runUntilTerminal(t *testing.T, d *pdr.Driver, maxSteps int) pdr.Status {
	t.Helper()
	status := d.Status()
	for i := 0; i < maxSteps && status == pdr.StatusInProgress; i++ {
		var err error
		status, err = d.Step()
		require.NoError(t, err)
	}
	return status
}

func TestDriver_TrivialSolvable(t *testing.T) {
	tk := mustTask(t,
		task.WithVariables(task.Variable{Index: 0, DomainSize: 2, Name: "v"}),
		task.WithInitial(task.Fact{Var: 0, Val: 0}),
		task.WithGoal(task.Fact{Var: 0, Val: 1}),
		task.WithOperators(task.Operator{
			Name: "a",
			Pre:  []task.Fact{{Var: 0, Val: 0}},
			Eff:  []task.Fact{{Var: 0, Val: 1}},
		}),
	)

	d, err := pdr.NewDriver(tk)
	require.NoError(t, err)

	status, err := d.Step()
	require.NoError(t, err)
	require.Equal(t, pdr.StatusSolved, status)

	plan, err := d.Plan()
	require.NoError(t, err)
	require.Len(t, plan, 1)
	require.Equal(t, "a", plan[0].Name)
}

func TestDriver_TriviallyUnsolvable(t *testing.T) {
	tk := mustTask(t,
		task.WithVariables(task.Variable{Index: 0, DomainSize: 2, Name: "v"}),
		task.WithInitial(task.Fact{Var: 0, Val: 0}),
		task.WithGoal(task.Fact{Var: 0, Val: 1}),
	)

	d, err := pdr.NewDriver(tk)
	require.NoError(t, err)

	status, err := d.Step()
	require.NoError(t, err)
	require.Equal(t, pdr.StatusFailed, status)

	_, err = d.Plan()
	require.ErrorIs(t, err, pdr.ErrNoPlan)
}

func TestDriver_TwoIndependentStepsSolveInSomeOrder(t *testing.T) {
	tk := mustTask(t,
		task.WithVariables(
			task.Variable{Index: 0, DomainSize: 2, Name: "v1"},
			task.Variable{Index: 1, DomainSize: 2, Name: "v2"},
		),
		task.WithInitial(task.Fact{Var: 0, Val: 0}, task.Fact{Var: 1, Val: 0}),
		task.WithGoal(task.Fact{Var: 0, Val: 1}, task.Fact{Var: 1, Val: 1}),
		task.WithOperators(
			task.Operator{Name: "a", Pre: []task.Fact{{Var: 0, Val: 0}}, Eff: []task.Fact{{Var: 0, Val: 1}}},
			task.Operator{Name: "b", Pre: []task.Fact{{Var: 1, Val: 0}}, Eff: []task.Fact{{Var: 1, Val: 1}}},
		),
	)

	d, err := pdr.NewDriver(tk)
	require.NoError(t, err)

	status := runUntilTerminal(t, d, 10)
	require.Equal(t, pdr.StatusSolved, status)

	plan, err := d.Plan()
	require.NoError(t, err)
	require.Len(t, plan, 2)
	names := []string{plan[0].Name, plan[1].Name}
	require.ElementsMatch(t, []string{"a", "b"}, names)
}

// TestDriver_NeedsPropagation builds a strict three-step chain (v1 then
// v2 then v3, each operator gated on the previous variable already
// holding its target value) so that no plan of length shorter than 3
// exists and the layer stack must accumulate propagated clauses before
// a plan is found.
func TestDriver_NeedsPropagation(t *testing.T) {
	tk := mustTask(t,
		task.WithVariables(
			task.Variable{Index: 0, DomainSize: 2, Name: "v1"},
			task.Variable{Index: 1, DomainSize: 2, Name: "v2"},
			task.Variable{Index: 2, DomainSize: 2, Name: "v3"},
		),
		task.WithInitial(
			task.Fact{Var: 0, Val: 0},
			task.Fact{Var: 1, Val: 0},
			task.Fact{Var: 2, Val: 0},
		),
		task.WithGoal(task.Fact{Var: 2, Val: 1}),
		task.WithOperators(
			task.Operator{Name: "set-v1", Pre: []task.Fact{{Var: 0, Val: 0}}, Eff: []task.Fact{{Var: 0, Val: 1}}},
			task.Operator{
				Name: "set-v2",
				Pre:  []task.Fact{{Var: 0, Val: 1}, {Var: 1, Val: 0}},
				Eff:  []task.Fact{{Var: 1, Val: 1}},
			},
			task.Operator{
				Name: "set-v3",
				Pre:  []task.Fact{{Var: 1, Val: 1}, {Var: 2, Val: 0}},
				Eff:  []task.Fact{{Var: 2, Val: 1}},
			},
		),
	)

	d, err := pdr.NewDriver(tk)
	require.NoError(t, err)

	// A length-3 plan is only reachable once the bound k reaches 3: the
	// first two steps must strengthen the layers and report in-progress.
	for step := 0; step < 2; step++ {
		status, err := d.Step()
		require.NoError(t, err)
		require.Equal(t, pdr.StatusInProgress, status)
	}
	status, err := d.Step()
	require.NoError(t, err)
	require.Equal(t, pdr.StatusSolved, status)

	plan, err := d.Plan()
	require.NoError(t, err)
	require.Len(t, plan, 3)
	require.Equal(t, []string{"set-v1", "set-v2", "set-v3"}, []string{plan[0].Name, plan[1].Name, plan[2].Name})
	require.Greater(t, d.Stats().ObligationExpansions, 0)

	// The in-progress steps must have strengthened the stack beyond the
	// goal's own unit clauses: layer 1 ends up with derived clauses of
	// its own.
	l1, ok := d.Layer(1)
	require.True(t, ok)
	require.Greater(t, l1.Size(), 0)
}

func TestDriver_GoalAlreadySatisfiedYieldsEmptyPlan(t *testing.T) {
	tk := mustTask(t,
		task.WithVariables(task.Variable{Index: 0, DomainSize: 2, Name: "v"}),
		task.WithInitial(task.Fact{Var: 0, Val: 1}),
		task.WithGoal(task.Fact{Var: 0, Val: 1}),
	)

	d, err := pdr.NewDriver(tk)
	require.NoError(t, err)

	status, err := d.Step()
	require.NoError(t, err)
	require.Equal(t, pdr.StatusSolved, status)

	plan, err := d.Plan()
	require.NoError(t, err)
	require.Empty(t, plan)
}

// TestDriver_FixpointOnUnreachableGoal covers a goal value no operator
// can ever produce: the driver must terminate Failed within a bound
// proportional to the number of variables, rather than looping forever.
func TestDriver_FixpointOnUnreachableGoal(t *testing.T) {
	tk := mustTask(t,
		task.WithVariables(task.Variable{Index: 0, DomainSize: 3, Name: "v"}),
		task.WithInitial(task.Fact{Var: 0, Val: 0}),
		task.WithGoal(task.Fact{Var: 0, Val: 2}),
		task.WithOperators(
			task.Operator{Name: "noop-ish", Pre: []task.Fact{{Var: 0, Val: 0}}, Eff: []task.Fact{{Var: 0, Val: 1}}},
		),
	)

	d, err := pdr.NewDriver(tk)
	require.NoError(t, err)

	status := runUntilTerminal(t, d, 10)
	require.Equal(t, pdr.StatusFailed, status)
}

func TestDriver_StepAfterTerminalReturnsError(t *testing.T) {
	tk := mustTask(t,
		task.WithVariables(task.Variable{Index: 0, DomainSize: 2}),
		task.WithInitial(task.Fact{Var: 0, Val: 0}),
		task.WithGoal(task.Fact{Var: 0, Val: 1}),
	)
	d, err := pdr.NewDriver(tk)
	require.NoError(t, err)

	_, err = d.Step()
	require.NoError(t, err)
	require.Equal(t, pdr.StatusFailed, d.Status())

	_, err = d.Step()
	require.ErrorIs(t, err, pdr.ErrStepAfterTerminal)
}

func TestNewDriver_NilTask(t *testing.T) {
	_, err := pdr.NewDriver(nil)
	require.ErrorIs(t, err, pdr.ErrNoTask)
}
