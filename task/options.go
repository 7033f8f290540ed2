package task

// Option customizes a StaticTask under construction by mutating a
// staticTaskConfig before the task is frozen. Option constructors
// validate and panic on meaningless inputs; StaticTask's methods
// themselves never panic.
// Complexity: applying N options costs O(N) time, O(1) additional space.
type Option func(*staticTaskConfig)

type staticTaskConfig struct {
	variables []Variable
	operators []Operator
	initial   []Fact
	goal      []Fact
}

// WithVariables declares the task's state variables. Panics if given
// no variables (a nil slice); if applied more than once, the last call
// wins.
func WithVariables(vars ...Variable) Option {
	if vars == nil {
		panic("task: WithVariables(nil)")
	}
	return func(c *staticTaskConfig) {
		c.variables = append([]Variable(nil), vars...)
	}
}

// WithOperators declares the task's grounded operators.
func WithOperators(ops ...Operator) Option {
	return func(c *staticTaskConfig) {
		c.operators = append([]Operator(nil), ops...)
	}
}

// WithInitial declares the initial state, one fact per variable.
func WithInitial(facts ...Fact) Option {
	return func(c *staticTaskConfig) {
		c.initial = append([]Fact(nil), facts...)
	}
}

// WithGoal declares the goal condition. Panics if given zero facts —
// an empty goal is almost certainly a construction mistake, not a
// deliberate "anything solves it" task.
func WithGoal(facts ...Fact) Option {
	if len(facts) == 0 {
		panic("task: WithGoal() requires at least one fact")
	}
	return func(c *staticTaskConfig) {
		c.goal = append([]Fact(nil), facts...)
	}
}
