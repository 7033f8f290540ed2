package task

import "fmt"

// StaticTask is a minimal in-memory Task built from literal data via
// functional options. It is meant for tests, Example functions, and
// small hand-assembled problems — a full planning domain is expected to
// supply its own Task implementation instead.
type StaticTask struct {
	variables []Variable
	operators []Operator
	initial   []Fact
	goal      []Fact
}

// NewStaticTask applies opts in order and validates the result:
// - every fact (initial, goal, operator pre/eff) references a declared
//   variable and a value within that variable's domain;
// - operator names are unique;
// - the goal is non-empty.
// Returns a descriptive error wrapping the relevant sentinel rather
// than panicking, since the input here is expected to come from a
// parsed or generated task description rather than a literal call site.
func NewStaticTask(opts ...Option) (*StaticTask, error) {
	cfg := &staticTaskConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	t := &StaticTask{
		variables: cfg.variables,
		operators: cfg.operators,
		initial:   cfg.initial,
		goal:      cfg.goal,
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *StaticTask) validate() error {
	domain := make(map[int]int, len(t.variables))
	for _, v := range t.variables {
		domain[v.Index] = v.DomainSize
	}

	checkFact := func(f Fact) error {
		size, ok := domain[f.Var]
		if !ok {
			return fmt.Errorf("%w: variable %d (fact %s)", ErrUnknownVariable, f.Var, f.Name)
		}
		if f.Val < 0 || f.Val >= size {
			return fmt.Errorf("%w: variable %d value %d (domain size %d)", ErrValueOutOfDomain, f.Var, f.Val, size)
		}
		return nil
	}

	for _, f := range t.initial {
		if err := checkFact(f); err != nil {
			return err
		}
	}
	if len(t.goal) == 0 {
		return ErrEmptyGoal
	}
	for _, f := range t.goal {
		if err := checkFact(f); err != nil {
			return err
		}
	}

	seen := make(map[string]struct{}, len(t.operators))
	for _, op := range t.operators {
		if _, dup := seen[op.Name]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateOperator, op.Name)
		}
		seen[op.Name] = struct{}{}
		for _, f := range op.Pre {
			if err := checkFact(f); err != nil {
				return fmt.Errorf("operator %s precondition: %w", op.Name, err)
			}
		}
		for _, f := range op.Eff {
			if err := checkFact(f); err != nil {
				return fmt.Errorf("operator %s effect: %w", op.Name, err)
			}
		}
	}
	return nil
}

// Variables implements Task.
func (t *StaticTask) Variables() []Variable { return t.variables }

// Operators implements Task.
func (t *StaticTask) Operators() []Operator { return t.operators }

// Initial implements Task.
func (t *StaticTask) Initial() []Fact { return t.initial }

// Goal implements Task.
func (t *StaticTask) Goal() []Fact { return t.goal }

var _ Task = (*StaticTask)(nil)
