package task

import "errors"

// Sentinel errors surfaced while validating a task or constructing an
// in-memory one. Context is attached with fmt.Errorf("%w: ...") at the
// call site.
var (
	// ErrUnknownVariable indicates a fact or precondition/effect literal
	// references a variable index outside the task's declared variables.
	ErrUnknownVariable = errors.New("task: unknown variable")

	// ErrValueOutOfDomain indicates a fact references a value outside its
	// variable's declared domain size.
	ErrValueOutOfDomain = errors.New("task: value out of domain")

	// ErrDuplicateOperator indicates two operators were registered under
	// the same name.
	ErrDuplicateOperator = errors.New("task: duplicate operator name")

	// ErrEmptyGoal indicates a task was built with no goal facts at all,
	// which trivially models every state and is almost certainly a
	// construction mistake.
	ErrEmptyGoal = errors.New("task: empty goal")
)
