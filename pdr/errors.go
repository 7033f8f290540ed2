package pdr

import "errors"

// Sentinel errors for the outer driver. Context is attached with
// fmt.Errorf("%w: ...") at the call site.
var (
	// ErrNoTask indicates a Driver was constructed with a nil task.Task.
	ErrNoTask = errors.New("pdr: no task supplied")

	// ErrStepAfterTerminal indicates Step was called again after the
	// driver already reported Solved or Unsolvable.
	ErrStepAfterTerminal = errors.New("pdr: driver already reached a terminal status")

	// ErrNoPlan indicates Plan was called before the driver reached
	// StatusSolved.
	ErrNoPlan = errors.New("pdr: no plan available")

	// ErrNoMatchingOperator indicates plan extraction could not find an
	// operator explaining a consecutive pair of states on the witness
	// path — an implementation-bug class, since extend only ever
	// produces successors reachable by some operator.
	ErrNoMatchingOperator = errors.New("pdr: no operator matches consecutive witness states")
)
