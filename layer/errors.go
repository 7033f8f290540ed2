package layer

import "errors"

// Sentinel errors for the layer stack. Context is attached with
// fmt.Errorf("%w: ...") at the call site.
var (
	// ErrNotClause indicates AddSet was called with a cube rather than a
	// clause — only clauses are ever stored in a layer.
	ErrNotClause = errors.New("layer: only clauses may be added to a layer")

	// ErrLayerIndexOutOfRange indicates EnsureLayer was given a negative
	// index. (Stack.Layer reports an uncreated layer with ok == false
	// instead.)
	ErrLayerIndexOutOfRange = errors.New("layer: index out of range")

	// ErrInvariantViolation indicates checkInvariants found the stack in
	// an inconsistent state (I1 or I3) — a programmer error in this package,
	// never something caller input can trigger.
	ErrInvariantViolation = errors.New("layer: invariant violation")
)

// debugAsserts gates the expensive O(n²)-ish cross-layer consistency
// checks in checkInvariants. Left false in production; flipped on by
// SetDebugAssertions, which pdr.WithDebugAssertions calls.
var debugAsserts = false
