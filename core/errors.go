package core

import "errors"

// Sentinel errors for the core algebra. Callers should branch on these
// with errors.Is; context is attached with fmt.Errorf("%w: ...") at the
// call site rather than baked into the sentinel message.
var (
	// ErrKindMismatch indicates a binary set operation (Union, Diff, or a
	// LiteralSetSet Add/IsSubsetEq) was called on operands of different
	// Kind. IntersectSize does not check Kind.
	ErrKindMismatch = errors.New("core: literal sets have different kinds")

	// ErrNotCube indicates an operation that requires a cube (ApplyCube,
	// Models as the receiver) was called on a clause.
	ErrNotCube = errors.New("core: literal set is not a cube")

	// ErrNotClause indicates an operation that requires a clause was
	// called on a cube.
	ErrNotClause = errors.New("core: literal set is not a clause")
)

// contradiction panics to signal a core invariant violation: inserting a
// literal into a cube whose inverse is already a member. This is a fatal
// implementation-bug class per the planner's error taxonomy, not a
// recoverable error — it is the Go analogue of the reference
// implementation's assert(...) on cube insertion.
func contradiction(s LiteralSet, l Literal) {
	panic("core: cube already contains " + l.Invert().String() + ", cannot insert " + l.String() + " into " + s.String())
}
