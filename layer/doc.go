// Package layer implements the PDR layer stack L₀ ⊇ L₁ ⊇ …: a sequence
// of over-approximations of the states that can reach the goal within a
// bounded number of steps, each represented by the clauses that block
// the states outside it.
//
// The stack is a single indexed slice (Stack.layers) and each Layer
// carries integer parentIdx/childIdx links into it (-1 for "none") —
// an index vector rather than a pointer chain, since the stack only
// ever grows at one end.
//
// A layer's own clauses live in its delta; a layer's full, effective
// clause set is the union of its own delta and every deeper layer's
// delta (see Layer.Sets). Inserting a clause at layer i therefore also
// makes it visible at every shallower layer for free, which is what
// keeps the invariant L_{i+1} ⊆ L_i true without copying: AddSet skips
// the insert if the clause is already present at layer i or deeper, and
// always removes it from every shallower ancestor's own delta, since a
// clause's presence at i already implies its presence at every j < i.
package layer
