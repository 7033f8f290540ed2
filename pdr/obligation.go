package pdr

import "github.com/katalvlaran/pdrplan/core"

// obligation is a pending proof duty from the path-construction phase:
// "state must be reachable from the initial state within priority
// steps of the current layer bound, or extend must produce a reason
// blocking it." parent recovers the witnessing path once an obligation
// of priority 0 is popped (see Driver.extractPlan). This is a plain
// singly-linked chain; Go's garbage collector makes any extra
// ownership bookkeeping around the parent pointer unnecessary.
type obligation struct {
	state    core.LiteralSet
	priority int
	parent   *obligation
}

// obligationPQ is a min-heap of *obligation ordered by ascending
// priority: a plain slice implementing container/heap.Interface,
// manipulated only through the heap package's Push/Pop.
type obligationPQ []*obligation

func (pq obligationPQ) Len() int            { return len(pq) }
func (pq obligationPQ) Less(i, j int) bool  { return pq[i].priority < pq[j].priority }
func (pq obligationPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *obligationPQ) Push(x interface{}) { *pq = append(*pq, x.(*obligation)) }
func (pq *obligationPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
