package dijkstra

import (
	"cmp"

	"github.com/emirpasic/gods/trees/binaryheap"
)

// entry is a tentative (distance, vertex) pair waiting in the frontier.
type entry[V cmp.Ordered] struct {
	vertex V
	dist   float64
}

// frontier is a binary min-heap of entries ordered by distance, then vertex.
//
// It never supports decrease-key: an improved distance is pushed as a new
// entry and the superseded one is discarded on pop by the settled check.
// The vertex tie-break only makes extraction order reproducible.
type frontier[V cmp.Ordered] struct {
	heap *binaryheap.Heap
}

func newFrontier[V cmp.Ordered]() *frontier[V] {
	return &frontier[V]{heap: binaryheap.NewWith(compareEntries[V])}
}

func compareEntries[V cmp.Ordered](a, b interface{}) int {
	ea, eb := a.(entry[V]), b.(entry[V])
	if c := cmp.Compare(ea.dist, eb.dist); c != 0 {
		return c
	}

	return cmp.Compare(ea.vertex, eb.vertex)
}

func (f *frontier[V]) push(v V, dist float64) {
	f.heap.Push(entry[V]{vertex: v, dist: dist})
}

// pop removes the nearest entry; ok is false when the frontier is empty.
func (f *frontier[V]) pop() (entry[V], bool) {
	x, ok := f.heap.Pop()
	if !ok {
		return entry[V]{}, false
	}

	return x.(entry[V]), true
}

func (f *frontier[V]) len() int { return f.heap.Size() }
