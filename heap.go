package huffman

import "golang.org/x/exp/constraints"

// A minHeap is a min-heap of tree nodes ordered by (weight, seq).
//
// The code is identical to https://pkg.go.dev/container/heap but replaces
// interfaces with a concrete type to avoid memory overhead.
type minHeap[S constraints.Ordered] []*node[S]

func (h minHeap[S]) less(i, j int) bool {
	return h[i].weight < h[j].weight || (h[i].weight == h[j].weight && h[i].seq < h[j].seq)
}
func (h minHeap[S]) swap(i, j int) { h[i], h[j] = h[j], h[i] }

// heapify establishes the heap invariants required by the other routines.
// The complexity is O(n) where n = len(*h).
func (h *minHeap[S]) heapify() {
	n := len(*h)
	for i := n/2 - 1; i >= 0; i-- {
		h.down(i, n)
	}
}

// push the element x onto the heap.
// The complexity is O(log n) where n = len(*h).
func (h *minHeap[S]) push(x *node[S]) {
	*h = append(*h, x)
	h.up(len(*h) - 1)
}

// popHead removes the minimum element (according to less) from the heap.
// The complexity is O(log n) where n = len(*h).
func (h *minHeap[S]) popHead() {
	n := len(*h) - 1
	h.swap(0, n)
	h.down(0, n)
	*h = (*h)[0:n]
}

func (h *minHeap[S]) up(j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || !h.less(j, i) {
			break
		}
		h.swap(i, j)
		j = i
	}
}

func (h *minHeap[S]) down(i0, n int) bool {
	i := i0
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && h.less(j2, j1) {
			j = j2 // = 2*i + 2  // right child
		}
		if !h.less(j, i) {
			break
		}
		h.swap(i, j)
		i = j
	}
	return i > i0
}
