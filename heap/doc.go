// Package heap implements a generic binary heap whose ordering is supplied
// by the caller as a comparison function.
//
// The heap is stored in a slice laid out as a complete binary tree: the
// root is at index 0 and the children of index i are at 2i+1 and 2i+2.
// The comparison function higher(a, b) returns true when a must be closer
// to the root than b, so a < b gives a min-heap and a > b a max-heap.
//
// Basic usage:
//
//	h := heap.NewMin[int]()
//	h.Add(4)
//	h.Add(2)
//	h.Add(9)
//
//	v, ok := h.Extract() // 2, true
//
//	for v := range h.All() {
//	    fmt.Println(v) // 4, 9
//	}
//
// Extract reports an empty heap through its second return value, so zero
// values are stored and returned like any other element.
//
// A Heap is not safe for concurrent use.
package heap
