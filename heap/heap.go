package heap

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Heap is a binary heap backed by a slice.
type Heap[T any] struct {
	items  []T
	higher func(a, b T) bool // returns true if a must sit nearer the root than b
}

// New creates an empty heap ordered by the given comparator.
func New[T any](higher func(a, b T) bool) *Heap[T] {
	return &Heap[T]{
		items:  make([]T, 0),
		higher: higher,
	}
}

// NewMin creates a heap that yields its smallest element first.
func NewMin[T constraints.Ordered]() *Heap[T] {
	return New(func(a, b T) bool { return a < b })
}

// NewMax creates a heap that yields its largest element first.
func NewMax[T constraints.Ordered]() *Heap[T] {
	return New(func(a, b T) bool { return a > b })
}

// Len returns the number of elements in the heap.
func (h *Heap[T]) Len() int {
	return len(h.items)
}

// IsEmpty reports whether the heap holds no elements.
func (h *Heap[T]) IsEmpty() bool {
	return h.Len() == 0
}

// Add inserts value into the heap.
func (h *Heap[T]) Add(value T) {
	h.items = append(h.items, value)
	h.up(len(h.items) - 1)
}

// Extract removes and returns the highest priority element.
// ok is false if the heap was empty.
func (h *Heap[T]) Extract() (value T, ok bool) {
	n := len(h.items)
	if n == 0 {
		return value, false
	}

	last := n - 1
	h.swap(0, last)
	value = h.items[last]

	var zero T
	h.items[last] = zero
	h.items = h.items[:last]

	if last > 0 {
		h.down(0)
	}
	return value, true
}

// Next is Extract under its iterator name.
func (h *Heap[T]) Next() (T, bool) {
	return h.Extract()
}

// All returns a sequence that drains the heap in priority order.
// Elements are removed as they are yielded, so the sequence can be
// consumed only once; breaking early leaves the rest in the heap.
func (h *Heap[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := h.Extract()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// swap swaps elements at index i and j.
func (h *Heap[T]) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
}

// outranks reports whether the element at i has strictly higher priority
// than the element at j.
func (h *Heap[T]) outranks(i, j int) bool {
	return h.higher(h.items[i], h.items[j])
}

// up moves the element at index i up to its proper position.
func (h *Heap[T]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.outranks(i, parent) {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

// down moves the element at index i down to its proper position.
// Ties between children go to the left one.
func (h *Heap[T]) down(i int) {
	n := len(h.items)
	for {
		best := i
		left := 2*i + 1
		right := 2*i + 2

		if left < n && h.outranks(left, best) {
			best = left
		}
		if right < n && h.outranks(right, best) {
			best = right
		}

		if best == i {
			break
		}

		h.swap(i, best)
		i = best
	}
}
