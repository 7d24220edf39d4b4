package heap_test

import (
	"fmt"

	"github.com/davidvella/binheap/heap"
)

// ExampleNewMin demonstrates using the heap as a min-heap.
func ExampleNewMin() {
	h := heap.NewMin[int]()

	h.Add(4)
	h.Add(2)
	h.Add(9)
	h.Add(11)

	fmt.Println("Len:", h.Len())
	for h.Len() > 0 {
		v, _ := h.Extract()
		fmt.Println("Extracted:", v)
	}

	// Output:
	// Len: 4
	// Extracted: 2
	// Extracted: 4
	// Extracted: 9
	// Extracted: 11
}

// ExampleNewMax demonstrates draining a max-heap with range.
func ExampleNewMax() {
	h := heap.NewMax[string]()

	h.Add("banana")
	h.Add("cherry")
	h.Add("apple")

	for v := range h.All() {
		fmt.Println(v)
	}
	fmt.Println("Empty:", h.IsEmpty())

	// Output:
	// cherry
	// banana
	// apple
	// Empty: true
}

// ExampleNew demonstrates using the heap with a custom type.
func ExampleNew() {
	type Task struct {
		Priority int
		Name     string
	}

	h := heap.New(func(a, b Task) bool {
		return a.Priority < b.Priority
	})

	h.Add(Task{Priority: 2, Name: "Low priority"})
	h.Add(Task{Priority: 1, Name: "High priority"})

	for {
		task, ok := h.Next()
		if !ok {
			break
		}
		fmt.Printf("Processing: %s (priority %d)\n", task.Name, task.Priority)
	}

	// Output:
	// Processing: High priority (priority 1)
	// Processing: Low priority (priority 2)
}
