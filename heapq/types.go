// Package heapq defines the ordering strategy for the indexed heap.
//
// Order decides which of two priorities belongs closer to the root.
// MinFirst yields a min-heap (Dijkstra's configuration), MaxFirst a
// max-heap. Both variants share one comparison parameterized by Order;
// there is no separate max-heap type.
package heapq

// Order selects the root-selection strategy of a Heap.
type Order int

const (
	// MinFirst orders smaller priorities toward the root (min-heap).
	MinFirst Order = iota

	// MaxFirst orders larger priorities toward the root (max-heap).
	MaxFirst
)

// String returns a human-readable name for the order, for diagnostics.
func (o Order) String() string {
	if o == MaxFirst {
		return "MaxFirst"
	}

	return "MinFirst"
}
