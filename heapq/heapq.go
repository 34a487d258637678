package heapq

import "cmp"

// entry pairs a priority with its opaque value. The entry's current
// position in the backing array is tracked by Heap.slot, which every
// swap keeps exact.
type entry[P cmp.Ordered, V comparable] struct {
	priority P // sort key under the configured Order
	value    V // opaque payload; unique within the heap
}

// Heap is an indexable binary heap: a flat entry arena plus a value→slot
// map enabling O(1) lookup and O(log n) Promote. The zero value is not
// usable; construct with New.
type Heap[P cmp.Ordered, V comparable] struct {
	order   Order         // root-selection strategy (MinFirst / MaxFirst)
	entries []entry[P, V] // backing array in heap order
	slot    map[V]int     // value → current index in entries
}

// New returns an empty Heap using the given Order.
// Complexity: O(1).
func New[P cmp.Ordered, V comparable](order Order) *Heap[P, V] {
	return &Heap[P, V]{
		order: order,
		slot:  make(map[V]int),
	}
}

// Len reports the number of entries currently held.
// Complexity: O(1).
func (h *Heap[P, V]) Len() int { return len(h.entries) }

// Contains reports whether value already has a live entry.
// Complexity: O(1).
func (h *Heap[P, V]) Contains(value V) bool {
	_, ok := h.slot[value]

	return ok
}

// Insert appends (priority, value) and restores heap order by sifting the
// new entry toward the root. If value is already present the heap is left
// untouched and Insert reports false; duplicate insertion is a safe no-op,
// not an error.
// Complexity: O(log n).
func (h *Heap[P, V]) Insert(priority P, value V) bool {
	// 1) Reject re-insertion of a live value.
	if _, ok := h.slot[value]; ok {
		return false
	}

	// 2) Append at the end and record the new slot.
	h.entries = append(h.entries, entry[P, V]{priority: priority, value: value})
	h.slot[value] = len(h.entries) - 1

	// 3) Swap upward while the parent sorts after the new entry.
	h.siftUp(len(h.entries) - 1)

	return true
}

// Peek returns the root entry without removing it.
// ok=false on an empty heap.
// Complexity: O(1).
func (h *Heap[P, V]) Peek() (priority P, value V, ok bool) {
	if len(h.entries) == 0 {
		return priority, value, false
	}

	return h.entries[0].priority, h.entries[0].value, true
}

// Extract removes and returns the root entry: swap the root with the last
// element, shrink the arena, then sift the displaced entry downward until
// no child sorts before it. ok=false on an empty heap.
// Complexity: O(log n).
func (h *Heap[P, V]) Extract() (priority P, value V, ok bool) {
	if len(h.entries) == 0 {
		return priority, value, false
	}

	// 1) Move the root out of the way and shrink by one.
	last := len(h.entries) - 1
	h.swap(0, last)
	root := h.entries[last]
	h.entries = h.entries[:last]
	delete(h.slot, root.value)

	// 2) Restore order from the (possibly violating) new root.
	if last > 0 {
		h.siftDown(0)
	}

	return root.priority, root.value, true
}

// Promote re-keys value to priority when — and only when — the new
// priority sorts strictly before the current one, then sifts the entry
// toward the root exactly as Insert does. It never moves an entry away
// from the root. Reports whether a change occurred: false for an unknown
// value or a priority that is not strictly better.
// Complexity: O(1) lookup + O(log n) sift.
func (h *Heap[P, V]) Promote(value V, priority P) bool {
	i, ok := h.slot[value]
	if !ok {
		return false
	}
	if !h.before(priority, h.entries[i].priority) {
		return false
	}
	h.entries[i].priority = priority
	h.siftUp(i)

	return true
}

// before reports whether a belongs strictly closer to the root than b
// under the configured Order.
func (h *Heap[P, V]) before(a, b P) bool {
	if h.order == MaxFirst {
		return a > b
	}

	return a < b
}

// siftUp moves entries[i] toward the root while it sorts before its
// parent, stopping at the root or the first satisfied parent.
func (h *Heap[P, V]) siftUp(i int) {
	var parent int
	for i > 0 {
		parent = (i - 1) / 2
		if !h.before(h.entries[i].priority, h.entries[parent].priority) {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

// siftDown moves entries[i] away from the root: at each step compare both
// children, choose the one sorting earliest (the stronger violation when
// both beat the parent), swap, and repeat until no child sorts before
// entries[i] or no children remain.
func (h *Heap[P, V]) siftDown(i int) {
	n := len(h.entries)
	var left, right, best int
	for {
		left = 2*i + 1
		if left >= n {
			return // no children
		}
		best = left
		right = left + 1
		if right < n && h.before(h.entries[right].priority, h.entries[left].priority) {
			best = right // right child is the more extreme of the two
		}
		if !h.before(h.entries[best].priority, h.entries[i].priority) {
			return // neither child violates
		}
		h.swap(i, best)
		i = best
	}
}

// swap exchanges entries i and j and re-points both slot records, keeping
// the value→slot map the single source of truth for entry positions.
func (h *Heap[P, V]) swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
	h.slot[h.entries[i].value] = i
	h.slot[h.entries[j].value] = j
}
