package heapq

// Test-bridge for white-box invariant scans from heapq_test.
//
// Exposes a structural audit of the two heap invariants (heap order and
// slot bookkeeping) without widening the production API. Tests call this
// after every operation of a scripted sequence.

// InvariantViolation describes the first structural defect found by
// AuditInvariants, or zero-value when the heap is sound.
type InvariantViolation struct {
	Kind   string // "order" or "slot"
	Index  int    // offending backing-array index
	Detail string
}

// AuditInvariants scans the whole backing array and the slot map:
//   - every non-root entry must not sort strictly before its parent;
//   - slot[v] must equal the array index holding v, for every entry,
//     and the map must contain no stale values.
//
// Returns (violation, false) on the first defect, (zero, true) when sound.
// Test-only; O(n).
func (h *Heap[P, V]) AuditInvariants() (InvariantViolation, bool) {
	var parent int
	for i := range h.entries {
		if i > 0 {
			parent = (i - 1) / 2
			if h.before(h.entries[i].priority, h.entries[parent].priority) {
				return InvariantViolation{Kind: "order", Index: i, Detail: "entry sorts before its parent"}, false
			}
		}
		j, ok := h.slot[h.entries[i].value]
		if !ok {
			return InvariantViolation{Kind: "slot", Index: i, Detail: "value missing from slot map"}, false
		}
		if j != i {
			return InvariantViolation{Kind: "slot", Index: i, Detail: "slot map disagrees with array position"}, false
		}
	}
	if len(h.slot) != len(h.entries) {
		return InvariantViolation{Kind: "slot", Index: -1, Detail: "slot map holds stale values"}, false
	}

	return InvariantViolation{}, true
}
