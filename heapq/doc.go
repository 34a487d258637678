// Package heapq provides an indexable binary heap with true decrease-key,
// the priority-queue backbone of the shortest-path engine.
//
// What
//
//   - A binary heap generic over a priority type P (any ordered type) and an
//     opaque value type V (any comparable type).
//   - Exactly one live entry per distinct value: Insert rejects duplicates
//     with a boolean no-op instead of an error.
//   - A secondary value→slot map mirrors the backing array at all times, so
//     Promote (decrease-key toward the root) locates its entry in O(1) and
//     re-sifts in O(log n) — no lazy duplicate entries, no linear scans.
//   - The root-selection strategy is injected as an Order value: MinFirst
//     puts the smallest priority at the root, MaxFirst the largest. Both are
//     the same parameterized comparison, not separate heap kinds.
//
// Why
//
//   - Dijkstra extracts each vertex once and relaxes each edge once; with an
//     indexed heap every relaxation is a Promote instead of a fresh push, so
//     the heap never holds more than one entry per vertex.
//
// Invariants
//
//   - Heap order: no entry sorts strictly before its parent under the
//     configured Order.
//   - Bookkeeping: for every value v in the heap, slot[v] is exactly the
//     backing-array index currently holding v's entry; every swap maintains
//     this on both sides.
//
// Complexity (n = entries)
//
//   - Insert / Extract / Promote: O(log n)
//   - Peek / Len / Contains:      O(1)
//
// Usage
//
//	h := heapq.New[int64, int](heapq.MinFirst)
//	h.Insert(7, 42)       // true
//	h.Insert(3, 99)       // true
//	h.Insert(1, 42)       // false — 42 already present
//	h.Promote(42, 2)      // true  — 7 → 2, moves toward the root
//	p, v, ok := h.Extract()  // 2, 42, true
//
// Empty-queue Peek/Extract report ok=false rather than failing.
package heapq
