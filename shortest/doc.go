// Package shortest computes single-source and all-pairs shortest
// distances over a dense.Graph, in the graph's index space.
//
// What
//
//   - BellmanFord — work-list relaxation; handles negative weights and
//     detects negative-cost cycles reachable from the start.
//   - Dijkstra — indexed-heap relaxation with true decrease-key; requires
//     non-negative weights reachable from the start (caller contract).
//   - Johnson — all-pairs: augment with a synthetic zero-cost source, one
//     Bellman-Ford for potentials, re-weight a throwaway clone, then run
//     Dijkstra from every vertex on a bounded parallel pool and undo the
//     re-weighting per row.
//   - FromSource / AllPairs — the engine's routing surface: FromSource
//     picks Bellman-Ford when the graph has ever seen a negative edge,
//     Dijkstra otherwise; AllPairs always goes through Johnson.
//
// Why
//
//   - One engine, three interchangeable algorithms over the same dense
//     index space: flat distance slices, bitset bookkeeping, and an
//     embarrassingly parallel all-pairs fan-out with disjoint row writes.
//
// Negative cycles
//
//	NegCycle is an outcome, not an error. Bellman-Ford proves a cycle by
//	the standard relaxation bound: any simple path has at most n−1 edges,
//	so a round that still improves after n full rounds certifies a
//	negative cycle; the distances returned are those of the round before
//	the violating one. Dijkstra is structurally blind to negative cycles
//	and always reports NegCycle=false.
//
// Routing caveat
//
//	FromSource consults the store's running has-negative flag: a negative
//	edge anywhere in the graph forces Bellman-Ford, even when that edge is
//	unreachable from the requested start. The safe-but-slower choice is
//	deliberate, inherited behavior.
//
// Concurrency
//
//	Everything is single-threaded and synchronous except Johnson's fan-out:
//	each worker owns a private heap and bitset, reads the shared immutable
//	re-weighted clone, and writes only its own matrix row. The call joins
//	all workers before returning; a failing worker aborts the whole call —
//	partial matrices are not a supported outcome.
//
// Complexity (V = vertices, E = edges)
//
//   - BellmanFord: O(V·E) worst case, early exit on a quiet round
//   - Dijkstra:    O((V + E) log V)
//   - Johnson:     O(V·E + V·(V + E) log V), Dijkstra phase parallel
//
// Errors
//
//   - ErrNilGraph        — nil graph pointer
//   - ErrStartOutOfRange — start index outside [0, Order())
//   - ErrBadWorkers      — WithWorkers given a non-positive count (panic)
package shortest
