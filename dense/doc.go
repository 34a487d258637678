// Package dense stores a weighted directed graph in a dense,
// index-addressed form: vertices are the integers 0..n-1 and each vertex
// owns an ascending-sorted list of outgoing arcs.
//
// What
//
//   - Vertices are appended with Grow and addressed forever by the index
//     assigned at insertion; removal does not exist, so indices are stable
//     for the graph's lifetime.
//   - At most one arc per ordered (from, to) pair: AddEdge of a duplicate
//     destination is a boolean no-op that keeps the first weight.
//   - Adjacency lists stay sorted ascending by destination index, so
//     insertion and duplicate detection share one binary search.
//   - Clone produces a fully independent deep copy; Augment produces a
//     deep copy plus one synthetic vertex wired to chosen originals; both
//     leave the receiver untouched.
//   - Reweight applies Johnson's potential transform w + pot[u] − pot[v]
//     in place. Apply it only to a throwaway Clone, never a live graph.
//
// Why
//
//   - The shortest-path engine addresses everything by small integers:
//     distance vectors become flat slices, "seen" sets become bitsets, and
//     Johnson's parallel fan-out writes disjoint matrix rows with no
//     coordination. External identifiers live one layer up (package graph).
//
// Negative-weight tracking
//
//	The store maintains a running has-negative flag on every insertion
//	instead of rescanning edges per query; the engine consults it to route
//	between Dijkstra and Bellman-Ford.
//
// Concurrency
//
//	A Graph is single-writer. Concurrent reads are safe only while no
//	mutation runs — exactly the discipline of Johnson's parallel phase,
//	which reads an immutable re-weighted clone.
//
// Complexity (n = vertices, d = out-degree)
//
//   - Grow: amortized O(k); AddEdge: O(log d) search + O(d) insert
//   - ArcsOf: O(1); Clone/Augment: O(n + e); Reweight: O(e)
//
// Errors
//
//   - ErrIndexOutOfRange — an index outside [0, n) (defensive; callers
//     translating external IDs should have validated first)
//   - ErrBadPotential    — Reweight given a vector of the wrong length
package dense
