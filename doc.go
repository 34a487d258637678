// Package spath is a dense, index-addressed shortest-path toolkit:
// single-source and all-pairs distances over weighted directed graphs,
// tolerant of negative edge weights and honest about negative cycles.
//
// 🚀 What is spath?
//
//	A compact, deterministic library built from three tightly coupled parts:
//		• heapq/    — indexed binary heap with true O(log n) decrease-key
//		• dense/    — dense 0..n-1 graph store with sorted adjacency arcs,
//		              deep copy, augmentation and Johnson re-weighting
//		• shortest/ — Bellman-Ford, Dijkstra and Johnson's all-pairs engine
//		              with a parallel Dijkstra fan-out
//		• graph/    — the friendly surface: opaque vertex IDs mapped onto
//		              the dense index space, single-source & all-pairs calls
//
// ✨ Why choose spath?
//
//   - Negative weights welcome — the engine routes to Bellman-Ford on its
//     own once a negative edge is registered, and negative cycles are a
//     reported outcome, never a silent lie in the distance vector
//   - Real decrease-key — no lazy duplicate heap entries; one entry per
//     vertex, promoted in place
//   - Parallel all-pairs — Johnson's n Dijkstra runs execute on a bounded
//     worker pool and join before you ever see the matrix
//   - Pure Go — no cgo, deterministic results, sentinel errors throughout
//
// Quick ASCII example:
//
//	    A ─1→ B
//	    │     │
//	    5     2
//	    ▼     ▼
//	    └───▶ C ─1→ D     single-source(A): A=0, B=1, C=3 (via B), D=4
//
// Dive into each package's doc.go for contracts, complexity and examples.
//
//	go get github.com/katalvlaran/spath
package spath
