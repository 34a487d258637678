// Package graph is the public surface of spath: a weighted directed
// graph keyed by opaque string vertex IDs, backed by the dense
// index-addressed store and the shortest-path engine.
//
// What
//
//   - A bijective ID↔index table: every vertex ID is assigned the next
//     dense 0-based index at insertion and keeps it for the graph's
//     lifetime (there is no removal).
//   - AddEdge auto-registers unknown endpoints, collapses duplicate
//     ordered pairs to the first insertion, and feeds the dense store's
//     running negative-weight flag.
//   - SingleSource and AllPairs run the engine and translate results back
//     to IDs: unreachable vertices are simply absent from the returned
//     maps, so callers never see the internal Inf sentinel.
//
// Why
//
//   - The engine wants flat slices and integer indices; humans want names.
//     This package is the one place the two meet, so the core never sees
//     an external identifier and the caller never sees an index unless
//     they ask for one (IndexOf / IDOf).
//
// Negative cycles
//
//	Both query calls return the has-negative-cycle verdict first. Check it
//	before trusting any distance: when SingleSource reports true the
//	distance map reflects the state before detection, and AllPairs
//	produces no matrix at all.
//
// Usage
//
//	g := graph.New()
//	g.AddEdge("A", "B", 1)
//	g.AddEdge("B", "C", 2)
//	g.AddEdge("A", "C", 5)
//
//	neg, dist, err := g.SingleSource("A")
//	// neg=false, dist["C"]=3 via A→B→C
//
// Errors
//
//   - ErrEmptyVertexID  — the empty string is not a valid vertex ID
//   - ErrVertexNotFound — SingleSource start (or IndexOf lookups by the
//     caller) referencing an unknown ID; rejected here, before the core
//     ever sees it
package graph
