package graph

import (
	"fmt"

	"github.com/katalvlaran/spath/dense"
	"github.com/katalvlaran/spath/shortest"
)

// Graph pairs a dense store with a bijective ID↔index table.
// Single-writer: mutate from one goroutine; queries never mutate.
type Graph struct {
	store *dense.Graph   // the index-addressed core
	index map[string]int // vertex ID → dense index
	ids   []string       // dense index → vertex ID
}

// New returns an empty graph.
// Complexity: O(1).
func New() *Graph {
	return &Graph{
		store: dense.New(),
		index: make(map[string]int),
	}
}

// Order reports the number of vertices.
// Complexity: O(1).
func (g *Graph) Order() int { return len(g.ids) }

// HasNegative reports whether any negative-weight edge was ever added —
// the flag that routes SingleSource between Dijkstra and Bellman-Ford.
// Complexity: O(1).
func (g *Graph) HasNegative() bool { return g.store.HasNegative() }

// AddVertex registers id and returns its dense index. Re-adding an
// existing ID returns the index it already holds; indices are assigned
// in insertion order and never change.
// Complexity: O(1).
func (g *Graph) AddVertex(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	if idx, ok := g.index[id]; ok {
		return idx, nil
	}
	idx := g.store.Grow(1)
	g.index[id] = idx
	g.ids = append(g.ids, id)

	return idx, nil
}

// AddVertices registers each ID not already present and reports how many
// were actually new. Empty IDs are skipped.
// Complexity: O(len(ids)).
func (g *Graph) AddVertices(ids ...string) int {
	fresh := 0
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := g.index[id]; ok {
			continue
		}
		_, _ = g.AddVertex(id)
		fresh++
	}

	return fresh
}

// AddEdge inserts a directed edge fromID→toID with the given signed
// weight, auto-registering unknown endpoints. Returns false (and no
// error) when an edge for this ordered pair already exists — the
// duplicate is a no-op keeping the first weight.
// Complexity: O(log d) + O(d), d = out-degree of fromID.
func (g *Graph) AddEdge(fromID, toID string, weight int64) (bool, error) {
	from, err := g.AddVertex(fromID)
	if err != nil {
		return false, fmt.Errorf("graph: bad source: %w", err)
	}
	to, err := g.AddVertex(toID)
	if err != nil {
		return false, fmt.Errorf("graph: bad destination: %w", err)
	}

	// Indices come straight from the table, so the range check inside
	// the store cannot fire.
	added, err := g.store.AddEdge(from, to, weight)
	if err != nil {
		return false, err
	}

	return added, nil
}

// IndexOf returns the dense index assigned to id.
// Complexity: O(1).
func (g *Graph) IndexOf(id string) (int, bool) {
	idx, ok := g.index[id]

	return idx, ok
}

// IDOf returns the vertex ID holding dense index idx.
// Complexity: O(1).
func (g *Graph) IDOf(idx int) (string, bool) {
	if idx < 0 || idx >= len(g.ids) {
		return "", false
	}

	return g.ids[idx], true
}

// SingleSource computes shortest distances from startID to every
// reachable vertex. The verdict comes first: when true, a negative cycle
// is reachable from startID and the distances are the pre-detection
// snapshot. Unreachable vertices are absent from the map. Unknown start
// IDs are rejected here; the core never sees them.
// Complexity: that of the routed algorithm (see package shortest).
func (g *Graph) SingleSource(startID string) (bool, map[string]int64, error) {
	start, ok := g.index[startID]
	if !ok {
		return false, nil, fmt.Errorf("%w: %q", ErrVertexNotFound, startID)
	}

	res, err := shortest.FromSource(g.store, start)
	if err != nil {
		return false, nil, err
	}

	dist := make(map[string]int64, len(res.Dist))
	for v, d := range res.Dist {
		if d != shortest.Inf {
			dist[g.ids[v]] = d
		}
	}

	return res.NegCycle, dist, nil
}

// AllPairs computes the full distance table keyed by IDs on both axes.
// A negative cycle anywhere yields (true, nil, nil) — partial tables are
// not produced. Unreachable pairs are absent from the inner maps.
func (g *Graph) AllPairs(opts ...shortest.Option) (bool, map[string]map[string]int64, error) {
	neg, matrix, err := shortest.AllPairs(g.store, opts...)
	if err != nil {
		return false, nil, err
	}
	if neg {
		return true, nil, nil
	}

	table := make(map[string]map[string]int64, len(matrix))
	for i, row := range matrix {
		entry := make(map[string]int64, len(row))
		for j, d := range row {
			if d != shortest.Inf {
				entry[g.ids[j]] = d
			}
		}
		table[g.ids[i]] = entry
	}

	return false, table, nil
}
