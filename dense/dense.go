package dense

import (
	"fmt"
	"sort"
)

// Arc is one outgoing edge of a vertex: a destination index and a signed
// weight. Arcs are owned by the source vertex's adjacency list.
type Arc struct {
	To     int   // destination vertex index
	Weight int64 // signed edge weight
}

// Graph is the dense index-addressed store. Vertices are 0..Order()-1;
// adj[u] holds u's outgoing arcs sorted ascending by destination.
// The zero value is an empty, usable graph.
type Graph struct {
	adj         [][]Arc // adjacency lists; sorted, duplicate-free
	edgeCount   int     // total arcs across all lists
	hasNegative bool    // running flag: any arc with Weight < 0 ever inserted
}

// New returns an empty Graph with no vertices.
// Complexity: O(1).
func New() *Graph { return &Graph{} }

// Order reports the number of vertices.
// Complexity: O(1).
func (g *Graph) Order() int { return len(g.adj) }

// Size reports the number of arcs.
// Complexity: O(1).
func (g *Graph) Size() int { return g.edgeCount }

// HasNegative reports whether any arc with a negative weight has been
// inserted. The flag is maintained incrementally on insertion (and
// recomputed by Reweight), never by rescanning per query.
// Complexity: O(1).
func (g *Graph) HasNegative() bool { return g.hasNegative }

// Grow appends k fresh vertices with empty adjacency lists and returns
// the index assigned to the first of them. Indices are permanent: there
// is no removal.
// Complexity: amortized O(k).
func (g *Graph) Grow(k int) int {
	first := len(g.adj)
	for i := 0; i < k; i++ {
		g.adj = append(g.adj, nil)
	}

	return first
}

// AddEdge inserts a directed arc from→to with the given weight.
// Returns (false, ErrIndexOutOfRange) when either endpoint is outside
// [0, Order()); (false, nil) when an arc for this ordered pair already
// exists — the duplicate is a safe no-op and the first weight is kept;
// (true, nil) on insertion. One binary search both locates the insertion
// point and detects the duplicate.
// Complexity: O(log d) search + O(d) shift, d = out-degree of from.
func (g *Graph) AddEdge(from, to int, weight int64) (bool, error) {
	// 1) Defensive range check; the ID-mapping layer validates first,
	//    so hitting this from library code is a programming error.
	if from < 0 || from >= len(g.adj) {
		return false, fmt.Errorf("%w: from=%d, order=%d", ErrIndexOutOfRange, from, len(g.adj))
	}
	if to < 0 || to >= len(g.adj) {
		return false, fmt.Errorf("%w: to=%d, order=%d", ErrIndexOutOfRange, to, len(g.adj))
	}

	// 2) Locate to in the sorted list (or its insertion point).
	list := g.adj[from]
	pos := sort.Search(len(list), func(i int) bool { return list[i].To >= to })
	if pos < len(list) && list[pos].To == to {
		return false, nil // duplicate ordered pair: keep the earlier arc
	}

	// 3) Insert at pos, keeping the list sorted ascending by destination.
	list = append(list, Arc{})
	copy(list[pos+1:], list[pos:])
	list[pos] = Arc{To: to, Weight: weight}
	g.adj[from] = list
	g.edgeCount++

	// 4) Maintain the running negative-weight flag.
	if weight < 0 {
		g.hasNegative = true
	}

	return true, nil
}

// ArcsOf returns u's outgoing arcs in ascending destination order.
// The returned slice is a read-only view into the graph; callers must
// not mutate it.
// Complexity: O(1).
func (g *Graph) ArcsOf(u int) ([]Arc, error) {
	if u < 0 || u >= len(g.adj) {
		return nil, fmt.Errorf("%w: index=%d, order=%d", ErrIndexOutOfRange, u, len(g.adj))
	}

	return g.adj[u], nil
}

// Clone returns a deep copy: fresh adjacency lists whose mutation never
// affects the receiver. Johnson's algorithm re-weights such a copy while
// the caller may still hold the original.
// Complexity: O(n + e).
func (g *Graph) Clone() *Graph {
	cp := &Graph{
		adj:         make([][]Arc, len(g.adj)),
		edgeCount:   g.edgeCount,
		hasNegative: g.hasNegative,
	}
	for u, list := range g.adj {
		if len(list) == 0 {
			continue
		}
		dup := make([]Arc, len(list))
		copy(dup, list)
		cp.adj[u] = dup
	}

	return cp
}

// Augment returns (s, h) where h is a deep copy of g extended with one
// synthetic vertex s, wired by the supplied arcs. Only arcs whose To is a
// valid original index are wired; the rest are dropped silently. The
// receiver is never mutated. The augmented graph is the transient seed of
// Johnson's re-weighting pass.
// Complexity: O(n + e + len(arcs)).
func (g *Graph) Augment(arcs []Arc) (int, *Graph) {
	h := g.Clone()
	s := h.Grow(1)
	for _, a := range arcs {
		if a.To < 0 || a.To >= s {
			continue // not an original vertex
		}
		// Endpoints are pre-validated, so AddEdge cannot fail here;
		// duplicates collapse exactly as on the public path.
		_, _ = h.AddEdge(s, a.To, a.Weight)
	}

	return s, h
}

// Reweight replaces every arc weight w(u,v) with w + potential[u] −
// potential[v], in place. This is Johnson's transform: with a valid
// shortest-distance potential every re-weighted arc becomes non-negative.
// Apply it only to a throwaway Clone. The has-negative flag is recomputed
// from the transformed weights.
// Complexity: O(e).
func (g *Graph) Reweight(potential []int64) error {
	if len(potential) != len(g.adj) {
		return fmt.Errorf("%w: got %d, want %d", ErrBadPotential, len(potential), len(g.adj))
	}

	negative := false
	var i int
	for u := range g.adj {
		for i = range g.adj[u] {
			g.adj[u][i].Weight += potential[u] - potential[g.adj[u][i].To]
			if g.adj[u][i].Weight < 0 {
				negative = true
			}
		}
	}
	g.hasNegative = negative

	return nil
}
