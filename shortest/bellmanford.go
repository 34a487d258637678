package shortest

import (
	"fmt"

	"github.com/katalvlaran/spath/dense"
)

// BellmanFord computes shortest distances from start to every vertex of
// g, tolerating negative edge weights and detecting negative-cost cycles
// reachable from start.
//
// State: a distance vector (Inf everywhere except start=0) and a
// work-list of vertices known to be reachable, seeded with start. Each
// round relaxes every outgoing arc of every work-list vertex; newly
// reached vertices join the list for subsequent rounds. The loop stops
// early after a quiet round. If the Order()-th round still updated, one
// probe round on a scratch vector decides: further improvement certifies
// a reachable negative cycle (any simple path has at most n−1 edges), and
// the returned distances are those from before the probe.
//
// Complexity: O(V·E) worst case, O(V) extra space.
func BellmanFord(g *dense.Graph, start int) (Result, error) {
	// 1) Validate inputs.
	if g == nil {
		return Result{}, ErrNilGraph
	}
	n := g.Order()
	if start < 0 || start >= n {
		return Result{}, fmt.Errorf("%w: start=%d, order=%d", ErrStartOutOfRange, start, n)
	}

	// 2) Initialize state: only start is known reachable, at distance 0.
	r := &relaxer{
		g:       g,
		dist:    make([]int64, n),
		reached: make([]int, 0, n),
		queued:  make([]bool, n),
	}
	for i := range r.dist {
		r.dist[i] = Inf
	}
	r.dist[start] = 0
	r.reached = append(r.reached, start)
	r.queued[start] = true

	// 3) Relax up to n full rounds, stopping early once a round is quiet.
	updated := true
	for round := 0; round < n && updated; round++ {
		updated = r.round(r.dist, true)
	}

	// 4) Still hot after n rounds: probe once on a scratch vector. Any
	//    further improvement proves a negative cycle; the caller gets the
	//    pre-probe distances either way.
	if updated {
		scratch := make([]int64, n)
		copy(scratch, r.dist)
		if r.round(scratch, false) {
			return Result{Dist: r.dist, NegCycle: true}, nil
		}
	}

	return Result{Dist: r.dist}, nil
}

// relaxer holds the mutable state of one Bellman-Ford execution.
type relaxer struct {
	g       *dense.Graph
	dist    []int64 // canonical distance vector
	reached []int   // vertices known reachable, in discovery order
	queued  []bool  // membership mask over reached
}

// round relaxes every outgoing arc of every reached vertex against dist
// and reports whether any distance improved. When record is set, newly
// reached vertices are appended to the work-list; the detection probe
// passes record=false to leave the canonical state untouched.
func (r *relaxer) round(dist []int64, record bool) bool {
	updated := false
	var arcs []dense.Arc
	var candidate int64
	// Snapshot the work-list length: vertices discovered during this
	// round join the list but relax only from the next round on.
	size := len(r.reached)
	for k := 0; k < size; k++ {
		u := r.reached[k]
		if dist[u] == Inf {
			continue // reachable in canonical state only; skip in probe
		}
		arcs, _ = r.g.ArcsOf(u) // u came off the work-list, so it is in range
		for _, a := range arcs {
			candidate = dist[u] + a.Weight
			if candidate >= dist[a.To] {
				continue // not strictly better (Inf handles "unreached")
			}
			dist[a.To] = candidate
			updated = true
			if record && !r.queued[a.To] {
				r.queued[a.To] = true
				r.reached = append(r.reached, a.To)
			}
		}
	}

	return updated
}
