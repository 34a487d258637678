package shortest

import (
	"fmt"

	"github.com/katalvlaran/spath/dense"
	"github.com/katalvlaran/spath/heapq"
)

// Dijkstra computes shortest distances from start to every vertex of g.
//
// The caller must guarantee that no negative edge weight is reachable
// from start; the engine does not validate this (FromSource routes around
// negative graphs as a global safety net, but a caller invoking Dijkstra
// directly carries the contract). Dijkstra is structurally incapable of
// detecting negative cycles and always reports NegCycle=false.
//
// State: a distance vector, a "seen" bitset recording which vertices have
// ever entered the heap, and an indexed min-heap of (distance, vertex)
// with true decrease-key — one live entry per vertex, promoted in place.
// Once a vertex is extracted its distance is final.
//
// Complexity: O((V + E) log V) time, O(V) space.
func Dijkstra(g *dense.Graph, start int) (Result, error) {
	// 1) Validate inputs.
	if g == nil {
		return Result{}, ErrNilGraph
	}
	n := g.Order()
	if start < 0 || start >= n {
		return Result{}, fmt.Errorf("%w: start=%d, order=%d", ErrStartOutOfRange, start, n)
	}

	// 2) Prepare state: every distance open, start finalized at 0.
	dist := make([]int64, n)
	for i := range dist {
		dist[i] = Inf
	}
	dist[start] = 0
	done := make([]bool, n) // finalized distances
	seen := make([]bool, n) // ever placed in the heap
	done[start] = true
	seen[start] = true
	pq := heapq.New[int64, int](heapq.MinFirst)

	// 3) Seed: relax every arc out of start directly into the queue.
	arcs, _ := g.ArcsOf(start)
	for _, a := range arcs {
		if a.To == start {
			continue // self-loop cannot improve a finalized start
		}
		seen[a.To] = true
		pq.Insert(a.Weight, a.To)
	}

	// 4) Main loop: extract the closest open vertex, fix it, relax out.
	var candidate int64
	for {
		d, u, ok := pq.Extract()
		if !ok {
			break // queue drained: all reachable vertices finalized
		}
		dist[u] = d
		done[u] = true

		arcs, _ = g.ArcsOf(u)
		for _, a := range arcs {
			if done[a.To] {
				continue // finalized distances never change
			}
			candidate = d + a.Weight
			if !seen[a.To] {
				seen[a.To] = true
				pq.Insert(candidate, a.To)
				continue
			}
			// Already pending: promote only moves the key toward the
			// front, so a worse candidate is a quiet no-op.
			pq.Promote(a.To, candidate)
		}
	}

	return Result{Dist: dist}, nil
}
