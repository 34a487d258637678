// Package shortest_test shared fixtures: deterministic graph builders and
// an independent Floyd-Warshall oracle the algorithm tests compare against.
package shortest_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/spath/dense"
	"github.com/katalvlaran/spath/shortest"
)

// edge is a compact (from, to, weight) triple for table-driven fixtures.
type edge struct {
	from, to int
	weight   int64
}

// build returns a dense graph with n vertices and the given arcs.
func build(t *testing.T, n int, edges []edge) *dense.Graph {
	t.Helper()
	g := dense.New()
	g.Grow(n)
	for _, e := range edges {
		added, err := g.AddEdge(e.from, e.to, e.weight)
		if err != nil {
			t.Fatalf("AddEdge(%d,%d,%d): %v", e.from, e.to, e.weight, err)
		}
		if !added {
			t.Fatalf("AddEdge(%d,%d,%d): duplicate in fixture", e.from, e.to, e.weight)
		}
	}

	return g
}

// randomDAG builds an acyclic graph (arcs only from lower to higher
// index) with weights in [-4, 15]. Acyclic means no cycles at all, so
// negative weights are safe for every algorithm under test.
func randomDAG(rng *rand.Rand, n int, density float64) *dense.Graph {
	g := dense.New()
	g.Grow(n)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if rng.Float64() < density {
				_, _ = g.AddEdge(u, v, rng.Int63n(20)-4)
			}
		}
	}

	return g
}

// randomNonNegative builds an arbitrary directed graph with weights in
// [0, 20]; cycles are fine since nothing is negative.
func randomNonNegative(rng *rand.Rand, n int, density float64) *dense.Graph {
	g := dense.New()
	g.Grow(n)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u != v && rng.Float64() < density {
				_, _ = g.AddEdge(u, v, rng.Int63n(21))
			}
		}
	}

	return g
}

// floydWarshall is the brute-force oracle: an independent all-pairs
// computation the engine results are checked against. Assumes no
// negative cycles (the generators above guarantee that).
func floydWarshall(g *dense.Graph) [][]int64 {
	n := g.Order()
	d := make([][]int64, n)
	var arcs []dense.Arc
	for i := 0; i < n; i++ {
		d[i] = make([]int64, n)
		for j := range d[i] {
			d[i][j] = shortest.Inf
		}
		arcs, _ = g.ArcsOf(i)
		for _, a := range arcs {
			if a.Weight < d[i][a.To] {
				d[i][a.To] = a.Weight
			}
		}
		d[i][i] = 0
	}
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if d[i][k] == shortest.Inf {
				continue
			}
			for j := 0; j < n; j++ {
				if d[k][j] == shortest.Inf {
					continue
				}
				if via := d[i][k] + d[k][j]; via < d[i][j] {
					d[i][j] = via
				}
			}
		}
	}

	return d
}
