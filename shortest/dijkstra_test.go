package shortest_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/spath/shortest"
)

// ------------------------------------------------------------------------
// 1. Validation.
// ------------------------------------------------------------------------

func TestDijkstra_NilGraph(t *testing.T) {
	_, err := shortest.Dijkstra(nil, 0)
	if !errors.Is(err, shortest.ErrNilGraph) {
		t.Fatalf("expected ErrNilGraph, got %v", err)
	}
}

func TestDijkstra_StartOutOfRange(t *testing.T) {
	g := build(t, 3, nil)
	if _, err := shortest.Dijkstra(g, 3); !errors.Is(err, shortest.ErrStartOutOfRange) {
		t.Fatalf("expected ErrStartOutOfRange, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 2. Basic distances.
// ------------------------------------------------------------------------

func TestDijkstra_Diamond(t *testing.T) {
	// 0→1(1), 1→2(2), 0→2(5), 2→3(1).
	g := build(t, 4, []edge{{0, 1, 1}, {1, 2, 2}, {0, 2, 5}, {2, 3, 1}})

	res, err := shortest.Dijkstra(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if res.NegCycle {
		t.Fatal("Dijkstra never reports a negative cycle")
	}
	for i, want := range []int64{0, 1, 3, 4} {
		if res.Dist[i] != want {
			t.Errorf("dist[%d] = %d; want %d", i, res.Dist[i], want)
		}
	}
}

func TestDijkstra_SingleVertex(t *testing.T) {
	g := build(t, 1, nil)
	res, err := shortest.Dijkstra(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if res.Dist[0] != 0 {
		t.Errorf("dist[0] = %d; want 0", res.Dist[0])
	}
}

func TestDijkstra_UnreachableStaysInf(t *testing.T) {
	g := build(t, 3, []edge{{0, 1, 2}})
	res, err := shortest.Dijkstra(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if res.Dist[2] != shortest.Inf {
		t.Errorf("dist[2] = %d; want Inf", res.Dist[2])
	}
}

func TestDijkstra_SelfLoopAtStart(t *testing.T) {
	// A zero-weight self-loop must not disturb anything.
	g := build(t, 2, []edge{{0, 0, 0}, {0, 1, 3}})
	res, err := shortest.Dijkstra(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if res.Dist[0] != 0 || res.Dist[1] != 3 {
		t.Errorf("unexpected distances: %v", res.Dist)
	}
}

// ------------------------------------------------------------------------
// 3. Agreement: Dijkstra ≡ Bellman-Ford on non-negative graphs, every start.
// ------------------------------------------------------------------------

func TestDijkstra_AgreesWithBellmanFord(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	for trial := 0; trial < 15; trial++ {
		g := randomNonNegative(rng, 28, 0.15)
		for start := 0; start < g.Order(); start++ {
			dj, err := shortest.Dijkstra(g, start)
			if err != nil {
				t.Fatal(err)
			}
			bf, err := shortest.BellmanFord(g, start)
			if err != nil {
				t.Fatal(err)
			}
			for v := range dj.Dist {
				if dj.Dist[v] != bf.Dist[v] {
					t.Fatalf("trial %d start %d: dijkstra[%d]=%d, bellman-ford[%d]=%d",
						trial, start, v, dj.Dist[v], v, bf.Dist[v])
				}
			}
		}
	}
}
