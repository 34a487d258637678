package shortest

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/spath/dense"
)

// Johnson computes all-pairs shortest distances:
//
//  1. Augment g with one synthetic vertex wired to every original vertex
//     at zero cost (the synthetic vertex has no incoming arcs, so it can
//     never sit on a cycle).
//  2. Run Bellman-Ford from the synthetic source. A negative cycle there
//     implies one in g; report it and produce no matrix.
//  3. Take the resulting per-vertex potentials (originals are always
//     reachable from the synthetic source by construction) and re-weight
//     a fresh clone of the original graph: every re-weighted arc is now
//     non-negative.
//  4. Run Dijkstra from every vertex on the shared immutable clone — the
//     runs are independent, bounded by Options.Workers, and each writes
//     only its own matrix row.
//  5. Undo the re-weighting per row: true(i→j) = d'(i→j) + pot(j) − pot(i),
//     Inf staying Inf.
//
// A failing worker aborts the whole call; the matrix is observed only
// after every run has joined. The caller's graph is never mutated.
//
// Complexity: O(V·E) for the potential pass plus V parallel
// O((V + E) log V) Dijkstra runs.
func Johnson(g *dense.Graph, opts ...Option) (bool, Matrix, error) {
	// 1) Validate and configure.
	if g == nil {
		return false, nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := g.Order()
	if n == 0 {
		return false, Matrix{}, nil
	}

	// 2) Synthetic source with a zero-weight arc to every original vertex.
	fan := make([]dense.Arc, n)
	for v := range fan {
		fan[v] = dense.Arc{To: v, Weight: 0}
	}
	s, augmented := g.Augment(fan)

	// 3) One Bellman-Ford run yields the re-weighting potentials.
	seed, err := BellmanFord(augmented, s)
	if err != nil {
		return false, nil, err
	}
	if seed.NegCycle {
		return true, nil, nil // cycle in g; no matrix is produced
	}
	pot := make([]int64, n)
	for v := 0; v < n; v++ {
		if seed.Dist[v] != Inf {
			pot[v] = seed.Dist[v]
		}
		// Unreachable would mean potential 0; cannot occur given the fan-out.
	}

	// 4) Re-weight a throwaway clone; all arcs become non-negative.
	reweighted := g.Clone()
	if err = reweighted.Reweight(pot); err != nil {
		return false, nil, err
	}

	// 5) Parallel fan-out: one Dijkstra per row, disjoint writes, hard join.
	matrix := make(Matrix, n)
	var pool errgroup.Group
	pool.SetLimit(cfg.Workers)
	for i := 0; i < n; i++ {
		i := i
		pool.Go(func() error {
			res, runErr := Dijkstra(reweighted, i)
			if runErr != nil {
				return runErr
			}
			// 6) Undo the potential transform in place on the private row.
			row := res.Dist
			for j := range row {
				if row[j] != Inf {
					row[j] += pot[j] - pot[i]
				}
			}
			matrix[i] = row

			return nil
		})
	}
	if err = pool.Wait(); err != nil {
		return false, nil, err // no partial matrices
	}

	return false, matrix, nil
}
