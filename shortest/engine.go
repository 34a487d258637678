package shortest

import (
	"fmt"

	"github.com/katalvlaran/spath/dense"
)

// FromSource computes single-source shortest distances, choosing the
// algorithm once per query: Bellman-Ford when the store has ever seen a
// negative edge, Dijkstra otherwise. The check is the store's running
// flag, not a rescan.
//
// Known soft spot, kept deliberately: a negative edge that is not
// reachable from start still forces the safer, slower Bellman-Ford.
func FromSource(g *dense.Graph, start int) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if start < 0 || start >= g.Order() {
		return Result{}, fmt.Errorf("%w: start=%d, order=%d", ErrStartOutOfRange, start, g.Order())
	}
	if g.HasNegative() {
		return BellmanFord(g, start)
	}

	return Dijkstra(g, start)
}

// AllPairs computes the full distance matrix. It always goes through
// Johnson's algorithm, which degrades gracefully to pure parallel
// Dijkstra when the potentials come out zero.
func AllPairs(g *dense.Graph, opts ...Option) (bool, Matrix, error) {
	return Johnson(g, opts...)
}
