// Package shortest defines the result shapes, sentinel errors and
// configuration options shared by the three shortest-path algorithms.
//
// Distances are int64; Inf marks an unreachable vertex. Negative cycles
// are a legitimate, expected outcome reported through Result.NegCycle —
// never through an error. Callers must check NegCycle before trusting
// any distance value.
package shortest

import (
	"errors"
	"math"
	"runtime"
)

// Inf is the "unreachable" distance sentinel. No finite shortest path is
// ever this long; any slot still holding Inf after a run was not reached.
const Inf int64 = math.MaxInt64

// Result is the outcome of a single-source run: one distance slot per
// vertex index (Inf = unreachable) and the negative-cycle verdict.
// Dist[start] is always 0; every other finite entry is the length of an
// actual path from start.
type Result struct {
	// Dist holds the shortest distance per vertex index, Inf if unreachable.
	Dist []int64

	// NegCycle reports that a negative-cost cycle is reachable from the
	// start vertex. When true, Dist holds the distances computed one round
	// before detection and must not be trusted as shortest paths.
	NegCycle bool
}

// Matrix is an all-pairs distance table: Matrix[i][j] is the shortest
// distance from i to j, Inf if unreachable. Rows are independent
// single-source results assembled by Johnson's algorithm.
type Matrix [][]int64

// Sentinel errors returned by the engine.
var (
	// ErrNilGraph indicates a nil *dense.Graph was passed in.
	ErrNilGraph = errors.New("shortest: graph is nil")

	// ErrStartOutOfRange indicates a start index outside [0, Order()).
	ErrStartOutOfRange = errors.New("shortest: start index out of range")

	// ErrBadWorkers indicates WithWorkers was given a non-positive count.
	ErrBadWorkers = errors.New("shortest: worker count must be positive")
)

// Options configures the all-pairs fan-out.
//
// Workers – upper bound on concurrently running Dijkstra instances in
// Johnson's parallel phase. Defaults to runtime.NumCPU().
type Options struct {
	Workers int // concurrent Dijkstra runs in the all-pairs phase
}

// Option is a functional option for Johnson / AllPairs.
type Option func(*Options)

// WithWorkers bounds the parallel Dijkstra pool. Must be positive;
// invalid values panic, as option constructors validate eagerly.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadWorkers.Error())
		}
		o.Workers = n
	}
}

// DefaultOptions returns the baseline configuration: one worker per CPU.
func DefaultOptions() Options {
	return Options{Workers: runtime.NumCPU()}
}
