// Package graph_test provides runnable examples for the public surface.
package graph_test

import (
	"fmt"

	"github.com/katalvlaran/spath/graph"
)

// ExampleGraph_SingleSource computes distances on a small diamond.
func ExampleGraph_SingleSource() {
	g := graph.New()
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 2)
	g.AddEdge("A", "C", 5)
	g.AddEdge("C", "D", 1)

	neg, dist, err := g.SingleSource("A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("cycle=%v A=%d B=%d C=%d D=%d\n",
		neg, dist["A"], dist["B"], dist["C"], dist["D"])
	// Output: cycle=false A=0 B=1 C=3 D=4
}

// ExampleGraph_AllPairs prints one row of the all-pairs table for a graph
// with a negative edge.
func ExampleGraph_AllPairs() {
	g := graph.New()
	g.AddEdge("A", "B", 4)
	g.AddEdge("A", "C", 2)
	g.AddEdge("C", "B", -3)

	neg, table, err := g.AllPairs()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("cycle:", neg)
	fmt.Println("A→B:", table["A"]["B"])
	// Output:
	// cycle: false
	// A→B: -1
}
