package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvlnet/core"
)

// ExampleGraph builds a tiny undirected graph and prints its sorted
// adjacency rendering.
func ExampleGraph() {
	g := core.NewGraph()
	_ = g.AddNode(core.IntID(1))
	_ = g.AddNode(core.StringID("2"))
	_ = g.AddNode(core.StringID("0"))
	_ = g.AddEdge(core.IntID(1), core.StringID("2"))

	fmt.Println(g)
	// Output:
	// Graph (undirected, no self-edges allowed):
	//     1 <--> '2'
	//   '0' <--> no edges
	//   '2' <--> 1
}

// ExampleGraph_degreeHistogram shows the histogram shape invariant:
// length MaxDegree+1, buckets summing to Size.
func ExampleGraph_degreeHistogram() {
	g := core.NewGraph()
	for i := int64(0); i < 4; i++ {
		_ = g.AddNode(core.IntID(i))
	}
	_ = g.AddEdge(core.IntID(0), core.IntID(1))
	_ = g.AddEdge(core.IntID(0), core.IntID(2))

	fmt.Println(g.DegreeHistogram())
	// Output:
	// [1 2 1]
}
