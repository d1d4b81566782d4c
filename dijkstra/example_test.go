// Package dijkstra_test provides runnable examples for the dijkstra package.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/dijkstra"
)

// ExampleDijkstra_triangle computes distances on a triangle where the
// two-hop route beats the direct edge.
func ExampleDijkstra_triangle() {
	g := core.NewGraph(3)
	g.AddEdge(1, 2, 1)
	g.AddEdge(2, 3, 2)
	g.AddEdge(1, 3, 5)

	dist := dijkstra.Dijkstra(g, dijkstra.Source(1))
	fmt.Printf("dist[1]=%d, dist[2]=%d, dist[3]=%d\n", dist.To(1), dist.To(2), dist.To(3))
	// Output: dist[1]=0, dist[2]=1, dist[3]=3
}

// ExampleWithOnImprove prints every improvement as the solver makes it.
// Vertex 3 is first reached directly (5) and then improved via 2 (3).
func ExampleWithOnImprove() {
	g := core.NewGraph(3)
	g.AddEdge(1, 3, 5)
	g.AddEdge(1, 2, 1)
	g.AddEdge(2, 3, 2)

	dijkstra.Dijkstra(g, dijkstra.Source(1), dijkstra.WithOnImprove(func(ev dijkstra.Improvement) {
		fmt.Printf("%d->%d = %d\n", ev.Source, ev.Vertex, ev.Distance)
	}))
	// Output:
	// 1->3 = 5
	// 1->2 = 1
	// 1->3 = 3
}

// ExampleResult_PathTo reconstructs a route with WithReturnPath.
func ExampleResult_PathTo() {
	g := core.NewGraph(4)
	g.AddEdge(1, 2, 2)
	g.AddEdge(2, 4, 2)
	g.AddEdge(1, 3, 1)
	g.AddEdge(3, 4, 5)

	res := dijkstra.Solve(g, dijkstra.Source(1), dijkstra.WithReturnPath())
	path, err := res.PathTo(4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path, res.Dist.To(4))
	// Output: [1 2 4] 4
}

// ExampleDistances_Reachable shows the sentinel for a disconnected vertex.
func ExampleDistances_Reachable() {
	g := core.NewGraph(3)
	g.AddEdge(1, 2, 4)

	dist := dijkstra.Dijkstra(g, dijkstra.Source(1))
	fmt.Println(dist.Reachable(2), dist.Reachable(3), dist.To(3) == dijkstra.Unreachable)
	// Output: true false true
}
