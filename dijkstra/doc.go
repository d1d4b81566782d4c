// Package dijkstra implements single-source shortest paths on a core.Graph.
//
// Dijkstra computes the minimum-cost path from one source vertex to every
// other vertex of an undirected graph with non-negative (uint32) weights.
// Vertices are extracted in order of increasing tentative distance from a
// min-heap; each extraction relaxes the vertex's half-edges.
//
// Complexity:
//
//	– Time:  O((V + E) log E)
//	– Space: O(V + E), with up to one heap entry per improvement.
//
// Observing the run:
//
// Every strict improvement is delivered synchronously to the OnImprove hook
// as an Improvement{Source, Vertex, Distance}. For a given vertex the
// reported distances are strictly decreasing. The hook runs before the
// vertex is pushed, so a printer attached to it sees improvements in the
// exact order the solver makes them.
//
// Example usage:
//
//	dist := dijkstra.Dijkstra(
//	    g,
//	    dijkstra.Source(1),
//	    dijkstra.WithOnImprove(func(ev dijkstra.Improvement) {
//	        fmt.Printf("%d -> %d: %d\n", ev.Source, ev.Vertex, ev.Distance)
//	    }),
//	)
//	if dist.Reachable(4) {
//	    fmt.Println(dist.To(4))
//	}
//
// Preconditions:
//
// A nil graph or a source outside [1, VertexCount] is a programmer error and
// panics; validate external input with g.HasVertex first.
package dijkstra
