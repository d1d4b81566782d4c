// Package core provides the fixed-capacity, undirected, weighted Graph that
// the shortest-path solver runs on.
//
// The Graph G = (V,E) is sized once:
//
//   - V is fixed by NewGraph(n); vertices are addressed 1..n.
//   - Each AddEdge(u, v, w) stores two half-edges, u→v and v→u, with the same
//     weight, so every edge is traversable in both directions.
//   - Parallel edges and self-loops are kept; they only widen the set of
//     candidates a solver sees.
//   - Weights are uint32, so a negative weight cannot be expressed.
//
// Core Methods:
//
//	NewGraph(n int) *Graph                  // O(n)
//	AddEdge(from, to int, weight uint32)    // O(1) amortized
//	VertexCount() int                       // O(1)
//	EdgeCount() int                         // O(1)
//	HasVertex(v int) bool                   // O(1)
//	Neighbors(v int) []Edge                 // O(deg v), 1-based copy
//	Adjacent(ix int) []Edge                 // O(1), 0-based live view
//	Edges() []UndirectedEdge                // O(V+E)
//
// Preconditions:
//
// Out-of-range indices are programmer errors and panic with an error that
// wraps ErrVertexOutOfRange:
//
//	g := core.NewGraph(6)
//	g.AddEdge(1, 7, 3) // panic: core: vertex index out of range: cannot add edge to vertex: 7
//
// Use HasVertex to validate indices that come from outside the program.
package core
