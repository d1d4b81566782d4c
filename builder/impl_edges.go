// Package: shortpath/builder
//
// impl_edges.go — explicit edge lists and the Classic reference graph.
//
// Contract:
//   • Every endpoint is validated against g.VertexCount() before any edge of
//     the list is inserted, so an invalid list leaves g untouched.
//   • Edges are inserted in slice order; that order is the adjacency order
//     the solver sees and therefore fixes the improvement stream.

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

const methodEdgeList = "EdgeList"

// EdgeSpec is one undirected edge with 1-based endpoints.
type EdgeSpec struct {
	From, To int
	Weight   uint32
}

// ClassicVertexCount is the capacity of the Classic reference graph.
const ClassicVertexCount = 6

// classicEdges is the six-vertex reference graph; shortest distances from
// vertex 1 are 0, 7, 9, 20, 20, 11.
var classicEdges = []EdgeSpec{
	{1, 2, 7}, {1, 6, 14}, {1, 3, 9},
	{2, 3, 10}, {2, 4, 15},
	{3, 6, 2}, {3, 4, 11},
	{4, 5, 6}, {5, 6, 9},
}

// ClassicEdges returns a copy of the reference graph's edge list in insertion order.
func ClassicEdges() []EdgeSpec {
	out := make([]EdgeSpec, len(classicEdges))
	copy(out, classicEdges)

	return out
}

// EdgeList returns a Constructor inserting edges exactly as given.
// cfg.weightFn is not consulted.
func EdgeList(edges []EdgeSpec) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for i, e := range edges {
			if !g.HasVertex(e.From) {
				return fmt.Errorf("%s: edge #%d: cannot add edge from vertex: %d: %w", methodEdgeList, i, e.From, ErrVertexOutOfRange)
			}
			if !g.HasVertex(e.To) {
				return fmt.Errorf("%s: edge #%d: cannot add edge to vertex: %d: %w", methodEdgeList, i, e.To, ErrVertexOutOfRange)
			}
		}
		for _, e := range edges {
			g.AddEdge(e.From, e.To, e.Weight)
		}

		return nil
	}
}

// Classic returns a Constructor inserting the reference edges.
// The graph needs at least ClassicVertexCount vertices.
func Classic() Constructor {
	return EdgeList(classicEdges)
}

// ClassicGraph builds the reference graph with exactly ClassicVertexCount vertices.
func ClassicGraph() *core.Graph {
	g, err := BuildGraph(ClassicVertexCount, nil, Classic())
	if err != nil {
		// unreachable: classicEdges fits ClassicVertexCount
		panic(err)
	}

	return g
}
