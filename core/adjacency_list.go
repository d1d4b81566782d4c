package core

import "fmt"

// AddEdge connects from and to (1-based) with the given weight.
// Both endpoints receive a half-edge, so the connection is symmetric.
// Self-loops and parallel edges are accepted as-is.
//
// Panics with an error wrapping ErrVertexOutOfRange if either index is
// outside [1, VertexCount]; the message names the offending index.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, weight uint32) {
	if !g.HasVertex(from) {
		panic(fmt.Errorf("%w: cannot add edge from vertex: %d", ErrVertexOutOfRange, from))
	}
	if !g.HasVertex(to) {
		panic(fmt.Errorf("%w: cannot add edge to vertex: %d", ErrVertexOutOfRange, to))
	}

	fromIx, toIx := from-1, to-1
	g.adjacency[fromIx] = append(g.adjacency[fromIx], Edge{To: toIx, Weight: weight})
	g.adjacency[toIx] = append(g.adjacency[toIx], Edge{To: fromIx, Weight: weight})
	g.edges++
}

// VertexCount returns the fixed number of vertices.
func (g *Graph) VertexCount() int { return len(g.adjacency) }

// EdgeCount returns the number of undirected edges added so far.
func (g *Graph) EdgeCount() int { return g.edges }

// HasVertex reports whether v is a valid 1-based index for g.
func (g *Graph) HasVertex(v int) bool {
	return v >= 1 && v <= len(g.adjacency)
}

// Neighbors returns a copy of v's half-edges in insertion order, with
// 1-based To indices.
//
// Panics with ErrVertexOutOfRange if v is not a vertex of g.
//
// Complexity: O(deg(v))
func (g *Graph) Neighbors(v int) []Edge {
	if !g.HasVertex(v) {
		panic(fmt.Errorf("%w: %d", ErrVertexOutOfRange, v))
	}

	src := g.adjacency[v-1]
	out := make([]Edge, len(src))
	for i, e := range src {
		out[i] = Edge{To: e.To + 1, Weight: e.Weight}
	}

	return out
}

// Adjacent returns v's half-edges with 0-based To indices, without copying.
// ix is the 0-based vertex index. The returned slice must not be modified.
// It is intended for algorithms that already work on 0-based indices.
func (g *Graph) Adjacent(ix int) []Edge {
	return g.adjacency[ix]
}

// UndirectedEdge is one AddEdge call as reported by Edges.
type UndirectedEdge struct {
	From, To int    // 1-based endpoints, From <= To
	Weight   uint32 // edge weight
}

// Edges reconstructs the list of undirected edges from the adjacency lists.
// Each edge is reported once, ordered by its lower endpoint and then by
// that endpoint's insertion order. Self-loops appear once per AddEdge call.
//
// Complexity: O(V + E)
func (g *Graph) Edges() []UndirectedEdge {
	out := make([]UndirectedEdge, 0, g.edges)
	for ix, adj := range g.adjacency {
		loops := 0
		for _, e := range adj {
			switch {
			case e.To > ix:
				out = append(out, UndirectedEdge{From: ix + 1, To: e.To + 1, Weight: e.Weight})
			case e.To == ix:
				// a self-loop stores two half-edges on the same vertex
				loops++
				if loops%2 == 1 {
					out = append(out, UndirectedEdge{From: ix + 1, To: ix + 1, Weight: e.Weight})
				}
			}
		}
	}

	return out
}
