// Package core defines the fixed-capacity Graph and its half-edge type.
//
// This file declares Edge, Graph, the sentinel errors and the NewGraph
// constructor.
//
// Errors:
//
//	ErrNegativeCapacity - NewGraph called with a negative vertex count.
//	ErrVertexOutOfRange - a 1-based vertex index outside [1, VertexCount].
//
// Both describe programmer errors. They are delivered as panic values
// wrapping the sentinel, so callers that recover can still use errors.Is.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeCapacity indicates that a graph was requested with fewer than zero vertices.
	ErrNegativeCapacity = errors.New("core: vertex count must be non-negative")

	// ErrVertexOutOfRange indicates a vertex index outside [1, VertexCount].
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")
)

// Edge is one directed half of an undirected edge.
//
// Inside the Graph, To is the 0-based index of the far endpoint. Copies
// returned by Neighbors carry the 1-based index instead.
type Edge struct {
	// To is the far endpoint of this half-edge.
	To int

	// Weight is the non-negative traversal cost.
	Weight uint32
}

// Graph is an undirected, weighted multigraph with a vertex count fixed at
// construction.
//
// adjacency has exactly VertexCount entries for the whole lifetime of the
// Graph; edges are only ever appended to existing entries. Graph is not
// safe for concurrent mutation, but concurrent readers are fine once all
// edges have been added.
type Graph struct {
	adjacency [][]Edge // 0-based vertex index → outgoing half-edges
	edges     int      // number of AddEdge calls
}

// NewGraph creates a Graph with n vertices and no edges.
// Vertices are addressed as 1..n. n == 0 yields an empty graph.
//
// Panics with ErrNegativeCapacity if n < 0.
//
// Complexity: O(n)
func NewGraph(n int) *Graph {
	if n < 0 {
		panic(fmt.Errorf("%w: %d", ErrNegativeCapacity, n))
	}

	return &Graph{adjacency: make([][]Edge, n)}
}
