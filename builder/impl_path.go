// Package: shortpath/builder
//
// impl_path.go - implementation of Path(k) constructor.
//
// Contract:
//   - k ≥ 2 (else ErrTooFewVertices), k ≤ VertexCount (else ErrVertexOutOfRange).
//   - Emits edges i—(i+1) for i=1..k-1 in increasing order.
//   - Weight of each edge is cfg.weightFn(cfg.rng).
//
// Complexity: O(k) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that links vertices 1..k into a simple path P_k.
func Path(k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if k < minPathNodes {
			return fmt.Errorf("%s: k=%d < min=%d: %w", methodPath, k, minPathNodes, ErrTooFewVertices)
		}
		if err := requireVertices(methodPath, g, k); err != nil {
			return err
		}

		for i := 1; i < k; i++ {
			g.AddEdge(i, i+1, cfg.weightFn(cfg.rng))
		}

		return nil
	}
}
