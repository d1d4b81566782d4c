// Package: shortpath/builder
//
// impl_complete.go — implementation of Complete(k) constructor.
//
// Contract:
//   • k ≥ 1 (else ErrTooFewVertices), k ≤ VertexCount (else ErrVertexOutOfRange).
//   • Emits every pair i<j over 1..k once, ordered by i then j.
//   • Weight of each edge is cfg.weightFn(cfg.rng).
//
// Complexity: O(k²) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that connects every pair among vertices 1..k.
func Complete(k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if k < minCompleteNodes {
			return fmt.Errorf("%s: k=%d < min=%d: %w", methodComplete, k, minCompleteNodes, ErrTooFewVertices)
		}
		if err := requireVertices(methodComplete, g, k); err != nil {
			return err
		}

		for i := 1; i <= k; i++ {
			for j := i + 1; j <= k; j++ {
				g.AddEdge(i, j, cfg.weightFn(cfg.rng))
			}
		}

		return nil
	}
}
