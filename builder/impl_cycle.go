// Package: shortpath/builder
//
// impl_cycle.go — implementation of Cycle(k) constructor.
//
// Contract:
//   • k ≥ 3 (else ErrTooFewVertices), k ≤ VertexCount (else ErrVertexOutOfRange).
//   • Emits edges i—(i mod k)+1 for i=1..k, closing k—1 last.
//   • Weight of each edge is cfg.weightFn(cfg.rng).
//
// Complexity: O(k) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that links vertices 1..k into a simple cycle C_k.
func Cycle(k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if k < minCycleNodes {
			return fmt.Errorf("%s: k=%d < min=%d: %w", methodCycle, k, minCycleNodes, ErrTooFewVertices)
		}
		if err := requireVertices(methodCycle, g, k); err != nil {
			return err
		}

		for i := 1; i <= k; i++ {
			g.AddEdge(i, i%k+1, cfg.weightFn(cfg.rng))
		}

		return nil
	}
}
