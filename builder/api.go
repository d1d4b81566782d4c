// Package: shortpath/builder
//
// api.go — thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(n, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Constructors validate indices against g.VertexCount() before touching g,
//     so a failed constructor never leaves a half-inserted edge.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate their parameters and return sentinel
// errors instead of panicking.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a core.Graph with n vertices, resolves the builder
// configuration from bopts, and applies all constructors in order.
// The first constructor error is returned wrapped as "BuildGraph: %w".
//
// Errors:
//   - ErrTooFewVertices if n < 0.
//   - Whatever a constructor returns (ErrVertexOutOfRange, ErrTooFewVertices, ...).
func BuildGraph(n int, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("BuildGraph: n=%d: %w", n, ErrTooFewVertices)
	}

	g := core.NewGraph(n)
	cfg := newBuilderConfig(bopts...)
	for _, c := range cons {
		if err := c(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// requireVertices checks that the first k vertices exist in g.
func requireVertices(method string, g *core.Graph, k int) error {
	if k > g.VertexCount() {
		return fmt.Errorf("%s: needs %d vertices, graph has %d: %w", method, k, g.VertexCount(), ErrVertexOutOfRange)
	}

	return nil
}
