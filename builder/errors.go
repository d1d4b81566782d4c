// Package: shortpath/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Context is attached with %w at the failure site, never baked into the sentinel.
//   • Constructors and the YAML loader return errors; they never let
//     core.Graph panic on input that came from outside the program.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (graph capacity, cycle
// length, ...) is below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrVertexOutOfRange indicates an edge endpoint or source outside
// [1, VertexCount] of the graph being built.
var ErrVertexOutOfRange = errors.New("builder: vertex index out of range")

// ErrBadWeight indicates a weight that does not fit uint32, including any
// negative value.
var ErrBadWeight = errors.New("builder: weight must be in [0, 4294967295]")

// ErrBadEdgeSpec indicates a malformed edge entry in a graph document.
var ErrBadEdgeSpec = errors.New("builder: malformed edge")

// ErrDecode indicates the graph document could not be parsed.
var ErrDecode = errors.New("builder: cannot decode graph document")
