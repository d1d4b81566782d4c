// Package builder assembles fixed-capacity core graphs from reusable
// constructors and from YAML graph documents.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(n, bopts, cons...): creates core.NewGraph(n) and applies cons in order.
//     – Constructor: a function that validates its parameters and inserts edges.
//   - Topologies over vertices 1..k:
//     – Path(k), Cycle(k), Complete(k).
//     – EdgeList(edges): explicit edges in the given order.
//     – Classic(): the six-vertex reference graph (see ClassicGraph, ClassicEdges).
//   - Edge-weight distributions (WeightFn), selected with BuilderOption:
//     – DefaultWeightFn:  constant DefaultEdgeWeight.
//     – ConstantWeightFn: fixed user-provided value.
//     – UniformWeightFn:  uniform over [min, max], needs WithSeed/WithRand.
//   - Graph documents:
//     – ParseYAML / LoadYAML decode and validate a YAML document.
//
// Guarantees:
//
//   - Constructors and ParseYAML never let core.Graph panic: every index is
//     checked first and reported as ErrVertexOutOfRange.
//   - Option constructors panic on meaningless arguments (nil RNG, max < min).
//   - Same inputs, options and seed produce identical graphs.
package builder
