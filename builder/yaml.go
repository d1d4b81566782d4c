// Package: shortpath/builder
//
// yaml.go — graph documents.
//
// A document fixes the capacity, an optional default source and the edge
// list. Edges may be written as [from, to, weight] triples or as mappings:
//
//	vertices: 6
//	source: 1
//	edges:
//	  - [1, 2, 7]
//	  - {from: 1, to: 6, weight: 14}
//
// Weights are decoded as signed integers first so that a negative weight is
// reported as ErrBadWeight rather than as a generic decode failure.

package builder

import (
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/shortpath/core"
)

// Document is a decoded graph document.
// Source is 0 when the document does not name one.
type Document struct {
	Vertices int
	Source   int
	Edges    []EdgeSpec
}

type documentYAML struct {
	Vertices *int       `yaml:"vertices"`
	Source   int        `yaml:"source"`
	Edges    []edgeYAML `yaml:"edges"`
}

// edgeYAML accepts both the triple and the mapping form.
type edgeYAML struct {
	From, To int
	Weight   int64
	line     int
}

func (e *edgeYAML) UnmarshalYAML(node *yaml.Node) error {
	e.line = node.Line
	switch node.Kind {
	case yaml.SequenceNode:
		var triple []int64
		if err := node.Decode(&triple); err != nil {
			return err
		}
		if len(triple) != 3 {
			return fmt.Errorf("line %d: want [from, to, weight], got %d values: %w", node.Line, len(triple), ErrBadEdgeSpec)
		}
		e.From, e.To, e.Weight = int(triple[0]), int(triple[1]), triple[2]
	case yaml.MappingNode:
		var m struct {
			From   *int   `yaml:"from"`
			To     *int   `yaml:"to"`
			Weight *int64 `yaml:"weight"`
		}
		if err := node.Decode(&m); err != nil {
			return err
		}
		if m.From == nil || m.To == nil || m.Weight == nil {
			return fmt.Errorf("line %d: from, to and weight are required: %w", node.Line, ErrBadEdgeSpec)
		}
		e.From, e.To, e.Weight = *m.From, *m.To, *m.Weight
	default:
		return fmt.Errorf("line %d: edge must be a sequence or a mapping: %w", node.Line, ErrBadEdgeSpec)
	}

	return nil
}

// ParseYAML decodes and validates a graph document from r.
//
// Errors:
//   - ErrDecode           for YAML syntax or type errors (wrapping the decoder error).
//   - ErrBadEdgeSpec      for edges that are neither a triple nor a complete mapping.
//   - ErrTooFewVertices   if vertices is missing or negative.
//   - ErrBadWeight        if a weight is negative or above math.MaxUint32.
//   - ErrVertexOutOfRange if an endpoint or the source is outside [1, vertices].
func ParseYAML(r io.Reader) (*Document, error) {
	var raw documentYAML
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("empty document: %w", ErrDecode)
		}
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	if raw.Vertices == nil {
		return nil, fmt.Errorf("vertices is required: %w", ErrTooFewVertices)
	}
	doc := &Document{Vertices: *raw.Vertices, Source: raw.Source}
	if doc.Vertices < 0 {
		return nil, fmt.Errorf("vertices=%d: %w", doc.Vertices, ErrTooFewVertices)
	}
	if doc.Source != 0 && (doc.Source < 1 || doc.Source > doc.Vertices) {
		return nil, fmt.Errorf("source=%d not in [1, %d]: %w", doc.Source, doc.Vertices, ErrVertexOutOfRange)
	}

	doc.Edges = make([]EdgeSpec, 0, len(raw.Edges))
	for _, e := range raw.Edges {
		if e.Weight < 0 || e.Weight > math.MaxUint32 {
			return nil, fmt.Errorf("line %d: weight=%d: %w", e.line, e.Weight, ErrBadWeight)
		}
		if e.From < 1 || e.From > doc.Vertices {
			return nil, fmt.Errorf("line %d: cannot add edge from vertex: %d: %w", e.line, e.From, ErrVertexOutOfRange)
		}
		if e.To < 1 || e.To > doc.Vertices {
			return nil, fmt.Errorf("line %d: cannot add edge to vertex: %d: %w", e.line, e.To, ErrVertexOutOfRange)
		}
		doc.Edges = append(doc.Edges, EdgeSpec{From: e.From, To: e.To, Weight: uint32(e.Weight)})
	}

	return doc, nil
}

// Graph builds the document's graph.
func (d *Document) Graph(bopts ...BuilderOption) (*core.Graph, error) {
	return BuildGraph(d.Vertices, bopts, EdgeList(d.Edges))
}

// MarshalYAML writes the document in the triple form.
func (d Document) MarshalYAML() (interface{}, error) {
	edges := make([][3]int64, len(d.Edges))
	for i, e := range d.Edges {
		edges[i] = [3]int64{int64(e.From), int64(e.To), int64(e.Weight)}
	}

	return struct {
		Vertices int        `yaml:"vertices"`
		Source   int        `yaml:"source,omitempty"`
		Edges    [][3]int64 `yaml:"edges,flow"`
	}{d.Vertices, d.Source, edges}, nil
}

// LoadYAML parses a document from r and builds its graph.
func LoadYAML(r io.Reader) (*core.Graph, *Document, error) {
	doc, err := ParseYAML(r)
	if err != nil {
		return nil, nil, err
	}
	g, err := doc.Graph()
	if err != nil {
		return nil, nil, err
	}

	return g, doc, nil
}
