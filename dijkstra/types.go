// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on a core.Graph.
//
// Options:
//
//	– Source:      1-based index of the starting vertex (required).
//	– ReturnPath:  if true, record predecessors so paths can be rebuilt.
//	– MaxDistance: optional cap; vertices farther than this stay Unreachable.
//	– OnImprove:   hook called every time a tentative distance improves.
//	– Logger:      logrus logger used for debug tracing of the relax loop.
//
// Errors (sentinel):
//
//	– ErrNilGraph         if the provided graph pointer is nil (panic).
//	– ErrInvalidSource    if Source is outside [1, VertexCount] (panic).
//	– ErrVertexOutOfRange if Distances or Result is queried with a bad index (panic).
//	– ErrPathNotRecorded  if PathTo is called without WithReturnPath.
//	– ErrUnreachable      if PathTo targets a vertex with no path.
package dijkstra

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/sirupsen/logrus"
)

// Unreachable is the distance reported for vertices with no path from the source.
// No finite distance can reach it: weights are uint32 and distances uint64.
const Unreachable uint64 = math.MaxUint64

// Sentinel errors used by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrInvalidSource indicates that the source index is not a vertex of the graph.
	ErrInvalidSource = errors.New("dijkstra: invalid source vertex")

	// ErrVertexOutOfRange indicates a lookup with an index outside [1, len].
	ErrVertexOutOfRange = errors.New("dijkstra: vertex index out of range")

	// ErrPathNotRecorded indicates that PathTo was called on a Result computed
	// without WithReturnPath.
	ErrPathNotRecorded = errors.New("dijkstra: predecessors were not recorded")

	// ErrUnreachable indicates that the target vertex has no path from the source.
	ErrUnreachable = errors.New("dijkstra: vertex is unreachable")
)

// Distances is the table returned by Dijkstra. Entry i holds the distance to
// vertex i+1, or Unreachable.
type Distances []uint64

// To returns the distance to the 1-based vertex v.
// Panics with ErrVertexOutOfRange if v is not in [1, len(d)].
func (d Distances) To(v int) uint64 {
	if v < 1 || v > len(d) {
		panic(fmt.Errorf("%w: %d", ErrVertexOutOfRange, v))
	}

	return d[v-1]
}

// Reachable reports whether vertex v has a finite distance.
func (d Distances) Reachable(v int) bool {
	return d.To(v) != Unreachable
}

// Improvement is emitted each time the solver finds a strictly shorter path.
// All indices are 1-based.
type Improvement struct {
	Source   int    // source vertex of the run
	Vertex   int    // vertex whose distance improved
	Distance uint64 // new tentative distance
}

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – 1-based starting vertex; must satisfy g.HasVertex(Source).
// ReturnPath  – if true, Result.Prev is populated.
// MaxDistance – relaxations producing a distance above this are dropped.
//
//	Default is Unreachable-1 (no cap).
//
// OnImprove   – called synchronously on every improvement; never nil after defaults.
// Logger      – receives Debug entries for pops and relaxations.
type Options struct {
	Source      int
	ReturnPath  bool
	MaxDistance uint64
	OnImprove   func(Improvement)
	Logger      logrus.FieldLogger
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex (1-based). Must be provided.
func Source(v int) Option {
	return func(o *Options) {
		o.Source = v
	}
}

// WithReturnPath enables predecessor tracking for path reconstruction.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance caps exploration: a vertex whose shortest distance would
// exceed max is left Unreachable.
func WithMaxDistance(max uint64) Option {
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithOnImprove registers the improvement hook. A nil fn keeps the no-op default.
func WithOnImprove(fn func(Improvement)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnImprove = fn
		}
	}
}

// WithLogger sets the logger used for debug tracing. A nil logger keeps the default.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns Options initialized with defaults for the given source.
//
// Defaults:
//   - ReturnPath:  false.
//   - MaxDistance: Unreachable-1 (no cap).
//   - OnImprove:   no-op.
//   - Logger:      a logrus logger writing to io.Discard.
func DefaultOptions(source int) Options {
	return Options{
		Source:      source,
		MaxDistance: Unreachable - 1,
		OnImprove:   func(Improvement) {},
		Logger:      discardLogger(),
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
