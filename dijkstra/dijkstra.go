// Package dijkstra implements Dijkstra's shortest-path algorithm on a
// fixed-capacity core.Graph.
//
// Complexity:
//
//   - Time:  O((V + E) log E)
//   - Every improvement pushes one heap entry: at most E pushes in total.
//   - Each heap operation costs O(log N), N ≤ E + 1.
//   - Space: O(V + E)
//
// Notes on implementation choices:
//
//   - Weights are uint32, so negative weights cannot reach the solver.
//   - Lazy decrease-key: an improved vertex is pushed again and the old entry
//     is left in the heap. A popped entry whose distance is larger than the
//     table value is stale and skipped; relaxing it could not improve anything.
//   - Equal distances pop in push order, which keeps the improvement stream
//     deterministic.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/shortpath/core"
)

// Dijkstra computes shortest distances from Options.Source to every vertex of g.
//
// Returns a Distances table of length g.VertexCount(); entry for the source is 0,
// vertices with no path hold Unreachable.
//
// Preconditions (violations panic with an error wrapping the sentinel):
//  1. g must be non-nil (ErrNilGraph).
//  2. Source must be in [1, g.VertexCount()] (ErrInvalidSource).
//
// Every strict improvement of a tentative distance is reported to OnImprove
// before the vertex is pushed onto the heap.
func Dijkstra(g *core.Graph, opts ...Option) Distances {
	return Solve(g, opts...).Dist
}

// Result bundles the outcome of Solve.
type Result struct {
	// Source is the 1-based start vertex.
	Source int

	// Dist holds one entry per vertex; see Distances.
	Dist Distances

	// Prev[i] is the 1-based predecessor of vertex i+1 on its shortest path,
	// or 0 for the source and for unreachable vertices.
	// nil unless WithReturnPath was given.
	Prev []int
}

// Solve performs the same computation as Dijkstra and returns the full Result,
// including the predecessor table when WithReturnPath is set.
func Solve(g *core.Graph, opts ...Option) Result {
	cfg := DefaultOptions(0)
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		panic(ErrNilGraph)
	}
	if !g.HasVertex(cfg.Source) {
		panic(fmt.Errorf("%w: invalid vertex provided: %d", ErrInvalidSource, cfg.Source))
	}

	n := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		src:     cfg.Source - 1,
		dist:    make(Distances, n),
		pq:      make(nodePQ, 0, n),
		log:     cfg.Logger.WithField("source", cfg.Source),
	}
	if cfg.ReturnPath {
		r.prev = make([]int, n)
	}

	r.init()
	r.process()

	return Result{Source: cfg.Source, Dist: r.dist, Prev: r.prev}
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph        // read-only during the run
	options Options            // resolved configuration
	src     int                // 0-based source
	dist    Distances          // 0-based vertex → best known distance
	prev    []int              // 0-based vertex → 1-based predecessor; nil if not requested
	pq      nodePQ             // lazy min-heap
	seq     uint64             // push counter for FIFO tie-breaking
	log     logrus.FieldLogger // tagged with the source vertex
}

// init sets every distance to Unreachable, the source to 0, and seeds the heap.
func (r *runner) init() {
	for i := range r.dist {
		r.dist[i] = Unreachable
	}
	r.dist[r.src] = 0

	heap.Init(&r.pq)
	r.push(r.src, 0)
}

// process pops the closest entry until the heap is empty, relaxing the
// half-edges of every non-stale entry.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if item.dist > r.dist[item.id] {
			r.log.WithFields(logrus.Fields{"vertex": item.id + 1, "dist": item.dist}).Debug("skip stale entry")
			continue
		}
		r.log.WithFields(logrus.Fields{"vertex": item.id + 1, "dist": item.dist}).Debug("pop")
		r.relax(item.id, item.dist)
	}
}

// relax examines each half-edge leaving u (0-based) whose finalized distance is d.
func (r *runner) relax(u int, d uint64) {
	for _, e := range r.g.Adjacent(u) {
		v := e.To
		candidate := d + uint64(e.Weight)

		if candidate > r.options.MaxDistance {
			continue
		}
		// Strict "<": equal candidates keep the earlier path.
		if candidate >= r.dist[v] {
			continue
		}

		r.dist[v] = candidate
		if r.prev != nil {
			r.prev[v] = u + 1
		}
		r.log.WithFields(logrus.Fields{
			"from":   u + 1,
			"to":     v + 1,
			"weight": e.Weight,
			"dist":   candidate,
		}).Debug("relax")
		r.options.OnImprove(Improvement{
			Source:   r.src + 1,
			Vertex:   v + 1,
			Distance: candidate,
		})

		r.push(v, candidate)
	}
}

func (r *runner) push(id int, dist uint64) {
	heap.Push(&r.pq, &nodeItem{id: id, dist: dist, seq: r.seq})
	r.seq++
}

// nodeItem is a candidate (vertex, distance) pair waiting in the heap.
type nodeItem struct {
	id   int    // 0-based vertex
	dist uint64 // distance at push time
	seq  uint64 // push order
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then by seq.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by ascending distance; ties go to the earlier push.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x to the heap. Called by heap.Push; x must be *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
