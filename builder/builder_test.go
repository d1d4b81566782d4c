package builder_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/builder"
	"github.com/katalvlaran/shortpath/core"
)

func TestBuildGraph_NegativeCapacity(t *testing.T) {
	_, err := builder.BuildGraph(-1, nil)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestBuildGraph_NoConstructors(t *testing.T) {
	g, err := builder.BuildGraph(4, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
}

func TestPath(t *testing.T) {
	g, err := builder.BuildGraph(5, nil, builder.Path(4))
	require.NoError(t, err)
	assert.Equal(t, []core.UndirectedEdge{
		{From: 1, To: 2, Weight: 1},
		{From: 2, To: 3, Weight: 1},
		{From: 3, To: 4, Weight: 1},
	}, g.Edges())
	assert.Empty(t, g.Neighbors(5))
}

func TestCycle(t *testing.T) {
	g, err := builder.BuildGraph(4, []builder.BuilderOption{builder.WithConstantWeight(3)}, builder.Cycle(4))
	require.NoError(t, err)
	assert.Equal(t, 4, g.EdgeCount())
	for v := 1; v <= 4; v++ {
		assert.Len(t, g.Neighbors(v), 2, "vertex %d", v)
	}
	assert.Equal(t, []core.Edge{{To: 2, Weight: 3}, {To: 4, Weight: 3}}, g.Neighbors(1))
}

func TestComplete(t *testing.T) {
	g, err := builder.BuildGraph(5, nil, builder.Complete(5))
	require.NoError(t, err)
	assert.Equal(t, 10, g.EdgeCount())
}

func TestConstructorValidation(t *testing.T) {
	cases := []struct {
		name string
		n    int
		con  builder.Constructor
		want error
	}{
		{"path too short", 3, builder.Path(1), builder.ErrTooFewVertices},
		{"path too long", 3, builder.Path(4), builder.ErrVertexOutOfRange},
		{"cycle too short", 3, builder.Cycle(2), builder.ErrTooFewVertices},
		{"cycle too long", 3, builder.Cycle(5), builder.ErrVertexOutOfRange},
		{"complete empty", 3, builder.Complete(0), builder.ErrTooFewVertices},
		{"complete too long", 3, builder.Complete(4), builder.ErrVertexOutOfRange},
		{"classic too small", 5, builder.Classic(), builder.ErrVertexOutOfRange},
		{"edge to zero", 3, builder.EdgeList([]builder.EdgeSpec{{From: 1, To: 0, Weight: 1}}), builder.ErrVertexOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(tc.n, nil, tc.con)
			assert.Nil(t, g)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestEdgeList_ReportsBadEndpoint(t *testing.T) {
	con := builder.EdgeList([]builder.EdgeSpec{
		{From: 1, To: 2, Weight: 1},
		{From: 2, To: 9, Weight: 1},
	})

	_, err := builder.BuildGraph(3, nil, con)
	require.ErrorIs(t, err, builder.ErrVertexOutOfRange)
	assert.Contains(t, err.Error(), "edge #1: cannot add edge to vertex: 9")
}

func TestClassicGraph(t *testing.T) {
	g := builder.ClassicGraph()
	assert.Equal(t, builder.ClassicVertexCount, g.VertexCount())
	assert.Equal(t, 9, g.EdgeCount())

	edges := builder.ClassicEdges()
	edges[0].Weight = 99
	assert.Equal(t, uint32(7), builder.ClassicEdges()[0].Weight, "ClassicEdges must return a copy")
}

func TestUniformWeightFn(t *testing.T) {
	fn := builder.UniformWeightFn(5, 8)
	assert.Equal(t, uint32(5), fn(nil), "nil rng falls back to min")

	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		w := fn(r)
		assert.GreaterOrEqual(t, w, uint32(5))
		assert.LessOrEqual(t, w, uint32(8))
	}
	assert.Equal(t, uint32(4), builder.UniformWeightFn(4, 4)(r))
}

func TestUniformWeight_Deterministic(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(99), builder.WithUniformWeight(1, 100)}
	g1, err := builder.BuildGraph(6, opts, builder.Complete(6))
	require.NoError(t, err)

	opts = []builder.BuilderOption{builder.WithSeed(99), builder.WithUniformWeight(1, 100)}
	g2, err := builder.BuildGraph(6, opts, builder.Complete(6))
	require.NoError(t, err)

	assert.Equal(t, g1.Edges(), g2.Edges())
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.UniformWeightFn(3, 2) })
}
