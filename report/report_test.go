package report_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/dijkstra"
	"github.com/katalvlaran/shortpath/report"
)

func TestFormatImprovement(t *testing.T) {
	got := report.FormatImprovement(dijkstra.Improvement{Source: 1, Vertex: 4, Distance: 22})
	assert.Equal(t, "Found shortest path from 1 to 4 with weight = 22", got)
}

func TestFormatPath(t *testing.T) {
	assert.Equal(t, "3->5 = 17", report.FormatPath(3, 5, 17))
}

func TestPrintPaths_SkipsUnreachable(t *testing.T) {
	var buf bytes.Buffer
	dist := dijkstra.Distances{4, 0, dijkstra.Unreachable, 9}

	require.NoError(t, report.PrintPaths(&buf, 2, dist))
	assert.Equal(t, "Shortest paths:\n2->1 = 4\n2->2 = 0\n2->4 = 9\n", buf.String())
}

func TestPrintPaths_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.PrintPaths(&buf, 1, nil))
	assert.Equal(t, "Shortest paths:\n", buf.String())
}

// failWriter fails after the first n writes.
type failWriter struct{ n int }

var errWrite = errors.New("write failed")

func (f *failWriter) Write(p []byte) (int, error) {
	if f.n == 0 {
		return 0, errWrite
	}
	f.n--

	return len(p), nil
}

func TestPrintPaths_WriteError(t *testing.T) {
	err := report.PrintPaths(&failWriter{n: 1}, 1, dijkstra.Distances{0, 3})
	assert.ErrorIs(t, err, errWrite)

	err = report.PrintPaths(&failWriter{}, 1, dijkstra.Distances{0})
	assert.ErrorIs(t, err, errWrite)
}

// TestClassicOutput checks the complete console transcript of the
// reference six-vertex run.
func TestClassicOutput(t *testing.T) {
	g := core.NewGraph(6)
	g.AddEdge(1, 2, 7)
	g.AddEdge(1, 6, 14)
	g.AddEdge(1, 3, 9)
	g.AddEdge(2, 3, 10)
	g.AddEdge(2, 4, 15)
	g.AddEdge(3, 6, 2)
	g.AddEdge(3, 4, 11)
	g.AddEdge(4, 5, 6)
	g.AddEdge(5, 6, 9)

	var buf bytes.Buffer
	dist := dijkstra.Dijkstra(g, dijkstra.Source(1), dijkstra.WithOnImprove(report.Improvement(&buf)))
	require.NoError(t, report.PrintPaths(&buf, 1, dist))

	want := `Found shortest path from 1 to 2 with weight = 7
Found shortest path from 1 to 6 with weight = 14
Found shortest path from 1 to 3 with weight = 9
Found shortest path from 1 to 4 with weight = 22
Found shortest path from 1 to 6 with weight = 11
Found shortest path from 1 to 4 with weight = 20
Found shortest path from 1 to 5 with weight = 20
Shortest paths:
1->1 = 0
1->2 = 7
1->3 = 9
1->4 = 20
1->5 = 20
1->6 = 11
`
	assert.Equal(t, want, buf.String())
}

func TestPrintRoutes(t *testing.T) {
	g := core.NewGraph(4)
	g.AddEdge(1, 2, 1)
	g.AddEdge(2, 3, 1)
	g.AddEdge(1, 3, 5)

	res := dijkstra.Solve(g, dijkstra.Source(1), dijkstra.WithReturnPath())

	var buf bytes.Buffer
	require.NoError(t, report.PrintRoutes(&buf, res))
	assert.Equal(t, "Routes:\n1->1: 1\n1->2: 1 2\n1->3: 1 2 3\n", buf.String())
}

func TestPrintRoutes_NeedsPredecessors(t *testing.T) {
	res := dijkstra.Solve(core.NewGraph(1), dijkstra.Source(1))
	err := report.PrintRoutes(&bytes.Buffer{}, res)
	assert.ErrorIs(t, err, dijkstra.ErrPathNotRecorded)
}
