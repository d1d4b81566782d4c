// Package shortpath computes single-source shortest paths over small,
// fixed-capacity, weighted undirected graphs and reports every improvement
// as the solver finds it.
//
// What is inside?
//
//	core/          — fixed-capacity Graph: NewGraph(n), AddEdge(u, v, w), 1-based vertices
//	dijkstra/      — lazy-deletion Dijkstra with an improvement hook and path reconstruction
//	report/        — console formatting of improvements, the distance table and routes
//	builder/       — Path/Cycle/Complete/EdgeList constructors and YAML graph documents
//	cmd/shortpath/ — command-line front end
//
// Quick example:
//
//	g := core.NewGraph(3)
//	g.AddEdge(1, 2, 1)
//	g.AddEdge(2, 3, 2)
//	g.AddEdge(1, 3, 5)
//
//	dist := dijkstra.Dijkstra(g,
//	    dijkstra.Source(1),
//	    dijkstra.WithOnImprove(report.Improvement(os.Stdout)),
//	)
//	_ = report.PrintPaths(os.Stdout, 1, dist)
//
// prints
//
//	Found shortest path from 1 to 2 with weight = 1
//	Found shortest path from 1 to 3 with weight = 5
//	Found shortest path from 1 to 3 with weight = 3
//	Shortest paths:
//	1->1 = 0
//	1->2 = 1
//	1->3 = 3
//
// Out-of-range vertex indices are programmer errors and panic; input read
// from files goes through builder, which reports them as errors instead.
//
//	go install github.com/katalvlaran/shortpath/cmd/shortpath@latest
package shortpath
