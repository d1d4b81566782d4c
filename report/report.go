// Package report renders shortest-path results as the plain-text lines
// printed by the shortpath command.
//
// Line formats (all indices 1-based):
//
//	Found shortest path from {source} to {vertex} with weight = {distance}
//	Shortest paths:
//	{source}->{vertex} = {distance}
//
// Vertices holding dijkstra.Unreachable are omitted from the table.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/shortpath/dijkstra"
)

// Header opens the final distance table.
const Header = "Shortest paths:"

// FormatImprovement renders one improvement notification, without newline.
func FormatImprovement(ev dijkstra.Improvement) string {
	return fmt.Sprintf("Found shortest path from %d to %d with weight = %d", ev.Source, ev.Vertex, ev.Distance)
}

// FormatPath renders one table row, without newline.
func FormatPath(source, vertex int, distance uint64) string {
	return fmt.Sprintf("%d->%d = %d", source, vertex, distance)
}

// PrintPaths writes the header followed by one row per reachable vertex,
// in vertex order. The source row (distance 0) is included.
// The first write error stops output and is returned.
func PrintPaths(w io.Writer, source int, dist dijkstra.Distances) error {
	if _, err := fmt.Fprintln(w, Header); err != nil {
		return err
	}
	for i, d := range dist {
		if d == dijkstra.Unreachable {
			continue
		}
		if _, err := fmt.Fprintln(w, FormatPath(source, i+1, d)); err != nil {
			return err
		}
	}

	return nil
}

// RoutesHeader opens the optional route listing.
const RoutesHeader = "Routes:"

// FormatRoute renders one route row, without newline: "1->5: 1 3 6 5".
func FormatRoute(source, vertex int, path []int) string {
	hops := make([]string, len(path))
	for i, v := range path {
		hops[i] = strconv.Itoa(v)
	}

	return fmt.Sprintf("%d->%d: %s", source, vertex, strings.Join(hops, " "))
}

// PrintRoutes writes RoutesHeader and the reconstructed route to every
// reachable vertex. res must come from dijkstra.Solve with WithReturnPath.
func PrintRoutes(w io.Writer, res dijkstra.Result) error {
	if _, err := fmt.Fprintln(w, RoutesHeader); err != nil {
		return err
	}
	for v := 1; v <= len(res.Dist); v++ {
		if !res.Dist.Reachable(v) {
			continue
		}
		path, err := res.PathTo(v)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, FormatRoute(res.Source, v, path)); err != nil {
			return err
		}
	}

	return nil
}

// Improvement returns a hook for dijkstra.WithOnImprove that writes each
// notification to w as it happens. Write errors are dropped; the hook
// cannot abort a solve.
func Improvement(w io.Writer) func(dijkstra.Improvement) {
	return func(ev dijkstra.Improvement) {
		_, _ = fmt.Fprintln(w, FormatImprovement(ev))
	}
}
