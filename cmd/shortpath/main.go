// Command shortpath prints single-source shortest paths over a small
// undirected graph, reporting each improvement as the solver finds it.
//
// Usage:
//
//	shortpath                      # built-in six-vertex graph, source 1
//	shortpath -g city.yaml -s 3    # graph document, source 3
//	shortpath -v --routes          # debug log on stderr, routes after the table
package main

import "os"

var version = "dev"

func main() {
	if err := newRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
