package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/shortpath/builder"
	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/dijkstra"
	"github.com/katalvlaran/shortpath/report"
)

const defaultSource = 1

// rootOptions holds the parsed command-line flags.
type rootOptions struct {
	graphPath string
	source    int
	verbose   bool
	quiet     bool
	routes    bool
}

func (o *rootOptions) addFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.graphPath, "graph", "g", "", "path to a YAML graph document (default: built-in six-vertex graph)")
	fs.IntVarP(&o.source, "source", "s", defaultSource, "1-based source vertex (default: the document's source, else 1)")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "log solver steps to stderr")
	fs.BoolVarP(&o.quiet, "quiet", "q", false, "do not print improvement lines")
	fs.BoolVar(&o.routes, "routes", false, "print the route to every reachable vertex after the table")
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:          "shortpath",
		Short:        "Print single-source shortest paths using Dijkstra's algorithm",
		Args:         cobra.NoArgs,
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	opts.addFlags(cmd.Flags())

	return cmd
}

func run(cmd *cobra.Command, opts *rootOptions) error {
	logger := log.New()
	logger.SetOutput(cmd.ErrOrStderr())
	if opts.verbose {
		logger.SetLevel(log.DebugLevel)
	}

	g, source, err := loadGraph(opts.graphPath, logger)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("source") {
		source = opts.source
	}
	if !g.HasVertex(source) {
		return errors.Errorf("invalid vertex provided: %d (graph has %d vertices)", source, g.VertexCount())
	}

	out := cmd.OutOrStdout()
	dopts := []dijkstra.Option{
		dijkstra.Source(source),
		dijkstra.WithLogger(logger),
		dijkstra.WithReturnPath(),
	}
	if !opts.quiet {
		dopts = append(dopts, dijkstra.WithOnImprove(report.Improvement(out)))
	}
	res := dijkstra.Solve(g, dopts...)

	if err := report.PrintPaths(out, source, res.Dist); err != nil {
		return errors.Wrap(err, "write distance table")
	}
	if opts.routes {
		if err := report.PrintRoutes(out, res); err != nil {
			return errors.Wrap(err, "write routes")
		}
	}

	return nil
}

// loadGraph returns the graph to solve and the default source vertex.
func loadGraph(path string, logger log.FieldLogger) (*core.Graph, int, error) {
	if path == "" {
		logger.Debug("using built-in six-vertex graph")
		return builder.ClassicGraph(), defaultSource, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, 0, errors.Wrap(err, "open graph document")
	}
	defer f.Close()

	g, doc, err := builder.LoadYAML(f)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "load %s", path)
	}

	source := doc.Source
	if source == 0 {
		source = defaultSource
	}
	logger.WithFields(log.Fields{
		"file":     path,
		"vertices": g.VertexCount(),
		"edges":    g.EdgeCount(),
		"source":   source,
	}).Debug("graph loaded")

	return g, source, nil
}
