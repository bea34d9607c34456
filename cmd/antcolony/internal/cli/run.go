package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/brindlewood/antcolony/runconfig"
	"github.com/brindlewood/antcolony/solver"
	"github.com/brindlewood/antcolony/tourgraph"
)

type runOptions struct {
	graphPath  string
	configPath string
	ants       int
	iterations int
	threads    int
	seed       uint32
	onlySeq    bool
	onlyPar    bool
	printPaths bool
	verbose    bool
}

func newRunCommand() *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the ant colony solver against a graph file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.graphPath, "graph", "sample.dot", "path to a Graphviz-like graph file")
	flags.StringVar(&opts.configPath, "config", "", "path to a TOML parameter profile (optional)")
	flags.IntVar(&opts.ants, "ants", 0, "number of ants per iteration (profile value when not given)")
	flags.IntVar(&opts.iterations, "iterations", 0, "number of iterations (profile value when not given)")
	flags.IntVar(&opts.threads, "threads", 0, "worker thread count for the parallel run (profile value when not given)")
	flags.Uint32Var(&opts.seed, "seed", 0, "random seed (profile value when not given)")
	flags.BoolVar(&opts.onlySeq, "only-seq", false, "run only the sequential solver")
	flags.BoolVar(&opts.onlyPar, "only-par", false, "run only the parallel solver")
	flags.BoolVar(&opts.printPaths, "print-paths", true, "print every best-tied tour")
	flags.BoolVar(&opts.verbose, "verbose", false, "enable debug logging")

	return cmd
}

func runRun(cmd *cobra.Command, opts *runOptions) error {
	ctx := cmd.Context()
	logger := newLogger(opts.verbose)

	profile := runconfig.Default()
	if opts.configPath != "" {
		loaded, err := runconfig.Load(opts.configPath)
		if err != nil {
			return err
		}
		profile = loaded
	}
	applyOverrides(cmd, opts, &profile)

	graph, err := tourgraph.ParseGraphvizFile(opts.graphPath)
	if err != nil {
		return err
	}
	logger.Info("graph loaded", "vertices", graph.VertexCount(), "path", opts.graphPath)
	logger.Info("parameters", "ants", profile.Ants, "iterations", profile.Iterations, "threads", profile.Threads)

	s := solver.New(graph)
	params := profile.Parameters()

	if !opts.onlyPar {
		result := s.RunSequential(ctx, params)
		printResult(logger, "sequential", result, graph, opts.printPaths)
	}
	if !opts.onlySeq {
		result := s.RunParallel(ctx, params, profile.Threads)
		printResult(logger, "parallel", result, graph, opts.printPaths)
	}

	return nil
}

func applyOverrides(cmd *cobra.Command, opts *runOptions, profile *runconfig.Profile) {
	flags := cmd.Flags()
	if flags.Changed("ants") {
		profile.Ants = opts.ants
	}
	if flags.Changed("iterations") {
		profile.Iterations = opts.iterations
	}
	if flags.Changed("threads") {
		profile.Threads = opts.threads
	}
	if flags.Changed("seed") {
		profile.Seed = opts.seed
	}
}

func newLogger(verbose bool) *log.Logger {
	logger := log.New(os.Stderr)
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func printResult(logger *log.Logger, title string, result solver.TourResult, graph *tourgraph.Graph, printPaths bool) {
	logger.Info(title,
		"best_length", result.BestLength,
		"tied_tours", len(result.BestPaths),
		"elapsed_ms", result.ElapsedMS,
	)
	if !printPaths {
		return
	}
	for i, path := range result.BestPaths {
		fmt.Fprintf(os.Stdout, "%s route %d: %s\n", title, i+1, labelPath(graph, path))
	}
}

func labelPath(graph *tourgraph.Graph, path []int) string {
	out := ""
	for i, idx := range path {
		if i != 0 {
			out += " -> "
		}
		out += graph.Label(idx)
	}
	return out
}
