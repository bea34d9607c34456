package cli

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"runtime"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brindlewood/antcolony/genbench"
	"github.com/brindlewood/antcolony/solver"
)

type benchOptions struct {
	sizes        []int
	runs         int
	output       string
	ants         int
	iterations   int
	alpha        float64
	beta         float64
	evaporation  float64
	q            float64
	seed         uint32
	maxOutDegree int
	verbose      bool
}

type measurement struct {
	vertices  int
	variant   string
	threads   int
	averageMS float64
}

func newBenchCommand() *cobra.Command {
	opts := &benchOptions{}
	var sizesCSV string
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark the solver across synthetic graph sizes and emit a CSV report",
		RunE: func(cmd *cobra.Command, args []string) error {
			sizes, err := parseSizesCSV(sizesCSV)
			if err != nil {
				return err
			}
			opts.sizes = sizes
			return runBench(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&sizesCSV, "sizes", "3000,3500,4000,4500,5000,5500,6000,6500,7000", "comma-separated vertex counts")
	flags.IntVar(&opts.runs, "runs", 100, "repeated runs averaged per (size, variant, thread-count)")
	flags.StringVar(&opts.output, "output", "benchmark_results.csv", "output CSV path")
	flags.IntVar(&opts.ants, "ants", 128, "ants per iteration")
	flags.IntVar(&opts.iterations, "iterations", 150, "iterations per run")
	flags.Float64Var(&opts.alpha, "alpha", 1.0, "pheromone exponent")
	flags.Float64Var(&opts.beta, "beta", 3.0, "heuristic exponent")
	flags.Float64Var(&opts.evaporation, "evaporation", 0.5, "pheromone evaporation rate")
	flags.Float64Var(&opts.q, "q", 100.0, "pheromone deposit scale")
	flags.Uint32Var(&opts.seed, "seed", 42, "base random seed")
	flags.IntVar(&opts.maxOutDegree, "max-out-degree", 15, "maximum random extra out-degree per vertex")
	flags.BoolVar(&opts.verbose, "verbose", false, "enable debug logging")

	return cmd
}

func parseSizesCSV(csvValue string) ([]int, error) {
	var sizes []int
	for _, token := range strings.Split(csvValue, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		v, err := strconv.Atoi(token)
		if err != nil {
			return nil, fmt.Errorf("bench: invalid --sizes token %q: %w", token, err)
		}
		sizes = append(sizes, v)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("bench: --sizes must name at least one graph size")
	}
	return sizes, nil
}

func determineThreadCounts() []int {
	hardware := runtime.NumCPU()
	if hardware < 1 {
		hardware = 1
	}
	counts := []int{1, 2, 4, hardware * 8}
	sort.Ints(counts)
	deduped := counts[:0]
	for i, c := range counts {
		if i == 0 || counts[i-1] != c {
			deduped = append(deduped, c)
		}
	}
	return deduped
}

func runBench(ctx context.Context, opts *benchOptions) error {
	logger := newLogger(opts.verbose)
	threadCounts := determineThreadCounts()
	logger.Info("bench config", "sizes", opts.sizes, "runs", opts.runs, "threads", threadCounts)

	var results []measurement
	for index, vertices := range opts.sizes {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		graphSeed := opts.seed + uint32(index)*9973
		logger.Info("preparing graph", "vertices", vertices)
		graph, err := genbench.Synthetic(vertices, graphSeed, opts.maxOutDegree)
		if err != nil {
			return err
		}
		s := solver.New(graph)
		params := solver.AntColonyParameters{
			Ants:        opts.ants,
			Iterations:  opts.iterations,
			Alpha:       opts.alpha,
			Beta:        opts.beta,
			Evaporation: opts.evaporation,
			Q:           opts.q,
			Seed:        opts.seed,
		}

		seqAvg := averageSequential(ctx, s, params, opts.runs)
		logger.Info("sequential", "vertices", vertices, "average_ms", seqAvg)
		results = append(results, measurement{vertices: vertices, variant: "sequential", threads: 1, averageMS: seqAvg})

		for _, threads := range threadCounts {
			parAvg := averageParallel(ctx, s, params, opts.runs, threads)
			logger.Info("parallel", "vertices", vertices, "threads", threads, "average_ms", parAvg)
			results = append(results, measurement{vertices: vertices, variant: "parallel", threads: threads, averageMS: parAvg})
		}
	}

	return writeCSV(opts.output, results)
}

func averageSequential(ctx context.Context, s *solver.Solver, base solver.AntColonyParameters, runs int) float64 {
	total := 0.0
	for run := 0; run < runs; run++ {
		params := base
		params.Seed += uint32(run)
		total += s.RunSequential(ctx, params).ElapsedMS
	}
	return total / float64(runs)
}

func averageParallel(ctx context.Context, s *solver.Solver, base solver.AntColonyParameters, runs, threads int) float64 {
	total := 0.0
	for run := 0; run < runs; run++ {
		params := base
		params.Seed += uint32(run)
		total += s.RunParallel(ctx, params, threads).ElapsedMS
	}
	return total / float64(runs)
}

func writeCSV(path string, results []measurement) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("bench: unable to open output file %q: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"vertices", "variant", "threads", "average_ms"}); err != nil {
		return err
	}
	for _, m := range results {
		row := []string{
			strconv.Itoa(m.vertices),
			m.variant,
			strconv.Itoa(m.threads),
			strconv.FormatFloat(m.averageMS, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}
