package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"

	"github.com/joshuapare/minkit/cmd/minctl/logger"
	"github.com/joshuapare/minkit/minelem"
)

var (
	benchMinSize    int
	benchMaxSize    int
	benchStepShift  int
	benchIterations int
	benchSeed       uint64
	benchAlgos      []string
)

func init() {
	cmd := newBenchCmd()
	cmd.Flags().IntVar(&benchMinSize, "min-size", 0, "Smallest input size (default from config: 16)")
	cmd.Flags().IntVar(&benchMaxSize, "max-size", 0, "Largest input size (default from config: 16Mi)")
	cmd.Flags().IntVar(&benchStepShift, "step-shift", 0, "Grow the size by 2^shift each step (default 4)")
	cmd.Flags().IntVar(&benchIterations, "iterations", 0, "Timed runs per size and algorithm (default 10)")
	cmd.Flags().Uint64Var(&benchSeed, "seed", 0, "Random seed for the input permutations (default 1)")
	cmd.Flags().StringSliceVar(&benchAlgos, "algo", nil, "Algorithms to run (default: tournament,practical)")
	rootCmd.AddCommand(cmd)
}

func newBenchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark the min+second-min algorithms",
		Long: `The bench command times the tournament and practical min+second-min
algorithms on shuffled permutations of 0..n-1, for n growing from min-size to
max-size by a factor of 2^step-shift, and reports the comparator calls each
one needed.

Example:
  minctl bench
  minctl bench --max-size 65536 --iterations 3
  minctl bench --algo tournament --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cfg.Bench
			flags := cmd.Flags()
			if flags.Changed("min-size") {
				opts.MinSize = benchMinSize
			}
			if flags.Changed("max-size") {
				opts.MaxSize = benchMaxSize
			}
			if flags.Changed("step-shift") {
				opts.StepShift = benchStepShift
			}
			if flags.Changed("iterations") {
				opts.Iterations = benchIterations
			}
			if flags.Changed("seed") {
				opts.Seed = benchSeed
			}
			if flags.Changed("algo") {
				opts.Algorithms = benchAlgos
			}
			return runBench(opts)
		},
	}
	return cmd
}

// BenchResult is one (algorithm, size) measurement.
type BenchResult struct {
	Algorithm       string `json:"algorithm"`
	Size            int    `json:"size"`
	Iterations      int    `json:"iterations"`
	NsPerOp         int64  `json:"ns_per_op"`
	Comparisons     int    `json:"comparisons"`
	ComparisonBound int    `json:"comparison_bound"`
}

// BenchReport is the JSON shape of the bench command.
type BenchReport struct {
	Seed         uint64        `json:"seed"`
	Results      []BenchResult `json:"results"`
	PeakRSSBytes int64         `json:"peak_rss_bytes,omitempty"`
	CPUTimeNs    int64         `json:"cpu_time_ns,omitempty"`
}

// benchSizes lists min, min<<shift, ... up to max.
func benchSizes(opts BenchConfig) []int {
	var sizes []int
	for n := opts.MinSize; n <= opts.MaxSize; n <<= opts.StepShift {
		sizes = append(sizes, n)
		if n > opts.MaxSize>>opts.StepShift {
			break
		}
	}
	return sizes
}

func runBench(opts BenchConfig) error {
	if err := opts.validate(); err != nil {
		return err
	}

	report := BenchReport{Seed: opts.Seed}
	for _, n := range benchSizes(opts) {
		r := rand.New(rand.NewPCG(opts.Seed, uint64(n)))
		s := make([]uint64, n)
		for i := range s {
			s[i] = uint64(i)
		}

		for _, name := range opts.Algorithms {
			res, err := benchOne(name, s, r, opts.Iterations)
			if err != nil {
				return err
			}
			logger.Debug("bench step", "algo", name, "size", n, "ns_per_op", res.NsPerOp)
			printVerbose("%s n=%d done\n", name, n)
			report.Results = append(report.Results, res)
		}
	}

	if rss, cpu, ok := processUsage(); ok {
		report.PeakRSSBytes = rss
		report.CPUTimeNs = cpu.Nanoseconds()
	}
	logger.Info("bench finished", "results", len(report.Results), "peak_rss", report.PeakRSSBytes)

	if jsonOut {
		return printJSON(report)
	}
	printBenchTable(report)
	return nil
}

// benchOne shuffles s before every run and times only the algorithm call.
// Comparisons are counted on a separate, untimed run.
func benchOne(name string, s []uint64, r *rand.Rand, iterations int) (BenchResult, error) {
	fn, err := lookupPair[uint64](name)
	if err != nil {
		return BenchResult{}, err
	}
	n := len(s)
	shuffle := func() { r.Shuffle(n, func(i, j int) { s[i], s[j] = s[j], s[i] }) }

	var total time.Duration
	for range iterations {
		shuffle()
		start := time.Now()
		i1, i2, err := fn(s, 0, n, minelem.Less[uint64]())
		total += time.Since(start)
		if err != nil {
			return BenchResult{}, fmt.Errorf("%s n=%d: %w", name, n, err)
		}
		if s[i1] != 0 || s[i2] != 1 {
			return BenchResult{}, fmt.Errorf("%s n=%d: got values (%d, %d), want (0, 1)", name, n, s[i1], s[i2])
		}
	}

	shuffle()
	less, calls := minelem.Counted(minelem.Less[uint64]())
	if _, _, err := fn(s, 0, n, less); err != nil {
		return BenchResult{}, fmt.Errorf("%s n=%d: %w", name, n, err)
	}

	return BenchResult{
		Algorithm:       name,
		Size:            n,
		Iterations:      iterations,
		NsPerOp:         total.Nanoseconds() / int64(iterations),
		Comparisons:     *calls,
		ComparisonBound: comparisonBound(name, n),
	}, nil
}

func printBenchTable(report BenchReport) {
	printInfo("%-12s %12s %14s %14s %14s\n", "algorithm", "size", "ns/op", "comparisons", "bound")
	for _, r := range report.Results {
		printInfo("%-12s %12d %14d %14d %14d\n",
			r.Algorithm, r.Size, r.NsPerOp, r.Comparisons, r.ComparisonBound)
	}
	if report.PeakRSSBytes > 0 {
		printInfo("peak RSS: %d bytes, CPU time: %v\n",
			report.PeakRSSBytes, time.Duration(report.CPUTimeNs))
	}
}
