package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/minkit/cmd/minctl/logger"
	"github.com/joshuapare/minkit/minelem"
)

var (
	min12Algo string
	min12Desc bool
)

func init() {
	cmd := newMin12Cmd()
	cmd.Flags().StringVar(&min12Algo, "algo", "tournament", "Algorithm: tournament or practical")
	cmd.Flags().BoolVar(&min12Desc, "desc", false, "Use descending order (find the two largest)")
	rootCmd.AddCommand(cmd)
}

func newMin12Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "min12 <value>...",
		Short: "Find the smallest and second smallest values",
		Long: `The min12 command prints the indices and values of the smallest and
second smallest of the given numbers. With a single value both results are
that value.

Example:
  minctl min12 3 8 0 7 9 1 2 5
  minctl min12 --algo practical 3 8 0 7 9 1 2 5
  minctl min12 --json --desc 3 8 0 7 9 1 2 5`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMin12(args)
		},
	}
	return cmd
}

// Min12Result is the JSON shape of the min12 command.
type Min12Result struct {
	Algorithm       string  `json:"algorithm"`
	Min1Index       int     `json:"min1_index"`
	Min1            float64 `json:"min1"`
	Min2Index       int     `json:"min2_index"`
	Min2            float64 `json:"min2"`
	Comparisons     int     `json:"comparisons"`
	ComparisonBound int     `json:"comparison_bound"`
}

func runMin12(args []string) error {
	fn, err := lookupPair[float64](min12Algo)
	if err != nil {
		return err
	}
	values, err := parseValues(args)
	if err != nil {
		return fmt.Errorf("invalid value: %w", err)
	}

	less, calls := minelem.Counted(ordering[float64](min12Desc))
	i1, i2, err := fn(values, 0, len(values), less)
	if err != nil {
		return fmt.Errorf("%s failed: %w", min12Algo, err)
	}
	bound := comparisonBound(min12Algo, len(values))
	logger.Debug("min12 computed",
		"algo", min12Algo, "n", len(values), "comparisons", *calls, "bound", bound)

	if jsonOut {
		return printJSON(Min12Result{
			Algorithm:       min12Algo,
			Min1Index:       i1,
			Min1:            values[i1],
			Min2Index:       i2,
			Min2:            values[i2],
			Comparisons:     *calls,
			ComparisonBound: bound,
		})
	}

	printInfo("min1: index=%d value=%s\n", i1, formatValue(values[i1]))
	printInfo("min2: index=%d value=%s\n", i2, formatValue(values[i2]))
	printVerbose("comparisons: %d (bound %d)\n", *calls, bound)
	return nil
}
