package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/minkit/cmd/minctl/logger"
	"github.com/joshuapare/minkit/minelem"
)

var (
	minAlgo string
	minDesc bool
)

func init() {
	cmd := newMinCmd()
	cmd.Flags().StringVar(&minAlgo, "algo", "naive", "Algorithm: naive or binary")
	cmd.Flags().BoolVar(&minDesc, "desc", false, "Use descending order (find the maximum)")
	rootCmd.AddCommand(cmd)
}

func newMinCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "min <value>...",
		Short: "Find the smallest value",
		Long: `The min command prints the index and value of the first minimum of
the given numbers.

Example:
  minctl min 9 13 7 124 32 17 8
  minctl min --algo binary 3 8 0 7 9 1 2 5
  minctl min --desc -- -4 -1 -7`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMin(args)
		},
	}
	return cmd
}

// MinResult is the JSON shape of the min command.
type MinResult struct {
	Algorithm   string  `json:"algorithm"`
	Index       int     `json:"index"`
	Value       float64 `json:"value"`
	Comparisons int     `json:"comparisons"`
}

func runMin(args []string) error {
	fn, err := lookupMin[float64](minAlgo)
	if err != nil {
		return err
	}
	values, err := parseValues(args)
	if err != nil {
		return fmt.Errorf("invalid value: %w", err)
	}

	less, calls := minelem.Counted(ordering[float64](minDesc))
	i, err := fn(values, 0, len(values), less)
	if err != nil {
		return fmt.Errorf("%s failed: %w", minAlgo, err)
	}
	logger.Debug("min computed", "algo", minAlgo, "n", len(values), "comparisons", *calls)

	if jsonOut {
		return printJSON(MinResult{
			Algorithm:   minAlgo,
			Index:       i,
			Value:       values[i],
			Comparisons: *calls,
		})
	}

	printInfo("min: index=%d value=%s\n", i, formatValue(values[i]))
	printVerbose("comparisons: %d\n", *calls)
	return nil
}
