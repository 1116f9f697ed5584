// Command benchmark_parser turns `go test -bench` output for the minelem
// benchmarks into a markdown report comparing the tournament and practical
// min+second-min algorithms.
//
//	go test -run '^$' -bench . ./minelem | go run ./scripts -output report.md
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// BenchmarkResult represents a parsed benchmark result.
type BenchmarkResult struct {
	Name        string
	Operation   string // "Min12" or "Min"
	Impl        string // "tournament", "practical", "naive", "binary"
	Size        int
	Iterations  int
	NsPerOp     float64
	BytesPerOp  int64
	AllocsPerOp int64
}

// ComparisonResult pairs two implementations of the same operation and size.
type ComparisonResult struct {
	Operation string
	Size      int
	Base      BenchmarkResult
	Other     BenchmarkResult
	Speedup   float64 // Other.NsPerOp / Base.NsPerOp
}

// baselines names, per operation, the implementation other results are compared against.
var baselines = map[string][2]string{
	"Min12": {"practical", "tournament"},
	"Min":   {"naive", "binary"},
}

var (
	inputFile = flag.String(
		"input",
		"",
		"Input file with benchmark output (stdin if not specified)",
	)
	outputFile = flag.String("output", "", "Output markdown file (stdout if not specified)")
	quiet      = flag.Bool("quiet", false, "Suppress progress output")
)

func main() {
	flag.Parse()

	var in io.Reader = os.Stdin
	if *inputFile != "" {
		f, err := os.Open(*inputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening input file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	results := parseBenchmarks(bufio.NewScanner(in))
	if !*quiet {
		fmt.Fprintf(os.Stderr, "Parsed %d benchmark results\n", len(results))
	}

	comparisons := generateComparisons(results)
	if !*quiet {
		fmt.Fprintf(os.Stderr, "Generated %d comparisons\n", len(comparisons))
	}

	report := generateMarkdownReport(comparisons, time.Now())
	if *outputFile == "" {
		fmt.Fprint(os.Stdout, report)
		return
	}
	if err := os.WriteFile(*outputFile, []byte(report), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
		os.Exit(1)
	}
	if !*quiet {
		fmt.Fprintf(os.Stderr, "Report written to %s\n", *outputFile)
	}
}

// BenchmarkMin12/tournament/4096-8    10000    12450 ns/op    4096 B/op    8 allocs/op
var benchmarkRegex = regexp.MustCompile(
	`^Benchmark(\w+)/(\w+)/(\d+)(?:-\d+)?\s+(\d+)\s+([\d.]+)\s+ns/op(?:\s+(\d+)\s+B/op)?(?:\s+(\d+)\s+allocs/op)?`,
)

func parseBenchmarks(scanner *bufio.Scanner) []BenchmarkResult {
	var results []BenchmarkResult

	for scanner.Scan() {
		line := scanner.Text()

		// Try to parse as JSON (from -json flag)
		var testEvent map[string]any
		if err := json.Unmarshal([]byte(line), &testEvent); err == nil {
			if output, ok := testEvent["Output"].(string); ok {
				line = output
			}
		}

		m := benchmarkRegex.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}

		r := BenchmarkResult{
			Name:      strings.Fields(strings.TrimSpace(line))[0],
			Operation: m[1],
			Impl:      m[2],
		}
		r.Size, _ = strconv.Atoi(m[3])
		r.Iterations, _ = strconv.Atoi(m[4])
		r.NsPerOp, _ = strconv.ParseFloat(m[5], 64)
		if m[6] != "" {
			r.BytesPerOp, _ = strconv.ParseInt(m[6], 10, 64)
		}
		if m[7] != "" {
			r.AllocsPerOp, _ = strconv.ParseInt(m[7], 10, 64)
		}
		results = append(results, r)
	}

	return results
}

func generateComparisons(results []BenchmarkResult) []ComparisonResult {
	type key struct {
		operation string
		size      int
	}

	grouped := make(map[key]map[string]BenchmarkResult)
	for _, r := range results {
		k := key{r.Operation, r.Size}
		if grouped[k] == nil {
			grouped[k] = make(map[string]BenchmarkResult)
		}
		grouped[k][r.Impl] = r
	}

	var comparisons []ComparisonResult
	for k, impls := range grouped {
		names, ok := baselines[k.operation]
		if !ok {
			continue
		}
		base, hasBase := impls[names[0]]
		other, hasOther := impls[names[1]]
		if !hasBase || !hasOther || base.NsPerOp == 0 {
			continue
		}
		comparisons = append(comparisons, ComparisonResult{
			Operation: k.operation,
			Size:      k.size,
			Base:      base,
			Other:     other,
			Speedup:   other.NsPerOp / base.NsPerOp,
		})
	}

	// Sort by operation then size
	sort.Slice(comparisons, func(i, j int) bool {
		if comparisons[i].Operation != comparisons[j].Operation {
			return comparisons[i].Operation < comparisons[j].Operation
		}
		return comparisons[i].Size < comparisons[j].Size
	})

	return comparisons
}

func generateMarkdownReport(comparisons []ComparisonResult, now time.Time) string {
	var sb strings.Builder

	sb.WriteString("# Benchmark Report\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", now.Format("2006-01-02 15:04:05")))

	sb.WriteString("## Detailed Results\n\n")
	sb.WriteString("| Operation | Size | Baseline (ns/op) | Other (ns/op) | Slowdown | Allocs |\n")
	sb.WriteString("|-----------|------|------------------|---------------|----------|--------|\n")

	for _, c := range comparisons {
		sb.WriteString(fmt.Sprintf("| %s | %d | %s: %s | %s: %s | %.2fx | %d vs %d |\n",
			c.Operation,
			c.Size,
			c.Base.Impl, formatNumber(c.Base.NsPerOp),
			c.Other.Impl, formatNumber(c.Other.NsPerOp),
			c.Speedup,
			c.Base.AllocsPerOp, c.Other.AllocsPerOp,
		))
	}

	return sb.String()
}

func formatNumber(n float64) string {
	switch {
	case n >= 1e9:
		return fmt.Sprintf("%.2fs", n/1e9)
	case n >= 1e6:
		return fmt.Sprintf("%.2fms", n/1e6)
	case n >= 1e3:
		return fmt.Sprintf("%.2fµs", n/1e3)
	default:
		return fmt.Sprintf("%.0fns", n)
	}
}
