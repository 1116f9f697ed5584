package main

import (
	"cmp"
	"fmt"

	"github.com/joshuapare/minkit/internal/bounds"
	"github.com/joshuapare/minkit/minelem"
)

type minFunc[T any] func(s []T, first, last int, less minelem.LessFunc[T]) (int, error)

type pairFunc[T any] func(s []T, first, last int, less minelem.LessFunc[T]) (int, int, error)

var (
	minAlgorithms  = []string{"naive", "binary"}
	pairAlgorithms = []string{"tournament", "practical"}
)

func lookupMin[T any](name string) (minFunc[T], error) {
	switch name {
	case "naive":
		return minelem.MinElement[T], nil
	case "binary":
		return minelem.MinElementBinary[T], nil
	}
	return nil, fmt.Errorf("unknown algorithm %q (want one of %v)", name, minAlgorithms)
}

func lookupPair[T any](name string) (pairFunc[T], error) {
	switch name {
	case "tournament":
		return minelem.MinElement12[T], nil
	case "practical":
		return minelem.MinElement12Practical[T], nil
	}
	return nil, fmt.Errorf("unknown algorithm %q (want one of %v)", name, pairAlgorithms)
}

// ordering returns the ascending order, or the descending one when desc is set.
func ordering[T cmp.Ordered](desc bool) minelem.LessFunc[T] {
	if desc {
		return minelem.Greater[T]()
	}
	return minelem.Less[T]()
}

// comparisonBound is the worst-case comparator calls of a pair algorithm on
// n elements.
func comparisonBound(name string, n int) int {
	if n < 2 {
		return 0
	}
	if name == "tournament" {
		return n - 1 + bounds.CeilLog2(n) - 1
	}
	return 2*n - 3
}
