// Package testutil provides input generators and reference oracles shared by
// the package tests.
package testutil

import (
	"math/rand/v2"
	"sort"
	"testing"
)

// Perm returns a deterministic random permutation of 0..n-1 seeded by seed.
func Perm(t testing.TB, n int, seed uint64) []int {
	t.Helper()
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return r.Perm(n)
}

// Ints returns n deterministic random values in [0, limit), duplicates allowed.
func Ints(t testing.TB, n, limit int, seed uint64) []int {
	t.Helper()
	r := rand.New(rand.NewPCG(seed, seed+1))
	out := make([]int, n)
	for i := range out {
		out[i] = r.IntN(limit)
	}
	return out
}

// Min12 is the brute-force oracle for the first minimum and the runner-up of
// s[first:last]: the runner-up is the first minimum of the range with the
// winner removed. Ranges shorter than two return (first, first).
func Min12[T any](s []T, first, last int, less func(a, b T) bool) (int, int) {
	if last-first < 2 {
		return first, first
	}
	idx := make([]int, 0, last-first)
	for i := first; i < last; i++ {
		idx = append(idx, i)
	}
	sort.SliceStable(idx, func(a, b int) bool { return less(s[idx[a]], s[idx[b]]) })
	return idx[0], idx[1]
}
