// Package counter provides a binary-counter accumulator: a reduction structure
// that merges a stream of values pairwise using O(log n) storage.
//
// # Overview
//
// Adding a value works like incrementing a binary number. Slot i stands for
// bit i; an occupied slot holds the combination of exactly 2^i values. When a
// value is added, it is merged with every occupied slot it passes ("carry")
// until it reaches an empty slot or runs off the end, in which case a new slot
// is appended.
//
//	adds  slots (low → high)
//	1     [a]
//	2     [_, ab]
//	3     [c, ab]
//	4     [_, _, abcd]
//
// Over n additions the combining operation runs n - popcount(n) times, and
// Reduce merges the remaining occupied slots with popcount(n) - 1 more calls,
// for n - 1 in total. Every value takes part in at most ceil(log2 n) merges,
// which is what makes tournament-style reductions comparison-optimal.
//
// # Combiners
//
// The merge operation is a Combiner. Stateless operations can use OpFunc:
//
//	sum := counter.New(counter.OpFunc[int](func(x, y int) int { return x + y }), 0)
//	for _, v := range []int{1, 2, 3, 4, 5} {
//	    sum.Add(v)
//	}
//	total := sum.Reduce() // 15
//
// Stateful combiners, such as the tournament in package minelem that records
// losers in a listpool.Pool, are ordinary types with a Combine method holding
// their state explicitly.
//
// # Zero Sentinel
//
// A counter is created with a zero value that marks empty slots. Zero must
// never be produced by the combiner from two non-zero values, and adding zero
// is ignored.
//
// # Thread Safety
//
// Counter instances are not thread-safe. Callers must synchronize access
// externally.
package counter
