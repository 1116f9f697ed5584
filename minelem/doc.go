// Package minelem finds the minimum, and the minimum together with the second
// smallest element, of a slice range under a caller-supplied ordering.
//
// # Overview
//
// All functions take a slice, a half-open range [first, last) and a LessFunc,
// and return indices into the slice:
//
//   - MinElement: single linear scan, n-1 comparisons
//   - MinElementBinary: the same result driven through a binary counter
//   - MinElement12: tournament, at most n-1 + ceil(log2 n)-1 comparisons
//   - MinElement12Practical: single pass tracking two candidates, up to 2n-3
//     comparisons but no auxiliary storage
//
// The first occurrence of the minimum always wins ties. A range that does not
// satisfy 0 <= first <= last <= len(s) returns ErrIndexOutOfRange. Ranges with
// fewer than two elements are valid: MinElement returns last for an empty
// range, and the pair functions return (first, first).
//
// # Tournament
//
// MinElement12 plays a knockout tournament using a counter.Counter whose slots
// hold players. Each game records the loser's index on the winner's defeated
// list, kept in a listpool.Pool, and releases the loser's own list: whatever the
// loser beat cannot be the runner-up. The runner-up lost exactly once, to the
// overall winner, so scanning the winner's list (at most ceil(log2 n) entries)
// finds it.
//
//	s := []int{3, 8, 0, 7, 9, 1, 2, 5}
//	min1, min2, err := minelem.MinElement12(s, 0, len(s), minelem.Less[int]())
//	// min1 == 2 (value 0), min2 == 5 (value 1)
//
// MinElement12Practical is the better default in production code; the
// tournament matters when comparisons are expensive.
//
// # Thread Safety
//
// Every call allocates its own counter and pool, so the functions may be
// called concurrently on slices that are not being modified.
package minelem
