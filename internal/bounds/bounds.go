// Package bounds validates half-open index ranges before they are used to
// index a slice.
package bounds

import (
	"errors"
	"fmt"
)

// ErrOutOfRange indicates a [first, last) range that does not satisfy
// 0 <= first <= last <= length.
var ErrOutOfRange = errors.New("bounds: index out of range")

// CheckRange validates that [first, last) lies within a sequence of length n.
// The returned error wraps ErrOutOfRange and names the violated condition:
//
//	if err := bounds.CheckRange(len(s), first, last); err != nil {
//	    return 0, err
//	}
//	// Safe to index s[first:last]
func CheckRange(n, first, last int) error {
	switch {
	case n < 0:
		return fmt.Errorf("%w: negative length %d", ErrOutOfRange, n)
	case first < 0:
		return fmt.Errorf("%w: negative first %d", ErrOutOfRange, first)
	case first > last:
		return fmt.Errorf("%w: first=%d > last=%d", ErrOutOfRange, first, last)
	case last > n:
		return fmt.Errorf("%w: last=%d > len=%d", ErrOutOfRange, last, n)
	}
	return nil
}

// CeilLog2 returns ceil(log2(n)) for n >= 1, and 0 for n <= 1.
func CeilLog2(n int) int {
	if n <= 1 {
		return 0
	}
	k := 0
	for v := n - 1; v > 0; v >>= 1 {
		k++
	}
	return k
}

// Has reports whether the single index i is within [0, n).
func Has(n, i int) bool {
	return i >= 0 && i < n
}
