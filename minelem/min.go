package minelem

import (
	"github.com/joshuapare/minkit/counter"
	"github.com/joshuapare/minkit/internal/bounds"
)

// counterCapacity pre-sizes binary counters for inputs up to 2^16 elements
// before their slot array has to grow.
const counterCapacity = 16

// MinElement returns the index of the first minimum of s[first:last] under
// less, scanning once with last-first-1 comparisons. An empty range returns
// last.
func MinElement[T any](s []T, first, last int, less LessFunc[T]) (int, error) {
	if err := bounds.CheckRange(len(s), first, last); err != nil {
		return 0, err
	}
	if first == last {
		return last, nil
	}

	best := first
	for i := first + 1; i < last; i++ {
		if less(s[i], s[best]) {
			best = i
		}
	}
	return best, nil
}

// MinElementBinary returns the same index as MinElement, computed by feeding
// indices through a binary counter whose operation keeps the smaller element.
// It exists to exercise the counter; MinElement is the better choice for a
// plain minimum.
func MinElementBinary[T any](s []T, first, last int, less LessFunc[T]) (int, error) {
	if err := bounds.CheckRange(len(s), first, last); err != nil {
		return 0, err
	}
	if first == last {
		return last, nil
	}

	c := counter.WithCapacity[int](minOp(byIndex(s, less)), last, counterCapacity)
	for i := first; i < last; i++ {
		c.Add(i)
	}
	return c.Reduce(), nil
}

// minOp keeps x unless y is strictly smaller.
func minOp(less func(i, j int) bool) counter.OpFunc[int] {
	return func(x, y int) int {
		if less(y, x) {
			return y
		}
		return x
	}
}
