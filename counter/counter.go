package counter

// Combiner merges two values of T. Implementations must be associative for
// the result of Reduce to be independent of how additions were grouped.
//
// Combine receives the older value as x and the newer value as y, so
// min-style combiners that keep x on ties report the first value added.
type Combiner[T any] interface {
	Combine(x, y T) T
}

// OpFunc adapts an ordinary function to the Combiner interface.
type OpFunc[T any] func(x, y T) T

// Combine calls f(x, y).
func (f OpFunc[T]) Combine(x, y T) T { return f(x, y) }

// Counter is a binary counter over an arbitrary associative operation.
//
// Slot i holds either the zero sentinel or the combination of exactly 2^i
// added values, mirroring the bit pattern of the number of additions.
type Counter[T comparable] struct {
	slots []T
	op    Combiner[T]
	zero  T
}

// New returns an empty counter using op to merge values and zero to mark
// empty slots.
func New[T comparable](op Combiner[T], zero T) *Counter[T] {
	return &Counter[T]{op: op, zero: zero}
}

// WithCapacity returns an empty counter with room for capacity slots, which
// covers 2^capacity additions without reallocating.
func WithCapacity[T comparable](op Combiner[T], zero T, capacity int) *Counter[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Counter[T]{
		slots: make([]T, 0, capacity),
		op:    op,
		zero:  zero,
	}
}

// Reserve grows slot capacity to at least n.
func (c *Counter[T]) Reserve(n int) {
	if cap(c.slots) >= n {
		return
	}
	grown := make([]T, len(c.slots), n)
	copy(grown, c.slots)
	c.slots = grown
}

// Zero returns the empty-slot sentinel.
func (c *Counter[T]) Zero() T { return c.zero }

// Len returns the number of slots currently in use, occupied or not.
func (c *Counter[T]) Len() int { return len(c.slots) }

// Cap returns the slot capacity.
func (c *Counter[T]) Cap() int { return cap(c.slots) }

// Slot returns the value held in slot i and whether it is occupied.
func (c *Counter[T]) Slot(i int) (T, bool) {
	if i < 0 || i >= len(c.slots) {
		return c.zero, false
	}
	v := c.slots[i]
	return v, v != c.zero
}

// Add inserts x, carrying through occupied slots exactly like a binary
// increment. Adding the zero sentinel is a no-op.
func (c *Counter[T]) Add(x T) {
	if x == c.zero {
		return
	}
	carry := c.addToCounter(x)
	if carry != c.zero {
		c.slots = append(c.slots, carry)
	}
}

// addToCounter propagates carry upward and returns the value left over once
// every existing slot was occupied, or zero if it came to rest.
func (c *Counter[T]) addToCounter(carry T) T {
	for i := range c.slots {
		if c.slots[i] == c.zero {
			c.slots[i] = carry
			return c.zero
		}
		carry = c.op.Combine(c.slots[i], carry)
		c.slots[i] = c.zero
	}
	return carry
}

// Reduce combines every occupied slot from the lowest to the highest and
// returns the result, or zero when nothing has been added. Slots are left
// untouched, so calling Reduce again yields the same value.
func (c *Counter[T]) Reduce() T {
	i := 0
	for i < len(c.slots) && c.slots[i] == c.zero {
		i++
	}
	if i == len(c.slots) {
		return c.zero
	}

	result := c.slots[i]
	for i++; i < len(c.slots); i++ {
		if c.slots[i] != c.zero {
			result = c.op.Combine(c.slots[i], result)
		}
	}
	return result
}

// Reset empties every slot while keeping the allocated capacity.
func (c *Counter[T]) Reset() {
	clear(c.slots)
	c.slots = c.slots[:0]
}
