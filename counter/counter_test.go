package counter

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sumOp() OpFunc[int] {
	return func(x, y int) int { return x + y }
}

// Test_SlotPatternMatchesBinaryCount verifies that after k additions of 1,
// slot i is occupied exactly when bit i of k is set, and holds 2^i.
func Test_SlotPatternMatchesBinaryCount(t *testing.T) {
	c := New(sumOp(), 0)

	for k := 1; k <= 100; k++ {
		c.Add(1)
		require.Equal(t, bits.Len(uint(k)), c.Len(), "slot count after %d adds", k)

		for i := 0; i < c.Len(); i++ {
			v, ok := c.Slot(i)
			if k&(1<<i) != 0 {
				require.True(t, ok, "slot %d should be occupied after %d adds", i, k)
				require.Equal(t, 1<<i, v, "slot %d should hold 2^%d after %d adds", i, i, k)
			} else {
				require.False(t, ok, "slot %d should be empty after %d adds", i, k)
			}
		}
		require.Equal(t, k, c.Reduce())
	}
}

func Test_ReduceEmpty(t *testing.T) {
	c := New(sumOp(), -1)
	require.Equal(t, -1, c.Reduce())

	c = WithCapacity(sumOp(), -1, 4)
	require.Equal(t, -1, c.Reduce())
	require.Equal(t, 0, c.Len())
	require.GreaterOrEqual(t, c.Cap(), 4)
}

func Test_ReduceIdempotent(t *testing.T) {
	c := New(sumOp(), 0)
	for v := 1; v <= 13; v++ {
		c.Add(v)
	}

	first := c.Reduce()
	second := c.Reduce()
	require.Equal(t, 91, first)
	assert.Equal(t, first, second)
}

// Test_CombineArgumentOrder verifies the older value is always the left operand,
// both while carrying and while reducing.
func Test_CombineArgumentOrder(t *testing.T) {
	concat := OpFunc[string](func(x, y string) string { return x + y })

	for n := 1; n <= 17; n++ {
		c := New(concat, "")
		want := ""
		for i := 0; i < n; i++ {
			s := string(rune('a' + i))
			c.Add(s)
			want += s
		}
		require.Equal(t, want, c.Reduce(), "n=%d", n)
	}
}

func Test_CombineCallCount(t *testing.T) {
	for n := 1; n <= 64; n++ {
		calls := 0
		c := New(OpFunc[int](func(x, y int) int {
			calls++
			return x + y
		}), 0)
		for i := 0; i < n; i++ {
			c.Add(1)
		}
		c.Reduce()
		require.Equal(t, n-1, calls, "n=%d", n)
	}
}

func Test_AddZeroIsNoop(t *testing.T) {
	c := New(sumOp(), 0)
	c.Add(5)
	c.Add(0)
	c.Add(0)

	require.Equal(t, 1, c.Len())
	require.Equal(t, 5, c.Reduce())
}

func Test_ResetAndReserve(t *testing.T) {
	c := WithCapacity(sumOp(), 0, 2)
	for i := 0; i < 10; i++ {
		c.Add(i + 1)
	}
	require.Equal(t, 55, c.Reduce())

	c.Reset()
	require.Equal(t, 0, c.Len())
	require.Equal(t, 0, c.Reduce())

	c.Reserve(32)
	require.GreaterOrEqual(t, c.Cap(), 32)

	c.Add(7)
	c.Add(8)
	require.Equal(t, 15, c.Reduce())
}

func Test_SlotOutOfRange(t *testing.T) {
	c := New(sumOp(), 0)
	v, ok := c.Slot(3)
	require.False(t, ok)
	require.Equal(t, c.Zero(), v)

	_, ok = c.Slot(-1)
	require.False(t, ok)
}

// minIndex keeps the index of the smaller value, preferring x on ties.
type minIndex struct {
	values []int
}

func (m minIndex) Combine(x, y int) int {
	if m.values[y] < m.values[x] {
		return y
	}
	return x
}

func Test_StatefulCombinerFirstWinsTies(t *testing.T) {
	values := []int{4, 2, 9, 2, 7, 2, 8}
	c := WithCapacity[int](minIndex{values: values}, len(values), 16)
	for i := range values {
		c.Add(i)
	}
	require.Equal(t, 1, c.Reduce())
}

func BenchmarkAdd(b *testing.B) {
	c := WithCapacity(sumOp(), 0, 64)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		c.Add(1)
	}
	_ = c.Reduce()
}
