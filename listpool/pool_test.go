package listpool

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildList pushes values to the front of a new list, so the returned head
// holds the last value.
func buildList(p *Pool[int], values ...int) Handle {
	head := End
	for _, v := range values {
		head = p.Allocate(v, head)
	}
	return head
}

func Test_EndSentinel(t *testing.T) {
	require.True(t, End.IsEnd())
	require.True(t, IsEnd(End))
	require.False(t, Handle(1).IsEnd())
}

func Test_AllocateAndAccess(t *testing.T) {
	p := New[string]()
	require.True(t, p.Empty())

	b := p.Allocate("b", End)
	a := p.Allocate("a", b)
	require.Equal(t, Handle(1), b, "first handle is 1-based")
	require.Equal(t, Handle(2), a)
	require.False(t, p.Empty())
	require.Equal(t, 2, p.Len())
	require.Equal(t, 2, p.Live())

	v, err := p.Value(a)
	require.NoError(t, err)
	require.Equal(t, "a", v)

	next, err := p.Next(a)
	require.NoError(t, err)
	require.Equal(t, b, next)

	require.NoError(t, p.SetValue(b, "B"))
	require.NoError(t, p.SetNext(b, End))
	require.Equal(t, []string{"a", "B"}, slices.Collect(p.Values(a)))
}

// Test_RoundTripReusesHandles allocates k nodes, frees them all, then allocates
// k more: every handle must be reused and the pool must not grow.
func Test_RoundTripReusesHandles(t *testing.T) {
	const k = 64
	p := WithCapacity[int](16)

	first := make([]Handle, 0, k)
	for i := 0; i < k; i++ {
		first = append(first, p.Allocate(i, End))
	}
	size := p.Len()
	require.Equal(t, k, size)

	for _, h := range first {
		next, err := p.Free(h)
		require.NoError(t, err)
		require.Equal(t, End, next)
	}
	require.Equal(t, 0, p.Live())

	second := make([]Handle, 0, k)
	for i := 0; i < k; i++ {
		second = append(second, p.Allocate(i+k, End))
	}
	require.Equal(t, size, p.Len(), "pool must not grow when reusing freed nodes")
	require.Equal(t, k, p.Live())

	slices.Sort(first)
	slices.Sort(second)
	require.Equal(t, first, second)
}

func Test_FreeReusesMostRecentFirst(t *testing.T) {
	p := New[int]()
	h1 := p.Allocate(1, End)
	h2 := p.Allocate(2, End)
	h3 := p.Allocate(3, End)

	_, err := p.Free(h1)
	require.NoError(t, err)
	_, err = p.Free(h3)
	require.NoError(t, err)

	require.Equal(t, h3, p.Allocate(30, End))
	require.Equal(t, h1, p.Allocate(10, End))
	require.Equal(t, Handle(4), p.Allocate(40, End))

	v, err := p.Value(h2)
	require.NoError(t, err)
	require.Equal(t, 2, v)
}

func Test_FreeReturnsSuccessor(t *testing.T) {
	p := New[int]()
	head := buildList(p, 3, 2, 1)

	var visited []int
	h := head
	for h != End {
		v, err := p.Value(h)
		require.NoError(t, err)
		visited = append(visited, v)
		h, err = p.Free(h)
		require.NoError(t, err)
	}
	require.Equal(t, []int{1, 2, 3}, visited)
	require.Equal(t, 0, p.Live())
}

func Test_InvalidHandles(t *testing.T) {
	p := New[int]()
	h := p.Allocate(7, End)

	tests := []struct {
		name string
		h    Handle
	}{
		{name: "end", h: End},
		{name: "past pool", h: Handle(5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Value(tt.h)
			require.ErrorIs(t, err, ErrInvalidHandle)
			_, err = p.Next(tt.h)
			require.ErrorIs(t, err, ErrInvalidHandle)
			require.ErrorIs(t, p.SetValue(tt.h, 1), ErrInvalidHandle)
			require.ErrorIs(t, p.SetNext(tt.h, End), ErrInvalidHandle)
			_, err = p.Free(tt.h)
			require.ErrorIs(t, err, ErrInvalidHandle)
		})
	}

	t.Run("freed", func(t *testing.T) {
		_, err := p.Free(h)
		require.NoError(t, err)

		_, err = p.Value(h)
		require.ErrorIs(t, err, ErrInvalidHandle)
		_, err = p.Free(h)
		require.ErrorIs(t, err, ErrInvalidHandle, "double free must be rejected")
		require.Equal(t, 0, p.Live())
	})
}

func Test_FreeList(t *testing.T) {
	p := New[int]()
	keep := buildList(p, 100)
	head := buildList(p, 1, 2, 3, 4)
	require.Equal(t, 5, p.Live())

	require.NoError(t, p.FreeList(head))
	require.Equal(t, 1, p.Live())
	require.NoError(t, p.FreeList(End))

	v, err := p.Value(keep)
	require.NoError(t, err)
	require.Equal(t, 100, v)
}

func Test_FreeRange(t *testing.T) {
	p := New[int]()
	var front, back Handle
	for v := 1; v <= 5; v++ {
		var err error
		front, back, err = p.PushBack(front, back, v)
		require.NoError(t, err)
	}
	require.Equal(t, []int{1, 2, 3, 4, 5}, slices.Collect(p.Values(front)))

	// Release 1..3, leaving 4 -> 5.
	third := front
	for i := 0; i < 2; i++ {
		var err error
		third, err = p.Next(third)
		require.NoError(t, err)
	}
	after, err := p.FreeRange(front, third)
	require.NoError(t, err)
	require.Equal(t, []int{4, 5}, slices.Collect(p.Values(after)))
	require.Equal(t, 2, p.Live())

	size := p.Len()
	for i := 0; i < 3; i++ {
		p.Allocate(i, End)
	}
	require.Equal(t, size, p.Len(), "spliced nodes must be reused")

	got, err := p.FreeRange(End, back)
	require.NoError(t, err)
	require.Equal(t, back, got)
}

func Test_FreeRangeBrokenChain(t *testing.T) {
	p := New[int]()
	a := buildList(p, 1, 2)
	other := p.Allocate(9, End)

	_, err := p.FreeRange(a, other)
	require.ErrorIs(t, err, ErrBrokenChain)
	require.Equal(t, 3, p.Live(), "failed splice must not free anything")

	require.NoError(t, p.SetNext(other, other))
	_, err = p.FreeRange(other, a)
	require.ErrorIs(t, err, ErrBrokenChain)
}

func Test_PushFrontAndBack(t *testing.T) {
	p := New[int]()
	front, back := p.PushFront(End, End, 2)
	require.Equal(t, front, back)

	front, back = p.PushFront(front, back, 1)
	front, back, err := p.PushBack(front, back, 3)
	require.NoError(t, err)

	require.Equal(t, []int{1, 2, 3}, slices.Collect(p.Values(front)))
	v, err := p.Value(back)
	require.NoError(t, err)
	require.Equal(t, 3, v)

	n, err := p.ListLen(front)
	require.NoError(t, err)
	require.Equal(t, 3, n)
}

func Test_PushBackInvalidBack(t *testing.T) {
	p := New[int]()
	front := p.Allocate(1, End)
	live := p.Live()

	_, _, err := p.PushBack(front, Handle(42), 2)
	require.ErrorIs(t, err, ErrInvalidHandle)
	require.Equal(t, live, p.Live())
}

func Test_ValuesStopsOnInvalidHandle(t *testing.T) {
	p := New[int]()
	tail := p.Allocate(2, End)
	head := p.Allocate(1, tail)
	_, err := p.Free(tail)
	require.NoError(t, err)

	assert.Equal(t, []int{1}, slices.Collect(p.Values(head)))
	_, err = p.ListLen(head)
	require.ErrorIs(t, err, ErrInvalidHandle)
}

func Test_MinElement(t *testing.T) {
	less := func(a, b int) bool { return a < b }
	p := New[int]()

	h, err := MinElement(p, End, less)
	require.NoError(t, err)
	require.Equal(t, End, h)

	head := buildList(p, 5, 1, 7, 1, 9)
	h, err = MinElement(p, head, less)
	require.NoError(t, err)
	v, err := p.Value(h)
	require.NoError(t, err)
	require.Equal(t, 1, v)
	require.Equal(t, Handle(4), h, "first node in list order wins ties")

	h, err = MinElement(p, head, func(a, b int) bool { return a > b })
	require.NoError(t, err)
	v, err = p.Value(h)
	require.NoError(t, err)
	require.Equal(t, 9, v)
}

func Test_MinElementCountsComparisons(t *testing.T) {
	p := New[int]()
	head := buildList(p, 4, 3, 2, 1)
	calls := 0
	_, err := MinElement(p, head, func(a, b int) bool {
		calls++
		return a < b
	})
	require.NoError(t, err)
	require.Equal(t, 3, calls)
}

func Test_Reserve(t *testing.T) {
	p := New[int]()
	p.Allocate(1, End)
	p.Reserve(256)
	require.GreaterOrEqual(t, p.Cap(), 256)
	require.Equal(t, 1, p.Len())

	v, err := p.Value(1)
	require.NoError(t, err)
	require.Equal(t, 1, v)
}
