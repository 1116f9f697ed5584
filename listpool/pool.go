package listpool

import (
	"fmt"
	"iter"
)

// Handle identifies a node in a Pool. Handles are 1-based; End (0) terminates
// every list.
type Handle uint32

// End is the end-of-list sentinel.
const End Handle = 0

// IsEnd reports whether h is the end-of-list sentinel.
func (h Handle) IsEnd() bool { return h == End }

// IsEnd reports whether h is the end-of-list sentinel.
func IsEnd(h Handle) bool { return h == End }

type node[T any] struct {
	value T
	next  Handle
	free  bool
}

// Pool is an arena of singly-linked list nodes addressed by Handle.
//
// Freed nodes are threaded onto an intrusive free list through their next
// field and handed out again, most recently freed first, by Allocate. The
// backing array only grows when the free list is empty.
type Pool[T any] struct {
	nodes    []node[T]
	freeList Handle
	live     int
}

// New returns an empty pool.
func New[T any]() *Pool[T] {
	return &Pool[T]{freeList: End}
}

// WithCapacity returns an empty pool with room for n nodes.
func WithCapacity[T any](n int) *Pool[T] {
	if n < 0 {
		n = 0
	}
	return &Pool[T]{
		nodes:    make([]node[T], 0, n),
		freeList: End,
	}
}

// Reserve grows the backing array capacity to at least n nodes.
func (p *Pool[T]) Reserve(n int) {
	if cap(p.nodes) >= n {
		return
	}
	grown := make([]node[T], len(p.nodes), n)
	copy(grown, p.nodes)
	p.nodes = grown
}

// Len returns the number of nodes in the backing array, live or free.
func (p *Pool[T]) Len() int { return len(p.nodes) }

// Cap returns the capacity of the backing array.
func (p *Pool[T]) Cap() int { return cap(p.nodes) }

// Empty reports whether no node has ever been allocated.
func (p *Pool[T]) Empty() bool { return len(p.nodes) == 0 }

// Live returns the number of nodes currently allocated.
func (p *Pool[T]) Live() int { return p.live }

// node resolves h to a live node.
func (p *Pool[T]) node(h Handle) (*node[T], error) {
	if h == End || int(h) > len(p.nodes) {
		return nil, fmt.Errorf("%w: %d (pool size %d)", ErrInvalidHandle, h, len(p.nodes))
	}
	n := &p.nodes[h-1]
	if n.free {
		return nil, fmt.Errorf("%w: %d (freed)", ErrInvalidHandle, h)
	}
	return n, nil
}

func (p *Pool[T]) newNode() Handle {
	p.nodes = append(p.nodes, node[T]{})
	return Handle(len(p.nodes))
}

// Allocate returns a live node holding value and linked to next. next must be
// End or a live handle. The most recently freed node is reused when one is
// available.
func (p *Pool[T]) Allocate(value T, next Handle) Handle {
	h := p.freeList
	if h == End {
		h = p.newNode()
	} else {
		p.freeList = p.nodes[h-1].next
	}
	p.nodes[h-1] = node[T]{value: value, next: next}
	p.live++
	return h
}

// Free returns h to the free list and reports the handle that followed it, so
// a whole list can be released by looping until End.
func (p *Pool[T]) Free(h Handle) (Handle, error) {
	n, err := p.node(h)
	if err != nil {
		return End, err
	}
	next := n.next
	var zero T
	n.value = zero
	n.next = p.freeList
	n.free = true
	p.freeList = h
	p.live--
	return next, nil
}

// FreeRange releases the chain front..back (inclusive) in one splice and
// returns the handle that followed back. Freeing from End is a no-op that
// returns back.
func (p *Pool[T]) FreeRange(front, back Handle) (Handle, error) {
	if front == End {
		return back, nil
	}

	count := 0
	h := front
	for {
		n, err := p.node(h)
		if err != nil {
			if h == End {
				return End, fmt.Errorf("%w: front=%d back=%d", ErrBrokenChain, front, back)
			}
			return End, err
		}
		count++
		if h == back {
			break
		}
		if count > len(p.nodes) {
			return End, fmt.Errorf("%w: cycle from front=%d", ErrBrokenChain, front)
		}
		h = n.next
	}

	var zero T
	tail := &p.nodes[back-1]
	after := tail.next
	for h = front; h != back; {
		n := &p.nodes[h-1]
		n.value = zero
		n.free = true
		h = n.next
	}
	tail.value = zero
	tail.free = true
	tail.next = p.freeList
	p.freeList = front
	p.live -= count
	return after, nil
}

// FreeList releases every node of the list starting at head.
func (p *Pool[T]) FreeList(head Handle) error {
	var err error
	for head != End {
		if head, err = p.Free(head); err != nil {
			return err
		}
	}
	return nil
}

// Value returns the value stored at h.
func (p *Pool[T]) Value(h Handle) (T, error) {
	n, err := p.node(h)
	if err != nil {
		var zero T
		return zero, err
	}
	return n.value, nil
}

// SetValue replaces the value stored at h.
func (p *Pool[T]) SetValue(h Handle, value T) error {
	n, err := p.node(h)
	if err != nil {
		return err
	}
	n.value = value
	return nil
}

// Next returns the handle following h.
func (p *Pool[T]) Next(h Handle) (Handle, error) {
	n, err := p.node(h)
	if err != nil {
		return End, err
	}
	return n.next, nil
}

// SetNext relinks h to next.
func (p *Pool[T]) SetNext(h, next Handle) error {
	n, err := p.node(h)
	if err != nil {
		return err
	}
	n.next = next
	return nil
}

// PushFront prepends value to the list (front, back) and returns the new
// front and back.
func (p *Pool[T]) PushFront(front, back Handle, value T) (Handle, Handle) {
	h := p.Allocate(value, front)
	if front == End {
		return h, h
	}
	return h, back
}

// PushBack appends value to the list (front, back) and returns the new front
// and back.
func (p *Pool[T]) PushBack(front, back Handle, value T) (Handle, Handle, error) {
	h := p.Allocate(value, End)
	if front == End {
		return h, h, nil
	}
	if err := p.SetNext(back, h); err != nil {
		_, _ = p.Free(h)
		return front, back, err
	}
	return front, h, nil
}

// ListLen counts the nodes reachable from head.
func (p *Pool[T]) ListLen(head Handle) (int, error) {
	n := 0
	for head != End {
		nd, err := p.node(head)
		if err != nil {
			return n, err
		}
		n++
		head = nd.next
	}
	return n, nil
}

// Values iterates over the values of the list starting at head. Iteration
// stops early at an invalid handle.
func (p *Pool[T]) Values(head Handle) iter.Seq[T] {
	return func(yield func(T) bool) {
		for head != End {
			n, err := p.node(head)
			if err != nil || !yield(n.value) {
				return
			}
			head = n.next
		}
	}
}

// MinElement returns the handle of the smallest value in the list starting at
// head according to less, or End for an empty list. The earliest node wins
// ties.
func MinElement[T any](p *Pool[T], head Handle, less func(a, b T) bool) (Handle, error) {
	if head == End {
		return End, nil
	}
	cur, err := p.node(head)
	if err != nil {
		return End, err
	}
	best, bestNode := head, cur
	for h := cur.next; h != End; {
		n, err := p.node(h)
		if err != nil {
			return End, err
		}
		if less(n.value, bestNode.value) {
			best, bestNode = h, n
		}
		h = n.next
	}
	return best, nil
}
