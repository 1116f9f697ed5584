// Package listpool provides an arena of singly-linked list nodes addressed by
// integer handles, with O(1) allocation and deallocation through an intrusive
// free list.
//
// # Handles
//
// A Handle is a 1-based index into the pool's backing array. End (0) is the
// end-of-list sentinel, so a list is just the Handle of its first node and an
// empty list is End. Handles are plain values: they stay meaningful only while
// the pool is alive and the node has not been freed.
//
// Every accessor checks its handle. Dereferencing End, an index past the
// backing array, or a freed node returns an error wrapping ErrInvalidHandle:
//
//	v, err := pool.Value(h)
//	if errors.Is(err, listpool.ErrInvalidHandle) {
//	    // stale handle
//	}
//
// # Free List
//
// Free pushes a node onto the free list (threaded through the node's next
// field) and returns the node's former successor, so a list is released with:
//
//	for h != listpool.End {
//	    h, err = pool.Free(h)
//	}
//
// or simply FreeList(h). FreeRange splices a whole front..back chain onto the
// free list at once. Allocate pops the most recently freed node before growing
// the backing array, so allocation churn never grows the pool beyond its peak
// number of live nodes.
//
// # Thread Safety
//
// Pool instances are not thread-safe. Callers must synchronize access
// externally.
package listpool
