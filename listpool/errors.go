package listpool

import "errors"

var (
	// ErrInvalidHandle indicates a handle that is End, out of the allocated
	// range, or refers to a node that has been freed.
	ErrInvalidHandle = errors.New("listpool: invalid handle")

	// ErrBrokenChain indicates that walking from front never reached back.
	ErrBrokenChain = errors.New("listpool: back is not reachable from front")
)
