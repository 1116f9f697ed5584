package minelem

import (
	"fmt"

	"github.com/joshuapare/minkit/counter"
	"github.com/joshuapare/minkit/internal/bounds"
	"github.com/joshuapare/minkit/listpool"
)

// poolCapacity is the initial number of defeated-list nodes reserved per
// tournament.
const poolCapacity = 256

// player is a tournament entrant: an index into the input and the list of
// indices it has beaten directly, most recent first.
type player struct {
	index    int
	defeated listpool.Handle
}

// tournament merges two players by playing a single game. The pool holding the
// defeated lists is owned by the caller and threaded through combine.
type tournament struct {
	pool *listpool.Pool[int]
	less func(i, j int) bool
	err  error
}

// Combine plays x (the earlier player) against y; x wins ties.
func (t *tournament) Combine(x, y player) player {
	winner, loser := x, y
	if t.less(y.index, x.index) {
		winner, loser = y, x
	}
	p, err := combine(t.pool, winner, loser)
	if err != nil && t.err == nil {
		t.err = err
	}
	return p
}

// combine releases the loser's defeated list, since nothing the loser beat can
// be runner-up to the winner, and records the loser on the winner's list.
func combine(pool *listpool.Pool[int], winner, loser player) (player, error) {
	if err := pool.FreeList(loser.defeated); err != nil {
		return winner, fmt.Errorf("release defeated list of %d: %w", loser.index, err)
	}
	return player{
		index:    winner.index,
		defeated: pool.Allocate(loser.index, winner.defeated),
	}, nil
}

// MinElement12 returns the indices of the first minimum and of the second
// smallest element of s[first:last] using a tournament. It performs at most
// n-1 + ceil(log2 n)-1 comparisons for n = last-first.
//
// Ranges with fewer than two elements return (first, first).
func MinElement12[T any](s []T, first, last int, less LessFunc[T]) (int, int, error) {
	if err := bounds.CheckRange(len(s), first, last); err != nil {
		return 0, 0, err
	}
	if last-first < 2 {
		return first, first, nil
	}

	lessIdx := byIndex(s, less)
	pool := listpool.WithCapacity[int](poolCapacity)
	t := &tournament{pool: pool, less: lessIdx}
	c := counter.WithCapacity[player](t, player{index: last, defeated: listpool.End}, counterCapacity)

	for i := first; i < last; i++ {
		c.Add(player{index: i, defeated: listpool.End})
	}
	winner := c.Reduce()
	if t.err != nil {
		return 0, 0, t.err
	}

	// The runner-up lost only to the winner, so it is on the winner's list.
	h, err := listpool.MinElement(pool, winner.defeated, lessIdx)
	if err != nil {
		return 0, 0, fmt.Errorf("scan defeated list: %w", err)
	}
	second, err := pool.Value(h)
	if err != nil {
		return 0, 0, fmt.Errorf("read runner-up: %w", err)
	}
	return winner.index, second, nil
}

// MinElement12Practical returns the same pair as MinElement12 with a single
// pass that tracks the two smallest elements seen so far. It needs no
// auxiliary storage and is usually faster despite doing up to 2n comparisons.
//
// Ranges with fewer than two elements return (first, first).
func MinElement12Practical[T any](s []T, first, last int, less LessFunc[T]) (int, int, error) {
	if err := bounds.CheckRange(len(s), first, last); err != nil {
		return 0, 0, err
	}
	if last-first < 2 {
		return first, first, nil
	}

	min1, min2 := first, first+1
	if less(s[first+1], s[first]) {
		min1, min2 = first+1, first
	}
	for i := first + 2; i < last; i++ {
		if less(s[i], s[min2]) {
			if less(s[i], s[min1]) {
				min1, min2 = i, min1
			} else {
				min2 = i
			}
		}
	}
	return min1, min2, nil
}
