package minelem

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/minkit/listpool"
)

func TestCombineRecordsLoserAndReleasesItsList(t *testing.T) {
	pool := listpool.New[int]()
	loserList := pool.Allocate(7, pool.Allocate(8, listpool.End))
	winnerList := pool.Allocate(3, listpool.End)
	require.Equal(t, 3, pool.Live())

	got, err := combine(pool,
		player{index: 1, defeated: winnerList},
		player{index: 5, defeated: loserList})
	require.NoError(t, err)
	require.Equal(t, 1, got.index)
	require.Equal(t, []int{5, 3}, slices.Collect(pool.Values(got.defeated)))
	require.Equal(t, 2, pool.Live(), "two released, one allocated")
	require.Equal(t, 3, pool.Len(), "released nodes are reused")
}

func TestTournamentCombineKeepsEarlierOnTies(t *testing.T) {
	s := []int{4, 4, 1}
	tr := &tournament{pool: listpool.New[int](), less: byIndex(s, Less[int]())}

	got := tr.Combine(player{index: 0}, player{index: 1})
	require.Equal(t, 0, got.index)

	got = tr.Combine(got, player{index: 2})
	require.Equal(t, 2, got.index)
	require.Equal(t, []int{0}, slices.Collect(tr.pool.Values(got.defeated)))
	require.NoError(t, tr.err)
}

func TestTournamentCombineKeepsFirstError(t *testing.T) {
	s := []int{2, 1}
	tr := &tournament{pool: listpool.New[int](), less: byIndex(s, Less[int]())}

	// Player 0 loses and carries a handle the pool never issued.
	tr.Combine(player{index: 0, defeated: 42}, player{index: 1})
	require.ErrorIs(t, tr.err, listpool.ErrInvalidHandle)

	first := tr.err
	tr.Combine(player{index: 0, defeated: 43}, player{index: 1})
	require.Same(t, first, tr.err)
}
