// SPDX-License-Identifier: MIT
package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/search"
)

func TestParseAlgorithm(t *testing.T) {
	cases := map[string]search.Algorithm{
		"dfs":      search.AlgoDFS,
		"BFS":      search.AlgoBFS,
		"bestm":    search.AlgoBestManhattan,
		"bfsm":     search.AlgoBestManhattan,
		"beste":    search.AlgoBestEuclidean,
		"bfse":     search.AlgoBestEuclidean,
		"dijkstra": search.AlgoDijkstra,
		" d ":      search.AlgoDijkstra,
		"astar":    search.AlgoAStar,
		"A*":       search.AlgoAStar,
	}
	for in, want := range cases {
		got, err := search.ParseAlgorithm(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := search.ParseAlgorithm("greedy")
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
}

func TestAlgorithm_StringRoundTrip(t *testing.T) {
	for _, a := range search.Algorithms() {
		got, err := search.ParseAlgorithm(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}
	assert.Equal(t, "Algorithm(42)", search.Algorithm(42).String())
}

func TestRun_Dispatch(t *testing.T) {
	g := tree(t)

	res, err := search.Run(search.AlgoBFS, g, "A", "E")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, res.Visited)

	res, err = search.Run(search.AlgoDFS, g, "A", "E")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C", "E"}, res.Visited)

	for _, a := range []search.Algorithm{search.AlgoBestManhattan, search.AlgoBestEuclidean, search.AlgoDijkstra} {
		res, err = search.Run(a, g, "A", "E")
		require.NoError(t, err, a.String())
		assert.Equal(t, []string{"A", "C", "E"}, res.Path, a.String())
	}

	_, err = search.Run(search.AlgoAStar, g, "A", "E")
	assert.ErrorIs(t, err, search.ErrNotImplemented)
	_, err = search.Run(search.Algorithm(99), g, "A", "E")
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
}
