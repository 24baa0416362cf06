// SPDX-License-Identifier: MIT
package search_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/builder"
	"github.com/katalvlaran/lvmaze/core"
	"github.com/katalvlaran/lvmaze/search"
)

type searchFn func(g *core.Graph, start, end string, opts ...search.Option) (*search.Result, error)

var frontierSearches = map[string]searchFn{
	"DFS":       search.DFS,
	"BFS":       search.BFS,
	"BestM":     search.BestFirstManhattan,
	"BestE":     search.BestFirstEuclidean,
	"Dijkstra":  search.Dijkstra,
	"BestFirst": search.BestFirst,
}

// tree builds A–B, A–C, B–D, C–E plus an isolated Z.
func tree(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewUndirected()
	for _, id := range []string{"A", "B", "C", "D", "E", "Z"} {
		require.NoError(t, g.AddVertex(id, nil))
	}
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "E"}} {
		require.NoError(t, g.AddEdge(e[0], e[1], core.DefaultCost))
	}
	return g
}

func TestDFS_Order(t *testing.T) {
	res, err := search.DFS(tree(t), "A", "E")
	require.NoError(t, err)
	assert.Equal(t, search.KindPath, res.Kind)
	assert.Equal(t, []string{"A", "B", "D", "C", "E"}, res.Visited)
	assert.Equal(t, []string{"A", "C", "E"}, res.Path)
	assert.True(t, res.HasCost)
	assert.Equal(t, int64(2), res.Cost)
}

func TestBFS_Order(t *testing.T) {
	res, err := search.BFS(tree(t), "A", "E")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, res.Visited)
	assert.Equal(t, []string{"A", "C", "E"}, res.IDs())
}

func TestUnreachable_ReturnsTrace(t *testing.T) {
	for name, fn := range frontierSearches {
		fn := fn
		t.Run(name, func(t *testing.T) {
			res, err := fn(tree(t), "A", "Z")
			require.NoError(t, err)
			assert.Equal(t, search.KindTrace, res.Kind)
			assert.False(t, res.Found())
			assert.Nil(t, res.Path)
			assert.ElementsMatch(t, []string{"A", "B", "C", "D", "E"}, res.Visited)
			assert.Equal(t, res.Visited, res.IDs())
			assert.Equal(t, "A", res.Visited[0])
		})
	}
}

func TestStartEqualsEnd(t *testing.T) {
	for name, fn := range frontierSearches {
		fn := fn
		t.Run(name, func(t *testing.T) {
			res, err := fn(tree(t), "C", "C")
			require.NoError(t, err)
			assert.True(t, res.Found())
			assert.Equal(t, []string{"C"}, res.Path)
			assert.Equal(t, []string{"C"}, res.Visited)
			assert.Zero(t, res.Cost)
		})
	}
}

func TestInputErrors(t *testing.T) {
	g := tree(t)
	all := map[string]searchFn{"AStar": search.AStar}
	for k, v := range frontierSearches {
		all[k] = v
	}
	for name, fn := range all {
		fn := fn
		t.Run(name, func(t *testing.T) {
			_, err := fn(nil, "A", "B")
			assert.ErrorIs(t, err, search.ErrGraphNil)
			_, err = fn(g, "nope", "B")
			assert.ErrorIs(t, err, search.ErrStartNotFound)
			_, err = fn(g, "A", "nope")
			assert.ErrorIs(t, err, search.ErrEndNotFound)
			_, err = fn(g, "A", "")
			assert.ErrorIs(t, err, search.ErrEndNotFound)
		})
	}
}

func TestAStar_NotImplemented(t *testing.T) {
	res, err := search.AStar(tree(t), "A", "E")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, search.ErrNotImplemented)
}

func TestContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for name, fn := range frontierSearches {
		fn := fn
		t.Run(name, func(t *testing.T) {
			_, err := fn(tree(t), "A", "E", search.WithContext(ctx))
			assert.ErrorIs(t, err, context.Canceled)
		})
	}
}

func TestOnVisit_Abort(t *testing.T) {
	stop := errors.New("stop")
	var seen []string
	_, err := search.DFS(tree(t), "A", "E", search.WithOnVisit(func(id string) error {
		seen = append(seen, id)
		if id == "C" {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []string{"A", "B", "D", "C"}, seen)
}

func TestRepeatedSearches_Independent(t *testing.T) {
	g := tree(t)
	for name, fn := range frontierSearches {
		fn := fn
		t.Run(name, func(t *testing.T) {
			first, err := fn(g, "A", "E")
			require.NoError(t, err)
			second, err := fn(g, "A", "E")
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}

func TestBestFirst_OpenGridIsMonotone(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(5, 5))
	require.NoError(t, err)

	for _, fn := range []searchFn{search.BestFirstManhattan, search.BestFirstEuclidean} {
		res, err := fn(g, "0,0", "4,4")
		require.NoError(t, err)
		require.True(t, res.Found())
		assert.Len(t, res.Path, 9)
		assert.Len(t, res.Visited, 9)
		assert.Equal(t, int64(8), res.Cost)
	}
}

func TestBestFirst_CustomHeuristic(t *testing.T) {
	// A heuristic that prefers "B" sends the search down the wrong branch first.
	h := func(_ *core.Graph, id, _ string) float64 {
		if id == "B" || id == "D" {
			return 0
		}
		return 1
	}
	res, err := search.BestFirst(tree(t), "A", "E", search.WithHeuristic(h))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C", "E"}, res.Visited)
	assert.Equal(t, []string{"A", "C", "E"}, res.Path)
}

func TestHeuristics(t *testing.T) {
	g := core.NewUndirected()
	require.NoError(t, g.AddVertex("a", core.Point{X: 0, Y: 0}))
	require.NoError(t, g.AddVertex("b", core.Point{X: 3, Y: 4}))
	require.NoError(t, g.AddVertex("bare", "no coordinates"))

	assert.InDelta(t, 5.0, search.Euclidean(g, "a", "b"), 1e-12)
	assert.InDelta(t, 7.0, search.Manhattan(g, "a", "b"), 1e-12)
	assert.Zero(t, search.Euclidean(g, "a", "bare"))
	assert.Zero(t, search.Manhattan(g, "bare", "b"))
	assert.Zero(t, search.Manhattan(g, "missing", "b"))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "path", search.KindPath.String())
	assert.Equal(t, "trace", search.KindTrace.String())
	var nilRes *search.Result
	assert.False(t, nilRes.Found())
	assert.Nil(t, nilRes.IDs())
}
