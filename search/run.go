// SPDX-License-Identifier: MIT
package search

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvmaze/core"
)

// Algorithm selects a search for Run.
type Algorithm int

const (
	AlgoDFS Algorithm = iota
	AlgoBFS
	AlgoBestManhattan
	AlgoBestEuclidean
	AlgoDijkstra
	AlgoAStar
)

var algoNames = map[Algorithm]string{
	AlgoDFS:           "dfs",
	AlgoBFS:           "bfs",
	AlgoBestManhattan: "bestm",
	AlgoBestEuclidean: "beste",
	AlgoDijkstra:      "dijkstra",
	AlgoAStar:         "astar",
}

// aliases accepted by ParseAlgorithm in addition to the canonical names.
var algoAliases = map[string]Algorithm{
	"bfsm": AlgoBestManhattan,
	"bfse": AlgoBestEuclidean,
	"d":    AlgoDijkstra,
	"a*":   AlgoAStar,
}

// String returns the canonical short name.
func (a Algorithm) String() string {
	if s, ok := algoNames[a]; ok {
		return s
	}

	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// Algorithms lists every selectable algorithm in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgoDFS, AlgoBFS, AlgoBestManhattan, AlgoBestEuclidean, AlgoDijkstra, AlgoAStar}
}

// ParseAlgorithm maps a case-insensitive name to an Algorithm.
// Returns ErrUnknownAlgorithm for anything else.
func ParseAlgorithm(name string) (Algorithm, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for a, s := range algoNames {
		if s == n {
			return a, nil
		}
	}
	if a, ok := algoAliases[n]; ok {
		return a, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Run dispatches to the search selected by algo.
func Run(algo Algorithm, g *core.Graph, start, end string, opts ...Option) (*Result, error) {
	switch algo {
	case AlgoDFS:
		return DFS(g, start, end, opts...)
	case AlgoBFS:
		return BFS(g, start, end, opts...)
	case AlgoBestManhattan:
		return BestFirstManhattan(g, start, end, opts...)
	case AlgoBestEuclidean:
		return BestFirstEuclidean(g, start, end, opts...)
	case AlgoDijkstra:
		return Dijkstra(g, start, end, opts...)
	case AlgoAStar:
		return AStar(g, start, end, opts...)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, algo)
	}
}

// PathCost sums the cheapest edge cost between each consecutive pair of path.
// A path of zero or one vertex costs 0. Returns core.ErrVertexNotFound if a
// vertex is missing or two consecutive vertices are not adjacent.
func PathCost(g *core.Graph, path []string) (int64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	var total int64
	for i := 1; i < len(path); i++ {
		es, err := g.Edges(path[i-1])
		if err != nil {
			return 0, err
		}
		nbs := make([]string, len(es))
		costs := make([]int64, len(es))
		for k, e := range es {
			nbs[k], costs[k] = e.To, e.Cost
		}
		c, ok := cheapest(nbs, costs, path[i])
		if !ok {
			return 0, fmt.Errorf("%w: no edge %s→%s", core.ErrVertexNotFound, path[i-1], path[i])
		}
		total += c
	}
	if len(path) > 0 && !g.HasVertex(path[0]) {
		return 0, fmt.Errorf("%w: %q", core.ErrVertexNotFound, path[0])
	}

	return total, nil
}
