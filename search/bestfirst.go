// SPDX-License-Identifier: MIT
package search

import (
	"github.com/katalvlaran/lvmaze/core"
	"github.com/katalvlaran/lvmaze/pq"
)

// BestFirst runs greedy best-first search from start until end is popped.
//
// The frontier is a min-heap keyed by Options.Heuristic(g, candidate, end),
// evaluated once when the candidate is enqueued. Path costs are ignored, so
// the result is not guaranteed to be the cheapest route.
//
// Errors are the same as for DFS.
func BestFirst(g *core.Graph, start, end string, opts ...Option) (*Result, error) {
	w, err := newWalker(g, start, end, opts)
	if err != nil {
		return nil, err
	}
	h := w.opts.Heuristic

	frontier := pq.NewMin[step]()
	frontier.Enqueue(step{id: start}, h(g, start, end))
	for frontier.Len() > 0 {
		if err = w.cancelled(); err != nil {
			return nil, err
		}

		cur, _ := frontier.Dequeue()
		if w.visited[cur.id] {
			continue
		}
		if err = w.visit(cur.id, cur.parent); err != nil {
			return nil, err
		}
		if cur.id == end {
			return w.finish(), nil
		}

		for _, nbr := range w.adj[cur.id] {
			if !w.visited[nbr] {
				frontier.Enqueue(step{id: nbr, parent: cur.id}, h(g, nbr, end))
			}
		}
	}

	return w.res, nil
}

// BestFirstManhattan is BestFirst with the Manhattan heuristic.
func BestFirstManhattan(g *core.Graph, start, end string, opts ...Option) (*Result, error) {
	return BestFirst(g, start, end, append(opts, WithHeuristic(Manhattan))...)
}

// BestFirstEuclidean is BestFirst with the Euclidean heuristic.
func BestFirstEuclidean(g *core.Graph, start, end string, opts ...Option) (*Result, error) {
	return BestFirst(g, start, end, append(opts, WithHeuristic(Euclidean))...)
}
