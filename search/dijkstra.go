// SPDX-License-Identifier: MIT
package search

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/core"
	"github.com/katalvlaran/lvmaze/pq"
)

// label is the tentative state of one vertex during Dijkstra.
type label struct {
	cost int64
	prev string
	// hasPrev is false for the start and for vertices not yet reached.
	hasPrev bool
}

// Dijkstra finds a cheapest start→end path using non-negative edge costs.
// Unweighted graphs behave as if every edge cost 1.
//
// Algorithm:
//  1. The start is labelled with cost 0 and enqueued.
//  2. Pop the cheapest entry; skip it if the vertex is already finalized.
//  3. Finalize it (Visited, OnVisit); stop once end is finalized.
//  4. Relax each outgoing edge: a first discovery is labelled and enqueued,
//     a cheaper route updates the label in place and re-enqueues.
//
// If end is unreachable the Result is KindTrace with every finalized vertex.
//
// Errors: those of DFS plus ErrNegativeCost.
// Complexity: O((V + E) log V) time, O(V + E) memory.
func Dijkstra(g *core.Graph, start, end string, opts ...Option) (*Result, error) {
	w, err := newWalker(g, start, end, opts)
	if err != nil {
		return nil, err
	}

	labels := make(map[string]*label, len(w.adj))
	labels[start] = &label{}
	frontier := pq.NewMin[string]()
	frontier.Enqueue(start, 0)

	for frontier.Len() > 0 {
		if err = w.cancelled(); err != nil {
			return nil, err
		}

		id, _ := frontier.Dequeue()
		if w.visited[id] {
			continue
		}
		cur := labels[id]
		parent := ""
		if cur.hasPrev {
			parent = cur.prev
		}
		if err = w.visit(id, parent); err != nil {
			return nil, err
		}
		if id == end {
			res := w.finish()
			res.Cost, res.HasCost = cur.cost, true

			return res, nil
		}

		costs := w.costs[id]
		for i, nbr := range w.adj[id] {
			c := costs[i]
			if c < 0 {
				return nil, fmt.Errorf("%w: %s→%s cost=%d", ErrNegativeCost, id, nbr, c)
			}
			if w.visited[nbr] {
				continue
			}
			candidate := cur.cost + c
			lb, seen := labels[nbr]
			switch {
			case !seen:
				labels[nbr] = &label{cost: candidate, prev: id, hasPrev: true}
				frontier.Enqueue(nbr, float64(candidate))
			case candidate < lb.cost:
				lb.cost, lb.prev, lb.hasPrev = candidate, id, true
				frontier.Enqueue(nbr, float64(candidate))
			}
		}
	}

	return w.res, nil
}
