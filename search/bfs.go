// SPDX-License-Identifier: MIT
package search

import "github.com/katalvlaran/lvmaze/core"

// BFS runs breadth-first search from start until end is dequeued.
//
// The frontier is a FIFO queue; a vertex may be enqueued more than once and
// is skipped on later dequeues. On unweighted graphs the returned Path has
// the fewest edges.
//
// Errors are the same as for DFS.
func BFS(g *core.Graph, start, end string, opts ...Option) (*Result, error) {
	w, err := newWalker(g, start, end, opts)
	if err != nil {
		return nil, err
	}

	queue := []step{{id: start}}
	for len(queue) > 0 {
		if err = w.cancelled(); err != nil {
			return nil, err
		}

		head := queue[0]
		queue = queue[1:]
		if w.visited[head.id] {
			continue
		}
		if err = w.visit(head.id, head.parent); err != nil {
			return nil, err
		}
		if head.id == end {
			return w.finish(), nil
		}

		for _, nbr := range w.adj[head.id] {
			if !w.visited[nbr] {
				queue = append(queue, step{id: nbr, parent: head.id})
			}
		}
	}

	return w.res, nil
}
