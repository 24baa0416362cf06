// SPDX-License-Identifier: MIT
package search

import "github.com/katalvlaran/lvmaze/core"

// step is one frontier entry: a vertex and the vertex that discovered it.
type step struct {
	id     string
	parent string
}

// DFS runs depth-first search from start until end is popped.
//
// The frontier is a LIFO stack. Neighbors are pushed in reverse adjacency
// order so the first declared neighbor is explored first; vertices already
// visited are skipped when popped.
//
// Returns ErrGraphNil, ErrStartNotFound or ErrEndNotFound for invalid input,
// the context error on cancellation, or a wrapped OnVisit error.
func DFS(g *core.Graph, start, end string, opts ...Option) (*Result, error) {
	w, err := newWalker(g, start, end, opts)
	if err != nil {
		return nil, err
	}

	stack := []step{{id: start}}
	for len(stack) > 0 {
		if err = w.cancelled(); err != nil {
			return nil, err
		}

		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if w.visited[top.id] {
			continue
		}
		if err = w.visit(top.id, top.parent); err != nil {
			return nil, err
		}
		if top.id == end {
			return w.finish(), nil
		}

		nbs := w.adj[top.id]
		for i := len(nbs) - 1; i >= 0; i-- {
			if !w.visited[nbs[i]] {
				stack = append(stack, step{id: nbs[i], parent: top.id})
			}
		}
	}

	return w.res, nil
}
