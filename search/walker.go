// SPDX-License-Identifier: MIT
package search

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvmaze/core"
)

// walker carries the per-call state shared by the frontier searches.
type walker struct {
	graph   *core.Graph
	opts    Options
	ctx     context.Context
	start   string
	end     string
	adj     map[string][]string
	costs   map[string][]int64
	visited map[string]bool
	prev    map[string]string
	res     *Result
}

// newWalker validates inputs, applies options and snapshots adjacency.
func newWalker(g *core.Graph, start, end string, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}
	if !g.HasVertex(end) {
		return nil, fmt.Errorf("%w: %q", ErrEndNotFound, end)
	}

	adj := g.AdjacencyList()
	n := len(adj)

	return &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		start:   start,
		end:     end,
		adj:     adj,
		costs:   g.AdjacencyCosts(),
		visited: make(map[string]bool, n),
		prev:    make(map[string]string, n),
		res:     &Result{Kind: KindTrace, Visited: make([]string, 0, n)},
	}, nil
}

// cancelled returns the context error if the search must stop.
func (w *walker) cancelled() error {
	select {
	case <-w.ctx.Done():
		return w.ctx.Err()
	default:
		return nil
	}
}

// visit finalizes id: records its predecessor, appends it to the trace and
// runs OnVisit.
func (w *walker) visit(id, parent string) error {
	w.visited[id] = true
	if parent != "" {
		w.prev[id] = parent
	}
	w.res.Visited = append(w.res.Visited, id)
	if err := w.opts.OnVisit(id); err != nil {
		return fmt.Errorf("search: OnVisit error at %q: %w", id, err)
	}

	return nil
}

// finish turns the walker state into a path result ending at w.end.
func (w *walker) finish() *Result {
	path := []string{w.end}
	for cur := w.end; cur != w.start; {
		p, ok := w.prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	reverse(path)

	w.res.Kind = KindPath
	w.res.Path = path
	w.res.Cost, w.res.HasCost = w.pathCost(path)

	return w.res
}

// pathCost sums the cheapest edge between consecutive path vertices.
func (w *walker) pathCost(path []string) (int64, bool) {
	var total int64
	for i := 1; i < len(path); i++ {
		c, ok := cheapest(w.adj[path[i-1]], w.costs[path[i-1]], path[i])
		if !ok {
			return 0, false
		}
		total += c
	}

	return total, true
}

// cheapest returns the lowest cost among the entries of nbs equal to dst.
func cheapest(nbs []string, costs []int64, dst string) (int64, bool) {
	var (
		best  int64
		found bool
	)
	for i, v := range nbs {
		if v == dst && (!found || costs[i] < best) {
			best, found = costs[i], true
		}
	}

	return best, found
}

func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
