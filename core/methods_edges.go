// File: methods_edges.go
// Role: Edge insertion & queries: AddEdge/HasEdge/EdgeCount.
// Determinism:
//   - Per-vertex edge lists keep insertion order.
package core

import "fmt"

// AddEdge connects src to dst with the given cost.
//
// Behavior by variant:
//   - directed: appends src→dst only.
//   - undirected: appends src→dst and dst→src with the same cost
//     (a self-loop is stored once).
//   - unweighted graphs accept only DefaultCost.
//
// Parallel edges are not merged; callers that must avoid them check HasEdge
// first (maze.ToGraph does).
//
// Errors:
//   - ErrVertexNotFound: src or dst missing.
//   - ErrNegativeCost: cost < 0.
//   - ErrBadWeight: cost != DefaultCost on an unweighted graph.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(src, dst string, cost int64) error {
	if cost < 0 {
		return fmt.Errorf("%w: %s→%s cost=%d", ErrNegativeCost, src, dst, cost)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.weighted && cost != DefaultCost {
		return fmt.Errorf("%w: %s→%s cost=%d", ErrBadWeight, src, dst, cost)
	}
	from, ok := g.vertices[src]
	if !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, src)
	}
	to, ok := g.vertices[dst]
	if !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, dst)
	}

	from.edges = append(from.edges, Edge{From: src, To: dst, Cost: cost})
	if !g.directed && src != dst {
		to.edges = append(to.edges, Edge{From: dst, To: src, Cost: cost})
	}
	g.edgeCount++

	return nil
}

// HasEdge reports whether an edge src→dst exists. For undirected graphs the
// mirrored entry makes HasEdge symmetric.
// Complexity: O(deg(src)).
func (g *Graph) HasEdge(src, dst string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.vertices[src]
	if !ok {
		return false
	}
	for _, e := range v.edges {
		if e.To == dst {
			return true
		}
	}

	return false
}

// EdgeCount returns the number of AddEdge calls that succeeded. An
// undirected edge counts once even though it is stored in both lists.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
