// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin public facade: variant constructors and read-only flag getters.
// Policy:
//   - No algorithms here.
//   - Flags are immutable after construction.

package core

// NewUndirected returns an empty undirected, unweighted graph.
func NewUndirected() *Graph { return NewGraph() }

// NewDirected returns an empty directed, unweighted graph.
func NewDirected() *Graph { return NewGraph(WithDirected()) }

// NewWeightedUndirected returns an empty undirected graph with explicit edge costs.
func NewWeightedUndirected() *Graph { return NewGraph(WithWeighted()) }

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Weighted reports whether explicit edge costs are accepted.
// If false, AddEdge rejects any cost other than DefaultCost with ErrBadWeight.
func (g *Graph) Weighted() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.weighted
}

// GraphStats is a read-only snapshot of flags and sizes.
type GraphStats struct {
	Directed    bool
	Weighted    bool
	VertexCount int
	EdgeCount   int
	HasStart    bool
	HasGoal     bool
}

// Stats returns a snapshot of the graph's flags and sizes.
// Complexity: O(1).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return GraphStats{
		Directed:    g.directed,
		Weighted:    g.weighted,
		VertexCount: len(g.vertices),
		EdgeCount:   g.edgeCount,
		HasStart:    g.start != "",
		HasGoal:     g.goal != "",
	}
}
