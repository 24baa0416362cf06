// File: methods_adjacent.go
// Role: Adjacency queries and whole-graph snapshots, plus start/goal endpoints.
//
// Determinism:
//   - Neighbors/Edges follow edge-insertion order.
//   - AdjacencyCosts()[id][i] is the cost of reaching AdjacencyList()[id][i].
package core

import "fmt"

// Neighbors returns the IDs adjacent to id in edge-insertion order.
// Duplicate entries appear if parallel edges were inserted.
// Returns ErrVertexNotFound if id is missing.
func (g *Graph) Neighbors(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	out := make([]string, len(v.edges))
	for i, e := range v.edges {
		out[i] = e.To
	}

	return out, nil
}

// Edges returns a copy of the outgoing edges of id in insertion order.
// Returns ErrVertexNotFound if id is missing.
func (g *Graph) Edges(id string) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	out := make([]Edge, len(v.edges))
	copy(out, v.edges)

	return out, nil
}

// AdjacencyList returns a snapshot mapping every vertex ID to its neighbor
// IDs in insertion order. Vertices without edges map to an empty slice.
// Complexity: O(V+E).
func (g *Graph) AdjacencyList() map[string][]string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string][]string, len(g.vertices))
	for id, v := range g.vertices {
		nbs := make([]string, len(v.edges))
		for i, e := range v.edges {
			nbs[i] = e.To
		}
		out[id] = nbs
	}

	return out
}

// AdjacencyCosts returns a snapshot mapping every vertex ID to the costs of
// its outgoing edges, index-aligned with AdjacencyList.
// Complexity: O(V+E).
func (g *Graph) AdjacencyCosts() map[string][]int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string][]int64, len(g.vertices))
	for id, v := range g.vertices {
		costs := make([]int64, len(v.edges))
		for i, e := range v.edges {
			costs[i] = e.Cost
		}
		out[id] = costs
	}

	return out
}

// SetStart designates id as the start vertex.
// Returns ErrVertexNotFound if id is missing.
func (g *Graph) SetStart(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[id]; !ok {
		return fmt.Errorf("%w: start %q", ErrVertexNotFound, id)
	}
	g.start = id

	return nil
}

// SetGoal designates id as the goal vertex.
// Returns ErrVertexNotFound if id is missing.
func (g *Graph) SetGoal(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[id]; !ok {
		return fmt.Errorf("%w: goal %q", ErrVertexNotFound, id)
	}
	g.goal = id

	return nil
}

// Start returns the designated start vertex, if any.
func (g *Graph) Start() (string, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.start, g.start != ""
}

// Goal returns the designated goal vertex, if any.
func (g *Graph) Goal() (string, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.goal, g.goal != ""
}
