// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - All methods take g.mu (write lock for mutation, read lock for queries).
package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts a new vertex carrying payload.
//
// Policy: IDs are unique. A second AddVertex with the same ID is rejected
// with ErrVertexExists instead of silently replacing the vertex (and its
// edges); use SetPayload to change the payload of an existing vertex.
//
// Errors:
//   - ErrEmptyVertexID: id == "".
//   - ErrVertexExists: id already present.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string, payload any) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.vertices[id]; exists {
		return fmt.Errorf("%w: %q", ErrVertexExists, id)
	}
	g.vertices[id] = &Vertex{ID: id, Payload: payload}

	return nil
}

// SetPayload replaces the payload of an existing vertex. Edges are untouched.
// Returns ErrVertexNotFound if id is missing.
func (g *Graph) SetPayload(id string, payload any) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	v, ok := g.vertices[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	v.Payload = payload

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// Payload returns the payload stored on vertex id.
// Returns ErrVertexNotFound if id is missing.
func (g *Graph) Payload(id string) (any, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return v.Payload, nil
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V·log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.mu.RUnlock()

	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}
