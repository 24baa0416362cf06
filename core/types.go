// SPDX-License-Identifier: MIT
// Package core defines the central Graph, Vertex, Edge and Point types,
// sentinel errors and the NewGraph constructor.
//
// All Graph methods take an internal sync.RWMutex, so a graph may be read
// from several goroutines while no writer is active. The search algorithms
// built on top keep their own per-call state and never mutate the graph.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexExists   - AddVertex called twice with the same ID.
//	ErrVertexNotFound - an operation referenced a missing vertex.
//	ErrBadWeight      - a non-default cost on an unweighted graph.
//	ErrNegativeCost   - a negative edge cost.
package core

import (
	"errors"
	"strconv"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexExists indicates that a vertex with the same ID is already present.
	ErrVertexExists = errors.New("core: vertex already exists")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a cost other than DefaultCost on an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrNegativeCost indicates a negative edge cost.
	ErrNegativeCost = errors.New("core: negative edge cost")
)

// DefaultCost is the cost of every edge in an unweighted graph.
const DefaultCost int64 = 1

// Point is the coordinate payload attached to grid-derived vertices.
type Point struct {
	X, Y int
}

// XY returns the coordinates as float64, satisfying Locatable.
func (p Point) XY() (float64, float64) { return float64(p.X), float64(p.Y) }

// ID formats the canonical vertex identifier "x,y" for p.
func (p Point) ID() string {
	return strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y)
}

// Locatable is implemented by payloads that carry planar coordinates.
// Geometric heuristics read vertex positions through it.
type Locatable interface {
	XY() (x, y float64)
}

// Vertex is a node of the graph.
//
// Payload is arbitrary user data (the maze stores a Point). Outgoing edges are
// kept in insertion order, which is the order Neighbors reports them in.
type Vertex struct {
	// ID is the unique identifier of this Vertex.
	ID string

	// Payload stores arbitrary user data.
	Payload any

	edges []Edge
}

// Edge is a directed adjacency entry: the destination vertex and the cost of
// reaching it. Undirected graphs store one Edge in each endpoint's list.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Cost is the traversal cost (DefaultCost on unweighted graphs).
	Cost int64
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected makes edges one-way. Without it AddEdge mirrors every edge.
func WithDirected() GraphOption {
	return func(g *Graph) { g.directed = true }
}

// WithWeighted allows explicit edge costs. Without it only DefaultCost is accepted.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// Graph is the in-memory graph: a map from ID to Vertex, tagged by its
// directed and weighted flags.
//
// Invariant: in an undirected graph every edge u→v with cost c has a
// reciprocal edge v→u with the same cost.
type Graph struct {
	mu sync.RWMutex

	directed bool
	weighted bool

	vertices  map[string]*Vertex
	edgeCount int

	start, goal string
}

// NewGraph creates an empty Graph. By default it is undirected and unweighted.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{vertices: make(map[string]*Vertex)}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
