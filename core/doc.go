// Package core provides the graph model shared by every lvmaze algorithm.
//
// One Graph type covers the three variants used by the maze solver:
//
//	NewUndirected()          mirrored edges, cost 1
//	NewDirected()            one-way edges, cost 1
//	NewWeightedUndirected()  mirrored edges, explicit non-negative cost
//
// The variants differ only in the flags passed to NewGraph (WithDirected,
// WithWeighted); edge insertion consults them instead of relying on separate
// types.
//
// Core Methods:
//
//	// Vertices
//	AddVertex(id string, payload any) error   // O(1), duplicate → ErrVertexExists
//	SetPayload(id string, payload any) error  // O(1)
//	HasVertex(id string) bool                 // O(1)
//	Payload(id string) (any, error)           // O(1)
//	Vertices() []string                       // O(V·log V), sorted
//
//	// Edges
//	AddEdge(src, dst string, cost int64) error // O(1) amortized
//	HasEdge(src, dst string) bool              // O(deg(src))
//	Neighbors(id string) ([]string, error)     // insertion order
//	Edges(id string) ([]Edge, error)           // insertion order
//
//	// Snapshots
//	AdjacencyList() map[string][]string        // O(V+E)
//	AdjacencyCosts() map[string][]int64        // O(V+E), aligned with AdjacencyList
//
//	// Endpoints
//	SetStart(id) / SetGoal(id) error
//	Start() / Goal() (string, bool)
//
// Errors:
//
//	ErrEmptyVertexID  – zero-length vertex ID
//	ErrVertexExists   – duplicate vertex ID
//	ErrVertexNotFound – missing vertex
//	ErrBadWeight      – cost ≠ DefaultCost on an unweighted graph
//	ErrNegativeCost   – cost < 0
//
// Vertices and edges are never removed: graphs are built once (usually by
// maze.ToGraph) and then searched.
package core
