// SPDX-License-Identifier: MIT
package search

import (
	"context"
	"errors"
)

// Sentinel errors for search execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("search: graph is nil")

	// ErrStartNotFound is returned when the start ID is absent.
	ErrStartNotFound = errors.New("search: start vertex not found")

	// ErrEndNotFound is returned when the end ID is empty or absent.
	ErrEndNotFound = errors.New("search: end vertex not found")

	// ErrNegativeCost is returned when Dijkstra meets an edge with cost < 0.
	ErrNegativeCost = errors.New("search: negative edge cost")

	// ErrNotImplemented is returned by algorithms that are declared but not provided.
	ErrNotImplemented = errors.New("search: algorithm not implemented")

	// ErrUnknownAlgorithm is returned by ParseAlgorithm for an unrecognized name.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")
)

// Kind tags the content of a Result.
type Kind int

const (
	// KindTrace means the frontier was exhausted without reaching the end.
	KindTrace Kind = iota
	// KindPath means Path holds a start→end route.
	KindPath
)

// String returns "path" or "trace".
func (k Kind) String() string {
	if k == KindPath {
		return "path"
	}

	return "trace"
}

// Result is the outcome of one search.
//
//   - Kind:    KindPath when end was reached, otherwise KindTrace.
//   - Path:    start→end inclusive when Kind == KindPath, else nil.
//   - Visited: vertices in the order they were finalized; always set.
//   - Cost:    sum of edge costs along Path, valid when HasCost.
type Result struct {
	Kind    Kind
	Path    []string
	Visited []string
	Cost    int64
	HasCost bool
}

// Found reports whether the end vertex was reached.
func (r *Result) Found() bool { return r != nil && r.Kind == KindPath }

// IDs returns Path when the end was reached and Visited otherwise.
func (r *Result) IDs() []string {
	if r == nil {
		return nil
	}
	if r.Kind == KindPath {
		return r.Path
	}

	return r.Visited
}

// Option configures a search via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks shared by every search.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per pop.
	Ctx context.Context

	// OnVisit is called when a vertex is finalized. A non-nil error aborts
	// the search and is returned wrapped.
	OnVisit func(id string) error

	// Heuristic orders the best-first frontier. Ignored by other searches.
	Heuristic Heuristic
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - a no-op OnVisit hook
//   - the Euclidean heuristic.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnVisit:   func(string) error { return nil },
		Heuristic: Euclidean,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback run when a vertex is finalized;
// returning an error from it stops the search.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithHeuristic sets the best-first ordering function.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}
