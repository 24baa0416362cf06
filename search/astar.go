// SPDX-License-Identifier: MIT
package search

import "github.com/katalvlaran/lvmaze/core"

// AStar is reserved for heuristic-guided cheapest-path search. It validates
// its inputs like the other searches and then returns ErrNotImplemented.
func AStar(g *core.Graph, start, end string, opts ...Option) (*Result, error) {
	if _, err := newWalker(g, start, end, opts); err != nil {
		return nil, err
	}

	return nil, ErrNotImplemented
}
