// SPDX-License-Identifier: MIT
package search

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/lvmaze/core"
)

// Heuristic estimates the remaining distance from id to goal. Smaller is
// explored earlier by BestFirst.
type Heuristic func(g *core.Graph, id, goal string) float64

// Euclidean returns the straight-line distance between the payload
// coordinates of id and goal, or 0 if either lacks coordinates.
func Euclidean(g *core.Graph, id, goal string) float64 {
	a, b, ok := locate(g, id, goal)
	if !ok {
		return 0
	}

	return planar.Distance(a, b)
}

// Manhattan returns |dx| + |dy| between the payload coordinates of id and
// goal, or 0 if either lacks coordinates.
func Manhattan(g *core.Graph, id, goal string) float64 {
	a, b, ok := locate(g, id, goal)
	if !ok {
		return 0
	}

	return math.Abs(a.X()-b.X()) + math.Abs(a.Y()-b.Y())
}

// locate resolves the payloads of both vertices to planar points.
func locate(g *core.Graph, id, goal string) (orb.Point, orb.Point, bool) {
	a, ok := point(g, id)
	if !ok {
		return orb.Point{}, orb.Point{}, false
	}
	b, ok := point(g, goal)
	if !ok {
		return orb.Point{}, orb.Point{}, false
	}

	return a, b, true
}

func point(g *core.Graph, id string) (orb.Point, bool) {
	p, err := g.Payload(id)
	if err != nil {
		return orb.Point{}, false
	}
	loc, ok := p.(core.Locatable)
	if !ok {
		return orb.Point{}, false
	}
	x, y := loc.XY()

	return orb.Point{x, y}, true
}
