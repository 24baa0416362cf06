// SPDX-License-Identifier: MIT
// Package: lvmaze/builder
//
// impl_grid.go: implementation of Grid(width, height) constructor.
//
// Contract:
//   • width, height ≥ 1 (else ErrTooFewVertices).
//   • Vertex IDs are core.Point{X,Y}.ID() ("x,y"), payload is the Point, so
//     coordinate heuristics work on the result. cfg.idFn is not used.
//   • Vertices are added row-major; for each cell the right edge is emitted
//     before the down edge.
//   • On directed graphs both directions are emitted with the same cost.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor for a width×height 4-neighborhood lattice.
func Grid(width, height int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if width < minGridDim || height < minGridDim {
			return fmt.Errorf("%s: width=%d, height=%d (each must be ≥ %d): %w",
				methodGrid, width, height, minGridDim, ErrTooFewVertices)
		}

		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				p := core.Point{X: x, Y: y}
				if err := g.AddVertex(p.ID(), p); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", methodGrid, p.ID(), err)
				}
			}
		}

		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				u := core.Point{X: x, Y: y}.ID()
				if x+1 < width {
					if err := link(g, cfg, u, core.Point{X: x + 1, Y: y}.ID()); err != nil {
						return err
					}
				}
				if y+1 < height {
					if err := link(g, cfg, u, core.Point{X: x, Y: y + 1}.ID()); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// link adds u–v, mirroring it explicitly on directed graphs.
func link(g *core.Graph, cfg builderConfig, u, v string) error {
	w := edgeCost(g, cfg)
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", methodGrid, u, v, w, err)
	}
	if g.Directed() {
		if err := g.AddEdge(v, u, w); err != nil {
			return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", methodGrid, v, u, w, err)
		}
	}

	return nil
}
