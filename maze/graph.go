package maze

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/core"
)

// ToGraph converts gr into a weighted undirected *core.Graph.
//
// Every open cell (x,y) becomes a vertex with ID "x,y" and a core.Point
// payload; Start and Goal cells become the graph's start and goal. For each
// vertex, in row-major order, and each neighbor in the order left, right,
// up, down, an edge is added when the neighbor is a Passage cell. The cost is
// 1 + |code(neighbor) − code(cell)|. An edge already present from the other
// side is not added twice.
//
// Complexity: O(W×H) time and memory.
func ToGraph(gr *Grid) (*core.Graph, error) {
	if gr == nil {
		return nil, ErrEmptyGrid
	}
	g := core.NewWeightedUndirected()

	for i, c := range gr.cells {
		if !c.Open() {
			continue
		}
		x, y := gr.Coordinate(i)
		p := core.Point{X: x, Y: y}
		if err := g.AddVertex(p.ID(), p); err != nil {
			return nil, fmt.Errorf("maze: AddVertex(%s): %w", p.ID(), err)
		}
		var err error
		switch c {
		case Start:
			err = g.SetStart(p.ID())
		case Goal:
			err = g.SetGoal(p.ID())
		}
		if err != nil {
			return nil, err
		}
	}

	for i, c := range gr.cells {
		if !c.Open() {
			continue
		}
		x, y := gr.Coordinate(i)
		from := core.Point{X: x, Y: y}.ID()
		for _, d := range neighborOffsets {
			nx, ny := x+d[0], y+d[1]
			if !gr.InBounds(nx, ny) || gr.At(nx, ny) != Passage {
				continue
			}
			to := core.Point{X: nx, Y: ny}.ID()
			if g.HasEdge(from, to) {
				continue
			}
			if err := g.AddEdge(from, to, stepCost(c, gr.At(nx, ny))); err != nil {
				return nil, fmt.Errorf("maze: AddEdge(%s→%s): %w", from, to, err)
			}
		}
	}

	return g, nil
}

// stepCost is 1 plus the absolute difference of the two cell codes.
func stepCost(from, to Cell) int64 {
	d := int64(to) - int64(from)
	if d < 0 {
		d = -d
	}

	return 1 + d
}
