package maze

import "github.com/katalvlaran/lvmaze/core"

// neighborOffsets lists the 4-neighborhood in the order ToGraph expands it.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// ConnectedComponents finds all 4-connected regions of open cells.
// Components are ordered by their first cell in row-major order; cells
// within a component are in BFS order from that first cell.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (gr *Grid) ConnectedComponents() [][]core.Point {
	seen := make([]bool, len(gr.cells))
	var comps [][]core.Point

	for i0, c := range gr.cells {
		if !c.Open() || seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		var comp []core.Point

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			ux, uy := gr.Coordinate(u)
			comp = append(comp, core.Point{X: ux, Y: uy})
			for _, d := range neighborOffsets {
				vx, vy := ux+d[0], uy+d[1]
				if !gr.At(vx, vy).Open() {
					continue
				}
				vi := gr.index(vx, vy)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}
