package maze

import (
	"github.com/dhconnelly/rtreego"

	"github.com/katalvlaran/lvmaze/core"
)

// cellEntry wraps an open cell for R-tree storage.
type cellEntry struct {
	point core.Point
	bbox  rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *cellEntry) Bounds() rtreego.Rect {
	return e.bbox
}

// Index answers nearest-open-cell queries over a grid snapshot.
// Later changes to the grid are not reflected.
type Index struct {
	tree *rtreego.Rtree
}

// NewIndex builds an R-tree over the open cells of gr. Each cell occupies the
// unit square centered on its coordinates.
func NewIndex(gr *Grid) *Index {
	tree := rtreego.NewTree(2, 25, 50) // 2D, min 25, max 50 entries per node
	for _, p := range gr.Passages() {
		bbox, err := rtreego.NewRect(
			rtreego.Point{float64(p.X) - 0.5, float64(p.Y) - 0.5},
			[]float64{1, 1},
		)
		if err != nil {
			continue
		}
		tree.Insert(&cellEntry{point: p, bbox: bbox})
	}

	return &Index{tree: tree}
}

// Len returns the number of indexed cells.
func (ix *Index) Len() int {
	return ix.tree.Size()
}

// Nearest returns the open cell closest to (x,y). The bool is false when
// the grid has no open cells.
func (ix *Index) Nearest(x, y float64) (core.Point, bool) {
	if ix.tree.Size() == 0 {
		return core.Point{}, false
	}
	hit := ix.tree.NearestNeighbor(rtreego.Point{x, y})
	if hit == nil {
		return core.Point{}, false
	}

	return hit.(*cellEntry).point, true
}
