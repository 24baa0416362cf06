package maze

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvmaze/core"
)

// Grid is a rectangular array of cells stored row-major.
// The zero value is not usable; create grids with NewGrid or ParseGrid.
type Grid struct {
	width, height int
	cells         []Cell
}

// NewGrid returns a width×height grid filled with Wall.
// Returns ErrEmptyGrid if either dimension is below 1.
func NewGrid(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, width, height)
	}
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = Wall
	}

	return &Grid{width: width, height: height, cells: cells}, nil
}

// Width returns the number of columns.
func (gr *Grid) Width() int { return gr.width }

// Height returns the number of rows.
func (gr *Grid) Height() int { return gr.height }

// InBounds reports whether (x,y) lies within the grid.
// Complexity: O(1).
func (gr *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < gr.width && y >= 0 && y < gr.height
}

// index maps (x,y) to a row-major index: y*width + x.
func (gr *Grid) index(x, y int) int {
	return y*gr.width + x
}

// Coordinate converts a row-major index back to (x,y).
func (gr *Grid) Coordinate(idx int) (x, y int) {
	return idx % gr.width, idx / gr.width
}

// At returns the cell at (x,y). Cells outside the grid read as Wall.
func (gr *Grid) At(x, y int) Cell {
	if !gr.InBounds(x, y) {
		return Wall
	}

	return gr.cells[gr.index(x, y)]
}

// Set stores c at (x,y). Returns ErrOutOfBounds outside the grid.
func (gr *Grid) Set(x, y int, c Cell) error {
	if !gr.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, gr.width, gr.height)
	}
	gr.cells[gr.index(x, y)] = c

	return nil
}

// Rows returns a copy of the grid as rows of cells, Rows()[y][x].
func (gr *Grid) Rows() [][]Cell {
	rows := make([][]Cell, gr.height)
	for y := range rows {
		rows[y] = make([]Cell, gr.width)
		copy(rows[y], gr.cells[y*gr.width:(y+1)*gr.width])
	}

	return rows
}

// Bytes returns the row-major cell codes.
func (gr *Grid) Bytes() []byte {
	out := make([]byte, len(gr.cells))
	for i, c := range gr.cells {
		out[i] = byte(c)
	}

	return out
}

// PlaceStart marks (x,y) as the start, clearing any previous start.
// Returns ErrOutOfBounds or ErrNotOpen.
func (gr *Grid) PlaceStart(x, y int) error { return gr.place(x, y, Start) }

// PlaceGoal marks (x,y) as the goal, clearing any previous goal.
// Returns ErrOutOfBounds or ErrNotOpen.
func (gr *Grid) PlaceGoal(x, y int) error { return gr.place(x, y, Goal) }

func (gr *Grid) place(x, y int, marker Cell) error {
	if !gr.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, gr.width, gr.height)
	}
	if !gr.At(x, y).Open() {
		return fmt.Errorf("%w: (%d,%d)", ErrNotOpen, x, y)
	}
	for i, c := range gr.cells {
		if c == marker {
			gr.cells[i] = Passage
		}
	}
	gr.cells[gr.index(x, y)] = marker

	return nil
}

// ClearMarkers turns every Start and Goal cell back into Passage.
func (gr *Grid) ClearMarkers() {
	for i, c := range gr.cells {
		if c == Start || c == Goal {
			gr.cells[i] = Passage
		}
	}
}

// Find returns the first cell (row-major) holding c.
func (gr *Grid) Find(c Cell) (core.Point, bool) {
	for i, v := range gr.cells {
		if v == c {
			x, y := gr.Coordinate(i)
			return core.Point{X: x, Y: y}, true
		}
	}

	return core.Point{}, false
}

// Passages returns every open cell in row-major order.
func (gr *Grid) Passages() []core.Point {
	out := make([]core.Point, 0, len(gr.cells)/2)
	for i, c := range gr.cells {
		if c.Open() {
			x, y := gr.Coordinate(i)
			out = append(out, core.Point{X: x, Y: y})
		}
	}

	return out
}

// String renders the grid one row per line using Cell.Rune, without a
// trailing newline.
func (gr *Grid) String() string {
	var sb strings.Builder
	sb.Grow((gr.width + 1) * gr.height)
	for y := 0; y < gr.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < gr.width; x++ {
			sb.WriteRune(gr.At(x, y).Rune())
		}
	}

	return sb.String()
}

// ParseGrid reads the format produced by String. Leading and trailing blank
// lines are ignored; a "\r" before each newline is tolerated.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrBadCell.
func ParseGrid(text string) (*Grid, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.Trim(text, "\n")
	if text == "" {
		return nil, ErrEmptyGrid
	}
	lines := strings.Split(text, "\n")
	width := len([]rune(lines[0]))
	if width == 0 {
		return nil, ErrEmptyGrid
	}

	gr, err := NewGrid(width, len(lines))
	if err != nil {
		return nil, err
	}
	for y, line := range lines {
		runes := []rune(line)
		if len(runes) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(runes), width)
		}
		for x, r := range runes {
			c, ok := cellOf(r)
			if !ok {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadCell, r, x, y)
			}
			gr.cells[gr.index(x, y)] = c
		}
	}

	return gr, nil
}

func cellOf(r rune) (Cell, bool) {
	switch r {
	case '#':
		return Wall, true
	case ' ':
		return Passage, true
	case 'S':
		return Start, true
	case 'G':
		return Goal, true
	default:
		return 0, false
	}
}
