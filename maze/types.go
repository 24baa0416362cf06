// Package maze defines cell codes, options, and sentinel errors.
package maze

import "errors"

// Sentinel errors for maze operations.
var (
	// ErrEvenDimension indicates an even width or height passed to Clustering.
	ErrEvenDimension = errors.New("maze: width and height must be odd")
	// ErrTooSmall indicates a width or height below MinSize.
	ErrTooSmall = errors.New("maze: width and height must be at least 3")
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("maze: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrBadCell indicates an unknown cell character in ParseGrid input.
	ErrBadCell = errors.New("maze: unknown cell character")
	// ErrOutOfBounds indicates coordinates outside the grid.
	ErrOutOfBounds = errors.New("maze: coordinates out of bounds")
	// ErrNotOpen indicates a marker placed on a wall.
	ErrNotOpen = errors.New("maze: cell is a wall")
)

// MinSize is the smallest width or height Clustering accepts.
const MinSize = 3

// Cell is a grid cell code. Values match the byte encoding used by external
// renderers.
type Cell uint8

const (
	// Passage is an open cell.
	Passage Cell = 0
	// Start marks the start cell; it is open.
	Start Cell = 129
	// Goal marks the goal cell; it is open.
	Goal Cell = 130
	// Wall is a blocked cell.
	Wall Cell = 255
)

// Open reports whether the cell can be walked on.
func (c Cell) Open() bool { return c != Wall }

// Rune returns the text rendering of c: '#', ' ', 'S', 'G', or '?' for
// other codes.
func (c Cell) Rune() rune {
	switch c {
	case Wall:
		return '#'
	case Passage:
		return ' '
	case Start:
		return 'S'
	case Goal:
		return 'G'
	default:
		return '?'
	}
}

// mergeThreshold is the default Next() bound below which a merge is
// attempted: 2^30, so roughly one draw in four carves.
const mergeThreshold uint32 = 1 << 30

// Option configures a Generator.
type Option func(*Generator)

// WithMergeThreshold sets the Next() bound at or below which a merge is
// attempted. Larger values carve faster; 0 keeps the default, since no merge
// could ever be drawn.
func WithMergeThreshold(t uint32) Option {
	return func(g *Generator) {
		if t != 0 {
			g.threshold = t
		}
	}
}

// WithOnScan registers a callback run after every full scan with the pass
// number (from 1) and the smallest and largest interior cluster ids.
func WithOnScan(fn func(pass, min, max int)) Option {
	return func(g *Generator) {
		if fn != nil {
			g.onScan = fn
		}
	}
}
