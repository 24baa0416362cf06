package maze

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/rng"
)

// Generator carves mazes. It owns two streams built from the same seed: one
// decides whether a merge is attempted, the other shuffles the direction
// order. A Generator is not safe for concurrent use.
type Generator struct {
	random    *rng.Xorshift
	shuffle   *rng.Shuffle
	threshold uint32
	onScan    func(pass, min, max int)
}

// NewGenerator returns a Generator seeded with seed.
// Returns rng.ErrInvalidSeed for an all-zero seed.
func NewGenerator(seed rng.Seed, opts ...Option) (*Generator, error) {
	random, err := rng.New(seed)
	if err != nil {
		return nil, err
	}
	shuffle, err := rng.NewShuffle(seed)
	if err != nil {
		return nil, err
	}
	g := &Generator{
		random:    random,
		shuffle:   shuffle,
		threshold: mergeThreshold,
		onScan:    func(int, int, int) {},
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// move is one candidate merge: the offset of the target cell and of the
// wall between source and target.
type move struct {
	dx, dy       int
	wallX, wallY int
}

// directions in the order they are handed to the shuffle.
var directions = [4]move{
	{dx: -2, dy: 0, wallX: -1, wallY: 0},
	{dx: 2, dy: 0, wallX: 1, wallY: 0},
	{dx: 0, dy: 2, wallX: 0, wallY: 1},
	{dx: 0, dy: -2, wallX: 0, wallY: -1},
}

// Clustering carves a width×height maze.
//
// Algorithm:
//  1. Border cells and cells on an even row or column are walls (cluster 0);
//     every other cell gets the cluster id 1 + x + y*width.
//  2. Scan interior cells row-major. For each, shuffle the four directions;
//     per direction draw Next() and skip when it exceeds the threshold.
//     Otherwise, if the cell two steps away is inside the grid and in another
//     cluster, carve the wall between them and relabel the target's cluster
//     to the source's id everywhere.
//  3. After each scan recompute the smallest and largest interior id; repeat
//     until they are equal.
//  4. Cluster 0 becomes Wall, everything else Passage.
//
// Every interior cell is reachable from every other one in the result.
// Returns ErrTooSmall or ErrEvenDimension for invalid sizes.
func (g *Generator) Clustering(width, height int) (*Grid, error) {
	if width < MinSize || height < MinSize {
		return nil, fmt.Errorf("%w: %dx%d", ErrTooSmall, width, height)
	}
	if width%2 == 0 || height%2 == 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEvenDimension, width, height)
	}

	labels := make([][]int, height)
	for y := 0; y < height; y++ {
		labels[y] = make([]int, width)
		for x := 0; x < width; x++ {
			if !interior(x, y, width, height) {
				continue
			}
			labels[y][x] = 1 + x + y*width
		}
	}

	minID, maxID := 1+width*height, 0
	for pass := 1; minID != maxID; pass++ {
		for y := 1; y < height-1; y += 2 {
			for x := 1; x < width-1; x += 2 {
				g.mergeAround(labels, x, y, width, height)
			}
		}

		minID, maxID = width*height, 0
		for y := 1; y < height-1; y += 2 {
			for x := 1; x < width-1; x += 2 {
				minID = min(minID, labels[y][x])
				maxID = max(maxID, labels[y][x])
			}
		}
		g.onScan(pass, minID, maxID)
	}

	gr, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if labels[y][x] != 0 {
				gr.cells[gr.index(x, y)] = Passage
			}
		}
	}

	return gr, nil
}

// mergeAround tries the four shuffled directions from the cell at (x,y).
func (g *Generator) mergeAround(labels [][]int, x, y, width, height int) {
	order := directions
	for _, m := range rng.Permute(g.shuffle, order[:]) {
		if g.random.Next() > g.threshold {
			continue
		}
		tx, ty := x+m.dx, y+m.dy
		if tx < 0 || tx >= width || ty < 0 || ty >= height {
			continue
		}
		src, dst := labels[y][x], labels[ty][tx]
		if src == dst {
			continue
		}
		labels[y+m.wallY][x+m.wallX] = src
		for j := range labels {
			for i, id := range labels[j] {
				if id == dst {
					labels[j][i] = src
				}
			}
		}
	}
}

// interior reports whether (x,y) starts as its own cluster.
func interior(x, y, width, height int) bool {
	return x%2 == 1 && y%2 == 1 && x != width-1 && y != height-1
}
