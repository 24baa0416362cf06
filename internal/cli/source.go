// SPDX-License-Identifier: MIT
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvmaze/core"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/noise"
)

var (
	// ErrBadPoint indicates a coordinate that is not "x,y".
	ErrBadPoint = errors.New("cli: point must be \"x,y\"")
	// ErrNoOpenCell indicates a grid without any open cell to place markers on.
	ErrNoOpenCell = errors.New("cli: grid has no open cell")
	// ErrSameEndpoints indicates start and goal resolving to the same cell.
	ErrSameEndpoints = errors.New("cli: start and goal are the same cell")
)

// parsePoint parses "x,y" into a core.Point.
func parsePoint(text string) (core.Point, error) {
	xs, ys, ok := strings.Cut(text, ",")
	if !ok {
		return core.Point{}, fmt.Errorf("%w: %q", ErrBadPoint, text)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return core.Point{}, fmt.Errorf("%w: %q", ErrBadPoint, text)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return core.Point{}, fmt.Errorf("%w: %q", ErrBadPoint, text)
	}

	return core.Point{X: x, Y: y}, nil
}

// carve builds a clustering maze from cfg.
func carve(ctx context.Context, cfg Config) (*maze.Grid, error) {
	seed, err := cfg.SeedValue()
	if err != nil {
		return nil, err
	}
	logger := loggerFromContext(ctx)
	gen, err := maze.NewGenerator(seed,
		maze.WithMergeThreshold(cfg.Maze.MergeThreshold),
		maze.WithOnScan(func(pass, min, max int) {
			logger.Debug("clustering pass", "pass", pass, "min", min, "max", max)
		}),
	)
	if err != nil {
		return nil, err
	}

	prog := newProgress(logger)
	gr, err := gen.Clustering(cfg.Maze.Width, cfg.Maze.Height)
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Carved %dx%d maze", gr.Width(), gr.Height()))

	return gr, nil
}

// noiseField samples the configured Perlin field in row-major order. Plain
// mode reads raw noise, seamless mode reads Seamless3D when a period is set
// and Seamless2D otherwise. With Tile a half-size field is sampled and
// repeated 2x2 over the full size.
func noiseField(cfg Config) ([]float64, error) {
	seed, err := cfg.SeedValue()
	if err != nil {
		return nil, err
	}
	n, err := noise.New(seed)
	if err != nil {
		return nil, err
	}
	nc := cfg.Noise
	w, h := nc.Width, nc.Height
	if nc.Tile {
		w, h = (w+1)/2, (h+1)/2
	}

	var field []float64
	switch {
	case nc.Mode == "plain":
		field, err = n.Field(w, h, nc.Smoothness, nc.Z)
	case nc.Period > 0:
		field, err = n.Seamless3D(w, h, nc.Smoothness, nc.Z, nc.Period)
	default:
		field, err = n.Seamless2D(w, h, nc.Smoothness, nc.Z)
	}
	if err != nil || !nc.Tile {
		return field, err
	}

	return tile(field, w, h, nc.Width, nc.Height), nil
}

// tile repeats a tw*th field over width*height cells.
func tile(field []float64, tw, th, width, height int) []float64 {
	out := make([]float64, 0, width*height)
	for y := 0; y < height; y++ {
		row := (y % th) * tw
		for x := 0; x < width; x++ {
			out = append(out, field[row+x%tw])
		}
	}
	return out
}

// binarize turns a row-major field into a grid: values above threshold are
// passages, the rest walls.
func binarize(field []float64, width, height int, threshold float64) (*maze.Grid, error) {
	if len(field) != width*height {
		return nil, fmt.Errorf("%w: field has %d samples for %dx%d", maze.ErrNonRectangular, len(field), width, height)
	}
	gr, err := maze.NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	for i, v := range field {
		if v <= threshold {
			continue
		}
		if err := gr.Set(i%width, i/width, maze.Passage); err != nil {
			return nil, err
		}
	}

	return gr, nil
}

func mean(field []float64) float64 {
	if len(field) == 0 {
		return 0
	}
	var sum float64
	for _, v := range field {
		sum += v
	}
	return sum / float64(len(field))
}

// noiseGrid samples and thresholds the configured noise field.
func noiseGrid(ctx context.Context, cfg Config) (*maze.Grid, error) {
	prog := newProgress(loggerFromContext(ctx))
	field, err := noiseField(cfg)
	if err != nil {
		return nil, err
	}
	threshold := cfg.Noise.Threshold
	if cfg.Noise.Mean {
		threshold = mean(field)
	}
	gr, err := binarize(field, cfg.Noise.Width, cfg.Noise.Height, threshold)
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Sampled %dx%d noise grid", gr.Width(), gr.Height()), "open", len(gr.Passages()))

	return gr, nil
}

// loadGrid returns the grid a solving command works on: the Input file when
// set, otherwise a fresh maze or noise grid. Endpoints are then placed.
func loadGrid(ctx context.Context, cfg Config) (*maze.Grid, error) {
	var (
		gr  *maze.Grid
		err error
	)
	switch {
	case cfg.Solve.Input != "":
		var data []byte
		data, err = os.ReadFile(cfg.Solve.Input)
		if err != nil {
			return nil, fmt.Errorf("read grid: %w", err)
		}
		gr, err = maze.ParseGrid(string(data))
	case cfg.Solve.Source == "noise":
		gr, err = noiseGrid(ctx, cfg)
	default:
		gr, err = carve(ctx, cfg)
	}
	if err != nil {
		return nil, err
	}
	if err := placeEndpoints(gr, cfg.Solve.Start, cfg.Solve.Goal); err != nil {
		return nil, err
	}

	return gr, nil
}

// placeEndpoints marks start and goal. A non-empty coordinate is snapped to the
// nearest open cell. An empty one keeps an existing marker, or falls back
// to the first (start) or last (goal) open cell in row-major order.
func placeEndpoints(gr *maze.Grid, start, goal string) error {
	open := gr.Passages()
	if len(open) == 0 {
		return ErrNoOpenCell
	}
	ix := maze.NewIndex(gr)

	resolve := func(text string, marker maze.Cell, fallback core.Point) (core.Point, error) {
		if text == "" {
			if p, ok := gr.Find(marker); ok {
				return p, nil
			}
			return fallback, nil
		}
		want, err := parsePoint(text)
		if err != nil {
			return core.Point{}, err
		}
		p, _ := ix.Nearest(float64(want.X), float64(want.Y))
		return p, nil
	}

	s, err := resolve(start, maze.Start, open[0])
	if err != nil {
		return err
	}
	g, err := resolve(goal, maze.Goal, open[len(open)-1])
	if err != nil {
		return err
	}
	if s == g {
		return fmt.Errorf("%w: %s", ErrSameEndpoints, s.ID())
	}
	if err := gr.PlaceStart(s.X, s.Y); err != nil {
		return err
	}

	return gr.PlaceGoal(g.X, g.Y)
}
