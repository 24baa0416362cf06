// SPDX-License-Identifier: MIT
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmaze/core"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/search"
)

// solved bundles everything a solving command produces.
type solved struct {
	grid   *maze.Grid
	graph  *core.Graph
	algo   search.Algorithm
	result *search.Result
}

// solveGrid converts gr to a graph and runs the configured algorithm
// between its markers.
func solveGrid(ctx context.Context, cfg Config, gr *maze.Grid) (*solved, error) {
	algo, err := search.ParseAlgorithm(cfg.Solve.Algorithm)
	if err != nil {
		return nil, err
	}
	g, err := maze.ToGraph(gr)
	if err != nil {
		return nil, err
	}
	start, _ := g.Start()
	goal, _ := g.Goal()

	logger := loggerFromContext(ctx)
	logger.Debug("solving", "algorithm", algo, "start", start, "goal", goal, "vertices", g.VertexCount())

	prog := newProgress(logger)
	res, err := search.Run(algo, g, start, goal,
		search.WithContext(ctx),
		search.WithOnVisit(func(id string) error {
			logger.Debug("visit", "cell", id)
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", algo, err)
	}
	if res.Found() && !res.HasCost {
		if cost, err := search.PathCost(g, res.Path); err == nil {
			res.Cost, res.HasCost = cost, true
		}
	}
	prog.done("Solved", "algorithm", algo, "found", res.Found())

	return &solved{grid: gr, graph: g, algo: algo, result: res}, nil
}

// load reads or builds the grid and solves it.
func load(ctx context.Context, cfg Config) (*solved, error) {
	gr, err := loadGrid(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return solveGrid(ctx, cfg, gr)
}

func (a *app) solveCommand() *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Search a grid from start to goal and print the result",
		Long: `Solve builds (or reads with --in) a grid, places the start and goal,
converts the open cells into a weighted graph and runs the selected search.
The printed grid marks the path with '*' and other visited cells with '.'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := load(cmd.Context(), a.cfg)
			if err != nil {
				return err
			}
			return writeSolved(cmd.OutOrStdout(), s, !plain)
		},
	}
	a.solveFlags(cmd)
	cmd.Flags().BoolVar(&plain, "plain", false, "print without colors")

	return cmd
}

func writeSolved(w io.Writer, s *solved, styled bool) error {
	line := summary(s.algo, s.result)
	if styled {
		line = StyleTitle.Render(line)
	}
	_, err := fmt.Fprintf(w, "%s\n%s\n", renderGrid(s.grid, resultOverlay(s.result), styled), line)
	return err
}
