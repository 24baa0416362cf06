// SPDX-License-Identifier: MIT
package cli

import (
	"context"
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	version = "dev"     // semantic version
	commit  = "none"    // git commit SHA
	date    = "unknown" // build timestamp
)

// SetVersion sets the information shown by --version. main calls it with
// values injected through ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// app is the state shared by all commands: the merged configuration.
// Flags are bound directly to its fields.
type app struct {
	cfg Config
}

// Execute runs the lvmaze CLI with ctx. Cancelling ctx aborts long
// searches and the replay.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// NewRootCommand builds the command tree.
//
// Before any subcommand runs, PersistentPreRunE installs the logger, loads
// --config over DefaultConfig, re-applies flags set on the command line and
// validates the result.
func NewRootCommand() *cobra.Command {
	var (
		verbose bool
		cfgPath string
	)
	a := &app{cfg: DefaultConfig()}

	root := &cobra.Command{
		Use:          "lvmaze",
		Short:        "lvmaze carves, solves and replays grid mazes",
		Long:         `lvmaze generates seeded clustering mazes and Perlin-noise grids, solves them with DFS, BFS, best-first or Dijkstra search, and renders, replays or exports the result.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level)
			cmd.SetContext(withLogger(cmd.Context(), logger))

			if cfgPath != "" {
				if err := a.loadConfig(cmd.Flags(), cfgPath); err != nil {
					return err
				}
				logger.Debug("loaded config", "path", cfgPath)
			}

			return a.cfg.Validate()
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("lvmaze %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	pf := root.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVarP(&cfgPath, "config", "c", "", "TOML or YAML config file")
	pf.StringVar(&a.cfg.Seed, "seed", "", `PRNG seed "a,b,c,d" (default Marsaglia's reference seed)`)

	root.AddCommand(a.generateCommand())
	root.AddCommand(a.noiseCommand())
	root.AddCommand(a.solveCommand())
	root.AddCommand(a.playCommand())
	root.AddCommand(a.dotCommand())

	return root
}

// loadConfig replaces a.cfg with the file at path and then re-applies every
// flag the user set, so the command line wins over the file.
func (a *app) loadConfig(flags *pflag.FlagSet, path string) error {
	set := map[string]string{}
	flags.Visit(func(f *pflag.Flag) {
		set[f.Name] = f.Value.String()
	})

	cfg, err := LoadConfig(path)
	if err != nil {
		return err
	}
	a.cfg = cfg

	for name, value := range set {
		if err := flags.Set(name, value); err != nil {
			return fmt.Errorf("re-apply --%s: %w", name, err)
		}
	}

	return nil
}

func (a *app) mazeFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVar(&a.cfg.Maze.Width, "width", a.cfg.Maze.Width, "maze width (odd, >= 3)")
	f.IntVar(&a.cfg.Maze.Height, "height", a.cfg.Maze.Height, "maze height (odd, >= 3)")
	f.Uint32Var(&a.cfg.Maze.MergeThreshold, "merge-threshold", a.cfg.Maze.MergeThreshold, "merge when Next() <= threshold (0 keeps 2^30)")
}

func (a *app) noiseFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVar(&a.cfg.Noise.Width, "noise-width", a.cfg.Noise.Width, "noise grid width")
	f.IntVar(&a.cfg.Noise.Height, "noise-height", a.cfg.Noise.Height, "noise grid height")
	f.Float64Var(&a.cfg.Noise.Smoothness, "smoothness", a.cfg.Noise.Smoothness, "pixels per noise unit")
	f.Float64Var(&a.cfg.Noise.Z, "z", a.cfg.Noise.Z, "noise z coordinate")
	f.StringVar(&a.cfg.Noise.Mode, "mode", a.cfg.Noise.Mode, "noise mode: seamless or plain")
	f.BoolVar(&a.cfg.Noise.Tile, "tile", a.cfg.Noise.Tile, "sample a half-size field and repeat it 2x2")
	f.Float64Var(&a.cfg.Noise.Period, "period", a.cfg.Noise.Period, "loop z with this period (0 disables)")
	f.Float64Var(&a.cfg.Noise.Threshold, "threshold", a.cfg.Noise.Threshold, "values above become passages")
	f.BoolVar(&a.cfg.Noise.Mean, "mean", a.cfg.Noise.Mean, "threshold at the field mean instead of --threshold")
}

func (a *app) solveFlags(cmd *cobra.Command) {
	a.mazeFlags(cmd)
	a.noiseFlags(cmd)
	f := cmd.Flags()
	f.StringVarP(&a.cfg.Solve.Algorithm, "algo", "a", a.cfg.Solve.Algorithm, "dfs, bfs, bestm, beste, dijkstra or astar")
	f.StringVar(&a.cfg.Solve.Source, "source", a.cfg.Solve.Source, "grid source when --in is empty: maze or noise")
	f.StringVarP(&a.cfg.Solve.Input, "in", "i", a.cfg.Solve.Input, "read the grid from this file")
	f.StringVar(&a.cfg.Solve.Start, "start", a.cfg.Solve.Start, `start cell "x,y" (snaps to nearest open cell)`)
	f.StringVar(&a.cfg.Solve.Goal, "goal", a.cfg.Solve.Goal, `goal cell "x,y" (snaps to nearest open cell)`)
}
