// SPDX-License-Identifier: MIT
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmaze/maze"
)

func (a *app) generateCommand() *cobra.Command {
	var (
		out   string
		plain bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Carve a clustering maze and print it",
		Long: `Generate carves a width×height maze by merging cell clusters until the
interior is a single connected region. The same seed always yields the same
maze. With --out the grid is written in the text format read by --in.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gr, err := carve(cmd.Context(), a.cfg)
			if err != nil {
				return err
			}
			return emitGrid(cmd.OutOrStdout(), gr, out, !plain)
		},
	}
	a.mazeFlags(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the grid to this file instead of stdout")
	cmd.Flags().BoolVar(&plain, "plain", false, "print without colors")

	return cmd
}

func (a *app) noiseCommand() *cobra.Command {
	var (
		out   string
		plain bool
	)
	cmd := &cobra.Command{
		Use:   "noise",
		Short: "Threshold a Perlin field into a grid",
		Long: `Noise samples a Perlin field (tileable by default, looping in z when
--period is set, raw with --mode plain, repeated 2x2 with --tile) and turns
every value above --threshold into a passage.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gr, err := noiseGrid(cmd.Context(), a.cfg)
			if err != nil {
				return err
			}
			return emitGrid(cmd.OutOrStdout(), gr, out, !plain)
		},
	}
	a.noiseFlags(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the grid to this file instead of stdout")
	cmd.Flags().BoolVar(&plain, "plain", false, "print without colors")

	return cmd
}

// emitGrid writes gr to path in the parseable text format, or renders it to
// w when path is empty.
func emitGrid(w io.Writer, gr *maze.Grid, path string, styled bool) error {
	if path != "" {
		if err := os.WriteFile(path, []byte(gr.String()+"\n"), 0o644); err != nil {
			return fmt.Errorf("write grid: %w", err)
		}
		return nil
	}
	_, err := fmt.Fprintln(w, renderGrid(gr, overlay{}, styled))
	return err
}
