// SPDX-License-Identifier: MIT
package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-graphviz"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmaze/core"
)

// toDOT writes g as an undirected Graphviz document. Vertices are pinned
// to their grid coordinates (y grows downwards), edges carry their cost and
// edges along path are highlighted. Each mirrored edge is written once.
func toDOT(g *core.Graph, path []string) string {
	onPath := make(map[[2]string]bool, len(path))
	for i := 1; i < len(path); i++ {
		onPath[[2]string{path[i-1], path[i]}] = true
		onPath[[2]string{path[i], path[i-1]}] = true
	}
	start, _ := g.Start()
	goal, _ := g.Goal()

	var buf bytes.Buffer
	buf.WriteString("graph maze {\n")
	buf.WriteString("  node [shape=box, style=filled, fillcolor=white, fontsize=10, width=0.4, height=0.4, fixedsize=true];\n")
	buf.WriteString("  edge [fontsize=8];\n")

	ids := g.Vertices()
	for _, id := range ids {
		attrs := []string{fmt.Sprintf("label=%q", id)}
		if p, err := g.Payload(id); err == nil {
			if pt, ok := p.(core.Point); ok {
				attrs = append(attrs, fmt.Sprintf("pos=\"%d,%d!\"", pt.X, -pt.Y))
			}
		}
		switch id {
		case start:
			attrs = append(attrs, "fillcolor=palegreen")
		case goal:
			attrs = append(attrs, "fillcolor=salmon")
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", id, strings.Join(attrs, ", "))
	}

	for _, id := range ids {
		edges, err := g.Edges(id)
		if err != nil {
			continue
		}
		for _, e := range edges {
			if !g.Directed() && e.To < e.From {
				continue
			}
			attrs := fmt.Sprintf("label=%d", e.Cost)
			if onPath[[2]string{e.From, e.To}] {
				attrs += ", color=red, penwidth=2"
			}
			fmt.Fprintf(&buf, "  %q -- %q [%s];\n", e.From, e.To, attrs)
		}
	}
	buf.WriteString("}\n")

	return buf.String()
}

// renderSVG lays out dot with Graphviz and returns the SVG bytes.
func renderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

func (a *app) dotCommand() *cobra.Command {
	var (
		out string
		svg bool
	)
	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Export the solved maze graph as Graphviz DOT or SVG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			s, err := load(ctx, a.cfg)
			if err != nil {
				return err
			}
			var path []string
			if s.result.Found() {
				path = s.result.Path
			}

			data := []byte(toDOT(s.graph, path))
			if svg {
				if data, err = renderSVG(ctx, string(data)); err != nil {
					return err
				}
			}
			if out == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			loggerFromContext(ctx).Info("Wrote graph", "path", out, "bytes", len(data))
			return nil
		},
	}
	a.solveFlags(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&svg, "svg", false, "render SVG with Graphviz instead of DOT text")

	return cmd
}
