// SPDX-License-Identifier: MIT
package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/lvmaze/core"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/search"
)

// overlay marks cells touched by a search. Path wins over visited; markers
// are never overdrawn.
type overlay struct {
	visited map[core.Point]bool
	path    map[core.Point]bool
}

// newOverlay converts "x,y" vertex IDs to cell sets. IDs that are not
// coordinates are ignored.
func newOverlay(visited, path []string) overlay {
	return overlay{visited: pointSet(visited), path: pointSet(path)}
}

// resultOverlay draws the path when one was found, the trace otherwise.
func resultOverlay(res *search.Result) overlay {
	if res == nil {
		return overlay{}
	}
	if res.Found() {
		return newOverlay(res.Visited, res.Path)
	}
	return newOverlay(res.Visited, nil)
}

func pointSet(ids []string) map[core.Point]bool {
	set := make(map[core.Point]bool, len(ids))
	for _, id := range ids {
		if p, err := parsePoint(id); err == nil {
			set[p] = true
		}
	}
	return set
}

// renderGrid draws gr with ov on top, one row per line and no trailing
// newline. styled adds lipgloss colors; the glyphs are identical either way.
func renderGrid(gr *maze.Grid, ov overlay, styled bool) string {
	var sb strings.Builder
	for y := 0; y < gr.Height(); y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < gr.Width(); x++ {
			glyph, style := cellGlyph(gr.At(x, y), core.Point{X: x, Y: y}, ov)
			if styled && style != nil {
				sb.WriteString(style.Render(string(glyph)))
				continue
			}
			sb.WriteRune(glyph)
		}
	}

	return sb.String()
}

func cellGlyph(c maze.Cell, p core.Point, ov overlay) (rune, *lipgloss.Style) {
	switch {
	case c == maze.Start:
		return glyphStart, &styleStart
	case c == maze.Goal:
		return glyphGoal, &styleGoal
	case !c.Open():
		return glyphWall, &styleWall
	case ov.path[p]:
		return glyphPath, &stylePath
	case ov.visited[p]:
		return glyphVisited, &styleVisited
	default:
		return glyphOpen, nil
	}
}

// summary is the one-line outcome printed under a solved grid.
func summary(algo search.Algorithm, res *search.Result) string {
	if !res.Found() {
		return fmt.Sprintf("%s: goal unreachable, visited %d cells", algo, len(res.Visited))
	}
	cost := ""
	if res.HasCost {
		cost = fmt.Sprintf(", cost %d", res.Cost)
	}
	return fmt.Sprintf("%s: path of %d cells%s, visited %d cells", algo, len(res.Path), cost, len(res.Visited))
}
