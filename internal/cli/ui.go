// SPDX-License-Identifier: MIT
package cli

import "github.com/charmbracelet/lipgloss"

var (
	colorCyan   = lipgloss.Color("36")  // path
	colorGreen  = lipgloss.Color("35")  // start
	colorYellow = lipgloss.Color("220") // visited
	colorRed    = lipgloss.Color("167") // goal
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240") // walls
)

// StyleTitle for headings.
var StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

var (
	styleWall    = lipgloss.NewStyle().Foreground(colorDim)
	styleStart   = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	styleGoal    = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	stylePath    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleVisited = lipgloss.NewStyle().Foreground(colorYellow)
	styleStatus  = lipgloss.NewStyle().Foreground(colorGray)
)

// Glyphs used by renderGrid. Walls, passages and markers match the text
// format of maze.Grid.String so plain output stays parseable after
// stripping overlays.
const (
	glyphWall    = '#'
	glyphOpen    = ' '
	glyphStart   = 'S'
	glyphGoal    = 'G'
	glyphPath    = '*'
	glyphVisited = '.'
)
