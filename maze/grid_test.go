package maze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/core"
	"github.com/katalvlaran/lvmaze/maze"
)

const corridor = "#####\n#   #\n# ###\n#   #\n#####"

func mustParse(t *testing.T, text string) *maze.Grid {
	t.Helper()
	gr, err := maze.ParseGrid(text)
	require.NoError(t, err)
	return gr
}

func TestNewGrid(t *testing.T) {
	gr, err := maze.NewGrid(3, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, gr.Width())
	assert.Equal(t, 2, gr.Height())
	assert.Equal(t, "###\n###", gr.String())
	assert.Empty(t, gr.Passages())

	_, err = maze.NewGrid(0, 2)
	assert.ErrorIs(t, err, maze.ErrEmptyGrid)
}

func TestGrid_AccessAndBounds(t *testing.T) {
	gr := mustParse(t, corridor)

	assert.True(t, gr.InBounds(0, 0))
	assert.True(t, gr.InBounds(4, 4))
	assert.False(t, gr.InBounds(5, 0))
	assert.False(t, gr.InBounds(0, -1))

	assert.Equal(t, maze.Passage, gr.At(2, 1))
	assert.Equal(t, maze.Wall, gr.At(2, 2))
	assert.Equal(t, maze.Wall, gr.At(-1, 7), "outside reads as wall")

	require.NoError(t, gr.Set(2, 2, maze.Passage))
	assert.Equal(t, maze.Passage, gr.At(2, 2))
	assert.ErrorIs(t, gr.Set(9, 9, maze.Wall), maze.ErrOutOfBounds)

	x, y := gr.Coordinate(13)
	assert.Equal(t, [2]int{3, 2}, [2]int{x, y})
}

func TestGrid_Markers(t *testing.T) {
	gr := mustParse(t, corridor)

	assert.ErrorIs(t, gr.PlaceStart(0, 0), maze.ErrNotOpen)
	assert.ErrorIs(t, gr.PlaceGoal(7, 7), maze.ErrOutOfBounds)

	require.NoError(t, gr.PlaceStart(1, 1))
	require.NoError(t, gr.PlaceStart(3, 1))
	require.NoError(t, gr.PlaceGoal(3, 3))
	assert.Equal(t, "#####\n#  S#\n# ###\n#  G#\n#####", gr.String())

	s, ok := gr.Find(maze.Start)
	assert.True(t, ok)
	assert.Equal(t, core.Point{X: 3, Y: 1}, s)

	// A marker can move onto the other marker's cell.
	require.NoError(t, gr.PlaceGoal(3, 1))
	_, ok = gr.Find(maze.Start)
	assert.False(t, ok)

	gr.ClearMarkers()
	assert.Equal(t, corridor, gr.String())
	_, ok = gr.Find(maze.Goal)
	assert.False(t, ok)
}

func TestGrid_PassagesAndRows(t *testing.T) {
	gr := mustParse(t, corridor)
	require.NoError(t, gr.PlaceStart(1, 1))

	assert.Equal(t, []core.Point{
		{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1},
		{X: 1, Y: 2},
		{X: 1, Y: 3}, {X: 2, Y: 3}, {X: 3, Y: 3},
	}, gr.Passages())

	rows := gr.Rows()
	require.Len(t, rows, 5)
	assert.Equal(t, []maze.Cell{maze.Wall, maze.Start, maze.Passage, maze.Passage, maze.Wall}, rows[1])
	rows[1][2] = maze.Wall
	assert.Equal(t, maze.Passage, gr.At(2, 1), "Rows returns a copy")

	b := gr.Bytes()
	assert.Equal(t, byte(255), b[0])
	assert.Equal(t, byte(129), b[6])
	assert.Equal(t, byte(0), b[7])
}

func TestParseGrid_Errors(t *testing.T) {
	_, err := maze.ParseGrid("")
	assert.ErrorIs(t, err, maze.ErrEmptyGrid)
	_, err = maze.ParseGrid("\n\n")
	assert.ErrorIs(t, err, maze.ErrEmptyGrid)
	_, err = maze.ParseGrid("###\n##")
	assert.ErrorIs(t, err, maze.ErrNonRectangular)
	_, err = maze.ParseGrid("#x#")
	assert.ErrorIs(t, err, maze.ErrBadCell)
}

func TestParseGrid_CRLFAndRoundTrip(t *testing.T) {
	gr := mustParse(t, "\n###\r\n#S#\r\n#G#\r\n###\n")
	assert.Equal(t, "###\n#S#\n#G#\n###", gr.String())
	assert.Equal(t, gr.String(), mustParse(t, gr.String()).String())
}

func TestCell_Rune(t *testing.T) {
	assert.Equal(t, '#', maze.Wall.Rune())
	assert.Equal(t, ' ', maze.Passage.Rune())
	assert.Equal(t, 'S', maze.Start.Rune())
	assert.Equal(t, 'G', maze.Goal.Rune())
	assert.Equal(t, '?', maze.Cell(7).Rune())
	assert.True(t, maze.Goal.Open())
	assert.False(t, maze.Wall.Open())
}

func TestConnectedComponents(t *testing.T) {
	gr := mustParse(t, "#######\n# # # #\n#######\n#  ####\n#######")
	comps := gr.ConnectedComponents()
	require.Len(t, comps, 4)
	assert.Equal(t, []core.Point{{X: 1, Y: 1}}, comps[0])
	assert.Equal(t, []core.Point{{X: 1, Y: 3}, {X: 2, Y: 3}}, comps[3])

	assert.Len(t, mustParse(t, corridor).ConnectedComponents(), 1)
}
