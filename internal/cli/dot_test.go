// SPDX-License-Identifier: MIT
package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/maze"
)

func TestToDOT(t *testing.T) {
	gr, err := maze.ParseGrid("#S  G#")
	require.NoError(t, err)
	g, err := maze.ToGraph(gr)
	require.NoError(t, err)

	dot := toDOT(g, []string{"1,0", "2,0", "3,0", "4,0"})

	assert.True(t, strings.HasPrefix(dot, "graph maze {\n"))
	assert.True(t, strings.HasSuffix(dot, "}\n"))
	assert.Contains(t, dot, `  "1,0" [label="1,0", pos="1,0!", fillcolor=palegreen];`)
	assert.Contains(t, dot, `  "4,0" [label="4,0", pos="4,0!", fillcolor=salmon];`)
	assert.Contains(t, dot, `  "2,0" [label="2,0", pos="2,0!"];`)
	assert.Contains(t, dot, `  "1,0" -- "2,0" [label=130, color=red, penwidth=2];`)
	assert.Contains(t, dot, `  "2,0" -- "3,0" [label=1, color=red, penwidth=2];`)
	assert.Contains(t, dot, `  "3,0" -- "4,0" [label=131, color=red, penwidth=2];`)
	assert.Equal(t, 3, strings.Count(dot, " -- "), "mirrored edges are written once")

	plain := toDOT(g, nil)
	assert.NotContains(t, plain, "color=red")
	assert.Contains(t, plain, `  "2,0" -- "3,0" [label=1];`)
}
