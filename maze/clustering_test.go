package maze_test

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/rng"
)

func readGolden(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return strings.TrimRight(string(b), "\n")
}

func TestClustering_Golden5x5(t *testing.T) {
	gen, err := maze.NewGenerator(rng.DefaultSeed)
	require.NoError(t, err)
	gr, err := gen.Clustering(5, 5)
	require.NoError(t, err)
	assert.Equal(t, readGolden(t, "clustering_5x5.golden"), gr.String())
}

func TestClustering_KnownLayouts(t *testing.T) {
	cases := []struct {
		w, h   int
		passes int
		want   []string
	}{
		{7, 5, 1, []string{
			"#######",
			"#     #",
			"### # #",
			"#   # #",
			"#######",
		}},
		{9, 9, 2, []string{
			"#########",
			"#       #",
			"# # # ###",
			"# # #   #",
			"# # # # #",
			"# # # # #",
			"### # # #",
			"#   # # #",
			"#########",
		}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(fmt.Sprintf("%dx%d", tc.w, tc.h), func(t *testing.T) {
			passes := 0
			gen, err := maze.NewGenerator(rng.DefaultSeed, maze.WithOnScan(func(pass, min, max int) {
				passes = pass
				assert.LessOrEqual(t, min, max)
			}))
			require.NoError(t, err)
			gr, err := gen.Clustering(tc.w, tc.h)
			require.NoError(t, err)
			assert.Equal(t, strings.Join(tc.want, "\n"), gr.String())
			assert.Equal(t, tc.passes, passes)
		})
	}
}

func TestClustering_Errors(t *testing.T) {
	gen, err := maze.NewGenerator(rng.DefaultSeed)
	require.NoError(t, err)

	cases := []struct {
		w, h int
		want error
	}{
		{1, 5, maze.ErrTooSmall},
		{5, 2, maze.ErrTooSmall},
		{4, 5, maze.ErrEvenDimension},
		{5, 8, maze.ErrEvenDimension},
	}
	for _, tc := range cases {
		_, err := gen.Clustering(tc.w, tc.h)
		assert.ErrorIs(t, err, tc.want, "%dx%d", tc.w, tc.h)
	}

	_, err = maze.NewGenerator(rng.Seed{})
	assert.ErrorIs(t, err, rng.ErrInvalidSeed)
}

// TestClustering_PerfectMaze checks that every interior cell is open, all
// open cells form one region, and the passages form a tree.
func TestClustering_PerfectMaze(t *testing.T) {
	sizes := [][2]int{{3, 3}, {3, 7}, {5, 5}, {7, 3}, {9, 11}, {15, 15}, {21, 13}}
	seeds := []rng.Seed{rng.DefaultSeed, {1, 2, 3, 4}, {42, 0, 0, 7}}
	for _, s := range seeds {
		for _, sz := range sizes {
			w, h := sz[0], sz[1]
			t.Run(fmt.Sprintf("%v/%dx%d", s, w, h), func(t *testing.T) {
				gen, err := maze.NewGenerator(s)
				require.NoError(t, err)
				gr, err := gen.Clustering(w, h)
				require.NoError(t, err)

				for y := 0; y < h; y++ {
					for x := 0; x < w; x++ {
						c := gr.At(x, y)
						border := x == 0 || y == 0 || x == w-1 || y == h-1
						switch {
						case border, x%2 == 0 && y%2 == 0:
							require.Equal(t, maze.Wall, c, "(%d,%d)", x, y)
						case x%2 == 1 && y%2 == 1:
							require.Equal(t, maze.Passage, c, "(%d,%d)", x, y)
						}
					}
				}

				comps := gr.ConnectedComponents()
				require.Len(t, comps, 1)

				g, err := maze.ToGraph(gr)
				require.NoError(t, err)
				assert.Equal(t, g.VertexCount()-1, g.EdgeCount(), "passages form a spanning tree")
			})
		}
	}
}

func TestClustering_Deterministic(t *testing.T) {
	seed := rng.Seed{11, 22, 33, 44}
	a, err := maze.NewGenerator(seed)
	require.NoError(t, err)
	b, err := maze.NewGenerator(seed)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		ga, err := a.Clustering(11, 9)
		require.NoError(t, err)
		gb, err := b.Clustering(11, 9)
		require.NoError(t, err)
		assert.Equal(t, ga.String(), gb.String())
	}
}

func TestClustering_MergeThreshold(t *testing.T) {
	passes := 0
	gen, err := maze.NewGenerator(rng.DefaultSeed,
		maze.WithMergeThreshold(math.MaxUint32),
		maze.WithOnScan(func(pass, _, _ int) { passes = pass }),
	)
	require.NoError(t, err)
	gr, err := gen.Clustering(15, 15)
	require.NoError(t, err)
	assert.Len(t, gr.ConnectedComponents(), 1)
	assert.Equal(t, 1, passes, "merging on every draw converges in one scan")
}
