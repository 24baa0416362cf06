// Package builder_test contains functional tests for the Constructor
// implementations: topology, counts, payloads and determinism.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/builder"
	"github.com/katalvlaran/lvmaze/core"
	"github.com/katalvlaran/lvmaze/rng"
)

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ctor  builder.Constructor
		wantV int
		wantE int
		check func(t *testing.T, g *core.Graph)
	}{
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3,
			check: func(t *testing.T, g *core.Graph) {
				for _, pair := range [][2]string{{"0", "1"}, {"1", "2"}, {"2", "3"}} {
					assert.True(t, g.HasEdge(pair[0], pair[1]))
				}
				assert.False(t, g.HasEdge("0", "3"))
			},
		},
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5,
			check: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge("4", "0"))
			},
		},
		{
			name: "Grid(3x2)", ctor: builder.Grid(3, 2), wantV: 6, wantE: 7,
			check: func(t *testing.T, g *core.Graph) {
				nbs, err := g.Neighbors("1,0")
				require.NoError(t, err)
				assert.Equal(t, []string{"0,0", "2,0", "1,1"}, nbs)
				p, err := g.Payload("2,1")
				require.NoError(t, err)
				assert.Equal(t, core.Point{X: 2, Y: 1}, p)
			},
		},
		{
			name: "RandomSparse(6,1)", ctor: builder.RandomSparse(6, 1), wantV: 6, wantE: 15,
		},
		{
			name: "RandomSparse(6,0)", ctor: builder.RandomSparse(6, 0), wantV: 6, wantE: 0,
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			if tc.check != nil {
				tc.check(t, g)
			}
		})
	}
}

func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Path(1)", builder.Path(1), builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Grid(0,3)", builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"RandomSparse(0,.5)", builder.RandomSparse(0, .5), builder.ErrTooFewVertices},
		{"RandomSparse(3,1.5)", builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse(3,.5) no rng", builder.RandomSparse(3, .5), builder.ErrNeedRandSource},
		{"nil", nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(nil, nil, tc.ctor)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	// Two constructors producing the same IDs collide in core.
	_, err := builder.BuildGraph(nil, nil, builder.Path(3), builder.Path(3))
	assert.ErrorIs(t, err, core.ErrVertexExists)
}

func TestRandomSparse_Deterministic(t *testing.T) {
	t.Parallel()

	build := func() *core.Graph {
		g, err := builder.BuildGraph(
			[]core.GraphOption{core.WithWeighted()},
			[]builder.BuilderOption{
				builder.WithSeed(rng.Seed{7, 11, 13, 17}),
				builder.WithWeightFn(builder.UniformWeightFn(1, 20)),
			},
			builder.RandomSparse(10, 0.4),
		)
		require.NoError(t, err)
		return g
	}
	a, b := build(), build()
	assert.Equal(t, a.AdjacencyList(), b.AdjacencyList())
	assert.Equal(t, a.AdjacencyCosts(), b.AdjacencyCosts())
	for _, costs := range a.AdjacencyCosts() {
		for _, c := range costs {
			assert.GreaterOrEqual(t, c, int64(1))
			assert.LessOrEqual(t, c, int64(20))
		}
	}
}

func TestRandomSparse_Directed(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph([]core.GraphOption{core.WithDirected()}, nil, builder.RandomSparse(4, 1))
	require.NoError(t, err)
	assert.Equal(t, 12, g.EdgeCount())
	assert.True(t, g.HasEdge("3", "0"))
	assert.False(t, g.HasEdge("2", "2"))
}

func TestGrid_DirectedMirrors(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph([]core.GraphOption{core.WithDirected()}, nil, builder.Grid(2, 2))
	require.NoError(t, err)
	assert.Equal(t, 8, g.EdgeCount())
	assert.True(t, g.HasEdge("1,0", "0,0"))
	assert.True(t, g.HasEdge("0,1", "0,0"))
}
