package gridgraph_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpeel/gridgraph"
)

// componentSizes returns sorted component sizes.
func componentSizes(comps [][]gridgraph.Point) []int {
	sizes := make([]int, len(comps))
	for i, c := range comps {
		sizes[i] = len(c)
	}
	sort.Ints(sizes)

	return sizes
}

// TestConnectedComponents_Simple4 tests ConnectedComponents on a 4×3 grid
// with orthogonal connectivity.
//
//	. @ @ .
//	@ @ . .
//	. . @ @
//
// Expected: 2 islands of sizes 4 and 2.
func TestConnectedComponents_Simple4(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn4
	g, err := gridgraph.ParseString(".@@.\n@@..\n..@@\n", opts)
	require.NoError(t, err)
	require.Equal(t, []int{2, 4}, componentSizes(g.ConnectedComponents()))
}

// TestConnectedComponents_Diagonal8 joins an X shape through corner contacts.
//
//	@ . . . @
//	. @ . @ .
//	. . @ . .
//	. @ . @ .
//	@ . . . @
func TestConnectedComponents_Diagonal8(t *testing.T) {
	in := "@...@\n.@.@.\n..@..\n.@.@.\n@...@\n"

	g8, err := gridgraph.ParseString(in, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	require.Equal(t, []int{9}, componentSizes(g8.ConnectedComponents()))

	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn4
	g4, err := gridgraph.ParseString(in, opts)
	require.NoError(t, err)
	require.Len(t, g4.ConnectedComponents(), 9)
}

// TestConnectedComponents_Empty tests an all-inactive grid and a single cell.
func TestConnectedComponents_Empty(t *testing.T) {
	g, err := gridgraph.ParseString("..\n..\n", gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	require.Empty(t, g.ConnectedComponents())

	g.Set(gridgraph.Point{X: 1, Y: 0}, true)
	comps := g.ConnectedComponents()
	require.Len(t, comps, 1)
	require.Equal(t, []gridgraph.Point{{X: 1, Y: 0}}, comps[0])
}
