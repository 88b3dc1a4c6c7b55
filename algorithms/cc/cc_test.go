package cc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pbsp/algorithms/cc"
	"github.com/katalvlaran/pbsp/pbsp/csr"
	"github.com/katalvlaran/pbsp/pbsp/engine"
)

func TestCC_GraphA_SingleComponent(t *testing.T) {
	// symmetrized path 0-1-2-3: one component labeled 0
	g := &csr.CSR{
		RowPtr:     []int32{0, 1, 3, 5, 6},
		ColIdx:     []int32{1, 0, 2, 1, 3, 2},
		EdgeWeight: []int32{1, 1, 1, 1, 1, 1},
		V:          4, E: 6,
	}
	e := engine.New[int32](g, cc.Program{})
	cc.Init(e.Vertices())
	e.Run()

	tab := e.Vertices()
	for i := 0; i < 4; i++ {
		require.Equal(t, int32(0), tab.Get(i).Value, "vertex %d", i)
	}
}

func TestCC_GraphC_TwoComponents(t *testing.T) {
	// edges 0-1, 2-3 (symmetrized): components {0,1} and {2,3}
	g := &csr.CSR{
		RowPtr:     []int32{0, 1, 2, 3, 4},
		ColIdx:     []int32{1, 0, 3, 2},
		EdgeWeight: []int32{1, 1, 1, 1},
		V:          4, E: 4,
	}
	e := engine.New[int32](g, cc.Program{})
	cc.Init(e.Vertices())
	e.Run()

	tab := e.Vertices()
	require.Equal(t, int32(0), tab.Get(0).Value)
	require.Equal(t, int32(0), tab.Get(1).Value)
	require.Equal(t, int32(2), tab.Get(2).Value)
	require.Equal(t, int32(2), tab.Get(3).Value)
}

func TestCC_GraphD_SelfLoopAndDuplicateCollapse(t *testing.T) {
	// preprocessed form retains only 0-1 (single undirected edge)
	g := &csr.CSR{
		RowPtr:     []int32{0, 1, 2},
		ColIdx:     []int32{1, 0},
		EdgeWeight: []int32{1, 1},
		V:          2, E: 2,
	}
	e := engine.New[int32](g, cc.Program{})
	cc.Init(e.Vertices())
	e.Run()

	tab := e.Vertices()
	require.Equal(t, int32(0), tab.Get(0).Value)
	require.Equal(t, int32(0), tab.Get(1).Value)
}
