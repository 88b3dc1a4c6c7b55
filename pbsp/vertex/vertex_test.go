package vertex_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pbsp/pbsp/csr"
	"github.com/katalvlaran/pbsp/pbsp/vertex"
)

func TestNewTable_SeedsFromCSR(t *testing.T) {
	g := &csr.CSR{
		RowPtr:     []int32{0, 2, 2, 3},
		ColIdx:     []int32{1, 2, 0},
		EdgeWeight: []int32{5, 7, 9},
		V:          3,
		E:          3,
	}
	tab := vertex.NewTable(g)
	require.Equal(t, 3, tab.Len())

	v0 := tab.Get(0)
	require.Equal(t, int32(0), v0.ID)
	require.Equal(t, int32(0), v0.Value)
	require.False(t, v0.Active)
	require.Equal(t, []int32{1, 2}, tab.Neighbors(0))
	require.Equal(t, []int32{5, 7}, tab.Weights(0))
	require.Equal(t, int32(2), tab.Degree(0))

	require.Empty(t, tab.Neighbors(1))
	require.Equal(t, int32(0), tab.Degree(1))

	require.Equal(t, []int32{0}, tab.Neighbors(2))
}

func TestTable_Get_MutatesInPlace(t *testing.T) {
	g := &csr.CSR{RowPtr: []int32{0, 0}, V: 1}
	tab := vertex.NewTable(g)
	tab.Get(0).Value = 42
	tab.Get(0).Active = true
	require.Equal(t, int32(42), tab.Get(0).Value)
	require.True(t, tab.Get(0).Active)
}
