package output_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pbsp/algorithms/bfs"
	"github.com/katalvlaran/pbsp/output"
	"github.com/katalvlaran/pbsp/pbsp/csr"
	"github.com/katalvlaran/pbsp/pbsp/vertex"
)

func TestWrite_BFS_RendersUnreachedSentinel(t *testing.T) {
	g := &csr.CSR{RowPtr: []int32{0, 0, 0}, V: 2}
	tab := vertex.NewTable(g)
	tab.Get(0).Value = 0
	tab.Get(1).Value = bfs.Unreached

	path := filepath.Join(t.TempDir(), "out.tsv")
	require.NoError(t, output.Write(path, "level", tab, bfs.Render))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "v_id\tlevel\n0\t0\n1\tunreached\n", string(got))
}

func TestWrite_EmptyGraph_HeaderOnly(t *testing.T) {
	g := &csr.CSR{RowPtr: []int32{0}, V: 0}
	tab := vertex.NewTable(g)

	path := filepath.Join(t.TempDir(), "out.tsv")
	require.NoError(t, output.Write(path, "component", tab, func(int32) string { return "" }))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "v_id\tcomponent\n", string(got))
}
