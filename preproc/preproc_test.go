package preproc_test

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pbsp/preproc"
)

func writeTemp(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestPreprocess_GraphD_SelfLoopAndDuplicateCollapse(t *testing.T) {
	in := writeTemp(t, "raw.txt", "0 0\n0 1\n0 1\n1 0\n")
	out := filepath.Join(t.TempDir(), "out.el")

	require.NoError(t, preproc.Preprocess(in, out, false))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, "0\t1\n1\t0\n", string(got))
}

func TestPreprocess_RoundTrip_Idempotent(t *testing.T) {
	in := writeTemp(t, "raw.txt", "2 0\n0 1\n1 2\n5 2\n")

	once := filepath.Join(t.TempDir(), "once.el")
	twice := filepath.Join(t.TempDir(), "twice.el")

	require.NoError(t, preproc.Preprocess(in, once, true))
	require.NoError(t, preproc.Preprocess(once, twice, true))

	onceBytes, err := os.ReadFile(once)
	require.NoError(t, err)
	twiceBytes, err := os.ReadFile(twice)
	require.NoError(t, err)
	require.Equal(t, string(onceBytes), string(twiceBytes))
}

func TestPreprocess_RelabelsToContiguousIDs(t *testing.T) {
	// raw ids are sparse (0, 3, 7); relabeling must compress them to 0,1,2
	in := writeTemp(t, "raw.txt", "0 3\n3 7\n")
	out := filepath.Join(t.TempDir(), "out.el")
	require.NoError(t, preproc.Preprocess(in, out, false))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, "0\t1\n1\t0\n1\t2\n2\t1\n", string(got))
}

func TestPreprocess_WeightedSynthesizesInRange(t *testing.T) {
	in := writeTemp(t, "raw.txt", "0 1\n")
	out := filepath.Join(t.TempDir(), "out.el")
	require.NoError(t, preproc.Preprocess(in, out, true))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	require.NotEmpty(t, got)

	lines := strings.Split(strings.TrimRight(string(got), "\n"), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		fields := strings.Split(line, "\t")
		require.Len(t, fields, 3)
		w, err := strconv.Atoi(fields[2])
		require.NoError(t, err)
		require.GreaterOrEqual(t, w, 0)
		require.Less(t, w, 100)
	}
}

func TestPreprocess_RejectsMalformedLine(t *testing.T) {
	in := writeTemp(t, "raw.txt", "0 x\n")
	out := filepath.Join(t.TempDir(), "out.el")
	require.Error(t, preproc.Preprocess(in, out, false))
}
