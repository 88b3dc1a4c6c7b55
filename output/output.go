// Package output writes the engine's final per-vertex values as a
// deterministic, tab-separated text file: a header line naming the
// algorithm's metric, then one row per vertex in ascending id order.
package output

import (
	"bufio"
	"fmt"
	"os"

	"github.com/katalvlaran/pbsp/pbsp/vertex"
)

// Render maps a vertex's raw int32 value to its textual form, applying
// any algorithm-specific sentinel rendering (e.g. BFS's "unreached",
// SSSP's "inf").
type Render func(value int32) string

// Write emits path as "v_id\t<metric>\n" followed by one "<id>\t<rendered>"
// line per vertex, in ascending id order.
func Write(path, metric string, t *vertex.Table, render Render) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("output: create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if _, err := fmt.Fprintf(w, "v_id\t%s\n", metric); err != nil {
		return fmt.Errorf("output: write header: %w", err)
	}
	for i := 0; i < t.Len(); i++ {
		v := t.Get(i)
		if _, err := fmt.Fprintf(w, "%d\t%s\n", v.ID, render(v.Value)); err != nil {
			return fmt.Errorf("output: write row %d: %w", i, err)
		}
	}

	return w.Flush()
}
