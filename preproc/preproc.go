// Package preproc implements the edgelist preprocessor the engine
// consumes its graphs from: it removes duplicates and self-loops, removes
// reverse edges (picking one orientation), relabels vertex ids to a
// contiguous range from 0, optionally synthesizes pseudo-random weights,
// then symmetrizes (adds reverse edges) and sorts — yielding exactly the
// sorted, contiguous, weighted edgelist pbsp/csr.LoadEdgeList expects.
//
// Duplicate removal happens before reverse-edge removal: on an asymmetric
// raw input, an edge (u, v) with no matching (v, u) survives as-is and is
// only later symmetrized. Applying Preprocess to its own output is
// idempotent (see preproc_test.go's round-trip case).
package preproc

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/xerrors"
)

// rawEdge is a parsed input line before relabeling: original (possibly
// non-contiguous, unsorted) vertex ids and an optional explicit weight.
type rawEdge struct {
	u, v     int64
	weight   int32
	hasWeight bool
}

// Preprocess reads inPath, applies the pipeline described in the package
// doc, and writes the result to outPath in the engine's native tabedgelist
// format. When weighted is true, edges with no explicit weight field get a
// deterministic pseudo-random weight in [0, 100); edges that already carry
// a weight keep it unchanged (this is what makes round-tripping an
// already-weighted file stable). When weighted is false, all edges are
// written unweighted (two columns).
func Preprocess(inPath, outPath string, weighted bool) error {
	edges, err := parseRawEdgeList(inPath)
	if err != nil {
		return err
	}

	edges = removeSelfLoops(edges)
	edges = dedupExact(edges)
	edges = removeReverseDuplicates(edges)

	relabel := relabelContiguous(edges)
	for i := range edges {
		edges[i].u = int64(relabel[edges[i].u])
		edges[i].v = int64(relabel[edges[i].v])
	}

	if weighted {
		synthesizeWeights(edges)
	}

	edges = symmetrize(edges)
	sortEdges(edges)

	return writeEdgeList(outPath, edges, weighted)
}

func parseRawEdgeList(path string) ([]rawEdge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, xerrors.Errorf("preproc: open %s: %w", path, err)
	}
	defer f.Close()

	var (
		edges  []rawEdge
		lineNo int
		errs   *multierror.Error
	)

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 16<<20)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(strings.ReplaceAll(line, "\t", " "))
		if len(fields) != 2 && len(fields) != 3 {
			errs = multierror.Append(errs, fmt.Errorf("line %d: expected 2 or 3 fields, got %d", lineNo, len(fields)))
			continue
		}
		u, uErr := strconv.ParseInt(fields[0], 10, 64)
		v, vErr := strconv.ParseInt(fields[1], 10, 64)
		if uErr != nil || vErr != nil || u < 0 || v < 0 {
			errs = multierror.Append(errs, fmt.Errorf("line %d: src/dst must be non-negative integers", lineNo))
			continue
		}
		e := rawEdge{u: u, v: v}
		if len(fields) == 3 {
			w, wErr := strconv.ParseInt(fields[2], 10, 32)
			if wErr != nil {
				errs = multierror.Append(errs, fmt.Errorf("line %d: weight must be an integer", lineNo))
				continue
			}
			e.weight = int32(w)
			e.hasWeight = true
		}
		edges = append(edges, e)
	}
	if scErr := sc.Err(); scErr != nil {
		errs = multierror.Append(errs, fmt.Errorf("reading %s: %w", path, scErr))
	}
	if errs.ErrorOrNil() != nil {
		return nil, xerrors.Errorf("preproc: %s: %w", path, errs)
	}

	return edges, nil
}

func removeSelfLoops(edges []rawEdge) []rawEdge {
	out := edges[:0]
	for _, e := range edges {
		if e.u != e.v {
			out = append(out, e)
		}
	}

	return out
}

func dedupExact(edges []rawEdge) []rawEdge {
	seen := make(map[[2]int64]bool, len(edges))
	out := make([]rawEdge, 0, len(edges))
	for _, e := range edges {
		key := [2]int64{e.u, e.v}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, e)
	}

	return out
}

// removeReverseDuplicates walks edges in their current order and, for each
// unordered pair {a, b}, keeps only the first orientation encountered:
// once (a, b) is kept, a later (b, a) is dropped. An edge whose reverse
// never appears survives untouched, as the package doc describes.
func removeReverseDuplicates(edges []rawEdge) []rawEdge {
	keptPair := make(map[[2]int64]bool, len(edges))
	out := make([]rawEdge, 0, len(edges))
	for _, e := range edges {
		reverse := [2]int64{e.v, e.u}
		if keptPair[reverse] {
			continue
		}
		keptPair[[2]int64{e.u, e.v}] = true
		out = append(out, e)
	}

	return out
}

// relabelContiguous assigns new ids 0..V-1 to the distinct original ids
// seen across edges, ascending by original id.
func relabelContiguous(edges []rawEdge) map[int64]int64 {
	seen := make(map[int64]bool)
	for _, e := range edges {
		seen[e.u] = true
		seen[e.v] = true
	}
	ids := make([]int64, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	relabel := make(map[int64]int64, len(ids))
	for newID, oldID := range ids {
		relabel[oldID] = int64(newID)
	}

	return relabel
}

func synthesizeWeights(edges []rawEdge) {
	rng := rngFromSeed(defaultSeed)
	for i := range edges {
		if edges[i].hasWeight {
			continue
		}
		edges[i].weight = int32(rng.Intn(100))
		edges[i].hasWeight = true
	}
}

// symmetrize adds the reverse of every edge. removeReverseDuplicates has
// already dropped any edge whose reverse was present, and self-loops were
// removed earlier, so no added reverse duplicates an existing edge.
func symmetrize(edges []rawEdge) []rawEdge {
	out := make([]rawEdge, 0, len(edges)*2)
	out = append(out, edges...)
	for _, e := range edges {
		rev := e
		rev.u, rev.v = e.v, e.u
		out = append(out, rev)
	}

	return out
}

func sortEdges(edges []rawEdge) {
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].u != edges[j].u {
			return edges[i].u < edges[j].u
		}
		return edges[i].v < edges[j].v
	})
}

func writeEdgeList(path string, edges []rawEdge, weighted bool) error {
	f, err := os.Create(path)
	if err != nil {
		return xerrors.Errorf("preproc: create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, e := range edges {
		if weighted {
			weight := e.weight
			if !e.hasWeight {
				weight = 1
			}
			if _, err := fmt.Fprintf(w, "%d\t%d\t%d\n", e.u, e.v, weight); err != nil {
				return xerrors.Errorf("preproc: write %s: %w", path, err)
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "%d\t%d\n", e.u, e.v); err != nil {
			return xerrors.Errorf("preproc: write %s: %w", path, err)
		}
	}

	return w.Flush()
}
