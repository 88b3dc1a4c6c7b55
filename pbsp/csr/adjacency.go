package csr

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/xerrors"
)

// LoadAdjacencyList loads the secondary, compatibility-only graph format:
// one vertex per line, space-separated, "vertex_id neighbor1 neighbor2 ...".
// Lines must appear in vertex-id order starting at 0, matching the
// contiguous-id precondition the rest of the engine assumes. Weights are
// not supported in this format; every edge gets weight 1.
//
// Unlike LoadEdgeList, this path materializes an adjacency list in memory
// first and then transposes it into CSR form, mirroring the original
// Worker framework's adjacency-list ingestion path. It exists for
// compatibility and is not wired into the bfs/sssp/cc drivers, which only
// consume the edgelist format.
func LoadAdjacencyList(path string) (*CSR, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrOpenFailed, path, err)
	}
	defer f.Close()

	var (
		rows   [][]int32
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
		fields := strings.Fields(line)
		id, idErr := strconv.ParseInt(fields[0], 10, 32)
		if idErr != nil {
			errs = multierror.Append(errs, fmt.Errorf("line %d: vertex id must be an integer", lineNo))
			continue
		}
		if int(id) != len(rows) {
			errs = multierror.Append(errs, fmt.Errorf("line %d: vertex id %d out of sequence (expected %d); ids must be contiguous from 0, one per line in order", lineNo, id, len(rows)))
			continue
		}

		neighbors := make([]int32, 0, len(fields)-1)
		for _, nf := range fields[1:] {
			n, nErr := strconv.ParseInt(nf, 10, 32)
			if nErr != nil || n < 0 {
				errs = multierror.Append(errs, fmt.Errorf("line %d: neighbor %q must be a non-negative integer", lineNo, nf))
				continue
			}
			neighbors = append(neighbors, int32(n))
		}
		rows = append(rows, neighbors)
	}
	if scErr := sc.Err(); scErr != nil {
		errs = multierror.Append(errs, fmt.Errorf("reading %s: %w", path, scErr))
	}
	if errs.ErrorOrNil() != nil {
		return nil, xerrors.Errorf("%w: %s: %v", ErrMalformed, path, errs)
	}

	v := len(rows)
	rowPtr := make([]int32, v+1)
	colIdx := make([]int32, 0)
	for i, neighbors := range rows {
		rowPtr[i] = int32(len(colIdx))
		colIdx = append(colIdx, neighbors...)
	}
	rowPtr[v] = int32(len(colIdx))

	weights := make([]int32, len(colIdx))
	for i := range weights {
		weights[i] = 1
	}

	return &CSR{
		RowPtr:     rowPtr,
		ColIdx:     colIdx,
		EdgeWeight: weights,
		V:          v,
		E:          len(colIdx),
	}, nil
}
