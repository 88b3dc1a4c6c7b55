package csr

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/xerrors"

	"github.com/katalvlaran/pbsp/pbsp/dynarray"
)

// LoadEdgeList streams a tab-separated edgelist ("src\tdst" or
// "src\tdst\tweight", one edge per line, sorted by src ascending) and
// builds the CSR directly in a single pass.
//
// Algorithm (mirrors the engine's defining streaming construction):
// maintain the most recently seen src (lastSrc, initially -1) and three
// growable buffers R, C, W plus a running edgeCount. For each edge
// (u, v, w): if u != lastSrc, push edgeCount onto R and set lastSrc = u;
// push v onto C, w onto W, and increment edgeCount; track the maximum dst
// seen. After EOF, push edgeCount onto R once more, then, if the maximum
// dst exceeds lastSrc, push edgeCount an additional (maxDst - lastSrc)
// times to create empty rows for high-id sink-only vertices.
//
// Per-line failures (wrong field count, non-integer or negative ids,
// out-of-order src) are accumulated across the whole pass in a
// *multierror.Error and reported together in the message of a single
// error wrapping ErrMalformed; the engine's invariants around
// self-loops and duplicate edges are preprocessing's responsibility (see
// the preproc package) and are not re-validated here.
func LoadEdgeList(path string) (*CSR, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrOpenFailed, path, err)
	}
	defer f.Close()

	var (
		r         = dynarray.NewIntBuffer()
		c         = dynarray.NewIntBuffer()
		w         = dynarray.NewIntBuffer()
		lastSrc   int32 = -1
		maxDst    int32 = -1
		edgeCount int32
		lineNo    int
		errs      *multierror.Error
	)

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 16<<20)
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 2 && len(fields) != 3 {
			errs = multierror.Append(errs, fmt.Errorf("line %d: expected 2 or 3 tab-separated fields, got %d", lineNo, len(fields)))
			continue
		}
		u, uErr := strconv.ParseInt(fields[0], 10, 32)
		v, vErr := strconv.ParseInt(fields[1], 10, 32)
		if uErr != nil || vErr != nil {
			errs = multierror.Append(errs, fmt.Errorf("line %d: src/dst must be integers", lineNo))
			continue
		}
		if u < 0 || v < 0 {
			errs = multierror.Append(errs, fmt.Errorf("line %d: vertex ids must be non-negative", lineNo))
			continue
		}
		weight := int32(1)
		if len(fields) == 3 {
			parsed, wErr := strconv.ParseInt(fields[2], 10, 32)
			if wErr != nil {
				errs = multierror.Append(errs, fmt.Errorf("line %d: weight must be an integer", lineNo))
				continue
			}
			weight = int32(parsed)
		}
		if int32(u) < lastSrc {
			errs = multierror.Append(errs, fmt.Errorf("line %d: src %d out of order (must be >= %d); edgelist must be sorted by src ascending", lineNo, u, lastSrc))
			continue
		}

		if int32(u) != lastSrc {
			r.Push(edgeCount)
			lastSrc = int32(u)
		}
		c.Push(int32(v))
		w.Push(weight)
		edgeCount++
		if int32(v) > maxDst {
			maxDst = int32(v)
		}
	}
	if scErr := sc.Err(); scErr != nil {
		errs = multierror.Append(errs, fmt.Errorf("reading %s: %w", path, scErr))
	}
	if errs.ErrorOrNil() != nil {
		return nil, xerrors.Errorf("%w: %s: %v", ErrMalformed, path, errs)
	}

	r.Push(edgeCount)
	if maxDst > lastSrc {
		for i := int32(0); i < maxDst-lastSrc; i++ {
			r.Push(edgeCount)
		}
	}

	g := &CSR{
		RowPtr:     r.AsSlice(),
		ColIdx:     c.AsSlice(),
		EdgeWeight: w.AsSlice(),
	}
	g.V = len(g.RowPtr) - 1
	g.E = len(g.ColIdx)

	return g, nil
}
