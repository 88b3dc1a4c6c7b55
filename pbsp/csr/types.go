// Package csr loads a sorted weighted edgelist (or, for compatibility, a
// space-separated adjacency list) into a compressed-sparse-row graph:
// three parallel arrays RowPtr, ColIdx, EdgeWeight.
//
// Once loaded, a CSR is immutable and owns its backing arrays; callers
// (pbsp/vertex, pbsp/engine) hold only offset+length views into it and
// must not let those views outlive the CSR.
//
// Errors:
//
//	ErrOpenFailed  - the input file could not be opened.
//	ErrMalformed   - one or more lines failed to parse or violated the
//	                 sortedness/field-count/non-negative-id preconditions,
//	                 or reading the file failed part-way; the error message
//	                 names every offending line.
package csr

import "errors"

// Sentinel errors for CSR loading.
var (
	// ErrOpenFailed indicates the input file could not be opened.
	ErrOpenFailed = errors.New("csr: failed to open input file")

	// ErrMalformed indicates one or more input lines were rejected.
	ErrMalformed = errors.New("csr: malformed input")
)

// CSR is the engine's immutable compressed-sparse-row graph representation.
//
//	RowPtr     - length V+1; RowPtr[v]..RowPtr[v+1] bounds v's out-edge slice.
//	ColIdx     - length E; sorted out-neighbor ids per source vertex.
//	EdgeWeight - length E; aligned with ColIdx.
//	V, E       - vertex and edge counts, derived from the array lengths.
type CSR struct {
	RowPtr     []int32
	ColIdx     []int32
	EdgeWeight []int32
	V          int
	E          int
}

// Neighbors returns the out-neighbor id slice for vertex v. The returned
// slice aliases CSR's backing array and must not be mutated.
func (g *CSR) Neighbors(v int32) []int32 {
	return g.ColIdx[g.RowPtr[v]:g.RowPtr[v+1]]
}

// Weights returns the out-edge weight slice for vertex v, aligned with
// Neighbors(v).
func (g *CSR) Weights(v int32) []int32 {
	return g.EdgeWeight[g.RowPtr[v]:g.RowPtr[v+1]]
}

// Degree returns the number of out-edges of vertex v.
func (g *CSR) Degree(v int32) int32 {
	return g.RowPtr[v+1] - g.RowPtr[v]
}
