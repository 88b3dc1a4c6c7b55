// Package vertex holds the per-vertex state table the engine drives
// through supersteps: one record per vertex carrying its id, user-visible
// value, active flag, and non-owning views into the CSR's out-edge
// slices.
//
// A Table is built once from a csr.CSR and then mutated only by an
// algorithm's initializer and the superstep driver (pbsp/engine). Vertex
// records own nothing; the Table and the CSR it was built from own the
// backing arrays, and a Table must not outlive its CSR.
package vertex

import "github.com/katalvlaran/pbsp/pbsp/csr"

// Vertex is one record in a Table: identity, algorithm-interpreted value,
// activation flag, and a non-owning offset+length view of its out-edges.
type Vertex struct {
	// ID is this vertex's position in [0, V).
	ID int32

	// Value is interpreted by the active algorithm (distance, component
	// label, ...). Zero-valued until an algorithm's initializer runs.
	Value int32

	// Active marks whether this vertex will emit messages on the next
	// WRITE phase.
	Active bool

	neighborOff int32
	degree      int32
}

// Table is the engine's vertex state table: V records in id order, each
// holding a slice view into the owning CSR's ColIdx/EdgeWeight arrays.
type Table struct {
	graph *csr.CSR
	verts []Vertex
}

// NewTable builds a Table of g.V records. Every record starts with
// Value=0, Active=false, and the neighbor/weight slice view implied by
// g.RowPtr; an algorithm's initializer is expected to overwrite Value and
// Active before the first superstep.
func NewTable(g *csr.CSR) *Table {
	t := &Table{
		graph: g,
		verts: make([]Vertex, g.V),
	}
	for i := 0; i < g.V; i++ {
		t.verts[i] = Vertex{
			ID:          int32(i),
			neighborOff: g.RowPtr[i],
			degree:      g.RowPtr[i+1] - g.RowPtr[i],
		}
	}

	return t
}

// Len returns the vertex count V.
func (t *Table) Len() int {
	return len(t.verts)
}

// Get returns a pointer to the i-th vertex record for in-place mutation.
func (t *Table) Get(i int) *Vertex {
	return &t.verts[i]
}

// Degree returns vertex i's out-degree.
func (t *Table) Degree(i int) int32 {
	return t.verts[i].degree
}

// Neighbors returns vertex i's out-neighbor ids, aligned with Weights(i).
// The returned slice aliases the owning CSR's ColIdx and must not be
// mutated.
func (t *Table) Neighbors(i int) []int32 {
	v := &t.verts[i]

	return t.graph.ColIdx[v.neighborOff : v.neighborOff+v.degree]
}

// Weights returns vertex i's out-edge weights, aligned with Neighbors(i).
// The returned slice aliases the owning CSR's EdgeWeight and must not be
// mutated.
func (t *Table) Weights(i int) []int32 {
	v := &t.verts[i]

	return t.graph.EdgeWeight[v.neighborOff : v.neighborOff+v.degree]
}
