// Package dynarray provides a growable, append-only sequence of int32
// values used while streaming an edgelist into compressed-sparse-row form.
//
// IntBuffer is intentionally minimal: push, len, and a view of the
// accumulated values. It is used only during graph ingestion (see
// pbsp/csr) and is discarded once the CSR arrays are in hand.
package dynarray

// IntBuffer is a growable contiguous sequence of int32 values with
// amortized O(1) append. It starts at capacity 2 and doubles on
// exhaustion.
type IntBuffer struct {
	data []int32
}

// NewIntBuffer returns an empty IntBuffer with an initial capacity of 2.
func NewIntBuffer() *IntBuffer {
	return &IntBuffer{data: make([]int32, 0, 2)}
}

// Push appends v, doubling the backing array's capacity when it is full.
func (b *IntBuffer) Push(v int32) {
	if len(b.data) == cap(b.data) {
		grown := make([]int32, len(b.data), max(2, 2*cap(b.data)))
		copy(grown, b.data)
		b.data = grown
	}
	b.data = append(b.data, v)
}

// Len returns the number of values appended so far.
func (b *IntBuffer) Len() int {
	return len(b.data)
}

// AsSlice returns the appended values in append order. The returned slice
// aliases IntBuffer's backing array; callers that need an independent copy
// must clone it themselves.
func (b *IntBuffer) AsSlice() []int32 {
	return b.data
}
