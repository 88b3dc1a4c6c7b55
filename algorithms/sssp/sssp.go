// Package sssp instantiates the BSP engine's vertex program interface for
// single-source shortest path over non-negative integer edge weights.
package sssp

import (
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/pbsp/pbsp/queue"
	"github.com/katalvlaran/pbsp/pbsp/vertex"
)

// Unreached is the sentinel distance for a vertex the search never
// reaches; it renders as "inf" in output (see Render).
const Unreached int32 = math.MaxInt32

// Program is the SSSP vertex program: value = shortest distance from the
// source seen so far.
type Program struct{}

// ProcessMessage keeps the smallest distance seen so far.
func (Program) ProcessMessage(v *vertex.Vertex, msg queue.Message[int32]) {
	if msg.Payload < v.Value {
		v.Value = msg.Payload
	}
}

// SendMessage relaxes this vertex's distance across the edge weight.
func (Program) SendMessage(v *vertex.Vertex, outbox []queue.Message[int32], cursor int, destID int32, weight int32) {
	outbox[cursor] = queue.Message[int32]{Dest: destID, Payload: v.Value + weight}
}

// Init seeds SSSP state: src gets (0, active); every other vertex gets
// (Unreached, inactive). Returns an error if src is out of [0, V).
func Init(t *vertex.Table, src int32) error {
	if src < 0 || int(src) >= t.Len() {
		return fmt.Errorf("sssp: source vertex %d out of range [0,%d)", src, t.Len())
	}
	for i := 0; i < t.Len(); i++ {
		v := t.Get(i)
		v.Value = Unreached
		v.Active = false
	}
	s := t.Get(int(src))
	s.Value = 0
	s.Active = true

	return nil
}

// Render renders an SSSP value for output.Write: Unreached becomes the
// literal "inf", everything else is the integer distance.
func Render(value int32) string {
	if value == Unreached {
		return "inf"
	}

	return strconv.FormatInt(int64(value), 10)
}
