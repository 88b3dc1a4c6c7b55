// Package cc instantiates the BSP engine's vertex program interface for
// weakly connected components via label propagation: every vertex starts
// labeled with its own id, and the minimum label in a component wins.
package cc

import (
	"strconv"

	"github.com/katalvlaran/pbsp/pbsp/queue"
	"github.com/katalvlaran/pbsp/pbsp/vertex"
)

// Program is the connected-components vertex program: value = the
// smallest vertex id reachable so far, which converges to the component's
// minimum id.
type Program struct{}

// ProcessMessage keeps the smallest label seen so far.
func (Program) ProcessMessage(v *vertex.Vertex, msg queue.Message[int32]) {
	if msg.Payload < v.Value {
		v.Value = msg.Payload
	}
}

// SendMessage propagates this vertex's current label unchanged; CC does
// not use edge weights.
func (Program) SendMessage(v *vertex.Vertex, outbox []queue.Message[int32], cursor int, destID int32, _ int32) {
	outbox[cursor] = queue.Message[int32]{Dest: destID, Payload: v.Value}
}

// Init seeds every vertex to its own id, active, so the first WRITE
// broadcasts every vertex's label to its neighbors.
func Init(t *vertex.Table) {
	for i := 0; i < t.Len(); i++ {
		v := t.Get(i)
		v.Value = int32(i)
		v.Active = true
	}
}

// Render renders a CC value for output.Write: component labels are always
// plain integers, with no sentinel case.
func Render(value int32) string {
	return strconv.FormatInt(int64(value), 10)
}
