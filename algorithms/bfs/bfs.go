// Package bfs instantiates the BSP engine's vertex program interface for
// unweighted single-source breadth-first search.
//
// Program satisfies pbsp/engine.Program[int32] structurally: ProcessMessage
// keeps the minimum distance seen so far, SendMessage broadcasts
// value+1 to every out-neighbor. Both are commutative/associative per
// message-delivery ordering (min is) and read only their own vertex, so
// the program needs no engine import at all.
package bfs

import (
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/pbsp/pbsp/queue"
	"github.com/katalvlaran/pbsp/pbsp/vertex"
)

// Unreached is the sentinel distance for a vertex the search never
// reaches; it renders as "unreached" in output (see Render).
const Unreached int32 = math.MaxInt32

// Program is the BFS vertex program: level = hop count from the source.
type Program struct{}

// ProcessMessage keeps the smallest level seen so far.
func (Program) ProcessMessage(v *vertex.Vertex, msg queue.Message[int32]) {
	if msg.Payload < v.Value {
		v.Value = msg.Payload
	}
}

// SendMessage broadcasts this vertex's level+1 to the destination; the
// edge weight is ignored (BFS is unweighted).
func (Program) SendMessage(v *vertex.Vertex, outbox []queue.Message[int32], cursor int, destID int32, _ int32) {
	outbox[cursor] = queue.Message[int32]{Dest: destID, Payload: v.Value + 1}
}

// Init seeds BFS state: src gets (0, active); every other vertex gets
// (Unreached, inactive). Returns an error if src is out of [0, V).
func Init(t *vertex.Table, src int32) error {
	if src < 0 || int(src) >= t.Len() {
		return fmt.Errorf("bfs: source vertex %d out of range [0,%d)", src, t.Len())
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

// Render renders a BFS value for output.Write: Unreached becomes the
// literal "unreached", everything else is the integer hop count.
func Render(value int32) string {
	if value == Unreached {
		return "unreached"
	}

	return strconv.FormatInt(int64(value), 10)
}
