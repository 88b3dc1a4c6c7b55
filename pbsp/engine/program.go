package engine

import (
	"github.com/katalvlaran/pbsp/pbsp/queue"
	"github.com/katalvlaran/pbsp/pbsp/vertex"
)

// Program is the vertex programming contract every algorithm
// instantiation (bfs, sssp, cc) satisfies. It is generic over the payload
// type P only: Engine holds the program as an interface value, so each
// ProcessMessage/SendMessage call is dispatched dynamically and is not
// specialized per algorithm type at build time.
type Program[P any] interface {
	// ProcessMessage folds a single inbound message into v's Value. It
	// must be pure with respect to the rest of the graph — it may read
	// and write only v, never the message queues or other vertices — and
	// commutative/associative with respect to v's final Value, since
	// delivery order within a superstep is not guaranteed.
	ProcessMessage(v *vertex.Vertex, msg queue.Message[P])

	// SendMessage computes and writes exactly one message at
	// outbox[cursor], addressed to destID, using v's own Value and the
	// supplied edge weight. It must not read the receiving vertex's state.
	SendMessage(v *vertex.Vertex, outbox []queue.Message[P], cursor int, destID int32, weight int32)
}
