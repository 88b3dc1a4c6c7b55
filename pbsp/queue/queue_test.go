package queue_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pbsp/pbsp/queue"
)

func TestQueues_NullEntriesOnAllocation(t *testing.T) {
	q := queue.New[int32](4)
	require.Equal(t, 0, q.Len())
	for _, m := range q.Outbox() {
		require.Equal(t, int32(-1), m.Dest)
	}
	for _, m := range q.Inbox() {
		require.Equal(t, int32(-1), m.Dest)
	}
}

func TestQueues_WriteDeliverReadCycle(t *testing.T) {
	q := queue.New[int32](4)

	out := q.Outbox()
	out[0] = queue.Message[int32]{Dest: 2, Payload: 9}
	out[1] = queue.Message[int32]{Dest: 3, Payload: 7}
	q.SetLen(2)
	require.Equal(t, 2, q.Len())

	q.Deliver()
	require.Equal(t, 2, q.Len(), "Deliver must not change the count")

	in := q.Inbox()[:q.Len()]
	require.Equal(t, []queue.Message[int32]{{Dest: 2, Payload: 9}, {Dest: 3, Payload: 7}}, in)

	q.Reset()
	require.Equal(t, 0, q.Len())
}
