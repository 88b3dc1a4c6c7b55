// Package engine implements the bulk-synchronous superstep driver: the
// write/deliver/process loop, the active-vertex lifecycle, and the
// termination rule.
//
// Scheduling is single-threaded and cooperative: a superstep is an
// uninterruptible sequence of three phases, and no locking is required
// because the phases never overlap (see design notes on a future
// parallel WRITE/PROCESS split — out of scope here). All allocations
// (CSR arrays, vertex table, message queues) happen before the first
// superstep; without a logger attached, Run performs no per-step
// allocation.
package engine

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/pbsp/pbsp/csr"
	"github.com/katalvlaran/pbsp/pbsp/queue"
	"github.com/katalvlaran/pbsp/pbsp/vertex"
)

// Engine orchestrates the BSP loop over a fixed CSR graph, vertex table,
// and message queues for a single Program instance.
type Engine[P any] struct {
	graph   *csr.CSR
	table   *vertex.Table
	queues  *queue.Queues[P]
	program Program[P]
	log     *logrus.Entry
}

// Option configures an Engine at construction.
type Option[P any] func(*Engine[P])

// WithLogger attaches a structured logger; superstep boundaries are
// logged at Debug and the engine is silent without one.
func WithLogger[P any](log *logrus.Entry) Option[P] {
	return func(e *Engine[P]) {
		e.log = log
	}
}

// New builds an Engine over g, driven by prog. The vertex table and
// message queues (capacity g.E) are allocated immediately; callers must
// run an algorithm-specific initializer against Vertices() to seed values
// and the active set before calling Run.
func New[P any](g *csr.CSR, prog Program[P], opts ...Option[P]) *Engine[P] {
	e := &Engine[P]{
		graph:   g,
		table:   vertex.NewTable(g),
		queues:  queue.New[P](g.E),
		program: prog,
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Vertices exposes the vertex table for initializer seeding and for
// reading final values after Run returns.
func (e *Engine[P]) Vertices() *vertex.Table {
	return e.table
}

// Run drives supersteps to quiescence:
//
//	phase WRITE (superstep 0 seed)
//	loop:
//	    if num_messages == 0: break
//	    phase DELIVER
//	    phase PROCESS
//	    phase WRITE
//
// It returns the total number of WRITE phases executed (the superstep
// count). Run assumes an initializer has already seeded Vertices();
// Engine performs no validation of algorithm parameters itself.
func (e *Engine[P]) Run() int {
	steps := 0
	e.write(steps)
	steps++

	for e.queues.Len() > 0 {
		e.deliver()
		e.process()
		e.write(steps)
		steps++
	}

	return steps
}

// write visits every vertex in id order; an active vertex emits exactly
// one message per out-edge, then is deactivated. Reactivation happens
// only in process.
func (e *Engine[P]) write(superstep int) {
	t := e.table
	out := e.queues.Outbox()
	cursor := 0
	for i := 0; i < t.Len(); i++ {
		v := t.Get(i)
		if !v.Active {
			continue
		}
		neighbors := t.Neighbors(i)
		weights := t.Weights(i)
		for j := range neighbors {
			e.program.SendMessage(v, out, cursor, neighbors[j], weights[j])
			cursor++
		}
		v.Active = false
	}
	e.queues.SetLen(cursor)

	if e.log != nil {
		e.log.WithFields(logrus.Fields{
			"phase":     "write",
			"superstep": superstep,
			"messages":  cursor,
		}).Debug("superstep boundary")
	}
}

// deliver moves the outbox into the inbox (a pointer swap; see pbsp/queue).
func (e *Engine[P]) deliver() {
	e.queues.Deliver()
}

// process folds every pending message into its destination vertex and
// reactivates any vertex whose Value strictly changed. Messages within a
// superstep are processed in outbox insertion order, but Program
// implementations must not rely on that order.
func (e *Engine[P]) process() {
	t := e.table
	in := e.queues.Inbox()
	n := e.queues.Len()
	for i := 0; i < n; i++ {
		m := in[i]
		v := t.Get(int(m.Dest))
		prev := v.Value
		e.program.ProcessMessage(v, m)
		if v.Value != prev && !v.Active {
			v.Active = true
		}
	}
	e.queues.Reset()
}
