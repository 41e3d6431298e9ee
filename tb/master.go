// Package tb provides a testbench that drives the handshake bridge with a
// scripted bus master and wires it to a register-access backend.
package tb

import (
	"github.com/ycyang0508/regbridge/hostbus"
	"github.com/ycyang0508/regbridge/sim"
)

// An Op is one scripted bus operation.
type Op struct {
	IsWrite bool
	Address uint64
	Data    uint64

	// Idle is the number of cycles the master stays idle before asserting
	// select for this operation.
	Idle int
}

// A Completion records the outcome of one operation as observed on the bus.
type Completion struct {
	Op       Op
	ReadData uint64
	Err      bool
	Cycle    uint64
}

// A Master is a scripted bus master. It issues the queued operations one at
// a time, holding select until ready is observed, as the bus protocol
// requires.
type Master struct {
	name  string
	queue sim.Buffer

	current  *Op
	idleLeft int
	cycle    uint64

	completions []Completion
}

// NewMaster creates a bus master that can hold up to queueCap pending
// operations.
func NewMaster(name string, queueCap int) *Master {
	return &Master{
		name:  name,
		queue: sim.NewBuffer(name+".OpQueue", queueCap),
	}
}

// Name returns the name of the master.
func (m *Master) Name() string {
	return m.name
}

// Enqueue adds an operation to the script.
func (m *Master) Enqueue(op Op) {
	m.queue.Push(op)
}

// Drive returns the bus request signals the master drives this cycle.
func (m *Master) Drive() hostbus.Request {
	if m.current == nil || m.idleLeft > 0 {
		return hostbus.Request{}
	}

	return hostbus.Request{
		Select:      true,
		WriteEnable: m.current.IsWrite,
		Address:     m.current.Address,
		WriteData:   m.current.Data,
	}
}

// ClockEdge advances the master by one clock edge, sampling the bus
// response of the ending cycle.
func (m *Master) ClockEdge(rsp hostbus.Response) {
	switch {
	case m.current == nil:
		m.loadNext()
	case m.idleLeft > 0:
		m.idleLeft--
	case rsp.Ready:
		m.completions = append(m.completions, Completion{
			Op:       *m.current,
			ReadData: rsp.ReadData,
			Err:      rsp.Err,
			Cycle:    m.cycle,
		})
		m.current = nil
		m.loadNext()
	}

	m.cycle++
}

func (m *Master) loadNext() {
	e := m.queue.Pop()
	if e == nil {
		return
	}

	op := e.(Op)
	m.current = &op
	m.idleLeft = op.Idle
}

// Done returns whether the script is exhausted.
func (m *Master) Done() bool {
	return m.current == nil && m.queue.Size() == 0
}

// Completions returns the recorded operation outcomes.
func (m *Master) Completions() []Completion {
	return m.completions
}
