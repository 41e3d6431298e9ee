package trace

import (
	"github.com/ycyang0508/regbridge/bridge"
	"github.com/ycyang0508/regbridge/sim"
)

// transTableEntry flattens a bridge transaction for recording.
type transTableEntry struct {
	ID            string
	IsWrite       bool
	Address       uint64
	WriteData     uint64
	ReadData      uint64
	Err           bool
	AcceptCycle   uint64
	CompleteCycle uint64
}

// A Tracer is a hook that records completed bridge transactions into a
// DataRecorder.
type Tracer struct {
	backend DataRecorder
	table   string
}

// NewTracer creates a tracer that records into the given recorder. The
// transaction table is created immediately.
func NewTracer(recorder DataRecorder) *Tracer {
	t := &Tracer{
		backend: recorder,
		table:   "transactions",
	}

	recorder.CreateTable(t.table, transTableEntry{})

	return t
}

// Func records the transaction when the bridge completes it.
func (t *Tracer) Func(ctx sim.HookCtx) {
	if ctx.Pos != bridge.HookPosTransComplete {
		return
	}

	trans := ctx.Item.(bridge.Transaction)

	t.backend.InsertData(t.table, transTableEntry{
		ID:            trans.ID,
		IsWrite:       trans.IsWrite,
		Address:       trans.Address,
		WriteData:     trans.WriteData,
		ReadData:      trans.ReadData,
		Err:           trans.Err,
		AcceptCycle:   trans.AcceptCycle,
		CompleteCycle: trans.CompleteCycle,
	})
}

// CollectTrace attaches the tracer to a bridge.
func CollectTrace(b *bridge.Comp, t *Tracer) {
	b.AcceptHook(t)
}
