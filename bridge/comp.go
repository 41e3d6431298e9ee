// Package bridge implements the handshake bridge that adapts the host bus
// into the internal request/acknowledge protocol.
package bridge

import (
	"github.com/ycyang0508/regbridge/hostbus"
	"github.com/ycyang0508/regbridge/regif"
	"github.com/ycyang0508/regbridge/sim"
)

// HookPosTransAccept marks the clock edge on which the bridge accepts a bus
// transaction into its transaction latch.
var HookPosTransAccept = &sim.HookPos{Name: "Bridge Trans Accept"}

// HookPosTransComplete marks the clock edge on which the backend
// acknowledges the in-flight transaction.
var HookPosTransComplete = &sim.HookPos{Name: "Bridge Trans Complete"}

// Transaction describes one bus transaction as it moves through the bridge.
// It is the Item of the transaction hook positions.
type Transaction struct {
	ID            string
	IsWrite       bool
	Address       uint64
	WriteData     uint64
	ReadData      uint64
	Err           bool
	AcceptCycle   uint64
	CompleteCycle uint64
}

// Comp is the handshake bridge. It holds at most one in-flight transaction:
// the bus-facing side stays not-ready while the transaction latch is
// occupied, and the backend-facing Valid signal strobes for exactly one
// cycle per accepted transaction.
type Comp struct {
	sim.HookableBase

	name      string
	addrMask  uint64
	dataWidth int

	// transaction latch
	active  bool
	isWrite bool
	addr    uint64
	wdata   uint64

	// one-cycle request strobe, distinct from the latch state
	reqValid bool

	cycle uint64
	trans Transaction
}

// Name returns the name of the bridge.
func (c *Comp) Name() string {
	return c.name
}

// Busy returns whether a transaction is in flight.
func (c *Comp) Busy() bool {
	return c.active
}

// Cycle returns the number of clock edges the bridge has taken.
func (c *Comp) Cycle() uint64 {
	return c.cycle
}

// BackendRequest returns the registered backend-facing request signals for
// the current cycle. The byte enable is permanently driven to the full-write
// sentinel; this bridge does not support partial-word writes.
func (c *Comp) BackendRequest() regif.Request {
	return regif.Request{
		Valid:      c.reqValid,
		IsWrite:    c.isWrite,
		Address:    c.addr,
		WriteData:  c.wdata,
		ByteEnable: regif.FullWrite,
	}
}

// BusResponse combines the backend response of the current cycle into the
// bus-facing response signals. The combination is combinational: ready and
// error are visible to the master in the same cycle the backend
// acknowledges.
func (c *Comp) BusResponse(be regif.Response) hostbus.Response {
	return hostbus.Response{
		Ready:    be.ReadAck || be.WriteAck,
		ReadData: be.ReadData,
		Err:      be.ReadErr || be.WriteErr,
	}
}

// ClockEdge advances the bridge by one clock edge, sampling the bus request
// and the backend response of the ending cycle.
//
// While idle, an asserted select captures the transaction into the latch and
// arms the one-cycle Valid strobe. While a transaction is in flight, select
// is ignored and the latch is held until the backend acknowledges; the
// acknowledge returns the bridge to idle on the next cycle.
func (c *Comp) ClockEdge(bus hostbus.Request, be regif.Response) {
	if !c.active {
		c.reqValid = false

		if bus.Select {
			c.accept(bus)
		}

		c.cycle++
		return
	}

	c.reqValid = false

	if be.Acked() {
		c.complete(be)
	}

	c.cycle++
}

func (c *Comp) accept(bus hostbus.Request) {
	c.active = true
	c.reqValid = true
	c.isWrite = bus.WriteEnable
	c.addr = bus.Address & c.addrMask
	c.wdata = bus.WriteData

	c.trans = Transaction{
		ID:          sim.GetIDGenerator().Generate(),
		IsWrite:     c.isWrite,
		Address:     c.addr,
		WriteData:   c.wdata,
		AcceptCycle: c.cycle,
	}

	if c.NumHooks() > 0 {
		c.InvokeHook(sim.HookCtx{
			Domain: c,
			Pos:    HookPosTransAccept,
			Item:   c.trans,
		})
	}
}

func (c *Comp) complete(be regif.Response) {
	c.active = false

	c.trans.ReadData = be.ReadData
	c.trans.Err = be.ReadErr || be.WriteErr
	c.trans.CompleteCycle = c.cycle

	if c.NumHooks() > 0 {
		c.InvokeHook(sim.HookCtx{
			Domain: c,
			Pos:    HookPosTransComplete,
			Item:   c.trans,
		})
	}
}

// SyncReset takes the place of ClockEdge on cycles where reset is asserted.
// It clears the transaction latch, the Valid strobe, and all latched values;
// reset takes precedence over every other transition.
func (c *Comp) SyncReset() {
	c.active = false
	c.reqValid = false
	c.isWrite = false
	c.addr = 0
	c.wdata = 0
	c.trans = Transaction{}

	c.cycle++
}
