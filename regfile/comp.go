package regfile

import (
	"encoding/binary"

	"github.com/ycyang0508/regbridge/regif"
)

// Comp is a register-file backend. It consumes requests from the handshake
// bridge and acknowledges them after a configurable number of cycles.
//
// A latency of zero acknowledges combinationally, in the same cycle the
// request strobe is presented; a latency of N acknowledges exactly N cycles
// after the strobe cycle, with the acknowledge held for one cycle. At most
// one of read-acknowledge and write-acknowledge is asserted per cycle.
type Comp struct {
	name      string
	latency   int
	dataBytes int
	regmap    *RegMap
	storage   *Storage

	busy      bool
	countdown int
	pending   regif.Request
	rsp       regif.Response
}

// Name returns the name of the backend.
func (c *Comp) Name() string {
	return c.name
}

// Respond reports the backend response signals for the current cycle.
func (c *Comp) Respond(req regif.Request) regif.Response {
	if c.latency == 0 {
		if req.Valid {
			return c.access(req)
		}
		return regif.Response{}
	}

	return c.rsp
}

// ClockEdge advances the backend's registered state, sampling the request
// signals of the ending cycle.
func (c *Comp) ClockEdge(req regif.Request) {
	if c.latency == 0 {
		return
	}

	// The acknowledge is a one-cycle pulse.
	c.rsp = regif.Response{}

	if req.Valid {
		c.pending = req
		c.countdown = c.latency
		c.busy = true
	}

	if c.busy {
		c.countdown--
		if c.countdown == 0 {
			c.rsp = c.access(c.pending)
			c.busy = false
		}
	}
}

// SyncReset clears the in-flight access and the registered response.
func (c *Comp) SyncReset() {
	c.busy = false
	c.countdown = 0
	c.pending = regif.Request{}
	c.rsp = regif.Response{}
}

func (c *Comp) access(req regif.Request) regif.Response {
	if req.IsWrite {
		return c.write(req)
	}

	return c.read(req)
}

func (c *Comp) read(req regif.Request) regif.Response {
	rsp := regif.Response{ReadAck: true}

	target, ok := c.regmap.Decode(req.Address)
	if !ok || target.Access == AccessWO {
		rsp.ReadErr = true
		return rsp
	}

	data, err := c.storage.Read(req.Address, uint64(c.dataBytes))
	if err != nil {
		rsp.ReadErr = true
		return rsp
	}

	rsp.ReadData = wordFromBytes(data)

	return rsp
}

func (c *Comp) write(req regif.Request) regif.Response {
	rsp := regif.Response{WriteAck: true}

	target, ok := c.regmap.Decode(req.Address)
	if !ok || target.Access == AccessRO {
		rsp.WriteErr = true
		return rsp
	}

	data := bytesFromWord(req.WriteData, c.dataBytes)

	if req.ByteEnable != regif.FullWrite {
		old, err := c.storage.Read(req.Address, uint64(c.dataBytes))
		if err != nil {
			rsp.WriteErr = true
			return rsp
		}

		for i := 0; i < c.dataBytes; i++ {
			if req.ByteEnable&(1<<uint(i)) == 0 {
				data[i] = old[i]
			}
		}
	}

	err := c.storage.Write(req.Address, data)
	if err != nil {
		rsp.WriteErr = true
	}

	return rsp
}

// Peek reads the stored word at the given address directly, bypassing the
// request protocol.
func (c *Comp) Peek(addr uint64) (uint64, error) {
	data, err := c.storage.Read(addr, uint64(c.dataBytes))
	if err != nil {
		return 0, err
	}

	return wordFromBytes(data), nil
}

// Poke stores a word at the given address directly, bypassing the request
// protocol.
func (c *Comp) Poke(addr, value uint64) error {
	return c.storage.Write(addr, bytesFromWord(value, c.dataBytes))
}

func wordFromBytes(data []byte) uint64 {
	buf := make([]byte, 8)
	copy(buf, data)
	return binary.LittleEndian.Uint64(buf)
}

func bytesFromWord(value uint64, n int) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, value)
	return buf[:n]
}
