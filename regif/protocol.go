// Package regif defines the internal request/acknowledge protocol between
// the handshake bridge and a register-access backend.
package regif

// FullWrite is the byte-enable sentinel meaning no byte masking is
// requested. A backend must treat a write request carrying this value as a
// full-width write, not as a zero-effect write.
const FullWrite uint64 = 0

// Request is the bridge-driven request port. Valid is a one-cycle strobe
// that marks transaction initiation; the remaining fields stay stable from
// the strobe cycle until the backend acknowledges.
type Request struct {
	Valid      bool
	IsWrite    bool
	Address    uint64
	WriteData  uint64
	ByteEnable uint64
}

// Response is the backend-driven response port. The backend asserts at most
// one of ReadAck and WriteAck per cycle; each is held for exactly one cycle.
// ReadData and the error flags are sampled in the acknowledge cycle.
type Response struct {
	ReadAck  bool
	WriteAck bool
	ReadData uint64
	ReadErr  bool
	WriteErr bool
}

// Acked returns whether either acknowledge signal is asserted.
func (r Response) Acked() bool {
	return r.ReadAck || r.WriteAck
}

// A Backend consumes requests from the bridge and produces acknowledges.
//
// Respond reports the backend's response signals for the current cycle. A
// zero-latency backend may acknowledge combinationally, in the same cycle
// the Valid strobe is presented; other backends answer from registered
// state. ClockEdge advances the backend's registered state, sampling the
// request signals of the ending cycle. SyncReset takes the place of
// ClockEdge on cycles where reset is asserted.
type Backend interface {
	Respond(req Request) Response
	ClockEdge(req Request)
	SyncReset()
}
