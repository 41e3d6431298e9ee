package tb

import (
	"github.com/ycyang0508/regbridge/bridge"
	"github.com/ycyang0508/regbridge/regfile"
	"github.com/ycyang0508/regbridge/regif"
	"github.com/ycyang0508/regbridge/sim"
)

// Builder can build testbench systems.
type Builder struct {
	engine         sim.Engine
	freq           sim.Freq
	addrWidth      int
	dataWidth      int
	backendLatency int
	resetCycles    int
	opQueueCap     int
	regmap         *regfile.RegMap
	backend        regif.Backend
}

// MakeBuilder creates a builder with default parameters.
func MakeBuilder() Builder {
	return Builder{
		freq:           1 * sim.GHz,
		addrWidth:      32,
		dataWidth:      32,
		backendLatency: 1,
		resetCycles:    2,
		opQueueCap:     64,
	}
}

// WithEngine sets the engine that drives the system.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the clock frequency of the system.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// WithAddrWidth sets the bus address width in bits.
func (b Builder) WithAddrWidth(width int) Builder {
	b.addrWidth = width
	return b
}

// WithDataWidth sets the bus data width in bits.
func (b Builder) WithDataWidth(width int) Builder {
	b.dataWidth = width
	return b
}

// WithBackendLatency sets the response latency of the register backend, in
// cycles.
func (b Builder) WithBackendLatency(latency int) Builder {
	b.backendLatency = latency
	return b
}

// WithResetCycles sets the number of cycles reset is held at the start of
// the simulation.
func (b Builder) WithResetCycles(n int) Builder {
	b.resetCycles = n
	return b
}

// WithOpQueueCap sets the capacity of the master's operation queue.
func (b Builder) WithOpQueueCap(cap int) Builder {
	b.opQueueCap = cap
	return b
}

// WithRegMap sets the register map of the backend register file.
func (b Builder) WithRegMap(m *regfile.RegMap) Builder {
	b.regmap = m
	return b
}

// WithBackend replaces the default register-file backend with the given
// one. WithRegMap and WithBackendLatency are ignored when a backend is
// provided.
func (b Builder) WithBackend(backend regif.Backend) Builder {
	b.backend = backend
	return b
}

// Build creates a testbench system with the given name.
func (b Builder) Build(name string) *System {
	if b.engine == nil {
		panic("testbench system requires an engine")
	}

	s := &System{
		Master:    NewMaster(name+".Master", b.opQueueCap),
		resetLeft: b.resetCycles,
	}

	s.Bridge = bridge.MakeBuilder().
		WithAddrWidth(b.addrWidth).
		WithDataWidth(b.dataWidth).
		Build(name + ".Bridge")

	s.Backend = b.backend
	if s.Backend == nil {
		s.Backend = regfile.MakeBuilder().
			WithLatency(b.backendLatency).
			WithDataWidth(b.dataWidth).
			WithRegMap(b.regmap).
			Build(name + ".RegFile")
	}

	s.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, s)

	return s
}
