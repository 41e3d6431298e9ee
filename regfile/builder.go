package regfile

import "log"

// Builder can build register-file backends.
type Builder struct {
	latency         int
	dataWidth       int
	regmap          *RegMap
	storage         *Storage
	storageCapacity uint64
}

// MakeBuilder returns a new Builder with default parameters.
func MakeBuilder() Builder {
	return Builder{
		latency:         1,
		dataWidth:       32,
		storageCapacity: 64 * 1024,
	}
}

// WithLatency sets the acknowledge latency in cycles. Zero makes the
// backend acknowledge combinationally.
func (b Builder) WithLatency(latency int) Builder {
	b.latency = latency
	return b
}

// WithDataWidth sets the data width in bits.
func (b Builder) WithDataWidth(width int) Builder {
	b.dataWidth = width
	return b
}

// WithRegMap sets the register map used for address decoding.
func (b Builder) WithRegMap(m *RegMap) Builder {
	b.regmap = m
	return b
}

// WithStorage sets the storage of the backend.
func (b Builder) WithStorage(storage *Storage) Builder {
	b.storage = storage
	return b
}

// WithStorageCapacity sets the capacity of the storage created when no
// storage is given.
func (b Builder) WithStorageCapacity(capacity uint64) Builder {
	b.storageCapacity = capacity
	return b
}

// Build builds a new Comp.
func (b Builder) Build(name string) *Comp {
	if b.latency < 0 {
		log.Panicf("invalid latency %d", b.latency)
	}

	if b.dataWidth < 8 || b.dataWidth > 64 || b.dataWidth%8 != 0 {
		log.Panicf("invalid data width %d", b.dataWidth)
	}

	if b.regmap == nil {
		log.Panic("a register map is required")
	}

	c := &Comp{
		name:      name,
		latency:   b.latency,
		dataBytes: b.dataWidth / 8,
		regmap:    b.regmap,
	}

	if b.storage == nil {
		c.storage = NewStorage(b.storageCapacity)
	} else {
		c.storage = b.storage
	}

	return c
}
