package bridge

import "log"

// Builder can build handshake bridges.
type Builder struct {
	addrWidth int
	dataWidth int
}

// MakeBuilder returns a new Builder with default parameters.
func MakeBuilder() Builder {
	return Builder{
		addrWidth: 32,
		dataWidth: 32,
	}
}

// WithAddrWidth sets the address width. The bus address is masked to this
// width on capture; upper bits are silently discarded.
func (b Builder) WithAddrWidth(width int) Builder {
	b.addrWidth = width
	return b
}

// WithDataWidth sets the data width.
func (b Builder) WithDataWidth(width int) Builder {
	b.dataWidth = width
	return b
}

// Build builds a new Comp.
func (b Builder) Build(name string) *Comp {
	if b.addrWidth < 1 || b.addrWidth > 64 {
		log.Panicf("invalid address width %d", b.addrWidth)
	}

	if b.dataWidth < 1 || b.dataWidth > 64 {
		log.Panicf("invalid data width %d", b.dataWidth)
	}

	c := &Comp{
		name:      name,
		addrMask:  widthMask(b.addrWidth),
		dataWidth: b.dataWidth,
	}

	return c
}

func widthMask(width int) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(width)) - 1
}
