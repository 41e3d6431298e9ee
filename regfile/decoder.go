// Package regfile provides a register-file backend for the handshake
// bridge. It decodes captured addresses into register and memory strobes
// and serves accesses from a paged storage.
package regfile

// AccessMode describes the software access allowed on a decoded target.
type AccessMode int

// The supported access modes.
const (
	AccessRW AccessMode = iota
	AccessRO
	AccessWO
)

// TargetKind tells registers and memory regions apart.
type TargetKind int

// The supported target kinds.
const (
	TargetReg TargetKind = iota
	TargetMem
)

// A Target is the result of decoding an address.
type Target struct {
	Kind   TargetKind
	Name   string
	Index  int    // element index within a register array
	Offset uint64 // byte offset within a memory region
	Access AccessMode
}

type regEntry struct {
	name   string
	offset uint64
	count  int
	stride uint64
	access AccessMode
}

type memRegion struct {
	name          string
	base          uint64
	entries       uint64
	bytesPerEntry uint64
}

// A RegMap describes the address layout of a register block. Registers
// decode by exact address match; register arrays add an index times stride
// term; memory regions decode as half-open byte ranges.
type RegMap struct {
	regs []regEntry
	mems []memRegion
}

// NewRegMap creates an empty register map.
func NewRegMap() *RegMap {
	return &RegMap{}
}

// AddRegister adds a single register at the given byte offset.
func (m *RegMap) AddRegister(name string, offset uint64, access AccessMode) {
	m.regs = append(m.regs, regEntry{
		name:   name,
		offset: offset,
		count:  1,
		access: access,
	})
}

// AddRegisterArray adds an array of count registers starting at the given
// byte offset, spaced stride bytes apart.
func (m *RegMap) AddRegisterArray(
	name string,
	offset uint64,
	count int,
	stride uint64,
	access AccessMode,
) {
	m.regs = append(m.regs, regEntry{
		name:   name,
		offset: offset,
		count:  count,
		stride: stride,
		access: access,
	})
}

// AddMemory adds a memory region covering the half-open address range
// [base, base+entries*bytesPerEntry).
func (m *RegMap) AddMemory(name string, base, entries, bytesPerEntry uint64) {
	m.mems = append(m.mems, memRegion{
		name:          name,
		base:          base,
		entries:       entries,
		bytesPerEntry: bytesPerEntry,
	})
}

// Decode maps an address to the target it selects. The second return value
// reports whether any target matched.
func (m *RegMap) Decode(addr uint64) (Target, bool) {
	for _, r := range m.regs {
		if target, ok := r.decode(addr); ok {
			return target, true
		}
	}

	for _, region := range m.mems {
		size := region.entries * region.bytesPerEntry
		if addr >= region.base && addr < region.base+size {
			return Target{
				Kind:   TargetMem,
				Name:   region.name,
				Offset: addr - region.base,
				Access: AccessRW,
			}, true
		}
	}

	return Target{}, false
}

func (r regEntry) decode(addr uint64) (Target, bool) {
	if r.count <= 1 {
		if addr != r.offset {
			return Target{}, false
		}

		return Target{Kind: TargetReg, Name: r.name, Access: r.access}, true
	}

	if addr < r.offset {
		return Target{}, false
	}

	delta := addr - r.offset
	if delta%r.stride != 0 {
		return Target{}, false
	}

	index := delta / r.stride
	if index >= uint64(r.count) {
		return Target{}, false
	}

	return Target{
		Kind:   TargetReg,
		Name:   r.name,
		Index:  int(index),
		Access: r.access,
	}, true
}
