// Package hostbus defines the signals of the register-mapped peripheral bus
// that an external bus master drives.
//
// The bus carries at most one transaction at a time. The master asserts
// Select, optionally with WriteEnable, and must hold the request signals
// stable until it observes Ready on the response side.
package hostbus

// Request holds the master-driven signals sampled by the bridge on every
// cycle.
type Request struct {
	Select      bool
	WriteEnable bool
	Address     uint64
	WriteData   uint64
}

// Response holds the signals the bridge drives back to the master. Ready,
// ReadData, and Err are combinational within a cycle. ReadData is only
// meaningful when Ready is high on a read; Err reports a backend-detected
// access error alongside Ready.
type Response struct {
	Ready    bool
	ReadData uint64
	Err      bool
}
