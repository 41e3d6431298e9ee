package tb

import (
	"github.com/ycyang0508/regbridge/bridge"
	"github.com/ycyang0508/regbridge/regif"
	"github.com/ycyang0508/regbridge/sim"
)

// A System assembles a bus master, a handshake bridge, and a register
// backend, and advances them cycle by cycle on a simulation engine.
type System struct {
	*sim.TickingComponent

	Master  *Master
	Bridge  *bridge.Comp
	Backend regif.Backend

	resetLeft int
}

// Tick advances the system by one clock cycle. It returns false once the
// script is exhausted and the bridge is idle.
func (s *System) Tick() bool {
	if s.resetLeft > 0 {
		s.Bridge.SyncReset()
		s.Backend.SyncReset()
		s.resetLeft--

		return true
	}

	busReq := s.Master.Drive()
	beReq := s.Bridge.BackendRequest()
	beRsp := s.Backend.Respond(beReq)
	busRsp := s.Bridge.BusResponse(beRsp)

	s.Master.ClockEdge(busRsp)
	s.Bridge.ClockEdge(busReq, beRsp)
	s.Backend.ClockEdge(beReq)

	return !(s.Master.Done() && !s.Bridge.Busy())
}
