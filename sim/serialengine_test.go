package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type recordingHandler struct {
	times []VTimeInSec
}

func (h *recordingHandler) Handle(e Event) error {
	h.times = append(h.times, e.Time())
	return nil
}

var _ = Describe("Serial Engine", func() {
	var (
		engine  *SerialEngine
		handler *recordingHandler
	)

	BeforeEach(func() {
		engine = NewSerialEngine()
		handler = &recordingHandler{}
	})

	It("should run events in time order", func() {
		engine.Schedule(MakeTickEvent(3, handler))
		engine.Schedule(MakeTickEvent(1, handler))
		engine.Schedule(MakeTickEvent(2, handler))

		engine.Run()

		Expect(handler.times).To(Equal([]VTimeInSec{1, 2, 3}))
		Expect(engine.CurrentTime()).To(Equal(VTimeInSec(3)))
	})

	It("should panic when scheduling an event in the past", func() {
		engine.Schedule(MakeTickEvent(2, handler))
		engine.Run()

		Expect(func() {
			engine.Schedule(MakeTickEvent(1, handler))
		}).To(Panic())
	})

	It("should call simulation end handlers when finished", func() {
		endHandler := &recordingEndHandler{}
		engine.RegisterSimulationEndHandler(endHandler)

		engine.Schedule(MakeTickEvent(5, handler))
		engine.Run()
		engine.Finished()

		Expect(endHandler.calledAt).To(Equal(VTimeInSec(5)))
	})
})

type recordingEndHandler struct {
	calledAt VTimeInSec
}

func (h *recordingEndHandler) Handle(now VTimeInSec) {
	h.calledAt = now
}
