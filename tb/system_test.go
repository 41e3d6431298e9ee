package tb

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/ycyang0508/regbridge/regfile"
	"github.com/ycyang0508/regbridge/regif"
	"github.com/ycyang0508/regbridge/sim"
)

var _ = Describe("System", func() {
	var (
		engine *sim.SerialEngine
		regmap *regfile.RegMap
		system *System
	)

	BeforeEach(func() {
		engine = sim.NewSerialEngine()

		regmap = regfile.NewRegMap()
		regmap.AddRegister("ctrl", 0x0, regfile.AccessRW)
		regmap.AddRegister("status", 0x4, regfile.AccessRO)
		regmap.AddRegister("cmd", 0x8, regfile.AccessWO)
		regmap.AddMemory("buf", 0x100, 64, 4)

		system = MakeBuilder().
			WithEngine(engine).
			WithRegMap(regmap).
			WithBackendLatency(1).
			Build("TB")
	})

	It("should run a script to completion", func() {
		regFile := system.Backend.(*regfile.Comp)
		Expect(regFile.Poke(0x4, 0x1234)).To(Succeed())

		system.Master.Enqueue(Op{IsWrite: true, Address: 0x0, Data: 0xDEADBEEF})
		system.Master.Enqueue(Op{Address: 0x0})
		system.Master.Enqueue(Op{Address: 0x4})
		system.Master.Enqueue(Op{IsWrite: true, Address: 0x4, Data: 0x1})
		system.Master.Enqueue(Op{Address: 0x8})
		system.Master.Enqueue(Op{IsWrite: true, Address: 0x104, Data: 0x55AA55AA})
		system.Master.Enqueue(Op{Address: 0x104})
		system.Master.Enqueue(Op{Address: 0xFFC})

		system.TickNow()
		Expect(engine.Run()).To(Succeed())

		completions := system.Master.Completions()
		Expect(completions).To(HaveLen(8))

		Expect(completions[0].Err).To(BeFalse())

		Expect(completions[1].ReadData).To(Equal(uint64(0xDEADBEEF)))
		Expect(completions[1].Err).To(BeFalse())

		Expect(completions[2].ReadData).To(Equal(uint64(0x1234)))

		Expect(completions[3].Err).To(BeTrue())
		Expect(completions[4].Err).To(BeTrue())

		Expect(completions[5].Err).To(BeFalse())
		Expect(completions[6].ReadData).To(Equal(uint64(0x55AA55AA)))

		Expect(completions[7].Err).To(BeTrue())
	})

	It("should complete each operation in three cycles at latency one", func() {
		system.Master.Enqueue(Op{IsWrite: true, Address: 0x0, Data: 0x1})
		system.Master.Enqueue(Op{Address: 0x0})

		system.TickNow()
		Expect(engine.Run()).To(Succeed())

		completions := system.Master.Completions()
		Expect(completions).To(HaveLen(2))
		Expect(completions[0].Cycle).To(Equal(uint64(3)))
		Expect(completions[1].Cycle).To(Equal(uint64(6)))
	})

	It("should stretch the transaction by the backend latency", func() {
		slow := MakeBuilder().
			WithEngine(engine).
			WithRegMap(regmap).
			WithBackendLatency(4).
			Build("SlowTB")

		slow.Master.Enqueue(Op{Address: 0x0})

		slow.TickNow()
		Expect(engine.Run()).To(Succeed())

		completions := slow.Master.Completions()
		Expect(completions).To(HaveLen(1))
		Expect(completions[0].Cycle).To(Equal(uint64(6)))
	})
})

var _ = Describe("System with a mock backend", func() {
	var (
		mockCtrl *gomock.Controller
		backend  *MockBackend
		engine   *sim.SerialEngine
		system   *System
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		backend = NewMockBackend(mockCtrl)
		engine = sim.NewSerialEngine()

		system = MakeBuilder().
			WithEngine(engine).
			WithBackend(backend).
			Build("TB")
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should forward the backend response to the bus", func() {
		backend.EXPECT().SyncReset().Times(2)
		backend.EXPECT().ClockEdge(gomock.Any()).AnyTimes()
		backend.EXPECT().
			Respond(gomock.Any()).
			DoAndReturn(func(req regif.Request) regif.Response {
				if !req.Valid {
					return regif.Response{}
				}

				return regif.Response{ReadAck: true, ReadData: 0x42}
			}).
			AnyTimes()

		system.Master.Enqueue(Op{Address: 0x20})

		system.TickNow()
		Expect(engine.Run()).To(Succeed())

		completions := system.Master.Completions()
		Expect(completions).To(HaveLen(1))
		Expect(completions[0].ReadData).To(Equal(uint64(0x42)))
		Expect(completions[0].Err).To(BeFalse())
		Expect(completions[0].Cycle).To(Equal(uint64(2)))
	})
})
