package tb

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ycyang0508/regbridge/hostbus"
)

var _ = Describe("Master", func() {
	var master *Master

	BeforeEach(func() {
		master = NewMaster("Master", 16)
	})

	It("should drive nothing when the script is empty", func() {
		Expect(master.Drive()).To(Equal(hostbus.Request{}))
		Expect(master.Done()).To(BeTrue())
	})

	It("should wait the leading idle cycles before asserting select", func() {
		master.Enqueue(Op{Address: 0x10, Idle: 2})

		master.ClockEdge(hostbus.Response{})
		Expect(master.Drive().Select).To(BeFalse())

		master.ClockEdge(hostbus.Response{})
		Expect(master.Drive().Select).To(BeFalse())

		master.ClockEdge(hostbus.Response{})
		Expect(master.Drive()).To(Equal(hostbus.Request{
			Select:  true,
			Address: 0x10,
		}))
	})

	It("should hold select until ready is observed", func() {
		master.Enqueue(Op{IsWrite: true, Address: 0x4, Data: 0xBEEF})

		master.ClockEdge(hostbus.Response{})

		for i := 0; i < 3; i++ {
			Expect(master.Drive()).To(Equal(hostbus.Request{
				Select:      true,
				WriteEnable: true,
				Address:     0x4,
				WriteData:   0xBEEF,
			}))
			master.ClockEdge(hostbus.Response{})
		}

		master.ClockEdge(hostbus.Response{Ready: true})

		Expect(master.Drive().Select).To(BeFalse())
		Expect(master.Done()).To(BeTrue())
	})

	It("should record completions with the observed response", func() {
		master.Enqueue(Op{Address: 0x8})

		master.ClockEdge(hostbus.Response{})
		master.ClockEdge(hostbus.Response{})
		master.ClockEdge(hostbus.Response{
			Ready:    true,
			ReadData: 0x1234,
			Err:      true,
		})

		completions := master.Completions()
		Expect(completions).To(HaveLen(1))
		Expect(completions[0].Op.Address).To(Equal(uint64(0x8)))
		Expect(completions[0].ReadData).To(Equal(uint64(0x1234)))
		Expect(completions[0].Err).To(BeTrue())
		Expect(completions[0].Cycle).To(Equal(uint64(2)))
	})

	It("should load the next operation at the completion edge", func() {
		master.Enqueue(Op{Address: 0x0})
		master.Enqueue(Op{Address: 0x4})

		master.ClockEdge(hostbus.Response{})
		master.ClockEdge(hostbus.Response{Ready: true})

		Expect(master.Done()).To(BeFalse())
		Expect(master.Drive()).To(Equal(hostbus.Request{
			Select:  true,
			Address: 0x4,
		}))
	})
})
