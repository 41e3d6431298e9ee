package monitoring

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ycyang0508/regbridge/sim"
)

type sampleComponent struct {
	*sim.ComponentBase

	buffer sim.Buffer
}

func newSampleComponent() *sampleComponent {
	return &sampleComponent{
		ComponentBase: sim.NewComponentBase("Comp"),
		buffer:        sim.NewBuffer("Comp.Buf", 10),
	}
}

var _ = Describe("Monitor", func() {
	var (
		m *Monitor
	)

	BeforeEach(func() {
		m = &Monitor{}
	})

	It("should register components and internal buffers", func() {
		c := newSampleComponent()
		m.RegisterComponent(c)

		Expect(m.components).To(HaveLen(1))
		Expect(m.buffers).To(HaveLen(1))
	})

	It("should sort buffers by fill level", func() {
		full := sim.NewBuffer("Full", 2)
		full.Push(1)
		full.Push(2)

		empty := sim.NewBuffer("Empty", 2)

		m.buffers = []sim.Buffer{empty, full}

		sorted := m.sortAndSelectBuffers("percent", 0, 0)

		Expect(sorted).To(HaveLen(2))
		Expect(sorted[0].Name()).To(Equal("Full"))
	})

	It("should track progress bars", func() {
		bar := m.CreateProgressBar("run", 100)
		bar.IncrementInProgress(10)
		bar.MoveInProgressToFinished(4)

		Expect(m.progressBars).To(HaveLen(1))
		Expect(bar.Finished).To(Equal(uint64(4)))
		Expect(bar.InProgress).To(Equal(uint64(6)))

		m.CompleteProgressBar(bar)
		Expect(m.progressBars).To(HaveLen(0))
	})
})
