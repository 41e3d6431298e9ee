package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Event Queue", func() {
	var (
		queue *EventQueueImpl
	)

	BeforeEach(func() {
		queue = NewEventQueue()
	})

	It("should pop events in time order", func() {
		evt1 := MakeTickEvent(2, nil)
		evt2 := MakeTickEvent(1, nil)
		evt3 := MakeTickEvent(3, nil)

		queue.Push(evt1)
		queue.Push(evt2)
		queue.Push(evt3)

		Expect(queue.Len()).To(Equal(3))
		Expect(queue.Pop().Time()).To(Equal(VTimeInSec(1)))
		Expect(queue.Pop().Time()).To(Equal(VTimeInSec(2)))
		Expect(queue.Pop().Time()).To(Equal(VTimeInSec(3)))
	})

	It("should peek without removing the event", func() {
		evt := MakeTickEvent(1, nil)
		queue.Push(evt)

		Expect(queue.Peek().Time()).To(Equal(VTimeInSec(1)))
		Expect(queue.Len()).To(Equal(1))
	})
})
