package state_test

import (
	"shiftpay/domain/state"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("StateMachine", func() {
	var (
		stateMachine *state.StateMachine
	)

	BeforeEach(func() {
		//          pending     approved       rejected
		// pending    -          V (approve)    V (reject)
		// approved   X          -              X
		// rejected   X          X              -
		stateMachine = state.NewStateMachine(
			[]state.State{
				{Name: "pending", Category: state.InReview},
				{Name: "approved", Category: state.Terminal},
				{Name: "rejected", Category: state.Terminal},
			},
			[]state.Transition{
				{Name: "approve", From: state.State{Name: "pending", Category: state.InReview}, To: state.State{Name: "approved", Category: state.Terminal}},
				{Name: "reject", From: state.State{Name: "pending", Category: state.InReview}, To: state.State{Name: "rejected", Category: state.Terminal}},
			})
	})

	Describe("NewStateMachine", func() {
		Context("With given pending-approved-rejected states and transitions", func() {
			It("should create new State Machine successfully", func() {
				Expect(stateMachine).NotTo(BeZero())
				Expect(stateMachine.States).Should(Equal([]state.State{
					{Name: "pending", Category: state.InReview},
					{Name: "approved", Category: state.Terminal},
					{Name: "rejected", Category: state.Terminal},
				}))
				Expect(len(stateMachine.Transitions)).Should(Equal(2))
			})
		})
	})

	Describe("AvailableTransitions", func() {
		Context("With given pending-approved-rejected states and transitions", func() {
			It("should return availableTransitions as expected", func() {
				Expect(stateMachine).NotTo(BeZero())

				Ω(len(stateMachine.AvailableTransitions("pending", ""))).Should(Equal(2))
				Ω(len(stateMachine.AvailableTransitions("pending", "approved"))).Should(Equal(1))
				Ω(len(stateMachine.AvailableTransitions("pending", "rejected"))).Should(Equal(1))

				Ω(len(stateMachine.AvailableTransitions("approved", ""))).Should(Equal(0))
				Ω(len(stateMachine.AvailableTransitions("approved", "pending"))).Should(Equal(0))
				Ω(len(stateMachine.AvailableTransitions("rejected", ""))).Should(Equal(0))
				Ω(len(stateMachine.AvailableTransitions("unknown", ""))).Should(Equal(0))
			})
		})
	})

	Describe("FindState and IsTerminal", func() {
		It("should locate states and classify terminal ones", func() {
			s, found := stateMachine.FindState("approved")
			Expect(found).To(BeTrue())
			Expect(s.Category).To(Equal(state.Terminal))

			_, found = stateMachine.FindState("unknown")
			Expect(found).To(BeFalse())

			Expect(stateMachine.IsTerminal("approved")).To(BeTrue())
			Expect(stateMachine.IsTerminal("rejected")).To(BeTrue())
			Expect(stateMachine.IsTerminal("pending")).To(BeFalse())
			Expect(stateMachine.IsTerminal("unknown")).To(BeFalse())
		})
	})

	Describe("FindTransition", func() {
		It("should locate transitions by name", func() {
			tr, found := stateMachine.FindTransition("approve")
			Expect(found).To(BeTrue())
			Expect(tr.To.Name).To(Equal("approved"))

			_, found = stateMachine.FindTransition("reopen")
			Expect(found).To(BeFalse())
		})
	})
})
