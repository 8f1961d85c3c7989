package lotka_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/lvsim/internal/dynamo"
	"github.com/san-kum/lvsim/internal/lotka"
)

var _ = Describe("Simulation", func() {
	var (
		params lotka.Params
		sim    *lotka.Simulation
	)

	BeforeEach(func() {
		params = lotka.Params{Dt: 0.001, A: 1, B: 1, C: 1, D: 1, X0: 10, Y0: 5}
	})

	JustBeforeEach(func() {
		var err error
		sim, err = lotka.New(params)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("construction", func() {
		It("stores the initial condition at index 0", func() {
			Expect(sim.Steps()).To(Equal(1))

			s0, err := sim.StateAt(0)
			Expect(err).NotTo(HaveOccurred())
			Expect(s0.X).To(Equal(10.0))
			Expect(s0.Y).To(Equal(5.0))
			Expect(s0.H).To(BeNumerically("~", -math.Log(10)+10+5-math.Log(5), 1e-12))
		})

		DescribeTable("rejects unsound parameters",
			func(p lotka.Params) {
				_, err := lotka.New(p)
				Expect(err).To(MatchError(dynamo.ErrInvalidParameter))
			},
			Entry("dt = 0", lotka.Params{Dt: 0, A: 1, B: 1, C: 1, D: 1}),
			Entry("dt too small", lotka.Params{Dt: 0.00001, A: 1, B: 1, C: 1, D: 1}),
			Entry("dt too large", lotka.Params{Dt: 0.1, A: 1, B: 1, C: 1, D: 1}),
			Entry("A <= 0", lotka.Params{Dt: 0.001, A: -1, B: 1, C: 1, D: 1}),
			Entry("B <= 0", lotka.Params{Dt: 0.001, A: 1, B: 0, C: 1, D: 1}),
			Entry("x0 < 0", lotka.Params{Dt: 0.001, A: 1, B: 1, C: 1, D: 1, X0: -1}),
			Entry("y0 < 0", lotka.Params{Dt: 0.001, A: 1, B: 1, C: 1, D: 1, Y0: -1}),
		)

		DescribeTable("accepts boundary step sizes",
			func(dt float64) {
				_, err := lotka.New(lotka.Params{Dt: dt, A: 1, B: 1, C: 1, D: 1})
				Expect(err).NotTo(HaveOccurred())
			},
			Entry("lower bound", 0.0001),
			Entry("interior", 0.001),
			Entry("upper bound", 0.01),
		)
	})

	Describe("advancing", func() {
		It("appends exactly n states on a stable run", func() {
			Expect(sim.AdvanceSteps(250)).To(BeTrue())
			Expect(sim.Steps()).To(Equal(251))
			Expect(sim.Unstable()).To(BeFalse())
		})

		It("advances by a whole-step duration", func() {
			ok, err := sim.AdvanceTime(0.1)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())
			Expect(sim.Steps()).To(Equal(101))
		})

		It("rejects a duration that is not a multiple of dt", func() {
			_, err := sim.AdvanceTime(0.1115)
			Expect(err).To(MatchError(dynamo.ErrInvalidDuration))
			Expect(sim.Steps()).To(Equal(1))
		})

		It("keeps every density non-negative", func() {
			sim.AdvanceSteps(1000)
			for _, s := range sim.History() {
				Expect(s.X).To(BeNumerically(">=", 0))
				Expect(s.Y).To(BeNumerically(">=", 0))
			}
		})

		It("keeps H within the drift budget of H0", func() {
			sim.AdvanceSteps(1000)
			h := sim.History()
			for _, s := range h[1:] {
				Expect(math.Abs(s.H-h[0].H) / math.Abs(h[0].H)).To(BeNumerically("<=", lotka.Tolerance(params.Dt)))
			}
		})
	})

	Context("when prey start extinct", func() {
		BeforeEach(func() {
			params.X0 = 0
		})

		It("never revives them", func() {
			Expect(sim.AdvanceSteps(500)).To(BeTrue())
			for _, s := range sim.History() {
				Expect(s.X).To(BeZero())
				Expect(math.IsInf(s.H, 1)).To(BeTrue())
			}
		})
	})

	Context("when the step overshoots near extinction", func() {
		BeforeEach(func() {
			params = lotka.Params{Dt: 0.01, A: 1, B: 1, C: 1, D: 1, X0: 50, Y0: 99}
		})

		It("turns unstable and stops appending", func() {
			Expect(sim.AdvanceSteps(10)).To(BeFalse())
			Expect(sim.Steps()).To(Equal(2))
			Expect(sim.Unstable()).To(BeTrue())
			Expect(sim.Status()).To(BeAssignableToTypeOf(lotka.Unstable{}))

			Expect(sim.Advance()).To(BeFalse())
			Expect(sim.AdvanceSteps(5)).To(BeFalse())
			Expect(sim.Steps()).To(Equal(2))
		})
	})
})
