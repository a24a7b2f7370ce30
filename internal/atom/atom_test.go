package atom_test

import (
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/hsatom/internal/atom"
	"github.com/san-kum/hsatom/internal/element"
	"github.com/san-kum/hsatom/internal/numeric"
	"github.com/san-kum/hsatom/internal/potential"
)

// enclosedCharge is ∫ρ·4πr² dr on the atom's mesh.
func enclosedCharge(a *atom.Atom) float64 {
	m := a.Mesh()
	r := m.Radii()
	rho := a.Rho()
	f := make([]float64, len(r))
	for i := range r {
		f[i] = rho[i] * 4 * math.Pi * r[i] * r[i]
	}
	q, err := numeric.Integral(r, f)
	Expect(err).NotTo(HaveOccurred())
	return q
}

func expectNeutralTail(a *atom.Atom) {
	m := a.Mesh()
	v := a.Potential()
	want := -2 * (float64(a.AtomicNumber()) - a.Electrons() + 1)
	Expect(a.TailStart()).To(BeNumerically("<", m.Count()))
	for i := a.TailStart(); i < m.Count(); i++ {
		Expect(m.R(i) * v[i]).To(BeNumerically("~", want, 1e-12))
	}
}

var _ = Describe("Atom", func() {
	Context("hydrogen 1s1", func() {
		var a *atom.Atom

		BeforeEach(func() {
			var err error
			a, err = atom.NewFromSpec(1, "1s1")
			Expect(err).NotTo(HaveOccurred())
		})

		It("converges within the iteration cap", func() {
			st := a.Status()
			Expect(st.Converged).To(BeTrue(), st.String())
			Expect(st.Iterations).To(BeNumerically("<=", 200))
			Expect(st.MaxDelta).To(BeNumerically("<", 1e-4))
		})

		It("holds one electron", func() {
			Expect(a.Electrons()).To(Equal(1.0))
			Expect(enclosedCharge(a)).To(BeNumerically("~", -1, 1e-3))
		})

		It("ends on the -2/r tail", func() {
			Expect(-2 * (1 - a.Electrons() + 1)).To(Equal(-2.0))
			expectNeutralTail(a)
		})

		It("keeps the nuclear sentinels", func() {
			Expect(math.IsInf(a.Potential()[0], -1)).To(BeTrue())
			Expect(a.Rho()[0]).To(BeZero())
		})

		It("binds the 1s level", func() {
			o, err := a.GetOrbital(1, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(o.Energy).To(BeNumerically("<", -0.5))
			Expect(o.Energy).To(BeNumerically(">", -1.2))
			Expect(o.Nodes()).To(BeZero())
		})
	})

	Context("helium ground state", func() {
		var a *atom.Atom

		BeforeEach(func() {
			var err error
			a, err = atom.New(2)
			Expect(err).NotTo(HaveOccurred())
		})

		It("solves the 1s2 configuration", func() {
			Expect(a.Configuration().String()).To(Equal("1s2"))
			Expect(a.Orbitals()).To(HaveLen(1))
			Expect(a.Electrons()).To(Equal(2.0))
		})

		It("conserves charge", func() {
			Expect(a.Status().Converged).To(BeTrue(), a.Status().String())
			Expect(enclosedCharge(a)).To(BeNumerically("~", -2, 1e-3))
		})

		It("ends on the -2/r tail", func() {
			expectNeutralTail(a)
		})

		It("screens the nucleus", func() {
			v := a.Potential()
			bare := a.PotentialSansExchange()
			m := a.Mesh()
			for i := 1; i < a.TailStart(); i++ {
				Expect(m.R(i) * bare[i]).To(BeNumerically(">=", -4-1e-9))
				Expect(v[i]).To(BeNumerically("<=", bare[i]+1e-12))
			}
		})

		It("binds 1s more deeply than hydrogen", func() {
			o, err := a.GetOrbital(1, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(o.Energy).To(BeNumerically("<", -1.0))
			Expect(o.Energy).To(BeNumerically(">", -2.2))
		})
	})

	Context("lithium with statistical exchange in parallel", func() {
		It("matches the sequential solve", func() {
			el, err := element.ByNumber(3)
			Expect(err).NotTo(HaveOccurred())
			conf := element.MustParse("1s2 2s1")

			cfg := atom.DefaultConfig()
			cfg.Exchange = potential.Statistical
			seq, err := atom.NewSolver(nil).Solve(context.Background(), el, conf, cfg)
			Expect(err).NotTo(HaveOccurred())

			cfg.Workers = 2
			par, err := atom.NewSolver(nil).Solve(context.Background(), el, conf, cfg)
			Expect(err).NotTo(HaveOccurred())

			Expect(par.Potential()[1:]).To(Equal(seq.Potential()[1:]))
			Expect(par.Status()).To(Equal(seq.Status()))

			s1, _ := seq.GetOrbital(1, 0)
			s2, _ := seq.GetOrbital(2, 0)
			Expect(s1.Energy).To(BeNumerically("<", s2.Energy))
			Expect(s2.Nodes()).To(Equal(1))
		})
	})

	DescribeTable("ground states",
		func(z int) {
			a, err := atom.New(z)
			Expect(err).NotTo(HaveOccurred())

			st := a.Status()
			Expect(st.Converged).To(BeTrue(), st.String())
			Expect(a.Electrons()).To(Equal(float64(z)))
			Expect(enclosedCharge(a)).To(BeNumerically("~", -float64(z), 1e-3))
			expectNeutralTail(a)

			prev := math.Inf(-1)
			for _, o := range a.Orbitals() {
				Expect(o.Nodes()).To(Equal(o.N-o.L-1), o.Label())
				if o.L != 0 {
					continue
				}
				Expect(o.Energy).To(BeNumerically(">", prev), o.Label())
				prev = o.Energy
			}
		},
		Entry("carbon", 6),
		Entry("neon", 10),
		Entry("sodium", 11),
		Entry("argon", 18),
		Entry("iron", 26),
		Entry("krypton", 36),
	)
})
