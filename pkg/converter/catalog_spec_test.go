package converter_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sciunits/pkg/converter"
	"github.com/san-kum/sciunits/pkg/operator"
	"github.com/san-kum/sciunits/pkg/quantity"
	"github.com/san-kum/sciunits/pkg/scientific"
)

var _ = Describe("Catalog", func() {
	Describe("catalytic activity", func() {
		var conv *converter.Converter

		BeforeEach(func() {
			convs := converter.Converters(quantity.CatalyticActivity)
			Expect(convs).To(HaveLen(1))
			conv = convs[0]
		})

		It("derives amount of substance from time", func() {
			Expect(conv.Label()).To(Equal("Amount of Substance from Time"))
			Expect(conv.Operator()).To(Equal(operator.Multiplication))
			Expect(conv.Partner()).To(Equal(quantity.Time))
			Expect(conv.Result()).To(Equal(quantity.AmountOfSubstance))
		})

		It("multiplies katal by seconds into moles", func() {
			v, err := conv.Compute(scientific.New(2, quantity.Katal), scientific.New(3, quantity.Second))
			Expect(err).NotTo(HaveOccurred())
			Expect(v.Unit()).To(Equal(quantity.Mole))
			Expect(v.Magnitude()).To(BeNumerically("~", 6.0, 1e-12))
		})

		It("takes operands in any unit of the right quantity", func() {
			v, err := conv.Compute(scientific.New(1, quantity.Microkatal), scientific.New(2, quantity.Minute))
			Expect(err).NotTo(HaveOccurred())
			Expect(v.Magnitude()).To(BeNumerically("~", 120e-6, 1e-15))
		})

		It("rejects a temperature partner with a typed error", func() {
			_, err := conv.Compute(scientific.New(2, quantity.Katal), scientific.New(3, quantity.Celsius))
			Expect(err).To(MatchError(scientific.ErrTypeMismatch))

			var tm *converter.TypeMismatchError
			Expect(err).To(BeAssignableToTypeOf(tm))
		})
	})

	DescribeTable("derivations",
		func(q quantity.Quantity, label string, left, right scientific.Value, want scientific.Value) {
			conv, ok := converter.Default().Lookup(q, label)
			Expect(ok).To(BeTrue(), "no converter %q for %s", label, q)

			got, err := conv.Compute(left, right)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Unit()).To(Equal(want.Unit()))
			Expect(got.Magnitude()).To(BeNumerically("~", want.Magnitude(), 1e-9))
		},
		Entry("energy from time", quantity.Power, "Energy from Time",
			scientific.New(2, quantity.Kilowatt), scientific.New(30, quantity.Minute),
			scientific.New(3.6e6, quantity.Joule)),
		Entry("voltage from resistance", quantity.ElectricCurrent, "Voltage from Electric Resistance",
			scientific.New(500, quantity.Milliampere), scientific.New(10, quantity.Ohm),
			scientific.New(5, quantity.Volt)),
		Entry("weight from molar mass", quantity.AmountOfSubstance, "Weight from Molar Mass",
			scientific.New(2, quantity.Mole), scientific.New(18, quantity.GramPerMole),
			scientific.New(0.036, quantity.Kilogram)),
		Entry("speed from time", quantity.Length, "Speed from Time",
			scientific.New(100, quantity.Meter), scientific.New(20, quantity.Second),
			scientific.New(5, quantity.MeterPerSecond)),
		Entry("pressure from area", quantity.Force, "Pressure from Area",
			scientific.New(10, quantity.Newton), scientific.New(2, quantity.SquareMeter),
			scientific.New(5, quantity.Pascal)),
	)

	It("keeps the authored order across calls", func() {
		labels := func() []string {
			var out []string
			for _, c := range converter.Converters(quantity.Energy) {
				out = append(out, c.Label())
			}
			return out
		}
		first := labels()
		Expect(first).NotTo(BeEmpty())
		Expect(labels()).To(Equal(first))
	})
})
