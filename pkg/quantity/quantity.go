package quantity

import (
	"fmt"
	"strings"
)

// Quantity tags a kind of physical measurement.
type Quantity int

const (
	Unknown Quantity = iota
	Length
	Area
	Volume
	Weight
	Time
	Frequency
	Speed
	Acceleration
	Force
	Momentum
	Energy
	Power
	Pressure
	Density
	ElectricCurrent
	ElectricCharge
	Voltage
	ElectricResistance
	ElectricConductance
	ElectricCapacitance
	ElectricInductance
	MagneticFlux
	MagneticInduction
	Temperature
	AmountOfSubstance
	CatalyticActivity
	MolarMass
	Molarity
	MolarEnergy
	LuminousIntensity
	Radioactivity
	AbsorbedDose
	VolumetricFlow
	MassFlowRate
	HeatCapacity
	SpecificHeatCapacity
	DynamicViscosity
	KinematicViscosity
	SurfaceTension

	numQuantities
)

type descriptor struct {
	name string
	dim  Dimension
}

var descriptors = [numQuantities]descriptor{
	Unknown:              {"Unknown", Dimension{}},
	Length:               {"Length", Dimension{Length: 1}},
	Area:                 {"Area", Dimension{Length: 2}},
	Volume:               {"Volume", Dimension{Length: 3}},
	Weight:               {"Weight", Dimension{Mass: 1}},
	Time:                 {"Time", Dimension{Time: 1}},
	Frequency:            {"Frequency", Dimension{Time: -1}},
	Speed:                {"Speed", Dimension{Length: 1, Time: -1}},
	Acceleration:         {"Acceleration", Dimension{Length: 1, Time: -2}},
	Force:                {"Force", Dimension{Length: 1, Mass: 1, Time: -2}},
	Momentum:             {"Momentum", Dimension{Length: 1, Mass: 1, Time: -1}},
	Energy:               {"Energy", Dimension{Length: 2, Mass: 1, Time: -2}},
	Power:                {"Power", Dimension{Length: 2, Mass: 1, Time: -3}},
	Pressure:             {"Pressure", Dimension{Length: -1, Mass: 1, Time: -2}},
	Density:              {"Density", Dimension{Length: -3, Mass: 1}},
	ElectricCurrent:      {"Electric Current", Dimension{Current: 1}},
	ElectricCharge:       {"Electric Charge", Dimension{Time: 1, Current: 1}},
	Voltage:              {"Voltage", Dimension{Length: 2, Mass: 1, Time: -3, Current: -1}},
	ElectricResistance:   {"Electric Resistance", Dimension{Length: 2, Mass: 1, Time: -3, Current: -2}},
	ElectricConductance:  {"Electric Conductance", Dimension{Length: -2, Mass: -1, Time: 3, Current: 2}},
	ElectricCapacitance:  {"Electric Capacitance", Dimension{Length: -2, Mass: -1, Time: 4, Current: 2}},
	ElectricInductance:   {"Electric Inductance", Dimension{Length: 2, Mass: 1, Time: -2, Current: -2}},
	MagneticFlux:         {"Magnetic Flux", Dimension{Length: 2, Mass: 1, Time: -2, Current: -1}},
	MagneticInduction:    {"Magnetic Induction", Dimension{Mass: 1, Time: -2, Current: -1}},
	Temperature:          {"Temperature", Dimension{Temperature: 1}},
	AmountOfSubstance:    {"Amount of Substance", Dimension{Amount: 1}},
	CatalyticActivity:    {"Catalytic Activity", Dimension{Time: -1, Amount: 1}},
	MolarMass:            {"Molar Mass", Dimension{Mass: 1, Amount: -1}},
	Molarity:             {"Molarity", Dimension{Length: -3, Amount: 1}},
	MolarEnergy:          {"Molar Energy", Dimension{Length: 2, Mass: 1, Time: -2, Amount: -1}},
	LuminousIntensity:    {"Luminous Intensity", Dimension{Luminosity: 1}},
	Radioactivity:        {"Radioactivity", Dimension{Time: -1}},
	AbsorbedDose:         {"Absorbed Dose", Dimension{Length: 2, Time: -2}},
	VolumetricFlow:       {"Volumetric Flow", Dimension{Length: 3, Time: -1}},
	MassFlowRate:         {"Mass Flow Rate", Dimension{Mass: 1, Time: -1}},
	HeatCapacity:         {"Heat Capacity", Dimension{Length: 2, Mass: 1, Time: -2, Temperature: -1}},
	SpecificHeatCapacity: {"Specific Heat Capacity", Dimension{Length: 2, Time: -2, Temperature: -1}},
	DynamicViscosity:     {"Dynamic Viscosity", Dimension{Length: -1, Mass: 1, Time: -1}},
	KinematicViscosity:   {"Kinematic Viscosity", Dimension{Length: 2, Time: -1}},
	SurfaceTension:       {"Surface Tension", Dimension{Mass: 1, Time: -2}},
}

// All returns every known quantity in declaration order.
func All() []Quantity {
	qs := make([]Quantity, 0, numQuantities-1)
	for q := Unknown + 1; q < numQuantities; q++ {
		qs = append(qs, q)
	}
	return qs
}

func (q Quantity) Valid() bool {
	return q > Unknown && q < numQuantities
}

func (q Quantity) String() string {
	if q < Unknown || q >= numQuantities {
		return fmt.Sprintf("Quantity(%d)", int(q))
	}
	return descriptors[q].name
}

// Dimension returns the SI base-dimension exponents of q.
func (q Quantity) Dimension() Dimension {
	if !q.Valid() {
		return Dimension{}
	}
	return descriptors[q].dim
}

// SIUnit returns the canonical unit of q. The zero Unit is returned for an
// invalid quantity.
func (q Quantity) SIUnit() Unit {
	return units.canonical[q]
}

// Units returns the registered units of q, canonical unit first.
func (q Quantity) Units() []Unit {
	us := units.byQuantity[q]
	out := make([]Unit, len(us))
	copy(out, us)
	return out
}

// ParseQuantity resolves a quantity from its name. Matching ignores case,
// spaces, dashes and underscores, so "catalytic-activity" and
// "CatalyticActivity" both resolve.
func ParseQuantity(name string) (Quantity, error) {
	key := normalizeName(name)
	for _, q := range All() {
		if normalizeName(q.String()) == key {
			return q, nil
		}
	}
	return Unknown, fmt.Errorf("quantity: unknown quantity %q", name)
}

func normalizeName(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}
