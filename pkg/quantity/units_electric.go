package quantity

// Electric current
var (
	Ampere      = NewUnit("A", "ampere", ElectricCurrent, 1)
	Milliampere = NewUnit("mA", "milliampere", ElectricCurrent, 1e-3)
	Microampere = NewUnit("µA", "microampere", ElectricCurrent, 1e-6)
	Kiloampere  = NewUnit("kA", "kiloampere", ElectricCurrent, 1e3)
)

// Electric charge
var (
	Coulomb         = NewUnit("C", "coulomb", ElectricCharge, 1)
	Millicoulomb    = NewUnit("mC", "millicoulomb", ElectricCharge, 1e-3)
	Microcoulomb    = NewUnit("µC", "microcoulomb", ElectricCharge, 1e-6)
	AmpereHour      = NewUnit("Ah", "ampere hour", ElectricCharge, 3600)
	MilliampereHour = NewUnit("mAh", "milliampere hour", ElectricCharge, 3.6)
)

// Voltage
var (
	Volt      = NewUnit("V", "volt", Voltage, 1)
	Millivolt = NewUnit("mV", "millivolt", Voltage, 1e-3)
	Microvolt = NewUnit("µV", "microvolt", Voltage, 1e-6)
	Kilovolt  = NewUnit("kV", "kilovolt", Voltage, 1e3)
)

// Electric resistance
var (
	Ohm      = NewUnit("ohm", "ohm", ElectricResistance, 1)
	Milliohm = NewUnit("mohm", "milliohm", ElectricResistance, 1e-3)
	Kiloohm  = NewUnit("kohm", "kiloohm", ElectricResistance, 1e3)
	Megaohm  = NewUnit("Mohm", "megaohm", ElectricResistance, 1e6)
)

// Electric conductance
var (
	Siemens      = NewUnit("S", "siemens", ElectricConductance, 1)
	Millisiemens = NewUnit("mS", "millisiemens", ElectricConductance, 1e-3)
	Microsiemens = NewUnit("µS", "microsiemens", ElectricConductance, 1e-6)
	Mho          = NewUnit("mho", "mho", ElectricConductance, 1)
)

// Electric capacitance
var (
	Farad      = NewUnit("F", "farad", ElectricCapacitance, 1)
	Millifarad = NewUnit("mF", "millifarad", ElectricCapacitance, 1e-3)
	Microfarad = NewUnit("µF", "microfarad", ElectricCapacitance, 1e-6)
	Nanofarad  = NewUnit("nF", "nanofarad", ElectricCapacitance, 1e-9)
	Picofarad  = NewUnit("pF", "picofarad", ElectricCapacitance, 1e-12)
)

// Electric inductance
var (
	Henry      = NewUnit("H", "henry", ElectricInductance, 1)
	Millihenry = NewUnit("mH", "millihenry", ElectricInductance, 1e-3)
	Microhenry = NewUnit("µH", "microhenry", ElectricInductance, 1e-6)
)

// Magnetic flux
var (
	Weber      = NewUnit("Wb", "weber", MagneticFlux, 1)
	Milliweber = NewUnit("mWb", "milliweber", MagneticFlux, 1e-3)
	Maxwell    = NewUnit("Mx", "maxwell", MagneticFlux, 1e-8)
)

// Magnetic induction
var (
	Tesla      = NewUnit("T", "tesla", MagneticInduction, 1)
	Millitesla = NewUnit("mT", "millitesla", MagneticInduction, 1e-3)
	Microtesla = NewUnit("µT", "microtesla", MagneticInduction, 1e-6)
	Gauss      = NewUnit("G", "gauss", MagneticInduction, 1e-4)
)

var electricUnits = [][]Unit{
	{Ampere, Milliampere, Microampere, Kiloampere},
	{Coulomb, Millicoulomb, Microcoulomb, AmpereHour, MilliampereHour},
	{Volt, Millivolt, Microvolt, Kilovolt},
	{Ohm, Milliohm, Kiloohm, Megaohm},
	{Siemens, Millisiemens, Microsiemens, Mho},
	{Farad, Millifarad, Microfarad, Nanofarad, Picofarad},
	{Henry, Millihenry, Microhenry},
	{Weber, Milliweber, Maxwell},
	{Tesla, Millitesla, Microtesla, Gauss},
}
