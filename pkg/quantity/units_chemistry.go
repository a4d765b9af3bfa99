package quantity

// Amount of substance
var (
	Mole      = NewUnit("mol", "mole", AmountOfSubstance, 1)
	Kilomole  = NewUnit("kmol", "kilomole", AmountOfSubstance, 1e3)
	Millimole = NewUnit("mmol", "millimole", AmountOfSubstance, 1e-3)
	Micromole = NewUnit("µmol", "micromole", AmountOfSubstance, 1e-6)
	Nanomole  = NewUnit("nmol", "nanomole", AmountOfSubstance, 1e-9)
)

// Catalytic activity. One enzyme unit converts one micromole per minute.
var (
	Katal      = NewUnit("kat", "katal", CatalyticActivity, 1)
	Microkatal = NewUnit("µkat", "microkatal", CatalyticActivity, 1e-6)
	Nanokatal  = NewUnit("nkat", "nanokatal", CatalyticActivity, 1e-9)
	EnzymeUnit = NewUnit("U", "enzyme unit", CatalyticActivity, 1e-6/60)
)

// Molar mass
var (
	KilogramPerMole = NewUnit("kg/mol", "kilogram per mole", MolarMass, 1)
	GramPerMole     = NewUnit("g/mol", "gram per mole", MolarMass, 1e-3)
)

// Molarity
var (
	MolePerCubicMeter = NewUnit("mol/m3", "mole per cubic meter", Molarity, 1)
	Molar             = NewUnit("M", "molar", Molarity, 1e3)
	Millimolar        = NewUnit("mM", "millimolar", Molarity, 1)
	Micromolar        = NewUnit("µM", "micromolar", Molarity, 1e-3)
)

// Molar energy
var (
	JoulePerMole       = NewUnit("J/mol", "joule per mole", MolarEnergy, 1)
	KilojoulePerMole   = NewUnit("kJ/mol", "kilojoule per mole", MolarEnergy, 1e3)
	KilocaloriePerMole = NewUnit("kcal/mol", "kilocalorie per mole", MolarEnergy, 4184)
)

var chemistryUnits = [][]Unit{
	{Mole, Kilomole, Millimole, Micromole, Nanomole},
	{Katal, Microkatal, Nanokatal, EnzymeUnit},
	{KilogramPerMole, GramPerMole},
	{MolePerCubicMeter, Molar, Millimolar, Micromolar},
	{JoulePerMole, KilojoulePerMole, KilocaloriePerMole},
}
