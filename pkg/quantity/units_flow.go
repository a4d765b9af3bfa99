package quantity

// Luminous intensity
var (
	Candela      = NewUnit("cd", "candela", LuminousIntensity, 1)
	Millicandela = NewUnit("mcd", "millicandela", LuminousIntensity, 1e-3)
)

// Radioactivity
var (
	Becquerel     = NewUnit("Bq", "becquerel", Radioactivity, 1)
	Kilobecquerel = NewUnit("kBq", "kilobecquerel", Radioactivity, 1e3)
	Megabecquerel = NewUnit("MBq", "megabecquerel", Radioactivity, 1e6)
	Curie         = NewUnit("Ci", "curie", Radioactivity, 3.7e10)
	Millicurie    = NewUnit("mCi", "millicurie", Radioactivity, 3.7e7)
)

// Absorbed dose
var (
	Gray      = NewUnit("Gy", "gray", AbsorbedDose, 1)
	Milligray = NewUnit("mGy", "milligray", AbsorbedDose, 1e-3)
	Rad       = NewUnit("rad", "rad", AbsorbedDose, 1e-2)
)

// Volumetric flow
var (
	CubicMeterPerSecond = NewUnit("m3/s", "cubic meter per second", VolumetricFlow, 1)
	LiterPerSecond      = NewUnit("L/s", "liter per second", VolumetricFlow, 1e-3)
	LiterPerMinute      = NewUnit("L/min", "liter per minute", VolumetricFlow, 1e-3/60)
	CubicMeterPerHour   = NewUnit("m3/h", "cubic meter per hour", VolumetricFlow, 1.0/3600)
	USGallonPerMinute   = NewUnit("gal/min", "US gallon per minute", VolumetricFlow, 3.785411784e-3/60)
	CubicFootPerMinute  = NewUnit("cfm", "cubic foot per minute", VolumetricFlow, 0.028316846592/60)
)

// Mass flow rate
var (
	KilogramPerSecond = NewUnit("kg/s", "kilogram per second", MassFlowRate, 1)
	KilogramPerHour   = NewUnit("kg/h", "kilogram per hour", MassFlowRate, 1.0/3600)
	GramPerSecond     = NewUnit("g/s", "gram per second", MassFlowRate, 1e-3)
	PoundPerSecond    = NewUnit("lb/s", "pound per second", MassFlowRate, 0.45359237)
	TonnePerHour      = NewUnit("t/h", "tonne per hour", MassFlowRate, 1e3/3600)
)

// Dynamic viscosity
var (
	PascalSecond      = NewUnit("Pa*s", "pascal second", DynamicViscosity, 1)
	MillipascalSecond = NewUnit("mPa*s", "millipascal second", DynamicViscosity, 1e-3)
	Poise             = NewUnit("P", "poise", DynamicViscosity, 0.1)
	Centipoise        = NewUnit("cP", "centipoise", DynamicViscosity, 1e-3)
)

// Kinematic viscosity
var (
	SquareMeterPerSecond = NewUnit("m2/s", "square meter per second", KinematicViscosity, 1)
	Stokes               = NewUnit("St", "stokes", KinematicViscosity, 1e-4)
	Centistokes          = NewUnit("cSt", "centistokes", KinematicViscosity, 1e-6)
)

// Surface tension
var (
	NewtonPerMeter      = NewUnit("N/m", "newton per meter", SurfaceTension, 1)
	MillinewtonPerMeter = NewUnit("mN/m", "millinewton per meter", SurfaceTension, 1e-3)
	DynePerCentimeter   = NewUnit("dyn/cm", "dyne per centimeter", SurfaceTension, 1e-3)
)

var flowUnits = [][]Unit{
	{Candela, Millicandela},
	{Becquerel, Kilobecquerel, Megabecquerel, Curie, Millicurie},
	{Gray, Milligray, Rad},
	{CubicMeterPerSecond, LiterPerSecond, LiterPerMinute, CubicMeterPerHour, USGallonPerMinute, CubicFootPerMinute},
	{KilogramPerSecond, KilogramPerHour, GramPerSecond, PoundPerSecond, TonnePerHour},
	{PascalSecond, MillipascalSecond, Poise, Centipoise},
	{SquareMeterPerSecond, Stokes, Centistokes},
	{NewtonPerMeter, MillinewtonPerMeter, DynePerCentimeter},
}
