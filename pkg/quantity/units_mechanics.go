package quantity

// Length
var (
	Meter        = NewUnit("m", "meter", Length, 1)
	Kilometer    = NewUnit("km", "kilometer", Length, 1e3)
	Centimeter   = NewUnit("cm", "centimeter", Length, 1e-2)
	Millimeter   = NewUnit("mm", "millimeter", Length, 1e-3)
	Micrometer   = NewUnit("µm", "micrometer", Length, 1e-6)
	Nanometer    = NewUnit("nm", "nanometer", Length, 1e-9)
	Inch         = NewUnit("in", "inch", Length, 0.0254)
	Foot         = NewUnit("ft", "foot", Length, 0.3048)
	Yard         = NewUnit("yd", "yard", Length, 0.9144)
	Mile         = NewUnit("mi", "mile", Length, 1609.344)
	NauticalMile = NewUnit("nmi", "nautical mile", Length, 1852)
)

// Area
var (
	SquareMeter      = NewUnit("m2", "square meter", Area, 1)
	SquareKilometer  = NewUnit("km2", "square kilometer", Area, 1e6)
	SquareCentimeter = NewUnit("cm2", "square centimeter", Area, 1e-4)
	SquareMillimeter = NewUnit("mm2", "square millimeter", Area, 1e-6)
	Hectare          = NewUnit("ha", "hectare", Area, 1e4)
	Are              = NewUnit("a", "are", Area, 100)
	SquareInch       = NewUnit("in2", "square inch", Area, 0.00064516)
	SquareFoot       = NewUnit("ft2", "square foot", Area, 0.09290304)
	SquareYard       = NewUnit("yd2", "square yard", Area, 0.83612736)
	Acre             = NewUnit("ac", "acre", Area, 4046.8564224)
	SquareMile       = NewUnit("mi2", "square mile", Area, 2589988.110336)
)

// Volume
var (
	CubicMeter      = NewUnit("m3", "cubic meter", Volume, 1)
	Liter           = NewUnit("L", "liter", Volume, 1e-3)
	Deciliter       = NewUnit("dL", "deciliter", Volume, 1e-4)
	Milliliter      = NewUnit("mL", "milliliter", Volume, 1e-6)
	CubicCentimeter = NewUnit("cm3", "cubic centimeter", Volume, 1e-6)
	CubicInch       = NewUnit("in3", "cubic inch", Volume, 1.6387064e-5)
	CubicFoot       = NewUnit("ft3", "cubic foot", Volume, 0.028316846592)
	USGallon        = NewUnit("gal", "US gallon", Volume, 3.785411784e-3)
	USQuart         = NewUnit("qt", "US quart", Volume, 9.46352946e-4)
	USPint          = NewUnit("pt", "US pint", Volume, 4.73176473e-4)
	USFluidOunce    = NewUnit("floz", "US fluid ounce", Volume, 2.95735295625e-5)
	ImperialGallon  = NewUnit("imp-gal", "imperial gallon", Volume, 4.54609e-3)
)

// Weight
var (
	Kilogram  = NewUnit("kg", "kilogram", Weight, 1)
	Gram      = NewUnit("g", "gram", Weight, 1e-3)
	Milligram = NewUnit("mg", "milligram", Weight, 1e-6)
	Microgram = NewUnit("µg", "microgram", Weight, 1e-9)
	Tonne     = NewUnit("t", "tonne", Weight, 1e3)
	Pound     = NewUnit("lb", "pound", Weight, 0.45359237)
	Ounce     = NewUnit("oz", "ounce", Weight, 0.028349523125)
	Stone     = NewUnit("st", "stone", Weight, 6.35029318)
	Grain     = NewUnit("gr", "grain", Weight, 6.479891e-5)
)

// Time
var (
	Second      = NewUnit("s", "second", Time, 1)
	Millisecond = NewUnit("ms", "millisecond", Time, 1e-3)
	Microsecond = NewUnit("µs", "microsecond", Time, 1e-6)
	Nanosecond  = NewUnit("ns", "nanosecond", Time, 1e-9)
	Minute      = NewUnit("min", "minute", Time, 60)
	Hour        = NewUnit("h", "hour", Time, 3600)
	Day         = NewUnit("d", "day", Time, 86400)
	Week        = NewUnit("wk", "week", Time, 604800)
)

// Frequency
var (
	Hertz                = NewUnit("Hz", "hertz", Frequency, 1)
	Kilohertz            = NewUnit("kHz", "kilohertz", Frequency, 1e3)
	Megahertz            = NewUnit("MHz", "megahertz", Frequency, 1e6)
	Gigahertz            = NewUnit("GHz", "gigahertz", Frequency, 1e9)
	RevolutionsPerMinute = NewUnit("rpm", "revolutions per minute", Frequency, 1.0/60)
)

// Speed
var (
	MeterPerSecond   = NewUnit("m/s", "meter per second", Speed, 1)
	KilometerPerHour = NewUnit("km/h", "kilometer per hour", Speed, 1/3.6)
	MilePerHour      = NewUnit("mph", "mile per hour", Speed, 0.44704)
	Knot             = NewUnit("kn", "knot", Speed, 1852.0/3600)
	FootPerSecond    = NewUnit("ft/s", "foot per second", Speed, 0.3048)
)

// Acceleration
var (
	MeterPerSecondSquared = NewUnit("m/s2", "meter per second squared", Acceleration, 1)
	FootPerSecondSquared  = NewUnit("ft/s2", "foot per second squared", Acceleration, 0.3048)
	StandardGravity       = NewUnit("g0", "standard gravity", Acceleration, 9.80665)
	Galileo               = NewUnit("Gal", "galileo", Acceleration, 1e-2)
)

// Force
var (
	Newton        = NewUnit("N", "newton", Force, 1)
	Kilonewton    = NewUnit("kN", "kilonewton", Force, 1e3)
	Dyne          = NewUnit("dyn", "dyne", Force, 1e-5)
	PoundForce    = NewUnit("lbf", "pound-force", Force, 4.4482216152605)
	KilogramForce = NewUnit("kgf", "kilogram-force", Force, 9.80665)
)

// Momentum
var (
	KilogramMeterPerSecond  = NewUnit("kg*m/s", "kilogram meter per second", Momentum, 1)
	GramCentimeterPerSecond = NewUnit("g*cm/s", "gram centimeter per second", Momentum, 1e-5)
	PoundFootPerSecond      = NewUnit("lb*ft/s", "pound foot per second", Momentum, 0.138254954376)
)

// Energy
var (
	Joule              = NewUnit("J", "joule", Energy, 1)
	Kilojoule          = NewUnit("kJ", "kilojoule", Energy, 1e3)
	Megajoule          = NewUnit("MJ", "megajoule", Energy, 1e6)
	WattHour           = NewUnit("Wh", "watt hour", Energy, 3600)
	KilowattHour       = NewUnit("kWh", "kilowatt hour", Energy, 3.6e6)
	Calorie            = NewUnit("cal", "calorie", Energy, 4.184)
	Kilocalorie        = NewUnit("kcal", "kilocalorie", Energy, 4184)
	Electronvolt       = NewUnit("eV", "electronvolt", Energy, 1.602176634e-19)
	BritishThermalUnit = NewUnit("BTU", "british thermal unit", Energy, 1055.05585262)
	Erg                = NewUnit("erg", "erg", Energy, 1e-7)
)

// Power
var (
	Watt       = NewUnit("W", "watt", Power, 1)
	Milliwatt  = NewUnit("mW", "milliwatt", Power, 1e-3)
	Kilowatt   = NewUnit("kW", "kilowatt", Power, 1e3)
	Megawatt   = NewUnit("MW", "megawatt", Power, 1e6)
	Horsepower = NewUnit("hp", "horsepower", Power, 745.69987158227022)
	BTUPerHour = NewUnit("BTU/h", "BTU per hour", Power, 0.29307107017)
)

// Pressure
var (
	Pascal              = NewUnit("Pa", "pascal", Pressure, 1)
	Hectopascal         = NewUnit("hPa", "hectopascal", Pressure, 1e2)
	Kilopascal          = NewUnit("kPa", "kilopascal", Pressure, 1e3)
	Megapascal          = NewUnit("MPa", "megapascal", Pressure, 1e6)
	Bar                 = NewUnit("bar", "bar", Pressure, 1e5)
	Millibar            = NewUnit("mbar", "millibar", Pressure, 1e2)
	Atmosphere          = NewUnit("atm", "atmosphere", Pressure, 101325)
	PoundPerSquareInch  = NewUnit("psi", "pound per square inch", Pressure, 6894.757293168)
	MillimeterOfMercury = NewUnit("mmHg", "millimeter of mercury", Pressure, 133.322387415)
	Torr                = NewUnit("Torr", "torr", Pressure, 101325.0/760)
	InchOfMercury       = NewUnit("inHg", "inch of mercury", Pressure, 3386.389)
)

// Density
var (
	KilogramPerCubicMeter  = NewUnit("kg/m3", "kilogram per cubic meter", Density, 1)
	GramPerCubicCentimeter = NewUnit("g/cm3", "gram per cubic centimeter", Density, 1e3)
	GramPerLiter           = NewUnit("g/L", "gram per liter", Density, 1)
	PoundPerCubicFoot      = NewUnit("lb/ft3", "pound per cubic foot", Density, 16.01846337)
	PoundPerUSGallon       = NewUnit("lb/gal", "pound per US gallon", Density, 119.8264273)
)

var mechanicsUnits = [][]Unit{
	{Meter, Kilometer, Centimeter, Millimeter, Micrometer, Nanometer, Inch, Foot, Yard, Mile, NauticalMile},
	{SquareMeter, SquareKilometer, SquareCentimeter, SquareMillimeter, Hectare, Are, SquareInch, SquareFoot, SquareYard, Acre, SquareMile},
	{CubicMeter, Liter, Deciliter, Milliliter, CubicCentimeter, CubicInch, CubicFoot, USGallon, USQuart, USPint, USFluidOunce, ImperialGallon},
	{Kilogram, Gram, Milligram, Microgram, Tonne, Pound, Ounce, Stone, Grain},
	{Second, Millisecond, Microsecond, Nanosecond, Minute, Hour, Day, Week},
	{Hertz, Kilohertz, Megahertz, Gigahertz, RevolutionsPerMinute},
	{MeterPerSecond, KilometerPerHour, MilePerHour, Knot, FootPerSecond},
	{MeterPerSecondSquared, FootPerSecondSquared, StandardGravity, Galileo},
	{Newton, Kilonewton, Dyne, PoundForce, KilogramForce},
	{KilogramMeterPerSecond, GramCentimeterPerSecond, PoundFootPerSecond},
	{Joule, Kilojoule, Megajoule, WattHour, KilowattHour, Calorie, Kilocalorie, Electronvolt, BritishThermalUnit, Erg},
	{Watt, Milliwatt, Kilowatt, Megawatt, Horsepower, BTUPerHour},
	{Pascal, Hectopascal, Kilopascal, Megapascal, Bar, Millibar, Atmosphere, PoundPerSquareInch, MillimeterOfMercury, Torr, InchOfMercury},
	{KilogramPerCubicMeter, GramPerCubicCentimeter, GramPerLiter, PoundPerCubicFoot, PoundPerUSGallon},
}
