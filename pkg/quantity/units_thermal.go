package quantity

// Temperature. Celsius and Fahrenheit carry an offset, so a temperature
// entering a product or quotient is always taken in kelvin first.
var (
	Kelvin     = NewUnit("K", "kelvin", Temperature, 1)
	Celsius    = NewAffineUnit("°C", "celsius", Temperature, 1, 273.15)
	Fahrenheit = NewAffineUnit("°F", "fahrenheit", Temperature, 5.0/9, 459.67*5.0/9)
	Rankine    = NewUnit("°R", "rankine", Temperature, 5.0/9)
)

// Heat capacity
var (
	JoulePerKelvin     = NewUnit("J/K", "joule per kelvin", HeatCapacity, 1)
	KilojoulePerKelvin = NewUnit("kJ/K", "kilojoule per kelvin", HeatCapacity, 1e3)
	CaloriePerKelvin   = NewUnit("cal/K", "calorie per kelvin", HeatCapacity, 4.184)
)

// Specific heat capacity
var (
	JoulePerKilogramKelvin     = NewUnit("J/(kg*K)", "joule per kilogram kelvin", SpecificHeatCapacity, 1)
	KilojoulePerKilogramKelvin = NewUnit("kJ/(kg*K)", "kilojoule per kilogram kelvin", SpecificHeatCapacity, 1e3)
	CaloriePerGramKelvin       = NewUnit("cal/(g*K)", "calorie per gram kelvin", SpecificHeatCapacity, 4184)
	BTUPerPoundFahrenheit      = NewUnit("BTU/(lb*F)", "BTU per pound fahrenheit", SpecificHeatCapacity, 4186.8)
)

var thermalUnits = [][]Unit{
	{Kelvin, Celsius, Fahrenheit, Rankine},
	{JoulePerKelvin, KilojoulePerKelvin, CaloriePerKelvin},
	{JoulePerKilogramKelvin, KilojoulePerKilogramKelvin, CaloriePerGramKelvin, BTUPerPoundFahrenheit},
}
