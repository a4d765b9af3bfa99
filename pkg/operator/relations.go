package operator

import q "github.com/san-kum/sciunits/pkg/quantity"

var defaultRegistry = MustNewRegistry(builtinRelations()...)

// Default returns the process-wide registry of built-in relations.
func Default() *Registry {
	return defaultRegistry
}

func builtinRelations() []Entry {
	products := [][]Entry{
		// geometry and kinematics
		Product(q.Length, q.Length, q.Area),
		Product(q.Area, q.Length, q.Volume),
		Product(q.Speed, q.Time, q.Length),
		Product(q.Length, q.Frequency, q.Speed),
		Product(q.Acceleration, q.Time, q.Speed),
		Product(q.KinematicViscosity, q.Time, q.Area),

		// dynamics
		Product(q.Weight, q.Acceleration, q.Force),
		Product(q.Weight, q.Speed, q.Momentum),
		Product(q.Force, q.Time, q.Momentum),
		Product(q.Pressure, q.Area, q.Force),
		Product(q.SurfaceTension, q.Length, q.Force),
		Product(q.MassFlowRate, q.Speed, q.Force),
		Product(q.Density, q.Volume, q.Weight),

		// energy and power
		Product(q.Force, q.Length, q.Energy),
		Product(q.Power, q.Time, q.Energy),
		Product(q.Pressure, q.Volume, q.Energy),
		Product(q.SurfaceTension, q.Area, q.Energy),
		Product(q.AbsorbedDose, q.Weight, q.Energy),
		Product(q.Force, q.Speed, q.Power),

		// flow
		Product(q.VolumetricFlow, q.Time, q.Volume),
		Product(q.Area, q.Speed, q.VolumetricFlow),
		Product(q.MassFlowRate, q.Time, q.Weight),
		Product(q.Density, q.VolumetricFlow, q.MassFlowRate),
		Product(q.Pressure, q.Time, q.DynamicViscosity),
		Product(q.KinematicViscosity, q.Density, q.DynamicViscosity),

		// electromagnetism
		Product(q.ElectricCurrent, q.Time, q.ElectricCharge),
		Product(q.Voltage, q.ElectricCharge, q.Energy),
		Product(q.Voltage, q.ElectricCurrent, q.Power),
		Product(q.ElectricCurrent, q.ElectricResistance, q.Voltage),
		Product(q.Voltage, q.ElectricConductance, q.ElectricCurrent),
		Product(q.ElectricCapacitance, q.Voltage, q.ElectricCharge),
		Product(q.Voltage, q.Time, q.MagneticFlux),
		Product(q.ElectricInductance, q.ElectricCurrent, q.MagneticFlux),
		Product(q.MagneticInduction, q.Area, q.MagneticFlux),

		// thermodynamics
		Product(q.HeatCapacity, q.Temperature, q.Energy),
		Product(q.SpecificHeatCapacity, q.Weight, q.HeatCapacity),

		// chemistry
		Product(q.CatalyticActivity, q.Time, q.AmountOfSubstance),
		Product(q.MolarMass, q.AmountOfSubstance, q.Weight),
		Product(q.Molarity, q.Volume, q.AmountOfSubstance),
		Product(q.MolarEnergy, q.AmountOfSubstance, q.Energy),
	}

	var all []Entry
	for _, p := range products {
		all = append(all, p...)
	}
	return all
}
