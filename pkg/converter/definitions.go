package converter

import (
	"github.com/san-kum/sciunits/pkg/operator"
	q "github.com/san-kum/sciunits/pkg/quantity"
)

func times(partner q.Quantity) Definition {
	return Definition{Operator: operator.Multiplication, Partner: partner}
}

func per(partner q.Quantity) Definition {
	return Definition{Operator: operator.Division, Partner: partner}
}

// builtinDefinitions lists, per quantity, the converters offered for it in
// display order: products first, then quotients.
func builtinDefinitions() map[q.Quantity][]Definition {
	return map[q.Quantity][]Definition{
		q.Length: {
			times(q.Length),
			times(q.Area),
			times(q.Frequency),
			times(q.SurfaceTension),
			times(q.Force),
			per(q.Speed),
			per(q.Time),
		},
		q.Area: {
			times(q.Length),
			times(q.Pressure),
			times(q.SurfaceTension),
			times(q.Speed),
			times(q.MagneticInduction),
			per(q.Length),
			per(q.KinematicViscosity),
			per(q.Time),
		},
		q.Volume: {
			times(q.Density),
			times(q.Pressure),
			times(q.Molarity),
			per(q.Area),
			per(q.Length),
			per(q.VolumetricFlow),
			per(q.Time),
		},
		q.Weight: {
			times(q.Acceleration),
			times(q.Speed),
			times(q.AbsorbedDose),
			times(q.SpecificHeatCapacity),
			per(q.Density),
			per(q.Volume),
			per(q.MassFlowRate),
			per(q.Time),
			per(q.MolarMass),
			per(q.AmountOfSubstance),
		},
		q.Time: {
			times(q.Speed),
			times(q.Acceleration),
			times(q.KinematicViscosity),
			times(q.Force),
			times(q.Power),
			times(q.VolumetricFlow),
			times(q.MassFlowRate),
			times(q.Pressure),
			times(q.ElectricCurrent),
			times(q.Voltage),
			times(q.CatalyticActivity),
		},
		q.Frequency: {
			times(q.Length),
		},
		q.Speed: {
			times(q.Time),
			times(q.Weight),
			times(q.MassFlowRate),
			times(q.Force),
			times(q.Area),
			per(q.Length),
			per(q.Frequency),
			per(q.Acceleration),
			per(q.Time),
		},
		q.Acceleration: {
			times(q.Time),
			times(q.Weight),
		},
		q.Force: {
			times(q.Time),
			times(q.Length),
			times(q.Speed),
			per(q.Weight),
			per(q.Acceleration),
			per(q.Pressure),
			per(q.Area),
			per(q.SurfaceTension),
			per(q.Length),
			per(q.MassFlowRate),
			per(q.Speed),
		},
		q.Momentum: {
			per(q.Weight),
			per(q.Speed),
			per(q.Force),
			per(q.Time),
		},
		q.Energy: {
			per(q.Force),
			per(q.Length),
			per(q.Power),
			per(q.Time),
			per(q.Pressure),
			per(q.Volume),
			per(q.SurfaceTension),
			per(q.Area),
			per(q.AbsorbedDose),
			per(q.Weight),
			per(q.Voltage),
			per(q.ElectricCharge),
			per(q.HeatCapacity),
			per(q.Temperature),
			per(q.MolarEnergy),
			per(q.AmountOfSubstance),
		},
		q.Power: {
			times(q.Time),
			per(q.Force),
			per(q.Speed),
			per(q.Voltage),
			per(q.ElectricCurrent),
		},
		q.Pressure: {
			times(q.Area),
			times(q.Volume),
			times(q.Time),
		},
		q.Density: {
			times(q.Volume),
			times(q.VolumetricFlow),
			times(q.KinematicViscosity),
		},
		q.ElectricCurrent: {
			times(q.Time),
			times(q.Voltage),
			times(q.ElectricResistance),
			times(q.ElectricInductance),
			per(q.Voltage),
			per(q.ElectricConductance),
		},
		q.ElectricCharge: {
			times(q.Voltage),
			per(q.ElectricCurrent),
			per(q.Time),
			per(q.ElectricCapacitance),
			per(q.Voltage),
		},
		q.Voltage: {
			times(q.ElectricCharge),
			times(q.ElectricCurrent),
			times(q.ElectricConductance),
			times(q.ElectricCapacitance),
			times(q.Time),
			per(q.ElectricCurrent),
			per(q.ElectricResistance),
		},
		q.ElectricResistance: {
			times(q.ElectricCurrent),
		},
		q.ElectricConductance: {
			times(q.Voltage),
		},
		q.ElectricCapacitance: {
			times(q.Voltage),
		},
		q.ElectricInductance: {
			times(q.ElectricCurrent),
		},
		q.MagneticFlux: {
			per(q.Voltage),
			per(q.Time),
			per(q.ElectricInductance),
			per(q.ElectricCurrent),
			per(q.MagneticInduction),
			per(q.Area),
		},
		q.MagneticInduction: {
			times(q.Area),
		},
		q.Temperature: {
			times(q.HeatCapacity),
		},
		q.AmountOfSubstance: {
			times(q.MolarMass),
			times(q.MolarEnergy),
			per(q.CatalyticActivity),
			per(q.Time),
			per(q.Molarity),
			per(q.Volume),
		},
		q.CatalyticActivity: {
			times(q.Time),
		},
		q.MolarMass: {
			times(q.AmountOfSubstance),
		},
		q.Molarity: {
			times(q.Volume),
		},
		q.MolarEnergy: {
			times(q.AmountOfSubstance),
		},
		q.LuminousIntensity: {},
		q.Radioactivity: {},
		q.AbsorbedDose: {
			times(q.Weight),
		},
		q.VolumetricFlow: {
			times(q.Time),
			times(q.Density),
			per(q.Area),
			per(q.Speed),
		},
		q.MassFlowRate: {
			times(q.Speed),
			times(q.Time),
			per(q.Density),
			per(q.VolumetricFlow),
		},
		q.HeatCapacity: {
			times(q.Temperature),
			per(q.SpecificHeatCapacity),
			per(q.Weight),
		},
		q.SpecificHeatCapacity: {
			times(q.Weight),
		},
		q.DynamicViscosity: {
			per(q.Pressure),
			per(q.Time),
			per(q.KinematicViscosity),
			per(q.Density),
		},
		q.KinematicViscosity: {
			times(q.Time),
			times(q.Density),
		},
		q.SurfaceTension: {
			times(q.Length),
			times(q.Area),
		},
	}
}
