package scoring

// DefaultCalculators returns the standard set of calculators with default
// weights.
func DefaultCalculators() []Calculator {
	return CalculatorsWithWeights(Defaults())
}

// CalculatorsWithWeights returns the standard calculators in reporting order
// using the given weights.
func CalculatorsWithWeights(w DefaultWeights) []Calculator {
	interval := w.DefaultInspectionInterval
	if interval <= 0 {
		interval = Defaults().DefaultInspectionInterval
	}
	return []Calculator{
		// Robustness
		&VintageCalculator{Weight: w.Vintage},
		&LegsAndBracingCalculator{Weight: w.LegsAndBracing},
		&LegPileGroutingCalculator{Weight: w.LegPileGrouting},
		&ShallowGasCalculator{Weight: w.ShallowGas},

		// Condition
		&LastInspectionCalculator{Weight: w.LastInspection, DefaultInterval: interval},
		&MechanicalDamageCalculator{Weight: w.MechanicalDamage},
		&CorrosionCalculator{Weight: w.Corrosion},
		&MarineGrowthCalculator{Weight: w.MarineGrowth},
		&ScourCalculator{Weight: w.Scour},
		&FloodedMemberCalculator{Weight: w.FloodedMember},
		&UnprotectedAppurtenancesCalculator{
			Weight:        w.UnprotectedAppurtenances,
			RiserTier:     8,
			ConductorTier: 6,
		},

		// Loading
		&DeckLoadCalculator{Weight: w.DeckLoad},
		&DeckElevationCalculator{Weight: w.DeckElevation},
		&AdditionalAppurtenanceCalculator{Weight: w.AdditionalAppurtenance},
		&FatigueLoadCalculator{Weight: w.FatigueLoad},
	}
}
