package scoring

// DefaultWeights holds the default weights for all sub-score calculators.
type DefaultWeights struct {
	// Robustness
	Vintage         float64
	LegsAndBracing  float64
	LegPileGrouting float64
	ShallowGas      float64

	// Condition
	LastInspection           float64
	MechanicalDamage         float64
	Corrosion                float64
	MarineGrowth             float64
	Scour                    float64
	FloodedMember            float64
	UnprotectedAppurtenances float64

	// Loading
	DeckLoad               float64
	DeckElevation          float64
	AdditionalAppurtenance float64
	FatigueLoad            float64

	// Default inspection interval (years) when none is recorded.
	DefaultInspectionInterval int
}

// Defaults returns the default scoring weights.
func Defaults() DefaultWeights {
	return DefaultWeights{
		Vintage:         8,
		LegsAndBracing:  10,
		LegPileGrouting: 2,
		ShallowGas:      2,

		LastInspection:           10,
		MechanicalDamage:         10,
		Corrosion:                5,
		MarineGrowth:             2,
		Scour:                    2,
		FloodedMember:            10,
		UnprotectedAppurtenances: 5,

		DeckLoad:               2,
		DeckElevation:          2,
		AdditionalAppurtenance: 5,
		FatigueLoad:            1,

		DefaultInspectionInterval: 5,
	}
}

// WithOverrides returns a copy of w with the named weights replaced. Keys are
// calculator keys ("vintage", "corrosion", ...); unknown keys are ignored.
func (w DefaultWeights) WithOverrides(overrides map[string]float64) DefaultWeights {
	fields := map[string]*float64{
		KeyVintage:                  &w.Vintage,
		KeyLegsAndBracing:           &w.LegsAndBracing,
		KeyLegPileGrouting:          &w.LegPileGrouting,
		KeyShallowGas:               &w.ShallowGas,
		KeyLastInspection:           &w.LastInspection,
		KeyMechanicalDamage:         &w.MechanicalDamage,
		KeyCorrosion:                &w.Corrosion,
		KeyMarineGrowth:             &w.MarineGrowth,
		KeyScour:                    &w.Scour,
		KeyFloodedMember:            &w.FloodedMember,
		KeyUnprotectedAppurtenances: &w.UnprotectedAppurtenances,
		KeyDeckLoad:                 &w.DeckLoad,
		KeyDeckElevation:            &w.DeckElevation,
		KeyAdditionalAppurtenance:   &w.AdditionalAppurtenance,
		KeyFatigueLoad:              &w.FatigueLoad,
	}
	for k, v := range overrides {
		if f, ok := fields[k]; ok {
			*f = v
		}
	}
	return w
}
