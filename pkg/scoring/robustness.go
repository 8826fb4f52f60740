package scoring

import (
	"time"

	"github.com/rbui/rbui/pkg/platform"
)

// Calculator keys.
const (
	KeyVintage                  = "vintage"
	KeyLegsAndBracing           = "legs_and_bracing"
	KeyLegPileGrouting          = "leg_pile_grouting"
	KeyShallowGas               = "shallow_gas"
	KeyLastInspection           = "last_inspection"
	KeyMechanicalDamage         = "mechanical_damage"
	KeyCorrosion                = "corrosion"
	KeyMarineGrowth             = "marine_growth"
	KeyScour                    = "scour"
	KeyFloodedMember            = "flooded_member"
	KeyUnprotectedAppurtenances = "unprotected_appurtenances"
	KeyDeckLoad                 = "deck_load"
	KeyDeckElevation            = "deck_elevation_wave_in_deck"
	KeyAdditionalAppurtenance   = "additional_appurtenance"
	KeyFatigueLoad              = "fatigue_load"
)

// VintageCalculator scores the design era of the platform. Older design codes
// score higher.
type VintageCalculator struct {
	Weight float64
}

func (c *VintageCalculator) Key() string        { return KeyVintage }
func (c *VintageCalculator) Name() string       { return "Platform vintage" }
func (c *VintageCalculator) Category() Category { return CategoryRobustness }
func (c *VintageCalculator) Bounds() Bounds     { return Bounds{Min: 32, Max: 80, Overridable: true} }

func (c *VintageCalculator) Evaluate(p *platform.Platform, _ time.Time) (float64, error) {
	year, err := p.VintageYear()
	if err != nil {
		return 0, err
	}

	var tier float64
	switch {
	case year > 1979:
		tier = 4
	case year > 1969:
		tier = 6
	default:
		tier = 10
	}
	return tier * c.Weight, nil
}

// LegsAndBracingCalculator scores structural redundancy from the framing table.
type LegsAndBracingCalculator struct {
	Weight float64
}

func (c *LegsAndBracingCalculator) Key() string        { return KeyLegsAndBracing }
func (c *LegsAndBracingCalculator) Name() string       { return "Legs and bracing" }
func (c *LegsAndBracingCalculator) Category() Category { return CategoryRobustness }
func (c *LegsAndBracingCalculator) Bounds() Bounds {
	return Bounds{Min: 20, Max: 100, Overridable: true}
}

func (c *LegsAndBracingCalculator) Evaluate(p *platform.Platform, _ time.Time) (float64, error) {
	framing, err := p.FramingScore()
	if err != nil {
		return 0, err
	}
	return float64(framing) * c.Weight, nil
}

// LegPileGroutingCalculator scores pile-in-leg platforms by whether the
// annulus is grouted, split at the 1975 design era.
type LegPileGroutingCalculator struct {
	Weight float64
}

func (c *LegPileGroutingCalculator) Key() string        { return KeyLegPileGrouting }
func (c *LegPileGroutingCalculator) Name() string       { return "Leg-pile grouting" }
func (c *LegPileGroutingCalculator) Category() Category { return CategoryRobustness }
func (c *LegPileGroutingCalculator) Bounds() Bounds {
	return Bounds{Min: 0, Max: 20, Overridable: true}
}

func (c *LegPileGroutingCalculator) Evaluate(p *platform.Platform, _ time.Time) (float64, error) {
	g := p.LegPileGrouting
	if !g.PileInLegInstallation {
		return 0, nil
	}

	year, err := p.VintageYear()
	if err != nil {
		return 0, err
	}

	// [late design][grouted]
	table := [2][2]float64{
		{10, 4}, // 1975 and earlier
		{4, 0},  // after 1975
	}
	late, grouted := 0, 0
	if year > 1975 {
		late = 1
	}
	if g.LegToPileAnnulusGrouted {
		grouted = 1
	}
	return table[late][grouted] * c.Weight, nil
}

// ShallowGasCalculator scores detected shallow gas, lower when monitored.
type ShallowGasCalculator struct {
	Weight float64
}

func (c *ShallowGasCalculator) Key() string        { return KeyShallowGas }
func (c *ShallowGasCalculator) Name() string       { return "Shallow gas" }
func (c *ShallowGasCalculator) Category() Category { return CategoryRobustness }
func (c *ShallowGasCalculator) Bounds() Bounds     { return Bounds{Min: 0, Max: 20, Overridable: true} }

func (c *ShallowGasCalculator) Evaluate(p *platform.Platform, _ time.Time) (float64, error) {
	var tier float64
	switch {
	case !p.ShallowGas.EffectDetected:
		tier = 0
	case p.ShallowGas.Monitored:
		tier = 5
	default:
		tier = 10
	}
	return tier * c.Weight, nil
}
