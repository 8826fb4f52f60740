package scoring

import (
	"fmt"
	"math"
	"time"

	"github.com/rbui/rbui/pkg/platform"
)

// LastInspectionCalculator scores the time since the last underwater
// inspection against the inspection interval.
type LastInspectionCalculator struct {
	Weight          float64
	DefaultInterval int // years, used when none is recorded
}

func (c *LastInspectionCalculator) Key() string        { return KeyLastInspection }
func (c *LastInspectionCalculator) Name() string       { return "Last inspection" }
func (c *LastInspectionCalculator) Category() Category { return CategoryCondition }
func (c *LastInspectionCalculator) Bounds() Bounds     { return Bounds{Min: 0, Max: 200} }

func (c *LastInspectionCalculator) Evaluate(p *platform.Platform, asOf time.Time) (float64, error) {
	framing, err := p.FramingScore()
	if err != nil {
		return 0, err
	}

	li := p.LastInspection
	var lastYear int
	switch {
	case li.UnderwaterInspectionDate != nil:
		lastYear = li.UnderwaterInspectionDate.Year()
	case p.InstallationDate != nil:
		lastYear = p.InstallationDate.Year()
	default:
		return 0, platform.ErrMissingInstallationDate
	}
	age := float64(asOf.Year() - lastYear)

	interval := float64(c.DefaultInterval)
	if li.InspectionInterval != nil {
		interval = float64(*li.InspectionInterval)
	}

	tier := tier3(age, interval, interval*2, interval*3, 0, 4, 10, 20)
	return ScaleByFraming(tier, framing) * c.Weight, nil
}

// MechanicalDamageCalculator scores the number of damaged members found at
// the last inspection.
type MechanicalDamageCalculator struct {
	Weight float64
}

func (c *MechanicalDamageCalculator) Key() string        { return KeyMechanicalDamage }
func (c *MechanicalDamageCalculator) Name() string       { return "Mechanical damage" }
func (c *MechanicalDamageCalculator) Category() Category { return CategoryCondition }
func (c *MechanicalDamageCalculator) Bounds() Bounds     { return Bounds{Min: 0, Max: 100} }

func (c *MechanicalDamageCalculator) Evaluate(p *platform.Platform, _ time.Time) (float64, error) {
	framing, err := p.FramingScore()
	if err != nil {
		return 0, err
	}

	tier := 3.0 // unknown
	if n := p.MechanicalDamage.DamagedMembers; n != nil {
		tier = tier3(float64(*n), 0, 3, 6, 0, 3, 7, 10)
	}
	return ScaleByFraming(tier, framing) * c.Weight, nil
}

// CorrosionCalculator averages an anode depletion assessment and a cathodic
// potential assessment.
type CorrosionCalculator struct {
	Weight float64
}

func (c *CorrosionCalculator) Key() string        { return KeyCorrosion }
func (c *CorrosionCalculator) Name() string       { return "Corrosion" }
func (c *CorrosionCalculator) Category() Category { return CategoryCondition }
func (c *CorrosionCalculator) Bounds() Bounds     { return Bounds{Min: 0, Max: 50} }

func (c *CorrosionCalculator) Evaluate(p *platform.Platform, asOf time.Time) (float64, error) {
	cor := p.Corrosion

	designLife := cor.PlatformDesignLife
	if cor.CPDesignLife != nil && *cor.CPDesignLife > 0 {
		designLife = *cor.CPDesignLife
	}
	if designLife < 1 {
		return 0, fmt.Errorf("design life %d years: must be at least 1", designLife)
	}

	anodeDate := cor.AnodeRetrofitDate
	if anodeDate == nil {
		anodeDate = cor.OriginalAnodeInstallationDate
	}
	if anodeDate == nil {
		anodeDate = p.InstallationDate
	}
	if anodeDate == nil {
		return 0, platform.ErrMissingInstallationDate
	}

	depletion := depletionTier(cor, *anodeDate, designLife, asOf)
	potential, err := potentialTier(p, designLife, asOf)
	if err != nil {
		return 0, err
	}

	tier := roundHalfUp((depletion + potential) / 2)
	return tier * c.Weight, nil
}

// depletionTier projects anode depletion (%) to the assessment date. A
// survey whose date and depletion are not both recorded is ignored.
func depletionTier(cor platform.Corrosion, anodeDate time.Time, designLife int, asOf time.Time) float64 {
	expectedRate := roundHalfUp(100 / float64(designLife))

	var projected float64
	if cor.AnodeSurveyDate != nil && cor.AverageDepletion != nil {
		surveyAge := roundedYears(anodeDate, *cor.AnodeSurveyDate)
		if surveyAge == 0 {
			surveyAge = 1
		}
		measuredRate := roundHalfUp(*cor.AverageDepletion / surveyAge)
		rate := math.Max(measuredRate, expectedRate)
		projected = *cor.AverageDepletion + roundedYears(*cor.AnodeSurveyDate, asOf)*rate
	} else {
		anodeAge := roundedYears(anodeDate, asOf)
		if anodeAge >= float64(designLife) {
			return 10
		}
		projected = anodeAge * expectedRate
	}

	return tier3(projected, 10, 50, 75, 0, 3, 7, 10)
}

// potentialTier grades the measured average anode potential (mV), or the
// platform's age against 75% of the design life when none was measured.
func potentialTier(p *platform.Platform, designLife int, asOf time.Time) (float64, error) {
	if v := p.Corrosion.AveragePotential; v != nil && *v != 0 {
		return tier3(*v, -950, -850, -750, 0, 3, 7, 10), nil
	}

	if p.InstallationDate == nil {
		return 0, platform.ErrMissingInstallationDate
	}
	if roundedYears(*p.InstallationDate, asOf) > 0.75*float64(designLife) {
		return 10, nil
	}
	return 3, nil
}

// MarineGrowthCalculator scores the worst marine growth elevation against its
// design thickness.
type MarineGrowthCalculator struct {
	Weight float64
}

func (c *MarineGrowthCalculator) Key() string        { return KeyMarineGrowth }
func (c *MarineGrowthCalculator) Name() string       { return "Marine growth" }
func (c *MarineGrowthCalculator) Category() Category { return CategoryCondition }
func (c *MarineGrowthCalculator) Bounds() Bounds     { return Bounds{Min: 0, Max: 20, Overridable: true} }

func (c *MarineGrowthCalculator) Evaluate(p *platform.Platform, _ time.Time) (float64, error) {
	if len(p.MarineGrowths) == 0 {
		return 3 * c.Weight, nil
	}
	var worst float64
	for _, mg := range p.MarineGrowths {
		worst = math.Max(worst, marineGrowthTier(mg))
	}
	return worst * c.Weight, nil
}

// MarineGrowthEachElevation returns the unweighted tier of every recorded
// elevation, in record order. It is empty under the RSR override.
func MarineGrowthEachElevation(p *platform.Platform) []float64 {
	tiers := []float64{}
	if p.ReserveStrength.Override {
		return tiers
	}
	for _, mg := range p.MarineGrowths {
		tiers = append(tiers, marineGrowthTier(mg))
	}
	return tiers
}

func marineGrowthTier(mg platform.MarineGrowth) float64 {
	d := mg.DesignThickness
	return tier3(mg.InspectedThickness, d, d*1.5, d*2, 0, 3, 7, 10)
}

// ScourCalculator scores measured scour depth against the design allowance.
type ScourCalculator struct {
	Weight float64
}

func (c *ScourCalculator) Key() string        { return KeyScour }
func (c *ScourCalculator) Name() string       { return "Scour" }
func (c *ScourCalculator) Category() Category { return CategoryCondition }
func (c *ScourCalculator) Bounds() Bounds     { return Bounds{Min: 0, Max: 20, Overridable: true} }

func (c *ScourCalculator) Evaluate(p *platform.Platform, _ time.Time) (float64, error) {
	s := p.Scour
	if s.MeasuredDepth == nil {
		return 3 * c.Weight, nil
	}
	d := s.DesignDepth
	return tier3(*s.MeasuredDepth, d, d*2, d*3, 0, 3, 7, 10) * c.Weight, nil
}

// FloodedMemberCalculator projects the flooded member count to the
// assessment date from the growth between the last two inspections.
type FloodedMemberCalculator struct {
	Weight float64
}

func (c *FloodedMemberCalculator) Key() string        { return KeyFloodedMember }
func (c *FloodedMemberCalculator) Name() string       { return "Flooded members" }
func (c *FloodedMemberCalculator) Category() Category { return CategoryCondition }
func (c *FloodedMemberCalculator) Bounds() Bounds     { return Bounds{Min: 0, Max: 100, Overridable: true} }

func (c *FloodedMemberCalculator) Evaluate(p *platform.Platform, asOf time.Time) (float64, error) {
	framing, err := p.FramingScore()
	if err != nil {
		return 0, err
	}

	fm := p.FloodedMember
	var tier float64
	switch {
	case !fm.Complete():
		tier = 3
	case *fm.LastCount == 0:
		tier = 0
	default:
		years := wholeYears(*fm.PreviousInspectionDate, *fm.LastInspectionDate)
		if years == 0 {
			years = 1
		}
		rate := roundHalfUp(float64(*fm.LastCount-*fm.PreviousCount) / float64(years))
		since := wholeYears(*fm.LastInspectionDate, asOf)
		projected := float64(*fm.LastCount) + rate*float64(since)*1.5
		tier = tier3(projected, 3, 9, math.Inf(1), 3, 7, 10, 10)
	}

	return ScaleByFraming(tier, framing) * c.Weight, nil
}

// UnprotectedAppurtenancesCalculator scores unprotected gas risers and
// conductors exposed to vessel impact.
type UnprotectedAppurtenancesCalculator struct {
	Weight        float64
	RiserTier     float64
	ConductorTier float64
}

func (c *UnprotectedAppurtenancesCalculator) Key() string { return KeyUnprotectedAppurtenances }
func (c *UnprotectedAppurtenancesCalculator) Name() string {
	return "Unprotected appurtenances"
}
func (c *UnprotectedAppurtenancesCalculator) Category() Category { return CategoryCondition }
func (c *UnprotectedAppurtenancesCalculator) Bounds() Bounds     { return Bounds{Min: 0, Max: 70} }

func (c *UnprotectedAppurtenancesCalculator) Evaluate(p *platform.Platform, _ time.Time) (float64, error) {
	ua := p.UnprotectedAppurtenances
	var tier float64
	if ua.GasRisers != nil && *ua.GasRisers > 0 {
		tier += c.RiserTier
	}
	if ua.Conductors != nil && *ua.Conductors > 0 {
		tier += c.ConductorTier
	}
	return tier * c.Weight, nil
}
