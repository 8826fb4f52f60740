package scoring

import (
	"time"

	"github.com/rbui/rbui/pkg/platform"
)

// DeckLoadCalculator scores topsides load growth. When the increase over the
// original design load is not known, platform age stands in for it.
type DeckLoadCalculator struct {
	Weight float64
}

func (c *DeckLoadCalculator) Key() string        { return KeyDeckLoad }
func (c *DeckLoadCalculator) Name() string       { return "Deck load" }
func (c *DeckLoadCalculator) Category() Category { return CategoryLoading }
func (c *DeckLoadCalculator) Bounds() Bounds     { return Bounds{Min: 0, Max: 20, Overridable: true} }

func (c *DeckLoadCalculator) Evaluate(p *platform.Platform, asOf time.Time) (float64, error) {
	dl := p.DeckLoad
	if dl.OriginalDesignLoadKnown && dl.LoadIncreasePercent != nil {
		return tier3(*dl.LoadIncreasePercent, 0, 10, 20, 0, 2, 4, 8) * c.Weight, nil
	}

	if p.InstallationDate == nil {
		return 0, platform.ErrMissingInstallationDate
	}
	age := float64(wholeYears(*p.InstallationDate, asOf))

	var tier float64
	switch {
	case age > 20:
		tier = 10
	case age > 10:
		tier = 8
	default:
		tier = 4
	}
	return tier * c.Weight, nil
}

// DeckElevationCalculator scores the cellar deck air gap against the 10, 100
// and 10,000 year wave crests.
type DeckElevationCalculator struct {
	Weight float64
}

func (c *DeckElevationCalculator) Key() string        { return KeyDeckElevation }
func (c *DeckElevationCalculator) Name() string       { return "Deck elevation / wave-in-deck" }
func (c *DeckElevationCalculator) Category() Category { return CategoryLoading }
func (c *DeckElevationCalculator) Bounds() Bounds     { return Bounds{Min: 0, Max: 20, Overridable: true} }

func (c *DeckElevationCalculator) Evaluate(p *platform.Platform, _ time.Time) (float64, error) {
	framing, err := p.FramingScore()
	if err != nil {
		return 0, err
	}

	de := p.DeckElevation
	tier := 5.0
	if de.Complete() {
		cellar, crest, hat := *de.CellarDeckHeight, *de.CrestHeightFactor, *de.HighestAstronomicalTide
		margin := func(wave, surge *float64) float64 {
			return cellar - *wave*crest - *surge - hat
		}
		switch {
		case margin(de.WaveHeight10, de.StormSurge10) < 0:
			tier = 10
		case margin(de.WaveHeight100, de.StormSurge100) < 0:
			tier = 5
		case margin(de.WaveHeight10000, de.StormSurge10000) < 0:
			// Only the extreme crest reaches the deck.
			tier = 0
		default:
			tier = 2
		}
	}

	return ScaleByFraming(tier, framing) * c.Weight, nil
}

// additionalAppurtenanceTable is indexed by design total bracket (<=10, <=20,
// >20) then by additional count bracket (<3, <5, <7, <9, >=9).
var additionalAppurtenanceTable = [3][5]float64{
	{2, 4, 6, 8, 10},
	{0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0},
}

// AdditionalAppurtenanceCalculator scores risers, caissons and conductors
// added beyond the original design.
type AdditionalAppurtenanceCalculator struct {
	Weight float64
}

func (c *AdditionalAppurtenanceCalculator) Key() string { return KeyAdditionalAppurtenance }
func (c *AdditionalAppurtenanceCalculator) Name() string {
	return "Additional appurtenances"
}
func (c *AdditionalAppurtenanceCalculator) Category() Category { return CategoryLoading }
func (c *AdditionalAppurtenanceCalculator) Bounds() Bounds {
	return Bounds{Min: 0, Max: 50, Overridable: true}
}

func (c *AdditionalAppurtenanceCalculator) Evaluate(p *platform.Platform, _ time.Time) (float64, error) {
	aa := p.AdditionalAppurtenance
	added := aa.AdditionalTotal()
	if added <= 0 {
		return 0, nil
	}

	var row int
	switch design := aa.DesignTotal(); {
	case design > 20:
		row = 2
	case design > 10:
		row = 1
	}

	var col int
	switch {
	case added < 3:
		col = 0
	case added < 5:
		col = 1
	case added < 7:
		col = 2
	case added < 9:
		col = 3
	default:
		col = 4
	}

	return additionalAppurtenanceTable[row][col] * c.Weight, nil
}

// FatigueLoadCalculator scores fatigue exposure of pre-1979 designs by water
// depth and conductor guide frame.
type FatigueLoadCalculator struct {
	Weight float64
}

func (c *FatigueLoadCalculator) Key() string        { return KeyFatigueLoad }
func (c *FatigueLoadCalculator) Name() string       { return "Fatigue load" }
func (c *FatigueLoadCalculator) Category() Category { return CategoryLoading }
func (c *FatigueLoadCalculator) Bounds() Bounds     { return Bounds{Min: 0, Max: 10} }

func (c *FatigueLoadCalculator) Evaluate(p *platform.Platform, _ time.Time) (float64, error) {
	year, err := p.VintageYear()
	if err != nil {
		return 0, err
	}
	if year >= 1979 {
		return 0, nil
	}

	// [early design][deep water][guide frame]
	table := [2][2][2]float64{
		{{1, 2}, {2, 4}},  // 1972-1978
		{{4, 6}, {6, 10}}, // before 1972
	}
	fl := p.FatigueLoad
	early, deep, cgf := 0, 0, 0
	if year < 1972 {
		early = 1
	}
	if fl.WaterDepth > 30 {
		deep = 1
	}
	if fl.ConductorGuideFrame {
		cgf = 1
	}
	return table[early][deep][cgf] * c.Weight, nil
}
