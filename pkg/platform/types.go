// Package platform defines the platform record consumed by the RBUI scoring
// engine. A Platform is a read-only snapshot of everything recorded about one
// offshore jacket: identity and dates, structural attributes, condition and
// loading records, and the consequence inputs.
//
// Nullable attributes are pointers; a nil pointer means "not recorded" and the
// scoring engine substitutes its documented fallback.
package platform

import "time"

// Category is a consequence letter grade, A (lowest) to E (highest).
type Category string

const (
	CategoryA Category = "A"
	CategoryB Category = "B"
	CategoryC Category = "C"
	CategoryD Category = "D"
	CategoryE Category = "E"
)

// Valid reports whether c is one of the letters A-E.
func (c Category) Valid() bool {
	return len(c) == 1 && c >= CategoryA && c <= CategoryE
}

// Platform is the scoring snapshot of a single offshore platform.
type Platform struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	FieldName   string `json:"field_name,omitempty"`

	InstallationDate *time.Time `json:"installation_date,omitempty"`
	DesignDate       *time.Time `json:"design_date,omitempty"`
	AssessmentDate   *time.Time `json:"assessment_date,omitempty"`

	BracingType      int `json:"bracing_type"`        // 1-3
	NumberOfLegsType int `json:"number_of_legs_type"` // 1-5

	LegPileGrouting          LegPileGrouting          `json:"leg_pile_grouting"`
	ShallowGas               ShallowGas               `json:"shallow_gas"`
	LastInspection           LastInspection           `json:"last_inspection"`
	MechanicalDamage         MechanicalDamage         `json:"mechanical_damage"`
	Corrosion                Corrosion                `json:"corrosion"`
	MarineGrowths            []MarineGrowth           `json:"marine_growths"`
	Scour                    Scour                    `json:"scour"`
	FloodedMember            FloodedMember            `json:"flooded_member"`
	UnprotectedAppurtenances UnprotectedAppurtenances `json:"unprotected_appurtenances"`

	DeckLoad               DeckLoad               `json:"deck_load"`
	DeckElevation          DeckElevation          `json:"deck_elevation_wave_in_deck"`
	AdditionalAppurtenance AdditionalAppurtenance `json:"additional_appurtenance"`
	FatigueLoad            FatigueLoad            `json:"fatigue_load"`

	ReserveStrength          ReserveStrength          `json:"reserve_strength_ratio"`
	EnvironmentalConsequence EnvironmentalConsequence `json:"environmental_consequence"`
	EconomicConsequence      EconomicConsequence      `json:"economic_impact_consequence"`

	MannedStatus          *Category `json:"manned_status,omitempty"`
	EnvironmentalCategory *Category `json:"environmental_consequence_category,omitempty"`
	EconomicCategory      *Category `json:"economic_consequence_category,omitempty"`

	// Inspections holds the level 1, 2 and 3 inspection trackers in that order.
	Inspections [3]LevelInspection `json:"inspections"`
}

// LegPileGrouting records whether piles run inside the legs and whether the
// annulus was grouted.
type LegPileGrouting struct {
	PileInLegInstallation   bool `json:"pile_in_leg_installation"`
	LegToPileAnnulusGrouted bool `json:"leg_to_pile_annulus_grouted"`
}

type ShallowGas struct {
	EffectDetected bool `json:"effect_detected"`
	Monitored      bool `json:"monitored"`
}

type LastInspection struct {
	UnderwaterInspectionDate *time.Time `json:"underwater_inspection_date,omitempty"`
	InspectionInterval       *int       `json:"inspection_interval,omitempty"` // years
}

type MechanicalDamage struct {
	DamagedMembers *int `json:"damaged_members,omitempty"`
}

// Corrosion holds cathodic protection data. AnodeSurveyDate and
// AverageDepletion are recorded together or not at all.
type Corrosion struct {
	PlatformDesignLife            int        `json:"platform_design_life"` // years
	CPDesignLife                  *int       `json:"cp_design_life,omitempty"`
	OriginalAnodeInstallationDate *time.Time `json:"original_anode_installation_date,omitempty"`
	AnodeRetrofitDate             *time.Time `json:"anode_retrofit_date,omitempty"`
	AnodeSurveyDate               *time.Time `json:"anode_survey_date,omitempty"`
	AverageDepletion              *float64   `json:"average_depletion,omitempty"` // %
	AveragePotential              *float64   `json:"average_potential,omitempty"` // mV
}

// MarineGrowth is one inspected elevation band.
type MarineGrowth struct {
	FromElevation      *float64 `json:"from_elevation,omitempty"`
	ToElevation        *float64 `json:"to_elevation,omitempty"`
	InspectedThickness float64  `json:"inspected_thickness"`
	DesignThickness    float64  `json:"design_thickness"`
}

type Scour struct {
	DesignDepth   float64  `json:"design_depth"`
	MeasuredDepth *float64 `json:"measured_depth,omitempty"`
}

// FloodedMember fields are either all set or all nil.
type FloodedMember struct {
	LastCount              *int       `json:"last_count,omitempty"`
	LastInspectionDate     *time.Time `json:"last_inspection_date,omitempty"`
	PreviousInspectionDate *time.Time `json:"previous_inspection_date,omitempty"`
	PreviousCount          *int       `json:"previous_count,omitempty"`
}

// Complete reports whether all four flooded-member fields are set.
func (f FloodedMember) Complete() bool {
	return f.LastCount != nil && f.LastInspectionDate != nil &&
		f.PreviousInspectionDate != nil && f.PreviousCount != nil
}

// Empty reports whether no flooded-member field is set.
func (f FloodedMember) Empty() bool {
	return f.LastCount == nil && f.LastInspectionDate == nil &&
		f.PreviousInspectionDate == nil && f.PreviousCount == nil
}

type UnprotectedAppurtenances struct {
	GasRisers  *int `json:"gas_risers,omitempty"`
	Conductors *int `json:"conductors,omitempty"`
}

type DeckLoad struct {
	OriginalDesignLoadKnown bool     `json:"original_design_load_known"`
	LoadIncreasePercent     *float64 `json:"load_increase_percent,omitempty"`
}

// DeckElevation holds the wave-in-deck inputs (metres). The group is either
// fully recorded or not at all.
type DeckElevation struct {
	CellarDeckHeight        *float64 `json:"cellar_deck_height,omitempty"`
	WaveHeight10            *float64 `json:"max_wave_height_10_years,omitempty"`
	StormSurge10            *float64 `json:"storm_surge_10_years,omitempty"`
	WaveHeight100           *float64 `json:"max_wave_height_100_years,omitempty"`
	StormSurge100           *float64 `json:"storm_surge_100_years,omitempty"`
	WaveHeight10000         *float64 `json:"max_wave_height_10000_years,omitempty"`
	StormSurge10000         *float64 `json:"storm_surge_10000_years,omitempty"`
	HighestAstronomicalTide *float64 `json:"highest_astronomical_tide,omitempty"`
	CrestHeightFactor       *float64 `json:"crest_height_factor,omitempty"`
}

func (d DeckElevation) fields() []*float64 {
	return []*float64{
		d.CellarDeckHeight,
		d.WaveHeight10, d.StormSurge10,
		d.WaveHeight100, d.StormSurge100,
		d.WaveHeight10000, d.StormSurge10000,
		d.HighestAstronomicalTide, d.CrestHeightFactor,
	}
}

// Complete reports whether every deck elevation field is set.
func (d DeckElevation) Complete() bool {
	for _, f := range d.fields() {
		if f == nil {
			return false
		}
	}
	return true
}

// Empty reports whether no deck elevation field is set.
func (d DeckElevation) Empty() bool {
	for _, f := range d.fields() {
		if f != nil {
			return false
		}
	}
	return true
}

type AdditionalAppurtenance struct {
	DesignRisers         int `json:"design_risers"`
	DesignCaissons       int `json:"design_caissons"`
	DesignConductors     int `json:"design_conductors"`
	AdditionalRisers     int `json:"additional_risers"`
	AdditionalCaissons   int `json:"additional_caissons"`
	AdditionalConductors int `json:"additional_conductors"`
}

// DesignTotal is the number of risers, caissons and conductors in the design.
func (a AdditionalAppurtenance) DesignTotal() int {
	return a.DesignRisers + a.DesignCaissons + a.DesignConductors
}

// AdditionalTotal is the number of risers, caissons and conductors added since.
func (a AdditionalAppurtenance) AdditionalTotal() int {
	return a.AdditionalRisers + a.AdditionalCaissons + a.AdditionalConductors
}

type FatigueLoad struct {
	WaterDepth          float64 `json:"water_depth"` // metres
	ConductorGuideFrame bool    `json:"conductor_guide_frame"`
}

// ReserveStrength carries the reserve strength ratio and the engineer's
// decision to let it replace the structural sub-scores.
type ReserveStrength struct {
	Ratio    float64 `json:"ratio"`
	Override bool    `json:"override"`
}

type EnvironmentalConsequence struct {
	PlatformType        string  `json:"platform_type,omitempty"`
	DailyOilProduction  float64 `json:"daily_oil_production"`  // bbl
	LeakageFraction     float64 `json:"leakage_fraction"`      // fraction of production lost
	FixedCleanupCost    float64 `json:"fixed_cleanup_cost"`    // $
	VariableCleanupCost float64 `json:"variable_cleanup_cost"` // $/bbl
	OilPrice            float64 `json:"oil_price"`             // $/bbl
}

type EconomicConsequence struct {
	DailyGasProduction              float64 `json:"daily_gas_production"`
	GasPrice                        float64 `json:"gas_price"`
	DiscountRate                    float64 `json:"discount_rate"`
	RemainingProductionLossFraction float64 `json:"remaining_production_loss_fraction"`
	ReplacementCost                 float64 `json:"replacement_cost"`
	ReplacementTimeDays             int     `json:"replacement_time_days"`
}

// LevelInspection tracks the last inspection and the interval selected for
// the next one at a single inspection level.
type LevelInspection struct {
	LastDate *time.Time `json:"last_date,omitempty"`
	Interval *int       `json:"interval,omitempty"` // years
}
