// Package scoring implements the RBUI structural risk scoring engine. It turns
// a platform snapshot into sub-scores, category totals, a Likelihood of
// Failure ranking, consequence categories, a risk ranking and an inspection
// plan.
package scoring

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rbui/rbui/pkg/platform"
)

// ScoreResult is the complete output of scoring a platform.
// Immutable once computed.
type ScoreResult struct {
	PlatformID     string    `json:"platform_id,omitempty"`
	PlatformName   string    `json:"platform_name,omitempty"`
	AssessmentDate time.Time `json:"assessment_date"`

	Breakdown               []SubScore      `json:"breakdown"`
	MarineGrowthByElevation []float64       `json:"marine_growth_each_elevation"`
	Categories              []CategoryTotal `json:"categories"`

	RSROverrideScore float64 `json:"rsr_override_score"`
	TotalScore       float64 `json:"total_score"`
	LOFRanking       int     `json:"lof_ranking"` // 1-5
	Complete         bool    `json:"complete"`    // every sub-score and derivation was available

	EnvironmentalConsequence *decimal.Decimal `json:"calculated_environmental_consequence,omitempty"`
	EconomicImpact           EconomicImpact   `json:"economic_impact"`

	EnvironmentalCategory platform.Category `json:"environmental_consequence_category,omitempty"`
	EconomicCategory      platform.Category `json:"economic_consequence_category,omitempty"`
	FinalConsequence      platform.Category `json:"final_consequence_category,omitempty"`
	ExposureLevel         ExposureLevel     `json:"exposure_category_level,omitempty"`
	SurveyIntervals       [3]string         `json:"survey_intervals"`

	RiskRanking        RiskRanking `json:"risk_ranking,omitempty"`
	InspectionInterval int         `json:"risk_based_underwater_inspection_interval,omitempty"` // years, 0 when undefined

	NextInspectionDates [3]*time.Time    `json:"next_inspection_dates"`
	Schedule            []ScheduleEntry  `json:"next_10_years_inspection_plan"`
	Issues              []platform.Issue `json:"issues,omitempty"`

	// Unavailable names the derivation steps (lof, consequence, risk,
	// schedule) that faulted and were left undefined.
	Unavailable []string `json:"unavailable,omitempty"`
}

// SubScore is the output of a single calculator.
type SubScore struct {
	Key        string   `json:"key"`  // machine key: "corrosion"
	Name       string   `json:"name"` // human name: "Corrosion"
	Category   Category `json:"category"`
	Value      float64  `json:"value"`
	Min        float64  `json:"min"`
	Max        float64  `json:"max"`
	Overridden bool     `json:"overridden,omitempty"` // forced to 0 by the RSR override
	Available  bool     `json:"available"`
	Error      string   `json:"error,omitempty"`
}

// Category groups sub-scores into the three LOF categories.
type Category string

const (
	CategoryRobustness Category = "robustness"
	CategoryCondition  Category = "condition"
	CategoryLoading    Category = "loading"
)

// Categories lists the LOF categories in reporting order.
var Categories = []Category{CategoryRobustness, CategoryCondition, CategoryLoading}

// CategoryTotal is the sum of the sub-scores in one category.
type CategoryTotal struct {
	Category Category `json:"category"`
	Score    float64  `json:"score"`
	Complete bool     `json:"complete"`
}

// ExposureLevel is the survey rigor tier. The empty value means it could not
// be classified.
type ExposureLevel string

const (
	ExposureL1 ExposureLevel = "L-1"
	ExposureL2 ExposureLevel = "L-2"
	ExposureL3 ExposureLevel = "L-3"
)

// RiskRanking combines LOF ranking and consequence. The empty value means it
// could not be classified.
type RiskRanking string

const (
	RiskVeryLow  RiskRanking = "VL"
	RiskLow      RiskRanking = "L"
	RiskMedium   RiskRanking = "M"
	RiskHigh     RiskRanking = "H"
	RiskVeryHigh RiskRanking = "VH"
)

// EconomicImpact holds the economic consequence figures for a platform.
type EconomicImpact struct {
	DailyRevenue             decimal.Decimal `json:"daily_revenue"`
	ReplacementLoss          decimal.Decimal `json:"replacement_loss"`
	DiscountedProductionLoss decimal.Decimal `json:"discounted_production_loss"`
	ImpactMillions           decimal.Decimal `json:"calculated_economic_impact_consequence"`
	RemainingLifeYears       int             `json:"remaining_life_years"`
	RemainingLifeMillions    decimal.Decimal `json:"economic_impact_remaining_life_services"`
	ReplacementFavored       bool            `json:"structure_replacement_decision"`
}

// ScheduleEntry is one year of the forward inspection plan.
type ScheduleEntry struct {
	Year  int    `json:"year"`
	Level string `json:"level"`
}

// Score returns the sub-score with the given key, if present.
func (r *ScoreResult) Score(key string) (SubScore, bool) {
	for _, s := range r.Breakdown {
		if s.Key == key {
			return s, true
		}
	}
	return SubScore{}, false
}

// Category returns the total for one category.
func (r *ScoreResult) Category(c Category) CategoryTotal {
	for _, ct := range r.Categories {
		if ct.Category == c {
			return ct
		}
	}
	return CategoryTotal{Category: c}
}
