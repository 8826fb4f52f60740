package scoring_test

import (
	"testing"
	"time"

	"github.com/rbui/rbui/pkg/platform"
	"github.com/rbui/rbui/pkg/scoring"
)

func cat(c platform.Category) *platform.Category { return &c }

func TestFinalConsequenceCategory(t *testing.T) {
	tests := []struct {
		name              string
		manned, env, econ *platform.Category
		want              platform.Category
	}{
		{"all unset", nil, nil, nil, ""},
		{"worst of env and econ", nil, cat("C"), cat("B"), "C"},
		{"manned only", cat("D"), nil, nil, "D"},
		{"econ worst", cat("A"), cat("B"), cat("E"), "E"},
		{"all A", cat("A"), cat("A"), cat("A"), "A"},
		{"manned worst", cat("D"), cat("C"), cat("C"), "D"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scoring.FinalConsequenceCategory(tt.manned, tt.env, tt.econ); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestExposureLevelFor(t *testing.T) {
	tests := []struct {
		manned *platform.Category
		final  platform.Category
		want   scoring.ExposureLevel
	}{
		{nil, "C", ""},
		{cat("A"), "", ""},
		{cat("E"), "A", scoring.ExposureL1},
		{cat("D"), "B", scoring.ExposureL1},
		{cat("C"), "D", scoring.ExposureL1},
		{cat("C"), "C", scoring.ExposureL2},
		{cat("C"), "A", scoring.ExposureL2},
		{cat("B"), "E", scoring.ExposureL1},
		{cat("A"), "C", scoring.ExposureL2},
		{cat("B"), "B", scoring.ExposureL3},
		{cat("A"), "A", scoring.ExposureL3},
	}
	for _, tt := range tests {
		if got := scoring.ExposureLevelFor(tt.manned, tt.final); got != tt.want {
			t.Errorf("manned=%v final=%q: expected %q, got %q", tt.manned, tt.final, tt.want, got)
		}
	}
}

func TestSurveyIntervals(t *testing.T) {
	tests := []struct {
		level scoring.ExposureLevel
		want  [3]string
	}{
		{scoring.ExposureL1, [3]string{"1", "3-5", "6-10"}},
		{scoring.ExposureL2, [3]string{"1", "5-10", "11-15"}},
		{scoring.ExposureL3, [3]string{"1", "5-10", "11-15"}},
		{"", [3]string{}},
	}
	for _, tt := range tests {
		if got := scoring.SurveyIntervals(tt.level); got != tt.want {
			t.Errorf("%q: expected %v, got %v", tt.level, tt.want, got)
		}
	}
}

func TestEnvironmentalConsequence(t *testing.T) {
	ec := platform.EnvironmentalConsequence{
		DailyOilProduction:  2000,
		LeakageFraction:     0.05,
		FixedCleanupCost:    20000,
		VariableCleanupCost: 40,
		OilPrice:            80,
	}
	got := scoring.EnvironmentalConsequence(ec)
	// (20000 + 40 * 100) / 80
	if got == nil || got.String() != "300" {
		t.Errorf("expected 300, got %v", got)
	}

	ec.OilPrice = 0
	if got := scoring.EnvironmentalConsequence(ec); got != nil {
		t.Errorf("expected nil without oil price, got %v", got)
	}

	ec.OilPrice = 80
	ec.DailyOilProduction = 0
	if got := scoring.EnvironmentalConsequence(ec); got != nil {
		t.Errorf("expected nil without production, got %v", got)
	}
}

func TestCalculateEconomicImpact(t *testing.T) {
	p := basePlatform()
	p.Corrosion.PlatformDesignLife = 30
	p.EnvironmentalConsequence = platform.EnvironmentalConsequence{DailyOilProduction: 100, OilPrice: 60}
	p.EconomicConsequence = platform.EconomicConsequence{
		DailyGasProduction:              200,
		GasPrice:                        2.5,
		DiscountRate:                    0,
		RemainingProductionLossFraction: 1,
		ReplacementCost:                 2_000_000,
		ReplacementTimeDays:             100,
	}

	impact := scoring.CalculateEconomicImpact(p, time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC))

	// 100*60 + 200*2.5
	if got := impact.DailyRevenue.String(); got != "6500" {
		t.Errorf("daily revenue: expected 6500, got %s", got)
	}
	// 2,000,000 + 6500*1*100
	if got := impact.ReplacementLoss.String(); got != "2650000" {
		t.Errorf("replacement loss: expected 2650000, got %s", got)
	}
	// 6500*365
	if got := impact.DiscountedProductionLoss.String(); got != "2372500" {
		t.Errorf("discounted loss: expected 2372500, got %s", got)
	}
	if got := impact.ImpactMillions.String(); got != "2.65" {
		t.Errorf("impact: expected 2.65, got %s", got)
	}
	if impact.RemainingLifeYears != 10 {
		t.Errorf("expected 10 years remaining, got %d", impact.RemainingLifeYears)
	}
	if !impact.RemainingLifeMillions.Equal(impact.ImpactMillions) {
		t.Errorf("expected remaining life figure %s, got %s", impact.ImpactMillions, impact.RemainingLifeMillions)
	}
	if impact.ReplacementFavored {
		t.Error("expected replacement not favored when discounted loss is lower")
	}

	p.EconomicConsequence.ReplacementCost = 100_000
	p.Corrosion.PlatformDesignLife = 15
	impact = scoring.CalculateEconomicImpact(p, time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC))
	if !impact.ReplacementFavored {
		t.Error("expected replacement favored when discounted loss is higher")
	}
	if !impact.RemainingLifeMillions.IsZero() {
		t.Errorf("expected zero remaining life figure past design life, got %s", impact.RemainingLifeMillions)
	}
}

func TestCalculateEconomicImpactWithoutDiscountFactor(t *testing.T) {
	p := basePlatform()
	p.EnvironmentalConsequence = platform.EnvironmentalConsequence{DailyOilProduction: 100, OilPrice: 60}
	p.EconomicConsequence = platform.EconomicConsequence{
		DiscountRate:                    -1,
		RemainingProductionLossFraction: 1,
		ReplacementCost:                 100_000,
		ReplacementTimeDays:             10,
	}

	impact := scoring.CalculateEconomicImpact(p, time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC))

	if !impact.DiscountedProductionLoss.IsZero() {
		t.Errorf("expected zero discounted loss, got %s", impact.DiscountedProductionLoss)
	}
	if impact.ReplacementFavored {
		t.Error("expected replacement not favored without a discount factor")
	}
	// 100,000 + 6000*1*10
	if got := impact.ReplacementLoss.String(); got != "160000" {
		t.Errorf("replacement loss: expected 160000, got %s", got)
	}
}
