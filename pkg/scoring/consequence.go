package scoring

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rbui/rbui/pkg/platform"
)

var million = decimal.NewFromInt(1_000_000)

// EnvironmentalConsequence is the spill cleanup cost expressed in barrels of
// oil at the recorded price. It is nil when daily production or the oil price
// is zero.
func EnvironmentalConsequence(ec platform.EnvironmentalConsequence) *decimal.Decimal {
	if ec.DailyOilProduction == 0 || ec.OilPrice == 0 {
		return nil
	}
	spilled := decimal.NewFromFloat(ec.LeakageFraction).Mul(decimal.NewFromFloat(ec.DailyOilProduction))
	cost := decimal.NewFromFloat(ec.FixedCleanupCost).
		Add(decimal.NewFromFloat(ec.VariableCleanupCost).Mul(spilled))
	amount := cost.Div(decimal.NewFromFloat(ec.OilPrice))
	return &amount
}

// CalculateEconomicImpact derives the production and replacement loss
// figures for a platform. Oil production and price come from the
// environmental record.
func CalculateEconomicImpact(p *platform.Platform, asOf time.Time) EconomicImpact {
	env := p.EnvironmentalConsequence
	eco := p.EconomicConsequence

	revenue := decimal.NewFromFloat(env.DailyOilProduction).Mul(decimal.NewFromFloat(env.OilPrice)).
		Add(decimal.NewFromFloat(eco.DailyGasProduction).Mul(decimal.NewFromFloat(eco.GasPrice))).
		RoundBank(2)

	lossFraction := decimal.NewFromFloat(eco.RemainingProductionLossFraction)
	replacementLoss := decimal.NewFromFloat(eco.ReplacementCost).
		Add(revenue.Mul(lossFraction).Mul(decimal.NewFromInt(int64(eco.ReplacementTimeDays)))).
		RoundBank(3)

	impact := EconomicImpact{
		DailyRevenue:    revenue,
		ReplacementLoss: replacementLoss,
		ImpactMillions:  replacementLoss.Div(million),
	}

	// A discount rate of -1 has no discount factor; the discounted loss stays
	// zero and replacement is never favoured.
	if factor := decimal.NewFromInt(1).Add(decimal.NewFromFloat(eco.DiscountRate)); !factor.IsZero() {
		discount := decimal.NewFromInt(1).Div(factor)
		discounted := revenue.Mul(decimal.NewFromInt(365)).Mul(discount).Mul(lossFraction).RoundBank(2)
		impact.DiscountedProductionLoss = discounted
		impact.ReplacementFavored = discounted.GreaterThan(replacementLoss)
	}

	if p.InstallationDate != nil {
		age := asOf.Year() - p.InstallationDate.Year()
		impact.RemainingLifeYears = p.Corrosion.PlatformDesignLife - age
	}
	if impact.RemainingLifeYears > 0 {
		impact.RemainingLifeMillions = impact.ImpactMillions
	}
	return impact
}

func categoryOrDefault(c *platform.Category) platform.Category {
	if c == nil {
		return platform.CategoryA
	}
	return *c
}

// FinalConsequenceCategory is the worst of the manned status, environmental
// and economic categories, each defaulting to A. It is empty when none of the
// three is recorded.
func FinalConsequenceCategory(manned, env, econ *platform.Category) platform.Category {
	if manned == nil && env == nil && econ == nil {
		return ""
	}
	final := categoryOrDefault(manned)
	for _, c := range []platform.Category{categoryOrDefault(env), categoryOrDefault(econ)} {
		if c > final {
			final = c
		}
	}
	return final
}

// ExposureLevelFor derives the exposure category level from the manned
// status and the final consequence category. It is empty when the manned
// status is not recorded or the final category is undefined.
func ExposureLevelFor(manned *platform.Category, final platform.Category) ExposureLevel {
	if manned == nil || final == "" {
		return ""
	}

	severe := final == platform.CategoryD || final == platform.CategoryE
	switch *manned {
	case platform.CategoryD, platform.CategoryE:
		return ExposureL1
	case platform.CategoryC:
		if severe {
			return ExposureL1
		}
		return ExposureL2
	case platform.CategoryA, platform.CategoryB:
		switch {
		case severe:
			return ExposureL1
		case final == platform.CategoryC:
			return ExposureL2
		case final == platform.CategoryA || final == platform.CategoryB:
			return ExposureL3
		}
	}
	return ""
}

// SurveyIntervals returns the recommended survey interval ranges (years) for
// inspection levels 1, 2 and 3.
func SurveyIntervals(level ExposureLevel) [3]string {
	switch level {
	case ExposureL1:
		return [3]string{"1", "3-5", "6-10"}
	case ExposureL2, ExposureL3:
		return [3]string{"1", "5-10", "11-15"}
	default:
		return [3]string{}
	}
}
