package scoring

import "github.com/rbui/rbui/pkg/platform"

// riskTable is indexed by final consequence category (A-E) then LOF ranking
// (1-5).
var riskTable = map[platform.Category][5]RiskRanking{
	platform.CategoryA: {RiskVeryLow, RiskVeryLow, RiskLow, RiskLow, RiskMedium},
	platform.CategoryB: {RiskVeryLow, RiskLow, RiskLow, RiskMedium, RiskHigh},
	platform.CategoryC: {RiskLow, RiskLow, RiskMedium, RiskHigh, RiskHigh},
	platform.CategoryD: {RiskLow, RiskMedium, RiskHigh, RiskHigh, RiskVeryHigh},
	platform.CategoryE: {RiskMedium, RiskHigh, RiskHigh, RiskVeryHigh, RiskVeryHigh},
}

// RiskRankingFor looks up the risk ranking for a final consequence category
// and LOF ranking. It is empty when either input is out of range.
func RiskRankingFor(final platform.Category, lof int) RiskRanking {
	row, ok := riskTable[final]
	if !ok || lof < 1 || lof > 5 {
		return ""
	}
	return row[lof-1]
}

var inspectionIntervals = map[RiskRanking]int{
	RiskVeryLow:  12,
	RiskLow:      10,
	RiskMedium:   7,
	RiskHigh:     5,
	RiskVeryHigh: 3,
}

// InspectionInterval returns the recommended underwater inspection interval
// in years, or 0 for an undefined risk ranking.
func InspectionInterval(r RiskRanking) int {
	return inspectionIntervals[r]
}
