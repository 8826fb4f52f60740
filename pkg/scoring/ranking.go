package scoring

import "github.com/rbui/rbui/pkg/platform"

// RSROverrideScore is the score contributed by the reserve strength ratio in
// place of the overridden sub-scores. It is 0 unless the override is set.
func RSROverrideScore(rs platform.ReserveStrength) float64 {
	if !rs.Override {
		return 0
	}
	switch r := rs.Ratio; {
	case r <= 1.0:
		return 680
	case r < 1.5:
		return 490
	case r < 1.9:
		return 120
	default:
		return 60
	}
}

// lofBreakpoints are the minimum total scores for LOF rankings 5 down to 2.
var lofBreakpoints = []struct {
	min     float64
	ranking int
}{
	{680, 5},
	{490, 4},
	{310, 3},
	{120, 2},
}

// LOFRanking maps a total score to the Likelihood of Failure ranking 1-5.
func LOFRanking(total float64) int {
	for _, b := range lofBreakpoints {
		if total >= b.min {
			return b.ranking
		}
	}
	return 1
}
