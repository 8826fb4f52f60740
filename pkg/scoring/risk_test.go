package scoring_test

import (
	"testing"

	"github.com/rbui/rbui/pkg/platform"
	"github.com/rbui/rbui/pkg/scoring"
)

var riskOrder = map[scoring.RiskRanking]int{
	scoring.RiskVeryLow:  0,
	scoring.RiskLow:      1,
	scoring.RiskMedium:   2,
	scoring.RiskHigh:     3,
	scoring.RiskVeryHigh: 4,
}

func TestRiskRankingFor(t *testing.T) {
	tests := []struct {
		final platform.Category
		lof   int
		want  scoring.RiskRanking
	}{
		{"A", 1, scoring.RiskVeryLow},
		{"A", 5, scoring.RiskMedium},
		{"B", 2, scoring.RiskLow},
		{"C", 3, scoring.RiskMedium},
		{"C", 4, scoring.RiskHigh},
		{"D", 5, scoring.RiskVeryHigh},
		{"E", 1, scoring.RiskMedium},
		{"", 3, ""},
		{"C", 0, ""},
		{"C", 6, ""},
	}
	for _, tt := range tests {
		if got := scoring.RiskRankingFor(tt.final, tt.lof); got != tt.want {
			t.Errorf("RiskRankingFor(%q, %d) = %q, want %q", tt.final, tt.lof, got, tt.want)
		}
	}
}

func TestRiskRankingFor_Monotonic(t *testing.T) {
	cats := []platform.Category{"A", "B", "C", "D", "E"}
	for i, c := range cats {
		for lof := 1; lof <= 5; lof++ {
			r := riskOrder[scoring.RiskRankingFor(c, lof)]
			if lof > 1 && r < riskOrder[scoring.RiskRankingFor(c, lof-1)] {
				t.Errorf("%s: risk decreases from LOF %d to %d", c, lof-1, lof)
			}
			if i > 0 && r < riskOrder[scoring.RiskRankingFor(cats[i-1], lof)] {
				t.Errorf("LOF %d: risk decreases from %s to %s", lof, cats[i-1], c)
			}
		}
	}
}

func TestInspectionInterval(t *testing.T) {
	tests := []struct {
		risk scoring.RiskRanking
		want int
	}{
		{scoring.RiskVeryLow, 12},
		{scoring.RiskLow, 10},
		{scoring.RiskMedium, 7},
		{scoring.RiskHigh, 5},
		{scoring.RiskVeryHigh, 3},
		{"", 0},
	}
	for _, tt := range tests {
		if got := scoring.InspectionInterval(tt.risk); got != tt.want {
			t.Errorf("InspectionInterval(%q) = %d, want %d", tt.risk, got, tt.want)
		}
	}
}
