package scoring_test

import (
	"testing"

	"github.com/rbui/rbui/pkg/platform"
	"github.com/rbui/rbui/pkg/scoring"
)

func TestRSROverrideScore(t *testing.T) {
	tests := []struct {
		ratio    float64
		override bool
		want     float64
	}{
		{0.8, false, 0},
		{0.8, true, 680},
		{1.0, true, 680},
		{1.1, true, 490},
		{1.32, true, 490},
		{1.49, true, 490},
		{1.5, true, 120},
		{1.89, true, 120},
		{1.9, true, 60},
		{3.0, true, 60},
	}
	for _, tt := range tests {
		got := scoring.RSROverrideScore(platform.ReserveStrength{Ratio: tt.ratio, Override: tt.override})
		if got != tt.want {
			t.Errorf("ratio=%v override=%v: expected %v, got %v", tt.ratio, tt.override, tt.want, got)
		}
	}
}

func TestLOFRanking(t *testing.T) {
	tests := []struct {
		total float64
		want  int
	}{
		{0, 1},
		{119.99, 1},
		{120, 2},
		{309, 2},
		{310, 3},
		{489, 3},
		{490, 4},
		{679, 4},
		{680, 5},
		{2000, 5},
	}
	for _, tt := range tests {
		if got := scoring.LOFRanking(tt.total); got != tt.want {
			t.Errorf("LOFRanking(%v) = %d, want %d", tt.total, got, tt.want)
		}
	}
}

func TestLOFRanking_NonDecreasing(t *testing.T) {
	prev := scoring.LOFRanking(-10)
	for total := -10.0; total <= 1000; total += 0.5 {
		got := scoring.LOFRanking(total)
		if got < prev {
			t.Fatalf("ranking dropped from %d to %d at total %v", prev, got, total)
		}
		prev = got
	}
}
