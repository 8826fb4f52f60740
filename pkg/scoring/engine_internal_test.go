package scoring

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestDeriveRecoversFaultingStep(t *testing.T) {
	var buf bytes.Buffer
	e := NewEngine(nil, WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))
	result := &ScoreResult{PlatformID: "p-1", Complete: true}

	e.derive(result, "risk", func() {
		var table map[string]int
		table["H"] = 1
	})
	e.derive(result, "schedule", func() { result.Schedule = []ScheduleEntry{{Year: 2020}} })

	if result.Complete {
		t.Error("expected incomplete result after a faulting step")
	}
	if len(result.Unavailable) != 1 || result.Unavailable[0] != "risk" {
		t.Errorf("expected [risk] unavailable, got %v", result.Unavailable)
	}
	if result.RiskRanking != "" || result.InspectionInterval != 0 {
		t.Errorf("expected undefined risk, got %q/%d", result.RiskRanking, result.InspectionInterval)
	}
	if len(result.Schedule) != 1 {
		t.Error("expected later steps to still run")
	}
	if !strings.Contains(buf.String(), "step=risk") {
		t.Errorf("expected the fault to be logged, got %q", buf.String())
	}
}
