package scoring_test

import (
	"strings"
	"testing"
	"time"

	"github.com/rbui/rbui/pkg/platform"
	"github.com/rbui/rbui/pkg/scoring"
)

func TestProjectSchedule(t *testing.T) {
	levels := [3]platform.LevelInspection{
		{LastDate: date(2019, 5, 1), Interval: ptr(2)},
		{LastDate: date(2017, 1, 1), Interval: ptr(3)},
		{LastDate: date(2001, 7, 1), Interval: ptr(10)},
	}

	plan := scoring.ProjectSchedule(levels, assessed)
	got := make(map[int]string, len(plan))
	for _, e := range plan {
		got[e.Year] = e.Level
	}

	expected := map[int]string{
		2020: "Level 2",
		2021: "Level 1, Level 3",
		2022: "No Inspection",
		2023: "Level 1, Level 2",
		2024: "No Inspection",
		2025: "Level 1",
		2026: "Level 2",
		2027: "Level 1",
		2028: "No Inspection",
		2029: "Level 1, Level 2",
	}
	if len(plan) != 10 {
		t.Fatalf("expected 10 entries, got %d", len(plan))
	}
	for year, label := range expected {
		if got[year] != label {
			t.Errorf("%d: expected %q, got %q", year, label, got[year])
		}
	}
}

func TestProjectSchedule_MissingDateNeverDue(t *testing.T) {
	for _, interval := range []*int{nil, ptr(0), ptr(5)} {
		levels := [3]platform.LevelInspection{
			{Interval: interval},
			{LastDate: date(2018, 1, 1), Interval: ptr(4)},
		}
		for _, e := range scoring.ProjectSchedule(levels, assessed) {
			if strings.Contains(e.Level, "Level 1") {
				t.Errorf("interval=%v: level 1 due in %d without a last inspection", interval, e.Year)
			}
		}
	}
}

func TestProjectSchedule_ZeroInterval(t *testing.T) {
	// A zero interval never advances, so an old inspection stays in the past.
	levels := [3]platform.LevelInspection{
		{LastDate: date(2010, 1, 1), Interval: ptr(0)},
	}
	for _, e := range scoring.ProjectSchedule(levels, assessed) {
		if e.Level != "No Inspection" {
			t.Errorf("%d: expected No Inspection, got %q", e.Year, e.Level)
		}
	}

	// Inspected this year with a zero interval: due now, then never again.
	levels[0].LastDate = date(2020, 2, 1)
	plan := scoring.ProjectSchedule(levels, assessed)
	if plan[0].Level != "Level 1" {
		t.Errorf("expected Level 1 in %d, got %q", plan[0].Year, plan[0].Level)
	}
	for _, e := range plan[1:] {
		if e.Level != "No Inspection" {
			t.Errorf("%d: expected No Inspection, got %q", e.Year, e.Level)
		}
	}
}

func TestProjectSchedule_CatchUpIsBounded(t *testing.T) {
	// 1950 + 11 one-year steps is still far in the past.
	levels := [3]platform.LevelInspection{
		{LastDate: date(1950, 1, 1), Interval: ptr(1)},
	}
	for _, e := range scoring.ProjectSchedule(levels, assessed) {
		if e.Level != "No Inspection" {
			t.Errorf("%d: expected No Inspection, got %q", e.Year, e.Level)
		}
	}
}

func TestProjectSchedule_MalformedLevel(t *testing.T) {
	levels := [3]platform.LevelInspection{
		{LastDate: date(2019, 1, 1), Interval: ptr(1)},
		{LastDate: date(2018, 1, 1)},
	}
	plan := scoring.ProjectSchedule(levels, assessed)
	if len(plan) != 10 {
		t.Fatalf("expected 10 entries, got %d", len(plan))
	}
	for i, e := range plan {
		if e.Year != 2020+i {
			t.Errorf("entry %d: expected year %d, got %d", i, 2020+i, e.Year)
		}
		if e.Level != "" {
			t.Errorf("%d: expected empty label, got %q", e.Year, e.Level)
		}
	}
}

func TestNextInspectionDates(t *testing.T) {
	levels := [3]platform.LevelInspection{
		{LastDate: date(2016, 2, 29), Interval: ptr(3)},
		{LastDate: date(2018, 6, 1)},
		{Interval: ptr(5)},
	}
	next := scoring.NextInspectionDates(levels)

	want := time.Date(2019, 2, 28, 0, 0, 0, 0, time.UTC)
	if next[0] == nil || !next[0].Equal(want) {
		t.Errorf("level 1: expected %s, got %v", want, next[0])
	}
	if next[1] != nil || next[2] != nil {
		t.Errorf("expected nil for incomplete levels, got %v, %v", next[1], next[2])
	}
}
