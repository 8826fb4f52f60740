package scoring

import (
	"fmt"
	"strings"
	"time"

	"github.com/rbui/rbui/pkg/platform"
)

const (
	scheduleYears    = 10
	maxCatchUpSteps  = 10
	noInspection     = "No Inspection"
	inspectionLevels = 3
)

// neverInspected seeds the cursor of a level with no recorded inspection.
var neverInspected = time.Date(1900, time.May, 17, 0, 0, 0, 0, time.UTC)

// NextInspectionDates returns last date + interval for each level, or nil
// where either is missing.
func NextInspectionDates(levels [3]platform.LevelInspection) [3]*time.Time {
	var next [3]*time.Time
	for i, l := range levels {
		if l.LastDate == nil || l.Interval == nil {
			continue
		}
		d := addYears(*l.LastDate, *l.Interval)
		next[i] = &d
	}
	return next
}

// ProjectSchedule plans inspections for the ten calendar years starting with
// the year of asOf. Each entry names the levels due that year, or
// "No Inspection". A level whose date is recorded without a usable interval
// yields a plan of empty labels.
func ProjectSchedule(levels [3]platform.LevelInspection, asOf time.Time) []ScheduleEntry {
	current := asOf.Year()

	cursors, intervals, err := seedCursors(levels, current)
	if err != nil {
		plan := make([]ScheduleEntry, scheduleYears)
		for i := range plan {
			plan[i] = ScheduleEntry{Year: current + i}
		}
		return plan
	}

	plan := make([]ScheduleEntry, 0, scheduleYears)
	for i := 0; i < scheduleYears; i++ {
		year := current + i
		var due []string
		for lvl := 0; lvl < inspectionLevels; lvl++ {
			if cursors[lvl].Year() != year {
				continue
			}
			due = append(due, fmt.Sprintf("Level %d", lvl+1))
			cursors[lvl] = addYears(cursors[lvl], intervals[lvl])
		}

		label := noInspection
		if len(due) > 0 {
			label = strings.Join(due, ", ")
		}
		plan = append(plan, ScheduleEntry{Year: year, Level: label})
	}
	return plan
}

// seedCursors places each level's cursor on its first due date, catching up
// to the current year in at most maxCatchUpSteps further intervals.
func seedCursors(levels [3]platform.LevelInspection, current int) (cursors [3]time.Time, intervals [3]int, err error) {
	for i, l := range levels {
		if l.LastDate == nil {
			cursors[i] = neverInspected
			if l.Interval != nil {
				intervals[i] = *l.Interval
			}
			continue
		}
		if l.Interval == nil || *l.Interval < 0 {
			return cursors, intervals, fmt.Errorf("level %d: last inspection recorded without interval", i+1)
		}

		intervals[i] = *l.Interval
		c := addYears(*l.LastDate, intervals[i])
		for step := 0; step < maxCatchUpSteps && c.Year() < current; step++ {
			c = addYears(c, intervals[i])
		}
		cursors[i] = c
	}
	return cursors, intervals, nil
}
