package platform

import (
	"fmt"
	"sort"
)

// Issue is a single invariant violation found in a platform record.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	return i.Field + ": " + i.Message
}

// Check reports the record-level invariants this platform violates. Scoring
// never fails on these; the affected calculators fall back to their
// "unknown" branch instead.
func (p *Platform) Check() []Issue {
	var issues []Issue

	if _, err := p.FramingScore(); err != nil {
		issues = append(issues, Issue{
			Field:   "bracing_type/number_of_legs_type",
			Message: fmt.Sprintf("bracing %d, legs %d: %v", p.BracingType, p.NumberOfLegsType, err),
		})
	}

	if p.InstallationDate == nil {
		issues = append(issues, Issue{Field: "installation_date", Message: "not recorded"})
	}

	if !p.FloodedMember.Complete() && !p.FloodedMember.Empty() {
		issues = append(issues, Issue{
			Field:   "flooded_member",
			Message: "counts and inspection dates must be recorded together",
		})
	}

	c := p.Corrosion
	if (c.AnodeSurveyDate == nil) != (c.AverageDepletion == nil) {
		issues = append(issues, Issue{
			Field:   "corrosion",
			Message: "anode survey date and average depletion must be recorded together",
		})
	}
	if c.PlatformDesignLife < 1 && (c.CPDesignLife == nil || *c.CPDesignLife < 1) {
		issues = append(issues, Issue{Field: "corrosion.platform_design_life", Message: "must be at least 1 year"})
	}

	if !p.DeckElevation.Complete() && !p.DeckElevation.Empty() {
		issues = append(issues, Issue{
			Field:   "deck_elevation_wave_in_deck",
			Message: "heights, wave heights, surges, tide and crest factor must be recorded together",
		})
	}

	for name, cat := range map[string]*Category{
		"manned_status":                      p.MannedStatus,
		"environmental_consequence_category": p.EnvironmentalCategory,
		"economic_consequence_category":      p.EconomicCategory,
	} {
		if cat != nil && !cat.Valid() {
			issues = append(issues, Issue{Field: name, Message: fmt.Sprintf("%q is not a letter A-E", *cat)})
		}
	}

	for i, lvl := range p.Inspections {
		if lvl.LastDate != nil && lvl.Interval == nil {
			issues = append(issues, Issue{
				Field:   fmt.Sprintf("inspections[%d]", i),
				Message: "last inspection date recorded without an interval",
			})
		}
	}

	// Map iteration above is unordered.
	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].Field < issues[j].Field
	})
	return issues
}
