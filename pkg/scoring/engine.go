package scoring

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/rbui/rbui/pkg/platform"
)

// Bounds declares a calculator's clamping range and whether the RSR
// override replaces it.
type Bounds struct {
	Min         float64
	Max         float64
	Overridable bool
}

// Calculator is the interface that all sub-score calculators implement.
type Calculator interface {
	// Key returns the machine-readable calculator identifier.
	Key() string
	// Name returns the human-readable calculator name.
	Name() string
	// Category returns the LOF category the sub-score counts toward.
	Category() Category
	// Bounds returns the clamping range and override flag.
	Bounds() Bounds
	// Evaluate computes the unclamped sub-score.
	Evaluate(p *platform.Platform, asOf time.Time) (float64, error)
}

// Engine runs all configured calculators against a platform and produces a
// ScoreResult.
type Engine struct {
	calculators []Calculator
	logger      *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used to report unavailable sub-scores.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewEngine creates a scoring engine with the given calculators.
func NewEngine(calculators []Calculator, opts ...Option) *Engine {
	e := &Engine{calculators: calculators, logger: slog.Default()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ScorePlatform evaluates every calculator and derives the rankings and the
// inspection plan. It never fails: a calculator that errors is reported as
// unavailable in the breakdown, a derivation step that faults is listed in
// Unavailable, and the rest of the result is still produced.
//
// A zero asOf falls back to the platform's recorded assessment date, then to
// its installation date.
func (e *Engine) ScorePlatform(p *platform.Platform, asOf time.Time) *ScoreResult {
	asOf = resolveAssessmentDate(p, asOf)
	pass := NewPass(p, asOf)

	result := &ScoreResult{
		PlatformID:     p.ID,
		PlatformName:   p.Name,
		AssessmentDate: asOf,
		Complete:       true,
		Issues:         p.Check(),
	}

	// Run each calculator
	totals := make(map[Category]*CategoryTotal, len(Categories))
	for _, c := range Categories {
		totals[c] = &CategoryTotal{Category: c, Complete: true}
	}
	for _, calc := range e.calculators {
		s := pass.Score(calc)
		if !s.Available {
			e.logger.Warn("sub-score unavailable",
				slog.String("platform", p.ID),
				slog.String("component", s.Key),
				slog.String("error", s.Error))
			result.Complete = false
		}
		result.Breakdown = append(result.Breakdown, s)

		ct, ok := totals[s.Category]
		if !ok {
			continue
		}
		ct.Score += s.Value
		ct.Complete = ct.Complete && s.Available
	}

	for _, c := range Categories {
		result.Categories = append(result.Categories, *totals[c])
		result.TotalScore += totals[c].Score
	}

	e.derive(result, "lof", func() {
		marine := MarineGrowthEachElevation(p)
		override := RSROverrideScore(p.ReserveStrength)
		result.MarineGrowthByElevation = marine
		result.RSROverrideScore = override
		result.TotalScore += override
		result.LOFRanking = LOFRanking(result.TotalScore)
	})
	e.derive(result, "consequence", func() {
		envAmount := EnvironmentalConsequence(p.EnvironmentalConsequence)
		impact := CalculateEconomicImpact(p, asOf)
		final := FinalConsequenceCategory(p.MannedStatus, p.EnvironmentalCategory, p.EconomicCategory)
		exposure := ExposureLevelFor(p.MannedStatus, final)

		result.EnvironmentalConsequence = envAmount
		result.EconomicImpact = impact
		result.EnvironmentalCategory = categoryOrDefault(p.EnvironmentalCategory)
		result.EconomicCategory = categoryOrDefault(p.EconomicCategory)
		result.FinalConsequence = final
		result.ExposureLevel = exposure
		result.SurveyIntervals = SurveyIntervals(exposure)
	})
	e.derive(result, "risk", func() {
		result.RiskRanking = RiskRankingFor(result.FinalConsequence, result.LOFRanking)
		result.InspectionInterval = InspectionInterval(result.RiskRanking)
	})
	e.derive(result, "schedule", func() {
		result.NextInspectionDates = NextInspectionDates(p.Inspections)
		result.Schedule = ProjectSchedule(p.Inspections, asOf)
	})

	return result
}

// derive runs one post-aggregation step. A panic inside it is logged, the
// step is listed in Unavailable and the result is marked incomplete. Steps
// compute before assigning, so a faulted step leaves its fields undefined.
func (e *Engine) derive(result *ScoreResult, step string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Warn("derivation unavailable",
				slog.String("platform", result.PlatformID),
				slog.String("step", step),
				slog.String("error", fmt.Sprintf("panic: %v", r)))
			result.Complete = false
			result.Unavailable = append(result.Unavailable, step)
		}
	}()
	fn()
}

func resolveAssessmentDate(p *platform.Platform, asOf time.Time) time.Time {
	if !asOf.IsZero() {
		return asOf
	}
	if p.AssessmentDate != nil {
		return *p.AssessmentDate
	}
	if p.InstallationDate != nil {
		return *p.InstallationDate
	}
	return asOf
}
