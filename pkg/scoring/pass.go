package scoring

import (
	"fmt"
	"time"

	"github.com/rbui/rbui/pkg/platform"
)

// Pass holds the sub-scores already computed during one scoring run of one
// platform. It is not safe for concurrent use; create one per run.
type Pass struct {
	platform *platform.Platform
	asOf     time.Time
	override bool
	scores   map[string]SubScore
}

// NewPass starts a scoring run of p as of the given date.
func NewPass(p *platform.Platform, asOf time.Time) *Pass {
	return &Pass{
		platform: p,
		asOf:     asOf,
		override: p.ReserveStrength.Override,
		scores:   make(map[string]SubScore),
	}
}

// Score returns the sub-score for calc, computing it on first use.
func (ps *Pass) Score(calc Calculator) SubScore {
	if s, ok := ps.scores[calc.Key()]; ok {
		return s
	}
	s := ps.evaluate(calc)
	ps.scores[calc.Key()] = s
	return s
}

func (ps *Pass) evaluate(calc Calculator) (s SubScore) {
	b := calc.Bounds()
	s = SubScore{
		Key:      calc.Key(),
		Name:     calc.Name(),
		Category: calc.Category(),
		Min:      b.Min,
		Max:      b.Max,
	}

	if b.Overridable && ps.override {
		s.Overridden = true
		s.Available = true
		return s
	}

	defer func() {
		if r := recover(); r != nil {
			s.Value = 0
			s.Available = false
			s.Error = fmt.Sprintf("panic: %v", r)
		}
	}()

	v, err := calc.Evaluate(ps.platform, ps.asOf)
	if err != nil {
		s.Error = err.Error()
		return s
	}
	s.Value = Clamp(v, b.Min, b.Max)
	s.Available = true
	return s
}
