package magi

import (
	"github.com/coverwise/coverwise/internal/domain"
	"github.com/shopspring/decimal"
)

// Catch-up eligibility ages for the retirement and HSA levers.
const (
	retirementCatchUpAge = 50
	hsaCatchUpAge        = 55
)

// Share of MAGI assumed deferrable by shifting year-end income (invoicing,
// bonuses, capital gains timing).
var incomeTimingShare = decimal.NewFromFloat(0.05)

// buildStrategies generates the MAGI-reduction levers, in priority order.
// Each lever's maxReduction comes from the contribution-limit tables and
// current usage; inapplicability is recorded as data, never an error. When an
// optimal target exists, the needed reduction is allocated across applicable
// levers in priority order.
func (a *Analyzer) buildStrategies(input Input, target *domain.OptimalMAGI) []domain.Strategy {
	strategies := []domain.Strategy{
		a.retirement401kStrategy(input),
		a.iraStrategy(input),
		a.hsaStrategy(input),
		a.selfEmploymentStrategy(input),
		a.incomeTimingStrategy(input),
	}

	needed := decimal.Zero
	if target != nil {
		needed = target.IncomeReduction
	}
	for i := range strategies {
		if !strategies[i].Applicable || needed.LessThanOrEqual(decimal.Zero) {
			continue
		}
		take := strategies[i].MaxReduction
		if take.GreaterThan(needed) {
			take = needed
		}
		strategies[i].RecommendedReduction = take
		needed = needed.Sub(take)
	}
	return strategies
}

func (a *Analyzer) retirement401kStrategy(input Input) domain.Strategy {
	limit := a.Limits.Employee401k
	if input.Age >= retirementCatchUpAge {
		limit = limit.Add(a.Limits.CatchUp401k50)
	}
	max := limit.Sub(input.Current401k)
	if max.LessThan(decimal.Zero) {
		max = decimal.Zero
	}

	s := domain.Strategy{
		Name:         "401(k) deferral",
		Description:  "Pre-tax workplace retirement contributions reduce MAGI dollar for dollar.",
		MaxReduction: max,
		Priority:     1,
		Applicable:   true,
	}
	switch {
	case !input.HasEmployerPlan:
		s.Applicable = false
		s.InapplicableReason = "no employer retirement plan access"
	case max.IsZero():
		s.Applicable = false
		s.InapplicableReason = "annual 401(k) contribution limit already reached"
	}
	return s
}

func (a *Analyzer) iraStrategy(input Input) domain.Strategy {
	limit := a.Limits.IRA
	if input.Age >= retirementCatchUpAge {
		limit = limit.Add(a.Limits.IRACatchUp50)
	}
	max := limit.Sub(input.CurrentIRA)
	if max.LessThan(decimal.Zero) {
		max = decimal.Zero
	}

	s := domain.Strategy{
		Name:         "Traditional IRA contribution",
		Description:  "Deductible IRA contributions reduce MAGI subject to the annual limit.",
		MaxReduction: max,
		Priority:     2,
		Applicable:   true,
	}
	if max.IsZero() {
		s.Applicable = false
		s.InapplicableReason = "annual IRA contribution limit already reached"
	}
	return s
}

func (a *Analyzer) hsaStrategy(input Input) domain.Strategy {
	coverage := input.HSACoverage
	if coverage == "" {
		coverage = domain.HSACoverageIndividual
	}
	limit, err := a.Limits.HSALimitFor(coverage)
	if err != nil {
		limit = a.Limits.HSAIndividual
	}
	if input.Age >= hsaCatchUpAge {
		limit = limit.Add(a.Limits.HSACatchUp55)
	}
	max := limit.Sub(input.CurrentHSA)
	if max.LessThan(decimal.Zero) {
		max = decimal.Zero
	}

	s := domain.Strategy{
		Name:         "HSA contribution",
		Description:  "HSA contributions reduce MAGI and are triple tax-advantaged.",
		MaxReduction: max,
		Priority:     3,
		Applicable:   true,
	}
	switch {
	case !input.HDHPEnrolled:
		s.Applicable = false
		s.InapplicableReason = "requires enrollment in a high-deductible health plan"
	case max.IsZero():
		s.Applicable = false
		s.InapplicableReason = "annual HSA contribution limit already reached"
	}
	return s
}

func (a *Analyzer) selfEmploymentStrategy(input Input) domain.Strategy {
	max := input.SelfEmploymentIncome.Mul(a.Limits.SEPPercentOfNet)
	if max.GreaterThan(a.Limits.SEPMaxDeferral) {
		max = a.Limits.SEPMaxDeferral
	}

	s := domain.Strategy{
		Name:         "Self-employment deductions",
		Description:  "SEP-IRA contributions and above-the-line self-employment deductions reduce MAGI.",
		MaxReduction: max.Round(0),
		Priority:     4,
		Applicable:   input.SelfEmploymentIncome.GreaterThan(decimal.Zero),
	}
	if !s.Applicable {
		s.InapplicableReason = "no self-employment income"
	}
	return s
}

func (a *Analyzer) incomeTimingStrategy(input Input) domain.Strategy {
	s := domain.Strategy{
		Name:         "Income timing",
		Description:  "Deferring year-end income (bonuses, invoicing, capital gains) shifts MAGI into the next tax year.",
		MaxReduction: input.MAGI.Mul(incomeTimingShare).Round(0),
		Priority:     5,
		Applicable:   input.MAGI.GreaterThan(decimal.Zero),
	}
	if !s.Applicable {
		s.InapplicableReason = "no income to defer"
	}
	return s
}
