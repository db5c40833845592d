// Package hsa optimizes tax-advantaged health savings account contributions
// and projects multi-year balance growth under contribution limits, expected
// investment return, and healthcare inflation.
package hsa

import (
	"fmt"

	"github.com/coverwise/coverwise/internal/domain"
	"github.com/shopspring/decimal"
)

// FICARate is the combined Social Security and Medicare payroll rate avoided
// by payroll HSA contributions.
var FICARate = decimal.NewFromFloat(0.0765)

// Catch-up contributions unlock at 55.
const catchUpAge = 55

// Share of annual income treated as affordable for HSA contributions.
var affordableIncomeShare = decimal.NewFromFloat(0.10)

const defaultProjectionYears = 10

// Input describes one household's HSA position and assumptions.
type Input struct {
	CoverageType           domain.HSACoverageType `yaml:"coverage_type" json:"coverageType"`
	Age                    int                    `yaml:"age" json:"age"`
	HDHPEnrolled           bool                   `yaml:"hdhp_enrolled" json:"hdhpEnrolled"`
	AnnualIncome           decimal.Decimal        `yaml:"annual_income" json:"annualIncome"`
	EmployerContribution   decimal.Decimal        `yaml:"employer_contribution" json:"employerContribution"`
	CurrentBalance         decimal.Decimal        `yaml:"current_balance" json:"currentBalance"`
	ExpectedAnnualExpenses decimal.Decimal        `yaml:"expected_annual_expenses" json:"expectedAnnualExpenses"`
	FederalRate            decimal.Decimal        `yaml:"federal_rate" json:"federalRate"`
	StateRate              decimal.Decimal        `yaml:"state_rate" json:"stateRate"`
	ExpectedReturn         decimal.Decimal        `yaml:"expected_return" json:"expectedReturn"`
	HealthcareInflation    decimal.Decimal        `yaml:"healthcare_inflation" json:"healthcareInflation"`
	ProjectionYears        int                    `yaml:"projection_years" json:"projectionYears"`
}

// Optimizer computes HSA limits, tax savings, and balance projections against
// one year's contribution-limit table.
type Optimizer struct {
	Limits domain.ContributionLimits
}

// NewOptimizer creates an optimizer with the current-year default limits.
func NewOptimizer() *Optimizer {
	return NewOptimizerWithConfig(domain.DefaultContributionLimits())
}

// NewOptimizerWithConfig creates an optimizer with an explicit limit table.
func NewOptimizerWithConfig(limits domain.ContributionLimits) *Optimizer {
	return &Optimizer{Limits: limits}
}

// Optimize runs the full HSA analysis. An unknown coverage type is the only
// error; lack of HDHP enrollment is a modeled outcome, not a failure.
func (o *Optimizer) Optimize(input Input) (*domain.HSAAnalysis, error) {
	limits, err := o.contributionLimits(input)
	if err != nil {
		return nil, fmt.Errorf("hsa optimization: %w", err)
	}

	analysis := &domain.HSAAnalysis{
		Eligible:         input.HDHPEnrolled,
		Limits:           limits,
		Projection:       []domain.HSAProjectionYear{},
		Recommendations:  []string{},
		FSAAdvantages:    fsaAdvantages(),
		FSADisadvantages: fsaDisadvantages(),
	}

	if !input.HDHPEnrolled {
		analysis.Recommendations = append(analysis.Recommendations,
			"⚠️  HSA contributions require enrollment in a high-deductible health plan - consider an FSA instead")
		return analysis, nil
	}

	analysis.RecommendedContribution = o.recommendedContribution(input, limits)
	analysis.TaxSavings = o.taxSavings(analysis.RecommendedContribution, input)
	analysis.Projection = o.project(input, analysis.RecommendedContribution)
	analysis.Recommendations = o.recommendations(input, limits, analysis.RecommendedContribution)

	return analysis, nil
}

// contributionLimits assembles the year's contribution room: base limit by
// coverage type, the age-55 catch-up, and the employer share already spoken
// for.
func (o *Optimizer) contributionLimits(input Input) (domain.HSALimits, error) {
	base, err := o.Limits.HSALimitFor(input.CoverageType)
	if err != nil {
		return domain.HSALimits{}, err
	}

	limits := domain.HSALimits{
		BaseLimit:            base,
		CatchUpEligible:      input.Age >= catchUpAge,
		EmployerContribution: input.EmployerContribution,
	}
	if limits.CatchUpEligible {
		limits.CatchUpAmount = o.Limits.HSACatchUp55
	}
	limits.TotalLimit = limits.BaseLimit.Add(limits.CatchUpAmount)

	limits.MaxEmployeeContribution = limits.TotalLimit.Sub(input.EmployerContribution)
	if limits.MaxEmployeeContribution.LessThan(decimal.Zero) {
		limits.MaxEmployeeContribution = decimal.Zero
	}
	return limits, nil
}

// recommendedContribution applies the affordability heuristic: when a tenth
// of income covers the full employee limit, recommend the maximum; otherwise
// recommend the greater of expected medical expenses and the employer
// contribution, capped at the affordable amount.
func (o *Optimizer) recommendedContribution(input Input, limits domain.HSALimits) decimal.Decimal {
	affordable := input.AnnualIncome.Mul(affordableIncomeShare)
	if affordable.GreaterThanOrEqual(limits.MaxEmployeeContribution) {
		return limits.MaxEmployeeContribution
	}

	target := input.ExpectedAnnualExpenses
	if input.EmployerContribution.GreaterThan(target) {
		target = input.EmployerContribution
	}
	if target.GreaterThan(affordable) {
		target = affordable
	}
	if target.GreaterThan(limits.MaxEmployeeContribution) {
		target = limits.MaxEmployeeContribution
	}
	if target.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return target.Round(2)
}

// taxSavings computes the three savings channels on the employee
// contribution. Each component is rounded independently before summing so the
// total always matches the displayed breakdown.
func (o *Optimizer) taxSavings(contribution decimal.Decimal, input Input) domain.HSATaxSavings {
	savings := domain.HSATaxSavings{
		Federal: contribution.Mul(input.FederalRate).Round(2),
		State:   contribution.Mul(input.StateRate).Round(2),
		FICA:    contribution.Mul(FICARate).Round(2),
	}
	savings.Total = savings.Federal.Add(savings.State).Add(savings.FICA)
	return savings
}

// project builds the year-by-year balance projection. Contribution and
// investment growth are both computed off the beginning balance, and expenses
// are paid from the resulting total; this ordering is part of the model and
// changes the compounding result if rearranged. Expenses inflate starting in
// year 2; year 1 uses the raw expected figure.
func (o *Optimizer) project(input Input, employeeContribution decimal.Decimal) []domain.HSAProjectionYear {
	years := input.ProjectionYears
	if years <= 0 {
		years = defaultProjectionYears
	}

	contribution := employeeContribution.Add(input.EmployerContribution)
	one := decimal.NewFromInt(1)
	inflationFactor := one.Add(input.HealthcareInflation)

	projection := make([]domain.HSAProjectionYear, 0, years)
	balance := input.CurrentBalance
	expectedExpenses := input.ExpectedAnnualExpenses

	for year := 1; year <= years; year++ {
		if year >= 2 {
			expectedExpenses = expectedExpenses.Mul(inflationFactor)
		}

		growth := balance.Mul(input.ExpectedReturn).Round(2)
		available := balance.Add(contribution).Add(growth)

		paid := expectedExpenses.Round(2)
		if paid.GreaterThan(available) {
			paid = available
		}
		ending := available.Sub(paid)

		projection = append(projection, domain.HSAProjectionYear{
			Year:             year,
			BeginningBalance: balance,
			Contribution:     contribution,
			InvestmentGrowth: growth,
			ExpensesPaid:     paid,
			EndingBalance:    ending,
		})
		balance = ending
	}
	return projection
}

func (o *Optimizer) recommendations(input Input, limits domain.HSALimits, recommended decimal.Decimal) []string {
	recs := []string{}

	if recommended.Equal(limits.MaxEmployeeContribution) && recommended.GreaterThan(decimal.Zero) {
		recs = append(recs, fmt.Sprintf(
			"✓ Max out the employee contribution of $%s - every dollar avoids federal, state, and FICA tax",
			recommended.StringFixed(0)))
	} else if recommended.LessThan(limits.MaxEmployeeContribution) {
		headroom := limits.MaxEmployeeContribution.Sub(recommended)
		recs = append(recs, fmt.Sprintf(
			"💡 $%s of contribution room remains - increase contributions as budget allows",
			headroom.StringFixed(0)))
	}

	if !limits.CatchUpEligible && input.Age >= 50 {
		recs = append(recs, fmt.Sprintf(
			"💡 At age 55 an additional $%s catch-up contribution unlocks",
			o.Limits.HSACatchUp55.StringFixed(0)))
	}
	if input.EmployerContribution.GreaterThan(decimal.Zero) {
		recs = append(recs, fmt.Sprintf(
			"✓ Employer contributes $%s/yr - free money that counts toward the limit",
			input.EmployerContribution.StringFixed(0)))
	}
	if input.ExpectedReturn.GreaterThan(decimal.Zero) {
		recs = append(recs,
			"💡 Invest HSA balances above the deductible cushion - growth and qualified withdrawals are both untaxed")
	}
	return recs
}

// fsaAdvantages lists where a flexible spending account beats an HSA.
func fsaAdvantages() []string {
	return []string{
		"No high-deductible health plan requirement",
		"Full annual election available on day one of the plan year",
		"Compatible with traditional low-deductible coverage",
	}
}

// fsaDisadvantages lists where an FSA falls short of an HSA.
func fsaDisadvantages() []string {
	return []string{
		"Use-it-or-lose-it: unspent balances forfeit at year end",
		"No investment growth on balances",
		"Not portable between employers",
		"Lower annual contribution limit",
	}
}
