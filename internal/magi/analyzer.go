// Package magi locates income thresholds that maximize net household benefit
// under the piecewise-linear premium subsidy schedule, and flags subsidy-cliff
// risk.
package magi

import (
	"fmt"

	"github.com/coverwise/coverwise/internal/domain"
	"github.com/shopspring/decimal"
)

// Input describes one household's subsidy position plus the context the
// strategy generator needs.
type Input struct {
	MAGI             decimal.Decimal `yaml:"magi" json:"magi"`
	HouseholdSize    int             `yaml:"household_size" json:"householdSize"`
	State            string          `yaml:"state" json:"state"`
	BenchmarkPremium decimal.Decimal `yaml:"benchmark_premium" json:"benchmarkPremium"` // monthly second-lowest-cost silver plan

	// Strategy context.
	Age                  int                    `yaml:"age" json:"age"`
	Current401k          decimal.Decimal        `yaml:"current_401k" json:"current401k"`
	CurrentIRA           decimal.Decimal        `yaml:"current_ira" json:"currentIRA"`
	CurrentHSA           decimal.Decimal        `yaml:"current_hsa" json:"currentHSA"`
	HasEmployerPlan      bool                   `yaml:"has_employer_plan" json:"hasEmployerPlan"`
	HDHPEnrolled         bool                   `yaml:"hdhp_enrolled" json:"hdhpEnrolled"`
	HSACoverage          domain.HSACoverageType `yaml:"hsa_coverage" json:"hsaCoverage"`
	SelfEmploymentIncome decimal.Decimal        `yaml:"self_employment_income" json:"selfEmploymentIncome"`
}

// Analyzer evaluates a household against the subsidy schedule. All reference
// tables are immutable, so one Analyzer serves concurrent analyses.
type Analyzer struct {
	FPL       domain.FPLTable
	Schedule  domain.ContributionSchedule
	Limits    domain.ContributionLimits
	Expansion domain.MedicaidExpansionStates
	States    domain.StateCostTable
}

// NewAnalyzer creates an analyzer with the current-year default tables.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		FPL:       domain.DefaultFPLTable(),
		Schedule:  domain.DefaultContributionSchedule(),
		Limits:    domain.DefaultContributionLimits(),
		Expansion: domain.DefaultMedicaidExpansionStates(),
		States:    domain.DefaultStateCostTable(),
	}
}

// Reference FPL percentages at which breakpoints are tabulated. The optimal-
// target search runs over this same fixed candidate set; the schedule's
// bracket granularity is the policy-defined resolution, so nothing finer is
// searched.
var breakpointLevels = []int64{100, 150, 200, 250, 300, 350, 400, 450, 500}

// The assumed after-tax cost of each forgone dollar of income when weighing
// an income reduction against the subsidy it buys.
var afterTaxCostFactor = decimal.NewFromFloat(0.75)

// nearCliff bounds: FPL percentages within this band get the cliff warning.
var (
	nearCliffLow  = decimal.NewFromInt(380)
	nearCliffHigh = decimal.NewFromInt(420)
)

var (
	hundred      = decimal.NewFromInt(100)
	twelve       = decimal.NewFromInt(12)
	expansionCut = decimal.NewFromInt(138)
)

// Analyze runs the full subsidy analysis for one household.
func (a *Analyzer) Analyze(input Input) (*domain.MAGIAnalysis, error) {
	if _, err := a.States.MultiplierFor(input.State); err != nil {
		return nil, fmt.Errorf("magi analysis: %w", err)
	}

	fpl := a.FPL.FPLFor(input.HouseholdSize)
	fplPercent := input.MAGI.Div(fpl).Mul(hundred)

	analysis := &domain.MAGIAnalysis{
		FPLAmount:           fpl,
		FPLPercent:          fplPercent.Round(1),
		Tier:                a.classifyTier(fplPercent, input.State),
		ContributionPercent: a.contributionPercent(fplPercent),
		Warnings:            []string{},
		Recommendations:     []string{},
	}

	analysis.MonthlySubsidy = a.monthlySubsidy(input.MAGI, fplPercent, input.BenchmarkPremium)
	analysis.AnnualSubsidy = analysis.MonthlySubsidy.Mul(twelve)

	analysis.Breakpoints = a.breakpoints(fpl, input.BenchmarkPremium)
	analysis.OptimalTarget = a.findOptimalTarget(input, fpl, fplPercent, analysis.AnnualSubsidy)
	analysis.CliffRisk = a.cliffRisk(input, fpl, fplPercent)
	analysis.Strategies = a.buildStrategies(input, analysis.OptimalTarget)

	a.addWarnings(analysis, input, fplPercent)
	a.addRecommendations(analysis)

	return analysis, nil
}

// classifyTier places an FPL percentage on the subsidy schedule.
func (a *Analyzer) classifyTier(fplPercent decimal.Decimal, state string) domain.SubsidyTier {
	expanded := a.Expansion.HasExpanded(state)
	switch {
	case fplPercent.LessThan(hundred):
		if expanded {
			return domain.TierMedicaid
		}
		// Below 100% in a non-expansion state there is no Medicaid and no
		// marketplace subsidy; the coverage-gap warning fires separately.
		return domain.TierSubsidy
	case fplPercent.LessThan(expansionCut):
		if expanded {
			return domain.TierMedicaid
		}
		return domain.TierSubsidy
	case fplPercent.LessThanOrEqual(domain.StatutoryCliffFPLPercent):
		return domain.TierSubsidy
	case fplPercent.LessThanOrEqual(domain.EffectiveCliffFPLPercent):
		return domain.TierCliff
	default:
		return domain.TierAboveCliff
	}
}

// contributionPercent interpolates the expected-contribution percentage for
// an FPL percentage within the bracket schedule.
func (a *Analyzer) contributionPercent(fplPercent decimal.Decimal) decimal.Decimal {
	if len(a.Schedule.Brackets) == 0 {
		return a.Schedule.AboveCeilingPercent
	}
	first := a.Schedule.Brackets[0]
	if fplPercent.LessThanOrEqual(first.FloorFPL) {
		return first.FloorPercent
	}
	for _, bracket := range a.Schedule.Brackets {
		if fplPercent.GreaterThan(bracket.CeilingFPL) {
			continue
		}
		span := bracket.CeilingFPL.Sub(bracket.FloorFPL)
		if span.IsZero() {
			return bracket.FloorPercent
		}
		frac := fplPercent.Sub(bracket.FloorFPL).Div(span)
		return bracket.FloorPercent.Add(bracket.CeilingPercent.Sub(bracket.FloorPercent).Mul(frac))
	}
	return a.Schedule.AboveCeilingPercent
}

// monthlySubsidy computes max(0, benchmark - MAGI*contribution/12), with the
// subsidy cut off entirely above the effective cliff.
func (a *Analyzer) monthlySubsidy(magi, fplPercent, benchmarkPremium decimal.Decimal) decimal.Decimal {
	if fplPercent.GreaterThan(domain.EffectiveCliffFPLPercent) {
		return decimal.Zero
	}
	required := magi.Mul(a.contributionPercent(fplPercent)).Div(twelve)
	subsidy := benchmarkPremium.Sub(required)
	if subsidy.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return subsidy.Round(2)
}

// breakpoints tabulates subsidy figures at the fixed reference FPL levels.
func (a *Analyzer) breakpoints(fpl, benchmarkPremium decimal.Decimal) []domain.Breakpoint {
	points := make([]domain.Breakpoint, 0, len(breakpointLevels))
	for _, level := range breakpointLevels {
		pct := decimal.NewFromInt(level)
		magi := fpl.Mul(pct).Div(hundred).Round(0)
		monthly := a.monthlySubsidy(magi, pct, benchmarkPremium)
		points = append(points, domain.Breakpoint{
			FPLPercent:          pct,
			MAGI:                magi,
			ContributionPercent: a.contributionPercent(pct),
			MonthlySubsidy:      monthly,
			AnnualSubsidy:       monthly.Mul(twelve),
		})
	}
	return points
}

// findOptimalTarget searches the fixed breakpoint levels below the current
// FPL percentage for the reduction with the best payoff: among candidates
// whose subsidy gain beats the after-tax cost of the forgone income, the one
// with the highest annual subsidy wins.
func (a *Analyzer) findOptimalTarget(input Input, fpl, fplPercent, currentAnnualSubsidy decimal.Decimal) *domain.OptimalMAGI {
	var best *domain.OptimalMAGI
	for _, level := range breakpointLevels {
		pct := decimal.NewFromInt(level)
		if pct.GreaterThanOrEqual(fplPercent) {
			continue
		}
		targetMAGI := fpl.Mul(pct).Div(hundred).Round(0)
		monthly := a.monthlySubsidy(targetMAGI, pct, input.BenchmarkPremium)
		annual := monthly.Mul(twelve)

		incomeReduction := input.MAGI.Sub(targetMAGI)
		subsidyGain := annual.Sub(currentAnnualSubsidy)
		netBenefit := subsidyGain.Sub(incomeReduction.Mul(afterTaxCostFactor))
		if netBenefit.LessThanOrEqual(decimal.Zero) {
			continue
		}
		// >= so a later candidate (higher FPL level, smaller reduction)
		// wins when annual subsidies tie.
		if best == nil || annual.GreaterThanOrEqual(best.AnnualSubsidy) {
			best = &domain.OptimalMAGI{
				TargetMAGI:       targetMAGI,
				TargetFPLPercent: pct,
				MonthlySubsidy:   monthly,
				AnnualSubsidy:    annual,
				IncomeReduction:  incomeReduction,
				SubsidyGain:      subsidyGain,
				NetBenefit:       netBenefit,
			}
		}
	}
	return best
}

// cliffRisk measures proximity to the subsidy cliff. The headroom figure uses
// the 450% effective cliff; the subsidy delta brackets the 400% statutory
// line.
func (a *Analyzer) cliffRisk(input Input, fpl, fplPercent decimal.Decimal) domain.CliffRisk {
	effectiveCliffMAGI := fpl.Mul(domain.EffectiveCliffFPLPercent).Div(hundred)

	// Bracket the statutory line by a tenth of a percentage point on either
	// side.
	epsilon := decimal.NewFromFloat(0.1)
	justBelowPct := domain.StatutoryCliffFPLPercent.Sub(epsilon)
	justAbovePct := domain.StatutoryCliffFPLPercent.Add(epsilon)
	justBelowMAGI := fpl.Mul(justBelowPct).Div(hundred)
	justAboveMAGI := fpl.Mul(justAbovePct).Div(hundred)
	below := a.monthlySubsidy(justBelowMAGI, justBelowPct, input.BenchmarkPremium)
	above := a.monthlySubsidy(justAboveMAGI, justAbovePct, input.BenchmarkPremium)

	return domain.CliffRisk{
		NearCliff:            fplPercent.GreaterThanOrEqual(nearCliffLow) && fplPercent.LessThanOrEqual(nearCliffHigh),
		DistanceToCliff:      effectiveCliffMAGI.Sub(input.MAGI).Round(0),
		StatutoryLineSubsidy: below,
		SubsidyDeltaAtLine:   below.Sub(above),
	}
}

func (a *Analyzer) addWarnings(analysis *domain.MAGIAnalysis, input Input, fplPercent decimal.Decimal) {
	if fplPercent.LessThan(hundred) && !a.Expansion.HasExpanded(input.State) {
		analysis.Warnings = append(analysis.Warnings, fmt.Sprintf(
			"⚠️  Income below 100%% FPL in %s (no Medicaid expansion): coverage gap, no marketplace subsidy available", input.State))
	}
	if analysis.CliffRisk.NearCliff {
		analysis.Warnings = append(analysis.Warnings,
			"⚠️  Income is within the subsidy-cliff band (380-420% FPL) - small income changes move subsidy eligibility")
	}
	if analysis.Tier == domain.TierAboveCliff {
		analysis.Warnings = append(analysis.Warnings,
			"⚠️  Income is above the effective subsidy cliff (450% FPL) - no premium subsidy applies")
	}
}

func (a *Analyzer) addRecommendations(analysis *domain.MAGIAnalysis) {
	if analysis.OptimalTarget != nil {
		analysis.Recommendations = append(analysis.Recommendations, fmt.Sprintf(
			"💡 Reducing MAGI to $%s (%s%% FPL) captures $%s/yr in additional subsidy for a net benefit of $%s",
			analysis.OptimalTarget.TargetMAGI.StringFixed(0),
			analysis.OptimalTarget.TargetFPLPercent.StringFixed(0),
			analysis.OptimalTarget.SubsidyGain.StringFixed(0),
			analysis.OptimalTarget.NetBenefit.StringFixed(0)))
	} else {
		analysis.Recommendations = append(analysis.Recommendations,
			"✓ No income reduction clears its after-tax cost - current MAGI is already near-optimal")
	}

	applicable := 0
	for _, s := range analysis.Strategies {
		if s.Applicable {
			applicable++
		}
	}
	if analysis.OptimalTarget != nil && applicable > 0 {
		analysis.Recommendations = append(analysis.Recommendations, fmt.Sprintf(
			"💡 %d reduction strategies are available - prioritize tax-deferred retirement contributions first", applicable))
	}
}
