// Package recommend aggregates per-person actuarial scores into priced,
// tiered household recommendations.
package recommend

import (
	"fmt"
	"sort"

	"github.com/coverwise/coverwise/internal/actuarial"
	"github.com/coverwise/coverwise/internal/domain"
	"github.com/shopspring/decimal"
)

// Logger is the optional debug logger the engine writes score traces to.
type Logger interface {
	Debugf(format string, args ...any)
}

// Engine scores households against the actuarial curves and prices the
// resulting recommendations. It holds only immutable reference tables, so a
// single Engine is safe for concurrent use across households.
type Engine struct {
	Costs  domain.CategoryCostTable
	States domain.StateCostTable

	logger Logger
}

// NewEngine creates an engine with the current-year default tables.
func NewEngine() *Engine {
	return NewEngineWithConfig(domain.DefaultCategoryCostTable(), domain.DefaultStateCostTable())
}

// NewEngineWithConfig creates an engine with explicit reference tables, e.g.
// for historical-year analyses.
func NewEngineWithConfig(costs domain.CategoryCostTable, states domain.StateCostTable) *Engine {
	return &Engine{Costs: costs, States: states}
}

// SetLogger attaches a debug logger.
func (e *Engine) SetLogger(l Logger) {
	e.logger = l
}

func (e *Engine) debugf(format string, args ...any) {
	if e.logger != nil {
		e.logger.Debugf(format, args...)
	}
}

// Modifier magnitudes, applied in the fixed order: chronic boost, Medicare
// boost, travel boost, low-budget de-prioritization.
var (
	chronicConditionBoost = decimal.NewFromInt(10)
	medicareBoost         = decimal.NewFromInt(10)
	travelBoost           = decimal.NewFromInt(8)
	lowBudgetFactor       = decimal.NewFromFloat(0.85)
	maxScore              = decimal.NewFromInt(100)
)

// Categories whose need rises when a member carries chronic conditions.
var chronicBoostCategories = map[domain.Category]bool{
	domain.CategoryCriticalIllness:   true,
	domain.CategoryHospitalIndemnity: true,
	domain.CategoryDisability:        true,
}

// Categories Medicare leaves uncovered, boosted for Medicare-eligible
// households.
var medicareBoostCategories = map[domain.Category]bool{
	domain.CategoryDental:            true,
	domain.CategoryVision:            true,
	domain.CategoryHospitalIndemnity: true,
}

// memberScore is one (person, category) evaluation after modifiers.
type memberScore struct {
	person domain.Person
	point  domain.CurvePoint
	score  decimal.Decimal
}

// Recommend produces the household's recommendation set. An empty household
// yields an empty set, not an error; unknown state codes and categories fail
// fast.
func (e *Engine) Recommend(household *domain.Household, plan domain.PrimaryPlan, prefs domain.Preferences) (*domain.RecommendationSet, error) {
	set := &domain.RecommendationSet{
		Recommendations:            []domain.Recommendation{},
		HighPriority:               []domain.Recommendation{},
		MediumPriority:             []domain.Recommendation{},
		TotalMonthlyHighPriority:   decimal.Zero,
		TotalMonthlyAllRecommended: decimal.Zero,
		HouseholdAgeGroups:         []domain.AgeGroup{},
	}
	if household == nil || household.IsEmpty() {
		return set, nil
	}
	set.HouseholdAgeGroups = household.AgeGroups()

	stateMultiplier, err := e.weightedStateMultiplier(household.Residences)
	if err != nil {
		return nil, err
	}

	// Supplemental budget left after the primary plan premium. Zero budget
	// means "no budget constraint supplied".
	effectiveBudget := decimal.Zero
	if household.MonthlyBudget.GreaterThan(decimal.Zero) {
		effectiveBudget = household.MonthlyBudget.Sub(plan.MonthlyPremium)
		if effectiveBudget.LessThan(decimal.Zero) {
			effectiveBudget = decimal.Zero
		}
	}

	// Excluded categories are removed before scoring so they never count
	// toward totals or the bundle threshold.
	categories := []domain.Category{}
	for _, c := range domain.AllCategories() {
		if !prefs.Excluded(c) {
			categories = append(categories, c)
		}
	}

	members := household.Members()
	recs := []domain.Recommendation{}
	preDiscountCosts := map[domain.Category]decimal.Decimal{}

	for _, category := range categories {
		baseCost, err := e.Costs.BaseCostFor(category)
		if err != nil {
			return nil, err
		}
		floor := e.Costs.RelevanceFloorFor(category)

		var best *memberScore
		applicable := 0
		for _, member := range members {
			point, err := actuarial.Evaluate(member.Age, category)
			if err != nil {
				return nil, err
			}
			score := e.applyModifiers(point.ProbabilityScore, member, household, category, baseCost, effectiveBudget)
			e.debugf("scored %s for %s (age %d): curve=%s modified=%s",
				category, member.Name, member.Age, point.ProbabilityScore, score)

			if score.GreaterThanOrEqual(floor) {
				applicable++
			}
			if best == nil || score.GreaterThan(best.score) {
				best = &memberScore{person: member, point: point, score: score}
			}
		}
		if best == nil {
			continue
		}

		adjustedCost := baseCost.Mul(stateMultiplier).Mul(best.point.CostMultiplier).Round(2)
		preDiscount := adjustedCost.Mul(decimal.NewFromInt(int64(applicable)))

		rec := domain.Recommendation{
			InsuranceID:          fmt.Sprintf("supp-%s", category),
			Category:             category,
			Priority:             domain.PriorityFor(best.score),
			ProbabilityScore:     best.score,
			AdjustedCostPerMonth: adjustedCost,
			ApplicableMembers:    applicable,
			Reasons:              e.reasonsFor(best, household, category),
			AgeGroup:             domain.AgeGroupFor(best.person.Age),
		}
		recs = append(recs, rec)
		preDiscountCosts[category] = preDiscount
	}

	// The bundle discount is decided once across the whole recommendation
	// set (medium priority and above), then applied uniformly.
	recommendedCount := 0
	for _, rec := range recs {
		if rec.Priority != domain.PriorityLow {
			recommendedCount++
		}
	}
	discount := decimal.NewFromInt(1)
	if recommendedCount >= domain.BundleDiscountMinCategories {
		discount = domain.BundleDiscountRate
		set.BundleDiscountApplied = true
	}

	highCosts := []decimal.Decimal{}
	allCosts := []decimal.Decimal{}
	for i := range recs {
		recs[i].HouseholdCostPerMonth = preDiscountCosts[recs[i].Category].Mul(discount).Round(2)
		switch recs[i].Priority {
		case domain.PriorityHigh:
			set.HighPriority = append(set.HighPriority, recs[i])
			highCosts = append(highCosts, preDiscountCosts[recs[i].Category])
			allCosts = append(allCosts, preDiscountCosts[recs[i].Category])
		case domain.PriorityMedium:
			set.MediumPriority = append(set.MediumPriority, recs[i])
			allCosts = append(allCosts, preDiscountCosts[recs[i].Category])
		}
	}

	for _, rec := range recs {
		if rec.Priority == domain.PriorityLow && !prefs.ShowAll {
			continue
		}
		set.Recommendations = append(set.Recommendations, rec)
	}
	sort.SliceStable(set.Recommendations, func(i, j int) bool {
		return set.Recommendations[i].ProbabilityScore.GreaterThan(set.Recommendations[j].ProbabilityScore)
	})
	sort.SliceStable(set.HighPriority, func(i, j int) bool {
		return set.HighPriority[i].ProbabilityScore.GreaterThan(set.HighPriority[j].ProbabilityScore)
	})
	sort.SliceStable(set.MediumPriority, func(i, j int) bool {
		return set.MediumPriority[i].ProbabilityScore.GreaterThan(set.MediumPriority[j].ProbabilityScore)
	})

	set.TotalMonthlyHighPriority = totalWithDiscount(highCosts, discount)
	set.TotalMonthlyAllRecommended = totalWithDiscount(allCosts, discount)

	return set, nil
}

// applyModifiers adjusts a curve score for household context, in fixed order.
func (e *Engine) applyModifiers(
	score decimal.Decimal,
	member domain.Person,
	household *domain.Household,
	category domain.Category,
	baseCost decimal.Decimal,
	effectiveBudget decimal.Decimal,
) decimal.Decimal {
	if member.HasChronicConditions() && chronicBoostCategories[category] {
		score = score.Add(chronicConditionBoost)
	}
	if household.MedicareEligible && medicareBoostCategories[category] {
		score = score.Add(medicareBoost)
	}
	if household.MultiState() && category == domain.CategoryAccident {
		score = score.Add(travelBoost)
	}
	if effectiveBudget.GreaterThan(decimal.Zero) && baseCost.GreaterThan(effectiveBudget) {
		score = score.Mul(lowBudgetFactor)
	}
	if score.GreaterThan(maxScore) {
		return maxScore
	}
	return score
}

// reasonsFor assembles the ordered justification list for a recommendation.
func (e *Engine) reasonsFor(best *memberScore, household *domain.Household, category domain.Category) []string {
	reasons := []string{best.point.Reasoning}

	if best.person.HasChronicConditions() && chronicBoostCategories[category] {
		reasons = append(reasons, fmt.Sprintf(
			"Chronic conditions (%d diagnosed) raise expected utilization for %s coverage.",
			len(best.person.ChronicConditions), category.DisplayName()))
	}
	if household.MedicareEligible && medicareBoostCategories[category] {
		reasons = append(reasons, fmt.Sprintf(
			"Original Medicare leaves %s largely uncovered.", category.DisplayName()))
	}
	if household.MultiState() && category == domain.CategoryAccident {
		reasons = append(reasons, "Time split across multiple residences increases travel-related injury exposure.")
	}
	if best.person.TobaccoUse && (category == domain.CategoryCriticalIllness || category == domain.CategoryLife) {
		reasons = append(reasons, "Tobacco use increases underwritten rates; locking in coverage early limits the premium impact.")
	}
	return reasons
}

// weightedStateMultiplier averages the state cost multipliers across
// residences, weighted by months per year. No residences means the national
// baseline of 1.0.
func (e *Engine) weightedStateMultiplier(residences []domain.Residence) (decimal.Decimal, error) {
	if len(residences) == 0 {
		return decimal.NewFromInt(1), nil
	}
	weighted := decimal.Zero
	months := decimal.Zero
	for _, r := range residences {
		multiplier, err := e.States.MultiplierFor(r.State)
		if err != nil {
			return decimal.Zero, err
		}
		weighted = weighted.Add(multiplier.Mul(r.MonthsPerYear))
		months = months.Add(r.MonthsPerYear)
	}
	if months.IsZero() {
		// Unweighted residences fall back to a simple average.
		sum := decimal.Zero
		for _, r := range residences {
			multiplier, err := e.States.MultiplierFor(r.State)
			if err != nil {
				return decimal.Zero, err
			}
			sum = sum.Add(multiplier)
		}
		return sum.Div(decimal.NewFromInt(int64(len(residences)))), nil
	}
	return weighted.Div(months), nil
}

// totalWithDiscount sums per-category household costs, applies the uniform
// bundle discount, and rounds to whole dollars for display.
func totalWithDiscount(costs []decimal.Decimal, discount decimal.Decimal) decimal.Decimal {
	sum := decimal.Zero
	for _, c := range costs {
		sum = sum.Add(c)
	}
	return sum.Mul(discount).Round(0)
}

// BundleTotal prices a set of per-category monthly costs as a bundle: the
// discount applies when the category count reaches the bundle threshold, and
// the result rounds to whole dollars.
func BundleTotal(costs []decimal.Decimal) decimal.Decimal {
	discount := decimal.NewFromInt(1)
	if len(costs) >= domain.BundleDiscountMinCategories {
		discount = domain.BundleDiscountRate
	}
	return totalWithDiscount(costs, discount)
}
