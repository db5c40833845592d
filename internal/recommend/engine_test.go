package recommend

import (
	"testing"

	"github.com/coverwise/coverwise/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func singleResidence(state string) []domain.Residence {
	return []domain.Residence{{State: state, MonthsPerYear: decimal.NewFromInt(12)}}
}

func TestRecommendEmptyHousehold(t *testing.T) {
	engine := NewEngine()
	set, err := engine.Recommend(&domain.Household{}, domain.PrimaryPlan{}, domain.Preferences{})
	require.NoError(t, err)
	assert.Empty(t, set.Recommendations)
	assert.Empty(t, set.HighPriority)
	assert.True(t, set.TotalMonthlyAllRecommended.IsZero())
}

func TestRecommendNewbornHousehold(t *testing.T) {
	engine := NewEngine()
	household := &domain.Household{
		Adults:     []domain.Person{domain.NewPerson("Parent", 32)},
		Children:   []domain.Person{domain.NewPerson("Newborn", 0)},
		Residences: singleResidence("TX"),
	}

	set, err := engine.Recommend(household, domain.PrimaryPlan{}, domain.Preferences{})
	require.NoError(t, err)

	fifty := decimal.NewFromInt(50)
	for _, category := range []domain.Category{domain.CategoryDental, domain.CategoryVision} {
		rec := findRecommendation(t, set.Recommendations, category)
		assert.Contains(t, []domain.Priority{domain.PriorityHigh, domain.PriorityMedium}, rec.Priority,
			"%s priority was %s", category, rec.Priority)
		assert.True(t, rec.ProbabilityScore.GreaterThan(fifty),
			"%s score was %s", category, rec.ProbabilityScore)
	}
}

func TestRecommendMaxAgeHousehold(t *testing.T) {
	engine := NewEngine()
	household := &domain.Household{
		Adults:     []domain.Person{domain.NewPerson("Elder", 120)},
		Residences: singleResidence("FL"),
	}

	set, err := engine.Recommend(household, domain.PrimaryPlan{}, domain.Preferences{ShowAll: true})
	require.NoError(t, err)

	eighty := decimal.NewFromInt(80)
	for _, category := range []domain.Category{domain.CategoryLongTermCare, domain.CategoryCriticalIllness} {
		rec := findRecommendation(t, set.Recommendations, category)
		assert.True(t, rec.ProbabilityScore.GreaterThan(eighty),
			"%s score at 120 was %s", category, rec.ProbabilityScore)
		assert.Equal(t, domain.PriorityHigh, rec.Priority)
	}
}

func TestRecommendExcludedCategoriesRemovedBeforeScoring(t *testing.T) {
	engine := NewEngine()
	household := &domain.Household{
		Adults:     []domain.Person{domain.NewPerson("Adult", 70)},
		Residences: singleResidence("OH"),
	}
	prefs := domain.Preferences{
		ShowAll: true,
		ExcludeCategories: []domain.Category{
			domain.CategoryDental,
			domain.CategoryVision,
		},
	}

	set, err := engine.Recommend(household, domain.PrimaryPlan{}, prefs)
	require.NoError(t, err)

	for _, rec := range set.Recommendations {
		assert.NotEqual(t, domain.CategoryDental, rec.Category)
		assert.NotEqual(t, domain.CategoryVision, rec.Category)
	}
}

func TestRecommendUnknownStateFailsFast(t *testing.T) {
	engine := NewEngine()
	household := &domain.Household{
		Adults:     []domain.Person{domain.NewPerson("Adult", 40)},
		Residences: singleResidence("ZZ"),
	}

	_, err := engine.Recommend(household, domain.PrimaryPlan{}, domain.Preferences{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown state code")
}

func TestRecommendMedicareBoost(t *testing.T) {
	engine := NewEngine()
	base := &domain.Household{
		Adults:     []domain.Person{domain.NewPerson("Senior", 68)},
		Residences: singleResidence("PA"),
	}
	boosted := &domain.Household{
		Adults:           []domain.Person{domain.NewPerson("Senior", 68)},
		Residences:       singleResidence("PA"),
		MedicareEligible: true,
	}

	baseSet, err := engine.Recommend(base, domain.PrimaryPlan{}, domain.Preferences{ShowAll: true})
	require.NoError(t, err)
	boostedSet, err := engine.Recommend(boosted, domain.PrimaryPlan{}, domain.Preferences{ShowAll: true})
	require.NoError(t, err)

	baseDental := findRecommendation(t, baseSet.Recommendations, domain.CategoryDental)
	boostedDental := findRecommendation(t, boostedSet.Recommendations, domain.CategoryDental)
	diff := boostedDental.ProbabilityScore.Sub(baseDental.ProbabilityScore)
	assert.True(t, diff.Equal(decimal.NewFromInt(10)),
		"Medicare boost moved dental score by %s, want 10", diff)
}

func TestRecommendTravelBoostForMultiResidence(t *testing.T) {
	engine := NewEngine()
	single := &domain.Household{
		Adults:     []domain.Person{domain.NewPerson("Adult", 25)},
		Residences: singleResidence("IL"),
	}
	multi := &domain.Household{
		Adults: []domain.Person{domain.NewPerson("Adult", 25)},
		Residences: []domain.Residence{
			{State: "IL", MonthsPerYear: decimal.NewFromInt(8)},
			{State: "IL", MonthsPerYear: decimal.NewFromInt(4)},
		},
	}

	singleSet, err := engine.Recommend(single, domain.PrimaryPlan{}, domain.Preferences{ShowAll: true})
	require.NoError(t, err)
	multiSet, err := engine.Recommend(multi, domain.PrimaryPlan{}, domain.Preferences{ShowAll: true})
	require.NoError(t, err)

	singleAccident := findRecommendation(t, singleSet.Recommendations, domain.CategoryAccident)
	multiAccident := findRecommendation(t, multiSet.Recommendations, domain.CategoryAccident)
	diff := multiAccident.ProbabilityScore.Sub(singleAccident.ProbabilityScore)
	assert.True(t, diff.Equal(decimal.NewFromInt(8)),
		"travel boost moved accident score by %s, want 8", diff)
}

func TestRecommendChronicConditionBoost(t *testing.T) {
	engine := NewEngine()
	household := &domain.Household{
		Adults: []domain.Person{
			{Name: "Adult", Age: 45, ChronicConditions: []string{"diabetes"}},
		},
		Residences: singleResidence("GA"),
	}
	control := &domain.Household{
		Adults:     []domain.Person{domain.NewPerson("Adult", 45)},
		Residences: singleResidence("GA"),
	}

	withChronic, err := engine.Recommend(household, domain.PrimaryPlan{}, domain.Preferences{ShowAll: true})
	require.NoError(t, err)
	without, err := engine.Recommend(control, domain.PrimaryPlan{}, domain.Preferences{ShowAll: true})
	require.NoError(t, err)

	boosted := findRecommendation(t, withChronic.Recommendations, domain.CategoryCriticalIllness)
	plain := findRecommendation(t, without.Recommendations, domain.CategoryCriticalIllness)
	diff := boosted.ProbabilityScore.Sub(plain.ProbabilityScore)
	assert.True(t, diff.Equal(decimal.NewFromInt(10)),
		"chronic boost moved critical illness score by %s, want 10", diff)
}

func TestRecommendApplicableMembersCount(t *testing.T) {
	engine := NewEngine()
	// Two children and one adult: dental is relevant for all three.
	household := &domain.Household{
		Adults: []domain.Person{domain.NewPerson("Parent", 36)},
		Children: []domain.Person{
			domain.NewPerson("Kid1", 6),
			domain.NewPerson("Kid2", 9),
		},
		Residences: singleResidence("NC"),
	}

	set, err := engine.Recommend(household, domain.PrimaryPlan{}, domain.Preferences{})
	require.NoError(t, err)
	dental := findRecommendation(t, set.Recommendations, domain.CategoryDental)
	assert.Equal(t, 3, dental.ApplicableMembers)
}

func TestRecommendShowAllIncludesLowPriority(t *testing.T) {
	engine := NewEngine()
	// A 25-year-old scores below 50 on long-term care and critical illness.
	household := &domain.Household{
		Adults:     []domain.Person{domain.NewPerson("Adult", 25)},
		Residences: singleResidence("CO"),
	}

	defaultSet, err := engine.Recommend(household, domain.PrimaryPlan{}, domain.Preferences{})
	require.NoError(t, err)
	allSet, err := engine.Recommend(household, domain.PrimaryPlan{}, domain.Preferences{ShowAll: true})
	require.NoError(t, err)

	for _, rec := range defaultSet.Recommendations {
		assert.NotEqual(t, domain.PriorityLow, rec.Priority)
	}
	assert.Greater(t, len(allSet.Recommendations), len(defaultSet.Recommendations))
	ltc := findRecommendation(t, allSet.Recommendations, domain.CategoryLongTermCare)
	assert.Equal(t, domain.PriorityLow, ltc.Priority)
}

func TestBundleTotal(t *testing.T) {
	tests := []struct {
		name     string
		costs    []float64
		expected int64
	}{
		{
			name:     "three categories get the bundle discount",
			costs:    []float64{50, 25, 100},
			expected: 166, // round((50+25+100) * 0.95)
		},
		{
			name:     "two categories pay full price",
			costs:    []float64{50, 25},
			expected: 75,
		},
		{
			name:     "four categories get the bundle discount",
			costs:    []float64{40, 40, 40, 40},
			expected: 152,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			costs := make([]decimal.Decimal, len(tt.costs))
			for i, c := range tt.costs {
				costs[i] = decimal.NewFromFloat(c)
			}
			total := BundleTotal(costs)
			assert.True(t, total.Equal(decimal.NewFromInt(tt.expected)),
				"got %s, want %d", total, tt.expected)
		})
	}
}

func TestRecommendBundleDiscountAppliedOnceAcrossSet(t *testing.T) {
	engine := NewEngine()
	household := &domain.Household{
		Adults:     []domain.Person{domain.NewPerson("Senior", 78)},
		Residences: singleResidence("LA"),
	}

	set, err := engine.Recommend(household, domain.PrimaryPlan{}, domain.Preferences{})
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(set.HighPriority)+len(set.MediumPriority), 3)
	assert.True(t, set.BundleDiscountApplied)

	// Every recommendation's household cost reflects the uniform discount:
	// adjusted cost times member count times 0.95.
	for _, rec := range set.Recommendations {
		expected := rec.AdjustedCostPerMonth.
			Mul(decimal.NewFromInt(int64(rec.ApplicableMembers))).
			Mul(domain.BundleDiscountRate).Round(2)
		assert.True(t, rec.HouseholdCostPerMonth.Equal(expected),
			"%s household cost %s, want %s", rec.Category, rec.HouseholdCostPerMonth, expected)
	}
}

func TestRecommendationsSortedByScore(t *testing.T) {
	engine := NewEngine()
	household := &domain.Household{
		Adults:     []domain.Person{domain.NewPerson("Adult", 55)},
		Residences: singleResidence("WA"),
	}

	set, err := engine.Recommend(household, domain.PrimaryPlan{}, domain.Preferences{ShowAll: true})
	require.NoError(t, err)
	for i := 1; i < len(set.Recommendations); i++ {
		assert.True(t, set.Recommendations[i-1].ProbabilityScore.GreaterThanOrEqual(set.Recommendations[i].ProbabilityScore),
			"recommendations not sorted at index %d", i)
	}
}

func TestWeightedStateMultiplierZeroMonthFallback(t *testing.T) {
	engine := NewEngine()

	// CA is 1.18 and MS is 0.89; with no month weights the residences
	// average to 1.035.
	residences := []domain.Residence{
		{State: "CA"},
		{State: "MS"},
	}
	avg, err := engine.weightedStateMultiplier(residences)
	require.NoError(t, err)
	assert.True(t, avg.Equal(decimal.NewFromFloat(1.035)), "got %s, want 1.035", avg)

	residences[1].State = "ZZ"
	_, err = engine.weightedStateMultiplier(residences)
	assert.Error(t, err)
}

func findRecommendation(t *testing.T, recs []domain.Recommendation, category domain.Category) domain.Recommendation {
	t.Helper()
	for _, rec := range recs {
		if rec.Category == category {
			return rec
		}
	}
	t.Fatalf("no recommendation found for category %s", category)
	return domain.Recommendation{}
}
