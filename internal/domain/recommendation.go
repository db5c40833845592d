package domain

import (
	"github.com/shopspring/decimal"
)

// Priority classifies a recommendation by probability score: high at 75 and
// above, medium in [50,75), below 50 excluded from the default view.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Priority score thresholds.
var (
	HighPriorityFloor   = decimal.NewFromInt(75)
	MediumPriorityFloor = decimal.NewFromInt(50)
)

// PriorityFor classifies a probability score into a priority tier.
func PriorityFor(score decimal.Decimal) Priority {
	switch {
	case score.GreaterThanOrEqual(HighPriorityFloor):
		return PriorityHigh
	case score.GreaterThanOrEqual(MediumPriorityFloor):
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// Recommendation is one priced, household-level coverage suggestion. Created
// fresh per recommendation run and never mutated after construction.
type Recommendation struct {
	InsuranceID           string          `json:"insuranceId"`
	Category              Category        `json:"category"`
	Priority              Priority        `json:"priority"`
	ProbabilityScore      decimal.Decimal `json:"probabilityScore"`
	AdjustedCostPerMonth  decimal.Decimal `json:"adjustedCostPerMonth"`  // per person, after state multiplier
	HouseholdCostPerMonth decimal.Decimal `json:"householdCostPerMonth"` // after member count and bundle discount
	ApplicableMembers     int             `json:"applicableMembers"`
	Reasons               []string        `json:"reasons"`
	AgeGroup              AgeGroup        `json:"ageGroup"`
}

// RecommendationSet aggregates one recommendation run for a household.
type RecommendationSet struct {
	Recommendations            []Recommendation `json:"recommendations"`
	HighPriority               []Recommendation `json:"highPriority"`
	MediumPriority             []Recommendation `json:"mediumPriority"`
	TotalMonthlyHighPriority   decimal.Decimal  `json:"totalMonthlyHighPriority"`
	TotalMonthlyAllRecommended decimal.Decimal  `json:"totalMonthlyAllRecommended"`
	HouseholdAgeGroups         []AgeGroup       `json:"householdAgeGroups"`
	BundleDiscountApplied      bool             `json:"bundleDiscountApplied"`
}

// Preferences narrows a recommendation run. ExcludeCategories are removed
// before any scoring happens so they never count toward totals or the bundle
// discount. ShowAll includes below-medium recommendations in the result.
type Preferences struct {
	ExcludeCategories []Category `yaml:"exclude_categories" json:"excludeCategories"`
	ShowAll           bool       `yaml:"show_all" json:"showAll"`
}

// Excluded reports whether a category is filtered out by the preferences.
func (p Preferences) Excluded(c Category) bool {
	for _, e := range p.ExcludeCategories {
		if e == c {
			return true
		}
	}
	return false
}
