package domain

import (
	"github.com/shopspring/decimal"
)

// MinAge and MaxAge bound every age the engine evaluates. Out-of-range ages
// are clamped, never rejected.
const (
	MinAge = 0
	MaxAge = 120
)

// ClampAge normalizes an age into the supported [MinAge, MaxAge] domain.
func ClampAge(age int) int {
	if age < MinAge {
		return MinAge
	}
	if age > MaxAge {
		return MaxAge
	}
	return age
}

// Person represents a single household member. Immutable once constructed.
type Person struct {
	Name              string   `yaml:"name" json:"name"`
	Age               int      `yaml:"age" json:"age"`
	TobaccoUse        bool     `yaml:"tobacco_use" json:"tobaccoUse"`
	ChronicConditions []string `yaml:"chronic_conditions" json:"chronicConditions"`
}

// NewPerson constructs a Person with the age clamped into [0,120].
func NewPerson(name string, age int) Person {
	return Person{Name: name, Age: ClampAge(age)}
}

// HasChronicConditions reports whether the person carries any chronic
// condition diagnosis.
func (p Person) HasChronicConditions() bool {
	return len(p.ChronicConditions) > 0
}

// Residence is a state of residence with a months-per-year weight. Weights
// across a household's residences sum to at most 12.
type Residence struct {
	State         string          `yaml:"state" json:"state"`
	MonthsPerYear decimal.Decimal `yaml:"months_per_year" json:"monthsPerYear"`
}

// Household is the engine's primary input: an ordered collection of members
// plus residence and income context.
type Household struct {
	Adults              []Person        `yaml:"adults" json:"adults"`
	Children            []Person        `yaml:"children" json:"children"`
	Residences          []Residence     `yaml:"residences" json:"residences"`
	MedicareEligible    bool            `yaml:"medicare_eligible" json:"medicareEligible"`
	AnnualIncome        decimal.Decimal `yaml:"annual_income" json:"annualIncome"`
	MonthlyBudget       decimal.Decimal `yaml:"monthly_budget" json:"monthlyBudget"`
	HasExistingCoverage bool            `yaml:"has_existing_coverage" json:"hasExistingCoverage"`
}

// Members returns adults followed by children, preserving input order.
func (h *Household) Members() []Person {
	members := make([]Person, 0, len(h.Adults)+len(h.Children))
	members = append(members, h.Adults...)
	members = append(members, h.Children...)
	return members
}

// Size returns the total member count, the household size used for FPL
// lookups.
func (h *Household) Size() int {
	return len(h.Adults) + len(h.Children)
}

// IsEmpty reports whether the household has no members.
func (h *Household) IsEmpty() bool {
	return h.Size() == 0
}

// MultiState reports whether the household splits the year across more than
// one residence.
func (h *Household) MultiState() bool {
	return len(h.Residences) > 1
}

// AgeGroup is a display-only label. Scoring is continuous in age; these
// buckets exist solely for grouping output.
type AgeGroup string

const (
	AgeGroupChildren    AgeGroup = "Children (0-17)"
	AgeGroupYoungAdults AgeGroup = "Young Adults (18-30)"
	AgeGroupAdults      AgeGroup = "Adults (31-45)"
	AgeGroupMidCareer   AgeGroup = "Mid-Career (46-64)"
	AgeGroupSeniors     AgeGroup = "Seniors (65-74)"
	AgeGroupElders      AgeGroup = "Seniors (75+)"
)

// AgeGroupFor maps an age to its display bucket.
func AgeGroupFor(age int) AgeGroup {
	age = ClampAge(age)
	switch {
	case age <= 17:
		return AgeGroupChildren
	case age <= 30:
		return AgeGroupYoungAdults
	case age <= 45:
		return AgeGroupAdults
	case age <= 64:
		return AgeGroupMidCareer
	case age <= 74:
		return AgeGroupSeniors
	default:
		return AgeGroupElders
	}
}

// AgeGroups returns the distinct display buckets present in the household,
// ordered youngest to oldest.
func (h *Household) AgeGroups() []AgeGroup {
	ordered := []AgeGroup{
		AgeGroupChildren,
		AgeGroupYoungAdults,
		AgeGroupAdults,
		AgeGroupMidCareer,
		AgeGroupSeniors,
		AgeGroupElders,
	}
	present := make(map[AgeGroup]bool)
	for _, m := range h.Members() {
		present[AgeGroupFor(m.Age)] = true
	}
	groups := []AgeGroup{}
	for _, g := range ordered {
		if present[g] {
			groups = append(groups, g)
		}
	}
	return groups
}

// PrimaryPlan carries the household's existing major-medical plan context.
// The engine reads only its premium; plan selection itself is out of scope.
type PrimaryPlan struct {
	PlanName       string          `yaml:"plan_name" json:"planName"`
	MonthlyPremium decimal.Decimal `yaml:"monthly_premium" json:"monthlyPremium"`
	IsHDHP         bool            `yaml:"is_hdhp" json:"isHDHP"`
}
