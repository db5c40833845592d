// Package config loads and validates the household analysis input file. The
// engines themselves only clamp; the bounds enforced here are the external
// validator contract at the engine boundary.
package config

import (
	"fmt"
	"os"

	"github.com/coverwise/coverwise/internal/domain"
	"github.com/coverwise/coverwise/internal/hsa"
	"github.com/coverwise/coverwise/internal/magi"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Validation bounds.
const (
	MaxAdults     = 10
	MaxChildren   = 10
	MaxResidences = 5
	MinAdultAge   = 18
	MaxAdultAge   = 120
	MinChildAge   = 0
	MaxChildAge   = 17
)

// Document is the top-level analysis input file.
type Document struct {
	Household   householdInput     `yaml:"household"`
	PrimaryPlan domain.PrimaryPlan `yaml:"primary_plan"`
	Preferences preferencesInput   `yaml:"preferences"`
	MAGI        *magi.Input        `yaml:"magi"`
	HSA         *hsa.Input         `yaml:"hsa"`
}

// personInput accepts fractional ages from the file; they round to the
// nearest integer before validation and lookup.
type personInput struct {
	Name              string          `yaml:"name"`
	Age               decimal.Decimal `yaml:"age"`
	TobaccoUse        bool            `yaml:"tobacco_use"`
	ChronicConditions []string        `yaml:"chronic_conditions"`
}

func (p personInput) toPerson() domain.Person {
	return domain.Person{
		Name:              p.Name,
		Age:               int(p.Age.Round(0).IntPart()),
		TobaccoUse:        p.TobaccoUse,
		ChronicConditions: p.ChronicConditions,
	}
}

type householdInput struct {
	Adults              []personInput      `yaml:"adults"`
	Children            []personInput      `yaml:"children"`
	Residences          []domain.Residence `yaml:"residences"`
	MedicareEligible    bool               `yaml:"medicare_eligible"`
	AnnualIncome        decimal.Decimal    `yaml:"annual_income"`
	MonthlyBudget       decimal.Decimal    `yaml:"monthly_budget"`
	HasExistingCoverage bool               `yaml:"has_existing_coverage"`
}

// preferencesInput accepts category names as strings so unknown categories
// fail fast at parse time instead of silently dropping out of scoring.
type preferencesInput struct {
	ExcludeCategories []string `yaml:"exclude_categories"`
	ShowAll           bool     `yaml:"show_all"`
}

// Input is the validated, engine-ready form of a Document.
type Input struct {
	Household   *domain.Household
	PrimaryPlan domain.PrimaryPlan
	Preferences domain.Preferences
	MAGI        *magi.Input
	HSA         *hsa.Input
}

// InputParser handles parsing of analysis input files.
type InputParser struct {
	States domain.StateCostTable
}

// NewInputParser creates a parser validating against the default state table.
func NewInputParser() *InputParser {
	return &InputParser{States: domain.DefaultStateCostTable()}
}

// LoadFromFile loads and validates an analysis input from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*Input, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	input, err := ip.Build(&doc)
	if err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}
	return input, nil
}

// Build validates a parsed document and converts it into engine records.
func (ip *InputParser) Build(doc *Document) (*Input, error) {
	if err := ip.validateHousehold(&doc.Household); err != nil {
		return nil, err
	}

	prefs := domain.Preferences{ShowAll: doc.Preferences.ShowAll}
	for _, name := range doc.Preferences.ExcludeCategories {
		category, err := domain.ParseCategory(name)
		if err != nil {
			return nil, fmt.Errorf("preferences: %w", err)
		}
		prefs.ExcludeCategories = append(prefs.ExcludeCategories, category)
	}

	household := &domain.Household{
		Residences:          doc.Household.Residences,
		MedicareEligible:    doc.Household.MedicareEligible,
		AnnualIncome:        doc.Household.AnnualIncome,
		MonthlyBudget:       doc.Household.MonthlyBudget,
		HasExistingCoverage: doc.Household.HasExistingCoverage,
	}
	for _, p := range doc.Household.Adults {
		household.Adults = append(household.Adults, p.toPerson())
	}
	for _, p := range doc.Household.Children {
		household.Children = append(household.Children, p.toPerson())
	}

	if doc.MAGI != nil {
		if err := ip.validateMAGI(doc.MAGI, household); err != nil {
			return nil, err
		}
	}
	if doc.HSA != nil {
		if err := ip.validateHSA(doc.HSA); err != nil {
			return nil, err
		}
	}

	return &Input{
		Household:   household,
		PrimaryPlan: doc.PrimaryPlan,
		Preferences: prefs,
		MAGI:        doc.MAGI,
		HSA:         doc.HSA,
	}, nil
}

func (ip *InputParser) validateHousehold(h *householdInput) error {
	if len(h.Adults) == 0 {
		return fmt.Errorf("at least one adult is required")
	}
	if len(h.Adults) > MaxAdults {
		return fmt.Errorf("at most %d adults are supported, got %d", MaxAdults, len(h.Adults))
	}
	if len(h.Children) > MaxChildren {
		return fmt.Errorf("at most %d children are supported, got %d", MaxChildren, len(h.Children))
	}

	for i, adult := range h.Adults {
		age := adult.toPerson().Age
		if age < MinAdultAge || age > MaxAdultAge {
			return fmt.Errorf("adult %d (%s): age %d outside [%d,%d]", i, adult.Name, age, MinAdultAge, MaxAdultAge)
		}
	}
	for i, child := range h.Children {
		age := child.toPerson().Age
		if age < MinChildAge || age > MaxChildAge {
			return fmt.Errorf("child %d (%s): age %d outside [%d,%d]", i, child.Name, age, MinChildAge, MaxChildAge)
		}
	}

	if len(h.Residences) == 0 {
		return fmt.Errorf("at least one residence is required")
	}
	if len(h.Residences) > MaxResidences {
		return fmt.Errorf("at most %d residences are supported, got %d", MaxResidences, len(h.Residences))
	}

	totalMonths := decimal.Zero
	for i, r := range h.Residences {
		if _, err := ip.States.MultiplierFor(r.State); err != nil {
			return fmt.Errorf("residence %d: %w", i, err)
		}
		if r.MonthsPerYear.LessThan(decimal.Zero) {
			return fmt.Errorf("residence %d (%s): months per year cannot be negative", i, r.State)
		}
		totalMonths = totalMonths.Add(r.MonthsPerYear)
	}
	if totalMonths.GreaterThan(decimal.NewFromInt(12)) {
		return fmt.Errorf("residence months per year sum to %s, must not exceed 12", totalMonths)
	}

	if h.AnnualIncome.LessThan(decimal.Zero) {
		return fmt.Errorf("annual income cannot be negative")
	}
	if h.MonthlyBudget.LessThan(decimal.Zero) {
		return fmt.Errorf("monthly budget cannot be negative")
	}
	return nil
}

// validateMAGI checks the subsidy-analysis section, defaulting household size
// and state from the household record when omitted.
func (ip *InputParser) validateMAGI(input *magi.Input, household *domain.Household) error {
	if input.MAGI.LessThan(decimal.Zero) {
		return fmt.Errorf("magi: estimated MAGI cannot be negative")
	}
	if input.HouseholdSize == 0 {
		input.HouseholdSize = household.Size()
	}
	if input.HouseholdSize < 1 {
		return fmt.Errorf("magi: household size must be at least 1")
	}
	if input.State == "" && len(household.Residences) > 0 {
		input.State = household.Residences[0].State
	}
	if _, err := ip.States.MultiplierFor(input.State); err != nil {
		return fmt.Errorf("magi: %w", err)
	}
	if input.BenchmarkPremium.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("magi: benchmark premium must be positive")
	}
	return nil
}

func (ip *InputParser) validateHSA(input *hsa.Input) error {
	if input.CoverageType == "" {
		input.CoverageType = domain.HSACoverageIndividual
	}
	if input.CoverageType != domain.HSACoverageIndividual && input.CoverageType != domain.HSACoverageFamily {
		return fmt.Errorf("hsa: unknown coverage type %q", input.CoverageType)
	}
	one := decimal.NewFromInt(1)
	rates := []struct {
		name  string
		value decimal.Decimal
	}{
		{"federal_rate", input.FederalRate},
		{"state_rate", input.StateRate},
	}
	for _, rate := range rates {
		if rate.value.LessThan(decimal.Zero) || rate.value.GreaterThan(one) {
			return fmt.Errorf("hsa: %s %s outside [0,1]", rate.name, rate.value)
		}
	}
	if input.ProjectionYears < 0 || input.ProjectionYears > 50 {
		return fmt.Errorf("hsa: projection years %d outside [0,50]", input.ProjectionYears)
	}
	return nil
}
