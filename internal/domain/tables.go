package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// The tables in this file are year-versioned regulatory and pricing data.
// They are loaded or constructed once, passed into the engines explicitly,
// and never mutated, so analyses against historical years are just a matter
// of swapping the table set.

// FPLTable holds Federal Poverty Level amounts by household size. Sizes
// beyond the largest tabulated entry extend by a fixed per-person increment.
type FPLTable struct {
	Year                int                     `yaml:"year" json:"year"`
	Amounts             map[int]decimal.Decimal `yaml:"amounts" json:"amounts"`
	AdditionalPerPerson decimal.Decimal         `yaml:"additional_per_person" json:"additionalPerPerson"`
}

// FPLFor returns the poverty level for a household size, extending the table
// past its largest entry by the per-person increment. Sizes below 1 are
// treated as 1.
func (t FPLTable) FPLFor(householdSize int) decimal.Decimal {
	if householdSize < 1 {
		householdSize = 1
	}
	maxSize := 0
	for size := range t.Amounts {
		if size > maxSize {
			maxSize = size
		}
	}
	if amount, ok := t.Amounts[householdSize]; ok {
		return amount
	}
	extra := decimal.NewFromInt(int64(householdSize - maxSize))
	return t.Amounts[maxSize].Add(t.AdditionalPerPerson.Mul(extra))
}

// DefaultFPLTable returns the poverty guidelines used for 2024 coverage-year
// subsidy determinations.
func DefaultFPLTable() FPLTable {
	return FPLTable{
		Year: 2024,
		Amounts: map[int]decimal.Decimal{
			1: decimal.NewFromInt(14580),
			2: decimal.NewFromInt(19720),
			3: decimal.NewFromInt(24860),
			4: decimal.NewFromInt(30000),
			5: decimal.NewFromInt(35140),
			6: decimal.NewFromInt(40280),
			7: decimal.NewFromInt(45420),
			8: decimal.NewFromInt(50560),
		},
		AdditionalPerPerson: decimal.NewFromInt(5140),
	}
}

// ContributionLimits collects the tax-advantaged account limits for one year.
type ContributionLimits struct {
	Year             int             `yaml:"year" json:"year"`
	HSAIndividual    decimal.Decimal `yaml:"hsa_individual" json:"hsaIndividual"`
	HSAFamily        decimal.Decimal `yaml:"hsa_family" json:"hsaFamily"`
	HSACatchUp55     decimal.Decimal `yaml:"hsa_catch_up_55" json:"hsaCatchUp55"`
	Employee401k     decimal.Decimal `yaml:"employee_401k" json:"employee401k"`
	CatchUp401k50    decimal.Decimal `yaml:"catch_up_401k_50" json:"catchUp401k50"`
	IRA              decimal.Decimal `yaml:"ira" json:"ira"`
	IRACatchUp50     decimal.Decimal `yaml:"ira_catch_up_50" json:"iraCatchUp50"`
	SEPPercentOfNet  decimal.Decimal `yaml:"sep_percent_of_net" json:"sepPercentOfNet"`
	SEPMaxDeferral   decimal.Decimal `yaml:"sep_max_deferral" json:"sepMaxDeferral"`
}

// DefaultContributionLimits returns the 2024 limits.
func DefaultContributionLimits() ContributionLimits {
	return ContributionLimits{
		Year:            2024,
		HSAIndividual:   decimal.NewFromInt(4150),
		HSAFamily:       decimal.NewFromInt(8300),
		HSACatchUp55:    decimal.NewFromInt(1000),
		Employee401k:    decimal.NewFromInt(23000),
		CatchUp401k50:   decimal.NewFromInt(7500),
		IRA:             decimal.NewFromInt(7000),
		IRACatchUp50:    decimal.NewFromInt(1000),
		SEPPercentOfNet: decimal.NewFromFloat(0.20),
		SEPMaxDeferral:  decimal.NewFromInt(69000),
	}
}

// HSALimitFor returns the base HSA limit for a coverage type.
func (cl ContributionLimits) HSALimitFor(coverage HSACoverageType) (decimal.Decimal, error) {
	switch coverage {
	case HSACoverageIndividual:
		return cl.HSAIndividual, nil
	case HSACoverageFamily:
		return cl.HSAFamily, nil
	default:
		return decimal.Zero, fmt.Errorf("unknown HSA coverage type: %q", coverage)
	}
}

// StateCostTable maps two-letter state codes to supplemental premium cost
// multipliers. An unknown code is an error; defaulting silently would skew
// every downstream cost figure without a visible signal.
type StateCostTable struct {
	Year        int                        `yaml:"year" json:"year"`
	Multipliers map[string]decimal.Decimal `yaml:"multipliers" json:"multipliers"`
}

// MultiplierFor looks up a state cost multiplier, failing fast on unknown
// codes.
func (t StateCostTable) MultiplierFor(state string) (decimal.Decimal, error) {
	m, ok := t.Multipliers[state]
	if !ok {
		return decimal.Zero, fmt.Errorf("unknown state code: %q", state)
	}
	return m, nil
}

// DefaultStateCostTable returns 2024 relative cost multipliers for the 50
// states plus DC, indexed to a national average of 1.00.
func DefaultStateCostTable() StateCostTable {
	mult := func(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }
	return StateCostTable{
		Year: 2024,
		Multipliers: map[string]decimal.Decimal{
			"AL": mult(0.92), "AK": mult(1.28), "AZ": mult(0.98), "AR": mult(0.90),
			"CA": mult(1.18), "CO": mult(1.04), "CT": mult(1.15), "DE": mult(1.05),
			"DC": mult(1.12), "FL": mult(1.08), "GA": mult(0.97), "HI": mult(1.10),
			"ID": mult(0.93), "IL": mult(1.02), "IN": mult(0.95), "IA": mult(0.92),
			"KS": mult(0.94), "KY": mult(0.96), "LA": mult(1.00), "ME": mult(1.06),
			"MD": mult(1.08), "MA": mult(1.16), "MI": mult(0.98), "MN": mult(1.01),
			"MS": mult(0.89), "MO": mult(0.94), "MT": mult(0.97), "NE": mult(0.95),
			"NV": mult(1.03), "NH": mult(1.07), "NJ": mult(1.14), "NM": mult(0.96),
			"NY": mult(1.20), "NC": mult(0.99), "ND": mult(0.96), "OH": mult(0.97),
			"OK": mult(0.93), "OR": mult(1.05), "PA": mult(1.03), "RI": mult(1.09),
			"SC": mult(0.96), "SD": mult(0.94), "TN": mult(0.95), "TX": mult(1.02),
			"UT": mult(0.94), "VT": mult(1.08), "VA": mult(1.01), "WA": mult(1.07),
			"WV": mult(0.98), "WI": mult(0.99), "WY": mult(1.02),
		},
	}
}

// MedicaidExpansionStates is the set of states that adopted Medicaid
// expansion, keyed by state code.
type MedicaidExpansionStates map[string]bool

// DefaultMedicaidExpansionStates returns the expansion states as of 2024.
func DefaultMedicaidExpansionStates() MedicaidExpansionStates {
	states := []string{
		"AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "HI", "ID", "IL", "IN",
		"IA", "KY", "LA", "ME", "MD", "MA", "MI", "MN", "MO", "MT", "NE", "NV",
		"NH", "NJ", "NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI", "SD",
		"UT", "VT", "VA", "WA", "WV",
	}
	set := make(MedicaidExpansionStates, len(states))
	for _, s := range states {
		set[s] = true
	}
	return set
}

// HasExpanded reports whether a state adopted Medicaid expansion.
func (m MedicaidExpansionStates) HasExpanded(state string) bool {
	return m[state]
}

// ContributionBracket is one segment of the piecewise-linear expected
// contribution schedule: between FloorFPL and CeilingFPL percent of FPL, the
// expected contribution percentage interpolates linearly from FloorPercent to
// CeilingPercent.
type ContributionBracket struct {
	FloorFPL       decimal.Decimal `yaml:"floor_fpl" json:"floorFPL"`
	CeilingFPL     decimal.Decimal `yaml:"ceiling_fpl" json:"ceilingFPL"`
	FloorPercent   decimal.Decimal `yaml:"floor_percent" json:"floorPercent"`
	CeilingPercent decimal.Decimal `yaml:"ceiling_percent" json:"ceilingPercent"`
}

// ContributionSchedule is the ordered bracket table for one coverage year.
type ContributionSchedule struct {
	Year     int                   `yaml:"year" json:"year"`
	Brackets []ContributionBracket `yaml:"brackets" json:"brackets"`
	// AboveCeilingPercent applies above the last bracket's ceiling.
	AboveCeilingPercent decimal.Decimal `yaml:"above_ceiling_percent" json:"aboveCeilingPercent"`
}

// DefaultContributionSchedule returns the enhanced-subsidy schedule in effect
// for 2024.
func DefaultContributionSchedule() ContributionSchedule {
	pct := func(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }
	return ContributionSchedule{
		Year: 2024,
		Brackets: []ContributionBracket{
			{FloorFPL: pct(100), CeilingFPL: pct(150), FloorPercent: pct(0), CeilingPercent: pct(0)},
			{FloorFPL: pct(150), CeilingFPL: pct(200), FloorPercent: pct(0), CeilingPercent: pct(0.02)},
			{FloorFPL: pct(200), CeilingFPL: pct(250), FloorPercent: pct(0.02), CeilingPercent: pct(0.04)},
			{FloorFPL: pct(250), CeilingFPL: pct(300), FloorPercent: pct(0.04), CeilingPercent: pct(0.06)},
			{FloorFPL: pct(300), CeilingFPL: pct(400), FloorPercent: pct(0.06), CeilingPercent: pct(0.085)},
		},
		AboveCeilingPercent: pct(0.085),
	}
}

// CategoryCostTable maps each coverage category to a national-average base
// monthly premium and the relevance floor used when counting applicable
// members.
type CategoryCostTable struct {
	Year           int                         `yaml:"year" json:"year"`
	BaseCosts      map[Category]decimal.Decimal `yaml:"base_costs" json:"baseCosts"`
	RelevanceFloor map[Category]decimal.Decimal `yaml:"relevance_floors" json:"relevanceFloors"`
}

// BaseCostFor looks up a category's base monthly premium, failing fast on
// unknown categories.
func (t CategoryCostTable) BaseCostFor(c Category) (decimal.Decimal, error) {
	cost, ok := t.BaseCosts[c]
	if !ok {
		return decimal.Zero, fmt.Errorf("unknown coverage category: %q", c)
	}
	return cost, nil
}

// RelevanceFloorFor returns the minimum per-person score at which a category
// counts a member as applicable.
func (t CategoryCostTable) RelevanceFloorFor(c Category) decimal.Decimal {
	if floor, ok := t.RelevanceFloor[c]; ok {
		return floor
	}
	return decimal.NewFromInt(40)
}

// DefaultCategoryCostTable returns 2024 base premiums and relevance floors.
func DefaultCategoryCostTable() CategoryCostTable {
	cost := func(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }
	return CategoryCostTable{
		Year: 2024,
		BaseCosts: map[Category]decimal.Decimal{
			CategoryDental:            cost(42),
			CategoryVision:            cost(18),
			CategoryAccident:          cost(28),
			CategoryCriticalIllness:   cost(55),
			CategoryHospitalIndemnity: cost(38),
			CategoryDisability:        cost(85),
			CategoryLongTermCare:      cost(145),
			CategoryLife:              cost(48),
		},
		RelevanceFloor: map[Category]decimal.Decimal{
			CategoryDental:            decimal.NewFromInt(40),
			CategoryVision:            decimal.NewFromInt(40),
			CategoryAccident:          decimal.NewFromInt(40),
			CategoryCriticalIllness:   decimal.NewFromInt(35),
			CategoryHospitalIndemnity: decimal.NewFromInt(35),
			CategoryDisability:        decimal.NewFromInt(40),
			CategoryLongTermCare:      decimal.NewFromInt(35),
			CategoryLife:              decimal.NewFromInt(40),
		},
	}
}

// BundleDiscount applies when at least BundleDiscountMinCategories categories
// are recommended together. It is computed once over the whole recommendation
// set and applied uniformly.
var (
	BundleDiscountMinCategories = 3
	BundleDiscountRate          = decimal.NewFromFloat(0.95)
)
