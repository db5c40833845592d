package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Category identifies a supplemental coverage line. The set is closed: every
// category has its own actuarial curve, base cost, and relevance floor, and
// an unknown category is a configuration error, never a silent default.
type Category string

const (
	CategoryDental            Category = "dental"
	CategoryVision            Category = "vision"
	CategoryAccident          Category = "accident"
	CategoryCriticalIllness   Category = "critical_illness"
	CategoryHospitalIndemnity Category = "hospital_indemnity"
	CategoryDisability        Category = "disability"
	CategoryLongTermCare      Category = "long_term_care"
	CategoryLife              Category = "life"
)

// AllCategories returns every coverage category in canonical order.
func AllCategories() []Category {
	return []Category{
		CategoryDental,
		CategoryVision,
		CategoryAccident,
		CategoryCriticalIllness,
		CategoryHospitalIndemnity,
		CategoryDisability,
		CategoryLongTermCare,
		CategoryLife,
	}
}

// ParseCategory converts a string to a Category, failing fast on unknown
// values.
func ParseCategory(s string) (Category, error) {
	for _, c := range AllCategories() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown coverage category: %q", s)
}

// DisplayName returns a human-readable category label.
func (c Category) DisplayName() string {
	switch c {
	case CategoryDental:
		return "Dental"
	case CategoryVision:
		return "Vision"
	case CategoryAccident:
		return "Accident"
	case CategoryCriticalIllness:
		return "Critical Illness"
	case CategoryHospitalIndemnity:
		return "Hospital Indemnity"
	case CategoryDisability:
		return "Disability"
	case CategoryLongTermCare:
		return "Long-Term Care"
	case CategoryLife:
		return "Life"
	default:
		return string(c)
	}
}

// RiskLevel is an ordered classification derived from a probability score.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskVeryHigh RiskLevel = "very_high"
)

// RiskLevelFor maps a probability score in [0,100] to its risk level.
func RiskLevelFor(score decimal.Decimal) RiskLevel {
	switch {
	case score.GreaterThanOrEqual(decimal.NewFromInt(80)):
		return RiskVeryHigh
	case score.GreaterThanOrEqual(decimal.NewFromInt(55)):
		return RiskHigh
	case score.GreaterThanOrEqual(decimal.NewFromInt(30)):
		return RiskMedium
	default:
		return RiskLow
	}
}

// CurvePoint is the output of evaluating an actuarial curve at a single age:
// the probability-of-need score, derived risk level, expected utilization,
// and the cost multiplier applied to the category's base premium.
type CurvePoint struct {
	ProbabilityScore decimal.Decimal `json:"probabilityScore"` // [0,100]
	RiskLevel        RiskLevel       `json:"riskLevel"`
	UtilizationRate  decimal.Decimal `json:"utilizationRate"` // [0,1]
	CostMultiplier   decimal.Decimal `json:"costMultiplier"`  // > 0
	Reasoning        string          `json:"reasoning"`
}
