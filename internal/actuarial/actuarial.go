// Package actuarial maps (age, coverage category) pairs to probability-of-need
// scores, utilization rates, and cost multipliers. Every curve is a pure
// function of an integer age in [0,120]; out-of-range ages are clamped before
// evaluation rather than rejected.
package actuarial

import (
	"fmt"

	"github.com/coverwise/coverwise/internal/domain"
	"github.com/shopspring/decimal"
)

// curveFunc evaluates one category's curve at a clamped age.
type curveFunc func(age int) (score, utilization, multiplier decimal.Decimal, reasoning string)

var curves = map[domain.Category]curveFunc{
	domain.CategoryDental:            dentalCurve,
	domain.CategoryVision:            visionCurve,
	domain.CategoryAccident:          accidentCurve,
	domain.CategoryCriticalIllness:   criticalIllnessCurve,
	domain.CategoryHospitalIndemnity: hospitalIndemnityCurve,
	domain.CategoryDisability:        disabilityCurve,
	domain.CategoryLongTermCare:      longTermCareCurve,
	domain.CategoryLife:              lifeCurve,
}

// Evaluate returns the curve point for a category at an age. The age is
// clamped to [0,120] first; an unknown category is the only error path.
func Evaluate(age int, category domain.Category) (domain.CurvePoint, error) {
	curve, ok := curves[category]
	if !ok {
		return domain.CurvePoint{}, fmt.Errorf("unknown coverage category: %q", category)
	}

	age = domain.ClampAge(age)
	score, utilization, multiplier, reasoning := curve(age)

	return domain.CurvePoint{
		ProbabilityScore: score,
		RiskLevel:        domain.RiskLevelFor(score),
		UtilizationRate:  utilization,
		CostMultiplier:   multiplier,
		Reasoning:        reasoning,
	}, nil
}

// anchor is one (age, value) control point of a piecewise-linear curve.
type anchor struct {
	age   int
	value float64
}

// interpolate evaluates a piecewise-linear curve defined by ordered anchors.
// Ages before the first anchor take its value; ages past the last anchor take
// the last value. Anchors are spaced so no single-year step moves a score by
// anywhere near the 30-point jump bound.
func interpolate(anchors []anchor, age int) decimal.Decimal {
	if age <= anchors[0].age {
		return decimal.NewFromFloat(anchors[0].value)
	}
	last := anchors[len(anchors)-1]
	if age >= last.age {
		return decimal.NewFromFloat(last.value)
	}
	for i := 1; i < len(anchors); i++ {
		lo, hi := anchors[i-1], anchors[i]
		if age > hi.age {
			continue
		}
		span := float64(hi.age - lo.age)
		frac := float64(age-lo.age) / span
		return decimal.NewFromFloat(lo.value + (hi.value-lo.value)*frac)
	}
	return decimal.NewFromFloat(last.value)
}
