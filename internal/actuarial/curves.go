package actuarial

import (
	"github.com/shopspring/decimal"
)

// Each category curve below is defined as three piecewise-linear anchor sets
// (probability score, utilization rate, cost multiplier) plus an age-banded
// reasoning string. Anchors encode the published utilization shape for the
// category; the slopes stay well inside the adjacent-age jump bound.

func dentalCurve(age int) (decimal.Decimal, decimal.Decimal, decimal.Decimal, string) {
	score := interpolate([]anchor{
		{0, 70}, {3, 78}, {8, 80}, {13, 76}, {17, 70}, {25, 62}, {35, 60},
		{45, 64}, {55, 70}, {65, 78}, {75, 84}, {90, 88}, {120, 90},
	}, age)
	utilization := interpolate([]anchor{
		{0, 0.55}, {8, 0.75}, {17, 0.65}, {35, 0.55}, {55, 0.62}, {75, 0.72}, {120, 0.78},
	}, age)
	multiplier := interpolate([]anchor{
		{0, 1.10}, {8, 1.20}, {17, 1.00}, {45, 1.00}, {65, 1.15}, {85, 1.30}, {120, 1.40},
	}, age)

	var reasoning string
	switch {
	case age <= 17:
		reasoning = "Pediatric dental care (sealants, orthodontic evaluation) drives high utilization in childhood."
	case age <= 45:
		reasoning = "Routine cleanings and fillings keep dental utilization steadily high through adulthood."
	case age <= 64:
		reasoning = "Crowns, root canals, and periodontal care become more frequent in midlife."
	default:
		reasoning = "Restorative work, dentures, and implants make dental coverage especially valuable at older ages."
	}
	return score, utilization, multiplier, reasoning
}

func visionCurve(age int) (decimal.Decimal, decimal.Decimal, decimal.Decimal, string) {
	score := interpolate([]anchor{
		{0, 62}, {6, 70}, {12, 72}, {17, 66}, {25, 56}, {38, 58}, {45, 68},
		{55, 74}, {65, 80}, {80, 85}, {120, 88},
	}, age)
	utilization := interpolate([]anchor{
		{0, 0.40}, {10, 0.60}, {25, 0.45}, {45, 0.60}, {65, 0.75}, {120, 0.82},
	}, age)
	multiplier := interpolate([]anchor{
		{0, 1.05}, {12, 1.10}, {30, 1.00}, {55, 1.05}, {75, 1.20}, {120, 1.30},
	}, age)

	var reasoning string
	switch {
	case age <= 17:
		reasoning = "Vision screening and first corrective lenses are common during school years."
	case age <= 44:
		reasoning = "Corrective lens needs are stable but routine exams keep vision utilization moderate."
	case age <= 64:
		reasoning = "Presbyopia onset after the mid-40s sharply raises exam and lens utilization."
	default:
		reasoning = "Cataract, glaucoma, and macular screening make vision care near-universal for seniors."
	}
	return score, utilization, multiplier, reasoning
}

func accidentCurve(age int) (decimal.Decimal, decimal.Decimal, decimal.Decimal, string) {
	score := interpolate([]anchor{
		{0, 58}, {6, 66}, {12, 70}, {18, 74}, {24, 70}, {35, 58}, {50, 48},
		{62, 44}, {72, 50}, {85, 58}, {120, 62},
	}, age)
	utilization := interpolate([]anchor{
		{0, 0.30}, {15, 0.42}, {22, 0.40}, {45, 0.25}, {65, 0.22}, {80, 0.32}, {120, 0.36},
	}, age)
	multiplier := interpolate([]anchor{
		{0, 1.05}, {18, 1.20}, {40, 1.00}, {65, 0.95}, {80, 1.10}, {120, 1.20},
	}, age)

	var reasoning string
	switch {
	case age <= 17:
		reasoning = "Sports and playground injuries make accident coverage most relevant for active children."
	case age <= 30:
		reasoning = "Injury rates peak in the late teens and twenties from sports, driving, and recreation."
	case age <= 64:
		reasoning = "Accident frequency declines through midlife but out-of-pocket injury costs remain meaningful."
	default:
		reasoning = "Fall risk rises again after 70, renewing the case for accident coverage."
	}
	return score, utilization, multiplier, reasoning
}

func criticalIllnessCurve(age int) (decimal.Decimal, decimal.Decimal, decimal.Decimal, string) {
	score := interpolate([]anchor{
		{0, 8}, {18, 12}, {30, 20}, {40, 32}, {50, 48}, {60, 66}, {70, 80},
		{80, 88}, {95, 93}, {120, 96},
	}, age)
	utilization := interpolate([]anchor{
		{0, 0.02}, {30, 0.06}, {45, 0.14}, {60, 0.30}, {75, 0.48}, {120, 0.62},
	}, age)
	multiplier := interpolate([]anchor{
		{0, 0.80}, {30, 0.90}, {45, 1.05}, {60, 1.40}, {75, 1.90}, {120, 2.60},
	}, age)

	var reasoning string
	switch {
	case age <= 39:
		reasoning = "Cancer, heart attack, and stroke incidence is low before 40 but a diagnosis is financially severe."
	case age <= 54:
		reasoning = "Critical illness incidence starts its steep climb after 40."
	case age <= 69:
		reasoning = "Risk accelerates markedly after 50; a lump-sum benefit covers gaps major medical leaves open."
	default:
		reasoning = "Critical illness probability is high at advanced ages across all major diagnosis groups."
	}
	return score, utilization, multiplier, reasoning
}

func hospitalIndemnityCurve(age int) (decimal.Decimal, decimal.Decimal, decimal.Decimal, string) {
	score := interpolate([]anchor{
		{0, 32}, {5, 26}, {18, 24}, {30, 30}, {40, 38}, {55, 52}, {65, 68},
		{78, 80}, {95, 88}, {120, 92},
	}, age)
	utilization := interpolate([]anchor{
		{0, 0.10}, {18, 0.06}, {40, 0.10}, {60, 0.20}, {75, 0.35}, {120, 0.52},
	}, age)
	multiplier := interpolate([]anchor{
		{0, 0.90}, {30, 0.90}, {50, 1.05}, {65, 1.30}, {85, 1.70}, {120, 2.10},
	}, age)

	var reasoning string
	switch {
	case age <= 17:
		reasoning = "Childhood hospitalization is uncommon outside the newborn period."
	case age <= 49:
		reasoning = "Hospital stays are infrequent in early adulthood; indemnity value is mostly maternity and injury."
	case age <= 64:
		reasoning = "Admission rates climb through the 50s, and per-stay out-of-pocket costs grow with them."
	default:
		reasoning = "Seniors face the highest admission rates; fixed per-day benefits offset deductibles and copays."
	}
	return score, utilization, multiplier, reasoning
}

func disabilityCurve(age int) (decimal.Decimal, decimal.Decimal, decimal.Decimal, string) {
	score := interpolate([]anchor{
		{0, 4}, {16, 20}, {18, 40}, {25, 58}, {35, 66}, {45, 70}, {55, 62},
		{62, 44}, {67, 20}, {75, 10}, {120, 5},
	}, age)
	utilization := interpolate([]anchor{
		{0, 0.00}, {18, 0.08}, {35, 0.14}, {50, 0.18}, {62, 0.10}, {70, 0.02}, {120, 0.01},
	}, age)
	multiplier := interpolate([]anchor{
		{0, 0.50}, {18, 0.90}, {35, 1.00}, {50, 1.25}, {60, 1.50}, {67, 1.20}, {120, 1.00},
	}, age)

	var reasoning string
	switch {
	case age <= 17:
		reasoning = "Disability income protection does not apply before working age."
	case age <= 45:
		reasoning = "Income replacement matters most during peak earning years with decades of salary at risk."
	case age <= 64:
		reasoning = "Disability incidence rises with age even as the remaining earnings window shortens."
	default:
		reasoning = "Past normal retirement age there is little earned income left to insure."
	}
	return score, utilization, multiplier, reasoning
}

func longTermCareCurve(age int) (decimal.Decimal, decimal.Decimal, decimal.Decimal, string) {
	score := interpolate([]anchor{
		{0, 2}, {30, 6}, {45, 14}, {55, 30}, {65, 52}, {75, 72}, {85, 86},
		{100, 93}, {120, 97},
	}, age)
	utilization := interpolate([]anchor{
		{0, 0.00}, {45, 0.02}, {60, 0.08}, {70, 0.20}, {80, 0.42}, {95, 0.65}, {120, 0.78},
	}, age)
	multiplier := interpolate([]anchor{
		{0, 0.60}, {40, 0.85}, {55, 1.05}, {65, 1.45}, {75, 2.00}, {90, 2.80}, {120, 3.40},
	}, age)

	var reasoning string
	switch {
	case age <= 44:
		reasoning = "Long-term care need is remote before midlife, though early purchase locks in lower premiums."
	case age <= 59:
		reasoning = "The mid-50s are the classic purchase window: premiums are still insurable and risk is rising."
	case age <= 74:
		reasoning = "Roughly half of people turning 65 will need some form of long-term care."
	default:
		reasoning = "Long-term care need at advanced ages is more likely than not, with multi-year cost exposure."
	}
	return score, utilization, multiplier, reasoning
}

func lifeCurve(age int) (decimal.Decimal, decimal.Decimal, decimal.Decimal, string) {
	score := interpolate([]anchor{
		{0, 10}, {18, 30}, {25, 52}, {32, 70}, {40, 74}, {48, 68}, {55, 58},
		{65, 42}, {75, 28}, {90, 16}, {120, 10},
	}, age)
	utilization := interpolate([]anchor{
		{0, 0.05}, {25, 0.30}, {40, 0.45}, {55, 0.35}, {70, 0.20}, {120, 0.10},
	}, age)
	multiplier := interpolate([]anchor{
		{0, 0.60}, {25, 0.85}, {40, 1.00}, {55, 1.35}, {70, 2.00}, {85, 2.80}, {120, 3.50},
	}, age)

	var reasoning string
	switch {
	case age <= 24:
		reasoning = "Few financial dependents typically rely on income earned before the mid-20s."
	case age <= 50:
		reasoning = "Child-rearing and mortgage years concentrate the income-replacement need life insurance serves."
	case age <= 64:
		reasoning = "Dependents grow self-sufficient and savings accumulate, easing the income-replacement need."
	default:
		reasoning = "Life coverage shifts from income replacement to final-expense and estate purposes."
	}
	return score, utilization, multiplier, reasoning
}
