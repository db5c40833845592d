package output

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coverwise/coverwise/internal/domain"
)

func sampleReport() *Report {
	rec := domain.Recommendation{
		InsuranceID:           "dental-adults",
		Category:              domain.CategoryDental,
		Priority:              domain.PriorityHigh,
		ProbabilityScore:      decimal.NewFromInt(82),
		AdjustedCostPerMonth:  decimal.RequireFromString("46.20"),
		HouseholdCostPerMonth: decimal.RequireFromString("92.40"),
		ApplicableMembers:     2,
		Reasons:               []string{"Routine dental care is a near-certainty for adults"},
		AgeGroup:              domain.AgeGroupAdults,
	}
	set := &domain.RecommendationSet{
		Recommendations:            []domain.Recommendation{rec},
		HighPriority:               []domain.Recommendation{rec},
		TotalMonthlyHighPriority:   decimal.NewFromInt(92),
		TotalMonthlyAllRecommended: decimal.NewFromInt(92),
		HouseholdAgeGroups:         []domain.AgeGroup{domain.AgeGroupAdults},
	}

	magi := &domain.MAGIAnalysis{
		Tier:                domain.TierSubsidy,
		FPLAmount:           decimal.NewFromInt(19720),
		FPLPercent:          decimal.NewFromInt(200),
		ContributionPercent: decimal.RequireFromString("0.02"),
		MonthlySubsidy:      decimal.RequireFromString("834.27"),
		AnnualSubsidy:       decimal.RequireFromString("10011.24"),
		Breakpoints: []domain.Breakpoint{
			{
				FPLPercent:          decimal.NewFromInt(200),
				MAGI:                decimal.NewFromInt(39440),
				ContributionPercent: decimal.RequireFromString("0.02"),
				MonthlySubsidy:      decimal.RequireFromString("834.27"),
				AnnualSubsidy:       decimal.RequireFromString("10011.24"),
			},
		},
		Strategies: []domain.Strategy{
			{
				Name:         "Increase 401(k) contributions",
				MaxReduction: decimal.NewFromInt(23000),
				Applicable:   true,
				Priority:     1,
			},
		},
		Warnings:        []string{},
		Recommendations: []string{"💡 Pre-tax contributions reduce MAGI dollar for dollar"},
	}

	hsa := &domain.HSAAnalysis{
		Eligible: true,
		Limits: domain.HSALimits{
			BaseLimit:               decimal.NewFromInt(4150),
			TotalLimit:              decimal.NewFromInt(4150),
			EmployerContribution:    decimal.NewFromInt(500),
			MaxEmployeeContribution: decimal.NewFromInt(3650),
		},
		TaxSavings: domain.HSATaxSavings{
			Federal: decimal.NewFromInt(803),
			State:   decimal.RequireFromString("112.42"),
			FICA:    decimal.RequireFromString("279.72"),
			Total:   decimal.RequireFromString("1195.14"),
		},
		RecommendedContribution: decimal.NewFromInt(3650),
		Projection: []domain.HSAProjectionYear{
			{
				Year:             1,
				BeginningBalance: decimal.Zero,
				Contribution:     decimal.NewFromInt(4150),
				InvestmentGrowth: decimal.Zero,
				ExpensesPaid:     decimal.NewFromInt(1000),
				EndingBalance:    decimal.NewFromInt(3150),
			},
		},
		Recommendations:  []string{"✓ HDHP enrollment unlocks triple tax-advantaged savings"},
		FSAAdvantages:    []string{"Balance rolls over year to year"},
		FSADisadvantages: []string{"Requires HDHP enrollment"},
	}

	return &Report{Recommendations: set, MAGI: magi, HSA: hsa}
}

func TestGetFormatterByName(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"table", "table"},
		{"console", "table"},
		{"csv", "csv"},
		{"json", "json"},
	}
	for _, tt := range tests {
		f := GetFormatterByName(tt.name)
		require.NotNil(t, f, "formatter %q should exist", tt.name)
		assert.Equal(t, tt.expected, f.Name())
	}
	assert.Nil(t, GetFormatterByName("xml"))
}

func TestTableFormatterIncludesAllSections(t *testing.T) {
	out, err := (&TableFormatter{}).Format(sampleReport())
	require.NoError(t, err)

	assert.Contains(t, out, "SUPPLEMENTAL COVERAGE RECOMMENDATIONS")
	assert.Contains(t, out, "MAGI / SUBSIDY ANALYSIS")
	assert.Contains(t, out, "HSA OPTIMIZATION")
	assert.Contains(t, out, "Dental")
	assert.Contains(t, out, "$92.40")
	assert.Contains(t, out, "Increase 401(k) contributions")
	assert.Contains(t, out, "Balance rolls over year to year")
}

func TestTableFormatterSkipsNilSections(t *testing.T) {
	report := sampleReport()
	report.MAGI = nil
	report.HSA = nil

	out, err := (&TableFormatter{}).Format(report)
	require.NoError(t, err)

	assert.Contains(t, out, "SUPPLEMENTAL COVERAGE RECOMMENDATIONS")
	assert.NotContains(t, out, "MAGI / SUBSIDY ANALYSIS")
	assert.NotContains(t, out, "HSA OPTIMIZATION")
}

func TestTableFormatterIneligibleHSA(t *testing.T) {
	report := &Report{HSA: &domain.HSAAnalysis{
		Eligible:        false,
		Recommendations: []string{"⚠️ Not enrolled in an HDHP"},
	}}

	out, err := (&TableFormatter{}).Format(report)
	require.NoError(t, err)

	assert.Contains(t, out, "Not HSA-eligible")
	assert.Contains(t, out, "Not enrolled in an HDHP")
}

func TestCSVFormatterProducesParsableBlocks(t *testing.T) {
	out, err := (&CSVFormatter{}).Format(sampleReport())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Contains(t, lines[0], "Category,Priority")
	assert.Contains(t, out, "dental,high,82.0,46.20,92.40,2")
	assert.Contains(t, out, "FPL Percent,MAGI")
	assert.Contains(t, out, "Year,Beginning Balance")
}

func TestJSONFormatterRoundTrips(t *testing.T) {
	out, err := (&JSONFormatter{}).Format(sampleReport())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Contains(t, decoded, "recommendations")
	assert.Contains(t, decoded, "magi")
	assert.Contains(t, decoded, "hsa")
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "$42.50", FormatCurrency(decimal.RequireFromString("42.5")))
	assert.Equal(t, "8.5%", FormatPercent(decimal.RequireFromString("0.085")))
}
