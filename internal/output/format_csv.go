package output

import (
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/coverwise/coverwise/internal/domain"
)

// CSVFormatter formats report sections as CSV. Each present section gets its
// own header row and record block, separated by a blank line.
type CSVFormatter struct{}

// Name returns the registry name.
func (cf *CSVFormatter) Name() string { return "csv" }

// Format generates CSV output for the report.
func (cf *CSVFormatter) Format(report *Report) (string, error) {
	var sb strings.Builder

	if report.Recommendations != nil {
		if err := cf.writeRecommendations(&sb, report.Recommendations); err != nil {
			return "", err
		}
	}
	if report.MAGI != nil {
		if err := cf.writeBreakpoints(&sb, report.MAGI); err != nil {
			return "", err
		}
	}
	if report.HSA != nil {
		if err := cf.writeProjection(&sb, report.HSA); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

func (cf *CSVFormatter) writeRecommendations(sb *strings.Builder, set *domain.RecommendationSet) error {
	writer := csv.NewWriter(sb)

	header := []string{
		"Category",
		"Priority",
		"Probability Score",
		"Cost Per Person",
		"Household Cost",
		"Applicable Members",
		"Age Group",
	}
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, rec := range set.Recommendations {
		row := []string{
			string(rec.Category),
			string(rec.Priority),
			rec.ProbabilityScore.StringFixed(1),
			rec.AdjustedCostPerMonth.StringFixed(2),
			rec.HouseholdCostPerMonth.StringFixed(2),
			strconv.Itoa(rec.ApplicableMembers),
			string(rec.AgeGroup),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}
	sb.WriteString("\n")
	return nil
}

func (cf *CSVFormatter) writeBreakpoints(sb *strings.Builder, analysis *domain.MAGIAnalysis) error {
	writer := csv.NewWriter(sb)

	header := []string{
		"FPL Percent",
		"MAGI",
		"Contribution Percent",
		"Monthly Subsidy",
		"Annual Subsidy",
	}
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, bp := range analysis.Breakpoints {
		row := []string{
			bp.FPLPercent.StringFixed(0),
			bp.MAGI.StringFixed(2),
			bp.ContributionPercent.StringFixed(4),
			bp.MonthlySubsidy.StringFixed(2),
			bp.AnnualSubsidy.StringFixed(2),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}
	sb.WriteString("\n")
	return nil
}

func (cf *CSVFormatter) writeProjection(sb *strings.Builder, analysis *domain.HSAAnalysis) error {
	writer := csv.NewWriter(sb)

	header := []string{
		"Year",
		"Beginning Balance",
		"Contribution",
		"Investment Growth",
		"Expenses Paid",
		"Ending Balance",
	}
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, year := range analysis.Projection {
		row := []string{
			strconv.Itoa(year.Year),
			year.BeginningBalance.StringFixed(2),
			year.Contribution.StringFixed(2),
			year.InvestmentGrowth.StringFixed(2),
			year.ExpensesPaid.StringFixed(2),
			year.EndingBalance.StringFixed(2),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}
	sb.WriteString("\n")
	return nil
}
