package output

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// TableFormatter renders a human-readable console report.
type TableFormatter struct{}

// Name returns the registry name.
func (tf *TableFormatter) Name() string { return "table" }

// Format renders all present report sections.
func (tf *TableFormatter) Format(report *Report) (string, error) {
	var sb strings.Builder

	if report.Recommendations != nil {
		tf.writeRecommendations(&sb, report)
	}
	if report.MAGI != nil {
		tf.writeMAGI(&sb, report)
	}
	if report.HSA != nil {
		tf.writeHSA(&sb, report)
	}
	return sb.String(), nil
}

func (tf *TableFormatter) writeRecommendations(sb *strings.Builder, report *Report) {
	set := report.Recommendations
	sb.WriteString(sectionHeader("SUPPLEMENTAL COVERAGE RECOMMENDATIONS"))

	w := tabwriter.NewWriter(sb, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tPRIORITY\tSCORE\tPER PERSON\tHOUSEHOLD\tMEMBERS\tAGE GROUP")
	for _, rec := range set.Recommendations {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
			rec.Category.DisplayName(),
			rec.Priority,
			rec.ProbabilityScore.StringFixed(1),
			FormatCurrency(rec.AdjustedCostPerMonth),
			FormatCurrency(rec.HouseholdCostPerMonth),
			rec.ApplicableMembers,
			rec.AgeGroup)
	}
	w.Flush()

	sb.WriteString("\n")
	fmt.Fprintf(sb, "High priority total:    %s/mo\n", FormatCurrency(set.TotalMonthlyHighPriority))
	fmt.Fprintf(sb, "All recommended total:  %s/mo\n", FormatCurrency(set.TotalMonthlyAllRecommended))
	if set.BundleDiscountApplied {
		sb.WriteString("Bundle discount applied (3+ categories)\n")
	}
	sb.WriteString("\n")

	for _, rec := range set.Recommendations {
		fmt.Fprintf(sb, "%s:\n", rec.Category.DisplayName())
		for _, reason := range rec.Reasons {
			fmt.Fprintf(sb, "  - %s\n", reason)
		}
	}
	sb.WriteString("\n")
}

func (tf *TableFormatter) writeMAGI(sb *strings.Builder, report *Report) {
	analysis := report.MAGI
	sb.WriteString(sectionHeader("MAGI / SUBSIDY ANALYSIS"))

	fmt.Fprintf(sb, "Tier:                 %s\n", analysis.Tier)
	fmt.Fprintf(sb, "FPL:                  %s (%s%% of FPL)\n", FormatCurrency(analysis.FPLAmount), analysis.FPLPercent.StringFixed(1))
	fmt.Fprintf(sb, "Expected contribution: %s of income\n", FormatPercent(analysis.ContributionPercent))
	fmt.Fprintf(sb, "Monthly subsidy:      %s\n", FormatCurrency(analysis.MonthlySubsidy))
	fmt.Fprintf(sb, "Annual subsidy:       %s\n", FormatCurrency(analysis.AnnualSubsidy))
	sb.WriteString("\n")

	w := tabwriter.NewWriter(sb, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FPL %\tMAGI\tCONTRIBUTION\tMONTHLY SUBSIDY\tANNUAL SUBSIDY")
	for _, bp := range analysis.Breakpoints {
		fmt.Fprintf(w, "%s%%\t%s\t%s\t%s\t%s\n",
			bp.FPLPercent.StringFixed(0),
			FormatCurrency(bp.MAGI),
			FormatPercent(bp.ContributionPercent),
			FormatCurrency(bp.MonthlySubsidy),
			FormatCurrency(bp.AnnualSubsidy))
	}
	w.Flush()
	sb.WriteString("\n")

	if analysis.OptimalTarget != nil {
		target := analysis.OptimalTarget
		fmt.Fprintf(sb, "Optimal MAGI target: %s (%s%% FPL), net benefit %s\n",
			FormatCurrency(target.TargetMAGI),
			target.TargetFPLPercent.StringFixed(0),
			FormatCurrency(target.NetBenefit))
	}

	sb.WriteString("\nReduction strategies:\n")
	w = tabwriter.NewWriter(sb, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STRATEGY\tMAX\tRECOMMENDED\tAPPLICABLE")
	for _, s := range analysis.Strategies {
		status := "yes"
		if !s.Applicable {
			status = "no: " + s.InapplicableReason
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			s.Name,
			FormatCurrency(s.MaxReduction),
			FormatCurrency(s.RecommendedReduction),
			status)
	}
	w.Flush()

	tf.writeNotes(sb, analysis.Warnings, analysis.Recommendations)
}

func (tf *TableFormatter) writeHSA(sb *strings.Builder, report *Report) {
	analysis := report.HSA
	sb.WriteString(sectionHeader("HSA OPTIMIZATION"))

	if !analysis.Eligible {
		sb.WriteString("Not HSA-eligible (no HDHP enrollment)\n")
		tf.writeNotes(sb, nil, analysis.Recommendations)
		return
	}

	fmt.Fprintf(sb, "Contribution limit:    %s", FormatCurrency(analysis.Limits.TotalLimit))
	if analysis.Limits.CatchUpEligible {
		fmt.Fprintf(sb, " (includes %s catch-up)", FormatCurrency(analysis.Limits.CatchUpAmount))
	}
	sb.WriteString("\n")
	fmt.Fprintf(sb, "Employer contributes:  %s\n", FormatCurrency(analysis.Limits.EmployerContribution))
	fmt.Fprintf(sb, "Max employee:          %s\n", FormatCurrency(analysis.Limits.MaxEmployeeContribution))
	fmt.Fprintf(sb, "Recommended:           %s\n", FormatCurrency(analysis.RecommendedContribution))
	fmt.Fprintf(sb, "Tax savings:           %s (federal %s, state %s, FICA %s)\n",
		FormatCurrency(analysis.TaxSavings.Total),
		FormatCurrency(analysis.TaxSavings.Federal),
		FormatCurrency(analysis.TaxSavings.State),
		FormatCurrency(analysis.TaxSavings.FICA))
	sb.WriteString("\n")

	w := tabwriter.NewWriter(sb, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "YEAR\tBEGINNING\tCONTRIBUTION\tGROWTH\tEXPENSES\tENDING")
	for _, year := range analysis.Projection {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			year.Year,
			FormatCurrency(year.BeginningBalance),
			FormatCurrency(year.Contribution),
			FormatCurrency(year.InvestmentGrowth),
			FormatCurrency(year.ExpensesPaid),
			FormatCurrency(year.EndingBalance))
	}
	w.Flush()

	if len(analysis.FSAAdvantages) > 0 || len(analysis.FSADisadvantages) > 0 {
		sb.WriteString("\nHSA vs FSA:\n")
		for _, adv := range analysis.FSAAdvantages {
			fmt.Fprintf(sb, "  + %s\n", adv)
		}
		for _, dis := range analysis.FSADisadvantages {
			fmt.Fprintf(sb, "  - %s\n", dis)
		}
	}

	tf.writeNotes(sb, nil, analysis.Recommendations)
}

func (tf *TableFormatter) writeNotes(sb *strings.Builder, warnings, recommendations []string) {
	if len(warnings) > 0 {
		sb.WriteString("\n")
		for _, warning := range warnings {
			fmt.Fprintf(sb, "%s\n", warning)
		}
	}
	if len(recommendations) > 0 {
		sb.WriteString("\n")
		for _, rec := range recommendations {
			fmt.Fprintf(sb, "%s\n", rec)
		}
	}
	sb.WriteString("\n")
}
