package domain

import (
	"github.com/shopspring/decimal"
)

// HSACoverageType selects which HSA contribution limit applies.
type HSACoverageType string

const (
	HSACoverageIndividual HSACoverageType = "individual"
	HSACoverageFamily     HSACoverageType = "family"
)

// HSALimits breaks down the contribution room for one tax year.
type HSALimits struct {
	BaseLimit               decimal.Decimal `json:"baseLimit"`
	CatchUpAmount           decimal.Decimal `json:"catchUpAmount"`
	CatchUpEligible         bool            `json:"catchUpEligible"`
	TotalLimit              decimal.Decimal `json:"totalLimit"`
	EmployerContribution    decimal.Decimal `json:"employerContribution"`
	MaxEmployeeContribution decimal.Decimal `json:"maxEmployeeContribution"`
}

// HSATaxSavings breaks tax savings into the three channels an HSA
// contribution avoids. Components are rounded independently so the total
// matches the displayed breakdown.
type HSATaxSavings struct {
	Federal decimal.Decimal `json:"federal"`
	State   decimal.Decimal `json:"state"`
	FICA    decimal.Decimal `json:"fica"`
	Total   decimal.Decimal `json:"total"`
}

// HSAProjectionYear is one row of the balance projection. Each row derives
// purely from the prior row plus that year's assumptions.
type HSAProjectionYear struct {
	Year             int             `json:"year"`
	BeginningBalance decimal.Decimal `json:"beginningBalance"`
	Contribution     decimal.Decimal `json:"contribution"`
	InvestmentGrowth decimal.Decimal `json:"investmentGrowth"`
	ExpensesPaid     decimal.Decimal `json:"expensesPaid"`
	EndingBalance    decimal.Decimal `json:"endingBalance"`
}

// HSAAnalysis is the full output of one HSA optimization run.
type HSAAnalysis struct {
	Eligible                bool                `json:"eligible"`
	Limits                  HSALimits           `json:"limits"`
	TaxSavings              HSATaxSavings       `json:"taxSavings"`
	RecommendedContribution decimal.Decimal     `json:"recommendedContribution"`
	Projection              []HSAProjectionYear `json:"projection"`
	Recommendations         []string            `json:"recommendations"`
	FSAAdvantages           []string            `json:"fsaAdvantages"`
	FSADisadvantages        []string            `json:"fsaDisadvantages"`
}
