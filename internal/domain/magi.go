package domain

import (
	"github.com/shopspring/decimal"
)

// SubsidyTier classifies a household's position on the subsidy schedule by
// FPL percentage.
type SubsidyTier string

const (
	TierMedicaid   SubsidyTier = "medicaid"
	TierSubsidy    SubsidyTier = "subsidy"
	TierCliff      SubsidyTier = "cliff"
	TierAboveCliff SubsidyTier = "above_cliff"
)

// The statutory subsidy cliff sits at 400% FPL; enhanced-subsidy tapering
// pushes the effective loss of benefit out to 450% FPL. Both lines are used
// by different calculations and are kept as separate named constants on
// purpose.
var (
	StatutoryCliffFPLPercent = decimal.NewFromInt(400)
	EffectiveCliffFPLPercent = decimal.NewFromInt(450)
)

// Breakpoint tabulates subsidy figures at one reference FPL percentage.
type Breakpoint struct {
	FPLPercent          decimal.Decimal `json:"fplPercent"`
	MAGI                decimal.Decimal `json:"magi"`
	ContributionPercent decimal.Decimal `json:"contributionPercent"`
	MonthlySubsidy      decimal.Decimal `json:"monthlySubsidy"`
	AnnualSubsidy       decimal.Decimal `json:"annualSubsidy"`
}

// OptimalMAGI records the income target selected by the bounded breakpoint
// search, together with the trade-off figures behind the choice.
type OptimalMAGI struct {
	TargetMAGI       decimal.Decimal `json:"targetMAGI"`
	TargetFPLPercent decimal.Decimal `json:"targetFPLPercent"`
	MonthlySubsidy   decimal.Decimal `json:"monthlySubsidy"`
	AnnualSubsidy    decimal.Decimal `json:"annualSubsidy"`
	IncomeReduction  decimal.Decimal `json:"incomeReduction"`
	SubsidyGain      decimal.Decimal `json:"subsidyGain"`
	NetBenefit       decimal.Decimal `json:"netBenefit"`
}

// CliffRisk captures how close the household sits to the subsidy cliff.
type CliffRisk struct {
	NearCliff            bool            `json:"nearCliff"`
	DistanceToCliff      decimal.Decimal `json:"distanceToCliff"`      // dollars of MAGI headroom to the effective cliff
	StatutoryLineSubsidy decimal.Decimal `json:"statutoryLineSubsidy"` // monthly subsidy just below 400% FPL
	SubsidyDeltaAtLine   decimal.Decimal `json:"subsidyDeltaAtLine"`   // monthly subsidy lost crossing 400% FPL
}

// Strategy is one MAGI-reduction lever. Inapplicability is a modeled data
// outcome, not an error: Applicable=false plus a reason string.
type Strategy struct {
	Name                 string          `json:"name"`
	Description          string          `json:"description"`
	MaxReduction         decimal.Decimal `json:"maxReduction"`
	RecommendedReduction decimal.Decimal `json:"recommendedReduction"`
	Applicable           bool            `json:"applicable"`
	InapplicableReason   string          `json:"inapplicableReason,omitempty"`
	Priority             int             `json:"priority"`
}

// MAGIAnalysis is the full output of one subsidy-optimization run.
type MAGIAnalysis struct {
	Tier                SubsidyTier     `json:"tier"`
	FPLAmount           decimal.Decimal `json:"fplAmount"`
	FPLPercent          decimal.Decimal `json:"fplPercent"`
	ContributionPercent decimal.Decimal `json:"contributionPercent"`
	MonthlySubsidy      decimal.Decimal `json:"monthlySubsidy"`
	AnnualSubsidy       decimal.Decimal `json:"annualSubsidy"`
	Breakpoints         []Breakpoint    `json:"breakpoints"`
	OptimalTarget       *OptimalMAGI    `json:"optimalTarget,omitempty"`
	Strategies          []Strategy      `json:"strategies"`
	CliffRisk           CliffRisk       `json:"cliffRisk"`
	Warnings            []string        `json:"warnings"`
	Recommendations     []string        `json:"recommendations"`
}
