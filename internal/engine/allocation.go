package engine

import "github.com/rupee-cli/rupee/internal/model"

// allocationBucket is one named slice of a risk tier's split.
type allocationBucket struct {
	name     string
	fraction float64
}

// riskAllocations holds the static tier tables. Fractions sum to 1.0 per
// tier and bucket order is the declaration order shown to the user.
var riskAllocations = map[model.RiskTier][]allocationBucket{
	model.RiskLow: {
		{name: "Bank FD/RD", fraction: 0.35},
		{name: "Govt Bonds", fraction: 0.35},
		{name: "Gold ETF", fraction: 0.20},
		{name: "Emergency Fund", fraction: 0.10},
	},
	model.RiskModerate: {
		{name: "Index Funds (SIP)", fraction: 0.45},
		{name: "Debt Funds", fraction: 0.25},
		{name: "Gold ETF", fraction: 0.15},
		{name: "Emergency Fund", fraction: 0.15},
	},
	model.RiskHigh: {
		{name: "Stocks/Equity", fraction: 0.55},
		{name: "Aggressive Mutual Funds", fraction: 0.30},
		{name: "Gold/Alt", fraction: 0.10},
		{name: "Cash Buffer", fraction: 0.05},
	},
}

// Investable returns the surplus available to invest this month: salary
// minus month spend, floored at 0.
func Investable(salary, monthSpend float64) float64 {
	if surplus := salary - monthSpend; surplus > 0 {
		return surplus
	}
	return 0
}

// PlanAllocation splits the investable amount across the tier's buckets,
// half-up to whole currency units, preserving bucket order. An unknown tier
// falls back to moderate; investable 0 yields a valid all-zero plan.
func PlanAllocation(investable float64, tier model.RiskTier) []model.Allocation {
	if investable < 0 {
		investable = 0
	}
	buckets, ok := riskAllocations[tier]
	if !ok {
		buckets = riskAllocations[model.RiskModerate]
	}
	plan := make([]model.Allocation, 0, len(buckets))
	for _, b := range buckets {
		plan = append(plan, model.Allocation{
			Bucket:   b.name,
			Fraction: b.fraction,
			Amount:   roundHalfUp(investable * b.fraction),
		})
	}
	return plan
}
