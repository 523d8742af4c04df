package engine

import (
	"math"

	"github.com/rupee-cli/rupee/internal/model"
)

// EffectiveBudgets resolves the caps used for overspend checks. A non-empty
// saved table wins wholesale, with no merging against defaults; otherwise
// each category's cap is its default weight of salary, rounded half-up to the
// nearest whole currency unit. A salary of 0 (or less) yields all-zero caps.
func EffectiveBudgets(salary float64, saved model.BudgetTable) model.BudgetTable {
	if !saved.Empty() {
		return saved
	}
	if salary < 0 {
		salary = 0
	}
	budgets := make(model.BudgetTable, len(model.Categories))
	for _, c := range model.Categories {
		budgets[c] = roundHalfUp(model.DefaultBudgetWeights[c] * salary)
	}
	return budgets
}

// roundHalfUp rounds to the nearest whole currency unit with halves going up.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
