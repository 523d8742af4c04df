package engine

import (
	"time"

	"github.com/rupee-cli/rupee/internal/calendar"
	"github.com/rupee-cli/rupee/internal/model"
)

// DefaultSalaryThreshold is the fraction of salary whose monthly spend
// triggers the overall warning.
const DefaultSalaryThreshold = 0.8

// EvaluateAlerts compares current-month spend against salary and the
// effective budget caps, as of now. The overall warning comes first (emitted
// when salary > 0 and spend/salary reaches threshold, inclusive), followed by
// category warnings in enumeration order. A category warns only on strict
// exceedance of a strictly positive cap: a cap of 0 means "no budget set"
// and never warns.
func EvaluateAlerts(salary float64, records []model.Expense, budgets model.BudgetTable, threshold float64, now time.Time) []model.Warning {
	if threshold <= 0 {
		threshold = DefaultSalaryThreshold
	}

	from := calendar.StartOfMonth(now)
	to := calendar.EndOfMonth(now)

	var warnings []model.Warning

	total := SumInRange(records, from, to)
	if salary > 0 && total/salary >= threshold {
		warnings = append(warnings, model.Warning{
			Kind:  model.WarningOverall,
			Spent: total,
			Limit: salary * threshold,
		})
	}

	byCat := SumByCategoryInRange(records, from, to)
	for _, c := range model.Categories {
		spent := byCat[c]
		limit := budgets[c]
		if spent > 0 && limit > 0 && spent > limit {
			warnings = append(warnings, model.Warning{
				Kind:     model.WarningCategory,
				Category: c,
				Spent:    spent,
				Limit:    limit,
			})
		}
	}
	return warnings
}
