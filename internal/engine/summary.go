package engine

import (
	"time"

	"github.com/rupee-cli/rupee/internal/calendar"
	"github.com/rupee-cli/rupee/internal/model"
)

// PeriodSummary captures the headline numbers shown on the summary command
// and the dashboard.
type PeriodSummary struct {
	Day          float64 // spend today
	Week         float64 // spend this Monday-start week
	Month        float64 // spend this calendar month
	Salary       float64
	Savings      float64 // max(0, salary - month spend)
	PercentSpent float64 // month spend as % of salary, capped at 100 for display
}

// Summarize computes day/week/month totals and savings as of now.
func Summarize(records []model.Expense, salary float64, now time.Time) PeriodSummary {
	s := PeriodSummary{
		Day:    SumInRange(records, calendar.StartOfDay(now), calendar.EndOfDay(now)),
		Week:   SumInRange(records, calendar.StartOfWeek(now), calendar.EndOfWeek(now)),
		Month:  SumInRange(records, calendar.StartOfMonth(now), calendar.EndOfMonth(now)),
		Salary: salary,
	}
	if savings := salary - s.Month; savings > 0 {
		s.Savings = savings
	}
	if salary > 0 {
		pct := s.Month / salary * 100
		if pct > 100 {
			pct = 100
		}
		s.PercentSpent = pct
	}
	return s
}

// SplitPortion is one slice of the quick salary overview.
type SplitPortion struct {
	Name     string
	Fraction float64
	Amount   float64
}

// SalarySplit returns the fixed Essentials/Lifestyle/Savings 50/30/20
// overview split of a salary.
func SalarySplit(salary float64) []SplitPortion {
	if salary < 0 {
		salary = 0
	}
	return []SplitPortion{
		{Name: "Essentials", Fraction: 0.50, Amount: salary * 0.50},
		{Name: "Lifestyle", Fraction: 0.30, Amount: salary * 0.30},
		{Name: "Savings", Fraction: 0.20, Amount: salary * 0.20},
	}
}
