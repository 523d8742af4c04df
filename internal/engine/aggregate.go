// Package engine computes aggregates, budgets, alerts, and allocation plans
// over the in-memory working set. Every function is pure: state comes in as
// arguments and results go out as values, so callers decide when to
// recompute and what to render.
package engine

import (
	"sort"
	"time"

	"github.com/rupee-cli/rupee/internal/calendar"
	"github.com/rupee-cli/rupee/internal/model"
)

// SumInRange totals the amounts of records dated within [from, to].
// An empty selection sums to 0.
func SumInRange(records []model.Expense, from, to time.Time) float64 {
	var total float64
	for _, e := range records {
		if calendar.InRange(e.Date, from, to) {
			total += e.Amount
		}
	}
	return total
}

// SumByCategoryInRange breaks the range total down per category. Every
// category of the closed set is present in the result, 0 when nothing
// matched; labels outside the set are folded into Others.
func SumByCategoryInRange(records []model.Expense, from, to time.Time) map[model.Category]float64 {
	byCat := make(map[model.Category]float64, len(model.Categories))
	for _, c := range model.Categories {
		byCat[c] = 0
	}
	for _, e := range records {
		if !calendar.InRange(e.Date, from, to) {
			continue
		}
		c := e.Category
		if _, ok := byCat[c]; !ok {
			c = model.CategoryOthers
		}
		byCat[c] += e.Amount
	}
	return byCat
}

// MonthTotal is one month's entry in a spend series.
type MonthTotal struct {
	Start time.Time
	End   time.Time
	Label string
	Total float64
}

// MonthlySeries returns spend totals for months consecutive calendar months
// ending at the month containing anchor, oldest first. The month ranges are
// contiguous and non-overlapping: each starts at midnight of the 1st and ends
// at the last instant of the last day.
func MonthlySeries(records []model.Expense, months int, anchor time.Time) []MonthTotal {
	if months <= 0 {
		return nil
	}
	series := make([]MonthTotal, 0, months)
	for i := months - 1; i >= 0; i-- {
		start := calendar.MonthsBack(anchor, i)
		end := calendar.EndOfMonth(start)
		series = append(series, MonthTotal{
			Start: start,
			End:   end,
			Label: calendar.MonthLabel(start),
			Total: SumInRange(records, start, end),
		})
	}
	return series
}

// CategoryTrend bins each record into exactly one month and one category over
// the same window as MonthlySeries. Every category gets a series of length
// months, oldest first; records outside the window are ignored.
func CategoryTrend(records []model.Expense, months int, anchor time.Time) map[model.Category][]float64 {
	trend := make(map[model.Category][]float64, len(model.Categories))
	if months <= 0 {
		return trend
	}
	for _, c := range model.Categories {
		trend[c] = make([]float64, months)
	}

	starts := make([]time.Time, months)
	ends := make([]time.Time, months)
	for i := 0; i < months; i++ {
		starts[i] = calendar.MonthsBack(anchor, months-1-i)
		ends[i] = calendar.EndOfMonth(starts[i])
	}

	for _, e := range records {
		c := e.Category
		if _, ok := trend[c]; !ok {
			c = model.CategoryOthers
		}
		for i := months - 1; i >= 0; i-- {
			if calendar.InRange(e.Date, starts[i], ends[i]) {
				trend[c][i] += e.Amount
				break
			}
		}
	}
	return trend
}

// CategorySeries pairs a category with its per-month totals for ranking.
type CategorySeries struct {
	Category model.Category
	Totals   []float64
	Total    float64
}

// TopCategories ranks a trend by total spend over the window and returns the
// top k series. Ties keep category enumeration order.
func TopCategories(trend map[model.Category][]float64, k int) []CategorySeries {
	ranked := make([]CategorySeries, 0, len(model.Categories))
	for _, c := range model.Categories {
		totals, ok := trend[c]
		if !ok {
			continue
		}
		var sum float64
		for _, v := range totals {
			sum += v
		}
		ranked = append(ranked, CategorySeries{Category: c, Totals: totals, Total: sum})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Total > ranked[j].Total
	})
	if k < len(ranked) {
		ranked = ranked[:k]
	}
	return ranked
}
