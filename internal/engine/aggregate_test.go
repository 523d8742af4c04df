package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rupee-cli/rupee/internal/calendar"
	"github.com/rupee-cli/rupee/internal/model"
)

func expense(amount float64, category model.Category, date time.Time) model.Expense {
	return model.NewExpense(amount, string(category), date, "")
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.Local)
}

func TestSumInRange(t *testing.T) {
	from := calendar.StartOfMonth(day(2025, 6, 1))
	to := calendar.EndOfMonth(from)

	records := []model.Expense{
		expense(100, model.CategoryFood, day(2025, 6, 1)),
		expense(250, model.CategoryTravel, day(2025, 6, 30)),
		expense(999, model.CategoryFood, day(2025, 5, 31)), // outside
		expense(999, model.CategoryFood, day(2025, 7, 1)),  // outside
	}

	assert.Equal(t, 350.0, SumInRange(records, from, to))
}

func TestSumInRangeEmptySelection(t *testing.T) {
	from := calendar.StartOfMonth(day(2025, 6, 1))
	assert.Equal(t, 0.0, SumInRange(nil, from, calendar.EndOfMonth(from)))
}

func TestSumInRangeIncludesBoundaryInstants(t *testing.T) {
	from := calendar.StartOfMonth(day(2025, 6, 1))
	to := calendar.EndOfMonth(from)

	records := []model.Expense{
		expense(10, model.CategoryBills, from), // first instant of the month
		expense(20, model.CategoryBills, to),   // last instant of the month
	}
	assert.Equal(t, 30.0, SumInRange(records, from, to))
}

func TestSumByCategoryInRange(t *testing.T) {
	from := calendar.StartOfMonth(day(2025, 6, 1))
	to := calendar.EndOfMonth(from)

	records := []model.Expense{
		expense(100, model.CategoryFood, day(2025, 6, 2)),
		expense(40, model.CategoryFood, day(2025, 6, 10)),
		expense(60, model.CategoryFood, day(2025, 6, 25)),
		expense(500, model.CategoryRent, day(2025, 6, 5)),
	}

	byCat := SumByCategoryInRange(records, from, to)

	// Sum of same-category amounts, all other categories present at 0.
	require.Len(t, byCat, len(model.Categories))
	assert.Equal(t, 200.0, byCat[model.CategoryFood])
	assert.Equal(t, 500.0, byCat[model.CategoryRent])
	assert.Equal(t, 0.0, byCat[model.CategoryTravel])
	assert.Equal(t, 0.0, byCat[model.CategoryOthers])
}

func TestSumByCategoryFoldsUnknownLabels(t *testing.T) {
	from := calendar.StartOfMonth(day(2025, 6, 1))
	to := calendar.EndOfMonth(from)

	// Simulates a hand-edited store entry with a label outside the set.
	rogue := model.Expense{ID: "x", Amount: 75, Category: "Misc", Date: day(2025, 6, 3)}

	byCat := SumByCategoryInRange([]model.Expense{rogue}, from, to)
	assert.Equal(t, 75.0, byCat[model.CategoryOthers])
	assert.NotContains(t, byCat, model.Category("Misc"))
}

func TestMonthlySeriesShape(t *testing.T) {
	anchor := day(2025, 9, 15)
	series := MonthlySeries(nil, 6, anchor)

	require.Len(t, series, 6)
	assert.Equal(t, "Apr 25", series[0].Label)
	assert.Equal(t, "Sep 25", series[5].Label)

	for i, m := range series {
		assert.Equal(t, 1, m.Start.Day())
		assert.Equal(t, 0.0, m.Total)
		if i > 0 {
			// Contiguous, non-overlapping: each month starts right
			// after the previous one ends.
			assert.Equal(t, series[i-1].End.Add(time.Nanosecond), m.Start)
		}
	}
}

func TestMonthlySeriesTotals(t *testing.T) {
	anchor := day(2025, 9, 15)
	records := []model.Expense{
		expense(100, model.CategoryFood, day(2025, 9, 1)),
		expense(200, model.CategoryFood, day(2025, 8, 31)),
		expense(300, model.CategoryFood, day(2025, 4, 1)),
		expense(999, model.CategoryFood, day(2025, 3, 31)), // before the window
	}

	series := MonthlySeries(records, 6, anchor)
	require.Len(t, series, 6)
	assert.Equal(t, 300.0, series[0].Total) // Apr
	assert.Equal(t, 200.0, series[4].Total) // Aug
	assert.Equal(t, 100.0, series[5].Total) // Sep
	assert.Equal(t, 0.0, series[1].Total)
}

func TestMonthlySeriesZeroCount(t *testing.T) {
	assert.Nil(t, MonthlySeries(nil, 0, day(2025, 9, 15)))
}

func TestCategoryTrend(t *testing.T) {
	anchor := day(2025, 9, 15)
	records := []model.Expense{
		expense(100, model.CategoryFood, day(2025, 9, 2)),
		expense(50, model.CategoryFood, day(2025, 9, 20)),
		expense(80, model.CategoryTravel, day(2025, 7, 4)),
		expense(999, model.CategoryRent, day(2025, 2, 1)), // before the window
	}

	trend := CategoryTrend(records, 6, anchor)

	require.Len(t, trend, len(model.Categories))
	for _, c := range model.Categories {
		require.Len(t, trend[c], 6, "series length for %s", c)
	}

	assert.Equal(t, 150.0, trend[model.CategoryFood][5])   // Sep
	assert.Equal(t, 80.0, trend[model.CategoryTravel][3])  // Jul
	assert.Equal(t, []float64{0, 0, 0, 0, 0, 0}, trend[model.CategoryRent])
}

func TestCategoryTrendEachRecordBinsOnce(t *testing.T) {
	anchor := day(2025, 9, 15)
	// A record on a month boundary lands in exactly one bin.
	boundary := calendar.StartOfMonth(day(2025, 8, 1))
	records := []model.Expense{expense(70, model.CategoryBills, boundary)}

	trend := CategoryTrend(records, 6, anchor)
	var total float64
	for _, v := range trend[model.CategoryBills] {
		total += v
	}
	assert.Equal(t, 70.0, total)
	assert.Equal(t, 70.0, trend[model.CategoryBills][4]) // Aug
}

func TestTopCategories(t *testing.T) {
	trend := map[model.Category][]float64{}
	for _, c := range model.Categories {
		trend[c] = make([]float64, 3)
	}
	trend[model.CategoryFood] = []float64{100, 100, 100}
	trend[model.CategoryRent] = []float64{500, 0, 0}
	trend[model.CategoryTravel] = []float64{0, 50, 0}

	top := TopCategories(trend, 3)
	require.Len(t, top, 3)
	assert.Equal(t, model.CategoryRent, top[0].Category)
	assert.Equal(t, 500.0, top[0].Total)
	assert.Equal(t, model.CategoryFood, top[1].Category)
	assert.Equal(t, model.CategoryTravel, top[2].Category)
}
