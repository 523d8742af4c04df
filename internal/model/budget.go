package model

// BudgetTable maps each category to its monthly cap in whole currency units.
// An empty table means "no user override"; callers derive caps from salary
// via the default weights instead. Saves always replace the table wholesale.
type BudgetTable map[Category]float64

// Empty reports whether no explicit budgets have been saved.
func (b BudgetTable) Empty() bool {
	return len(b) == 0
}

// Normalize returns a full table covering every category: saved values are
// kept (negative ones coerced to 0), missing categories get 0, and entries
// outside the closed set are dropped.
func (b BudgetTable) Normalize() BudgetTable {
	out := make(BudgetTable, len(Categories))
	for _, c := range Categories {
		v := b[c]
		if v < 0 {
			v = 0
		}
		out[c] = v
	}
	return out
}
