package model

import "strings"

// Category is one of the fixed set of expense categories.
type Category string

// The closed category set. Every expense belongs to exactly one of these.
const (
	CategoryFood          Category = "Food"
	CategoryRent          Category = "Rent"
	CategoryTravel        Category = "Travel"
	CategoryShopping      Category = "Shopping"
	CategoryEntertainment Category = "Entertainment"
	CategoryHealth        Category = "Health"
	CategoryBills         Category = "Bills"
	CategoryEducation     Category = "Education"
	CategoryInvestments   Category = "Investments"
	CategoryOthers        Category = "Others"
)

// Categories lists every category in display and evaluation order.
var Categories = []Category{
	CategoryFood,
	CategoryRent,
	CategoryTravel,
	CategoryShopping,
	CategoryEntertainment,
	CategoryHealth,
	CategoryBills,
	CategoryEducation,
	CategoryInvestments,
	CategoryOthers,
}

// DefaultBudgetWeights maps each category to the fraction of salary used as
// its monthly cap when no explicit budget table has been saved.
var DefaultBudgetWeights = map[Category]float64{
	CategoryFood:          0.15,
	CategoryRent:          0.30,
	CategoryTravel:        0.08,
	CategoryShopping:      0.08,
	CategoryEntertainment: 0.06,
	CategoryHealth:        0.07,
	CategoryBills:         0.10,
	CategoryEducation:     0.06,
	CategoryInvestments:   0.10,
	CategoryOthers:        0.04,
}

// ParseCategory matches a label against the category set, ignoring case and
// surrounding whitespace. Unrecognized labels fall back to Others.
func ParseCategory(label string) Category {
	label = strings.TrimSpace(label)
	for _, c := range Categories {
		if strings.EqualFold(string(c), label) {
			return c
		}
	}
	return CategoryOthers
}

// Normalize folds a possibly hand-edited category value back into the closed set.
func (c Category) Normalize() Category {
	return ParseCategory(string(c))
}
