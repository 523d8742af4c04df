// Package model defines the core data types for the budgeting engine.
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Expense is a single discretionary spend entry. Records are immutable once
// created; the only mutation is deletion by id.
type Expense struct {
	Date     time.Time `json:"date"`
	ID       string    `json:"id"`
	Category Category  `json:"category"`
	Note     string    `json:"note"`
	Amount   float64   `json:"amount"`
}

// NewExpense builds an expense with a generated id and normalized fields.
// Negative amounts are coerced to 0 and unknown categories to Others; a zero
// date defaults to the current time.
func NewExpense(amount float64, category string, date time.Time, note string) Expense {
	if amount < 0 {
		amount = 0
	}
	if date.IsZero() {
		date = time.Now()
	}
	return Expense{
		ID:       uuid.NewString(),
		Amount:   amount,
		Category: ParseCategory(category),
		Date:     date,
		Note:     strings.TrimSpace(note),
	}
}
