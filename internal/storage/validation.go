package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rupee-cli/rupee/internal/model"
)

// Validation errors.
var (
	ErrNilContext     = errors.New("context cannot be nil")
	ErrEmptyString    = errors.New("string parameter cannot be empty")
	ErrInvalidExpense = errors.New("invalid expense")
	ErrNegativeAmount = errors.New("amount cannot be negative")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateExpense validates a single expense record before it is persisted.
func validateExpense(e *model.Expense) error {
	if e == nil {
		return fmt.Errorf("%w: nil record", ErrInvalidExpense)
	}
	if e.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidExpense)
	}
	if e.Amount < 0 {
		return fmt.Errorf("%w: %f", ErrNegativeAmount, e.Amount)
	}
	if e.Date.IsZero() {
		return fmt.Errorf("%w: missing date", ErrInvalidExpense)
	}
	return nil
}
