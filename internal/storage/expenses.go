package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/rupee-cli/rupee/internal/common"
	"github.com/rupee-cli/rupee/internal/model"
)

// GetExpenses returns the full expense sequence in stored (append) order.
// A never-written entry decodes as an empty sequence.
func (s *Store) GetExpenses(ctx context.Context) ([]model.Expense, error) {
	value, ok, err := s.getSetting(ctx, settingExpenses)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []model.Expense{}, nil
	}

	var expenses []model.Expense
	if err := json.Unmarshal([]byte(value), &expenses); err != nil {
		return nil, fmt.Errorf("%w: expenses: %v", common.ErrStoreCorrupt, err)
	}
	if expenses == nil {
		expenses = []model.Expense{}
	}
	return expenses, nil
}

// saveExpenses writes the whole sequence back.
func (s *Store) saveExpenses(ctx context.Context, expenses []model.Expense) error {
	data, err := json.Marshal(expenses)
	if err != nil {
		return fmt.Errorf("failed to encode expenses: %w", err)
	}
	return s.setSetting(ctx, settingExpenses, string(data))
}

// AddExpense appends one record to the sequence.
func (s *Store) AddExpense(ctx context.Context, e model.Expense) error {
	if err := validateExpense(&e); err != nil {
		return err
	}

	expenses, err := s.GetExpenses(ctx)
	if err != nil {
		return err
	}
	expenses = append(expenses, e)
	if err := s.saveExpenses(ctx, expenses); err != nil {
		return err
	}

	slog.Debug("expense added", "id", e.ID, "category", e.Category, "amount", e.Amount)
	return nil
}

// AddExpenses appends a batch of records in one write. Used by bulk import.
func (s *Store) AddExpenses(ctx context.Context, batch []model.Expense) error {
	if len(batch) == 0 {
		return nil
	}
	for i := range batch {
		if err := validateExpense(&batch[i]); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}

	expenses, err := s.GetExpenses(ctx)
	if err != nil {
		return err
	}
	expenses = append(expenses, batch...)
	if err := s.saveExpenses(ctx, expenses); err != nil {
		return err
	}

	slog.Debug("expenses added", "count", len(batch))
	return nil
}

// DeleteExpense removes the record with the given id, preserving the order
// of the rest. Returns common.ErrNotFound when no record has that id.
func (s *Store) DeleteExpense(ctx context.Context, id string) error {
	if err := validateString(id, "id"); err != nil {
		return err
	}

	expenses, err := s.GetExpenses(ctx)
	if err != nil {
		return err
	}

	idx := -1
	for i, e := range expenses {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: expense %s", common.ErrNotFound, id)
	}

	expenses = append(expenses[:idx], expenses[idx+1:]...)
	if err := s.saveExpenses(ctx, expenses); err != nil {
		return err
	}

	slog.Debug("expense deleted", "id", id)
	return nil
}
