package main

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/viper"

	"github.com/rupee-cli/rupee/internal/common"
	"github.com/rupee-cli/rupee/internal/config"
	"github.com/rupee-cli/rupee/internal/model"
	"github.com/rupee-cli/rupee/internal/storage"
)

// expenseStore is the read-side of storage the warning printer needs.
type expenseStore interface {
	GetSalary(ctx context.Context) (float64, error)
	GetExpenses(ctx context.Context) ([]model.Expense, error)
	GetBudgets(ctx context.Context) (model.BudgetTable, error)
}

// initStore opens the database named by config and brings the schema current.
func initStore(ctx context.Context) (*storage.Store, error) {
	dbPath := viper.GetString("storage.path")
	if dbPath == "" {
		dbPath = config.DefaultDBPath
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewStore(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// salaryThreshold returns the configured overall-warning threshold.
func salaryThreshold() float64 {
	return viper.GetFloat64("alerts.salary_threshold")
}

// sortedNewestFirst returns a copy of expenses ordered by date descending,
// the order every listing (and positional index) uses.
func sortedNewestFirst(expenses []model.Expense) []model.Expense {
	out := make([]model.Expense, len(expenses))
	copy(out, expenses)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// resolveExpenseID maps a 1-based position in the newest-first listing to the
// id of the expense at that position.
func resolveExpenseID(expenses []model.Expense, index int) (string, error) {
	ordered := sortedNewestFirst(expenses)
	if index < 1 || index > len(ordered) {
		return "", fmt.Errorf("%w: index %d, have %d expenses", common.ErrIndexOutOfRange, index, len(ordered))
	}
	return ordered[index-1].ID, nil
}

// parseDate accepts the date layouts the commands take on flags.
func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q (expected YYYY-MM-DD)", common.ErrInvalidDate, s)
}
