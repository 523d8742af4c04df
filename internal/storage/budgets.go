package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/rupee-cli/rupee/internal/common"
	"github.com/rupee-cli/rupee/internal/model"
)

// GetBudgets returns the saved budget table. An empty table means no user
// override has been saved and callers should derive caps from salary.
func (s *Store) GetBudgets(ctx context.Context) (model.BudgetTable, error) {
	value, ok, err := s.getSetting(ctx, settingBudgets)
	if err != nil {
		return nil, err
	}
	if !ok {
		return model.BudgetTable{}, nil
	}

	var budgets model.BudgetTable
	if err := json.Unmarshal([]byte(value), &budgets); err != nil {
		return nil, fmt.Errorf("%w: budgets: %v", common.ErrStoreCorrupt, err)
	}
	if budgets == nil {
		budgets = model.BudgetTable{}
	}
	return budgets, nil
}

// SetBudgets replaces the saved table wholesale with a normalized full table:
// every category present, missing entries as 0. There is no merge with
// previously saved values or with defaults.
func (s *Store) SetBudgets(ctx context.Context, budgets model.BudgetTable) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	full := budgets.Normalize()
	data, err := json.Marshal(full)
	if err != nil {
		return fmt.Errorf("failed to encode budgets: %w", err)
	}
	if err := s.setSetting(ctx, settingBudgets, string(data)); err != nil {
		return err
	}

	slog.Debug("budgets saved", "categories", len(full))
	return nil
}

// ClearBudgets removes the user override so computed defaults apply again.
func (s *Store) ClearBudgets(ctx context.Context) error {
	return s.setSetting(ctx, settingBudgets, "{}")
}
