package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/rupee-cli/rupee/internal/common"
)

// The three persisted entries: a textual decimal, a JSON array, and a JSON
// object, each written wholesale.
const (
	settingSalary   = "salary"
	settingExpenses = "expenses"
	settingBudgets  = "budgets"
)

// getSetting reads one settings entry. The second return is false when the
// key has never been written.
func (s *Store) getSetting(ctx context.Context, key string) (string, bool, error) {
	if err := validateContext(ctx); err != nil {
		return "", false, err
	}

	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read setting %s: %w", key, err)
	}
	return value, true, nil
}

// setSetting overwrites one settings entry wholesale.
func (s *Store) setSetting(ctx context.Context, key, value string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO settings (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value)
	if err != nil {
		return fmt.Errorf("failed to write setting %s: %w", key, err)
	}
	return nil
}

// GetSalary returns the saved salary, 0 when unset.
func (s *Store) GetSalary(ctx context.Context) (float64, error) {
	value, ok, err := s.getSetting(ctx, settingSalary)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}

	salary, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: salary %q: %v", common.ErrStoreCorrupt, value, err)
	}
	return salary, nil
}

// SetSalary overwrites the stored salary. Negative values are rejected; the
// CLI validates before calling, this is the last line.
func (s *Store) SetSalary(ctx context.Context, salary float64) error {
	if salary < 0 {
		return fmt.Errorf("%w: salary %f", common.ErrInvalidAmount, salary)
	}
	return s.setSetting(ctx, settingSalary, strconv.FormatFloat(salary, 'f', -1, 64))
}
