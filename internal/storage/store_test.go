package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rupee-cli/rupee/internal/common"
	"github.com/rupee-cli/rupee/internal/model"
)

// Helper function to create a migrated test store.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := NewStore(dbPath)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Migrate(ctx))

	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testExpense(amount float64, category model.Category, d time.Time) model.Expense {
	return model.NewExpense(amount, string(category), d, "test")
}

func TestNewStoreRejectsEmptyPath(t *testing.T) {
	_, err := NewStore("  ")
	assert.ErrorIs(t, err, ErrEmptyString)
}

func TestMigrateIsIdempotent(t *testing.T) {
	store := createTestStore(t)
	assert.NoError(t, store.Migrate(context.Background()))
}

func TestSalaryDefaultsToZero(t *testing.T) {
	store := createTestStore(t)

	salary, err := store.GetSalary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0.0, salary)
}

func TestSalaryRoundtrip(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetSalary(ctx, 75000))
	salary, err := store.GetSalary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 75000.0, salary)

	// Overwritten wholesale on save.
	require.NoError(t, store.SetSalary(ctx, 80000))
	salary, err = store.GetSalary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 80000.0, salary)
}

func TestSetSalaryRejectsNegative(t *testing.T) {
	store := createTestStore(t)
	err := store.SetSalary(context.Background(), -1)
	assert.ErrorIs(t, err, common.ErrInvalidAmount)
}

func TestExpensesDefaultToEmpty(t *testing.T) {
	store := createTestStore(t)

	expenses, err := store.GetExpenses(context.Background())
	require.NoError(t, err)
	assert.Empty(t, expenses)
	assert.NotNil(t, expenses)
}

func TestAddExpensePreservesOrder(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	first := testExpense(100, model.CategoryFood, time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))
	second := testExpense(200, model.CategoryRent, time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC))
	require.NoError(t, store.AddExpense(ctx, first))
	require.NoError(t, store.AddExpense(ctx, second))

	expenses, err := store.GetExpenses(ctx)
	require.NoError(t, err)
	require.Len(t, expenses, 2)
	assert.Equal(t, first.ID, expenses[0].ID)
	assert.Equal(t, second.ID, expenses[1].ID)
	assert.Equal(t, model.CategoryFood, expenses[0].Category)
	assert.True(t, first.Date.Equal(expenses[0].Date))
}

func TestAddExpenseRejectsInvalidRecords(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	missingID := model.Expense{Amount: 10, Category: model.CategoryFood, Date: time.Now()}
	assert.ErrorIs(t, store.AddExpense(ctx, missingID), ErrInvalidExpense)

	negative := model.Expense{ID: "a", Amount: -10, Category: model.CategoryFood, Date: time.Now()}
	assert.ErrorIs(t, store.AddExpense(ctx, negative), ErrNegativeAmount)
}

func TestAddExpensesBulk(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	batch := []model.Expense{
		testExpense(10, model.CategoryFood, time.Now()),
		testExpense(20, model.CategoryBills, time.Now()),
		testExpense(30, model.CategoryTravel, time.Now()),
	}
	require.NoError(t, store.AddExpenses(ctx, batch))
	require.NoError(t, store.AddExpenses(ctx, nil)) // no-op

	expenses, err := store.GetExpenses(ctx)
	require.NoError(t, err)
	assert.Len(t, expenses, 3)
}

func TestDeleteExpense(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	records := []model.Expense{
		testExpense(10, model.CategoryFood, time.Now()),
		testExpense(20, model.CategoryRent, time.Now()),
		testExpense(30, model.CategoryBills, time.Now()),
	}
	require.NoError(t, store.AddExpenses(ctx, records))

	// Removes exactly the targeted record, relative order preserved.
	require.NoError(t, store.DeleteExpense(ctx, records[1].ID))

	expenses, err := store.GetExpenses(ctx)
	require.NoError(t, err)
	require.Len(t, expenses, 2)
	assert.Equal(t, records[0].ID, expenses[0].ID)
	assert.Equal(t, records[2].ID, expenses[1].ID)
}

func TestDeleteExpenseUnknownID(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.AddExpense(ctx, testExpense(10, model.CategoryFood, time.Now())))

	err := store.DeleteExpense(ctx, "does-not-exist")
	assert.ErrorIs(t, err, common.ErrNotFound)

	// The sequence is untouched.
	expenses, err := store.GetExpenses(ctx)
	require.NoError(t, err)
	assert.Len(t, expenses, 1)
}

func TestBudgetsDefaultToEmpty(t *testing.T) {
	store := createTestStore(t)

	budgets, err := store.GetBudgets(context.Background())
	require.NoError(t, err)
	assert.True(t, budgets.Empty())
}

func TestSetBudgetsReplacesWholesale(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetBudgets(ctx, model.BudgetTable{
		model.CategoryFood: 5000,
		model.CategoryRent: 20000,
	}))

	budgets, err := store.GetBudgets(ctx)
	require.NoError(t, err)
	// Saved as a full table: missing categories coerced to 0.
	require.Len(t, budgets, len(model.Categories))
	assert.Equal(t, 5000.0, budgets[model.CategoryFood])
	assert.Equal(t, 20000.0, budgets[model.CategoryRent])
	assert.Equal(t, 0.0, budgets[model.CategoryTravel])

	// A second save replaces everything; no merge with the previous table.
	require.NoError(t, store.SetBudgets(ctx, model.BudgetTable{model.CategoryTravel: 3000}))
	budgets, err = store.GetBudgets(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0.0, budgets[model.CategoryFood])
	assert.Equal(t, 3000.0, budgets[model.CategoryTravel])
}

func TestClearBudgets(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetBudgets(ctx, model.BudgetTable{model.CategoryFood: 5000}))
	require.NoError(t, store.ClearBudgets(ctx))

	budgets, err := store.GetBudgets(ctx)
	require.NoError(t, err)
	assert.True(t, budgets.Empty())
}

func TestStatePersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "persist.db")
	ctx := context.Background()

	store, err := NewStore(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Migrate(ctx))
	require.NoError(t, store.SetSalary(ctx, 60000))
	require.NoError(t, store.AddExpense(ctx, testExpense(100, model.CategoryFood, time.Now())))
	require.NoError(t, store.Close())

	reopened, err := NewStore(dbPath)
	require.NoError(t, err)
	defer reopened.Close()
	require.NoError(t, reopened.Migrate(ctx))

	salary, err := reopened.GetSalary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 60000.0, salary)

	expenses, err := reopened.GetExpenses(ctx)
	require.NoError(t, err)
	assert.Len(t, expenses, 1)
}
