package main

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rupee-cli/rupee/internal/common"
	"github.com/rupee-cli/rupee/internal/model"
	"github.com/rupee-cli/rupee/internal/storage"
)

func TestExpenseCmdSubcommands(t *testing.T) {
	cmd := expenseCmd()

	names := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	assert.True(t, names["add"], "add subcommand should exist")
	assert.True(t, names["list"], "list subcommand should exist")
	assert.True(t, names["delete"], "delete subcommand should exist")
}

func TestAddExpenseCmdFlags(t *testing.T) {
	cmd := addExpenseCmd()

	flag := cmd.Flag("amount")
	require.NotNil(t, flag, "amount flag should exist")

	flag = cmd.Flag("category")
	require.NotNil(t, flag, "category flag should exist")
	assert.Equal(t, "Others", flag.DefValue)
}

func TestDeleteExpenseCmdFlags(t *testing.T) {
	cmd := deleteExpenseCmd()
	assert.NotNil(t, cmd.Flag("id"))
	assert.NotNil(t, cmd.Flag("index"))
}

func TestSortedNewestFirst(t *testing.T) {
	old := model.NewExpense(10, "Food", time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local), "")
	mid := model.NewExpense(20, "Food", time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local), "")
	recent := model.NewExpense(30, "Food", time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local), "")

	input := []model.Expense{old, recent, mid}
	sorted := sortedNewestFirst(input)

	require.Len(t, sorted, 3)
	assert.Equal(t, recent.ID, sorted[0].ID)
	assert.Equal(t, mid.ID, sorted[1].ID)
	assert.Equal(t, old.ID, sorted[2].ID)

	// Input order untouched.
	assert.Equal(t, old.ID, input[0].ID)
}

func TestResolveExpenseID(t *testing.T) {
	old := model.NewExpense(10, "Food", time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local), "")
	recent := model.NewExpense(30, "Food", time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local), "")
	expenses := []model.Expense{old, recent}

	id, err := resolveExpenseID(expenses, 1)
	require.NoError(t, err)
	assert.Equal(t, recent.ID, id, "position 1 is the newest expense")

	id, err = resolveExpenseID(expenses, 2)
	require.NoError(t, err)
	assert.Equal(t, old.ID, id)

	for _, index := range []int{0, -1, 3} {
		_, err = resolveExpenseID(expenses, index)
		assert.ErrorIs(t, err, common.ErrIndexOutOfRange, "index %d", index)
	}

	_, err = resolveExpenseID(nil, 1)
	assert.ErrorIs(t, err, common.ErrIndexOutOfRange)
}

func TestDeleteExpenseCmdRejectsOutOfRangeIndex(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "rupee.db")
	viper.Set("storage.path", dbPath)
	t.Cleanup(func() { viper.Set("storage.path", "") })

	ctx := context.Background()
	store, err := storage.NewStore(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Migrate(ctx))
	e := model.NewExpense(100, "Food", time.Now(), "")
	require.NoError(t, store.AddExpense(ctx, e))
	require.NoError(t, store.Close())

	cmd := deleteExpenseCmd()
	cmd.SetContext(ctx)
	require.NoError(t, cmd.Flags().Set("index", "5"))
	assert.ErrorIs(t, cmd.RunE(cmd, nil), common.ErrIndexOutOfRange)

	// The stored expenses are untouched.
	store, err = storage.NewStore(dbPath)
	require.NoError(t, err)
	defer store.Close()
	expenses, err := store.GetExpenses(ctx)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, e.ID, expenses[0].ID)
}

func TestAddExpenseCmdRejectsNonPositiveAmount(t *testing.T) {
	cmd := addExpenseCmd()

	var userErr *common.UserError
	require.ErrorAs(t, cmd.RunE(cmd, nil), &userErr)
	assert.Contains(t, userErr.UserMessage, "valid amount")
}

func TestDeleteExpenseCmdRequiresExactlyOneSelector(t *testing.T) {
	cmd := deleteExpenseCmd()

	var userErr *common.UserError
	require.ErrorAs(t, cmd.RunE(cmd, nil), &userErr)
	assert.Contains(t, userErr.UserMessage, "--id or --index")
}

func TestParseDate(t *testing.T) {
	d, err := parseDate("2025-06-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local), d)

	_, err = parseDate("15/06/2025")
	assert.Error(t, err)
}
