package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/rupee-cli/rupee/internal/calendar"
	"github.com/rupee-cli/rupee/internal/cli"
	"github.com/rupee-cli/rupee/internal/common"
	"github.com/rupee-cli/rupee/internal/engine"
	"github.com/rupee-cli/rupee/internal/model"
	"github.com/rupee-cli/rupee/internal/tui"
)

func expenseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expense",
		Short: "Record and manage expenses",
	}

	cmd.AddCommand(addExpenseCmd())
	cmd.AddCommand(listExpensesCmd())
	cmd.AddCommand(deleteExpenseCmd())

	return cmd
}

func addExpenseCmd() *cobra.Command {
	var (
		amount   float64
		category string
		dateStr  string
		note     string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new expense",
		Long: `Record an expense against one of the fixed categories:
` + categoryList() + `

Unrecognized categories are filed under Others.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if amount <= 0 {
				return common.NewUserError(fmt.Sprintf("enter a valid amount: %v is not positive", amount), nil)
			}

			date := time.Now()
			if dateStr != "" {
				var err error
				if date, err = parseDate(dateStr); err != nil {
					return err
				}
			}

			ctx := cmd.Context()
			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			e := model.NewExpense(amount, category, date, note)
			if err := store.AddExpense(ctx, e); err != nil {
				return fmt.Errorf("failed to save expense: %w", err)
			}

			fmt.Printf("%s %s on %s (%s)\n",
				cli.SuccessStyle.Render("Recorded"),
				cli.FormatINR(e.Amount), e.Category, e.Date.Format("02 Jan 2006"))

			// Surface any fresh warnings right after the mutation.
			return printWarnings(cmd, store)
		},
	}

	cmd.Flags().Float64VarP(&amount, "amount", "a", 0, "expense amount (required)")
	cmd.Flags().StringVarP(&category, "category", "c", string(model.CategoryOthers), "expense category")
	cmd.Flags().StringVarP(&dateStr, "date", "d", "", "expense date, YYYY-MM-DD (default today)")
	cmd.Flags().StringVarP(&note, "note", "n", "", "optional note")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func listExpensesCmd() *cobra.Command {
	var monthOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded expenses, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			expenses, err := store.GetExpenses(ctx)
			if err != nil {
				return fmt.Errorf("failed to load expenses: %w", err)
			}

			if monthOnly {
				now := time.Now()
				from, to := calendar.StartOfMonth(now), calendar.EndOfMonth(now)
				var filtered []model.Expense
				for _, e := range expenses {
					if calendar.InRange(e.Date, from, to) {
						filtered = append(filtered, e)
					}
				}
				expenses = filtered
			}

			if len(expenses) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No expenses recorded. Use 'rupee expense add' to create one."))
				return nil
			}

			printExpenseTable(sortedNewestFirst(expenses))
			return nil
		},
	}

	cmd.Flags().BoolVar(&monthOnly, "month", false, "only show the current month")

	return cmd
}

func deleteExpenseCmd() *cobra.Command {
	var (
		id    string
		index int
	)

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete an expense by id or list position",
		Long: `Delete an expense. --id takes the stable identifier shown by 'expense list';
--index takes the 1-based position in that same newest-first listing.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if (id == "") == (index == 0) {
				return common.NewUserError("provide exactly one of --id or --index", nil)
			}

			ctx := cmd.Context()
			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			target := id
			if target == "" {
				expenses, err := store.GetExpenses(ctx)
				if err != nil {
					return fmt.Errorf("failed to load expenses: %w", err)
				}
				if target, err = resolveExpenseID(expenses, index); err != nil {
					return err
				}
			}

			if err := store.DeleteExpense(ctx, target); err != nil {
				return fmt.Errorf("failed to delete expense: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render("Expense deleted."))
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "expense id")
	cmd.Flags().IntVar(&index, "index", 0, "1-based position in 'expense list'")

	return cmd
}

func printExpenseTable(expenses []model.Expense) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", "#", "Date", "Category", "Note", "Amount", "ID")
	for i, e := range expenses {
		note := e.Note
		if note == "" {
			note = "—"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			i+1, e.Date.Format("02 Jan 2006"), e.Category, note,
			cli.FormatINR(e.Amount), cli.SubtleStyle.Render(e.ID))
	}
}

// printWarnings evaluates and prints active overspend warnings, if any.
func printWarnings(cmd *cobra.Command, store expenseStore) error {
	ctx := cmd.Context()

	salary, err := store.GetSalary(ctx)
	if err != nil {
		return err
	}
	expenses, err := store.GetExpenses(ctx)
	if err != nil {
		return err
	}
	saved, err := store.GetBudgets(ctx)
	if err != nil {
		return err
	}

	budgets := engine.EffectiveBudgets(salary, saved)
	warnings := engine.EvaluateAlerts(salary, expenses, budgets, salaryThreshold(), time.Now())
	for _, warning := range warnings {
		fmt.Println(cli.WarningStyle.Render("⚠ " + tui.WarningText(warning)))
	}
	return nil
}

func categoryList() string {
	labels := make([]string, len(model.Categories))
	for i, c := range model.Categories {
		labels[i] = string(c)
	}
	return "  " + strings.Join(labels, ", ")
}
