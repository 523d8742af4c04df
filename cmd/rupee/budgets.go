package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/rupee-cli/rupee/internal/calendar"
	"github.com/rupee-cli/rupee/internal/cli"
	"github.com/rupee-cli/rupee/internal/common"
	"github.com/rupee-cli/rupee/internal/engine"
	"github.com/rupee-cli/rupee/internal/model"
)

func budgetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budgets",
		Short: "View and set monthly category budgets",
	}

	cmd.AddCommand(showBudgetsCmd())
	cmd.AddCommand(setBudgetsCmd())
	cmd.AddCommand(clearBudgetsCmd())

	return cmd
}

func showBudgetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show effective budgets against this month's spend",
		Long:  `Show the cap in effect for every category: your saved caps if any, otherwise defaults derived from salary.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			salary, err := store.GetSalary(ctx)
			if err != nil {
				return err
			}
			saved, err := store.GetBudgets(ctx)
			if err != nil {
				return err
			}
			expenses, err := store.GetExpenses(ctx)
			if err != nil {
				return err
			}

			budgets := engine.EffectiveBudgets(salary, saved)
			now := time.Now()
			byCat := engine.SumByCategoryInRange(expenses, calendar.StartOfMonth(now), calendar.EndOfMonth(now))

			source := "derived from salary"
			if !saved.Empty() {
				source = "saved caps"
			}
			fmt.Println(cli.TitleStyle.Render("Monthly budgets (" + source + ")"))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()
			fmt.Fprintf(w, "%s\t%s\t%s\n", "Category", "Cap", "Spent this month")
			for _, c := range model.Categories {
				spent := cli.FormatINR(byCat[c])
				if byCat[c] > budgets[c] && budgets[c] > 0 {
					spent = cli.ErrorStyle.Render(spent)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", c, cli.FormatINR(budgets[c]), spent)
			}
			return nil
		},
	}
}

func setBudgetsCmd() *cobra.Command {
	caps := make(map[model.Category]*float64, len(model.Categories))

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Save explicit monthly caps for all categories",
		Long: `Save explicit monthly caps. The save replaces the whole table: categories
you omit are saved as 0, meaning no budget for that category. Use
'budgets clear' to go back to salary-derived defaults.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table := make(model.BudgetTable, len(model.Categories))
			for c, v := range caps {
				if *v < 0 {
					return common.NewUserError(fmt.Sprintf("budget for %s cannot be negative", c), nil)
				}
				table[c] = *v
			}

			ctx := cmd.Context()
			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.SetBudgets(ctx, table); err != nil {
				return fmt.Errorf("failed to save budgets: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render("Budgets saved."))
			return printWarnings(cmd, store)
		},
	}

	for _, c := range model.Categories {
		caps[c] = cmd.Flags().Float64(flagName(c), 0, fmt.Sprintf("monthly cap for %s", c))
	}

	return cmd
}

func clearBudgetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove saved caps and return to salary-derived defaults",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.ClearBudgets(ctx); err != nil {
				return fmt.Errorf("failed to clear budgets: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render("Saved budgets cleared; defaults apply."))
			return nil
		},
	}
}

// flagName lowercases a category for use as a flag, e.g. --food.
func flagName(c model.Category) string {
	out := make([]rune, 0, len(c))
	for _, r := range string(c) {
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		out = append(out, r)
	}
	return string(out)
}
