package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/rupee-cli/rupee/internal/calendar"
	"github.com/rupee-cli/rupee/internal/engine"
	"github.com/rupee-cli/rupee/internal/tui"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive month-at-a-glance dashboard",
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
			expenses, err := store.GetExpenses(ctx)
			if err != nil {
				return err
			}
			saved, err := store.GetBudgets(ctx)
			if err != nil {
				return err
			}

			now := time.Now()
			budgets := engine.EffectiveBudgets(salary, saved)
			summary := engine.Summarize(expenses, salary, now)
			byCat := engine.SumByCategoryInRange(expenses, calendar.StartOfMonth(now), calendar.EndOfMonth(now))
			warnings := engine.EvaluateAlerts(salary, expenses, budgets, salaryThreshold(), now)

			return tui.Run(tui.NewDashboard(summary, byCat, budgets, warnings))
		},
	}
}
