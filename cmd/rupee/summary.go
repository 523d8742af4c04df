package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rupee-cli/rupee/internal/cli"
	"github.com/rupee-cli/rupee/internal/engine"
)

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show today/this week/this month totals and savings",
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

			s := engine.Summarize(expenses, salary, time.Now())

			fmt.Println(cli.TitleStyle.Render("Spending summary"))
			fmt.Printf("  Today:      %s\n", cli.FormatINR(s.Day))
			fmt.Printf("  This week:  %s\n", cli.FormatINR(s.Week))
			fmt.Printf("  This month: %s\n", cli.FormatINR(s.Month))

			if salary > 0 {
				fmt.Printf("  Salary:     %s\n", cli.FormatINR(s.Salary))
				fmt.Printf("  Savings:    %s\n", cli.SuccessStyle.Render(cli.FormatINR(s.Savings)))
				fmt.Printf("  %s of salary spent  %s\n",
					cli.BoldStyle.Render(cli.FormatPercent(s.PercentSpent)),
					cli.Bar(s.PercentSpent, 100, 30))
			} else {
				fmt.Println(cli.SubtleStyle.Render("  Set a salary to see savings and warnings."))
			}

			return printWarnings(cmd, store)
		},
	}
}
