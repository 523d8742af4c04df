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

func investCmd() *cobra.Command {
	var risk string

	cmd := &cobra.Command{
		Use:   "invest",
		Short: "Suggest an allocation for this month's surplus",
		Long: `Split whatever is left of your salary this month across a fixed
allocation preset. This is a static percentage split by risk appetite,
not investment advice.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tier, err := model.ParseRiskTier(risk)
			if err != nil {
				return common.NewUserError("pick a risk tier: low, moderate, or high", err)
			}

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

			now := time.Now()
			monthSpend := engine.SumInRange(expenses, calendar.StartOfMonth(now), calendar.EndOfMonth(now))
			investable := engine.Investable(salary, monthSpend)

			fmt.Println(cli.TitleStyle.Render("Investment plan (" + string(tier) + " risk)"))
			fmt.Printf("  Salary:      %s\n", cli.FormatINR(salary))
			fmt.Printf("  Spent:       %s\n", cli.FormatINR(monthSpend))
			fmt.Printf("  Investable:  %s\n\n", cli.BoldStyle.Render(cli.FormatINR(investable)))

			if investable == 0 {
				fmt.Println(cli.SubtleStyle.Render("Nothing left to invest this month."))
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()
			for _, a := range engine.PlanAllocation(investable, tier) {
				fmt.Fprintf(w, "  %s\t%.0f%%\t%s\n", a.Bucket, a.Fraction*100, cli.FormatINR(a.Amount))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&risk, "risk", "r", string(model.RiskModerate), "risk tier: low, moderate, or high")

	return cmd
}
