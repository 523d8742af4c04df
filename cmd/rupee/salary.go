package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rupee-cli/rupee/internal/cli"
	"github.com/rupee-cli/rupee/internal/common"
	"github.com/rupee-cli/rupee/internal/engine"
)

func salaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "salary",
		Short: "Manage your monthly salary",
	}

	cmd.AddCommand(setSalaryCmd())
	cmd.AddCommand(showSalaryCmd())

	return cmd
}

func setSalaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <amount>",
		Short: "Save your monthly salary",
		Long:  `Save your monthly salary. Budgets default to fixed fractions of this figure until you set explicit caps.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			salary, err := strconv.ParseFloat(args[0], 64)
			if err != nil || salary <= 0 {
				return common.NewUserError(fmt.Sprintf("enter a valid salary: %q is not a positive amount", args[0]), err)
			}

			ctx := cmd.Context()
			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.SetSalary(ctx, salary); err != nil {
				return fmt.Errorf("failed to save salary: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render("Salary saved: " + cli.FormatINR(salary)))
			printSalarySplit(salary)
			return nil
		},
	}
}

func showSalaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the saved salary and its 50/30/20 split",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			salary, err := store.GetSalary(ctx)
			if err != nil {
				return fmt.Errorf("failed to read salary: %w", err)
			}
			if salary <= 0 {
				fmt.Println(cli.SubtleStyle.Render("No salary saved yet. Use 'rupee salary set <amount>'."))
				return nil
			}

			fmt.Println(cli.TitleStyle.Render("Salary: " + cli.FormatINR(salary)))
			printSalarySplit(salary)
			return nil
		},
	}
}

func printSalarySplit(salary float64) {
	for _, p := range engine.SalarySplit(salary) {
		fmt.Printf("  %s (%.0f%%): %s\n", p.Name, p.Fraction*100, cli.BoldStyle.Render(cli.FormatINR(p.Amount)))
	}
}
