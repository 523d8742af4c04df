package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/spf13/cobra"

	"github.com/rupee-cli/rupee/internal/cli"
	"github.com/rupee-cli/rupee/internal/common"
	"github.com/rupee-cli/rupee/internal/engine"
)

const trendTopCount = 3

func reportCmd() *cobra.Command {
	var (
		months  int
		pdfPath string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the multi-month spending trend",
		Long: `Show spend per calendar month (most recent last) alongside salary and
estimated savings, plus the trend of your top spending categories.
With --pdf the same report is written to a file.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if months < 1 {
				return common.NewUserError("--months must be at least 1", nil)
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
			series := engine.MonthlySeries(expenses, months, now)
			trend := engine.CategoryTrend(expenses, months, now)
			top := engine.TopCategories(trend, trendTopCount)

			if pdfPath != "" {
				if err := writeReportPDF(pdfPath, salary, series, top); err != nil {
					return fmt.Errorf("failed to write PDF: %w", err)
				}
				fmt.Println(cli.SuccessStyle.Render("Report written to " + pdfPath))
				return nil
			}

			printReport(salary, series, top)
			return nil
		},
	}

	cmd.Flags().IntVarP(&months, "months", "m", 6, "number of months to include")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "write the report to this PDF file instead of the terminal")

	return cmd
}

func printReport(salary float64, series []engine.MonthTotal, top []engine.CategorySeries) {
	fmt.Println(cli.TitleStyle.Render("Monthly spend"))

	var peak float64
	for _, m := range series {
		if m.Total > peak {
			peak = m.Total
		}
	}
	if salary > peak {
		peak = salary
	}

	for _, m := range series {
		savings := salary - m.Total
		if savings < 0 {
			savings = 0
		}
		fmt.Printf("  %s  %10s  %s\n", m.Label, cli.FormatINR(m.Total), cli.Bar(m.Total, peak, 30))
		if salary > 0 {
			fmt.Printf("  %s  %10s  %s\n", "      ",
				cli.SubtleStyle.Render(cli.FormatINR(savings)+" saved"), "")
		}
	}

	if len(top) == 0 {
		return
	}
	fmt.Println(cli.TitleStyle.Render("Top categories"))
	for _, t := range top {
		if t.Total == 0 {
			continue
		}
		cells := make([]string, len(t.Totals))
		for i, v := range t.Totals {
			cells[i] = cli.FormatINR(v)
		}
		fmt.Printf("  %-14s %s  (total %s)\n", t.Category, strings.Join(cells, " → "), cli.BoldStyle.Render(cli.FormatINR(t.Total)))
	}
}

// writeReportPDF renders the same report as a one-page PDF. The core fonts
// have no rupee glyph, so amounts use an "Rs" prefix there.
func writeReportPDF(path string, salary float64, series []engine.MonthTotal, top []engine.CategorySeries) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "rupee — spending report")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, "Generated "+time.Now().Format("02 Jan 2006"))
	pdf.Ln(6)
	if salary > 0 {
		pdf.Cell(0, 6, "Monthly salary: "+pdfAmount(salary))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Spend per month")
	pdf.Ln(9)

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(40, 40, 40)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(40, 7, "Month", "1", 0, "L", true, 0, "")
	pdf.CellFormat(45, 7, "Spent", "1", 0, "R", true, 0, "")
	pdf.CellFormat(45, 7, "Savings (est.)", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(50, 50, 50)
	for _, m := range series {
		savings := salary - m.Total
		if savings < 0 {
			savings = 0
		}
		pdf.CellFormat(40, 7, m.Label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(45, 7, pdfAmount(m.Total), "1", 0, "R", false, 0, "")
		pdf.CellFormat(45, 7, pdfAmount(savings), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.Cell(0, 8, "Top categories")
	pdf.Ln(9)

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(50, 50, 50)
	for _, t := range top {
		if t.Total == 0 {
			continue
		}
		pdf.Cell(0, 6, fmt.Sprintf("%s: %s over the period", t.Category, pdfAmount(t.Total)))
		pdf.Ln(6)
	}

	return pdf.OutputFileAndClose(path)
}

func pdfAmount(v float64) string {
	return strings.ReplaceAll(cli.FormatINR(v), "₹", "Rs ")
}
