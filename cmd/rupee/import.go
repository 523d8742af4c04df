package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/rupee-cli/rupee/internal/cli"
	"github.com/rupee-cli/rupee/internal/model"
)

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Bulk-import expenses from a CSV file",
		Long: `Import expenses from a CSV file with columns: date, amount, category, note.
Dates are YYYY-MM-DD; a header row is detected and skipped. Rows that fail
to parse are skipped with a warning.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer file.Close()

			rows, err := readCSVRows(file)
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				fmt.Println(cli.SubtleStyle.Render("Nothing to import."))
				return nil
			}

			bar := progressbar.NewOptions(len(rows),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("Importing expenses..."),
			)

			var (
				batch   []model.Expense
				skipped int
			)
			for _, row := range rows {
				_ = bar.Add(1)
				e, err := parseCSVExpense(row)
				if err != nil {
					skipped++
					slog.Warn("skipping row", "row", strings.Join(row, ","), "error", err)
					continue
				}
				batch = append(batch, e)
			}
			_ = bar.Finish()
			fmt.Fprintln(os.Stderr)

			ctx := cmd.Context()
			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.AddExpenses(ctx, batch); err != nil {
				return fmt.Errorf("failed to save imported expenses: %w", err)
			}

			msg := fmt.Sprintf("Imported %d expenses", len(batch))
			if skipped > 0 {
				msg += fmt.Sprintf(" (%d rows skipped)", skipped)
			}
			fmt.Println(cli.SuccessStyle.Render(msg))
			return printWarnings(cmd, store)
		},
	}
}

// readCSVRows reads all records, dropping a leading header row if the first
// field doesn't parse as a date.
func readCSVRows(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(rows) > 0 {
		if _, err := parseDate(rows[0][0]); err != nil {
			rows = rows[1:]
		}
	}
	return rows, nil
}

// parseCSVExpense converts one row (date, amount, category, optional note)
// into a record.
func parseCSVExpense(row []string) (model.Expense, error) {
	if len(row) < 3 {
		return model.Expense{}, fmt.Errorf("expected at least 3 columns, got %d", len(row))
	}

	date, err := parseDate(strings.TrimSpace(row[0]))
	if err != nil {
		return model.Expense{}, err
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
	if err != nil {
		return model.Expense{}, fmt.Errorf("bad amount %q: %w", row[1], err)
	}
	if amount <= 0 {
		return model.Expense{}, fmt.Errorf("amount must be positive, got %v", amount)
	}

	note := ""
	if len(row) > 3 {
		note = row[3]
	}

	return model.NewExpense(amount, row[2], date, note), nil
}
