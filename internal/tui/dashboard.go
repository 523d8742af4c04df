// Package tui provides the interactive dashboard view.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rupee-cli/rupee/internal/cli"
	"github.com/rupee-cli/rupee/internal/engine"
	"github.com/rupee-cli/rupee/internal/model"
)

// DashboardModel renders the month-at-a-glance view: headline numbers, the
// per-category breakdown against budgets, and any active warnings. It is a
// read-only view over numbers the engine already computed.
type DashboardModel struct {
	summary  engine.PeriodSummary
	byCat    map[model.Category]float64
	budgets  model.BudgetTable
	warnings []model.Warning
	catTable table.Model
	width    int
}

// NewDashboard builds the dashboard from precomputed engine output.
func NewDashboard(summary engine.PeriodSummary, byCat map[model.Category]float64, budgets model.BudgetTable, warnings []model.Warning) DashboardModel {
	columns := []table.Column{
		{Title: "Category", Width: 14},
		{Title: "Spent", Width: 12},
		{Title: "Budget", Width: 12},
		{Title: "Status", Width: 10},
	}

	rows := make([]table.Row, 0, len(model.Categories))
	for _, c := range model.Categories {
		spent := byCat[c]
		limit := budgets[c]
		rows = append(rows, table.Row{
			string(c),
			cli.FormatINR(spent),
			cli.FormatINR(limit),
			categoryStatus(spent, limit),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(model.Categories)+1),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(cli.PrimaryColor)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	t.SetStyles(styles)

	return DashboardModel{
		summary:  summary,
		byCat:    byCat,
		budgets:  budgets,
		warnings: warnings,
		catTable: t,
	}
}

// categoryStatus summarizes one category row.
func categoryStatus(spent, limit float64) string {
	switch {
	case limit <= 0:
		return "-"
	case spent > limit:
		return "over"
	case spent > 0:
		return fmt.Sprintf("%.0f%%", spent/limit*100)
	default:
		return "0%"
	}
}

// Init implements tea.Model.
func (m DashboardModel) Init() tea.Cmd {
	return nil
}

// Update handles key and resize events.
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}

	var cmd tea.Cmd
	m.catTable, cmd = m.catTable.Update(msg)
	return m, cmd
}

// View renders the dashboard.
func (m DashboardModel) View() string {
	header := cli.TitleStyle.Render("rupee — this month")

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		m.card("Salary", cli.FormatINR(m.summary.Salary)),
		m.card("Spent", cli.FormatINR(m.summary.Month)),
		m.card("Savings", cli.FormatINR(m.summary.Savings)),
		m.card("Used", cli.FormatPercent(m.summary.PercentSpent)),
	)

	sections := []string{header, cards, m.catTable.View()}

	if len(m.warnings) > 0 {
		lines := make([]string, 0, len(m.warnings))
		for _, w := range m.warnings {
			lines = append(lines, cli.WarningStyle.Render("⚠ "+WarningText(w)))
		}
		sections = append(sections, lipgloss.JoinVertical(lipgloss.Left, lines...))
	}

	sections = append(sections, cli.SubtleStyle.Render("q to quit"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func (m DashboardModel) card(label, value string) string {
	content := cli.SubtleStyle.Render(label) + "\n" + cli.BoldStyle.Render(value)
	return cli.BoxStyle.Render(content)
}

// WarningText renders a warning descriptor as a sentence. Shared by the
// dashboard and the plain CLI output.
func WarningText(w model.Warning) string {
	if w.Kind == model.WarningOverall {
		return fmt.Sprintf("you've spent %s this month, over your salary alert threshold of %s",
			cli.FormatINR(w.Spent), cli.FormatINR(w.Limit))
	}
	return fmt.Sprintf("%s: %s exceeded your budget of %s",
		w.Category, cli.FormatINR(w.Spent), cli.FormatINR(w.Limit))
}

// Run starts the dashboard program and blocks until the user quits.
func Run(m DashboardModel) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard failed: %w", err)
	}
	return nil
}
