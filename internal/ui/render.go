package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fintrack-dev/fintrack/internal/model"
	"github.com/fintrack-dev/fintrack/internal/report"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	totalStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	noticeStyle  = lipgloss.NewStyle().Faint(true)
)

// renderList renders transactions one per line in their display format.
func renderList(txs []model.Transaction) string {
	lines := make([]string, len(txs))
	for i, tx := range txs {
		lines[i] = tx.String()
	}
	return strings.Join(lines, "\n")
}

// renderTotal renders the post-browse aggregate line. Totals display in USD,
// matching the storage default currency.
func renderTotal(r report.Report) string {
	line := fmt.Sprintf("Total %d %s transactions: %s",
		r.Count, strings.ToLower(r.TypeFilter), report.FormatAmount(r.Total, "USD"))
	return totalStyle.Render(line)
}

// renderSummary renders the summary view: the signed balance plus category
// and expense-type breakdowns, in configured enum order.
func renderSummary(r report.Report, categories, expenseTypes []string) string {
	var b strings.Builder

	b.WriteString(headingStyle.Render("Summary"))
	fmt.Fprintf(&b, "\n\nTransactions: %d\n", r.Count)
	fmt.Fprintf(&b, "Balance: %s\n", report.FormatAmount(r.Total, "USD"))
	if r.Count > 0 {
		fmt.Fprintf(&b, "Average amount: %s\n", r.Average.StringFixed(2))
	}

	b.WriteString("\n" + headingStyle.Render("By category") + "\n")
	for _, c := range categories {
		if total, ok := r.ByCategory[model.Category(c)]; ok {
			fmt.Fprintf(&b, "  %-12s %s\n", c, report.FormatAmount(total, "USD"))
		}
	}

	if len(r.ByExpenseType) > 0 {
		b.WriteString("\n" + headingStyle.Render("By expense type") + "\n")
		for _, et := range expenseTypes {
			if total, ok := r.ByExpenseType[et]; ok {
				fmt.Fprintf(&b, "  %-20s %10s  %s%%\n", et, report.FormatAmount(total, "USD"), r.Share(et))
			}
		}
	}
	return b.String()
}

const aboutText = `Finance Console App
A personal finance manager that tracks your income, expenses, and
liabilities. Add, edit, delete, and view transactions, and apply
filters to sort them.`
