// Package view renders transactions, the balance and the expense breakdown
// for the terminal.
package view

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"spendwise/internal/core"
	"spendwise/internal/theme"
)

// Translator is what the views need from i18n.
type Translator interface {
	Translate(key string) string
	CategoryLabel(key string) string
	FormatAmount(amount decimal.Decimal, symbol string) string
}

const barWidth = 20

// Renderer holds what every view needs: labels, colours and the currency symbol.
type Renderer struct {
	T       Translator
	Palette theme.Palette
	Symbol  string
}

func (r Renderer) typeLabel(t core.TransactionType) string {
	return r.T.Translate(string(t))
}

func (r Renderer) amountStyle(t core.TransactionType) lipgloss.Style {
	if t == core.Income {
		return r.Palette.Income
	}
	return r.Palette.Expense
}

// TransactionTable lists transactions newest first.
func (r Renderer) TransactionTable(txs []core.Transaction) string {
	if len(txs) == 0 {
		return r.Palette.Muted.Render(r.T.Translate("no_transactions"))
	}

	rows := append([]core.Transaction(nil), txs...)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Date.After(rows[j].Date) })

	headers := []string{
		r.T.Translate("date"),
		r.T.Translate("description"),
		r.T.Translate("type"),
		r.T.Translate("category"),
		r.T.Translate("amount"),
		"ID",
	}
	cells := make([][]string, 0, len(rows))
	for _, t := range rows {
		cells = append(cells, []string{
			t.Date.String(),
			t.Description,
			r.typeLabel(t.Type),
			r.T.CategoryLabel(t.Category),
			r.T.FormatAmount(t.Amount, r.Symbol),
			shortID(t.ID),
		})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range cells {
		for i, c := range row {
			if w := lipgloss.Width(c); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	b.WriteString(r.row(headers, widths, func(int) lipgloss.Style { return r.Palette.Header }))
	for i, row := range cells {
		typ := rows[i].Type
		b.WriteString("\n")
		b.WriteString(r.row(row, widths, func(col int) lipgloss.Style {
			switch col {
			case 4:
				return r.amountStyle(typ)
			case 5:
				return r.Palette.Muted
			}
			return lipgloss.NewStyle()
		}))
	}
	return b.String()
}

func (r Renderer) row(cols []string, widths []int, style func(int) lipgloss.Style) string {
	parts := make([]string, len(cols))
	for i, c := range cols {
		s := style(i).Width(widths[i])
		if i == 4 {
			s = s.Align(lipgloss.Right)
		}
		parts[i] = s.Render(c)
	}
	return strings.Join(parts, "  ")
}

// Transaction renders one transaction in full.
func (r Renderer) Transaction(t core.Transaction) string {
	label := func(key string) string { return r.Palette.Muted.Render(r.T.Translate(key) + ":") }
	lines := []string{
		fmt.Sprintf("%s %s", r.Palette.Muted.Render("ID:"), t.ID),
		fmt.Sprintf("%s %s", label("date"), t.Date),
		fmt.Sprintf("%s %s", label("description"), t.Description),
		fmt.Sprintf("%s %s", label("type"), r.typeLabel(t.Type)),
		fmt.Sprintf("%s %s", label("category"), r.T.CategoryLabel(t.Category)),
		fmt.Sprintf("%s %s", label("amount"), r.amountStyle(t.Type).Render(r.T.FormatAmount(t.Amount, r.Symbol))),
	}
	return strings.Join(lines, "\n")
}

// BalanceLine renders "Balance: $123.45", coloured by sign.
func (r Renderer) BalanceLine(balance decimal.Decimal) string {
	style := r.Palette.Income
	if balance.IsNegative() {
		style = r.Palette.Expense
	}
	text := r.T.FormatAmount(balance, r.Symbol)
	return r.Palette.Header.Render(r.T.Translate("balance")+":") + " " + style.Render(text)
}

// CategoryBreakdown renders per-category totals, largest first, with their
// share of the total as a bar, then the total.
func (r Renderer) CategoryBreakdown(rows []core.CategoryAmount) string {
	title := r.Palette.Accent.Render(r.T.Translate("expenses_by_category"))
	if len(rows) == 0 {
		return title + "\n" + r.Palette.Muted.Render(r.T.Translate("no_expenses"))
	}

	labels := make([]string, len(rows))
	amounts := make([]string, len(rows))
	labelW, amountW := 0, 0
	for i, row := range rows {
		labels[i] = r.T.CategoryLabel(row.Name)
		amounts[i] = r.T.FormatAmount(row.Amount, r.Symbol)
		labelW = max(labelW, lipgloss.Width(labels[i]))
		amountW = max(amountW, lipgloss.Width(amounts[i]))
	}

	var b strings.Builder
	b.WriteString(title)
	total := decimal.Zero
	for i, row := range rows {
		total = total.Add(row.Amount)
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Width(labelW).Render(labels[i]))
		b.WriteString("  ")
		b.WriteString(r.Palette.Expense.Width(amountW).Align(lipgloss.Right).Render(amounts[i]))
		b.WriteString("  ")
		b.WriteString(r.Palette.Bar.Render(bar(row.Share)))
		b.WriteString(r.Palette.Muted.Render(fmt.Sprintf(" %5.1f%%", row.Share)))
	}
	b.WriteString("\n")
	b.WriteString(r.Palette.Header.Render(r.T.Translate("total_expenses") + ":"))
	b.WriteString(" ")
	b.WriteString(r.Palette.Expense.Render(r.T.FormatAmount(total, r.Symbol)))
	return b.String()
}

func bar(share float64) string {
	n := int(math.Round(share / 100 * barWidth))
	n = max(0, min(barWidth, n))
	return strings.Repeat("█", n) + strings.Repeat("░", barWidth-n)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
