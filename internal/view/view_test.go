package view

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spendwise/internal/core"
	"spendwise/internal/i18n"
	"spendwise/internal/theme"
)

func renderer(lang string) Renderer {
	return Renderer{
		T:       i18n.New(lang, nil),
		Palette: theme.Builtin()[theme.Light],
		Symbol:  "$",
	}
}

func sample() []core.Transaction {
	return []core.Transaction{
		{ID: "11111111-aaaa", Date: core.NewDate(2025, 1, 1), Description: "Salary", Type: core.Income, Amount: decimal.NewFromInt(2500), Category: "salary"},
		{ID: "22222222-bbbb", Date: core.NewDate(2025, 1, 20), Description: "Groceries", Type: core.Expense, Amount: decimal.RequireFromString("50.75"), Category: "food"},
	}
}

func TestTransactionTable(t *testing.T) {
	out := renderer("en").TransactionTable(sample())
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Date")
	assert.Contains(t, lines[0], "Amount")
	// newest first
	assert.Contains(t, lines[1], "2025-01-20")
	assert.Contains(t, lines[1], "Food")
	assert.Contains(t, lines[1], "$50.75")
	assert.Contains(t, lines[1], "22222222")
	assert.NotContains(t, lines[1], "bbbb")
	assert.Contains(t, lines[2], "$2,500.00")
	assert.Contains(t, lines[2], "Income")
}

func TestTransactionTableEmpty(t *testing.T) {
	assert.Contains(t, renderer("en").TransactionTable(nil), "No transactions.")
}

func TestTransactionDetail(t *testing.T) {
	out := renderer("en").Transaction(sample()[1])
	assert.Contains(t, out, "22222222-bbbb")
	assert.Contains(t, out, "Groceries")
	assert.Contains(t, out, "Expense")
	assert.Contains(t, out, "$50.75")
}

func TestBalanceLine(t *testing.T) {
	r := renderer("en")
	assert.Contains(t, r.BalanceLine(decimal.RequireFromString("2449.25")), "Balance:")
	assert.Contains(t, r.BalanceLine(decimal.RequireFromString("2449.25")), "$2,449.25")

	ar := renderer("ar")
	ar.Symbol = "ر.س"
	line := ar.BalanceLine(decimal.NewFromInt(5))
	assert.Contains(t, line, "الرصيد")
	assert.Contains(t, line, " ر.س")
}

func TestCategoryBreakdown(t *testing.T) {
	rows := core.Breakdown(map[string]decimal.Decimal{
		"food":     decimal.NewFromInt(75),
		"pet_care": decimal.NewFromInt(25),
	})
	out := renderer("en").CategoryBreakdown(rows)
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Expenses by Category")
	assert.Contains(t, lines[1], "Food")
	assert.Contains(t, lines[1], "75.0%")
	assert.Contains(t, lines[1], strings.Repeat("█", 15))
	assert.Contains(t, lines[2], "Pet care")
	assert.Contains(t, lines[2], "25.0%")
	assert.Contains(t, lines[3], "Total expenses")
	assert.Contains(t, lines[3], "$100.00")
}

func TestCategoryBreakdownEmpty(t *testing.T) {
	assert.Contains(t, renderer("en").CategoryBreakdown(nil), "No expenses to show.")
}

func TestBar(t *testing.T) {
	assert.Equal(t, strings.Repeat("░", barWidth), bar(0))
	assert.Equal(t, strings.Repeat("█", barWidth), bar(100))
	assert.Equal(t, strings.Repeat("█", barWidth), bar(250))
	assert.Equal(t, strings.Repeat("█", 10)+strings.Repeat("░", 10), bar(50))
}
