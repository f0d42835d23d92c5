package core

import (
	"sort"

	"github.com/shopspring/decimal"
)

// CategoryAmount represents an amount aggregated by category key.
type CategoryAmount struct {
	Name   string
	Amount decimal.Decimal
	Share  float64 // percentage of the breakdown total, 0-100
}

// Balance is total income minus total expenses.
func Balance(txs []Transaction) decimal.Decimal {
	income, expense := decimal.Zero, decimal.Zero
	for _, t := range txs {
		switch t.Type {
		case Income:
			income = income.Add(t.Amount)
		case Expense:
			expense = expense.Add(t.Amount)
		}
	}
	return income.Sub(expense)
}

// ExpensesByCategory sums expense amounts per category. Income is ignored.
func ExpensesByCategory(txs []Transaction) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal)
	for _, t := range txs {
		if t.Type != Expense {
			continue
		}
		out[t.Category] = out[t.Category].Add(t.Amount)
	}
	return out
}

// Breakdown orders per-category totals by amount, largest first, and
// attaches each category's share of the total. Categories whose total is
// zero or negative have no slice and are left out.
func Breakdown(byCategory map[string]decimal.Decimal) []CategoryAmount {
	amounts := make([]decimal.Decimal, 0, len(byCategory))
	out := make([]CategoryAmount, 0, len(byCategory))
	for name, amount := range byCategory {
		if !amount.IsPositive() {
			continue
		}
		amounts = append(amounts, amount)
		out = append(out, CategoryAmount{Name: name, Amount: amount})
	}
	if total := Sum(amounts...); total.IsPositive() {
		hundred := decimal.NewFromInt(100)
		for i := range out {
			out[i].Share = out[i].Amount.Mul(hundred).Div(total).InexactFloat64()
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Amount.Cmp(out[j].Amount); c != 0 {
			return c > 0
		}
		return out[i].Name < out[j].Name
	})
	return out
}
