package core

import (
	"testing"

	"github.com/shopspring/decimal"
)

func tx(id string, d Date, typ TransactionType, amount, category string) Transaction {
	return Transaction{
		ID:          id,
		Date:        d,
		Description: id,
		Type:        typ,
		Amount:      decimal.RequireFromString(amount),
		Category:    category,
	}
}

func sample() []Transaction {
	return []Transaction{
		tx("1", NewDate(2025, 1, 1), Income, "2500.00", "salary"),
		tx("2", NewDate(2025, 1, 5), Expense, "50.75", "food"),
		tx("3", NewDate(2025, 1, 10), Expense, "20.25", "food"),
		tx("4", NewDate(2025, 1, 15), Expense, "100", "transport"),
		tx("5", NewDate(2025, 2, 1), Income, "300", "gift"),
	}
}

func TestBalance(t *testing.T) {
	if got := Balance(nil); !got.IsZero() {
		t.Fatalf("empty balance = %s", got)
	}
	want := decimal.RequireFromString("2629")
	if got := Balance(sample()); !got.Equal(want) {
		t.Fatalf("balance = %s want %s", got, want)
	}
}

func TestExpensesByCategory(t *testing.T) {
	got := ExpensesByCategory(sample())
	if len(got) != 2 {
		t.Fatalf("expected 2 categories, got %v", got)
	}
	if !got["food"].Equal(decimal.RequireFromString("71")) {
		t.Fatalf("food = %s", got["food"])
	}
	if !got["transport"].Equal(decimal.NewFromInt(100)) {
		t.Fatalf("transport = %s", got["transport"])
	}
	if _, ok := got["salary"]; ok {
		t.Fatalf("income leaked into expense breakdown")
	}
	if len(ExpensesByCategory(nil)) != 0 {
		t.Fatalf("expected empty map")
	}
}

func TestBreakdown(t *testing.T) {
	rows := Breakdown(map[string]decimal.Decimal{
		"food":      decimal.NewFromInt(25),
		"transport": decimal.NewFromInt(75),
		"gift":      decimal.NewFromInt(25),
	})
	if len(rows) != 3 {
		t.Fatalf("rows = %v", rows)
	}
	if rows[0].Name != "transport" || rows[1].Name != "food" || rows[2].Name != "gift" {
		t.Fatalf("unexpected order %v", rows)
	}
	if rows[0].Share < 59.9 || rows[0].Share > 60.1 {
		t.Fatalf("share = %v", rows[0].Share)
	}

	if got := Breakdown(map[string]decimal.Decimal{"food": decimal.Zero}); len(got) != 0 {
		t.Fatalf("zero total should have no row, got %v", got)
	}

	// a refund-heavy category can go negative; it must not skew the others
	mixed := Breakdown(map[string]decimal.Decimal{
		"food":     decimal.NewFromInt(50),
		"shopping": decimal.NewFromInt(-20),
		"housing":  decimal.NewFromInt(50),
	})
	if len(mixed) != 2 {
		t.Fatalf("negative category should be dropped, got %v", mixed)
	}
	for _, row := range mixed {
		if row.Share < 49.9 || row.Share > 50.1 {
			t.Fatalf("%s share = %v, want 50", row.Name, row.Share)
		}
	}
}

func TestFilterApply(t *testing.T) {
	all := sample()

	if !(Filter{}).IsZero() || !(Filter{Category: CategoryAll}).IsZero() {
		t.Fatalf("empty filters should be zero")
	}
	if got := (Filter{Category: CategoryAll}).Apply(all); len(got) != len(all) {
		t.Fatalf("'all' category dropped rows: %d", len(got))
	}

	cases := []struct {
		name string
		f    Filter
		ids  []string
	}{
		{"inclusive window", Filter{Start: NewDate(2025, 1, 5), End: NewDate(2025, 1, 15)}, []string{"2", "3", "4"}},
		{"start only", Filter{Start: NewDate(2025, 1, 15)}, []string{"4", "5"}},
		{"end only", Filter{End: NewDate(2025, 1, 1)}, []string{"1"}},
		{"category", Filter{Category: "food"}, []string{"2", "3"}},
		{"window and category", Filter{Start: NewDate(2025, 1, 6), Category: "food"}, []string{"3"}},
		{"empty window", Filter{Start: NewDate(2026, 1, 1)}, nil},
		{"unknown category", Filter{Category: "nope"}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.f.Apply(all)
			if len(got) != len(tc.ids) {
				t.Fatalf("got %d rows want %d", len(got), len(tc.ids))
			}
			for i, id := range tc.ids {
				if got[i].ID != id {
					t.Fatalf("row %d = %s want %s", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestFilterApplyDoesNotAlias(t *testing.T) {
	all := sample()
	got := (Filter{Category: "salary"}).Apply(all)
	got[0].Description = "changed"
	if all[0].Description != "1" {
		t.Fatalf("filter result aliases input")
	}
}
