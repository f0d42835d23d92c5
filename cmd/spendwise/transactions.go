package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"spendwise/internal/core"
	"spendwise/internal/store"
)

// validationKeys maps entry errors to their translated message.
var validationKeys = map[error]string{
	core.ErrEmptyDescription: "description_empty_error",
	core.ErrInvalidAmount:    "amount_invalid_error",
	core.ErrEmptyCategory:    "category_empty_error",
	core.ErrInvalidDate:      "date_invalid_error",
	core.ErrInvalidType:      "type_invalid_error",
}

// userError shows a translated message while still matching the sentinel
// it stands for.
type userError struct {
	msg string
	err error
}

func (e *userError) Error() string { return e.msg }
func (e *userError) Unwrap() error { return e.err }

func (rc *runContext) validationError(err error) error {
	for sentinel, key := range validationKeys {
		if errors.Is(err, sentinel) {
			return &userError{msg: rc.app.Translator.Translate(key), err: sentinel}
		}
	}
	return err
}

func (rc *runContext) notFound() error {
	return &userError{msg: rc.app.Translator.Translate("transaction_not_found"), err: store.ErrNotFound}
}

// entryFields are the user-editable fields of a transaction, all as typed.
type entryFields struct {
	Date        string
	Description string
	Type        string
	Amount      string
	Category    string
}

// apply overwrites t with every non-empty field and validates the result.
func (rc *runContext) apply(t core.Transaction, f entryFields) (core.Transaction, error) {
	if f.Date != "" {
		d, err := core.ParseDate(f.Date)
		if err != nil {
			return t, rc.validationError(err)
		}
		t.Date = d
	}
	if f.Description != "" {
		t.Description = strings.TrimSpace(f.Description)
	}
	if f.Type != "" {
		t.Type = core.TransactionType(strings.ToLower(f.Type))
	}
	if f.Amount != "" {
		amt, err := core.ParseAmount(f.Amount)
		if err != nil {
			return t, rc.validationError(err)
		}
		t.Amount = amt
	}
	if f.Category != "" {
		t.Category = strings.ToLower(strings.TrimSpace(f.Category))
	}

	if err := t.Validate(); err != nil {
		return t, rc.validationError(err)
	}
	if !core.IsKnownCategory(t.Type, t.Category) {
		return t, fmt.Errorf("unknown %s category %q (see: spendwise categories --type %s)", t.Type, t.Category, t.Type)
	}
	return t, nil
}

// resolveID accepts a full id or a prefix that matches exactly one
// transaction, as shown in the ID column.
func (rc *runContext) resolveID(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if _, ok := rc.app.Store.Get(ref); ok {
		return ref, nil
	}
	var matches []string
	for _, t := range rc.app.Store.Transactions(core.Filter{}) {
		if ref != "" && strings.HasPrefix(t.ID, ref) {
			matches = append(matches, t.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", rc.notFound()
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("id prefix %q matches %d transactions", ref, len(matches))
	}
}

type addCmd struct {
	Description string `arg:"" help:"What the money was for."`
	Amount      string `arg:"" help:"Positive amount, e.g. 12.50 or 12,50."`
	Type        string `short:"t" enum:"income,expense" default:"expense" help:"income or expense."`
	Category    string `short:"c" help:"Category key (see categories)."`
	Date        string `short:"d" help:"Day as YYYY-MM-DD. Defaults to today."`
}

func (c *addCmd) Run(rc *runContext) error {
	if c.Date == "" {
		c.Date = core.Today().String()
	}
	t, err := rc.apply(core.Transaction{}, entryFields{
		Date:        c.Date,
		Description: c.Description,
		Type:        c.Type,
		Amount:      c.Amount,
		Category:    c.Category,
	})
	if err != nil {
		return err
	}
	t = core.NewTransaction(t.Date, t.Description, t.Type, t.Amount, t.Category)
	if err := rc.app.Store.Add(t); err != nil {
		return err
	}
	rc.say("transaction_added")
	fmt.Fprintln(rc.out, rc.app.Renderer().Transaction(t))
	return nil
}

type editCmd struct {
	ID          string `arg:"" help:"Transaction id or unique prefix."`
	Description string `help:"New description."`
	Amount      string `help:"New amount."`
	Type        string `short:"t" help:"New type, income or expense."`
	Category    string `short:"c" help:"New category key."`
	Date        string `short:"d" help:"New day as YYYY-MM-DD."`
}

func (c *editCmd) Run(rc *runContext) error {
	id, err := rc.resolveID(c.ID)
	if err != nil {
		return err
	}
	current, _ := rc.app.Store.Get(id)
	updated, err := rc.apply(current, entryFields{
		Date:        c.Date,
		Description: c.Description,
		Type:        c.Type,
		Amount:      c.Amount,
		Category:    c.Category,
	})
	if err != nil {
		return err
	}
	found, err := rc.app.Store.Edit(id, updated)
	if err != nil {
		return err
	}
	if !found {
		return rc.notFound()
	}
	rc.say("transaction_updated")
	fmt.Fprintln(rc.out, rc.app.Renderer().Transaction(updated))
	return nil
}

type deleteCmd struct {
	ID string `arg:"" help:"Transaction id or unique prefix."`
}

func (c *deleteCmd) Run(rc *runContext) error {
	id, err := rc.resolveID(c.ID)
	if err != nil {
		return err
	}
	if _, err := rc.app.Store.Delete(id); err != nil {
		return err
	}
	rc.say("transaction_deleted")
	return nil
}

type showCmd struct {
	ID string `arg:"" help:"Transaction id or unique prefix."`
}

func (c *showCmd) Run(rc *runContext) error {
	id, err := rc.resolveID(c.ID)
	if err != nil {
		return err
	}
	t, _ := rc.app.Store.Get(id)
	fmt.Fprintln(rc.out, rc.app.Renderer().Transaction(t))
	return nil
}

// FilterFlags are shared by list and stats.
type FilterFlags struct {
	From     string `help:"First day to include, YYYY-MM-DD."`
	To       string `help:"Last day to include, YYYY-MM-DD."`
	Category string `short:"c" default:"all" help:"Category key, or all."`
}

func (f FilterFlags) build(rc *runContext) (core.Filter, error) {
	var out core.Filter
	if f.From != "" {
		d, err := core.ParseDate(f.From)
		if err != nil {
			return out, rc.validationError(err)
		}
		out.Start = d
	}
	if f.To != "" {
		d, err := core.ParseDate(f.To)
		if err != nil {
			return out, rc.validationError(err)
		}
		out.End = d
	}
	out.Category = strings.ToLower(strings.TrimSpace(f.Category))
	return out, nil
}

type listCmd struct {
	Filter FilterFlags `embed:""`
}

func (c *listCmd) Run(rc *runContext) error {
	f, err := c.Filter.build(rc)
	if err != nil {
		return err
	}
	fmt.Fprintln(rc.out, rc.app.Renderer().TransactionTable(rc.app.Store.Transactions(f)))
	return nil
}

type balanceCmd struct{}

func (c *balanceCmd) Run(rc *runContext) error {
	fmt.Fprintln(rc.out, rc.app.Renderer().BalanceLine(rc.app.Store.Balance()))
	return nil
}

type statsCmd struct {
	Filter FilterFlags `embed:""`
}

func (c *statsCmd) Run(rc *runContext) error {
	f, err := c.Filter.build(rc)
	if err != nil {
		return err
	}
	byCategory := rc.app.Store.ExpensesByCategory(rc.app.Store.Transactions(f))
	fmt.Fprintln(rc.out, rc.app.Renderer().CategoryBreakdown(core.Breakdown(byCategory)))
	return nil
}

type categoriesCmd struct {
	Type string `short:"t" enum:"income,expense,all" default:"all" help:"income, expense or all."`
}

func (c *categoriesCmd) Run(rc *runContext) error {
	for _, key := range rc.app.Store.CategoryKeys(c.Type) {
		fmt.Fprintf(rc.out, "%-16s %s\n", key, rc.app.Translator.CategoryLabel(key))
	}
	return nil
}

// seedCmd adds the demo pair shown on a fresh install.
type seedCmd struct{}

func (c *seedCmd) Run(rc *runContext) error {
	today := core.Today()
	demo := []core.Transaction{
		core.NewTransaction(today.AddDays(-15), "Groceries and Produce", core.Expense, mustAmount("50.75"), "food"),
		core.NewTransaction(today.AddDays(-10), "Monthly Salary", core.Income, mustAmount("2500"), "salary"),
	}
	for _, t := range demo {
		if err := rc.app.Store.Add(t); err != nil {
			return err
		}
	}
	fmt.Fprintln(rc.out, rc.app.Renderer().TransactionTable(demo))
	return nil
}

func mustAmount(s string) decimal.Decimal {
	a, err := core.ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}
