package main

import (
	"fmt"
	"strings"

	"spendwise/internal/core"
)

type currencyCmd struct {
	Show    currencyShowCmd    `cmd:"" default:"1" help:"Show the symbol in use."`
	Set     currencySetCmd     `cmd:"" help:"Use a preset code (USD, EUR, ...) or any custom symbol."`
	Clear   currencyClearCmd   `cmd:"" help:"Go back to the language's default symbol."`
	Presets currencyPresetsCmd `cmd:"" help:"List the preset currencies."`
}

type currencyShowCmd struct{}

func (c *currencyShowCmd) Run(rc *runContext) error {
	sym := rc.app.Store.DisplayCurrencySymbol()
	if _, ok := rc.app.Store.UserCurrencySymbol(); ok {
		fmt.Fprintln(rc.out, sym)
		return nil
	}
	fmt.Fprintf(rc.out, "%s  (%s)\n", sym, rc.app.Translator.Translate("currency_default_option"))
	return nil
}

type currencySetCmd struct {
	Symbol string `arg:"" help:"Preset code or custom symbol."`
}

func (c *currencySetCmd) Run(rc *runContext) error {
	sym := strings.TrimSpace(c.Symbol)
	if cur, ok := core.LookupCurrency(sym); ok {
		sym = cur.Symbol
	}
	if sym == "" {
		return fmt.Errorf("empty currency symbol; use clear to return to the default")
	}
	return rc.app.Store.SetUserCurrencySymbol(rc.ctx, sym)
}

type currencyClearCmd struct{}

func (c *currencyClearCmd) Run(rc *runContext) error {
	return rc.app.Store.SetUserCurrencySymbol(rc.ctx, "")
}

type currencyPresetsCmd struct{}

func (c *currencyPresetsCmd) Run(rc *runContext) error {
	for _, cur := range core.CurrencyPresets {
		fmt.Fprintf(rc.out, "%-4s %s\n", cur.Code, cur.Symbol)
	}
	return nil
}

type languageCmd struct {
	Code string `arg:"" optional:"" help:"Language code, e.g. en or ar."`
}

func (c *languageCmd) Run(rc *runContext) error {
	if c.Code == "" {
		current := rc.app.Translator.Language()
		for _, code := range rc.app.Translator.Available() {
			marker := " "
			if code == current {
				marker = "*"
			}
			fmt.Fprintf(rc.out, "%s %s\n", marker, code)
		}
		return nil
	}
	_, err := rc.app.SetLanguage(rc.ctx, c.Code)
	return err
}

type themeCmd struct {
	Name string `arg:"" optional:"" help:"Theme name, e.g. light or dark."`
}

func (c *themeCmd) Run(rc *runContext) error {
	if c.Name == "" {
		current := rc.app.Theme.Current()
		for _, name := range rc.app.Theme.Available() {
			marker := " "
			if name == current {
				marker = "*"
			}
			fmt.Fprintf(rc.out, "%s %s\n", marker, rc.app.Theme.Palette().Accent.Render(name))
		}
		return nil
	}
	return rc.app.SetTheme(rc.ctx, strings.ToLower(strings.TrimSpace(c.Name)))
}
