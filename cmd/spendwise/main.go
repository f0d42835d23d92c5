package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"spendwise/internal/cli"
	"spendwise/internal/events"
	applog "spendwise/internal/log"
)

// runContext is bound into every command's Run method.
type runContext struct {
	ctx context.Context
	app *cli.App
	out io.Writer
}

func (rc *runContext) say(key string) {
	fmt.Fprintln(rc.out, rc.app.Translator.Translate(key))
}

// commands is the command-line grammar.
type commands struct {
	Add        addCmd        `cmd:"" help:"Record an income or expense."`
	Edit       editCmd       `cmd:"" help:"Change fields of a transaction."`
	Delete     deleteCmd     `cmd:"" help:"Delete a transaction."`
	Show       showCmd       `cmd:"" help:"Show one transaction."`
	List       listCmd       `cmd:"" default:"withargs" help:"List transactions, newest first."`
	Balance    balanceCmd    `cmd:"" help:"Show income minus expenses."`
	Stats      statsCmd      `cmd:"" help:"Show expenses broken down by category."`
	Categories categoriesCmd `cmd:"" help:"List category keys."`
	Seed       seedCmd       `cmd:"" help:"Add two demo transactions."`
	Currency   currencyCmd   `cmd:"" help:"Show or change the currency symbol."`
	Language   languageCmd   `cmd:"" help:"Show or change the interface language."`
	Theme      themeCmd      `cmd:"" help:"Show or change the color theme."`
}

func parserOptions() []kong.Option {
	return []kong.Option{
		kong.Name("spendwise"),
		kong.Description("Personal income and expense tracker."),
		kong.UsageOnError(),
	}
}

func main() {
	var grammar commands
	kctx := kong.Parse(&grammar, parserOptions()...)

	cli.LoadEnvFile()

	cfg, err := cli.LoadAndValidateConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := cli.SetupLogger(cfg, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		cli.Exit(logger, "Failed to start", err)
	}
	defer app.Close()

	rc := &runContext{ctx: ctx, app: app, out: os.Stdout}
	reportLoad(rc)
	watchChanges(rc)

	if err := kctx.Run(rc); err != nil {
		logger.WithComponent(applog.ComponentCLI).Error("Command failed",
			"command", kctx.Command(), applog.FieldError, err)
		app.Close()
		kctx.FatalIfErrorf(err)
	}
}

// reportLoad tells the user about records that could not be read.
func reportLoad(rc *runContext) {
	res := rc.app.LoadResult
	if res.Err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v; starting with no transactions\n", res.Err)
	}
	for _, rec := range res.Skipped {
		fmt.Fprintf(os.Stderr, "warning: %v\n", rec)
	}
}

// watchChanges prints the status line for each setting change.
func watchChanges(rc *runContext) {
	rc.app.Bus.Subscribe(events.CurrencyChanged, func(events.Event) { rc.say("currency_updated_status") })
	rc.app.Bus.Subscribe(events.LanguageChanged, func(events.Event) { rc.say("language_changed") })
	rc.app.Bus.Subscribe(events.ThemeChanged, func(events.Event) { rc.say("theme_changed") })
}
