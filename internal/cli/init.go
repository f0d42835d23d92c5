// Package cli provides common CLI initialization utilities and wires the
// application's components together once at startup.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"

	"spendwise/internal/config"
	"spendwise/internal/events"
	"spendwise/internal/i18n"
	applog "spendwise/internal/log"
	"spendwise/internal/settings"
	"spendwise/internal/storage"
	"spendwise/internal/store"
	"spendwise/internal/theme"
	"spendwise/internal/view"
)

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// SetupLogger builds the application logger from cfg and makes it the
// slog default.
func SetupLogger(cfg *config.Config, out io.Writer) *applog.Logger {
	lc := applog.DefaultConfig()
	if level, err := applog.ParseLevel(cfg.LogLevel); err == nil {
		lc.Level = level
	}
	lc.Format = cfg.LogFormat
	if out != nil {
		lc.Output = out
	}
	logger := applog.New(lc)
	applog.SetDefault(logger)
	return logger
}

// LoadAndValidateConfig loads configuration from the environment and
// validates it.
func LoadAndValidateConfig() (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// App holds the components built at startup. Commands receive it instead of
// reaching for globals.
type App struct {
	Config     *config.Config
	Logger     *applog.Logger
	Bus        *events.Bus
	Settings   *settings.Settings
	Translator *i18n.Translator
	Theme      *theme.Manager
	Store      *store.Store
	LoadResult store.LoadResult

	closers []func() error
}

// NewApp opens the settings database and the data file and wires every
// component. The caller must Close the App.
func NewApp(ctx context.Context, cfg *config.Config, logger *applog.Logger) (*App, error) {
	if logger == nil {
		logger = applog.Discard()
	}
	log := logger.WithComponent(applog.ComponentApp)

	repo, err := storage.NewSQLiteRepository(cfg.SettingsPath, logger)
	if err != nil {
		return nil, fmt.Errorf("open settings: %w", err)
	}
	app := &App{
		Config:   cfg,
		Logger:   logger,
		Bus:      events.NewBus(),
		Settings: settings.New(repo),
		closers:  []func() error{repo.Close},
	}

	lang, err := app.Settings.Language(ctx)
	if err != nil {
		log.WarnContext(ctx, "Could not read language setting", applog.FieldError, err)
	}
	app.Translator = i18n.New(lang, app.Bus)

	themeName, err := app.Settings.Theme(ctx)
	if err != nil {
		log.WarnContext(ctx, "Could not read theme setting", applog.FieldError, err)
	}
	app.Theme = theme.New(theme.Builtin(), themeName, app.Bus, logger)

	st, res, err := store.Open(ctx, cfg.DataPath(), store.Options{
		Logger:            logger,
		Events:            app.Bus,
		Preferences:       app.Settings,
		Translator:        app.Translator,
		SaveRetries:       cfg.SaveRetries,
		SaveRetryInterval: cfg.SaveRetryInterval,
	})
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("open data store: %w", err)
	}
	app.Store = st
	app.LoadResult = res

	for _, topic := range []events.Topic{
		events.CurrencyChanged, events.LanguageChanged, events.ThemeChanged, events.TransactionsChanged,
	} {
		app.Bus.Subscribe(topic, func(e events.Event) {
			log.Debug("State changed", applog.FieldTopic, string(e.Topic), "value", e.Value)
		})
	}

	log.InfoContext(ctx, "Application ready",
		applog.FieldOperation, applog.OpStartup,
		applog.FieldPath, st.Path(),
		applog.FieldCount, st.Len(),
		applog.FieldSkipped, len(res.Skipped),
		applog.FieldLanguage, app.Translator.Language(),
		applog.FieldTheme, app.Theme.Current())

	return app, nil
}

// Renderer returns a view renderer for the current language, theme and
// currency symbol.
func (a *App) Renderer() view.Renderer {
	return view.Renderer{
		T:       a.Translator,
		Palette: a.Theme.Palette(),
		Symbol:  a.Store.DisplayCurrencySymbol(),
	}
}

// SetLanguage switches and persists the interface language.
func (a *App) SetLanguage(ctx context.Context, tag string) (bool, error) {
	changed, err := a.Translator.SetLanguage(tag)
	if err != nil || !changed {
		return changed, err
	}
	return true, a.Settings.SetLanguage(ctx, a.Translator.Language())
}

// SetTheme switches and persists the theme.
func (a *App) SetTheme(ctx context.Context, name string) error {
	if err := a.Theme.Apply(name); err != nil {
		return err
	}
	return a.Settings.SetTheme(ctx, name)
}

// Close releases the settings database.
func (a *App) Close() error {
	var result *multierror.Error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			result = multierror.Append(result, err)
		}
	}
	a.closers = nil
	return result.ErrorOrNil()
}

// Exit logs err and terminates the process with status 1.
func Exit(logger *applog.Logger, msg string, err error) {
	logger.Error(msg, applog.FieldError, err)
	os.Exit(1)
}
