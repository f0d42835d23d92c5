package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spendwise/internal/config"
	"spendwise/internal/core"
	"spendwise/internal/theme"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		Organization:      config.DefaultOrganization,
		Application:       config.DefaultApplication,
		DataDir:           dir,
		DataFile:          config.DefaultDataFile,
		SettingsPath:      filepath.Join(dir, config.DefaultSettingsFile),
		LogLevel:          "error",
		LogFormat:         "text",
		SaveRetries:       0,
		SaveRetryInterval: 0,
	}
}

func TestNewAppDefaults(t *testing.T) {
	app, err := NewApp(context.Background(), testConfig(t), nil)
	require.NoError(t, err)
	defer app.Close()

	assert.Equal(t, "en", app.Translator.Language())
	assert.Equal(t, theme.Light, app.Theme.Current())
	assert.Equal(t, 0, app.Store.Len())
	assert.True(t, app.LoadResult.Clean())
	assert.Equal(t, "$", app.Renderer().Symbol)
}

func TestPreferencesSurviveRestart(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)

	app, err := NewApp(ctx, cfg, nil)
	require.NoError(t, err)

	changed, err := app.SetLanguage(ctx, "ar-SA")
	require.NoError(t, err)
	assert.True(t, changed)
	require.NoError(t, app.SetTheme(ctx, theme.Dark))
	assert.ErrorIs(t, app.SetTheme(ctx, "neon"), theme.ErrUnknownTheme)
	require.NoError(t, app.Close())

	app, err = NewApp(ctx, cfg, nil)
	require.NoError(t, err)
	defer app.Close()

	assert.Equal(t, "ar", app.Translator.Language())
	assert.Equal(t, theme.Dark, app.Theme.Current())
	assert.Equal(t, "ر.س", app.Store.DisplayCurrencySymbol())
}

func TestCurrencyChoiceSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)

	app, err := NewApp(ctx, cfg, nil)
	require.NoError(t, err)
	require.NoError(t, app.Store.SetUserCurrencySymbol(ctx, "€"))
	require.NoError(t, app.Close())

	app, err = NewApp(ctx, cfg, nil)
	require.NoError(t, err)
	defer app.Close()

	sym, ok := app.Store.UserCurrencySymbol()
	assert.True(t, ok)
	assert.Equal(t, "€", sym)
}

func TestNewAppReportsCorruptDataFile(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(cfg.DataPath(), []byte("{not json"), 0o644))

	app, err := NewApp(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer app.Close()

	assert.Error(t, app.LoadResult.Err)
	assert.Equal(t, 0, app.Store.Len())

	amt, err := core.ParseAmount("3.20")
	require.NoError(t, err)
	require.NoError(t, app.Store.Add(core.NewTransaction(core.Today(), "Coffee", core.Expense, amt, "food")))
	assert.Equal(t, 1, app.Store.Len())
}

func TestLoadAndValidateConfig(t *testing.T) {
	t.Setenv("SPENDWISE_DATA_DIR", t.TempDir())
	t.Setenv("SPENDWISE_SETTINGS_DB", "")
	t.Setenv("SAVE_RETRIES", "2")

	cfg, err := LoadAndValidateConfig()
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.SaveRetries)
	assert.Equal(t, filepath.Join(cfg.DataDir, config.DefaultSettingsFile), cfg.SettingsPath)
}
