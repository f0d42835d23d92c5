package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"

	applog "spendwise/internal/log"
)

type Config struct {
	// Application identity, used for the data directory
	Organization string
	Application  string

	// Storage
	DataDir      string
	DataFile     string
	SettingsPath string

	// Logging
	LogLevel  string
	LogFormat string

	// Save retry
	SaveRetries       int
	SaveRetryInterval time.Duration
}

const (
	DefaultOrganization = "SpendWiseOrg"
	DefaultApplication  = "SpendWise"
	DefaultDataFile     = "spendwise_data.json"
	DefaultSettingsFile = "settings.db"
)

func Load() *Config {
	cfg := &Config{
		Organization: getEnv("SPENDWISE_ORG", DefaultOrganization),
		Application:  getEnv("SPENDWISE_APP", DefaultApplication),

		DataFile: getEnv("SPENDWISE_DATA_FILE", DefaultDataFile),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		SaveRetries:       getEnvInt("SAVE_RETRIES", 3),
		SaveRetryInterval: getEnvDuration("SAVE_RETRY_INTERVAL", 50*time.Millisecond),
	}

	cfg.DataDir = getEnv("SPENDWISE_DATA_DIR", "")
	if cfg.DataDir == "" {
		if base, err := AppDataDir(); err == nil {
			cfg.DataDir = filepath.Join(base, cfg.Organization, cfg.Application)
		}
	}
	cfg.SettingsPath = getEnv("SPENDWISE_SETTINGS_DB", "")
	if cfg.SettingsPath == "" && cfg.DataDir != "" {
		cfg.SettingsPath = filepath.Join(cfg.DataDir, DefaultSettingsFile)
	}

	return cfg
}

// DataPath is the full path of the transaction data file.
func (c *Config) DataPath() string {
	if filepath.IsAbs(c.DataFile) {
		return c.DataFile
	}
	return filepath.Join(c.DataDir, c.DataFile)
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var result *multierror.Error

	if strings.TrimSpace(c.Organization) == "" {
		result = multierror.Append(result, fmt.Errorf("organization name cannot be empty"))
	}
	if strings.TrimSpace(c.Application) == "" {
		result = multierror.Append(result, fmt.Errorf("application name cannot be empty"))
	}

	if c.DataDir == "" {
		result = multierror.Append(result, fmt.Errorf("data directory could not be determined: set SPENDWISE_DATA_DIR"))
	}
	if strings.TrimSpace(c.DataFile) == "" {
		result = multierror.Append(result, fmt.Errorf("data file name cannot be empty"))
	} else if !strings.EqualFold(filepath.Ext(c.DataFile), ".json") {
		result = multierror.Append(result, fmt.Errorf("invalid data file '%s': must have a .json extension", c.DataFile))
	}
	if c.SettingsPath == "" {
		result = multierror.Append(result, fmt.Errorf("settings database path cannot be empty"))
	} else if c.DataFile != "" && filepath.Clean(c.SettingsPath) == filepath.Clean(c.DataPath()) {
		result = multierror.Append(result, fmt.Errorf("settings database must not be the data file"))
	}

	if _, err := applog.ParseLevel(c.LogLevel); err != nil {
		result = multierror.Append(result, fmt.Errorf("invalid log level '%s': must be one of [debug info warn error]", c.LogLevel))
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		result = multierror.Append(result, fmt.Errorf("invalid log format '%s': must be text or json", c.LogFormat))
	}

	if c.SaveRetries < 0 || c.SaveRetries > 10 {
		result = multierror.Append(result, fmt.Errorf("invalid save retries %d: must be between 0 and 10", c.SaveRetries))
	}
	if c.SaveRetryInterval < 0 || c.SaveRetryInterval > 5*time.Second {
		result = multierror.Append(result, fmt.Errorf("invalid save retry interval %v: must be between 0 and 5s", c.SaveRetryInterval))
	}

	if result != nil {
		result.ErrorFormat = func(errs []error) string {
			msgs := make([]string, len(errs))
			for i, err := range errs {
				msgs[i] = err.Error()
			}
			return "configuration validation failed:\n- " + strings.Join(msgs, "\n- ")
		}
	}
	return result.ErrorOrNil()
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
