// Package settings holds user preferences that live outside the transaction
// data file: interface language, theme and the currency display symbol.
package settings

import (
	"context"
	"fmt"
	"strings"
)

// Keys in the settings store.
const (
	KeyLanguage       = "language"
	KeyTheme          = "theme"
	KeyCurrencySymbol = "user_currency_symbol"
)

// Defaults used when a key is absent.
const (
	DefaultLanguage = "en"
	DefaultTheme    = "light"
)

// Repository is a persistent key-value store.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks -source=settings.go Repository
type Repository interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Settings gives typed access to preferences with their defaults.
type Settings struct {
	repo Repository
}

func New(repo Repository) *Settings {
	return &Settings{repo: repo}
}

// Language returns the saved language code, or DefaultLanguage.
func (s *Settings) Language(ctx context.Context) (string, error) {
	return s.getOr(ctx, KeyLanguage, DefaultLanguage)
}

func (s *Settings) SetLanguage(ctx context.Context, lang string) error {
	return s.set(ctx, KeyLanguage, lang)
}

// Theme returns the saved theme name, or DefaultTheme.
func (s *Settings) Theme(ctx context.Context) (string, error) {
	return s.getOr(ctx, KeyTheme, DefaultTheme)
}

func (s *Settings) SetTheme(ctx context.Context, theme string) error {
	return s.set(ctx, KeyTheme, theme)
}

// CurrencySymbol returns the user's chosen symbol; ok is false when none is set.
func (s *Settings) CurrencySymbol(ctx context.Context) (symbol string, ok bool, err error) {
	v, ok, err := s.repo.Get(ctx, KeyCurrencySymbol)
	if err != nil {
		return "", false, fmt.Errorf("read %s: %w", KeyCurrencySymbol, err)
	}
	if !ok || strings.TrimSpace(v) == "" {
		return "", false, nil
	}
	return v, true, nil
}

// SetCurrencySymbol stores the symbol; an empty symbol clears the preference.
func (s *Settings) SetCurrencySymbol(ctx context.Context, symbol string) error {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		if err := s.repo.Delete(ctx, KeyCurrencySymbol); err != nil {
			return fmt.Errorf("clear %s: %w", KeyCurrencySymbol, err)
		}
		return nil
	}
	return s.set(ctx, KeyCurrencySymbol, symbol)
}

func (s *Settings) getOr(ctx context.Context, key, def string) (string, error) {
	v, ok, err := s.repo.Get(ctx, key)
	if err != nil {
		return def, fmt.Errorf("read %s: %w", key, err)
	}
	if !ok || v == "" {
		return def, nil
	}
	return v, nil
}

func (s *Settings) set(ctx context.Context, key, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s cannot be empty", key)
	}
	if err := s.repo.Set(ctx, key, value); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
