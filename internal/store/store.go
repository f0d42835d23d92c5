// Package store owns the transaction list: it loads the JSON data file once,
// rewrites it after every change, and answers filter and summary queries.
package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/shopspring/decimal"

	"spendwise/internal/core"
	"spendwise/internal/events"
	applog "spendwise/internal/log"
)

// DataFileName is the data file inside the application data directory.
const DataFileName = "spendwise_data.json"

// Preferences persists the user's currency symbol outside the data file.
type Preferences interface {
	CurrencySymbol(ctx context.Context) (symbol string, ok bool, err error)
	SetCurrencySymbol(ctx context.Context, symbol string) error
}

// Translator supplies the language's default currency symbol.
type Translator interface {
	Translate(key string) string
}

// Options wires the store's collaborators. Nil fields get no-op defaults.
type Options struct {
	Logger            *applog.Logger
	Events            events.Publisher
	Preferences       Preferences
	Translator        Translator
	SaveRetries       int
	SaveRetryInterval time.Duration
}

type Store struct {
	mu         sync.Mutex
	path       string
	items      []core.Transaction
	userSymbol string

	prefs         Preferences
	translator    Translator
	bus           events.Publisher
	logger        *applog.Logger
	retries       int
	retryInterval time.Duration
}

// Open makes sure the data file's directory exists, loads the file and the
// saved currency symbol. Problems with the file itself are reported in the
// LoadResult and leave the store empty; only a directory that can't be
// created is an error.
func Open(ctx context.Context, path string, opts Options) (*Store, LoadResult, error) {
	if opts.Logger == nil {
		opts.Logger = applog.Discard()
	}
	if opts.Events == nil {
		opts.Events = events.Nop{}
	}
	if opts.SaveRetryInterval <= 0 {
		opts.SaveRetryInterval = 50 * time.Millisecond
	}
	if opts.SaveRetries < 0 {
		opts.SaveRetries = 0
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, LoadResult{}, fmt.Errorf("create data directory: %w", err)
	}

	s := &Store{
		path:          path,
		prefs:         opts.Preferences,
		translator:    opts.Translator,
		bus:           opts.Events,
		logger:        opts.Logger.WithComponent(applog.ComponentStore),
		retries:       opts.SaveRetries,
		retryInterval: opts.SaveRetryInterval,
	}

	if s.prefs != nil {
		sym, ok, err := s.prefs.CurrencySymbol(ctx)
		if err != nil {
			s.logger.WarnContext(ctx, "Could not read currency preference, using language default", applog.FieldError, err)
		} else if ok {
			s.userSymbol = sym
		}
	}

	return s, s.Load(), nil
}

// Path returns the data file location.
func (s *Store) Path() string {
	return s.path
}

// Load replaces the in-memory list with the file's contents. A missing file
// means no transactions. An unreadable or corrupt file empties the list.
func (s *Store) Load() LoadResult {
	txs, skipped, err := readFile(s.path)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.items = nil
		ioErr := &IOError{Op: applog.OpLoad, Path: s.path, Err: err}
		s.logger.Error("Error loading data, starting with empty data",
			applog.FieldOperation, applog.OpLoad,
			applog.FieldPath, s.path, applog.FieldError, err)
		return LoadResult{Err: ioErr}
	}

	for _, rec := range skipped {
		s.logger.Warn("Skipping unreadable transaction",
			applog.FieldOperation, applog.OpParse,
			applog.FieldRecordIndex, rec.Index,
			applog.FieldTransactionID, rec.ID,
			applog.FieldError, rec.Err)
	}

	s.items = txs
	s.logger.Debug("Loaded transactions",
		applog.FieldPath, s.path,
		applog.FieldCount, len(txs),
		applog.FieldSkipped, len(skipped))

	return LoadResult{Loaded: len(txs), Skipped: skipped}
}

// Save rewrites the data file with the full list.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

func (s *Store) saveLocked() error {
	data, err := encode(s.items)
	if err != nil {
		return &IOError{Op: applog.OpSave, Path: s.path, Err: err}
	}

	attempt := 0
	op := func() error {
		attempt++
		return writeFile(s.path, data)
	}
	policy := backoff.WithMaxRetries(backoff.NewConstantBackOff(s.retryInterval), uint64(s.retries))
	notify := func(err error, wait time.Duration) {
		s.logger.Warn("Saving data failed, retrying",
			applog.FieldAttempt, attempt,
			applog.FieldError, err,
			"retry_in", wait)
	}

	if err := backoff.RetryNotify(op, policy, notify); err != nil {
		s.logger.Error("Error saving data",
			applog.FieldPath, s.path,
			applog.FieldAttempt, attempt,
			applog.FieldError, err)
		return &IOError{Op: applog.OpSave, Path: s.path, Err: err}
	}
	return nil
}

// Add appends t and saves. The transaction stays in memory even if the save
// fails.
func (s *Store) Add(t core.Transaction) error {
	s.mu.Lock()
	s.items = append(s.items, t)
	err := s.saveLocked()
	s.mu.Unlock()

	s.logger.Info("Transaction added", applog.NewFields().
		WithOperation(applog.OpCreate).
		WithTransaction(t.ID, string(t.Type), t.Category, t.Amount.String()).
		ToSlice()...)
	s.publish(t.ID)
	return err
}

// Edit replaces the first transaction with the given id. It reports false,
// without writing the file, when there is no such transaction. The id itself
// never changes.
func (s *Store) Edit(id string, updated core.Transaction) (bool, error) {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return false, nil
	}
	updated.ID = id
	s.items[idx] = updated
	err := s.saveLocked()
	s.mu.Unlock()

	s.logger.Info("Transaction updated", applog.NewFields().
		WithOperation(applog.OpUpdate).
		WithTransaction(id, string(updated.Type), updated.Category, updated.Amount.String()).
		ToSlice()...)
	s.publish(id)
	return true, err
}

// Delete removes every transaction with the given id and saves, even when
// nothing matched. It returns how many were removed.
func (s *Store) Delete(id string) (int, error) {
	s.mu.Lock()
	kept := s.items[:0:0]
	for _, t := range s.items {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	removed := len(s.items) - len(kept)
	s.items = kept
	err := s.saveLocked()
	s.mu.Unlock()

	if removed > 0 {
		s.logger.Info("Transaction deleted",
			applog.FieldOperation, applog.OpDelete,
			applog.FieldTransactionID, id,
			applog.FieldCount, removed)
		s.publish(id)
	}
	return removed, err
}

// Get returns the first transaction with the given id.
func (s *Store) Get(id string) (core.Transaction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.indexLocked(id); idx >= 0 {
		return s.items[idx], true
	}
	return core.Transaction{}, false
}

func (s *Store) indexLocked(id string) int {
	for i, t := range s.items {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Transactions returns the transactions matching f in stored order. A zero
// filter returns everything. The slice is always a fresh copy.
func (s *Store) Transactions(f core.Filter) []core.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f.IsZero() {
		return append(make([]core.Transaction, 0, len(s.items)), s.items...)
	}
	return f.Apply(s.items)
}

// Len returns the number of stored transactions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Balance is income minus expenses over the whole store.
func (s *Store) Balance() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return core.Balance(s.items)
}

// ExpensesByCategory totals expenses per category over txs, or over the
// whole store when txs is nil.
func (s *Store) ExpensesByCategory(txs []core.Transaction) map[string]decimal.Decimal {
	if txs == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		return core.ExpensesByCategory(s.items)
	}
	return core.ExpensesByCategory(txs)
}

// CategoryKeys returns the income, expense, or combined category keys.
func (s *Store) CategoryKeys(typeFilter string) []string {
	return core.CategoryKeys(typeFilter)
}

// UserCurrencySymbol returns the symbol the user picked, if any.
func (s *Store) UserCurrencySymbol() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userSymbol, s.userSymbol != ""
}

// SetUserCurrencySymbol persists symbol (empty clears it) and publishes
// CurrencyChanged once it is stored.
func (s *Store) SetUserCurrencySymbol(ctx context.Context, symbol string) error {
	symbol = strings.TrimSpace(symbol)
	if s.prefs != nil {
		if err := s.prefs.SetCurrencySymbol(ctx, symbol); err != nil {
			s.logger.ErrorContext(ctx, "Could not save currency preference",
				applog.FieldSymbol, symbol, applog.FieldError, err)
			return err
		}
	}

	s.mu.Lock()
	s.userSymbol = symbol
	s.mu.Unlock()

	s.bus.Publish(events.Event{Topic: events.CurrencyChanged, Value: symbol})
	return nil
}

// DisplayCurrencySymbol is the user's symbol, or the current language's
// default.
func (s *Store) DisplayCurrencySymbol() string {
	if sym, ok := s.UserCurrencySymbol(); ok {
		return sym
	}
	if s.translator == nil {
		return ""
	}
	return s.translator.Translate("currency_symbol")
}

func (s *Store) publish(id string) {
	s.bus.Publish(events.Event{Topic: events.TransactionsChanged, Value: id})
}
