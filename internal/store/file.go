package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"spendwise/internal/core"
)

// documentKey holds the transaction array. Other top-level keys are ignored.
const documentKey = "transactions"

// recordFields are the keys every stored transaction must carry, matched
// exactly, in the order they are checked.
var recordFields = []string{"id", "date", "description", "type", "amount", "category"}

type outRecord struct {
	ID          string      `json:"id"`
	Date        string      `json:"date"`
	Description string      `json:"description"`
	Type        string      `json:"type"`
	Amount      json.Number `json:"amount"`
	Category    string      `json:"category"`
}

// readFile loads the data file. A missing file yields no transactions and no
// error. Bad records are returned in skipped and left out of txs.
func readFile(path string) (txs []core.Transaction, skipped []*RecordError, err error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("decode: %w", err)
	}
	var records []json.RawMessage
	if raw, ok := doc[documentKey]; ok {
		if err := json.Unmarshal(raw, &records); err != nil {
			return nil, nil, fmt.Errorf("decode %s: %w", documentKey, err)
		}
	}

	txs = make([]core.Transaction, 0, len(records))
	for i, raw := range records {
		t, err := decodeRecord(raw)
		if err != nil {
			skipped = append(skipped, &RecordError{Index: i, ID: t.ID, Err: err})
			continue
		}
		txs = append(txs, t)
	}
	return txs, skipped, nil
}

// decodeRecord parses one record. On error the returned transaction carries
// whatever id could be read, for reporting. A null value counts as missing.
func decodeRecord(raw json.RawMessage) (core.Transaction, error) {
	var rec map[string]json.RawMessage
	if err := json.Unmarshal(raw, &rec); err != nil {
		return core.Transaction{}, fmt.Errorf("decode record: %w", err)
	}

	var partial core.Transaction
	if v, ok := rec["id"]; ok {
		_ = json.Unmarshal(v, &partial.ID)
	}

	for _, name := range recordFields {
		if v, ok := rec[name]; !ok || bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			return partial, fmt.Errorf("%w %q", ErrMissingField, name)
		}
	}

	var (
		id, date, description, typ, category string
		amount                               decimal.Decimal
	)
	targets := []struct {
		name string
		dst  any
	}{
		{"id", &id},
		{"date", &date},
		{"description", &description},
		{"type", &typ},
		{"amount", &amount},
		{"category", &category},
	}
	for _, f := range targets {
		if err := json.Unmarshal(rec[f.name], f.dst); err != nil {
			return partial, fmt.Errorf("field %q: %w", f.name, err)
		}
	}

	d, err := core.ParseDate(date)
	if err != nil {
		return partial, fmt.Errorf("date %q: %w", date, err)
	}

	return core.Transaction{
		ID:          id,
		Date:        d,
		Description: description,
		Type:        core.TransactionType(typ),
		Amount:      amount,
		Category:    category,
	}, nil
}

// encode renders the whole store: 4-space indent, non-ASCII and HTML
// characters written verbatim.
func encode(txs []core.Transaction) ([]byte, error) {
	out := struct {
		Transactions []outRecord `json:"transactions"`
	}{Transactions: make([]outRecord, 0, len(txs))}

	for _, t := range txs {
		out.Transactions = append(out.Transactions, outRecord{
			ID:          t.ID,
			Date:        t.Date.String(),
			Description: t.Description,
			Type:        string(t.Type),
			Amount:      json.Number(t.Amount.String()),
			Category:    t.Category,
		})
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(out); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeFile replaces path with data via a temp file in the same directory,
// so a failed write never leaves a truncated data file behind.
func writeFile(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace data file: %w", err)
	}
	return nil
}
