package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound marks an unknown transaction id. The store's own lookups
	// report absence with a bool; front ends wrap this when they need an error.
	ErrNotFound = errors.New("transaction not found")

	ErrMissingField = errors.New("missing field")
)

// RecordError describes one record in the data file that could not be
// loaded. The record is skipped; the rest of the file still loads.
type RecordError struct {
	Index int    // position in the "transactions" array
	ID    string // empty when the record had no usable id
	Err   error
}

func (e *RecordError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("record %d (id %s): %v", e.Index, e.ID, e.Err)
	}
	return fmt.Sprintf("record %d: %v", e.Index, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// IOError is a failed read or write of the data file. On load the store
// starts empty; on save the in-memory state is kept.
type IOError struct {
	Op   string // "load" or "save"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// LoadResult reports what happened while loading the data file.
type LoadResult struct {
	Loaded  int
	Skipped []*RecordError
	// Err is set when the file existed but could not be read or parsed.
	Err error
}

// Clean reports whether every record loaded without problems.
func (r LoadResult) Clean() bool {
	return r.Err == nil && len(r.Skipped) == 0
}
