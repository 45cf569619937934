package ras

import (
	"errors"
	"fmt"
	"os"
)

var (
	// ErrListNotFound reports a lookup against a list name the store
	// does not contain.
	ErrListNotFound = errors.New("list not found")

	// ErrIndexOutOfRange reports a record or field index outside the
	// valid bounds.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Get returns the field at the given position. The record and field
// indexes are zero-based.
func (s Store) Get(list string, record, field int) (Value, error) {
	records, ok := s[list]
	if !ok {
		return Value{}, fmt.Errorf("list %q: %w", list, ErrListNotFound)
	}
	if record < 0 || record >= len(records) {
		return Value{}, fmt.Errorf("record %d in list %q: %w", record, list, ErrIndexOutOfRange)
	}
	rec := records[record]
	if field < 0 || field >= len(rec) {
		return Value{}, fmt.Errorf("field %d in record %d of list %q: %w", field, record, list, ErrIndexOutOfRange)
	}
	return rec[field], nil
}

// Load reads and parses a RAS file.
func Load(path string) (Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseString(string(data)), nil
}

// GetFile reads and parses path, then looks up a single field. Callers
// doing repeated lookups should Load once and use Store.Get instead.
func GetFile(path, list string, record, field int) (Value, error) {
	store, err := Load(path)
	if err != nil {
		return Value{}, err
	}
	return store.Get(list, record, field)
}
