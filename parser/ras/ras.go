// Package ras parses the RAS text format: named lists of comma-separated,
// typed records.
//
// Format rules:
//
//	# comment            comment line, ignored
//	products-            opens the list "products"
//	a,"b, c",1,True      one record per line, quote-aware comma splitting
//	+                    closes the current list
//
// Fields coerce to one of four scalar kinds (bool, int, float, string)
// by lexical shape; there is no schema.
package ras

import (
	"io"
	"sort"
	"strings"
)

// Record is one data line of a list, in field order.
type Record []Value

// Store maps list names to their records. It is a plain value with no tie
// to the document it was parsed from; treat it as immutable once built.
type Store map[string][]Record

// Lists returns the list names in sorted order.
func (s Store) Lists() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Parse reads a RAS document from r. The only possible error comes from
// the reader itself; malformed input never fails, it just parses to
// whatever the format rules make of it.
func Parse(r io.Reader) (Store, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseString(string(data)), nil
}

// ParseString parses a RAS document held in memory. It is total: there is
// no input it can fail on. The whole document is split into lines up
// front, so line length is bounded only by input size.
func ParseString(doc string) Store {
	store := Store{}

	var name string
	var body []string

	// finalize stores the accumulated body under the current list name.
	// Lists that end up with no data lines are not stored, and a reopened
	// name overwrites the earlier list.
	finalize := func() {
		if name != "" && len(body) > 0 {
			store[name] = tokenizeBody(body)
		}
		body = nil
	}

	for _, line := range strings.Split(doc, "\n") {
		line = strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(line, "#"):
			// comment line

		case len(line) > 1 && strings.HasSuffix(line, "-") && !strings.HasPrefix(line, "+"):
			// Opening a new list implicitly closes the previous one.
			finalize()
			name = strings.TrimSuffix(line, "-")

		case line == "+":
			finalize()
			name = ""

		case name != "" && line != "":
			// Inline comments are cut before the line is accumulated.
			// This does not protect a # inside quotes; that is a known
			// limitation of the format.
			if i := strings.Index(line, "#"); i >= 0 {
				line = strings.TrimSpace(line[:i])
			}
			if line != "" {
				body = append(body, line)
			}
		}
	}

	// A list left open at end of input still counts.
	finalize()

	return store
}

func tokenizeBody(lines []string) []Record {
	records := make([]Record, 0, len(lines))
	for _, line := range lines {
		fields := splitFields(line)
		if len(fields) == 0 {
			continue
		}
		rec := make(Record, len(fields))
		for i, f := range fields {
			rec[i] = Coerce(f)
		}
		records = append(records, rec)
	}
	return records
}

// splitFields splits a record line on commas, treating double-quoted
// segments as opaque so a comma inside quotes is not a delimiter. The
// quotes stay in the raw field: Coerce needs them to tell a quoted "42"
// from the integer 42. Only whitespace after a delimiter is dropped;
// trailing whitespace belongs to the field.
func splitFields(line string) []string {
	if strings.TrimSpace(line) == "" {
		return nil
	}

	var fields []string
	var b strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			b.WriteRune(r)
		case r == ',' && !inQuotes:
			fields = append(fields, strings.TrimLeft(b.String(), " \t"))
			b.Reset()
		default:
			b.WriteRune(r)
		}
	}
	fields = append(fields, strings.TrimLeft(b.String(), " \t"))

	return fields
}
