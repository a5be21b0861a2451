// Copyright (c) 2026 The SmokeRand Authors

// Package custombattery parses spec.md §4.6's file-driven battery
// format: a line-oriented, record-terminated grammar of test
// definitions. No third-party parser library in the retrieval pack
// fits a bespoke whitespace/key=value/end-terminated grammar this
// small, so the parser stays on bufio/strings/strconv — the correct
// "no suitable library" case (see DESIGN.md).
package custombattery

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/smokerand/smokerand/battery"
)

// ParseError reports a malformed record, tagged with its source line.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("custombattery: line %d: %s", e.Line, e.Msg)
}

// record is one `name key=value... end` block with its token line.
type record struct {
	line   int
	name   string
	fields map[string]string
}

// Parse reads a custom battery file from r and returns the Battery it
// describes. A `battery name=<label> end` record sets the returned
// Battery's Name (a later one replaces an earlier one; with none, the
// Name is "custom"); every other record names a test
// from smoketests and is handed to that test's sub-parser in
// parsers.go.
func Parse(r io.Reader) (battery.Battery, error) {
	records, err := scanRecords(r)
	if err != nil {
		return battery.Battery{}, err
	}

	b := battery.Battery{Name: "custom"}
	for _, rec := range records {
		if rec.name == "battery" {
			if label, ok := rec.fields["name"]; ok {
				b.Name = label
			}
			continue
		}

		parse, ok := testParsers[rec.name]
		if !ok {
			return battery.Battery{}, &ParseError{Line: rec.line, Msg: fmt.Sprintf("unknown test name %q", rec.name)}
		}
		test, err := parse(rec.fields)
		if err != nil {
			if pe, ok := err.(*ParseError); ok && pe.Line == 0 {
				pe.Line = rec.line
			}
			return battery.Battery{}, err
		}
		b.Tests = append(b.Tests, test)
	}
	return b, nil
}

// scanRecords tokenizes r into records: each non-blank, non-comment
// line contributes whitespace-delimited tokens to the record in
// progress, until the literal token "end" closes it.
func scanRecords(r io.Reader) ([]record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var records []record
	var cur *record
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		fields := strings.Fields(line)
		for _, tok := range fields {
			if tok == "end" {
				if cur == nil {
					return nil, &ParseError{Line: lineNo, Msg: "unexpected 'end' with no open record"}
				}
				records = append(records, *cur)
				cur = nil
				continue
			}
			if cur == nil {
				cur = &record{line: lineNo, name: tok, fields: map[string]string{}}
				continue
			}
			key, val, ok := strings.Cut(tok, "=")
			if !ok {
				return nil, &ParseError{Line: lineNo, Msg: fmt.Sprintf("expected key=value token, got %q", tok)}
			}
			cur.fields[key] = val
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if cur != nil {
		return nil, &ParseError{Line: cur.line, Msg: fmt.Sprintf("record %q missing terminating 'end'", cur.name)}
	}
	return records, nil
}

// parseInt parses an integer field, stripping '_' digit separators.
func parseInt(fields map[string]string, key string) (int, bool, error) {
	raw, ok := fields[key]
	if !ok {
		return 0, false, nil
	}
	cleaned := strings.ReplaceAll(raw, "_", "")
	v, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0, true, &ParseError{Msg: fmt.Sprintf("key %q: invalid integer %q", key, raw)}
	}
	return v, true, nil
}

func requireInt(fields map[string]string, key string) (int, error) {
	v, ok, err := parseInt(fields, key)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, &ParseError{Msg: fmt.Sprintf("missing required key %q", key)}
	}
	return v, nil
}

func parseFloat(fields map[string]string, key string) (float64, bool, error) {
	raw, ok := fields[key]
	if !ok {
		return 0, false, nil
	}
	cleaned := strings.ReplaceAll(raw, "_", "")
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, true, &ParseError{Msg: fmt.Sprintf("key %q: invalid number %q", key, raw)}
	}
	return v, true, nil
}

func requireFloat(fields map[string]string, key string) (float64, error) {
	v, ok, err := parseFloat(fields, key)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, &ParseError{Msg: fmt.Sprintf("missing required key %q", key)}
	}
	return v, nil
}
