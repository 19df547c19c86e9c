// Package extract pulls named fields out of captured device output using
// ordered lists of regular expressions.
//
// A PatternSet maps a field name to patterns that are tried in declared
// order; the first pattern that captures a non-empty value wins. There is no
// scoring. Pattern sets are immutable once built and are passed to the code
// that uses them rather than living in package state.
package extract

import (
	"fmt"
	"regexp"
	"sort"
)

// Field names understood by the default pattern set.
const (
	FieldSysname    = "sysname"
	FieldSerial     = "serial"
	FieldModel      = "model"
	FieldImage      = "image"
	FieldIP         = "ip"
	FieldFilenameIP = "filename_ip"
)

// Limits on user-supplied pattern definitions.
const (
	maxPatternLength    = 1000
	maxPatternsPerField = 50
)

// dottedQuad matches an IPv4-looking token. Octet ranges are not validated;
// device output is trusted to contain real addresses.
const dottedQuad = `\d{1,3}(?:\.\d{1,3}){3}`

// DefaultDefinitions returns the built-in pattern definitions.
// The returned map is a fresh copy and may be modified by the caller.
func DefaultDefinitions() map[string][]string {
	return map[string][]string{
		FieldSysname: {
			`SysName\s*:\s*(.+)`,
			`sysName\s+"(\S+)"`,
			`(?m)^hostname\s+(\S+)`,
		},
		FieldSerial: {
			`Serial#\s*:\s*(.+)`,
			`Switch\s*:\s*\S+\s+(\S+)`,
			`(?i)System serial number\s*:\s*(\S+)`,
		},
		FieldModel: {
			`ModelName\s*:\s*(.+)`,
			`Chassis\s*:\s*(.+)`,
			`System Type\s*:\s*(.+)`,
		},
		FieldImage: {
			`Image\s*:\s*(.+)`,
			`Primary ver\s*:\s*(.+)`,
			`System image file is "([^"]+)"`,
		},
		// Checked in order: management-labelled line, "ip address" line,
		// CIDR-annotated token, generic "ip:"/"address:" token.
		FieldIP: {
			`(?im)^.*\b(?:management|mgmt)\b.*?\b(` + dottedQuad + `)\b`,
			`(?i)\bip\s+address\s*[:=]?\s*(` + dottedQuad + `)\b`,
			`\b(` + dottedQuad + `)/\d{1,2}\b`,
			`(?i)\b(?:ip|address)\s*[:=]\s*(` + dottedQuad + `)\b`,
		},
		FieldFilenameIP: {
			`^(` + dottedQuad + `)_`,
		},
	}
}

// PatternSet holds compiled, ordered patterns per field.
type PatternSet struct {
	fields map[string][]*regexp.Regexp
}

// NewPatternSet compiles definitions into a PatternSet.
// Every pattern must compile; the first failure is returned.
func NewPatternSet(defs map[string][]string) (*PatternSet, error) {
	ps := &PatternSet{fields: make(map[string][]*regexp.Regexp, len(defs))}

	for field, exprs := range defs {
		if len(exprs) > maxPatternsPerField {
			return nil, fmt.Errorf("field %q: %d patterns exceeds limit of %d", field, len(exprs), maxPatternsPerField)
		}
		compiled := make([]*regexp.Regexp, 0, len(exprs))
		for i, expr := range exprs {
			if len(expr) > maxPatternLength {
				return nil, fmt.Errorf("field %q pattern %d: length %d exceeds limit of %d", field, i, len(expr), maxPatternLength)
			}
			re, err := regexp.Compile(expr)
			if err != nil {
				return nil, fmt.Errorf("field %q pattern %d: %w", field, i, err)
			}
			if re.NumSubexp() > 1 {
				return nil, fmt.Errorf("field %q pattern %d: at most one capture group allowed", field, i)
			}
			compiled = append(compiled, re)
		}
		ps.fields[field] = compiled
	}

	return ps, nil
}

// MustDefault returns the compiled default pattern set.
// It panics if a built-in pattern fails to compile.
func MustDefault() *PatternSet {
	ps, err := NewPatternSet(DefaultDefinitions())
	if err != nil {
		panic(fmt.Sprintf("extract: default patterns: %v", err))
	}
	return ps
}

// Patterns returns the ordered patterns for a field, or nil.
func (ps *PatternSet) Patterns(field string) []*regexp.Regexp {
	if ps == nil {
		return nil
	}
	return ps.fields[field]
}

// Fields returns the configured field names in sorted order.
func (ps *PatternSet) Fields() []string {
	names := make([]string, 0, len(ps.fields))
	for name := range ps.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Extract applies the patterns of field to text.
// An unknown field yields a not-found Value.
func (ps *PatternSet) Extract(field, text string) Value {
	return First(ps.Patterns(field), text)
}
