package extract

import (
	"regexp"
	"strings"
)

// NotFound is the display text used when a field was not found.
const NotFound = "N/A"

// Value is the result of extracting one field.
// The zero Value means "not found", which is distinct from a found value
// whose text happens to be empty.
type Value struct {
	Text  string
	Found bool
}

// Found returns a found Value holding s.
func Found(s string) Value {
	return Value{Text: s, Found: true}
}

// Or returns the text if found, else def.
func (v Value) Or(def string) string {
	if v.Found {
		return v.Text
	}
	return def
}

// String renders the value with the NotFound sentinel for missing fields.
func (v Value) String() string {
	return v.Or(NotFound)
}

// First returns the first non-empty capture of the first matching pattern,
// trimmed of surrounding whitespace. Patterns without a capture group
// contribute their whole match. Empty text, no patterns, or no match yields a
// not-found Value; malformed input never causes an error.
func First(patterns []*regexp.Regexp, text string) Value {
	if text == "" {
		return Value{}
	}
	for _, re := range patterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		capture := m[0]
		if len(m) > 1 {
			capture = m[1]
		}
		if s := strings.TrimSpace(capture); s != "" {
			return Found(s)
		}
	}
	return Value{}
}
