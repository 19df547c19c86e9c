package lldp

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/bgeun31/nettools/internal/extract"
)

// DefaultBlacklist holds neighbor names that show up when a capture is cut
// mid-table.
var DefaultBlacklist = []string{"not-advertised", "sep", "up"}

var monthWords = map[string]struct{}{
	"january": {}, "february": {}, "march": {}, "april": {}, "may": {}, "june": {},
	"july": {}, "august": {}, "september": {}, "october": {}, "november": {}, "december": {},
	"jan": {}, "feb": {}, "mar": {}, "apr": {}, "jun": {}, "jul": {},
	"aug": {}, "sep": {}, "sept": {}, "oct": {}, "nov": {}, "dec": {},
}

// NoiseFilter rejects neighbor names that are artefacts of a broken capture
// rather than real devices. The zero value rejects nothing.
type NoiseFilter struct {
	blacklist map[string]struct{}
	months    bool
}

// NewNoiseFilter builds a filter from blacklist tokens (compared
// case-insensitively against the whole name) and an optional month-word check.
func NewNoiseFilter(blacklist []string, months bool) NoiseFilter {
	f := NoiseFilter{blacklist: make(map[string]struct{}, len(blacklist)), months: months}
	for _, tok := range blacklist {
		tok = strings.ToLower(strings.TrimSpace(tok))
		if tok != "" {
			f.blacklist[tok] = struct{}{}
		}
	}
	return f
}

// DefaultNoiseFilter returns the built-in blacklist with the month check on.
func DefaultNoiseFilter() NoiseFilter {
	return NewNoiseFilter(DefaultBlacklist, true)
}

// NoiseFilterFromRules applies rule-file overrides on top of the defaults.
func NoiseFilterFromRules(r extract.NoiseRules) NoiseFilter {
	blacklist := DefaultBlacklist
	if r.Blacklist != nil {
		blacklist = r.Blacklist
	}
	months := true
	if r.MonthFilter != nil {
		months = *r.MonthFilter
	}
	return NewNoiseFilter(blacklist, months)
}

// Reject reports whether name should not produce an adjacency.
// Month names are matched per alphabetic word, so "Sep-2024" is rejected
// but "Decoder01" is not.
func (f NoiseFilter) Reject(name string) bool {
	lower := strings.ToLower(strings.TrimSpace(name))
	if _, ok := f.blacklist[lower]; ok {
		return true
	}
	if !f.months {
		return false
	}
	for _, word := range strings.FieldsFunc(lower, func(r rune) bool { return !unicode.IsLetter(r) }) {
		if _, ok := monthWords[word]; ok {
			return true
		}
	}
	return false
}

var filterSplit = regexp.MustCompile(`[\n,]`)

// CompileFilters parses a comma or newline separated list of neighbor
// allow-patterns. "*" matches any sequence; an item that is not a valid
// regular expression is matched literally.
func CompileFilters(text string) []*regexp.Regexp {
	var out []*regexp.Regexp
	for _, item := range filterSplit.Split(text, -1) {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		re, err := regexp.Compile(strings.ReplaceAll(item, "*", ".*"))
		if err != nil {
			re = regexp.MustCompile(regexp.QuoteMeta(item))
		}
		out = append(out, re)
	}
	return out
}

func matchAny(patterns []*regexp.Regexp, s string) bool {
	if len(patterns) == 0 {
		return true
	}
	for _, re := range patterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

var (
	ouiDelimited = regexp.MustCompile(`([0-9A-Fa-f]{2})[:\-]([0-9A-Fa-f]{2})[:\-]([0-9A-Fa-f]{2})`)
	ouiCompact   = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)
	colonMAC     = regexp.MustCompile(`\b([0-9A-Fa-f]{2}(?::[0-9A-Fa-f]{2}){5})\b`)
)

// ParseOUIs reads one vendor prefix per line, written as AA:BB:CC, AA-BB-CC
// or AABBCC. Prefixes are returned as six upper-case hex digits, deduplicated
// in input order. Unrecognised lines are ignored.
func ParseOUIs(text string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var oui string
		if m := ouiDelimited.FindStringSubmatch(line); m != nil {
			oui = strings.ToUpper(m[1] + m[2] + m[3])
		} else if ouiCompact.MatchString(line) {
			oui = strings.ToUpper(line)
		} else {
			continue
		}
		if _, dup := seen[oui]; dup {
			continue
		}
		seen[oui] = struct{}{}
		out = append(out, oui)
	}
	return out
}

// CollectOUIs harvests the vendor prefix of every colon-separated MAC in
// text, sorted.
func CollectOUIs(text string) []string {
	seen := make(map[string]struct{})
	for _, mac := range colonMAC.FindAllString(text, -1) {
		seen[compactHex(mac[:8])] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for oui := range seen {
		out = append(out, oui)
	}
	sort.Strings(out)
	return out
}

// FormatOUI renders a compact prefix as AA:BB:CC.
func FormatOUI(oui string) string {
	if len(oui) != 6 {
		return oui
	}
	return oui[0:2] + ":" + oui[2:4] + ":" + oui[4:6]
}

func compactHex(s string) string {
	return strings.ToUpper(strings.NewReplacer(":", "", "-", "", ".", "").Replace(s))
}

func matchOUI(ouis []string, mac string) bool {
	if len(ouis) == 0 {
		return true
	}
	compact := compactHex(mac)
	for _, oui := range ouis {
		if strings.HasPrefix(compact, oui) {
			return true
		}
	}
	return false
}
