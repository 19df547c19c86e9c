// Package natsort orders identifiers the way people expect: embedded digit
// runs compare by magnitude, so "host2" sorts before "host10".
package natsort

import (
	"math/big"
	"sort"
	"strings"
	"unicode"
)

// part is one run of a key: either all digits or no digits.
type part struct {
	text    string
	num     *big.Int
	numeric bool
}

// Key is the composite sort key of an identifier.
type Key []part

// MakeKey splits s into alternating digit and non-digit runs.
// Text runs are lowercased; digit runs are parsed as integers of any length.
func MakeKey(s string) Key {
	var key Key
	runes := []rune(s)
	for i := 0; i < len(runes); {
		j := i
		digit := unicode.IsDigit(runes[i])
		for j < len(runes) && unicode.IsDigit(runes[j]) == digit {
			j++
		}
		run := string(runes[i:j])
		if digit {
			n, ok := new(big.Int).SetString(run, 10)
			if ok {
				key = append(key, part{text: run, num: n, numeric: true})
			} else {
				key = append(key, part{text: run})
			}
		} else {
			key = append(key, part{text: strings.ToLower(run)})
		}
		i = j
	}
	return key
}

// Compare returns -1, 0 or +1.
// A digit run sorts before a text run at the same position.
func (k Key) Compare(o Key) int {
	for i := 0; i < len(k) && i < len(o); i++ {
		a, b := k[i], o[i]
		switch {
		case a.numeric && b.numeric:
			if c := a.num.Cmp(b.num); c != 0 {
				return c
			}
		case a.numeric:
			return -1
		case b.numeric:
			return 1
		default:
			if c := strings.Compare(a.text, b.text); c != 0 {
				return c
			}
		}
	}
	switch {
	case len(k) < len(o):
		return -1
	case len(k) > len(o):
		return 1
	}
	return 0
}

// Less reports whether a sorts before b in natural order.
func Less(a, b string) bool {
	return MakeKey(a).Compare(MakeKey(b)) < 0
}

// Strings sorts a copy of ss in natural order and returns it.
func Strings(ss []string) []string {
	out := append([]string(nil), ss...)
	SliceStable(out, func(i int) string { return out[i] })
	return out
}

// SliceStable sorts slice in natural order of the key returned by keyOf.
// Elements with equal keys keep their original relative order.
// Keys are computed once per element before sorting.
func SliceStable[T any](slice []T, keyOf func(i int) string) {
	type keyed struct {
		key Key
		val T
	}
	tmp := make([]keyed, len(slice))
	for i := range slice {
		tmp[i] = keyed{key: MakeKey(keyOf(i)), val: slice[i]}
	}
	sort.SliceStable(tmp, func(i, j int) bool {
		return tmp[i].key.Compare(tmp[j].key) < 0
	})
	for i := range tmp {
		slice[i] = tmp[i].val
	}
}
