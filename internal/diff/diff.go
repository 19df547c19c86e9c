// Package diff reports label and value differences between extracted tables.
//
// Two modes are supported. Cross mode compares one table against another.
// Symmetry mode compares a square adjacency table against its own
// transpose, reporting each mismatched pair once.
package diff

import (
	"sort"

	"github.com/bgeun31/nettools/internal/table"
)

// Kind tags a Record.
type Kind string

const (
	MissingRowInRight Kind = "missing_row_in_right"
	MissingRowInLeft  Kind = "missing_row_in_left"
	MissingColInRight Kind = "missing_col_in_right"
	MissingColInLeft  Kind = "missing_col_in_left"
	CellMismatch      Kind = "cell"
	Info              Kind = "info"
)

// Messages carried by Info records.
const (
	MsgNoDifferences = "No differences"
	MsgNoOtherSheet  = "No other sheet to compare"
	MsgNoSheets      = "No sheets to check"
)

// Placeholders rendered in the value columns of missing-label records.
const (
	rowExists = "<row exists>"
	colExists = "<col exists>"
	missing   = "<missing>"
)

// Record is one difference.
type Record struct {
	SheetLeft  string `json:"sheet_left"`
	SheetRight string `json:"sheet_right"`
	Kind       Kind   `json:"diff_type"`
	RowLabel   string `json:"row_label"`
	ColLabel   string `json:"col_label"`
	Left       string `json:"left"`
	Right      string `json:"right"`
	Message    string `json:"message,omitempty"`
}

// Header is the column order of exported records.
var Header = []string{"sheet_left", "sheet_right", "diff_type", "row_label", "col_label", "left", "right"}

// Row renders r in Header order. Info records put their message in the
// left column.
func (r Record) Row() []string {
	if r.Kind == Info {
		return []string{"", "", string(Info), "", "", r.Message, ""}
	}
	return []string{r.SheetLeft, r.SheetRight, string(r.Kind), r.RowLabel, r.ColLabel, r.Left, r.Right}
}

// InfoRecord returns an informational record.
func InfoRecord(msg string) Record {
	return Record{Kind: Info, Message: msg}
}

// Compare reports the differences between left and right: missing rows and
// columns on each side, then cell mismatches over the common labels. Every
// group is sorted by label.
func Compare(leftID string, left *table.Table, rightID string, right *table.Table) []Record {
	var out []Record
	add := func(kind Kind, row, col, l, r string) {
		out = append(out, Record{
			SheetLeft:  leftID,
			SheetRight: rightID,
			Kind:       kind,
			RowLabel:   row,
			ColLabel:   col,
			Left:       l,
			Right:      r,
		})
	}

	for _, r := range missingFrom(left.RowLabels, right.HasRow) {
		add(MissingRowInRight, r, "", rowExists, missing)
	}
	for _, r := range missingFrom(right.RowLabels, left.HasRow) {
		add(MissingRowInLeft, r, "", missing, rowExists)
	}
	for _, c := range missingFrom(left.ColLabels, right.HasCol) {
		add(MissingColInRight, "", c, colExists, missing)
	}
	for _, c := range missingFrom(right.ColLabels, left.HasCol) {
		add(MissingColInLeft, "", c, missing, colExists)
	}

	rows := common(left.RowLabels, right.HasRow)
	cols := common(left.ColLabels, right.HasCol)
	for _, r := range rows {
		for _, c := range cols {
			lv, rv := left.Value(r, c), right.Value(r, c)
			if !Equal(lv, rv) {
				add(CellMismatch, r, c, lv.String(), rv.String())
			}
		}
	}
	return out
}

// Symmetry checks t against its transpose. Labels present only as a row or
// only as a column are reported as missing rows; then each unordered pair
// (a, b) of shared labels with a < b is compared as (a,b) against (b,a).
func Symmetry(id string, t *table.Table) []Record {
	var out []Record
	add := func(kind Kind, row, col, l, r string) {
		out = append(out, Record{SheetLeft: id, SheetRight: id, Kind: kind, RowLabel: row, ColLabel: col, Left: l, Right: r})
	}

	for _, r := range missingFrom(t.RowLabels, t.HasCol) {
		add(MissingRowInRight, r, "", rowExists, missing)
	}
	for _, c := range missingFrom(t.ColLabels, t.HasRow) {
		add(MissingRowInLeft, c, "", missing, rowExists)
	}

	labels := common(t.RowLabels, t.HasCol)
	for i, a := range labels {
		for _, b := range labels[i+1:] {
			ab, ba := t.Value(a, b), t.Value(b, a)
			if !Equal(ab, ba) {
				add(CellMismatch, a, b, ab.String(), ba.String())
			}
		}
	}
	return out
}

// Sheet is a named table.
type Sheet struct {
	Name  string
	Table *table.Table
}

// CrossSheets compares the first sheet against every other sheet, in order.
// Fewer than two sheets yields a single info record.
func CrossSheets(sheets []Sheet) []Record {
	if len(sheets) < 2 {
		return []Record{InfoRecord(MsgNoOtherSheet)}
	}
	base := sheets[0]
	var out []Record
	for _, other := range sheets[1:] {
		out = append(out, Compare(base.Name, base.Table, other.Name, other.Table)...)
	}
	return Finalize(out)
}

// SymmetrySheets checks every sheet against its own transpose.
func SymmetrySheets(sheets []Sheet) []Record {
	if len(sheets) == 0 {
		return []Record{InfoRecord(MsgNoSheets)}
	}
	var out []Record
	for _, s := range sheets {
		out = append(out, Symmetry(s.Name, s.Table)...)
	}
	return Finalize(out)
}

// Finalize replaces an empty result with a single "No differences" record,
// so a consistent result is never confused with one that was not computed.
func Finalize(records []Record) []Record {
	if len(records) == 0 {
		return []Record{InfoRecord(MsgNoDifferences)}
	}
	return records
}

// IsInfo reports whether records is a single informational record.
func IsInfo(records []Record) bool {
	return len(records) == 1 && records[0].Kind == Info
}

func missingFrom(labels []string, has func(string) bool) []string {
	var out []string
	for _, l := range labels {
		if !has(l) {
			out = append(out, l)
		}
	}
	sort.Strings(out)
	return out
}

func common(labels []string, has func(string) bool) []string {
	var out []string
	for _, l := range labels {
		if has(l) {
			out = append(out, l)
		}
	}
	sort.Strings(out)
	return out
}
