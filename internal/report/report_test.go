package report

import (
	"strings"
	"testing"

	"github.com/bgeun31/nettools/internal/diff"
)

func TestHTML_Differences(t *testing.T) {
	c := Comparison{
		Workbook: "links.xlsx",
		Mode:     "cross",
		Sheets:   []string{"A", "B"},
		Records: []diff.Record{
			{SheetLeft: "A", SheetRight: "B", Kind: diff.CellMismatch, RowLabel: "sw|1", ColLabel: "p1", Left: "<b>", Right: "2"},
			{SheetLeft: "A", SheetRight: "B", Kind: diff.MissingRowInRight, RowLabel: "r2"},
		},
	}

	out, err := HTML(c)
	if err != nil {
		t.Fatalf("HTML() error = %v", err)
	}
	html := string(out)

	for _, want := range []string{"<table>", "<td>cell</td>", "sw|1", "&lt;b&gt;", "<strong>total</strong>"} {
		if !strings.Contains(html, want) {
			t.Errorf("output missing %q:\n%s", want, html)
		}
	}
	if strings.Contains(html, "<b>") {
		t.Error("cell text must not inject markup")
	}
}

func TestMarkdown_InfoOnly(t *testing.T) {
	md := Markdown(Comparison{Workbook: "x.xlsx", Mode: "symmetry", Records: diff.Finalize(nil)})
	if !strings.Contains(md, "> No differences") {
		t.Errorf("Markdown() = %q", md)
	}
	if strings.Contains(md, "## Differences") {
		t.Error("info-only report should not render a table")
	}
}

func TestPage(t *testing.T) {
	out, err := Page(Comparison{Workbook: "x", Mode: "cross", Records: diff.Finalize(nil)})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(out), "<!doctype html>") || !strings.HasSuffix(string(out), "</html>") {
		t.Errorf("Page() = %q", out)
	}
}
