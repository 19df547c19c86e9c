// Package report renders workbook comparison results as a readable
// document: markdown first, then HTML through goldmark.
package report

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/bgeun31/nettools/internal/diff"
)

// Comparison describes one compare run.
type Comparison struct {
	Workbook string
	Mode     string
	Sheets   []string
	Records  []diff.Record
}

// Markdown renders c as a GFM document with a per-kind summary and a table
// of every record.
func Markdown(c Comparison) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Workbook comparison: %s\n\n", escape(c.Workbook))
	fmt.Fprintf(&b, "- Mode: **%s**\n", escape(c.Mode))
	fmt.Fprintf(&b, "- Sheets: %s\n\n", escape(strings.Join(c.Sheets, ", ")))

	if diff.IsInfo(c.Records) {
		fmt.Fprintf(&b, "> %s\n", escape(c.Records[0].Message))
		return b.String()
	}

	counts := make(map[diff.Kind]int)
	for _, r := range c.Records {
		counts[r.Kind]++
	}
	kinds := make([]string, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, string(k))
	}
	sort.Strings(kinds)

	b.WriteString("## Summary\n\n| Type | Count |\n|---|---:|\n")
	for _, k := range kinds {
		fmt.Fprintf(&b, "| %s | %d |\n", escape(k), counts[diff.Kind(k)])
	}
	fmt.Fprintf(&b, "| **total** | **%d** |\n\n", len(c.Records))

	b.WriteString("## Differences\n\n")
	b.WriteString("| " + strings.Join(diff.Header, " | ") + " |\n")
	b.WriteString(strings.Repeat("|---", len(diff.Header)) + "|\n")
	for _, r := range c.Records {
		cells := r.Row()
		for i := range cells {
			cells[i] = escape(cells[i])
		}
		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}
	return b.String()
}

// HTML renders c to an HTML fragment.
func HTML(c Comparison) ([]byte, error) {
	var buf bytes.Buffer
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := md.Convert([]byte(Markdown(c)), &buf); err != nil {
		return nil, fmt.Errorf("markdown convert: %w", err)
	}
	return buf.Bytes(), nil
}

// Page wraps the rendered fragment in a minimal standalone document.
func Page(c Comparison) ([]byte, error) {
	body, err := HTML(c)
	if err != nil {
		return nil, err
	}
	var page bytes.Buffer
	page.WriteString("<!doctype html><html><head><meta charset='utf-8'><title>Workbook comparison</title>")
	page.WriteString("<style>body{font-family:sans-serif;max-width:1100px;margin:1rem auto;padding:0 1rem}" +
		"table{border-collapse:collapse;width:100%;font-size:.85rem}" +
		"th,td{border:1px solid #bbb;padding:.3rem .45rem;text-align:left}" +
		"thead th{background:#f1f5f9}</style></head><body>")
	page.Write(body)
	page.WriteString("</body></html>")
	return page.Bytes(), nil
}

var mdEscaper = strings.NewReplacer(
	`\`, `\\`,
	"|", `\|`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"<", "&lt;",
	">", "&gt;",
	"[", `\[`,
	"]", `\]`,
	"\r", "",
	"\n", " ",
)

func escape(s string) string {
	return mdEscaper.Replace(s)
}
