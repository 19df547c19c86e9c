// Package templates renders the HTML fragments returned to HTMX requests.
package templates

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// Table renders a preview table. Rows shorter than the header are padded;
// an empty result shows a single muted row.
func Table(caption string, header []string, rows [][]string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var err error
		write := func(s string) {
			if err == nil {
				_, err = io.WriteString(w, s)
			}
		}

		write(`<div class="preview"><table class="min-w-full text-sm">`)
		if caption != "" {
			write(`<caption class="text-left font-semibold">` + templ.EscapeString(caption) + `</caption>`)
		}
		write(`<thead><tr>`)
		for _, h := range header {
			write(`<th>` + templ.EscapeString(h) + `</th>`)
		}
		write(`</tr></thead><tbody>`)
		if len(rows) == 0 {
			write(`<tr><td class="text-gray-500" colspan="` + strconv.Itoa(max(len(header), 1)) + `">No rows</td></tr>`)
		}
		for _, row := range rows {
			write(`<tr>`)
			for i := range header {
				cell := ""
				if i < len(row) {
					cell = row[i]
				}
				write(`<td>` + templ.EscapeString(cell) + `</td>`)
			}
			write(`</tr>`)
		}
		write(`</tbody></table></div>`)
		return err
	})
}

// ErrorAlert renders a user-facing error with its support code.
func ErrorAlert(message, action, code string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<div class="alert alert-error" role="alert"><p class="font-semibold">%s</p><p>%s</p><p class="text-xs">Code: %s</p></div>`,
			templ.EscapeString(message), templ.EscapeString(action), templ.EscapeString(code))
		return err
	})
}
