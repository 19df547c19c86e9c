package workbook

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/bgeun31/nettools/internal/table"
)

const (
	maxSheetName     = 31
	defaultSheetName = "Sheet"
)

var invalidSheetChars = regexp.MustCompile(`[\\/*?:\[\]]`)

// SanitizeName strips characters not allowed in sheet names and truncates
// to 31 characters. An empty result becomes "Sheet".
func SanitizeName(name string) string {
	name = strings.Trim(invalidSheetChars.ReplaceAllString(name, ""), "'")
	name = truncate(name, maxSheetName)
	if name == "" {
		return defaultSheetName
	}
	return name
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// Names hands out sanitized sheet names that are unique within one
// workbook. Previews use it so their tab names match the exported file.
type Names struct {
	used map[string]struct{}
}

// NewNames returns an empty allocator.
func NewNames() *Names {
	return &Names{used: make(map[string]struct{})}
}

// Unique sanitizes name and appends _1, _2, ... until it does not clash
// with a name already handed out, shortening the base so the result stays
// within 31 characters. Names compare case-insensitively.
func (n *Names) Unique(name string) string {
	base := SanitizeName(name)
	candidate := base
	for i := 1; ; i++ {
		if _, taken := n.used[strings.ToLower(candidate)]; !taken {
			n.used[strings.ToLower(candidate)] = struct{}{}
			return candidate
		}
		suffix := "_" + strconv.Itoa(i)
		candidate = truncate(base, maxSheetName-len(suffix)) + suffix
	}
}

// Writer builds a workbook sheet by sheet.
type Writer struct {
	f     *excelize.File
	alloc *Names
	names []string
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{f: excelize.NewFile(), alloc: NewNames()}
}

// AddSheet writes rows to a new sheet and returns the name actually used.
// Values may be strings, numbers, booleans or nil.
func (w *Writer) AddSheet(name string, rows [][]any) (string, error) {
	name = w.alloc.Unique(name)

	if len(w.names) == 0 {
		// Reuse the sheet excelize creates with a new file.
		if err := w.f.SetSheetName(w.f.GetSheetName(0), name); err != nil {
			return "", fmt.Errorf("rename sheet: %w", err)
		}
	} else if _, err := w.f.NewSheet(name); err != nil {
		return "", fmt.Errorf("create sheet %q: %w", name, err)
	}
	w.names = append(w.names, name)

	sw, err := w.f.NewStreamWriter(name)
	if err != nil {
		return "", fmt.Errorf("stream sheet %q: %w", name, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return "", err
		}
		if err := sw.SetRow(cell, row); err != nil {
			return "", fmt.Errorf("write sheet %q row %d: %w", name, i+1, err)
		}
	}
	if err := sw.Flush(); err != nil {
		return "", fmt.Errorf("flush sheet %q: %w", name, err)
	}
	return name, nil
}

// AddStringSheet writes a header row followed by string rows.
func (w *Writer) AddStringSheet(name string, header []string, rows [][]string) (string, error) {
	out := make([][]any, 0, len(rows)+1)
	if header != nil {
		out = append(out, stringsToAny(header))
	}
	for _, row := range rows {
		out = append(out, stringsToAny(row))
	}
	return w.AddSheet(name, out)
}

// AddGridSheet copies a sheet's values. Numbers whose text round-trips are
// written as numbers; anything else, including "007", stays text.
func (w *Writer) AddGridSheet(name string, rows [][]string) (string, error) {
	out := make([][]any, len(rows))
	for i, row := range rows {
		out[i] = make([]any, len(row))
		for j, s := range row {
			if s == "" {
				continue
			}
			c := table.ParseCell(s)
			if c.Kind == table.Number && !math.IsNaN(c.Num) && strconv.FormatFloat(c.Num, 'f', -1, 64) == s {
				out[i][j] = c.Num
			} else {
				out[i][j] = s
			}
		}
	}
	return w.AddSheet(name, out)
}

// SheetNames returns the sheets written so far.
func (w *Writer) SheetNames() []string {
	return append([]string(nil), w.names...)
}

// WriteTo serializes the workbook.
func (w *Writer) WriteTo(out io.Writer) (int64, error) {
	return w.f.WriteTo(out)
}

// Bytes serializes the workbook into memory.
func (w *Writer) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := w.f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// Close releases temporary resources held by the writer.
func (w *Writer) Close() error {
	return w.f.Close()
}

func stringsToAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
