// Package workbook reads and writes .xlsx containers.
//
// Reading yields each sheet as raw string rows plus a typed table.Grid;
// writing takes rows of scalar values per sheet and takes care of sheet
// naming rules.
package workbook

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/bgeun31/nettools/internal/table"
)

// ContentType is the media type of an .xlsx body.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Sheet is one worksheet's raw cell text. Rows may be ragged; trailing
// empty cells and rows are not present.
type Sheet struct {
	Name string
	Rows [][]string
}

// Grid returns the sheet as a typed grid.
func (s Sheet) Grid() table.Rows {
	return table.FromStrings(s.Rows)
}

// Lines renders each row as one line with its cells concatenated.
func (s Sheet) Lines() []string {
	lines := make([]string, len(s.Rows))
	for i, row := range s.Rows {
		lines[i] = strings.Join(row, "")
	}
	return lines
}

// Text joins Lines with "\n".
func (s Sheet) Text() string {
	return strings.Join(s.Lines(), "\n")
}

// Book is a workbook's sheets in tab order.
type Book struct {
	Sheets []Sheet
}

// Sheet returns the sheet with the given name.
func (b *Book) Sheet(name string) (Sheet, bool) {
	for _, s := range b.Sheets {
		if s.Name == name {
			return s, true
		}
	}
	return Sheet{}, false
}

// Read loads every sheet of the workbook in r. Cell values are read raw,
// so numbers keep the text stored in the file rather than a display format.
func Read(r io.Reader) (*Book, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	book := &Book{}
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", name, err)
		}
		book.Sheets = append(book.Sheets, Sheet{Name: name, Rows: rows})
	}
	return book, nil
}
