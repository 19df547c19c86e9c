package core

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bgeun31/nettools/internal/diff"
	"github.com/bgeun31/nettools/internal/report"
	"github.com/bgeun31/nettools/internal/table"
	"github.com/bgeun31/nettools/internal/workbook"
)

// CompareMode selects what a workbook is compared against.
type CompareMode string

const (
	// CompareCross compares the first sheet against every other sheet.
	CompareCross CompareMode = "cross"
	// CompareSymmetry checks each sheet against its own transpose.
	CompareSymmetry CompareMode = "symmetry"
)

// MismatchSheet is the sheet holding diff records in the export.
const MismatchSheet = "mismatches"

// ParseCompareMode accepts "cross", "symmetry" or "" (cross).
func ParseCompareMode(s string) (CompareMode, error) {
	switch CompareMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", CompareCross:
		return CompareCross, nil
	case CompareSymmetry:
		return CompareSymmetry, nil
	}
	return "", fmt.Errorf("%w %q", ErrInvalidMode, s)
}

// CompareResult is the diff of one workbook.
type CompareResult struct {
	Source   string
	Mode     CompareMode
	Sheets   []workbook.Sheet
	Records  []diff.Record
}

// SheetNames lists the compared sheets in tab order.
func (r *CompareResult) SheetNames() []string {
	names := make([]string, len(r.Sheets))
	for i, s := range r.Sheets {
		names[i] = s.Name
	}
	return names
}

// Rows renders the records in diff.Header order.
func (r *CompareResult) Rows() [][]string {
	out := make([][]string, len(r.Records))
	for i, rec := range r.Records {
		out[i] = rec.Row()
	}
	return out
}

// Workbook exports the records to a mismatches sheet, followed by an
// orig_<name> copy of every input sheet.
func (r *CompareResult) Workbook() (*Output, error) {
	w := workbook.NewWriter()
	if _, err := w.AddStringSheet(MismatchSheet, diff.Header, r.Rows()); err != nil {
		w.Close()
		return nil, err
	}
	for _, s := range r.Sheets {
		if _, err := w.AddGridSheet("orig_"+s.Name, s.Rows); err != nil {
			w.Close()
			return nil, err
		}
	}
	return workbookOutput("excel-compare.xlsx", w)
}

// Report renders the records as a standalone HTML page.
func (r *CompareResult) Report() (*Output, error) {
	page, err := report.Page(report.Comparison{
		Workbook: r.Source,
		Mode:     string(r.Mode),
		Sheets:   r.SheetNames(),
		Records:  r.Records,
	})
	if err != nil {
		return nil, err
	}
	return &Output{
		Name:        withExt(r.Source, "excel-compare", "-report.html"),
		ContentType: "text/html; charset=utf-8",
		Data:        page,
	}, nil
}

// Compare reads an uploaded workbook, extracts a labelled table from each
// sheet and diffs them according to mode.
func (s *Service) Compare(ctx context.Context, file File, mode CompareMode) (*CompareResult, error) {
	if len(file.Data) == 0 {
		return nil, ErrNoFiles
	}
	if mode == "" {
		mode = CompareCross
	}

	var res *CompareResult
	err := s.run(ctx, "compare", func(ctx context.Context, log *slog.Logger) error {
		book, err := readBook(file)
		if err != nil {
			return err
		}

		sheets := make([]diff.Sheet, len(book.Sheets))
		for i, sh := range book.Sheets {
			sheets[i] = diff.Sheet{Name: sh.Name, Table: table.Extract(sh.Grid())}
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		var records []diff.Record
		switch mode {
		case CompareCross:
			records = diff.CrossSheets(sheets)
		case CompareSymmetry:
			records = diff.SymmetrySheets(sheets)
		default:
			return fmt.Errorf("%w %q", ErrInvalidMode, mode)
		}

		res = &CompareResult{Source: file.Name, Mode: mode, Sheets: book.Sheets, Records: records}
		log.Info("workbook compared",
			"file", file.Name,
			"mode", mode,
			"sheets", len(sheets),
			"differences", differences(records),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func differences(records []diff.Record) int {
	if diff.IsInfo(records) {
		return 0
	}
	return len(records)
}

func readBook(file File) (*workbook.Book, error) {
	if len(file.Data) == 0 {
		return nil, ErrNoFiles
	}
	book, err := workbook.Read(bytes.NewReader(file.Data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", file.Name, ErrInvalidWorkbook, err)
	}
	return book, nil
}
