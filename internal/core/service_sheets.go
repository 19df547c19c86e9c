package core

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bgeun31/nettools/internal/archive"
	"github.com/bgeun31/nettools/internal/extract"
	"github.com/bgeun31/nettools/internal/natsort"
	"github.com/bgeun31/nettools/internal/workbook"
)

// DistributeFormats are the accepted extensions for distributed logs.
var DistributeFormats = []string{"txt", "log"}

// MergeItem describes one log file turned into a sheet.
type MergeItem struct {
	Filename string `json:"filename"`
	Sheet    string `json:"sheet"`
	Lines    int    `json:"lines"`
}

// MergeResult holds logs ordered for merging into one workbook.
type MergeResult struct {
	Items []MergeItem
	lines [][]string
}

// Workbook writes one sheet per log with one line per row, named output
// (".xlsx" is enforced, default merged_logs.xlsx).
func (r *MergeResult) Workbook(output string) (*Output, error) {
	w := workbook.NewWriter()
	for i, item := range r.Items {
		rows := make([][]string, len(r.lines[i]))
		for j, line := range r.lines[i] {
			rows[j] = []string{line}
		}
		if _, err := w.AddStringSheet(item.Sheet, nil, rows); err != nil {
			w.Close()
			return nil, err
		}
	}
	if len(r.Items) == 0 {
		// A workbook needs at least one sheet.
		if _, err := w.AddSheet("Sheet", nil); err != nil {
			w.Close()
			return nil, err
		}
	}
	return workbookOutput(withExt(output, "merged_logs", ".xlsx"), w)
}

// Merge collects uploaded logs in natural file name order, one future
// sheet per log named after the file.
func (s *Service) Merge(ctx context.Context, files []File) (*MergeResult, error) {
	res := &MergeResult{}
	err := s.run(ctx, "merge", func(ctx context.Context, log *slog.Logger) error {
		docs, err := s.documents(ctx, log, files)
		if err != nil {
			return err
		}
		natsort.SliceStable(docs, func(i int) string { return extract.BaseName(docs[i].Name) })

		names := workbook.NewNames()
		for _, doc := range docs {
			lines := splitLines(doc.Text)
			res.Items = append(res.Items, MergeItem{
				Filename: doc.Name,
				Sheet:    names.Unique(stem(doc.Name)),
				Lines:    len(lines),
			})
			res.lines = append(res.lines, lines)
		}
		log.Info("logs merged", "sheets", len(res.Items))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// DistributeItem describes one sheet turned into a log file.
type DistributeItem struct {
	File          string `json:"file"`
	Sheet         string `json:"sheet"`
	OriginalSheet string `json:"original_sheet"`
	Lines         int    `json:"lines"`
}

// DistributeResult holds one log per workbook sheet.
type DistributeResult struct {
	Format string
	Items  []DistributeItem
	texts  []string
}

// Zip packs the logs into distributed-logs.zip.
func (r *DistributeResult) Zip() (*Output, error) {
	entries := make([]archive.Entry, len(r.Items))
	for i, item := range r.Items {
		entries[i] = archive.Entry{Name: item.File, Data: []byte(r.texts[i])}
	}
	return zipOutput("distributed-logs.zip", entries)
}

// NormalizeFormat returns format if it is one of DistributeFormats and
// "txt" otherwise.
func NormalizeFormat(format string) string {
	format = strings.ToLower(strings.TrimSpace(format))
	for _, f := range DistributeFormats {
		if format == f {
			return f
		}
	}
	return DistributeFormats[0]
}

// Distribute splits a workbook into one text file per sheet. Each row
// becomes one line of concatenated cells.
func (s *Service) Distribute(ctx context.Context, file File, format string) (*DistributeResult, error) {
	res := &DistributeResult{Format: NormalizeFormat(format)}
	err := s.run(ctx, "distribute", func(ctx context.Context, log *slog.Logger) error {
		book, err := readBook(file)
		if err != nil {
			return err
		}
		names := workbook.NewNames()
		for _, sh := range book.Sheets {
			safe := names.Unique(sh.Name)
			res.Items = append(res.Items, DistributeItem{
				File:          safe + "." + res.Format,
				Sheet:         safe,
				OriginalSheet: sh.Name,
				Lines:         len(sh.Rows),
			})
			res.texts = append(res.texts, sh.Text())
		}
		log.Info("workbook distributed", "file", file.Name, "sheets", len(res.Items), "format", res.Format)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// XSF renders one sheet of a workbook as an .xsf text file. An empty sheet
// name selects the first sheet. The output is named after filename, or
// the workbook when filename is empty.
func (s *Service) XSF(ctx context.Context, file File, sheet, filename string) (*Output, error) {
	var out *Output
	err := s.run(ctx, "xsf", func(ctx context.Context, log *slog.Logger) error {
		book, err := readBook(file)
		if err != nil {
			return err
		}
		if len(book.Sheets) == 0 {
			return ErrSheetNotFound
		}

		sh := book.Sheets[0]
		if sheet != "" {
			var ok bool
			if sh, ok = book.Sheet(sheet); !ok {
				return fmt.Errorf("%w: %q", ErrSheetNotFound, sheet)
			}
		}

		if filename == "" {
			filename = file.Name
		}
		out = &Output{
			Name:        withExt(filename, "output", ".xsf"),
			ContentType: "application/octet-stream",
			Data:        []byte(sh.Text()),
		}
		log.Info("xsf generated", "sheet", sh.Name, "lines", len(sh.Rows))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
