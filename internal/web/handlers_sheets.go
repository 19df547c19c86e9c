package web

import (
	"net/http"
	"strconv"

	"github.com/bgeun31/nettools/internal/core"
	"github.com/bgeun31/nettools/internal/diff"
	"github.com/bgeun31/nettools/internal/web/templates"
)

var (
	mergeHeader      = []string{"filename", "sheet", "lines"}
	distributeHeader = []string{"file", "sheet", "original_sheet", "lines"}
)

// handleComparePreview returns the diff records of the uploaded workbook.
func (s *Server) handleComparePreview(w http.ResponseWriter, r *http.Request) {
	res, ok := s.compare(w, r)
	if !ok {
		return
	}
	preview(w, r, res.Records, templates.Table(res.Source, diff.Header, res.Rows()))
}

// handleCompareExcel downloads the mismatches with copies of the inputs.
func (s *Server) handleCompareExcel(w http.ResponseWriter, r *http.Request) {
	res, ok := s.compare(w, r)
	if !ok {
		return
	}
	out, err := res.Workbook()
	if err != nil {
		fail(w, r, err)
		return
	}
	sendOutput(w, r, out, "attachment")
}

// handleCompareReport renders the comparison as an HTML page.
func (s *Server) handleCompareReport(w http.ResponseWriter, r *http.Request) {
	res, ok := s.compare(w, r)
	if !ok {
		return
	}
	out, err := res.Report()
	if err != nil {
		fail(w, r, err)
		return
	}
	sendOutput(w, r, out, "inline")
}

func (s *Server) compare(w http.ResponseWriter, r *http.Request) (*core.CompareResult, bool) {
	if err := s.parseForm(w, r); err != nil {
		fail(w, r, err)
		return nil, false
	}
	modeValue, _ := formValue(r, "mode")
	mode, err := core.ParseCompareMode(modeValue)
	if err != nil {
		fail(w, r, err)
		return nil, false
	}
	file, err := s.formFile(r, "excel")
	if err != nil {
		fail(w, r, err)
		return nil, false
	}
	res, err := s.service.Compare(withJob(w, r), file, mode)
	if err != nil {
		fail(w, r, err)
		return nil, false
	}
	return res, true
}

// handleMergePreview lists the sheet each log will become.
func (s *Server) handleMergePreview(w http.ResponseWriter, r *http.Request) {
	res, ok := s.merge(w, r)
	if !ok {
		return
	}
	rows := make([][]string, len(res.Items))
	for i, it := range res.Items {
		rows[i] = []string{it.Filename, it.Sheet, strconv.Itoa(it.Lines)}
	}
	preview(w, r, res.Items, templates.Table("Merge", mergeHeader, rows))
}

// handleMergeExcel downloads the merged workbook, named by output_name.
func (s *Server) handleMergeExcel(w http.ResponseWriter, r *http.Request) {
	res, ok := s.merge(w, r)
	if !ok {
		return
	}
	name, _ := formValue(r, "output_name")
	out, err := res.Workbook(name)
	if err != nil {
		fail(w, r, err)
		return
	}
	sendOutput(w, r, out, "attachment")
}

func (s *Server) merge(w http.ResponseWriter, r *http.Request) (*core.MergeResult, bool) {
	if err := s.parseForm(w, r); err != nil {
		fail(w, r, err)
		return nil, false
	}
	files, err := s.formFiles(r, "files")
	if err != nil {
		fail(w, r, err)
		return nil, false
	}
	res, err := s.service.Merge(withJob(w, r), files)
	if err != nil {
		fail(w, r, err)
		return nil, false
	}
	return res, true
}

// handleDistributePreview lists the log file each sheet will become.
func (s *Server) handleDistributePreview(w http.ResponseWriter, r *http.Request) {
	res, ok := s.distribute(w, r)
	if !ok {
		return
	}
	rows := make([][]string, len(res.Items))
	for i, it := range res.Items {
		rows[i] = []string{it.File, it.Sheet, it.OriginalSheet, strconv.Itoa(it.Lines)}
	}
	preview(w, r, res.Items, templates.Table("Distribute", distributeHeader, rows))
}

// handleDistributeZip downloads one log per sheet as distributed-logs.zip.
func (s *Server) handleDistributeZip(w http.ResponseWriter, r *http.Request) {
	res, ok := s.distribute(w, r)
	if !ok {
		return
	}
	out, err := res.Zip()
	if err != nil {
		fail(w, r, err)
		return
	}
	sendOutput(w, r, out, "attachment")
}

func (s *Server) distribute(w http.ResponseWriter, r *http.Request) (*core.DistributeResult, bool) {
	if err := s.parseForm(w, r); err != nil {
		fail(w, r, err)
		return nil, false
	}
	file, err := s.formFile(r, "excel")
	if err != nil {
		fail(w, r, err)
		return nil, false
	}
	format, _ := formValue(r, "format")
	res, err := s.service.Distribute(withJob(w, r), file, format)
	if err != nil {
		fail(w, r, err)
		return nil, false
	}
	return res, true
}

// handleXSF converts one sheet to an .xsf text file.
func (s *Server) handleXSF(w http.ResponseWriter, r *http.Request) {
	if err := s.parseForm(w, r); err != nil {
		fail(w, r, err)
		return
	}
	file, err := s.formFile(r, "excel")
	if err != nil {
		fail(w, r, err)
		return
	}
	sheet, _ := formValue(r, "sheet")
	filename, _ := formValue(r, "filename")

	out, err := s.service.XSF(withJob(w, r), file, sheet, filename)
	if err != nil {
		fail(w, r, err)
		return
	}
	sendOutput(w, r, out, "attachment")
}
