package web

import (
	"net/http"
	"strings"

	"github.com/bgeun31/nettools/internal/core"
	"github.com/bgeun31/nettools/internal/extract"
	"github.com/bgeun31/nettools/internal/lldp"
	"github.com/bgeun31/nettools/internal/web/templates"
)

// handleExtractJSON returns one inventory record per uploaded log.
func (s *Server) handleExtractJSON(w http.ResponseWriter, r *http.Request) {
	res, ok := s.devices(w, r)
	if !ok {
		return
	}
	preview(w, r, res.Items(), templates.Table("Devices", extract.DeviceHeader, res.Rows()))
}

// handleExtractExcel downloads the inventory as extract.xlsx.
func (s *Server) handleExtractExcel(w http.ResponseWriter, r *http.Request) {
	res, ok := s.devices(w, r)
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

func (s *Server) devices(w http.ResponseWriter, r *http.Request) (*core.DeviceResult, bool) {
	if err := s.parseForm(w, r); err != nil {
		fail(w, r, err)
		return nil, false
	}
	files, err := s.formFiles(r, "files")
	if err != nil {
		fail(w, r, err)
		return nil, false
	}
	res, err := s.service.Devices(withJob(w, r), files)
	if err != nil {
		fail(w, r, err)
		return nil, false
	}
	return res, true
}

// handleLLDPPreview returns the adjacency table for one mode.
func (s *Server) handleLLDPPreview(mode core.LLDPMode) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, ok := s.lldp(w, r, mode)
		if !ok {
			return
		}
		preview(w, r, res, templates.Table("LLDP "+string(mode), lldp.Header, res.Rows()))
	}
}

// handleLLDPExcel downloads the adjacency table as lldp-<mode>.xlsx.
func (s *Server) handleLLDPExcel(mode core.LLDPMode) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, ok := s.lldp(w, r, mode)
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
}

func (s *Server) lldp(w http.ResponseWriter, r *http.Request, mode core.LLDPMode) (*core.LLDPResult, bool) {
	if err := s.parseForm(w, r); err != nil {
		fail(w, r, err)
		return nil, false
	}
	files, err := s.formFiles(r, "files")
	if err != nil {
		fail(w, r, err)
		return nil, false
	}

	req := core.LLDPRequest{Mode: mode, Files: files}
	req.StripPrefix, _ = formValue(r, "strip_prefix")
	switch mode {
	case core.LLDPHostname:
		req.Patterns, _ = formValue(r, "pattern")
	case core.LLDPOUI:
		if _, sent := formValue(r, "strip_prefix"); !sent {
			req.StripPrefix = s.cfg.Parse.OUIStripPrefix
		}
		req.OUIs, _ = formValue(r, "ouis")
		req.AutoDetect = formBool(r, "auto_detect", true)
	}
	req.StripPrefix = strings.TrimSpace(req.StripPrefix)

	res, err := s.service.LLDP(withJob(w, r), req)
	if err != nil {
		fail(w, r, err)
		return nil, false
	}
	return res, true
}
