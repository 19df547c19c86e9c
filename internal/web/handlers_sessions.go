package web

import (
	"net/http"

	"github.com/bgeun31/nettools/internal/core"
	"github.com/bgeun31/nettools/internal/securecrt"
	"github.com/bgeun31/nettools/internal/web/templates"
)

var sessionHeader = []string{"name", "ip", "output"}

func sessionRows(sessions []securecrt.Session) [][]string {
	rows := make([][]string, len(sessions))
	for i, s := range sessions {
		rows[i] = []string{s.Name, s.IP, s.File}
	}
	return rows
}

// handleSecureCRTHostsPreview lists the sessions a host list produces.
func (s *Server) handleSecureCRTHostsPreview(w http.ResponseWriter, r *http.Request) {
	res, ok := s.secureCRTHosts(w, r)
	if !ok {
		return
	}
	preview(w, r, res.Sessions, templates.Table("Sessions", sessionHeader, sessionRows(res.Sessions)))
}

// handleSecureCRTHostsGenerate downloads the sessions as securecrt-sessions.zip.
func (s *Server) handleSecureCRTHostsGenerate(w http.ResponseWriter, r *http.Request) {
	res, ok := s.secureCRTHosts(w, r)
	if !ok {
		return
	}
	sendSessions(w, r, res)
}

func (s *Server) secureCRTHosts(w http.ResponseWriter, r *http.Request) (*core.SessionResult, bool) {
	if err := s.parseForm(w, r); err != nil {
		fail(w, r, err)
		return nil, false
	}
	template, err := s.formFile(r, "template")
	if err != nil {
		fail(w, r, err)
		return nil, false
	}
	hostlist, err := s.formFile(r, "hostlist")
	if err != nil {
		fail(w, r, err)
		return nil, false
	}
	res, err := s.service.SecureCRTHosts(withJob(w, r), template, hostlist)
	if err != nil {
		fail(w, r, err)
		return nil, false
	}
	return res, true
}

// handleSecureCRTRangePreview lists the sessions an address range produces.
func (s *Server) handleSecureCRTRangePreview(w http.ResponseWriter, r *http.Request) {
	res, ok := s.secureCRTRange(w, r)
	if !ok {
		return
	}
	preview(w, r, res.Sessions, templates.Table("Sessions", sessionHeader, sessionRows(res.Sessions)))
}

// handleSecureCRTRangeGenerate downloads the sessions as securecrt-sessions.zip.
func (s *Server) handleSecureCRTRangeGenerate(w http.ResponseWriter, r *http.Request) {
	res, ok := s.secureCRTRange(w, r)
	if !ok {
		return
	}
	sendSessions(w, r, res)
}

func (s *Server) secureCRTRange(w http.ResponseWriter, r *http.Request) (*core.SessionResult, bool) {
	if err := s.parseForm(w, r); err != nil {
		fail(w, r, err)
		return nil, false
	}
	template, err := s.formFile(r, "template")
	if err != nil {
		fail(w, r, err)
		return nil, false
	}
	labels, err := s.formFile(r, "labels")
	if err != nil {
		fail(w, r, err)
		return nil, false
	}
	start, _ := formValue(r, "start_ip")
	end, _ := formValue(r, "end_ip")

	res, err := s.service.SecureCRTRange(withJob(w, r), template, labels, start, end)
	if err != nil {
		fail(w, r, err)
		return nil, false
	}
	return res, true
}

func sendSessions(w http.ResponseWriter, r *http.Request, res *core.SessionResult) {
	out, err := res.Zip()
	if err != nil {
		fail(w, r, err)
		return
	}
	sendOutput(w, r, out, "attachment")
}
