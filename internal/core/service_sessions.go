package core

import (
	"context"
	"log/slog"
	"strings"

	"github.com/bgeun31/nettools/internal/securecrt"
)

// SessionResult is a set of SecureCRT sessions rendered from one template.
type SessionResult struct {
	Sessions []securecrt.Session
	template string
}

// Zip packs one .ini per session into securecrt-sessions.zip.
func (r *SessionResult) Zip() (*Output, error) {
	return zipOutput("securecrt-sessions.zip", securecrt.Files(r.template, r.Sessions))
}

// SecureCRTHosts builds sessions from a "name ip" host list.
func (s *Service) SecureCRTHosts(ctx context.Context, template, hostlist File) (*SessionResult, error) {
	var res *SessionResult
	err := s.run(ctx, "securecrt_hosts", func(ctx context.Context, log *slog.Logger) error {
		tmpl, err := decodeTemplate(template)
		if err != nil {
			return err
		}
		sessions := securecrt.ParseHostList(DecodeText(hostlist.Data))
		res = &SessionResult{Sessions: sessions, template: tmpl}
		log.Info("sessions rendered", "source", "hostlist", "sessions", len(sessions))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// SecureCRTRange builds one session per address from start to end, naming
// them with the label lines in order.
func (s *Service) SecureCRTRange(ctx context.Context, template, labels File, start, end string) (*SessionResult, error) {
	var res *SessionResult
	err := s.run(ctx, "securecrt_range", func(ctx context.Context, log *slog.Logger) error {
		tmpl, err := decodeTemplate(template)
		if err != nil {
			return err
		}
		ips, err := securecrt.IPRange(start, end)
		if err != nil {
			return err
		}
		sessions, err := securecrt.PairLabels(ips, securecrt.ReadLabels(DecodeText(labels.Data)))
		if err != nil {
			return err
		}
		res = &SessionResult{Sessions: sessions, template: tmpl}
		log.Info("sessions rendered", "source", "range", "start", start, "end", end, "sessions", len(sessions))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// decodeTemplate keeps the template's own line endings.
func decodeTemplate(f File) (string, error) {
	tmpl := DecodeRaw(f.Data)
	if strings.TrimSpace(tmpl) == "" {
		return "", ErrEmptyTemplate
	}
	return tmpl, nil
}
