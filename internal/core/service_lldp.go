package core

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bgeun31/nettools/internal/lldp"
	"github.com/bgeun31/nettools/internal/workbook"
)

// LLDPMode selects how neighbor rows are admitted.
type LLDPMode string

const (
	// LLDPHostname admits neighbors matching optional name patterns.
	LLDPHostname LLDPMode = "hostname"
	// LLDPOUI admits neighbors whose MAC carries an allowed vendor prefix.
	LLDPOUI LLDPMode = "oui"
)

// LLDPRequest describes one LLDP parse.
type LLDPRequest struct {
	Mode  LLDPMode
	Files []File

	// Patterns holds comma or newline separated neighbor name patterns
	// (hostname mode). "*" matches any run of characters.
	Patterns string

	StripPrefix string

	// OUIs lists allowed vendor prefixes, one per line (OUI mode). With
	// AutoDetect and no list, prefixes are harvested from each document.
	OUIs       string
	AutoDetect bool
}

// LLDPResult is the parsed adjacency table.
type LLDPResult struct {
	Mode         LLDPMode         `json:"mode"`
	Adjacencies  []lldp.Adjacency `json:"adjacencies"`
	Hosts        int              `json:"hosts"`
	Unidentified []string         `json:"unidentified,omitempty"`
}

// Rows renders the adjacencies grouped by local device.
func (r *LLDPResult) Rows() [][]string {
	return lldp.Grouped(r.Adjacencies)
}

// Workbook exports the table as lldp-<mode>.xlsx.
func (r *LLDPResult) Workbook() (*Output, error) {
	name := "lldp-" + string(r.Mode)
	w := workbook.NewWriter()
	if _, err := w.AddStringSheet(name, lldp.Header, r.Rows()); err != nil {
		w.Close()
		return nil, err
	}
	return workbookOutput(name+".xlsx", w)
}

func (req LLDPRequest) options() (lldp.Options, error) {
	opts := lldp.Options{StripPrefix: req.StripPrefix}
	switch req.Mode {
	case LLDPHostname, "":
		opts.NeighborPatterns = lldp.CompileFilters(req.Patterns)
	case LLDPOUI:
		opts.OUIs = lldp.ParseOUIs(req.OUIs)
		opts.AutoDetectOUI = req.AutoDetect
	default:
		return opts, fmt.Errorf("%w %q", ErrInvalidMode, req.Mode)
	}
	return opts, nil
}

// LLDP parses neighbor tables across all uploaded logs and resolves
// neighbor IPs from the other documents in the batch.
func (s *Service) LLDP(ctx context.Context, req LLDPRequest) (*LLDPResult, error) {
	if req.Mode == "" {
		req.Mode = LLDPHostname
	}
	opts, err := req.options()
	if err != nil {
		return nil, err
	}
	opts.Noise = s.cfg.Noise
	opts.Workers = s.cfg.Workers

	var res *LLDPResult
	err = s.run(ctx, "lldp", func(ctx context.Context, log *slog.Logger) error {
		docs, err := s.documents(ctx, log, req.Files)
		if err != nil {
			return err
		}
		parsed, err := lldp.NewParser(s.cfg.Patterns, opts).Parse(ctx, docs)
		if err != nil {
			return err
		}
		for _, name := range parsed.Unidentified {
			log.Debug("no sysname, skipped", "file", name)
		}
		res = &LLDPResult{
			Mode:         req.Mode,
			Adjacencies:  parsed.Adjacencies,
			Hosts:        parsed.Hosts.Len(),
			Unidentified: parsed.Unidentified,
		}
		log.Info("lldp parsed",
			"mode", req.Mode,
			"documents", len(docs),
			"hosts", res.Hosts,
			"adjacencies", len(res.Adjacencies),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
