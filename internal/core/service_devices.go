package core

import (
	"context"
	"log/slog"

	"github.com/bgeun31/nettools/internal/extract"
	"github.com/bgeun31/nettools/internal/workbook"
)

// DeviceSheet is the sheet name of the inventory export.
const DeviceSheet = "extracted"

// DeviceRow is a rendered inventory record; missing fields hold the
// not-found text.
type DeviceRow struct {
	Filename string `json:"filename"`
	Hostname string `json:"hostname"`
	IP       string `json:"ip"`
	Serial   string `json:"serial"`
	Model    string `json:"model"`
	Image    string `json:"image"`
}

// DeviceResult is the inventory of one upload, one record per document.
type DeviceResult struct {
	Records  []extract.DeviceRecord
	notFound string
}

// Rows renders every record in extract.DeviceHeader order.
func (r *DeviceResult) Rows() [][]string {
	out := make([][]string, len(r.Records))
	for i, rec := range r.Records {
		out[i] = rec.Row(r.notFound)
	}
	return out
}

// Items renders every record for JSON output.
func (r *DeviceResult) Items() []DeviceRow {
	rows := r.Rows()
	out := make([]DeviceRow, len(rows))
	for i, row := range rows {
		out[i] = DeviceRow{
			Filename: row[0],
			Hostname: row[1],
			IP:       row[2],
			Serial:   row[3],
			Model:    row[4],
			Image:    row[5],
		}
	}
	return out
}

// Workbook exports the inventory as extract.xlsx.
func (r *DeviceResult) Workbook() (*Output, error) {
	w := workbook.NewWriter()
	if _, err := w.AddStringSheet(DeviceSheet, extract.DeviceHeader, r.Rows()); err != nil {
		w.Close()
		return nil, err
	}
	return workbookOutput("extract.xlsx", w)
}

// Devices extracts hostname, IP, serial, model and image from every
// uploaded log.
func (s *Service) Devices(ctx context.Context, files []File) (*DeviceResult, error) {
	res := &DeviceResult{notFound: s.cfg.NotFound}
	err := s.run(ctx, "devices", func(ctx context.Context, log *slog.Logger) error {
		docs, err := s.documents(ctx, log, files)
		if err != nil {
			return err
		}
		res.Records = make([]extract.DeviceRecord, len(docs))
		for i, doc := range docs {
			res.Records[i] = s.cfg.Patterns.Device(doc)
		}
		log.Info("devices extracted", "documents", len(docs))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
