package extract

import (
	"path"
	"strings"
)

// Document is one captured text blob and the name it was uploaded under.
type Document struct {
	Name string
	Text string
}

// DeviceRecord is the inventory summary of one document.
type DeviceRecord struct {
	Filename string
	Hostname Value
	IP       Value
	Serial   Value
	Model    Value
	Image    Value
}

// BaseName returns the last path element of a document name, accepting both
// slash styles since names may come from Windows clients or zip entries.
func BaseName(name string) string {
	name = strings.ReplaceAll(name, `\`, "/")
	return path.Base(name)
}

// Device extracts the inventory fields of doc.
// The IP comes from the leading dotted quad of the file name when present,
// otherwise from the content IP patterns.
func (ps *PatternSet) Device(doc Document) DeviceRecord {
	ip := ps.Extract(FieldFilenameIP, BaseName(doc.Name))
	if !ip.Found {
		ip = ps.Extract(FieldIP, doc.Text)
	}

	return DeviceRecord{
		Filename: doc.Name,
		Hostname: ps.Extract(FieldSysname, doc.Text),
		IP:       ip,
		Serial:   ps.Extract(FieldSerial, doc.Text),
		Model:    ps.Extract(FieldModel, doc.Text),
		Image:    ps.Extract(FieldImage, doc.Text),
	}
}

// DeviceHeader is the column order used when rendering device records.
var DeviceHeader = []string{"filename", "hostname", "ip", "serial", "model", "image"}

// Row renders the record in DeviceHeader order, with notFound standing in
// for missing fields.
func (d DeviceRecord) Row(notFound string) []string {
	return []string{
		d.Filename,
		d.Hostname.Or(notFound),
		d.IP.Or(notFound),
		d.Serial.Or(notFound),
		d.Model.Or(notFound),
		d.Image.Or(notFound),
	}
}
