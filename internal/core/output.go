package core

import (
	"bytes"
	"fmt"
	"path"
	"strings"

	"github.com/bgeun31/nettools/internal/archive"
	"github.com/bgeun31/nettools/internal/workbook"
)

// Output is a generated file ready for download.
type Output struct {
	Name        string
	ContentType string
	Data        []byte
}

func workbookOutput(name string, w *workbook.Writer) (*Output, error) {
	defer w.Close()
	data, err := w.Bytes()
	if err != nil {
		return nil, err
	}
	return &Output{Name: name, ContentType: workbook.ContentType, Data: data}, nil
}

func zipOutput(name string, entries []archive.Entry) (*Output, error) {
	var buf bytes.Buffer
	if err := archive.Write(&buf, entries); err != nil {
		return nil, fmt.Errorf("write %s: %w", name, err)
	}
	return &Output{Name: name, ContentType: archive.ContentType, Data: buf.Bytes()}, nil
}

// stem returns a base name without its extension, accepting both slash
// styles.
func stem(name string) string {
	base := path.Base(strings.ReplaceAll(name, `\`, "/"))
	if base == "." || base == "/" {
		return ""
	}
	return strings.TrimSuffix(base, path.Ext(base))
}

// withExt replaces name's extension with ext, falling back to def when
// name is empty.
func withExt(name, def, ext string) string {
	s := stem(name)
	if s == "" {
		s = def
	}
	return s + ext
}
