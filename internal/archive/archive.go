// Package archive expands uploaded zip archives into log documents and
// packs generated text files into a zip.
package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"path"
	"strings"
)

// ContentType is the media type of a zip body.
const ContentType = "application/zip"

// maxEntrySize bounds one decompressed entry.
const maxEntrySize = 64 << 20

// Entry is one file taken from or destined for an archive.
type Entry struct {
	Name string
	Data []byte
}

// IsArchive reports whether a file name looks like a zip archive.
func IsArchive(name string) bool {
	return strings.EqualFold(path.Ext(name), ".zip")
}

// IsLog reports whether a file name has a log extension (.log or .txt).
func IsLog(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".log", ".txt":
		return true
	}
	return false
}

// Expand returns the .log and .txt entries of a zip archive in archive
// order. Directory entries and other extensions are skipped. An unreadable
// archive returns an error; an unreadable entry is skipped and reported in
// skipped.
func Expand(data []byte) (entries []Entry, skipped []string, err error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, nil, fmt.Errorf("open archive: %w", err)
	}

	for _, f := range zr.File {
		if f.FileInfo().IsDir() || !IsLog(f.Name) {
			continue
		}
		body, err := readEntry(f)
		if err != nil {
			skipped = append(skipped, f.Name)
			continue
		}
		entries = append(entries, Entry{Name: f.Name, Data: body})
	}
	return entries, skipped, nil
}

func readEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	body, err := io.ReadAll(io.LimitReader(rc, maxEntrySize+1))
	if err != nil {
		return nil, err
	}
	if len(body) > maxEntrySize {
		return nil, fmt.Errorf("entry %s exceeds %d bytes", f.Name, maxEntrySize)
	}
	return body, nil
}

// Write packs entries into a deflate-compressed zip.
func Write(w io.Writer, entries []Entry) error {
	zw := zip.NewWriter(w)
	for _, e := range entries {
		fw, err := zw.CreateHeader(&zip.FileHeader{Name: e.Name, Method: zip.Deflate})
		if err != nil {
			return fmt.Errorf("add %s: %w", e.Name, err)
		}
		if _, err := fw.Write(e.Data); err != nil {
			return fmt.Errorf("write %s: %w", e.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("close archive: %w", err)
	}
	return nil
}
